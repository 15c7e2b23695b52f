// GoRIBd daemon -- routing information base and FIB manager.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/trace"
	"syscall"
	"time"

	"connectrpc.com/grpchealth"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/dantte-lp/goribd/internal/config"
	"github.com/dantte-lp/goribd/internal/gobgp"
	"github.com/dantte-lp/goribd/internal/kernel"
	ribmetrics "github.com/dantte-lp/goribd/internal/metrics"
	"github.com/dantte-lp/goribd/internal/rib"
	"github.com/dantte-lp/goribd/internal/store"
	appversion "github.com/dantte-lp/goribd/internal/version"
	"github.com/dantte-lp/goribd/pkg/ribpb/rib/v1/ribv1connect"
)

// shutdownTimeout bounds the API drain and the engine stop together.
const shutdownTimeout = 10 * time.Second

// errUnknownStore indicates an unsupported store.type value.
var errUnknownStore = errors.New("unknown store type")

func main() {
	os.Exit(run())
}

func run() int {
	// 1. Parse flags.
	configPath := flag.String("config", "", "path to configuration file (YAML)")
	flag.Parse()

	// 2. Load config.
	cfg, err := loadConfig(*configPath)
	if err != nil {
		// Logger is not set up yet; use a temporary stderr logger.
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("failed to load configuration",
			slog.String("error", err.Error()),
		)
		return 1
	}

	// 3. Set up logger with dynamic level support for SIGHUP reload.
	logLevel := new(slog.LevelVar)
	logLevel.Set(config.ParseLogLevel(cfg.Log.Level))
	logger := newLoggerWithLevel(cfg.Log, logLevel)

	logger.Info("goribd starting",
		slog.String("version", appversion.Short()),
		slog.String("grpc_addr", cfg.GRPC.Addr),
		slog.String("metrics_addr", cfg.Metrics.Addr),
		slog.String("fib_backend", cfg.FIB.Backend),
		slog.String("store", cfg.Store.Type),
	)

	// 4. Start flight recorder for post-mortem debugging of reconciliation.
	fr := startFlightRecorder(logger)

	// 5. Create Prometheus metrics collector.
	reg := prometheus.NewRegistry()
	collector := ribmetrics.NewCollector(reg)

	// 6. Open the kernel forwarding table.
	backend, err := kernel.Open(cfg.FIB.Backend, cfg.FIB.Table, logger)
	if err != nil {
		logger.Error("failed to open kernel backend",
			slog.String("backend", cfg.FIB.Backend),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer closeBackend(backend, logger)

	// 7. Run the engine and servers.
	if err := runDaemon(cfg, backend, collector, reg, logger, *configPath, logLevel, fr); err != nil {
		logger.Error("goribd exited with error",
			slog.String("error", err.Error()),
		)
		return 1
	}

	logger.Info("goribd stopped")
	return 0
}

// runDaemon wires the configuration store, engine, link monitor, GoBGP
// importer and servers into an errgroup with a signal-aware context.
func runDaemon(
	cfg *config.Config,
	backend kernel.Backend,
	collector *ribmetrics.Collector,
	reg *prometheus.Registry,
	logger *slog.Logger,
	configPath string,
	logLevel *slog.LevelVar,
	fr *trace.FlightRecorder,
) error {
	// errgroup with signal-aware context.
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	src, closeSource, err := openStore(gCtx, cfg, configPath, logger)
	if err != nil {
		return fmt.Errorf("open configuration store: %w", err)
	}
	defer closeSource()

	engine := rib.NewEngine(logger, backend, src,
		rib.WithMetrics(collector),
		rib.WithPolicy(cfg.Policy()),
		rib.WithKernelRetry(cfg.KernelRetry()),
		rib.WithLoadRetry(cfg.LoadRetry()),
		rib.WithAllowEmptyFlush(cfg.RIB.AllowEmptyFlush),
		rib.WithQueueSize(cfg.RIB.QueueSize),
		rib.WithHistorySize(cfg.RIB.HistorySize),
		rib.WithLinkStates(backend),
	)

	metricsSrv := newMetricsServer(cfg.Metrics, reg, engine)
	grpcSrv, health := newRPCServer(cfg.GRPC, engine, logger)

	g.Go(func() error {
		err := engine.Run(gCtx)
		if err != nil {
			dumpFlightRecorder(fr, "reconcile-failed", logger)
		}
		return err
	})

	serveHTTP(gCtx, g, logger,
		endpoint{name: "rpc", srv: grpcSrv},
		endpoint{name: "metrics", srv: metricsSrv, path: cfg.Metrics.Path},
	)
	startStore(gCtx, g, cfg, src, engine, logger)
	startLinkMonitor(gCtx, g, cfg.LinkMonitor, engine, logger)
	startDaemonGoroutines(gCtx, g, configPath, logLevel, src, engine, logger)

	bgpClient, err := startGoBGPImporter(gCtx, g, cfg.GoBGP, engine, collector, logger)
	if err != nil {
		return fmt.Errorf("start gobgp importer: %w", err)
	}
	defer closeGoBGPClient(bgpClient, logger)

	// Readiness follows the engine: SERVING once reconciliation is done.
	g.Go(func() error {
		select {
		case <-gCtx.Done():
			return nil
		case <-engine.Ready():
		}
		health.SetStatus(ribv1connect.RibServiceName, grpchealth.StatusServing)
		notifyReady(engine, logger)
		return nil
	})

	// Shutdown goroutine: waits for context cancellation.
	g.Go(func() error {
		<-gCtx.Done()
		health.SetStatus(ribv1connect.RibServiceName, grpchealth.StatusNotServing)
		return gracefulShutdown(gCtx, logger, fr, engine.Done(), grpcSrv, metricsSrv)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run daemon: %w", err)
	}
	return nil
}

// startDaemonGoroutines registers the watchdog and SIGHUP reload goroutines.
func startDaemonGoroutines(
	ctx context.Context,
	g *errgroup.Group,
	configPath string,
	logLevel *slog.LevelVar,
	src configStore,
	engine *rib.Engine,
	logger *slog.Logger,
) {
	g.Go(func() error {
		return runWatchdog(ctx, engine, logger)
	})

	sigHUP := make(chan os.Signal, 1)
	signal.Notify(sigHUP, syscall.SIGHUP)
	g.Go(func() error {
		defer signal.Stop(sigHUP)
		handleSIGHUP(ctx, sigHUP, configPath, logLevel, src, engine, logger)
		return nil
	})
}

// closeBackend closes the kernel backend, logging any error.
func closeBackend(backend kernel.Backend, logger *slog.Logger) {
	if err := backend.Close(); err != nil {
		logger.Warn("failed to close kernel backend",
			slog.String("error", err.Error()),
		)
	}
}

// closeGoBGPClient closes the GoBGP client if non-nil, logging any error.
func closeGoBGPClient(client gobgp.Client, logger *slog.Logger) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		logger.Warn("failed to close gobgp client",
			slog.String("error", err.Error()),
		)
	}
}

// -------------------------------------------------------------------------
// Configuration Store
// -------------------------------------------------------------------------

// configStore is a configuration source that can push later changes into
// the engine.
type configStore interface {
	rib.ConfigSource
	Reload(ctx context.Context, sub store.Submitter) error
}

// openStore creates the configured store. The returned close function is
// never nil.
func openStore(ctx context.Context, cfg *config.Config, configPath string, logger *slog.Logger) (configStore, func(), error) {
	switch cfg.Store.Type {
	case config.StoreFile, "":
		if configPath == "" {
			logger.Info("no configuration file, starting with an empty configuration")
			return staticStore{cfg: cfg}, func() {}, nil
		}
		return store.NewFileStore(configPath, logger), func() {}, nil

	case config.StoreOVSDB:
		db, err := store.DialOVSDB(ctx, cfg.Store.Endpoint, cfg.Store.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		st := store.NewOVSDBStore(db, logger,
			store.WithVRF(cfg.Store.VRF),
			store.WithDebounce(cfg.Store.Debounce),
		)
		return st, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("store %q: %w", cfg.Store.Type, errUnknownStore)
	}
}

// startStore registers the goroutines that keep the engine in sync with
// the store after reconciliation.
func startStore(
	ctx context.Context,
	g *errgroup.Group,
	cfg *config.Config,
	src configStore,
	engine *rib.Engine,
	logger *slog.Logger,
) {
	switch st := src.(type) {
	case *store.FileStore:
		if !cfg.Store.Watch {
			return
		}
		g.Go(func() error {
			if !waitReady(ctx, engine) {
				return nil
			}
			if err := st.Watch(ctx, engine); err != nil {
				// Reload on SIGHUP still works without the watcher.
				logger.Warn("configuration file watch unavailable",
					slog.String("error", err.Error()),
				)
			}
			return nil
		})

	case *store.OVSDBStore:
		g.Go(func() error {
			return st.WriteSelected(ctx, engine)
		})
		g.Go(func() error {
			if !waitReady(ctx, engine) {
				return nil
			}
			return st.Run(ctx, engine)
		})
	}
}

// waitReady blocks until the engine is RUNNING. It returns false when ctx
// is cancelled or the engine stops first.
func waitReady(ctx context.Context, engine *rib.Engine) bool {
	select {
	case <-engine.Ready():
		return true
	case <-engine.Done():
		return false
	case <-ctx.Done():
		return false
	}
}

// staticStore serves the interfaces and routes of an in-memory
// configuration. It is used when the daemon runs without a file.
type staticStore struct {
	cfg *config.Config
}

func (s staticStore) Load(context.Context) (*rib.ConfigSnapshot, error) {
	snap, err := s.cfg.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rib.ErrStoreUnavailable, err)
	}
	return snap, nil
}

func (staticStore) Reload(context.Context, store.Submitter) error {
	return nil
}

// -------------------------------------------------------------------------
// Link Monitor
// -------------------------------------------------------------------------

// startLinkMonitor forwards kernel link state changes to the engine.
func startLinkMonitor(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.LinkMonitorConfig,
	engine *rib.Engine,
	logger *slog.Logger,
) {
	var mon kernel.LinkMonitor
	if cfg.Enabled {
		mon = kernel.NewLinkMonitor(logger)
	} else {
		logger.Info("link monitor disabled")
		mon = kernel.NewStubLinkMonitor(logger)
	}

	g.Go(func() error {
		return mon.Run(ctx)
	})
	g.Go(func() error {
		return kernel.ForwardLinkEvents(ctx, mon.Events(), engine, logger)
	})
}

// -------------------------------------------------------------------------
// SIGHUP Reload: log level and store
// -------------------------------------------------------------------------

// handleSIGHUP listens for SIGHUP signals and reloads configuration.
// The log level is updated through the shared LevelVar and the store is
// re-read; differences are submitted to the engine.
// Blocks until the context is cancelled.
func handleSIGHUP(
	ctx context.Context,
	sigHUP <-chan os.Signal,
	configPath string,
	logLevel *slog.LevelVar,
	src configStore,
	engine *rib.Engine,
	logger *slog.Logger,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-sigHUP:
			logger.Info("received SIGHUP, reloading configuration")
			reloadConfig(ctx, configPath, logLevel, src, engine, logger)
		}
	}
}

// reloadConfig updates the log level from a fresh configuration and
// reloads the store. Errors are logged and the running configuration
// stays in effect.
func reloadConfig(
	ctx context.Context,
	configPath string,
	logLevel *slog.LevelVar,
	src configStore,
	engine *rib.Engine,
	logger *slog.Logger,
) {
	newCfg, err := loadConfig(configPath)
	if err != nil {
		logger.Error("failed to reload configuration, keeping current settings",
			slog.String("error", err.Error()),
		)
		return
	}

	oldLevel := logLevel.Level()
	newLevel := config.ParseLogLevel(newCfg.Log.Level)
	logLevel.Set(newLevel)

	logger.Info("log level reloaded",
		slog.String("old_log_level", oldLevel.String()),
		slog.String("new_log_level", newLevel.String()),
	)

	if engine.Status().Phase != rib.PhaseRunning {
		logger.Warn("engine not running, store reload skipped")
		return
	}
	if err := src.Reload(ctx, engine); err != nil {
		logger.Error("failed to reload store, keeping current configuration",
			slog.String("error", err.Error()),
		)
	}
}

// -------------------------------------------------------------------------
// Graceful Shutdown
// -------------------------------------------------------------------------

// gracefulShutdown drains the API first so no mutation races the engine
// stopping, waits for the engine to leave its event loop, then closes the
// metrics endpoint. Owned kernel routes stay installed; the next start
// reconciles them.
//
// ctx is already cancelled; the drain gets its own timeout.
func gracefulShutdown(
	ctx context.Context,
	logger *slog.Logger,
	fr *trace.FlightRecorder,
	engineDone <-chan struct{},
	grpcSrv, metricsSrv *http.Server,
) error {
	logger.Info("initiating graceful shutdown")
	notifyStopping(logger)

	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	var errs error
	if err := grpcSrv.Shutdown(drainCtx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("shutdown rpc server: %w", err))
	}

	select {
	case <-engineDone:
	case <-drainCtx.Done():
		logger.Warn("rib engine did not stop within the shutdown timeout")
	}

	if err := metricsSrv.Shutdown(drainCtx); err != nil {
		errs = errors.Join(errs, fmt.Errorf("shutdown metrics server: %w", err))
	}

	stopFlightRecorder(fr, logger)
	return errs
}

// -------------------------------------------------------------------------
// GoBGP Importer
// -------------------------------------------------------------------------

// startGoBGPImporter creates and starts the GoBGP best-path importer if
// enabled. Returns the GoBGP client (for deferred Close) and any
// initialization error. Returns nil client when the importer is disabled.
func startGoBGPImporter(
	ctx context.Context,
	g *errgroup.Group,
	cfg config.GoBGPConfig,
	engine *rib.Engine,
	collector *ribmetrics.Collector,
	logger *slog.Logger,
) (gobgp.Client, error) {
	if !cfg.Enabled {
		logger.Info("gobgp importer disabled")
		return nil, nil
	}

	client, err := gobgp.NewGRPCClient(gobgp.GRPCClientConfig{
		Addr: cfg.Addr,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create gobgp client: %w", err)
	}

	importer := gobgp.NewImporter(gobgp.ImporterConfig{
		Client:    client,
		Distance:  cfg.Distance,
		StaleTime: cfg.StaleTime,
		Dampening: gobgp.DampeningConfig{
			Enabled:           cfg.Dampening.Enabled,
			SuppressThreshold: cfg.Dampening.SuppressThreshold,
			ReuseThreshold:    cfg.Dampening.ReuseThreshold,
			MaxSuppressTime:   cfg.Dampening.MaxSuppressTime,
			HalfLife:          cfg.Dampening.HalfLife,
		},
		Metrics: collector,
	}, engine, logger)

	g.Go(func() error {
		// BGP routes are imported into a reconciled RIB only.
		if !waitReady(ctx, engine) {
			return nil
		}
		return importer.Run(ctx)
	})

	logger.Info("gobgp importer enabled",
		slog.String("addr", cfg.Addr),
		slog.Uint64("distance", uint64(cfg.Distance)),
		slog.Duration("stale_time", cfg.StaleTime),
		slog.Bool("dampening", cfg.Dampening.Enabled),
	)

	return client, nil
}

// loadConfig loads configuration from a file path or returns defaults.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config from %s: %w", path, err)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

// newLoggerWithLevel creates a structured logger using a shared LevelVar
// for dynamic log level changes via SIGHUP reload.
func newLoggerWithLevel(cfg config.LogConfig, level *slog.LevelVar) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
