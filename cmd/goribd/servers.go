package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"connectrpc.com/grpchealth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/dantte-lp/goribd/internal/config"
	"github.com/dantte-lp/goribd/internal/rib"
	"github.com/dantte-lp/goribd/internal/server"
	"github.com/dantte-lp/goribd/pkg/ribpb/rib/v1/ribv1connect"
)

// -------------------------------------------------------------------------
// HTTP Endpoints
// -------------------------------------------------------------------------

const readHeaderTimeout = 10 * time.Second

// endpoint is one HTTP server run by the daemon.
type endpoint struct {
	name string
	srv  *http.Server
	path string // logged only
}

// serveHTTP registers one goroutine per endpoint. Listeners are opened
// through a ListenConfig so the group context bounds the bind.
func serveHTTP(ctx context.Context, g *errgroup.Group, logger *slog.Logger, endpoints ...endpoint) {
	var lc net.ListenConfig
	for _, ep := range endpoints {
		g.Go(func() error {
			ln, err := lc.Listen(ctx, "tcp", ep.srv.Addr)
			if err != nil {
				return fmt.Errorf("%s listen on %s: %w", ep.name, ep.srv.Addr, err)
			}

			attrs := []any{slog.String("addr", ln.Addr().String())}
			if ep.path != "" {
				attrs = append(attrs, slog.String("path", ep.path))
			}
			logger.Info(ep.name+" server listening", attrs...)

			if err := ep.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s serve on %s: %w", ep.name, ep.srv.Addr, err)
			}
			return nil
		})
	}
}

// newMetricsServer serves Prometheus metrics on cfg.Path and a plain
// readiness probe on /readyz that answers 200 only while the engine is
// RUNNING.
func newMetricsServer(cfg config.MetricsConfig, reg *prometheus.Registry, engine statusSource) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		st := engine.Status()
		if st.Phase != rib.PhaseRunning {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		fmt.Fprintln(w, st.Phase)
	})

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// newRPCServer serves the RIB service and grpc.health.v1 over h2c so
// plaintext gRPC and Connect clients (goribctl) share one port. The RIB
// service is NOT_SERVING until restart reconciliation completes.
func newRPCServer(cfg config.GRPCConfig, engine server.Engine, logger *slog.Logger) (*http.Server, *grpchealth.StaticChecker) {
	mux := http.NewServeMux()

	path, handler := server.New(engine, logger,
		server.LoggingInterceptorOption(logger),
		server.RecoveryInterceptorOption(logger),
	)
	mux.Handle(path, handler)

	checker := grpchealth.NewStaticChecker(grpchealth.HealthV1ServiceName, ribv1connect.RibServiceName)
	checker.SetStatus(ribv1connect.RibServiceName, grpchealth.StatusNotServing)
	mux.Handle(grpchealth.NewHandler(checker))

	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(mux, &http2.Server{}),
		ReadHeaderTimeout: readHeaderTimeout,
	}, checker
}
