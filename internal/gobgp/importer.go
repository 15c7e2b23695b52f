package gobgp

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"net/netip"
	"slices"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/dantte-lp/goribd/internal/rib"
)

const (
	// pathChSize buffers decoded paths between the stream goroutine and
	// the import loop. The initial table dump arrives in one burst.
	pathChSize = 256

	// sweepInterval is how often held and stale routes are re-examined.
	sweepInterval = time.Second

	reconnectInitial = time.Second
	reconnectMax     = 30 * time.Second
)

// Submitter applies RIB events. *rib.Engine implements it.
type Submitter interface {
	Submit(ctx context.Context, ev rib.Event) error
}

// ImporterMetrics receives importer measurements.
type ImporterMetrics interface {
	// SetBGPRoutes records the number of imported, held and stale prefixes.
	SetBGPRoutes(installed, held, stale int)

	// IncBGPSessions counts watch sessions by outcome.
	IncBGPSessions(ok bool)
}

type noopImporterMetrics struct{}

func (noopImporterMetrics) SetBGPRoutes(int, int, int) {}
func (noopImporterMetrics) IncBGPSessions(bool)        {}

// ImporterConfig configures an Importer.
type ImporterConfig struct {
	// Client is the GoBGP API client.
	Client Client

	// Distance is the administrative distance of imported routes.
	// Zero selects the bgp protocol default.
	Distance uint32

	// StaleTime is how long imported routes are kept after the watch
	// stream fails. Routes re-announced after reconnecting are refreshed;
	// the rest are withdrawn when the window ends. Zero withdraws every
	// imported route as soon as the stream fails.
	StaleTime time.Duration

	// Dampening configures route flap dampening.
	Dampening DampeningConfig

	// Metrics receives importer measurements. Nil disables them.
	Metrics ImporterMetrics
}

// imported is a route submitted to the RIB.
type imported struct {
	nextHop    netip.Addr
	med        uint32
	staleUntil time.Time // zero while the route is fresh
}

// -------------------------------------------------------------------------
// Importer
// -------------------------------------------------------------------------

// Importer feeds GoBGP best paths into the RIB as bgp routes.
//
// Run owns all importer state; the stream goroutine only decodes paths.
type Importer struct {
	client    Client
	sub       Submitter
	distance  uint32
	staleTime time.Duration
	dampener  *Dampener
	metrics   ImporterMetrics
	logger    *slog.Logger

	installed map[netip.Prefix]imported
	held      map[netip.Prefix]Path
}

// NewImporter creates an importer that submits to sub.
func NewImporter(cfg ImporterConfig, sub Submitter, logger *slog.Logger, opts ...DampenerOption) *Importer {
	mr := cfg.Metrics
	if mr == nil {
		mr = noopImporterMetrics{}
	}

	return &Importer{
		client:    cfg.Client,
		sub:       sub,
		distance:  cfg.Distance,
		staleTime: cfg.StaleTime,
		dampener:  NewDampener(cfg.Dampening, logger, opts...),
		metrics:   mr,
		logger:    logger.With(slog.String("component", "gobgp.importer")),
		installed: make(map[netip.Prefix]imported),
		held:      make(map[netip.Prefix]Path),
	}
}

// Run watches GoBGP best paths until ctx is cancelled or the RIB engine
// stops. A failed watch stream is retried with exponential backoff.
func (im *Importer) Run(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = reconnectInitial
	bo.MaxInterval = reconnectMax
	bo.MaxElapsedTime = 0
	bo.Reset()

	sweep := time.NewTicker(sweepInterval)
	defer sweep.Stop()

	for {
		received, err := im.session(ctx, sweep.C)
		if stopping(ctx, err) {
			im.logger.Info("gobgp importer stopped")
			return nil
		}
		im.metrics.IncBGPSessions(received)
		if received {
			bo.Reset()
		}

		if err := im.disconnected(ctx); err != nil {
			if stopping(ctx, err) {
				return nil
			}
			return err
		}

		wait := bo.NextBackOff()
		im.logger.Warn("gobgp watch stream failed, reconnecting",
			slog.Duration("retry_in", wait),
			slog.String("error", err.Error()),
		)

		if err := im.waitReconnect(ctx, wait, sweep.C); err != nil {
			if stopping(ctx, err) {
				return nil
			}
			return err
		}
	}
}

// stopping reports whether err means the importer must exit.
func stopping(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, rib.ErrEngineStopped)
}

// session runs one watch stream. It reports whether any path was received
// and returns the error that ended the stream.
func (im *Importer) session(ctx context.Context, sweepC <-chan time.Time) (bool, error) {
	sctx, cancel := context.WithCancel(ctx)
	paths := make(chan Path, pathChSize)
	done := make(chan struct{})

	var streamErr error
	go func() {
		defer close(done)
		streamErr = im.client.WatchBestPaths(sctx, paths)
	}()
	defer func() {
		cancel()
		<-done
	}()

	received := false
	for {
		select {
		case <-ctx.Done():
			return received, ctx.Err()

		case p := <-paths:
			received = true
			if err := im.handle(ctx, p); err != nil {
				return received, err
			}

		case <-done:
			// Paths queued before the stream ended are still valid.
			for drained := false; !drained; {
				select {
				case p := <-paths:
					received = true
					if err := im.handle(ctx, p); err != nil {
						return received, err
					}
				default:
					drained = true
				}
			}
			if streamErr == nil {
				streamErr = ErrStreamClosed
			}
			return received, streamErr

		case <-sweepC:
			if err := im.sweep(ctx); err != nil {
				return received, err
			}
		}
	}
}

// waitReconnect waits out the reconnect delay while keeping the stale and
// held routes moving.
func (im *Importer) waitReconnect(ctx context.Context, wait time.Duration, sweepC <-chan time.Time) error {
	timer := time.NewTimer(wait)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case <-sweepC:
			if err := im.sweep(ctx); err != nil {
				return err
			}
		}
	}
}

// -------------------------------------------------------------------------
// Path Handling
// -------------------------------------------------------------------------

// handle applies one best-path change.
func (im *Importer) handle(ctx context.Context, p Path) error {
	defer im.report()

	if p.Withdraw {
		_, inst := im.installed[p.Prefix]
		_, held := im.held[p.Prefix]
		if !inst && !held {
			return nil
		}
		delete(im.held, p.Prefix)
		im.dampener.Withdrawn(p.Prefix)
		if inst {
			return im.withdraw(ctx, p.Prefix)
		}
		return nil
	}

	delete(im.held, p.Prefix)
	if im.dampener.Suppressed(p.Prefix) {
		im.held[p.Prefix] = p
		im.logger.Debug("holding suppressed prefix", slog.String("prefix", p.Prefix.String()))
		if _, inst := im.installed[p.Prefix]; inst {
			return im.withdraw(ctx, p.Prefix)
		}
		return nil
	}

	return im.install(ctx, p)
}

// install submits p as a bgp route unless the identical route is already
// imported, in which case only its stale mark is cleared.
func (im *Importer) install(ctx context.Context, p Path) error {
	if cur, ok := im.installed[p.Prefix]; ok && cur.nextHop == p.NextHop && cur.med == p.MED {
		cur.staleUntil = time.Time{}
		im.installed[p.Prefix] = cur
		return nil
	}

	err := im.sub.Submit(ctx, rib.RouteReplace{
		Prefix:   p.Prefix,
		Protocol: rib.ProtocolBGP,
		Distance: im.distance,
		Metric:   p.MED,
		NextHops: []rib.NextHop{rib.AddrNextHop(p.NextHop)},
	})
	if err != nil {
		if stopping(ctx, err) {
			return err
		}
		im.logger.Warn("bgp route rejected",
			slog.String("prefix", p.Prefix.String()),
			slog.String("next_hop", p.NextHop.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}

	im.installed[p.Prefix] = imported{nextHop: p.NextHop, med: p.MED}
	return nil
}

// withdraw removes an imported route from the RIB.
func (im *Importer) withdraw(ctx context.Context, prefix netip.Prefix) error {
	delete(im.installed, prefix)

	err := im.sub.Submit(ctx, rib.RouteWithdraw{Prefix: prefix, Protocol: rib.ProtocolBGP})
	if err != nil {
		if stopping(ctx, err) {
			return err
		}
		im.logger.Warn("bgp route withdrawal rejected",
			slog.String("prefix", prefix.String()),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// disconnected marks every imported route stale after the stream failed.
// Held announcements are dropped: the next session re-announces them.
func (im *Importer) disconnected(ctx context.Context) error {
	defer im.report()

	clear(im.held)

	if im.staleTime <= 0 {
		for _, prefix := range sortedPrefixes(im.installed) {
			if err := im.withdraw(ctx, prefix); err != nil {
				return err
			}
		}
		return nil
	}

	until := time.Now().Add(im.staleTime)
	for prefix, r := range im.installed {
		if r.staleUntil.IsZero() {
			r.staleUntil = until
			im.installed[prefix] = r
		}
	}
	if len(im.installed) > 0 {
		im.logger.Info("keeping bgp routes as stale",
			slog.Int("routes", len(im.installed)),
			slog.Duration("stale_time", im.staleTime),
		)
	}
	return nil
}

// sweep releases held prefixes whose suppression ended and withdraws stale
// routes whose window expired.
func (im *Importer) sweep(ctx context.Context) error {
	defer im.report()

	for _, prefix := range sortedPrefixes(im.held) {
		if im.dampener.Suppressed(prefix) {
			continue
		}
		p := im.held[prefix]
		delete(im.held, prefix)
		im.logger.Info("releasing dampened prefix", slog.String("prefix", prefix.String()))
		if err := im.install(ctx, p); err != nil {
			return err
		}
	}

	now := time.Now()
	for _, prefix := range sortedPrefixes(im.installed) {
		r := im.installed[prefix]
		if r.staleUntil.IsZero() || now.Before(r.staleUntil) {
			continue
		}
		im.logger.Info("stale bgp route expired", slog.String("prefix", prefix.String()))
		if err := im.withdraw(ctx, prefix); err != nil {
			return err
		}
	}
	return nil
}

func (im *Importer) report() {
	stale := 0
	for _, r := range im.installed {
		if !r.staleUntil.IsZero() {
			stale++
		}
	}
	im.metrics.SetBGPRoutes(len(im.installed), len(im.held), stale)
}

func sortedPrefixes[V any](m map[netip.Prefix]V) []netip.Prefix {
	out := slices.Collect(maps.Keys(m))
	slices.SortFunc(out, func(a, b netip.Prefix) int {
		if c := a.Addr().Compare(b.Addr()); c != 0 {
			return c
		}
		return a.Bits() - b.Bits()
	})
	return out
}
