package rib

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/netip"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// -------------------------------------------------------------------------
// Phase: restart reconciler state machine
// -------------------------------------------------------------------------

// Phase is the restart reconciler state.
//
//	STOPPED -> LOADING_CONFIG -> REBUILDING_RIB -> RESYNCING_FIB -> RUNNING
//
// Any failure before RUNNING moves to FAILED.
type Phase uint8

const (
	PhaseStopped Phase = iota
	PhaseLoadingConfig
	PhaseRebuildingRIB
	PhaseResyncingFIB
	PhaseRunning
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStopped:
		return "STOPPED"
	case PhaseLoadingConfig:
		return "LOADING_CONFIG"
	case PhaseRebuildingRIB:
		return "REBUILDING_RIB"
	case PhaseResyncingFIB:
		return "RESYNCING_FIB"
	case PhaseRunning:
		return "RUNNING"
	case PhaseFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(p))
	}
}

// LoadRetryConfig bounds the retries of configuration store and kernel
// table reads during reconciliation. Exhausting MaxElapsedTime is fatal.
type LoadRetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultLoadRetryConfig returns the default reconciliation read backoff.
func DefaultLoadRetryConfig() LoadRetryConfig {
	return LoadRetryConfig{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  time.Minute,
	}
}

func (lc LoadRetryConfig) newBackoff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if lc.InitialInterval > 0 {
		b.InitialInterval = lc.InitialInterval
	}
	if lc.MaxInterval > 0 {
		b.MaxInterval = lc.MaxInterval
	}
	b.MaxElapsedTime = lc.MaxElapsedTime
	b.Reset()
	return backoff.WithContext(b, ctx)
}

func (e *Engine) setPhase(p Phase, err error) {
	e.mu.Lock()
	old := e.phase
	e.phase = p
	e.phaseSince = time.Now()
	if err != nil {
		e.lastErr = err
	}
	e.mu.Unlock()

	e.metrics.SetPhase(p)
	if old == p {
		return
	}

	attrs := []any{
		slog.String("from", old.String()),
		slog.String("to", p.String()),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		e.logger.Error("reconciler phase change", attrs...)
		return
	}
	e.logger.Info("reconciler phase change", attrs...)
}

// Phase returns the current reconciler phase.
func (e *Engine) Phase() Phase {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.phase
}

// -------------------------------------------------------------------------
// Restart Reconciliation
// -------------------------------------------------------------------------

// reconcile rebuilds the RIB from the configuration store and live link
// state, then drives the kernel table to match: owned kernel routes that
// are no longer desired are deleted and every desired prefix is synced.
func (e *Engine) reconcile(ctx context.Context) error {
	start := time.Now()

	e.setPhase(PhaseLoadingConfig, nil)
	snap, err := e.loadConfig(ctx)
	if err != nil {
		return err
	}
	links := e.loadLinkStates(ctx)

	e.setPhase(PhaseRebuildingRIB, nil)
	e.rebuild(snap, links)

	e.setPhase(PhaseResyncingFIB, nil)
	kernelRoutes, err := e.listKernel(ctx)
	if err != nil {
		return err
	}

	var owned []KernelRoute
	for _, kr := range kernelRoutes {
		if kr.Owned {
			owned = append(owned, kr)
		}
	}
	if snap.Empty() && len(owned) > 0 && !e.allowEmpty {
		return fmt.Errorf("%d owned kernel routes: %w", len(owned), ErrSuspectEmptyConfig)
	}
	e.fib.adopt(owned)

	e.mu.Lock()
	all := make(prefixSet, e.table.Len())
	all.add(e.table.Prefixes()...)
	e.reselectLocked(all)
	e.mu.Unlock()

	stale := 0
	for _, kr := range owned {
		if len(e.kernelDesired(kr.Prefix)) > 0 {
			continue
		}
		stale++
		e.fib.sync(ctx, kr.Prefix, nil)
	}
	e.syncPrefixes(ctx, all)
	e.reportCounts()

	elapsed := time.Since(start)
	e.metrics.ObserveReconcile(elapsed)
	e.logger.Info("restart reconciliation complete",
		slog.Int("interfaces", len(snap.Interfaces)),
		slog.Int("routes", len(snap.Routes)),
		slog.Int("owned_kernel_routes", len(owned)),
		slog.Int("stale_removed", stale),
		slog.Int("kernel_pending", e.fib.pendingCount()),
		slog.Duration("elapsed", elapsed),
	)

	e.setPhase(PhaseRunning, nil)
	return nil
}

// loadConfig reads the full configuration snapshot, retrying with bounded
// backoff. It never returns a partial snapshot.
func (e *Engine) loadConfig(ctx context.Context) (*ConfigSnapshot, error) {
	if e.source == nil {
		return &ConfigSnapshot{}, nil
	}

	var snap *ConfigSnapshot
	op := func() error {
		s, err := e.source.Load(ctx)
		if err != nil {
			return err
		}
		if s == nil {
			s = &ConfigSnapshot{}
		}
		snap = s
		return nil
	}
	notify := func(err error, wait time.Duration) {
		e.logger.Warn("configuration store load failed, retrying",
			slog.Duration("retry_in", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(op, e.loadRetry.newBackoff(ctx), notify); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return snap, nil
}

// listKernel reads the kernel table, retrying with bounded backoff.
func (e *Engine) listKernel(ctx context.Context) ([]KernelRoute, error) {
	var routes []KernelRoute
	op := func() error {
		rs, err := e.kernel.Routes(ctx)
		if err != nil {
			return err
		}
		routes = rs
		return nil
	}
	notify := func(err error, wait time.Duration) {
		e.logger.Warn("kernel route listing failed, retrying",
			slog.Duration("retry_in", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(op, e.loadRetry.newBackoff(ctx), notify); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKernelUnavailable, err)
	}
	return routes, nil
}

// loadLinkStates reads live link state. A failure is not fatal: links are
// then treated as up until the link monitor reports otherwise.
func (e *Engine) loadLinkStates(ctx context.Context) map[string]bool {
	if e.linkStates == nil {
		return nil
	}
	links, err := e.linkStates.LinkStates(ctx)
	if err != nil {
		e.logger.Warn("failed to read live link state, assuming links up",
			slog.String("error", err.Error()),
		)
		return nil
	}
	return links
}

// rebuild replays the snapshot into an empty RIB. Invalid entries are
// rejected and logged; they never reach the table.
func (e *Engine) rebuild(snap *ConfigSnapshot, links map[string]bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.resetLocked()
	for name, up := range links {
		e.linkUp[name] = up
	}

	var rejected error
	applied := 0
	for _, ev := range snap.replayEvents() {
		if err := ev.Validate(); err != nil {
			rejected = errors.Join(rejected, fmt.Errorf("%s %s: %w", ev.Type(), ev, err))
			continue
		}
		if _, err := e.mutateLocked(ev.normalize()); err != nil {
			rejected = errors.Join(rejected, fmt.Errorf("%s %s: %w", ev.Type(), ev, err))
			continue
		}
		applied++
	}
	e.recordLocked(rebuildEvent{applied: applied}, rejected, e.table.Len())

	if rejected != nil {
		e.logger.Error("configuration entries rejected during rebuild",
			slog.String("error", rejected.Error()),
		)
	}
}

// rebuildEvent is recorded in the event history for a full rebuild.
type rebuildEvent struct {
	applied int
}

func (rebuildEvent) Type() string       { return "rebuild" }
func (rebuildEvent) Validate() error    { return nil }
func (r rebuildEvent) normalize() Event { return r }
func (r rebuildEvent) String() string {
	return fmt.Sprintf("replayed %d configuration entries", r.applied)
}

// ownedPrefixes returns the prefixes the synchronizer believes are
// programmed.
func (e *Engine) ownedPrefixes() []netip.Prefix {
	return e.fib.programmedPrefixes()
}
