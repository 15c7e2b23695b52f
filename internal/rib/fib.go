package rib

import (
	"context"
	"log/slog"
	"net/netip"
	"slices"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// -------------------------------------------------------------------------
// Kernel: forwarding table boundary
// -------------------------------------------------------------------------

// KernelRoute is a route as seen in the kernel forwarding table.
type KernelRoute struct {
	Prefix   netip.Prefix
	NextHops []NextHop

	// Source is the kernel route protocol marker (e.g. "zebra", "kernel",
	// "boot", "static").
	Source string

	// Owned is true for routes carrying this daemon's marker.
	Owned bool
}

// Kernel programs the forwarding table. Implementations must treat
// deleting an absent route as success.
type Kernel interface {
	// Replace installs or overwrites the owned route for prefix with the
	// given next-hop set.
	Replace(ctx context.Context, prefix netip.Prefix, nexthops []NextHop) error

	// Delete removes the owned route for prefix.
	Delete(ctx context.Context, prefix netip.Prefix) error

	// Routes lists the kernel table, owned and foreign routes alike.
	Routes(ctx context.Context) ([]KernelRoute, error)
}

// Kernel operation labels for metrics.
const (
	KernelOpReplace = "replace"
	KernelOpDelete  = "delete"
)

// -------------------------------------------------------------------------
// FIB Synchronizer
// -------------------------------------------------------------------------

// RetryConfig bounds the exponential backoff used to retry failed kernel
// operations.
type RetryConfig struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryConfig returns the default kernel retry backoff.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     30 * time.Second,
	}
}

type pendingSync struct {
	backoff *backoff.ExponentialBackOff
	due     time.Time
	err     error
}

// fibSync keeps the kernel table in line with the selected routes. Only
// the engine loop calls the mutating methods; queries read programmed
// state under mu.
type fibSync struct {
	kernel  Kernel
	retry   RetryConfig
	metrics MetricsReporter
	logger  *slog.Logger

	mu         sync.RWMutex
	programmed map[netip.Prefix][]NextHop
	pending    map[netip.Prefix]*pendingSync
}

func newFIBSync(kernel Kernel, retry RetryConfig, metrics MetricsReporter, logger *slog.Logger) *fibSync {
	return &fibSync{
		kernel:     kernel,
		retry:      retry,
		metrics:    metrics,
		logger:     logger,
		programmed: make(map[netip.Prefix][]NextHop),
		pending:    make(map[netip.Prefix]*pendingSync),
	}
}

// adopt records routes already present in the kernel as programmed.
func (f *fibSync) adopt(routes []KernelRoute) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, kr := range routes {
		if kr.Owned {
			f.programmed[kr.Prefix] = slices.Clone(kr.NextHops)
		}
	}
}

// sync drives the kernel entry for prefix towards desired. Equal sets make
// no kernel call. An empty desired set deletes the entry. A failure leaves
// the programmed state untouched and schedules a retry; a retry whose
// target is already programmed is dropped.
func (f *fibSync) sync(ctx context.Context, prefix netip.Prefix, desired []NextHop) (changed bool) {
	f.mu.RLock()
	current, installed := f.programmed[prefix]
	f.mu.RUnlock()

	if (len(desired) == 0 && !installed) || (installed && nextHopSetEqual(current, desired)) {
		f.forget(prefix)
		return false
	}

	op := KernelOpReplace
	var err error
	if len(desired) == 0 {
		op = KernelOpDelete
		err = f.kernel.Delete(ctx, prefix)
	} else {
		err = f.kernel.Replace(ctx, prefix, desired)
	}
	f.metrics.IncKernelOp(op, err == nil)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		p := f.pending[prefix]
		if p == nil {
			p = &pendingSync{backoff: f.newBackoff()}
			f.pending[prefix] = p
		}
		wait := p.backoff.NextBackOff()
		p.due = time.Now().Add(wait)
		p.err = err
		f.metrics.SetKernelPending(len(f.pending))
		f.logger.Warn("kernel route programming failed, will retry",
			slog.String("prefix", prefix.String()),
			slog.String("op", op),
			slog.Duration("retry_in", wait),
			slog.String("error", err.Error()),
		)
		return false
	}

	if _, ok := f.pending[prefix]; ok {
		delete(f.pending, prefix)
		f.metrics.SetKernelPending(len(f.pending))
		f.logger.Info("kernel route programming recovered",
			slog.String("prefix", prefix.String()),
		)
	}
	if len(desired) == 0 {
		delete(f.programmed, prefix)
	} else {
		f.programmed[prefix] = slices.Clone(desired)
	}
	return true
}

// forget drops a pending retry for prefix without touching the kernel.
func (f *fibSync) forget(prefix netip.Prefix) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pending[prefix]; ok {
		delete(f.pending, prefix)
		f.metrics.SetKernelPending(len(f.pending))
		f.logger.Debug("kernel retry dropped, route already in desired state",
			slog.String("prefix", prefix.String()),
		)
	}
}

// due returns the pending prefixes whose retry time has passed.
func (f *fibSync) due(now time.Time) []netip.Prefix {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []netip.Prefix
	for p, ps := range f.pending {
		if !ps.due.After(now) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, comparePrefix)
	return out
}

// nextRetry returns the earliest pending retry time.
func (f *fibSync) nextRetry() (time.Time, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var next time.Time
	for _, ps := range f.pending {
		if next.IsZero() || ps.due.Before(next) {
			next = ps.due
		}
	}
	return next, !next.IsZero()
}

func (f *fibSync) installed(prefix netip.Prefix) ([]NextHop, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	nhs, ok := f.programmed[prefix]
	return slices.Clone(nhs), ok
}

func (f *fibSync) pendingCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.pending)
}

func (f *fibSync) programmedPrefixes() []netip.Prefix {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]netip.Prefix, 0, len(f.programmed))
	for p := range f.programmed {
		out = append(out, p)
	}
	slices.SortFunc(out, comparePrefix)
	return out
}

func (f *fibSync) newBackoff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.retry.InitialInterval
	b.MaxInterval = f.retry.MaxInterval
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}
