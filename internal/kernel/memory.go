package kernel

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"net/netip"
	"slices"
	"sync"

	"github.com/dantte-lp/goribd/internal/rib"
)

// -------------------------------------------------------------------------
// Memory: in-process forwarding table
// -------------------------------------------------------------------------

// Memory is an in-process kernel table. Routes written through Replace are
// owned; routes added with AddForeign model routes installed by other
// daemons and are never touched. Memory also serves live link state set
// with SetLink.
//
// Memory is safe for concurrent use.
type Memory struct {
	mu      sync.Mutex
	owned   map[netip.Prefix][]rib.NextHop
	foreign map[netip.Prefix]rib.KernelRoute
	links   map[string]bool
	logger  *slog.Logger
}

// NewMemory creates an empty in-process kernel table.
func NewMemory(logger *slog.Logger) *Memory {
	return &Memory{
		owned:   make(map[netip.Prefix][]rib.NextHop),
		foreign: make(map[netip.Prefix]rib.KernelRoute),
		links:   make(map[string]bool),
		logger:  logger.With(slog.String("component", "kernel.memory")),
	}
}

// Replace installs or overwrites the owned route for prefix.
func (m *Memory) Replace(ctx context.Context, prefix netip.Prefix, nhs []rib.NextHop) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("replace %s: %w", prefix, err)
	}
	if len(nhs) == 0 {
		return fmt.Errorf("replace %s: %w", prefix, ErrNoNextHops)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.owned[prefix] = slices.Clone(nhs)
	m.logger.Debug("route replaced",
		slog.String("prefix", prefix.String()),
		slog.Int("nexthops", len(nhs)),
	)
	return nil
}

// Delete removes the owned route for prefix. Deleting an absent route
// succeeds.
func (m *Memory) Delete(ctx context.Context, prefix netip.Prefix) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete %s: %w", prefix, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.owned, prefix)
	m.logger.Debug("route deleted", slog.String("prefix", prefix.String()))
	return nil
}

// Routes lists owned and foreign routes.
func (m *Memory) Routes(ctx context.Context) ([]rib.KernelRoute, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]rib.KernelRoute, 0, len(m.owned)+len(m.foreign))
	for _, kr := range m.foreign {
		kr.NextHops = slices.Clone(kr.NextHops)
		out = append(out, kr)
	}
	for p, nhs := range m.owned {
		out = append(out, rib.KernelRoute{
			Prefix:   p,
			NextHops: slices.Clone(nhs),
			Source:   rib.ProtocolKernel.String(),
			Owned:    true,
		})
	}
	return out, nil
}

// AddForeign installs a route owned by another source.
func (m *Memory) AddForeign(kr rib.KernelRoute) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kr.Owned = false
	kr.NextHops = slices.Clone(kr.NextHops)
	m.foreign[kr.Prefix] = kr
}

// SetLink records the operational state of a link.
func (m *Memory) SetLink(name string, up bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[name] = up
}

// LinkStates returns the recorded link states.
func (m *Memory) LinkStates(ctx context.Context) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.links), nil
}

// Owned returns a copy of the owned routes.
func (m *Memory) Owned() map[netip.Prefix][]rib.NextHop {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[netip.Prefix][]rib.NextHop, len(m.owned))
	for p, nhs := range m.owned {
		out[p] = slices.Clone(nhs)
	}
	return out
}

// Close implements io.Closer.
func (m *Memory) Close() error { return nil }
