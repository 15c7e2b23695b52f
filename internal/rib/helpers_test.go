package rib_test

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"net/netip"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dantte-lp/goribd/internal/rib"
)

// -------------------------------------------------------------------------
// Test Helpers: fake kernel, config source, engine lifecycle
// -------------------------------------------------------------------------

var errKernelBusy = errors.New("kernel busy")

// fakeKernel is an in-memory kernel table with failure injection.
type fakeKernel struct {
	mu       sync.Mutex
	owned    map[netip.Prefix][]rib.NextHop
	foreign  []rib.KernelRoute
	failNext int
	listErr  error
	replaces int
	deletes  int
}

func newFakeKernel() *fakeKernel {
	return &fakeKernel{owned: make(map[netip.Prefix][]rib.NextHop)}
}

func (k *fakeKernel) Replace(_ context.Context, prefix netip.Prefix, nhs []rib.NextHop) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.replaces++
	if k.failNext > 0 {
		k.failNext--
		return errKernelBusy
	}
	k.owned[prefix] = slices.Clone(nhs)
	return nil
}

func (k *fakeKernel) Delete(_ context.Context, prefix netip.Prefix) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.deletes++
	if k.failNext > 0 {
		k.failNext--
		return errKernelBusy
	}
	delete(k.owned, prefix)
	return nil
}

func (k *fakeKernel) Routes(_ context.Context) ([]rib.KernelRoute, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.listErr != nil {
		return nil, k.listErr
	}
	out := slices.Clone(k.foreign)
	for p, nhs := range k.owned {
		out = append(out, rib.KernelRoute{Prefix: p, NextHops: slices.Clone(nhs), Source: "zebra", Owned: true})
	}
	return out, nil
}

func (k *fakeKernel) setFailNext(n int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.failNext = n
}

func (k *fakeKernel) counts() (replaces, deletes int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.replaces, k.deletes
}

// table returns a copy of the owned routes.
func (k *fakeKernel) table() map[netip.Prefix][]rib.NextHop {
	k.mu.Lock()
	defer k.mu.Unlock()
	out := make(map[netip.Prefix][]rib.NextHop, len(k.owned))
	for p, nhs := range k.owned {
		out[p] = slices.Clone(nhs)
	}
	return out
}

func (k *fakeKernel) nextHops(p netip.Prefix) ([]rib.NextHop, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	nhs, ok := k.owned[p]
	return slices.Clone(nhs), ok
}

// memSource is a ConfigSource over a mutable snapshot.
type memSource struct {
	mu       sync.Mutex
	snap     rib.ConfigSnapshot
	failures int
	err      error
	loads    int
	block    chan struct{}
}

func (s *memSource) Load(ctx context.Context) (*rib.ConfigSnapshot, error) {
	if s.block != nil {
		select {
		case <-s.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	if s.failures > 0 {
		s.failures--
		return nil, errors.New("store unreachable")
	}
	snap := rib.ConfigSnapshot{
		Interfaces: slices.Clone(s.snap.Interfaces),
		Routes:     slices.Clone(s.snap.Routes),
	}
	return &snap, nil
}

func (s *memSource) set(snap rib.ConfigSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}

func (s *memSource) get() rib.ConfigSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rib.ConfigSnapshot{
		Interfaces: slices.Clone(s.snap.Interfaces),
		Routes:     slices.Clone(s.snap.Routes),
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// startEngine runs an engine until it is RUNNING. The returned stop
// function cancels it and waits for Run to return.
func startEngine(t *testing.T, k rib.Kernel, src rib.ConfigSource, opts ...rib.EngineOption) (*rib.Engine, func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	eng := rib.NewEngine(discardLogger(), k, src, opts...)
	errCh := make(chan error, 1)
	go func() {
		errCh <- eng.Run(ctx)
	}()

	select {
	case <-eng.Ready():
	case err := <-errCh:
		cancel()
		t.Fatalf("engine failed before RUNNING: %v", err)
	}

	return eng, func() {
		cancel()
		if err := <-errCh; err != nil {
			t.Errorf("Run returned error: %v", err)
		}
	}
}

func submit(t *testing.T, eng *rib.Engine, evs ...rib.Event) {
	t.Helper()
	for _, ev := range evs {
		if err := eng.Submit(context.Background(), ev); err != nil {
			t.Fatalf("Submit(%s): %v", ev, err)
		}
	}
}

func pfx(s string) netip.Prefix { return netip.MustParsePrefix(s) }

func addr(s string) rib.NextHop { return rib.AddrNextHop(netip.MustParseAddr(s)) }

func dev(name string) rib.NextHop { return rib.IfaceNextHop(name) }

func iface(name string, up bool, addrs ...string) rib.Interface {
	ifc := rib.Interface{Name: name, AdminUp: up, Routing: true}
	for _, a := range addrs {
		ifc.Addresses = append(ifc.Addresses, netip.MustParsePrefix(a))
	}
	return ifc
}

// fibNextHops returns the FIB next-hops of one prefix.
func fibNextHops(eng *rib.Engine, p netip.Prefix) []rib.NextHop {
	entries := eng.ShowFIB(p)
	if len(entries) == 0 {
		return nil
	}
	return entries[0].NextHops
}

// ribNextHops returns the RIB next-hops of one (prefix, protocol) route.
func ribNextHops(eng *rib.Engine, p netip.Prefix, proto rib.Protocol) []rib.NextHop {
	var out []rib.NextHop
	for _, e := range eng.ShowRIB(p) {
		if e.Protocol == proto {
			out = append(out, e.NextHop)
		}
	}
	return out
}

// netipComparers lets cmp compare netip values.
var netipComparers = cmp.Options{
	cmp.Comparer(func(a, b netip.Addr) bool { return a == b }),
	cmp.Comparer(func(a, b netip.Prefix) bool { return a == b }),
}

func sortedKeys(m map[netip.Prefix][]rib.NextHop) []netip.Prefix {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b netip.Prefix) int { return a.Addr().Compare(b.Addr()) })
	return keys
}
