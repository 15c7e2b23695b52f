package rib_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/netip"
	"testing"
	"testing/synctest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dantte-lp/goribd/internal/rib"
)

func fastLoadRetry() rib.EngineOption {
	return rib.WithLoadRetry(rib.LoadRetryConfig{
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     100 * time.Millisecond,
		MaxElapsedTime:  2 * time.Second,
	})
}

// runUntilDone runs eng to completion and returns the Run error.
func runUntilDone(t *testing.T, eng *rib.Engine) error {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- eng.Run(ctx) }()

	select {
	case err := <-errCh:
		return err
	case <-eng.Ready():
		cancel()
		<-errCh
		return nil
	}
}

// -------------------------------------------------------------------------
// FIB resync
// -------------------------------------------------------------------------

// TestReconcileRemovesStaleRoutes starts with owned routes left over from a
// previous run and a foreign route; stale owned routes are deleted, wrong
// ones rewritten, and the foreign route left alone.
func TestReconcileRemovesStaleRoutes(t *testing.T) {
	t.Parallel()

	k := newFakeKernel()
	k.owned[pfx("10.1.0.0/16")] = []rib.NextHop{addr("1.1.1.9")}
	k.owned[pfx("10.2.0.0/16")] = []rib.NextHop{addr("1.1.1.9")}
	k.foreign = []rib.KernelRoute{{Prefix: pfx("0.0.0.0/0"), NextHops: []rib.NextHop{addr("192.0.2.1")}, Source: "dhcp"}}

	src := scenarioSource()
	src.snap.Routes = []rib.RouteConfig{
		{Prefix: pfx("10.2.0.0/16"), Protocol: rib.ProtocolStatic, NextHops: []rib.NextHop{addr("1.1.1.2"), dev("eth3")}},
	}

	eng, stop := startEngine(t, k, src)
	defer stop()

	want := map[netip.Prefix][]rib.NextHop{
		pfx("10.2.0.0/16"): {addr("1.1.1.2"), dev("eth3")},
	}
	if diff := cmp.Diff(want, k.table(), netipComparers); diff != "" {
		t.Errorf("kernel owned routes mismatch (-want +got):\n%s", diff)
	}

	routes, err := eng.ShowKernelRoutes(context.Background(), netip.Prefix{})
	if err != nil {
		t.Fatalf("ShowKernelRoutes: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("kernel routes = %+v, want default route and 10.2.0.0/16", routes)
	}
	if routes[0].Prefix != pfx("0.0.0.0/0") || routes[0].Owned {
		t.Errorf("routes[0] = %+v, want foreign default route", routes[0])
	}
	if st := eng.Status(); st.KernelOwned != 1 || st.Phase != rib.PhaseRunning {
		t.Errorf("Status = %+v, want 1 owned route while RUNNING", st)
	}
}

// TestReconcileKeepsMatchingRoutes adopts owned kernel routes that already
// match and writes nothing.
func TestReconcileKeepsMatchingRoutes(t *testing.T) {
	t.Parallel()

	k := newFakeKernel()
	k.owned[pfx("10.3.0.0/16")] = []rib.NextHop{dev("eth3"), addr("1.1.1.2")}

	src := scenarioSource()
	src.snap.Routes = []rib.RouteConfig{
		{Prefix: pfx("10.3.0.0/16"), Protocol: rib.ProtocolStatic, NextHops: []rib.NextHop{addr("1.1.1.2"), dev("eth3")}},
	}

	eng, stop := startEngine(t, k, src)
	defer stop()

	if replaces, deletes := k.counts(); replaces != 0 || deletes != 0 {
		t.Errorf("kernel writes = %d replaces %d deletes, want none", replaces, deletes)
	}
	fib := eng.ShowFIB(pfx("10.3.0.0/16"))
	if len(fib) != 1 || !fib[0].Installed {
		t.Errorf("FIB = %+v, want adopted installed entry", fib)
	}
}

// TestOldestTieBreakAfterRestart shows that route age does not survive a
// restart: the rebuild creates stored routes in store order, and "oldest"
// then prefers whichever route the store lists first.
func TestOldestTieBreakAfterRestart(t *testing.T) {
	t.Parallel()

	p := pfx("171.0.0.0/24")
	bgp := rib.RouteConfig{Prefix: p, Protocol: rib.ProtocolBGP, Distance: 20, NextHops: []rib.NextHop{addr("5.5.5.1")}}
	static := rib.RouteConfig{Prefix: p, Protocol: rib.ProtocolStatic, Distance: 20, NextHops: []rib.NextHop{addr("1.1.1.2")}}

	tests := []struct {
		name   string
		routes []rib.RouteConfig
		want   rib.Protocol
	}{
		{name: "bgp stored first", routes: []rib.RouteConfig{bgp, static}, want: rib.ProtocolBGP},
		{name: "static stored first", routes: []rib.RouteConfig{static, bgp}, want: rib.ProtocolStatic},
	}
	for _, tt := range tests {
		src := scenarioSource()
		src.snap.Routes = tt.routes

		eng, stop := startEngine(t, newFakeKernel(), src,
			rib.WithPolicy(rib.Policy{TieBreak: rib.TieBreakOldest}))
		fib := eng.ShowFIB(p)
		stop()

		if len(fib) != 1 || fib[0].Protocol != tt.want {
			t.Errorf("%s: FIB = %+v, want %s", tt.name, fib, tt.want)
		}
	}
}

// TestReconcileAppliesLiveLinkState reads live link state before
// rebuilding: next-hops through a down link are inactive after restart.
func TestReconcileAppliesLiveLinkState(t *testing.T) {
	t.Parallel()

	k := newFakeKernel()
	src := scenarioSource()
	src.snap.Routes = []rib.RouteConfig{
		{Prefix: pfx("10.4.0.0/16"), Protocol: rib.ProtocolStatic, NextHops: []rib.NextHop{addr("1.1.1.2"), dev("eth3")}},
	}
	links := linkStates{"eth1": false, "eth3": true}

	eng, stop := startEngine(t, k, src, rib.WithLinkStates(links))
	defer stop()

	if diff := cmp.Diff([]rib.NextHop{dev("eth3")}, fibNextHops(eng, pfx("10.4.0.0/16")), netipComparers); diff != "" {
		t.Errorf("FIB next-hops mismatch (-want +got):\n%s", diff)
	}
	for _, ifc := range eng.Interfaces() {
		if ifc.Name == "eth1" && ifc.OperUp {
			t.Error("eth1 reported oper up")
		}
	}
}

type linkStates map[string]bool

func (l linkStates) LinkStates(context.Context) (map[string]bool, error) {
	out := make(map[string]bool, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out, nil
}

// TestReconcileRejectsInvalidEntries skips malformed persisted entries and
// records them in the rebuild history entry.
func TestReconcileRejectsInvalidEntries(t *testing.T) {
	t.Parallel()

	src := scenarioSource()
	src.snap.Routes = []rib.RouteConfig{
		{Prefix: pfx("10.5.0.0/16"), Protocol: rib.ProtocolStatic, NextHops: []rib.NextHop{addr("2001:db8::1")}},
		{Prefix: pfx("10.6.0.0/16"), Protocol: rib.ProtocolStatic, NextHops: []rib.NextHop{addr("1.1.1.2")}},
	}

	eng, stop := startEngine(t, newFakeKernel(), src)
	defer stop()

	if got := eng.ShowRIB(pfx("10.5.0.0/16")); len(got) != 0 {
		t.Errorf("invalid route reached the RIB: %+v", got)
	}
	if got := fibNextHops(eng, pfx("10.6.0.0/16")); len(got) != 1 {
		t.Errorf("valid route FIB next-hops = %v, want 1", got)
	}
	events := eng.Events()
	if len(events) == 0 || events[0].Type != "rebuild" || events[0].Err == "" {
		t.Errorf("events = %+v, want rebuild entry with rejection", events)
	}
}

// -------------------------------------------------------------------------
// Failure handling
// -------------------------------------------------------------------------

// TestReconcileStoreUnavailable never reaches RUNNING and leaves the kernel
// untouched when the store cannot be read.
func TestReconcileStoreUnavailable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		k := newFakeKernel()
		k.owned[pfx("10.7.0.0/16")] = []rib.NextHop{addr("1.1.1.2")}
		src := scenarioSource()
		src.err = errors.New("connection refused")

		eng := rib.NewEngine(discardLogger(), k, src, fastLoadRetry())
		err := runUntilDone(t, eng)
		if !errors.Is(err, rib.ErrStoreUnavailable) {
			t.Fatalf("Run: err = %v, want ErrStoreUnavailable", err)
		}
		if got := eng.Phase(); got != rib.PhaseFailed {
			t.Errorf("Phase = %s, want FAILED", got)
		}
		if st := eng.Status(); st.LastError == "" {
			t.Error("Status.LastError is empty")
		}
		if replaces, deletes := k.counts(); replaces != 0 || deletes != 0 {
			t.Errorf("kernel writes = %d/%d, want none", replaces, deletes)
		}
		select {
		case <-eng.Ready():
			t.Error("Ready closed after failed reconciliation")
		default:
		}
	})
}

// TestReconcileStoreRetrySucceeds recovers from transient store failures.
func TestReconcileStoreRetrySucceeds(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		src := scenarioSource()
		src.failures = 2

		eng := rib.NewEngine(discardLogger(), newFakeKernel(), src, fastLoadRetry())
		if err := runUntilDone(t, eng); err != nil {
			t.Fatalf("Run: %v", err)
		}
		src.mu.Lock()
		loads := src.loads
		src.mu.Unlock()
		if loads != 3 {
			t.Errorf("loads = %d, want 3", loads)
		}
	})
}

// TestReconcileKernelUnavailable fails when the kernel table cannot be
// listed.
func TestReconcileKernelUnavailable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		k := newFakeKernel()
		k.listErr = errors.New("netlink socket closed")

		eng := rib.NewEngine(discardLogger(), k, scenarioSource(), fastLoadRetry())
		if err := runUntilDone(t, eng); !errors.Is(err, rib.ErrKernelUnavailable) {
			t.Errorf("Run: err = %v, want ErrKernelUnavailable", err)
		}
	})
}

// TestReconcileSuspectEmptyConfig refuses to flush owned kernel routes on
// an empty configuration unless explicitly allowed.
func TestReconcileSuspectEmptyConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		allow     bool
		wantErr   error
		wantOwned int
	}{
		{name: "guarded", allow: false, wantErr: rib.ErrSuspectEmptyConfig, wantOwned: 2},
		{name: "flush allowed", allow: true, wantErr: nil, wantOwned: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			k := newFakeKernel()
			k.owned[pfx("10.8.0.0/16")] = []rib.NextHop{addr("1.1.1.2")}
			k.owned[pfx("10.9.0.0/16")] = []rib.NextHop{addr("1.1.1.2")}

			eng := rib.NewEngine(discardLogger(), k, &memSource{}, rib.WithAllowEmptyFlush(tt.allow))
			err := runUntilDone(t, eng)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run: err = %v, want %v", err, tt.wantErr)
			}
			if got := len(k.table()); got != tt.wantOwned {
				t.Errorf("owned kernel routes = %d, want %d", got, tt.wantOwned)
			}
		})
	}
}

// TestRunCancelledDuringReconcile returns nil when the context ends while
// the store is still loading.
func TestRunCancelledDuringReconcile(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		src := scenarioSource()
		src.block = make(chan struct{})

		ctx, cancel := context.WithCancel(context.Background())
		eng := rib.NewEngine(discardLogger(), newFakeKernel(), src)
		errCh := make(chan error, 1)
		go func() { errCh <- eng.Run(ctx) }()

		synctest.Wait()
		cancel()
		if err := <-errCh; err != nil {
			t.Errorf("Run: %v", err)
		}
		if got := eng.Phase(); got != rib.PhaseStopped {
			t.Errorf("Phase = %s, want STOPPED", got)
		}
	})
}

// -------------------------------------------------------------------------
// Restart convergence
// -------------------------------------------------------------------------

var (
	restartPrefixes = []string{"30.0.0.0/24", "30.0.1.0/24", "30.0.2.0/24", "30.0.3.0/24", "2001:db8:30::/48"}
	restartV4Hops   = []rib.NextHop{addr("1.1.1.2"), addr("2.2.2.2"), addr("3.3.3.3"), addr("5.5.5.1"), dev("eth2"), dev("eth4")}
	restartV6Hops   = []rib.NextHop{addr("2001:db8:1::2"), dev("eth1")}
)

// randomSnapshot returns a random configuration over a fixed interface
// and prefix universe.
func randomSnapshot(rng *rand.Rand) rib.ConfigSnapshot {
	base := []rib.Interface{
		iface("eth1", true, "1.1.1.1/24", "2001:db8:1::1/64"),
		iface("eth2", true, "2.2.2.1/24"),
		iface("eth3", true, "3.3.3.1/24"),
		iface("eth4", true, "5.5.5.2/24"),
	}
	var snap rib.ConfigSnapshot
	for _, ifc := range base {
		ifc.AdminUp = rng.IntN(4) != 0
		snap.Interfaces = append(snap.Interfaces, ifc)
	}

	for _, p := range restartPrefixes {
		prefix := pfx(p)
		pool := restartV4Hops
		if prefix.Addr().Is6() {
			pool = restartV6Hops
		}
		for _, proto := range []rib.Protocol{rib.ProtocolStatic, rib.ProtocolBGP} {
			if rng.IntN(2) == 0 {
				continue
			}
			rc := rib.RouteConfig{
				Prefix:   prefix,
				Protocol: proto,
				Distance: []uint32{5, 10, 20}[rng.IntN(3)],
				Metric:   uint32(rng.IntN(3)),
			}
			for _, i := range rng.Perm(len(pool))[:1+rng.IntN(len(pool))] {
				rc.NextHops = append(rc.NextHops, pool[i])
			}
			snap.Routes = append(snap.Routes, rc)
		}
	}
	return snap
}

var (
	sortRIB = cmpopts.SortSlices(func(a, b rib.RIBEntry) bool {
		return fmt.Sprint(a.Prefix, a.Protocol, a.NextHop) < fmt.Sprint(b.Prefix, b.Protocol, b.NextHop)
	})
	sortNextHops = cmpopts.SortSlices(func(a, b rib.NextHop) bool { return a.String() < b.String() })
)

// TestRestartConvergence drives a live engine through random configuration
// changes, then restarts against the final stored configuration from
// several kernel states. Every restart must converge to the RIB, FIB and
// kernel table of the live engine.
func TestRestartConvergence(t *testing.T) {
	t.Parallel()

	for seed := range uint64(8) {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewPCG(seed, 42))

			// Live engine: apply a sequence of configuration diffs.
			k := newFakeKernel()
			src := &memSource{}
			live, stopLive := startEngine(t, k, src, rib.WithAllowEmptyFlush(true))

			var prev rib.ConfigSnapshot
			var final rib.ConfigSnapshot
			for range 6 {
				next := randomSnapshot(rng)
				submit(t, live, rib.DiffSnapshots(&prev, &next)...)
				prev, final = next, next
			}
			src.set(final)

			wantRIB := live.ShowRIB(netip.Prefix{})
			wantFIB := live.ShowFIB(netip.Prefix{})
			wantKernel := k.table()
			stopLive()

			check := func(t *testing.T, name string, eng *rib.Engine, kernel *fakeKernel) {
				t.Helper()
				if diff := cmp.Diff(wantRIB, eng.ShowRIB(netip.Prefix{}), netipComparers, sortRIB); diff != "" {
					t.Errorf("%s: RIB mismatch (-live +restarted):\n%s", name, diff)
				}
				if diff := cmp.Diff(wantFIB, eng.ShowFIB(netip.Prefix{}), netipComparers, sortNextHops); diff != "" {
					t.Errorf("%s: FIB mismatch (-live +restarted):\n%s", name, diff)
				}
				got := kernel.table()
				for _, p := range sortedKeys(got) {
					if _, ok := wantKernel[p]; !ok {
						t.Errorf("%s: stale kernel route %s survived restart", name, p)
					}
				}
				if diff := cmp.Diff(wantKernel, got, netipComparers, sortNextHops, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s: kernel mismatch (-live +restarted):\n%s", name, diff)
				}
			}

			// Crash and restart with the kernel exactly as left.
			eng, stop := startEngine(t, k, src, rib.WithAllowEmptyFlush(true))
			check(t, "unchanged kernel", eng, k)
			stop()

			// Restart against a kernel carrying stale and wrong owned
			// routes from a run whose changes were never persisted.
			dirty := newFakeKernel()
			dirty.owned[pfx("30.9.0.0/16")] = []rib.NextHop{addr("1.1.1.2")}
			for p := range wantKernel {
				dirty.owned[p] = []rib.NextHop{dev("eth3")}
				break
			}
			eng, stop = startEngine(t, dirty, src, rib.WithAllowEmptyFlush(true))
			check(t, "dirty kernel", eng, dirty)
			stop()

			// Cold start on an empty kernel.
			cold := newFakeKernel()
			eng, stop = startEngine(t, cold, src, rib.WithAllowEmptyFlush(true))
			check(t, "empty kernel", eng, cold)
			stop()
		})
	}
}
