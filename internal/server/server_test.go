package server_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"slices"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/dantte-lp/goribd/internal/kernel"
	"github.com/dantte-lp/goribd/internal/rib"
	"github.com/dantte-lp/goribd/internal/server"
	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
	"github.com/dantte-lp/goribd/pkg/ribpb/rib/v1/ribv1connect"
)

const (
	// testIface is the routed interface configured by setupRouted.
	testIface = "eth0"
	// testIfaceAddr is a documentation address (RFC 5737) on testIface.
	testIfaceAddr = "192.0.2.1/24"
	// testGateway is a next-hop reachable through testIface.
	testGateway = "192.0.2.254"
	// testPrefix is a documentation prefix (RFC 5737) used as destination.
	testPrefix = "198.51.100.0/24"
)

// -------------------------------------------------------------------------
// Test Helpers
// -------------------------------------------------------------------------

// emptySource is a configuration store with nothing persisted.
type emptySource struct{}

func (emptySource) Load(context.Context) (*rib.ConfigSnapshot, error) {
	return &rib.ConfigSnapshot{}, nil
}

// testEnv is a running engine behind a real HTTP server.
type testEnv struct {
	client ribv1connect.RibServiceClient
	kernel *kernel.Memory
}

// startEngine runs an engine over an in-memory kernel until the test ends
// and waits for it to reach RUNNING.
func startEngine(t *testing.T) (*rib.Engine, *kernel.Memory) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	mem := kernel.NewMemory(logger)
	engine := rib.NewEngine(logger, mem, emptySource{}, rib.WithLinkStates(mem))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- engine.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		if err := <-errCh; err != nil {
			t.Errorf("engine.Run: %v", err)
		}
	})

	select {
	case <-engine.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("engine did not become ready")
	}
	return engine, mem
}

// setupTestServer creates a real HTTP server backed by a running engine and
// returns a client connected to it.
func setupTestServer(t *testing.T, opts ...connect.HandlerOption) testEnv {
	t.Helper()

	engine, mem := startEngine(t)

	path, handler := server.New(engine, slog.New(slog.DiscardHandler), opts...)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return testEnv{
		client: ribv1connect.NewRibServiceClient(srv.Client(), srv.URL),
		kernel: mem,
	}
}

// setupRouted configures testIface with testIfaceAddr.
func setupRouted(t *testing.T, client ribv1connect.RibServiceClient) {
	t.Helper()

	_, err := client.SetInterface(context.Background(), &ribv1.SetInterfaceRequest{
		Interface: &ribv1.Interface{
			Name:      testIface,
			AdminUp:   true,
			Routing:   true,
			Addresses: []string{testIfaceAddr},
		},
	})
	if err != nil {
		t.Fatalf("SetInterface: %v", err)
	}
}

func addStatic(t *testing.T, client ribv1connect.RibServiceClient, prefix, nh string) {
	t.Helper()

	_, err := client.AddRoute(context.Background(), &ribv1.AddRouteRequest{
		Prefix:   prefix,
		Protocol: "static",
		NextHop:  nh,
	})
	if err != nil {
		t.Fatalf("AddRoute(%s via %s): %v", prefix, nh, err)
	}
}

// requireCode fails the test unless err is a connect error with code want.
func requireCode(t *testing.T, err error, want connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect.Error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("code = %s, want %s", connectErr.Code(), want)
	}
}

// -------------------------------------------------------------------------
// TestAddRoute
// -------------------------------------------------------------------------

func TestAddRoute(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	setupRouted(t, env.client)
	addStatic(t, env.client, testPrefix, testGateway)

	fib, err := env.client.ShowFIB(context.Background(), &ribv1.ShowFIBRequest{Prefix: testPrefix})
	if err != nil {
		t.Fatalf("ShowFIB: %v", err)
	}
	if len(fib.Entries) != 1 {
		t.Fatalf("FIB entries = %d, want 1", len(fib.Entries))
	}

	got := fib.Entries[0]
	if got.Protocol != "static" {
		t.Errorf("Protocol = %q, want static", got.Protocol)
	}
	if got.Distance != rib.DistanceStatic {
		t.Errorf("Distance = %d, want %d", got.Distance, rib.DistanceStatic)
	}
	if !slices.Equal(got.NextHops, []string{testGateway}) {
		t.Errorf("NextHops = %v, want [%s]", got.NextHops, testGateway)
	}
	if !got.Installed {
		t.Error("route not installed")
	}

	if len(fib.Routes) != 1 {
		t.Fatalf("route dicts = %d, want 1", len(fib.Routes))
	}
	dict := fib.Routes[0]
	if dict.Route != testPrefix || dict.NumberNexthops != "1" {
		t.Errorf("route dict = %+v, want %s with 1 next-hop", dict, testPrefix)
	}
	if attrs := dict.GetNextHops()[testGateway]; attrs.GetRouteType() != "static" || attrs.GetDistance() != "1" {
		t.Errorf("next-hop attrs = %+v, want static distance 1", attrs)
	}

	if _, ok := env.kernel.Owned()[netip.MustParsePrefix(testPrefix)]; !ok {
		t.Error("kernel does not hold the route")
	}
}

// -------------------------------------------------------------------------
// TestAddRouteInvalidArgs
// -------------------------------------------------------------------------

func TestAddRouteInvalidArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  *ribv1.AddRouteRequest
	}{
		{
			name: "invalid prefix",
			req:  &ribv1.AddRouteRequest{Prefix: "not-a-prefix", Protocol: "static", NextHop: testGateway},
		},
		{
			name: "unknown protocol",
			req:  &ribv1.AddRouteRequest{Prefix: testPrefix, Protocol: "ospf", NextHop: testGateway},
		},
		{
			name: "connected is derived",
			req:  &ribv1.AddRouteRequest{Prefix: testPrefix, Protocol: "connected", NextHop: testIface},
		},
		{
			name: "unspecified next-hop",
			req:  &ribv1.AddRouteRequest{Prefix: testPrefix, Protocol: "static", NextHop: "0.0.0.0"},
		},
		{
			name: "family mismatch",
			req:  &ribv1.AddRouteRequest{Prefix: testPrefix, Protocol: "static", NextHop: "2001:db8::1"},
		},
		{
			name: "empty next-hop",
			req:  &ribv1.AddRouteRequest{Prefix: testPrefix, Protocol: "static"},
		},
	}

	env := setupTestServer(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := env.client.AddRoute(context.Background(), tt.req)
			requireCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

// -------------------------------------------------------------------------
// TestAttrConflict
// -------------------------------------------------------------------------

func TestAttrConflict(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	setupRouted(t, env.client)
	addStatic(t, env.client, testPrefix, testGateway)

	_, err := env.client.AddRoute(context.Background(), &ribv1.AddRouteRequest{
		Prefix:   testPrefix,
		Protocol: "static",
		Distance: 50,
		NextHop:  "192.0.2.253",
	})
	requireCode(t, err, connect.CodeFailedPrecondition)
}

// -------------------------------------------------------------------------
// TestRemoveRoute
// -------------------------------------------------------------------------

func TestRemoveRoute(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	setupRouted(t, env.client)
	addStatic(t, env.client, testPrefix, testGateway)
	addStatic(t, env.client, testPrefix, "192.0.2.253")

	ctx := context.Background()

	// One next-hop.
	if _, err := env.client.RemoveRoute(ctx, &ribv1.RemoveRouteRequest{
		Prefix: testPrefix, Protocol: "static", NextHop: testGateway,
	}); err != nil {
		t.Fatalf("RemoveRoute next-hop: %v", err)
	}

	fib, err := env.client.ShowFIB(ctx, &ribv1.ShowFIBRequest{Prefix: testPrefix})
	if err != nil {
		t.Fatalf("ShowFIB: %v", err)
	}
	if len(fib.Entries) != 1 || !slices.Equal(fib.Entries[0].NextHops, []string{"192.0.2.253"}) {
		t.Fatalf("FIB after next-hop removal = %+v", fib.Entries)
	}

	// Whole route.
	if _, err := env.client.RemoveRoute(ctx, &ribv1.RemoveRouteRequest{
		Prefix: testPrefix, Protocol: "static",
	}); err != nil {
		t.Fatalf("RemoveRoute route: %v", err)
	}

	ribResp, err := env.client.ShowRIB(ctx, &ribv1.ShowRIBRequest{Prefix: testPrefix})
	if err != nil {
		t.Fatalf("ShowRIB: %v", err)
	}
	if len(ribResp.Entries) != 0 {
		t.Errorf("RIB entries after withdraw = %+v, want none", ribResp.Entries)
	}
	if len(env.kernel.Owned()) != 0 {
		t.Errorf("kernel still owns %v", env.kernel.Owned())
	}
}

// -------------------------------------------------------------------------
// TestSetRouteAttrs
// -------------------------------------------------------------------------

func TestSetRouteAttrs(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	setupRouted(t, env.client)
	addStatic(t, env.client, testPrefix, testGateway)

	ctx := context.Background()
	if _, err := env.client.SetRouteAttrs(ctx, &ribv1.SetRouteAttrsRequest{
		Prefix: testPrefix, Protocol: "static", Distance: 150, Metric: 7,
	}); err != nil {
		t.Fatalf("SetRouteAttrs: %v", err)
	}

	fib, err := env.client.ShowFIB(ctx, &ribv1.ShowFIBRequest{Prefix: testPrefix})
	if err != nil {
		t.Fatalf("ShowFIB: %v", err)
	}
	if len(fib.Entries) != 1 {
		t.Fatalf("FIB entries = %d, want 1", len(fib.Entries))
	}
	if e := fib.Entries[0]; e.Distance != 150 || e.Metric != 7 {
		t.Errorf("attrs = %d/%d, want 150/7", e.Distance, e.Metric)
	}

	_, err = env.client.SetRouteAttrs(ctx, &ribv1.SetRouteAttrsRequest{
		Prefix: "203.0.113.0/24", Protocol: "static", Distance: 10,
	})
	requireCode(t, err, connect.CodeNotFound)
}

// -------------------------------------------------------------------------
// TestInterfaces
// -------------------------------------------------------------------------

func TestInterfaces(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	setupRouted(t, env.client)
	addStatic(t, env.client, testPrefix, testGateway)

	ctx := context.Background()

	if _, err := env.client.AddAddress(ctx, &ribv1.AddAddressRequest{
		Interface: testIface, Address: "2001:db8::1/64",
	}); err != nil {
		t.Fatalf("AddAddress: %v", err)
	}

	resp, err := env.client.ListInterfaces(ctx, &ribv1.ListInterfacesRequest{})
	if err != nil {
		t.Fatalf("ListInterfaces: %v", err)
	}
	if len(resp.Interfaces) != 1 {
		t.Fatalf("interfaces = %d, want 1", len(resp.Interfaces))
	}
	ifc := resp.Interfaces[0]
	if ifc.Name != testIface || !ifc.OperUp || !ifc.AdminUp {
		t.Errorf("interface = %+v, want %s admin and oper up", ifc, testIface)
	}
	if !slices.Contains(ifc.Addresses, "2001:db8::1/64") {
		t.Errorf("addresses = %v, want 2001:db8::1/64", ifc.Addresses)
	}

	// Link down deactivates the gateway and removes the FIB entry.
	if _, err := env.client.SetLinkState(ctx, &ribv1.SetLinkStateRequest{Name: testIface}); err != nil {
		t.Fatalf("SetLinkState: %v", err)
	}
	fib, err := env.client.ShowFIB(ctx, &ribv1.ShowFIBRequest{Prefix: testPrefix})
	if err != nil {
		t.Fatalf("ShowFIB: %v", err)
	}
	if len(fib.Entries) != 0 {
		t.Errorf("FIB entries with link down = %+v, want none", fib.Entries)
	}

	ribResp, err := env.client.ShowRIB(ctx, &ribv1.ShowRIBRequest{Prefix: testPrefix})
	if err != nil {
		t.Fatalf("ShowRIB: %v", err)
	}
	if len(ribResp.Entries) != 1 || ribResp.Entries[0].Active {
		t.Errorf("RIB entries with link down = %+v, want one inactive", ribResp.Entries)
	}

	if _, err := env.client.RemoveInterface(ctx, &ribv1.RemoveInterfaceRequest{Name: testIface}); err != nil {
		t.Fatalf("RemoveInterface: %v", err)
	}
	resp, err = env.client.ListInterfaces(ctx, &ribv1.ListInterfacesRequest{})
	if err != nil {
		t.Fatalf("ListInterfaces: %v", err)
	}
	if len(resp.Interfaces) != 0 {
		t.Errorf("interfaces after remove = %+v, want none", resp.Interfaces)
	}
}

func TestAddAddressErrors(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	ctx := context.Background()

	_, err := env.client.AddAddress(ctx, &ribv1.AddAddressRequest{Interface: "eth9", Address: "10.9.0.1/24"})
	requireCode(t, err, connect.CodeNotFound)

	_, err = env.client.AddAddress(ctx, &ribv1.AddAddressRequest{Interface: "eth9", Address: "bogus"})
	requireCode(t, err, connect.CodeInvalidArgument)
}

// -------------------------------------------------------------------------
// TestStatus
// -------------------------------------------------------------------------

func TestStatus(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	setupRouted(t, env.client)
	addStatic(t, env.client, testPrefix, testGateway)

	st, err := env.client.Status(context.Background(), &ribv1.StatusRequest{})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}

	if st.Phase != rib.PhaseRunning.String() {
		t.Errorf("Phase = %q, want RUNNING", st.Phase)
	}
	if st.Routes["static"] != 1 {
		t.Errorf("static routes = %d, want 1", st.Routes["static"])
	}
	if st.Routes["connected"] != 1 {
		t.Errorf("connected routes = %d, want 1", st.Routes["connected"])
	}
	if st.Interfaces != 1 {
		t.Errorf("Interfaces = %d, want 1", st.Interfaces)
	}
	if st.KernelOwned != 1 {
		t.Errorf("KernelOwned = %d, want 1", st.KernelOwned)
	}
	if st.Version == "" {
		t.Error("Version is empty")
	}
}

// -------------------------------------------------------------------------
// TestListEvents
// -------------------------------------------------------------------------

func TestListEvents(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	setupRouted(t, env.client)
	addStatic(t, env.client, testPrefix, testGateway)

	// Rejected events are recorded too.
	_, _ = env.client.AddAddress(context.Background(), &ribv1.AddAddressRequest{Interface: "eth9", Address: "10.9.0.1/24"})

	resp, err := env.client.ListEvents(context.Background(), &ribv1.ListEventsRequest{})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}

	var types []string
	var rejected int
	for _, ev := range resp.Events {
		types = append(types, ev.Type)
		if ev.Error != "" {
			rejected++
		}
	}
	for _, want := range []string{rib.EventInterfaceSet, rib.EventRouteAdd, rib.EventAddressAdd} {
		if !slices.Contains(types, want) {
			t.Errorf("events %v missing %s", types, want)
		}
	}
	if rejected != 1 {
		t.Errorf("rejected events = %d, want 1", rejected)
	}
}

// -------------------------------------------------------------------------
// TestShowKernelRoutes
// -------------------------------------------------------------------------

func TestShowKernelRoutes(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	env.kernel.AddForeign(rib.KernelRoute{
		Prefix:   netip.MustParsePrefix("203.0.113.0/24"),
		NextHops: []rib.NextHop{rib.IfaceNextHop("lo")},
		Source:   "boot",
	})
	setupRouted(t, env.client)
	addStatic(t, env.client, testPrefix, testGateway)

	resp, err := env.client.ShowKernelRoutes(context.Background(), &ribv1.ShowKernelRoutesRequest{})
	if err != nil {
		t.Fatalf("ShowKernelRoutes: %v", err)
	}

	owned := make(map[string]bool)
	for _, kr := range resp.Routes {
		owned[kr.Prefix] = kr.Owned
	}
	if got, ok := owned[testPrefix]; !ok || !got {
		t.Errorf("%s owned = %v (present %v), want owned", testPrefix, got, ok)
	}
	if got, ok := owned["203.0.113.0/24"]; !ok || got {
		t.Errorf("foreign route owned = %v (present %v), want foreign", got, ok)
	}
}

// -------------------------------------------------------------------------
// TestWatchFIB
// -------------------------------------------------------------------------

func TestWatchFIB(t *testing.T) {
	t.Parallel()

	env := setupTestServer(t)
	setupRouted(t, env.client)
	addStatic(t, env.client, testPrefix, testGateway)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := env.client.WatchFIB(ctx, &ribv1.WatchFIBRequest{IncludeCurrent: true})
	if err != nil {
		t.Fatalf("WatchFIB: %v", err)
	}
	defer stream.Close()

	// The current entries arrive first: the connected route and testPrefix.
	seen := make(map[string]bool)
	for len(seen) < 2 {
		if !stream.Receive() {
			t.Fatalf("stream ended early: %v", stream.Err())
		}
		seen[stream.Msg().Prefix] = true
	}
	if !seen[testPrefix] {
		t.Fatalf("current entries %v missing %s", seen, testPrefix)
	}

	if _, err := env.client.RemoveRoute(ctx, &ribv1.RemoveRouteRequest{
		Prefix: testPrefix, Protocol: "static",
	}); err != nil {
		t.Fatalf("RemoveRoute: %v", err)
	}

	if !stream.Receive() {
		t.Fatalf("no change received: %v", stream.Err())
	}
	got := stream.Msg()
	if got.Prefix != testPrefix || !got.Removed {
		t.Errorf("change = %+v, want removal of %s", got, testPrefix)
	}
}
