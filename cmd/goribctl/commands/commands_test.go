package commands

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
	"github.com/dantte-lp/goribd/pkg/ribpb/rib/v1/ribv1connect"
)

// fakeService records mutations and serves a fixed RIB.
type fakeService struct {
	ribv1connect.UnimplementedRibServiceHandler

	mu      sync.Mutex
	adds    []*ribv1.AddRouteRequest
	removes []*ribv1.RemoveRouteRequest
	attrs   []*ribv1.SetRouteAttrsRequest
	links   []*ribv1.SetLinkStateRequest
}

func (f *fakeService) AddRoute(_ context.Context, req *ribv1.AddRouteRequest) (*ribv1.AddRouteResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds = append(f.adds, req)
	return &ribv1.AddRouteResponse{}, nil
}

func (f *fakeService) RemoveRoute(_ context.Context, req *ribv1.RemoveRouteRequest) (*ribv1.RemoveRouteResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removes = append(f.removes, req)
	return &ribv1.RemoveRouteResponse{}, nil
}

func (f *fakeService) SetRouteAttrs(_ context.Context, req *ribv1.SetRouteAttrsRequest) (*ribv1.SetRouteAttrsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attrs = append(f.attrs, req)
	return &ribv1.SetRouteAttrsResponse{}, nil
}

func (f *fakeService) SetLinkState(_ context.Context, req *ribv1.SetLinkStateRequest) (*ribv1.SetLinkStateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.links = append(f.links, req)
	return &ribv1.SetLinkStateResponse{}, nil
}

func (f *fakeService) ShowRIB(_ context.Context, req *ribv1.ShowRIBRequest) (*ribv1.ShowRIBResponse, error) {
	entry := &ribv1.RIBEntry{
		Prefix: "10.1.0.0/16", Protocol: "static", Distance: 5, Metric: 9,
		NextHop: "10.0.0.2", Active: true, Selected: true,
	}
	if req.GetPrefix() != "" && req.GetPrefix() != entry.GetPrefix() {
		return &ribv1.ShowRIBResponse{}, nil
	}
	return &ribv1.ShowRIBResponse{Entries: []*ribv1.RIBEntry{entry}}, nil
}

// runCLI executes goribctl with args against svc and returns its output.
// Commands share package state and must not run in parallel.
func runCLI(t *testing.T, svc ribv1connect.RibServiceHandler, args ...string) (string, error) {
	t.Helper()

	path, handler := ribv1connect.NewRibServiceHandler(svc)
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Cleanup(func() {
		serverAddr = "localhost:50052"
		outputFormat = formatTable
	})

	root := newRootCmd(false)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--addr", strings.TrimPrefix(srv.URL, "http://")}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestRouteAdd(t *testing.T) {
	svc := &fakeService{}

	out, err := runCLI(t, svc, "route", "add", "10.1.0.0/16", "10.0.0.2", "--distance", "5", "--metric", "9")
	if err != nil {
		t.Fatalf("route add: %v", err)
	}
	if !strings.Contains(out, "added") {
		t.Errorf("output = %q", out)
	}

	if len(svc.adds) != 1 {
		t.Fatalf("AddRoute calls = %d, want 1", len(svc.adds))
	}
	got := svc.adds[0]
	if got.Prefix != "10.1.0.0/16" || got.NextHop != "10.0.0.2" || got.Protocol != "static" ||
		got.Distance != 5 || got.Metric != 9 {
		t.Errorf("request = %+v", got)
	}
}

func TestRouteDel(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantNH  string
		wantOut string
	}{
		{"next-hop", []string{"route", "del", "10.1.0.0/16", "10.0.0.2"}, "10.0.0.2", "via 10.0.0.2 removed"},
		{"whole route", []string{"route", "del", "10.1.0.0/16", "--protocol", "bgp"}, "", "Route 10.1.0.0/16 removed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}

			out, err := runCLI(t, svc, tt.args...)
			if err != nil {
				t.Fatalf("route del: %v", err)
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if len(svc.removes) != 1 || svc.removes[0].NextHop != tt.wantNH {
				t.Errorf("RemoveRoute requests = %+v", svc.removes)
			}
		})
	}
}

func TestRouteSetKeepsUnsetAttribute(t *testing.T) {
	svc := &fakeService{}

	if _, err := runCLI(t, svc, "route", "set", "10.1.0.0/16", "--metric", "20"); err != nil {
		t.Fatalf("route set: %v", err)
	}
	if len(svc.attrs) != 1 {
		t.Fatalf("SetRouteAttrs calls = %d, want 1", len(svc.attrs))
	}
	if got := svc.attrs[0]; got.Distance != 5 || got.Metric != 20 {
		t.Errorf("attrs = %d/%d, want 5/20", got.Distance, got.Metric)
	}
}

func TestRouteSetErrors(t *testing.T) {
	svc := &fakeService{}

	if _, err := runCLI(t, svc, "route", "set", "10.1.0.0/16"); !errors.Is(err, errNoAttrs) {
		t.Errorf("no flags: err = %v, want errNoAttrs", err)
	}
	if _, err := runCLI(t, svc, "route", "set", "10.9.0.0/16", "--distance", "3"); !errors.Is(err, errRouteNotFound) {
		t.Errorf("missing route: err = %v, want errRouteNotFound", err)
	}
	if len(svc.attrs) != 0 {
		t.Errorf("SetRouteAttrs called %d times, want 0", len(svc.attrs))
	}
}

func TestInterfaceLink(t *testing.T) {
	svc := &fakeService{}

	if _, err := runCLI(t, svc, "interface", "link", "eth1", "down"); err != nil {
		t.Fatalf("interface link: %v", err)
	}
	if len(svc.links) != 1 || svc.links[0].Name != "eth1" || svc.links[0].Up {
		t.Errorf("SetLinkState requests = %+v", svc.links)
	}
}

func TestRIBShowJSON(t *testing.T) {
	out, err := runCLI(t, &fakeService{}, "--format", "json", "rib", "show")
	if err != nil {
		t.Fatalf("rib show: %v", err)
	}
	// The fake serves entries without route dictionaries.
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("output = %q, want []", out)
	}
}

func TestUnimplementedProcedureFails(t *testing.T) {
	if _, err := runCLI(t, &fakeService{}, "status"); err == nil {
		t.Fatal("status against a service without Status succeeded")
	}
}
