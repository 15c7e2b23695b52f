//go:build integration

package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dantte-lp/goribd/internal/kernel"
	"github.com/dantte-lp/goribd/internal/rib"
	"github.com/dantte-lp/goribd/internal/server"
	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
	"github.com/dantte-lp/goribd/pkg/ribpb/rib/v1/ribv1connect"
)

const readyTimeout = 5 * time.Second

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func pfx(s string) netip.Prefix { return netip.MustParsePrefix(s) }

func addr(s string) rib.NextHop { return rib.AddrNextHop(netip.MustParseAddr(s)) }

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func configPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "goribd.yml")
}

// daemon is one running engine generation over a shared kernel table.
type daemon struct {
	engine *rib.Engine
	errCh  chan error
	cancel context.CancelFunc
}

// startDaemon runs an engine over mem until stop is called or the test
// ends. It does not wait for the engine to become ready.
func startDaemon(t *testing.T, mem *kernel.Memory, src rib.ConfigSource, opts ...rib.EngineOption) *daemon {
	t.Helper()

	opts = append([]rib.EngineOption{rib.WithLinkStates(mem)}, opts...)
	eng := rib.NewEngine(discardLogger(), mem, src, opts...)

	ctx, cancel := context.WithCancel(t.Context())
	d := &daemon{engine: eng, errCh: make(chan error, 1), cancel: cancel}
	go func() { d.errCh <- eng.Run(ctx) }()
	t.Cleanup(func() { d.stop(t) })
	return d
}

func (d *daemon) waitReady(t *testing.T) {
	t.Helper()
	select {
	case <-d.engine.Ready():
	case err := <-d.errCh:
		d.errCh <- err
		t.Fatalf("engine exited before ready: %v", err)
	case <-time.After(readyTimeout):
		t.Fatalf("engine not ready, phase %s", d.engine.Phase())
	}
}

// stop cancels the engine and waits for Run to return. It is safe to call
// more than once.
func (d *daemon) stop(t *testing.T) {
	t.Helper()
	d.cancel()
	<-d.engine.Done()
}

// wait returns the Run result without cancelling the engine.
func (d *daemon) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-d.errCh:
		return err
	case <-time.After(readyTimeout):
		t.Fatal("engine still running")
		return nil
	}
}

// serve exposes eng over an in-process RibService server.
func serve(t *testing.T, eng *rib.Engine) ribv1connect.RibServiceClient {
	t.Helper()

	logger := discardLogger()
	path, handler := server.New(eng, logger,
		server.LoggingInterceptorOption(logger),
		server.RecoveryInterceptorOption(logger),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return ribv1connect.NewRibServiceClient(srv.Client(), srv.URL)
}

// fibEntry returns the FIB entry for prefix, failing when it is absent.
func fibEntry(t *testing.T, client ribv1connect.RibServiceClient, prefix string) *ribv1.FIBEntry {
	t.Helper()

	resp, err := client.ShowFIB(t.Context(), &ribv1.ShowFIBRequest{Prefix: prefix})
	if err != nil {
		t.Fatalf("ShowFIB(%s): %v", prefix, err)
	}
	if len(resp.Entries) != 1 {
		t.Fatalf("ShowFIB(%s) returned %d entries, want 1", prefix, len(resp.Entries))
	}
	return resp.Entries[0]
}
