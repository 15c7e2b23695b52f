package server_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"connectrpc.com/connect"

	"github.com/dantte-lp/goribd/internal/server"
	ribv1 "github.com/dantte-lp/goribd/pkg/ribpb/rib/v1"
	"github.com/dantte-lp/goribd/pkg/ribpb/rib/v1/ribv1connect"
)

// panicHandler panics on AddRoute calls.
// Used to test the RecoveryInterceptor.
type panicHandler struct {
	ribv1connect.UnimplementedRibServiceHandler
}

func (panicHandler) AddRoute(
	_ context.Context,
	_ *ribv1.AddRouteRequest,
) (*ribv1.AddRouteResponse, error) {
	panic("intentional test panic")
}

func (panicHandler) WatchFIB(
	_ context.Context,
	_ *ribv1.WatchFIBRequest,
	_ *connect.ServerStream[ribv1.WatchFIBResponse],
) error {
	panic("intentional stream panic")
}

// logRecord is one captured log line.
type logRecord struct {
	level     slog.Level
	msg       string
	procedure string
	code      string
}

// recordingHandler captures log records for level assertions.
type recordingHandler struct {
	mu      sync.Mutex
	records []logRecord
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	rec := logRecord{level: r.Level, msg: r.Message}
	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "procedure":
			rec.procedure = a.Value.String()
		case "code":
			rec.code = a.Value.String()
		}
		return true
	})
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, rec)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

// completed returns the "rpc completed" records for procedure.
func (h *recordingHandler) completed(procedure string) []logRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []logRecord
	for _, r := range h.records {
		if r.procedure == procedure && r.msg != "rpc stream opened" {
			out = append(out, r)
		}
	}
	return out
}

// setupPanicServer creates a test server that panics on AddRoute,
// using the given handler options (interceptors).
func setupPanicServer(
	t *testing.T,
	opts ...connect.HandlerOption,
) ribv1connect.RibServiceClient {
	t.Helper()

	path, handler := ribv1connect.NewRibServiceHandler(panicHandler{}, opts...)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return ribv1connect.NewRibServiceClient(srv.Client(), srv.URL)
}

// -------------------------------------------------------------------------
// TestLoggingInterceptor
// -------------------------------------------------------------------------

func TestLoggingInterceptorSuccess(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	env := setupTestServer(t, server.LoggingInterceptorOption(logger))

	resp, err := env.client.ShowRIB(context.Background(), &ribv1.ShowRIBRequest{})
	if err != nil {
		t.Fatalf("ShowRIB: %v", err)
	}
	if resp == nil {
		t.Fatal("response is nil")
	}
}

func TestLoggingInterceptorError(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	env := setupTestServer(t, server.LoggingInterceptorOption(logger))

	_, err := env.client.SetRouteAttrs(context.Background(), &ribv1.SetRouteAttrsRequest{
		Prefix:   testPrefix,
		Protocol: "static",
		Distance: 10,
	})
	requireCode(t, err, connect.CodeNotFound)
}

func TestLoggingInterceptorLevels(t *testing.T) {
	t.Parallel()

	h := &recordingHandler{}
	env := setupTestServer(t, server.LoggingInterceptorOption(slog.New(h)))
	setupRouted(t, env.client)
	ctx := context.Background()

	if _, err := env.client.ShowRIB(ctx, &ribv1.ShowRIBRequest{}); err != nil {
		t.Fatalf("ShowRIB: %v", err)
	}
	addStatic(t, env.client, testPrefix, testGateway)
	_, err := env.client.SetRouteAttrs(ctx, &ribv1.SetRouteAttrsRequest{
		Prefix:   "203.0.113.0/24",
		Protocol: "static",
		Distance: 10,
	})
	requireCode(t, err, connect.CodeNotFound)

	tests := []struct {
		procedure string
		level     slog.Level
		code      string
	}{
		{ribv1connect.RibServiceShowRIBProcedure, slog.LevelDebug, ""},
		{ribv1connect.RibServiceAddRouteProcedure, slog.LevelInfo, ""},
		{ribv1connect.RibServiceSetRouteAttrsProcedure, slog.LevelInfo, connect.CodeNotFound.String()},
	}
	for _, tt := range tests {
		recs := h.completed(tt.procedure)
		if len(recs) == 0 {
			t.Errorf("%s: not logged", tt.procedure)
			continue
		}
		last := recs[len(recs)-1]
		if last.level != tt.level || last.code != tt.code {
			t.Errorf("%s: logged at %v code %q, want %v code %q",
				tt.procedure, last.level, last.code, tt.level, tt.code)
		}
	}
}

func TestLoggingInterceptorServerErrorWarns(t *testing.T) {
	t.Parallel()

	h := &recordingHandler{}
	logger := slog.New(h)
	client := setupPanicServer(t,
		server.LoggingInterceptorOption(logger),
		server.RecoveryInterceptorOption(logger),
	)

	_, err := client.AddRoute(context.Background(), &ribv1.AddRouteRequest{
		Prefix:  testPrefix,
		NextHop: testGateway,
	})
	requireCode(t, err, connect.CodeInternal)

	recs := h.completed(ribv1connect.RibServiceAddRouteProcedure)
	var warned bool
	for _, r := range recs {
		if r.msg == "rpc completed with error" && r.level == slog.LevelWarn {
			warned = true
		}
	}
	if !warned {
		t.Errorf("internal error not logged at Warn: %+v", recs)
	}
}

// -------------------------------------------------------------------------
// TestRecoveryInterceptor
// -------------------------------------------------------------------------

func TestRecoveryInterceptorNoPanic(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	env := setupTestServer(t, server.RecoveryInterceptorOption(logger))

	resp, err := env.client.Status(context.Background(), &ribv1.StatusRequest{})
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if resp == nil {
		t.Fatal("response is nil")
	}
}

func TestRecoveryInterceptorPanic(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	client := setupPanicServer(t, server.RecoveryInterceptorOption(logger))

	_, err := client.AddRoute(context.Background(), &ribv1.AddRouteRequest{
		Prefix:   testPrefix,
		Protocol: "static",
		NextHop:  testGateway,
	})
	requireCode(t, err, connect.CodeInternal)
}

func TestRecoveryInterceptorStreamPanic(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	client := setupPanicServer(t, server.RecoveryInterceptorOption(logger))

	stream, err := client.WatchFIB(context.Background(), &ribv1.WatchFIBRequest{})
	if err != nil {
		t.Fatalf("WatchFIB: %v", err)
	}
	defer stream.Close()

	if stream.Receive() {
		t.Fatalf("received %+v from a panicking stream", stream.Msg())
	}
	requireCode(t, stream.Err(), connect.CodeInternal)
}

func TestUnimplementedProcedure(t *testing.T) {
	t.Parallel()

	client := setupPanicServer(t)

	_, err := client.ShowFIB(context.Background(), &ribv1.ShowFIBRequest{})
	requireCode(t, err, connect.CodeUnimplemented)
}

// -------------------------------------------------------------------------
// TestBothInterceptors: logging and recovery together
// -------------------------------------------------------------------------

func TestBothInterceptors(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	env := setupTestServer(t,
		server.LoggingInterceptorOption(logger),
		server.RecoveryInterceptorOption(logger),
	)

	resp, err := env.client.ListEvents(context.Background(), &ribv1.ListEventsRequest{})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if resp == nil {
		t.Fatal("response is nil")
	}
}
