package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"connectrpc.com/connect"
)

// ErrPanicRecovered indicates an RPC handler panicked and was recovered.
var ErrPanicRecovered = errors.New("panic recovered in rpc handler")

// readOnlyPrefixes name the procedures that never mutate the RIB.
var readOnlyPrefixes = []string{"Show", "List", "Status", "Watch"}

// readOnly reports whether procedure only reads engine state.
func readOnly(procedure string) bool {
	method := procedure[strings.LastIndexByte(procedure, '/')+1:]
	for _, p := range readOnlyPrefixes {
		if strings.HasPrefix(method, p) {
			return true
		}
	}
	return false
}

// callerError reports whether err was caused by the request rather than by
// the daemon: rejected configuration, missing routes or interfaces.
func callerError(err error) bool {
	switch connect.CodeOf(err) {
	case connect.CodeInvalidArgument, connect.CodeNotFound,
		connect.CodeFailedPrecondition, connect.CodeCanceled:
		return true
	default:
		return false
	}
}

// -------------------------------------------------------------------------
// Logging
// -------------------------------------------------------------------------

// loggingInterceptor logs every RPC with its procedure, duration and result.
//
// Queries log at Debug, RIB mutations at Info. Requests rejected by the RIB
// log at Info with their connect code; daemon-side failures log at Warn.
type loggingInterceptor struct {
	logger *slog.Logger
}

func (i loggingInterceptor) log(ctx context.Context, procedure string, start time.Time, err error) {
	attrs := []slog.Attr{
		slog.String("procedure", procedure),
		slog.Duration("duration", time.Since(start)),
	}

	level := slog.LevelInfo
	msg := "rpc completed"
	switch {
	case err != nil:
		attrs = append(attrs,
			slog.String("code", connect.CodeOf(err).String()),
			slog.String("error", err.Error()),
		)
		msg = "rpc completed with error"
		if !callerError(err) {
			level = slog.LevelWarn
		}
	case readOnly(procedure):
		level = slog.LevelDebug
	}

	i.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (i loggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		i.log(ctx, req.Spec().Procedure, start, err)
		return resp, err
	}
}

func (i loggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i loggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		procedure := conn.Spec().Procedure
		i.logger.LogAttrs(ctx, slog.LevelDebug, "rpc stream opened",
			slog.String("procedure", procedure),
			slog.String("peer", conn.Peer().Addr),
		)
		start := time.Now()
		err := next(ctx, conn)
		i.log(ctx, procedure, start, err)
		return err
	}
}

// LoggingInterceptor returns a ConnectRPC interceptor that logs unary calls
// and server streams.
func LoggingInterceptor(logger *slog.Logger) connect.Interceptor {
	return loggingInterceptor{logger: logger}
}

// LoggingInterceptorOption wraps LoggingInterceptor as a handler option.
func LoggingInterceptorOption(logger *slog.Logger) connect.HandlerOption {
	return connect.WithInterceptors(LoggingInterceptor(logger))
}

// -------------------------------------------------------------------------
// Recovery
// -------------------------------------------------------------------------

// recoveryInterceptor turns handler panics into CodeInternal errors.
type recoveryInterceptor struct {
	logger *slog.Logger
}

func (i recoveryInterceptor) recovered(ctx context.Context, procedure string, r any) error {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)

	i.logger.ErrorContext(ctx, "panic recovered in rpc handler",
		slog.String("procedure", procedure),
		slog.Any("panic", r),
		slog.String("stack", string(buf[:n])),
	)
	return connect.NewError(connect.CodeInternal, fmt.Errorf("%s: %w", procedure, ErrPanicRecovered))
}

func (i recoveryInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (resp connect.AnyResponse, retErr error) {
		defer func() {
			if r := recover(); r != nil {
				retErr = i.recovered(ctx, req.Spec().Procedure, r)
			}
		}()
		return next(ctx, req)
	}
}

func (i recoveryInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i recoveryInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) (retErr error) {
		defer func() {
			if r := recover(); r != nil {
				retErr = i.recovered(ctx, conn.Spec().Procedure, r)
			}
		}()
		return next(ctx, conn)
	}
}

// RecoveryInterceptor returns a ConnectRPC interceptor that recovers from
// panics in unary and streaming handlers.
func RecoveryInterceptor(logger *slog.Logger) connect.Interceptor {
	return recoveryInterceptor{logger: logger}
}

// RecoveryInterceptorOption wraps RecoveryInterceptor as a handler option.
func RecoveryInterceptorOption(logger *slog.Logger) connect.HandlerOption {
	return connect.WithInterceptors(RecoveryInterceptor(logger))
}
