package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"time"
)

// -------------------------------------------------------------------------
// Flight Recorder: runtime/trace
// -------------------------------------------------------------------------

const (
	// flightRecorderMinAge covers a full reconcile pass with kernel retries.
	flightRecorderMinAge = 5 * time.Second

	// flightRecorderMaxBytes bounds the rolling trace window.
	flightRecorderMaxBytes = 8 << 20
)

// startFlightRecorder keeps a rolling execution trace so a failed restart
// reconciliation can be examined after the fact. It returns nil when the
// recorder cannot start; the daemon runs without it.
func startFlightRecorder(logger *slog.Logger) *trace.FlightRecorder {
	fr := trace.NewFlightRecorder(trace.FlightRecorderConfig{
		MinAge:   flightRecorderMinAge,
		MaxBytes: flightRecorderMaxBytes,
	})
	if err := fr.Start(); err != nil {
		logger.Warn("flight recorder unavailable",
			slog.String("error", err.Error()),
		)
		return nil
	}

	logger.Debug("flight recorder started",
		slog.Duration("min_age", flightRecorderMinAge),
		slog.Int("max_bytes", flightRecorderMaxBytes),
	)
	return fr
}

// dumpFlightRecorder writes the current trace window to
// $TMPDIR/goribd-<reason>-<unix>.trace.
func dumpFlightRecorder(fr *trace.FlightRecorder, reason string, logger *slog.Logger) {
	if fr == nil || !fr.Enabled() {
		return
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("goribd-%s-%d.trace", reason, time.Now().Unix()))
	f, err := os.Create(path)
	if err != nil {
		logger.Warn("failed to create flight recorder dump",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return
	}
	defer f.Close()

	n, err := fr.WriteTo(f)
	if err != nil {
		logger.Warn("failed to write flight recorder dump",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return
	}
	logger.Info("flight recorder dumped",
		slog.String("path", path),
		slog.String("reason", reason),
		slog.Int64("bytes", n),
	)
}

func stopFlightRecorder(fr *trace.FlightRecorder, logger *slog.Logger) {
	if fr == nil {
		return
	}
	fr.Stop()
	logger.Debug("flight recorder stopped")
}
