package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"

	"github.com/dantte-lp/goribd/internal/rib"
)

// -------------------------------------------------------------------------
// Systemd Integration: sd_notify, status line and watchdog
// -------------------------------------------------------------------------

// statusInterval is how often the STATUS= line is refreshed when systemd
// has no watchdog configured.
const statusInterval = 5 * time.Second

// statusSource reports the engine state shown in `systemctl status`.
type statusSource interface {
	Status() rib.Status
}

// sdNotify sends one or more sd_notify assignments in a single datagram.
// Outside systemd it is a no-op.
func sdNotify(logger *slog.Logger, assignments ...string) {
	state := strings.Join(assignments, "\n")
	sent, err := daemon.SdNotify(false, state)
	if err != nil {
		logger.Warn("failed to notify systemd",
			slog.String("state", state),
			slog.String("error", err.Error()),
		)
		return
	}
	if sent {
		logger.Debug("notified systemd", slog.String("state", state))
	}
}

// statusLine renders the engine state as an sd_notify STATUS= assignment,
// e.g. "STATUS=RUNNING: 12 prefixes, 10 in FIB, 0 kernel retries".
func statusLine(st rib.Status) string {
	if st.Phase == rib.PhaseFailed && st.LastError != "" {
		return fmt.Sprintf("STATUS=%s: %s", st.Phase, st.LastError)
	}
	return fmt.Sprintf("STATUS=%s: %d prefixes, %d in FIB, %d kernel retries",
		st.Phase, st.Prefixes, st.FIBEntries, st.KernelPending)
}

// notifyReady sends READY=1 once restart reconciliation has completed.
func notifyReady(engine statusSource, logger *slog.Logger) {
	sdNotify(logger, daemon.SdNotifyReady, statusLine(engine.Status()))
	logger.Info("notified systemd: READY")
}

// notifyStopping sends STOPPING=1 at the start of graceful shutdown.
func notifyStopping(logger *slog.Logger) {
	sdNotify(logger, daemon.SdNotifyStopping, "STATUS=shutting down, kernel routes left installed")
}

// runWatchdog keeps the systemd status line current and, when WatchdogSec
// is set, sends keepalives at half the watchdog interval. A keepalive is
// withheld while the engine is FAILED so systemd restarts the unit.
func runWatchdog(ctx context.Context, engine statusSource, logger *slog.Logger) error {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		logger.Warn("failed to check systemd watchdog",
			slog.String("error", err.Error()),
		)
		interval = 0
	}

	tick := statusInterval
	if interval > 0 {
		tick = interval / 2
		logger.Info("systemd watchdog enabled",
			slog.Duration("watchdog_sec", interval),
			slog.Duration("keepalive_interval", tick),
		)
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			st := engine.Status()
			if interval == 0 || st.Phase == rib.PhaseFailed {
				sdNotify(logger, statusLine(st))
				continue
			}
			sdNotify(logger, daemon.SdNotifyWatchdog, statusLine(st))
		}
	}
}
