//go:build !linux

package kernel

import "log/slog"

// NewLinkMonitor creates the platform link monitor. Without netlink no
// link events are reported.
func NewLinkMonitor(logger *slog.Logger) LinkMonitor {
	return NewStubLinkMonitor(logger)
}
