//go:build linux

package kernel

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// linkEventChSize buffers link events between the netlink subscription and
// the consumer.
const linkEventChSize = 64

// NetlinkLinkMonitor subscribes to RTM_NEWLINK/RTM_DELLINK notifications.
type NetlinkLinkMonitor struct {
	events chan LinkEvent
	logger *slog.Logger
}

// NewLinkMonitor creates the platform link monitor.
func NewLinkMonitor(logger *slog.Logger) LinkMonitor {
	return &NetlinkLinkMonitor{
		events: make(chan LinkEvent, linkEventChSize),
		logger: logger.With(slog.String("component", "kernel.linkmon.netlink")),
	}
}

// Run subscribes to link updates, listing existing links first, and
// forwards them until ctx is cancelled or the subscription ends.
func (m *NetlinkLinkMonitor) Run(ctx context.Context) error {
	defer close(m.events)

	updates := make(chan netlink.LinkUpdate, linkEventChSize)
	done := make(chan struct{})
	defer close(done)

	opts := netlink.LinkSubscribeOptions{
		ListExisting: true,
		ErrorCallback: func(err error) {
			m.logger.Warn("link subscription error", slog.String("error", err.Error()))
		},
	}
	if err := netlink.LinkSubscribeWithOptions(updates, done, opts); err != nil {
		return fmt.Errorf("subscribe to link updates: %w", err)
	}
	m.logger.Info("link monitor started")

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("link monitor stopped")
			return nil
		case u, ok := <-updates:
			if !ok {
				return ErrSubscriptionClosed
			}
			attrs := u.Link.Attrs()
			ev := LinkEvent{
				Name:  attrs.Name,
				Index: attrs.Index,
				Up:    u.Header.Type != unix.RTM_DELLINK && linkUp(attrs),
			}
			select {
			case m.events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Events returns the link event channel.
func (m *NetlinkLinkMonitor) Events() <-chan LinkEvent {
	return m.events
}
