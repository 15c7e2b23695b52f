package kernel

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dantte-lp/goribd/internal/rib"
)

// -------------------------------------------------------------------------
// Link Monitor: interface operational state change detection
// -------------------------------------------------------------------------

// LinkEvent reports the operational state of one network interface.
type LinkEvent struct {
	// Name is the kernel interface name (e.g., "eth0", "bond0").
	Name string

	// Index is the kernel interface index.
	Index int

	// Up is true when the link is administratively up and carrier is
	// present.
	Up bool
}

// LinkMonitor watches for interface state changes.
//
// Usage:
//
//	mon := kernel.NewLinkMonitor(logger)
//	go mon.Run(ctx)
//	err := kernel.ForwardLinkEvents(ctx, mon.Events(), engine, logger)
type LinkMonitor interface {
	// Run starts monitoring. It blocks until ctx is cancelled and closes
	// the Events channel on return. Run must be called at most once.
	Run(ctx context.Context) error

	// Events returns the channel of link state changes. The current state
	// of every link is emitted first.
	Events() <-chan LinkEvent
}

// Submitter accepts engine events.
type Submitter interface {
	Submit(ctx context.Context, ev rib.Event) error
}

// ForwardLinkEvents submits a rib.LinkUpdate for every link state change
// read from events until events is closed or ctx is cancelled. Repeated
// reports of an unchanged state are dropped. Links with names the RIB
// does not accept are skipped.
func ForwardLinkEvents(ctx context.Context, events <-chan LinkEvent, sub Submitter, logger *slog.Logger) error {
	logger = logger.With(slog.String("component", "kernel.linkmon"))
	last := make(map[string]bool)

	for {
		var ev LinkEvent
		var ok bool
		select {
		case <-ctx.Done():
			return nil
		case ev, ok = <-events:
			if !ok {
				return nil
			}
		}

		if up, seen := last[ev.Name]; seen && up == ev.Up {
			continue
		}
		update := rib.LinkUpdate{Name: ev.Name, Up: ev.Up}
		if err := update.Validate(); err != nil {
			logger.Debug("skipping link", slog.String("link", ev.Name), slog.String("error", err.Error()))
			continue
		}

		err := sub.Submit(ctx, update)
		switch {
		case err == nil:
			last[ev.Name] = ev.Up
			logger.Info("link state changed",
				slog.String("link", ev.Name),
				slog.Int("index", ev.Index),
				slog.Bool("up", ev.Up),
			)
		case errors.Is(err, rib.ErrEngineStopped), ctx.Err() != nil:
			return nil
		default:
			logger.Warn("failed to submit link update",
				slog.String("link", ev.Name),
				slog.String("error", err.Error()),
			)
		}
	}
}

// -------------------------------------------------------------------------
// StubLinkMonitor: no-op implementation
// -------------------------------------------------------------------------

// StubLinkMonitor never emits events. It is used when link monitoring is
// disabled or unavailable on the platform.
type StubLinkMonitor struct {
	events chan LinkEvent
	logger *slog.Logger
}

// NewStubLinkMonitor creates a no-op link monitor.
func NewStubLinkMonitor(logger *slog.Logger) *StubLinkMonitor {
	return &StubLinkMonitor{
		events: make(chan LinkEvent),
		logger: logger.With(slog.String("component", "kernel.linkmon.stub")),
	}
}

// Run blocks until ctx is cancelled, then closes the events channel.
func (m *StubLinkMonitor) Run(ctx context.Context) error {
	m.logger.Info("stub link monitor started (no-op)")
	<-ctx.Done()
	close(m.events)
	return nil
}

// Events returns the (always empty) event channel.
func (m *StubLinkMonitor) Events() <-chan LinkEvent {
	return m.events
}
