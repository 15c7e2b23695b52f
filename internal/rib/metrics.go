package rib

import "time"

// MetricsReporter receives engine measurements. The Prometheus collector
// in internal/metrics implements it.
type MetricsReporter interface {
	// SetRoutes records the number of routes for one protocol.
	SetRoutes(proto Protocol, n int)

	// SetFIBEntries records the number of prefixes with a FIB entry.
	SetFIBEntries(n int)

	// IncKernelOp counts one kernel replace or delete.
	IncKernelOp(op string, ok bool)

	// SetKernelPending records the number of prefixes awaiting retry.
	SetKernelPending(n int)

	// IncSelections counts best-path selection runs.
	IncSelections(n int)

	// IncEvents counts applied events by type and outcome.
	IncEvents(eventType string, ok bool)

	// SetPhase records the restart reconciler phase.
	SetPhase(phase Phase)

	// ObserveReconcile records how long restart reconciliation took.
	ObserveReconcile(d time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) SetRoutes(Protocol, int)        {}
func (noopMetrics) SetFIBEntries(int)              {}
func (noopMetrics) IncKernelOp(string, bool)       {}
func (noopMetrics) SetKernelPending(int)           {}
func (noopMetrics) IncSelections(int)              {}
func (noopMetrics) IncEvents(string, bool)         {}
func (noopMetrics) SetPhase(Phase)                 {}
func (noopMetrics) ObserveReconcile(time.Duration) {}
