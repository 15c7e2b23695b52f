// Package ribmetrics exports RIB engine and BGP importer measurements to
// Prometheus.
package ribmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dantte-lp/goribd/internal/rib"
)

// -------------------------------------------------------------------------
// Prometheus Metric Constants
// -------------------------------------------------------------------------

const namespace = "goribd"

// Label names for RIB metrics.
const (
	labelProtocol  = "protocol"
	labelOp        = "op"
	labelResult    = "result"
	labelEventType = "event_type"
	labelPhase     = "phase"
	labelState     = "state"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

// phases lists every reconciler phase exported by the phase gauge.
var phases = []rib.Phase{
	rib.PhaseStopped,
	rib.PhaseLoadingConfig,
	rib.PhaseRebuildingRIB,
	rib.PhaseResyncingFIB,
	rib.PhaseRunning,
	rib.PhaseFailed,
}

// -------------------------------------------------------------------------
// Collector: Prometheus RIB Metrics
// -------------------------------------------------------------------------

// Collector holds all goribd Prometheus metrics. It implements
// rib.MetricsReporter and gobgp.ImporterMetrics.
type Collector struct {
	// Routes tracks the number of RIB routes per protocol.
	Routes *prometheus.GaugeVec

	// FIBEntries tracks the number of prefixes with a selected route.
	FIBEntries prometheus.Gauge

	// KernelOps counts kernel route replace and delete operations.
	KernelOps *prometheus.CounterVec

	// KernelPending tracks prefixes whose kernel programming awaits retry.
	KernelPending prometheus.Gauge

	// Selections counts best-path selection runs.
	Selections prometheus.Counter

	// Events counts applied RIB events by type and outcome.
	Events *prometheus.CounterVec

	// Phase is 1 for the current restart reconciler phase and 0 otherwise.
	Phase *prometheus.GaugeVec

	// ReconcileDuration observes how long restart reconciliation took.
	ReconcileDuration prometheus.Histogram

	// BGPRoutes tracks imported BGP prefixes by state
	// (installed, held, stale).
	BGPRoutes *prometheus.GaugeVec

	// BGPSessions counts GoBGP watch sessions by outcome.
	BGPSessions *prometheus.CounterVec
}

// NewCollector creates a Collector with all metrics registered against the
// provided prometheus.Registerer. If reg is nil, prometheus.DefaultRegisterer
// is used.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := newMetrics()

	reg.MustRegister(
		c.Routes,
		c.FIBEntries,
		c.KernelOps,
		c.KernelPending,
		c.Selections,
		c.Events,
		c.Phase,
		c.ReconcileDuration,
		c.BGPRoutes,
		c.BGPSessions,
	)

	return c
}

// newMetrics creates all Prometheus metrics without registering them.
func newMetrics() *Collector {
	return &Collector{
		Routes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rib",
			Name:      "routes",
			Help:      "Number of RIB routes per protocol.",
		}, []string{labelProtocol}),

		FIBEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "fib",
			Name:      "entries",
			Help:      "Number of prefixes with a selected route.",
		}),

		KernelOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "kernel",
			Name:      "operations_total",
			Help:      "Total kernel route operations.",
		}, []string{labelOp, labelResult}),

		KernelPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "kernel",
			Name:      "pending",
			Help:      "Number of prefixes whose kernel programming awaits retry.",
		}),

		Selections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rib",
			Name:      "selections_total",
			Help:      "Total best-path selection runs.",
		}),

		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rib",
			Name:      "events_total",
			Help:      "Total RIB events applied.",
		}, []string{labelEventType, labelResult}),

		Phase: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "reconciler",
			Name:      "phase",
			Help:      "Current restart reconciler phase (1 for the active phase).",
		}, []string{labelPhase}),

		ReconcileDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "reconciler",
			Name:      "duration_seconds",
			Help:      "Duration of restart reconciliation.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),

		BGPRoutes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bgp",
			Name:      "routes",
			Help:      "Number of imported BGP prefixes by state.",
		}, []string{labelState}),

		BGPSessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bgp",
			Name:      "sessions_total",
			Help:      "Total GoBGP watch sessions by outcome.",
		}, []string{labelResult}),
	}
}

func result(ok bool) string {
	if ok {
		return resultOK
	}
	return resultError
}

// -------------------------------------------------------------------------
// rib.MetricsReporter
// -------------------------------------------------------------------------

// SetRoutes records the number of routes for one protocol.
func (c *Collector) SetRoutes(proto rib.Protocol, n int) {
	c.Routes.WithLabelValues(proto.String()).Set(float64(n))
}

// SetFIBEntries records the number of prefixes with a FIB entry.
func (c *Collector) SetFIBEntries(n int) {
	c.FIBEntries.Set(float64(n))
}

// IncKernelOp counts one kernel replace or delete.
func (c *Collector) IncKernelOp(op string, ok bool) {
	c.KernelOps.WithLabelValues(op, result(ok)).Inc()
}

// SetKernelPending records the number of prefixes awaiting retry.
func (c *Collector) SetKernelPending(n int) {
	c.KernelPending.Set(float64(n))
}

// IncSelections counts best-path selection runs.
func (c *Collector) IncSelections(n int) {
	c.Selections.Add(float64(n))
}

// IncEvents counts one applied event.
func (c *Collector) IncEvents(eventType string, ok bool) {
	c.Events.WithLabelValues(eventType, result(ok)).Inc()
}

// SetPhase marks phase as the active reconciler phase.
func (c *Collector) SetPhase(phase rib.Phase) {
	for _, p := range phases {
		v := 0.0
		if p == phase {
			v = 1
		}
		c.Phase.WithLabelValues(p.String()).Set(v)
	}
}

// ObserveReconcile records how long restart reconciliation took.
func (c *Collector) ObserveReconcile(d time.Duration) {
	c.ReconcileDuration.Observe(d.Seconds())
}

// -------------------------------------------------------------------------
// gobgp.ImporterMetrics
// -------------------------------------------------------------------------

// SetBGPRoutes records the number of imported, held and stale prefixes.
func (c *Collector) SetBGPRoutes(installed, held, stale int) {
	c.BGPRoutes.WithLabelValues("installed").Set(float64(installed))
	c.BGPRoutes.WithLabelValues("held").Set(float64(held))
	c.BGPRoutes.WithLabelValues("stale").Set(float64(stale))
}

// IncBGPSessions counts one GoBGP watch session.
func (c *Collector) IncBGPSessions(ok bool) {
	c.BGPSessions.WithLabelValues(result(ok)).Inc()
}
