package gobgp

import (
	"log/slog"
	"math"
	"net/netip"
	"sync"
	"time"
)

// -------------------------------------------------------------------------
// Route Flap Dampening
// -------------------------------------------------------------------------
//
// Every withdrawal of a BGP prefix adds one unit of penalty; the penalty
// halves every HalfLife. A prefix whose penalty reaches SuppressThreshold
// stops being announced to the RIB until the penalty falls under
// ReuseThreshold or it has been held for MaxSuppressTime (RFC 2439 with a
// unit withdrawal penalty).

// penaltyFloor is the value under which a decayed penalty counts as zero.
const penaltyFloor = 0.001

// DampeningConfig holds the flap dampening parameters of the importer.
type DampeningConfig struct {
	// Enabled turns dampening on. A disabled dampener passes every
	// announcement through and keeps no state.
	Enabled bool

	// SuppressThreshold is the penalty at which announcements are held.
	SuppressThreshold float64

	// ReuseThreshold releases a held prefix. It is below SuppressThreshold.
	ReuseThreshold float64

	// MaxSuppressTime bounds how long a prefix is held.
	MaxSuppressTime time.Duration

	// HalfLife is the penalty decay half-life.
	HalfLife time.Duration
}

// DefaultDampeningConfig mirrors the daemon defaults: off, suppress after
// three withdrawals in quick succession.
func DefaultDampeningConfig() DampeningConfig {
	return DampeningConfig{
		SuppressThreshold: 3,
		ReuseThreshold:    2,
		MaxSuppressTime:   time.Minute,
		HalfLife:          15 * time.Second,
	}
}

// -------------------------------------------------------------------------
// Dampener
// -------------------------------------------------------------------------

// Dampener keeps a flap record per BGP prefix. Safe for concurrent use.
type Dampener struct {
	cfg    DampeningConfig
	logger *slog.Logger
	clock  func() time.Time

	mu    sync.Mutex
	flaps map[netip.Prefix]*flapRecord
}

// flapRecord is the dampening state of one prefix.
type flapRecord struct {
	penalty  float64
	decayed  time.Time // last time penalty was decayed
	heldFrom time.Time // zero unless suppressed
}

func (r *flapRecord) held() bool { return !r.heldFrom.IsZero() }

// DampenerOption customises a Dampener.
type DampenerOption func(*Dampener)

// WithClock replaces time.Now, letting tests step time explicitly.
func WithClock(clock func() time.Time) DampenerOption {
	return func(d *Dampener) { d.clock = clock }
}

// NewDampener returns a Dampener using cfg.
func NewDampener(cfg DampeningConfig, logger *slog.Logger, opts ...DampenerOption) *Dampener {
	d := &Dampener{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "gobgp.dampener")),
		clock:  time.Now,
		flaps:  make(map[netip.Prefix]*flapRecord),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Withdrawn charges one withdrawal to prefix and reports whether the prefix
// is held afterwards.
func (d *Dampener) Withdrawn(prefix netip.Prefix) bool {
	if !d.cfg.Enabled {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock()
	rec, ok := d.flaps[prefix]
	if !ok {
		rec = &flapRecord{decayed: now}
		d.flaps[prefix] = rec
	}

	d.decay(rec, now)
	rec.penalty++

	// An expired hold is released before the new withdrawal is judged.
	if rec.held() && now.Sub(rec.heldFrom) >= d.cfg.MaxSuppressTime {
		d.release(prefix, rec, "max suppress time")
		return false
	}

	if !rec.held() && rec.penalty >= d.cfg.SuppressThreshold {
		rec.heldFrom = now
		d.logger.Warn("bgp prefix suppressed by flap dampening",
			slog.String("prefix", prefix.String()),
			slog.Float64("penalty", rec.penalty),
			slog.Float64("suppress_threshold", d.cfg.SuppressThreshold),
		)
	}
	return rec.held()
}

// Suppressed reports whether an announcement of prefix must be kept out of
// the RIB right now. Checking a prefix also ages its record.
func (d *Dampener) Suppressed(prefix netip.Prefix) bool {
	if !d.cfg.Enabled {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.flaps[prefix]
	if !ok {
		return false
	}

	now := d.clock()
	d.decay(rec, now)

	switch {
	case !rec.held():
		if rec.penalty == 0 {
			delete(d.flaps, prefix)
		}
		return false
	case now.Sub(rec.heldFrom) >= d.cfg.MaxSuppressTime:
		d.release(prefix, rec, "max suppress time")
		return false
	case rec.penalty < d.cfg.ReuseThreshold:
		d.release(prefix, rec, "reuse threshold")
		return false
	default:
		return true
	}
}

// Reset forgets the flap history of prefix.
func (d *Dampener) Reset(prefix netip.Prefix) {
	d.mu.Lock()
	delete(d.flaps, prefix)
	d.mu.Unlock()
}

// Tracked returns how many prefixes carry a flap record.
func (d *Dampener) Tracked() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.flaps)
}

// decay ages rec.penalty to now: penalty * 2^(-elapsed/HalfLife).
// Caller holds d.mu.
func (d *Dampener) decay(rec *flapRecord, now time.Time) {
	elapsed := now.Sub(rec.decayed)
	if d.cfg.HalfLife <= 0 || rec.penalty == 0 || elapsed <= 0 {
		return
	}

	rec.penalty *= math.Exp2(-float64(elapsed) / float64(d.cfg.HalfLife))
	rec.decayed = now
	if rec.penalty < penaltyFloor {
		rec.penalty = 0
	}
}

// release lifts the hold on prefix and clears its penalty.
// Caller holds d.mu.
func (d *Dampener) release(prefix netip.Prefix, rec *flapRecord, reason string) {
	rec.penalty = 0
	rec.heldFrom = time.Time{}

	d.logger.Info("bgp prefix released from flap dampening",
		slog.String("prefix", prefix.String()),
		slog.String("reason", reason),
	)
}
