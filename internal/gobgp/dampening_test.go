package gobgp_test

import (
	"log/slog"
	"net/netip"
	"sync"
	"testing"
	"time"

	"github.com/dantte-lp/goribd/internal/gobgp"
)

var (
	flapPrefix  = netip.MustParsePrefix("198.51.100.0/24")
	otherPrefix = netip.MustParsePrefix("203.0.113.0/24")
)

// manualClock only moves when advance is called.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// newTestDampener returns an enabled dampener driven by clock. Zero fields
// of cfg take DefaultDampeningConfig values.
func newTestDampener(clock *manualClock, cfg gobgp.DampeningConfig) *gobgp.Dampener {
	def := gobgp.DefaultDampeningConfig()
	cfg.Enabled = true
	if cfg.SuppressThreshold == 0 {
		cfg.SuppressThreshold = def.SuppressThreshold
	}
	if cfg.ReuseThreshold == 0 {
		cfg.ReuseThreshold = def.ReuseThreshold
	}
	if cfg.MaxSuppressTime == 0 {
		cfg.MaxSuppressTime = def.MaxSuppressTime
	}
	if cfg.HalfLife == 0 {
		cfg.HalfLife = def.HalfLife
	}
	return gobgp.NewDampener(cfg, slog.New(slog.DiscardHandler), gobgp.WithClock(clock.Now))
}

func TestDampenerSuppressesAtThreshold(t *testing.T) {
	t.Parallel()

	d := newTestDampener(newManualClock(), gobgp.DampeningConfig{})

	got := []bool{d.Withdrawn(flapPrefix), d.Withdrawn(flapPrefix), d.Withdrawn(flapPrefix)}
	want := []bool{false, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("withdrawal %d: suppressed = %v, want %v", i+1, got[i], want[i])
		}
	}
	if !d.Suppressed(flapPrefix) {
		t.Error("re-announcement of a suppressed prefix passed through")
	}
}

func TestDampenerReuseAfterDecay(t *testing.T) {
	t.Parallel()

	clock := newManualClock()
	d := newTestDampener(clock, gobgp.DampeningConfig{ReuseThreshold: 1})

	for range 3 {
		d.Withdrawn(flapPrefix)
	}

	tests := []struct {
		step time.Duration
		want bool
	}{
		{step: 15 * time.Second, want: true},  // penalty 1.5
		{step: 30 * time.Second, want: false}, // penalty 0.375
	}
	for _, tt := range tests {
		clock.advance(tt.step)
		if got := d.Suppressed(flapPrefix); got != tt.want {
			t.Errorf("after +%v: Suppressed = %v, want %v", tt.step, got, tt.want)
		}
	}
}

func TestDampenerHoldIsBounded(t *testing.T) {
	t.Parallel()

	clock := newManualClock()
	d := newTestDampener(clock, gobgp.DampeningConfig{
		SuppressThreshold: 2,
		ReuseThreshold:    1,
		MaxSuppressTime:   30 * time.Second,
		HalfLife:          time.Hour,
	})

	d.Withdrawn(flapPrefix)
	if !d.Withdrawn(flapPrefix) {
		t.Fatal("second withdrawal did not suppress")
	}

	clock.advance(29 * time.Second)
	if !d.Suppressed(flapPrefix) {
		t.Fatal("released before the hold expired")
	}
	clock.advance(time.Second)
	if d.Suppressed(flapPrefix) {
		t.Error("still held after the maximum suppress time")
	}
}

func TestDampenerPerPrefix(t *testing.T) {
	t.Parallel()

	d := newTestDampener(newManualClock(), gobgp.DampeningConfig{SuppressThreshold: 2, ReuseThreshold: 1})

	d.Withdrawn(flapPrefix)
	d.Withdrawn(flapPrefix)

	if d.Suppressed(otherPrefix) {
		t.Errorf("%s held because of %s", otherPrefix, flapPrefix)
	}
	if d.Withdrawn(otherPrefix) {
		t.Errorf("first withdrawal of %s suppressed it", otherPrefix)
	}
	if got := d.Tracked(); got != 2 {
		t.Errorf("Tracked = %d, want 2", got)
	}
}

func TestDampenerResetForgetsHistory(t *testing.T) {
	t.Parallel()

	d := newTestDampener(newManualClock(), gobgp.DampeningConfig{SuppressThreshold: 2, ReuseThreshold: 1})

	d.Withdrawn(flapPrefix)
	d.Withdrawn(flapPrefix)
	d.Reset(flapPrefix)

	if d.Suppressed(flapPrefix) {
		t.Error("held after Reset")
	}
	if got := d.Tracked(); got != 0 {
		t.Errorf("Tracked = %d after Reset, want 0", got)
	}
}

func TestDampenerIdleRecordDropped(t *testing.T) {
	t.Parallel()

	clock := newManualClock()
	d := newTestDampener(clock, gobgp.DampeningConfig{})

	d.Withdrawn(flapPrefix)
	clock.advance(10 * time.Minute)

	if d.Suppressed(flapPrefix) {
		t.Fatal("single withdrawal suppressed the prefix")
	}
	if got := d.Tracked(); got != 0 {
		t.Errorf("Tracked = %d after the penalty decayed away, want 0", got)
	}
}

func TestDampenerDisabledPassesThrough(t *testing.T) {
	t.Parallel()

	d := gobgp.NewDampener(gobgp.DefaultDampeningConfig(), slog.New(slog.DiscardHandler))

	for range 50 {
		if d.Withdrawn(flapPrefix) {
			t.Fatal("disabled dampener suppressed a prefix")
		}
	}
	if d.Suppressed(flapPrefix) || d.Tracked() != 0 {
		t.Error("disabled dampener kept state")
	}
}
