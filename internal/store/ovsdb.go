package store

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/netip"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dantte-lp/goribd/internal/rib"
)

const (
	defaultVRF      = "vrf_default"
	defaultDebounce = 100 * time.Millisecond

	// selectionRetry spaces attempts to rewrite Route.selected after a
	// failed database write.
	selectionRetry = time.Second
)

// OVSDBStore serves configuration from the Route, Nexthop, Port and VRF
// tables of an OVSDB database and writes route selection back to the
// Route.selected column.
type OVSDBStore struct {
	db       DB
	vrf      string
	debounce time.Duration
	logger   *slog.Logger

	// reloadMu serializes Reload; mu guards the fields below and is never
	// held while events are submitted to the engine.
	reloadMu sync.Mutex
	mu       sync.Mutex
	last     *rib.ConfigSnapshot

	// rows maps each configured prefix to the Route rows that feed it.
	rows map[netip.Prefix][]routeRow

	// resync asks WriteSelected to rewrite every row after a reload.
	resync chan struct{}
}

type routeRow struct {
	uuid     string
	proto    rib.Protocol
	selected bool
}

// OVSDBOption configures an OVSDBStore.
type OVSDBOption func(*OVSDBStore)

// WithVRF selects the VRF row whose ports and routes are served.
func WithVRF(name string) OVSDBOption {
	return func(s *OVSDBStore) {
		if name != "" {
			s.vrf = name
		}
	}
}

// WithDebounce sets how long the store waits for further changes before
// reloading.
func WithDebounce(d time.Duration) OVSDBOption {
	return func(s *OVSDBStore) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// NewOVSDBStore creates a store reading from db.
func NewOVSDBStore(db DB, logger *slog.Logger, opts ...OVSDBOption) *OVSDBStore {
	s := &OVSDBStore{
		db:       db,
		vrf:      defaultVRF,
		debounce: defaultDebounce,
		logger:   logger.With(slog.String("component", "store.ovsdb")),
		rows:     make(map[netip.Prefix][]routeRow),
		resync:   make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load implements rib.ConfigSource.
func (s *OVSDBStore) Load(ctx context.Context) (*rib.ConfigSnapshot, error) {
	snap, rows, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.last, s.rows = snap, rows
	s.mu.Unlock()

	s.logger.Info("configuration loaded",
		slog.String("vrf", s.vrf),
		slog.Int("interfaces", len(snap.Interfaces)),
		slog.Int("routes", len(snap.Routes)),
	)
	return snap, nil
}

func (s *OVSDBStore) read(ctx context.Context) (*rib.ConfigSnapshot, map[netip.Prefix][]routeRow, error) {
	t, err := s.db.Tables(ctx)
	if err != nil {
		return nil, nil, err
	}
	return buildSnapshot(t, s.vrf, s.logger)
}

// Reload reads the tables and submits the difference to the previous
// snapshot. The new Route rows are published before the diff is submitted
// so selection write-back finds them, and a full write-back is requested
// once the diff is applied.
func (s *OVSDBStore) Reload(ctx context.Context, sub Submitter) error {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	s.mu.Lock()
	prev := s.last
	s.mu.Unlock()
	if prev == nil {
		return ErrNotLoaded
	}

	next, rows, err := s.read(ctx)
	if err != nil {
		return fmt.Errorf("reload ovsdb: %w", err)
	}

	s.mu.Lock()
	s.rows = carrySelected(s.rows, rows)
	s.mu.Unlock()

	applied, err := submitDiff(ctx, sub, prev, next, s.logger)
	if err != nil {
		return fmt.Errorf("reload ovsdb: %w", err)
	}

	s.mu.Lock()
	s.last = next
	s.mu.Unlock()
	s.requestResync()

	if applied > 0 {
		s.logger.Info("configuration reloaded", slog.Int("changes", applied))
	}
	return nil
}

func (s *OVSDBStore) requestResync() {
	select {
	case s.resync <- struct{}{}:
	default:
	}
}

// carrySelected keeps the selected flag this store last wrote for rows that
// survive a reload. The store is the only writer of Route.selected, so its
// own record is newer than a read that raced with a write.
func carrySelected(old, next map[netip.Prefix][]routeRow) map[netip.Prefix][]routeRow {
	written := make(map[string]bool)
	for _, rows := range old {
		for _, r := range rows {
			written[r.uuid] = r.selected
		}
	}
	for _, rows := range next {
		for i := range rows {
			if sel, ok := written[rows[i].uuid]; ok {
				rows[i].selected = sel
			}
		}
	}
	return next
}

// Run reloads the store after each burst of database changes until ctx is
// cancelled.
func (s *OVSDBStore) Run(ctx context.Context, sub Submitter) error {
	timer := time.NewTimer(s.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.db.Changes():
			timer.Reset(s.debounce)
		case <-timer.C:
			if err := s.Reload(ctx, sub); err != nil {
				if ctx.Err() != nil || errors.Is(err, rib.ErrEngineStopped) {
					return nil
				}
				s.logger.Error("ovsdb reload failed", slog.String("error", err.Error()))
			}
		}
	}
}

// SelectionSource is the engine side of the Route.selected write-back.
// *rib.Engine implements it.
type SelectionSource interface {
	SubscribeTracked() (<-chan rib.FIBChange, <-chan struct{}, func())
	Ready() <-chan struct{}
	ShowFIB(filter netip.Prefix) []rib.FIBEntry
}

// WriteSelected mirrors the FIB into Route.selected: the row of the
// protocol that owns a prefix's FIB entry is marked selected and the other
// rows of the prefix are cleared. Once src is ready every row is written
// from the current FIB, which clears flags left over from a previous run.
// A FIB change rewrites the rows of its prefix from the FIB as it is when
// the change is handled, so dropped or reordered changes cannot leave a
// stale flag behind; a dropped change, a reload or a failed write
// triggers another full pass. It returns when the engine stops or ctx is
// cancelled.
func (s *OVSDBStore) WriteSelected(ctx context.Context, src SelectionSource) error {
	changes, lost, cancel := src.SubscribeTracked()
	defer cancel()

	// Changes seen before RUNNING are covered by the first full pass.
	for waiting := true; waiting; {
		select {
		case <-ctx.Done():
			return nil
		case <-src.Ready():
			waiting = false
		case _, ok := <-changes:
			if !ok {
				return nil
			}
		}
	}

	var retry <-chan time.Time
	writeAll := func(reason string) {
		retry = nil
		n, err := s.writeSelected(ctx, src, netip.Prefix{})
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Warn("write route selection",
					slog.String("reason", reason),
					slog.String("error", err.Error()),
				)
				retry = time.After(selectionRetry)
			}
			return
		}
		s.logger.Debug("route selection written",
			slog.String("reason", reason),
			slog.Int("rows", n),
		)
	}

	writeAll("ready")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ch, ok := <-changes:
			if !ok {
				return nil
			}
			if _, err := s.writeSelected(ctx, src, ch.Prefix); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				s.logger.Warn("write route selection",
					slog.String("prefix", ch.Prefix.String()),
					slog.String("error", err.Error()),
				)
				if retry == nil {
					retry = time.After(selectionRetry)
				}
			}
		case <-lost:
			writeAll("fib changes dropped")
		case <-s.resync:
			writeAll("reload")
		case <-retry:
			writeAll("retry")
		}
	}
}

// writeSelected brings Route.selected in line with the FIB for one prefix,
// or for every configured prefix when prefix is the zero value. It returns
// the number of rows written.
func (s *OVSDBStore) writeSelected(ctx context.Context, src SelectionSource, prefix netip.Prefix) (int, error) {
	owners := make(map[netip.Prefix]rib.Protocol)
	for _, fe := range src.ShowFIB(prefix) {
		owners[fe.Prefix] = fe.Protocol
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updates := make(map[string]bool)
	mark := func(p netip.Prefix, rows []routeRow) {
		owner, ok := owners[p]
		for _, r := range rows {
			want := ok && r.proto == owner
			if r.selected != want {
				updates[r.uuid] = want
			}
		}
	}
	if prefix.IsValid() {
		mark(prefix.Masked(), s.rows[prefix.Masked()])
	} else {
		for p, rows := range s.rows {
			mark(p, rows)
		}
	}
	if len(updates) == 0 {
		return 0, nil
	}

	if err := s.db.SetRouteSelected(ctx, updates); err != nil {
		return 0, err
	}
	for _, rows := range s.rows {
		for i := range rows {
			if want, ok := updates[rows[i].uuid]; ok {
				rows[i].selected = want
			}
		}
	}
	return len(updates), nil
}

// -------------------------------------------------------------------------
// Row Conversion
// -------------------------------------------------------------------------

// buildSnapshot converts the tables into a snapshot of the named VRF.
// Rows that cannot be converted are logged and skipped; connected routes
// are skipped silently because the engine derives them.
func buildSnapshot(t *Tables, vrfName string, logger *slog.Logger) (*rib.ConfigSnapshot, map[netip.Prefix][]routeRow, error) {
	var vrf *VRF
	for _, v := range t.VRFs {
		if v.Name == vrfName {
			vrf = v
			break
		}
	}
	if vrf == nil {
		return nil, nil, fmt.Errorf("%q: %w", vrfName, ErrNoVRF)
	}

	routed := make(map[string]bool, len(vrf.Ports))
	for _, id := range vrf.Ports {
		routed[id] = true
	}

	snap := &rib.ConfigSnapshot{}

	ports := slices.SortedFunc(slices.Values(t.Ports), func(a, b *Port) int {
		return cmp.Compare(a.Name, b.Name)
	})
	portNames := make(map[string]string, len(ports))
	for _, p := range ports {
		ifc, err := portToInterface(p, routed[p.UUID])
		if err != nil {
			logger.Warn("skipping port", slog.String("uuid", p.UUID), slog.String("error", err.Error()))
			continue
		}
		portNames[p.UUID] = p.Name
		snap.Interfaces = append(snap.Interfaces, ifc)
	}

	nexthops := make(map[string]*Nexthop, len(t.Nexthops))
	for _, nh := range t.Nexthops {
		nexthops[nh.UUID] = nh
	}

	routes := slices.SortedFunc(slices.Values(t.Routes), func(a, b *Route) int {
		return cmp.Or(cmp.Compare(a.Prefix, b.Prefix), cmp.Compare(a.From, b.From), cmp.Compare(a.UUID, b.UUID))
	})
	rows := make(map[netip.Prefix][]routeRow)
	for _, r := range routes {
		if r.VRF != vrf.UUID {
			continue
		}
		rc, err := routeToConfig(r, nexthops, portNames)
		if errors.Is(err, rib.ErrDerivedProtocol) {
			continue
		}
		if err != nil {
			logger.Warn("skipping route", slog.String("uuid", r.UUID), slog.String("error", err.Error()))
			continue
		}
		snap.Routes = append(snap.Routes, rc)
		rows[rc.Prefix] = append(rows[rc.Prefix], routeRow{
			uuid:     r.UUID,
			proto:    rc.Protocol,
			selected: r.Selected != nil && *r.Selected,
		})
	}

	return snap, rows, nil
}

func portToInterface(p *Port, routed bool) (rib.Interface, error) {
	ifc := rib.Interface{
		Name:    p.Name,
		AdminUp: p.Admin != nil && *p.Admin == AdminUp,
		Routing: routed,
	}

	var addrs []string
	if p.IP4Address != nil {
		addrs = append(addrs, *p.IP4Address)
	}
	addrs = append(addrs, p.IP4AddressSecondary...)
	if p.IP6Address != nil {
		addrs = append(addrs, *p.IP6Address)
	}
	addrs = append(addrs, p.IP6AddressSecondary...)

	for _, s := range addrs {
		a, err := netip.ParsePrefix(strings.TrimSpace(s))
		if err != nil {
			return rib.Interface{}, fmt.Errorf("%w: port %q address %q: %w", ErrInvalidRow, p.Name, s, err)
		}
		ifc.Addresses = append(ifc.Addresses, a)
	}

	if err := ifc.Validate(); err != nil {
		return rib.Interface{}, fmt.Errorf("%w: port %q: %w", ErrInvalidRow, p.Name, err)
	}
	return ifc, nil
}

func routeToConfig(r *Route, nexthops map[string]*Nexthop, portNames map[string]string) (rib.RouteConfig, error) {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(r.Prefix))
	if err != nil {
		return rib.RouteConfig{}, fmt.Errorf("%w: prefix %q: %w", ErrInvalidRow, r.Prefix, err)
	}
	proto, err := rib.ParseProtocol(r.From)
	if err != nil {
		return rib.RouteConfig{}, fmt.Errorf("%w: %w", ErrInvalidRow, err)
	}
	if proto == rib.ProtocolConnected {
		return rib.RouteConfig{}, rib.ErrDerivedProtocol
	}

	distance, err := uint32Column("distance", r.Distance)
	if err != nil {
		return rib.RouteConfig{}, err
	}
	metric, err := uint32Column("metric", r.Metric)
	if err != nil {
		return rib.RouteConfig{}, err
	}

	rc := rib.RouteConfig{
		Prefix:   prefix.Masked(),
		Protocol: proto,
		Distance: distance,
		Metric:   metric,
	}
	for _, id := range r.Nexthops {
		row, ok := nexthops[id]
		if !ok {
			continue
		}
		nh, err := nexthopToNextHop(row, portNames)
		if err != nil {
			return rib.RouteConfig{}, err
		}
		rc.NextHops = append(rc.NextHops, nh)
	}
	if len(rc.NextHops) == 0 {
		return rib.RouteConfig{}, fmt.Errorf("%w: %s has no next-hops", ErrInvalidRow, prefix)
	}

	ev := rib.RouteReplace{Prefix: rc.Prefix, Protocol: rc.Protocol, NextHops: rc.NextHops}
	if err := ev.Validate(); err != nil {
		return rib.RouteConfig{}, fmt.Errorf("%w: %w", ErrInvalidRow, err)
	}
	return rc, nil
}

func nexthopToNextHop(row *Nexthop, portNames map[string]string) (rib.NextHop, error) {
	switch {
	case row.IPAddress != nil:
		addr, err := netip.ParseAddr(strings.TrimSpace(*row.IPAddress))
		if err != nil {
			return rib.NextHop{}, fmt.Errorf("%w: nexthop %s: %w", ErrInvalidRow, row.UUID, err)
		}
		return rib.AddrNextHop(addr), nil
	case len(row.Ports) > 0:
		name, ok := portNames[row.Ports[0]]
		if !ok {
			return rib.NextHop{}, fmt.Errorf("%w: nexthop %s references unknown port", ErrInvalidRow, row.UUID)
		}
		return rib.IfaceNextHop(name), nil
	default:
		return rib.NextHop{}, fmt.Errorf("%w: nexthop %s has neither address nor port", ErrInvalidRow, row.UUID)
	}
}

// uint32Column converts an optional integer column. Values outside the
// uint32 range are rejected rather than wrapped.
func uint32Column(column string, v *int) (uint32, error) {
	switch {
	case v == nil:
		return 0, nil
	case *v < 0:
		return 0, fmt.Errorf("%w: negative %s %d", ErrInvalidRow, column, *v)
	case int64(*v) > math.MaxUint32:
		return 0, fmt.Errorf("%w: %s %d out of range", ErrInvalidRow, column, *v)
	}
	return uint32(*v), nil
}
