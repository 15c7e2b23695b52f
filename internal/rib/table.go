package rib

import (
	"cmp"
	"fmt"
	"net/netip"
	"slices"
	"time"
)

// Route is one protocol's contribution to a prefix.
type Route struct {
	Prefix   netip.Prefix
	Protocol Protocol
	Distance uint32
	Metric   uint32

	// NextHops is the configured next-hop set in insertion order,
	// regardless of activity.
	NextHops []NextHop

	// Seq orders routes by creation and backs the "oldest" tie-break.
	Seq uint64

	// Created is the wall-clock creation time.
	Created time.Time
}

func (r *Route) clone() Route {
	c := *r
	c.NextHops = slices.Clone(r.NextHops)
	return c
}

func (r *Route) hasNextHop(nh NextHop) bool {
	return slices.Contains(r.NextHops, nh)
}

// Table is the route table. It never filters by next-hop activity: a
// next-hop stays in the table until it is explicitly removed.
//
// Table is not safe for concurrent use; the Engine serializes access.
type Table struct {
	prefixes map[netip.Prefix]map[Protocol]*Route

	// byNextHop counts references from each next-hop to each prefix so
	// resolver changes can be mapped back to affected prefixes.
	byNextHop map[NextHop]map[netip.Prefix]int

	seq uint64
	now func() time.Time
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{
		prefixes:  make(map[netip.Prefix]map[Protocol]*Route),
		byNextHop: make(map[NextHop]map[netip.Prefix]int),
		now:       time.Now,
	}
}

// -------------------------------------------------------------------------
// Mutations
// -------------------------------------------------------------------------

// AddRoute adds nh to the (prefix, proto) route, creating the route if
// absent. Adding a next-hop that is already present is a no-op. Adding to
// an existing route with a different distance or metric fails with
// ErrAttrConflict. Returns true if the table changed.
func (t *Table) AddRoute(prefix netip.Prefix, proto Protocol, distance, metric uint32, nh NextHop) (bool, error) {
	byProto := t.prefixes[prefix]
	if r, ok := byProto[proto]; ok {
		if r.Distance != distance || r.Metric != metric {
			return false, fmt.Errorf("%s %s distance %d metric %d (have %d/%d): %w",
				proto, prefix, distance, metric, r.Distance, r.Metric, ErrAttrConflict)
		}
		if r.hasNextHop(nh) {
			return false, nil
		}
		r.NextHops = append(r.NextHops, nh)
		t.ref(nh, prefix)
		return true, nil
	}

	t.insertRoute(prefix, proto, distance, metric, []NextHop{nh})
	return true, nil
}

// RemoveRoute removes nh from the (prefix, proto) route. The route is
// destroyed with its last next-hop and the prefix is pruned with its last
// route. Removing an absent next-hop is a no-op. Returns true if the table
// changed.
func (t *Table) RemoveRoute(prefix netip.Prefix, proto Protocol, nh NextHop) bool {
	r, ok := t.prefixes[prefix][proto]
	if !ok {
		return false
	}
	idx := slices.Index(r.NextHops, nh)
	if idx < 0 {
		return false
	}
	r.NextHops = slices.Delete(r.NextHops, idx, idx+1)
	t.unref(nh, prefix)
	if len(r.NextHops) == 0 {
		t.dropRoute(prefix, proto)
	}
	return true
}

// SetRouteAttrs overwrites distance and metric for the whole route.
func (t *Table) SetRouteAttrs(prefix netip.Prefix, proto Protocol, distance, metric uint32) (bool, error) {
	r, ok := t.prefixes[prefix][proto]
	if !ok {
		return false, fmt.Errorf("%s %s: %w", proto, prefix, ErrRouteNotFound)
	}
	if r.Distance == distance && r.Metric == metric {
		return false, nil
	}
	r.Distance = distance
	r.Metric = metric
	return true, nil
}

// WithdrawRoute removes the whole (prefix, proto) route. Returns true if a
// route was removed.
func (t *Table) WithdrawRoute(prefix netip.Prefix, proto Protocol) bool {
	r, ok := t.prefixes[prefix][proto]
	if !ok {
		return false
	}
	for _, nh := range r.NextHops {
		t.unref(nh, prefix)
	}
	t.dropRoute(prefix, proto)
	return true
}

// ReplaceRoute sets the complete state of the (prefix, proto) route. An
// empty next-hop set withdraws the route. The creation sequence of an
// existing route is preserved. Returns true if the table changed.
func (t *Table) ReplaceRoute(prefix netip.Prefix, proto Protocol, distance, metric uint32, nhs []NextHop) bool {
	if len(nhs) == 0 {
		return t.WithdrawRoute(prefix, proto)
	}
	nhs = dedupNextHops(nhs)

	r, ok := t.prefixes[prefix][proto]
	if !ok {
		t.insertRoute(prefix, proto, distance, metric, nhs)
		return true
	}

	if r.Distance == distance && r.Metric == metric && slices.Equal(r.NextHops, nhs) {
		return false
	}
	for _, nh := range r.NextHops {
		t.unref(nh, prefix)
	}
	r.Distance = distance
	r.Metric = metric
	r.NextHops = nhs
	for _, nh := range nhs {
		t.ref(nh, prefix)
	}
	return true
}

// insertRoute creates the (prefix, proto) route with the next-hop set nhs,
// which must be non-empty and free of duplicates. The route must not exist.
func (t *Table) insertRoute(prefix netip.Prefix, proto Protocol, distance, metric uint32, nhs []NextHop) {
	byProto := t.prefixes[prefix]
	if byProto == nil {
		byProto = make(map[Protocol]*Route, 1)
		t.prefixes[prefix] = byProto
	}
	t.seq++
	byProto[proto] = &Route{
		Prefix:   prefix,
		Protocol: proto,
		Distance: distance,
		Metric:   metric,
		NextHops: nhs,
		Seq:      t.seq,
		Created:  t.now(),
	}
	for _, nh := range nhs {
		t.ref(nh, prefix)
	}
}

func (t *Table) dropRoute(prefix netip.Prefix, proto Protocol) {
	byProto := t.prefixes[prefix]
	delete(byProto, proto)
	if len(byProto) == 0 {
		delete(t.prefixes, prefix)
	}
}

func (t *Table) ref(nh NextHop, prefix netip.Prefix) {
	refs := t.byNextHop[nh]
	if refs == nil {
		refs = make(map[netip.Prefix]int, 1)
		t.byNextHop[nh] = refs
	}
	refs[prefix]++
}

func (t *Table) unref(nh NextHop, prefix netip.Prefix) {
	refs := t.byNextHop[nh]
	if refs == nil {
		return
	}
	refs[prefix]--
	if refs[prefix] <= 0 {
		delete(refs, prefix)
	}
	if len(refs) == 0 {
		delete(t.byNextHop, nh)
	}
}

// -------------------------------------------------------------------------
// Reads
// -------------------------------------------------------------------------

// Routes returns copies of the routes for prefix ordered by protocol.
func (t *Table) Routes(prefix netip.Prefix) []Route {
	byProto := t.prefixes[prefix]
	out := make([]Route, 0, len(byProto))
	for _, r := range byProto {
		out = append(out, r.clone())
	}
	slices.SortFunc(out, func(a, b Route) int {
		return cmp.Compare(a.Protocol, b.Protocol)
	})
	return out
}

// Route returns a copy of the (prefix, proto) route.
func (t *Table) Route(prefix netip.Prefix, proto Protocol) (Route, bool) {
	r, ok := t.prefixes[prefix][proto]
	if !ok {
		return Route{}, false
	}
	return r.clone(), true
}

// Prefixes returns every prefix with at least one route, sorted.
func (t *Table) Prefixes() []netip.Prefix {
	out := make([]netip.Prefix, 0, len(t.prefixes))
	for p := range t.prefixes {
		out = append(out, p)
	}
	slices.SortFunc(out, comparePrefix)
	return out
}

// Has reports whether prefix has any route.
func (t *Table) Has(prefix netip.Prefix) bool {
	_, ok := t.prefixes[prefix]
	return ok
}

// Len returns the number of prefixes.
func (t *Table) Len() int {
	return len(t.prefixes)
}

// NextHops returns every next-hop referenced by any route.
func (t *Table) NextHops() []NextHop {
	out := make([]NextHop, 0, len(t.byNextHop))
	for nh := range t.byNextHop {
		out = append(out, nh)
	}
	return out
}

// PrefixesVia returns the prefixes with a route through nh.
func (t *Table) PrefixesVia(nh NextHop) []netip.Prefix {
	refs := t.byNextHop[nh]
	out := make([]netip.Prefix, 0, len(refs))
	for p := range refs {
		out = append(out, p)
	}
	return out
}

// CountByProtocol returns the number of routes per protocol.
func (t *Table) CountByProtocol() map[Protocol]int {
	out := make(map[Protocol]int, len(Protocols))
	for _, byProto := range t.prefixes {
		for proto := range byProto {
			out[proto]++
		}
	}
	return out
}

func (t *Table) routesOf(prefix netip.Prefix) map[Protocol]*Route {
	return t.prefixes[prefix]
}

// comparePrefix orders IPv4 before IPv6, then by address, then by length.
func comparePrefix(a, b netip.Prefix) int {
	if c := a.Addr().Compare(b.Addr()); c != 0 {
		return c
	}
	return cmp.Compare(a.Bits(), b.Bits())
}

func dedupNextHops(nhs []NextHop) []NextHop {
	seen := make(map[NextHop]struct{}, len(nhs))
	out := make([]NextHop, 0, len(nhs))
	for _, nh := range nhs {
		if _, ok := seen[nh]; ok {
			continue
		}
		seen[nh] = struct{}{}
		out = append(out, nh)
	}
	return out
}
