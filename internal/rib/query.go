package rib

import (
	"context"
	"fmt"
	"net/netip"
	"slices"
	"strconv"
	"time"
)

// -------------------------------------------------------------------------
// Query Views
// -------------------------------------------------------------------------

// RIBEntry is one configured next-hop of one route.
type RIBEntry struct {
	Prefix   netip.Prefix
	Protocol Protocol
	Distance uint32
	Metric   uint32
	NextHop  NextHop

	// Active is the derived next-hop activity.
	Active bool

	// Selected is true when the route is the prefix's selected route.
	Selected bool
}

// FIBEntry is the forwarding view of one prefix: the active next-hops of
// its selected route.
type FIBEntry struct {
	Prefix   netip.Prefix
	Protocol Protocol
	Distance uint32
	Metric   uint32
	NextHops []NextHop

	// Installed is true when the kernel holds exactly these next-hops.
	// Connected and kernel routes are never installed by the engine.
	Installed bool

	// Pending is true while a failed kernel operation awaits retry.
	Pending bool
}

// Status summarizes the engine state.
type Status struct {
	Phase         Phase
	PhaseSince    time.Time
	LastError     string
	Prefixes      int
	Routes        map[Protocol]int
	Interfaces    int
	FIBEntries    int
	KernelOwned   int
	KernelPending int
	TieBreak      TieBreak
	Fallback      bool
}

// matchPrefix reports whether p passes filter. An invalid filter matches
// everything.
func matchPrefix(filter, p netip.Prefix) bool {
	return !filter.IsValid() || filter.Masked() == p
}

// ShowRIB returns every configured next-hop of every route, including
// inactive next-hops and routes that are not selected. A zero filter
// returns all prefixes.
func (e *Engine) ShowRIB(filter netip.Prefix) []RIBEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []RIBEntry
	for _, p := range e.table.Prefixes() {
		if !matchPrefix(filter, p) {
			continue
		}
		sel, hasSel := e.selected[p]
		for _, r := range e.table.Routes(p) {
			selected := hasSel && sel.Route.Protocol == r.Protocol
			for _, nh := range r.NextHops {
				out = append(out, RIBEntry{
					Prefix:   p,
					Protocol: r.Protocol,
					Distance: r.Distance,
					Metric:   r.Metric,
					NextHop:  nh,
					Active:   e.resolver.Active(nh),
					Selected: selected,
				})
			}
		}
	}
	return out
}

// ShowFIB returns the forwarding view: for every prefix whose selected
// route has at least one active next-hop, those next-hops.
func (e *Engine) ShowFIB(filter netip.Prefix) []FIBEntry {
	e.mu.RLock()
	prefixes := make([]netip.Prefix, 0, len(e.selected))
	for p, sel := range e.selected {
		if sel.Installable() && matchPrefix(filter, p) {
			prefixes = append(prefixes, p)
		}
	}
	slices.SortFunc(prefixes, comparePrefix)

	out := make([]FIBEntry, 0, len(prefixes))
	for _, p := range prefixes {
		sel := e.selected[p]
		out = append(out, FIBEntry{
			Prefix:   p,
			Protocol: sel.Route.Protocol,
			Distance: sel.Route.Distance,
			Metric:   sel.Route.Metric,
			NextHops: slices.Clone(sel.Active),
		})
	}
	e.mu.RUnlock()

	e.fib.mu.RLock()
	defer e.fib.mu.RUnlock()
	for i := range out {
		programmed, ok := e.fib.programmed[out[i].Prefix]
		out[i].Installed = ok && nextHopSetEqual(programmed, out[i].NextHops)
		_, out[i].Pending = e.fib.pending[out[i].Prefix]
	}
	return out
}

// ShowKernelRoutes lists the kernel forwarding table, owned and foreign
// routes alike.
func (e *Engine) ShowKernelRoutes(ctx context.Context, filter netip.Prefix) ([]KernelRoute, error) {
	routes, err := e.kernel.Routes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list kernel routes: %w", err)
	}
	out := routes[:0]
	for _, kr := range routes {
		if matchPrefix(filter, kr.Prefix) {
			out = append(out, kr)
		}
	}
	slices.SortFunc(out, func(a, b KernelRoute) int {
		return comparePrefix(a.Prefix, b.Prefix)
	})
	return out, nil
}

// Interfaces returns the interface table with operational state.
func (e *Engine) Interfaces() []Interface {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.interfacesLocked()
}

// Events returns the recent event history, oldest first.
func (e *Engine) Events() []HistoryEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.list()
}

// Status returns a summary of the engine state.
func (e *Engine) Status() Status {
	e.mu.RLock()
	st := Status{
		Phase:      e.phase,
		PhaseSince: e.phaseSince,
		Prefixes:   e.table.Len(),
		Routes:     e.table.CountByProtocol(),
		Interfaces: len(e.ifaces),
		TieBreak:   e.policy.TieBreak,
		Fallback:   e.policy.FallbackToActive,
	}
	if e.lastErr != nil {
		st.LastError = e.lastErr.Error()
	}
	for _, sel := range e.selected {
		if sel.Installable() {
			st.FIBEntries++
		}
	}
	e.mu.RUnlock()

	st.KernelOwned = len(e.ownedPrefixes())
	st.KernelPending = e.fib.pendingCount()
	return st
}

// -------------------------------------------------------------------------
// Route Dictionaries: canonical external query shape
// -------------------------------------------------------------------------

// NextHopAttrs are the per-next-hop attributes of a route dictionary.
type NextHopAttrs struct {
	Distance  string `json:"Distance"  yaml:"Distance"`
	Metric    string `json:"Metric"    yaml:"Metric"`
	RouteType string `json:"RouteType" yaml:"RouteType"`
}

// RouteDict is the canonical route shape consumed by CLI and test
// harnesses: the prefix, the next-hop count and per-next-hop attributes.
type RouteDict struct {
	Route          string                  `json:"Route"          yaml:"Route"`
	NumberNexthops string                  `json:"NumberNexthops" yaml:"NumberNexthops"`
	NextHops       map[string]NextHopAttrs `json:"NextHops"       yaml:"NextHops"`
}

// Count returns NumberNexthops as an integer.
func (d RouteDict) Count() int {
	n, _ := strconv.Atoi(d.NumberNexthops)
	return n
}

// RIBRouteDicts returns one dictionary per route with all configured
// next-hops.
func (e *Engine) RIBRouteDicts(filter netip.Prefix) []RouteDict {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []RouteDict
	for _, p := range e.table.Prefixes() {
		if !matchPrefix(filter, p) {
			continue
		}
		for _, r := range e.table.Routes(p) {
			out = append(out, newRouteDict(p, r.Protocol, r.Distance, r.Metric, r.NextHops))
		}
	}
	return out
}

// FIBRouteDicts returns one dictionary per FIB entry with the active
// next-hops of the selected route.
func (e *Engine) FIBRouteDicts(filter netip.Prefix) []RouteDict {
	entries := e.ShowFIB(filter)
	out := make([]RouteDict, 0, len(entries))
	for _, fe := range entries {
		out = append(out, newRouteDict(fe.Prefix, fe.Protocol, fe.Distance, fe.Metric, fe.NextHops))
	}
	return out
}

func newRouteDict(p netip.Prefix, proto Protocol, distance, metric uint32, nhs []NextHop) RouteDict {
	d := RouteDict{
		Route:          p.String(),
		NumberNexthops: strconv.Itoa(len(nhs)),
		NextHops:       make(map[string]NextHopAttrs, len(nhs)),
	}
	for _, nh := range nhs {
		d.NextHops[nh.String()] = NextHopAttrs{
			Distance:  strconv.FormatUint(uint64(distance), 10),
			Metric:    strconv.FormatUint(uint64(metric), 10),
			RouteType: proto.String(),
		}
	}
	return d
}
