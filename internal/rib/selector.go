package rib

import (
	"cmp"
	"errors"
	"fmt"
	"strings"
)

// TieBreak decides between routes of equal administrative distance from
// different protocols.
type TieBreak uint8

const (
	// TieBreakProtocol prefers the protocol with the lower fixed rank
	// (connected, static, bgp, zebra). Metrics are never compared across
	// protocols.
	TieBreakProtocol TieBreak = iota

	// TieBreakMetric prefers the lower metric, then protocol rank.
	TieBreakMetric

	// TieBreakOldest prefers the route created first, then protocol rank.
	// Age is not persisted: a restart rebuilds stored routes in store
	// order, so the route listed first in the store becomes the oldest.
	TieBreakOldest
)

// String returns the configuration name of the tie-break rule.
func (tb TieBreak) String() string {
	switch tb {
	case TieBreakProtocol:
		return "protocol"
	case TieBreakMetric:
		return "metric"
	case TieBreakOldest:
		return "oldest"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(tb))
	}
}

// ErrInvalidTieBreak indicates an unknown tie-break policy name.
var ErrInvalidTieBreak = errors.New("tie-break must be protocol, metric or oldest")

// ParseTieBreak maps a configuration name to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "", "protocol":
		return TieBreakProtocol, nil
	case "metric":
		return TieBreakMetric, nil
	case "oldest":
		return TieBreakOldest, nil
	default:
		return 0, fmt.Errorf("tie-break %q: %w", s, ErrInvalidTieBreak)
	}
}

// Policy configures best-path selection.
type Policy struct {
	// TieBreak applies between protocols reporting the same distance.
	TieBreak TieBreak

	// FallbackToActive selects the best route among those with at least
	// one active next-hop. When false, the lowest-distance route stays
	// selected even with no active next-hops and the prefix has no FIB
	// entry until they recover or the route is withdrawn.
	FallbackToActive bool
}

// Selection is the outcome of best-path selection for one prefix.
type Selection struct {
	// Route is the selected route.
	Route Route

	// Active is the active subset of Route.NextHops in configured order.
	// Empty means the prefix has no FIB entry.
	Active []NextHop
}

// Installable reports whether the selection produces a FIB entry.
func (s Selection) Installable() bool {
	return len(s.Active) > 0
}

// compare orders two routes of one prefix; negative means a is preferred.
func (p Policy) compare(a, b *Route) int {
	if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
		return c
	}
	switch p.TieBreak {
	case TieBreakMetric:
		if c := cmp.Compare(a.Metric, b.Metric); c != 0 {
			return c
		}
	case TieBreakOldest:
		if c := cmp.Compare(a.Seq, b.Seq); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Protocol.rank(), b.Protocol.rank())
}

// Select picks the best route among routes and computes its active
// next-hops. Returns false when routes is empty.
func Select(routes map[Protocol]*Route, res *Resolver, pol Policy) (Selection, bool) {
	var best, bestActive *Route
	var bestActiveSet []NextHop

	for _, proto := range Protocols {
		r, ok := routes[proto]
		if !ok {
			continue
		}
		if best == nil || pol.compare(r, best) < 0 {
			best = r
		}
		if !pol.FallbackToActive {
			continue
		}
		active := res.ActiveSet(r.NextHops)
		if len(active) == 0 {
			continue
		}
		if bestActive == nil || pol.compare(r, bestActive) < 0 {
			bestActive = r
			bestActiveSet = active
		}
	}

	if best == nil {
		return Selection{}, false
	}
	if bestActive != nil {
		return Selection{Route: bestActive.clone(), Active: bestActiveSet}, true
	}
	return Selection{Route: best.clone(), Active: res.ActiveSet(best.NextHops)}, true
}
