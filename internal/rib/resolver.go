package rib

import (
	"net/netip"

	"github.com/gaissmai/cidrtree"
)

// Resolver answers whether a next-hop is currently usable for forwarding.
// A Resolver is an immutable view over one interface table; the engine
// builds a new one after every interface change.
type Resolver struct {
	eligible map[string]bool
	lookup   func(netip.Addr) (netip.Prefix, bool)
}

// NewResolver indexes the subnets of every eligible interface (admin up,
// oper up, routing enabled) for longest-prefix lookup.
func NewResolver(ifaces []Interface) *Resolver {
	r := &Resolver{eligible: make(map[string]bool, len(ifaces))}

	var subnets []netip.Prefix
	for _, ifc := range ifaces {
		ok := ifc.Eligible()
		r.eligible[ifc.Name] = ok
		if ok {
			subnets = append(subnets, ifc.Subnets()...)
		}
	}

	tree := cidrtree.New(subnets...)
	r.lookup = tree.Lookup
	return r
}

// Active reports whether nh is reachable. An address next-hop is active iff
// it falls inside a subnet of an eligible interface. An interface next-hop
// is active iff the interface exists and is eligible. Unknown interfaces
// and malformed next-hops are inactive.
func (r *Resolver) Active(nh NextHop) bool {
	switch nh.Kind() {
	case NextHopAddress:
		if r.lookup == nil {
			return false
		}
		_, ok := r.lookup(nh.Addr.Unmap())
		return ok
	case NextHopInterface:
		return r.eligible[nh.Interface]
	default:
		return false
	}
}

// ActiveSet returns the active subset of nhs, preserving order.
func (r *Resolver) ActiveSet(nhs []NextHop) []NextHop {
	out := make([]NextHop, 0, len(nhs))
	for _, nh := range nhs {
		if r.Active(nh) {
			out = append(out, nh)
		}
	}
	return out
}

// Resolve is the stateless form of Resolver.Active.
func Resolve(nh NextHop, ifaces []Interface) bool {
	return NewResolver(ifaces).Active(nh)
}
