package gobgp

import (
	"fmt"
	"net/netip"

	apipb "github.com/osrg/gobgp/v3/api"
)

// DecodePath converts a GoBGP API path into a Path.
//
// Only IPv4 and IPv6 unicast NLRI are supported. The next-hop is taken from
// the NEXT_HOP attribute, or for MP_REACH_NLRI from the first global
// next-hop; a link-local next-hop is used only when no global one is present.
func DecodePath(p *apipb.Path) (Path, error) {
	var out Path

	nlri := p.GetNlri()
	if nlri == nil {
		return out, fmt.Errorf("decode path: %w: missing NLRI", ErrUnsupportedNLRI)
	}

	var ip apipb.IPAddressPrefix
	if !nlri.MessageIs(&ip) {
		return out, fmt.Errorf("decode path: %w: %s", ErrUnsupportedNLRI, nlri.GetTypeUrl())
	}
	if err := nlri.UnmarshalTo(&ip); err != nil {
		return out, fmt.Errorf("decode path NLRI: %w", err)
	}

	a, err := netip.ParseAddr(ip.GetPrefix())
	if err != nil {
		return out, fmt.Errorf("decode path prefix %q: %w", ip.GetPrefix(), err)
	}
	prefix, err := a.Unmap().Prefix(int(ip.GetPrefixLen()))
	if err != nil {
		return out, fmt.Errorf("decode path prefix %s/%d: %w", ip.GetPrefix(), ip.GetPrefixLen(), err)
	}
	out.Prefix = prefix

	if n, err := netip.ParseAddr(p.GetNeighborIp()); err == nil {
		out.Neighbor = n.Unmap()
	}

	if p.GetIsWithdraw() {
		out.Withdraw = true
		return out, nil
	}

	for _, attr := range p.GetPattrs() {
		switch {
		case attr.MessageIs(&apipb.NextHopAttribute{}):
			var nh apipb.NextHopAttribute
			if err := attr.UnmarshalTo(&nh); err != nil {
				return out, fmt.Errorf("decode NEXT_HOP: %w", err)
			}
			if a, err := netip.ParseAddr(nh.GetNextHop()); err == nil {
				out.NextHop = a.Unmap()
			}
		case attr.MessageIs(&apipb.MpReachNLRIAttribute{}):
			var mp apipb.MpReachNLRIAttribute
			if err := attr.UnmarshalTo(&mp); err != nil {
				return out, fmt.Errorf("decode MP_REACH_NLRI: %w", err)
			}
			if a, ok := pickNextHop(mp.GetNextHops()); ok {
				out.NextHop = a
			}
		case attr.MessageIs(&apipb.MultiExitDiscAttribute{}):
			var med apipb.MultiExitDiscAttribute
			if err := attr.UnmarshalTo(&med); err != nil {
				return out, fmt.Errorf("decode MULTI_EXIT_DISC: %w", err)
			}
			out.MED = med.GetMed()
		}
	}

	if !out.NextHop.IsValid() || out.NextHop.IsUnspecified() {
		return out, fmt.Errorf("decode path %s: %w", prefix, ErrNoNextHop)
	}
	if out.NextHop.Is4() != prefix.Addr().Is4() {
		return out, fmt.Errorf("decode path %s: %w: next-hop %s", prefix, ErrNoNextHop, out.NextHop)
	}

	return out, nil
}

// pickNextHop returns the first global next-hop, falling back to the first
// parseable one.
func pickNextHop(hops []string) (netip.Addr, bool) {
	var fallback netip.Addr
	for _, h := range hops {
		a, err := netip.ParseAddr(h)
		if err != nil {
			continue
		}
		a = a.Unmap()
		if !a.IsLinkLocalUnicast() {
			return a, true
		}
		if !fallback.IsValid() {
			fallback = a
		}
	}
	return fallback, fallback.IsValid()
}
