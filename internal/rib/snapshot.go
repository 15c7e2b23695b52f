package rib

import (
	"context"
	"maps"
	"net/netip"
	"slices"
)

// RouteConfig is one configured route in a configuration snapshot.
type RouteConfig struct {
	Prefix   netip.Prefix
	Protocol Protocol
	Distance uint32
	Metric   uint32
	NextHops []NextHop
}

// ConfigSnapshot is the complete persisted configuration.
type ConfigSnapshot struct {
	Interfaces []Interface
	Routes     []RouteConfig
}

// Empty reports whether the snapshot holds no configuration at all.
func (s *ConfigSnapshot) Empty() bool {
	return s == nil || (len(s.Interfaces) == 0 && len(s.Routes) == 0)
}

// ConfigSource loads the persisted configuration. Load must fail rather
// than return a partial snapshot.
type ConfigSource interface {
	Load(ctx context.Context) (*ConfigSnapshot, error)
}

// LinkStateSource reports the live operational state of interfaces by name.
type LinkStateSource interface {
	LinkStates(ctx context.Context) (map[string]bool, error)
}

// replayEvents expands a snapshot into events that rebuild it from an
// empty RIB: interfaces first, then one RouteAdd per configured next-hop.
func (s *ConfigSnapshot) replayEvents() []Event {
	if s == nil {
		return nil
	}
	out := make([]Event, 0, len(s.Interfaces)+len(s.Routes))
	for _, ifc := range s.Interfaces {
		out = append(out, InterfaceSet{Interface: ifc})
	}
	for _, rc := range s.Routes {
		for _, nh := range rc.NextHops {
			out = append(out, RouteAdd{
				Prefix:   rc.Prefix,
				Protocol: rc.Protocol,
				Distance: rc.Distance,
				Metric:   rc.Metric,
				NextHop:  nh,
			})
		}
	}
	return out
}

type routeKey struct {
	prefix netip.Prefix
	proto  Protocol
}

// DiffSnapshots returns the events that turn the configuration in prev into
// the configuration in next. Routes are compared as whole routes; changed
// routes are emitted as RouteReplace.
func DiffSnapshots(prev, next *ConfigSnapshot) []Event {
	if prev == nil {
		prev = &ConfigSnapshot{}
	}
	if next == nil {
		next = &ConfigSnapshot{}
	}

	var out []Event

	prevIfaces := make(map[string]Interface, len(prev.Interfaces))
	for _, ifc := range prev.Interfaces {
		prevIfaces[ifc.Name] = ifc
	}
	nextIfaces := make(map[string]Interface, len(next.Interfaces))
	for _, ifc := range next.Interfaces {
		nextIfaces[ifc.Name] = ifc
		old, ok := prevIfaces[ifc.Name]
		if !ok || !interfaceConfigEqual(old, ifc) {
			out = append(out, InterfaceSet{Interface: ifc})
		}
	}

	prevRoutes := indexRoutes(prev.Routes)
	nextRoutes := indexRoutes(next.Routes)
	for _, key := range sortedRouteKeys(nextRoutes) {
		rc := nextRoutes[key]
		old, ok := prevRoutes[key]
		if ok && routeConfigEqual(old, rc) {
			continue
		}
		out = append(out, RouteReplace{
			Prefix:   rc.Prefix,
			Protocol: rc.Protocol,
			Distance: rc.Distance,
			Metric:   rc.Metric,
			NextHops: slices.Clone(rc.NextHops),
		})
	}
	for _, key := range sortedRouteKeys(prevRoutes) {
		if _, ok := nextRoutes[key]; !ok {
			out = append(out, RouteWithdraw{Prefix: key.prefix, Protocol: key.proto})
		}
	}

	for _, name := range slices.Sorted(maps.Keys(prevIfaces)) {
		if _, ok := nextIfaces[name]; !ok {
			out = append(out, InterfaceRemove{Name: name})
		}
	}
	return out
}

func indexRoutes(routes []RouteConfig) map[routeKey]RouteConfig {
	out := make(map[routeKey]RouteConfig, len(routes))
	for _, rc := range routes {
		key := routeKey{prefix: rc.Prefix.Masked(), proto: rc.Protocol}
		if have, ok := out[key]; ok {
			have.NextHops = append(slices.Clone(have.NextHops), rc.NextHops...)
			out[key] = have
			continue
		}
		out[key] = rc
	}
	return out
}

func sortedRouteKeys(m map[routeKey]RouteConfig) []routeKey {
	keys := slices.Collect(maps.Keys(m))
	slices.SortFunc(keys, func(a, b routeKey) int {
		if c := comparePrefix(a.prefix, b.prefix); c != 0 {
			return c
		}
		return int(a.proto) - int(b.proto)
	})
	return keys
}

func interfaceConfigEqual(a, b Interface) bool {
	return a.AdminUp == b.AdminUp && a.Routing == b.Routing && slices.Equal(a.Addresses, b.Addresses)
}

func routeConfigEqual(a, b RouteConfig) bool {
	return distanceOrDefault(a.Protocol, a.Distance) == distanceOrDefault(b.Protocol, b.Distance) &&
		a.Metric == b.Metric &&
		nextHopSetEqual(dedupNextHops(a.NextHops), dedupNextHops(b.NextHops))
}
