package rib

import (
	"fmt"
	"net/netip"
	"strings"
)

// Event is a mutation submitted to the engine. The set of events is closed.
type Event interface {
	// Type is a short stable name used in logs, metrics and history.
	Type() string

	// Validate rejects malformed input before it reaches the RIB.
	Validate() error

	normalize() Event
	String() string
}

// Event type names.
const (
	EventRouteAdd        = "route_add"
	EventRouteRemove     = "route_remove"
	EventRouteAttrs      = "route_attrs"
	EventRouteReplace    = "route_replace"
	EventRouteWithdraw   = "route_withdraw"
	EventInterfaceSet    = "interface_set"
	EventInterfaceRemove = "interface_remove"
	EventAddressAdd      = "address_add"
	EventAddressRemove   = "address_remove"
	EventLinkUpdate      = "link_update"
)

// -------------------------------------------------------------------------
// Route Events
// -------------------------------------------------------------------------

// RouteAdd adds one next-hop to a route. A zero Distance selects the
// protocol default.
type RouteAdd struct {
	Prefix   netip.Prefix
	Protocol Protocol
	Distance uint32
	Metric   uint32
	NextHop  NextHop
}

// RouteRemove removes one next-hop from a route.
type RouteRemove struct {
	Prefix   netip.Prefix
	Protocol Protocol
	NextHop  NextHop
}

// RouteAttrs changes distance and metric of an existing route. A zero
// Distance selects the protocol default.
type RouteAttrs struct {
	Prefix   netip.Prefix
	Protocol Protocol
	Distance uint32
	Metric   uint32
}

// RouteReplace sets the full state of a route, as a re-announcement does.
// An empty NextHops withdraws the route.
type RouteReplace struct {
	Prefix   netip.Prefix
	Protocol Protocol
	Distance uint32
	Metric   uint32
	NextHops []NextHop
}

// RouteWithdraw removes a whole route.
type RouteWithdraw struct {
	Prefix   netip.Prefix
	Protocol Protocol
}

func (RouteAdd) Type() string      { return EventRouteAdd }
func (RouteRemove) Type() string   { return EventRouteRemove }
func (RouteAttrs) Type() string    { return EventRouteAttrs }
func (RouteReplace) Type() string  { return EventRouteReplace }
func (RouteWithdraw) Type() string { return EventRouteWithdraw }

// Validate implements Event.
func (e RouteAdd) Validate() error {
	if err := validateRouteKey(e.Prefix, e.Protocol); err != nil {
		return err
	}
	return validateNextHopFor(e.Prefix, e.NextHop)
}

// Validate implements Event.
func (e RouteRemove) Validate() error {
	if err := validateRouteKey(e.Prefix, e.Protocol); err != nil {
		return err
	}
	return validateNextHopFor(e.Prefix, e.NextHop)
}

// Validate implements Event.
func (e RouteAttrs) Validate() error {
	return validateRouteKey(e.Prefix, e.Protocol)
}

// Validate implements Event.
func (e RouteReplace) Validate() error {
	if err := validateRouteKey(e.Prefix, e.Protocol); err != nil {
		return err
	}
	for _, nh := range e.NextHops {
		if err := validateNextHopFor(e.Prefix, nh); err != nil {
			return err
		}
	}
	return nil
}

// Validate implements Event.
func (e RouteWithdraw) Validate() error {
	return validateRouteKey(e.Prefix, e.Protocol)
}

func (e RouteAdd) normalize() Event {
	e.Prefix = e.Prefix.Masked()
	e.NextHop = normalizeNextHop(e.NextHop)
	e.Distance = distanceOrDefault(e.Protocol, e.Distance)
	return e
}

func (e RouteRemove) normalize() Event {
	e.Prefix = e.Prefix.Masked()
	e.NextHop = normalizeNextHop(e.NextHop)
	return e
}

func (e RouteAttrs) normalize() Event {
	e.Prefix = e.Prefix.Masked()
	e.Distance = distanceOrDefault(e.Protocol, e.Distance)
	return e
}

func (e RouteReplace) normalize() Event {
	e.Prefix = e.Prefix.Masked()
	e.Distance = distanceOrDefault(e.Protocol, e.Distance)
	nhs := make([]NextHop, 0, len(e.NextHops))
	for _, nh := range e.NextHops {
		nhs = append(nhs, normalizeNextHop(nh))
	}
	e.NextHops = dedupNextHops(nhs)
	return e
}

func (e RouteWithdraw) normalize() Event {
	e.Prefix = e.Prefix.Masked()
	return e
}

func (e RouteAdd) String() string {
	return fmt.Sprintf("%s %s via %s distance %d metric %d", e.Protocol, e.Prefix, e.NextHop, e.Distance, e.Metric)
}

func (e RouteRemove) String() string {
	return fmt.Sprintf("%s %s via %s", e.Protocol, e.Prefix, e.NextHop)
}

func (e RouteAttrs) String() string {
	return fmt.Sprintf("%s %s distance %d metric %d", e.Protocol, e.Prefix, e.Distance, e.Metric)
}

func (e RouteReplace) String() string {
	parts := make([]string, 0, len(e.NextHops))
	for _, nh := range e.NextHops {
		parts = append(parts, nh.String())
	}
	return fmt.Sprintf("%s %s via [%s] distance %d metric %d",
		e.Protocol, e.Prefix, strings.Join(parts, " "), e.Distance, e.Metric)
}

func (e RouteWithdraw) String() string {
	return fmt.Sprintf("%s %s", e.Protocol, e.Prefix)
}

// -------------------------------------------------------------------------
// Interface Events
// -------------------------------------------------------------------------

// InterfaceSet creates an interface or replaces its configuration. The
// OperUp field is ignored; link state comes from LinkUpdate.
type InterfaceSet struct {
	Interface Interface
}

// InterfaceRemove destroys an interface and its addresses.
type InterfaceRemove struct {
	Name string
}

// AddressAdd assigns an address to a configured interface.
type AddressAdd struct {
	Interface string
	Address   netip.Prefix
}

// AddressRemove removes an address from an interface. Removing an absent
// address is a no-op.
type AddressRemove struct {
	Interface string
	Address   netip.Prefix
}

// LinkUpdate reports the operational state of an interface.
type LinkUpdate struct {
	Name string
	Up   bool
}

func (InterfaceSet) Type() string    { return EventInterfaceSet }
func (InterfaceRemove) Type() string { return EventInterfaceRemove }
func (AddressAdd) Type() string      { return EventAddressAdd }
func (AddressRemove) Type() string   { return EventAddressRemove }
func (LinkUpdate) Type() string      { return EventLinkUpdate }

// Validate implements Event.
func (e InterfaceSet) Validate() error { return e.Interface.Validate() }

// Validate implements Event.
func (e InterfaceRemove) Validate() error { return ValidateInterfaceName(e.Name) }

// Validate implements Event.
func (e AddressAdd) Validate() error {
	if err := ValidateInterfaceName(e.Interface); err != nil {
		return err
	}
	return validateAddress(e.Address)
}

// Validate implements Event.
func (e AddressRemove) Validate() error {
	if err := ValidateInterfaceName(e.Interface); err != nil {
		return err
	}
	return validateAddress(e.Address)
}

// Validate implements Event.
func (e LinkUpdate) Validate() error { return ValidateInterfaceName(e.Name) }

func (e InterfaceSet) normalize() Event {
	e.Interface = e.Interface.clone()
	e.Interface.Addresses = dedupAddresses(e.Interface.Addresses)
	return e
}

func (e InterfaceRemove) normalize() Event { return e }
func (e AddressAdd) normalize() Event      { return e }
func (e AddressRemove) normalize() Event   { return e }
func (e LinkUpdate) normalize() Event      { return e }

func (e InterfaceSet) String() string {
	i := e.Interface
	return fmt.Sprintf("%s admin_up=%t routing=%t addresses=%v", i.Name, i.AdminUp, i.Routing, i.Addresses)
}

func (e InterfaceRemove) String() string { return e.Name }
func (e AddressAdd) String() string      { return e.Interface + " " + e.Address.String() }
func (e AddressRemove) String() string   { return e.Interface + " " + e.Address.String() }
func (e LinkUpdate) String() string      { return fmt.Sprintf("%s up=%t", e.Name, e.Up) }

// -------------------------------------------------------------------------
// Validation helpers
// -------------------------------------------------------------------------

func validateRouteKey(prefix netip.Prefix, proto Protocol) error {
	if !prefix.IsValid() || prefix.Addr().Is4In6() {
		return fmt.Errorf("prefix %s: %w", prefix, ErrInvalidPrefix)
	}
	if !proto.Valid() {
		return fmt.Errorf("protocol %d: %w", uint8(proto), ErrInvalidProtocol)
	}
	if proto.Derived() {
		return fmt.Errorf("protocol %s: %w", proto, ErrDerivedProtocol)
	}
	return nil
}

func validateNextHopFor(prefix netip.Prefix, nh NextHop) error {
	if err := nh.Validate(); err != nil {
		return err
	}
	if nh.Kind() == NextHopAddress && nh.Addr.Unmap().Is4() != prefix.Addr().Is4() {
		return fmt.Errorf("next-hop %s for %s: %w", nh, prefix, ErrFamilyMismatch)
	}
	return nil
}

func normalizeNextHop(nh NextHop) NextHop {
	if nh.Addr.IsValid() {
		nh.Addr = nh.Addr.Unmap()
	}
	return nh
}

func distanceOrDefault(proto Protocol, d uint32) uint32 {
	if d == 0 {
		return proto.DefaultDistance()
	}
	return d
}

func dedupAddresses(addrs []netip.Prefix) []netip.Prefix {
	seen := make(map[netip.Prefix]struct{}, len(addrs))
	out := make([]netip.Prefix, 0, len(addrs))
	for _, a := range addrs {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}
