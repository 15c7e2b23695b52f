package rib

import (
	"fmt"
	"net/netip"
	"strings"
)

// NextHopKind distinguishes address next-hops from interface next-hops.
type NextHopKind uint8

const (
	// NextHopAddress is a directly-addressed next-hop resolved through a
	// connected subnet.
	NextHopAddress NextHopKind = iota + 1

	// NextHopInterface egresses a named interface without address
	// resolution.
	NextHopInterface
)

// String returns the human-readable name for the next-hop kind.
func (k NextHopKind) String() string {
	switch k {
	case NextHopAddress:
		return "address"
	case NextHopInterface:
		return "interface"
	default:
		return "invalid"
	}
}

// maxIfNameLen is IFNAMSIZ minus the terminating NUL.
const maxIfNameLen = 15

// NextHop is either an address (Addr set) or an interface name (Interface
// set), never both. The zero value is invalid. NextHop is comparable and
// is used directly as a map key.
type NextHop struct {
	Addr      netip.Addr
	Interface string
}

// AddrNextHop returns an address next-hop.
func AddrNextHop(addr netip.Addr) NextHop {
	return NextHop{Addr: addr.Unmap()}
}

// IfaceNextHop returns an interface next-hop.
func IfaceNextHop(name string) NextHop {
	return NextHop{Interface: name}
}

// ParseNextHop parses s as an IP address, falling back to an interface name.
func ParseNextHop(s string) (NextHop, error) {
	s = strings.TrimSpace(s)
	if addr, err := netip.ParseAddr(s); err == nil {
		nh := AddrNextHop(addr)
		return nh, nh.Validate()
	}
	nh := IfaceNextHop(s)
	if err := nh.Validate(); err != nil {
		return NextHop{}, err
	}
	return nh, nil
}

// Kind returns the next-hop form, or zero for an invalid next-hop.
func (n NextHop) Kind() NextHopKind {
	switch {
	case n.Addr.IsValid() && n.Interface == "":
		return NextHopAddress
	case !n.Addr.IsValid() && n.Interface != "":
		return NextHopInterface
	default:
		return 0
	}
}

// String returns the address or interface name.
func (n NextHop) String() string {
	if n.Addr.IsValid() {
		return n.Addr.String()
	}
	return n.Interface
}

// Validate checks the next-hop is exactly one well-formed variant.
func (n NextHop) Validate() error {
	switch n.Kind() {
	case NextHopAddress:
		if n.Addr.IsUnspecified() || n.Addr.IsMulticast() {
			return fmt.Errorf("next-hop %s: %w", n.Addr, ErrInvalidNextHop)
		}
		return nil
	case NextHopInterface:
		if err := ValidateInterfaceName(n.Interface); err != nil {
			return fmt.Errorf("next-hop %q: %w: %w", n.Interface, ErrInvalidNextHop, err)
		}
		return nil
	default:
		return fmt.Errorf("next-hop %+v: %w", n, ErrInvalidNextHop)
	}
}

// ValidateInterfaceName checks name against kernel interface naming rules.
func ValidateInterfaceName(name string) error {
	if name == "" || len(name) > maxIfNameLen || name == "." || name == ".." {
		return fmt.Errorf("interface %q: %w", name, ErrInvalidInterface)
	}
	if strings.ContainsAny(name, "/: \t\n") {
		return fmt.Errorf("interface %q: %w", name, ErrInvalidInterface)
	}
	return nil
}

// nextHopSetEqual reports whether a and b hold the same next-hops,
// ignoring order.
func nextHopSetEqual(a, b []NextHop) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[NextHop]struct{}, len(a))
	for _, nh := range a {
		set[nh] = struct{}{}
	}
	for _, nh := range b {
		if _, ok := set[nh]; !ok {
			return false
		}
	}
	return true
}
