package rib

import (
	"fmt"
	"net/netip"
	"slices"
)

// Interface is the configured state of a named interface together with the
// operational state last reported by the link monitor.
type Interface struct {
	// Name is the kernel interface name.
	Name string

	// AdminUp is false after "shutdown".
	AdminUp bool

	// OperUp is the link state. Interfaces never reported by the link
	// monitor are treated as operationally up.
	OperUp bool

	// Routing is false for pure layer-2 ports ("no routing").
	Routing bool

	// Addresses holds primary and secondary addresses of both families
	// in host/prefix-length form (e.g. 10.0.0.1/24).
	Addresses []netip.Prefix
}

// Eligible reports whether next-hops through this interface can be active.
func (i Interface) Eligible() bool {
	return i.AdminUp && i.OperUp && i.Routing
}

// Subnets returns the masked subnets of the interface addresses.
func (i Interface) Subnets() []netip.Prefix {
	out := make([]netip.Prefix, 0, len(i.Addresses))
	for _, a := range i.Addresses {
		out = append(out, a.Masked())
	}
	return out
}

// Validate checks the interface name and addresses.
func (i Interface) Validate() error {
	if err := ValidateInterfaceName(i.Name); err != nil {
		return err
	}
	for _, a := range i.Addresses {
		if err := validateAddress(a); err != nil {
			return fmt.Errorf("interface %s: %w", i.Name, err)
		}
	}
	return nil
}

func (i Interface) clone() Interface {
	i.Addresses = slices.Clone(i.Addresses)
	return i
}

func validateAddress(a netip.Prefix) error {
	if !a.IsValid() || a.Addr().IsUnspecified() || a.Addr().Is4In6() {
		return fmt.Errorf("address %s: %w", a, ErrInvalidAddress)
	}
	return nil
}
