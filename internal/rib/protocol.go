package rib

import (
	"fmt"
	"strings"
)

// Protocol identifies the source of a route.
type Protocol uint8

const (
	// ProtocolConnected marks routes derived from interface addresses.
	// They exist in the kernel already and are never programmed.
	ProtocolConnected Protocol = iota + 1

	// ProtocolStatic marks administratively configured routes.
	ProtocolStatic

	// ProtocolBGP marks routes learned from the BGP speaker.
	ProtocolBGP

	// ProtocolKernel marks routes mirrored from the kernel table (the
	// "zebra" route type). Like connected routes they are never written
	// back to the kernel.
	ProtocolKernel
)

// Protocols lists every known protocol in rank order.
var Protocols = []Protocol{ProtocolConnected, ProtocolStatic, ProtocolBGP, ProtocolKernel}

// Default administrative distances.
const (
	DistanceConnected uint32 = 0
	DistanceStatic    uint32 = 1
	DistanceBGP       uint32 = 20
	DistanceKernel    uint32 = 0
)

// String returns the route type name used in query output.
func (p Protocol) String() string {
	switch p {
	case ProtocolConnected:
		return "connected"
	case ProtocolStatic:
		return "static"
	case ProtocolBGP:
		return "bgp"
	case ProtocolKernel:
		return "zebra"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(p))
	}
}

// ParseProtocol maps a protocol name to a Protocol. "kernel" is accepted
// as an alias of "zebra".
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "connected":
		return ProtocolConnected, nil
	case "static":
		return ProtocolStatic, nil
	case "bgp":
		return ProtocolBGP, nil
	case "zebra", "kernel":
		return ProtocolKernel, nil
	default:
		return 0, fmt.Errorf("protocol %q: %w", s, ErrInvalidProtocol)
	}
}

// Valid reports whether p is a known protocol.
func (p Protocol) Valid() bool {
	return p >= ProtocolConnected && p <= ProtocolKernel
}

// DefaultDistance returns the administrative distance applied when a route
// is configured without an explicit distance.
func (p Protocol) DefaultDistance() uint32 {
	switch p {
	case ProtocolStatic:
		return DistanceStatic
	case ProtocolBGP:
		return DistanceBGP
	case ProtocolKernel:
		return DistanceKernel
	default:
		return DistanceConnected
	}
}

// Programmable reports whether the FIB synchronizer writes routes of this
// protocol into the kernel.
func (p Protocol) Programmable() bool {
	return p == ProtocolStatic || p == ProtocolBGP
}

// Derived reports whether routes of this protocol are computed by the
// engine rather than configured.
func (p Protocol) Derived() bool {
	return p == ProtocolConnected
}

// rank is the fixed protocol precedence used as the last tie-break between
// routes of equal distance.
func (p Protocol) rank() int {
	return int(p)
}
