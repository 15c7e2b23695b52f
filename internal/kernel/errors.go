package kernel

import "errors"

var (
	// ErrUnsupported indicates the netlink backend is not available on
	// this platform.
	ErrUnsupported = errors.New("netlink kernel backend requires linux")

	// ErrLinkNotFound indicates an interface next-hop names a link the
	// kernel does not know.
	ErrLinkNotFound = errors.New("link not found")

	// ErrNoNextHops indicates a Replace call with an empty next-hop set.
	ErrNoNextHops = errors.New("route has no next-hops")

	// ErrSubscriptionClosed indicates the kernel ended the link
	// notification subscription.
	ErrSubscriptionClosed = errors.New("link subscription closed")

	// ErrInvalidBackend indicates an unknown backend name.
	ErrInvalidBackend = errors.New("kernel backend must be netlink or memory")
)
