package rib

import "errors"

// -------------------------------------------------------------------------
// Configuration Errors: rejected at ingestion, never admitted to the RIB
// -------------------------------------------------------------------------

var (
	// ErrInvalidPrefix indicates a route prefix is missing or malformed.
	ErrInvalidPrefix = errors.New("invalid prefix")

	// ErrInvalidNextHop indicates a next-hop is neither a valid address nor
	// a valid interface name, or mixes both forms.
	ErrInvalidNextHop = errors.New("invalid next-hop")

	// ErrInvalidProtocol indicates an unknown route source protocol.
	ErrInvalidProtocol = errors.New("invalid protocol")

	// ErrDerivedProtocol indicates an attempt to configure a route for a
	// protocol whose routes are derived by the engine (connected).
	ErrDerivedProtocol = errors.New("protocol routes are derived from interface addresses")

	// ErrFamilyMismatch indicates an address next-hop whose family differs
	// from the route prefix family.
	ErrFamilyMismatch = errors.New("next-hop address family does not match prefix")

	// ErrAttrConflict indicates an add for an existing route with a
	// different distance or metric. Attribute changes must use
	// SetRouteAttrs.
	ErrAttrConflict = errors.New("route attributes conflict with existing route")

	// ErrRouteNotFound indicates no route exists for a (prefix, protocol) pair.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidInterface indicates a malformed interface name.
	ErrInvalidInterface = errors.New("invalid interface name")

	// ErrUnknownInterface indicates an address operation on an interface
	// that has not been configured.
	ErrUnknownInterface = errors.New("unknown interface")

	// ErrInvalidAddress indicates a malformed interface address.
	ErrInvalidAddress = errors.New("invalid interface address")

	// ErrUnknownEvent indicates an event type the engine cannot apply.
	ErrUnknownEvent = errors.New("unknown event type")
)

// -------------------------------------------------------------------------
// Runtime Errors
// -------------------------------------------------------------------------

var (
	// ErrStoreUnavailable indicates the configuration store could not be
	// read during restart reconciliation. Fatal to startup.
	ErrStoreUnavailable = errors.New("configuration store unavailable")

	// ErrKernelUnavailable indicates the kernel routing table could not be
	// listed during restart reconciliation. Fatal to startup.
	ErrKernelUnavailable = errors.New("kernel routing table unavailable")

	// ErrSuspectEmptyConfig indicates the loaded configuration is empty
	// while the kernel still holds owned routes. Treating it as desired
	// state would flush live routes, so startup is refused.
	ErrSuspectEmptyConfig = errors.New("configuration is empty but kernel holds owned routes")

	// ErrEngineStopped indicates the engine event loop is not running.
	ErrEngineStopped = errors.New("rib engine stopped")

	// ErrEngineRunning indicates Run was called on an engine that already ran.
	ErrEngineRunning = errors.New("rib engine already started")
)
