// Package rib implements the routing information base and its forwarding
// table synchronisation.
//
// An Engine owns one RIB per VRF. Configuration changes, protocol route
// announcements and link state changes are serialized through the engine's
// event loop: each event updates the route Table, the Resolver re-evaluates
// next-hop activity, the selector recomputes the winning route for the
// affected prefixes only, and the FIB synchronizer programs the difference
// into the kernel. On startup the engine runs the restart reconciler, which
// rebuilds the RIB from the configuration store and removes kernel routes
// that are no longer configured.
package rib
