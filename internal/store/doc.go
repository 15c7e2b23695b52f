// Package store implements the persisted configuration stores that feed
// the RIB engine.
//
// A store serves two roles. As a rib.ConfigSource it returns the complete
// configuration snapshot that restart reconciliation rebuilds from. At
// runtime it turns configuration edits into engine events by diffing each
// new snapshot against the previous one, so the engine sees the same
// RouteReplace/RouteWithdraw/InterfaceSet stream whether the change came
// from a reloaded YAML file or an OVSDB transaction.
package store
