package store

import "errors"

var (
	// ErrNotLoaded indicates a runtime reload before the first snapshot
	// was loaded.
	ErrNotLoaded = errors.New("store has no loaded snapshot")

	// ErrNoVRF indicates the OVSDB database has no row for the configured
	// VRF.
	ErrNoVRF = errors.New("vrf not found")

	// ErrInvalidRow indicates an OVSDB row that cannot be converted into
	// configuration. Such rows are skipped.
	ErrInvalidRow = errors.New("invalid row")

	// ErrTransactionFailed indicates an OVSDB transaction returned
	// operation errors.
	ErrTransactionFailed = errors.New("ovsdb transaction failed")
)
