package pocketcube

import "errors"

// Sentinel errors for the pocketcube package.
var (
	// ErrNoTable means the persisted distance table was not found.
	// Build it first (CLI: pocketcube build).
	ErrNoTable = errors.New("pocketcube: state table not found")
)
