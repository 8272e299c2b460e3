// Package backend selects and wires the storage slot behind the ledger
// based on configuration.
package backend

import (
	"tally/internal/storage"
)

// Type represents the storage backend kind.
type Type string

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result contains the opened slot and an optional cleanup function.
type Result struct {
	Slot    storage.Slot
	Cleanup CleanupFunc
}

// Config holds what each backend needs to open its slot.
type Config struct {
	Type Type

	// File slot
	StorePath string

	// SQLite slot
	SQLiteDBPath string
}
