package refdata

import (
	"context"
	"time"
)

// LocalitySource enumerates all postal locality records.
type LocalitySource interface {
	Localities(ctx context.Context) ([]Locality, error)
}

// MunicipalitySource enumerates all municipality register records.
type MunicipalitySource interface {
	Municipalities(ctx context.Context) ([]Municipality, error)
}

// StreetSource enumerates all street directory records.
type StreetSource interface {
	Streets(ctx context.Context) ([]Street, error)
}

// State describes where a cache is in its lifecycle.
type State int

const (
	// StateUnloaded means no load has been attempted yet.
	StateUnloaded State = iota
	// StateLoaded means the dataset loaded and holds at least one record.
	StateLoaded
	// StateEmpty means a load was attempted but the cache holds no records,
	// either because the source failed (Err is set) or the dataset was empty.
	StateEmpty
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoaded:
		return "loaded"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Status is the outcome of a cache load. Validators only care about
// Available, but callers that want to distinguish "source was unreachable"
// from "dataset is genuinely empty" can inspect Err.
type Status struct {
	State    State
	Records  int
	LoadedAt time.Time
	Err      error
}
