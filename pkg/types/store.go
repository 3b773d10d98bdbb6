package types

import (
	"encoding/json"
	"errors"
)

// Store is the persistence contract for the tracker's blobs. Reads and
// writes never fail loudly: a missing, malformed, or unreachable value
// reads as absent, and a failed write is dropped after logging. The
// worst case for a caller is a silently ignored mutation.
type Store interface {
	// Get returns the decoded value for key, or (nil, false) when the
	// key is absent or its stored value is malformed.
	Get(key string) (json.RawMessage, bool)

	// Set serializes value and persists it under key.
	Set(key string, value any)

	// Remove deletes the value stored under key.
	Remove(key string)
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
