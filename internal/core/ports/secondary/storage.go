package secondary

import "context"

// KeyValueStore is the storage area records and drafts are persisted to.
// Values are opaque serialized text.
type KeyValueStore interface {
	// Get returns the value under key. ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value atomically
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
