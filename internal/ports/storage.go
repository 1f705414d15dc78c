package ports

import "context"

// KeyValueStore is the applicant's browser-side key-value storage for one
// request. Values are opaque strings.
//
// Implementations are bound to a single request/response pair and are not
// safe for concurrent use.
type KeyValueStore interface {
	// GetItem returns the value stored under key. ok is false when the key
	// is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem stores value under key, replacing any previous value.
	// Returns domain.ErrTooLarge when the store cannot hold the value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error
}
