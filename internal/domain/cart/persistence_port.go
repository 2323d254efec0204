// internal/domain/cart/persistence_port.go
package cart

import "context"

// LocalStore is a session-scoped key/value persistence port.
// The cart is mirrored here on every mutation and hydrated from here on
// startup; the store is never mutated independently.
//
// Get returns (value, found, err). A missing key is ("", false, nil),
// not an error.
type LocalStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}
