// internal/domain/favorite/repository_port.go
package favorite

import "context"

// Snapshot is a full point-in-time view of one user's favorites, keyed by
// product id. No partial deltas: consumers replace their state with it.
type Snapshot map[string]Mark

// Subscription is a live watch on one user's favorites.
//
// Snapshots delivers a full snapshot on every remote change, starting with
// the current state. The channel is closed when the subscription stops.
// Stop must be called when the identity changes or the consumer goes away;
// it is idempotent.
type Subscription interface {
	Snapshots() <-chan Snapshot
	Stop()
}

// Repository is the remote persistence port for favorites.
//
// Storage layout (matches the web client's Realtime Database paths):
// - users/{userID}/savedProducts/{productID} -> product snapshot
type Repository interface {
	// Put overwrites the mark document for (userID, mark.ProductID).
	Put(ctx context.Context, userID string, m Mark) error

	// Delete removes the mark document. Deleting an absent mark is not an
	// error.
	Delete(ctx context.Context, userID, productID string) error

	// Watch opens a subscription scoped to userID.
	Watch(ctx context.Context, userID string) (Subscription, error)
}
