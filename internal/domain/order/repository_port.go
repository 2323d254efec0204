// internal/domain/order/repository_port.go
package order

import "context"

// Repository is the read-side persistence port for orders.
type Repository interface {
	// ListByUserID returns the user's orders, newest first.
	// An unknown user yields an empty slice, not an error.
	ListByUserID(ctx context.Context, userID string) ([]Order, error)
}
