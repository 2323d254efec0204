// internal/domain/product/repository_port.go
package product

import "context"

// Repository is the persistence port for the catalog.
//
// Storage (Firestore):
// - collection: products
// - docId: product id
type Repository interface {
	// List returns the full catalog. Malformed documents are skipped at the
	// parse boundary, never surfaced.
	List(ctx context.Context) ([]Product, error)

	// GetByID returns (nil, nil) when the product does not exist.
	GetByID(ctx context.Context, id string) (*Product, error)

	// Save upserts a product (used by the catalog seeder).
	Save(ctx context.Context, p Product) error
}
