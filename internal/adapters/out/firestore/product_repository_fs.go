// internal/adapters/out/firestore/product_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	proddom "naturalglow/internal/domain/product"
)

// ProductRepositoryFS implements product.Repository on Firestore.
//
// Collection design:
// - collection: products
// - docId: product id (docId is the source of truth)
type ProductRepositoryFS struct {
	Client *firestore.Client
}

func NewProductRepositoryFS(client *firestore.Client) *ProductRepositoryFS {
	return &ProductRepositoryFS{Client: client}
}

func (r *ProductRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("products")
}

// List returns the catalog. Documents that fail the parse boundary are
// skipped with a warning, never surfaced.
func (r *ProductRepositoryFS) List(ctx context.Context) ([]proddom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	iter := r.col().Documents(ctx)
	defer iter.Stop()

	out := []proddom.Product{}
	for {
		doc, err := iter.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}
			return nil, err
		}

		p, err := proddom.FromRaw(doc.Ref.ID, doc.Data())
		if err != nil {
			log.Printf("[product_repository_fs] skipping malformed product docId=%s: %v", doc.Ref.ID, err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetByID returns (nil, nil) if not found (nil policy).
func (r *ProductRepositoryFS) GetByID(ctx context.Context, id string) (*proddom.Product, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("product_repository_fs: firestore client is nil")
	}

	pid := strings.TrimSpace(id)
	if pid == "" {
		return nil, errors.New("product_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(pid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	p, err := proddom.FromRaw(pid, snap.Data())
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save overwrites the full document (docId = p.ID).
func (r *ProductRepositoryFS) Save(ctx context.Context, p proddom.Product) error {
	if r == nil || r.Client == nil {
		return errors.New("product_repository_fs: firestore client is nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	_, err := r.col().Doc(p.ID).Set(ctx, p.ToRaw())
	return err
}
