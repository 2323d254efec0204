// internal/domain/favorite/entity.go
package favorite

import (
	"errors"
	"strings"

	proddom "naturalglow/internal/domain/product"
)

var (
	ErrInvalidMark = errors.New("favorite: invalid mark")
)

// Mark is a user's starred-product record. Identity is the
// (userId, productId) pair; the remote document is a denormalized snapshot
// of the product at favorite-time. Existence of the remote record is the
// sole source of truth for "is favorited" — local caches are rebuilt
// wholesale from remote snapshots.
type Mark struct {
	ProductID string          `json:"productId" firestore:"productId"`
	Product   proddom.Product `json:"product" firestore:"product"`
}

// NewMark snapshots the product into a mark.
func NewMark(p proddom.Product) (Mark, error) {
	if err := p.Validate(); err != nil {
		return Mark{}, ErrInvalidMark
	}
	return Mark{ProductID: p.ID, Product: p}, nil
}

// FromRaw rebuilds a Mark from an untyped remote document.
// productID comes from the document key; the body is sanitized through the
// product parse boundary. A body that cannot be salvaged still yields a
// usable mark (the key alone proves existence).
func FromRaw(productID string, raw map[string]any) (Mark, error) {
	pid := strings.TrimSpace(productID)
	if pid == "" {
		return Mark{}, ErrInvalidMark
	}

	m := Mark{ProductID: pid}
	if p, err := proddom.FromRaw(pid, raw); err == nil {
		m.Product = p
	}
	return m, nil
}
