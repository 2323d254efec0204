// internal/domain/product/entity.go
package product

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrInvalidProduct = errors.New("product: invalid")
)

// Product is a catalog entry. The storefront only reads products; identity
// is the Firestore docId.
type Product struct {
	ID          string  `json:"id" firestore:"id"`
	Name        string  `json:"name" firestore:"name"`
	Description string  `json:"description" firestore:"description"`
	Price       float64 `json:"price" firestore:"price"`
	Image       string  `json:"image" firestore:"image"`
	Category    string  `json:"category" firestore:"category"`
}

// New validates and returns a Product.
// id and name are required; price must be a finite non-negative number.
func New(id, name, description string, price float64, image, category string) (Product, error) {
	p := Product{
		ID:          strings.TrimSpace(id),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
		Image:       strings.TrimSpace(image),
		Category:    strings.TrimSpace(category),
	}
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrInvalidProduct
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidProduct
	}
	if !ValidPrice(p.Price) {
		return ErrInvalidProduct
	}
	return nil
}

// ValidPrice reports whether v is usable as a unit price.
func ValidPrice(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// FromRaw rebuilds a Product from an untyped document map.
// This is the parse-and-validate boundary for data crossing from the remote
// store into the core: records are sanitized here, never downstream.
//
// The web client historically wrote numbers as strings in places, so
// numeric fields accept both shapes; a record that still fails validation
// after coercion is rejected.
func FromRaw(id string, raw map[string]any) (Product, error) {
	if raw == nil {
		return Product{}, ErrInvalidProduct
	}

	price, ok := asFloat(raw["price"])
	if !ok {
		return Product{}, ErrInvalidProduct
	}

	return New(
		id,
		asString(raw["name"]),
		asString(raw["description"]),
		price,
		asString(raw["image"]),
		asString(raw["category"]),
	)
}

// ToRaw flattens a Product into the document shape written to the remote
// store. Denormalized favorite snapshots use the same shape.
func (p Product) ToRaw() map[string]any {
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"image":       p.Image,
		"category":    p.Category,
	}
}
