// internal/domain/order/entity.go
package order

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidOrder = errors.New("order: invalid")
)

// Item is one purchased line, denormalized at order time.
type Item struct {
	Name     string  `json:"name" firestore:"name"`
	Price    float64 `json:"price" firestore:"price"`
	Quantity int     `json:"quantity" firestore:"quantity"`
}

// Order is a past purchase shown on the profile page. The storefront only
// reads orders; creation belongs to a payment flow this service does not
// implement.
type Order struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"userId" firestore:"userId"`
	Total     float64   `json:"total" firestore:"total"`
	Items     []Item    `json:"items" firestore:"items"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

func (o Order) Validate() error {
	if strings.TrimSpace(o.ID) == "" || strings.TrimSpace(o.UserID) == "" {
		return ErrInvalidOrder
	}
	return nil
}
