// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	orderdom "naturalglow/internal/domain/order"
)

// OrderRepositoryFS implements order.Repository on Firestore.
//
// Collection design:
// - collection: orders
// - docId: order id
// - query: where userId == {uid}, order by createdAt desc
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("orders")
}

// ListByUserID returns the user's orders, newest first. An unknown user
// yields an empty slice.
func (r *OrderRepositoryFS) ListByUserID(ctx context.Context, userID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("order_repository_fs: userID is empty")
	}

	iter := r.col().
		Where("userId", "==", uid).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := []orderdom.Order{}
	for {
		doc, err := iter.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}
			return nil, err
		}

		var d orderDoc
		if err := doc.DataTo(&d); err != nil {
			log.Printf("[order_repository_fs] skipping malformed order docId=%s: %v", doc.Ref.ID, err)
			continue
		}

		o := d.toDomain()
		// docId is the source of truth even when the body carries no id
		o.ID = doc.Ref.ID
		out = append(out, o)
	}
	return out, nil
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type orderDoc struct {
	UserID    string         `firestore:"userId"`
	Total     float64        `firestore:"total"`
	Items     []orderItemDoc `firestore:"items"`
	CreatedAt time.Time      `firestore:"createdAt"`
}

type orderItemDoc struct {
	Name     string  `firestore:"name"`
	Price    float64 `firestore:"price"`
	Quantity int     `firestore:"quantity"`
}

func (d orderDoc) toDomain() orderdom.Order {
	items := make([]orderdom.Item, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, orderdom.Item{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return orderdom.Order{
		UserID:    d.UserID,
		Total:     d.Total,
		Items:     items,
		CreatedAt: d.CreatedAt,
	}
}
