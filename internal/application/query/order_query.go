// internal/application/query/order_query.go
package query

import (
	"context"
	"errors"
	"strings"
	"time"

	orderdom "naturalglow/internal/domain/order"
)

// OrderDTO is the profile page's order row.
type OrderDTO struct {
	ID    string         `json:"id"`
	Date  string         `json:"date"`
	Total float64        `json:"total"`
	Items []orderdom.Item `json:"items"`
}

// OrderQuery serves the profile page's order history.
type OrderQuery struct {
	Repo orderdom.Repository
}

func NewOrderQuery(repo orderdom.Repository) *OrderQuery {
	return &OrderQuery{Repo: repo}
}

// ListByUser returns the user's orders, newest first, as display rows.
func (q *OrderQuery) ListByUser(ctx context.Context, userID string) ([]OrderDTO, error) {
	if q == nil || q.Repo == nil {
		return nil, errors.New("order query: repo is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("order query: userID is empty")
	}

	orders, err := q.Repo.ListByUserID(ctx, uid)
	if err != nil {
		return nil, err
	}

	out := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		items := o.Items
		if items == nil {
			items = []orderdom.Item{}
		}
		out = append(out, OrderDTO{
			ID:    o.ID,
			Date:  o.CreatedAt.Format(time.DateOnly),
			Total: o.Total,
			Items: items,
		})
	}
	return out, nil
}
