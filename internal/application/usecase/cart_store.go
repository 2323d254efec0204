// internal/application/usecase/cart_store.go
package usecase

import (
	"context"
	"log"
	"strings"

	cartdom "naturalglow/internal/domain/cart"
)

// CartStore owns the in-memory cart for one session and mirrors it to the
// local persistence store on every mutation.
//
// All operations are synchronous; the persistence write is fire-and-forget
// from the caller's perspective (a failed write is logged, never
// propagated). Validation failures are logged no-ops — nothing in here
// returns a hard error to the UI surface.
type CartStore struct {
	store cartdom.LocalStore
	key   string
	c     *cartdom.Cart
}

// NewCartStore hydrates the cart from the local store.
// Malformed persisted data never fails construction: records are sanitized
// field by field (non-numeric quantities coerced to 1, unusable records
// dropped) and a read error just starts an empty cart.
func NewCartStore(ctx context.Context, store cartdom.LocalStore, key string) *CartStore {
	cs := &CartStore{
		store: store,
		key:   strings.TrimSpace(key),
		c:     cartdom.NewCart(nil),
	}

	if store == nil || cs.key == "" {
		return cs
	}

	raw, found, err := store.Get(ctx, cs.key)
	if err != nil {
		log.Printf("[cart] WARN hydrate key=%s: %v (starting empty)", cs.key, err)
		return cs
	}
	if !found {
		return cs
	}

	cs.c = cartdom.NewCart(cartdom.DecodeLines([]byte(raw)))
	return cs
}

// AddItem merges the line into the cart. A quantity below 1 is a logged
// no-op. An existing line keeps its denormalized name/price/image; only
// the quantity grows.
func (cs *CartStore) AddItem(ctx context.Context, line cartdom.Line) {
	if cs == nil {
		return
	}
	if err := cs.c.Add(line); err != nil {
		log.Printf("[cart] WARN addItem productId=%q qty=%d rejected: %v", line.ProductID, line.Quantity, err)
		return
	}
	cs.persist(ctx)
}

// RemoveItem deletes the line unconditionally; absent is a no-op.
func (cs *CartStore) RemoveItem(ctx context.Context, productID string) {
	if cs == nil {
		return
	}
	if cs.c.Remove(productID) {
		cs.persist(ctx)
	}
}

// IncreaseQuantity adds 1 to the line's quantity; absent is a no-op.
func (cs *CartStore) IncreaseQuantity(ctx context.Context, productID string) {
	if cs == nil {
		return
	}
	if cs.c.Increase(productID) {
		cs.persist(ctx)
	}
}

// DecreaseQuantity subtracts 1 with a floor of 1. The line is never
// removed by decrement; only RemoveItem deletes it.
func (cs *CartStore) DecreaseQuantity(ctx context.Context, productID string) {
	if cs == nil {
		return
	}
	if cs.c.Decrease(productID) {
		cs.persist(ctx)
	}
}

// Clear empties the cart (checkout only clears local state).
func (cs *CartStore) Clear(ctx context.Context) {
	if cs == nil {
		return
	}
	cs.c.Clear()
	cs.persist(ctx)
}

// Lines returns the cart contents in insertion order.
func (cs *CartStore) Lines() []cartdom.Line {
	if cs == nil {
		return []cartdom.Line{}
	}
	return cs.c.Lines()
}

// Total sums price * quantity over the cart. Lines failing numeric
// validation are excluded and logged as a warning, not raised.
func (cs *CartStore) Total() float64 {
	if cs == nil {
		return 0
	}
	total, skipped := cs.c.Total()
	for _, id := range skipped {
		log.Printf("[cart] WARN total: line productId=%s has invalid price/quantity, excluded", id)
	}
	return total
}

func (cs *CartStore) persist(ctx context.Context) {
	if cs.store == nil || cs.key == "" {
		return
	}

	data, err := cartdom.EncodeLines(cs.c.Lines())
	if err != nil {
		log.Printf("[cart] WARN persist key=%s: encode: %v", cs.key, err)
		return
	}
	if err := cs.store.Set(ctx, cs.key, string(data)); err != nil {
		log.Printf("[cart] WARN persist key=%s: %v", cs.key, err)
	}
}
