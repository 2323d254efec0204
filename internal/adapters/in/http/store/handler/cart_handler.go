// internal/adapters/in/http/store/handler/cart_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"naturalglow/internal/adapters/in/http/middleware"
	"naturalglow/internal/application/usecase"
	cartdom "naturalglow/internal/domain/cart"
	proddom "naturalglow/internal/domain/product"
)

// CartHandler serves the session-scoped cart.
// Intended mounts (router side):
// - GET    /store/cart                  current lines + total
// - DELETE /store/cart                  clear
// - POST   /store/cart/items            {productId, quantity} add
// - DELETE /store/cart/items            {productId} remove
// - POST   /store/cart/items/increase   {productId}
// - POST   /store/cart/items/decrease   {productId}
// - POST   /store/cart/checkout         clears local cart (no payment flow)
//
// The cart is hydrated from the session store per request and persisted
// after each mutation; the session id comes from the Session middleware.
type CartHandler struct {
	store    cartdom.LocalStore
	products proddom.Repository
}

func NewCartHandler(store cartdom.LocalStore, products proddom.Repository) http.Handler {
	return &CartHandler{store: store, products: products}
}

type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cartResponse struct {
	Items []cartdom.Line `json:"items"`
	Total float64        `json:"total"`
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	sid := middleware.SessionFromContext(r.Context())
	if sid == "" {
		writeErr(w, http.StatusBadRequest, "missing session")
		return
	}

	cs := usecase.NewCartStore(r.Context(), h.store, "cart:"+sid)

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case strings.HasSuffix(path, "/cart") && r.Method == http.MethodGet:
		h.respond(w, cs)

	case strings.HasSuffix(path, "/cart") && r.Method == http.MethodDelete:
		cs.Clear(r.Context())
		h.respond(w, cs)

	case strings.HasSuffix(path, "/cart/checkout") && r.Method == http.MethodPost:
		// checkout only clears local state; payment is out of scope
		cs.Clear(r.Context())
		h.respond(w, cs)

	case strings.HasSuffix(path, "/cart/items") && r.Method == http.MethodPost:
		h.addItem(w, r, cs)

	case strings.HasSuffix(path, "/cart/items") && r.Method == http.MethodDelete:
		req, ok := decodeItemRequest(w, r)
		if !ok {
			return
		}
		cs.RemoveItem(r.Context(), req.ProductID)
		h.respond(w, cs)

	case strings.HasSuffix(path, "/cart/items/increase") && r.Method == http.MethodPost:
		req, ok := decodeItemRequest(w, r)
		if !ok {
			return
		}
		cs.IncreaseQuantity(r.Context(), req.ProductID)
		h.respond(w, cs)

	case strings.HasSuffix(path, "/cart/items/decrease") && r.Method == http.MethodPost:
		req, ok := decodeItemRequest(w, r)
		if !ok {
			return
		}
		cs.DecreaseQuantity(r.Context(), req.ProductID)
		h.respond(w, cs)

	default:
		writeErr(w, http.StatusNotFound, "not found")
	}
}

// addItem denormalizes the product into the line at add-time. A later add
// of the same product only grows the quantity; the snapshot fields stay.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request, cs *usecase.CartStore) {
	req, ok := decodeItemRequest(w, r)
	if !ok {
		return
	}
	if h.products == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	p, err := h.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		writeErr(w, http.StatusBadGateway, "failed to load product")
		return
	}
	if p == nil {
		writeErr(w, http.StatusNotFound, "product not found")
		return
	}

	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	cs.AddItem(r.Context(), cartdom.Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  qty,
	})
	h.respond(w, cs)
}

func (h *CartHandler) respond(w http.ResponseWriter, cs *usecase.CartStore) {
	writeJSON(w, http.StatusOK, cartResponse{
		Items: cs.Lines(),
		Total: cs.Total(),
	})
}

func decodeItemRequest(w http.ResponseWriter, r *http.Request) (cartItemRequest, bool) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return cartItemRequest{}, false
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	if req.ProductID == "" {
		writeErr(w, http.StatusBadRequest, "productId is required")
		return cartItemRequest{}, false
	}
	return req, true
}
