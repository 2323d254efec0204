// internal/adapters/in/http/store/handler/favorite_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"naturalglow/internal/adapters/in/http/middleware"
	"naturalglow/internal/application/usecase"
	favdom "naturalglow/internal/domain/favorite"
	proddom "naturalglow/internal/domain/product"
)

// FavoriteHandler serves the authenticated user's saved products.
// Intended mounts (router side, behind UserAuth):
// - GET  /store/favorites          cached marks for the current identity
// - POST /store/favorites/toggle   {productId}
type FavoriteHandler struct {
	registry *usecase.FavoritesRegistry
	products proddom.Repository
}

func NewFavoriteHandler(registry *usecase.FavoritesRegistry, products proddom.Repository) http.Handler {
	return &FavoriteHandler{registry: registry, products: products}
}

type toggleRequest struct {
	ProductID string `json:"productId"`
}

type favoritesResponse struct {
	Items  []favdom.Mark `json:"items"`
	Synced bool          `json:"synced"`
}

func (h *FavoriteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.registry == nil {
		writeErr(w, http.StatusInternalServerError, "favorite handler is not configured")
		return
	}

	uid := middleware.UIDFromContext(r.Context())
	if uid == "" {
		// caller redirects to login
		writeErr(w, http.StatusUnauthorized, "authentication required")
		return
	}

	sync, err := h.registry.For(r.Context(), uid)
	if err != nil {
		if errors.Is(err, usecase.ErrAuthRequired) {
			writeErr(w, http.StatusUnauthorized, "authentication required")
			return
		}
		writeErr(w, http.StatusBadGateway, "favorites unavailable")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case strings.HasSuffix(path, "/favorites") && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, favoritesResponse{
			Items:  sync.Marks(),
			Synced: sync.Synced(),
		})

	case strings.HasSuffix(path, "/favorites/toggle") && r.Method == http.MethodPost:
		h.toggle(w, r, sync)

	default:
		writeErr(w, http.StatusNotFound, "not found")
	}
}

func (h *FavoriteHandler) toggle(w http.ResponseWriter, r *http.Request, sync *usecase.FavoritesSync) {
	if h.products == nil {
		writeErr(w, http.StatusInternalServerError, "favorite handler is not configured")
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pid := strings.TrimSpace(req.ProductID)
	if pid == "" {
		writeErr(w, http.StatusBadRequest, "productId is required")
		return
	}

	p, err := h.products.GetByID(r.Context(), pid)
	if err != nil {
		writeErr(w, http.StatusBadGateway, "failed to load product")
		return
	}
	if p == nil {
		writeErr(w, http.StatusNotFound, "product not found")
		return
	}

	res, err := sync.Toggle(r.Context(), *p)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuthRequired):
			writeErr(w, http.StatusUnauthorized, "authentication required")
		case errors.Is(err, usecase.ErrSyncFailed):
			// nothing was applied locally; the user sees a retryable error
			writeErr(w, http.StatusBadGateway, "favorites sync failed")
		default:
			writeErr(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}
