// internal/adapters/in/http/store/handler/profile_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"naturalglow/internal/adapters/in/http/middleware"
	"naturalglow/internal/application/query"
	"naturalglow/internal/application/usecase"
	userdom "naturalglow/internal/domain/user"
)

// ProfileHandler serves the profile page.
// Intended mounts (router side, behind UserAuth):
// - GET  /store/me      profile + order history
// - POST /store/users   register profile (right after Firebase signup)
type ProfileHandler struct {
	users    userdom.Repository
	orders   *query.OrderQuery
	register *usecase.ProfileRegister
}

func NewProfileHandler(users userdom.Repository, orders *query.OrderQuery, register *usecase.ProfileRegister) http.Handler {
	return &ProfileHandler{users: users, orders: orders, register: register}
}

type registerRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	BirthDate string `json:"birthDate"`
}

type profileResponse struct {
	Profile *userdom.Profile `json:"profile"`
	Orders  []query.OrderDTO `json:"orders"`
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.users == nil {
		writeErr(w, http.StatusInternalServerError, "profile handler is not configured")
		return
	}

	uid := middleware.UIDFromContext(r.Context())
	if uid == "" {
		writeErr(w, http.StatusUnauthorized, "authentication required")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case strings.HasSuffix(path, "/me") && r.Method == http.MethodGet:
		h.me(w, r, uid)

	case strings.HasSuffix(path, "/users") && r.Method == http.MethodPost:
		h.registerProfile(w, r, uid)

	default:
		writeErr(w, http.StatusNotFound, "not found")
	}
}

func (h *ProfileHandler) me(w http.ResponseWriter, r *http.Request, uid string) {
	p, err := h.users.GetByUID(r.Context(), uid)
	if err != nil {
		writeErr(w, http.StatusBadGateway, "failed to load profile")
		return
	}

	orders := []query.OrderDTO{}
	if h.orders != nil {
		if o, err := h.orders.ListByUser(r.Context(), uid); err == nil {
			orders = o
		}
	}

	writeJSON(w, http.StatusOK, profileResponse{Profile: p, Orders: orders})
}

func (h *ProfileHandler) registerProfile(w http.ResponseWriter, r *http.Request, uid string) {
	if h.register == nil {
		writeErr(w, http.StatusInternalServerError, "profile handler is not configured")
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := middleware.EmailFromContext(r.Context())

	p, err := h.register.Register(r.Context(), uid, req.Username, email, req.FirstName, req.LastName, req.BirthDate)
	if err != nil {
		if errors.Is(err, userdom.ErrInvalidProfile) {
			writeErr(w, http.StatusBadRequest, "invalid profile")
			return
		}
		writeErr(w, http.StatusBadGateway, "failed to save profile")
		return
	}

	writeJSON(w, http.StatusCreated, p)
}
