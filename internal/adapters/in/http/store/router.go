// internal/adapters/in/http/store/router.go
package store

import (
	"net/http"

	"naturalglow/internal/adapters/in/http/middleware"
)

// Deps is the storefront handler set.
type Deps struct {
	Product  http.Handler
	Cart     http.Handler
	Favorite http.Handler
	Profile  http.Handler
	Contact  http.Handler

	// Auth wraps identity-scoped handlers (favorites, profile).
	Auth *middleware.UserAuth
}

// Register mounts storefront routes onto mux.
// Cart routes run behind the Session middleware; favorites and profile
// additionally require a verified Firebase identity.
func Register(mux *http.ServeMux, deps Deps) {
	if mux == nil {
		return
	}

	if deps.Product != nil {
		mux.Handle("/store/products", deps.Product)
		mux.Handle("/store/products/", deps.Product)
	}

	if deps.Cart != nil {
		cart := middleware.Session(deps.Cart)
		mux.Handle("/store/cart", cart)
		mux.Handle("/store/cart/", cart)
	}

	if deps.Favorite != nil && deps.Auth != nil {
		fav := deps.Auth.Handler(deps.Favorite)
		mux.Handle("/store/favorites", fav)
		mux.Handle("/store/favorites/", fav)
	}

	if deps.Profile != nil && deps.Auth != nil {
		profile := deps.Auth.Handler(deps.Profile)
		mux.Handle("/store/me", profile)
		mux.Handle("/store/users", profile)
	}

	if deps.Contact != nil {
		mux.Handle("/store/contact", deps.Contact)
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
