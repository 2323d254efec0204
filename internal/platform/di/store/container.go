// internal/platform/di/store/container.go
package store

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"naturalglow/internal/adapters/in/http/middleware"
	storehttp "naturalglow/internal/adapters/in/http/store"
	"naturalglow/internal/adapters/in/http/store/handler"
	fs "naturalglow/internal/adapters/out/firestore"
	"naturalglow/internal/adapters/out/mail"
	"naturalglow/internal/adapters/out/redisstore"
	"naturalglow/internal/application/query"
	"naturalglow/internal/application/usecase"
	shared "naturalglow/internal/platform/di/shared"
)

// Container wires the storefront service from shared infra.
type Container struct {
	infra *shared.Infra

	favorites *usecase.FavoritesRegistry

	Handler http.Handler
}

// NewContainer builds repositories, usecases and the HTTP surface.
func NewContainer(ctx context.Context, infra *shared.Infra) (*Container, error) {
	if infra == nil || infra.Firestore == nil {
		return nil, errors.New("di.store: infra is not initialized")
	}

	// out adapters
	productRepo := fs.NewProductRepositoryFS(infra.Firestore)
	favoriteRepo := fs.NewFavoriteRepositoryFS(infra.Firestore)
	orderRepo := fs.NewOrderRepositoryFS(infra.Firestore)
	userRepo := fs.NewUserRepositoryFS(infra.Firestore)

	sessionStore, err := redisstore.NewSessionStore(ctx, infra.Redis)
	if err != nil {
		return nil, err
	}

	// application
	favorites := usecase.NewFavoritesRegistry(favoriteRepo)
	orderQuery := query.NewOrderQuery(orderRepo)
	profileRegister := usecase.NewProfileRegister(userRepo)

	// contact mailer (optional: without SENDGRID_API_KEY the route answers 503)
	var contactMailer mail.ContactMailerPort
	if key := strings.TrimSpace(infra.Config.SendGridAPIKey); key != "" && strings.TrimSpace(infra.Config.ContactTo) != "" {
		contactMailer = mail.NewContactMailer(
			mail.NewSendGridClient(key),
			infra.Config.ContactFrom,
			infra.Config.ContactTo,
		)
		log.Printf("[di.store] contact mailer initialized")
	} else {
		log.Printf("[di.store] contact mailer not configured (SENDGRID_API_KEY / CONTACT_TO empty)")
	}

	// in adapters
	auth := &middleware.UserAuth{FirebaseAuth: infra.FirebaseAuth}

	mux := http.NewServeMux()
	storehttp.Register(mux, storehttp.Deps{
		Product:  handler.NewProductHandler(productRepo),
		Cart:     handler.NewCartHandler(sessionStore, productRepo),
		Favorite: handler.NewFavoriteHandler(favorites, productRepo),
		Profile:  handler.NewProfileHandler(userRepo, orderQuery, profileRegister),
		Contact:  handler.NewContactHandler(contactMailer),
		Auth:     auth,
	})

	h := middleware.CORS(infra.Config.AllowedOrigin)(middleware.Recover(mux))

	return &Container{
		infra:     infra,
		favorites: favorites,
		Handler:   h,
	}, nil
}

// Close tears down identity-scoped subscriptions.
func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.favorites != nil {
		c.favorites.Close()
	}
}
