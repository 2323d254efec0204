// internal/platform/di/shared/infra.go
package shared

import (
	"context"
	"errors"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	appcfg "naturalglow/internal/infra/config"
)

// Infra is shared runtime infrastructure for DI.
// - owns external clients (Firestore / FirebaseAuth / Redis)
// - owns env/config-resolved runtime settings
//
// Infra must NOT depend on routers, handlers, or queries.
type Infra struct {
	Config    *appcfg.Config
	ProjectID string

	Firestore    *firestore.Client
	FirebaseApp  *firebase.App
	FirebaseAuth *firebaseauth.Client
	Redis        *redis.Client
}

// NewInfra initializes shared infra.
// Firestore and Redis are strict (return error); Firebase Auth is
// best-effort (warn + continue) so the anonymous catalog surface still
// works when auth is misconfigured.
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("shared.infra: config is nil")
	}

	projectID := strings.TrimSpace(cfg.FirestoreProjectID)
	if projectID == "" {
		return nil, errors.New("shared.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	inf := &Infra{
		Config:    cfg,
		ProjectID: projectID,
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[shared.infra] Using credentials file for GCP clients")
	} else {
		log.Printf("[shared.infra] Using Application Default Credentials (no credentials file configured)")
	}

	// 1) Firestore (strict)
	fsClient, err := firestore.NewClient(ctx, projectID, clientOpts...)
	if err != nil {
		return nil, err
	}
	inf.Firestore = fsClient
	log.Printf("[shared.infra] Firestore client initialized project=%s", projectID)

	// 2) Firebase Auth (best-effort)
	{
		fbCfg := &firebase.Config{ProjectID: strings.TrimSpace(cfg.FirebaseProjectID)}
		app, err := firebase.NewApp(ctx, fbCfg, clientOpts...)
		if err != nil {
			log.Printf("[shared.infra] WARN: firebase app init failed: %v (auth-protected routes disabled)", err)
		} else {
			inf.FirebaseApp = app
			authClient, err := app.Auth(ctx)
			if err != nil {
				log.Printf("[shared.infra] WARN: firebase auth init failed: %v (auth-protected routes disabled)", err)
			} else {
				inf.FirebaseAuth = authClient
				log.Printf("[shared.infra] Firebase Auth initialized")
			}
		}
	}

	// 3) Redis (strict; carts need it)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = fsClient.Close()
		return nil, err
	}
	inf.Redis = rdb
	log.Printf("[shared.infra] Redis connected addr=%s", cfg.RedisAddr)

	return inf, nil
}

// Close releases owned clients.
func (i *Infra) Close() {
	if i == nil {
		return
	}
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			log.Printf("[shared.infra] redis close: %v", err)
		}
	}
	if i.Firestore != nil {
		if err := i.Firestore.Close(); err != nil {
			log.Printf("[shared.infra] firestore close: %v", err)
		}
	}
}
