// internal/application/usecase/favorites_registry.go
package usecase

import (
	"context"
	"strings"
	"sync"

	favdom "naturalglow/internal/domain/favorite"
)

// FavoritesRegistry hands out one FavoritesSync per authenticated uid.
// The HTTP surface is stateless per request, but the favorites cache and
// its remote subscription are identity-scoped, so they are pooled here and
// torn down together on Close.
type FavoritesRegistry struct {
	repo favdom.Repository

	mu    sync.Mutex
	syncs map[string]*FavoritesSync
}

func NewFavoritesRegistry(repo favdom.Repository) *FavoritesRegistry {
	return &FavoritesRegistry{
		repo:  repo,
		syncs: map[string]*FavoritesSync{},
	}
}

// For returns the sync for uid, establishing its subscription on first
// use. The returned sync may still be in its loading window (empty cache
// until the first snapshot).
func (r *FavoritesRegistry) For(ctx context.Context, uid string) (*FavoritesSync, error) {
	if r == nil || r.repo == nil {
		return nil, ErrAuthRequired
	}

	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, ErrAuthRequired
	}

	r.mu.Lock()
	if s, ok := r.syncs[uid]; ok {
		r.mu.Unlock()
		return s, nil
	}
	s := NewFavoritesSync(r.repo)
	r.syncs[uid] = s
	r.mu.Unlock()

	if err := s.SetIdentity(ctx, uid); err != nil {
		r.mu.Lock()
		delete(r.syncs, uid)
		r.mu.Unlock()
		s.Close()
		return nil, err
	}
	return s, nil
}

// Evict drops the uid's sync and stops its subscription (logout).
func (r *FavoritesRegistry) Evict(uid string) {
	if r == nil {
		return
	}

	uid = strings.TrimSpace(uid)

	r.mu.Lock()
	s, ok := r.syncs[uid]
	if ok {
		delete(r.syncs, uid)
	}
	r.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Close stops every subscription. Called on shutdown.
func (r *FavoritesRegistry) Close() {
	if r == nil {
		return
	}

	r.mu.Lock()
	syncs := r.syncs
	r.syncs = map[string]*FavoritesSync{}
	r.mu.Unlock()

	for _, s := range syncs {
		s.Close()
	}
}
