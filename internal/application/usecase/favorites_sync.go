// internal/application/usecase/favorites_sync.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	favdom "naturalglow/internal/domain/favorite"
	proddom "naturalglow/internal/domain/product"
)

var (
	// ErrAuthRequired is returned when a toggle arrives without an
	// authenticated identity; callers redirect to login.
	ErrAuthRequired = errors.New("favorites: authentication required")

	// ErrSyncFailed is returned when the remote write/delete fails. The
	// optimistic local flip is NOT applied in that case, so the cache never
	// diverges from the last confirmed remote state.
	ErrSyncFailed = errors.New("favorites: remote sync failed")
)

// SyncStatus tags the outcome of an operation that touches the remote
// store, so callers can tell "applied locally, awaiting confirmation" from
// "confirmed".
type SyncStatus string

const (
	StatusPending   SyncStatus = "pending"
	StatusConfirmed SyncStatus = "confirmed"
	StatusFailed    SyncStatus = "failed"
)

// ToggleResult describes the state after a toggle.
type ToggleResult struct {
	ProductID string     `json:"productId"`
	Favorited bool       `json:"favorited"`
	Status    SyncStatus `json:"status"`
}

// FavoritesSync keeps a local favorited-by-product-id cache in lockstep
// with the user's remote collection.
//
// The cache is always a pure re-derivation of the latest remote snapshot:
// every snapshot wholesale-replaces it, so even if optimistic flips and
// snapshot arrivals interleave, the last snapshot wins and transient
// glitches self-heal within one round trip.
//
// Snapshot delivery runs on the subscription's goroutine, so state is
// guarded by a mutex.
type FavoritesSync struct {
	repo favdom.Repository

	mu     sync.Mutex
	uid    string
	sub    favdom.Subscription
	cache  favdom.Snapshot
	synced bool
}

func NewFavoritesSync(repo favdom.Repository) *FavoritesSync {
	return &FavoritesSync{
		repo:  repo,
		cache: favdom.Snapshot{},
	}
}

// SetIdentity switches the sync to a new authenticated identity
// (empty uid = logged out). The previous subscription is always stopped
// before the new one is established, so a stale callback can never
// overwrite the new user's cache.
//
// Until the first snapshot arrives the cache is treated as empty, not
// "unknown": a toggle issued in that window operates against an empty
// baseline and is corrected by the next snapshot if needed.
func (f *FavoritesSync) SetIdentity(ctx context.Context, uid string) error {
	if f == nil {
		return errors.New("favorites: sync is nil")
	}

	uid = strings.TrimSpace(uid)

	f.mu.Lock()
	if uid == f.uid {
		f.mu.Unlock()
		return nil
	}

	// unsubscribe-before-resubscribe
	if f.sub != nil {
		f.sub.Stop()
		f.sub = nil
	}
	f.uid = uid
	f.cache = favdom.Snapshot{}
	f.synced = false
	f.mu.Unlock()

	if uid == "" {
		return nil
	}

	if f.repo == nil {
		return errors.New("favorites: repository is nil")
	}

	sub, err := f.repo.Watch(ctx, uid)
	if err != nil {
		return fmt.Errorf("favorites: watch uid=%s: %w", uid, err)
	}

	f.mu.Lock()
	// identity may have changed again while Watch was in flight
	if f.uid != uid {
		f.mu.Unlock()
		sub.Stop()
		return nil
	}
	f.sub = sub
	f.mu.Unlock()

	go f.consume(uid, sub)
	return nil
}

// consume applies snapshots for as long as sub is the current
// subscription. The pointer comparison is the stale-callback guard.
func (f *FavoritesSync) consume(uid string, sub favdom.Subscription) {
	for snap := range sub.Snapshots() {
		f.mu.Lock()
		if f.sub != sub {
			f.mu.Unlock()
			return
		}
		if snap == nil {
			snap = favdom.Snapshot{}
		}
		f.cache = snap
		f.synced = true
		f.mu.Unlock()
	}
	log.Printf("[favorites] subscription closed uid=%s", uid)
}

// Toggle flips the favorite state of the product.
//
// Unauthenticated: ErrAuthRequired (no remote call, no local change).
// Favorited per the local cache: remote delete, then optimistic local
// un-mark. Otherwise: remote write of the full product snapshot, then
// optimistic local mark. On remote failure nothing is applied locally and
// the result is tagged StatusFailed with ErrSyncFailed.
func (f *FavoritesSync) Toggle(ctx context.Context, p proddom.Product) (ToggleResult, error) {
	if f == nil || f.repo == nil {
		return ToggleResult{Status: StatusFailed}, errors.New("favorites: sync is not configured")
	}

	f.mu.Lock()
	uid := f.uid
	_, favorited := f.cache[p.ID]
	f.mu.Unlock()

	if uid == "" {
		return ToggleResult{ProductID: p.ID, Favorited: false, Status: StatusFailed}, ErrAuthRequired
	}

	if favorited {
		if err := f.repo.Delete(ctx, uid, p.ID); err != nil {
			return ToggleResult{ProductID: p.ID, Favorited: true, Status: StatusFailed},
				fmt.Errorf("%w: delete %s: %v", ErrSyncFailed, p.ID, err)
		}

		f.mu.Lock()
		if f.uid == uid {
			delete(f.cache, p.ID)
		}
		f.mu.Unlock()

		return ToggleResult{ProductID: p.ID, Favorited: false, Status: StatusConfirmed}, nil
	}

	m, err := favdom.NewMark(p)
	if err != nil {
		return ToggleResult{ProductID: p.ID, Favorited: false, Status: StatusFailed}, err
	}

	if err := f.repo.Put(ctx, uid, m); err != nil {
		return ToggleResult{ProductID: p.ID, Favorited: false, Status: StatusFailed},
			fmt.Errorf("%w: put %s: %v", ErrSyncFailed, p.ID, err)
	}

	f.mu.Lock()
	if f.uid == uid {
		f.cache[p.ID] = m
	}
	f.mu.Unlock()

	return ToggleResult{ProductID: p.ID, Favorited: true, Status: StatusConfirmed}, nil
}

// IsFavorite answers from the local cache.
func (f *FavoritesSync) IsFavorite(productID string) bool {
	if f == nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.cache[strings.TrimSpace(productID)]
	return ok
}

// Marks returns the cached favorites sorted by product id (deterministic
// for display and tests).
func (f *FavoritesSync) Marks() []favdom.Mark {
	if f == nil {
		return []favdom.Mark{}
	}

	f.mu.Lock()
	out := make([]favdom.Mark, 0, len(f.cache))
	for _, m := range f.cache {
		out = append(out, m)
	}
	f.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// Identity returns the current uid ("" when logged out).
func (f *FavoritesSync) Identity() string {
	if f == nil {
		return ""
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.uid
}

// Synced reports whether at least one snapshot has arrived for the current
// identity (false = Authenticated-Loading window).
func (f *FavoritesSync) Synced() bool {
	if f == nil {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.synced
}

// Close stops the active subscription. Safe to call repeatedly.
func (f *FavoritesSync) Close() {
	if f == nil {
		return
	}
	f.mu.Lock()
	sub := f.sub
	f.sub = nil
	f.mu.Unlock()

	if sub != nil {
		sub.Stop()
	}
}
