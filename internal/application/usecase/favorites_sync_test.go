// internal/application/usecase/favorites_sync_test.go
package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	favdom "naturalglow/internal/domain/favorite"
	proddom "naturalglow/internal/domain/product"
)

// fakeFavSub is a channel-driven favorite.Subscription.
type fakeFavSub struct {
	ch   chan favdom.Snapshot
	once sync.Once
	repo *fakeFavRepo
}

func (s *fakeFavSub) Snapshots() <-chan favdom.Snapshot { return s.ch }

func (s *fakeFavSub) Stop() {
	s.once.Do(func() {
		if s.repo != nil {
			s.repo.record("stop")
		}
		close(s.ch)
	})
}

func (s *fakeFavSub) push(snap favdom.Snapshot) { s.ch <- snap }

// fakeFavRepo records calls and lets tests inject failures.
type fakeFavRepo struct {
	mu       sync.Mutex
	events   []string
	putErr   error
	delErr   error
	watchErr error
	subs     []*fakeFavSub
}

func (r *fakeFavRepo) record(ev string) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *fakeFavRepo) Put(_ context.Context, uid string, m favdom.Mark) error {
	r.record("put " + uid + " " + m.ProductID)
	return r.putErr
}

func (r *fakeFavRepo) Delete(_ context.Context, uid, productID string) error {
	r.record("delete " + uid + " " + productID)
	return r.delErr
}

func (r *fakeFavRepo) Watch(_ context.Context, uid string) (favdom.Subscription, error) {
	r.record("watch " + uid)
	if r.watchErr != nil {
		return nil, r.watchErr
	}
	sub := &fakeFavSub{ch: make(chan favdom.Snapshot), repo: r}
	r.mu.Lock()
	r.subs = append(r.subs, sub)
	r.mu.Unlock()
	return sub, nil
}

func (r *fakeFavRepo) lastSub() *fakeFavSub {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.subs) == 0 {
		return nil
	}
	return r.subs[len(r.subs)-1]
}

func testProduct(id string) proddom.Product {
	return proddom.Product{ID: id, Name: "Producto " + id, Price: 9.99, Category: "Cuidado Facial"}
}

func markFor(t *testing.T, id string) favdom.Mark {
	t.Helper()
	m, err := favdom.NewMark(testProduct(id))
	require.NoError(t, err)
	return m
}

func waitFavorite(t *testing.T, f *FavoritesSync, id string, want bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		return f.IsFavorite(id) == want
	}, time.Second, 5*time.Millisecond)
}

func TestToggleUnauthenticated(t *testing.T) {
	f := NewFavoritesSync(&fakeFavRepo{})
	defer f.Close()

	res, err := f.Toggle(context.Background(), testProduct("1"))
	assert.ErrorIs(t, err, ErrAuthRequired)
	assert.False(t, res.Favorited)
	assert.Equal(t, StatusFailed, res.Status)
}

func TestToggleAddAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	f := NewFavoritesSync(repo)
	defer f.Close()
	require.NoError(t, f.SetIdentity(ctx, "u1"))

	res, err := f.Toggle(ctx, testProduct("1"))
	require.NoError(t, err)
	assert.True(t, res.Favorited)
	assert.Equal(t, StatusConfirmed, res.Status)
	assert.True(t, f.IsFavorite("1"))

	res, err = f.Toggle(ctx, testProduct("1"))
	require.NoError(t, err)
	assert.False(t, res.Favorited)
	assert.Equal(t, StatusConfirmed, res.Status)
	assert.False(t, f.IsFavorite("1"))

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Contains(t, repo.events, "put u1 1")
	assert.Contains(t, repo.events, "delete u1 1")
}

func TestToggleRemoteFailureLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{putErr: errors.New("unavailable")}
	f := NewFavoritesSync(repo)
	defer f.Close()
	require.NoError(t, f.SetIdentity(ctx, "u1"))

	res, err := f.Toggle(ctx, testProduct("1"))
	assert.ErrorIs(t, err, ErrSyncFailed)
	assert.Equal(t, StatusFailed, res.Status)
	assert.False(t, f.IsFavorite("1"), "no optimistic flip on remote failure")

	repo.putErr = nil
	res, err = f.Toggle(ctx, testProduct("1"))
	require.NoError(t, err)
	assert.True(t, res.Favorited)
}

func TestSnapshotWholesaleReplacesCache(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	f := NewFavoritesSync(repo)
	defer f.Close()
	require.NoError(t, f.SetIdentity(ctx, "u1"))

	assert.False(t, f.Synced())

	sub := repo.lastSub()
	require.NotNil(t, sub)
	sub.push(favdom.Snapshot{
		"1": markFor(t, "1"),
		"2": markFor(t, "2"),
	})
	waitFavorite(t, f, "1", true)
	assert.True(t, f.Synced())

	// the next snapshot drops "1"; the cache must shed it even though no
	// local toggle ever happened
	sub.push(favdom.Snapshot{"2": markFor(t, "2")})
	waitFavorite(t, f, "1", false)
	assert.True(t, f.IsFavorite("2"))

	marks := f.Marks()
	require.Len(t, marks, 1)
	assert.Equal(t, "2", marks[0].ProductID)
}

func TestSetIdentityUnsubscribesBeforeResubscribing(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	f := NewFavoritesSync(repo)
	defer f.Close()

	require.NoError(t, f.SetIdentity(ctx, "u1"))
	sub1 := repo.lastSub()
	sub1.push(favdom.Snapshot{"1": markFor(t, "1")})
	waitFavorite(t, f, "1", true)

	require.NoError(t, f.SetIdentity(ctx, "u2"))

	repo.mu.Lock()
	events := append([]string(nil), repo.events...)
	repo.mu.Unlock()
	assert.Equal(t, []string{"watch u1", "stop", "watch u2"}, events)

	// u1's cache must not leak into u2's session
	assert.False(t, f.IsFavorite("1"))
	assert.False(t, f.Synced())
	assert.Equal(t, "u2", f.Identity())
}

func TestSetIdentitySameUIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	f := NewFavoritesSync(repo)
	defer f.Close()

	require.NoError(t, f.SetIdentity(ctx, "u1"))
	require.NoError(t, f.SetIdentity(ctx, "u1"))

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, []string{"watch u1"}, repo.events)
}

func TestSetIdentityLogoutClearsCache(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	f := NewFavoritesSync(repo)
	defer f.Close()

	require.NoError(t, f.SetIdentity(ctx, "u1"))
	sub := repo.lastSub()
	sub.push(favdom.Snapshot{"1": markFor(t, "1")})
	waitFavorite(t, f, "1", true)

	require.NoError(t, f.SetIdentity(ctx, ""))
	assert.False(t, f.IsFavorite("1"))
	assert.Empty(t, f.Marks())

	// back to logged out: toggles must demand auth again
	_, err := f.Toggle(ctx, testProduct("1"))
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestSetIdentityWatchFailure(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{watchErr: errors.New("permission denied")}
	f := NewFavoritesSync(repo)
	defer f.Close()

	err := f.SetIdentity(ctx, "u1")
	require.Error(t, err)
	assert.False(t, f.Synced())
}

func TestToggleDuringLoadingWindow(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	f := NewFavoritesSync(repo)
	defer f.Close()
	require.NoError(t, f.SetIdentity(ctx, "u1"))

	// no snapshot yet: the toggle operates against an empty baseline
	res, err := f.Toggle(ctx, testProduct("1"))
	require.NoError(t, err)
	assert.True(t, res.Favorited)

	// the late first snapshot already contains the write; states converge
	sub := repo.lastSub()
	sub.push(favdom.Snapshot{"1": markFor(t, "1")})
	waitFavorite(t, f, "1", true)
	assert.True(t, f.Synced())
}

func TestCloseIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	f := NewFavoritesSync(repo)
	require.NoError(t, f.SetIdentity(ctx, "u1"))

	f.Close()
	f.Close()
}
