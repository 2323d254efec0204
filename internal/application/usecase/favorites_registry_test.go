// internal/application/usecase/favorites_registry_test.go
package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryReusesSyncPerUID(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	reg := NewFavoritesRegistry(repo)
	defer reg.Close()

	s1, err := reg.For(ctx, "u1")
	require.NoError(t, err)
	s2, err := reg.For(ctx, "u1")
	require.NoError(t, err)
	assert.Same(t, s1, s2)

	other, err := reg.For(ctx, "u2")
	require.NoError(t, err)
	assert.NotSame(t, s1, other)

	repo.mu.Lock()
	defer repo.mu.Unlock()
	assert.Equal(t, []string{"watch u1", "watch u2"}, repo.events)
}

func TestRegistryRequiresUID(t *testing.T) {
	reg := NewFavoritesRegistry(&fakeFavRepo{})
	defer reg.Close()

	_, err := reg.For(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestRegistryEvictStopsSubscription(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	reg := NewFavoritesRegistry(repo)
	defer reg.Close()

	_, err := reg.For(ctx, "u1")
	require.NoError(t, err)

	reg.Evict("u1")

	repo.mu.Lock()
	events := append([]string(nil), repo.events...)
	repo.mu.Unlock()
	assert.Equal(t, []string{"watch u1", "stop"}, events)

	// the next For establishes a fresh subscription
	_, err = reg.For(ctx, "u1")
	require.NoError(t, err)
}

func TestRegistryWatchFailureIsNotCached(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{watchErr: errors.New("permission denied")}
	reg := NewFavoritesRegistry(repo)
	defer reg.Close()

	_, err := reg.For(ctx, "u1")
	require.Error(t, err)

	// once the remote recovers, For must succeed
	repo.watchErr = nil
	_, err = reg.For(ctx, "u1")
	assert.NoError(t, err)
}

func TestRegistryCloseStopsAll(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFavRepo{}
	reg := NewFavoritesRegistry(repo)

	_, err := reg.For(ctx, "u1")
	require.NoError(t, err)
	_, err = reg.For(ctx, "u2")
	require.NoError(t, err)

	reg.Close()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	stops := 0
	for _, e := range repo.events {
		if e == "stop" {
			stops++
		}
	}
	assert.Equal(t, 2, stops)
}
