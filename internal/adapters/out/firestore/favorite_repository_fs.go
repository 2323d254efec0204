// internal/adapters/out/firestore/favorite_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	favdom "naturalglow/internal/domain/favorite"
)

// FavoriteRepositoryFS implements favorite.Repository on Firestore.
//
// Collection design (mirrors the web client's Realtime Database layout):
// - users/{uid}/savedProducts/{productId}
// - document body: denormalized product snapshot
type FavoriteRepositoryFS struct {
	Client *firestore.Client
}

func NewFavoriteRepositoryFS(client *firestore.Client) *FavoriteRepositoryFS {
	return &FavoriteRepositoryFS{Client: client}
}

func (r *FavoriteRepositoryFS) col(uid string) *firestore.CollectionRef {
	return r.Client.Collection("users").Doc(uid).Collection("savedProducts")
}

// Put overwrites the full mark document.
func (r *FavoriteRepositoryFS) Put(ctx context.Context, userID string, m favdom.Mark) error {
	if r == nil || r.Client == nil {
		return errors.New("favorite_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(m.ProductID)
	if uid == "" || pid == "" {
		return errors.New("favorite_repository_fs: userID and productID are required")
	}

	_, err := r.col(uid).Doc(pid).Set(ctx, m.Product.ToRaw())
	return err
}

// Delete removes the mark document. An absent document is not an error.
func (r *FavoriteRepositoryFS) Delete(ctx context.Context, userID, productID string) error {
	if r == nil || r.Client == nil {
		return errors.New("favorite_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	pid := strings.TrimSpace(productID)
	if uid == "" || pid == "" {
		return errors.New("favorite_repository_fs: userID and productID are required")
	}

	_, err := r.col(uid).Doc(pid).Delete(ctx)
	if err != nil && status.Code(err) == codes.NotFound {
		return nil
	}
	return err
}

// Watch opens a push subscription on the user's savedProducts collection.
// Each delivery is a full snapshot; consumers replace their state with it.
//
// The subscription's lifetime is controlled by Stop, not by ctx: the watch
// outlives the request that opened it (identity-scoped, see
// FavoritesRegistry), so it runs on its own derived context.
func (r *FavoriteRepositoryFS) Watch(ctx context.Context, userID string) (favdom.Subscription, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("favorite_repository_fs: firestore client is nil")
	}

	uid := strings.TrimSpace(userID)
	if uid == "" {
		return nil, errors.New("favorite_repository_fs: userID is empty")
	}

	wctx, cancel := context.WithCancel(context.Background())
	sub := &favoriteSubscription{
		cancel: cancel,
		ch:     make(chan favdom.Snapshot, 1),
	}

	iter := r.col(uid).Snapshots(wctx)

	go func() {
		defer close(sub.ch)
		defer iter.Stop()

		for {
			qs, err := iter.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || errors.Is(err, context.Canceled) {
					return
				}
				log.Printf("[favorite_repository_fs] watch uid=%s stopped: %v", uid, err)
				return
			}

			snap := favdom.Snapshot{}
			for {
				doc, err := qs.Documents.Next()
				if err != nil {
					if !errors.Is(err, iterator.Done) {
						log.Printf("[favorite_repository_fs] watch uid=%s: read doc: %v", uid, err)
					}
					break
				}
				pid := strings.TrimSpace(doc.Ref.ID)
				if pid == "" {
					continue
				}
				m, err := favdom.FromRaw(pid, doc.Data())
				if err != nil {
					continue
				}
				snap[pid] = m
			}

			select {
			case sub.ch <- snap:
			case <-wctx.Done():
				return
			}
		}
	}()

	return sub, nil
}

type favoriteSubscription struct {
	cancel context.CancelFunc
	ch     chan favdom.Snapshot
	once   sync.Once
}

func (s *favoriteSubscription) Snapshots() <-chan favdom.Snapshot {
	return s.ch
}

func (s *favoriteSubscription) Stop() {
	s.once.Do(s.cancel)
}
