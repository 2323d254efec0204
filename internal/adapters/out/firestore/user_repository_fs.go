// internal/adapters/out/firestore/user_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userdom "naturalglow/internal/domain/user"
)

// UserRepositoryFS implements user.Repository on Firestore.
//
// Collection design:
// - collection: users
// - docId: firebase uid (docId is the source of truth)
type UserRepositoryFS struct {
	Client *firestore.Client
}

func NewUserRepositoryFS(client *firestore.Client) *UserRepositoryFS {
	return &UserRepositoryFS{Client: client}
}

func (r *UserRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("users")
}

// GetByUID returns (nil, nil) if not found (nil policy).
func (r *UserRepositoryFS) GetByUID(ctx context.Context, uid string) (*userdom.Profile, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("user_repository_fs: firestore client is nil")
	}

	id := strings.TrimSpace(uid)
	if id == "" {
		return nil, errors.New("user_repository_fs: uid is empty")
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var d profileDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, err
	}

	p := d.toDomain()
	p.UID = id
	return &p, nil
}

// Save upserts the profile (docId = p.UID). The savedProducts subcollection
// under the same document is untouched.
func (r *UserRepositoryFS) Save(ctx context.Context, p userdom.Profile) error {
	if r == nil || r.Client == nil {
		return errors.New("user_repository_fs: firestore client is nil")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	_, err := r.col().Doc(p.UID).Set(ctx, profileDocFromDomain(p))
	return err
}

// -----------------------------------------
// Firestore DTO
// -----------------------------------------

type profileDoc struct {
	Username  string    `firestore:"username"`
	Email     string    `firestore:"email"`
	FirstName string    `firestore:"firstName"`
	LastName  string    `firestore:"lastName"`
	BirthDate string    `firestore:"birthDate"`
	CreatedAt time.Time `firestore:"createdAt"`
}

func profileDocFromDomain(p userdom.Profile) profileDoc {
	return profileDoc{
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate,
		CreatedAt: p.CreatedAt,
	}
}

func (d profileDoc) toDomain() userdom.Profile {
	return userdom.Profile{
		Username:  d.Username,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		BirthDate: d.BirthDate,
		CreatedAt: d.CreatedAt,
	}
}
