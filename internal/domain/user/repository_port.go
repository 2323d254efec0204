// internal/domain/user/repository_port.go
package user

import "context"

// Repository is the persistence port for user profiles.
//
// Storage (Firestore):
// - collection: users
// - docId: firebase uid
type Repository interface {
	// GetByUID returns (nil, nil) when the profile does not exist.
	GetByUID(ctx context.Context, uid string) (*Profile, error)

	// Save upserts the profile (docId = profile.UID).
	Save(ctx context.Context, p Profile) error
}
