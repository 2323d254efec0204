// internal/domain/user/entity.go
package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidProfile = errors.New("user: invalid profile")
)

// Profile is the storefront-side user record, created right after the
// Firebase account is registered. Credentials live with the auth provider;
// this document only carries display data.
type Profile struct {
	UID       string    `json:"uid" firestore:"uid"`
	Username  string    `json:"username" firestore:"username"`
	Email     string    `json:"email" firestore:"email"`
	FirstName string    `json:"firstName" firestore:"firstName"`
	LastName  string    `json:"lastName" firestore:"lastName"`
	BirthDate string    `json:"birthDate" firestore:"birthDate"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// NewProfile validates and returns a Profile.
func NewProfile(uid, username, email, firstName, lastName, birthDate string, now time.Time) (Profile, error) {
	p := Profile{
		UID:       strings.TrimSpace(uid),
		Username:  strings.TrimSpace(username),
		Email:     strings.TrimSpace(email),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		BirthDate: strings.TrimSpace(birthDate),
		CreatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (p Profile) Validate() error {
	if p.UID == "" || p.Email == "" {
		return ErrInvalidProfile
	}
	if p.CreatedAt.IsZero() {
		return ErrInvalidProfile
	}
	return nil
}

// FullName formats "First Last", tolerating missing parts.
func (p Profile) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}
