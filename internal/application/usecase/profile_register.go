// internal/application/usecase/profile_register.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	userdom "naturalglow/internal/domain/user"
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ProfileRegister creates the storefront profile document right after the
// auth provider account is registered. Credentials never pass through here;
// only display data is stored.
type ProfileRegister struct {
	repo  userdom.Repository
	clock Clock
}

func NewProfileRegister(repo userdom.Repository) *ProfileRegister {
	return &ProfileRegister{
		repo:  repo,
		clock: systemClock{},
	}
}

// NewProfileRegisterWithClock is useful for tests.
func NewProfileRegisterWithClock(repo userdom.Repository, clock Clock) *ProfileRegister {
	if clock == nil {
		clock = systemClock{}
	}
	return &ProfileRegister{repo: repo, clock: clock}
}

// Register validates and saves the profile. uid and email come from the
// verified identity, never from the request body.
func (u *ProfileRegister) Register(ctx context.Context, uid, username, email, firstName, lastName, birthDate string) (userdom.Profile, error) {
	if u == nil || u.repo == nil {
		return userdom.Profile{}, errors.New("profile_register: repo is nil")
	}

	p, err := userdom.NewProfile(uid, username, email, firstName, lastName, birthDate, u.clock.Now().UTC())
	if err != nil {
		return userdom.Profile{}, err
	}

	if err := u.repo.Save(ctx, p); err != nil {
		return userdom.Profile{}, fmt.Errorf("profile_register: save uid=%s: %w", p.UID, err)
	}
	return p, nil
}
