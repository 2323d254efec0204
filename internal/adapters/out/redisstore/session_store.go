// internal/adapters/out/redisstore/session_store.go
package redisstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultSessionTTL is the inactivity window after which a session's cart
// disappears. Every Set refreshes it.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionStore implements cart.LocalStore on Redis. It plays the role the
// browser's session storage played for the web client: a per-session
// key/value store surviving reloads but not meant to be durable forever.
type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(ctx context.Context, rdb *redis.Client) (*SessionStore, error) {
	if rdb == nil {
		return nil, errors.New("session_store: redis client is nil")
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &SessionStore{rdb: rdb, ttl: DefaultSessionTTL}, nil
}

// Get returns (value, found, err). A missing key is not an error.
func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s == nil || s.rdb == nil {
		return "", false, errors.New("session_store: not initialized")
	}

	k := strings.TrimSpace(key)
	if k == "" {
		return "", false, errors.New("session_store: key is empty")
	}

	v, err := s.rdb.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// Set overwrites the value and refreshes the session TTL.
func (s *SessionStore) Set(ctx context.Context, key string, value string) error {
	if s == nil || s.rdb == nil {
		return errors.New("session_store: not initialized")
	}

	k := strings.TrimSpace(key)
	if k == "" {
		return errors.New("session_store: key is empty")
	}

	return s.rdb.Set(ctx, k, value, s.ttl).Err()
}
