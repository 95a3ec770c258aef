package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound is returned by [Store.Load] when no token is persisted.
var ErrTokenNotFound = errors.New("persisted token not found")

// ErrStorageUnavailable is returned when the backing store cannot be reached.
var ErrStorageUnavailable = errors.New("session storage unavailable")

const tokenKeySuffix = "token"

// Store persists the opaque session token under a single key.
//
// Store instances are intended to be configured during initialization and then treated as immutable.
type Store struct {
	redis  *redis.Client
	prefix string
}

// NewStore returns a Store writing under prefix (default "ag").
func NewStore(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "ag"
	}
	return &Store{redis: client, prefix: prefix}
}

func (s *Store) key() string {
	return s.prefix + ":" + tokenKeySuffix
}

// Persist writes the token, replacing any previous value. A zero ttl
// keeps the token until an explicit [Store.Clear].
func (s *Store) Persist(ctx context.Context, tok string, ttl time.Duration) error {
	if tok == "" {
		return errors.New("empty token")
	}
	if err := s.redis.Set(ctx, s.key(), tok, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Load reads the persisted token. Absence is reported as
// [ErrTokenNotFound]; backend failures as [ErrStorageUnavailable].
// Callers performing boot restore treat both as "no session".
func (s *Store) Load(ctx context.Context) (string, error) {
	tok, err := s.redis.Get(ctx, s.key()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return tok, nil
}

// Clear deletes the persisted token. Deleting an absent token is not
// an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.redis.Del(ctx, s.key()).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}
