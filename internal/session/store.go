package session

import (
	"context"
	"errors"
	"time"

	"aerobook/internal/shared/constants"
	"aerobook/pkg/cache"
)

// ErrNotFound is returned when a named key has no value in the session
var ErrNotFound = errors.New("session: key not found")

// Store persists named, JSON-serialized values scoped to one booking
// session, so a page reload mid-booking does not lose state. It is a cache:
// the provider session stays authoritative for price and availability.
type Store interface {
	Get(ctx context.Context, sessionID, key string, dest interface{}) error
	Set(ctx context.Context, sessionID, key string, value interface{}) error
	Clear(ctx context.Context, sessionID, key string) error
}

// redisStore backs Store with the shared Redis cache service
type redisStore struct {
	cache cache.Service
	ttl   time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(cacheSvc cache.Service, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = constants.TTL_SESSION
	}
	return &redisStore{cache: cacheSvc, ttl: ttl}
}

func (s *redisStore) Get(ctx context.Context, sessionID, key string, dest interface{}) error {
	err := s.cache.Get(ctx, constants.SessionKey(sessionID, key), dest)
	if errors.Is(err, cache.ErrCacheMiss) {
		return ErrNotFound
	}
	return err
}

func (s *redisStore) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	return s.cache.Set(ctx, constants.SessionKey(sessionID, key), value, s.ttl)
}

func (s *redisStore) Clear(ctx context.Context, sessionID, key string) error {
	return s.cache.Delete(ctx, constants.SessionKey(sessionID, key))
}
