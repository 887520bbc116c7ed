package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "storefront:session:"

// redisStore persists sessions in Redis as JSON with a per-key TTL, so cart
// state survives restarts and is shared between instances.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis and verifies the connection before
// returning the store.
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig, ttl time.Duration) (service.CartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to ping session redis")
	}

	return &redisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

// Load returns the stored session, or nil when the key is absent. Redis
// handles expiry itself through the key TTL.
func (s *redisStore) Load(ctx context.Context, sessionID string) (*entity.CheckoutSession, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	var session entity.CheckoutSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session payload")
	}

	return &session, nil
}

// Save persists the session as JSON and refreshes the key TTL.
func (s *redisStore) Save(ctx context.Context, sessionID string, session *entity.CheckoutSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session payload")
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save session")
	}

	return nil
}

// Delete drops the session key.
func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// Close releases the Redis connection pool.
func (s *redisStore) Close() error {
	return errors.WithStack(s.client.Close())
}
