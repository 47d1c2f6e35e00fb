package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"hotelbook/models"
	"hotelbook/utils"
)

// RedisStore keeps one key per scope; every save refreshes the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	sealer *Sealer
}

func NewRedisStore(client *redis.Client, ttl time.Duration, sealer *Sealer) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, sealer: sealer}
}

func (r *RedisStore) Get(ctx context.Context, scope string) (*models.Session, error) {
	data, err := r.client.Get(ctx, utils.SessionKeyPrefix+scope).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if r.sealer != nil {
		if data, err = r.sealer.Open(data); err != nil {
			return nil, err
		}
	}
	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s *models.Session) error {
	if s == nil || s.Scope == "" {
		return ErrScopeRequired
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if r.sealer != nil {
		if data, err = r.sealer.Seal(data); err != nil {
			return err
		}
	}
	if err := r.client.Set(ctx, utils.SessionKeyPrefix+s.Scope, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, scope string) error {
	return r.client.Del(ctx, utils.SessionKeyPrefix+scope).Err()
}
