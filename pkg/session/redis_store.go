package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"coursehub/pkg/domain"
)

const redisOpTimeout = 3 * time.Second

// RedisStore keeps the session in Redis under a fixed key, for shared or
// kiosk deployments where several client processes present one login.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed session store. A zero TTL means the
// session only goes away on Clear or credential expiry.
func NewRedisStore(addr, password, keyPrefix string, ttl time.Duration) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	if keyPrefix == "" {
		keyPrefix = "coursehub"
	}
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		key: keyPrefix + ":session",
		ttl: ttl,
	}, nil
}

func (s *RedisStore) Save(sess domain.Session) error {
	raw, err := json.Marshal(toPersisted(sess))
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Set(ctx, s.key, raw, s.ttl).Err()
}

func (s *RedisStore) Load() (domain.Session, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return domain.Session{}, false, nil
	}
	if err != nil {
		return domain.Session{}, false, err
	}
	var p persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Session{}, false, fmt.Errorf("parse stored session: %w", err)
	}
	if p.Token == "" {
		return domain.Session{}, false, nil
	}
	return p.session(), true, nil
}

func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := s.client.Del(ctx, s.key).Err(); err != nil && err != redis.Nil {
		return err
	}
	return nil
}
