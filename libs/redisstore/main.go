package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrMissing = errors.New("key does not exist")

// Store holds the short-lived counters of the rate limiters. It never holds
// hiscores data.
type Store struct {
	redis *redis.Client
}

func NewStore(url string) *Store {
	return &Store{
		redis: redis.NewClient(&redis.Options{
			Addr:     url,
			Password: "",
			DB:       0,
		}),
	}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	res, err := s.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMissing
	}
	return res, err
}

func (s *Store) SetWithTtl(ctx context.Context, key string, value string, ttl time.Duration) error {
	return s.redis.Set(ctx, key, value, ttl).Err()
}

func (s *Store) SetKeepTtl(ctx context.Context, key string, value string) error {
	return s.redis.Do(ctx, "set", key, value, "keepttl").Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.redis.Del(ctx, key).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.redis.Close()
}
