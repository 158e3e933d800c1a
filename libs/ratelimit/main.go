package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/yannismate/osrs-hiscores/libs/redisstore"
)

const keyPrefix = "ratelimiter:"

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTtl(ctx context.Context, key string, value string, ttl time.Duration) error
	SetKeepTtl(ctx context.Context, key string, value string) error
}

// ErrNotTracked is returned by AllowIfTracked when no window is open for the key.
var ErrNotTracked = errors.New("rate limit key is not tracked")

// SharedRateLimiter is a fixed-window limiter whose counters live in a store
// shared by every replica of a service.
type SharedRateLimiter struct {
	store Store
}

func NewSharedRateLimiter(store Store) *SharedRateLimiter {
	return &SharedRateLimiter{
		store: store,
	}
}

// AllowIfTracked consumes one request from an open window and returns the
// amount left. A negative amount means the limit is exceeded.
func (srl *SharedRateLimiter) AllowIfTracked(ctx context.Context, key string) (int, error) {
	res, err := srl.store.Get(ctx, keyPrefix+key)
	if errors.Is(err, redisstore.ErrMissing) {
		return 0, ErrNotTracked
	}
	if err != nil {
		return 0, err
	}

	amountLeft, err := strconv.Atoi(res)
	if err != nil {
		log.WithField("event", "ratelimiter_parse").Error(err)
		return 0, err
	}

	amountLeft = amountLeft - 1

	if amountLeft < 0 {
		return amountLeft, nil
	}

	err = srl.store.SetKeepTtl(ctx, keyPrefix+key, strconv.Itoa(amountLeft))
	if err != nil {
		log.WithField("event", "ratelimiter_update").Error(err)
		return 0, err
	}

	return amountLeft, nil
}

// AllowNew opens a window of limit requests for key and consumes the first.
func (srl *SharedRateLimiter) AllowNew(ctx context.Context, key string, limit int, interval time.Duration) (int, error) {
	err := srl.store.SetWithTtl(ctx, keyPrefix+key, strconv.Itoa(limit-1), interval)
	if err != nil {
		log.WithField("event", "ratelimiter_set").Error(err)
		return 0, err
	}
	return limit - 1, nil
}

// Allow consumes one request, opening a new window when none is tracked.
func (srl *SharedRateLimiter) Allow(ctx context.Context, key string, limit int, interval time.Duration) (bool, error) {
	left, err := srl.AllowIfTracked(ctx, key)
	if errors.Is(err, ErrNotTracked) {
		left, err = srl.AllowNew(ctx, key, limit, interval)
	}
	if err != nil {
		return false, err
	}
	return left >= 0, nil
}
