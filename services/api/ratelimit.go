package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/yannismate/osrs-hiscores/libs/ratelimit"
)

type apiUsers interface {
	GetApiUserByKey(ctx context.Context, apiKey string) (*ApiUser, error)
}

type limiter interface {
	AllowIfTracked(ctx context.Context, key string) (int, error)
	AllowNew(ctx context.Context, key string, limit int, interval time.Duration) (int, error)
}

func withRateLimit(users apiUsers, rl limiter, window time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("X-API-KEY")
		if apiKey == "" {
			apiKey = r.URL.Query().Get("api_key")
		}
		if apiKey == "" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("No api key specified"))
			return
		}

		limitRemaining, err := rl.AllowIfTracked(r.Context(), "apikey:"+apiKey)
		if errors.Is(err, ratelimit.ErrNotTracked) {
			apiUser, err := users.GetApiUserByKey(r.Context(), apiKey)
			if err != nil {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte("Api key invalid"))
				return
			}

			limitRemaining, err = rl.AllowNew(r.Context(), "apikey:"+apiKey, apiUser.RateLimit, window)
			if err != nil {
				log.WithField("event", "ratelimiter_allow_new").Error(err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		} else if err != nil {
			log.WithField("event", "ratelimiter_allow_tracked").Error(err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if limitRemaining < 0 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("Rate limit exceeded"))
			return
		}
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(limitRemaining))
		next.ServeHTTP(w, r)
	})
}
