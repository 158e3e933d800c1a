package main

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
)

type ApiDb struct {
	pool *pgxpool.Pool
}

type ApiUser struct {
	UserId    int
	ApiKey    string
	RateLimit int
}

func NewApiDb(ctx context.Context, uri string) (*ApiDb, error) {
	dbPool, err := pgxpool.Connect(ctx, uri)
	if err != nil {
		return nil, err
	}

	return &ApiDb{pool: dbPool}, nil
}

// GetApiUserByKey returns the owner of apiKey and the number of requests it may
// issue per rate limit window.
func (db *ApiDb) GetApiUserByKey(ctx context.Context, apiKey string) (*ApiUser, error) {
	var userId int32
	var rateLimit int32

	err := db.pool.QueryRow(ctx, "select user_id, api_key, ratelimit_300 from users_api where api_key=$1", apiKey).Scan(&userId, &apiKey, &rateLimit)
	if err != nil {
		return nil, err
	}

	return &ApiUser{
		UserId:    int(userId),
		ApiKey:    apiKey,
		RateLimit: int(rateLimit),
	}, nil
}

func (db *ApiDb) Close() {
	db.pool.Close()
}
