// Package redis はトークンキャッシュ用のRedisクライアントを構築します。
// Redisは任意の依存であり、接続できない場合サーバーはキャッシュなしで
// 起動します（internal/app/di 参照）。
package redis

import (
	"context"
	"log/slog"
	"os"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient はREDIS_HOST/REDIS_PORT/REDIS_PASSWORD/REDIS_DBから
// クライアントを構築し、Pingで到達性を確認してから返します。
func NewRedisClient() (*redis.Client, error) {
	addr := os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT")

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("redis unreachable, token cache disabled", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("redis connected for token cache", "address", addr, "db", db)
	return rdb, nil
}
