package redis_client

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to the token store and verifies the connection with a PING.
func NewRedisClient(host string, port int, db int) (*redis.Client, error) {

	maxPool := runtime.NumCPU() * 4
	if maxPool > 128 {
		maxPool = 128
	}

	rc := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		DB:       db,
		PoolSize: maxPool,
	})

	ctx, cancelFunc := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFunc()
	if err := Ping(ctx, rc); err != nil {
		_ = rc.Close()
		return nil, err
	}
	return rc, nil
}

// Ping is shared with the health endpoint.
func Ping(ctx context.Context, rc redis.UniversalClient) error {
	if _, err := rc.Ping(ctx).Result(); err != nil {
		err = errors.New("redis connection failed: " + err.Error())
		zap.L().Error("redis_connect", zap.Error(err))
		return err
	}
	return nil
}
