// AngelaMos | 2026
// redis.go

package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/rwc-wellness/internal/config"
)

const redisPingTimeout = 5 * time.Second

// Redis is the shared client for booking reservations and rate limiting.
// Every key the service writes lives under the configured namespace.
type Redis struct {
	Client    *redis.Client
	namespace string
}

func NewRedis(
	ctx context.Context,
	cfg config.RedisConfig,
	clientName string,
) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.ClientName = clientName
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	r := NewRedisFromClient(redis.NewClient(opts), cfg.Namespace)
	if err := r.Ping(ctx); err != nil {
		_ = r.Client.Close() //nolint:errcheck // cleanup on connection failure
		return nil, err
	}

	return r, nil
}

// NewRedisFromClient wraps an existing client without pinging it.
func NewRedisFromClient(client *redis.Client, namespace string) *Redis {
	return &Redis{Client: client, namespace: strings.Trim(namespace, ":")}
}

// Key joins parts with ':' under the namespace, so Key("booking", "ref")
// becomes "rwc:booking:ref".
func (r *Redis) Key(parts ...string) string {
	if r.namespace != "" {
		parts = append([]string{r.namespace}, parts...)
	}
	return strings.Join(parts, ":")
}

func (r *Redis) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := r.Client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (r *Redis) PoolStats() *redis.PoolStats {
	return r.Client.PoolStats()
}
