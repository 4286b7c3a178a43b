// AngelaMos | 2026
// registry_test.go

package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rwc-wellness/internal/core"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *core.Redis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, core.NewRedisFromClient(client, "rwc")
}

func reservationKey(ref string) string {
	return "rwc:booking:ref:" + ref
}

// sequence returns the given random suffixes in order, repeating the last.
func sequence(values ...int) func(int) int {
	i := 0
	return func(int) int {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

func TestRegistry_Reserve(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()

	reg := NewRegistry(client, NewGenerator(), RegistryConfig{
		TTL:         time.Hour,
		MaxAttempts: 3,
	})

	ref, err := reg.Reserve(ctx)
	require.NoError(t, err)
	assert.Regexp(t, referencePattern, ref)

	assert.True(t, mr.Exists(reservationKey(ref)))
	assert.Equal(t, time.Hour, mr.TTL(reservationKey(ref)))

	exists, err := reg.Exists(ctx, ref)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRegistry_Reserve_RegeneratesOnCollision(t *testing.T) {
	_, client := setupRedis(t)
	ctx := context.Background()

	gen := NewGenerator(
		WithClock(fixedClock(time.UnixMilli(1700000000000))),
		WithRandom(sequence(1, 1, 2)),
	)
	reg := NewRegistry(client, gen, RegistryConfig{TTL: time.Hour, MaxAttempts: 3})

	first, err := reg.Reserve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RWC-LOYW3V28-0001", first)

	second, err := reg.Reserve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "RWC-LOYW3V28-0002", second)
}

func TestRegistry_Reserve_Exhausted(t *testing.T) {
	_, client := setupRedis(t)
	ctx := context.Background()

	gen := NewGenerator(
		WithClock(fixedClock(time.UnixMilli(1700000000000))),
		WithRandom(func(int) int { return 7 }),
	)
	reg := NewRegistry(client, gen, RegistryConfig{TTL: time.Hour, MaxAttempts: 2})

	_, err := reg.Reserve(ctx)
	require.NoError(t, err)

	_, err = reg.Reserve(ctx)
	assert.ErrorIs(t, err, ErrReferenceExhausted)
	assert.ErrorIs(t, err, core.ErrConflict)
}

func TestRegistry_Release(t *testing.T) {
	mr, client := setupRedis(t)
	ctx := context.Background()

	reg := NewRegistry(client, NewGenerator(), RegistryConfig{TTL: time.Minute})

	ref, err := reg.Reserve(ctx)
	require.NoError(t, err)

	require.NoError(t, reg.Release(ctx, ref))
	assert.False(t, mr.Exists(reservationKey(ref)))

	exists, err := reg.Exists(ctx, ref)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegistry_RedisDown(t *testing.T) {
	mr, client := setupRedis(t)
	mr.Close()

	reg := NewRegistry(client, NewGenerator(), RegistryConfig{TTL: time.Minute, MaxAttempts: 2})

	_, err := reg.Reserve(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnavailable))
	assert.False(t, errors.Is(err, ErrReferenceExhausted))
}
