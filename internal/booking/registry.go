// AngelaMos | 2026
// registry.go

package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/carterperez-dev/rwc-wellness/internal/core"
)

var ErrReferenceExhausted = fmt.Errorf(
	"no unique booking reference available: %w",
	core.ErrConflict,
)

type RegistryConfig struct {
	TTL         time.Duration
	MaxAttempts int
}

// Registry reserves booking references in Redis so that a reference is
// handed out at most once while its key lives.
type Registry struct {
	rdb    *core.Redis
	gen    *Generator
	cfg    RegistryConfig
	tracer trace.Tracer
}

func NewRegistry(
	rdb *core.Redis,
	gen *Generator,
	cfg RegistryConfig,
) *Registry {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	return &Registry{
		rdb:    rdb,
		gen:    gen,
		cfg:    cfg,
		tracer: otel.Tracer("rwc-wellness/booking"),
	}
}

// Reserve generates references until one is claimed with SET NX, or fails
// with ErrReferenceExhausted after MaxAttempts collisions.
func (r *Registry) Reserve(ctx context.Context) (string, error) {
	ctx, span := r.tracer.Start(ctx, "booking.Registry.Reserve")
	defer span.End()

	issuedAt := time.Now().UTC().Format(time.RFC3339Nano)

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		ref := r.gen.Generate()

		ok, err := r.rdb.Client.SetNX(ctx, r.key(ref), issuedAt, r.cfg.TTL).Result()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "redis setnx failed")
			return "", fmt.Errorf(
				"reserve booking reference: %w",
				errors.Join(core.ErrUnavailable, err),
			)
		}

		if ok {
			span.SetAttributes(
				attribute.String("booking.reference", ref),
				attribute.Int("booking.attempts", attempt),
			)
			return ref, nil
		}

		core.AddSpanEvent(ctx, "booking.reference_collision",
			attribute.Int("booking.attempt", attempt),
		)
	}

	span.SetStatus(codes.Error, "reference space exhausted")
	return "", ErrReferenceExhausted
}

func (r *Registry) Exists(ctx context.Context, ref string) (bool, error) {
	n, err := r.rdb.Client.Exists(ctx, r.key(ref)).Result()
	if err != nil {
		return false, fmt.Errorf(
			"check booking reference: %w",
			errors.Join(core.ErrUnavailable, err),
		)
	}
	return n > 0, nil
}

// Release frees a reservation, e.g. when the booking it was issued for is
// abandoned before confirmation.
func (r *Registry) Release(ctx context.Context, ref string) error {
	if err := r.rdb.Client.Del(ctx, r.key(ref)).Err(); err != nil {
		return fmt.Errorf(
			"release booking reference: %w",
			errors.Join(core.ErrUnavailable, err),
		)
	}
	return nil
}

// key places ref under the namespaced reservation keyspace,
// e.g. "rwc:booking:ref:RWC-LOYW3V28-000Z".
func (r *Registry) key(ref string) string {
	return r.rdb.Key("booking", "ref", ref)
}
