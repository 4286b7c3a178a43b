// AngelaMos | 2026
// core_test.go

package core

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/rwc-wellness/internal/config"
)

func TestRedis_Key(t *testing.T) {
	tests := []struct {
		namespace string
		want      string
	}{
		{"rwc", "rwc:booking:ref:RWC-LOYW3V28-000Z"},
		{"rwc:", "rwc:booking:ref:RWC-LOYW3V28-000Z"},
		{"", "booking:ref:RWC-LOYW3V28-000Z"},
	}

	for _, tt := range tests {
		r := NewRedisFromClient(nil, tt.namespace)
		assert.Equal(t, tt.want, r.Key("booking", "ref", "RWC-LOYW3V28-000Z"), tt.namespace)
	}
}

func TestResourceAttributes(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Catalog.Source = config.SourcePostgres
	cfg.Booking.ReferencePrefix = "RWC-DEV"

	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range resourceAttributes(cfg) {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "rwc-wellness", attrs["service.name"].AsString())
	assert.Equal(t, "postgres", attrs["rwc.catalog.source"].AsString())
	assert.Equal(t, "RWC-DEV", attrs["rwc.booking.reference_prefix"].AsString())
	assert.InDelta(t, 0.075, attrs["rwc.pricing.vat_rate"].AsFloat64(), 1e-9)
	assert.False(t, attrs["rwc.booking.reserved"].AsBool())
}

func TestSampleRate(t *testing.T) {
	assert.InDelta(t, 0.5, sampleRate(0.5), 1e-9)
	assert.InDelta(t, defaultSampleRate, sampleRate(0), 1e-9)
	assert.InDelta(t, defaultSampleRate, sampleRate(1.5), 1e-9)
}

func TestTelemetry_DisabledIsNoop(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	tel, err := NewTelemetry(context.Background(), cfg)
	require.NoError(t, err)
	assert.NoError(t, tel.Shutdown(context.Background()))
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestReadSnapshot_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM services").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("swedish-massage"))
	mock.ExpectCommit()

	var ids []string
	err := ReadSnapshot(context.Background(), db, func(q Querier) error {
		return q.SelectContext(context.Background(), &ids, "SELECT id FROM services")
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"swedish-massage"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadSnapshot_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := ReadSnapshot(context.Background(), db, func(Querier) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
