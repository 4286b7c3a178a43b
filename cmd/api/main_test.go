// AngelaMos | 2026
// main_test.go

package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/rwc-wellness/internal/config"
	"github.com/carterperez-dev/rwc-wellness/internal/core"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func stubStores(
	t *testing.T,
	db func(context.Context, config.DatabaseConfig, string) (*core.Database, error),
	rdb func(context.Context, config.RedisConfig, string) (*core.Redis, error),
) {
	t.Helper()
	prevDB, prevRedis := openDatabase, openRedis
	openDatabase, openRedis = db, rdb
	t.Cleanup(func() { openDatabase, openRedis = prevDB, prevRedis })
}

func TestConnectStores_ClosesDatabaseWhenRedisFails(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	stubStores(t,
		func(context.Context, config.DatabaseConfig, string) (*core.Database, error) {
			return &core.Database{DB: sqlx.NewDb(sqlDB, "sqlmock")}, nil
		},
		func(context.Context, config.RedisConfig, string) (*core.Redis, error) {
			return nil, errors.New("dial tcp: connection refused")
		},
	)

	cfg := &config.Config{
		Database: config.DatabaseConfig{URL: "postgres://localhost/rwc"},
		Redis:    config.RedisConfig{URL: "redis://localhost:6379/0"},
	}

	_, err = connectStores(context.Background(), cfg, discardLogger())
	require.ErrorContains(t, err, "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectStores_NothingConfigured(t *testing.T) {
	stubStores(t,
		func(context.Context, config.DatabaseConfig, string) (*core.Database, error) {
			t.Fatal("database opened without a url")
			return nil, nil
		},
		func(context.Context, config.RedisConfig, string) (*core.Redis, error) {
			t.Fatal("redis opened without a url")
			return nil, nil
		},
	)

	s, err := connectStores(context.Background(), &config.Config{}, discardLogger())
	require.NoError(t, err)
	assert.Nil(t, s.db)
	assert.Nil(t, s.rdb)
	s.Close(discardLogger())
}
