package connection_test

import (
	"testing"
	"time"

	"go-workforce/internal/shared/connection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDBConfig_Dialector(t *testing.T) {
	d, err := connection.DBConfig{}.Dialector()
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = connection.DBConfig{Driver: connection.DriverSQLite}.Dialector()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = connection.DBConfig{Driver: "oracle"}.Dialector()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestConnectGORMWithRetry_SQLite(t *testing.T) {
	db, err := connection.ConnectGORMWithRetry(
		connection.DBConfig{Driver: connection.DriverSQLite, SQLitePath: "file::memory:"},
		1, time.Millisecond, zap.NewNop(),
	)

	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}

func TestConnectRedisWithRetry_Unreachable(t *testing.T) {
	_, err := connection.ConnectRedisWithRetry("127.0.0.1:1", 1, time.Millisecond, zap.NewNop())

	assert.ErrorContains(t, err, "failed to connect redis")
}

func TestNewKafkaWriter(t *testing.T) {
	w := connection.NewKafkaWriter("localhost:9092")

	assert.Equal(t, "localhost:9092", w.Addr.String())
	assert.True(t, w.AllowAutoTopicCreation)
}
