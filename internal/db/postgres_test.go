package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.User = "analytics"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "alumnisphere"
	cfg.Database.MaxOpenConns = 8
	cfg.Database.MaxIdleConns = 12
	cfg.Database.ConnMaxLifetime = "45m"
	return cfg
}

func TestPoolConfig(t *testing.T) {
	pc, err := PoolConfig(testConfig())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "alumnisphere", pc.ConnConfig.Database)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(8), pc.MinConns, "min conns are capped at max conns")
	assert.Equal(t, 45*time.Minute, pc.MaxConnLifetime)
	assert.Equal(t, "alumnisphere", pc.ConnConfig.RuntimeParams["application_name"])
	assert.NotNil(t, pc.BeforeAcquire)
}

func TestPoolConfig_BadLifetime(t *testing.T) {
	cfg := testConfig()
	cfg.Database.ConnMaxLifetime = "forever"

	_, err := PoolConfig(cfg)
	assert.ErrorContains(t, err, "max lifetime")
}
