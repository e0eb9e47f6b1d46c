package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-secret-key-for-jwt")
}

func TestLoad_PoolAndRoleSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_POOL_MAX_CONNS", "40")
	t.Setenv("DB_POOL_MIN_CONNS", "10")
	t.Setenv("ADMIN_ROLE_IDS", "1, 7")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, int32(40), cfg.Database.PoolMaxConns)
	assert.Equal(t, int32(10), cfg.Database.PoolMinConns)
	assert.Equal(t, []int{1, 7}, cfg.App.AdminRoleIDs)
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_POOL_MAX_CONNS", "")
	t.Setenv("DB_POOL_MIN_CONNS", "")
	t.Setenv("ADMIN_ROLE_IDS", "")
	t.Setenv("APP_PORT", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, int32(25), cfg.Database.PoolMaxConns)
	assert.Equal(t, int32(5), cfg.Database.PoolMinConns)
	assert.Equal(t, []int{1}, cfg.App.AdminRoleIDs)
	assert.Equal(t, 8080, cfg.App.Port)
}

func TestLoad_RejectsInvertedPoolBounds(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_POOL_MAX_CONNS", "5")
	t.Setenv("DB_POOL_MIN_CONNS", "10")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()

	assert.Error(t, err)
}
