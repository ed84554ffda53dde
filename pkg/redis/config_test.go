package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	config := NewRedisConfig().
		WithHost("cache").
		WithPort(6380).
		WithDatabase(2).
		WithCacheTTL("lookup", 5*time.Minute)

	assert.NoError(t, config.Validate())
	assert.Equal(t, "cache:6380", config.Addr())
	assert.Equal(t, 5*time.Minute, config.CacheTTL("lookup"))
	assert.Equal(t, time.Hour, config.CacheTTL("other"))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{name: "empty host", config: NewRedisConfig().WithHost("")},
		{name: "port out of range", config: NewRedisConfig().WithPort(70000)},
		{name: "database out of range", config: NewRedisConfig().WithDatabase(16)},
		{name: "negative ttl", config: NewRedisConfig().WithCacheTTL("lookup", -time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.config.Validate())
		})
	}
}

func TestNewClientRejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(0))
	assert.Error(t, err)
}

func TestCacheKeysAndTTL(t *testing.T) {
	client, err := NewClient(NewRedisConfig().WithCacheTTL("geocoding-lookup", 24*time.Hour))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cache := NewCache(client, "geocoding-lookup")
	assert.Equal(t, "geocoding-lookup::mi:ann arbor", cache.buildCacheKey("mi:ann arbor"))
	assert.Equal(t, 24*time.Hour, cache.TTL())

	assert.Equal(t, "raw", NewCache(client, "").buildCacheKey("raw"))
}

func TestLockKey(t *testing.T) {
	client, err := NewClient(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	options := NewLockOptions()
	options.LockNamespace = "zipcode-reconciliation"
	lock := NewLock(client, "MI:ann arbor", options)

	assert.Contains(t, lock.buildLockKey(), "zipcode-reconciliation")
	assert.Contains(t, lock.buildLockKey(), "MI:ann arbor")
}
