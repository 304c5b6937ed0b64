package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadRPCDefaults(t *testing.T) {
	rpc := loadRPC()
	assert.Equal(t, "localhost", rpc.Host)
	assert.Equal(t, "1099", rpc.Port)
	assert.Equal(t, "CarRentalService", rpc.ServiceName)
}

func TestLoadRPCOverrides(t *testing.T) {
	t.Setenv("RPC_HOST", "backend.internal")
	t.Setenv("RPC_PORT", "2000")
	t.Setenv("RPC_SERVICE_NAME", "RentalBackend")

	rpc := loadRPC()
	assert.Equal(t, "backend.internal", rpc.Host)
	assert.Equal(t, "2000", rpc.Port)
	assert.Equal(t, "RentalBackend", rpc.ServiceName)
}

func TestLoadRateLimitConfigClampsValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 2*time.Second, cfg.RefillInterval)
	assert.Equal(t, 10*time.Second, cfg.TTL, "TTL is clamped to five refill intervals")
}

func TestLoadCacheConfigMethods(t *testing.T) {
	t.Setenv("CACHE_METHODS", "get, head")

	cfg := LoadCacheConfig()
	assert.True(t, cfg.Methods["GET"])
	assert.True(t, cfg.Methods["HEAD"])
	assert.False(t, cfg.Methods["POST"])
}
