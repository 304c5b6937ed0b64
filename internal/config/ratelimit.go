package config

import "time"

// RateLimitConfig configures the token-bucket limiter the gateway applies
// per client IP and route.  Capacity is the burst size; RefillTokens are
// added back every RefillInterval.  TTL bounds how long an idle bucket is
// kept in Redis and is clamped so state never expires mid-refill.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string
	Prefix         string
}

// LoadRateLimitConfig reads the limiter settings from the environment and
// normalizes out-of-range values instead of failing.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       atoi(getenv("RATE_LIMIT_CAPACITY", "60")),
		RefillTokens:   atoi(getenv("RATE_LIMIT_REFILL_TOKENS", "1")),
		RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "1s")),
		TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
		KeyStrategy:    getenv("RATE_LIMIT_KEY_STRATEGY", "ip_route"),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if min := 5 * cfg.RefillInterval; cfg.TTL < min {
		cfg.TTL = min
	}
	return cfg
}
