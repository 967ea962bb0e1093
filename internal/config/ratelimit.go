package config

import "time"

// RateLimitConfig controls the fixed-window limiter applied to the
// credential endpoints (login/register). Window counts are kept in Redis so
// the limit holds across replicas.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // requests allowed per window and key
	Window  time.Duration // window length
	Prefix  string        // Redis key namespace
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig. The defaults allow 20 attempts per minute per client IP,
// which is generous for humans and tight enough to slow credential
// stuffing.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_LIMIT", 20),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	return cfg
}
