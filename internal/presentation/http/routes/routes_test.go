package routes

import (
	"testing"

	"github.com/storelinehq/storeline-api/internal/config"
	"github.com/storelinehq/storeline-api/internal/presentation/http/middleware"
)

func TestRateLimiterConfig(t *testing.T) {
	cases := []struct {
		name      string
		cfg       config.RateLimitConfig
		wantRate  float64
		wantBurst int
	}{
		{"configured", config.RateLimitConfig{Requests: 120, Duration: 60}, 2, 120},
		{"zero duration", config.RateLimitConfig{Requests: 120, Duration: 0},
			middleware.DefaultRateLimiterConfig().RequestsPerSecond,
			middleware.DefaultRateLimiterConfig().BurstSize},
		{"zero requests", config.RateLimitConfig{Requests: 0, Duration: 60},
			middleware.DefaultRateLimiterConfig().RequestsPerSecond,
			middleware.DefaultRateLimiterConfig().BurstSize},
		{"negative duration", config.RateLimitConfig{Requests: 100, Duration: -1},
			middleware.DefaultRateLimiterConfig().RequestsPerSecond,
			middleware.DefaultRateLimiterConfig().BurstSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rateLimiterConfig(tc.cfg)
			if got.RequestsPerSecond != tc.wantRate {
				t.Fatalf("rate = %v, want %v", got.RequestsPerSecond, tc.wantRate)
			}
			if got.BurstSize != tc.wantBurst {
				t.Fatalf("burst = %d, want %d", got.BurstSize, tc.wantBurst)
			}
		})
	}
}
