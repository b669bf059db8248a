package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLimitResult(t *testing.T) {
	t.Run("allowed with remaining budget", func(t *testing.T) {
		result, err := parseLimitResult([]interface{}{int64(1), int64(4)}, 5, 1234)
		require.NoError(t, err)
		require.True(t, result.Allowed)
		require.Equal(t, 5, result.Limit)
		require.Equal(t, 4, result.Remaining)
		require.Equal(t, int64(1234), result.ResetTime)
	})

	t.Run("full window is rejected", func(t *testing.T) {
		// The over-limit branch of the script reports {0, 0}; the window
		// entry count alone would be indistinguishable from a just-filled
		// window, so the flag must drive the decision
		result, err := parseLimitResult([]interface{}{int64(0), int64(0)}, 2, 1234)
		require.NoError(t, err)
		require.False(t, result.Allowed)
		require.Equal(t, 0, result.Remaining)
	})

	t.Run("last slot in the window is still allowed", func(t *testing.T) {
		result, err := parseLimitResult([]interface{}{int64(1), int64(0)}, 2, 1234)
		require.NoError(t, err)
		require.True(t, result.Allowed)
		require.Equal(t, 0, result.Remaining)
	})

	t.Run("negative remaining clamps to zero", func(t *testing.T) {
		result, err := parseLimitResult([]interface{}{int64(1), int64(-1)}, 2, 1234)
		require.NoError(t, err)
		require.Equal(t, 0, result.Remaining)
	})

	t.Run("malformed replies", func(t *testing.T) {
		_, err := parseLimitResult("not a slice", 2, 1234)
		require.Error(t, err)

		_, err = parseLimitResult([]interface{}{int64(1)}, 2, 1234)
		require.Error(t, err)

		_, err = parseLimitResult([]interface{}{"x", "y"}, 2, 1234)
		require.Error(t, err)
	})
}

func TestIsAllowedBypasses(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled limiter always allows", func(t *testing.T) {
		limiter := NewRateLimiter(nil, &Config{
			Enabled:         false,
			WindowDuration:  time.Minute,
			DefaultRequests: 2,
		})

		for i := 0; i < 5; i++ {
			result, err := limiter.IsAllowed(ctx, "192.0.2.1", RateLimitTypeDefault)
			require.NoError(t, err)
			require.True(t, result.Allowed)
			require.Equal(t, 2, result.Remaining)
		}
	})

	t.Run("whitelisted ip skips the window", func(t *testing.T) {
		limiter := NewRateLimiter(nil, &Config{
			Enabled:        true,
			WindowDuration: time.Minute,
			AuthRequests:   1,
			WhitelistedIPs: []string{"192.0.2.7"},
		})

		result, err := limiter.IsAllowed(ctx, "192.0.2.7", RateLimitTypeAuth)
		require.NoError(t, err)
		require.True(t, result.Allowed)
		require.Equal(t, 1, result.Limit)
	})
}

func TestGetLimitBuckets(t *testing.T) {
	limiter := NewRateLimiter(nil, &Config{
		DefaultRequests: 60,
		AuthRequests:    10,
		HealthRequests:  120,
	})

	require.Equal(t, 10, limiter.getLimit(RateLimitTypeAuth))
	require.Equal(t, 120, limiter.getLimit(RateLimitTypeHealth))
	require.Equal(t, 60, limiter.getLimit(RateLimitTypeDefault))
	require.Equal(t, 60, limiter.getLimit(RateLimitType("unknown")))
}
