package ratelimits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlimited_NeverBlocks(t *testing.T) {
	t.Parallel()

	limiter := Unlimited()
	ctx := context.Background()
	for i := 0; i < 1000; i++ {
		require.NoError(t, limiter.Wait(ctx))
	}
}

func TestNew_BurstThenThrottle(t *testing.T) {
	t.Parallel()

	limiter := New(1, 2)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.NoError(t, limiter.Wait(ctx))
	require.NoError(t, limiter.Wait(ctx))

	// The third token is a full second away, past the deadline.
	assert.Error(t, limiter.Wait(ctx))
}

func TestNew_CancelledContext(t *testing.T) {
	t.Parallel()

	limiter := New(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, limiter.Wait(ctx))
	cancel()

	assert.Error(t, limiter.Wait(ctx))
}
