package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_BurstThenDeny(t *testing.T) {
	l := NewLimiter(3, time.Hour)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		info := l.Allow("client-a")
		assert.True(t, info.Allowed, "request %d", i)
		assert.Equal(t, 3, info.Limit)
	}

	info := l.Allow("client-a")
	require.False(t, info.Allowed)
	assert.Zero(t, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(1, time.Hour)
	defer l.Stop()

	assert.True(t, l.Allow("client-a").Allowed)
	assert.False(t, l.Allow("client-a").Allowed)
	assert.True(t, l.Allow("client-b").Allowed)
}

func TestAllow_RefillsOverTime(t *testing.T) {
	l := NewLimiter(10, 100*time.Millisecond)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		require.True(t, l.Allow("client-a").Allowed)
	}
	require.False(t, l.Allow("client-a").Allowed)

	time.Sleep(50 * time.Millisecond)
	assert.True(t, l.Allow("client-a").Allowed)
}

func TestAllow_RemainingCountsDown(t *testing.T) {
	l := NewLimiter(2, time.Hour)
	defer l.Stop()

	assert.Equal(t, 1, l.Allow("client-a").Remaining)
	assert.Equal(t, 0, l.Allow("client-a").Remaining)
}
