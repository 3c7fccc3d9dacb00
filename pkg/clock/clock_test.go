package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlamas/vestnik-telegram-bot/pkg/clock"
)

func TestClock_Now(t *testing.T) {
	c := clock.New()
	require.NotNil(t, c)

	startAt := time.Now()
	now := c.Now()
	assert.GreaterOrEqual(t, now, startAt)

	c = clock.NewWithLocation(time.UTC)
	require.NotNil(t, c)

	startAt = time.Now()
	now = c.Now()
	assert.GreaterOrEqual(t, now, startAt)
	assert.Equal(t, time.UTC, now.Location())
}

func TestMock_Now(t *testing.T) {
	m := clock.NewMock(time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC))
	require.NotNil(t, m)

	assert.Equal(t, time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC), m.Now())
	assert.Equal(t, time.Date(2026, time.August, 20, 9, 0, 0, 0, time.UTC), m.Now())

	m.Set(time.Date(2026, time.August, 21, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.August, 21, 9, 0, 0, 0, time.UTC), m.Now())
}
