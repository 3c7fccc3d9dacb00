package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_BroadcastAt(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c := &Config{BroadcastTime: "09:30"}

		hour, minute, err := c.BroadcastAt()
		require.NoError(t, err)
		assert.Equal(t, 9, hour)
		assert.Equal(t, 30, minute)
	})

	t.Run("invalid", func(t *testing.T) {
		c := &Config{BroadcastTime: "9 am"}

		_, _, err := c.BroadcastAt()
		require.ErrorContains(t, err, `parse broadcast time "9 am"`)
	})
}

func TestConfig_Location(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		c := &Config{Timezone: "Europe/Moscow"}

		loc, err := c.Location()
		require.NoError(t, err)
		assert.Equal(t, "Europe/Moscow", loc.String())
	})

	t.Run("invalid", func(t *testing.T) {
		c := &Config{Timezone: "Mars/Olympus"}

		_, err := c.Location()
		require.ErrorContains(t, err, `load timezone "Mars/Olympus"`)
	})
}
