package tarot_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlamas/vestnik-telegram-bot/internal/tarot"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("ok", func(t *testing.T) {
		path := filepath.Join(dir, "cards.json")
		raw, err := json.Marshal(testDefinition())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		data, err := tarot.Load(path)
		require.NoError(t, err)

		card, err := data.Card("normal", 25)
		require.NoError(t, err)
		assert.Equal(t, "Четвёрка Жезлов", card.Name)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := tarot.Load(filepath.Join(dir, "nope.json"))
		require.ErrorContains(t, err, "read deck data")
	})

	t.Run("corrupt_file", func(t *testing.T) {
		path := filepath.Join(dir, "corrupt.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := tarot.Load(path)
		require.ErrorContains(t, err, "parse deck data")
	})

	t.Run("invalid_definition", func(t *testing.T) {
		def := testDefinition()
		def.Suits = def.Suits[:2]
		raw, err := json.Marshal(def)
		require.NoError(t, err)

		path := filepath.Join(dir, "invalid.json")
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		_, err = tarot.Load(path)
		require.ErrorContains(t, err, "validate deck data")
	})
}
