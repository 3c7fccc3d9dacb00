package tarot_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zlamas/vestnik-telegram-bot/internal/tarot"
)

func testDefinition() tarot.Data {
	meanings := make([]string, tarot.DeckSize)
	for i := range meanings {
		meanings[i] = fmt.Sprintf("значение %d", i)
	}
	catMeanings := make([]string, tarot.DeckSize)
	for i := range catMeanings {
		catMeanings[i] = fmt.Sprintf("кошачье значение %d", i)
	}

	return tarot.Data{
		Decks: map[string]string{
			"normal": "Классическая колода",
			"cats":   "Кошачья колода",
		},
		Ranks: []string{
			"Туз", "Двойка", "Тройка", "Четвёрка", "Пятёрка", "Шестёрка", "Семёрка",
			"Восьмёрка", "Девятка", "Десятка", "Паж", "Рыцарь", "Королева", "Король",
		},
		Suits: []string{"Жезлов", "Кубков", "Мечей", "Пентаклей"},
		AltRanks: map[string][]string{
			"cats": {"Котёнок", "Кот", "Кошка", "Котище"},
		},
		AltSuits: map[string][]string{
			"cats": {"Клубков", "Мисок", "Когтей", "Рыбок"},
		},
		Roman: []string{
			"0", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
			"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX", "XXI",
		},
		Major: []string{
			"Шут", "Маг", "Жрица", "Императрица", "Император", "Иерофант", "Влюблённые",
			"Колесница", "Сила", "Отшельник", "Колесо Фортуны", "Справедливость",
			"Повешенный", "Смерть", "Умеренность", "Дьявол", "Башня", "Звезда",
			"Луна", "Солнце", "Суд", "Мир",
		},
		Meanings: map[string][]string{
			"normal": meanings,
			"cats":   catMeanings,
		},
	}
}

func testData(t *testing.T) *tarot.Data {
	t.Helper()
	data, err := tarot.New(testDefinition())
	require.NoError(t, err)
	return data
}

func TestData_Card_SuitCard(t *testing.T) {
	data := testData(t)

	// id 25 is rank index 3, suit index 0.
	card, err := data.Card("normal", 25)
	require.NoError(t, err)

	assert.Equal(t, "Четвёрка Жезлов", card.Name)
	assert.Equal(t, "Классическая колода", card.DeckName)
	assert.Equal(t, "значение 25", card.Meaning)

	// Pure function: repeated calls yield identical results.
	again, err := data.Card("normal", 25)
	require.NoError(t, err)
	assert.Equal(t, card, again)
}

func TestData_Card_MajorCard(t *testing.T) {
	data := testData(t)

	card, err := data.Card("normal", 5)
	require.NoError(t, err)
	assert.Equal(t, "V Иерофант", card.Name)

	// Major names ignore per-deck overrides entirely.
	catCard, err := data.Card("cats", 5)
	require.NoError(t, err)
	assert.Equal(t, "V Иерофант", catCard.Name)
	assert.Equal(t, "Кошачья колода", catCard.DeckName)
}

func TestData_Card_AltRanksReplaceFaceCardsOnly(t *testing.T) {
	data := testData(t)

	// Rank index 9 (last numeral) keeps the base name.
	numeral, err := data.Card("cats", 31)
	require.NoError(t, err)
	assert.Equal(t, "Десятка Клубков", numeral.Name)

	// Rank index 10 (first face card) takes the override.
	face, err := data.Card("cats", 32)
	require.NoError(t, err)
	assert.Equal(t, "Котёнок Клубков", face.Name)

	// Rank index 13 (last face card) takes the last override entry.
	king, err := data.Card("cats", 35)
	require.NoError(t, err)
	assert.Equal(t, "Котище Клубков", king.Name)
}

func TestData_Card_AltSuits(t *testing.T) {
	data := testData(t)

	card, err := data.Card("cats", 77)
	require.NoError(t, err)
	assert.Equal(t, "Котище Рыбок", card.Name)
}

func TestData_Card_MeaningFallback(t *testing.T) {
	def := testDefinition()
	delete(def.Meanings, "cats")
	data, err := tarot.New(def)
	require.NoError(t, err)

	card, err := data.Card("cats", 40)
	require.NoError(t, err)
	assert.Equal(t, "значение 40", card.Meaning)
}

func TestData_Card_PerDeckMeaning(t *testing.T) {
	data := testData(t)

	card, err := data.Card("cats", 40)
	require.NoError(t, err)
	assert.Equal(t, "кошачье значение 40", card.Meaning)
}

func TestData_Card_Errors(t *testing.T) {
	data := testData(t)

	_, err := data.Card("missing", 0)
	require.ErrorContains(t, err, "unknown deck")

	_, err = data.Card("normal", -1)
	require.ErrorContains(t, err, "out of range")

	_, err = data.Card("normal", tarot.DeckSize)
	require.ErrorContains(t, err, "out of range")
}

func TestData_Draw(t *testing.T) {
	data := testData(t)
	r := rand.New(rand.NewSource(42))

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		card := data.Draw(r)
		assert.GreaterOrEqual(t, card.ID, 0)
		assert.Less(t, card.ID, tarot.DeckSize)
		assert.Contains(t, []string{"normal", "cats"}, card.DeckID)
		assert.NotEmpty(t, card.Name)
		assert.NotEmpty(t, card.Meaning)
		seen[card.DeckID] = true
	}

	// Both decks should show up over 200 draws.
	assert.Len(t, seen, 2)
}

func TestData_DeckIDs(t *testing.T) {
	data := testData(t)
	assert.Equal(t, []string{"cats", "normal"}, data.DeckIDs())

	// The returned slice is a copy.
	ids := data.DeckIDs()
	ids[0] = "mutated"
	assert.Equal(t, []string{"cats", "normal"}, data.DeckIDs())
}

func TestNew_Validation(t *testing.T) {
	t.Run("no_decks", func(t *testing.T) {
		def := testDefinition()
		def.Decks = nil
		_, err := tarot.New(def)
		require.ErrorContains(t, err, "no decks")
	})

	t.Run("wrong_rank_count", func(t *testing.T) {
		def := testDefinition()
		def.Ranks = def.Ranks[:13]
		_, err := tarot.New(def)
		require.ErrorContains(t, err, "ranks")
	})

	t.Run("missing_fallback_meanings", func(t *testing.T) {
		def := testDefinition()
		delete(def.Meanings, "normal")
		_, err := tarot.New(def)
		require.ErrorContains(t, err, "fallback meanings")
	})

	t.Run("wrong_alt_ranks_size", func(t *testing.T) {
		def := testDefinition()
		def.AltRanks["cats"] = []string{"Кот"}
		_, err := tarot.New(def)
		require.ErrorContains(t, err, "altRanks")
	})
}
