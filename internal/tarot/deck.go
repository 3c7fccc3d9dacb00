// Package tarot holds the static deck definitions and the pure card
// selection and rendering logic shared by the daily broadcast and the
// test-card command.
package tarot

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

const (
	// DeckSize is the number of cards in every deck.
	DeckSize = 78
	// majorCount is the number of major arcana cards (ids 0..21).
	majorCount = 22
	// ranksPerSuit is the number of ranks within one suit.
	ranksPerSuit = 14
	// faceRankIndex is the first rank index the altRanks override applies to.
	faceRankIndex = 10
)

// FallbackDeckID names the meanings table used when a deck has no
// dedicated one.
const FallbackDeckID = "normal"

// Data is the immutable deck definition set loaded once at startup.
type Data struct {
	Decks    map[string]string   `json:"decks"`
	Ranks    []string            `json:"ranks"`
	Suits    []string            `json:"suits"`
	AltRanks map[string][]string `json:"altRanks"`
	AltSuits map[string][]string `json:"altSuits"`
	Roman    []string            `json:"roman"`
	Major    []string            `json:"major"`
	Meanings map[string][]string `json:"meanings"`

	deckIDs []string
}

// Load reads and validates the deck definition file.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck data %q: %w", path, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse deck data %q: %w", path, err)
	}

	if err := data.validate(); err != nil {
		return nil, fmt.Errorf("validate deck data %q: %w", path, err)
	}

	data.deckIDs = make([]string, 0, len(data.Decks))
	for id := range data.Decks {
		data.deckIDs = append(data.deckIDs, id)
	}
	sort.Strings(data.deckIDs)

	return &data, nil
}

// New builds deck data from an in-memory definition. Intended for tests.
func New(data Data) (*Data, error) {
	if err := data.validate(); err != nil {
		return nil, fmt.Errorf("validate deck data: %w", err)
	}

	data.deckIDs = make([]string, 0, len(data.Decks))
	for id := range data.Decks {
		data.deckIDs = append(data.deckIDs, id)
	}
	sort.Strings(data.deckIDs)

	return &data, nil
}

func (d *Data) validate() error {
	if len(d.Decks) == 0 {
		return fmt.Errorf("no decks defined")
	}
	if len(d.Ranks) != ranksPerSuit {
		return fmt.Errorf("expected %d ranks, got %d", ranksPerSuit, len(d.Ranks))
	}
	if len(d.Suits) != (DeckSize-majorCount)/ranksPerSuit {
		return fmt.Errorf("expected %d suits, got %d", (DeckSize-majorCount)/ranksPerSuit, len(d.Suits))
	}
	if len(d.Roman) != majorCount {
		return fmt.Errorf("expected %d roman numerals, got %d", majorCount, len(d.Roman))
	}
	if len(d.Major) != majorCount {
		return fmt.Errorf("expected %d major arcana names, got %d", majorCount, len(d.Major))
	}
	if len(d.Meanings[FallbackDeckID]) != DeckSize {
		return fmt.Errorf("fallback meanings table must have %d entries, got %d", DeckSize, len(d.Meanings[FallbackDeckID]))
	}
	for deckID, alt := range d.AltRanks {
		if len(alt) != ranksPerSuit-faceRankIndex {
			return fmt.Errorf("altRanks for deck %q must have %d entries, got %d", deckID, ranksPerSuit-faceRankIndex, len(alt))
		}
	}
	for deckID, alt := range d.AltSuits {
		if len(alt) != len(d.Suits) {
			return fmt.Errorf("altSuits for deck %q must have %d entries, got %d", deckID, len(d.Suits), len(alt))
		}
	}
	return nil
}

// DeckIDs returns the deck identifiers in stable sorted order.
func (d *Data) DeckIDs() []string {
	ids := make([]string, len(d.deckIDs))
	copy(ids, d.deckIDs)
	return ids
}

// DeckName returns the human-readable name of a deck.
func (d *Data) DeckName(deckID string) (string, bool) {
	name, ok := d.Decks[deckID]
	return name, ok
}
