package tarot

import (
	"fmt"
	"math/rand"
)

// Card is a fully rendered card reference: where it comes from and how it
// should be presented.
type Card struct {
	DeckID   string
	ID       int
	Name     string
	DeckName string
	Meaning  string
}

// Draw selects a uniformly random card from a uniformly random deck.
func (d *Data) Draw(r *rand.Rand) Card {
	deckID := d.deckIDs[r.Intn(len(d.deckIDs))]
	cardID := r.Intn(DeckSize)

	card, err := d.Card(deckID, cardID)
	if err != nil {
		// Both draws are within the validated ranges.
		panic(err)
	}
	return card
}

// Card renders the card with the given id from the given deck. It is a pure
// function of the static deck data.
func (d *Data) Card(deckID string, cardID int) (Card, error) {
	deckName, ok := d.Decks[deckID]
	if !ok {
		return Card{}, fmt.Errorf("unknown deck %q", deckID)
	}
	if cardID < 0 || cardID >= DeckSize {
		return Card{}, fmt.Errorf("card id %d out of range [0, %d)", cardID, DeckSize)
	}

	return Card{
		DeckID:   deckID,
		ID:       cardID,
		Name:     d.cardName(deckID, cardID),
		DeckName: deckName,
		Meaning:  d.meaning(deckID, cardID),
	}, nil
}

func (d *Data) cardName(deckID string, cardID int) string {
	if cardID < majorCount {
		return d.Roman[cardID] + " " + d.Major[cardID]
	}

	rank := (cardID - majorCount) % ranksPerSuit
	suit := (cardID - majorCount) / ranksPerSuit

	rankName := d.Ranks[rank]
	// Per-deck overrides replace face cards only, numerals keep base names.
	if alt, ok := d.AltRanks[deckID]; ok && rank >= faceRankIndex {
		rankName = alt[rank-faceRankIndex]
	}

	suitNames := d.Suits
	if alt, ok := d.AltSuits[deckID]; ok {
		suitNames = alt
	}

	return rankName + " " + suitNames[suit]
}

func (d *Data) meaning(deckID string, cardID int) string {
	meanings, ok := d.Meanings[deckID]
	if !ok || len(meanings) != DeckSize {
		meanings = d.Meanings[FallbackDeckID]
	}
	return meanings[cardID]
}
