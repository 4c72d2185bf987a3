package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoorDeckComposition(t *testing.T) {
	deck := newDoorDeck()

	assert.Len(t, deck, 8)
	assert.Equal(t, 5, realRiddleCount(deck))

	for _, door := range deck {
		require.NotEmpty(t, door.Question)
		if door.HasRiddle {
			assert.NotEmpty(t, door.Answer)
			assert.NotEmpty(t, door.Clue)
		} else {
			assert.Empty(t, door.Answer)
			assert.Empty(t, door.Clue)
		}
	}
}

func TestShuffleDeckKeepsComposition(t *testing.T) {
	deck := newDoorDeck()
	questions := make(map[string]int, len(deck))
	for _, door := range deck {
		questions[door.Question]++
	}

	shuffleDeck(deck)

	assert.Len(t, deck, 8)
	assert.Equal(t, 5, realRiddleCount(deck))

	after := make(map[string]int, len(deck))
	for _, door := range deck {
		after[door.Question]++
	}
	assert.Equal(t, questions, after, "shuffling must not add or drop doors")
}

func TestOpeningRiddleHints(t *testing.T) {
	opening := newOpeningRiddle()

	assert.NotEmpty(t, opening.Question)
	require.Len(t, opening.Hints, 4)
	for _, hint := range opening.Hints {
		assert.NotEmpty(t, hint)
	}
}
