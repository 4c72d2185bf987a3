package main

import (
	"math/rand"
)

// DoorRiddle is one door slot in the shared space. Real riddles carry an
// answer and the clue unlocked by solving them; decoy doors only carry
// flavor text. Answers never leave the server.
type DoorRiddle struct {
	Question  string
	Answer    string
	Clue      string
	HasRiddle bool
}

// OpeningRiddle is the shared warm-up riddle announced at game start; its
// hints are dealt out one per participant.
type OpeningRiddle struct {
	Question string
	Hints    []string
}

func newDoorDeck() []DoorRiddle {
	return []DoorRiddle{
		{
			Question:  "10 + 5 x 3 = ?",
			Answer:    "25",
			Clue:      "I live in the light.",
			HasRiddle: true,
		},
		{
			Question:  "What is the second day of the week?",
			Answer:    "tuesday",
			Clue:      "I follow you everywhere without ever leaving you.",
			HasRiddle: true,
		},
		{
			Question:  "If I have 3 apples and I take away 2, how many do I have?",
			Answer:    "2",
			Clue:      "Lurking in every corner...",
			HasRiddle: true,
		},
		{
			Question:  "The more you take, the more you leave behind. What am I?",
			Answer:    "footsteps",
			Clue:      "Without me, the sun would prove nothing.",
			HasRiddle: true,
		},
		{
			Question:  "How many letters are in the alphabet?",
			Answer:    "26",
			Clue:      "I change shape but never nature.",
			HasRiddle: true,
		},
		{Question: "No riddle here, look elsewhere!"},
		{Question: "This door is empty, keep searching!"},
		{Question: "Nothing to see here, carry on with your quest!"},
	}
}

func newOpeningRiddle() OpeningRiddle {
	return OpeningRiddle{
		Question: "I am tall when I am young and short when I am old. What am I?",
		Hints: []string{
			"I am used to give light",
			"Heat makes me melt",
			"I can be scented",
			"You blow on me to put me out",
		},
	}
}

// Fisher-Yates, so each round scatters the riddles across different doors.
func shuffleDeck(deck []DoorRiddle) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

func realRiddleCount(deck []DoorRiddle) int {
	count := 0
	for _, door := range deck {
		if door.HasRiddle {
			count++
		}
	}
	return count
}
