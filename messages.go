package main

import (
	"fmt"
)

// Messages coming from clients
type ClientMessage struct {
	Type          string   `json:"type"`                     // "join", "request_roster", "move", "riddle_solved", "clue_collected", "final_answer", "start_game", "restart"
	ID            string   `json:"id,omitempty"`             // join / move; informational, the connection id wins
	Name          string   `json:"name,omitempty"`           // join / move
	X             *float64 `json:"x,omitempty"`              // move
	Y             *float64 `json:"y,omitempty"`              // move
	Level         *int     `json:"level,omitempty"`          // riddle_solved
	ParticipantID string   `json:"participant_id,omitempty"` // riddle_solved / clue_collected / final_answer; informational
	Clue          string   `json:"clue,omitempty"`           // riddle_solved / clue_collected
	AllClues      []string `json:"all_clues,omitempty"`      // clue_collected
	Answer        string   `json:"answer,omitempty"`         // final_answer
}

// validate checks the fields required by the message's type. Unknown types
// pass through; the dispatcher drops them.
func (m *ClientMessage) validate() error {
	switch m.Type {
	case "join":
		if m.Name == "" {
			return fmt.Errorf("%s requires a name", m.Type)
		}
	case "move":
		if m.X == nil || m.Y == nil {
			return fmt.Errorf("%s requires x and y coordinates", m.Type)
		}
	case "riddle_solved":
		if m.Level == nil || *m.Level < 0 {
			return fmt.Errorf("%s requires a non-negative level", m.Type)
		}
		if m.Clue == "" {
			return fmt.Errorf("%s requires a clue", m.Type)
		}
	case "clue_collected":
		if m.Clue == "" {
			return fmt.Errorf("%s requires a clue", m.Type)
		}
	case "final_answer":
		if m.Answer == "" {
			return fmt.Errorf("%s requires an answer", m.Type)
		}
	}
	return nil
}

// ParticipantRecord is the wire form of one roster entry.
type ParticipantRecord struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color uint32  `json:"color"`
	Level int     `json:"level"`
}

// RosterMessage carries the full participant list; sent as
// "participant_joined" on connect and after joins, and as "roster" in
// response to an explicit request.
type RosterMessage struct {
	Type         string              `json:"type"`
	Participants []ParticipantRecord `json:"participants"`
}

// Sent only to the joining connection.
type ColorAssignedMessage struct {
	Type          string `json:"type"` // "color_assigned"
	ParticipantID string `json:"participant_id"`
	Color         uint32 `json:"color"`
}

// Broadcast to everyone else when a participant registers.
type NewParticipantMessage struct {
	Type  string  `json:"type"` // "new_participant"
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color uint32  `json:"color"`
}

// Broadcast to everyone but the mover.
type ParticipantMovedMessage struct {
	Type string  `json:"type"` // "participant_moved"
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Name string  `json:"name"`
}

// Broadcast to everyone but the solver.
type ParticipantProgressMessage struct {
	Type          string `json:"type"` // "participant_progress"
	ParticipantID string `json:"participant_id"`
	Level         int    `json:"level"`
}

// ClueUpdateMessage carries the authoritative collected-clue list so every
// client renders an identical panel; broadcast to all connections.
type ClueUpdateMessage struct {
	Type          string   `json:"type"` // "clue_update"
	ParticipantID string   `json:"participant_id"`
	CluesCount    int      `json:"clues_count"`
	AllClues      []string `json:"all_clues"`
}

// Broadcast exactly once per round.
type GameCompleteMessage struct {
	Type   string `json:"type"` // "game_complete"
	Winner string `json:"winner"`
}

// Broadcast when a round begins.
type GameStartedMessage struct {
	Type     string `json:"type"` // "game_started"
	Question string `json:"question"`
}

// Sent privately to each participant with their dealt opening hint.
type ClueReceivedMessage struct {
	Type string `json:"type"` // "clue_received"
	Clue string `json:"clue"`
}

// Broadcast when a participant disconnects.
type ParticipantLeftMessage struct {
	Type string `json:"type"` // "participant_left"
	ID   string `json:"id"`
}

// SimpleMessage is for generic notifications ("room_full", "all_ready",
// "game_restarted", "bad_request").
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}
