package main

const (
	// Capacity matches the palette: four participants per session.
	maxParticipants = 4

	// Default spawn point handed to every joining participant.
	spawnX = 400
	spawnY = 500
)

// Participant is the server-side record for one connected player.
type Participant struct {
	ID    string
	Name  string
	X     float64
	Y     float64
	Color uint32
	Level int
	Clues []string
}

// Session is the single authoritative game state. It is owned by the hub
// goroutine and mutated only from there; handlers receive it explicitly
// rather than reaching for package globals.
type Session struct {
	participants map[string]*Participant
	order        []string
	colors       colorAllocator
	doors        []DoorRiddle
	opening      OpeningRiddle
	sharedClues  []string
	finalSolved  bool
	winner       string

	clueMode    string
	readyLevel  int
	finalAnswer string
}

func newSession(cfg *Config) *Session {
	s := &Session{
		participants: make(map[string]*Participant),
		doors:        newDoorDeck(),
		opening:      newOpeningRiddle(),
		clueMode:     cfg.clueMode,
		readyLevel:   cfg.readyLevel,
		finalAnswer:  normalizeAnswer(cfg.finalAnswer),
	}
	shuffleDeck(s.doors)
	return s
}

func (s *Session) count() int {
	return len(s.participants)
}

func (s *Session) get(id string) (*Participant, bool) {
	p, ok := s.participants[id]
	return p, ok
}

// join registers a participant, assigning a color and the default spawn
// position. A repeated join from the same connection updates the name and
// keeps the original color. Returns false when the session is full; a
// rejected join mutates nothing.
func (s *Session) join(id, name string) (*Participant, bool) {
	if p, ok := s.participants[id]; ok {
		p.Name = name
		return p, true
	}

	if len(s.participants) >= maxParticipants {
		return nil, false
	}

	color, ok := s.colors.acquire()
	if !ok {
		return nil, false
	}

	p := &Participant{
		ID:    id,
		Name:  name,
		X:     spawnX,
		Y:     spawnY,
		Color: color,
	}
	s.participants[id] = p
	s.order = append(s.order, id)

	return p, true
}

// remove is unconditional and idempotent: removing an unknown id is a no-op.
func (s *Session) remove(id string) (*Participant, bool) {
	p, ok := s.participants[id]
	if !ok {
		return nil, false
	}

	delete(s.participants, id)
	s.colors.release(p.Color)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return p, true
}

// roster returns participants in join order, so every roster broadcast is
// deterministic.
func (s *Session) roster() []ParticipantRecord {
	records := make([]ParticipantRecord, 0, len(s.participants))
	for _, id := range s.order {
		p := s.participants[id]
		records = append(records, ParticipantRecord{
			ID:    p.ID,
			Name:  p.Name,
			X:     p.X,
			Y:     p.Y,
			Color: p.Color,
			Level: p.Level,
		})
	}
	return records
}

// updatePosition is last-write-wins; unknown participants are ignored.
func (s *Session) updatePosition(id string, x, y float64) (*Participant, bool) {
	p, ok := s.participants[id]
	if !ok {
		return nil, false
	}
	p.X = x
	p.Y = y
	return p, true
}

// recordRiddleSolved notes a solved door riddle for one participant. The
// clue joins their collected list only if not already present (exact string
// match against the accumulated list), and the reported level is capped by
// the number of real riddles in the deck.
func (s *Session) recordRiddleSolved(id string, level int, clue string) (p *Participant, newClue bool, ok bool) {
	p, ok = s.participants[id]
	if !ok {
		return nil, false, false
	}

	if max := realRiddleCount(s.doors); level > max {
		level = max
	}
	p.Level = level

	if !containsClue(p.Clues, clue) {
		p.Clues = append(p.Clues, clue)
		newClue = true
	}

	return p, newClue, true
}

// allReady reports whether every participant has reached the ready level.
// This is independent of the final riddle; the two completion signals never
// gate each other.
func (s *Session) allReady() bool {
	if len(s.participants) == 0 {
		return false
	}
	for _, p := range s.participants {
		if p.Level < s.readyLevel {
			return false
		}
	}
	return true
}

// recordClue folds a collected clue into the authoritative pool. In shared
// mode the pool belongs to the whole session; in individual mode it belongs
// to the reporting participant. Caller-reported lists are merged rather
// than trusted wholesale, so a stale or padded report can never drop or
// duplicate entries.
func (s *Session) recordClue(id, clue string, reported []string) ([]string, bool) {
	p, ok := s.participants[id]
	if !ok {
		return nil, false
	}

	merge := func(pool []string) []string {
		for _, c := range append(reported, clue) {
			if c != "" && !containsClue(pool, c) {
				pool = append(pool, c)
			}
		}
		return pool
	}

	if s.clueMode == ClueModeShared {
		s.sharedClues = merge(s.sharedClues)
		return s.sharedClues, true
	}

	p.Clues = merge(p.Clues)
	return p.Clues, true
}

// attemptFinal checks an answer against the final riddle. The first correct
// answer flips the once-only flag and records the winner; every later
// attempt, correct or not, is a no-op.
func (s *Session) attemptFinal(id, answer string) bool {
	if _, ok := s.participants[id]; !ok {
		return false
	}
	if s.finalSolved {
		return false
	}
	if normalizeAnswer(answer) != s.finalAnswer {
		return false
	}

	s.finalSolved = true
	s.winner = id
	return true
}

// openingHints deals one hint per participant, in join order, wrapping when
// there are fewer hints than participants.
func (s *Session) openingHints() map[string]string {
	hints := make(map[string]string, len(s.order))
	for i, id := range s.order {
		hints[id] = s.opening.Hints[i%len(s.opening.Hints)]
	}
	return hints
}

// restart zeroes the session in place: participants and their colors are
// dropped, the win flag and clue pool reset, and the door deck reshuffles.
// Connected clients must join again to reappear.
func (s *Session) restart() {
	s.participants = make(map[string]*Participant)
	s.order = nil
	s.colors.reset()
	s.sharedClues = nil
	s.finalSolved = false
	s.winner = ""
	shuffleDeck(s.doors)
}

func containsClue(clues []string, clue string) bool {
	for _, c := range clues {
		if c == clue {
			return true
		}
	}
	return false
}
