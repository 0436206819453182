package engine

import (
	"slices"

	"github.com/f3rmion/snack/internal/snack"
)

// Status is the lifecycle state of a Session.
type Status int

const (
	InProgress Status = iota
	Solved
	GivenUp
)

func (s Status) String() string {
	switch s {
	case Solved:
		return "solved"
	case GivenUp:
		return "given_up"
	default:
		return "in_progress"
	}
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) Status {
	switch s {
	case "solved":
		return Solved
	case "given_up":
		return GivenUp
	default:
		return InProgress
	}
}

// Resolver turns free text into a guessable item.
type Resolver interface {
	Resolve(name string) (snack.Item, error)
}

// Guess is one submitted item with its feedback.
type Guess struct {
	Item       snack.Item       `json:"-"`
	Name       string           `json:"name"`
	Comparison snack.Comparison `json:"comparison"`
}

// Turn is the outcome of a Submit call.
type Turn struct {
	Accepted bool      // False when the session was already over
	Guess    Guess     // Zero unless Accepted
	Clues    ClueState // Snapshot after the guess
	Status   Status
}

// Session is one player's game against a fixed secret. It is not safe for
// concurrent use; callers process one action at a time. There is no cap on
// the number of guesses.
type Session struct {
	schema  snack.Schema
	secret  snack.Item
	guesses []Guess
	guessed map[string]bool
	clues   ClueState
	status  Status
}

// NewSession starts a session against secret.
func NewSession(schema snack.Schema, secret snack.Item) *Session {
	return &Session{
		schema:  schema,
		secret:  secret,
		guessed: make(map[string]bool),
		clues:   NewClueState(schema),
	}
}

// Submit compares item against the secret and records it. Submitting after
// the session ended is ignored. A repeated item is rejected without any
// state change.
func (s *Session) Submit(item snack.Item) (Turn, error) {
	if s.IsGameOver() {
		return Turn{Clues: s.Clues(), Status: s.status}, nil
	}
	if s.guessed[item.Name] {
		return Turn{}, &snack.DuplicateGuessError{Name: item.Name}
	}

	cmp := Compare(s.secret, item, s.schema)
	g := Guess{Item: item, Name: item.Name, Comparison: cmp}
	s.guesses = append(s.guesses, g)
	s.guessed[item.Name] = true
	s.clues = Fold(s.clues, cmp, item)

	if item.Name == s.secret.Name {
		s.status = Solved
	}

	return Turn{Accepted: true, Guess: g, Clues: s.Clues(), Status: s.status}, nil
}

// SubmitName resolves name and submits it. Unknown names are rejected
// without any state change.
func (s *Session) SubmitName(r Resolver, name string) (Turn, error) {
	if s.IsGameOver() {
		return Turn{Clues: s.Clues(), Status: s.status}, nil
	}
	item, err := r.Resolve(name)
	if err != nil {
		return Turn{}, err
	}
	return s.Submit(item)
}

// GiveUp ends the session and reveals the secret. Calling it again, or after
// solving, changes nothing.
func (s *Session) GiveUp() snack.Item {
	if s.status == InProgress {
		s.status = GivenUp
	}
	return s.secret
}

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// IsGameOver reports whether the session reached a terminal state.
func (s *Session) IsGameOver() bool { return s.status != InProgress }

// IsSolved reports whether the secret was guessed.
func (s *Session) IsSolved() bool { return s.status == Solved }

// GaveUp reports whether the player abandoned the session.
func (s *Session) GaveUp() bool { return s.status == GivenUp }

// Secret returns the secret item.
func (s *Session) Secret() snack.Item { return s.secret }

// Schema returns the schema the session compares with.
func (s *Session) Schema() snack.Schema { return s.schema }

// Guesses returns the guess history in submission order.
func (s *Session) Guesses() []Guess { return slices.Clone(s.guesses) }

// Attempts returns the number of accepted guesses.
func (s *Session) Attempts() int { return len(s.guesses) }

// HasGuessed reports whether name was already submitted.
func (s *Session) HasGuessed(name string) bool { return s.guessed[name] }

// Clues returns a snapshot of the clue state.
func (s *Session) Clues() ClueState { return s.clues.Clone() }
