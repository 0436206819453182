package store

import (
	"fmt"

	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/snack"
)

// Restore rebuilds a live session from a record by resolving its secret
// and replaying every stored guess. A given-up record ends given up.
func Restore(rec *Record, schema snack.Schema, r engine.Resolver) (*engine.Session, error) {
	secret, err := r.Resolve(rec.Secret)
	if err != nil {
		return nil, fmt.Errorf("session %s: secret: %w", rec.ID, err)
	}

	sess := engine.NewSession(schema, secret)
	for _, name := range rec.Guesses {
		if _, err := sess.SubmitName(r, name); err != nil {
			return nil, fmt.Errorf("session %s: replaying %q: %w", rec.ID, name, err)
		}
	}
	if rec.Status == engine.GivenUp {
		sess.GiveUp()
	}
	return sess, nil
}

// SaveTurn persists the outcome of a turn: the guess if accepted, and the
// status once the session is over. A give-up is saved as a turn that was not
// accepted with status GivenUp.
func (s *Store) SaveTurn(id string, turn engine.Turn) error {
	if turn.Accepted {
		if err := s.AppendGuess(id, turn.Guess.Name); err != nil {
			return err
		}
	}
	if turn.Status != engine.InProgress {
		return s.SetStatus(id, turn.Status)
	}
	return nil
}
