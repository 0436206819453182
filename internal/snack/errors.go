package snack

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The typed errors below unwrap to them.
var (
	ErrEmptyPool      = errors.New("empty secret pool")
	ErrMalformedItem  = errors.New("malformed item")
	ErrDuplicateGuess = errors.New("duplicate guess")
	ErrUnknownItem    = errors.New("unknown item")
)

// EmptyPoolError means no item qualifies as a secret. Fatal at load time.
type EmptyPoolError struct {
	Eligible []Difficulty
	Total    int
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("no item out of %d qualifies for the secret pool %v", e.Total, e.Eligible)
}

func (e *EmptyPoolError) Unwrap() error { return ErrEmptyPool }

// MalformedItemError means a dataset record does not satisfy the schema.
// Fatal at load time.
type MalformedItemError struct {
	Index     int    // Record position in the dataset, 0-based
	Item      string // Identity if known
	Attribute string
	Reason    string
}

func (e *MalformedItemError) Error() string {
	who := fmt.Sprintf("record %d", e.Index)
	if e.Item != "" {
		who = fmt.Sprintf("%s (%q)", who, e.Item)
	}
	if e.Attribute != "" {
		return fmt.Sprintf("%s: attribute %q: %s", who, e.Attribute, e.Reason)
	}
	return fmt.Sprintf("%s: %s", who, e.Reason)
}

func (e *MalformedItemError) Unwrap() error { return ErrMalformedItem }

// DuplicateGuessError means the item was already guessed this session.
type DuplicateGuessError struct {
	Name string
}

func (e *DuplicateGuessError) Error() string {
	return fmt.Sprintf("%q was already guessed", e.Name)
}

func (e *DuplicateGuessError) Unwrap() error { return ErrDuplicateGuess }

// UnknownItemError means a guess does not resolve to any item.
type UnknownItemError struct {
	Query string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("no item named %q", e.Query)
}

func (e *UnknownItemError) Unwrap() error { return ErrUnknownItem }
