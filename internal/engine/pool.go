// Package engine implements the daily secret selection, attribute
// comparison, clue aggregation and guess session shared by every game.
package engine

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/f3rmion/snack/internal/snack"
)

// DefaultEligible is the difficulty set of the secret pool.
var DefaultEligible = []snack.Difficulty{snack.Easy, snack.Medium}

// DayBoundary selects which calendar decides when "today" rolls over.
type DayBoundary string

const (
	BoundaryLocal DayBoundary = "local" // Player's local midnight
	BoundaryUTC   DayBoundary = "utc"   // Same puzzle everywhere at the same instant
)

// SecretPool filters items down to those eligible to be a secret.
// Dataset order is preserved; selection depends on it.
func SecretPool(items []snack.Item, eligible ...snack.Difficulty) ([]snack.Item, error) {
	if len(eligible) == 0 {
		eligible = DefaultEligible
	}
	pool := make([]snack.Item, 0, len(items))
	for _, it := range items {
		if slices.Contains(eligible, it.Difficulty) {
			pool = append(pool, it)
		}
	}
	if len(pool) == 0 {
		return nil, &snack.EmptyPoolError{Eligible: eligible, Total: len(items)}
	}
	return pool, nil
}

// Today returns the calendar date of now for the given boundary, as
// midnight in the boundary's location.
func Today(now time.Time, boundary DayBoundary) time.Time {
	if boundary == BoundaryUTC {
		now = now.UTC()
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// DayOfYear counts days since January 1 of the date's year; January 1 is 0.
// It uses the calendar fields of date, so DST shifts never move it.
func DayOfYear(date time.Time) int {
	return date.YearDay() - 1
}

// SelectSecret returns the secret for the given calendar date.
func SelectSecret(pool []snack.Item, date time.Time) (snack.Item, error) {
	if len(pool) == 0 {
		return snack.Item{}, &snack.EmptyPoolError{Eligible: DefaultEligible}
	}
	return pool[DayOfYear(date)%len(pool)], nil
}

// dateSeed packs the calendar date into a PRNG seed.
func dateSeed(date time.Time) uint64 {
	y, m, d := date.Date()
	return uint64(y)*10000 + uint64(m)*100 + uint64(d)
}

// DrawMatch picks n distinct items for a multi-round daily match. The draw
// is deterministic per date and its order is part of the puzzle.
func DrawMatch(pool []snack.Item, date time.Time, n int) ([]snack.Item, error) {
	if len(pool) == 0 {
		return nil, &snack.EmptyPoolError{Eligible: DefaultEligible}
	}
	if n <= 0 {
		return nil, fmt.Errorf("match size must be positive, got %d", n)
	}
	if n > len(pool) {
		return nil, fmt.Errorf("match size %d exceeds pool of %d", n, len(pool))
	}

	seed := dateSeed(date)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	// Partial Fisher-Yates: the first n slots are the draw.
	out := make([]snack.Item, n)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = pool[idx[i]]
	}
	return out, nil
}

// PracticeSecret picks a secret outside the daily rotation.
func PracticeSecret(pool []snack.Item, rng *rand.Rand) (snack.Item, error) {
	if len(pool) == 0 {
		return snack.Item{}, &snack.EmptyPoolError{Eligible: DefaultEligible}
	}
	return pool[rng.IntN(len(pool))], nil
}
