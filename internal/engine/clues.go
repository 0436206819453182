package engine

import (
	"slices"

	"github.com/f3rmion/snack/internal/snack"
)

// NumericClue bounds an ordered attribute in raw value space. Bounds are
// exclusive: the secret lies strictly between Min and Max.
type NumericClue struct {
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Confirmed *float64 `json:"confirmed,omitempty"`
}

// CategoricalClue tracks a single-label attribute.
type CategoricalClue struct {
	Confirmed *string  `json:"confirmed,omitempty"`
	Excluded  []string `json:"excluded"`
}

// SetClue tracks confirmed members of a set-valued attribute. A guessed
// member that did not match is not excluded: only the overlap is observed.
type SetClue struct {
	Matched []string `json:"matched"`
}

// ClueState is everything known about the secret after some guesses.
type ClueState struct {
	Numeric     map[string]NumericClue     `json:"numeric"`
	Categorical map[string]CategoricalClue `json:"categorical"`
	Set         map[string]SetClue         `json:"set"`
}

// NewClueState returns the empty state for a schema.
func NewClueState(schema snack.Schema) ClueState {
	cs := ClueState{
		Numeric:     make(map[string]NumericClue),
		Categorical: make(map[string]CategoricalClue),
		Set:         make(map[string]SetClue),
	}
	for _, a := range schema.Attributes {
		switch {
		case a.Kind.IsNumeric():
			cs.Numeric[a.Name] = NumericClue{}
		case a.Kind == snack.SetValued:
			cs.Set[a.Name] = SetClue{Matched: []string{}}
		default:
			cs.Categorical[a.Name] = CategoricalClue{Excluded: []string{}}
		}
	}
	return cs
}

// Clone returns a deep copy sharing nothing with cs.
func (cs ClueState) Clone() ClueState {
	out := ClueState{
		Numeric:     make(map[string]NumericClue, len(cs.Numeric)),
		Categorical: make(map[string]CategoricalClue, len(cs.Categorical)),
		Set:         make(map[string]SetClue, len(cs.Set)),
	}
	for k, v := range cs.Numeric {
		out.Numeric[k] = NumericClue{Min: copyPtr(v.Min), Max: copyPtr(v.Max), Confirmed: copyPtr(v.Confirmed)}
	}
	for k, v := range cs.Categorical {
		out.Categorical[k] = CategoricalClue{Confirmed: copyPtr(v.Confirmed), Excluded: slices.Clone(v.Excluded)}
	}
	for k, v := range cs.Set {
		out.Set[k] = SetClue{Matched: slices.Clone(v.Matched)}
	}
	return out
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Fold applies one guess's comparison to state and returns the new state.
// The input state is never modified.
func Fold(state ClueState, cmp snack.Comparison, guess snack.Item) ClueState {
	next := state.Clone()
	for _, r := range cmp.Results {
		switch {
		case r.Kind.IsNumeric():
			next.Numeric[r.Attribute] = foldNumeric(next.Numeric[r.Attribute], r, guess.Number(r.Attribute))
		case r.Kind == snack.SetValued:
			next.Set[r.Attribute] = foldSet(next.Set[r.Attribute], r)
		default:
			next.Categorical[r.Attribute] = foldLabel(next.Categorical[r.Attribute], r, guess.Label(r.Attribute))
		}
	}
	return next
}

func foldNumeric(c NumericClue, r snack.Result, v float64) NumericClue {
	if c.Confirmed != nil {
		return c
	}
	if r.Verdict == snack.Match {
		c.Confirmed = &v
		return c
	}

	// Translate the player-facing verdict into raw value space.
	secretAbove := r.Verdict == snack.Higher
	if r.Kind == snack.OrderedNumericInverted {
		secretAbove = !secretAbove
	}
	if secretAbove {
		if c.Min == nil || v > *c.Min {
			c.Min = &v
		}
	} else {
		if c.Max == nil || v < *c.Max {
			c.Max = &v
		}
	}
	return c
}

func foldLabel(c CategoricalClue, r snack.Result, v string) CategoricalClue {
	if c.Confirmed != nil {
		return c
	}
	if r.Verdict == snack.Match {
		c.Confirmed = &v
		return c
	}
	if !slices.Contains(c.Excluded, v) {
		c.Excluded = append(c.Excluded, v)
	}
	return c
}

func foldSet(c SetClue, r snack.Result) SetClue {
	if r.Set == nil {
		return c
	}
	for _, m := range r.Set.Matches {
		if !slices.Contains(c.Matched, m) {
			c.Matched = append(c.Matched, m)
		}
	}
	return c
}

// Replay folds a whole guess sequence against secret.
func Replay(schema snack.Schema, secret snack.Item, guesses []snack.Item) ClueState {
	state := NewClueState(schema)
	for _, g := range guesses {
		state = Fold(state, Compare(secret, g, schema), g)
	}
	return state
}
