// Package snack provides the core types shared by every daily guessing game.
package snack

import (
	"fmt"
	"strings"
)

// Difficulty controls whether an item may become the daily secret.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty converts a dataset label into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
}

// Kind is how an attribute is compared.
type Kind string

const (
	Categorical            Kind = "categorical"      // Single label, match or different
	Boolean                Kind = "boolean"          // Categorical with the labels yes/no
	OrderedNumeric         Kind = "numeric"          // Larger value is "higher"
	OrderedNumericInverted Kind = "numeric_inverted" // Smaller value is better, e.g. rankings
	SetValued              Kind = "set"              // Unordered labels, partial overlap counts
)

// Boolean labels.
const (
	Yes = "yes"
	No  = "no"
)

// ParseKind converts a config label into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Categorical, Boolean, OrderedNumeric, OrderedNumericInverted, SetValued:
		return k, nil
	case "inverted", "ranking":
		return OrderedNumericInverted, nil
	case "bool":
		return Boolean, nil
	case "ordered":
		return OrderedNumeric, nil
	default:
		return "", fmt.Errorf("unknown attribute kind %q", s)
	}
}

// IsNumeric reports whether the kind carries an ordered number.
func (k Kind) IsNumeric() bool {
	return k == OrderedNumeric || k == OrderedNumericInverted
}

// Attribute describes one comparable field of an item.
type Attribute struct {
	Name  string // Key used in comparisons and clue state
	Label string // Display name
	Kind  Kind
	Field string // Dataset key, defaults to Name
	Unit  string // Optional display unit (kg, min, ...)
}

// Key returns the dataset key holding the attribute value.
func (a Attribute) Key() string {
	if a.Field != "" {
		return a.Field
	}
	return a.Name
}

// Schema is the complete comparable surface of a game.
type Schema struct {
	Identity   string // Dataset key of the unique item name, e.g. "name" or "title"
	Attributes []Attribute
}

// Validate checks the schema once, before any item is loaded.
func (s Schema) Validate() error {
	if len(s.Attributes) == 0 {
		return fmt.Errorf("schema has no attributes")
	}
	seen := make(map[string]bool, len(s.Attributes))
	for _, a := range s.Attributes {
		if a.Name == "" {
			return fmt.Errorf("schema attribute without a name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate schema attribute %q", a.Name)
		}
		seen[a.Name] = true
		if _, err := ParseKind(string(a.Kind)); err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
	}
	return nil
}

// IdentityKey returns the dataset key of the item name.
func (s Schema) IdentityKey() string {
	if s.Identity == "" {
		return "name"
	}
	return s.Identity
}

// Attribute returns the named attribute.
func (s Schema) Attribute(name string) (Attribute, bool) {
	for _, a := range s.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Item is a dataset record with its values resolved per schema kind.
type Item struct {
	Name       string
	Difficulty Difficulty
	Labels     map[string]string   // Categorical and boolean attributes
	Numbers    map[string]float64  // Ordered attributes
	Sets       map[string][]string // Set-valued attributes, deduplicated
}

// Label returns a categorical value.
func (it Item) Label(attr string) string { return it.Labels[attr] }

// Number returns an ordered value.
func (it Item) Number(attr string) float64 { return it.Numbers[attr] }

// Set returns a set-valued attribute.
func (it Item) Set(attr string) []string { return it.Sets[attr] }

// Verdict is the per-attribute feedback for one guess. For ordered
// attributes it tells the player where to go next, not what the guess was.
type Verdict string

const (
	Match     Verdict = "match"
	Different Verdict = "different"
	Higher    Verdict = "higher"  // The secret is higher (or better ranked) than the guess
	Lower     Verdict = "lower"   // The secret is lower (or worse ranked) than the guess
	Partial   Verdict = "partial" // Set-valued overlap without equality
)

// SetResult details a set-valued comparison.
type SetResult struct {
	Matches    []string `json:"matches"`
	NonMatches []string `json:"nonMatches"`
	HasMatch   bool     `json:"hasMatch"`
	AllMatch   bool     `json:"allMatch"`
}

// Result is the comparison outcome for one attribute.
type Result struct {
	Attribute string     `json:"attribute"`
	Kind      Kind       `json:"kind"`
	Verdict   Verdict    `json:"verdict"`
	Set       *SetResult `json:"set,omitempty"`
}

// Comparison holds one Result per schema attribute, in schema order.
type Comparison struct {
	Results []Result `json:"results"`
}

// Get returns the result for an attribute.
func (c Comparison) Get(attr string) (Result, bool) {
	for _, r := range c.Results {
		if r.Attribute == attr {
			return r, true
		}
	}
	return Result{}, false
}

// Verdict returns the verdict for an attribute, or "" when absent.
func (c Comparison) Verdict(attr string) Verdict {
	r, _ := c.Get(attr)
	return r.Verdict
}

// Solved reports whether every attribute matched.
func (c Comparison) Solved() bool {
	for _, r := range c.Results {
		if r.Verdict != Match {
			return false
		}
	}
	return len(c.Results) > 0
}
