package engine

import (
	"slices"

	"github.com/f3rmion/snack/internal/snack"
)

// Compare produces feedback for every schema attribute of guess against
// secret. It is pure and idempotent.
func Compare(secret, guess snack.Item, schema snack.Schema) snack.Comparison {
	results := make([]snack.Result, 0, len(schema.Attributes))
	for _, attr := range schema.Attributes {
		results = append(results, compareAttribute(secret, guess, attr))
	}
	return snack.Comparison{Results: results}
}

func compareAttribute(secret, guess snack.Item, attr snack.Attribute) snack.Result {
	r := snack.Result{Attribute: attr.Name, Kind: attr.Kind}
	switch attr.Kind {
	case snack.OrderedNumeric:
		r.Verdict = compareNumber(secret.Number(attr.Name), guess.Number(attr.Name))
	case snack.OrderedNumericInverted:
		// Smaller raw value ranks better, so flip the raw comparison.
		r.Verdict = compareNumber(guess.Number(attr.Name), secret.Number(attr.Name))
	case snack.SetValued:
		set := compareSets(secret.Set(attr.Name), guess.Set(attr.Name))
		r.Set = &set
		switch {
		case set.AllMatch:
			r.Verdict = snack.Match
		case set.HasMatch:
			r.Verdict = snack.Partial
		default:
			r.Verdict = snack.Different
		}
	default:
		if secret.Label(attr.Name) == guess.Label(attr.Name) {
			r.Verdict = snack.Match
		} else {
			r.Verdict = snack.Different
		}
	}
	return r
}

// compareNumber tells the player which way to go from guess to reach secret.
func compareNumber(secret, guess float64) snack.Verdict {
	switch {
	case guess == secret:
		return snack.Match
	case guess > secret:
		return snack.Lower
	default:
		return snack.Higher
	}
}

func compareSets(secret, guess []string) snack.SetResult {
	guess = dedupe(guess)
	secret = dedupe(secret)

	res := snack.SetResult{Matches: []string{}, NonMatches: []string{}}
	for _, g := range guess {
		if slices.Contains(secret, g) {
			res.Matches = append(res.Matches, g)
		} else {
			res.NonMatches = append(res.NonMatches, g)
		}
	}
	res.HasMatch = len(res.Matches) > 0
	res.AllMatch = len(res.Matches) == len(guess) && len(guess) == len(secret)
	return res
}

// dedupe keeps the first occurrence of each label.
func dedupe(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !slices.Contains(out, l) {
			out = append(out, l)
		}
	}
	return out
}
