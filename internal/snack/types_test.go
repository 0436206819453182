package snack

import (
	"errors"
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"categorical", Categorical, false},
		{"Numeric", OrderedNumeric, false},
		{"numeric_inverted", OrderedNumericInverted, false},
		{"ranking", OrderedNumericInverted, false},
		{"set", SetValued, false},
		{"bool", Boolean, false},
		{"fuzzy", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := ParseDifficulty(" Medium "); err != nil || d != Medium {
		t.Fatalf("expected medium, got %q (%v)", d, err)
	}
	if _, err := ParseDifficulty("brutal"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name   string
		schema Schema
		errSub string
	}{
		{"ok", Schema{Attributes: []Attribute{{Name: "a", Kind: Categorical}}}, ""},
		{"empty", Schema{}, "no attributes"},
		{"duplicate", Schema{Attributes: []Attribute{{Name: "a", Kind: Categorical}, {Name: "a", Kind: SetValued}}}, "duplicate"},
		{"unnamed", Schema{Attributes: []Attribute{{Kind: Categorical}}}, "without a name"},
		{"bad kind", Schema{Attributes: []Attribute{{Name: "a", Kind: "weird"}}}, "unknown attribute kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.errSub == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Fatalf("expected error containing %q, got %v", tt.errSub, err)
			}
		})
	}
}

func TestAttributeKey(t *testing.T) {
	if k := (Attribute{Name: "rank"}).Key(); k != "rank" {
		t.Errorf("expected rank, got %s", k)
	}
	if k := (Attribute{Name: "rank", Field: "currentRanking"}).Key(); k != "currentRanking" {
		t.Errorf("expected currentRanking, got %s", k)
	}
	if k := (Schema{}).IdentityKey(); k != "name" {
		t.Errorf("expected default identity name, got %s", k)
	}
}

func TestErrorsUnwrap(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{&EmptyPoolError{}, ErrEmptyPool},
		{&MalformedItemError{Index: 3, Attribute: "weight", Reason: "missing"}, ErrMalformedItem},
		{&DuplicateGuessError{Name: "Cow"}, ErrDuplicateGuess},
		{&UnknownItemError{Query: "Unicorn"}, ErrUnknownItem},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, tt.want) {
			t.Errorf("%T does not unwrap to %v", tt.err, tt.want)
		}
	}

	msg := (&MalformedItemError{Index: 3, Item: "Cow", Attribute: "weight", Reason: "missing"}).Error()
	if !strings.Contains(msg, `"Cow"`) || !strings.Contains(msg, "weight") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestComparisonSolved(t *testing.T) {
	c := Comparison{Results: []Result{{Attribute: "a", Verdict: Match}, {Attribute: "b", Verdict: Partial}}}
	if c.Solved() {
		t.Fatal("partial comparison should not be solved")
	}
	if (Comparison{}).Solved() {
		t.Fatal("empty comparison should not be solved")
	}
	if c.Verdict("missing") != "" {
		t.Fatal("expected empty verdict for a missing attribute")
	}
}
