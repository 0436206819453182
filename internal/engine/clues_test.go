package engine

import (
	"reflect"
	"slices"
	"testing"

	"github.com/f3rmion/snack/internal/snack"
)

func TestFoldAnimalScenario(t *testing.T) {
	schema := snack.Schema{Attributes: animalSchema.Attributes[:3]}
	secret := snack.Item{
		Name:    "secret",
		Labels:  map[string]string{"class": "Mammal", "diet": "Herbivore"},
		Numbers: map[string]float64{"weight": 4000},
	}
	guess := snack.Item{
		Name:    "guess",
		Labels:  map[string]string{"class": "Mammal", "diet": "Carnivore"},
		Numbers: map[string]float64{"weight": 6000},
	}

	cs := Fold(NewClueState(schema), Compare(secret, guess, schema), guess)

	if c := cs.Categorical["class"].Confirmed; c == nil || *c != "Mammal" {
		t.Errorf("class: expected confirmed Mammal, got %v", c)
	}
	if m := cs.Numeric["weight"].Max; m == nil || *m != 6000 {
		t.Errorf("weight: expected max 6000, got %v", m)
	}
	if cs.Numeric["weight"].Min != nil {
		t.Errorf("weight: expected no min, got %v", *cs.Numeric["weight"].Min)
	}
	if got := cs.Categorical["diet"].Excluded; !reflect.DeepEqual(got, []string{"Carnivore"}) {
		t.Errorf("diet: expected excluded [Carnivore], got %v", got)
	}
}

func TestFoldDoesNotMutateInput(t *testing.T) {
	before := NewClueState(animalSchema)
	snapshot := before.Clone()

	_ = Fold(before, Compare(elephant, orca, animalSchema), orca)

	if !reflect.DeepEqual(before, snapshot) {
		t.Fatalf("input state changed:\n%+v\n%+v", before, snapshot)
	}
}

func TestBoundsAreMonotone(t *testing.T) {
	secret := animal("Secret", snack.Easy, "Mammal", 500, "Herbivore", nil, snack.No)
	weights := []float64{100, 900, 50, 1000, 400, 600, 450, 550, 500, 10, 2000}

	cs := NewClueState(animalSchema)
	var prev NumericClue
	for i, w := range weights {
		g := animal("g", snack.Easy, "Mammal", w, "Herbivore", nil, snack.No)
		cs = Fold(cs, Compare(secret, g, animalSchema), g)
		cur := cs.Numeric["weight"]

		if prev.Min != nil && (cur.Min == nil || *cur.Min < *prev.Min) {
			t.Fatalf("step %d: min decreased from %v to %v", i, *prev.Min, cur.Min)
		}
		if prev.Max != nil && (cur.Max == nil || *cur.Max > *prev.Max) {
			t.Fatalf("step %d: max increased from %v to %v", i, *prev.Max, cur.Max)
		}
		if prev.Confirmed != nil && (cur.Confirmed == nil || *cur.Confirmed != *prev.Confirmed) {
			t.Fatalf("step %d: confirmed changed", i)
		}
		prev = cur
	}

	got := cs.Numeric["weight"]
	if got.Confirmed == nil || *got.Confirmed != 500 {
		t.Fatalf("expected confirmed 500, got %v", got.Confirmed)
	}
	if *got.Min != 450 || *got.Max != 550 {
		t.Fatalf("expected bounds (450, 550), got (%v, %v)", *got.Min, *got.Max)
	}
}

func TestInvertedBoundsUseRawValues(t *testing.T) {
	secret := player("Secret", "Right", 10, 0)
	cs := NewClueState(tennisSchema)

	for _, rank := range []float64{50, 2, 30, 5} {
		g := player("g", "Right", rank, 0)
		cs = Fold(cs, Compare(secret, g, tennisSchema), g)
	}

	got := cs.Numeric["currentRanking"]
	if got.Min == nil || *got.Min != 5 {
		t.Errorf("expected raw min 5, got %v", got.Min)
	}
	if got.Max == nil || *got.Max != 30 {
		t.Errorf("expected raw max 30, got %v", got.Max)
	}
}

func TestConfirmationIsPermanent(t *testing.T) {
	cs := NewClueState(animalSchema)
	cs = Fold(cs, Compare(elephant, rhino, animalSchema), rhino)

	class := cs.Categorical["class"].Confirmed
	if class == nil || *class != "Mammal" {
		t.Fatalf("expected class confirmed Mammal, got %v", class)
	}

	// A bird guess cannot undo the confirmation.
	cs = Fold(cs, Compare(elephant, ostrich, animalSchema), ostrich)
	if c := cs.Categorical["class"].Confirmed; c == nil || *c != "Mammal" {
		t.Fatalf("confirmation changed to %v", c)
	}

	// Fake a contradicting comparison to check the fold itself refuses it.
	bad := snack.Comparison{Results: []snack.Result{{Attribute: "class", Kind: snack.Categorical, Verdict: snack.Match}}}
	cs = Fold(cs, bad, ostrich)
	if c := cs.Categorical["class"].Confirmed; *c != "Mammal" {
		t.Fatalf("confirmation overwritten with %s", *c)
	}
}

func TestSetMatchesOnlyGrow(t *testing.T) {
	cs := NewClueState(animalSchema)
	guesses := []snack.Item{orca, rhino, ostrich, cow}

	var prev []string
	for i, g := range guesses {
		cs = Fold(cs, Compare(elephant, g, animalSchema), g)
		cur := cs.Set["continents"].Matched
		for _, m := range prev {
			if !slices.Contains(cur, m) {
				t.Fatalf("step %d: lost member %s", i, m)
			}
		}
		prev = cur
	}

	if !reflect.DeepEqual(prev, []string{"Asia", "Africa"}) {
		t.Fatalf("expected [Asia Africa], got %v", prev)
	}
	if _, ok := cs.Categorical["continents"]; ok {
		t.Fatal("set-valued attribute must not carry an excluded set")
	}
}

func TestExcludedGrowsWithoutDuplicates(t *testing.T) {
	secret := animal("Secret", snack.Easy, "Mammal", 1, "Herbivore", nil, snack.No)
	cs := NewClueState(animalSchema)
	for _, g := range []snack.Item{python, orca, ostrich} {
		cs = Fold(cs, Compare(secret, g, animalSchema), g)
	}
	want := []string{"Carnivore", "Omnivore"}
	if got := cs.Categorical["diet"].Excluded; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReplayDeterministic(t *testing.T) {
	seq := []snack.Item{python, orca, cow, rhino, elephant}
	a := Replay(animalSchema, elephant, seq)
	b := Replay(animalSchema, elephant, seq)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("replays differ:\n%+v\n%+v", a, b)
	}

	s := NewSession(animalSchema, elephant)
	for _, g := range seq {
		if _, err := s.Submit(g); err != nil {
			t.Fatalf("Submit(%s) failed: %v", g.Name, err)
		}
	}
	if !reflect.DeepEqual(a, s.Clues()) {
		t.Fatal("session clues differ from replay")
	}
}

func TestCloneIsDeep(t *testing.T) {
	cs := Replay(animalSchema, elephant, []snack.Item{orca, rhino})
	cp := cs.Clone()

	*cp.Numeric["weight"].Max = -1
	cp.Categorical["diet"] = CategoricalClue{Excluded: append(cp.Categorical["diet"].Excluded, "Rocks")}

	if *cs.Numeric["weight"].Max == -1 {
		t.Fatal("clone shares numeric pointers")
	}
	if slices.Contains(cs.Categorical["diet"].Excluded, "Rocks") {
		t.Fatal("clone shares excluded slice")
	}
}
