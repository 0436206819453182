package engine

import (
	"github.com/f3rmion/snack/internal/snack"
)

var animalSchema = snack.Schema{
	Identity: "name",
	Attributes: []snack.Attribute{
		{Name: "class", Kind: snack.Categorical},
		{Name: "weight", Kind: snack.OrderedNumeric, Unit: "kg"},
		{Name: "diet", Kind: snack.Categorical},
		{Name: "continents", Kind: snack.SetValued},
		{Name: "domesticated", Kind: snack.Boolean},
	},
}

var tennisSchema = snack.Schema{
	Identity: "name",
	Attributes: []snack.Attribute{
		{Name: "hand", Kind: snack.Categorical},
		{Name: "currentRanking", Kind: snack.OrderedNumericInverted},
		{Name: "grandSlamTitles", Kind: snack.OrderedNumeric},
	},
}

func animal(name string, diff snack.Difficulty, class string, weight float64, diet string, continents []string, domesticated string) snack.Item {
	return snack.Item{
		Name:       name,
		Difficulty: diff,
		Labels:     map[string]string{"class": class, "diet": diet, "domesticated": domesticated},
		Numbers:    map[string]float64{"weight": weight},
		Sets:       map[string][]string{"continents": continents},
	}
}

func player(name string, hand string, rank, slams float64) snack.Item {
	return snack.Item{
		Name:       name,
		Difficulty: snack.Easy,
		Labels:     map[string]string{"hand": hand},
		Numbers:    map[string]float64{"currentRanking": rank, "grandSlamTitles": slams},
	}
}

var (
	elephant = animal("African Elephant", snack.Easy, "Mammal", 4000, "Herbivore", []string{"Africa", "Asia"}, snack.No)
	rhino    = animal("White Rhino", snack.Medium, "Mammal", 2300, "Herbivore", []string{"Africa"}, snack.No)
	orca     = animal("Orca", snack.Medium, "Mammal", 6000, "Carnivore", []string{"Asia", "Europe"}, snack.No)
	cow      = animal("Cow", snack.Easy, "Mammal", 700, "Herbivore", []string{"Europe", "Asia", "Africa"}, snack.Yes)
	ostrich  = animal("Ostrich", snack.Hard, "Bird", 120, "Omnivore", []string{"Africa"}, snack.No)
	python   = animal("Python", snack.Hard, "Reptile", 90, "Carnivore", []string{"Asia", "Africa"}, snack.No)

	zoo = []snack.Item{elephant, rhino, orca, cow, ostrich, python}
)

func ptr(v float64) *float64 { return &v }
