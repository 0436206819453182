package dataset

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/f3rmion/snack/internal/snack"
)

var driverSchema = snack.Schema{
	Identity: "name",
	Attributes: []snack.Attribute{
		{Name: "nationality", Kind: snack.Categorical},
		{Name: "worldChampionships", Kind: snack.OrderedNumeric},
		{Name: "wins", Kind: snack.OrderedNumeric},
		{Name: "teamsHistory", Kind: snack.SetValued},
	},
}

const driversCSV = `id,name,abbr,nationality,world_championships,wins,teams_history,difficulty
1,Lewis Hamilton,HAM,British,7,105,McLaren|Mercedes|Ferrari,easy
2,Nico Hülkenberg,HUL,German,,0,Williams|Force India|Renault|Haas|Sauber,
3,Broken Row,BRK,Nowhere,lots,1,,medium
4,Lewis Hamilton,HAM,British,7,105,McLaren,easy
5,,XXX,Nowhere,0,0,,easy
`

func TestImportCSV(t *testing.T) {
	var rows []int
	report, err := ImportCSV(strings.NewReader(driversCSV), driverSchema, ImportOptions{}, func(row int) {
		rows = append(rows, row)
	})
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}

	if len(report.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(report.Items))
	}
	if len(report.Skipped) != 3 {
		t.Fatalf("expected 3 skipped rows, got %v", report.Skipped)
	}
	if len(rows) != 5 {
		t.Errorf("expected progress for 5 rows, got %d", len(rows))
	}

	ham := report.Items[0]
	if ham.Number("worldChampionships") != 7 || ham.Difficulty != snack.Easy {
		t.Errorf("unexpected Hamilton: %+v", ham)
	}
	if !reflect.DeepEqual(ham.Set("teamsHistory"), []string{"McLaren", "Mercedes", "Ferrari"}) {
		t.Errorf("unexpected teams: %v", ham.Set("teamsHistory"))
	}

	hul := report.Items[1]
	if hul.Number("worldChampionships") != 0 {
		t.Errorf("blank numeric should be 0, got %v", hul.Number("worldChampionships"))
	}
	if hul.Difficulty != snack.Medium {
		t.Errorf("expected default medium, got %q", hul.Difficulty)
	}

	wantRows := []int{3, 4, 5}
	for i, s := range report.Skipped {
		if s.Row != wantRows[i] {
			t.Errorf("skipped %d: expected row %d, got %d", i, wantRows[i], s.Row)
		}
	}
}

func TestImportCSVNonFinite(t *testing.T) {
	data := `name,nationality,world_championships,wins,teams_history,difficulty
Nan Driver,British,NaN,0,,easy
Inf Driver,British,1,+Inf,,easy
Fine Driver,British,1,2,,easy
`
	report, err := ImportCSV(strings.NewReader(data), driverSchema, ImportOptions{}, nil)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	if len(report.Items) != 1 || report.Items[0].Name != "Fine Driver" {
		t.Fatalf("expected only Fine Driver, got %+v", report.Items)
	}
	if len(report.Skipped) != 2 {
		t.Fatalf("expected 2 skipped rows, got %v", report.Skipped)
	}
}

func TestImportCSVMissingColumn(t *testing.T) {
	_, err := ImportCSV(strings.NewReader("name,nationality\nA,B\n"), driverSchema, ImportOptions{}, nil)
	if err == nil || !strings.Contains(err.Error(), "worldChampionships") {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestImportCSVColumnOverrideAndDerivedDifficulty(t *testing.T) {
	schema := snack.Schema{
		Identity: "title",
		Attributes: []snack.Attribute{
			{Name: "imdbRating", Kind: snack.OrderedNumeric},
			{Name: "genres", Kind: snack.SetValued},
		},
	}
	data := "Movie,Score,Genres\nGood,8.5,Drama;Crime\nFine,7.2,Comedy\nMeh,5,Horror\n"
	opts := ImportOptions{
		ListSeparator:  ";",
		Columns:        map[string]string{"title": "Movie", "imdbRating": "Score"},
		DifficultyFrom: "imdbRating",
		EasyAt:         8,
		MediumAt:       7,
	}

	report, err := ImportCSV(strings.NewReader(data), schema, opts, nil)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	want := []snack.Difficulty{snack.Easy, snack.Medium, snack.Hard}
	for i, it := range report.Items {
		if it.Difficulty != want[i] {
			t.Errorf("%s: expected %s, got %s", it.Name, want[i], it.Difficulty)
		}
	}
	if !reflect.DeepEqual(report.Items[0].Set("genres"), []string{"Drama", "Crime"}) {
		t.Errorf("unexpected genres: %v", report.Items[0].Set("genres"))
	}
}

func TestWriteJSONLLoadsBack(t *testing.T) {
	report, err := ImportCSV(strings.NewReader(driversCSV), driverSchema, ImportOptions{}, nil)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSONL(&buf, report.Items, driverSchema); err != nil {
		t.Fatalf("WriteJSONL failed: %v", err)
	}
	if n := strings.Count(buf.String(), "\n"); n != len(report.Items) {
		t.Fatalf("expected %d lines, got %d", len(report.Items), n)
	}

	back, err := Parse(buf.Bytes(), driverSchema)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(back, report.Items) {
		t.Fatalf("items changed on reload:\n%+v\n%+v", report.Items, back)
	}
}

func TestWriteFile(t *testing.T) {
	report, err := ImportCSV(strings.NewReader(driversCSV), driverSchema, ImportOptions{}, nil)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "f1.jsonl")
	if err := WriteFile(path, report.Items, driverSchema); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	back, err := LoadFile(path, driverSchema)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(back) != len(report.Items) {
		t.Errorf("expected %d items, got %d", len(report.Items), len(back))
	}

	if err := WriteFile(filepath.Join(t.TempDir(), "missing", "f1.jsonl"), report.Items, driverSchema); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestCountDifficulties(t *testing.T) {
	report, err := ImportCSV(strings.NewReader(driversCSV), driverSchema, ImportOptions{}, nil)
	if err != nil {
		t.Fatalf("ImportCSV failed: %v", err)
	}
	got := CountDifficulties(report.Items)
	want := map[snack.Difficulty]int{snack.Easy: 1, snack.Medium: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountDifficulties() = %v, want %v", got, want)
	}
}

func TestDeriveDifficulty(t *testing.T) {
	tests := []struct {
		score float64
		want  snack.Difficulty
	}{
		{9.1, snack.Easy},
		{8.0, snack.Easy},
		{7.9, snack.Medium},
		{7.0, snack.Medium},
		{6.9, snack.Hard},
	}
	for _, tt := range tests {
		if got := DeriveDifficulty(tt.score, 8, 7); got != tt.want {
			t.Errorf("DeriveDifficulty(%v): expected %s, got %s", tt.score, tt.want, got)
		}
	}
}
