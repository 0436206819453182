package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/f3rmion/snack/internal/snack"
)

// ImportOptions controls CSV conversion.
type ImportOptions struct {
	ListSeparator     string            // Separator inside set-valued cells, default "|"
	Columns           map[string]string // Dataset key -> CSV header, when names differ
	DefaultDifficulty snack.Difficulty  // Used when no difficulty column or rule applies

	// Derive difficulty from a numeric attribute: >= EasyAt is easy,
	// >= MediumAt is medium, anything else hard.
	DifficultyFrom string
	EasyAt         float64
	MediumAt       float64
}

// RowError describes a CSV row that was skipped.
type RowError struct {
	Row int // 1-based, header excluded
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

// ImportReport is the result of a CSV import.
type ImportReport struct {
	Items   []snack.Item
	Skipped []RowError
}

// ImportCSV converts a CSV export into items. Headers are matched to dataset
// keys ignoring case, underscores and dashes, so "world_championships" fills
// "worldChampionships". Blank numeric cells count as 0. Rows that cannot be
// parsed are skipped and reported. progress, if set, is called per row.
func ImportCSV(r io.Reader, schema snack.Schema, opts ImportOptions, progress func(row int)) (*ImportReport, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	if opts.ListSeparator == "" {
		opts.ListSeparator = "|"
	}
	if opts.DefaultDifficulty == "" {
		opts.DefaultDifficulty = snack.Medium
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[headerKey(h)] = i
	}
	column := func(key string) (int, bool) {
		if h, ok := opts.Columns[key]; ok {
			key = h
		}
		i, ok := cols[headerKey(key)]
		return i, ok
	}

	idCol, ok := column(schema.IdentityKey())
	if !ok {
		return nil, fmt.Errorf("csv has no %q column", schema.IdentityKey())
	}
	attrCols := make([]int, len(schema.Attributes))
	for i, a := range schema.Attributes {
		c, ok := column(a.Key())
		if !ok {
			return nil, fmt.Errorf("csv has no column for attribute %q", a.Name)
		}
		attrCols[i] = c
	}
	diffCol, hasDiff := column(DifficultyKey)

	report := &ImportReport{}
	seen := make(map[string]bool)
	row := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if progress != nil {
			progress(row)
		}
		if err != nil {
			report.Skipped = append(report.Skipped, RowError{Row: row, Err: err})
			continue
		}

		it, err := importRow(rec, schema, opts, idCol, attrCols, diffCol, hasDiff)
		if err != nil {
			report.Skipped = append(report.Skipped, RowError{Row: row, Err: err})
			continue
		}
		key := Fold(it.Name)
		if seen[key] {
			report.Skipped = append(report.Skipped, RowError{Row: row, Err: fmt.Errorf("duplicate identity %q", it.Name)})
			continue
		}
		seen[key] = true
		report.Items = append(report.Items, it)
	}

	return report, nil
}

func importRow(rec []string, schema snack.Schema, opts ImportOptions, idCol int, attrCols []int, diffCol int, hasDiff bool) (snack.Item, error) {
	cell := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	name := cell(idCol)
	if name == "" {
		return snack.Item{}, fmt.Errorf("empty %s", schema.IdentityKey())
	}

	it := snack.Item{
		Name:    name,
		Labels:  make(map[string]string),
		Numbers: make(map[string]float64),
		Sets:    make(map[string][]string),
	}

	for i, a := range schema.Attributes {
		v := cell(attrCols[i])
		switch {
		case a.Kind.IsNumeric():
			if v == "" {
				it.Numbers[a.Name] = 0
				continue
			}
			n, err := strconv.ParseFloat(v, 64)
			if err == nil {
				n, err = checkFinite(n)
			}
			if err != nil {
				return snack.Item{}, fmt.Errorf("invalid numeric value for %s: %q", a.Name, v)
			}
			it.Numbers[a.Name] = n
		case a.Kind == snack.SetValued:
			var parts []any
			if v != "" {
				for _, p := range strings.Split(v, opts.ListSeparator) {
					parts = append(parts, p)
				}
			}
			set, err := toSet(parts)
			if err != nil {
				return snack.Item{}, err
			}
			it.Sets[a.Name] = set
		case a.Kind == snack.Boolean:
			b, err := toBoolLabel(v)
			if err != nil {
				return snack.Item{}, fmt.Errorf("%s: %w", a.Name, err)
			}
			it.Labels[a.Name] = b
		default:
			it.Labels[a.Name] = v
		}
	}

	switch {
	case hasDiff && cell(diffCol) != "":
		d, err := snack.ParseDifficulty(cell(diffCol))
		if err != nil {
			return snack.Item{}, err
		}
		it.Difficulty = d
	case opts.DifficultyFrom != "":
		it.Difficulty = DeriveDifficulty(it.Numbers[opts.DifficultyFrom], opts.EasyAt, opts.MediumAt)
	default:
		it.Difficulty = opts.DefaultDifficulty
	}

	return it, nil
}

// DeriveDifficulty buckets a score: >= easyAt is easy, >= mediumAt is
// medium, below is hard.
func DeriveDifficulty(score, easyAt, mediumAt float64) snack.Difficulty {
	switch {
	case score >= easyAt:
		return snack.Easy
	case score >= mediumAt:
		return snack.Medium
	default:
		return snack.Hard
	}
}

func headerKey(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(h)
}

// ToRecord converts an item back into a raw dataset record.
func ToRecord(it snack.Item, schema snack.Schema) Record {
	rec := Record{
		schema.IdentityKey(): it.Name,
		DifficultyKey:        string(it.Difficulty),
	}
	for _, a := range schema.Attributes {
		switch {
		case a.Kind.IsNumeric():
			rec[a.Key()] = it.Numbers[a.Name]
		case a.Kind == snack.SetValued:
			set := it.Sets[a.Name]
			if set == nil {
				set = []string{}
			}
			rec[a.Key()] = set
		case a.Kind == snack.Boolean:
			rec[a.Key()] = it.Labels[a.Name] == snack.Yes
		default:
			rec[a.Key()] = it.Labels[a.Name]
		}
	}
	return rec
}

// WriteJSONL writes items as one JSON object per line.
func WriteJSONL(w io.Writer, items []snack.Item, schema snack.Schema) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, it := range items {
		if err := enc.Encode(ToRecord(it, schema)); err != nil {
			return fmt.Errorf("writing %q: %w", it.Name, err)
		}
	}
	return nil
}

// WriteFile writes items to path as JSONL. A failed close is reported, since
// buffered data may not have reached the disk.
func WriteFile(path string, items []snack.Item, schema snack.Schema) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating dataset: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing dataset: %w", cerr)
		}
	}()
	return WriteJSONL(f, items, schema)
}

// CountDifficulties tallies items per difficulty.
func CountDifficulties(items []snack.Item) map[snack.Difficulty]int {
	counts := make(map[snack.Difficulty]int, 3)
	for _, it := range items {
		counts[it.Difficulty]++
	}
	return counts
}
