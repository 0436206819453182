// Package dataset loads game datasets and validates them against a schema.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/f3rmion/snack/internal/snack"
)

// DifficultyKey is the dataset key of the difficulty tag.
const DifficultyKey = "difficulty"

// Record is one raw dataset object before schema resolution.
type Record map[string]any

// LoadFile reads and validates every record of a dataset file. Any invalid
// record fails the whole load.
func LoadFile(path string, schema snack.Schema) ([]snack.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}
	items, err := Parse(data, schema)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return items, nil
}

// Parse decodes a dataset in one of three layouts: a JSON array, JSON
// lines, or a generated script file holding an array literal
// (`const PLAYERS_DATA = [...];`).
func Parse(data []byte, schema snack.Schema) ([]snack.Item, error) {
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return nil, err
	}

	items := make([]snack.Item, 0, len(records))
	for i, rec := range records {
		it, err := ParseRecord(i, rec, schema)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func decodeRecords(data []byte) ([]Record, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '[':
		return decodeArray(trimmed)
	case '{':
		return decodeLines(trimmed)
	default:
		return decodeScript(trimmed)
	}
}

func newDecoder(b []byte) *json.Decoder {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return dec
}

func decodeArray(b []byte) ([]Record, error) {
	var records []Record
	if err := newDecoder(b).Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing dataset array: %w", err)
	}
	return records, nil
}

func decodeLines(b []byte) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(bytes.NewReader(b))
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec Record
		if err := newDecoder(line).Decode(&rec); err != nil {
			return nil, &snack.MalformedItemError{Index: len(records), Reason: fmt.Sprintf("line %d: %v", lineNum, err)}
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dataset lines: %w", err)
	}
	return records, nil
}

// decodeScript extracts the array literal of a generated data script,
// dropping whole-line // comments.
func decodeScript(b []byte) ([]Record, error) {
	var kept bytes.Buffer
	for _, line := range bytes.Split(b, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte("//")) {
			continue
		}
		kept.Write(line)
		kept.WriteByte('\n')
	}

	src := kept.Bytes()
	start := bytes.IndexByte(src, '[')
	end := bytes.LastIndexByte(src, ']')
	if start < 0 || end < start {
		return nil, fmt.Errorf("no array literal found in dataset")
	}
	return decodeArray(src[start : end+1])
}

// ParseRecord resolves one raw record against schema.
func ParseRecord(index int, rec Record, schema snack.Schema) (snack.Item, error) {
	malformed := func(name, attr, reason string) error {
		return &snack.MalformedItemError{Index: index, Item: name, Attribute: attr, Reason: reason}
	}

	idKey := schema.IdentityKey()
	name, ok := rec[idKey].(string)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return snack.Item{}, malformed("", idKey, "missing identity")
	}

	rawDiff, ok := rec[DifficultyKey].(string)
	if !ok {
		return snack.Item{}, malformed(name, DifficultyKey, "missing difficulty")
	}
	diff, err := snack.ParseDifficulty(rawDiff)
	if err != nil {
		return snack.Item{}, malformed(name, DifficultyKey, err.Error())
	}

	it := snack.Item{
		Name:       name,
		Difficulty: diff,
		Labels:     make(map[string]string),
		Numbers:    make(map[string]float64),
		Sets:       make(map[string][]string),
	}

	for _, attr := range schema.Attributes {
		raw, present := rec[attr.Key()]
		if !present || raw == nil {
			return snack.Item{}, malformed(name, attr.Name, "missing value")
		}

		switch {
		case attr.Kind.IsNumeric():
			n, err := toNumber(raw)
			if err != nil {
				return snack.Item{}, malformed(name, attr.Name, err.Error())
			}
			it.Numbers[attr.Name] = n
		case attr.Kind == snack.SetValued:
			set, err := toSet(raw)
			if err != nil {
				return snack.Item{}, malformed(name, attr.Name, err.Error())
			}
			it.Sets[attr.Name] = set
		case attr.Kind == snack.Boolean:
			b, err := toBoolLabel(raw)
			if err != nil {
				return snack.Item{}, malformed(name, attr.Name, err.Error())
			}
			it.Labels[attr.Name] = b
		default:
			l, err := toLabel(raw)
			if err != nil {
				return snack.Item{}, malformed(name, attr.Name, err.Error())
			}
			it.Labels[attr.Name] = l
		}
	}

	return it, nil
}

func toNumber(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		x, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n.String())
		}
		f = x
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", n)
		}
		f = x
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
	return checkFinite(f)
}

// checkFinite rejects NaN and infinities, which have no ordering.
func checkFinite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %v", f)
	}
	return f, nil
}

func toLabel(v any) (string, error) {
	switch l := v.(type) {
	case string:
		return strings.TrimSpace(l), nil
	case json.Number:
		return l.String(), nil
	case bool:
		return boolLabel(l), nil
	default:
		return "", fmt.Errorf("expected a label, got %T", v)
	}
}

func toBoolLabel(v any) (string, error) {
	switch b := v.(type) {
	case bool:
		return boolLabel(b), nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "yes", "true", "y", "1":
			return snack.Yes, nil
		case "no", "false", "n", "0":
			return snack.No, nil
		}
		return "", fmt.Errorf("not a yes/no value: %q", b)
	default:
		return "", fmt.Errorf("expected yes/no, got %T", v)
	}
}

func boolLabel(b bool) string {
	if b {
		return snack.Yes
	}
	return snack.No
}

// toSet accepts an array of labels or a single scalar, which becomes a
// singleton set. Duplicates are dropped, first occurrence wins.
func toSet(v any) ([]string, error) {
	var raw []any
	switch s := v.(type) {
	case []any:
		raw = s
	case []string:
		for _, x := range s {
			raw = append(raw, x)
		}
	default:
		raw = []any{v}
	}

	set := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, x := range raw {
		l, err := toLabel(x)
		if err != nil {
			return nil, err
		}
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		set = append(set, l)
	}
	return set, nil
}
