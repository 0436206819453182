package dataset

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/f3rmion/snack/internal/engine"
	"github.com/f3rmion/snack/internal/snack"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Catalog is a validated dataset: the guessable universe plus the pool of
// possible secrets.
type Catalog struct {
	schema snack.Schema
	items  []snack.Item
	pool   []snack.Item
	index  map[string]int
	folded []string
}

// NewCatalog indexes items by identity and derives the secret pool. Identity
// collisions (after case and accent folding) and an empty pool are fatal.
func NewCatalog(schema snack.Schema, items []snack.Item, eligible ...snack.Difficulty) (*Catalog, error) {
	c := &Catalog{
		schema: schema,
		items:  items,
		index:  make(map[string]int, len(items)),
		folded: make([]string, len(items)),
	}

	for i, it := range items {
		key := Fold(it.Name)
		if prev, dup := c.index[key]; dup {
			return nil, &snack.MalformedItemError{
				Index:  i,
				Item:   it.Name,
				Reason: fmt.Sprintf("duplicate identity, first seen at record %d", prev),
			}
		}
		c.index[key] = i
		c.folded[i] = key
	}

	pool, err := engine.SecretPool(items, eligible...)
	if err != nil {
		return nil, err
	}
	c.pool = pool
	return c, nil
}

// Open loads a dataset file and builds its catalog.
func Open(path string, schema snack.Schema, eligible ...snack.Difficulty) (*Catalog, error) {
	items, err := LoadFile(path, schema)
	if err != nil {
		return nil, err
	}
	return NewCatalog(schema, items, eligible...)
}

// Schema returns the catalog's schema.
func (c *Catalog) Schema() snack.Schema { return c.schema }

// Items returns the guessable universe in dataset order.
func (c *Catalog) Items() []snack.Item { return c.items }

// Pool returns the secret pool in dataset order.
func (c *Catalog) Pool() []snack.Item { return c.pool }

// Size returns the number of guessable items.
func (c *Catalog) Size() int { return len(c.items) }

// PoolSize returns the number of possible secrets.
func (c *Catalog) PoolSize() int { return len(c.pool) }

// Lookup returns the item for a name, or nil.
func (c *Catalog) Lookup(name string) *snack.Item {
	i, ok := c.index[Fold(name)]
	if !ok {
		return nil
	}
	return &c.items[i]
}

// Resolve maps free text onto an item of the universe.
func (c *Catalog) Resolve(name string) (snack.Item, error) {
	if it := c.Lookup(name); it != nil {
		return *it, nil
	}
	return snack.Item{}, &snack.UnknownItemError{Query: name}
}

// Search returns up to limit items whose name starts with query, followed
// by items containing it elsewhere. Matching ignores case and accents.
func (c *Catalog) Search(query string, limit int) []snack.Item {
	q := Fold(query)
	if q == "" || limit <= 0 {
		return nil
	}

	var prefix, inner []snack.Item
	for i, name := range c.folded {
		switch {
		case strings.HasPrefix(name, q):
			prefix = append(prefix, c.items[i])
		case strings.Contains(name, q):
			inner = append(inner, c.items[i])
		}
		if len(prefix) >= limit {
			break
		}
	}

	out := append(prefix, inner...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Fold normalises a name for matching: trimmed, lower case, accents removed.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}
