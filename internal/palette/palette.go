// Package palette loads hand-authored colour palettes.
//
// A palette file is a JSON-with-comments object mapping category names
// (e.g. "purple") to objects mapping shade names (e.g. "plum") to colour
// values (e.g. "#673147"). Categories and shades are kept in the order they
// appear in the file; every consumer (CSS generation, verification reports)
// iterates in that order.
//
// Nothing here validates colour values. Bad hex codes and duplicates are
// content issues reported by the verify package, not load failures.
package palette

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jpl-au/palette/internal/jsonc"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	// ErrRead is returned when the palette file cannot be read.
	ErrRead = errors.New("cannot read palette")
	// ErrParse is returned when the palette is not valid JSON after comments are stripped.
	ErrParse = errors.New("malformed palette")
	// ErrNotObject is returned when the top-level JSON value is not an object.
	ErrNotObject = errors.New("palette must be a JSON object")
)

// Palette is an ordered mapping from category name to Category.
type Palette struct {
	categories *orderedmap.OrderedMap[string, *Category]
}

// Category is an ordered mapping from shade name to colour value.
// An array category is keyed by index ("0", "1", ...). A category whose JSON
// value is a scalar or null has no shades.
type Category struct {
	Name   string
	object bool
	shades *orderedmap.OrderedMap[string, string]
	unset  map[string]bool // shades holding "", 0, false or null
}

// Entry is a single colour in a palette.
type Entry struct {
	Category string
	Shade    string
	Value    string
}

// Name returns the "<category>-<shade>" label used in reports.
func (e Entry) Name() string {
	return e.Category + "-" + e.Shade
}

// Load reads and parses the palette file at path.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Parse(data)
}

// Parse strips comments from data and decodes it into a Palette.
func Parse(data []byte) (*Palette, error) {
	clean := jsonc.Strip(data)

	// encoding/json gives precise syntax errors; the ordered decode below
	// only runs on input already known to be well formed.
	var probe any
	if err := json.Unmarshal(clean, &probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return nil, ErrNotObject
	}

	raw := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(clean, raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	p := &Palette{categories: orderedmap.New[string, *Category]()}
	for pair := raw.Oldest(); pair != nil; pair = pair.Next() {
		cat, err := parseCategory(pair.Key, pair.Value)
		if err != nil {
			return nil, err
		}
		p.categories.Set(pair.Key, cat)
	}
	return p, nil
}

func parseCategory(name string, raw json.RawMessage) (*Category, error) {
	cat := &Category{
		Name:   name,
		shades: orderedmap.New[string, string](),
		unset:  map[string]bool{},
	}

	switch kind(raw) {
	case '{':
		shades := orderedmap.New[string, json.RawMessage]()
		if err := json.Unmarshal(raw, shades); err != nil {
			return nil, fmt.Errorf("%w: category %q: %w", ErrParse, name, err)
		}
		for pair := shades.Oldest(); pair != nil; pair = pair.Next() {
			cat.set(pair.Key, pair.Value)
		}
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: category %q: %w", ErrParse, name, err)
		}
		for i, item := range items {
			cat.set(strconv.Itoa(i), item)
		}
	default:
		return cat, nil
	}
	cat.object = true
	return cat, nil
}

func (c *Category) set(shade string, raw json.RawMessage) {
	c.shades.Set(shade, colourValue(raw))
	if falsy(raw) {
		c.unset[shade] = true
	} else {
		delete(c.unset, shade)
	}
}

// colourValue returns the string a shade holds. Non-string values are kept
// as compact JSON so they surface as invalid colours rather than vanishing.
func colourValue(raw json.RawMessage) string {
	var s string
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte(`"`)) && json.Unmarshal(raw, &s) == nil {
		return s
	}
	var b bytes.Buffer
	if err := json.Compact(&b, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return b.String()
}

// kind returns the first byte of the JSON value, which identifies objects
// and arrays.
func kind(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// falsy reports whether raw is "", false, null or a zero number.
func falsy(raw json.RawMessage) bool {
	v := string(bytes.TrimSpace(raw))
	switch v {
	case `""`, "false", "null":
		return true
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f == 0
	}
	return false
}

// Categories returns category names in file order.
func (p *Palette) Categories() []string {
	names := make([]string, 0, p.categories.Len())
	for pair := p.categories.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Each calls fn for every category in file order.
func (p *Palette) Each(fn func(*Category)) {
	for pair := p.categories.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Value)
	}
}

// Get returns the named category.
func (p *Palette) Get(category string) (*Category, bool) {
	return p.categories.Get(category)
}

// Lookup returns the colour value for category.shade.
func (p *Palette) Lookup(category, shade string) (string, bool) {
	cat, ok := p.categories.Get(category)
	if !ok {
		return "", false
	}
	return cat.Shade(shade)
}

// Entries returns every colour in file order, flattened across categories.
func (p *Palette) Entries() []Entry {
	var entries []Entry
	p.Each(func(c *Category) {
		entries = append(entries, c.Entries()...)
	})
	return entries
}

// Len returns the number of colour entries across all categories.
func (p *Palette) Len() int {
	n := 0
	p.Each(func(c *Category) { n += c.Len() })
	return n
}

// Color returns the value of category.shade only when it is set: absent
// shades and shades holding "", 0, false or null report false.
func (p *Palette) Color(category, shade string) (string, bool) {
	cat, ok := p.categories.Get(category)
	if !ok || cat.unset[shade] {
		return "", false
	}
	return cat.Shade(shade)
}

// IsObject reports whether the category's JSON value was an object or an
// array, i.e. whether it holds shades.
func (c *Category) IsObject() bool {
	return c.object
}

// Shade returns the colour value of the named shade.
func (c *Category) Shade(name string) (string, bool) {
	return c.shades.Get(name)
}

// Len returns the number of shades in the category.
func (c *Category) Len() int {
	return c.shades.Len()
}

// Entries returns the category's shades in file order.
func (c *Category) Entries() []Entry {
	entries := make([]Entry, 0, c.shades.Len())
	for pair := c.shades.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry{Category: c.Name, Shade: pair.Key, Value: pair.Value})
	}
	return entries
}
