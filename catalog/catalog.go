// Package catalog holds the fixed set of distance tables the CLI can solve.
//
// A catalog is a YAML document with one entry per city count. The built-in
// catalog is embedded in the binary; a different file may be loaded with
// LoadFile. Entries are validated on load by building a tsp.Instance, so a
// Catalog never hands out a malformed matrix.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourbnb/tsp"
)

//go:embed instances.yaml
var builtin []byte

var (
	// ErrUnknownCities is returned by Lookup for a city count with no entry.
	ErrUnknownCities = errors.New("catalog: no instance for this city count")

	// ErrDuplicateCities is returned when two entries share a city count.
	ErrDuplicateCities = errors.New("catalog: duplicate city count")

	// ErrBadEntry wraps any per-entry validation failure.
	ErrBadEntry = errors.New("catalog: invalid entry")

	// ErrEmpty is returned for a catalog without entries.
	ErrEmpty = errors.New("catalog: no instances")
)

// Entry is one catalog instance.
type Entry struct {
	Cities  int         `yaml:"cities"`
	Name    string      `yaml:"name"`
	Labels  []string    `yaml:"labels,omitempty"`
	Workers int         `yaml:"workers,omitempty"` // suggested pool size, 0 = default
	Verbose bool        `yaml:"verbose,omitempty"` // print the node trace by default
	Matrix  [][]float64 `yaml:"matrix"`

	inst *tsp.Instance
}

// Instance returns the validated instance of the entry.
func (e *Entry) Instance() *tsp.Instance { return e.inst }

// Label returns the display name of city i.
func (e *Entry) Label(i int) string { return e.Labels[i] }

// Catalog is an immutable, validated set of entries sorted by city count.
type Catalog struct {
	entries []*Entry
}

type document struct {
	Instances []*Entry `yaml:"instances"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(builtin)
}

// LoadFile reads and validates a catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	return Parse(data)
}

// Load reads and validates a catalog from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog and validates every entry.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if len(doc.Instances) == 0 {
		return nil, ErrEmpty
	}

	seen := make(map[int]bool, len(doc.Instances))
	for i, e := range doc.Instances {
		if e == nil {
			return nil, fmt.Errorf("%w: entry %d is empty", ErrBadEntry, i)
		}
		if seen[e.Cities] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateCities, e.Cities)
		}
		seen[e.Cities] = true
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadEntry, e.Name, err)
		}
	}
	slices.SortFunc(doc.Instances, func(a, b *Entry) int { return a.Cities - b.Cities })

	return &Catalog{entries: doc.Instances}, nil
}

func (e *Entry) validate() error {
	if len(e.Matrix) != e.Cities {
		return fmt.Errorf("cities=%d but matrix has %d rows", e.Cities, len(e.Matrix))
	}
	if e.Workers < 0 {
		return tsp.ErrBadWorkers
	}
	inst, err := tsp.NewInstanceFromRows(e.Matrix)
	if err != nil {
		return err
	}
	switch {
	case len(e.Labels) == 0:
		e.Labels = tsp.CityLabels(e.Cities)
	case len(e.Labels) != e.Cities:
		return fmt.Errorf("%d labels for %d cities", len(e.Labels), e.Cities)
	}
	if e.Name == "" {
		e.Name = fmt.Sprintf("%d-cities", e.Cities)
	}
	e.inst = inst

	return nil
}

// Lookup returns the entry for the given city count.
func (c *Catalog) Lookup(cities int) (*Entry, error) {
	i, ok := slices.BinarySearchFunc(c.entries, cities, func(e *Entry, n int) int { return e.Cities - n })
	if !ok {
		return nil, fmt.Errorf("%w: %d (have %v)", ErrUnknownCities, cities, c.Sizes())
	}

	return c.entries[i], nil
}

// Sizes lists the available city counts in ascending order.
func (c *Catalog) Sizes() []int {
	out := make([]int, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Cities
	}

	return out
}

// Entries returns the entries in ascending city-count order.
func (c *Catalog) Entries() []*Entry {
	return slices.Clone(c.entries)
}
