// Package store is the read-only element data store: per-element property
// records and isotope tables embedded as YAML, plus the find index and
// property-sorted listings built on top of them.
package store

import (
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hverma/elemental/internal/chem"
)

// NA is the sentinel for an absent or non-numeric property value. Lookups
// never fail for a valid atomic number; they degrade to NA.
const NA = "n/a"

//go:embed data/elements.yaml data/isotopes.yaml
var dataFS embed.FS

// Record is one element's immutable entry in the data tables. Properties is
// sparse: keys absent from the map read back as NA.
type Record struct {
	Z          int               `yaml:"z"`
	Symbol     string            `yaml:"symbol"`
	Name       string            `yaml:"name"`
	Properties map[string]string `yaml:"properties"`
}

// Isotope is one row of an element's isotope table.
type Isotope struct {
	MassNumber   int    `yaml:"mass"`
	RelativeMass string `yaml:"relative_mass"`
	Abundance    string `yaml:"abundance,omitempty"`
}

// Store holds the loaded tables and the precomputed find index.
type Store struct {
	records  map[int]Record
	isotopes map[int][]Isotope
	zs       []int
	byName   map[string]int
	bySymbol map[string]int
}

// Open loads the embedded data tables and validates the atomic-number
// invariant: keys are contiguous from 1 with no gaps.
func Open() (*Store, error) {
	raw, err := dataFS.ReadFile("data/elements.yaml")
	if err != nil {
		return nil, fmt.Errorf("read element table: %w", err)
	}
	var records []Record
	if err := yaml.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse element table: %w", err)
	}

	raw, err = dataFS.ReadFile("data/isotopes.yaml")
	if err != nil {
		return nil, fmt.Errorf("read isotope table: %w", err)
	}
	isotopes := map[int][]Isotope{}
	if err := yaml.Unmarshal(raw, &isotopes); err != nil {
		return nil, fmt.Errorf("parse isotope table: %w", err)
	}

	return New(records, isotopes)
}

// New builds a store from in-memory tables. Exported so tests can run
// against small fixture stores without touching the embedded data.
func New(records []Record, isotopes map[int][]Isotope) (*Store, error) {
	s := &Store{
		records:  make(map[int]Record, len(records)),
		isotopes: isotopes,
		byName:   make(map[string]int, len(records)),
		bySymbol: make(map[string]int, len(records)),
	}
	if s.isotopes == nil {
		s.isotopes = map[int][]Isotope{}
	}
	for _, rec := range records {
		if rec.Z < 1 {
			return nil, fmt.Errorf("element %q: invalid atomic number %d", rec.Name, rec.Z)
		}
		if _, dup := s.records[rec.Z]; dup {
			return nil, fmt.Errorf("duplicate atomic number %d", rec.Z)
		}
		s.records[rec.Z] = rec
		s.zs = append(s.zs, rec.Z)
		s.byName[strings.ToLower(rec.Name)] = rec.Z
		s.bySymbol[strings.ToLower(rec.Symbol)] = rec.Z
	}
	sort.Ints(s.zs)
	for i, z := range s.zs {
		if z != i+1 {
			return nil, fmt.Errorf("element table has a gap: expected z=%d, found z=%d", i+1, z)
		}
	}
	return s, nil
}

// MaxZ is the highest atomic number present.
func (s *Store) MaxZ() int {
	if len(s.zs) == 0 {
		return 0
	}
	return s.zs[len(s.zs)-1]
}

// Zs returns all atomic numbers in ascending order.
func (s *Store) Zs() []int {
	return s.zs
}

// Valid reports whether z is inside the store's domain.
func (s *Store) Valid(z int) bool {
	_, ok := s.records[z]
	return ok
}

// Name returns the element's display name, or "" for an unknown z.
func (s *Store) Name(z int) string {
	return s.records[z].Name
}

// Symbol returns the element's symbol, or "" for an unknown z.
func (s *Store) Symbol(z int) string {
	return s.records[z].Symbol
}

// Property returns the raw property string for z, or NA when the property
// is absent. It never errors for a z inside the domain; callers validate z.
func (s *Store) Property(z int, name string) string {
	rec, ok := s.records[z]
	if !ok {
		return NA
	}
	switch name {
	case "name":
		return rec.Name
	case "symbol":
		return rec.Symbol
	}
	if v, ok := rec.Properties[name]; ok && v != "" {
		return v
	}
	return NA
}

// Isotopes returns the ordered isotope list for z; empty when none are
// tabulated.
func (s *Store) Isotopes(z int) []Isotope {
	return s.isotopes[z]
}

// ParseValue extracts the numeric value from a property string, stripping
// the bracket, parenthesis and tilde decorations the tables use for
// estimated values. Reports false for NA or anything without a leading
// numeric token.
func ParseValue(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == NA {
		return 0, false
	}
	cleaned := strings.NewReplacer("[", "", "]", "", "(", "", ")", "", "~", "").Replace(raw)
	cleaned = strings.TrimSpace(cleaned)
	if i := strings.IndexAny(cleaned, " \t"); i >= 0 {
		cleaned = cleaned[:i]
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NumericProperty parses the named property of z. Reports false when the
// value is absent or non-numeric.
func (s *Store) NumericProperty(z int, name string) (float64, bool) {
	return ParseValue(s.Property(z, name))
}

// ElectronConfig exposes the derived configuration for the detail panel.
func (s *Store) ElectronConfig(z int) string {
	cfg, ok := chem.ElectronConfig(z)
	if !ok {
		return NA
	}
	return cfg
}
