package classify

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hverma/elemental/internal/store"
)

// Category is one classification bucket: a stable key, the legend caption,
// and the style applied to matching cells.
type Category struct {
	Key     string
	Caption string
	Style   lipgloss.Style
}

const (
	// DefaultTemperature is the by-state reference in Kelvin.
	DefaultTemperature = 298.15
	// DefaultYear is the by-discovery reference year.
	DefaultYear = 1800
	// DefaultEpsilon is the equality tolerance for numeric schemes.
	DefaultEpsilon = 0.005
)

// Engine classifies elements under the active scheme. Reference state is
// per-session: the temperature, the year, and one cached reference value
// per numeric property (seeded with the property's median on first use,
// then adjusted by the user).
type Engine struct {
	store   *store.Store
	scheme  Scheme
	temp    float64
	year    int
	epsilon float64
	refs    map[string]float64
}

func New(s *store.Store) *Engine {
	return &Engine{
		store:   s,
		scheme:  Scheme{Kind: ByGroup},
		temp:    DefaultTemperature,
		year:    DefaultYear,
		epsilon: DefaultEpsilon,
		refs:    map[string]float64{},
	}
}

func (e *Engine) Scheme() Scheme { return e.scheme }

// SetScheme switches the active scheme. Cached per-property references
// survive the switch; only the scheme tag changes.
func (e *Engine) SetScheme(s Scheme) { e.scheme = s }

// SetEpsilon overrides the numeric equality tolerance.
func (e *Engine) SetEpsilon(eps float64) {
	if eps > 0 {
		e.epsilon = eps
	}
}

// Reference returns the active scheme's reference value. The second result
// is false for schemes without one (by-group, by-oxidation).
func (e *Engine) Reference() (float64, bool) {
	switch e.scheme.Kind {
	case ByState:
		return e.temp, true
	case ByDiscovery:
		return float64(e.year), true
	case ByProperty:
		return e.propertyReference(e.scheme.Property), true
	}
	return 0, false
}

// SetReference overwrites the active scheme's reference value. No-op for
// schemes without one.
func (e *Engine) SetReference(v float64) {
	switch e.scheme.Kind {
	case ByState:
		e.temp = v
	case ByDiscovery:
		e.year = int(v)
	case ByProperty:
		e.refs[e.scheme.Property] = v
	}
}

// SetTemperature seeds the by-state reference regardless of the active
// scheme.
func (e *Engine) SetTemperature(v float64) {
	if v > 0 {
		e.temp = v
	}
}

// SetYear seeds the by-discovery reference regardless of the active scheme.
func (e *Engine) SetYear(year int) {
	if year > 0 {
		e.year = year
	}
}

// AdjustReference shifts the active reference value by delta.
func (e *Engine) AdjustReference(delta float64) {
	if cur, ok := e.Reference(); ok {
		e.SetReference(cur + delta)
	}
}

// Categorize maps z to its category under the active scheme.
func (e *Engine) Categorize(z int) Category {
	switch e.scheme.Kind {
	case ByGroup:
		return e.byGroup(z)
	case ByState:
		return e.byState(z)
	case ByDiscovery:
		return e.byDiscovery(z)
	case ByOxidation:
		return e.byOxidation(z)
	case ByProperty:
		return e.byProperty(z)
	}
	return catUnknown
}

func (e *Engine) byGroup(z int) Category {
	orb, ok := orbitalOf(z)
	if !ok {
		return catUnknown
	}
	if c, ok := groupCategories[orb]; ok {
		return c
	}
	return catUnknown
}

// byState compares the reference temperature against the melting and
// boiling points. A temperature exactly at the melting point is not solid
// and exactly at the boiling point is not liquid; the comparisons are
// strict by contract.
func (e *Engine) byState(z int) Category {
	mp, okM := e.store.NumericProperty(z, "melting_point")
	bp, okB := e.store.NumericProperty(z, "boiling_point")
	if !okM || !okB || mp == 0 || bp == 0 {
		return catStateUnknown
	}
	switch {
	case e.temp < mp:
		return catSolid
	case e.temp < bp:
		return catLiquid
	}
	return catGas
}

// byDiscovery buckets by the leading year token of the discovery field.
// "Known to the ancients" in the discoverer field wins regardless of year;
// the match is a case-sensitive substring.
func (e *Engine) byDiscovery(z int) Category {
	if strings.Contains(e.store.Property(z, "discoverer"), "Known to the ancients") {
		return catAncients
	}
	year, ok := leadingInt(e.store.Property(z, "discovered"))
	if !ok {
		return catDiscoveryUnknown
	}
	switch {
	case year < e.year:
		return catBefore
	case year == e.year:
		return catDuring
	}
	return catAfter
}

// byOxidation counts the comma-separated tokens of the oxidation-states
// field. Counts above seven share the last bucket.
func (e *Engine) byOxidation(z int) Category {
	raw := e.store.Property(z, "oxidation_states")
	if raw == store.NA {
		return catOxidationUnknown
	}
	n := len(strings.Split(raw, ","))
	if n > len(oxidationCategories) {
		n = len(oxidationCategories)
	}
	return oxidationCategories[n-1]
}

// byProperty compares the element's value against the cached reference for
// the scheme's property. The epsilon equality check runs before the strict
// inequalities; the evaluation order is user-visible at values exactly
// epsilon away from the reference and must not be reordered.
func (e *Engine) byProperty(z int) Category {
	v, ok := e.store.NumericProperty(z, e.scheme.Property)
	if !ok {
		return catPropertyUnknown
	}
	ref := e.propertyReference(e.scheme.Property)
	diff := v - ref
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff <= e.epsilon:
		return catEqual
	case v < ref:
		return catLess
	}
	return catGreater
}

// propertyReference returns the cached reference for a property, computing
// the median of its defined values on first use.
func (e *Engine) propertyReference(property string) float64 {
	if v, ok := e.refs[property]; ok {
		return v
	}
	m := computeMedian(e.store, property)
	e.refs[property] = m
	return m
}

// computeMedian is the median of all defined numeric values of property
// across the store, 0 when none are defined.
func computeMedian(s *store.Store, property string) float64 {
	var values []float64
	for _, z := range s.Zs() {
		if v, ok := s.NumericProperty(z, property); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	mid := len(values) / 2
	if len(values)%2 == 1 {
		return values[mid]
	}
	return (values[mid-1] + values[mid]) / 2
}

// leadingInt parses the leading integer token of a field like "1898" or
// "1898 (isolated 1902)".
func leadingInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
