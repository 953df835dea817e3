// Package detail generates the per-element detail panel: header, property
// rows in the registry order, and the isotope table. The generator tracks
// the last-displayed element and regenerates only on change.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/hverma/elemental/internal/store"
)

// Anchor names for jumping the viewport to a section.
const (
	AnchorProperties = "properties"
	AnchorIsotopes   = "isotopes"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("145"))
	naStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Generator renders the detail panel and suppresses redundant work: Refresh
// is a no-op while the element is unchanged, observable through the
// regeneration counter.
type Generator struct {
	store    *store.Store
	excluded map[string]bool
	width    int

	lastZ   int
	regens  int
	content string
	anchors map[string]int
}

func NewGenerator(s *store.Store) *Generator {
	return &Generator{
		store:    s,
		excluded: map[string]bool{},
		width:    64,
		anchors:  map[string]int{},
	}
}

// SetWidth sets the wrap width. Takes effect on the next regeneration.
func (g *Generator) SetWidth(w int) {
	if w < 24 {
		w = 24
	}
	g.width = w
}

// SetExcluded replaces the set of property names omitted from the
// properties section. Isotopes are never excluded.
func (g *Generator) SetExcluded(names []string) {
	g.excluded = make(map[string]bool, len(names))
	for _, n := range names {
		g.excluded[strings.ToLower(strings.TrimSpace(n))] = true
	}
}

// Refresh regenerates the panel for z when it differs from the last
// displayed element, or unconditionally when force is set. Reports whether
// a regeneration happened.
func (g *Generator) Refresh(z int, force bool) bool {
	if !g.store.Valid(z) {
		return false
	}
	if !force && z == g.lastZ {
		return false
	}
	g.regenerate(z)
	g.lastZ = z
	g.regens++
	return true
}

// Content returns the last generated panel text.
func (g *Generator) Content() string { return g.content }

// Anchor returns the line number of a named section in the current content.
func (g *Generator) Anchor(name string) (int, bool) {
	line, ok := g.anchors[name]
	return line, ok
}

// Regenerations counts how many times the panel has been rebuilt.
func (g *Generator) Regenerations() int { return g.regens }

// LastZ is the element the current content describes, 0 before the first
// refresh.
func (g *Generator) LastZ() int { return g.lastZ }

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string { return cb.builder.String() }
func (cb *contentBuilder) Line() int      { return cb.lines }

func (g *Generator) regenerate(z int) {
	cb := &contentBuilder{}
	anchors := map[string]int{}

	cb.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", g.store.Name(z), g.store.Symbol(z))))
	cb.WriteRune('\n')
	cb.WriteString(labelStyle.Render("Atomic number: "))
	cb.WriteString(fmt.Sprintf("%d", z))
	cb.WriteRune('\n')
	cb.WriteString(labelStyle.Render("Electron configuration: "))
	cb.WriteString(g.store.ElectronConfig(z))
	cb.WriteRune('\n')
	cb.WriteRune('\n')

	anchors[AnchorProperties] = cb.Line()
	cb.WriteString(sectionStyle.Render("Properties"))
	cb.WriteRune('\n')
	labelWidth := 0
	for _, p := range store.Properties {
		if len(p.Label) > labelWidth {
			labelWidth = len(p.Label)
		}
	}
	for _, p := range store.Properties {
		if g.excluded[p.Name] {
			continue
		}
		g.writeProperty(cb, z, p, labelWidth)
	}
	cb.WriteRune('\n')

	anchors[AnchorIsotopes] = cb.Line()
	cb.WriteString(sectionStyle.Render("Isotopes"))
	cb.WriteRune('\n')
	isotopes := g.store.Isotopes(z)
	if len(isotopes) == 0 {
		cb.WriteString(naStyle.Render("No isotope data."))
		cb.WriteRune('\n')
	}
	for _, iso := range isotopes {
		cb.WriteString(fmt.Sprintf("  %-5d %-12s", iso.MassNumber, iso.RelativeMass))
		if iso.Abundance != "" {
			cb.WriteString("  " + iso.Abundance)
		}
		cb.WriteRune('\n')
	}

	g.content = cb.String()
	g.anchors = anchors
}

func (g *Generator) writeProperty(cb *contentBuilder, z int, p store.PropertyInfo, labelWidth int) {
	value := g.store.Property(z, p.Name)
	cb.WriteString("  ")
	cb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, p.Label)))
	cb.WriteString("  ")
	if value == store.NA {
		cb.WriteString(naStyle.Render(store.NA))
		cb.WriteRune('\n')
		return
	}
	if p.Unit != "" {
		value += " " + p.Unit
	}
	indent := labelWidth + 4
	wrapped := wordwrap.String(value, g.width-indent)
	cb.WriteString(indentContinuations(wrapped, strings.Repeat(" ", indent)))
	cb.WriteRune('\n')
}

// indentContinuations indents every wrapped line after the first so values
// stay aligned under their column.
func indentContinuations(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
