// Package grid renders the periodic table: a group-number header, one
// styled cell per element plus alignment padding, and the legend for the
// active classification scheme. Each build also produces a two-way index
// between cell sequence and atomic number; the index lives exactly as long
// as the grid it was built with.
package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hverma/elemental/internal/chem"
	"github.com/hverma/elemental/internal/classify"
	"github.com/hverma/elemental/internal/store"
)

// Classifier is the slice of the classification engine the renderer needs.
// A nil classifier renders the grid uncolored and without a legend.
type Classifier interface {
	Categorize(z int) classify.Category
	Legend() classify.Legend
}

// Options are the display knobs. Out-of-range values are clamped, never
// rejected.
type Options struct {
	Width      int
	Separation int
	Indent     int
}

func (o Options) normalized() Options {
	if o.Width < 2 {
		o.Width = 2
	}
	if o.Separation < 0 {
		o.Separation = 0
	}
	if o.Indent < 0 {
		o.Indent = 0
	}
	return o
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	periodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("145"))
	legendStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110"))
)

// Grid is one rendered table plus its cell index.
type Grid struct {
	Lines    []string
	MaxWidth int

	cells []int       // sequence -> Z, render order, padding excluded
	index map[int]int // Z -> sequence
}

func (g *Grid) String() string { return strings.Join(g.Lines, "\n") }

// Cells is the number of element cells in the grid.
func (g *Grid) Cells() int { return len(g.cells) }

// ZAt resolves a cell sequence number to an atomic number.
func (g *Grid) ZAt(seq int) (int, bool) {
	if seq < 0 || seq >= len(g.cells) {
		return 0, false
	}
	return g.cells[seq], true
}

// IndexOf resolves an atomic number to its cell sequence number.
func (g *Grid) IndexOf(z int) (int, bool) {
	seq, ok := g.index[z]
	return seq, ok
}

// First is the atomic number of the first element cell.
func (g *Grid) First() int {
	if len(g.cells) == 0 {
		return 0
	}
	return g.cells[0]
}

// Build renders the table for one convention. Pure: the same store,
// convention, options and classifier state always produce identical output.
func Build(s *store.Store, conv chem.Convention, opts Options, cl Classifier) *Grid {
	opts = opts.normalized()
	b := &builder{
		store:  s,
		conv:   conv,
		opts:   opts,
		cl:     cl,
		grid:   &Grid{index: map[int]int{}},
		hePad:  heAlignmentPad(s, conv),
		indent: strings.Repeat(" ", opts.Indent),
		sep:    strings.Repeat(" ", opts.Separation),
		blank:  strings.Repeat(" ", opts.Width),
	}
	b.writeHeader()
	for _, row := range chem.RowsFor(conv) {
		b.writeRow(row)
	}
	b.writeLegend()
	return b.grid
}

type builder struct {
	store  *store.Store
	conv   chem.Convention
	opts   Options
	cl     Classifier
	grid   *Grid
	hePad  int
	indent string
	sep    string
	blank  string
}

// writeHeader renders the group-number row: the convention's block order
// with f columns left blank (their group numbers are reserved but never
// shown).
func (b *builder) writeHeader() {
	cells := []string{}
	for _, sub := range chem.BlockOrder(b.conv) {
		lo, hi := chem.GroupRange(sub)
		for group := lo; group <= hi; group++ {
			if sub == chem.SubshellF {
				cells = append(cells, b.blank)
				continue
			}
			cells = append(cells, fmt.Sprintf("%*d", b.opts.Width, group))
		}
	}
	line := b.indent + "  " + headerStyle.Render(strings.Join(cells, b.sep))
	b.push(line)
}

func (b *builder) writeRow(row chem.Row) {
	label := " "
	for _, slot := range row {
		if !slot.Pad {
			label = fmt.Sprintf("%d", slot.Orbital.Period)
			break
		}
	}

	cells := []string{}
	for _, slot := range row {
		if slot.Pad {
			for i := 0; i < slot.Orbital.Degeneracy(); i++ {
				cells = append(cells, b.blank)
			}
			continue
		}
		r, ok := chem.RangeOf(slot.Orbital)
		if !ok {
			continue
		}
		for z := r.Min; z <= r.Max; z++ {
			if z == 2 && b.hePad > 0 {
				for i := 0; i < b.hePad; i++ {
					cells = append(cells, b.blank)
				}
			}
			cells = append(cells, b.cell(z))
		}
	}
	line := b.indent + periodStyle.Render(label) + " " + strings.Join(cells, b.sep)
	b.push(line)
}

func (b *builder) cell(z int) string {
	if !b.store.Valid(z) {
		return b.blank
	}
	b.grid.index[z] = len(b.grid.cells)
	b.grid.cells = append(b.grid.cells, z)

	symbol := b.store.Symbol(z)
	if len(symbol) > b.opts.Width {
		symbol = symbol[:b.opts.Width]
	}
	text := fmt.Sprintf("%-*s", b.opts.Width, symbol)
	if b.cl == nil {
		return text
	}
	return b.cl.Categorize(z).Style.Render(text)
}

func (b *builder) writeLegend() {
	if b.cl == nil {
		return
	}
	l := b.cl.Legend()
	b.push("")
	b.push(b.indent + legendStyle.Render("Key: "+l.Title))
	if l.Reference != "" {
		b.push(b.indent + l.Reference)
	}
	for _, c := range l.Entries {
		b.push(b.indent + c.Style.Render("  ") + " " + c.Caption)
	}
}

func (b *builder) push(line string) {
	b.grid.Lines = append(b.grid.Lines, line)
	if w := lipgloss.Width(line); w > b.grid.MaxWidth {
		b.grid.MaxWidth = w
	}
}

// heAlignmentPad computes how many padding cells go before helium so its
// right edge lands on neon's column. Zero when either element is missing
// or helium already sits at or past that column.
func heAlignmentPad(s *store.Store, conv chem.Convention) int {
	if !s.Valid(2) || !s.Valid(10) {
		return 0
	}
	heCol, okHe := columnOf(conv, 2)
	neCol, okNe := columnOf(conv, 10)
	if !okHe || !okNe || neCol <= heCol {
		return 0
	}
	return neCol - heCol
}

// columnOf is the zero-based cell column z occupies in its layout row.
func columnOf(conv chem.Convention, z int) (int, bool) {
	orb, ok := chem.OrbitalOf(z)
	if !ok {
		return 0, false
	}
	r, _ := chem.RangeOf(orb)
	for _, row := range chem.RowsFor(conv) {
		col := 0
		for _, slot := range row {
			if !slot.Pad && slot.Orbital == orb {
				return col + (z - r.Min), true
			}
			col += slot.Orbital.Degeneracy()
		}
	}
	return 0, false
}
