package classify

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/hverma/elemental/internal/chem"
	"github.com/hverma/elemental/internal/store"
)

func swatch(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color(color))
}

var (
	catS = Category{Key: "s", Caption: "s-block", Style: swatch("203")}
	catP = Category{Key: "p", Caption: "p-block", Style: swatch("75")}
	catD = Category{Key: "d", Caption: "d-block", Style: swatch("221")}
	catF = Category{Key: "f", Caption: "f-block", Style: swatch("114")}

	catSolid        = Category{Key: "solid", Caption: "Solid", Style: swatch("252")}
	catLiquid       = Category{Key: "liquid", Caption: "Liquid", Style: swatch("39")}
	catGas          = Category{Key: "gas", Caption: "Gas", Style: swatch("213")}
	catStateUnknown = Category{Key: "unknown", Caption: "Unknown", Style: swatch("244")}

	catBefore           = Category{Key: "before", Caption: "Discovered before", Style: swatch("180")}
	catDuring           = Category{Key: "during", Caption: "Discovered that year", Style: swatch("213")}
	catAfter            = Category{Key: "after", Caption: "Discovered after", Style: swatch("117")}
	catAncients         = Category{Key: "ancients", Caption: "Known to the ancients", Style: swatch("222")}
	catDiscoveryUnknown = Category{Key: "unknown", Caption: "Unknown", Style: swatch("244")}

	catLess            = Category{Key: "less", Caption: "Below reference", Style: swatch("117")}
	catEqual           = Category{Key: "equal", Caption: "At reference", Style: swatch("222")}
	catGreater         = Category{Key: "greater", Caption: "Above reference", Style: swatch("210")}
	catPropertyUnknown = Category{Key: "unknown", Caption: "Unknown", Style: swatch("244")}

	catOxidationUnknown = Category{Key: "unknown", Caption: "Unknown", Style: swatch("244")}

	catUnknown = Category{Key: "unknown", Caption: "Unknown", Style: swatch("244")}
)

var groupCategories = map[chem.Subshell]Category{
	chem.SubshellS: catS,
	chem.SubshellP: catP,
	chem.SubshellD: catD,
	chem.SubshellF: catF,
}

var oxidationCategories = []Category{
	{Key: "1", Caption: "1 oxidation state", Style: swatch("117")},
	{Key: "2", Caption: "2 oxidation states", Style: swatch("114")},
	{Key: "3", Caption: "3 oxidation states", Style: swatch("150")},
	{Key: "4", Caption: "4 oxidation states", Style: swatch("186")},
	{Key: "5", Caption: "5 oxidation states", Style: swatch("222")},
	{Key: "6", Caption: "6 oxidation states", Style: swatch("216")},
	{Key: "7", Caption: "7 oxidation states", Style: swatch("210")},
}

func orbitalOf(z int) (chem.Subshell, bool) {
	orb, ok := chem.OrbitalOf(z)
	if !ok {
		return 0, false
	}
	return orb.Subshell, true
}

// Legend describes the active scheme for the grid's key block: a title, an
// optional reference line, and one entry per category in fixed order.
type Legend struct {
	Title     string
	Reference string
	Entries   []Category
}

// Legend reports the active scheme's legend. Swatch order is fixed per
// scheme and part of the rendered contract.
func (e *Engine) Legend() Legend {
	l := Legend{Title: e.scheme.Label()}
	switch e.scheme.Kind {
	case ByGroup:
		l.Entries = []Category{catS, catP, catD, catF}
	case ByState:
		l.Reference = fmt.Sprintf("Reference temperature: %s K", formatValue(e.temp))
		l.Entries = []Category{catSolid, catLiquid, catGas, catStateUnknown}
	case ByDiscovery:
		l.Reference = fmt.Sprintf("Reference year: %d", e.year)
		l.Entries = []Category{catBefore, catDuring, catAfter, catAncients, catDiscoveryUnknown}
	case ByOxidation:
		l.Entries = append(append([]Category{}, oxidationCategories...), catOxidationUnknown)
	case ByProperty:
		ref := e.propertyReference(e.scheme.Property)
		unit := ""
		if p, ok := store.PropertyByName(e.scheme.Property); ok && p.Unit != "" {
			unit = " " + p.Unit
		}
		l.Reference = fmt.Sprintf("Reference %s: %s%s", e.scheme.Label(), formatValue(ref), unit)
		l.Entries = []Category{catLess, catEqual, catGreater, catPropertyUnknown}
	}
	return l
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
