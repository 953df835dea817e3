package chem

// Convention selects the 2D shape the table is drawn in.
type Convention int

const (
	// Conventional hides the f-orbitals from the main rows and places the
	// lanthanide/actinide blocks on footer rows below the table.
	Conventional Convention = iota
	// Ordered inlines every orbital in strict atomic-number order.
	Ordered
)

func (c Convention) String() string {
	if c == Ordered {
		return "ordered"
	}
	return "conventional"
}

// ParseConvention maps a config string to a Convention. Unrecognized values
// fall back to Conventional.
func ParseConvention(value string) Convention {
	if value == "ordered" {
		return Ordered
	}
	return Conventional
}

// Slot is one entry of a layout row: either a real orbital or a padding
// marker. A padding slot contributes Orbital.Degeneracy() blank cells for
// column alignment; its period is 0 when it leads a footer row, which keeps
// the period label blank.
type Slot struct {
	Orbital Orbital
	Pad     bool
}

// Row is an ordered sequence of slots drawn on one table line.
type Row []Slot

func orb(period int, s Subshell) Slot { return Slot{Orbital: Orbital{period, s}} }
func pad(period int, s Subshell) Slot { return Slot{Orbital: Orbital{period, s}, Pad: true} }

// The layouts are hand-authored: they encode the redrawn 2D shape of the
// table and must stay consistent with the filling order above. Every real
// orbital appears exactly once per convention.
var conventionalRows = []Row{
	{orb(1, SubshellS)},
	{orb(2, SubshellS), pad(2, SubshellD), orb(2, SubshellP)},
	{orb(3, SubshellS), pad(3, SubshellD), orb(3, SubshellP)},
	{orb(4, SubshellS), orb(3, SubshellD), orb(4, SubshellP)},
	{orb(5, SubshellS), orb(4, SubshellD), orb(5, SubshellP)},
	{orb(6, SubshellS), orb(5, SubshellD), orb(6, SubshellP)},
	{orb(7, SubshellS), orb(6, SubshellD), orb(7, SubshellP)},
	{pad(0, SubshellS), orb(4, SubshellF)},
	{pad(0, SubshellS), orb(5, SubshellF)},
}

var orderedRows = []Row{
	{orb(1, SubshellS)},
	{orb(2, SubshellS), orb(2, SubshellP)},
	{orb(3, SubshellS), orb(3, SubshellP)},
	{orb(4, SubshellS), orb(3, SubshellD), orb(4, SubshellP)},
	{orb(5, SubshellS), orb(4, SubshellD), orb(5, SubshellP)},
	{orb(6, SubshellS), orb(4, SubshellF), orb(5, SubshellD), orb(6, SubshellP)},
	{orb(7, SubshellS), orb(5, SubshellF), orb(6, SubshellD), orb(7, SubshellP)},
}

// RowsFor returns the static layout for the convention. Callers must not
// mutate the result.
func RowsFor(c Convention) []Row {
	if c == Ordered {
		return orderedRows
	}
	return conventionalRows
}

// GroupRange is the inclusive group-number span a subshell covers in the
// header row. The f groups exist for column accounting but are not shown.
func GroupRange(s Subshell) (lo, hi int) {
	switch s {
	case SubshellS:
		return 1, 2
	case SubshellD:
		return 3, 12
	case SubshellP:
		return 13, 18
	case SubshellF:
		return 19, 32
	default:
		return 0, 0
	}
}

// BlockOrder is the subshell sequence used for the group-number header.
func BlockOrder(c Convention) []Subshell {
	if c == Ordered {
		return []Subshell{SubshellS, SubshellF, SubshellD, SubshellP}
	}
	return []Subshell{SubshellS, SubshellD, SubshellP}
}
