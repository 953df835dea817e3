// Package chem holds the pure orbital model: the Aufbau filling order, the
// derived atomic-number ranges, electron configurations, and the static
// row layouts used to draw the periodic table.
package chem

import "fmt"

// MaxZ is the highest atomic number the tables cover. The filling order
// below must be extended before raising it.
const MaxZ = 118

// Subshell is one of the four subshell letters: 's', 'p', 'd' or 'f'.
type Subshell byte

const (
	SubshellS Subshell = 's'
	SubshellP Subshell = 'p'
	SubshellD Subshell = 'd'
	SubshellF Subshell = 'f'
)

// Degeneracy returns the electron capacity of the subshell type.
func (s Subshell) Degeneracy() int {
	switch s {
	case SubshellS:
		return 2
	case SubshellP:
		return 6
	case SubshellD:
		return 10
	case SubshellF:
		return 14
	default:
		return 0
	}
}

// Orbital is a (period, subshell) pair, e.g. 4s or 3d.
type Orbital struct {
	Period   int
	Subshell Subshell
}

func (o Orbital) String() string {
	return fmt.Sprintf("%d%c", o.Period, o.Subshell)
}

// Degeneracy returns the electron capacity of the orbital's subshell.
func (o Orbital) Degeneracy() int {
	return o.Subshell.Degeneracy()
}

// fillingOrder is the Aufbau sequence. It is the single source of truth for
// orbital ordering; the Z-range table below is derived from it at init.
var fillingOrder = []Orbital{
	{1, SubshellS},
	{2, SubshellS},
	{2, SubshellP},
	{3, SubshellS},
	{3, SubshellP},
	{4, SubshellS},
	{3, SubshellD},
	{4, SubshellP},
	{5, SubshellS},
	{4, SubshellD},
	{5, SubshellP},
	{6, SubshellS},
	{4, SubshellF},
	{5, SubshellD},
	{6, SubshellP},
	{7, SubshellS},
	{5, SubshellF},
	{6, SubshellD},
	{7, SubshellP},
}

// ZRange is the inclusive atomic-number span an orbital occupies.
type ZRange struct {
	Orbital Orbital
	Min     int
	Max     int
}

var zRanges = buildRanges()

func buildRanges() []ZRange {
	ranges := make([]ZRange, 0, len(fillingOrder))
	next := 1
	for _, orb := range fillingOrder {
		span := orb.Degeneracy()
		ranges = append(ranges, ZRange{Orbital: orb, Min: next, Max: next + span - 1})
		next += span
	}
	return ranges
}

// Ranges returns the orbital→Z-range table in filling order. The ranges
// partition [1, MaxZ] with no gaps; callers must not mutate the slice.
func Ranges() []ZRange {
	return zRanges
}

// RangeOf returns the Z span of the given orbital.
func RangeOf(orb Orbital) (ZRange, bool) {
	for _, r := range zRanges {
		if r.Orbital == orb {
			return r, true
		}
	}
	return ZRange{}, false
}

// OrbitalOf returns the orbital whose range contains z. It reports false
// only for z outside [1, MaxZ].
func OrbitalOf(z int) (Orbital, bool) {
	if z < 1 || z > MaxZ {
		return Orbital{}, false
	}
	lo, hi := 0, len(zRanges)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		r := zRanges[mid]
		switch {
		case z < r.Min:
			hi = mid - 1
		case z > r.Max:
			lo = mid + 1
		default:
			return r.Orbital, true
		}
	}
	return Orbital{}, false
}
