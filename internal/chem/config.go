package chem

import (
	"fmt"
	"strings"
)

// nobleGases maps the six noble-gas core substitution points to their
// symbols. A configuration for Z beyond one of these is abbreviated to
// "[Sym] ..." with only the orbitals past the core spelled out.
var nobleGases = []struct {
	z      int
	symbol string
}{
	{2, "He"},
	{10, "Ne"},
	{18, "Ar"},
	{36, "Kr"},
	{54, "Xe"},
	{86, "Rn"},
}

// aufbauExceptions overrides the naive filling order for the elements whose
// measured ground state deviates from it. Keyed by atomic number.
var aufbauExceptions = map[int]string{
	24:  "[Ar] 4s-1 3d-5",
	29:  "[Ar] 4s-1 3d-10",
	41:  "[Kr] 5s-1 4d-4",
	42:  "[Kr] 5s-1 4d-5",
	44:  "[Kr] 5s-1 4d-7",
	45:  "[Kr] 5s-1 4d-8",
	46:  "[Kr] 4d-10",
	47:  "[Kr] 5s-1 4d-10",
	57:  "[Xe] 6s-2 5d-1",
	58:  "[Xe] 6s-2 4f-1 5d-1",
	64:  "[Xe] 6s-2 4f-7 5d-1",
	78:  "[Xe] 6s-1 4f-14 5d-9",
	79:  "[Xe] 6s-1 4f-14 5d-10",
	89:  "[Rn] 7s-2 6d-1",
	90:  "[Rn] 7s-2 6d-2",
	91:  "[Rn] 7s-2 5f-2 6d-1",
	92:  "[Rn] 7s-2 5f-3 6d-1",
	93:  "[Rn] 7s-2 5f-4 6d-1",
	96:  "[Rn] 7s-2 5f-7 6d-1",
	103: "[Rn] 7s-2 5f-14 7p-1",
}

// ElectronConfig derives the electron configuration label for z by walking
// the filling order, substituting the largest noble-gas core below z, and
// applying the exception table last so overrides win over naive filling.
func ElectronConfig(z int) (string, bool) {
	if z < 1 || z > MaxZ {
		return "", false
	}
	if cfg, ok := aufbauExceptions[z]; ok {
		return cfg, true
	}

	var parts []string
	start := 1
	for _, core := range nobleGases {
		if core.z < z {
			parts = []string{fmt.Sprintf("[%s]", core.symbol)}
			start = core.z + 1
		}
	}

	remaining := z - start + 1
	for _, r := range zRanges {
		if r.Max < start {
			continue
		}
		fill := r.Orbital.Degeneracy()
		if remaining < fill {
			fill = remaining
		}
		parts = append(parts, fmt.Sprintf("%s-%d", r.Orbital, fill))
		remaining -= fill
		if remaining == 0 {
			break
		}
	}
	return strings.Join(parts, " "), true
}
