package store

import "sort"

// SortedBy returns all atomic numbers ordered by the numeric value of the
// named property. Elements whose value is NA (or unparseable) always sort
// to the far end of the listing, whichever direction is requested; ties
// break by atomic number.
func (s *Store) SortedBy(property string, descending bool) []int {
	type entry struct {
		z       int
		value   float64
		defined bool
	}
	entries := make([]entry, 0, len(s.zs))
	for _, z := range s.zs {
		v, ok := s.NumericProperty(z, property)
		entries = append(entries, entry{z: z, value: v, defined: ok})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.defined != b.defined {
			return a.defined
		}
		if !a.defined {
			return a.z < b.z
		}
		if a.value != b.value {
			if descending {
				return a.value > b.value
			}
			return a.value < b.value
		}
		return a.z < b.z
	})
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.z
	}
	return out
}
