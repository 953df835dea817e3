package store

import (
	"strconv"
	"strings"
)

// Find resolves a user query to an atomic number. Matching is tried in
// order: exact atomic number, exact symbol, exact name (all
// case-insensitive), then the lowest-Z element whose symbol or name starts
// with the query. Reports false when nothing matches; callers surface a
// message and leave state unchanged.
func (s *Store) Find(query string) (int, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(query); err == nil {
		if s.Valid(n) {
			return n, true
		}
		return 0, false
	}
	if z, ok := s.bySymbol[query]; ok {
		return z, true
	}
	if z, ok := s.byName[query]; ok {
		return z, true
	}

	for _, z := range s.zs {
		rec := s.records[z]
		if strings.HasPrefix(strings.ToLower(rec.Symbol), query) ||
			strings.HasPrefix(strings.ToLower(rec.Name), query) {
			return z, true
		}
	}
	return 0, false
}
