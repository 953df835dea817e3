// Package classify maps atomic numbers to display categories under a
// runtime-switchable scheme, and describes each scheme's legend. Schemes
// are a tagged enum dispatched by one switch; the generic numeric scheme
// carries its property name explicitly.
package classify

import (
	"fmt"
	"strings"

	"github.com/hverma/elemental/internal/store"
)

// Kind enumerates the classification schemes.
type Kind int

const (
	ByGroup Kind = iota
	ByState
	ByDiscovery
	ByOxidation
	ByProperty
)

// Scheme is a classification choice. Property is set only for ByProperty.
type Scheme struct {
	Kind     Kind
	Property string
}

func (s Scheme) String() string {
	switch s.Kind {
	case ByGroup:
		return "group"
	case ByState:
		return "state"
	case ByDiscovery:
		return "discovery"
	case ByOxidation:
		return "oxidation"
	case ByProperty:
		return s.Property
	}
	return "unknown"
}

// Label is the human-readable scheme title used in the legend header.
func (s Scheme) Label() string {
	switch s.Kind {
	case ByGroup:
		return "Element group"
	case ByState:
		return "State of matter"
	case ByDiscovery:
		return "Discovery date"
	case ByOxidation:
		return "Oxidation state count"
	case ByProperty:
		if p, ok := store.PropertyByName(s.Property); ok {
			return p.Label
		}
		return s.Property
	}
	return "Unknown"
}

// ParseScheme resolves a config or flag value to a scheme. Named schemes
// take precedence; anything else must be a numeric property key.
func ParseScheme(value string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "group", "by-group", "":
		return Scheme{Kind: ByGroup}, nil
	case "state", "by-state":
		return Scheme{Kind: ByState}, nil
	case "discovery", "by-discovery":
		return Scheme{Kind: ByDiscovery}, nil
	case "oxidation", "by-oxidation":
		return Scheme{Kind: ByOxidation}, nil
	}
	name := strings.ToLower(strings.TrimSpace(value))
	if p, ok := store.PropertyByName(name); ok && p.Numeric {
		return Scheme{Kind: ByProperty, Property: name}, nil
	}
	return Scheme{}, fmt.Errorf("unknown classification scheme %q", value)
}
