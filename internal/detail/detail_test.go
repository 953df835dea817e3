package detail

import (
	"strings"
	"testing"

	"github.com/hverma/elemental/internal/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestRefreshIsIdempotent(t *testing.T) {
	g := NewGenerator(openStore(t))

	if !g.Refresh(79, false) {
		t.Fatalf("first refresh should regenerate")
	}
	if g.Refresh(79, false) {
		t.Fatalf("refresh with unchanged element should be a no-op")
	}
	if got := g.Regenerations(); got != 1 {
		t.Fatalf("regenerations = %d, want 1", got)
	}

	if !g.Refresh(79, true) {
		t.Fatalf("forced refresh should regenerate")
	}
	if got := g.Regenerations(); got != 2 {
		t.Fatalf("regenerations = %d, want 2", got)
	}
}

func TestRefreshOnChange(t *testing.T) {
	g := NewGenerator(openStore(t))
	g.Refresh(1, false)
	if !g.Refresh(2, false) {
		t.Fatalf("refresh with a new element should regenerate")
	}
	if g.LastZ() != 2 {
		t.Fatalf("lastZ = %d, want 2", g.LastZ())
	}
}

func TestRefreshRejectsInvalidZ(t *testing.T) {
	g := NewGenerator(openStore(t))
	g.Refresh(79, false)
	if g.Refresh(0, false) || g.Refresh(500, true) {
		t.Fatalf("invalid atomic numbers must not regenerate")
	}
	if g.LastZ() != 79 {
		t.Fatalf("lastZ changed on invalid refresh")
	}
}

func TestContentSections(t *testing.T) {
	g := NewGenerator(openStore(t))
	g.Refresh(79, false)

	content := g.Content()
	for _, want := range []string{"Gold", "Au", "Properties", "Isotopes", "196.966570"} {
		if !strings.Contains(content, want) {
			t.Fatalf("content missing %q", want)
		}
	}

	props, ok := g.Anchor(AnchorProperties)
	if !ok {
		t.Fatalf("missing properties anchor")
	}
	isos, ok := g.Anchor(AnchorIsotopes)
	if !ok {
		t.Fatalf("missing isotopes anchor")
	}
	if props >= isos {
		t.Fatalf("properties anchor %d should precede isotopes anchor %d", props, isos)
	}
}

func TestExcludedPropertiesOmitRowsOnly(t *testing.T) {
	g := NewGenerator(openStore(t))
	g.SetExcluded([]string{"abundance", "discoverer"})
	g.Refresh(79, false)

	content := g.Content()
	if strings.Contains(content, "Crustal abundance") {
		t.Fatalf("excluded property still rendered")
	}
	if strings.Contains(content, "Discovered by") {
		t.Fatalf("excluded property still rendered")
	}
	// The isotope section is never affected by exclusions.
	if !strings.Contains(content, "196.966570") {
		t.Fatalf("isotope section missing after exclusion")
	}
}
