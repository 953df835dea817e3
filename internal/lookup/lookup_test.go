package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	assert.Equal(t,
		"https://en.wikipedia.org/wiki/Gold",
		URL("https://en.wikipedia.org/wiki/%n", "Au", "Gold"))

	assert.Equal(t,
		"https://example.com/?sym=Au&name=Gold",
		URL("https://example.com/?sym=%s&name=%n", "Au", "Gold"))

	// Names with spaces are escaped.
	assert.Equal(t,
		"https://example.com/Mercury%20%28element%29",
		URL("https://example.com/%n", "Hg", "Mercury (element)"))

	// Templates without tokens pass through unchanged.
	assert.Equal(t, "https://example.com/", URL("https://example.com/", "Au", "Gold"))
}
