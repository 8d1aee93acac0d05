package pgsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Seguro de flota", "Seguro de flota"},
		{"percent", "Descuento 10%", `Descuento 10\%`},
		{"underscore", "cuota_mensual", `cuota\_mensual`},
		{"backslash", `ruta C:\taxi`, `ruta C:\\taxi`},
		{"mixed", `50%_de\todo`, `50\%\_de\\todo`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeLikePrefix(tt.input))
		})
	}
}

// A description containing LIKE metacharacters must not turn into a wildcard
// pattern once the '%' suffix is appended.
func TestEscapeLikePrefix_LeavesNoUnescapedWildcards(t *testing.T) {
	pattern := escapeLikePrefix("Descuento 10%") + "%"

	assert.Equal(t, `Descuento 10\%%`, pattern)
	// Only the appended suffix wildcard survives unescaped.
	assert.Equal(t, 1, strings.Count(strings.ReplaceAll(pattern, `\%`, ""), "%"))
}
