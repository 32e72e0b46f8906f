package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/normalizer"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips accents and uppercases", "Ibagué", "IBAGUE"},
		{"already canonical", "IBAGUE", "IBAGUE"},
		{"collapses internal whitespace", "  san   sebastián  de mariquita ", "SAN SEBASTIAN DE MARIQUITA"},
		{"known misspelling is corrected", "Villarica", "VILLARRICA"},
		{"correct spelling passes through", "Villarrica", "VILLARRICA"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"spreadsheet nan marker", "nan", ""},
		{"spreadsheet none marker", "None", ""},
		{"ñ is preserved", "Ñoño", "ÑONO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizer.Normalize(tt.input))
		})
	}
}

func TestNormalizeVereda(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strips VEREDA prefix", "Vereda El Totumo", "EL TOTUMO"},
		{"strips VDA prefix", "Vda La Flor", "LA FLOR"},
		{"dotted VDA is not a prefix", "VDA. no aplica", "VDA. NO APLICA"},
		{"strips VER prefix", "Ver Chapetón", "CHAPETON"},
		{"no prefix", "El Totumo", "EL TOTUMO"},
		{"prefix alone in name body stays", "La Vereda Grande", "LA VEREDA GRANDE"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizer.NormalizeVereda(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Ibagué", "Vereda El Totumo", "Villarica", "  Cunday  "}
	for _, in := range inputs {
		once := normalizer.Normalize(in)
		assert.Equal(t, once, normalizer.Normalize(once), "input %q", in)
	}
}
