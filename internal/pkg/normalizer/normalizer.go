// Package normalizer unifica nombres de municipios y veredas entre las
// fuentes de datos (casos, epizootias, geografía de referencia), que llegan
// con tildes, mayúsculas y espaciado inconsistentes.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Correcciones puntuales detectadas en los datos fuente.
var replacements = map[string]string{
	"VILLARICA": "VILLARRICA",
}

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize - forma canónica de un nombre de lugar: sin tildes,
// mayúsculas, espacios colapsados. Cadena vacía si no hay nombre útil.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	switch strings.ToLower(name) {
	case "nan", "none", "null":
		return ""
	}

	out, _, err := transform.String(stripAccents, name)
	if err != nil {
		out = name
	}

	out = strings.ToUpper(out)
	out = strings.Join(strings.Fields(out), " ")

	if fixed, ok := replacements[out]; ok {
		return fixed
	}
	return out
}

// NormalizeVereda - normalización específica para veredas: además de la
// forma canónica, remueve prefijos de registro ("VEREDA", "VDA").
func NormalizeVereda(name string) string {
	out := Normalize(name)
	for _, prefix := range []string{"VEREDA ", "VDA ", "VER "} {
		if strings.HasPrefix(out, prefix) {
			out = strings.TrimPrefix(out, prefix)
			break
		}
	}
	return strings.TrimSpace(out)
}
