package domain

import "sort"

// Municipio - entrada de la geografía de referencia: un municipio del
// Tolima con sus veredas. Las claves de ambos mapas son nombres
// normalizados; el valor conserva el nombre para mostrar.
type Municipio struct {
	Name    string            `json:"name"`
	Veredas map[string]string `json:"veredas"`
	Region  string            `json:"region,omitempty"`
}

// Geography - jerarquía de referencia departamento → municipio → vereda.
// Se construye una vez por snapshot de datos y es de solo lectura.
type Geography struct {
	municipios map[string]*Municipio
}

// NewGeography - geografía vacía lista para poblar durante la carga.
func NewGeography() *Geography {
	return &Geography{municipios: make(map[string]*Municipio)}
}

// AddMunicipio registra un municipio si no existe aún.
func (g *Geography) AddMunicipio(norm, display, region string) {
	if norm == "" {
		return
	}
	if _, ok := g.municipios[norm]; !ok {
		g.municipios[norm] = &Municipio{
			Name:    display,
			Veredas: make(map[string]string),
			Region:  region,
		}
	}
}

// AddVereda registra una vereda bajo su municipio. El municipio debe
// haber sido registrado antes; de lo contrario la vereda se descarta.
func (g *Geography) AddVereda(municipioNorm, veredaNorm, display string) {
	if veredaNorm == "" {
		return
	}
	m, ok := g.municipios[municipioNorm]
	if !ok {
		return
	}
	if _, exists := m.Veredas[veredaNorm]; !exists {
		m.Veredas[veredaNorm] = display
	}
}

// HasMunicipio - true si el nombre normalizado existe en la referencia.
func (g *Geography) HasMunicipio(norm string) bool {
	_, ok := g.municipios[norm]
	return ok
}

// HasVereda - true si la vereda pertenece al municipio dado.
func (g *Geography) HasVereda(municipioNorm, veredaNorm string) bool {
	m, ok := g.municipios[municipioNorm]
	if !ok {
		return false
	}
	_, ok = m.Veredas[veredaNorm]
	return ok
}

// Municipios - nombres normalizados ordenados alfabéticamente.
func (g *Geography) Municipios() []string {
	names := make([]string, 0, len(g.municipios))
	for norm := range g.municipios {
		names = append(names, norm)
	}
	sort.Strings(names)
	return names
}

// VeredasOf - veredas normalizadas de un municipio, ordenadas.
// Nil si el municipio no existe.
func (g *Geography) VeredasOf(municipioNorm string) []string {
	m, ok := g.municipios[municipioNorm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(m.Veredas))
	for norm := range m.Veredas {
		names = append(names, norm)
	}
	sort.Strings(names)
	return names
}

// DisplayName - nombre para mostrar de un municipio, o el normalizado
// si no está en la referencia.
func (g *Geography) DisplayName(municipioNorm string) string {
	if m, ok := g.municipios[municipioNorm]; ok && m.Name != "" {
		return m.Name
	}
	return municipioNorm
}

// VeredaDisplayName - nombre para mostrar de una vereda.
func (g *Geography) VeredaDisplayName(municipioNorm, veredaNorm string) string {
	if m, ok := g.municipios[municipioNorm]; ok {
		if display, ok := m.Veredas[veredaNorm]; ok && display != "" {
			return display
		}
	}
	return veredaNorm
}

// RegionOf - región del municipio, vacío si no está en la referencia.
func (g *Geography) RegionOf(municipioNorm string) string {
	if m, ok := g.municipios[municipioNorm]; ok {
		return m.Region
	}
	return ""
}

// MunicipioCount - cantidad de municipios en la referencia.
func (g *Geography) MunicipioCount() int {
	return len(g.municipios)
}
