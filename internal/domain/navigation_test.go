package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeography() *Geography {
	geo := NewGeography()
	geo.AddMunicipio("IBAGUE", "Ibagué", "Centro")
	geo.AddMunicipio("VILLARRICA", "Villarrica", "Oriente")
	geo.AddVereda("IBAGUE", "EL TOTUMO", "El Totumo")
	geo.AddVereda("IBAGUE", "CHAPETON", "Chapetón")
	return geo
}

func TestNavigationState_DrillDown(t *testing.T) {
	geo := testGeography()

	t.Run("department to municipality", func(t *testing.T) {
		nav, err := InitialNavigation().DrillDown(geo, "IBAGUE")
		require.NoError(t, err)
		assert.Equal(t, LevelMunicipality, nav.Level)
		assert.Equal(t, "IBAGUE", nav.Municipio)
		assert.Empty(t, nav.Vereda)
	})

	t.Run("municipality to vereda", func(t *testing.T) {
		nav, err := InitialNavigation().DrillDown(geo, "IBAGUE")
		require.NoError(t, err)
		nav, err = nav.DrillDown(geo, "EL TOTUMO")
		require.NoError(t, err)
		assert.Equal(t, LevelVereda, nav.Level)
		assert.Equal(t, "IBAGUE", nav.Municipio)
		assert.Equal(t, "EL TOTUMO", nav.Vereda)
	})

	t.Run("unknown municipio fails and state is unchanged", func(t *testing.T) {
		start := InitialNavigation()
		nav, err := start.DrillDown(geo, "NO EXISTE")
		assert.Error(t, err)
		assert.Equal(t, start, nav)
	})

	t.Run("vereda of another municipio is unreachable", func(t *testing.T) {
		nav, err := InitialNavigation().DrillDown(geo, "VILLARRICA")
		require.NoError(t, err)
		_, err = nav.DrillDown(geo, "EL TOTUMO")
		assert.Error(t, err)
	})

	t.Run("vereda level is terminal", func(t *testing.T) {
		nav := NavigationState{Level: LevelVereda, Municipio: "IBAGUE", Vereda: "EL TOTUMO"}
		_, err := nav.DrillDown(geo, "EL TOTUMO")
		assert.Error(t, err)
	})
}

func TestNavigationState_DrillUp(t *testing.T) {
	nav := NavigationState{Level: LevelVereda, Municipio: "IBAGUE", Vereda: "EL TOTUMO"}

	nav = nav.DrillUp()
	assert.Equal(t, LevelMunicipality, nav.Level)
	assert.Equal(t, "IBAGUE", nav.Municipio)
	assert.Empty(t, nav.Vereda)

	nav = nav.DrillUp()
	assert.Equal(t, LevelDepartment, nav.Level)
	assert.Empty(t, nav.Municipio)

	// No-op at the top.
	assert.Equal(t, nav, nav.DrillUp())
}

func TestNavigationState_Reset(t *testing.T) {
	nav := NavigationState{Level: LevelVereda, Municipio: "IBAGUE", Vereda: "EL TOTUMO"}
	assert.Equal(t, InitialNavigation(), nav.Reset())
	assert.Equal(t, InitialNavigation(), InitialNavigation().Reset())
}

func TestNavigationState_ApplyToCriteria(t *testing.T) {
	base, err := NewFilterCriteria("", "", datePtr(2024, 1, 1), nil, "Masculino", "")
	require.NoError(t, err)

	t.Run("municipality sets only municipio", func(t *testing.T) {
		nav := NavigationState{Level: LevelMunicipality, Municipio: "IBAGUE"}
		fc := nav.ApplyToCriteria(base)
		assert.Equal(t, "IBAGUE", fc.Municipio)
		assert.Empty(t, fc.Vereda)
		// Non-location dimensions survive navigation.
		assert.Equal(t, "Masculino", fc.Sex)
		assert.NotNil(t, fc.DateFrom)
	})

	t.Run("vereda sets both", func(t *testing.T) {
		nav := NavigationState{Level: LevelVereda, Municipio: "IBAGUE", Vereda: "EL TOTUMO"}
		fc := nav.ApplyToCriteria(base)
		assert.Equal(t, "IBAGUE", fc.Municipio)
		assert.Equal(t, "EL TOTUMO", fc.Vereda)
	})

	t.Run("department clears location", func(t *testing.T) {
		withLoc := base.WithLocation("IBAGUE", "EL TOTUMO")
		fc := InitialNavigation().ApplyToCriteria(withLoc)
		assert.Empty(t, fc.Municipio)
		assert.Empty(t, fc.Vereda)
		assert.Equal(t, "Masculino", fc.Sex)
	})
}

func TestFromCriteria_RoundTrip(t *testing.T) {
	states := []NavigationState{
		InitialNavigation(),
		{Level: LevelMunicipality, Municipio: "IBAGUE"},
		{Level: LevelVereda, Municipio: "IBAGUE", Vereda: "EL TOTUMO"},
	}

	for _, state := range states {
		fc := state.ApplyToCriteria(FilterCriteria{})
		assert.Equal(t, state, FromCriteria(fc), "state %+v", state)
	}
}

func TestNavigationState_Breadcrumbs(t *testing.T) {
	geo := testGeography()

	assert.Equal(t, []string{"Tolima"}, InitialNavigation().Breadcrumbs(geo))

	nav := NavigationState{Level: LevelMunicipality, Municipio: "IBAGUE"}
	assert.Equal(t, []string{"Tolima", "Ibagué"}, nav.Breadcrumbs(geo))

	nav = NavigationState{Level: LevelVereda, Municipio: "IBAGUE", Vereda: "EL TOTUMO"}
	assert.Equal(t, []string{"Tolima", "Ibagué", "El Totumo"}, nav.Breadcrumbs(geo))
}
