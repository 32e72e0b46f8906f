package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase"
)

func TestDatasetUseCase_LoadEnrichesGeography(t *testing.T) {
	logger := zap.NewNop()

	// CUNDAY appears in the data but not in the reference sheet.
	mockCases := &MockCaseRepository{}
	mockCases.On("GetAll", mock.Anything).Return([]domain.CaseRecord{
		{ID: 1, Municipio: "Cunday", MunicipioNorm: "CUNDAY", Vereda: "La Aurora", VeredaNorm: "LA AURORA"},
	}, 2, nil)

	mockEpi := &MockEpizootiaRepository{}
	mockEpi.On("GetAll", mock.Anything).Return([]domain.EpizootiaRecord{
		{ID: 1, Municipio: "Prado", MunicipioNorm: "PRADO", Category: domain.CategoryPositive},
	}, 1, nil)

	geo := domain.NewGeography()
	geo.AddMunicipio("IBAGUE", "Ibagué", "Centro")
	mockGeo := &MockGeographyRepository{}
	mockGeo.On("GetAll", mock.Anything).Return(geo, nil)

	uc := usecase.NewDatasetUseCase(mockCases, mockEpi, mockGeo, logger)

	snap, err := uc.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), snap.Version)
	assert.True(t, snap.Geography.HasMunicipio("CUNDAY"))
	assert.True(t, snap.Geography.HasVereda("CUNDAY", "LA AURORA"))
	assert.True(t, snap.Geography.HasMunicipio("PRADO"))
	assert.Equal(t, 2, snap.DroppedCasos)
	assert.Equal(t, 1, snap.DroppedEpizootias)

	stats := snap.Stats()
	assert.Equal(t, int64(1), stats.SnapshotVersion)
	assert.Equal(t, 1, stats.TotalCasos)
	assert.Equal(t, 1, stats.TotalEpizootias)
	assert.Equal(t, 3, stats.Municipios)
	assert.Equal(t, 2, stats.DroppedCasos)
}

func TestDatasetUseCase_ReloadBumpsVersion(t *testing.T) {
	uc, _ := newSessionFixtureDataset(t)

	first, err := uc.Load(context.Background())
	require.NoError(t, err)
	second, err := uc.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Version+1, second.Version)
	// Readers always see the latest published snapshot.
	assert.Equal(t, second, uc.Snapshot())
}

// newSessionFixtureDataset builds a DatasetUseCase over the shared
// session fixtures without loading it.
func newSessionFixtureDataset(t *testing.T) (*usecase.DatasetUseCase, *MockGeographyRepository) {
	t.Helper()

	mockCases := &MockCaseRepository{}
	mockCases.On("GetAll", mock.Anything).Return(fixtureCasos(), 0, nil)
	mockEpi := &MockEpizootiaRepository{}
	mockEpi.On("GetAll", mock.Anything).Return(fixtureEpizootias(), 0, nil)
	mockGeo := &MockGeographyRepository{}
	mockGeo.On("GetAll", mock.Anything).Return(fixtureGeography(), nil)

	return usecase.NewDatasetUseCase(mockCases, mockEpi, mockGeo, zap.NewNop()), mockGeo
}
