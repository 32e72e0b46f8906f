package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase/dto"
)

func TestUpdateFiltersRequest_ParseDates(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		req := dto.UpdateFiltersRequest{DateFrom: "2024-01-15", DateTo: "2024-06-30"}

		from, to, err := req.ParseDates()
		require.NoError(t, err)
		require.NotNil(t, from)
		require.NotNil(t, to)

		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *from)
		// The upper bound covers the whole day.
		assert.True(t, to.After(time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)))
		assert.True(t, to.Before(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("open bounds", func(t *testing.T) {
		from, to, err := dto.UpdateFiltersRequest{}.ParseDates()
		require.NoError(t, err)
		assert.Nil(t, from)
		assert.Nil(t, to)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, _, err := dto.UpdateFiltersRequest{DateFrom: "15/01/2024"}.ParseDates()
		assert.Error(t, err)
	})
}

func TestInteractionRequest_ToDomain(t *testing.T) {
	req := dto.InteractionRequest{
		TimestampMs: 1717243200000,
		Lat:         4.4389,
		Lon:         -75.2322,
		Feature:     &dto.FeaturePayload{Kind: "municipio", Name: "Ibagué"},
	}

	ev := req.ToDomain()

	assert.Equal(t, time.UnixMilli(1717243200000), ev.Timestamp)
	require.NotNil(t, ev.Feature)
	assert.Equal(t, domain.FeatureMunicipio, ev.Feature.Kind)
	assert.Equal(t, "Ibagué", ev.Feature.Name)

	// A tap outside any feature carries no feature.
	bare := dto.InteractionRequest{TimestampMs: 1}.ToDomain()
	assert.Nil(t, bare.Feature)
}
