package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase"
)

var tapBase = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func tapOn(kind domain.FeatureKind, name string, offset time.Duration) domain.MapEvent {
	return domain.MapEvent{
		Timestamp: tapBase.Add(offset),
		Feature:   &domain.MapFeature{Kind: kind, Name: name},
	}
}

func tapOutside(offset time.Duration) domain.MapEvent {
	return domain.MapEvent{Timestamp: tapBase.Add(offset)}
}

func TestInteractionResolver_SingleTapShowsInfo(t *testing.T) {
	r := usecase.NewInteractionResolver(400 * time.Millisecond)

	intent := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 0))

	assert.Equal(t, usecase.IntentShowInfo, intent.Type)
	assert.Equal(t, "IBAGUE", intent.Feature.Name)
}

func TestInteractionResolver_DoubleTapDrillsDown(t *testing.T) {
	r := usecase.NewInteractionResolver(400 * time.Millisecond)

	first := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 0))
	second := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 300*time.Millisecond))

	assert.Equal(t, usecase.IntentShowInfo, first.Type)
	assert.Equal(t, usecase.IntentDrillDown, second.Type)
	assert.Equal(t, "IBAGUE", second.Feature.Name)
}

func TestInteractionResolver_TapsOutsideWindowStayIndependent(t *testing.T) {
	r := usecase.NewInteractionResolver(400 * time.Millisecond)

	first := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 0))
	second := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 401*time.Millisecond))

	assert.Equal(t, usecase.IntentShowInfo, first.Type)
	assert.Equal(t, usecase.IntentShowInfo, second.Type)
}

func TestInteractionResolver_WindowBoundaryIsInclusive(t *testing.T) {
	r := usecase.NewInteractionResolver(400 * time.Millisecond)

	r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 0))
	second := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 400*time.Millisecond))

	assert.Equal(t, usecase.IntentDrillDown, second.Type)
}

func TestInteractionResolver_DifferentFeatureRestartsCycle(t *testing.T) {
	r := usecase.NewInteractionResolver(400 * time.Millisecond)

	r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 0))
	second := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "CUNDAY", 200*time.Millisecond))
	third := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "CUNDAY", 350*time.Millisecond))

	// The tap on another feature is a fresh first tap.
	assert.Equal(t, usecase.IntentShowInfo, second.Type)
	assert.Equal(t, usecase.IntentDrillDown, third.Type)
}

func TestInteractionResolver_TripleTapFiresOneDrillDown(t *testing.T) {
	r := usecase.NewInteractionResolver(400 * time.Millisecond)

	first := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 0))
	second := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 100*time.Millisecond))
	third := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 200*time.Millisecond))

	assert.Equal(t, usecase.IntentShowInfo, first.Type)
	assert.Equal(t, usecase.IntentDrillDown, second.Type)
	// The pending tap was consumed: the third tap starts over.
	assert.Equal(t, usecase.IntentShowInfo, third.Type)
}

func TestInteractionResolver_TapOutsideClearsPending(t *testing.T) {
	r := usecase.NewInteractionResolver(400 * time.Millisecond)

	r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 0))
	outside := r.Resolve(domain.LevelDepartment, tapOutside(100*time.Millisecond))
	third := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureMunicipio, "IBAGUE", 200*time.Millisecond))

	assert.Equal(t, usecase.IntentNone, outside.Type)
	assert.Equal(t, usecase.IntentShowInfo, third.Type)
}

func TestInteractionResolver_NonDrillableDoubleTapShowsInfo(t *testing.T) {
	r := usecase.NewInteractionResolver(400 * time.Millisecond)

	// A vereda feature is not reachable from the department level.
	r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureVereda, "EL TOTUMO", 0))
	second := r.Resolve(domain.LevelDepartment, tapOn(domain.FeatureVereda, "EL TOTUMO", 200*time.Millisecond))

	assert.Equal(t, usecase.IntentShowInfo, second.Type)

	// Same for a municipio double-tap at the vereda level.
	r2 := usecase.NewInteractionResolver(400 * time.Millisecond)
	r2.Resolve(domain.LevelVereda, tapOn(domain.FeatureMunicipio, "IBAGUE", 0))
	atBottom := r2.Resolve(domain.LevelVereda, tapOn(domain.FeatureMunicipio, "IBAGUE", 200*time.Millisecond))

	assert.Equal(t, usecase.IntentShowInfo, atBottom.Type)
}
