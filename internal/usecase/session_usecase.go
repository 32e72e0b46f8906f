package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/config"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain/repository"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/errors"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/pkg/normalizer"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase/dto"
)

// Session - sincronizador de una sesión del dashboard: único dueño del
// criterio de filtros y del estado de navegación vigentes. El mutex
// serializa los eventos: cada mutación se procesa completa (recalcular
// vista y métricas incluido) antes de aceptar la siguiente, y ningún
// llamador observa un estado a medio actualizar. Sesiones concurrentes
// son instancias independientes, sin estado mutable compartido.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	criteria domain.FilterCriteria
	nav      domain.NavigationState
	view     domain.FilteredView
	metrics  domain.Metrics
	resolver *InteractionResolver

	lastActive time.Time
}

// SessionUseCase administra las sesiones y orquesta el ciclo
// criterio → vista filtrada → métricas de cada una.
type SessionUseCase struct {
	datasets  *DatasetUseCase
	cacheRepo repository.CacheRepository
	logger    *zap.Logger

	thresholds domain.RiskThresholds
	tapWindow  time.Duration
	sessionTTL time.Duration
	maxActive  int
	metricsTTL time.Duration

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewSessionUseCase - creación del SessionUseCase.
func NewSessionUseCase(
	datasets *DatasetUseCase,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	dashboardCfg config.DashboardConfig,
	metricsTTL time.Duration,
) *SessionUseCase {
	return &SessionUseCase{
		datasets:  datasets,
		cacheRepo: cacheRepo,
		logger:    logger,
		thresholds: domain.RiskThresholds{
			Medium: dashboardCfg.RiskMediumThreshold,
			High:   dashboardCfg.RiskHighThreshold,
		},
		tapWindow:  dashboardCfg.DoubleTapWindow,
		sessionTTL: dashboardCfg.SessionTTL,
		maxActive:  dashboardCfg.MaxSessions,
		metricsTTL: metricsTTL,
		sessions:   make(map[uuid.UUID]*Session),
	}
}

// CreateSession abre una sesión en la vista departamental.
func (uc *SessionUseCase) CreateSession(ctx context.Context) (*dto.SessionState, error) {
	snap := uc.datasets.Snapshot()
	if snap == nil {
		return nil, errors.ErrInternalServer.WithDetails(map[string]interface{}{
			"reason": "dataset not loaded yet",
		})
	}

	uc.mu.Lock()
	uc.purgeExpiredLocked()
	if len(uc.sessions) >= uc.maxActive {
		uc.mu.Unlock()
		return nil, errors.ErrSessionLimit
	}

	s := &Session{
		ID:         uuid.New(),
		nav:        domain.InitialNavigation(),
		resolver:   NewInteractionResolver(uc.tapWindow),
		lastActive: time.Now(),
	}
	uc.sessions[s.ID] = s
	uc.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	uc.recomputeLocked(ctx, s, snap)

	uc.logger.Info("Dashboard session created", zap.String("session_id", s.ID.String()))
	state := uc.stateLocked(s, snap)
	return &state, nil
}

// State devuelve la navegación y el criterio vigentes.
func (uc *SessionUseCase) State(ctx context.Context, id uuid.UUID) (*dto.SessionState, error) {
	s, snap, err := uc.acquire(id)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	state := uc.stateLocked(s, snap)
	return &state, nil
}

// Data devuelve la vista filtrada vigente para los renderizadores.
func (uc *SessionUseCase) Data(ctx context.Context, id uuid.UUID) (*dto.FilteredDataResponse, error) {
	s, _, err := uc.acquire(id)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return &dto.FilteredDataResponse{
		Casos:      s.view.Casos,
		Epizootias: s.view.Epizootias,
		TotalCasos: len(s.view.Casos),
		TotalEpi:   len(s.view.Epizootias),
	}, nil
}

// Metrics devuelve las métricas vigentes.
func (uc *SessionUseCase) Metrics(ctx context.Context, id uuid.UUID) (*domain.Metrics, error) {
	s, _, err := uc.acquire(id)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	m := s.metrics
	return &m, nil
}

// UpdateFilters - cambio de filtros desde el sidebar. Si la dimensión de
// ubicación cambió por fuera del mapa, el estado de navegación se
// rederiva del criterio para mantener ambas representaciones en sincronía.
// Ante un criterio inválido se conserva el último estado válido.
func (uc *SessionUseCase) UpdateFilters(ctx context.Context, id uuid.UUID, req dto.UpdateFiltersRequest) (*dto.SessionState, error) {
	s, snap, err := uc.acquire(id)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	from, to, err := req.ParseDates()
	if err != nil {
		return nil, err
	}

	municipio := normalizer.Normalize(req.Municipio)
	vereda := normalizer.NormalizeVereda(req.Vereda)

	criteria, err := domain.NewFilterCriteria(municipio, vereda, from, to, req.Sexo, req.GrupoEdad)
	if err != nil {
		return nil, err
	}

	// La ubicación del sidebar también debe existir en la referencia.
	if criteria.Municipio != "" && !snap.Geography.HasMunicipio(criteria.Municipio) {
		return nil, errors.ErrUnknownTarget.WithDetails(map[string]interface{}{
			"target": req.Municipio,
		})
	}
	if criteria.Vereda != "" && !snap.Geography.HasVereda(criteria.Municipio, criteria.Vereda) {
		return nil, errors.ErrUnknownTarget.WithDetails(map[string]interface{}{
			"target":    req.Vereda,
			"municipio": req.Municipio,
		})
	}

	s.criteria = criteria
	if !locationEqual(s.nav, criteria) {
		s.nav = domain.FromCriteria(criteria)
	}
	uc.recomputeLocked(ctx, s, snap)

	state := uc.stateLocked(s, snap)
	return &state, nil
}

// Interact - resuelve un evento de mapa y aplica la transición que
// corresponda. Un clic simple sólo informa; un doble clic desciende y
// reescribe la dimensión de ubicación del criterio.
func (uc *SessionUseCase) Interact(ctx context.Context, id uuid.UUID, event domain.MapEvent) (*dto.InteractionResponse, error) {
	s, snap, err := uc.acquire(id)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	if event.Feature != nil {
		event.Feature.Name = normalizeFeatureName(*event.Feature)
	}

	intent := s.resolver.Resolve(s.nav.Level, event)

	resp := &dto.InteractionResponse{Intent: string(intent.Type)}

	switch intent.Type {
	case IntentShowInfo:
		resp.Info = uc.featureInfoLocked(s, snap, *intent.Feature)

	case IntentDrillDown:
		nav, derr := s.nav.DrillDown(snap.Geography, intent.Feature.Name)
		if derr != nil {
			// Estado intacto; el error llega al usuario como aviso.
			return nil, derr
		}
		s.nav = nav
		s.criteria = nav.ApplyToCriteria(s.criteria)
		uc.recomputeLocked(ctx, s, snap)
	}

	resp.Session = uc.stateLocked(s, snap)
	return resp, nil
}

// DrillUp - asciende un nivel y sincroniza el criterio.
func (uc *SessionUseCase) DrillUp(ctx context.Context, id uuid.UUID) (*dto.SessionState, error) {
	s, snap, err := uc.acquire(id)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	s.nav = s.nav.DrillUp()
	s.criteria = s.nav.ApplyToCriteria(s.criteria)
	uc.recomputeLocked(ctx, s, snap)

	state := uc.stateLocked(s, snap)
	return &state, nil
}

// ResetNavigation - vuelve a la vista departamental con la ubicación
// limpia, desde cualquier estado.
func (uc *SessionUseCase) ResetNavigation(ctx context.Context, id uuid.UUID) (*dto.SessionState, error) {
	s, snap, err := uc.acquire(id)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	s.nav = s.nav.Reset()
	s.criteria = s.nav.ApplyToCriteria(s.criteria)
	uc.recomputeLocked(ctx, s, snap)

	state := uc.stateLocked(s, snap)
	return &state, nil
}

// DeleteSession cierra una sesión.
func (uc *SessionUseCase) DeleteSession(id uuid.UUID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.sessions[id]; !ok {
		return errors.ErrSessionNotFound
	}
	delete(uc.sessions, id)
	uc.logger.Info("Dashboard session closed", zap.String("session_id", id.String()))
	return nil
}

// acquire busca la sesión, marca actividad y la devuelve bloqueada
// junto con el snapshot vigente.
func (uc *SessionUseCase) acquire(id uuid.UUID) (*Session, *domain.DatasetSnapshot, error) {
	uc.mu.RLock()
	s, ok := uc.sessions[id]
	uc.mu.RUnlock()
	if !ok {
		return nil, nil, errors.ErrSessionNotFound
	}

	snap := uc.datasets.Snapshot()
	if snap == nil {
		return nil, nil, errors.ErrInternalServer.WithDetails(map[string]interface{}{
			"reason": "dataset not loaded yet",
		})
	}

	s.mu.Lock()
	s.lastActive = time.Now()
	return s, snap, nil
}

// recomputeLocked - recalcula vista y métricas bajo el lock de la
// sesión, de modo que ambas queden consistentes con el criterio antes
// de devolver el control. El cache de métricas es mejor esfuerzo: un
// fallo de Redis se registra y se sigue con el cálculo local.
func (uc *SessionUseCase) recomputeLocked(ctx context.Context, s *Session, snap *domain.DatasetSnapshot) {
	s.view = domain.ApplyFilters(s.criteria, snap.Casos, snap.Epizootias)

	key := criteriaKey(snap.Version, s.criteria)
	if cached, err := uc.cacheRepo.GetMetrics(ctx, key); err == nil && cached != nil {
		s.metrics = *cached
		return
	} else if err != nil {
		uc.logger.Warn("Metrics cache read failed", zap.Error(err))
	}

	s.metrics = domain.ComputeMetrics(s.view, uc.thresholds)

	if err := uc.cacheRepo.SetMetrics(ctx, key, &s.metrics, uc.metricsTTL); err != nil {
		uc.logger.Warn("Metrics cache write failed", zap.Error(err))
	}
}

func (uc *SessionUseCase) stateLocked(s *Session, snap *domain.DatasetSnapshot) dto.SessionState {
	return dto.SessionState{
		SessionID:   s.ID.String(),
		Level:       s.nav.Level,
		Municipio:   s.nav.Municipio,
		Vereda:      s.nav.Vereda,
		Breadcrumbs: s.nav.Breadcrumbs(snap.Geography),
		Criteria:    s.criteria,
	}
}

// featureInfoLocked - atributos de la entidad clicada para el popup:
// conteos bajo el criterio vigente restringido a esa entidad.
func (uc *SessionUseCase) featureInfoLocked(s *Session, snap *domain.DatasetSnapshot, feature domain.MapFeature) *dto.FeatureInfo {
	scoped := s.criteria
	switch feature.Kind {
	case domain.FeatureMunicipio:
		scoped = scoped.WithLocation(feature.Name, "")
	case domain.FeatureVereda:
		if s.nav.Municipio == "" {
			return &dto.FeatureInfo{Kind: feature.Kind, Name: feature.Name}
		}
		scoped = scoped.WithLocation(s.nav.Municipio, feature.Name)
	}

	view := domain.ApplyFilters(scoped, snap.Casos, snap.Epizootias)
	name := feature.Name
	if feature.Kind == domain.FeatureMunicipio {
		name = snap.Geography.DisplayName(feature.Name)
	} else if s.nav.Municipio != "" {
		name = snap.Geography.VeredaDisplayName(s.nav.Municipio, feature.Name)
	}

	return &dto.FeatureInfo{
		Kind:       feature.Kind,
		Name:       name,
		Casos:      len(view.Casos),
		Epizootias: len(view.Epizootias),
	}
}

// purgeExpiredLocked - retira sesiones inactivas; requiere uc.mu.
func (uc *SessionUseCase) purgeExpiredLocked() {
	cutoff := time.Now().Add(-uc.sessionTTL)
	for id, s := range uc.sessions {
		if s.lastActive.Before(cutoff) {
			delete(uc.sessions, id)
			uc.logger.Debug("Expired session purged", zap.String("session_id", id.String()))
		}
	}
}

func locationEqual(nav domain.NavigationState, fc domain.FilterCriteria) bool {
	derived := domain.FromCriteria(fc)
	return nav.Level == derived.Level &&
		nav.Municipio == derived.Municipio &&
		nav.Vereda == derived.Vereda
}

func normalizeFeatureName(f domain.MapFeature) string {
	if f.Kind == domain.FeatureVereda {
		return normalizer.NormalizeVereda(f.Name)
	}
	return normalizer.Normalize(f.Name)
}

// criteriaKey - clave estable de cache para un criterio y una versión
// de snapshot.
func criteriaKey(version int64, fc domain.FilterCriteria) string {
	parts := []string{
		fmt.Sprintf("v%d", version),
		fc.Municipio,
		fc.Vereda,
		formatDate(fc.DateFrom),
		formatDate(fc.DateTo),
		fc.Sex,
		fc.AgeGroup,
	}
	return strings.Join(parts, "|")
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
