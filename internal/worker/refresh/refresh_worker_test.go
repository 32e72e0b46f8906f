package refresh_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MitxelSantos/dashboard-casos-fa/internal/domain"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/usecase"
	"github.com/MitxelSantos/dashboard-casos-fa/internal/worker/refresh"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetMetrics(ctx context.Context, criteriaKey string) (*domain.Metrics, error) {
	args := m.Called(ctx, criteriaKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Metrics), args.Error(1)
}

func (m *MockCacheRepository) SetMetrics(ctx context.Context, criteriaKey string, metrics *domain.Metrics, ttl time.Duration) error {
	args := m.Called(ctx, criteriaKey, metrics, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.Statistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.Statistics, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) InvalidateDerived(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCaseRepository is a mock of CaseRepository
type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) GetAll(ctx context.Context) ([]domain.CaseRecord, int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CaseRecord), args.Int(1), args.Error(2)
}

// MockEpizootiaRepository is a mock of EpizootiaRepository
type MockEpizootiaRepository struct {
	mock.Mock
}

func (m *MockEpizootiaRepository) GetAll(ctx context.Context) ([]domain.EpizootiaRecord, int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.EpizootiaRecord), args.Int(1), args.Error(2)
}

// MockGeographyRepository is a mock of GeographyRepository
type MockGeographyRepository struct {
	mock.Mock
}

func (m *MockGeographyRepository) GetAll(ctx context.Context) (*domain.Geography, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Geography), args.Error(1)
}

func newDatasetUseCase() (*usecase.DatasetUseCase, *MockCaseRepository) {
	mockCases := &MockCaseRepository{}
	mockCases.On("GetAll", mock.Anything).Return([]domain.CaseRecord{
		{ID: 1, Municipio: "Ibagué", MunicipioNorm: "IBAGUE", Outcome: domain.OutcomeAlive},
	}, 0, nil)

	mockEpi := &MockEpizootiaRepository{}
	mockEpi.On("GetAll", mock.Anything).Return([]domain.EpizootiaRecord{}, 0, nil)

	mockGeo := &MockGeographyRepository{}
	mockGeo.On("GetAll", mock.Anything).Return(domain.NewGeography(), nil)

	return usecase.NewDatasetUseCase(mockCases, mockEpi, mockGeo, zap.NewNop()), mockCases
}

func TestSnapshotRefreshWorker_Name(t *testing.T) {
	datasetUC, _ := newDatasetUseCase()
	w := refresh.NewSnapshotRefreshWorker(
		&MockStreamRepository{},
		&MockCacheRepository{},
		datasetUC,
		"surveillance-group",
		zap.NewNop(),
	)

	assert.Equal(t, "snapshot-refresh", w.Name())
	assert.Equal(t, "surveillance-group", w.ConsumerGroup())
}

func TestSnapshotRefreshWorker_ProcessesRefreshEvent(t *testing.T) {
	datasetUC, _ := newDatasetUseCase()

	msgChan := make(chan domain.StreamMessage, 1)

	event := domain.RefreshEvent{Source: "import-pipeline", ImportedAt: time.Now()}
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	msgChan <- domain.StreamMessage{ID: "1-0", Data: string(payload)}

	mockStream := &MockStreamRepository{}
	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamSurveillanceRefresh, "grp").Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, domain.StreamSurveillanceRefresh, "grp", mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil)

	published := make(chan domain.RefreshDoneEvent, 1)
	mockStream.On("PublishToStream", mock.Anything, domain.StreamSurveillanceDone, mock.Anything).
		Run(func(args mock.Arguments) {
			published <- args.Get(2).(domain.RefreshDoneEvent)
		}).Return(nil)

	acked := make(chan string, 1)
	mockStream.On("AckMessage", mock.Anything, domain.StreamSurveillanceRefresh, "grp", "1-0").
		Run(func(args mock.Arguments) {
			acked <- args.String(3)
		}).Return(nil)

	mockCache := &MockCacheRepository{}
	mockCache.On("InvalidateDerived", mock.Anything).Return(nil)

	w := refresh.NewSnapshotRefreshWorker(mockStream, mockCache, datasetUC, "grp", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workerDone := make(chan struct{})
	go func() {
		_ = w.Start(ctx)
		close(workerDone)
	}()

	select {
	case done := <-published:
		assert.Empty(t, done.Error)
		assert.Equal(t, int64(1), done.SnapshotVersion)
		assert.Equal(t, 1, done.TotalCasos)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for refresh result")
	}

	select {
	case id := <-acked:
		assert.Equal(t, "1-0", id)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for ack")
	}

	// The new snapshot is visible to readers.
	snap := datasetUC.Snapshot()
	require.NotNil(t, snap)
	assert.Equal(t, int64(1), snap.Version)

	mockCache.AssertCalled(t, "InvalidateDerived", mock.Anything)

	require.NoError(t, w.Stop())
	select {
	case <-workerDone:
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestSnapshotRefreshWorker_CorruptMessageIsAcked(t *testing.T) {
	datasetUC, _ := newDatasetUseCase()

	msgChan := make(chan domain.StreamMessage, 1)
	msgChan <- domain.StreamMessage{ID: "2-0", Data: "{not json"}

	mockStream := &MockStreamRepository{}
	mockStream.On("CreateConsumerGroup", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockStream.On("ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return((<-chan domain.StreamMessage)(msgChan), nil)

	acked := make(chan string, 1)
	mockStream.On("AckMessage", mock.Anything, domain.StreamSurveillanceRefresh, "grp", "2-0").
		Run(func(args mock.Arguments) {
			acked <- args.String(3)
		}).Return(nil)

	w := refresh.NewSnapshotRefreshWorker(mockStream, &MockCacheRepository{}, datasetUC, "grp", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() { _ = w.Start(ctx) }()

	select {
	case <-acked:
	case <-time.After(3 * time.Second):
		t.Fatal("corrupt message was not acked")
	}

	// No reload happened: the snapshot was never loaded.
	assert.Nil(t, datasetUC.Snapshot())
	mockStream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)

	require.NoError(t, w.Stop())
}
