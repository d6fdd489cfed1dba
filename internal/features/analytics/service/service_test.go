package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/analytics/domain"
	refdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/reference/domain"
	shipdomain "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/domain"
	shipservice "github.com/WalkerVVV/TransitIQ-Enhanced/internal/features/shipments/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockIngester is a mock implementation of ports.Ingester.
type MockIngester struct {
	mock.Mock
}

func (m *MockIngester) Ingest(ctx context.Context, filename string, r io.Reader) (*shipdomain.RecordSet, error) {
	args := m.Called(ctx, filename, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipdomain.RecordSet), args.Error(1)
}

func (m *MockIngester) IngestRemote(ctx context.Context, url string) (*shipdomain.RecordSet, string, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*shipdomain.RecordSet), args.String(1), args.Error(2)
}

// MockDemoSource is a mock implementation of ports.DemoSource.
type MockDemoSource struct {
	mock.Mock
}

func (m *MockDemoSource) Dataset(name string) (*shipdomain.RecordSet, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipdomain.RecordSet), args.Error(1)
}

// MockResultStore is a mock implementation of ports.ResultStore.
type MockResultStore struct {
	mock.Mock
}

func (m *MockResultStore) Save(ctx context.Context, analysis *domain.Analysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *MockResultStore) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

func newTestService() (*AnalysisServiceImpl, *MockIngester, *MockDemoSource, *MockResultStore) {
	ingest, demo, store := new(MockIngester), new(MockDemoSource), new(MockResultStore)
	svc := NewAnalysisService(ingest, demo, NewEngine(refdomain.Default(), nil), store, nil)
	return svc, ingest, demo, store
}

// TestAnalysisService_AnalyzeUpload_Success verifies ingest, analysis and storage.
func TestAnalysisService_AnalyzeUpload_Success(t *testing.T) {
	svc, ingest, _, store := newTestService()
	rs := recordSet(shipment(), shipment(zone("1")))

	ingest.On("Ingest", mock.Anything, "march.csv", mock.Anything).Return(rs, nil).Once()
	store.On("Save", mock.Anything, mock.MatchedBy(func(a *domain.Analysis) bool {
		return a.RecordSet == rs && a.Report.ID != ""
	})).Return(nil).Once()

	analysis, err := svc.AnalyzeUpload(context.Background(), "march.csv", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, domain.SourceUpload, analysis.Report.Source)
	assert.Equal(t, "march.csv", analysis.Report.Filename)
	assert.Equal(t, 2, analysis.Report.TotalShipments)
	assert.Equal(t, domain.StatusComputed, analysis.Report.Results.ZoneDistribution.Status)

	ingest.AssertExpectations(t)
	store.AssertExpectations(t)
}

// TestAnalysisService_AnalyzeUpload_IngestError verifies ingestion failures produce no result.
func TestAnalysisService_AnalyzeUpload_IngestError(t *testing.T) {
	svc, ingest, _, store := newTestService()
	ingest.On("Ingest", mock.Anything, "report.pdf", mock.Anything).
		Return(nil, shipservice.ErrUnsupportedFormat).Once()

	analysis, err := svc.AnalyzeUpload(context.Background(), "report.pdf", strings.NewReader(""))
	assert.Nil(t, analysis)
	assert.ErrorIs(t, err, shipservice.ErrUnsupportedFormat)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// TestAnalysisService_AnalyzeUpload_StoreError verifies a store failure is non-fatal.
func TestAnalysisService_AnalyzeUpload_StoreError(t *testing.T) {
	svc, ingest, _, store := newTestService()
	ingest.On("Ingest", mock.Anything, mock.Anything, mock.Anything).Return(recordSet(shipment()), nil)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	analysis, err := svc.AnalyzeUpload(context.Background(), "march.xlsx", strings.NewReader(""))
	require.NoError(t, err)
	assert.NotEmpty(t, analysis.Report.ID)
}

// TestAnalysisService_AnalyzeRemote verifies the downloaded filename is recorded.
func TestAnalysisService_AnalyzeRemote(t *testing.T) {
	svc, ingest, _, store := newTestService()
	ingest.On("IngestRemote", mock.Anything, "https://exports.example.com/q1").
		Return(recordSet(shipment()), "q1.csv", nil).Once()
	store.On("Save", mock.Anything, mock.Anything).Return(nil)

	analysis, err := svc.AnalyzeRemote(context.Background(), "https://exports.example.com/q1")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceRemote, analysis.Report.Source)
	assert.Equal(t, "q1.csv", analysis.Report.Filename)
}

// TestAnalysisService_AnalyzeRemote_Error verifies fetch failures pass through.
func TestAnalysisService_AnalyzeRemote_Error(t *testing.T) {
	svc, ingest, _, _ := newTestService()
	ingest.On("IngestRemote", mock.Anything, mock.Anything).Return(nil, "", shipservice.ErrRemoteFetch)

	_, err := svc.AnalyzeRemote(context.Background(), "https://exports.example.com/q1")
	assert.ErrorIs(t, err, shipservice.ErrRemoteFetch)
}

// TestAnalysisService_AnalyzeDemo verifies demo datasets are analyzed and stored.
func TestAnalysisService_AnalyzeDemo(t *testing.T) {
	svc, _, demo, store := newTestService()
	demo.On("Dataset", "sample").Return(newDemo().Generate(100), nil).Once()
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	analysis, err := svc.AnalyzeDemo(context.Background(), "sample")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceDemo, analysis.Report.Source)
	assert.Equal(t, 100, analysis.Report.TotalShipments)
	assert.Equal(t, domain.StatusComputed, analysis.Report.Results.CarrierPerformance.Status)
	store.AssertExpectations(t)
}

// TestAnalysisService_AnalyzeDemo_UnknownDataset verifies the dataset error passes through.
func TestAnalysisService_AnalyzeDemo_UnknownDataset(t *testing.T) {
	svc, _, demo, _ := newTestService()
	demo.On("Dataset", "huge").Return(nil, shipservice.ErrUnknownDataset)

	_, err := svc.AnalyzeDemo(context.Background(), "huge")
	assert.ErrorIs(t, err, shipservice.ErrUnknownDataset)
}

// TestAnalysisService_Get verifies lookups and not-found wrapping.
func TestAnalysisService_Get(t *testing.T) {
	svc, _, _, store := newTestService()
	stored := &domain.Analysis{Report: &domain.Report{ID: "abc"}}
	store.On("Get", mock.Anything, "abc").Return(stored, nil)
	store.On("Get", mock.Anything, "nope").Return(nil, domain.ErrReportNotFound)

	got, err := svc.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Same(t, stored, got)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}
