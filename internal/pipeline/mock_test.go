package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/axlewave/leadgen-cli/internal/model"
	"github.com/axlewave/leadgen-cli/internal/store"
)

// --- Classifier mock ---

type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) Classify(ctx context.Context, userInput string) model.Intent {
	args := m.Called(ctx, userInput)
	return args.Get(0).(model.Intent)
}

// --- Discoverer mock ---

type mockDiscoverer struct {
	mock.Mock
}

func (m *mockDiscoverer) Discover(ctx context.Context, dtype model.DiscoveryType, maxCandidates int) ([]string, []model.Degradation) {
	args := m.Called(ctx, dtype, maxCandidates)
	var names []string
	if args.Get(0) != nil {
		names = args.Get(0).([]string)
	}
	var degraded []model.Degradation
	if args.Get(1) != nil {
		degraded = args.Get(1).([]model.Degradation)
	}
	return names, degraded
}

// --- Enricher mock ---

type mockEnricher struct {
	mock.Mock
}

func (m *mockEnricher) EnrichBatch(ctx context.Context, names []string) []model.CompanyProfile {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.CompanyProfile)
}

// --- Ranker mock ---

type mockRanker struct {
	mock.Mock
}

func (m *mockRanker) ScoreAndRank(ctx context.Context, profiles []model.CompanyProfile, dtype model.DiscoveryType) []model.RankedLead {
	args := m.Called(ctx, profiles, dtype)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.RankedLead)
}

// --- Store mock ---

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateRun(ctx context.Context, intent model.IntentType) (*model.Run, error) {
	args := m.Called(ctx, intent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Run), args.Error(1)
}

func (m *mockStore) CompleteRun(ctx context.Context, runID string, result *model.RunResult, artifactPath string) error {
	args := m.Called(ctx, runID, result, artifactPath)
	return args.Error(0)
}

func (m *mockStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Run), args.Error(1)
}

func (m *mockStore) ListRuns(ctx context.Context, filter store.RunFilter) ([]model.Run, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Run), args.Error(1)
}

func (m *mockStore) Migrate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
