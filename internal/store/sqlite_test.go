package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlewave/leadgen-cli/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func sampleResult(intent model.IntentType) *model.RunResult {
	return &model.RunResult{
		Status:    model.RunStatusSuccess,
		Intent:    intent,
		Timestamp: time.Now().UTC(),
		Results: model.ResultSet{
			Customers: []model.RankedLead{
				{CompanyName: "AutoNation", FitScore: 8.5, Recommended: true},
				{CompanyName: "Penske", FitScore: 7.0},
			},
		},
	}
}

func TestCreateAndGetRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, model.IntentCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, model.IntentCustomer, got.Intent)
	assert.Equal(t, model.RunStatus("running"), got.Status)
	assert.Nil(t, got.Result)
}

func TestCompleteRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, model.IntentCustomer)
	require.NoError(t, err)

	result := sampleResult(model.IntentCustomer)
	require.NoError(t, st.CompleteRun(ctx, run.ID, result, "data/results/customer_20260831_120000.json"))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusSuccess, got.Status)
	assert.Equal(t, 2, got.CustomerCount)
	assert.Zero(t, got.PartnerCount)
	assert.Equal(t, "data/results/customer_20260831_120000.json", got.ArtifactPath)
	require.NotNil(t, got.Result)
	assert.Equal(t, "AutoNation", got.Result.Results.Customers[0].CompanyName)
}

func TestCompleteRun_UnknownID(t *testing.T) {
	st := newTestStore(t)
	err := st.CompleteRun(context.Background(), "missing", sampleResult(model.IntentCustomer), "")
	assert.Error(t, err)
}

func TestGetRun_NotFound(t *testing.T) {
	st := newTestStore(t)
	_, err := st.GetRun(context.Background(), "missing")
	assert.Error(t, err)
}

func TestListRuns(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	customer, err := st.CreateRun(ctx, model.IntentCustomer)
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, customer.ID, sampleResult(model.IntentCustomer), ""))

	_, err = st.CreateRun(ctx, model.IntentPartner)
	require.NoError(t, err)

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	succeeded, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusSuccess})
	require.NoError(t, err)
	require.Len(t, succeeded, 1)
	assert.Equal(t, customer.ID, succeeded[0].ID)

	partners, err := st.ListRuns(ctx, RunFilter{Intent: model.IntentPartner})
	require.NoError(t, err)
	assert.Len(t, partners, 1)

	limited, err := st.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
