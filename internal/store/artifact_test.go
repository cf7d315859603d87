package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlewave/leadgen-cli/internal/model"
)

func TestArtifactWriter(t *testing.T) {
	dir := t.TempDir()
	w := NewArtifactWriter(dir)

	result := &model.RunResult{
		Status:    model.RunStatusSuccess,
		Intent:    model.IntentCustomer,
		Timestamp: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Results: model.ResultSet{
			Customers: []model.RankedLead{{CompanyName: "AutoNation", FitScore: 8.5}},
		},
	}

	path, err := w.Write(result)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "customer_20260831_120000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Top-level keys are the discovery types, not the run envelope.
	var loaded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Contains(t, loaded, "customers")
	assert.NotContains(t, loaded, "partners")
	assert.NotContains(t, loaded, "status")

	var set model.ResultSet
	require.NoError(t, json.Unmarshal(data, &set))
	require.Len(t, set.Customers, 1)
	assert.Equal(t, "AutoNation", set.Customers[0].CompanyName)
}

func TestArtifactWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	w := NewArtifactWriter(dir)

	result := &model.RunResult{
		Status:    model.RunStatusSuccess,
		Intent:    model.IntentBoth,
		Timestamp: time.Now().UTC(),
	}

	path, err := w.Write(result)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestArtifactWriter_FilenameUsesIntent(t *testing.T) {
	w := NewArtifactWriter(t.TempDir())
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	for _, intent := range []model.IntentType{model.IntentCustomer, model.IntentPartner, model.IntentBoth} {
		path, err := w.Write(&model.RunResult{Status: model.RunStatusSuccess, Intent: intent, Timestamp: ts})
		require.NoError(t, err)
		assert.Equal(t, string(intent)+"_20260102_030405.json", filepath.Base(path))
	}
}
