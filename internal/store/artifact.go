package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/axlewave/leadgen-cli/internal/model"
)

const artifactTimeFormat = "20060102_150405"

// ArtifactWriter persists run results as timestamped JSON documents in a
// results directory.
type ArtifactWriter struct {
	dir string
}

// NewArtifactWriter creates a writer rooted at dir.
func NewArtifactWriter(dir string) *ArtifactWriter {
	return &ArtifactWriter{dir: dir}
}

// Write serializes the ranked lists to <dir>/<intent>_<timestamp>.json and
// returns the written path. The document's top-level keys are the requested
// discovery types; run metadata lives in the filename and the run store. The
// directory is created on demand.
func (w *ArtifactWriter) Write(result *model.RunResult) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", eris.Wrap(err, "artifact: create results dir")
	}

	name := string(result.Intent) + "_" + result.Timestamp.Format(artifactTimeFormat) + ".json"
	path := filepath.Join(w.dir, name)

	data, err := json.MarshalIndent(result.Results, "", "  ")
	if err != nil {
		return "", eris.Wrap(err, "artifact: marshal result")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", eris.Wrap(err, "artifact: write file")
	}
	return path, nil
}
