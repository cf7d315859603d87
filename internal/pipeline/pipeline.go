// Package pipeline orchestrates the lead generation stages: intent
// classification, candidate discovery, enrichment, and scoring.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/axlewave/leadgen-cli/internal/model"
	"github.com/axlewave/leadgen-cli/internal/store"
)

// Classifier maps user input to a discovery intent.
type Classifier interface {
	Classify(ctx context.Context, userInput string) model.Intent
}

// Discoverer finds candidate company names for one discovery type.
type Discoverer interface {
	Discover(ctx context.Context, dtype model.DiscoveryType, maxCandidates int) ([]string, []model.Degradation)
}

// Enricher resolves company names into profiles, preserving input order.
type Enricher interface {
	EnrichBatch(ctx context.Context, names []string) []model.CompanyProfile
}

// Ranker scores enriched profiles and returns the top leads.
type Ranker interface {
	ScoreAndRank(ctx context.Context, profiles []model.CompanyProfile, dtype model.DiscoveryType) []model.RankedLead
}

// Pipeline runs the stages in sequence and persists the outcome. The store
// and artifact writer may be nil; persistence failures never fail a run.
type Pipeline struct {
	classifier    Classifier
	discoverer    Discoverer
	enricher      Enricher
	ranker        Ranker
	store         store.Store
	artifacts     *store.ArtifactWriter
	maxCandidates int
}

// New creates a Pipeline with all stage dependencies. maxCandidates bounds
// discovery per discovery type (default 50).
func New(
	classifier Classifier,
	discoverer Discoverer,
	enricher Enricher,
	ranker Ranker,
	st store.Store,
	artifacts *store.ArtifactWriter,
	maxCandidates int,
) *Pipeline {
	if maxCandidates <= 0 {
		maxCandidates = 50
	}
	return &Pipeline{
		classifier:    classifier,
		discoverer:    discoverer,
		enricher:      enricher,
		ranker:        ranker,
		store:         st,
		artifacts:     artifacts,
		maxCandidates: maxCandidates,
	}
}

// GenerateLeads executes a full run for userInput. A non-empty override
// skips classification and forces that intent. The returned RunResult is
// always well formed; the only error status is an unclear intent, which
// stops the run before any discovery work.
func (p *Pipeline) GenerateLeads(ctx context.Context, userInput string, override model.IntentType) *model.RunResult {
	log := zap.L().With(zap.String("component", "pipeline"))
	start := time.Now().UTC()

	var resolved model.Intent
	if override != "" {
		resolved = model.Intent{Type: override, Confidence: 1.0, Reasoning: "user override"}
		log.Info("intent overridden", zap.String("intent", string(override)))
	} else {
		resolved = p.classifier.Classify(ctx, userInput)
	}

	if resolved.Type == model.IntentUnclear {
		log.Warn("intent unclear, stopping run", zap.String("reasoning", resolved.Reasoning))
		result := &model.RunResult{
			Status:    model.RunStatusError,
			Message:   "Could not determine what you are looking for. Please specify whether you want potential customers, integration partners, or both.",
			Intent:    model.IntentUnclear,
			Timestamp: start,
		}
		p.persist(ctx, result)
		return result
	}

	result := &model.RunResult{
		Status:    model.RunStatusSuccess,
		Intent:    resolved.Type,
		Timestamp: start,
	}

	for _, dtype := range resolved.Type.DiscoveryTypes() {
		leads := p.runBranch(ctx, dtype)
		switch dtype {
		case model.DiscoverCustomers:
			result.Results.Customers = leads
		case model.DiscoverPartners:
			result.Results.Partners = leads
		}
	}

	log.Info("run complete",
		zap.String("intent", string(resolved.Type)),
		zap.Int("customers", len(result.Results.Customers)),
		zap.Int("partners", len(result.Results.Partners)),
		zap.Duration("elapsed", time.Since(start)),
	)

	p.persist(ctx, result)
	return result
}

// runBranch executes discovery, enrichment, and ranking for one discovery
// type.
func (p *Pipeline) runBranch(ctx context.Context, dtype model.DiscoveryType) []model.RankedLead {
	log := zap.L().With(zap.String("component", "pipeline"), zap.String("discovery_type", string(dtype)))

	names, degraded := p.discoverer.Discover(ctx, dtype, p.maxCandidates)
	for _, d := range degraded {
		log.Warn("degraded stage",
			zap.String("stage", d.Stage),
			zap.String("detail", d.Detail),
			zap.String("reason", d.Reason),
		)
	}
	if len(names) == 0 {
		log.Warn("no candidates discovered")
		return nil
	}

	profiles := p.enricher.EnrichBatch(ctx, names)
	return p.ranker.ScoreAndRank(ctx, profiles, dtype)
}

// persist records the run and writes the result artifact. Failures are
// logged and do not affect the returned result.
func (p *Pipeline) persist(ctx context.Context, result *model.RunResult) {
	log := zap.L().With(zap.String("component", "pipeline"))

	var artifactPath string
	if p.artifacts != nil && result.Status == model.RunStatusSuccess {
		path, err := p.artifacts.Write(result)
		if err != nil {
			log.Warn("artifact write failed", zap.Error(err))
		} else {
			artifactPath = path
			log.Info("artifact written", zap.String("path", path))
		}
	}

	if p.store == nil {
		return
	}
	run, err := p.store.CreateRun(ctx, result.Intent)
	if err != nil {
		log.Warn("run record create failed", zap.Error(err))
		return
	}
	if err := p.store.CompleteRun(ctx, run.ID, result, artifactPath); err != nil {
		log.Warn("run record complete failed", zap.Error(err))
	}
}

// FormatReport renders a RunResult as a human-readable plain text report.
func FormatReport(result *model.RunResult) string {
	var b strings.Builder

	b.WriteString("Lead Generation Report\n")
	b.WriteString("======================\n")
	fmt.Fprintf(&b, "Intent: %s\n", result.Intent)
	fmt.Fprintf(&b, "Generated: %s\n", result.Timestamp.Format(time.RFC3339))

	if result.Status == model.RunStatusError {
		fmt.Fprintf(&b, "\nStatus: error\n%s\n", result.Message)
		return b.String()
	}

	writeLeadSection(&b, "Potential Customers", result.Results.Customers)
	writeLeadSection(&b, "Potential Partners", result.Results.Partners)
	return b.String()
}

func writeLeadSection(b *strings.Builder, title string, leads []model.RankedLead) {
	if len(leads) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s (%d)\n%s\n", title, len(leads), strings.Repeat("-", len(title)))
	for i, lead := range leads {
		marker := " "
		if lead.Recommended {
			marker = "*"
		}
		fmt.Fprintf(b, "%2d. %s %s (fit %.1f)\n", i+1, marker, lead.CompanyName, lead.FitScore)
		if lead.Website != "" && lead.Website != "unknown" {
			fmt.Fprintf(b, "      %s\n", lead.Website)
		}
		if lead.Headquarters != "" && lead.Headquarters != "unknown" {
			fmt.Fprintf(b, "      HQ: %s\n", lead.Headquarters)
		}
		if lead.Rationale != "" {
			fmt.Fprintf(b, "      %s\n", lead.Rationale)
		}
	}
}
