// Package scoring assigns fit scores to enriched company profiles and
// produces the ranked lead lists.
package scoring

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/axlewave/leadgen-cli/internal/llm"
	"github.com/axlewave/leadgen-cli/internal/model"
	"github.com/axlewave/leadgen-cli/internal/profile"
	"github.com/axlewave/leadgen-cli/internal/prompts"
)

// Engine scores enriched profiles against the company context and ranks
// them. Scoring failures degrade to a zero score rather than dropping the
// company.
type Engine struct {
	gen      llm.Generator
	profiles *profile.Provider
	prompts  *prompts.Provider
	topN     int
}

// NewEngine creates a scoring engine. topN bounds the ranked output
// (default 10).
func NewEngine(gen llm.Generator, profiles *profile.Provider, promptProvider *prompts.Provider, topN int) *Engine {
	if topN <= 0 {
		topN = 10
	}
	return &Engine{gen: gen, profiles: profiles, prompts: promptProvider, topN: topN}
}

// ScoreOne evaluates a single profile for the given discovery type. The fit
// score is clamped to [0, 10]. On any generation failure the company keeps a
// default zero score so it still appears at the bottom of the ranking.
func (e *Engine) ScoreOne(ctx context.Context, p model.CompanyProfile, dtype model.DiscoveryType) model.ScoreResult {
	log := zap.L().With(
		zap.String("component", "scoring"),
		zap.String("company", p.Name),
		zap.String("discovery_type", string(dtype)),
	)

	tmpl := prompts.CustomerScoring
	system := "You are a B2B sales analyst. Evaluate customer fit and respond with JSON."
	if dtype == model.DiscoverPartners {
		tmpl = prompts.PartnerScoring
		system = "You are a partnership strategy analyst. Evaluate partner fit and respond with JSON."
	}

	prompt := e.prompts.Render(tmpl, map[string]string{
		"company_profile": e.profiles.Discovery(dtype),
		"company_name":    p.Name,
		"website":         p.Website,
		"headquarters":    p.Headquarters,
		"size":            p.Size,
		"description":     p.Description,
	})

	resp, err := e.gen.GenerateStructured(ctx, prompt, system)
	if err != nil {
		log.Warn("scoring failed, assigning default score", zap.Error(err))
		return defaultScore(p.Name)
	}

	result := parseScore(p.Name, resp, dtype)
	log.Debug("company scored",
		zap.Float64("fit_score", result.FitScore),
		zap.Bool("recommended", result.Recommended),
	)
	return result
}

// ScoreAndRank scores every profile and returns the top N leads sorted by
// fit score descending. The sort is stable, so equal scores keep the input
// order. Profiles with an empty name are skipped.
func (e *Engine) ScoreAndRank(ctx context.Context, profiles []model.CompanyProfile, dtype model.DiscoveryType) []model.RankedLead {
	leads := make([]model.RankedLead, 0, len(profiles))
	for _, p := range profiles {
		if p.Name == "" {
			zap.L().Warn("skipping unnamed profile during scoring")
			continue
		}
		score := e.ScoreOne(ctx, p, dtype)
		leads = append(leads, model.MergeLead(p, score))
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].FitScore > leads[j].FitScore
	})

	if len(leads) > e.topN {
		leads = leads[:e.topN]
	}
	return leads
}

// parseScore maps a structured response onto a ScoreResult, clamping the
// score and collecting the type-specific extras.
func parseScore(name string, resp map[string]any, dtype model.DiscoveryType) model.ScoreResult {
	result := defaultScore(name)

	if v, ok := resp["fit_score"].(float64); ok {
		result.FitScore = clampScore(v)
	}
	if v, ok := resp["rationale"].(string); ok && v != "" {
		result.Rationale = v
	}
	if v, ok := resp["recommended"].(bool); ok {
		result.Recommended = v
	}

	extraKeys := []string{"key_strengths", "potential_objections"}
	if dtype == model.DiscoverPartners {
		extraKeys = []string{"integration_type", "value_proposition"}
	}
	for _, key := range extraKeys {
		if v, ok := resp[key]; ok && v != nil {
			if result.Extra == nil {
				result.Extra = make(map[string]any)
			}
			result.Extra[key] = v
		}
	}
	return result
}

func defaultScore(name string) model.ScoreResult {
	return model.ScoreResult{
		CompanyName: name,
		FitScore:    0,
		Rationale:   "Unable to score company due to error",
		Recommended: false,
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
