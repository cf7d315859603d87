// Package enrich turns candidate company names into structured profiles
// using web search plus text generation extraction.
package enrich

import (
	"context"

	"go.uber.org/zap"

	"github.com/axlewave/leadgen-cli/internal/llm"
	"github.com/axlewave/leadgen-cli/internal/model"
	"github.com/axlewave/leadgen-cli/internal/prompts"
	"github.com/axlewave/leadgen-cli/internal/search"
)

// Resolver enriches company names into profiles. Every failure mode yields a
// minimal profile so a candidate is never dropped during enrichment.
type Resolver struct {
	gen      llm.Generator
	searcher search.Searcher
	prompts  *prompts.Provider
}

// NewResolver creates a company profile resolver.
func NewResolver(gen llm.Generator, searcher search.Searcher, promptProvider *prompts.Provider) *Resolver {
	return &Resolver{gen: gen, searcher: searcher, prompts: promptProvider}
}

// Enrich builds a profile for one company name. Search failures, empty
// search results, and extraction failures all degrade to MinimalProfile.
func (r *Resolver) Enrich(ctx context.Context, name string) model.CompanyProfile {
	log := zap.L().With(zap.String("component", "enrich"), zap.String("company", name))

	results, err := r.searcher.CompanyInfo(ctx, name)
	if err != nil {
		log.Warn("company info search failed", zap.Error(err))
		return MinimalProfile(name)
	}
	if len(results) == 0 {
		log.Debug("no search results for company")
		return MinimalProfile(name)
	}

	prompt := r.prompts.Render(prompts.CompanyEnrichment, map[string]string{
		"company_name":   name,
		"search_results": search.FormatResults(results),
	})
	resp, err := r.gen.GenerateStructured(ctx, prompt,
		"You are a business intelligence analyst. Extract structured company data as JSON.")
	if err != nil {
		log.Warn("profile extraction failed", zap.Error(err))
		return MinimalProfile(name)
	}

	profile := parseProfile(name, resp)
	log.Debug("company enriched", zap.Float64("confidence", profile.Confidence))
	return profile
}

// EnrichBatch enriches names one at a time, preserving input order. The
// returned slice always has one profile per input name.
func (r *Resolver) EnrichBatch(ctx context.Context, names []string) []model.CompanyProfile {
	profiles := make([]model.CompanyProfile, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, r.Enrich(ctx, name))
	}
	return profiles
}

// MinimalProfile is the degraded profile used when enrichment cannot
// produce real data. Confidence 0.0 marks it downstream.
func MinimalProfile(name string) model.CompanyProfile {
	return model.CompanyProfile{
		Name:          name,
		Website:       "unknown",
		Headquarters:  "unknown",
		Locations:     []string{},
		Size:          "unknown",
		SizeReasoning: "Unable to determine from search results",
		Description:   "Information not available",
		Confidence:    0.0,
	}
}

// parseProfile maps a structured response onto a CompanyProfile. Missing or
// mistyped fields fall back to the minimal placeholders; the input name wins
// over whatever name the extraction reports.
func parseProfile(name string, resp map[string]any) model.CompanyProfile {
	profile := MinimalProfile(name)

	if v, ok := resp["website"].(string); ok && v != "" {
		profile.Website = v
	}
	if v, ok := resp["headquarters"].(string); ok && v != "" {
		profile.Headquarters = v
	}
	if v, ok := resp["locations"].([]any); ok {
		locations := make([]string, 0, len(v))
		for _, loc := range v {
			if s, ok := loc.(string); ok && s != "" {
				locations = append(locations, s)
			}
		}
		profile.Locations = locations
	}
	if v, ok := resp["size"].(string); ok && v != "" {
		profile.Size = v
	}
	if v, ok := resp["size_reasoning"].(string); ok && v != "" {
		profile.SizeReasoning = v
	}
	if v, ok := resp["description"].(string); ok && v != "" {
		profile.Description = v
	}
	if v, ok := resp["confidence"].(float64); ok {
		profile.Confidence = clamp01(v)
	}
	return profile
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
