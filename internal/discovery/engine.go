package discovery

import (
	"context"

	"go.uber.org/zap"

	"github.com/axlewave/leadgen-cli/internal/llm"
	"github.com/axlewave/leadgen-cli/internal/model"
	"github.com/axlewave/leadgen-cli/internal/profile"
	"github.com/axlewave/leadgen-cli/internal/prompts"
	"github.com/axlewave/leadgen-cli/internal/search"
)

// Engine discovers candidate company names for one discovery type by
// generating search queries, searching the web, extracting names with the
// text generation service, and filtering through the normalized-key dedup
// and competitor exclusion rules.
//
// Engine is stateless between calls: each Discover is a fresh run with its
// own seen-key set.
type Engine struct {
	gen         llm.Generator
	searcher    search.Searcher
	profiles    *profile.Provider
	prompts     *prompts.Provider
	maxPerQuery int
}

// NewEngine creates a discovery engine. maxPerQuery bounds results
// requested per search query (default 10).
func NewEngine(gen llm.Generator, searcher search.Searcher, profiles *profile.Provider, promptProvider *prompts.Provider, maxPerQuery int) *Engine {
	if maxPerQuery <= 0 {
		maxPerQuery = 10
	}
	return &Engine{
		gen:         gen,
		searcher:    searcher,
		profiles:    profiles,
		prompts:     promptProvider,
		maxPerQuery: maxPerQuery,
	}
}

// Discover returns up to maxCandidates deduplicated, competitor-filtered
// company names, in extraction order. Per-query failures are contained:
// they are logged, recorded as degradations, and the loop continues. The
// returned order determines downstream tie-breaks and enrichment priority.
func (e *Engine) Discover(ctx context.Context, dtype model.DiscoveryType, maxCandidates int) ([]string, []model.Degradation) {
	log := zap.L().With(zap.String("discovery_type", string(dtype)))
	log.Info("discovering candidates", zap.Int("max_candidates", maxCandidates))

	var degraded []model.Degradation

	profileText := e.profiles.Discovery(dtype)
	queries, note := e.generateQueries(ctx, profileText, dtype)
	if note != nil {
		degraded = append(degraded, *note)
	}

	exclusions := e.profiles.Competitors()
	seen := make(map[string]struct{})
	var names []string

	for _, query := range queries {
		if len(names) >= maxCandidates {
			break
		}

		results, err := e.searcher.Search(ctx, query, e.maxPerQuery)
		if err != nil {
			log.Warn("search failed, skipping query", zap.String("query", query), zap.Error(err))
			degraded = append(degraded, model.Degradation{Stage: "discovery_search", Detail: query, Reason: err.Error()})
			continue
		}
		if len(results) == 0 {
			continue
		}

		extracted, err := e.extractNames(ctx, results)
		if err != nil {
			log.Warn("extraction failed, skipping query", zap.String("query", query), zap.Error(err))
			degraded = append(degraded, model.Degradation{Stage: "discovery_extract", Detail: query, Reason: err.Error()})
			continue
		}

		accepted := 0
		for _, name := range extracted {
			if len(names) >= maxCandidates {
				break
			}
			if !ShouldInclude(name, seen, exclusions) {
				continue
			}
			seen[NormalizeKey(name)] = struct{}{}
			names = append(names, name)
			accepted++
		}
		log.Debug("query processed",
			zap.String("query", query),
			zap.Int("extracted", len(extracted)),
			zap.Int("accepted", accepted),
		)
	}

	if len(names) > maxCandidates {
		names = names[:maxCandidates]
	}
	log.Info("discovery complete", zap.Int("candidates", len(names)), zap.Int("degraded", len(degraded)))
	return names, degraded
}

// generateQueries asks the text generation service for targeted search
// queries. On any failure it falls back to the fixed per-type query list.
func (e *Engine) generateQueries(ctx context.Context, profileText string, dtype model.DiscoveryType) ([]string, *model.Degradation) {
	tmpl := prompts.CustomerDiscovery
	if dtype == model.DiscoverPartners {
		tmpl = prompts.PartnerDiscovery
	}
	prompt := e.prompts.Render(tmpl, map[string]string{"company_profile": profileText})

	resp, err := e.gen.GenerateStructured(ctx, prompt,
		"You are a B2B market research expert. Generate targeted search queries.")
	if err != nil {
		zap.L().Warn("query generation failed, using fallback queries", zap.Error(err))
		return FallbackQueries(dtype), &model.Degradation{Stage: "query_generation", Detail: string(dtype), Reason: err.Error()}
	}

	queries := stringSlice(resp["queries"])
	if len(queries) == 0 {
		zap.L().Warn("query generation returned no queries, using fallback")
		return FallbackQueries(dtype), &model.Degradation{Stage: "query_generation", Detail: string(dtype), Reason: "empty queries"}
	}

	if strategy, ok := resp["strategy"].(string); ok {
		zap.L().Debug("search strategy", zap.String("strategy", strategy))
	}
	return queries, nil
}

// extractNames asks the text generation service for company names found in
// formatted search results.
func (e *Engine) extractNames(ctx context.Context, results []search.Result) ([]string, error) {
	prompt := e.prompts.Render(prompts.CompanyExtraction, map[string]string{
		"search_results": search.FormatResults(results),
	})
	resp, err := e.gen.GenerateStructured(ctx, prompt,
		"You are a data extraction expert. Extract company names from text.")
	if err != nil {
		return nil, err
	}
	return stringSlice(resp["companies"]), nil
}

// FallbackQueries is the fixed, hand-authored query list used when query
// generation fails.
func FallbackQueries(dtype model.DiscoveryType) []string {
	if dtype == model.DiscoverPartners {
		return []string{
			"automotive payment processing API",
			"VIN data provider APIs",
			"vehicle valuation services API",
			"dealership software integration partners",
		}
	}
	return []string{
		"largest automotive dealership groups United States",
		"top car dealer groups by revenue",
		"multi-location franchise car dealerships",
		"automotive retail chains North America",
	}
}

// stringSlice coerces a decoded JSON value into a []string, dropping
// non-string and empty members.
func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
