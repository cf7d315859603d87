package main

import (
	"github.com/rotisserie/eris"

	"github.com/axlewave/leadgen-cli/internal/discovery"
	"github.com/axlewave/leadgen-cli/internal/enrich"
	"github.com/axlewave/leadgen-cli/internal/intent"
	"github.com/axlewave/leadgen-cli/internal/llm"
	"github.com/axlewave/leadgen-cli/internal/pipeline"
	"github.com/axlewave/leadgen-cli/internal/profile"
	"github.com/axlewave/leadgen-cli/internal/prompts"
	"github.com/axlewave/leadgen-cli/internal/scoring"
	"github.com/axlewave/leadgen-cli/internal/search"
	"github.com/axlewave/leadgen-cli/internal/store"
)

func initStore() (store.Store, error) {
	st, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open store")
	}
	return st, nil
}

// buildPipeline wires the full stage graph from configuration.
func buildPipeline(st store.Store) (*pipeline.Pipeline, error) {
	gen, err := llm.New(llm.FromAppConfig(cfg.LLM))
	if err != nil {
		return nil, err
	}
	searcher, err := search.New(cfg.Search)
	if err != nil {
		return nil, err
	}

	promptProvider := prompts.NewProvider(cfg.Prompts.Dir)
	profileProvider := profile.NewProvider(cfg.Profile.ContextPath)

	classifier := intent.NewClassifier(gen, promptProvider)
	engine := discovery.NewEngine(gen, searcher, profileProvider, promptProvider, cfg.Search.MaxPerQuery)
	resolver := enrich.NewResolver(gen, searcher, promptProvider)
	ranker := scoring.NewEngine(gen, profileProvider, promptProvider, cfg.Pipeline.TopN)
	artifacts := store.NewArtifactWriter(cfg.Results.Dir)

	return pipeline.New(classifier, engine, resolver, ranker, st, artifacts, cfg.Pipeline.MaxCandidates), nil
}
