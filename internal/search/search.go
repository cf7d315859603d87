// Package search provides the web search service consumed by the pipeline,
// with pluggable providers, client-side rate limiting, response caching,
// and bounded retries.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrSearch marks a web search transport or provider failure. Callers
// contain it at the component boundary; a failed query is skipped, never
// fatal to a run.
var ErrSearch = eris.New("search error")

// Result is a single web search hit.
type Result struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Searcher is the web search service.
type Searcher interface {
	// Search returns up to maxResults ordered results for query.
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)

	// CompanyInfo is a convenience wrapper with a fixed query template
	// and a result cap of 5, used by enrichment.
	CompanyInfo(ctx context.Context, companyName string) ([]Result, error)
}

const companyInfoResults = 5

// CompanyInfoQuery builds the fixed enrichment query for a company name.
func CompanyInfoQuery(companyName string) string {
	return fmt.Sprintf("%s company headquarters website location", companyName)
}

// FormatResults renders results as plain text for LLM consumption.
func FormatResults(results []Result) string {
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "Result %d:\nTitle: %s\nSnippet: %s\nURL: %s\n", i+1, r.Title, r.Snippet, r.URL)
		if i < len(results)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
