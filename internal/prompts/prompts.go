// Package prompts provides named prompt templates with file overrides.
// Templates live as plain text files in a configurable directory; when a
// file is missing the built-in default is used, so the pipeline never
// depends on the template directory existing.
package prompts

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Template names used by the pipeline.
const (
	IntentClassifier  = "intent_classifier"
	CustomerDiscovery = "customer_discovery"
	PartnerDiscovery  = "partner_discovery"
	CompanyExtraction = "company_extraction"
	CompanyEnrichment = "company_enrichment"
	CustomerScoring   = "customer_scoring"
	PartnerScoring    = "partner_scoring"
)

// Provider resolves prompt templates by name and renders them with named
// placeholders of the form {key}.
type Provider struct {
	dir string
}

// NewProvider creates a Provider reading overrides from dir. An empty dir
// disables file overrides entirely.
func NewProvider(dir string) *Provider {
	return &Provider{dir: dir}
}

// Template returns the template text for name: the override file
// <dir>/<name>.txt if it exists, otherwise the built-in default.
func (p *Provider) Template(name string) string {
	if p.dir != "" {
		path := filepath.Join(p.dir, name+".txt")
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data)
		}
		if !os.IsNotExist(err) {
			zap.L().Warn("prompt file unreadable, using built-in",
				zap.String("template", name), zap.Error(err))
		}
	}
	return builtins[name]
}

// Render resolves the template and substitutes {key} placeholders from vars.
// Unknown placeholders are left intact.
func (p *Provider) Render(name string, vars map[string]string) string {
	tmpl := p.Template(name)
	if len(vars) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var builtins = map[string]string{
	IntentClassifier: `You are analyzing a request from a B2B software company looking to grow its business.

User Input: {user_input}

Determine whether the user wants to find potential customers, potential integration partners, both, or whether the request is too vague to tell.

Respond with JSON:
{"intent": "customer|partner|both|unclear", "confidence": 0.0-1.0, "reasoning": "explanation"}`,

	CustomerDiscovery: `You are a B2B market research expert. Generate web search queries to find potential customer companies for the business described below.

{company_profile}

Generate 4-6 targeted search queries that would surface companies matching the ideal customer profile. Avoid queries that would mostly return the listed competitors.

Respond with JSON:
{"queries": ["query 1", "query 2", ...], "strategy": "one sentence explaining the search strategy"}`,

	PartnerDiscovery: `You are a B2B market research expert. Generate web search queries to find potential integration partner companies for the business described below.

{company_profile}

Generate 4-6 targeted search queries that would surface companies in the listed partner categories with compatible integration capabilities.

Respond with JSON:
{"queries": ["query 1", "query 2", ...], "strategy": "one sentence explaining the search strategy"}`,

	CompanyExtraction: `Extract company names from the following web search results. Include only real operating companies; exclude publications, directories, job boards, and generic product names.

Search Results:
{search_results}

Respond with JSON:
{"companies": ["Company A", "Company B", ...]}`,

	CompanyEnrichment: `You are a business intelligence analyst. Using the search results below, extract structured information about the company "{company_name}".

Search Results:
{search_results}

Respond with JSON:
{"company_name": "...", "website": "...", "headquarters": "City, State/Country", "locations": ["..."], "size": "employee count or revenue estimate", "size_reasoning": "how you estimated size", "description": "1-2 sentence description", "confidence": 0.0-1.0}

Use "unknown" for fields the search results do not support.`,

	CustomerScoring: `You are a B2B sales analyst. Evaluate how well the company below fits as a potential customer for the business described in the profile.

{company_profile}

Candidate Company:
Name: {company_name}
Website: {website}
Headquarters: {headquarters}
Size: {size}
Description: {description}

Respond with JSON:
{"fit_score": 0.0-10.0, "rationale": "2-3 sentences", "recommended": true|false, "key_strengths": ["..."], "potential_objections": ["..."]}`,

	PartnerScoring: `You are a partnership strategy analyst. Evaluate how well the company below fits as a potential integration partner for the business described in the profile.

{company_profile}

Candidate Company:
Name: {company_name}
Website: {website}
Headquarters: {headquarters}
Size: {size}
Description: {description}

Respond with JSON:
{"fit_score": 0.0-10.0, "rationale": "2-3 sentences", "recommended": true|false, "integration_type": "API|data|referral|reseller", "value_proposition": "one sentence"}`,
}
