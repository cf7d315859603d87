package model

// CompanyProfile is the structured result of enriching a candidate name.
// A Confidence of 0.0 together with placeholder fields marks a minimal
// profile produced after an enrichment failure.
type CompanyProfile struct {
	Name          string   `json:"company_name"`
	Website       string   `json:"website"`
	Headquarters  string   `json:"headquarters"`
	Locations     []string `json:"locations"`
	Size          string   `json:"size"`
	SizeReasoning string   `json:"size_reasoning"`
	Description   string   `json:"description"`
	Confidence    float64  `json:"confidence"`
}

// ScoreResult is the scoring engine's judgment for one company.
// Extra carries type-specific fields: key strengths and potential objections
// for customers, integration type and value proposition for partners.
type ScoreResult struct {
	CompanyName string         `json:"company_name"`
	FitScore    float64        `json:"fit_score"`
	Rationale   string         `json:"rationale"`
	Recommended bool           `json:"recommended"`
	Extra       map[string]any `json:"-"`
}
