package model

import "encoding/json"

// RankedLead merges a CompanyProfile with its ScoreResult. Lists of ranked
// leads are sorted by fit score descending with ties in enrichment order.
type RankedLead struct {
	CompanyName  string   `json:"company_name"`
	Website      string   `json:"website"`
	Headquarters string   `json:"headquarters"`
	Locations    []string `json:"locations"`
	Size         string   `json:"size"`
	FitScore     float64  `json:"fit_score"`
	Rationale    string   `json:"rationale"`
	Recommended  bool     `json:"recommended"`

	// Extra holds type-specific score fields, flattened into the JSON object
	// alongside the fixed fields.
	Extra map[string]any `json:"-"`
}

// MergeLead combines an enriched profile with its score into a ranked lead.
func MergeLead(p CompanyProfile, s ScoreResult) RankedLead {
	return RankedLead{
		CompanyName:  p.Name,
		Website:      p.Website,
		Headquarters: p.Headquarters,
		Locations:    p.Locations,
		Size:         p.Size,
		FitScore:     s.FitScore,
		Rationale:    s.Rationale,
		Recommended:  s.Recommended,
		Extra:        s.Extra,
	}
}

// MarshalJSON flattens Extra into the top-level object so the persisted
// artifact keeps the same shape for customer and partner entries.
func (l RankedLead) MarshalJSON() ([]byte, error) {
	type alias RankedLead
	base, err := json.Marshal(alias(l))
	if err != nil {
		return nil, err
	}
	if len(l.Extra) == 0 {
		return base, nil
	}

	merged := make(map[string]any, len(l.Extra)+8)
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range l.Extra {
		// Fixed fields win on collision.
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}
