package model

import "time"

// RunStatus is the terminal status of a lead generation run.
type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

// ResultSet holds the ranked lists for whichever discovery types ran.
type ResultSet struct {
	Customers []RankedLead `json:"customers,omitempty"`
	Partners  []RankedLead `json:"partners,omitempty"`
}

// RunResult is the terminal artifact of one orchestrator invocation.
// The pipeline always returns a well-formed RunResult; the only error
// status is an unclear intent with no override supplied.
type RunResult struct {
	Status    RunStatus  `json:"status"`
	Message   string     `json:"message,omitempty"`
	Intent    IntentType `json:"intent"`
	Timestamp time.Time  `json:"timestamp"`
	Results   ResultSet  `json:"results"`
}

// Run is a persisted record of a pipeline invocation.
type Run struct {
	ID            string     `json:"id"`
	Intent        IntentType `json:"intent"`
	Status        RunStatus  `json:"status"`
	CustomerCount int        `json:"customer_count"`
	PartnerCount  int        `json:"partner_count"`
	ArtifactPath  string     `json:"artifact_path,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	Result        *RunResult `json:"result,omitempty"`
}

// Degradation records a contained per-item failure that was replaced by a
// degraded value instead of propagating. Components return these so callers
// can observe degradation without log inspection.
type Degradation struct {
	Stage  string `json:"stage"`
	Detail string `json:"detail"`
	Reason string `json:"reason"`
}
