package model

// IntentType is the discovery intent resolved from user input.
type IntentType string

const (
	IntentCustomer IntentType = "customer"
	IntentPartner  IntentType = "partner"
	IntentBoth     IntentType = "both"
	IntentUnclear  IntentType = "unclear"
)

// Valid reports whether t is one of the four known intent values.
func (t IntentType) Valid() bool {
	switch t {
	case IntentCustomer, IntentPartner, IntentBoth, IntentUnclear:
		return true
	}
	return false
}

// DiscoveryTypes expands an intent into the discovery branches it requests.
// Unclear yields nothing.
func (t IntentType) DiscoveryTypes() []DiscoveryType {
	switch t {
	case IntentCustomer:
		return []DiscoveryType{DiscoverCustomers}
	case IntentPartner:
		return []DiscoveryType{DiscoverPartners}
	case IntentBoth:
		return []DiscoveryType{DiscoverCustomers, DiscoverPartners}
	}
	return nil
}

// DiscoveryType selects which profile and prompt set a discovery run uses.
type DiscoveryType string

const (
	DiscoverCustomers DiscoveryType = "customer"
	DiscoverPartners  DiscoveryType = "partner"
)

// Intent is the classified discovery intent for a single run. Created once
// by the classifier and immutable thereafter.
type Intent struct {
	Type       IntentType `json:"intent"`
	Confidence float64    `json:"confidence"`
	Reasoning  string     `json:"reasoning"`
}
