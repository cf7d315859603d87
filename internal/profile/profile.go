// Package profile supplies the discovery profiles the pipeline targets:
// a structured description of the company the leads are for, rendered into
// customer- and partner-facing text blocks, plus the competitor list used
// for candidate exclusion.
package profile

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/axlewave/leadgen-cli/internal/model"
)

// CompanyContext is the structured description of the company on whose
// behalf discovery runs. Loaded from a JSON document; the embedded default
// describes AxleWave Technologies' DealerFlow Cloud product.
type CompanyContext struct {
	CompanyName        string   `json:"company_name"`
	ProductName        string   `json:"product_name"`
	Industry           string   `json:"industry"`
	ProductDescription string   `json:"product_description"`
	KeyFeatures        []string `json:"key_features"`
	TargetCustomers    struct {
		Primary         []string `json:"primary"`
		Characteristics []string `json:"characteristics"`
	} `json:"target_customers"`
	PartnerCategories []string `json:"partner_categories"`
	IntegrationNeeds  []string `json:"integration_needs"`
	APICapabilities   []string `json:"api_capabilities"`
	Competitors       []string `json:"competitors"`
}

// Provider renders discovery profiles from a CompanyContext.
type Provider struct {
	ctx CompanyContext
}

// NewProvider loads the company context from contextPath if non-empty,
// falling back to the embedded default on a missing or unreadable file.
func NewProvider(contextPath string) *Provider {
	ctx := DefaultContext()
	if contextPath != "" {
		loaded, err := loadContext(contextPath)
		if err != nil {
			zap.L().Warn("company context file unusable, using default",
				zap.String("path", contextPath), zap.Error(err))
		} else {
			ctx = loaded
		}
	}
	return &Provider{ctx: ctx}
}

// NewProviderWithContext creates a Provider from an explicit context.
func NewProviderWithContext(ctx CompanyContext) *Provider {
	return &Provider{ctx: ctx}
}

func loadContext(path string) (CompanyContext, error) {
	var ctx CompanyContext
	data, err := os.ReadFile(path)
	if err != nil {
		return ctx, eris.Wrap(err, "profile: read context")
	}
	if err := json.Unmarshal(data, &ctx); err != nil {
		return ctx, eris.Wrap(err, "profile: parse context")
	}
	if ctx.CompanyName == "" {
		return ctx, eris.New("profile: context missing company_name")
	}
	return ctx, nil
}

// Competitors returns the exclusion list applied during discovery.
func (p *Provider) Competitors() []string {
	return p.ctx.Competitors
}

// Discovery returns the profile text for the given discovery type.
func (p *Provider) Discovery(dtype model.DiscoveryType) string {
	if dtype == model.DiscoverPartners {
		return p.PartnerProfile()
	}
	return p.CustomerProfile()
}

// CustomerProfile renders the ideal customer profile text block.
func (p *Provider) CustomerProfile() string {
	var b strings.Builder
	p.writeHeader(&b)
	b.WriteString("Key Features:\n")
	writeBullets(&b, p.ctx.KeyFeatures)
	b.WriteString("\nIdeal Customer Profile:\nType: ")
	b.WriteString(strings.Join(p.ctx.TargetCustomers.Primary, ", "))
	b.WriteString("\n\nCustomer Characteristics:\n")
	writeBullets(&b, p.ctx.TargetCustomers.Characteristics)
	b.WriteString("\nCompetitors to find lookalikes:\n")
	b.WriteString(strings.Join(p.ctx.Competitors, ", "))
	return strings.TrimSpace(b.String())
}

// PartnerProfile renders the ideal partner profile text block.
func (p *Provider) PartnerProfile() string {
	var b strings.Builder
	p.writeHeader(&b)
	b.WriteString("Partner Categories Needed:\n")
	writeBullets(&b, p.ctx.PartnerCategories)
	b.WriteString("\nIntegration Requirements:\n")
	writeBullets(&b, p.ctx.IntegrationNeeds)
	b.WriteString("\nTechnical Capabilities:\n")
	writeBullets(&b, p.ctx.APICapabilities)
	return strings.TrimSpace(b.String())
}

func (p *Provider) writeHeader(b *strings.Builder) {
	b.WriteString("Company: " + p.ctx.CompanyName + "\n")
	b.WriteString("Product: " + p.ctx.ProductName + "\n\n")
	b.WriteString("Product Description:\n" + strings.TrimSpace(p.ctx.ProductDescription) + "\n\n")
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
}

// DefaultContext returns the embedded AxleWave Technologies context.
func DefaultContext() CompanyContext {
	ctx := CompanyContext{
		CompanyName: "AxleWave Technologies",
		ProductName: "DealerFlow Cloud",
		Industry:    "Automotive Dealership Management",
		ProductDescription: "DealerFlow Cloud is a comprehensive cloud-based dealership management system " +
			"designed for automotive dealerships. It provides end-to-end solutions for managing dealership " +
			"operations including customer management, vehicle inventory, sales processes, service operations, " +
			"and accounting.",
		KeyFeatures: []string{
			"Customer Relationship Management (CRM)",
			"Vehicle Inventory Management with VIN decoding",
			"Deal Desking and Contracting",
			"Service Repair Order (RO) Management",
			"General Ledger and Accounting",
			"API-first architecture with REST APIs",
			"OAuth2 and OIDC authentication",
			"Real-time webhooks for key events",
			"Multi-location support",
		},
		PartnerCategories: []string{
			"Payment Processing Companies",
			"VIN Data Providers",
			"Automotive Valuation Services (KBB, Black Book)",
			"Credit Bureau & Financing Partners",
			"Insurance Verification Services",
			"Parts & Inventory Suppliers",
			"CRM and Marketing Automation Platforms",
			"Accounting Software Providers",
			"Document Management Systems",
			"Dealer Compliance & Regulatory Solutions",
		},
		IntegrationNeeds: []string{
			"RESTful API compatibility",
			"Webhook support",
			"OAuth2/OIDC authentication",
			"Real-time data synchronization",
		},
		APICapabilities: []string{
			"Customer CRUD and search operations",
			"Vehicle management with VIN decode",
			"Deal management (desking, contracting)",
			"Repair Order lifecycle management",
			"Accounting and general ledger integration",
			"Webhook events for real-time updates",
		},
		Competitors: []string{
			"CDK Global",
			"Reynolds & Reynolds",
			"DealerSocket",
			"Dealertrack (Cox Automotive)",
			"Auto/Mate",
			"PBS Systems",
		},
	}
	ctx.TargetCustomers.Primary = []string{
		"Automotive franchise dealerships",
		"Multi-location dealer groups",
		"Used car dealerships",
		"Auto retail chains",
	}
	ctx.TargetCustomers.Characteristics = []string{
		"Need modern cloud-based DMS",
		"Managing multiple locations",
		"Want to replace legacy on-premise systems",
		"Require integrated sales and service operations",
		"Need API integrations with other systems",
	}
	return ctx
}
