package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlewave/leadgen-cli/internal/model"
)

func TestDefaultContext(t *testing.T) {
	ctx := DefaultContext()

	assert.Equal(t, "AxleWave Technologies", ctx.CompanyName)
	assert.Equal(t, "DealerFlow Cloud", ctx.ProductName)
	assert.Contains(t, ctx.Competitors, "CDK Global")
	assert.Contains(t, ctx.Competitors, "Reynolds & Reynolds")
	assert.NotEmpty(t, ctx.TargetCustomers.Primary)
	assert.NotEmpty(t, ctx.PartnerCategories)
}

func TestNewProvider_LoadsContextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "context.json")
	doc := `{
		"company_name": "Testco",
		"product_name": "Widget",
		"competitors": ["Rival Inc"]
	}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	p := NewProvider(path)

	assert.Equal(t, []string{"Rival Inc"}, p.Competitors())
	assert.Contains(t, p.CustomerProfile(), "Testco")
}

func TestNewProvider_BadFileFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing file", "/nonexistent/context.json"},
		{"empty path disables loading", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProvider(tt.path)
			assert.Contains(t, p.Competitors(), "CDK Global")
		})
	}
}

func TestNewProvider_InvalidJSONFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "context.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p := NewProvider(path)
	assert.Contains(t, p.Competitors(), "CDK Global")
}

func TestNewProvider_MissingCompanyNameRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "context.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"product_name": "Widget"}`), 0o644))

	p := NewProvider(path)
	assert.Contains(t, p.Competitors(), "CDK Global")
}

func TestCustomerProfile(t *testing.T) {
	p := NewProviderWithContext(DefaultContext())
	text := p.CustomerProfile()

	assert.Contains(t, text, "AxleWave Technologies")
	assert.Contains(t, text, "Ideal Customer Profile")
	assert.Contains(t, text, "Automotive franchise dealerships")
	assert.Contains(t, text, "CDK Global")
}

func TestPartnerProfile(t *testing.T) {
	p := NewProviderWithContext(DefaultContext())
	text := p.PartnerProfile()

	assert.Contains(t, text, "Partner Categories Needed")
	assert.Contains(t, text, "Payment Processing Companies")
	assert.Contains(t, text, "Webhook support")
	assert.NotContains(t, text, "Ideal Customer Profile")
}

func TestDiscovery_SelectsProfileByType(t *testing.T) {
	p := NewProviderWithContext(DefaultContext())

	assert.Equal(t, p.CustomerProfile(), p.Discovery(model.DiscoverCustomers))
	assert.Equal(t, p.PartnerProfile(), p.Discovery(model.DiscoverPartners))
}
