package search

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axlewave/leadgen-cli/internal/config"
)

type fakeProvider struct {
	calls   int
	results []Result
	err     error
}

func (f *fakeProvider) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func TestClientSearch_CachesByQueryAndLimit(t *testing.T) {
	provider := &fakeProvider{results: []Result{{Title: "t"}}}
	c := NewClient(provider, 100, time.Minute)

	for i := 0; i < 3; i++ {
		results, err := c.Search(context.Background(), "dealer groups", 5)
		require.NoError(t, err)
		assert.Len(t, results, 1)
	}
	assert.Equal(t, 1, provider.calls)

	// A different limit is a different cache entry.
	_, err := c.Search(context.Background(), "dealer groups", 10)
	require.NoError(t, err)
	assert.Equal(t, 2, provider.calls)
}

func TestClientSearch_WrapsProviderErrors(t *testing.T) {
	provider := &fakeProvider{err: eris.New("boom")}
	c := NewClient(provider, 100, time.Minute)

	_, err := c.Search(context.Background(), "q", 5)

	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrSearch))
	// Permanent errors are not retried.
	assert.Equal(t, 1, provider.calls)
}

func TestClientSearch_ErrorsAreNotCached(t *testing.T) {
	provider := &fakeProvider{err: eris.New("boom")}
	c := NewClient(provider, 100, time.Minute)

	_, _ = c.Search(context.Background(), "q", 5)

	provider.err = nil
	provider.results = []Result{{Title: "t"}}
	results, err := c.Search(context.Background(), "q", 5)

	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestClientCompanyInfo_UsesFixedQueryShape(t *testing.T) {
	provider := &fakeProvider{results: []Result{{Title: "t"}}}
	c := NewClient(provider, 100, time.Minute)

	_, err := c.CompanyInfo(context.Background(), "AutoNation")
	require.NoError(t, err)

	// The same company hits the cache on repeat lookups.
	_, err = c.CompanyInfo(context.Background(), "AutoNation")
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
}

func TestNew_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SearchConfig
		wantErr bool
	}{
		{"serper ok", config.SearchConfig{Provider: "serper", Key: "k"}, false},
		{"serper missing key", config.SearchConfig{Provider: "serper"}, true},
		{"google ok", config.SearchConfig{Provider: "google", Key: "k", GoogleCSEID: "cx"}, false},
		{"google missing cse", config.SearchConfig{Provider: "google", Key: "k"}, true},
		{"unknown provider", config.SearchConfig{Provider: "bing", Key: "k"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, eris.Is(err, config.ErrConfiguration))
			} else {
				require.NoError(t, err)
				assert.NotNil(t, s)
			}
		})
	}
}
