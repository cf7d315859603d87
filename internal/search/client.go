package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/axlewave/leadgen-cli/internal/config"
	"github.com/axlewave/leadgen-cli/internal/resilience"
)

// Client implements Searcher over a Provider, adding client-side rate
// limiting, an in-memory response cache, and bounded retries per call.
type Client struct {
	provider Provider
	limiter  *rate.Limiter
	cache    *gocache.Cache
	retry    resilience.RetryConfig
}

// NewClient wraps provider with rate limiting (requests/sec) and a response
// cache with the given TTL.
func NewClient(provider Provider, ratePerSec float64, cacheTTL time.Duration) *Client {
	if ratePerSec <= 0 {
		ratePerSec = 2
	}
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Minute
	}
	retry := resilience.DefaultRetryConfig()
	retry.OnRetry = resilience.RetryLogger("search", "search")
	return &Client{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(ratePerSec), 1),
		cache:    gocache.New(cacheTTL, 2*cacheTTL),
		retry:    retry,
	}
}

// New builds a Searcher from the application search section. Missing
// provider credentials are a configuration error, fatal at startup.
func New(cfg config.SearchConfig) (Searcher, error) {
	var provider Provider

	switch strings.ToLower(cfg.Provider) {
	case "serper":
		if cfg.Key == "" {
			return nil, eris.Wrap(config.ErrConfiguration, "search: serper requires search.key")
		}
		opts := []SerperOption{}
		if cfg.BaseURL != "" {
			opts = append(opts, WithSerperBaseURL(cfg.BaseURL))
		}
		provider = NewSerper(cfg.Key, opts...)

	case "google":
		if cfg.Key == "" || cfg.GoogleCSEID == "" {
			return nil, eris.Wrap(config.ErrConfiguration, "search: google requires search.key and search.google_cse_id")
		}
		opts := []GoogleOption{}
		if cfg.BaseURL != "" {
			opts = append(opts, WithGoogleBaseURL(cfg.BaseURL))
		}
		provider = NewGoogle(cfg.Key, cfg.GoogleCSEID, opts...)

	default:
		return nil, eris.Wrapf(config.ErrConfiguration, "search: unknown provider %q (supported: serper, google)", cfg.Provider)
	}

	return NewClient(provider, cfg.RateLimit, time.Duration(cfg.CacheTTLMins)*time.Minute), nil
}

func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	key := fmt.Sprintf("%d|%s", maxResults, query)
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]Result), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrapf(ErrSearch, "rate limit wait: %v", err)
	}

	results, err := resilience.DoVal(ctx, c.retry, func(ctx context.Context) ([]Result, error) {
		return c.provider.Search(ctx, query, maxResults)
	})
	if err != nil {
		return nil, eris.Wrapf(ErrSearch, "%v", err)
	}

	c.cache.SetDefault(key, results)
	return results, nil
}

func (c *Client) CompanyInfo(ctx context.Context, companyName string) ([]Result, error) {
	return c.Search(ctx, CompanyInfoQuery(companyName), companyInfoResults)
}
