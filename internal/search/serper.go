package search

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"

	"github.com/axlewave/leadgen-cli/internal/resilience"
)

const defaultSerperBaseURL = "https://google.serper.dev"

// Provider performs a single raw search against one backend.
type Provider interface {
	Search(ctx context.Context, query string, maxResults int) ([]Result, error)
}

// SerperOption configures the Serper client.
type SerperOption func(*SerperClient)

// WithSerperBaseURL overrides the default API base URL.
func WithSerperBaseURL(url string) SerperOption {
	return func(c *SerperClient) {
		c.baseURL = url
	}
}

// WithSerperHTTPClient overrides the default http.Client.
func WithSerperHTTPClient(hc *http.Client) SerperOption {
	return func(c *SerperClient) {
		c.http = hc
	}
}

// SerperClient queries the Serper search API.
type SerperClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewSerper creates a Serper API client.
func NewSerper(apiKey string, opts ...SerperOption) *SerperClient {
	c := &SerperClient{
		apiKey:  apiKey,
		baseURL: defaultSerperBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

func (c *SerperClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	body, err := json.Marshal(serperRequest{Q: query, Num: maxResults})
	if err != nil {
		return nil, eris.Wrap(err, "serper: marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, eris.Wrap(err, "serper: create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "serper: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "serper: read response")
	}

	if resp.StatusCode != http.StatusOK {
		err := eris.Errorf("serper: unexpected status %d: %s", resp.StatusCode, string(respBody))
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return nil, resilience.NewTransientError(err, resp.StatusCode)
		}
		return nil, err
	}

	var parsed serperResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, eris.Wrap(err, "serper: unmarshal response")
	}

	results := make([]Result, 0, len(parsed.Organic))
	for _, item := range parsed.Organic {
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}
