package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"

	"github.com/axlewave/leadgen-cli/internal/resilience"
)

const defaultGoogleBaseURL = "https://www.googleapis.com/customsearch/v1"

// GoogleOption configures the Google Custom Search client.
type GoogleOption func(*GoogleClient)

// WithGoogleBaseURL overrides the default API base URL.
func WithGoogleBaseURL(u string) GoogleOption {
	return func(c *GoogleClient) {
		c.baseURL = u
	}
}

// WithGoogleHTTPClient overrides the default http.Client.
func WithGoogleHTTPClient(hc *http.Client) GoogleOption {
	return func(c *GoogleClient) {
		c.http = hc
	}
}

// GoogleClient queries the Google Custom Search JSON API.
type GoogleClient struct {
	apiKey  string
	cseID   string
	baseURL string
	http    *http.Client
}

// NewGoogle creates a Google Custom Search client.
func NewGoogle(apiKey, cseID string, opts ...GoogleOption) *GoogleClient {
	c := &GoogleClient{
		apiKey:  apiKey,
		cseID:   cseID,
		baseURL: defaultGoogleBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type googleResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

func (c *GoogleClient) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	// The API caps num at 10 per request.
	num := maxResults
	if num > 10 {
		num = 10
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.cseID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(num))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "google: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "google: send request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "google: read response")
	}

	if resp.StatusCode != http.StatusOK {
		err := eris.Errorf("google: unexpected status %d: %s", resp.StatusCode, string(respBody))
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return nil, resilience.NewTransientError(err, resp.StatusCode)
		}
		return nil, err
	}

	var parsed googleResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, eris.Wrap(err, "google: unmarshal response")
	}

	results := make([]Result, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		results = append(results, Result{
			Title:   item.Title,
			URL:     item.Link,
			Snippet: item.Snippet,
		})
	}
	return results, nil
}
