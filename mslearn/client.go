// Package mslearn provides a Microsoft Learn implementation of
// docgrab.SearchService backed by the public Learn search API.
package mslearn

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/docgrab"
)

// DefaultBaseURL is the public Microsoft Learn search endpoint.
const DefaultBaseURL = "https://learn.microsoft.com/api/search"

// DefaultLocale is the locale requested from the endpoint.
const DefaultLocale = "en-us"

// DefaultTimeout is the default timeout for search requests.
// Kept consistent with http.DefaultFetchTimeout (10s).
const DefaultTimeout = 10 * time.Second

// MaxResults is the endpoint's page-size ceiling. The endpoint does not
// paginate, so a single request can never return more than this.
const MaxResults = 30

// Ensure Client implements docgrab.SearchService at compile time.
var _ docgrab.SearchService = (*Client)(nil)

// Client queries the Microsoft Learn search API.
type Client struct {
	client  *http.Client
	baseURL string
	locale  string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the search endpoint URL.
// Defaults to DefaultBaseURL if not specified.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithLocale sets the locale requested from the endpoint.
// Defaults to DefaultLocale if not specified.
func WithLocale(locale string) Option {
	return func(c *Client) {
		c.locale = locale
	}
}

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Microsoft Learn search client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		locale:  DefaultLocale,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// searchResponse mirrors the wire format of the Learn search API.
type searchResponse struct {
	Results []searchHit `json:"results"`
}

type searchHit struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	Description     string `json:"description"`
	LastUpdatedDate string `json:"lastUpdatedDate"`
}

// Search implements docgrab.SearchService. Results are filtered to the
// Documentation category and returned in the endpoint's relevance order.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]docgrab.SearchResult, error) {
	if query == "" {
		return nil, docgrab.Errorf(docgrab.EINVALID, "search query required")
	}
	if maxResults < 1 || maxResults > MaxResults {
		return nil, docgrab.Errorf(docgrab.EINVALID, "max results must be between 1 and %d, got %d", MaxResults, maxResults)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, docgrab.Errorf(docgrab.EINVALID, "invalid search URL %q: %v", c.baseURL, err)
	}

	q := req.URL.Query()
	q.Set("search", query)
	q.Set("locale", c.locale)
	q.Set("facet", "category")
	q.Set("$filter", "category eq 'Documentation'")
	q.Set("$top", strconv.Itoa(maxResults))
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, docgrab.Errorf(docgrab.ENETWORK, "search request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, docgrab.Errorf(docgrab.EAPI, "search endpoint returned HTTP %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, docgrab.Errorf(docgrab.EAPI, "malformed search response: %v", err)
	}

	// $top is authoritative, but a misbehaving endpoint must not push the
	// caller past its requested cap.
	results := make([]docgrab.SearchResult, 0, len(body.Results))
	for _, hit := range body.Results {
		if len(results) == maxResults {
			break
		}
		results = append(results, docgrab.SearchResult{
			Title:       hit.Title,
			URL:         hit.URL,
			Description: hit.Description,
			LastUpdated: hit.LastUpdatedDate,
		})
	}

	return results, nil
}
