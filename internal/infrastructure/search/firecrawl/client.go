package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"venture-agent/internal/application/port/output"
	"venture-agent/internal/domain/entity"
)

var _ output.SearchPort = (*Client)(nil)

// Client wraps the Firecrawl v1 API for web search and markdown scraping.
// Requests are rate limited and retried up to three times with linear
// backoff on transient failures.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      output.LoggerPort
}

const defaultBaseURL = "https://api.firecrawl.dev"

func NewClient(apiKey, baseURL string, logger output.LoggerPort) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	// Free tier allows roughly 1 request/sec sustained.
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger,
	}
}

type searchRequest struct {
	Query         string         `json:"query"`
	Limit         int            `json:"limit"`
	ScrapeOptions *scrapeOptions `json:"scrapeOptions,omitempty"`
}

type scrapeOptions struct {
	Formats []string `json:"formats"`
}

type searchResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		URL      string `json:"url"`
		Title    string `json:"title"`
		Markdown string `json:"markdown"`
	} `json:"data"`
}

type scrapeRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type scrapeResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
	} `json:"data"`
}

// Search runs a web search with markdown scraping of each hit.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]entity.SearchResult, error) {
	body, err := c.post(ctx, "/v1/search", searchRequest{
		Query:         query,
		Limit:         limit,
		ScrapeOptions: &scrapeOptions{Formats: []string{"markdown"}},
	})
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	if !parsed.Success {
		return nil, fmt.Errorf("search %q: api reported failure", query)
	}

	results := make([]entity.SearchResult, 0, len(parsed.Data))
	for _, d := range parsed.Data {
		results = append(results, entity.SearchResult{
			URL:      d.URL,
			Title:    d.Title,
			Markdown: d.Markdown,
		})
	}
	return results, nil
}

// Scrape fetches a single URL as markdown.
func (c *Client) Scrape(ctx context.Context, url string) (string, error) {
	body, err := c.post(ctx, "/v1/scrape", scrapeRequest{
		URL:     url,
		Formats: []string{"markdown"},
	})
	if err != nil {
		return "", fmt.Errorf("scrape %s: %w", url, err)
	}

	var parsed scrapeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode scrape response: %w", err)
	}
	if !parsed.Success {
		return "", fmt.Errorf("scrape %s: api reported failure", url)
	}
	return parsed.Data.Markdown, nil
}

// post sends a JSON request with retries. 4xx responses other than 429 are
// permanent and fail immediately.
func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn("firecrawl request failed", "path", path, "attempt", attempt, "error", err)
			lastErr = err
			sleepBackoff(ctx, attempt)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
		}

		c.logger.Warn("firecrawl transient error", "path", path, "attempt", attempt, "status", resp.StatusCode)
		lastErr = fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
		sleepBackoff(ctx, attempt)
	}
	return nil, lastErr
}

func sleepBackoff(ctx context.Context, attempt int) {
	t := time.NewTimer(time.Duration(attempt*500) * time.Millisecond)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
