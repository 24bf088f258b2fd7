package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// SearchClient queries a web-search API and formats page results into a text
// block. Temperature is ignored for this kind; MaxResults maps to the page
// size field.
type SearchClient struct {
	cfg        *config.ProviderConfig
	apiKey     string
	httpClient *http.Client
}

// NewSearchClient creates a web-search adapter from provider configuration.
func NewSearchClient(cfg *config.ProviderConfig) *SearchClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SearchClient{
		cfg:        cfg,
		apiKey:     os.Getenv(cfg.APIKeyEnv),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *SearchClient) Name() string              { return c.cfg.Name }
func (c *SearchClient) Kind() config.ProviderKind { return c.cfg.Kind }

type searchResponse struct {
	WebPages struct {
		Value []searchWebPage `json:"value"`
	} `json:"webPages"`
}

type searchWebPage struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	Snippet       string `json:"snippet"`
	Summary       string `json:"summary"`
	SiteName      string `json:"siteName"`
	DatePublished string `json:"datePublished"`
}

// Fetch runs one search and returns the formatted result pages as text, with
// page URLs as cited URLs.
func (c *SearchClient) Fetch(ctx context.Context, q Query) (*Response, error) {
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = c.cfg.MaxResults
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	reqBody, err := json.Marshal(map[string]any{
		"query":     q.Prompt,
		"freshness": "noLimit",
		"summary":   true,
		"count":     maxResults,
	})
	if err != nil {
		return nil, &Error{Provider: c.cfg.Name, Kind: KindBadRequest, Message: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, &Error{Provider: c.cfg.Name, Kind: KindBadRequest, Message: "create request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Provider: c.cfg.Name, Kind: KindNetworkError, Message: "http request", Err: err}
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Provider: c.cfg.Name, Kind: KindNetworkError, Message: "read response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			Provider:   c.cfg.Name,
			Kind:       classifyStatus(resp.StatusCode),
			Status:     resp.StatusCode,
			RetryAfter: retryAfterHint(resp.Header),
			Message:    truncate(string(body), 500),
		}
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &Error{Provider: c.cfg.Name, Kind: KindDecodeError, Message: "parse response", Err: err}
	}

	text, urls := formatSearchResult(q.Prompt, &result, maxResults)
	return &Response{
		Provider:  c.cfg.Name,
		Model:     c.cfg.Model,
		Text:      text,
		CitedURLs: urls,
		LatencyMS: latency.Milliseconds(),
		Checksum:  Checksum(text),
	}, nil
}

// formatSearchResult converts an API response into a readable text block and
// collects the page URLs in result order.
func formatSearchResult(query string, r *searchResponse, max int) (string, []string) {
	pages := r.WebPages.Value
	if len(pages) == 0 {
		return fmt.Sprintf("No results found for: %q", query), nil
	}

	var sb strings.Builder
	var urls []string
	for i, p := range pages {
		if i >= max {
			break
		}
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(p.Name)
		sb.WriteString("\n")
		text := p.Snippet
		if p.Summary != "" {
			text = p.Summary
		}
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
		if len(p.DatePublished) >= 10 {
			sb.WriteString(p.DatePublished[:10])
			sb.WriteString(" ")
		}
		sb.WriteString(p.URL)
		sb.WriteString("\n")
		urls = append(urls, p.URL)
	}
	return strings.TrimRight(sb.String(), "\n"), urls
}
