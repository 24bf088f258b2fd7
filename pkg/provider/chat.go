package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// ChatClient talks to an OpenAI-compatible chat completions endpoint.
type ChatClient struct {
	cfg        *config.ProviderConfig
	apiKey     string
	httpClient *http.Client
}

// NewChatClient creates a chat adapter from provider configuration. The API
// key is resolved from the environment variable named in the config.
func NewChatClient(cfg *config.ProviderConfig) *ChatClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &ChatClient{
		cfg:        cfg,
		apiKey:     os.Getenv(cfg.APIKeyEnv),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ChatClient) Name() string              { return c.cfg.Name }
func (c *ChatClient) Kind() config.ProviderKind { return c.cfg.Kind }

// normalizeBaseURL strips trailing slashes and a "/chat/completions" suffix so
// the path is never doubled when the client appends it.
func normalizeBaseURL(raw string) string {
	s := strings.TrimRight(raw, "/")
	return strings.TrimSuffix(s, "/chat/completions")
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []chatMsg `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatMsg struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations,omitempty"`
	Usage     Usage    `json:"usage"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// effectiveTemperature resolves the requested temperature against provider
// limits. Returns nil when the provider does not accept temperature at all.
func effectiveTemperature(cfg *config.ProviderConfig, requested *float64) *float64 {
	if !cfg.SupportsTemperature {
		return nil
	}
	t := cfg.TemperatureDefault
	if requested != nil {
		t = *requested
	}
	if t < cfg.TemperatureMin {
		t = cfg.TemperatureMin
	}
	if t > cfg.TemperatureMax {
		t = cfg.TemperatureMax
	}
	return &t
}

// Fetch sends the query as a system+user chat and normalizes the reply.
func (c *ChatClient) Fetch(ctx context.Context, q Query) (*Response, error) {
	text, citations, usage, latency, err := c.complete(ctx, q.System, q.Prompt, q.Temperature, q.MaxTokens)
	if err != nil {
		return nil, err
	}

	temp := 0.0
	if t := effectiveTemperature(c.cfg, q.Temperature); t != nil {
		temp = *t
	}
	return &Response{
		Provider:    c.cfg.Name,
		Model:       c.cfg.Model,
		Temperature: temp,
		Text:        text,
		CitedURLs:   citations,
		LatencyMS:   latency.Milliseconds(),
		TokenCount:  usage.TotalTokens,
		Cost:        c.cost(usage),
		Checksum:    Checksum(text),
	}, nil
}

// Complete runs one system+user chat call and returns the raw assistant text.
// Used for internal LLM tasks (merge, summarize, score) that are not part of
// collect-stage fanout.
func (c *ChatClient) Complete(ctx context.Context, system, user string, temperature float64) (string, Usage, error) {
	text, _, usage, _, err := c.complete(ctx, system, user, &temperature, 0)
	return text, usage, err
}

func (c *ChatClient) complete(ctx context.Context, system, user string, temperature *float64, maxTokens int) (string, []string, Usage, time.Duration, error) {
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxTokens
	}
	payload := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMsg{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: effectiveTemperature(c.cfg, temperature),
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", nil, Usage{}, 0, &Error{Provider: c.cfg.Name, Kind: KindBadRequest, Message: "marshal request", Err: err}
	}

	url := normalizeBaseURL(c.cfg.BaseURL) + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", nil, Usage{}, 0, &Error{Provider: c.cfg.Name, Kind: KindBadRequest, Message: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, Usage{}, 0, &Error{Provider: c.cfg.Name, Kind: KindNetworkError, Message: "http request", Err: err}
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, Usage{}, 0, &Error{Provider: c.cfg.Name, Kind: KindNetworkError, Message: "read response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", nil, Usage{}, 0, &Error{
			Provider:   c.cfg.Name,
			Kind:       classifyStatus(resp.StatusCode),
			Status:     resp.StatusCode,
			RetryAfter: retryAfterHint(resp.Header),
			Message:    truncate(string(respBody), 500),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", nil, Usage{}, 0, &Error{Provider: c.cfg.Name, Kind: KindDecodeError, Message: "unmarshal response", Err: err}
	}
	if chatResp.Error != nil {
		return "", nil, Usage{}, 0, &Error{Provider: c.cfg.Name, Kind: KindServerError, Message: chatResp.Error.Message}
	}
	if len(chatResp.Choices) == 0 {
		return "", nil, Usage{}, 0, &Error{Provider: c.cfg.Name, Kind: KindDecodeError, Message: "no choices in response"}
	}

	content := chatResp.Choices[0].Message.Content
	return content, chatResp.Citations, chatResp.Usage, latency, nil
}

func (c *ChatClient) cost(u Usage) float64 {
	return float64(u.PromptTokens)/1000*c.cfg.InputCostPer1K +
		float64(u.CompletionTokens)/1000*c.cfg.OutputCostPer1K
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
