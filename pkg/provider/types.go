// Package provider contains adapters for external LLM and search endpoints
// plus the source-authority weighting applied to their responses.
package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// Query is one outbound request to a provider. Temperature is a pointer so
// callers can distinguish "use provider default" from an explicit value.
type Query struct {
	CategoryKey string
	DrugName    string
	System      string
	Prompt      string
	Temperature *float64
	MaxTokens   int
	MaxResults  int
}

// Response is the normalized reply from any provider kind.
type Response struct {
	Provider    string
	Model       string
	Temperature float64
	Text        string
	CitedURLs   []string
	LatencyMS   int64
	TokenCount  int
	Cost        float64
	Checksum    string
}

// Usage reports token consumption for one LLM call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Provider sends one query to one external endpoint and normalizes the reply.
type Provider interface {
	Name() string
	Kind() config.ProviderKind
	Fetch(ctx context.Context, q Query) (*Response, error)
}

// Checksum returns the hex SHA-256 of raw response text. Stored alongside the
// raw response for tamper detection during the retention window.
func Checksum(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
