package provider

import (
	"context"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// CitationClient wraps the chat adapter for providers that return a citations
// array alongside the completion (Perplexity-style). The wire format is the
// same chat completions call; the difference is that cited URLs feed the
// source weighter's domain classification.
type CitationClient struct {
	*ChatClient
}

// NewCitationClient creates a citation-returning chat adapter.
func NewCitationClient(cfg *config.ProviderConfig) *CitationClient {
	return &CitationClient{ChatClient: NewChatClient(cfg)}
}

// Fetch delegates to the chat adapter. Responses with no citations are still
// valid; the weighter falls back to the provider's configured authority.
func (c *CitationClient) Fetch(ctx context.Context, q Query) (*Response, error) {
	return c.ChatClient.Fetch(ctx, q)
}
