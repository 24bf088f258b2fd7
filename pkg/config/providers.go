package config

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// ProviderKind selects the adapter implementation for a provider entry.
// Per-provider differences are data, not code: all chat-style providers share
// one adapter, as do citation and web-search providers.
type ProviderKind string

// Provider kinds.
const (
	ProviderKindChat      ProviderKind = "chat"
	ProviderKindCitation  ProviderKind = "citation"
	ProviderKindWebSearch ProviderKind = "websearch"
)

// AuthorityClass tags a provider for source weighting.
type AuthorityClass string

// Authority classes, highest weight first.
const (
	AuthorityLicensedAI   AuthorityClass = "licensed_ai"
	AuthorityGovernment   AuthorityClass = "government"
	AuthorityPeerReviewed AuthorityClass = "peer_reviewed"
	AuthorityIndustry     AuthorityClass = "industry"
	AuthorityCompany      AuthorityClass = "company"
	AuthorityNews         AuthorityClass = "news"
	AuthorityUnknown      AuthorityClass = "unknown"
)

// ProviderConfig defines one external LLM or search provider.
type ProviderConfig struct {
	Name string       `yaml:"name"`
	Kind ProviderKind `yaml:"kind"`

	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model,omitempty"`
	APIKeyEnv string `yaml:"api_key_env"`

	// TemperatureDefault is used when the caller passes a negative value.
	// Supported range is [TemperatureMin, TemperatureMax]; requests outside
	// it are clamped. SupportsTemperature=false drops the field silently.
	TemperatureDefault  float64 `yaml:"temperature_default"`
	TemperatureMin      float64 `yaml:"temperature_min"`
	TemperatureMax      float64 `yaml:"temperature_max"`
	SupportsTemperature bool    `yaml:"supports_temperature"`

	MaxTokens  int `yaml:"max_tokens"`
	MaxResults int `yaml:"max_results,omitempty"` // websearch page size

	// Per-1000-token costs in USD; monetary cost is derived from usage.
	InputCostPer1K  float64 `yaml:"input_cost_per_1k"`
	OutputCostPer1K float64 `yaml:"output_cost_per_1k"`

	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`

	Authority AuthorityClass `yaml:"authority"`

	// Enabled providers participate in collect-stage fanout.
	Enabled *bool `yaml:"enabled,omitempty"`
}

// IsEnabled reports whether the provider participates in fanout (default true).
func (p *ProviderConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// ProviderRegistry stores provider configurations with thread-safe access.
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a provider registry.
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by name.
func (r *ProviderRegistry) Get(name string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return p, nil
}

// Has checks whether a provider name is registered.
func (r *ProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.providers[name]
	return ok
}

// Len returns the number of registered providers.
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// Enabled returns all enabled providers sorted by name for stable fanout
// order (tie-breaking resolves alphabetically by provider id).
func (r *ProviderRegistry) Enabled() []*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*ProviderConfig
	for _, p := range r.providers {
		if p.IsEnabled() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// EnabledOfKind returns enabled providers of the given kind, sorted by name.
func (r *ProviderRegistry) EnabledOfKind(kind ProviderKind) []*ProviderConfig {
	var out []*ProviderConfig
	for _, p := range r.Enabled() {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}
