package provider

import (
	"fmt"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// New builds the adapter for one provider configuration.
func New(cfg *config.ProviderConfig) (Provider, error) {
	switch cfg.Kind {
	case config.ProviderKindChat:
		return NewChatClient(cfg), nil
	case config.ProviderKindCitation:
		return NewCitationClient(cfg), nil
	case config.ProviderKindWebSearch:
		return NewSearchClient(cfg), nil
	}
	return nil, fmt.Errorf("unknown provider kind %q for provider %q", cfg.Kind, cfg.Name)
}

// Fleet is the set of constructed adapters used by collect-stage fanout,
// keyed by provider name.
type Fleet struct {
	providers map[string]Provider
	registry  *config.ProviderRegistry
}

// BuildFleet constructs adapters for every enabled provider.
func BuildFleet(registry *config.ProviderRegistry) (*Fleet, error) {
	providers := make(map[string]Provider)
	for _, cfg := range registry.Enabled() {
		p, err := New(cfg)
		if err != nil {
			return nil, err
		}
		providers[cfg.Name] = p
	}
	return &Fleet{providers: providers, registry: registry}, nil
}

// Get returns the adapter for a provider name.
func (f *Fleet) Get(name string) (Provider, bool) {
	p, ok := f.providers[name]
	return p, ok
}

// Collectors returns adapters for enabled chat and citation providers in
// stable name order. These participate in collect-stage fanout.
func (f *Fleet) Collectors() []Provider {
	var out []Provider
	for _, cfg := range f.registry.Enabled() {
		if cfg.Kind == config.ProviderKindChat || cfg.Kind == config.ProviderKindCitation {
			if p, ok := f.providers[cfg.Name]; ok {
				out = append(out, p)
			}
		}
	}
	return out
}

// Searcher returns the first enabled web-search adapter, if any.
func (f *Fleet) Searcher() (Provider, bool) {
	for _, cfg := range f.registry.EnabledOfKind(config.ProviderKindWebSearch) {
		if p, ok := f.providers[cfg.Name]; ok {
			return p, true
		}
	}
	return nil, false
}

// Chat returns the first enabled plain-chat adapter for internal LLM tasks
// (merging, summarizing, scoring).
func (f *Fleet) Chat() (*ChatClient, bool) {
	for _, cfg := range f.registry.EnabledOfKind(config.ProviderKindChat) {
		if p, ok := f.providers[cfg.Name]; ok {
			if c, ok := p.(*ChatClient); ok {
				return c, true
			}
		}
	}
	return nil, false
}

// Config returns the configuration for a provider name.
func (f *Fleet) Config(name string) (*config.ProviderConfig, error) {
	return f.registry.Get(name)
}
