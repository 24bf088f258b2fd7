package config

import (
	"fmt"
	"sort"
	"sync"
)

// SummaryStyleConfig defines one summary generation style.
type SummaryStyleConfig struct {
	Name         string `yaml:"name"`
	SystemPrompt string `yaml:"system_prompt"`

	// UserTemplate is a Go text/template receiving .DrugName, .MergedText,
	// and .TargetWords.
	UserTemplate string `yaml:"user_template"`

	// LengthType is compact, standard, or deep.
	LengthType string `yaml:"length_type"`

	TargetWordCount int `yaml:"target_word_count"`
}

// StyleRegistry stores summary styles with thread-safe access.
type StyleRegistry struct {
	styles map[string]*SummaryStyleConfig
	mu     sync.RWMutex
}

// NewStyleRegistry creates a style registry.
func NewStyleRegistry(styles map[string]*SummaryStyleConfig) *StyleRegistry {
	copied := make(map[string]*SummaryStyleConfig, len(styles))
	for k, v := range styles {
		copied[k] = v
	}
	return &StyleRegistry{styles: copied}
}

// Get retrieves a style by name.
func (r *StyleRegistry) Get(name string) (*SummaryStyleConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.styles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStyleNotFound, name)
	}
	return s, nil
}

// Has checks whether a style is registered.
func (r *StyleRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.styles[name]
	return ok
}

// Len returns the number of registered styles.
func (r *StyleRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.styles)
}

// Names returns the registered style names, sorted.
func (r *StyleRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
