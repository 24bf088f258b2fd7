package config

import (
	"fmt"
	"sort"
	"sync"
)

// VerificationCriteria declares the structural checks the category validator
// runs against collected text. Zero values disable the corresponding rule.
type VerificationCriteria struct {
	// MinSections is the minimum number of non-empty markdown sections.
	MinSections int `yaml:"min_sections"`

	// MinLength is the minimum combined text length in characters.
	MinLength int `yaml:"min_length"`

	// RequireNumeric requires at least one numeric value in the text.
	RequireNumeric bool `yaml:"require_numeric"`

	// RequireTable requires at least one markdown table.
	RequireTable bool `yaml:"require_table"`

	// RequiredTerms must each appear (case-insensitive) somewhere in the text.
	RequiredTerms []string `yaml:"required_terms"`

	// ConfidencePenalty is subtracted from downstream confidence per failed
	// rule, clamped so confidence never goes below zero.
	ConfidencePenalty float64 `yaml:"confidence_penalty"`
}

// CategoryConfig defines one analysis category.
type CategoryConfig struct {
	// Name is the display name, e.g. "Clinical Trials & Safety".
	Name string `yaml:"name"`

	// Key is the stable snake_case identifier used in the final report.
	Key string `yaml:"key"`

	// Phase is 1 (data collection) or 2 (decision intelligence).
	Phase int `yaml:"phase"`

	// DisplayOrder defines sequential execution order within Phase 2.
	DisplayOrder int `yaml:"display_order"`

	// Active categories are scheduled; inactive ones are ignored entirely.
	Active *bool `yaml:"active,omitempty"`

	// PromptTemplate is the collect-stage prompt. {{.DrugName}} is expanded.
	PromptTemplate string `yaml:"prompt_template"`

	// SummaryStyle names the SummaryStyleConfig used by the summarize stage.
	SummaryStyle string `yaml:"summary_style"`

	Verification VerificationCriteria `yaml:"verification"`

	// ExtractionKeys are the structured_data keys the merger's secondary
	// extraction call populates when the merge did not.
	ExtractionKeys []string `yaml:"extraction_keys"`

	// ConflictResolutionStrategy tags SourceConflict rows.
	ConflictResolutionStrategy string `yaml:"conflict_resolution_strategy"`

	// DependsOn lists category keys this category requires (Phase 2 only).
	DependsOn []string `yaml:"depends_on"`

	ProcessingRules map[string]any `yaml:"processing_rules,omitempty"`
}

// IsActive reports whether the category is enabled (default true).
func (c *CategoryConfig) IsActive() bool {
	return c.Active == nil || *c.Active
}

// CategoryRegistry stores category configurations in memory with thread-safe
// access. Built once at Initialize; never mutated afterwards.
type CategoryRegistry struct {
	categories map[string]*CategoryConfig
	mu         sync.RWMutex
}

// NewCategoryRegistry creates a registry from a key → config map.
func NewCategoryRegistry(categories map[string]*CategoryConfig) *CategoryRegistry {
	copied := make(map[string]*CategoryConfig, len(categories))
	for k, v := range categories {
		copied[k] = v
	}
	return &CategoryRegistry{categories: copied}
}

// Get retrieves a category configuration by key.
func (r *CategoryRegistry) Get(key string) (*CategoryConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, key)
	}
	return c, nil
}

// Has checks whether a category key is registered.
func (r *CategoryRegistry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.categories[key]
	return ok
}

// Len returns the number of registered categories.
func (r *CategoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.categories)
}

// Phase returns the active categories of the given phase. Phase 2 results
// are sorted by DisplayOrder; Phase 1 by DisplayOrder as well for stable
// iteration even though Phase 1 executes concurrently.
func (r *CategoryRegistry) Phase(phase int) []*CategoryConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*CategoryConfig
	for _, c := range r.categories {
		if c.Phase == phase && c.IsActive() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// All returns every registered category (active or not), sorted by phase
// then display order.
func (r *CategoryRegistry) All() []*CategoryConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*CategoryConfig, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Phase != out[j].Phase {
			return out[i].Phase < out[j].Phase
		}
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// ValidateDependencies checks that every declared dependency exists and that
// the dependency graph is acyclic.
func (r *CategoryRegistry) ValidateDependencies() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for key, c := range r.categories {
		for _, dep := range c.DependsOn {
			if _, ok := r.categories[dep]; !ok {
				return fmt.Errorf("%w: %s depends on %s", ErrUnknownDependency, key, dep)
			}
		}
	}

	// Iterative DFS cycle detection: 0 = unvisited, 1 = in stack, 2 = done.
	state := make(map[string]int, len(r.categories))
	var visit func(key string) error
	visit = func(key string) error {
		switch state[key] {
		case 1:
			return fmt.Errorf("%w: via %s", ErrDependencyCycle, key)
		case 2:
			return nil
		}
		state[key] = 1
		for _, dep := range r.categories[key].DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[key] = 2
		return nil
	}
	for key := range r.categories {
		if err := visit(key); err != nil {
			return err
		}
	}
	return nil
}
