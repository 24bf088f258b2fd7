package config

import "fmt"

// Validate checks the assembled configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue: worker_count must be positive")
	}
	if c.Queue.P1MaxParallel <= 0 {
		return fmt.Errorf("queue: p1_max_parallel must be positive")
	}
	if c.Queue.RequestTimeout <= 0 {
		return fmt.Errorf("queue: request_timeout must be positive")
	}

	if err := c.CategoryRegistry.ValidateDependencies(); err != nil {
		return err
	}

	for _, cat := range c.CategoryRegistry.All() {
		if cat.Phase != 1 && cat.Phase != 2 {
			return fmt.Errorf("category %q: phase must be 1 or 2", cat.Key)
		}
		if cat.Phase == 1 && cat.PromptTemplate == "" {
			return fmt.Errorf("category %q: phase 1 categories need a prompt_template", cat.Key)
		}
		if cat.SummaryStyle != "" && !c.StyleRegistry.Has(cat.SummaryStyle) {
			return fmt.Errorf("category %q: unknown summary_style %q", cat.Key, cat.SummaryStyle)
		}
	}

	// Phase 2 scoring category must exist and run first.
	phase2 := c.CategoryRegistry.Phase(2)
	if len(phase2) > 0 {
		first := phase2[0]
		if first.Key != "suitability_scoring" {
			return fmt.Errorf("phase 2: suitability_scoring must have the lowest display_order, got %q first", first.Key)
		}
	}

	for _, p := range c.ProviderRegistry.Enabled() {
		if p.BaseURL == "" {
			return fmt.Errorf("provider %q: base_url is required", p.Name)
		}
		if p.Kind != ProviderKindWebSearch && p.Model == "" {
			return fmt.Errorf("provider %q: model is required", p.Name)
		}
		if p.MaxRetries < 0 {
			return fmt.Errorf("provider %q: max_retries must be non-negative", p.Name)
		}
	}

	if err := c.Scoring.Validate(); err != nil {
		return err
	}

	if c.RateLimit.MaxRequests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit: max_requests and window must be positive")
	}

	return nil
}
