package config

// Config is the umbrella configuration object returned by Initialize() and
// passed through constructor wiring. Core packages receive it explicitly;
// nothing reads configuration from globals.
type Config struct {
	configDir string

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Pipeline stage toggles and deadlines
	Stages *StagesConfig

	// Retention policies
	Retention *RetentionConfig

	// Rate limiting
	RateLimit *RateLimitConfig

	// Component registries
	CategoryRegistry *CategoryRegistry
	ProviderRegistry *ProviderRegistry
	StyleRegistry    *StyleRegistry
	Scoring          *ScoringConfig
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Categories int
	Providers  int
	Styles     int
	RubricRows int
}

// Stats returns configuration statistics for logging.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.CategoryRegistry != nil {
		s.Categories = c.CategoryRegistry.Len()
	}
	if c.ProviderRegistry != nil {
		s.Providers = c.ProviderRegistry.Len()
	}
	if c.StyleRegistry != nil {
		s.Styles = c.StyleRegistry.Len()
	}
	if c.Scoring != nil {
		s.RubricRows = len(c.Scoring.Ranges)
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetCategory retrieves a category configuration by key.
func (c *Config) GetCategory(key string) (*CategoryConfig, error) {
	return c.CategoryRegistry.Get(key)
}

// GetProvider retrieves a provider configuration by name.
func (c *Config) GetProvider(name string) (*ProviderConfig, error) {
	return c.ProviderRegistry.Get(name)
}

// GetStyle retrieves a summary style by name.
func (c *Config) GetStyle(name string) (*SummaryStyleConfig, error) {
	return c.StyleRegistry.Get(name)
}
