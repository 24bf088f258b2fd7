package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// EngineYAMLConfig represents the complete engine.yaml file structure.
// Every section is optional; omitted sections fall back to built-ins.
type EngineYAMLConfig struct {
	Defaults   *Defaults                      `yaml:"defaults"`
	Queue      *QueueConfig                   `yaml:"queue"`
	Stages     *StagesConfig                  `yaml:"stages"`
	Retention  *RetentionConfig               `yaml:"retention"`
	RateLimit  *RateLimitConfig               `yaml:"rate_limit"`
	Categories map[string]*CategoryConfig     `yaml:"categories"`
	Providers  map[string]*ProviderConfig     `yaml:"providers"`
	Styles     map[string]*SummaryStyleConfig `yaml:"summary_styles"`
	Scoring    *ScoringConfig                 `yaml:"scoring"`
}

// Initialize loads, merges, validates, and returns ready-to-use configuration.
//
// Steps:
//  1. Read engine.yaml from configDir (optional; built-ins apply without it)
//  2. Expand {{.VAR}} environment references
//  3. Merge user config over built-in defaults
//  4. Apply environment overrides (stage toggles, rate limits, P1_MAX_PARALLEL)
//  5. Build registries and validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	user := &EngineYAMLConfig{}
	path := filepath.Join(configDir, "engine.yaml")
	if data, err := os.ReadFile(path); err == nil {
		data = ExpandEnv(data)
		if err := yaml.Unmarshal(data, user); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		log.Info("Loaded engine.yaml")
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	} else {
		log.Info("No engine.yaml found, using built-in configuration")
	}

	cfg := &Config{
		configDir: configDir,
		Defaults:  DefaultDefaults(),
		Queue:     DefaultQueueConfig(),
		Stages:    DefaultStagesConfig(),
		Retention: DefaultRetentionConfig(),
		RateLimit: DefaultRateLimitConfig(),
		Scoring:   builtinScoring(),
	}

	if user.Defaults != nil {
		if err := mergo.Merge(cfg.Defaults, user.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}
	if user.Queue != nil {
		if err := mergo.Merge(cfg.Queue, user.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}
	if user.Stages != nil {
		if err := mergo.Merge(cfg.Stages, user.Stages, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge stages config: %w", err)
		}
	}
	if user.Retention != nil {
		if err := mergo.Merge(cfg.Retention, user.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}
	if user.RateLimit != nil {
		if err := mergo.Merge(cfg.RateLimit, user.RateLimit, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge rate limit config: %w", err)
		}
	}
	if user.Scoring != nil && len(user.Scoring.Ranges) > 0 {
		cfg.Scoring = user.Scoring
	}

	categories := builtinCategories()
	for key, c := range user.Categories {
		if existing, ok := categories[key]; ok {
			if err := mergo.Merge(existing, c, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge category %q: %w", key, err)
			}
		} else {
			if c.Key == "" {
				c.Key = key
			}
			categories[key] = c
		}
	}

	providers := builtinProviders()
	for name, p := range user.Providers {
		if existing, ok := providers[name]; ok {
			if err := mergo.Merge(existing, p, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge provider %q: %w", name, err)
			}
		} else {
			if p.Name == "" {
				p.Name = name
			}
			providers[name] = p
		}
	}

	styles := builtinStyles()
	for name, s := range user.Styles {
		if existing, ok := styles[name]; ok {
			if err := mergo.Merge(existing, s, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge style %q: %w", name, err)
			}
		} else {
			if s.Name == "" {
				s.Name = name
			}
			styles[name] = s
		}
	}

	// Environment overrides
	cfg.Stages.applyEnvToggles()
	if v := os.Getenv("P1_MAX_PARALLEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Queue.P1MaxParallel = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_MAX_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit.MaxRequests = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW_S"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit.Window = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("AUDIT_RETENTION_YEARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retention.AuditRetentionYears = n
		}
	}

	cfg.CategoryRegistry = NewCategoryRegistry(categories)
	cfg.ProviderRegistry = NewProviderRegistry(providers)
	cfg.StyleRegistry = NewStyleRegistry(styles)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized",
		"categories", stats.Categories,
		"providers", stats.Providers,
		"styles", stats.Styles,
		"rubric_rows", stats.RubricRows)

	return cfg, nil
}
