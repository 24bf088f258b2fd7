package config

import (
	"os"
	"time"
)

// StageName identifies one of the four fixed pipeline stages.
type StageName string

// Pipeline stages in execution order.
const (
	StageCollect   StageName = "collect"
	StageVerify    StageName = "verify"
	StageMerge     StageName = "merge"
	StageSummarize StageName = "summarize"
)

// StageOrder is the fixed pipeline stage order.
var StageOrder = []StageName{StageCollect, StageVerify, StageMerge, StageSummarize}

// StagesConfig holds per-stage enable toggles and deadlines, plus the mean
// stage durations used for completion estimates.
type StagesConfig struct {
	// Enabled toggles each stage. Disabled stages are skipped: the executor
	// records a skipped StageEvent and forwards input unchanged.
	Enabled map[StageName]bool `yaml:"enabled"`

	// StageDeadline bounds a single stage execution for one category.
	StageDeadline time.Duration `yaml:"stage_deadline"`

	// CategoryDeadline bounds the whole four-stage pipeline for one category.
	CategoryDeadline time.Duration `yaml:"category_deadline"`

	// MeanDurations are per-status mean processing minutes used by the
	// estimated-completion formula.
	MeanDurations map[string]float64 `yaml:"mean_durations_minutes"`
}

// DefaultStagesConfig returns the built-in stage defaults.
func DefaultStagesConfig() *StagesConfig {
	return &StagesConfig{
		Enabled: map[StageName]bool{
			StageCollect:   true,
			StageVerify:    true,
			StageMerge:     true,
			StageSummarize: true,
		},
		StageDeadline:    5 * time.Minute,
		CategoryDeadline: 20 * time.Minute,
		MeanDurations: map[string]float64{
			"collecting":  8,
			"verifying":   2,
			"merging":     3,
			"summarizing": 2,
		},
	}
}

// IsEnabled reports whether a stage is enabled.
func (s *StagesConfig) IsEnabled(stage StageName) bool {
	enabled, ok := s.Enabled[stage]
	return !ok || enabled
}

// stage toggle environment variables, e.g. STAGE_COLLECT_ENABLED=false.
var stageToggleEnv = map[StageName]string{
	StageCollect:   "STAGE_COLLECT_ENABLED",
	StageVerify:    "STAGE_VERIFY_ENABLED",
	StageMerge:     "STAGE_MERGE_ENABLED",
	StageSummarize: "STAGE_SUMMARIZE_ENABLED",
}

// applyEnvToggles overrides stage toggles from the environment.
func (s *StagesConfig) applyEnvToggles() {
	for stage, key := range stageToggleEnv {
		switch os.Getenv(key) {
		case "false", "0":
			s.Enabled[stage] = false
		case "true", "1":
			s.Enabled[stage] = true
		}
	}
}
