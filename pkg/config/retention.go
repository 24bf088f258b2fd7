package config

import "time"

// RetentionAction is what the retention manager does with an expired entity.
type RetentionAction string

// Retention actions.
const (
	RetentionArchive RetentionAction = "archive"
	RetentionDelete  RetentionAction = "delete"
)

// RetentionPolicy declares how long one entity class is kept and what
// happens afterwards.
type RetentionPolicy struct {
	Entity string          `yaml:"entity"`
	Keep   time.Duration   `yaml:"keep"`
	Action RetentionAction `yaml:"action"`

	// RequireAudit refuses the action unless at least one audit event
	// references the entity.
	RequireAudit bool `yaml:"require_audit"`
}

// RetentionConfig controls the retention manager.
type RetentionConfig struct {
	// Interval is how often the retention loop runs.
	Interval time.Duration `yaml:"interval"`

	// AuditRetentionYears is the minimum retention for audit events and raw
	// provider responses.
	AuditRetentionYears int `yaml:"audit_retention_years"`

	// FailedRequestKeep is the retention for failed requests whose
	// retry_count exceeded the budget; these are hard-deleted.
	FailedRequestKeep time.Duration `yaml:"failed_request_keep"`

	// RequestKeep is the retention for terminal requests before archival.
	RequestKeep time.Duration `yaml:"request_keep"`

	// CategoryResultKeep is the retention for category results.
	CategoryResultKeep time.Duration `yaml:"category_result_keep"`

	// ConflictKeep is the retention for source conflicts.
	ConflictKeep time.Duration `yaml:"conflict_keep"`
}

const day = 24 * time.Hour

// DefaultRetentionConfig returns the built-in retention defaults matching
// the documented policy table.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Interval:            12 * time.Hour,
		AuditRetentionYears: 7,
		FailedRequestKeep:   90 * day,
		RequestKeep:         3 * 365 * day,
		CategoryResultKeep:  2 * 365 * day,
		ConflictKeep:        7 * 365 * day,
	}
}

// AuditKeep returns the audit retention as a duration.
func (c *RetentionConfig) AuditKeep() time.Duration {
	return time.Duration(c.AuditRetentionYears) * 365 * day
}
