// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisRequest is the predicate function for analysisrequest builders.
type AnalysisRequest func(*sql.Selector)

// AuditEvent is the predicate function for auditevent builders.
type AuditEvent func(*sql.Selector)

// CategoryDependency is the predicate function for categorydependency builders.
type CategoryDependency func(*sql.Selector)

// CategoryResult is the predicate function for categoryresult builders.
type CategoryResult func(*sql.Selector)

// FinalOutput is the predicate function for finaloutput builders.
type FinalOutput func(*sql.Selector)

// MergedData is the predicate function for mergeddata builders.
type MergedData func(*sql.Selector)

// ParameterResult is the predicate function for parameterresult builders.
type ParameterResult func(*sql.Selector)

// PharmaCategory is the predicate function for pharmacategory builders.
type PharmaCategory func(*sql.Selector)

// PipelineStage is the predicate function for pipelinestage builders.
type PipelineStage func(*sql.Selector)

// ProcessTracking is the predicate function for processtracking builders.
type ProcessTracking func(*sql.Selector)

// ProviderResponse is the predicate function for providerresponse builders.
type ProviderResponse func(*sql.Selector)

// RateBucket is the predicate function for ratebucket builders.
type RateBucket func(*sql.Selector)

// ScoringParameter is the predicate function for scoringparameter builders.
type ScoringParameter func(*sql.Selector)

// ScoringRange is the predicate function for scoringrange builders.
type ScoringRange func(*sql.Selector)

// SourceConflict is the predicate function for sourceconflict builders.
type SourceConflict func(*sql.Selector)

// StageEvent is the predicate function for stageevent builders.
type StageEvent func(*sql.Selector)

// SummaryHistory is the predicate function for summaryhistory builders.
type SummaryHistory func(*sql.Selector)

// SummaryStyle is the predicate function for summarystyle builders.
type SummaryStyle func(*sql.Selector)
