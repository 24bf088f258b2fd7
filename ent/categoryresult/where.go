// Code generated by ent, DO NOT EDIT.

package categoryresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldRequestID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryName applies equality check predicate on the "category_name" field. It's identical to CategoryNameEQ.
func CategoryName(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldCategoryName, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldSummary, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldConfidenceScore, v))
}

// DataQualityScore applies equality check predicate on the "data_quality_score" field. It's identical to DataQualityScoreEQ.
func DataQualityScore(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldDataQualityScore, v))
}

// SkipReason applies equality check predicate on the "skip_reason" field. It's identical to SkipReasonEQ.
func SkipReason(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldSkipReason, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldRetryCount, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldErrorMessage, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldCompletedAt, v))
}

// APICallsMade applies equality check predicate on the "api_calls_made" field. It's identical to APICallsMadeEQ.
func APICallsMade(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldAPICallsMade, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldTokenCount, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldCostEstimate, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldDeletedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContainsFold(FieldRequestID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContainsFold(FieldCategoryID, v))
}

// CategoryNameEQ applies the EQ predicate on the "category_name" field.
func CategoryNameEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldCategoryName, v))
}

// CategoryNameNEQ applies the NEQ predicate on the "category_name" field.
func CategoryNameNEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldCategoryName, v))
}

// CategoryNameIn applies the In predicate on the "category_name" field.
func CategoryNameIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldCategoryName, vs...))
}

// CategoryNameNotIn applies the NotIn predicate on the "category_name" field.
func CategoryNameNotIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldCategoryName, vs...))
}

// CategoryNameGT applies the GT predicate on the "category_name" field.
func CategoryNameGT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldCategoryName, v))
}

// CategoryNameGTE applies the GTE predicate on the "category_name" field.
func CategoryNameGTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldCategoryName, v))
}

// CategoryNameLT applies the LT predicate on the "category_name" field.
func CategoryNameLT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldCategoryName, v))
}

// CategoryNameLTE applies the LTE predicate on the "category_name" field.
func CategoryNameLTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldCategoryName, v))
}

// CategoryNameContains applies the Contains predicate on the "category_name" field.
func CategoryNameContains(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContains(FieldCategoryName, v))
}

// CategoryNameHasPrefix applies the HasPrefix predicate on the "category_name" field.
func CategoryNameHasPrefix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasPrefix(FieldCategoryName, v))
}

// CategoryNameHasSuffix applies the HasSuffix predicate on the "category_name" field.
func CategoryNameHasSuffix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasSuffix(FieldCategoryName, v))
}

// CategoryNameEqualFold applies the EqualFold predicate on the "category_name" field.
func CategoryNameEqualFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEqualFold(FieldCategoryName, v))
}

// CategoryNameContainsFold applies the ContainsFold predicate on the "category_name" field.
func CategoryNameContainsFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContainsFold(FieldCategoryName, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContainsFold(FieldSummary, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldConfidenceScore, v))
}

// DataQualityScoreEQ applies the EQ predicate on the "data_quality_score" field.
func DataQualityScoreEQ(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldDataQualityScore, v))
}

// DataQualityScoreNEQ applies the NEQ predicate on the "data_quality_score" field.
func DataQualityScoreNEQ(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldDataQualityScore, v))
}

// DataQualityScoreIn applies the In predicate on the "data_quality_score" field.
func DataQualityScoreIn(vs ...float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldDataQualityScore, vs...))
}

// DataQualityScoreNotIn applies the NotIn predicate on the "data_quality_score" field.
func DataQualityScoreNotIn(vs ...float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldDataQualityScore, vs...))
}

// DataQualityScoreGT applies the GT predicate on the "data_quality_score" field.
func DataQualityScoreGT(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldDataQualityScore, v))
}

// DataQualityScoreGTE applies the GTE predicate on the "data_quality_score" field.
func DataQualityScoreGTE(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldDataQualityScore, v))
}

// DataQualityScoreLT applies the LT predicate on the "data_quality_score" field.
func DataQualityScoreLT(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldDataQualityScore, v))
}

// DataQualityScoreLTE applies the LTE predicate on the "data_quality_score" field.
func DataQualityScoreLTE(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldDataQualityScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldStatus, vs...))
}

// SkipReasonEQ applies the EQ predicate on the "skip_reason" field.
func SkipReasonEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldSkipReason, v))
}

// SkipReasonNEQ applies the NEQ predicate on the "skip_reason" field.
func SkipReasonNEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldSkipReason, v))
}

// SkipReasonIn applies the In predicate on the "skip_reason" field.
func SkipReasonIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldSkipReason, vs...))
}

// SkipReasonNotIn applies the NotIn predicate on the "skip_reason" field.
func SkipReasonNotIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldSkipReason, vs...))
}

// SkipReasonGT applies the GT predicate on the "skip_reason" field.
func SkipReasonGT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldSkipReason, v))
}

// SkipReasonGTE applies the GTE predicate on the "skip_reason" field.
func SkipReasonGTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldSkipReason, v))
}

// SkipReasonLT applies the LT predicate on the "skip_reason" field.
func SkipReasonLT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldSkipReason, v))
}

// SkipReasonLTE applies the LTE predicate on the "skip_reason" field.
func SkipReasonLTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldSkipReason, v))
}

// SkipReasonContains applies the Contains predicate on the "skip_reason" field.
func SkipReasonContains(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContains(FieldSkipReason, v))
}

// SkipReasonHasPrefix applies the HasPrefix predicate on the "skip_reason" field.
func SkipReasonHasPrefix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasPrefix(FieldSkipReason, v))
}

// SkipReasonHasSuffix applies the HasSuffix predicate on the "skip_reason" field.
func SkipReasonHasSuffix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasSuffix(FieldSkipReason, v))
}

// SkipReasonIsNil applies the IsNil predicate on the "skip_reason" field.
func SkipReasonIsNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIsNull(FieldSkipReason))
}

// SkipReasonNotNil applies the NotNil predicate on the "skip_reason" field.
func SkipReasonNotNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotNull(FieldSkipReason))
}

// SkipReasonEqualFold applies the EqualFold predicate on the "skip_reason" field.
func SkipReasonEqualFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEqualFold(FieldSkipReason, v))
}

// SkipReasonContainsFold applies the ContainsFold predicate on the "skip_reason" field.
func SkipReasonContainsFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContainsFold(FieldSkipReason, v))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIsNil applies the IsNil predicate on the "processing_time_ms" field.
func ProcessingTimeMsIsNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIsNull(FieldProcessingTimeMs))
}

// ProcessingTimeMsNotNil applies the NotNil predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotNull(FieldProcessingTimeMs))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldRetryCount, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldContainsFold(FieldErrorMessage, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotNull(FieldCompletedAt))
}

// APICallsMadeEQ applies the EQ predicate on the "api_calls_made" field.
func APICallsMadeEQ(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldAPICallsMade, v))
}

// APICallsMadeNEQ applies the NEQ predicate on the "api_calls_made" field.
func APICallsMadeNEQ(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldAPICallsMade, v))
}

// APICallsMadeIn applies the In predicate on the "api_calls_made" field.
func APICallsMadeIn(vs ...int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldAPICallsMade, vs...))
}

// APICallsMadeNotIn applies the NotIn predicate on the "api_calls_made" field.
func APICallsMadeNotIn(vs ...int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldAPICallsMade, vs...))
}

// APICallsMadeGT applies the GT predicate on the "api_calls_made" field.
func APICallsMadeGT(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldAPICallsMade, v))
}

// APICallsMadeGTE applies the GTE predicate on the "api_calls_made" field.
func APICallsMadeGTE(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldAPICallsMade, v))
}

// APICallsMadeLT applies the LT predicate on the "api_calls_made" field.
func APICallsMadeLT(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldAPICallsMade, v))
}

// APICallsMadeLTE applies the LTE predicate on the "api_calls_made" field.
func APICallsMadeLTE(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldAPICallsMade, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldTokenCount, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldCostEstimate, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.CategoryResult {
	return predicate.CategoryResult(sql.FieldNotNull(FieldDeletedAt))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.CategoryResult {
	return predicate.CategoryResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.AnalysisRequest) predicate.CategoryResult {
	return predicate.CategoryResult(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProviderResponses applies the HasEdge predicate on the "provider_responses" edge.
func HasProviderResponses() predicate.CategoryResult {
	return predicate.CategoryResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProviderResponsesTable, ProviderResponsesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProviderResponsesWith applies the HasEdge predicate on the "provider_responses" edge with a given conditions (other predicates).
func HasProviderResponsesWith(preds ...predicate.ProviderResponse) predicate.CategoryResult {
	return predicate.CategoryResult(func(s *sql.Selector) {
		step := newProviderResponsesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMergedData applies the HasEdge predicate on the "merged_data" edge.
func HasMergedData() predicate.CategoryResult {
	return predicate.CategoryResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, MergedDataTable, MergedDataColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMergedDataWith applies the HasEdge predicate on the "merged_data" edge with a given conditions (other predicates).
func HasMergedDataWith(preds ...predicate.MergedData) predicate.CategoryResult {
	return predicate.CategoryResult(func(s *sql.Selector) {
		step := newMergedDataStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConflicts applies the HasEdge predicate on the "conflicts" edge.
func HasConflicts() predicate.CategoryResult {
	return predicate.CategoryResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConflictsTable, ConflictsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConflictsWith applies the HasEdge predicate on the "conflicts" edge with a given conditions (other predicates).
func HasConflictsWith(preds ...predicate.SourceConflict) predicate.CategoryResult {
	return predicate.CategoryResult(func(s *sql.Selector) {
		step := newConflictsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CategoryResult) predicate.CategoryResult {
	return predicate.CategoryResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CategoryResult) predicate.CategoryResult {
	return predicate.CategoryResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CategoryResult) predicate.CategoryResult {
	return predicate.CategoryResult(sql.NotPredicates(p))
}
