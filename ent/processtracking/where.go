// Code generated by ent, DO NOT EDIT.

package processtracking

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldRequestID, v))
}

// ProgressPercent applies equality check predicate on the "progress_percent" field. It's identical to ProgressPercentEQ.
func ProgressPercent(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldProgressPercent, v))
}

// CategoriesTotal applies equality check predicate on the "categories_total" field. It's identical to CategoriesTotalEQ.
func CategoriesTotal(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCategoriesTotal, v))
}

// CategoriesCompleted applies equality check predicate on the "categories_completed" field. It's identical to CategoriesCompletedEQ.
func CategoriesCompleted(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCategoriesCompleted, v))
}

// EstimatedCompletionAt applies equality check predicate on the "estimated_completion_at" field. It's identical to EstimatedCompletionAtEQ.
func EstimatedCompletionAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldEstimatedCompletionAt, v))
}

// CollectingStartedAt applies equality check predicate on the "collecting_started_at" field. It's identical to CollectingStartedAtEQ.
func CollectingStartedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCollectingStartedAt, v))
}

// CollectingCompletedAt applies equality check predicate on the "collecting_completed_at" field. It's identical to CollectingCompletedAtEQ.
func CollectingCompletedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCollectingCompletedAt, v))
}

// VerifyingStartedAt applies equality check predicate on the "verifying_started_at" field. It's identical to VerifyingStartedAtEQ.
func VerifyingStartedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldVerifyingStartedAt, v))
}

// VerifyingCompletedAt applies equality check predicate on the "verifying_completed_at" field. It's identical to VerifyingCompletedAtEQ.
func VerifyingCompletedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldVerifyingCompletedAt, v))
}

// MergingStartedAt applies equality check predicate on the "merging_started_at" field. It's identical to MergingStartedAtEQ.
func MergingStartedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldMergingStartedAt, v))
}

// MergingCompletedAt applies equality check predicate on the "merging_completed_at" field. It's identical to MergingCompletedAtEQ.
func MergingCompletedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldMergingCompletedAt, v))
}

// SummarizingStartedAt applies equality check predicate on the "summarizing_started_at" field. It's identical to SummarizingStartedAtEQ.
func SummarizingStartedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldSummarizingStartedAt, v))
}

// SummarizingCompletedAt applies equality check predicate on the "summarizing_completed_at" field. It's identical to SummarizingCompletedAtEQ.
func SummarizingCompletedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldSummarizingCompletedAt, v))
}

// ErrorDetails applies equality check predicate on the "error_details" field. It's identical to ErrorDetailsEQ.
func ErrorDetails(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldErrorDetails, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldContainsFold(FieldRequestID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldStatus, vs...))
}

// ProgressPercentEQ applies the EQ predicate on the "progress_percent" field.
func ProgressPercentEQ(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldProgressPercent, v))
}

// ProgressPercentNEQ applies the NEQ predicate on the "progress_percent" field.
func ProgressPercentNEQ(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldProgressPercent, v))
}

// ProgressPercentIn applies the In predicate on the "progress_percent" field.
func ProgressPercentIn(vs ...int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldProgressPercent, vs...))
}

// ProgressPercentNotIn applies the NotIn predicate on the "progress_percent" field.
func ProgressPercentNotIn(vs ...int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldProgressPercent, vs...))
}

// ProgressPercentGT applies the GT predicate on the "progress_percent" field.
func ProgressPercentGT(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldProgressPercent, v))
}

// ProgressPercentGTE applies the GTE predicate on the "progress_percent" field.
func ProgressPercentGTE(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldProgressPercent, v))
}

// ProgressPercentLT applies the LT predicate on the "progress_percent" field.
func ProgressPercentLT(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldProgressPercent, v))
}

// ProgressPercentLTE applies the LTE predicate on the "progress_percent" field.
func ProgressPercentLTE(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldProgressPercent, v))
}

// CategoriesTotalEQ applies the EQ predicate on the "categories_total" field.
func CategoriesTotalEQ(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCategoriesTotal, v))
}

// CategoriesTotalNEQ applies the NEQ predicate on the "categories_total" field.
func CategoriesTotalNEQ(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldCategoriesTotal, v))
}

// CategoriesTotalIn applies the In predicate on the "categories_total" field.
func CategoriesTotalIn(vs ...int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldCategoriesTotal, vs...))
}

// CategoriesTotalNotIn applies the NotIn predicate on the "categories_total" field.
func CategoriesTotalNotIn(vs ...int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldCategoriesTotal, vs...))
}

// CategoriesTotalGT applies the GT predicate on the "categories_total" field.
func CategoriesTotalGT(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldCategoriesTotal, v))
}

// CategoriesTotalGTE applies the GTE predicate on the "categories_total" field.
func CategoriesTotalGTE(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldCategoriesTotal, v))
}

// CategoriesTotalLT applies the LT predicate on the "categories_total" field.
func CategoriesTotalLT(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldCategoriesTotal, v))
}

// CategoriesTotalLTE applies the LTE predicate on the "categories_total" field.
func CategoriesTotalLTE(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldCategoriesTotal, v))
}

// CategoriesCompletedEQ applies the EQ predicate on the "categories_completed" field.
func CategoriesCompletedEQ(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCategoriesCompleted, v))
}

// CategoriesCompletedNEQ applies the NEQ predicate on the "categories_completed" field.
func CategoriesCompletedNEQ(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldCategoriesCompleted, v))
}

// CategoriesCompletedIn applies the In predicate on the "categories_completed" field.
func CategoriesCompletedIn(vs ...int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldCategoriesCompleted, vs...))
}

// CategoriesCompletedNotIn applies the NotIn predicate on the "categories_completed" field.
func CategoriesCompletedNotIn(vs ...int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldCategoriesCompleted, vs...))
}

// CategoriesCompletedGT applies the GT predicate on the "categories_completed" field.
func CategoriesCompletedGT(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldCategoriesCompleted, v))
}

// CategoriesCompletedGTE applies the GTE predicate on the "categories_completed" field.
func CategoriesCompletedGTE(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldCategoriesCompleted, v))
}

// CategoriesCompletedLT applies the LT predicate on the "categories_completed" field.
func CategoriesCompletedLT(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldCategoriesCompleted, v))
}

// CategoriesCompletedLTE applies the LTE predicate on the "categories_completed" field.
func CategoriesCompletedLTE(v int) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldCategoriesCompleted, v))
}

// EstimatedCompletionAtEQ applies the EQ predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldEstimatedCompletionAt, v))
}

// EstimatedCompletionAtNEQ applies the NEQ predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldEstimatedCompletionAt, v))
}

// EstimatedCompletionAtIn applies the In predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldEstimatedCompletionAt, vs...))
}

// EstimatedCompletionAtNotIn applies the NotIn predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldEstimatedCompletionAt, vs...))
}

// EstimatedCompletionAtGT applies the GT predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldEstimatedCompletionAt, v))
}

// EstimatedCompletionAtGTE applies the GTE predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldEstimatedCompletionAt, v))
}

// EstimatedCompletionAtLT applies the LT predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldEstimatedCompletionAt, v))
}

// EstimatedCompletionAtLTE applies the LTE predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldEstimatedCompletionAt, v))
}

// EstimatedCompletionAtIsNil applies the IsNil predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldEstimatedCompletionAt))
}

// EstimatedCompletionAtNotNil applies the NotNil predicate on the "estimated_completion_at" field.
func EstimatedCompletionAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldEstimatedCompletionAt))
}

// CollectingStartedAtEQ applies the EQ predicate on the "collecting_started_at" field.
func CollectingStartedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCollectingStartedAt, v))
}

// CollectingStartedAtNEQ applies the NEQ predicate on the "collecting_started_at" field.
func CollectingStartedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldCollectingStartedAt, v))
}

// CollectingStartedAtIn applies the In predicate on the "collecting_started_at" field.
func CollectingStartedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldCollectingStartedAt, vs...))
}

// CollectingStartedAtNotIn applies the NotIn predicate on the "collecting_started_at" field.
func CollectingStartedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldCollectingStartedAt, vs...))
}

// CollectingStartedAtGT applies the GT predicate on the "collecting_started_at" field.
func CollectingStartedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldCollectingStartedAt, v))
}

// CollectingStartedAtGTE applies the GTE predicate on the "collecting_started_at" field.
func CollectingStartedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldCollectingStartedAt, v))
}

// CollectingStartedAtLT applies the LT predicate on the "collecting_started_at" field.
func CollectingStartedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldCollectingStartedAt, v))
}

// CollectingStartedAtLTE applies the LTE predicate on the "collecting_started_at" field.
func CollectingStartedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldCollectingStartedAt, v))
}

// CollectingStartedAtIsNil applies the IsNil predicate on the "collecting_started_at" field.
func CollectingStartedAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldCollectingStartedAt))
}

// CollectingStartedAtNotNil applies the NotNil predicate on the "collecting_started_at" field.
func CollectingStartedAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldCollectingStartedAt))
}

// CollectingCompletedAtEQ applies the EQ predicate on the "collecting_completed_at" field.
func CollectingCompletedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCollectingCompletedAt, v))
}

// CollectingCompletedAtNEQ applies the NEQ predicate on the "collecting_completed_at" field.
func CollectingCompletedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldCollectingCompletedAt, v))
}

// CollectingCompletedAtIn applies the In predicate on the "collecting_completed_at" field.
func CollectingCompletedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldCollectingCompletedAt, vs...))
}

// CollectingCompletedAtNotIn applies the NotIn predicate on the "collecting_completed_at" field.
func CollectingCompletedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldCollectingCompletedAt, vs...))
}

// CollectingCompletedAtGT applies the GT predicate on the "collecting_completed_at" field.
func CollectingCompletedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldCollectingCompletedAt, v))
}

// CollectingCompletedAtGTE applies the GTE predicate on the "collecting_completed_at" field.
func CollectingCompletedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldCollectingCompletedAt, v))
}

// CollectingCompletedAtLT applies the LT predicate on the "collecting_completed_at" field.
func CollectingCompletedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldCollectingCompletedAt, v))
}

// CollectingCompletedAtLTE applies the LTE predicate on the "collecting_completed_at" field.
func CollectingCompletedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldCollectingCompletedAt, v))
}

// CollectingCompletedAtIsNil applies the IsNil predicate on the "collecting_completed_at" field.
func CollectingCompletedAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldCollectingCompletedAt))
}

// CollectingCompletedAtNotNil applies the NotNil predicate on the "collecting_completed_at" field.
func CollectingCompletedAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldCollectingCompletedAt))
}

// VerifyingStartedAtEQ applies the EQ predicate on the "verifying_started_at" field.
func VerifyingStartedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldVerifyingStartedAt, v))
}

// VerifyingStartedAtNEQ applies the NEQ predicate on the "verifying_started_at" field.
func VerifyingStartedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldVerifyingStartedAt, v))
}

// VerifyingStartedAtIn applies the In predicate on the "verifying_started_at" field.
func VerifyingStartedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldVerifyingStartedAt, vs...))
}

// VerifyingStartedAtNotIn applies the NotIn predicate on the "verifying_started_at" field.
func VerifyingStartedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldVerifyingStartedAt, vs...))
}

// VerifyingStartedAtGT applies the GT predicate on the "verifying_started_at" field.
func VerifyingStartedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldVerifyingStartedAt, v))
}

// VerifyingStartedAtGTE applies the GTE predicate on the "verifying_started_at" field.
func VerifyingStartedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldVerifyingStartedAt, v))
}

// VerifyingStartedAtLT applies the LT predicate on the "verifying_started_at" field.
func VerifyingStartedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldVerifyingStartedAt, v))
}

// VerifyingStartedAtLTE applies the LTE predicate on the "verifying_started_at" field.
func VerifyingStartedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldVerifyingStartedAt, v))
}

// VerifyingStartedAtIsNil applies the IsNil predicate on the "verifying_started_at" field.
func VerifyingStartedAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldVerifyingStartedAt))
}

// VerifyingStartedAtNotNil applies the NotNil predicate on the "verifying_started_at" field.
func VerifyingStartedAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldVerifyingStartedAt))
}

// VerifyingCompletedAtEQ applies the EQ predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldVerifyingCompletedAt, v))
}

// VerifyingCompletedAtNEQ applies the NEQ predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldVerifyingCompletedAt, v))
}

// VerifyingCompletedAtIn applies the In predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldVerifyingCompletedAt, vs...))
}

// VerifyingCompletedAtNotIn applies the NotIn predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldVerifyingCompletedAt, vs...))
}

// VerifyingCompletedAtGT applies the GT predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldVerifyingCompletedAt, v))
}

// VerifyingCompletedAtGTE applies the GTE predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldVerifyingCompletedAt, v))
}

// VerifyingCompletedAtLT applies the LT predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldVerifyingCompletedAt, v))
}

// VerifyingCompletedAtLTE applies the LTE predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldVerifyingCompletedAt, v))
}

// VerifyingCompletedAtIsNil applies the IsNil predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldVerifyingCompletedAt))
}

// VerifyingCompletedAtNotNil applies the NotNil predicate on the "verifying_completed_at" field.
func VerifyingCompletedAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldVerifyingCompletedAt))
}

// MergingStartedAtEQ applies the EQ predicate on the "merging_started_at" field.
func MergingStartedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldMergingStartedAt, v))
}

// MergingStartedAtNEQ applies the NEQ predicate on the "merging_started_at" field.
func MergingStartedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldMergingStartedAt, v))
}

// MergingStartedAtIn applies the In predicate on the "merging_started_at" field.
func MergingStartedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldMergingStartedAt, vs...))
}

// MergingStartedAtNotIn applies the NotIn predicate on the "merging_started_at" field.
func MergingStartedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldMergingStartedAt, vs...))
}

// MergingStartedAtGT applies the GT predicate on the "merging_started_at" field.
func MergingStartedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldMergingStartedAt, v))
}

// MergingStartedAtGTE applies the GTE predicate on the "merging_started_at" field.
func MergingStartedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldMergingStartedAt, v))
}

// MergingStartedAtLT applies the LT predicate on the "merging_started_at" field.
func MergingStartedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldMergingStartedAt, v))
}

// MergingStartedAtLTE applies the LTE predicate on the "merging_started_at" field.
func MergingStartedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldMergingStartedAt, v))
}

// MergingStartedAtIsNil applies the IsNil predicate on the "merging_started_at" field.
func MergingStartedAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldMergingStartedAt))
}

// MergingStartedAtNotNil applies the NotNil predicate on the "merging_started_at" field.
func MergingStartedAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldMergingStartedAt))
}

// MergingCompletedAtEQ applies the EQ predicate on the "merging_completed_at" field.
func MergingCompletedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldMergingCompletedAt, v))
}

// MergingCompletedAtNEQ applies the NEQ predicate on the "merging_completed_at" field.
func MergingCompletedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldMergingCompletedAt, v))
}

// MergingCompletedAtIn applies the In predicate on the "merging_completed_at" field.
func MergingCompletedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldMergingCompletedAt, vs...))
}

// MergingCompletedAtNotIn applies the NotIn predicate on the "merging_completed_at" field.
func MergingCompletedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldMergingCompletedAt, vs...))
}

// MergingCompletedAtGT applies the GT predicate on the "merging_completed_at" field.
func MergingCompletedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldMergingCompletedAt, v))
}

// MergingCompletedAtGTE applies the GTE predicate on the "merging_completed_at" field.
func MergingCompletedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldMergingCompletedAt, v))
}

// MergingCompletedAtLT applies the LT predicate on the "merging_completed_at" field.
func MergingCompletedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldMergingCompletedAt, v))
}

// MergingCompletedAtLTE applies the LTE predicate on the "merging_completed_at" field.
func MergingCompletedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldMergingCompletedAt, v))
}

// MergingCompletedAtIsNil applies the IsNil predicate on the "merging_completed_at" field.
func MergingCompletedAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldMergingCompletedAt))
}

// MergingCompletedAtNotNil applies the NotNil predicate on the "merging_completed_at" field.
func MergingCompletedAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldMergingCompletedAt))
}

// SummarizingStartedAtEQ applies the EQ predicate on the "summarizing_started_at" field.
func SummarizingStartedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldSummarizingStartedAt, v))
}

// SummarizingStartedAtNEQ applies the NEQ predicate on the "summarizing_started_at" field.
func SummarizingStartedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldSummarizingStartedAt, v))
}

// SummarizingStartedAtIn applies the In predicate on the "summarizing_started_at" field.
func SummarizingStartedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldSummarizingStartedAt, vs...))
}

// SummarizingStartedAtNotIn applies the NotIn predicate on the "summarizing_started_at" field.
func SummarizingStartedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldSummarizingStartedAt, vs...))
}

// SummarizingStartedAtGT applies the GT predicate on the "summarizing_started_at" field.
func SummarizingStartedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldSummarizingStartedAt, v))
}

// SummarizingStartedAtGTE applies the GTE predicate on the "summarizing_started_at" field.
func SummarizingStartedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldSummarizingStartedAt, v))
}

// SummarizingStartedAtLT applies the LT predicate on the "summarizing_started_at" field.
func SummarizingStartedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldSummarizingStartedAt, v))
}

// SummarizingStartedAtLTE applies the LTE predicate on the "summarizing_started_at" field.
func SummarizingStartedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldSummarizingStartedAt, v))
}

// SummarizingStartedAtIsNil applies the IsNil predicate on the "summarizing_started_at" field.
func SummarizingStartedAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldSummarizingStartedAt))
}

// SummarizingStartedAtNotNil applies the NotNil predicate on the "summarizing_started_at" field.
func SummarizingStartedAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldSummarizingStartedAt))
}

// SummarizingCompletedAtEQ applies the EQ predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldSummarizingCompletedAt, v))
}

// SummarizingCompletedAtNEQ applies the NEQ predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldSummarizingCompletedAt, v))
}

// SummarizingCompletedAtIn applies the In predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldSummarizingCompletedAt, vs...))
}

// SummarizingCompletedAtNotIn applies the NotIn predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldSummarizingCompletedAt, vs...))
}

// SummarizingCompletedAtGT applies the GT predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldSummarizingCompletedAt, v))
}

// SummarizingCompletedAtGTE applies the GTE predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldSummarizingCompletedAt, v))
}

// SummarizingCompletedAtLT applies the LT predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldSummarizingCompletedAt, v))
}

// SummarizingCompletedAtLTE applies the LTE predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldSummarizingCompletedAt, v))
}

// SummarizingCompletedAtIsNil applies the IsNil predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldSummarizingCompletedAt))
}

// SummarizingCompletedAtNotNil applies the NotNil predicate on the "summarizing_completed_at" field.
func SummarizingCompletedAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldSummarizingCompletedAt))
}

// ErrorDetailsEQ applies the EQ predicate on the "error_details" field.
func ErrorDetailsEQ(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldErrorDetails, v))
}

// ErrorDetailsNEQ applies the NEQ predicate on the "error_details" field.
func ErrorDetailsNEQ(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldErrorDetails, v))
}

// ErrorDetailsIn applies the In predicate on the "error_details" field.
func ErrorDetailsIn(vs ...string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldErrorDetails, vs...))
}

// ErrorDetailsNotIn applies the NotIn predicate on the "error_details" field.
func ErrorDetailsNotIn(vs ...string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldErrorDetails, vs...))
}

// ErrorDetailsGT applies the GT predicate on the "error_details" field.
func ErrorDetailsGT(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldErrorDetails, v))
}

// ErrorDetailsGTE applies the GTE predicate on the "error_details" field.
func ErrorDetailsGTE(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldErrorDetails, v))
}

// ErrorDetailsLT applies the LT predicate on the "error_details" field.
func ErrorDetailsLT(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldErrorDetails, v))
}

// ErrorDetailsLTE applies the LTE predicate on the "error_details" field.
func ErrorDetailsLTE(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldErrorDetails, v))
}

// ErrorDetailsContains applies the Contains predicate on the "error_details" field.
func ErrorDetailsContains(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldContains(FieldErrorDetails, v))
}

// ErrorDetailsHasPrefix applies the HasPrefix predicate on the "error_details" field.
func ErrorDetailsHasPrefix(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldHasPrefix(FieldErrorDetails, v))
}

// ErrorDetailsHasSuffix applies the HasSuffix predicate on the "error_details" field.
func ErrorDetailsHasSuffix(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldHasSuffix(FieldErrorDetails, v))
}

// ErrorDetailsIsNil applies the IsNil predicate on the "error_details" field.
func ErrorDetailsIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldErrorDetails))
}

// ErrorDetailsNotNil applies the NotNil predicate on the "error_details" field.
func ErrorDetailsNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldErrorDetails))
}

// ErrorDetailsEqualFold applies the EqualFold predicate on the "error_details" field.
func ErrorDetailsEqualFold(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEqualFold(FieldErrorDetails, v))
}

// ErrorDetailsContainsFold applies the ContainsFold predicate on the "error_details" field.
func ErrorDetailsContainsFold(v string) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldContainsFold(FieldErrorDetails, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.ProcessTracking {
	return predicate.ProcessTracking(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.AnalysisRequest) predicate.ProcessTracking {
	return predicate.ProcessTracking(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessTracking) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessTracking) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessTracking) predicate.ProcessTracking {
	return predicate.ProcessTracking(sql.NotPredicates(p))
}
