// Code generated by ent, DO NOT EDIT.

package summaryhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContainsFold(FieldID, id))
}

// CategoryResultID applies equality check predicate on the "category_result_id" field. It's identical to CategoryResultIDEQ.
func CategoryResultID(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldCategoryResultID, v))
}

// StyleName applies equality check predicate on the "style_name" field. It's identical to StyleNameEQ.
func StyleName(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldStyleName, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldModel, v))
}

// GeneratedSummary applies equality check predicate on the "generated_summary" field. It's identical to GeneratedSummaryEQ.
func GeneratedSummary(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldGeneratedSummary, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// GenerationTimeMs applies equality check predicate on the "generation_time_ms" field. It's identical to GenerationTimeMsEQ.
func GenerationTimeMs(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldTokensUsed, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldCostEstimate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CategoryResultIDEQ applies the EQ predicate on the "category_result_id" field.
func CategoryResultIDEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldCategoryResultID, v))
}

// CategoryResultIDNEQ applies the NEQ predicate on the "category_result_id" field.
func CategoryResultIDNEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldCategoryResultID, v))
}

// CategoryResultIDIn applies the In predicate on the "category_result_id" field.
func CategoryResultIDIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldCategoryResultID, vs...))
}

// CategoryResultIDNotIn applies the NotIn predicate on the "category_result_id" field.
func CategoryResultIDNotIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldCategoryResultID, vs...))
}

// CategoryResultIDGT applies the GT predicate on the "category_result_id" field.
func CategoryResultIDGT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldCategoryResultID, v))
}

// CategoryResultIDGTE applies the GTE predicate on the "category_result_id" field.
func CategoryResultIDGTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldCategoryResultID, v))
}

// CategoryResultIDLT applies the LT predicate on the "category_result_id" field.
func CategoryResultIDLT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldCategoryResultID, v))
}

// CategoryResultIDLTE applies the LTE predicate on the "category_result_id" field.
func CategoryResultIDLTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldCategoryResultID, v))
}

// CategoryResultIDContains applies the Contains predicate on the "category_result_id" field.
func CategoryResultIDContains(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContains(FieldCategoryResultID, v))
}

// CategoryResultIDHasPrefix applies the HasPrefix predicate on the "category_result_id" field.
func CategoryResultIDHasPrefix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasPrefix(FieldCategoryResultID, v))
}

// CategoryResultIDHasSuffix applies the HasSuffix predicate on the "category_result_id" field.
func CategoryResultIDHasSuffix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasSuffix(FieldCategoryResultID, v))
}

// CategoryResultIDEqualFold applies the EqualFold predicate on the "category_result_id" field.
func CategoryResultIDEqualFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEqualFold(FieldCategoryResultID, v))
}

// CategoryResultIDContainsFold applies the ContainsFold predicate on the "category_result_id" field.
func CategoryResultIDContainsFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContainsFold(FieldCategoryResultID, v))
}

// StyleNameEQ applies the EQ predicate on the "style_name" field.
func StyleNameEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldStyleName, v))
}

// StyleNameNEQ applies the NEQ predicate on the "style_name" field.
func StyleNameNEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldStyleName, v))
}

// StyleNameIn applies the In predicate on the "style_name" field.
func StyleNameIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldStyleName, vs...))
}

// StyleNameNotIn applies the NotIn predicate on the "style_name" field.
func StyleNameNotIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldStyleName, vs...))
}

// StyleNameGT applies the GT predicate on the "style_name" field.
func StyleNameGT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldStyleName, v))
}

// StyleNameGTE applies the GTE predicate on the "style_name" field.
func StyleNameGTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldStyleName, v))
}

// StyleNameLT applies the LT predicate on the "style_name" field.
func StyleNameLT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldStyleName, v))
}

// StyleNameLTE applies the LTE predicate on the "style_name" field.
func StyleNameLTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldStyleName, v))
}

// StyleNameContains applies the Contains predicate on the "style_name" field.
func StyleNameContains(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContains(FieldStyleName, v))
}

// StyleNameHasPrefix applies the HasPrefix predicate on the "style_name" field.
func StyleNameHasPrefix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasPrefix(FieldStyleName, v))
}

// StyleNameHasSuffix applies the HasSuffix predicate on the "style_name" field.
func StyleNameHasSuffix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasSuffix(FieldStyleName, v))
}

// StyleNameEqualFold applies the EqualFold predicate on the "style_name" field.
func StyleNameEqualFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEqualFold(FieldStyleName, v))
}

// StyleNameContainsFold applies the ContainsFold predicate on the "style_name" field.
func StyleNameContainsFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContainsFold(FieldStyleName, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderIsNil applies the IsNil predicate on the "provider" field.
func ProviderIsNil() predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIsNull(FieldProvider))
}

// ProviderNotNil applies the NotNil predicate on the "provider" field.
func ProviderNotNil() predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotNull(FieldProvider))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContainsFold(FieldModel, v))
}

// GeneratedSummaryEQ applies the EQ predicate on the "generated_summary" field.
func GeneratedSummaryEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldGeneratedSummary, v))
}

// GeneratedSummaryNEQ applies the NEQ predicate on the "generated_summary" field.
func GeneratedSummaryNEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldGeneratedSummary, v))
}

// GeneratedSummaryIn applies the In predicate on the "generated_summary" field.
func GeneratedSummaryIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldGeneratedSummary, vs...))
}

// GeneratedSummaryNotIn applies the NotIn predicate on the "generated_summary" field.
func GeneratedSummaryNotIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldGeneratedSummary, vs...))
}

// GeneratedSummaryGT applies the GT predicate on the "generated_summary" field.
func GeneratedSummaryGT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldGeneratedSummary, v))
}

// GeneratedSummaryGTE applies the GTE predicate on the "generated_summary" field.
func GeneratedSummaryGTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldGeneratedSummary, v))
}

// GeneratedSummaryLT applies the LT predicate on the "generated_summary" field.
func GeneratedSummaryLT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldGeneratedSummary, v))
}

// GeneratedSummaryLTE applies the LTE predicate on the "generated_summary" field.
func GeneratedSummaryLTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldGeneratedSummary, v))
}

// GeneratedSummaryContains applies the Contains predicate on the "generated_summary" field.
func GeneratedSummaryContains(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContains(FieldGeneratedSummary, v))
}

// GeneratedSummaryHasPrefix applies the HasPrefix predicate on the "generated_summary" field.
func GeneratedSummaryHasPrefix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasPrefix(FieldGeneratedSummary, v))
}

// GeneratedSummaryHasSuffix applies the HasSuffix predicate on the "generated_summary" field.
func GeneratedSummaryHasSuffix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasSuffix(FieldGeneratedSummary, v))
}

// GeneratedSummaryIsNil applies the IsNil predicate on the "generated_summary" field.
func GeneratedSummaryIsNil() predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIsNull(FieldGeneratedSummary))
}

// GeneratedSummaryNotNil applies the NotNil predicate on the "generated_summary" field.
func GeneratedSummaryNotNil() predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotNull(FieldGeneratedSummary))
}

// GeneratedSummaryEqualFold applies the EqualFold predicate on the "generated_summary" field.
func GeneratedSummaryEqualFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEqualFold(FieldGeneratedSummary, v))
}

// GeneratedSummaryContainsFold applies the ContainsFold predicate on the "generated_summary" field.
func GeneratedSummaryContainsFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContainsFold(FieldGeneratedSummary, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldContainsFold(FieldErrorMessage, v))
}

// GenerationTimeMsEQ applies the EQ predicate on the "generation_time_ms" field.
func GenerationTimeMsEQ(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsNEQ applies the NEQ predicate on the "generation_time_ms" field.
func GenerationTimeMsNEQ(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldGenerationTimeMs, v))
}

// GenerationTimeMsIn applies the In predicate on the "generation_time_ms" field.
func GenerationTimeMsIn(vs ...int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsNotIn applies the NotIn predicate on the "generation_time_ms" field.
func GenerationTimeMsNotIn(vs ...int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldGenerationTimeMs, vs...))
}

// GenerationTimeMsGT applies the GT predicate on the "generation_time_ms" field.
func GenerationTimeMsGT(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsGTE applies the GTE predicate on the "generation_time_ms" field.
func GenerationTimeMsGTE(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLT applies the LT predicate on the "generation_time_ms" field.
func GenerationTimeMsLT(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldGenerationTimeMs, v))
}

// GenerationTimeMsLTE applies the LTE predicate on the "generation_time_ms" field.
func GenerationTimeMsLTE(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldGenerationTimeMs, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldTokensUsed, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldCostEstimate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SummaryHistory) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SummaryHistory) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SummaryHistory) predicate.SummaryHistory {
	return predicate.SummaryHistory(sql.NotPredicates(p))
}
