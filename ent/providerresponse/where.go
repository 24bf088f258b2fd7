// Code generated by ent, DO NOT EDIT.

package providerresponse

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldID, id))
}

// CategoryResultID applies equality check predicate on the "category_result_id" field. It's identical to CategoryResultIDEQ.
func CategoryResultID(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCategoryResultID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldModel, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldTemperature, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldRawText, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldLatencyMs, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldTokenCount, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCost, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldChecksum, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// RetentionExpiresAt applies equality check predicate on the "retention_expires_at" field. It's identical to RetentionExpiresAtEQ.
func RetentionExpiresAt(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldRetentionExpiresAt, v))
}

// CategoryResultIDEQ applies the EQ predicate on the "category_result_id" field.
func CategoryResultIDEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCategoryResultID, v))
}

// CategoryResultIDNEQ applies the NEQ predicate on the "category_result_id" field.
func CategoryResultIDNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldCategoryResultID, v))
}

// CategoryResultIDIn applies the In predicate on the "category_result_id" field.
func CategoryResultIDIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldCategoryResultID, vs...))
}

// CategoryResultIDNotIn applies the NotIn predicate on the "category_result_id" field.
func CategoryResultIDNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldCategoryResultID, vs...))
}

// CategoryResultIDGT applies the GT predicate on the "category_result_id" field.
func CategoryResultIDGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldCategoryResultID, v))
}

// CategoryResultIDGTE applies the GTE predicate on the "category_result_id" field.
func CategoryResultIDGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldCategoryResultID, v))
}

// CategoryResultIDLT applies the LT predicate on the "category_result_id" field.
func CategoryResultIDLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldCategoryResultID, v))
}

// CategoryResultIDLTE applies the LTE predicate on the "category_result_id" field.
func CategoryResultIDLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldCategoryResultID, v))
}

// CategoryResultIDContains applies the Contains predicate on the "category_result_id" field.
func CategoryResultIDContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldCategoryResultID, v))
}

// CategoryResultIDHasPrefix applies the HasPrefix predicate on the "category_result_id" field.
func CategoryResultIDHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldCategoryResultID, v))
}

// CategoryResultIDHasSuffix applies the HasSuffix predicate on the "category_result_id" field.
func CategoryResultIDHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldCategoryResultID, v))
}

// CategoryResultIDEqualFold applies the EqualFold predicate on the "category_result_id" field.
func CategoryResultIDEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldCategoryResultID, v))
}

// CategoryResultIDContainsFold applies the ContainsFold predicate on the "category_result_id" field.
func CategoryResultIDContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldCategoryResultID, v))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldModel, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldTemperature))
}

// QueryParametersIsNil applies the IsNil predicate on the "query_parameters" field.
func QueryParametersIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldQueryParameters))
}

// QueryParametersNotNil applies the NotNil predicate on the "query_parameters" field.
func QueryParametersNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldQueryParameters))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldRawText, v))
}

// CitedUrlsIsNil applies the IsNil predicate on the "cited_urls" field.
func CitedUrlsIsNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIsNull(FieldCitedUrls))
}

// CitedUrlsNotNil applies the NotNil predicate on the "cited_urls" field.
func CitedUrlsNotNil() predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotNull(FieldCitedUrls))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldLatencyMs, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldTokenCount, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldCost, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldContainsFold(FieldChecksum, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldCreatedAt, v))
}

// RetentionExpiresAtEQ applies the EQ predicate on the "retention_expires_at" field.
func RetentionExpiresAtEQ(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldEQ(FieldRetentionExpiresAt, v))
}

// RetentionExpiresAtNEQ applies the NEQ predicate on the "retention_expires_at" field.
func RetentionExpiresAtNEQ(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNEQ(FieldRetentionExpiresAt, v))
}

// RetentionExpiresAtIn applies the In predicate on the "retention_expires_at" field.
func RetentionExpiresAtIn(vs ...time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldIn(FieldRetentionExpiresAt, vs...))
}

// RetentionExpiresAtNotIn applies the NotIn predicate on the "retention_expires_at" field.
func RetentionExpiresAtNotIn(vs ...time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldNotIn(FieldRetentionExpiresAt, vs...))
}

// RetentionExpiresAtGT applies the GT predicate on the "retention_expires_at" field.
func RetentionExpiresAtGT(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGT(FieldRetentionExpiresAt, v))
}

// RetentionExpiresAtGTE applies the GTE predicate on the "retention_expires_at" field.
func RetentionExpiresAtGTE(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldGTE(FieldRetentionExpiresAt, v))
}

// RetentionExpiresAtLT applies the LT predicate on the "retention_expires_at" field.
func RetentionExpiresAtLT(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLT(FieldRetentionExpiresAt, v))
}

// RetentionExpiresAtLTE applies the LTE predicate on the "retention_expires_at" field.
func RetentionExpiresAtLTE(v time.Time) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.FieldLTE(FieldRetentionExpiresAt, v))
}

// HasCategoryResult applies the HasEdge predicate on the "category_result" edge.
func HasCategoryResult() predicate.ProviderResponse {
	return predicate.ProviderResponse(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryResultTable, CategoryResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryResultWith applies the HasEdge predicate on the "category_result" edge with a given conditions (other predicates).
func HasCategoryResultWith(preds ...predicate.CategoryResult) predicate.ProviderResponse {
	return predicate.ProviderResponse(func(s *sql.Selector) {
		step := newCategoryResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProviderResponse) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProviderResponse) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProviderResponse) predicate.ProviderResponse {
	return predicate.ProviderResponse(sql.NotPredicates(p))
}
