// Code generated by ent, DO NOT EDIT.

package parameterresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldRequestID, v))
}

// ExtractedValue applies equality check predicate on the "extracted_value" field. It's identical to ExtractedValueEQ.
func ExtractedValue(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldExtractedValue, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldUnit, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldScore, v))
}

// WeightedScore applies equality check predicate on the "weighted_score" field. It's identical to WeightedScoreEQ.
func WeightedScore(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldWeightedScore, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldRationale, v))
}

// RangeText applies equality check predicate on the "range_text" field. It's identical to RangeTextEQ.
func RangeText(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldRangeText, v))
}

// IsExclusion applies equality check predicate on the "is_exclusion" field. It's identical to IsExclusionEQ.
func IsExclusion(v bool) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldIsExclusion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldContainsFold(FieldRequestID, v))
}

// ParameterEQ applies the EQ predicate on the "parameter" field.
func ParameterEQ(v Parameter) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldParameter, v))
}

// ParameterNEQ applies the NEQ predicate on the "parameter" field.
func ParameterNEQ(v Parameter) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldParameter, v))
}

// ParameterIn applies the In predicate on the "parameter" field.
func ParameterIn(vs ...Parameter) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldParameter, vs...))
}

// ParameterNotIn applies the NotIn predicate on the "parameter" field.
func ParameterNotIn(vs ...Parameter) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldParameter, vs...))
}

// DeliveryMethodEQ applies the EQ predicate on the "delivery_method" field.
func DeliveryMethodEQ(v DeliveryMethod) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldDeliveryMethod, v))
}

// DeliveryMethodNEQ applies the NEQ predicate on the "delivery_method" field.
func DeliveryMethodNEQ(v DeliveryMethod) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldDeliveryMethod, v))
}

// DeliveryMethodIn applies the In predicate on the "delivery_method" field.
func DeliveryMethodIn(vs ...DeliveryMethod) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldDeliveryMethod, vs...))
}

// DeliveryMethodNotIn applies the NotIn predicate on the "delivery_method" field.
func DeliveryMethodNotIn(vs ...DeliveryMethod) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldDeliveryMethod, vs...))
}

// ExtractedValueEQ applies the EQ predicate on the "extracted_value" field.
func ExtractedValueEQ(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldExtractedValue, v))
}

// ExtractedValueNEQ applies the NEQ predicate on the "extracted_value" field.
func ExtractedValueNEQ(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldExtractedValue, v))
}

// ExtractedValueIn applies the In predicate on the "extracted_value" field.
func ExtractedValueIn(vs ...float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldExtractedValue, vs...))
}

// ExtractedValueNotIn applies the NotIn predicate on the "extracted_value" field.
func ExtractedValueNotIn(vs ...float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldExtractedValue, vs...))
}

// ExtractedValueGT applies the GT predicate on the "extracted_value" field.
func ExtractedValueGT(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGT(FieldExtractedValue, v))
}

// ExtractedValueGTE applies the GTE predicate on the "extracted_value" field.
func ExtractedValueGTE(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGTE(FieldExtractedValue, v))
}

// ExtractedValueLT applies the LT predicate on the "extracted_value" field.
func ExtractedValueLT(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLT(FieldExtractedValue, v))
}

// ExtractedValueLTE applies the LTE predicate on the "extracted_value" field.
func ExtractedValueLTE(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLTE(FieldExtractedValue, v))
}

// ExtractedValueIsNil applies the IsNil predicate on the "extracted_value" field.
func ExtractedValueIsNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIsNull(FieldExtractedValue))
}

// ExtractedValueNotNil applies the NotNil predicate on the "extracted_value" field.
func ExtractedValueNotNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotNull(FieldExtractedValue))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldContainsFold(FieldUnit, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotNull(FieldScore))
}

// WeightedScoreEQ applies the EQ predicate on the "weighted_score" field.
func WeightedScoreEQ(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldWeightedScore, v))
}

// WeightedScoreNEQ applies the NEQ predicate on the "weighted_score" field.
func WeightedScoreNEQ(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldWeightedScore, v))
}

// WeightedScoreIn applies the In predicate on the "weighted_score" field.
func WeightedScoreIn(vs ...float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldWeightedScore, vs...))
}

// WeightedScoreNotIn applies the NotIn predicate on the "weighted_score" field.
func WeightedScoreNotIn(vs ...float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldWeightedScore, vs...))
}

// WeightedScoreGT applies the GT predicate on the "weighted_score" field.
func WeightedScoreGT(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGT(FieldWeightedScore, v))
}

// WeightedScoreGTE applies the GTE predicate on the "weighted_score" field.
func WeightedScoreGTE(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGTE(FieldWeightedScore, v))
}

// WeightedScoreLT applies the LT predicate on the "weighted_score" field.
func WeightedScoreLT(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLT(FieldWeightedScore, v))
}

// WeightedScoreLTE applies the LTE predicate on the "weighted_score" field.
func WeightedScoreLTE(v float64) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLTE(FieldWeightedScore, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldContainsFold(FieldRationale, v))
}

// RangeTextEQ applies the EQ predicate on the "range_text" field.
func RangeTextEQ(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldRangeText, v))
}

// RangeTextNEQ applies the NEQ predicate on the "range_text" field.
func RangeTextNEQ(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldRangeText, v))
}

// RangeTextIn applies the In predicate on the "range_text" field.
func RangeTextIn(vs ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldRangeText, vs...))
}

// RangeTextNotIn applies the NotIn predicate on the "range_text" field.
func RangeTextNotIn(vs ...string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldRangeText, vs...))
}

// RangeTextGT applies the GT predicate on the "range_text" field.
func RangeTextGT(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGT(FieldRangeText, v))
}

// RangeTextGTE applies the GTE predicate on the "range_text" field.
func RangeTextGTE(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGTE(FieldRangeText, v))
}

// RangeTextLT applies the LT predicate on the "range_text" field.
func RangeTextLT(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLT(FieldRangeText, v))
}

// RangeTextLTE applies the LTE predicate on the "range_text" field.
func RangeTextLTE(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLTE(FieldRangeText, v))
}

// RangeTextContains applies the Contains predicate on the "range_text" field.
func RangeTextContains(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldContains(FieldRangeText, v))
}

// RangeTextHasPrefix applies the HasPrefix predicate on the "range_text" field.
func RangeTextHasPrefix(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldHasPrefix(FieldRangeText, v))
}

// RangeTextHasSuffix applies the HasSuffix predicate on the "range_text" field.
func RangeTextHasSuffix(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldHasSuffix(FieldRangeText, v))
}

// RangeTextIsNil applies the IsNil predicate on the "range_text" field.
func RangeTextIsNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIsNull(FieldRangeText))
}

// RangeTextNotNil applies the NotNil predicate on the "range_text" field.
func RangeTextNotNil() predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotNull(FieldRangeText))
}

// RangeTextEqualFold applies the EqualFold predicate on the "range_text" field.
func RangeTextEqualFold(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEqualFold(FieldRangeText, v))
}

// RangeTextContainsFold applies the ContainsFold predicate on the "range_text" field.
func RangeTextContainsFold(v string) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldContainsFold(FieldRangeText, v))
}

// IsExclusionEQ applies the EQ predicate on the "is_exclusion" field.
func IsExclusionEQ(v bool) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldIsExclusion, v))
}

// IsExclusionNEQ applies the NEQ predicate on the "is_exclusion" field.
func IsExclusionNEQ(v bool) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldIsExclusion, v))
}

// ExtractionMethodEQ applies the EQ predicate on the "extraction_method" field.
func ExtractionMethodEQ(v ExtractionMethod) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldExtractionMethod, v))
}

// ExtractionMethodNEQ applies the NEQ predicate on the "extraction_method" field.
func ExtractionMethodNEQ(v ExtractionMethod) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldExtractionMethod, v))
}

// ExtractionMethodIn applies the In predicate on the "extraction_method" field.
func ExtractionMethodIn(vs ...ExtractionMethod) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldExtractionMethod, vs...))
}

// ExtractionMethodNotIn applies the NotIn predicate on the "extraction_method" field.
func ExtractionMethodNotIn(vs ...ExtractionMethod) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldExtractionMethod, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ParameterResult {
	return predicate.ParameterResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.ParameterResult {
	return predicate.ParameterResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.AnalysisRequest) predicate.ParameterResult {
	return predicate.ParameterResult(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParameterResult) predicate.ParameterResult {
	return predicate.ParameterResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParameterResult) predicate.ParameterResult {
	return predicate.ParameterResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParameterResult) predicate.ParameterResult {
	return predicate.ParameterResult(sql.NotPredicates(p))
}
