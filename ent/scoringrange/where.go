// Code generated by ent, DO NOT EDIT.

package scoringrange

import (
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldContainsFold(FieldID, id))
}

// MinValue applies equality check predicate on the "min_value" field. It's identical to MinValueEQ.
func MinValue(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldMinValue, v))
}

// MaxValue applies equality check predicate on the "max_value" field. It's identical to MaxValueEQ.
func MaxValue(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldMaxValue, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldScore, v))
}

// IsExclusion applies equality check predicate on the "is_exclusion" field. It's identical to IsExclusionEQ.
func IsExclusion(v bool) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldIsExclusion, v))
}

// RangeText applies equality check predicate on the "range_text" field. It's identical to RangeTextEQ.
func RangeText(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldRangeText, v))
}

// ParameterEQ applies the EQ predicate on the "parameter" field.
func ParameterEQ(v Parameter) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldParameter, v))
}

// ParameterNEQ applies the NEQ predicate on the "parameter" field.
func ParameterNEQ(v Parameter) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNEQ(FieldParameter, v))
}

// ParameterIn applies the In predicate on the "parameter" field.
func ParameterIn(vs ...Parameter) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldIn(FieldParameter, vs...))
}

// ParameterNotIn applies the NotIn predicate on the "parameter" field.
func ParameterNotIn(vs ...Parameter) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNotIn(FieldParameter, vs...))
}

// DeliveryMethodEQ applies the EQ predicate on the "delivery_method" field.
func DeliveryMethodEQ(v DeliveryMethod) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldDeliveryMethod, v))
}

// DeliveryMethodNEQ applies the NEQ predicate on the "delivery_method" field.
func DeliveryMethodNEQ(v DeliveryMethod) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNEQ(FieldDeliveryMethod, v))
}

// DeliveryMethodIn applies the In predicate on the "delivery_method" field.
func DeliveryMethodIn(vs ...DeliveryMethod) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldIn(FieldDeliveryMethod, vs...))
}

// DeliveryMethodNotIn applies the NotIn predicate on the "delivery_method" field.
func DeliveryMethodNotIn(vs ...DeliveryMethod) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNotIn(FieldDeliveryMethod, vs...))
}

// MinValueEQ applies the EQ predicate on the "min_value" field.
func MinValueEQ(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldMinValue, v))
}

// MinValueNEQ applies the NEQ predicate on the "min_value" field.
func MinValueNEQ(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNEQ(FieldMinValue, v))
}

// MinValueIn applies the In predicate on the "min_value" field.
func MinValueIn(vs ...float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldIn(FieldMinValue, vs...))
}

// MinValueNotIn applies the NotIn predicate on the "min_value" field.
func MinValueNotIn(vs ...float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNotIn(FieldMinValue, vs...))
}

// MinValueGT applies the GT predicate on the "min_value" field.
func MinValueGT(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGT(FieldMinValue, v))
}

// MinValueGTE applies the GTE predicate on the "min_value" field.
func MinValueGTE(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGTE(FieldMinValue, v))
}

// MinValueLT applies the LT predicate on the "min_value" field.
func MinValueLT(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLT(FieldMinValue, v))
}

// MinValueLTE applies the LTE predicate on the "min_value" field.
func MinValueLTE(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLTE(FieldMinValue, v))
}

// MinValueIsNil applies the IsNil predicate on the "min_value" field.
func MinValueIsNil() predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldIsNull(FieldMinValue))
}

// MinValueNotNil applies the NotNil predicate on the "min_value" field.
func MinValueNotNil() predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNotNull(FieldMinValue))
}

// MaxValueEQ applies the EQ predicate on the "max_value" field.
func MaxValueEQ(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldMaxValue, v))
}

// MaxValueNEQ applies the NEQ predicate on the "max_value" field.
func MaxValueNEQ(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNEQ(FieldMaxValue, v))
}

// MaxValueIn applies the In predicate on the "max_value" field.
func MaxValueIn(vs ...float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldIn(FieldMaxValue, vs...))
}

// MaxValueNotIn applies the NotIn predicate on the "max_value" field.
func MaxValueNotIn(vs ...float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNotIn(FieldMaxValue, vs...))
}

// MaxValueGT applies the GT predicate on the "max_value" field.
func MaxValueGT(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGT(FieldMaxValue, v))
}

// MaxValueGTE applies the GTE predicate on the "max_value" field.
func MaxValueGTE(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGTE(FieldMaxValue, v))
}

// MaxValueLT applies the LT predicate on the "max_value" field.
func MaxValueLT(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLT(FieldMaxValue, v))
}

// MaxValueLTE applies the LTE predicate on the "max_value" field.
func MaxValueLTE(v float64) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLTE(FieldMaxValue, v))
}

// MaxValueIsNil applies the IsNil predicate on the "max_value" field.
func MaxValueIsNil() predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldIsNull(FieldMaxValue))
}

// MaxValueNotNil applies the NotNil predicate on the "max_value" field.
func MaxValueNotNil() predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNotNull(FieldMaxValue))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLTE(FieldScore, v))
}

// IsExclusionEQ applies the EQ predicate on the "is_exclusion" field.
func IsExclusionEQ(v bool) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldIsExclusion, v))
}

// IsExclusionNEQ applies the NEQ predicate on the "is_exclusion" field.
func IsExclusionNEQ(v bool) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNEQ(FieldIsExclusion, v))
}

// RangeTextEQ applies the EQ predicate on the "range_text" field.
func RangeTextEQ(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEQ(FieldRangeText, v))
}

// RangeTextNEQ applies the NEQ predicate on the "range_text" field.
func RangeTextNEQ(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNEQ(FieldRangeText, v))
}

// RangeTextIn applies the In predicate on the "range_text" field.
func RangeTextIn(vs ...string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldIn(FieldRangeText, vs...))
}

// RangeTextNotIn applies the NotIn predicate on the "range_text" field.
func RangeTextNotIn(vs ...string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldNotIn(FieldRangeText, vs...))
}

// RangeTextGT applies the GT predicate on the "range_text" field.
func RangeTextGT(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGT(FieldRangeText, v))
}

// RangeTextGTE applies the GTE predicate on the "range_text" field.
func RangeTextGTE(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldGTE(FieldRangeText, v))
}

// RangeTextLT applies the LT predicate on the "range_text" field.
func RangeTextLT(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLT(FieldRangeText, v))
}

// RangeTextLTE applies the LTE predicate on the "range_text" field.
func RangeTextLTE(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldLTE(FieldRangeText, v))
}

// RangeTextContains applies the Contains predicate on the "range_text" field.
func RangeTextContains(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldContains(FieldRangeText, v))
}

// RangeTextHasPrefix applies the HasPrefix predicate on the "range_text" field.
func RangeTextHasPrefix(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldHasPrefix(FieldRangeText, v))
}

// RangeTextHasSuffix applies the HasSuffix predicate on the "range_text" field.
func RangeTextHasSuffix(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldHasSuffix(FieldRangeText, v))
}

// RangeTextEqualFold applies the EqualFold predicate on the "range_text" field.
func RangeTextEqualFold(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldEqualFold(FieldRangeText, v))
}

// RangeTextContainsFold applies the ContainsFold predicate on the "range_text" field.
func RangeTextContainsFold(v string) predicate.ScoringRange {
	return predicate.ScoringRange(sql.FieldContainsFold(FieldRangeText, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoringRange) predicate.ScoringRange {
	return predicate.ScoringRange(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoringRange) predicate.ScoringRange {
	return predicate.ScoringRange(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoringRange) predicate.ScoringRange {
	return predicate.ScoringRange(sql.NotPredicates(p))
}
