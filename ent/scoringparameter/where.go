// Code generated by ent, DO NOT EDIT.

package scoringparameter

import (
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldContainsFold(FieldID, id))
}

// Weight applies equality check predicate on the "weight" field. It's identical to WeightEQ.
func Weight(v float64) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldWeight, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldUnit, v))
}

// DisplayOrder applies equality check predicate on the "display_order" field. It's identical to DisplayOrderEQ.
func DisplayOrder(v int) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldDisplayOrder, v))
}

// ExtractionInstruction applies equality check predicate on the "extraction_instruction" field. It's identical to ExtractionInstructionEQ.
func ExtractionInstruction(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldExtractionInstruction, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v Name) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v Name) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...Name) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...Name) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNotIn(FieldName, vs...))
}

// WeightEQ applies the EQ predicate on the "weight" field.
func WeightEQ(v float64) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldWeight, v))
}

// WeightNEQ applies the NEQ predicate on the "weight" field.
func WeightNEQ(v float64) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNEQ(FieldWeight, v))
}

// WeightIn applies the In predicate on the "weight" field.
func WeightIn(vs ...float64) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldIn(FieldWeight, vs...))
}

// WeightNotIn applies the NotIn predicate on the "weight" field.
func WeightNotIn(vs ...float64) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNotIn(FieldWeight, vs...))
}

// WeightGT applies the GT predicate on the "weight" field.
func WeightGT(v float64) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGT(FieldWeight, v))
}

// WeightGTE applies the GTE predicate on the "weight" field.
func WeightGTE(v float64) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGTE(FieldWeight, v))
}

// WeightLT applies the LT predicate on the "weight" field.
func WeightLT(v float64) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLT(FieldWeight, v))
}

// WeightLTE applies the LTE predicate on the "weight" field.
func WeightLTE(v float64) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLTE(FieldWeight, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldContainsFold(FieldUnit, v))
}

// DisplayOrderEQ applies the EQ predicate on the "display_order" field.
func DisplayOrderEQ(v int) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldDisplayOrder, v))
}

// DisplayOrderNEQ applies the NEQ predicate on the "display_order" field.
func DisplayOrderNEQ(v int) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNEQ(FieldDisplayOrder, v))
}

// DisplayOrderIn applies the In predicate on the "display_order" field.
func DisplayOrderIn(vs ...int) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldIn(FieldDisplayOrder, vs...))
}

// DisplayOrderNotIn applies the NotIn predicate on the "display_order" field.
func DisplayOrderNotIn(vs ...int) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNotIn(FieldDisplayOrder, vs...))
}

// DisplayOrderGT applies the GT predicate on the "display_order" field.
func DisplayOrderGT(v int) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGT(FieldDisplayOrder, v))
}

// DisplayOrderGTE applies the GTE predicate on the "display_order" field.
func DisplayOrderGTE(v int) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGTE(FieldDisplayOrder, v))
}

// DisplayOrderLT applies the LT predicate on the "display_order" field.
func DisplayOrderLT(v int) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLT(FieldDisplayOrder, v))
}

// DisplayOrderLTE applies the LTE predicate on the "display_order" field.
func DisplayOrderLTE(v int) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLTE(FieldDisplayOrder, v))
}

// ExtractionInstructionEQ applies the EQ predicate on the "extraction_instruction" field.
func ExtractionInstructionEQ(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEQ(FieldExtractionInstruction, v))
}

// ExtractionInstructionNEQ applies the NEQ predicate on the "extraction_instruction" field.
func ExtractionInstructionNEQ(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNEQ(FieldExtractionInstruction, v))
}

// ExtractionInstructionIn applies the In predicate on the "extraction_instruction" field.
func ExtractionInstructionIn(vs ...string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldIn(FieldExtractionInstruction, vs...))
}

// ExtractionInstructionNotIn applies the NotIn predicate on the "extraction_instruction" field.
func ExtractionInstructionNotIn(vs ...string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNotIn(FieldExtractionInstruction, vs...))
}

// ExtractionInstructionGT applies the GT predicate on the "extraction_instruction" field.
func ExtractionInstructionGT(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGT(FieldExtractionInstruction, v))
}

// ExtractionInstructionGTE applies the GTE predicate on the "extraction_instruction" field.
func ExtractionInstructionGTE(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldGTE(FieldExtractionInstruction, v))
}

// ExtractionInstructionLT applies the LT predicate on the "extraction_instruction" field.
func ExtractionInstructionLT(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLT(FieldExtractionInstruction, v))
}

// ExtractionInstructionLTE applies the LTE predicate on the "extraction_instruction" field.
func ExtractionInstructionLTE(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldLTE(FieldExtractionInstruction, v))
}

// ExtractionInstructionContains applies the Contains predicate on the "extraction_instruction" field.
func ExtractionInstructionContains(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldContains(FieldExtractionInstruction, v))
}

// ExtractionInstructionHasPrefix applies the HasPrefix predicate on the "extraction_instruction" field.
func ExtractionInstructionHasPrefix(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldHasPrefix(FieldExtractionInstruction, v))
}

// ExtractionInstructionHasSuffix applies the HasSuffix predicate on the "extraction_instruction" field.
func ExtractionInstructionHasSuffix(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldHasSuffix(FieldExtractionInstruction, v))
}

// ExtractionInstructionIsNil applies the IsNil predicate on the "extraction_instruction" field.
func ExtractionInstructionIsNil() predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldIsNull(FieldExtractionInstruction))
}

// ExtractionInstructionNotNil applies the NotNil predicate on the "extraction_instruction" field.
func ExtractionInstructionNotNil() predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldNotNull(FieldExtractionInstruction))
}

// ExtractionInstructionEqualFold applies the EqualFold predicate on the "extraction_instruction" field.
func ExtractionInstructionEqualFold(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldEqualFold(FieldExtractionInstruction, v))
}

// ExtractionInstructionContainsFold applies the ContainsFold predicate on the "extraction_instruction" field.
func ExtractionInstructionContainsFold(v string) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.FieldContainsFold(FieldExtractionInstruction, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScoringParameter) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScoringParameter) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScoringParameter) predicate.ScoringParameter {
	return predicate.ScoringParameter(sql.NotPredicates(p))
}
