// Code generated by ent, DO NOT EDIT.

package pipelinestage

import (
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldContainsFold(FieldID, id))
}

// StageOrder applies equality check predicate on the "stage_order" field. It's identical to StageOrderEQ.
func StageOrder(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldStageOrder, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldEnabled, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v Name) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v Name) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...Name) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...Name) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotIn(FieldName, vs...))
}

// StageOrderEQ applies the EQ predicate on the "stage_order" field.
func StageOrderEQ(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldStageOrder, v))
}

// StageOrderNEQ applies the NEQ predicate on the "stage_order" field.
func StageOrderNEQ(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldStageOrder, v))
}

// StageOrderIn applies the In predicate on the "stage_order" field.
func StageOrderIn(vs ...int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldIn(FieldStageOrder, vs...))
}

// StageOrderNotIn applies the NotIn predicate on the "stage_order" field.
func StageOrderNotIn(vs ...int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNotIn(FieldStageOrder, vs...))
}

// StageOrderGT applies the GT predicate on the "stage_order" field.
func StageOrderGT(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGT(FieldStageOrder, v))
}

// StageOrderGTE applies the GTE predicate on the "stage_order" field.
func StageOrderGTE(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldGTE(FieldStageOrder, v))
}

// StageOrderLT applies the LT predicate on the "stage_order" field.
func StageOrderLT(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLT(FieldStageOrder, v))
}

// StageOrderLTE applies the LTE predicate on the "stage_order" field.
func StageOrderLTE(v int) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldLTE(FieldStageOrder, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.PipelineStage {
	return predicate.PipelineStage(sql.FieldNEQ(FieldEnabled, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineStage) predicate.PipelineStage {
	return predicate.PipelineStage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineStage) predicate.PipelineStage {
	return predicate.PipelineStage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineStage) predicate.PipelineStage {
	return predicate.PipelineStage(sql.NotPredicates(p))
}
