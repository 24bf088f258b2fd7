// Code generated by ent, DO NOT EDIT.

package stageevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldRequestID, v))
}

// CategoryID applies equality check predicate on the "category_id" field. It's identical to CategoryIDEQ.
func CategoryID(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldCategoryID, v))
}

// StageOrder applies equality check predicate on the "stage_order" field. It's identical to StageOrderEQ.
func StageOrder(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldStageOrder, v))
}

// Executed applies equality check predicate on the "executed" field. It's identical to ExecutedEQ.
func Executed(v bool) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldExecuted, v))
}

// Skipped applies equality check predicate on the "skipped" field. It's identical to SkippedEQ.
func Skipped(v bool) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldSkipped, v))
}

// InputDigest applies equality check predicate on the "input_digest" field. It's identical to InputDigestEQ.
func InputDigest(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldInputDigest, v))
}

// OutputDigest applies equality check predicate on the "output_digest" field. It's identical to OutputDigestEQ.
func OutputDigest(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldOutputDigest, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldDurationMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldRequestID, v))
}

// CategoryIDEQ applies the EQ predicate on the "category_id" field.
func CategoryIDEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldCategoryID, v))
}

// CategoryIDNEQ applies the NEQ predicate on the "category_id" field.
func CategoryIDNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldCategoryID, v))
}

// CategoryIDIn applies the In predicate on the "category_id" field.
func CategoryIDIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldCategoryID, vs...))
}

// CategoryIDNotIn applies the NotIn predicate on the "category_id" field.
func CategoryIDNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldCategoryID, vs...))
}

// CategoryIDGT applies the GT predicate on the "category_id" field.
func CategoryIDGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldCategoryID, v))
}

// CategoryIDGTE applies the GTE predicate on the "category_id" field.
func CategoryIDGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldCategoryID, v))
}

// CategoryIDLT applies the LT predicate on the "category_id" field.
func CategoryIDLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldCategoryID, v))
}

// CategoryIDLTE applies the LTE predicate on the "category_id" field.
func CategoryIDLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldCategoryID, v))
}

// CategoryIDContains applies the Contains predicate on the "category_id" field.
func CategoryIDContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldCategoryID, v))
}

// CategoryIDHasPrefix applies the HasPrefix predicate on the "category_id" field.
func CategoryIDHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldCategoryID, v))
}

// CategoryIDHasSuffix applies the HasSuffix predicate on the "category_id" field.
func CategoryIDHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldCategoryID, v))
}

// CategoryIDEqualFold applies the EqualFold predicate on the "category_id" field.
func CategoryIDEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldCategoryID, v))
}

// CategoryIDContainsFold applies the ContainsFold predicate on the "category_id" field.
func CategoryIDContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldCategoryID, v))
}

// StageNameEQ applies the EQ predicate on the "stage_name" field.
func StageNameEQ(v StageName) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldStageName, v))
}

// StageNameNEQ applies the NEQ predicate on the "stage_name" field.
func StageNameNEQ(v StageName) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldStageName, v))
}

// StageNameIn applies the In predicate on the "stage_name" field.
func StageNameIn(vs ...StageName) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldStageName, vs...))
}

// StageNameNotIn applies the NotIn predicate on the "stage_name" field.
func StageNameNotIn(vs ...StageName) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldStageName, vs...))
}

// StageOrderEQ applies the EQ predicate on the "stage_order" field.
func StageOrderEQ(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldStageOrder, v))
}

// StageOrderNEQ applies the NEQ predicate on the "stage_order" field.
func StageOrderNEQ(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldStageOrder, v))
}

// StageOrderIn applies the In predicate on the "stage_order" field.
func StageOrderIn(vs ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldStageOrder, vs...))
}

// StageOrderNotIn applies the NotIn predicate on the "stage_order" field.
func StageOrderNotIn(vs ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldStageOrder, vs...))
}

// StageOrderGT applies the GT predicate on the "stage_order" field.
func StageOrderGT(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldStageOrder, v))
}

// StageOrderGTE applies the GTE predicate on the "stage_order" field.
func StageOrderGTE(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldStageOrder, v))
}

// StageOrderLT applies the LT predicate on the "stage_order" field.
func StageOrderLT(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldStageOrder, v))
}

// StageOrderLTE applies the LTE predicate on the "stage_order" field.
func StageOrderLTE(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldStageOrder, v))
}

// ExecutedEQ applies the EQ predicate on the "executed" field.
func ExecutedEQ(v bool) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldExecuted, v))
}

// ExecutedNEQ applies the NEQ predicate on the "executed" field.
func ExecutedNEQ(v bool) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldExecuted, v))
}

// SkippedEQ applies the EQ predicate on the "skipped" field.
func SkippedEQ(v bool) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldSkipped, v))
}

// SkippedNEQ applies the NEQ predicate on the "skipped" field.
func SkippedNEQ(v bool) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldSkipped, v))
}

// InputDigestEQ applies the EQ predicate on the "input_digest" field.
func InputDigestEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldInputDigest, v))
}

// InputDigestNEQ applies the NEQ predicate on the "input_digest" field.
func InputDigestNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldInputDigest, v))
}

// InputDigestIn applies the In predicate on the "input_digest" field.
func InputDigestIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldInputDigest, vs...))
}

// InputDigestNotIn applies the NotIn predicate on the "input_digest" field.
func InputDigestNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldInputDigest, vs...))
}

// InputDigestGT applies the GT predicate on the "input_digest" field.
func InputDigestGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldInputDigest, v))
}

// InputDigestGTE applies the GTE predicate on the "input_digest" field.
func InputDigestGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldInputDigest, v))
}

// InputDigestLT applies the LT predicate on the "input_digest" field.
func InputDigestLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldInputDigest, v))
}

// InputDigestLTE applies the LTE predicate on the "input_digest" field.
func InputDigestLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldInputDigest, v))
}

// InputDigestContains applies the Contains predicate on the "input_digest" field.
func InputDigestContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldInputDigest, v))
}

// InputDigestHasPrefix applies the HasPrefix predicate on the "input_digest" field.
func InputDigestHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldInputDigest, v))
}

// InputDigestHasSuffix applies the HasSuffix predicate on the "input_digest" field.
func InputDigestHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldInputDigest, v))
}

// InputDigestIsNil applies the IsNil predicate on the "input_digest" field.
func InputDigestIsNil() predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIsNull(FieldInputDigest))
}

// InputDigestNotNil applies the NotNil predicate on the "input_digest" field.
func InputDigestNotNil() predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotNull(FieldInputDigest))
}

// InputDigestEqualFold applies the EqualFold predicate on the "input_digest" field.
func InputDigestEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldInputDigest, v))
}

// InputDigestContainsFold applies the ContainsFold predicate on the "input_digest" field.
func InputDigestContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldInputDigest, v))
}

// OutputDigestEQ applies the EQ predicate on the "output_digest" field.
func OutputDigestEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldOutputDigest, v))
}

// OutputDigestNEQ applies the NEQ predicate on the "output_digest" field.
func OutputDigestNEQ(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldOutputDigest, v))
}

// OutputDigestIn applies the In predicate on the "output_digest" field.
func OutputDigestIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldOutputDigest, vs...))
}

// OutputDigestNotIn applies the NotIn predicate on the "output_digest" field.
func OutputDigestNotIn(vs ...string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldOutputDigest, vs...))
}

// OutputDigestGT applies the GT predicate on the "output_digest" field.
func OutputDigestGT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldOutputDigest, v))
}

// OutputDigestGTE applies the GTE predicate on the "output_digest" field.
func OutputDigestGTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldOutputDigest, v))
}

// OutputDigestLT applies the LT predicate on the "output_digest" field.
func OutputDigestLT(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldOutputDigest, v))
}

// OutputDigestLTE applies the LTE predicate on the "output_digest" field.
func OutputDigestLTE(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldOutputDigest, v))
}

// OutputDigestContains applies the Contains predicate on the "output_digest" field.
func OutputDigestContains(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContains(FieldOutputDigest, v))
}

// OutputDigestHasPrefix applies the HasPrefix predicate on the "output_digest" field.
func OutputDigestHasPrefix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasPrefix(FieldOutputDigest, v))
}

// OutputDigestHasSuffix applies the HasSuffix predicate on the "output_digest" field.
func OutputDigestHasSuffix(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldHasSuffix(FieldOutputDigest, v))
}

// OutputDigestIsNil applies the IsNil predicate on the "output_digest" field.
func OutputDigestIsNil() predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIsNull(FieldOutputDigest))
}

// OutputDigestNotNil applies the NotNil predicate on the "output_digest" field.
func OutputDigestNotNil() predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotNull(FieldOutputDigest))
}

// OutputDigestEqualFold applies the EqualFold predicate on the "output_digest" field.
func OutputDigestEqualFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEqualFold(FieldOutputDigest, v))
}

// OutputDigestContainsFold applies the ContainsFold predicate on the "output_digest" field.
func OutputDigestContainsFold(v string) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldContainsFold(FieldOutputDigest, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldDurationMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StageEvent {
	return predicate.StageEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.StageEvent {
	return predicate.StageEvent(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.AnalysisRequest) predicate.StageEvent {
	return predicate.StageEvent(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StageEvent) predicate.StageEvent {
	return predicate.StageEvent(sql.NotPredicates(p))
}
