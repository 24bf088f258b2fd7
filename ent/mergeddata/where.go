// Code generated by ent, DO NOT EDIT.

package mergeddata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MergedData {
	return predicate.MergedData(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MergedData {
	return predicate.MergedData(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MergedData {
	return predicate.MergedData(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MergedData {
	return predicate.MergedData(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MergedData {
	return predicate.MergedData(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MergedData {
	return predicate.MergedData(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MergedData {
	return predicate.MergedData(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MergedData {
	return predicate.MergedData(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MergedData {
	return predicate.MergedData(sql.FieldContainsFold(FieldID, id))
}

// CategoryResultID applies equality check predicate on the "category_result_id" field. It's identical to CategoryResultIDEQ.
func CategoryResultID(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldCategoryResultID, v))
}

// MergedText applies equality check predicate on the "merged_text" field. It's identical to MergedTextEQ.
func MergedText(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldMergedText, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldCreatedAt, v))
}

// CategoryResultIDEQ applies the EQ predicate on the "category_result_id" field.
func CategoryResultIDEQ(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldCategoryResultID, v))
}

// CategoryResultIDNEQ applies the NEQ predicate on the "category_result_id" field.
func CategoryResultIDNEQ(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldNEQ(FieldCategoryResultID, v))
}

// CategoryResultIDIn applies the In predicate on the "category_result_id" field.
func CategoryResultIDIn(vs ...string) predicate.MergedData {
	return predicate.MergedData(sql.FieldIn(FieldCategoryResultID, vs...))
}

// CategoryResultIDNotIn applies the NotIn predicate on the "category_result_id" field.
func CategoryResultIDNotIn(vs ...string) predicate.MergedData {
	return predicate.MergedData(sql.FieldNotIn(FieldCategoryResultID, vs...))
}

// CategoryResultIDGT applies the GT predicate on the "category_result_id" field.
func CategoryResultIDGT(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldGT(FieldCategoryResultID, v))
}

// CategoryResultIDGTE applies the GTE predicate on the "category_result_id" field.
func CategoryResultIDGTE(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldGTE(FieldCategoryResultID, v))
}

// CategoryResultIDLT applies the LT predicate on the "category_result_id" field.
func CategoryResultIDLT(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldLT(FieldCategoryResultID, v))
}

// CategoryResultIDLTE applies the LTE predicate on the "category_result_id" field.
func CategoryResultIDLTE(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldLTE(FieldCategoryResultID, v))
}

// CategoryResultIDContains applies the Contains predicate on the "category_result_id" field.
func CategoryResultIDContains(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldContains(FieldCategoryResultID, v))
}

// CategoryResultIDHasPrefix applies the HasPrefix predicate on the "category_result_id" field.
func CategoryResultIDHasPrefix(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldHasPrefix(FieldCategoryResultID, v))
}

// CategoryResultIDHasSuffix applies the HasSuffix predicate on the "category_result_id" field.
func CategoryResultIDHasSuffix(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldHasSuffix(FieldCategoryResultID, v))
}

// CategoryResultIDEqualFold applies the EqualFold predicate on the "category_result_id" field.
func CategoryResultIDEqualFold(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldEqualFold(FieldCategoryResultID, v))
}

// CategoryResultIDContainsFold applies the ContainsFold predicate on the "category_result_id" field.
func CategoryResultIDContainsFold(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldContainsFold(FieldCategoryResultID, v))
}

// MergedTextEQ applies the EQ predicate on the "merged_text" field.
func MergedTextEQ(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldMergedText, v))
}

// MergedTextNEQ applies the NEQ predicate on the "merged_text" field.
func MergedTextNEQ(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldNEQ(FieldMergedText, v))
}

// MergedTextIn applies the In predicate on the "merged_text" field.
func MergedTextIn(vs ...string) predicate.MergedData {
	return predicate.MergedData(sql.FieldIn(FieldMergedText, vs...))
}

// MergedTextNotIn applies the NotIn predicate on the "merged_text" field.
func MergedTextNotIn(vs ...string) predicate.MergedData {
	return predicate.MergedData(sql.FieldNotIn(FieldMergedText, vs...))
}

// MergedTextGT applies the GT predicate on the "merged_text" field.
func MergedTextGT(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldGT(FieldMergedText, v))
}

// MergedTextGTE applies the GTE predicate on the "merged_text" field.
func MergedTextGTE(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldGTE(FieldMergedText, v))
}

// MergedTextLT applies the LT predicate on the "merged_text" field.
func MergedTextLT(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldLT(FieldMergedText, v))
}

// MergedTextLTE applies the LTE predicate on the "merged_text" field.
func MergedTextLTE(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldLTE(FieldMergedText, v))
}

// MergedTextContains applies the Contains predicate on the "merged_text" field.
func MergedTextContains(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldContains(FieldMergedText, v))
}

// MergedTextHasPrefix applies the HasPrefix predicate on the "merged_text" field.
func MergedTextHasPrefix(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldHasPrefix(FieldMergedText, v))
}

// MergedTextHasSuffix applies the HasSuffix predicate on the "merged_text" field.
func MergedTextHasSuffix(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldHasSuffix(FieldMergedText, v))
}

// MergedTextEqualFold applies the EqualFold predicate on the "merged_text" field.
func MergedTextEqualFold(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldEqualFold(FieldMergedText, v))
}

// MergedTextContainsFold applies the ContainsFold predicate on the "merged_text" field.
func MergedTextContainsFold(v string) predicate.MergedData {
	return predicate.MergedData(sql.FieldContainsFold(FieldMergedText, v))
}

// StructuredDataIsNil applies the IsNil predicate on the "structured_data" field.
func StructuredDataIsNil() predicate.MergedData {
	return predicate.MergedData(sql.FieldIsNull(FieldStructuredData))
}

// StructuredDataNotNil applies the NotNil predicate on the "structured_data" field.
func StructuredDataNotNil() predicate.MergedData {
	return predicate.MergedData(sql.FieldNotNull(FieldStructuredData))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.MergedData {
	return predicate.MergedData(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.MergedData {
	return predicate.MergedData(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.MergedData {
	return predicate.MergedData(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.MergedData {
	return predicate.MergedData(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.MergedData {
	return predicate.MergedData(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.MergedData {
	return predicate.MergedData(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.MergedData {
	return predicate.MergedData(sql.FieldLTE(FieldConfidence, v))
}

// SourceReferencesIsNil applies the IsNil predicate on the "source_references" field.
func SourceReferencesIsNil() predicate.MergedData {
	return predicate.MergedData(sql.FieldIsNull(FieldSourceReferences))
}

// SourceReferencesNotNil applies the NotNil predicate on the "source_references" field.
func SourceReferencesNotNil() predicate.MergedData {
	return predicate.MergedData(sql.FieldNotNull(FieldSourceReferences))
}

// MergeMethodEQ applies the EQ predicate on the "merge_method" field.
func MergeMethodEQ(v MergeMethod) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldMergeMethod, v))
}

// MergeMethodNEQ applies the NEQ predicate on the "merge_method" field.
func MergeMethodNEQ(v MergeMethod) predicate.MergedData {
	return predicate.MergedData(sql.FieldNEQ(FieldMergeMethod, v))
}

// MergeMethodIn applies the In predicate on the "merge_method" field.
func MergeMethodIn(vs ...MergeMethod) predicate.MergedData {
	return predicate.MergedData(sql.FieldIn(FieldMergeMethod, vs...))
}

// MergeMethodNotIn applies the NotIn predicate on the "merge_method" field.
func MergeMethodNotIn(vs ...MergeMethod) predicate.MergedData {
	return predicate.MergedData(sql.FieldNotIn(FieldMergeMethod, vs...))
}

// KeyFindingsIsNil applies the IsNil predicate on the "key_findings" field.
func KeyFindingsIsNil() predicate.MergedData {
	return predicate.MergedData(sql.FieldIsNull(FieldKeyFindings))
}

// KeyFindingsNotNil applies the NotNil predicate on the "key_findings" field.
func KeyFindingsNotNil() predicate.MergedData {
	return predicate.MergedData(sql.FieldNotNull(FieldKeyFindings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MergedData {
	return predicate.MergedData(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MergedData {
	return predicate.MergedData(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MergedData {
	return predicate.MergedData(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MergedData {
	return predicate.MergedData(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MergedData {
	return predicate.MergedData(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MergedData {
	return predicate.MergedData(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MergedData {
	return predicate.MergedData(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MergedData {
	return predicate.MergedData(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCategoryResult applies the HasEdge predicate on the "category_result" edge.
func HasCategoryResult() predicate.MergedData {
	return predicate.MergedData(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, CategoryResultTable, CategoryResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryResultWith applies the HasEdge predicate on the "category_result" edge with a given conditions (other predicates).
func HasCategoryResultWith(preds ...predicate.CategoryResult) predicate.MergedData {
	return predicate.MergedData(func(s *sql.Selector) {
		step := newCategoryResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MergedData) predicate.MergedData {
	return predicate.MergedData(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MergedData) predicate.MergedData {
	return predicate.MergedData(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MergedData) predicate.MergedData {
	return predicate.MergedData(sql.NotPredicates(p))
}
