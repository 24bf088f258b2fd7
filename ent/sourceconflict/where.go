// Code generated by ent, DO NOT EDIT.

package sourceconflict

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldContainsFold(FieldID, id))
}

// CategoryResultID applies equality check predicate on the "category_result_id" field. It's identical to CategoryResultIDEQ.
func CategoryResultID(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldCategoryResultID, v))
}

// ConflictType applies equality check predicate on the "conflict_type" field. It's identical to ConflictTypeEQ.
func ConflictType(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldConflictType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldDescription, v))
}

// ResolutionStrategy applies equality check predicate on the "resolution_strategy" field. It's identical to ResolutionStrategyEQ.
func ResolutionStrategy(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldResolutionStrategy, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldResolvedAt, v))
}

// ConfidenceImpact applies equality check predicate on the "confidence_impact" field. It's identical to ConfidenceImpactEQ.
func ConfidenceImpact(v float64) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldConfidenceImpact, v))
}

// IsCritical applies equality check predicate on the "is_critical" field. It's identical to IsCriticalEQ.
func IsCritical(v bool) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldIsCritical, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldDeletedAt, v))
}

// CategoryResultIDEQ applies the EQ predicate on the "category_result_id" field.
func CategoryResultIDEQ(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldCategoryResultID, v))
}

// CategoryResultIDNEQ applies the NEQ predicate on the "category_result_id" field.
func CategoryResultIDNEQ(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNEQ(FieldCategoryResultID, v))
}

// CategoryResultIDIn applies the In predicate on the "category_result_id" field.
func CategoryResultIDIn(vs ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIn(FieldCategoryResultID, vs...))
}

// CategoryResultIDNotIn applies the NotIn predicate on the "category_result_id" field.
func CategoryResultIDNotIn(vs ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotIn(FieldCategoryResultID, vs...))
}

// CategoryResultIDGT applies the GT predicate on the "category_result_id" field.
func CategoryResultIDGT(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGT(FieldCategoryResultID, v))
}

// CategoryResultIDGTE applies the GTE predicate on the "category_result_id" field.
func CategoryResultIDGTE(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGTE(FieldCategoryResultID, v))
}

// CategoryResultIDLT applies the LT predicate on the "category_result_id" field.
func CategoryResultIDLT(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLT(FieldCategoryResultID, v))
}

// CategoryResultIDLTE applies the LTE predicate on the "category_result_id" field.
func CategoryResultIDLTE(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLTE(FieldCategoryResultID, v))
}

// CategoryResultIDContains applies the Contains predicate on the "category_result_id" field.
func CategoryResultIDContains(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldContains(FieldCategoryResultID, v))
}

// CategoryResultIDHasPrefix applies the HasPrefix predicate on the "category_result_id" field.
func CategoryResultIDHasPrefix(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldHasPrefix(FieldCategoryResultID, v))
}

// CategoryResultIDHasSuffix applies the HasSuffix predicate on the "category_result_id" field.
func CategoryResultIDHasSuffix(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldHasSuffix(FieldCategoryResultID, v))
}

// CategoryResultIDEqualFold applies the EqualFold predicate on the "category_result_id" field.
func CategoryResultIDEqualFold(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEqualFold(FieldCategoryResultID, v))
}

// CategoryResultIDContainsFold applies the ContainsFold predicate on the "category_result_id" field.
func CategoryResultIDContainsFold(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldContainsFold(FieldCategoryResultID, v))
}

// ConflictTypeEQ applies the EQ predicate on the "conflict_type" field.
func ConflictTypeEQ(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldConflictType, v))
}

// ConflictTypeNEQ applies the NEQ predicate on the "conflict_type" field.
func ConflictTypeNEQ(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNEQ(FieldConflictType, v))
}

// ConflictTypeIn applies the In predicate on the "conflict_type" field.
func ConflictTypeIn(vs ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIn(FieldConflictType, vs...))
}

// ConflictTypeNotIn applies the NotIn predicate on the "conflict_type" field.
func ConflictTypeNotIn(vs ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotIn(FieldConflictType, vs...))
}

// ConflictTypeGT applies the GT predicate on the "conflict_type" field.
func ConflictTypeGT(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGT(FieldConflictType, v))
}

// ConflictTypeGTE applies the GTE predicate on the "conflict_type" field.
func ConflictTypeGTE(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGTE(FieldConflictType, v))
}

// ConflictTypeLT applies the LT predicate on the "conflict_type" field.
func ConflictTypeLT(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLT(FieldConflictType, v))
}

// ConflictTypeLTE applies the LTE predicate on the "conflict_type" field.
func ConflictTypeLTE(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLTE(FieldConflictType, v))
}

// ConflictTypeContains applies the Contains predicate on the "conflict_type" field.
func ConflictTypeContains(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldContains(FieldConflictType, v))
}

// ConflictTypeHasPrefix applies the HasPrefix predicate on the "conflict_type" field.
func ConflictTypeHasPrefix(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldHasPrefix(FieldConflictType, v))
}

// ConflictTypeHasSuffix applies the HasSuffix predicate on the "conflict_type" field.
func ConflictTypeHasSuffix(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldHasSuffix(FieldConflictType, v))
}

// ConflictTypeEqualFold applies the EqualFold predicate on the "conflict_type" field.
func ConflictTypeEqualFold(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEqualFold(FieldConflictType, v))
}

// ConflictTypeContainsFold applies the ContainsFold predicate on the "conflict_type" field.
func ConflictTypeContainsFold(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldContainsFold(FieldConflictType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldContainsFold(FieldDescription, v))
}

// ConflictingSourceIdsIsNil applies the IsNil predicate on the "conflicting_source_ids" field.
func ConflictingSourceIdsIsNil() predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIsNull(FieldConflictingSourceIds))
}

// ConflictingSourceIdsNotNil applies the NotNil predicate on the "conflicting_source_ids" field.
func ConflictingSourceIdsNotNil() predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotNull(FieldConflictingSourceIds))
}

// ResolutionStrategyEQ applies the EQ predicate on the "resolution_strategy" field.
func ResolutionStrategyEQ(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldResolutionStrategy, v))
}

// ResolutionStrategyNEQ applies the NEQ predicate on the "resolution_strategy" field.
func ResolutionStrategyNEQ(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNEQ(FieldResolutionStrategy, v))
}

// ResolutionStrategyIn applies the In predicate on the "resolution_strategy" field.
func ResolutionStrategyIn(vs ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIn(FieldResolutionStrategy, vs...))
}

// ResolutionStrategyNotIn applies the NotIn predicate on the "resolution_strategy" field.
func ResolutionStrategyNotIn(vs ...string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotIn(FieldResolutionStrategy, vs...))
}

// ResolutionStrategyGT applies the GT predicate on the "resolution_strategy" field.
func ResolutionStrategyGT(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGT(FieldResolutionStrategy, v))
}

// ResolutionStrategyGTE applies the GTE predicate on the "resolution_strategy" field.
func ResolutionStrategyGTE(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGTE(FieldResolutionStrategy, v))
}

// ResolutionStrategyLT applies the LT predicate on the "resolution_strategy" field.
func ResolutionStrategyLT(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLT(FieldResolutionStrategy, v))
}

// ResolutionStrategyLTE applies the LTE predicate on the "resolution_strategy" field.
func ResolutionStrategyLTE(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLTE(FieldResolutionStrategy, v))
}

// ResolutionStrategyContains applies the Contains predicate on the "resolution_strategy" field.
func ResolutionStrategyContains(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldContains(FieldResolutionStrategy, v))
}

// ResolutionStrategyHasPrefix applies the HasPrefix predicate on the "resolution_strategy" field.
func ResolutionStrategyHasPrefix(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldHasPrefix(FieldResolutionStrategy, v))
}

// ResolutionStrategyHasSuffix applies the HasSuffix predicate on the "resolution_strategy" field.
func ResolutionStrategyHasSuffix(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldHasSuffix(FieldResolutionStrategy, v))
}

// ResolutionStrategyEqualFold applies the EqualFold predicate on the "resolution_strategy" field.
func ResolutionStrategyEqualFold(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEqualFold(FieldResolutionStrategy, v))
}

// ResolutionStrategyContainsFold applies the ContainsFold predicate on the "resolution_strategy" field.
func ResolutionStrategyContainsFold(v string) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldContainsFold(FieldResolutionStrategy, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLTE(FieldResolvedAt, v))
}

// ConfidenceImpactEQ applies the EQ predicate on the "confidence_impact" field.
func ConfidenceImpactEQ(v float64) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldConfidenceImpact, v))
}

// ConfidenceImpactNEQ applies the NEQ predicate on the "confidence_impact" field.
func ConfidenceImpactNEQ(v float64) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNEQ(FieldConfidenceImpact, v))
}

// ConfidenceImpactIn applies the In predicate on the "confidence_impact" field.
func ConfidenceImpactIn(vs ...float64) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIn(FieldConfidenceImpact, vs...))
}

// ConfidenceImpactNotIn applies the NotIn predicate on the "confidence_impact" field.
func ConfidenceImpactNotIn(vs ...float64) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotIn(FieldConfidenceImpact, vs...))
}

// ConfidenceImpactGT applies the GT predicate on the "confidence_impact" field.
func ConfidenceImpactGT(v float64) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGT(FieldConfidenceImpact, v))
}

// ConfidenceImpactGTE applies the GTE predicate on the "confidence_impact" field.
func ConfidenceImpactGTE(v float64) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGTE(FieldConfidenceImpact, v))
}

// ConfidenceImpactLT applies the LT predicate on the "confidence_impact" field.
func ConfidenceImpactLT(v float64) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLT(FieldConfidenceImpact, v))
}

// ConfidenceImpactLTE applies the LTE predicate on the "confidence_impact" field.
func ConfidenceImpactLTE(v float64) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLTE(FieldConfidenceImpact, v))
}

// IsCriticalEQ applies the EQ predicate on the "is_critical" field.
func IsCriticalEQ(v bool) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldIsCritical, v))
}

// IsCriticalNEQ applies the NEQ predicate on the "is_critical" field.
func IsCriticalNEQ(v bool) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNEQ(FieldIsCritical, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.SourceConflict {
	return predicate.SourceConflict(sql.FieldNotNull(FieldDeletedAt))
}

// HasCategoryResult applies the HasEdge predicate on the "category_result" edge.
func HasCategoryResult() predicate.SourceConflict {
	return predicate.SourceConflict(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryResultTable, CategoryResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryResultWith applies the HasEdge predicate on the "category_result" edge with a given conditions (other predicates).
func HasCategoryResultWith(preds ...predicate.CategoryResult) predicate.SourceConflict {
	return predicate.SourceConflict(func(s *sql.Selector) {
		step := newCategoryResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceConflict) predicate.SourceConflict {
	return predicate.SourceConflict(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceConflict) predicate.SourceConflict {
	return predicate.SourceConflict(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceConflict) predicate.SourceConflict {
	return predicate.SourceConflict(sql.NotPredicates(p))
}
