// Code generated by ent, DO NOT EDIT.

package pharmacategory

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldName, v))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldKey, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldPhase, v))
}

// DisplayOrder applies equality check predicate on the "display_order" field. It's identical to DisplayOrderEQ.
func DisplayOrder(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldDisplayOrder, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldIsActive, v))
}

// PromptTemplate applies equality check predicate on the "prompt_template" field. It's identical to PromptTemplateEQ.
func PromptTemplate(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldPromptTemplate, v))
}

// ConflictResolutionStrategy applies equality check predicate on the "conflict_resolution_strategy" field. It's identical to ConflictResolutionStrategyEQ.
func ConflictResolutionStrategy(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldConflictResolutionStrategy, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldContainsFold(FieldName, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldContainsFold(FieldKey, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLTE(FieldPhase, v))
}

// DisplayOrderEQ applies the EQ predicate on the "display_order" field.
func DisplayOrderEQ(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldDisplayOrder, v))
}

// DisplayOrderNEQ applies the NEQ predicate on the "display_order" field.
func DisplayOrderNEQ(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNEQ(FieldDisplayOrder, v))
}

// DisplayOrderIn applies the In predicate on the "display_order" field.
func DisplayOrderIn(vs ...int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldIn(FieldDisplayOrder, vs...))
}

// DisplayOrderNotIn applies the NotIn predicate on the "display_order" field.
func DisplayOrderNotIn(vs ...int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNotIn(FieldDisplayOrder, vs...))
}

// DisplayOrderGT applies the GT predicate on the "display_order" field.
func DisplayOrderGT(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGT(FieldDisplayOrder, v))
}

// DisplayOrderGTE applies the GTE predicate on the "display_order" field.
func DisplayOrderGTE(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGTE(FieldDisplayOrder, v))
}

// DisplayOrderLT applies the LT predicate on the "display_order" field.
func DisplayOrderLT(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLT(FieldDisplayOrder, v))
}

// DisplayOrderLTE applies the LTE predicate on the "display_order" field.
func DisplayOrderLTE(v int) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLTE(FieldDisplayOrder, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNEQ(FieldIsActive, v))
}

// PromptTemplateEQ applies the EQ predicate on the "prompt_template" field.
func PromptTemplateEQ(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldPromptTemplate, v))
}

// PromptTemplateNEQ applies the NEQ predicate on the "prompt_template" field.
func PromptTemplateNEQ(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNEQ(FieldPromptTemplate, v))
}

// PromptTemplateIn applies the In predicate on the "prompt_template" field.
func PromptTemplateIn(vs ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldIn(FieldPromptTemplate, vs...))
}

// PromptTemplateNotIn applies the NotIn predicate on the "prompt_template" field.
func PromptTemplateNotIn(vs ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNotIn(FieldPromptTemplate, vs...))
}

// PromptTemplateGT applies the GT predicate on the "prompt_template" field.
func PromptTemplateGT(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGT(FieldPromptTemplate, v))
}

// PromptTemplateGTE applies the GTE predicate on the "prompt_template" field.
func PromptTemplateGTE(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGTE(FieldPromptTemplate, v))
}

// PromptTemplateLT applies the LT predicate on the "prompt_template" field.
func PromptTemplateLT(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLT(FieldPromptTemplate, v))
}

// PromptTemplateLTE applies the LTE predicate on the "prompt_template" field.
func PromptTemplateLTE(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLTE(FieldPromptTemplate, v))
}

// PromptTemplateContains applies the Contains predicate on the "prompt_template" field.
func PromptTemplateContains(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldContains(FieldPromptTemplate, v))
}

// PromptTemplateHasPrefix applies the HasPrefix predicate on the "prompt_template" field.
func PromptTemplateHasPrefix(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldHasPrefix(FieldPromptTemplate, v))
}

// PromptTemplateHasSuffix applies the HasSuffix predicate on the "prompt_template" field.
func PromptTemplateHasSuffix(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldHasSuffix(FieldPromptTemplate, v))
}

// PromptTemplateEqualFold applies the EqualFold predicate on the "prompt_template" field.
func PromptTemplateEqualFold(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEqualFold(FieldPromptTemplate, v))
}

// PromptTemplateContainsFold applies the ContainsFold predicate on the "prompt_template" field.
func PromptTemplateContainsFold(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldContainsFold(FieldPromptTemplate, v))
}

// VerificationCriteriaIsNil applies the IsNil predicate on the "verification_criteria" field.
func VerificationCriteriaIsNil() predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldIsNull(FieldVerificationCriteria))
}

// VerificationCriteriaNotNil applies the NotNil predicate on the "verification_criteria" field.
func VerificationCriteriaNotNil() predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNotNull(FieldVerificationCriteria))
}

// ProcessingRulesIsNil applies the IsNil predicate on the "processing_rules" field.
func ProcessingRulesIsNil() predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldIsNull(FieldProcessingRules))
}

// ProcessingRulesNotNil applies the NotNil predicate on the "processing_rules" field.
func ProcessingRulesNotNil() predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNotNull(FieldProcessingRules))
}

// ConflictResolutionStrategyEQ applies the EQ predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyEQ(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEQ(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyNEQ applies the NEQ predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyNEQ(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNEQ(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyIn applies the In predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyIn(vs ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldIn(FieldConflictResolutionStrategy, vs...))
}

// ConflictResolutionStrategyNotIn applies the NotIn predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyNotIn(vs ...string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldNotIn(FieldConflictResolutionStrategy, vs...))
}

// ConflictResolutionStrategyGT applies the GT predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyGT(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGT(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyGTE applies the GTE predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyGTE(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldGTE(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyLT applies the LT predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyLT(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLT(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyLTE applies the LTE predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyLTE(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldLTE(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyContains applies the Contains predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyContains(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldContains(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyHasPrefix applies the HasPrefix predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyHasPrefix(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldHasPrefix(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyHasSuffix applies the HasSuffix predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyHasSuffix(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldHasSuffix(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyEqualFold applies the EqualFold predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyEqualFold(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldEqualFold(FieldConflictResolutionStrategy, v))
}

// ConflictResolutionStrategyContainsFold applies the ContainsFold predicate on the "conflict_resolution_strategy" field.
func ConflictResolutionStrategyContainsFold(v string) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.FieldContainsFold(FieldConflictResolutionStrategy, v))
}

// HasDependents applies the HasEdge predicate on the "dependents" edge.
func HasDependents() predicate.PharmaCategory {
	return predicate.PharmaCategory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DependentsTable, DependentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDependentsWith applies the HasEdge predicate on the "dependents" edge with a given conditions (other predicates).
func HasDependentsWith(preds ...predicate.CategoryDependency) predicate.PharmaCategory {
	return predicate.PharmaCategory(func(s *sql.Selector) {
		step := newDependentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRequirements applies the HasEdge predicate on the "requirements" edge.
func HasRequirements() predicate.PharmaCategory {
	return predicate.PharmaCategory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RequirementsTable, RequirementsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequirementsWith applies the HasEdge predicate on the "requirements" edge with a given conditions (other predicates).
func HasRequirementsWith(preds ...predicate.CategoryDependency) predicate.PharmaCategory {
	return predicate.PharmaCategory(func(s *sql.Selector) {
		step := newRequirementsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PharmaCategory) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PharmaCategory) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PharmaCategory) predicate.PharmaCategory {
	return predicate.PharmaCategory(sql.NotPredicates(p))
}
