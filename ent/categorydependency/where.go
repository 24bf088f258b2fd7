// Code generated by ent, DO NOT EDIT.

package categorydependency

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldContainsFold(FieldID, id))
}

// DependentID applies equality check predicate on the "dependent_id" field. It's identical to DependentIDEQ.
func DependentID(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldEQ(FieldDependentID, v))
}

// RequiredID applies equality check predicate on the "required_id" field. It's identical to RequiredIDEQ.
func RequiredID(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldEQ(FieldRequiredID, v))
}

// DependentIDEQ applies the EQ predicate on the "dependent_id" field.
func DependentIDEQ(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldEQ(FieldDependentID, v))
}

// DependentIDNEQ applies the NEQ predicate on the "dependent_id" field.
func DependentIDNEQ(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldNEQ(FieldDependentID, v))
}

// DependentIDIn applies the In predicate on the "dependent_id" field.
func DependentIDIn(vs ...string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldIn(FieldDependentID, vs...))
}

// DependentIDNotIn applies the NotIn predicate on the "dependent_id" field.
func DependentIDNotIn(vs ...string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldNotIn(FieldDependentID, vs...))
}

// DependentIDGT applies the GT predicate on the "dependent_id" field.
func DependentIDGT(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldGT(FieldDependentID, v))
}

// DependentIDGTE applies the GTE predicate on the "dependent_id" field.
func DependentIDGTE(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldGTE(FieldDependentID, v))
}

// DependentIDLT applies the LT predicate on the "dependent_id" field.
func DependentIDLT(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldLT(FieldDependentID, v))
}

// DependentIDLTE applies the LTE predicate on the "dependent_id" field.
func DependentIDLTE(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldLTE(FieldDependentID, v))
}

// DependentIDContains applies the Contains predicate on the "dependent_id" field.
func DependentIDContains(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldContains(FieldDependentID, v))
}

// DependentIDHasPrefix applies the HasPrefix predicate on the "dependent_id" field.
func DependentIDHasPrefix(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldHasPrefix(FieldDependentID, v))
}

// DependentIDHasSuffix applies the HasSuffix predicate on the "dependent_id" field.
func DependentIDHasSuffix(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldHasSuffix(FieldDependentID, v))
}

// DependentIDEqualFold applies the EqualFold predicate on the "dependent_id" field.
func DependentIDEqualFold(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldEqualFold(FieldDependentID, v))
}

// DependentIDContainsFold applies the ContainsFold predicate on the "dependent_id" field.
func DependentIDContainsFold(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldContainsFold(FieldDependentID, v))
}

// RequiredIDEQ applies the EQ predicate on the "required_id" field.
func RequiredIDEQ(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldEQ(FieldRequiredID, v))
}

// RequiredIDNEQ applies the NEQ predicate on the "required_id" field.
func RequiredIDNEQ(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldNEQ(FieldRequiredID, v))
}

// RequiredIDIn applies the In predicate on the "required_id" field.
func RequiredIDIn(vs ...string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldIn(FieldRequiredID, vs...))
}

// RequiredIDNotIn applies the NotIn predicate on the "required_id" field.
func RequiredIDNotIn(vs ...string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldNotIn(FieldRequiredID, vs...))
}

// RequiredIDGT applies the GT predicate on the "required_id" field.
func RequiredIDGT(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldGT(FieldRequiredID, v))
}

// RequiredIDGTE applies the GTE predicate on the "required_id" field.
func RequiredIDGTE(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldGTE(FieldRequiredID, v))
}

// RequiredIDLT applies the LT predicate on the "required_id" field.
func RequiredIDLT(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldLT(FieldRequiredID, v))
}

// RequiredIDLTE applies the LTE predicate on the "required_id" field.
func RequiredIDLTE(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldLTE(FieldRequiredID, v))
}

// RequiredIDContains applies the Contains predicate on the "required_id" field.
func RequiredIDContains(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldContains(FieldRequiredID, v))
}

// RequiredIDHasPrefix applies the HasPrefix predicate on the "required_id" field.
func RequiredIDHasPrefix(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldHasPrefix(FieldRequiredID, v))
}

// RequiredIDHasSuffix applies the HasSuffix predicate on the "required_id" field.
func RequiredIDHasSuffix(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldHasSuffix(FieldRequiredID, v))
}

// RequiredIDEqualFold applies the EqualFold predicate on the "required_id" field.
func RequiredIDEqualFold(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldEqualFold(FieldRequiredID, v))
}

// RequiredIDContainsFold applies the ContainsFold predicate on the "required_id" field.
func RequiredIDContainsFold(v string) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.FieldContainsFold(FieldRequiredID, v))
}

// HasDependent applies the HasEdge predicate on the "dependent" edge.
func HasDependent() predicate.CategoryDependency {
	return predicate.CategoryDependency(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DependentTable, DependentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDependentWith applies the HasEdge predicate on the "dependent" edge with a given conditions (other predicates).
func HasDependentWith(preds ...predicate.PharmaCategory) predicate.CategoryDependency {
	return predicate.CategoryDependency(func(s *sql.Selector) {
		step := newDependentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRequired applies the HasEdge predicate on the "required" edge.
func HasRequired() predicate.CategoryDependency {
	return predicate.CategoryDependency(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequiredTable, RequiredColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequiredWith applies the HasEdge predicate on the "required" edge with a given conditions (other predicates).
func HasRequiredWith(preds ...predicate.PharmaCategory) predicate.CategoryDependency {
	return predicate.CategoryDependency(func(s *sql.Selector) {
		step := newRequiredStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CategoryDependency) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CategoryDependency) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CategoryDependency) predicate.CategoryDependency {
	return predicate.CategoryDependency(sql.NotPredicates(p))
}
