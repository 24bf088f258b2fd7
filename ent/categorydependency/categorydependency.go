// Code generated by ent, DO NOT EDIT.

package categorydependency

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the categorydependency type in the database.
	Label = "category_dependency"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "dependency_id"
	// FieldDependentID holds the string denoting the dependent_id field in the database.
	FieldDependentID = "dependent_id"
	// FieldRequiredID holds the string denoting the required_id field in the database.
	FieldRequiredID = "required_id"
	// EdgeDependent holds the string denoting the dependent edge name in mutations.
	EdgeDependent = "dependent"
	// EdgeRequired holds the string denoting the required edge name in mutations.
	EdgeRequired = "required"
	// PharmaCategoryFieldID holds the string denoting the ID field of the PharmaCategory.
	PharmaCategoryFieldID = "category_id"
	// Table holds the table name of the categorydependency in the database.
	Table = "category_dependencies"
	// DependentTable is the table that holds the dependent relation/edge.
	DependentTable = "category_dependencies"
	// DependentInverseTable is the table name for the PharmaCategory entity.
	// It exists in this package in order to avoid circular dependency with the "pharmacategory" package.
	DependentInverseTable = "pharma_categories"
	// DependentColumn is the table column denoting the dependent relation/edge.
	DependentColumn = "dependent_id"
	// RequiredTable is the table that holds the required relation/edge.
	RequiredTable = "category_dependencies"
	// RequiredInverseTable is the table name for the PharmaCategory entity.
	// It exists in this package in order to avoid circular dependency with the "pharmacategory" package.
	RequiredInverseTable = "pharma_categories"
	// RequiredColumn is the table column denoting the required relation/edge.
	RequiredColumn = "required_id"
)

// Columns holds all SQL columns for categorydependency fields.
var Columns = []string{
	FieldID,
	FieldDependentID,
	FieldRequiredID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the CategoryDependency queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDependentID orders the results by the dependent_id field.
func ByDependentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDependentID, opts...).ToFunc()
}

// ByRequiredID orders the results by the required_id field.
func ByRequiredID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiredID, opts...).ToFunc()
}

// ByDependentField orders the results by dependent field.
func ByDependentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDependentStep(), sql.OrderByField(field, opts...))
	}
}

// ByRequiredField orders the results by required field.
func ByRequiredField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequiredStep(), sql.OrderByField(field, opts...))
	}
}
func newDependentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DependentInverseTable, PharmaCategoryFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DependentTable, DependentColumn),
	)
}
func newRequiredStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequiredInverseTable, PharmaCategoryFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequiredTable, RequiredColumn),
	)
}
