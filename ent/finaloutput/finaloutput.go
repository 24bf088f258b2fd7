// Code generated by ent, DO NOT EDIT.

package finaloutput

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the finaloutput type in the database.
	Label = "final_output"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "output_id"
	// FieldRequestID holds the string denoting the request_id field in the database.
	FieldRequestID = "request_id"
	// FieldDocument holds the string denoting the document field in the database.
	FieldDocument = "document"
	// FieldTdScore holds the string denoting the td_score field in the database.
	FieldTdScore = "td_score"
	// FieldTmScore holds the string denoting the tm_score field in the database.
	FieldTmScore = "tm_score"
	// FieldTdVerdict holds the string denoting the td_verdict field in the database.
	FieldTdVerdict = "td_verdict"
	// FieldTmVerdict holds the string denoting the tm_verdict field in the database.
	FieldTmVerdict = "tm_verdict"
	// FieldGoDecision holds the string denoting the go_decision field in the database.
	FieldGoDecision = "go_decision"
	// FieldInvestmentPriority holds the string denoting the investment_priority field in the database.
	FieldInvestmentPriority = "investment_priority"
	// FieldRiskLevel holds the string denoting the risk_level field in the database.
	FieldRiskLevel = "risk_level"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldGeneratedAt holds the string denoting the generated_at field in the database.
	FieldGeneratedAt = "generated_at"
	// EdgeRequest holds the string denoting the request edge name in mutations.
	EdgeRequest = "request"
	// AnalysisRequestFieldID holds the string denoting the ID field of the AnalysisRequest.
	AnalysisRequestFieldID = "request_id"
	// Table holds the table name of the finaloutput in the database.
	Table = "final_outputs"
	// RequestTable is the table that holds the request relation/edge.
	RequestTable = "final_outputs"
	// RequestInverseTable is the table name for the AnalysisRequest entity.
	// It exists in this package in order to avoid circular dependency with the "analysisrequest" package.
	RequestInverseTable = "analysis_requests"
	// RequestColumn is the table column denoting the request relation/edge.
	RequestColumn = "request_id"
)

// Columns holds all SQL columns for finaloutput fields.
var Columns = []string{
	FieldID,
	FieldRequestID,
	FieldDocument,
	FieldTdScore,
	FieldTmScore,
	FieldTdVerdict,
	FieldTmVerdict,
	FieldGoDecision,
	FieldInvestmentPriority,
	FieldRiskLevel,
	FieldVersion,
	FieldGeneratedAt,
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

var (
	// DefaultTdScore holds the default value on creation for the "td_score" field.
	DefaultTdScore float64
	// DefaultTmScore holds the default value on creation for the "tm_score" field.
	DefaultTmScore float64
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultGeneratedAt holds the default value on creation for the "generated_at" field.
	DefaultGeneratedAt func() time.Time
)

// OrderOption defines the ordering options for the FinalOutput queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequestID orders the results by the request_id field.
func ByRequestID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestID, opts...).ToFunc()
}

// ByTdScore orders the results by the td_score field.
func ByTdScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTdScore, opts...).ToFunc()
}

// ByTmScore orders the results by the tm_score field.
func ByTmScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTmScore, opts...).ToFunc()
}

// ByTdVerdict orders the results by the td_verdict field.
func ByTdVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTdVerdict, opts...).ToFunc()
}

// ByTmVerdict orders the results by the tm_verdict field.
func ByTmVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTmVerdict, opts...).ToFunc()
}

// ByGoDecision orders the results by the go_decision field.
func ByGoDecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoDecision, opts...).ToFunc()
}

// ByInvestmentPriority orders the results by the investment_priority field.
func ByInvestmentPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvestmentPriority, opts...).ToFunc()
}

// ByRiskLevel orders the results by the risk_level field.
func ByRiskLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiskLevel, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByGeneratedAt orders the results by the generated_at field.
func ByGeneratedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedAt, opts...).ToFunc()
}

// ByRequestField orders the results by request field.
func ByRequestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequestStep(), sql.OrderByField(field, opts...))
	}
}
func newRequestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequestInverseTable, AnalysisRequestFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, RequestTable, RequestColumn),
	)
}
