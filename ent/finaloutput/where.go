// Code generated by ent, DO NOT EDIT.

package finaloutput

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContainsFold(FieldID, id))
}

// RequestID applies equality check predicate on the "request_id" field. It's identical to RequestIDEQ.
func RequestID(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldRequestID, v))
}

// TdScore applies equality check predicate on the "td_score" field. It's identical to TdScoreEQ.
func TdScore(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldTdScore, v))
}

// TmScore applies equality check predicate on the "tm_score" field. It's identical to TmScoreEQ.
func TmScore(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldTmScore, v))
}

// TdVerdict applies equality check predicate on the "td_verdict" field. It's identical to TdVerdictEQ.
func TdVerdict(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldTdVerdict, v))
}

// TmVerdict applies equality check predicate on the "tm_verdict" field. It's identical to TmVerdictEQ.
func TmVerdict(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldTmVerdict, v))
}

// GoDecision applies equality check predicate on the "go_decision" field. It's identical to GoDecisionEQ.
func GoDecision(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldGoDecision, v))
}

// InvestmentPriority applies equality check predicate on the "investment_priority" field. It's identical to InvestmentPriorityEQ.
func InvestmentPriority(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldInvestmentPriority, v))
}

// RiskLevel applies equality check predicate on the "risk_level" field. It's identical to RiskLevelEQ.
func RiskLevel(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldRiskLevel, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldVersion, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldGeneratedAt, v))
}

// RequestIDEQ applies the EQ predicate on the "request_id" field.
func RequestIDEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldRequestID, v))
}

// RequestIDNEQ applies the NEQ predicate on the "request_id" field.
func RequestIDNEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldRequestID, v))
}

// RequestIDIn applies the In predicate on the "request_id" field.
func RequestIDIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldRequestID, vs...))
}

// RequestIDNotIn applies the NotIn predicate on the "request_id" field.
func RequestIDNotIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldRequestID, vs...))
}

// RequestIDGT applies the GT predicate on the "request_id" field.
func RequestIDGT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldRequestID, v))
}

// RequestIDGTE applies the GTE predicate on the "request_id" field.
func RequestIDGTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldRequestID, v))
}

// RequestIDLT applies the LT predicate on the "request_id" field.
func RequestIDLT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldRequestID, v))
}

// RequestIDLTE applies the LTE predicate on the "request_id" field.
func RequestIDLTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldRequestID, v))
}

// RequestIDContains applies the Contains predicate on the "request_id" field.
func RequestIDContains(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContains(FieldRequestID, v))
}

// RequestIDHasPrefix applies the HasPrefix predicate on the "request_id" field.
func RequestIDHasPrefix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasPrefix(FieldRequestID, v))
}

// RequestIDHasSuffix applies the HasSuffix predicate on the "request_id" field.
func RequestIDHasSuffix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasSuffix(FieldRequestID, v))
}

// RequestIDEqualFold applies the EqualFold predicate on the "request_id" field.
func RequestIDEqualFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEqualFold(FieldRequestID, v))
}

// RequestIDContainsFold applies the ContainsFold predicate on the "request_id" field.
func RequestIDContainsFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContainsFold(FieldRequestID, v))
}

// TdScoreEQ applies the EQ predicate on the "td_score" field.
func TdScoreEQ(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldTdScore, v))
}

// TdScoreNEQ applies the NEQ predicate on the "td_score" field.
func TdScoreNEQ(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldTdScore, v))
}

// TdScoreIn applies the In predicate on the "td_score" field.
func TdScoreIn(vs ...float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldTdScore, vs...))
}

// TdScoreNotIn applies the NotIn predicate on the "td_score" field.
func TdScoreNotIn(vs ...float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldTdScore, vs...))
}

// TdScoreGT applies the GT predicate on the "td_score" field.
func TdScoreGT(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldTdScore, v))
}

// TdScoreGTE applies the GTE predicate on the "td_score" field.
func TdScoreGTE(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldTdScore, v))
}

// TdScoreLT applies the LT predicate on the "td_score" field.
func TdScoreLT(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldTdScore, v))
}

// TdScoreLTE applies the LTE predicate on the "td_score" field.
func TdScoreLTE(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldTdScore, v))
}

// TmScoreEQ applies the EQ predicate on the "tm_score" field.
func TmScoreEQ(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldTmScore, v))
}

// TmScoreNEQ applies the NEQ predicate on the "tm_score" field.
func TmScoreNEQ(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldTmScore, v))
}

// TmScoreIn applies the In predicate on the "tm_score" field.
func TmScoreIn(vs ...float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldTmScore, vs...))
}

// TmScoreNotIn applies the NotIn predicate on the "tm_score" field.
func TmScoreNotIn(vs ...float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldTmScore, vs...))
}

// TmScoreGT applies the GT predicate on the "tm_score" field.
func TmScoreGT(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldTmScore, v))
}

// TmScoreGTE applies the GTE predicate on the "tm_score" field.
func TmScoreGTE(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldTmScore, v))
}

// TmScoreLT applies the LT predicate on the "tm_score" field.
func TmScoreLT(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldTmScore, v))
}

// TmScoreLTE applies the LTE predicate on the "tm_score" field.
func TmScoreLTE(v float64) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldTmScore, v))
}

// TdVerdictEQ applies the EQ predicate on the "td_verdict" field.
func TdVerdictEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldTdVerdict, v))
}

// TdVerdictNEQ applies the NEQ predicate on the "td_verdict" field.
func TdVerdictNEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldTdVerdict, v))
}

// TdVerdictIn applies the In predicate on the "td_verdict" field.
func TdVerdictIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldTdVerdict, vs...))
}

// TdVerdictNotIn applies the NotIn predicate on the "td_verdict" field.
func TdVerdictNotIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldTdVerdict, vs...))
}

// TdVerdictGT applies the GT predicate on the "td_verdict" field.
func TdVerdictGT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldTdVerdict, v))
}

// TdVerdictGTE applies the GTE predicate on the "td_verdict" field.
func TdVerdictGTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldTdVerdict, v))
}

// TdVerdictLT applies the LT predicate on the "td_verdict" field.
func TdVerdictLT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldTdVerdict, v))
}

// TdVerdictLTE applies the LTE predicate on the "td_verdict" field.
func TdVerdictLTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldTdVerdict, v))
}

// TdVerdictContains applies the Contains predicate on the "td_verdict" field.
func TdVerdictContains(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContains(FieldTdVerdict, v))
}

// TdVerdictHasPrefix applies the HasPrefix predicate on the "td_verdict" field.
func TdVerdictHasPrefix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasPrefix(FieldTdVerdict, v))
}

// TdVerdictHasSuffix applies the HasSuffix predicate on the "td_verdict" field.
func TdVerdictHasSuffix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasSuffix(FieldTdVerdict, v))
}

// TdVerdictEqualFold applies the EqualFold predicate on the "td_verdict" field.
func TdVerdictEqualFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEqualFold(FieldTdVerdict, v))
}

// TdVerdictContainsFold applies the ContainsFold predicate on the "td_verdict" field.
func TdVerdictContainsFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContainsFold(FieldTdVerdict, v))
}

// TmVerdictEQ applies the EQ predicate on the "tm_verdict" field.
func TmVerdictEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldTmVerdict, v))
}

// TmVerdictNEQ applies the NEQ predicate on the "tm_verdict" field.
func TmVerdictNEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldTmVerdict, v))
}

// TmVerdictIn applies the In predicate on the "tm_verdict" field.
func TmVerdictIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldTmVerdict, vs...))
}

// TmVerdictNotIn applies the NotIn predicate on the "tm_verdict" field.
func TmVerdictNotIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldTmVerdict, vs...))
}

// TmVerdictGT applies the GT predicate on the "tm_verdict" field.
func TmVerdictGT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldTmVerdict, v))
}

// TmVerdictGTE applies the GTE predicate on the "tm_verdict" field.
func TmVerdictGTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldTmVerdict, v))
}

// TmVerdictLT applies the LT predicate on the "tm_verdict" field.
func TmVerdictLT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldTmVerdict, v))
}

// TmVerdictLTE applies the LTE predicate on the "tm_verdict" field.
func TmVerdictLTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldTmVerdict, v))
}

// TmVerdictContains applies the Contains predicate on the "tm_verdict" field.
func TmVerdictContains(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContains(FieldTmVerdict, v))
}

// TmVerdictHasPrefix applies the HasPrefix predicate on the "tm_verdict" field.
func TmVerdictHasPrefix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasPrefix(FieldTmVerdict, v))
}

// TmVerdictHasSuffix applies the HasSuffix predicate on the "tm_verdict" field.
func TmVerdictHasSuffix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasSuffix(FieldTmVerdict, v))
}

// TmVerdictEqualFold applies the EqualFold predicate on the "tm_verdict" field.
func TmVerdictEqualFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEqualFold(FieldTmVerdict, v))
}

// TmVerdictContainsFold applies the ContainsFold predicate on the "tm_verdict" field.
func TmVerdictContainsFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContainsFold(FieldTmVerdict, v))
}

// GoDecisionEQ applies the EQ predicate on the "go_decision" field.
func GoDecisionEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldGoDecision, v))
}

// GoDecisionNEQ applies the NEQ predicate on the "go_decision" field.
func GoDecisionNEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldGoDecision, v))
}

// GoDecisionIn applies the In predicate on the "go_decision" field.
func GoDecisionIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldGoDecision, vs...))
}

// GoDecisionNotIn applies the NotIn predicate on the "go_decision" field.
func GoDecisionNotIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldGoDecision, vs...))
}

// GoDecisionGT applies the GT predicate on the "go_decision" field.
func GoDecisionGT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldGoDecision, v))
}

// GoDecisionGTE applies the GTE predicate on the "go_decision" field.
func GoDecisionGTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldGoDecision, v))
}

// GoDecisionLT applies the LT predicate on the "go_decision" field.
func GoDecisionLT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldGoDecision, v))
}

// GoDecisionLTE applies the LTE predicate on the "go_decision" field.
func GoDecisionLTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldGoDecision, v))
}

// GoDecisionContains applies the Contains predicate on the "go_decision" field.
func GoDecisionContains(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContains(FieldGoDecision, v))
}

// GoDecisionHasPrefix applies the HasPrefix predicate on the "go_decision" field.
func GoDecisionHasPrefix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasPrefix(FieldGoDecision, v))
}

// GoDecisionHasSuffix applies the HasSuffix predicate on the "go_decision" field.
func GoDecisionHasSuffix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasSuffix(FieldGoDecision, v))
}

// GoDecisionEqualFold applies the EqualFold predicate on the "go_decision" field.
func GoDecisionEqualFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEqualFold(FieldGoDecision, v))
}

// GoDecisionContainsFold applies the ContainsFold predicate on the "go_decision" field.
func GoDecisionContainsFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContainsFold(FieldGoDecision, v))
}

// InvestmentPriorityEQ applies the EQ predicate on the "investment_priority" field.
func InvestmentPriorityEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldInvestmentPriority, v))
}

// InvestmentPriorityNEQ applies the NEQ predicate on the "investment_priority" field.
func InvestmentPriorityNEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldInvestmentPriority, v))
}

// InvestmentPriorityIn applies the In predicate on the "investment_priority" field.
func InvestmentPriorityIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldInvestmentPriority, vs...))
}

// InvestmentPriorityNotIn applies the NotIn predicate on the "investment_priority" field.
func InvestmentPriorityNotIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldInvestmentPriority, vs...))
}

// InvestmentPriorityGT applies the GT predicate on the "investment_priority" field.
func InvestmentPriorityGT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldInvestmentPriority, v))
}

// InvestmentPriorityGTE applies the GTE predicate on the "investment_priority" field.
func InvestmentPriorityGTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldInvestmentPriority, v))
}

// InvestmentPriorityLT applies the LT predicate on the "investment_priority" field.
func InvestmentPriorityLT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldInvestmentPriority, v))
}

// InvestmentPriorityLTE applies the LTE predicate on the "investment_priority" field.
func InvestmentPriorityLTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldInvestmentPriority, v))
}

// InvestmentPriorityContains applies the Contains predicate on the "investment_priority" field.
func InvestmentPriorityContains(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContains(FieldInvestmentPriority, v))
}

// InvestmentPriorityHasPrefix applies the HasPrefix predicate on the "investment_priority" field.
func InvestmentPriorityHasPrefix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasPrefix(FieldInvestmentPriority, v))
}

// InvestmentPriorityHasSuffix applies the HasSuffix predicate on the "investment_priority" field.
func InvestmentPriorityHasSuffix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasSuffix(FieldInvestmentPriority, v))
}

// InvestmentPriorityEqualFold applies the EqualFold predicate on the "investment_priority" field.
func InvestmentPriorityEqualFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEqualFold(FieldInvestmentPriority, v))
}

// InvestmentPriorityContainsFold applies the ContainsFold predicate on the "investment_priority" field.
func InvestmentPriorityContainsFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContainsFold(FieldInvestmentPriority, v))
}

// RiskLevelEQ applies the EQ predicate on the "risk_level" field.
func RiskLevelEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldRiskLevel, v))
}

// RiskLevelNEQ applies the NEQ predicate on the "risk_level" field.
func RiskLevelNEQ(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldRiskLevel, v))
}

// RiskLevelIn applies the In predicate on the "risk_level" field.
func RiskLevelIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldRiskLevel, vs...))
}

// RiskLevelNotIn applies the NotIn predicate on the "risk_level" field.
func RiskLevelNotIn(vs ...string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldRiskLevel, vs...))
}

// RiskLevelGT applies the GT predicate on the "risk_level" field.
func RiskLevelGT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldRiskLevel, v))
}

// RiskLevelGTE applies the GTE predicate on the "risk_level" field.
func RiskLevelGTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldRiskLevel, v))
}

// RiskLevelLT applies the LT predicate on the "risk_level" field.
func RiskLevelLT(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldRiskLevel, v))
}

// RiskLevelLTE applies the LTE predicate on the "risk_level" field.
func RiskLevelLTE(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldRiskLevel, v))
}

// RiskLevelContains applies the Contains predicate on the "risk_level" field.
func RiskLevelContains(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContains(FieldRiskLevel, v))
}

// RiskLevelHasPrefix applies the HasPrefix predicate on the "risk_level" field.
func RiskLevelHasPrefix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasPrefix(FieldRiskLevel, v))
}

// RiskLevelHasSuffix applies the HasSuffix predicate on the "risk_level" field.
func RiskLevelHasSuffix(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldHasSuffix(FieldRiskLevel, v))
}

// RiskLevelEqualFold applies the EqualFold predicate on the "risk_level" field.
func RiskLevelEqualFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEqualFold(FieldRiskLevel, v))
}

// RiskLevelContainsFold applies the ContainsFold predicate on the "risk_level" field.
func RiskLevelContainsFold(v string) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldContainsFold(FieldRiskLevel, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldVersion, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.FinalOutput {
	return predicate.FinalOutput(sql.FieldLTE(FieldGeneratedAt, v))
}

// HasRequest applies the HasEdge predicate on the "request" edge.
func HasRequest() predicate.FinalOutput {
	return predicate.FinalOutput(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, RequestTable, RequestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequestWith applies the HasEdge predicate on the "request" edge with a given conditions (other predicates).
func HasRequestWith(preds ...predicate.AnalysisRequest) predicate.FinalOutput {
	return predicate.FinalOutput(func(s *sql.Selector) {
		step := newRequestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FinalOutput) predicate.FinalOutput {
	return predicate.FinalOutput(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FinalOutput) predicate.FinalOutput {
	return predicate.FinalOutput(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FinalOutput) predicate.FinalOutput {
	return predicate.FinalOutput(sql.NotPredicates(p))
}
