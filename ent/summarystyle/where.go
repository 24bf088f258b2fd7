// Code generated by ent, DO NOT EDIT.

package summarystyle

import (
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldName, v))
}

// SystemPrompt applies equality check predicate on the "system_prompt" field. It's identical to SystemPromptEQ.
func SystemPrompt(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldSystemPrompt, v))
}

// UserTemplate applies equality check predicate on the "user_template" field. It's identical to UserTemplateEQ.
func UserTemplate(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldUserTemplate, v))
}

// TargetWordCount applies equality check predicate on the "target_word_count" field. It's identical to TargetWordCountEQ.
func TargetWordCount(v int) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldTargetWordCount, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldContainsFold(FieldName, v))
}

// SystemPromptEQ applies the EQ predicate on the "system_prompt" field.
func SystemPromptEQ(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldSystemPrompt, v))
}

// SystemPromptNEQ applies the NEQ predicate on the "system_prompt" field.
func SystemPromptNEQ(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNEQ(FieldSystemPrompt, v))
}

// SystemPromptIn applies the In predicate on the "system_prompt" field.
func SystemPromptIn(vs ...string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldIn(FieldSystemPrompt, vs...))
}

// SystemPromptNotIn applies the NotIn predicate on the "system_prompt" field.
func SystemPromptNotIn(vs ...string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNotIn(FieldSystemPrompt, vs...))
}

// SystemPromptGT applies the GT predicate on the "system_prompt" field.
func SystemPromptGT(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGT(FieldSystemPrompt, v))
}

// SystemPromptGTE applies the GTE predicate on the "system_prompt" field.
func SystemPromptGTE(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGTE(FieldSystemPrompt, v))
}

// SystemPromptLT applies the LT predicate on the "system_prompt" field.
func SystemPromptLT(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLT(FieldSystemPrompt, v))
}

// SystemPromptLTE applies the LTE predicate on the "system_prompt" field.
func SystemPromptLTE(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLTE(FieldSystemPrompt, v))
}

// SystemPromptContains applies the Contains predicate on the "system_prompt" field.
func SystemPromptContains(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldContains(FieldSystemPrompt, v))
}

// SystemPromptHasPrefix applies the HasPrefix predicate on the "system_prompt" field.
func SystemPromptHasPrefix(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldHasPrefix(FieldSystemPrompt, v))
}

// SystemPromptHasSuffix applies the HasSuffix predicate on the "system_prompt" field.
func SystemPromptHasSuffix(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldHasSuffix(FieldSystemPrompt, v))
}

// SystemPromptEqualFold applies the EqualFold predicate on the "system_prompt" field.
func SystemPromptEqualFold(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEqualFold(FieldSystemPrompt, v))
}

// SystemPromptContainsFold applies the ContainsFold predicate on the "system_prompt" field.
func SystemPromptContainsFold(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldContainsFold(FieldSystemPrompt, v))
}

// UserTemplateEQ applies the EQ predicate on the "user_template" field.
func UserTemplateEQ(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldUserTemplate, v))
}

// UserTemplateNEQ applies the NEQ predicate on the "user_template" field.
func UserTemplateNEQ(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNEQ(FieldUserTemplate, v))
}

// UserTemplateIn applies the In predicate on the "user_template" field.
func UserTemplateIn(vs ...string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldIn(FieldUserTemplate, vs...))
}

// UserTemplateNotIn applies the NotIn predicate on the "user_template" field.
func UserTemplateNotIn(vs ...string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNotIn(FieldUserTemplate, vs...))
}

// UserTemplateGT applies the GT predicate on the "user_template" field.
func UserTemplateGT(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGT(FieldUserTemplate, v))
}

// UserTemplateGTE applies the GTE predicate on the "user_template" field.
func UserTemplateGTE(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGTE(FieldUserTemplate, v))
}

// UserTemplateLT applies the LT predicate on the "user_template" field.
func UserTemplateLT(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLT(FieldUserTemplate, v))
}

// UserTemplateLTE applies the LTE predicate on the "user_template" field.
func UserTemplateLTE(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLTE(FieldUserTemplate, v))
}

// UserTemplateContains applies the Contains predicate on the "user_template" field.
func UserTemplateContains(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldContains(FieldUserTemplate, v))
}

// UserTemplateHasPrefix applies the HasPrefix predicate on the "user_template" field.
func UserTemplateHasPrefix(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldHasPrefix(FieldUserTemplate, v))
}

// UserTemplateHasSuffix applies the HasSuffix predicate on the "user_template" field.
func UserTemplateHasSuffix(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldHasSuffix(FieldUserTemplate, v))
}

// UserTemplateEqualFold applies the EqualFold predicate on the "user_template" field.
func UserTemplateEqualFold(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEqualFold(FieldUserTemplate, v))
}

// UserTemplateContainsFold applies the ContainsFold predicate on the "user_template" field.
func UserTemplateContainsFold(v string) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldContainsFold(FieldUserTemplate, v))
}

// LengthTypeEQ applies the EQ predicate on the "length_type" field.
func LengthTypeEQ(v LengthType) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldLengthType, v))
}

// LengthTypeNEQ applies the NEQ predicate on the "length_type" field.
func LengthTypeNEQ(v LengthType) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNEQ(FieldLengthType, v))
}

// LengthTypeIn applies the In predicate on the "length_type" field.
func LengthTypeIn(vs ...LengthType) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldIn(FieldLengthType, vs...))
}

// LengthTypeNotIn applies the NotIn predicate on the "length_type" field.
func LengthTypeNotIn(vs ...LengthType) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNotIn(FieldLengthType, vs...))
}

// TargetWordCountEQ applies the EQ predicate on the "target_word_count" field.
func TargetWordCountEQ(v int) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldEQ(FieldTargetWordCount, v))
}

// TargetWordCountNEQ applies the NEQ predicate on the "target_word_count" field.
func TargetWordCountNEQ(v int) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNEQ(FieldTargetWordCount, v))
}

// TargetWordCountIn applies the In predicate on the "target_word_count" field.
func TargetWordCountIn(vs ...int) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldIn(FieldTargetWordCount, vs...))
}

// TargetWordCountNotIn applies the NotIn predicate on the "target_word_count" field.
func TargetWordCountNotIn(vs ...int) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldNotIn(FieldTargetWordCount, vs...))
}

// TargetWordCountGT applies the GT predicate on the "target_word_count" field.
func TargetWordCountGT(v int) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGT(FieldTargetWordCount, v))
}

// TargetWordCountGTE applies the GTE predicate on the "target_word_count" field.
func TargetWordCountGTE(v int) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldGTE(FieldTargetWordCount, v))
}

// TargetWordCountLT applies the LT predicate on the "target_word_count" field.
func TargetWordCountLT(v int) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLT(FieldTargetWordCount, v))
}

// TargetWordCountLTE applies the LTE predicate on the "target_word_count" field.
func TargetWordCountLTE(v int) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.FieldLTE(FieldTargetWordCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SummaryStyle) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SummaryStyle) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SummaryStyle) predicate.SummaryStyle {
	return predicate.SummaryStyle(sql.NotPredicates(p))
}
