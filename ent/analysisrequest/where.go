// Code generated by ent, DO NOT EDIT.

package analysisrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldContainsFold(FieldID, id))
}

// DrugName applies equality check predicate on the "drug_name" field. It's identical to DrugNameEQ.
func DrugName(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldDrugName, v))
}

// CallbackURL applies equality check predicate on the "callback_url" field. It's identical to CallbackURLEQ.
func CallbackURL(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldCallbackURL, v))
}

// CorrelationID applies equality check predicate on the "correlation_id" field. It's identical to CorrelationIDEQ.
func CorrelationID(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldCorrelationID, v))
}

// DrugCount applies equality check predicate on the "drug_count" field. It's identical to DrugCountEQ.
func DrugCount(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldDrugCount, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldRetryCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldPodID, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldLastInteractionAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldDeletedAt, v))
}

// DrugNameEQ applies the EQ predicate on the "drug_name" field.
func DrugNameEQ(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldDrugName, v))
}

// DrugNameNEQ applies the NEQ predicate on the "drug_name" field.
func DrugNameNEQ(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldDrugName, v))
}

// DrugNameIn applies the In predicate on the "drug_name" field.
func DrugNameIn(vs ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldDrugName, vs...))
}

// DrugNameNotIn applies the NotIn predicate on the "drug_name" field.
func DrugNameNotIn(vs ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldDrugName, vs...))
}

// DrugNameGT applies the GT predicate on the "drug_name" field.
func DrugNameGT(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldDrugName, v))
}

// DrugNameGTE applies the GTE predicate on the "drug_name" field.
func DrugNameGTE(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldDrugName, v))
}

// DrugNameLT applies the LT predicate on the "drug_name" field.
func DrugNameLT(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldDrugName, v))
}

// DrugNameLTE applies the LTE predicate on the "drug_name" field.
func DrugNameLTE(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldDrugName, v))
}

// DrugNameContains applies the Contains predicate on the "drug_name" field.
func DrugNameContains(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldContains(FieldDrugName, v))
}

// DrugNameHasPrefix applies the HasPrefix predicate on the "drug_name" field.
func DrugNameHasPrefix(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldHasPrefix(FieldDrugName, v))
}

// DrugNameHasSuffix applies the HasSuffix predicate on the "drug_name" field.
func DrugNameHasSuffix(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldHasSuffix(FieldDrugName, v))
}

// DrugNameEqualFold applies the EqualFold predicate on the "drug_name" field.
func DrugNameEqualFold(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEqualFold(FieldDrugName, v))
}

// DrugNameContainsFold applies the ContainsFold predicate on the "drug_name" field.
func DrugNameContainsFold(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldContainsFold(FieldDrugName, v))
}

// DeliveryMethodEQ applies the EQ predicate on the "delivery_method" field.
func DeliveryMethodEQ(v DeliveryMethod) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldDeliveryMethod, v))
}

// DeliveryMethodNEQ applies the NEQ predicate on the "delivery_method" field.
func DeliveryMethodNEQ(v DeliveryMethod) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldDeliveryMethod, v))
}

// DeliveryMethodIn applies the In predicate on the "delivery_method" field.
func DeliveryMethodIn(vs ...DeliveryMethod) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldDeliveryMethod, vs...))
}

// DeliveryMethodNotIn applies the NotIn predicate on the "delivery_method" field.
func DeliveryMethodNotIn(vs ...DeliveryMethod) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldDeliveryMethod, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldPriority, vs...))
}

// CallbackURLEQ applies the EQ predicate on the "callback_url" field.
func CallbackURLEQ(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldCallbackURL, v))
}

// CallbackURLNEQ applies the NEQ predicate on the "callback_url" field.
func CallbackURLNEQ(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldCallbackURL, v))
}

// CallbackURLIn applies the In predicate on the "callback_url" field.
func CallbackURLIn(vs ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldCallbackURL, vs...))
}

// CallbackURLNotIn applies the NotIn predicate on the "callback_url" field.
func CallbackURLNotIn(vs ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldCallbackURL, vs...))
}

// CallbackURLGT applies the GT predicate on the "callback_url" field.
func CallbackURLGT(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldCallbackURL, v))
}

// CallbackURLGTE applies the GTE predicate on the "callback_url" field.
func CallbackURLGTE(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldCallbackURL, v))
}

// CallbackURLLT applies the LT predicate on the "callback_url" field.
func CallbackURLLT(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldCallbackURL, v))
}

// CallbackURLLTE applies the LTE predicate on the "callback_url" field.
func CallbackURLLTE(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldCallbackURL, v))
}

// CallbackURLContains applies the Contains predicate on the "callback_url" field.
func CallbackURLContains(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldContains(FieldCallbackURL, v))
}

// CallbackURLHasPrefix applies the HasPrefix predicate on the "callback_url" field.
func CallbackURLHasPrefix(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldHasPrefix(FieldCallbackURL, v))
}

// CallbackURLHasSuffix applies the HasSuffix predicate on the "callback_url" field.
func CallbackURLHasSuffix(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldHasSuffix(FieldCallbackURL, v))
}

// CallbackURLIsNil applies the IsNil predicate on the "callback_url" field.
func CallbackURLIsNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIsNull(FieldCallbackURL))
}

// CallbackURLNotNil applies the NotNil predicate on the "callback_url" field.
func CallbackURLNotNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotNull(FieldCallbackURL))
}

// CallbackURLEqualFold applies the EqualFold predicate on the "callback_url" field.
func CallbackURLEqualFold(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEqualFold(FieldCallbackURL, v))
}

// CallbackURLContainsFold applies the ContainsFold predicate on the "callback_url" field.
func CallbackURLContainsFold(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldContainsFold(FieldCallbackURL, v))
}

// CorrelationIDEQ applies the EQ predicate on the "correlation_id" field.
func CorrelationIDEQ(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldCorrelationID, v))
}

// CorrelationIDNEQ applies the NEQ predicate on the "correlation_id" field.
func CorrelationIDNEQ(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldCorrelationID, v))
}

// CorrelationIDIn applies the In predicate on the "correlation_id" field.
func CorrelationIDIn(vs ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldCorrelationID, vs...))
}

// CorrelationIDNotIn applies the NotIn predicate on the "correlation_id" field.
func CorrelationIDNotIn(vs ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldCorrelationID, vs...))
}

// CorrelationIDGT applies the GT predicate on the "correlation_id" field.
func CorrelationIDGT(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldCorrelationID, v))
}

// CorrelationIDGTE applies the GTE predicate on the "correlation_id" field.
func CorrelationIDGTE(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldCorrelationID, v))
}

// CorrelationIDLT applies the LT predicate on the "correlation_id" field.
func CorrelationIDLT(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldCorrelationID, v))
}

// CorrelationIDLTE applies the LTE predicate on the "correlation_id" field.
func CorrelationIDLTE(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldCorrelationID, v))
}

// CorrelationIDContains applies the Contains predicate on the "correlation_id" field.
func CorrelationIDContains(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldContains(FieldCorrelationID, v))
}

// CorrelationIDHasPrefix applies the HasPrefix predicate on the "correlation_id" field.
func CorrelationIDHasPrefix(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldHasPrefix(FieldCorrelationID, v))
}

// CorrelationIDHasSuffix applies the HasSuffix predicate on the "correlation_id" field.
func CorrelationIDHasSuffix(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldHasSuffix(FieldCorrelationID, v))
}

// CorrelationIDEqualFold applies the EqualFold predicate on the "correlation_id" field.
func CorrelationIDEqualFold(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEqualFold(FieldCorrelationID, v))
}

// CorrelationIDContainsFold applies the ContainsFold predicate on the "correlation_id" field.
func CorrelationIDContainsFold(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldContainsFold(FieldCorrelationID, v))
}

// DrugCountEQ applies the EQ predicate on the "drug_count" field.
func DrugCountEQ(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldDrugCount, v))
}

// DrugCountNEQ applies the NEQ predicate on the "drug_count" field.
func DrugCountNEQ(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldDrugCount, v))
}

// DrugCountIn applies the In predicate on the "drug_count" field.
func DrugCountIn(vs ...int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldDrugCount, vs...))
}

// DrugCountNotIn applies the NotIn predicate on the "drug_count" field.
func DrugCountNotIn(vs ...int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldDrugCount, vs...))
}

// DrugCountGT applies the GT predicate on the "drug_count" field.
func DrugCountGT(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldDrugCount, v))
}

// DrugCountGTE applies the GTE predicate on the "drug_count" field.
func DrugCountGTE(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldDrugCount, v))
}

// DrugCountLT applies the LT predicate on the "drug_count" field.
func DrugCountLT(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldDrugCount, v))
}

// DrugCountLTE applies the LTE predicate on the "drug_count" field.
func DrugCountLTE(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldDrugCount, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldRetryCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotNull(FieldCompletedAt))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldContainsFold(FieldPodID, v))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotNull(FieldLastInteractionAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.FieldNotNull(FieldDeletedAt))
}

// HasTracking applies the HasEdge predicate on the "tracking" edge.
func HasTracking() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, TrackingTable, TrackingColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrackingWith applies the HasEdge predicate on the "tracking" edge with a given conditions (other predicates).
func HasTrackingWith(preds ...predicate.ProcessTracking) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := newTrackingStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCategoryResults applies the HasEdge predicate on the "category_results" edge.
func HasCategoryResults() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CategoryResultsTable, CategoryResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryResultsWith applies the HasEdge predicate on the "category_results" edge with a given conditions (other predicates).
func HasCategoryResultsWith(preds ...predicate.CategoryResult) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := newCategoryResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParameterResults applies the HasEdge predicate on the "parameter_results" edge.
func HasParameterResults() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParameterResultsTable, ParameterResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParameterResultsWith applies the HasEdge predicate on the "parameter_results" edge with a given conditions (other predicates).
func HasParameterResultsWith(preds ...predicate.ParameterResult) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := newParameterResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStageEvents applies the HasEdge predicate on the "stage_events" edge.
func HasStageEvents() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StageEventsTable, StageEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStageEventsWith applies the HasEdge predicate on the "stage_events" edge with a given conditions (other predicates).
func HasStageEventsWith(preds ...predicate.StageEvent) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := newStageEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFinalOutput applies the HasEdge predicate on the "final_output" edge.
func HasFinalOutput() predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, FinalOutputTable, FinalOutputColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFinalOutputWith applies the HasEdge predicate on the "final_output" edge with a given conditions (other predicates).
func HasFinalOutputWith(preds ...predicate.FinalOutput) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(func(s *sql.Selector) {
		step := newFinalOutputStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisRequest) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisRequest) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisRequest) predicate.AnalysisRequest {
	return predicate.AnalysisRequest(sql.NotPredicates(p))
}
