// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/auditevent"
	"github.com/owais-symtera/cognito-sub001/ent/categorydependency"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
	"github.com/owais-symtera/cognito-sub001/ent/pipelinestage"
	"github.com/owais-symtera/cognito-sub001/ent/predicate"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
	"github.com/owais-symtera/cognito-sub001/ent/ratebucket"
	"github.com/owais-symtera/cognito-sub001/ent/scoringparameter"
	"github.com/owais-symtera/cognito-sub001/ent/scoringrange"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
	"github.com/owais-symtera/cognito-sub001/ent/summaryhistory"
	"github.com/owais-symtera/cognito-sub001/ent/summarystyle"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysisRequest    = "AnalysisRequest"
	TypeAuditEvent         = "AuditEvent"
	TypeCategoryDependency = "CategoryDependency"
	TypeCategoryResult     = "CategoryResult"
	TypeFinalOutput        = "FinalOutput"
	TypeMergedData         = "MergedData"
	TypeParameterResult    = "ParameterResult"
	TypePharmaCategory     = "PharmaCategory"
	TypePipelineStage      = "PipelineStage"
	TypeProcessTracking    = "ProcessTracking"
	TypeProviderResponse   = "ProviderResponse"
	TypeRateBucket         = "RateBucket"
	TypeScoringParameter   = "ScoringParameter"
	TypeScoringRange       = "ScoringRange"
	TypeSourceConflict     = "SourceConflict"
	TypeStageEvent         = "StageEvent"
	TypeSummaryHistory     = "SummaryHistory"
	TypeSummaryStyle       = "SummaryStyle"
)

// AnalysisRequestMutation represents an operation that mutates the AnalysisRequest nodes in the graph.
type AnalysisRequestMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	drug_name                *string
	delivery_method          *analysisrequest.DeliveryMethod
	priority                 *analysisrequest.Priority
	callback_url             *string
	correlation_id           *string
	drug_count               *int
	adddrug_count            *int
	retry_count              *int
	addretry_count           *int
	created_at               *time.Time
	updated_at               *time.Time
	completed_at             *time.Time
	pod_id                   *string
	last_interaction_at      *time.Time
	deleted_at               *time.Time
	clearedFields            map[string]struct{}
	tracking                 *string
	clearedtracking          bool
	category_results         map[string]struct{}
	removedcategory_results  map[string]struct{}
	clearedcategory_results  bool
	parameter_results        map[string]struct{}
	removedparameter_results map[string]struct{}
	clearedparameter_results bool
	stage_events             map[string]struct{}
	removedstage_events      map[string]struct{}
	clearedstage_events      bool
	final_output             *string
	clearedfinal_output      bool
	done                     bool
	oldValue                 func(context.Context) (*AnalysisRequest, error)
	predicates               []predicate.AnalysisRequest
}

var _ ent.Mutation = (*AnalysisRequestMutation)(nil)

// analysisrequestOption allows management of the mutation configuration using functional options.
type analysisrequestOption func(*AnalysisRequestMutation)

// newAnalysisRequestMutation creates new mutation for the AnalysisRequest entity.
func newAnalysisRequestMutation(c config, op Op, opts ...analysisrequestOption) *AnalysisRequestMutation {
	m := &AnalysisRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisRequestID sets the ID field of the mutation.
func withAnalysisRequestID(id string) analysisrequestOption {
	return func(m *AnalysisRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisRequest
		)
		m.oldValue = func(ctx context.Context) (*AnalysisRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisRequest sets the old AnalysisRequest of the mutation.
func withAnalysisRequest(node *AnalysisRequest) analysisrequestOption {
	return func(m *AnalysisRequestMutation) {
		m.oldValue = func(context.Context) (*AnalysisRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisRequest entities.
func (m *AnalysisRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDrugName sets the "drug_name" field.
func (m *AnalysisRequestMutation) SetDrugName(s string) {
	m.drug_name = &s
}

// DrugName returns the value of the "drug_name" field in the mutation.
func (m *AnalysisRequestMutation) DrugName() (r string, exists bool) {
	v := m.drug_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDrugName returns the old "drug_name" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldDrugName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrugName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrugName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrugName: %w", err)
	}
	return oldValue.DrugName, nil
}

// ResetDrugName resets all changes to the "drug_name" field.
func (m *AnalysisRequestMutation) ResetDrugName() {
	m.drug_name = nil
}

// SetDeliveryMethod sets the "delivery_method" field.
func (m *AnalysisRequestMutation) SetDeliveryMethod(am analysisrequest.DeliveryMethod) {
	m.delivery_method = &am
}

// DeliveryMethod returns the value of the "delivery_method" field in the mutation.
func (m *AnalysisRequestMutation) DeliveryMethod() (r analysisrequest.DeliveryMethod, exists bool) {
	v := m.delivery_method
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryMethod returns the old "delivery_method" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldDeliveryMethod(ctx context.Context) (v analysisrequest.DeliveryMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryMethod: %w", err)
	}
	return oldValue.DeliveryMethod, nil
}

// ResetDeliveryMethod resets all changes to the "delivery_method" field.
func (m *AnalysisRequestMutation) ResetDeliveryMethod() {
	m.delivery_method = nil
}

// SetPriority sets the "priority" field.
func (m *AnalysisRequestMutation) SetPriority(a analysisrequest.Priority) {
	m.priority = &a
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AnalysisRequestMutation) Priority() (r analysisrequest.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldPriority(ctx context.Context) (v analysisrequest.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *AnalysisRequestMutation) ResetPriority() {
	m.priority = nil
}

// SetCallbackURL sets the "callback_url" field.
func (m *AnalysisRequestMutation) SetCallbackURL(s string) {
	m.callback_url = &s
}

// CallbackURL returns the value of the "callback_url" field in the mutation.
func (m *AnalysisRequestMutation) CallbackURL() (r string, exists bool) {
	v := m.callback_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCallbackURL returns the old "callback_url" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldCallbackURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCallbackURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCallbackURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCallbackURL: %w", err)
	}
	return oldValue.CallbackURL, nil
}

// ClearCallbackURL clears the value of the "callback_url" field.
func (m *AnalysisRequestMutation) ClearCallbackURL() {
	m.callback_url = nil
	m.clearedFields[analysisrequest.FieldCallbackURL] = struct{}{}
}

// CallbackURLCleared returns if the "callback_url" field was cleared in this mutation.
func (m *AnalysisRequestMutation) CallbackURLCleared() bool {
	_, ok := m.clearedFields[analysisrequest.FieldCallbackURL]
	return ok
}

// ResetCallbackURL resets all changes to the "callback_url" field.
func (m *AnalysisRequestMutation) ResetCallbackURL() {
	m.callback_url = nil
	delete(m.clearedFields, analysisrequest.FieldCallbackURL)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AnalysisRequestMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AnalysisRequestMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AnalysisRequestMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetDrugCount sets the "drug_count" field.
func (m *AnalysisRequestMutation) SetDrugCount(i int) {
	m.drug_count = &i
	m.adddrug_count = nil
}

// DrugCount returns the value of the "drug_count" field in the mutation.
func (m *AnalysisRequestMutation) DrugCount() (r int, exists bool) {
	v := m.drug_count
	if v == nil {
		return
	}
	return *v, true
}

// OldDrugCount returns the old "drug_count" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldDrugCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrugCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrugCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrugCount: %w", err)
	}
	return oldValue.DrugCount, nil
}

// AddDrugCount adds i to the "drug_count" field.
func (m *AnalysisRequestMutation) AddDrugCount(i int) {
	if m.adddrug_count != nil {
		*m.adddrug_count += i
	} else {
		m.adddrug_count = &i
	}
}

// AddedDrugCount returns the value that was added to the "drug_count" field in this mutation.
func (m *AnalysisRequestMutation) AddedDrugCount() (r int, exists bool) {
	v := m.adddrug_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetDrugCount resets all changes to the "drug_count" field.
func (m *AnalysisRequestMutation) ResetDrugCount() {
	m.drug_count = nil
	m.adddrug_count = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *AnalysisRequestMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *AnalysisRequestMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *AnalysisRequestMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *AnalysisRequestMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *AnalysisRequestMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AnalysisRequestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AnalysisRequestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AnalysisRequestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AnalysisRequestMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AnalysisRequestMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AnalysisRequestMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[analysisrequest.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AnalysisRequestMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[analysisrequest.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AnalysisRequestMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, analysisrequest.FieldCompletedAt)
}

// SetPodID sets the "pod_id" field.
func (m *AnalysisRequestMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AnalysisRequestMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AnalysisRequestMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[analysisrequest.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AnalysisRequestMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[analysisrequest.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AnalysisRequestMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, analysisrequest.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *AnalysisRequestMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *AnalysisRequestMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *AnalysisRequestMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[analysisrequest.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *AnalysisRequestMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[analysisrequest.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *AnalysisRequestMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, analysisrequest.FieldLastInteractionAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AnalysisRequestMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AnalysisRequestMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the AnalysisRequest entity.
// If the AnalysisRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisRequestMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AnalysisRequestMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[analysisrequest.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AnalysisRequestMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[analysisrequest.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AnalysisRequestMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, analysisrequest.FieldDeletedAt)
}

// SetTrackingID sets the "tracking" edge to the ProcessTracking entity by id.
func (m *AnalysisRequestMutation) SetTrackingID(id string) {
	m.tracking = &id
}

// ClearTracking clears the "tracking" edge to the ProcessTracking entity.
func (m *AnalysisRequestMutation) ClearTracking() {
	m.clearedtracking = true
}

// TrackingCleared reports if the "tracking" edge to the ProcessTracking entity was cleared.
func (m *AnalysisRequestMutation) TrackingCleared() bool {
	return m.clearedtracking
}

// TrackingID returns the "tracking" edge ID in the mutation.
func (m *AnalysisRequestMutation) TrackingID() (id string, exists bool) {
	if m.tracking != nil {
		return *m.tracking, true
	}
	return
}

// TrackingIDs returns the "tracking" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TrackingID instead. It exists only for internal usage by the builders.
func (m *AnalysisRequestMutation) TrackingIDs() (ids []string) {
	if id := m.tracking; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTracking resets all changes to the "tracking" edge.
func (m *AnalysisRequestMutation) ResetTracking() {
	m.tracking = nil
	m.clearedtracking = false
}

// AddCategoryResultIDs adds the "category_results" edge to the CategoryResult entity by ids.
func (m *AnalysisRequestMutation) AddCategoryResultIDs(ids ...string) {
	if m.category_results == nil {
		m.category_results = make(map[string]struct{})
	}
	for i := range ids {
		m.category_results[ids[i]] = struct{}{}
	}
}

// ClearCategoryResults clears the "category_results" edge to the CategoryResult entity.
func (m *AnalysisRequestMutation) ClearCategoryResults() {
	m.clearedcategory_results = true
}

// CategoryResultsCleared reports if the "category_results" edge to the CategoryResult entity was cleared.
func (m *AnalysisRequestMutation) CategoryResultsCleared() bool {
	return m.clearedcategory_results
}

// RemoveCategoryResultIDs removes the "category_results" edge to the CategoryResult entity by IDs.
func (m *AnalysisRequestMutation) RemoveCategoryResultIDs(ids ...string) {
	if m.removedcategory_results == nil {
		m.removedcategory_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.category_results, ids[i])
		m.removedcategory_results[ids[i]] = struct{}{}
	}
}

// RemovedCategoryResults returns the removed IDs of the "category_results" edge to the CategoryResult entity.
func (m *AnalysisRequestMutation) RemovedCategoryResultsIDs() (ids []string) {
	for id := range m.removedcategory_results {
		ids = append(ids, id)
	}
	return
}

// CategoryResultsIDs returns the "category_results" edge IDs in the mutation.
func (m *AnalysisRequestMutation) CategoryResultsIDs() (ids []string) {
	for id := range m.category_results {
		ids = append(ids, id)
	}
	return
}

// ResetCategoryResults resets all changes to the "category_results" edge.
func (m *AnalysisRequestMutation) ResetCategoryResults() {
	m.category_results = nil
	m.clearedcategory_results = false
	m.removedcategory_results = nil
}

// AddParameterResultIDs adds the "parameter_results" edge to the ParameterResult entity by ids.
func (m *AnalysisRequestMutation) AddParameterResultIDs(ids ...string) {
	if m.parameter_results == nil {
		m.parameter_results = make(map[string]struct{})
	}
	for i := range ids {
		m.parameter_results[ids[i]] = struct{}{}
	}
}

// ClearParameterResults clears the "parameter_results" edge to the ParameterResult entity.
func (m *AnalysisRequestMutation) ClearParameterResults() {
	m.clearedparameter_results = true
}

// ParameterResultsCleared reports if the "parameter_results" edge to the ParameterResult entity was cleared.
func (m *AnalysisRequestMutation) ParameterResultsCleared() bool {
	return m.clearedparameter_results
}

// RemoveParameterResultIDs removes the "parameter_results" edge to the ParameterResult entity by IDs.
func (m *AnalysisRequestMutation) RemoveParameterResultIDs(ids ...string) {
	if m.removedparameter_results == nil {
		m.removedparameter_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.parameter_results, ids[i])
		m.removedparameter_results[ids[i]] = struct{}{}
	}
}

// RemovedParameterResults returns the removed IDs of the "parameter_results" edge to the ParameterResult entity.
func (m *AnalysisRequestMutation) RemovedParameterResultsIDs() (ids []string) {
	for id := range m.removedparameter_results {
		ids = append(ids, id)
	}
	return
}

// ParameterResultsIDs returns the "parameter_results" edge IDs in the mutation.
func (m *AnalysisRequestMutation) ParameterResultsIDs() (ids []string) {
	for id := range m.parameter_results {
		ids = append(ids, id)
	}
	return
}

// ResetParameterResults resets all changes to the "parameter_results" edge.
func (m *AnalysisRequestMutation) ResetParameterResults() {
	m.parameter_results = nil
	m.clearedparameter_results = false
	m.removedparameter_results = nil
}

// AddStageEventIDs adds the "stage_events" edge to the StageEvent entity by ids.
func (m *AnalysisRequestMutation) AddStageEventIDs(ids ...string) {
	if m.stage_events == nil {
		m.stage_events = make(map[string]struct{})
	}
	for i := range ids {
		m.stage_events[ids[i]] = struct{}{}
	}
}

// ClearStageEvents clears the "stage_events" edge to the StageEvent entity.
func (m *AnalysisRequestMutation) ClearStageEvents() {
	m.clearedstage_events = true
}

// StageEventsCleared reports if the "stage_events" edge to the StageEvent entity was cleared.
func (m *AnalysisRequestMutation) StageEventsCleared() bool {
	return m.clearedstage_events
}

// RemoveStageEventIDs removes the "stage_events" edge to the StageEvent entity by IDs.
func (m *AnalysisRequestMutation) RemoveStageEventIDs(ids ...string) {
	if m.removedstage_events == nil {
		m.removedstage_events = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.stage_events, ids[i])
		m.removedstage_events[ids[i]] = struct{}{}
	}
}

// RemovedStageEvents returns the removed IDs of the "stage_events" edge to the StageEvent entity.
func (m *AnalysisRequestMutation) RemovedStageEventsIDs() (ids []string) {
	for id := range m.removedstage_events {
		ids = append(ids, id)
	}
	return
}

// StageEventsIDs returns the "stage_events" edge IDs in the mutation.
func (m *AnalysisRequestMutation) StageEventsIDs() (ids []string) {
	for id := range m.stage_events {
		ids = append(ids, id)
	}
	return
}

// ResetStageEvents resets all changes to the "stage_events" edge.
func (m *AnalysisRequestMutation) ResetStageEvents() {
	m.stage_events = nil
	m.clearedstage_events = false
	m.removedstage_events = nil
}

// SetFinalOutputID sets the "final_output" edge to the FinalOutput entity by id.
func (m *AnalysisRequestMutation) SetFinalOutputID(id string) {
	m.final_output = &id
}

// ClearFinalOutput clears the "final_output" edge to the FinalOutput entity.
func (m *AnalysisRequestMutation) ClearFinalOutput() {
	m.clearedfinal_output = true
}

// FinalOutputCleared reports if the "final_output" edge to the FinalOutput entity was cleared.
func (m *AnalysisRequestMutation) FinalOutputCleared() bool {
	return m.clearedfinal_output
}

// FinalOutputID returns the "final_output" edge ID in the mutation.
func (m *AnalysisRequestMutation) FinalOutputID() (id string, exists bool) {
	if m.final_output != nil {
		return *m.final_output, true
	}
	return
}

// FinalOutputIDs returns the "final_output" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FinalOutputID instead. It exists only for internal usage by the builders.
func (m *AnalysisRequestMutation) FinalOutputIDs() (ids []string) {
	if id := m.final_output; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFinalOutput resets all changes to the "final_output" edge.
func (m *AnalysisRequestMutation) ResetFinalOutput() {
	m.final_output = nil
	m.clearedfinal_output = false
}

// Where appends a list predicates to the AnalysisRequestMutation builder.
func (m *AnalysisRequestMutation) Where(ps ...predicate.AnalysisRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisRequest).
func (m *AnalysisRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisRequestMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.drug_name != nil {
		fields = append(fields, analysisrequest.FieldDrugName)
	}
	if m.delivery_method != nil {
		fields = append(fields, analysisrequest.FieldDeliveryMethod)
	}
	if m.priority != nil {
		fields = append(fields, analysisrequest.FieldPriority)
	}
	if m.callback_url != nil {
		fields = append(fields, analysisrequest.FieldCallbackURL)
	}
	if m.correlation_id != nil {
		fields = append(fields, analysisrequest.FieldCorrelationID)
	}
	if m.drug_count != nil {
		fields = append(fields, analysisrequest.FieldDrugCount)
	}
	if m.retry_count != nil {
		fields = append(fields, analysisrequest.FieldRetryCount)
	}
	if m.created_at != nil {
		fields = append(fields, analysisrequest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, analysisrequest.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, analysisrequest.FieldCompletedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, analysisrequest.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, analysisrequest.FieldLastInteractionAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, analysisrequest.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisrequest.FieldDrugName:
		return m.DrugName()
	case analysisrequest.FieldDeliveryMethod:
		return m.DeliveryMethod()
	case analysisrequest.FieldPriority:
		return m.Priority()
	case analysisrequest.FieldCallbackURL:
		return m.CallbackURL()
	case analysisrequest.FieldCorrelationID:
		return m.CorrelationID()
	case analysisrequest.FieldDrugCount:
		return m.DrugCount()
	case analysisrequest.FieldRetryCount:
		return m.RetryCount()
	case analysisrequest.FieldCreatedAt:
		return m.CreatedAt()
	case analysisrequest.FieldUpdatedAt:
		return m.UpdatedAt()
	case analysisrequest.FieldCompletedAt:
		return m.CompletedAt()
	case analysisrequest.FieldPodID:
		return m.PodID()
	case analysisrequest.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case analysisrequest.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisrequest.FieldDrugName:
		return m.OldDrugName(ctx)
	case analysisrequest.FieldDeliveryMethod:
		return m.OldDeliveryMethod(ctx)
	case analysisrequest.FieldPriority:
		return m.OldPriority(ctx)
	case analysisrequest.FieldCallbackURL:
		return m.OldCallbackURL(ctx)
	case analysisrequest.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case analysisrequest.FieldDrugCount:
		return m.OldDrugCount(ctx)
	case analysisrequest.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case analysisrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysisrequest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case analysisrequest.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case analysisrequest.FieldPodID:
		return m.OldPodID(ctx)
	case analysisrequest.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case analysisrequest.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisrequest.FieldDrugName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrugName(v)
		return nil
	case analysisrequest.FieldDeliveryMethod:
		v, ok := value.(analysisrequest.DeliveryMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryMethod(v)
		return nil
	case analysisrequest.FieldPriority:
		v, ok := value.(analysisrequest.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case analysisrequest.FieldCallbackURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCallbackURL(v)
		return nil
	case analysisrequest.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case analysisrequest.FieldDrugCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrugCount(v)
		return nil
	case analysisrequest.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case analysisrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysisrequest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case analysisrequest.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case analysisrequest.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case analysisrequest.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case analysisrequest.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisRequestMutation) AddedFields() []string {
	var fields []string
	if m.adddrug_count != nil {
		fields = append(fields, analysisrequest.FieldDrugCount)
	}
	if m.addretry_count != nil {
		fields = append(fields, analysisrequest.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisrequest.FieldDrugCount:
		return m.AddedDrugCount()
	case analysisrequest.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisrequest.FieldDrugCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrugCount(v)
		return nil
	case analysisrequest.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisrequest.FieldCallbackURL) {
		fields = append(fields, analysisrequest.FieldCallbackURL)
	}
	if m.FieldCleared(analysisrequest.FieldCompletedAt) {
		fields = append(fields, analysisrequest.FieldCompletedAt)
	}
	if m.FieldCleared(analysisrequest.FieldPodID) {
		fields = append(fields, analysisrequest.FieldPodID)
	}
	if m.FieldCleared(analysisrequest.FieldLastInteractionAt) {
		fields = append(fields, analysisrequest.FieldLastInteractionAt)
	}
	if m.FieldCleared(analysisrequest.FieldDeletedAt) {
		fields = append(fields, analysisrequest.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisRequestMutation) ClearField(name string) error {
	switch name {
	case analysisrequest.FieldCallbackURL:
		m.ClearCallbackURL()
		return nil
	case analysisrequest.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case analysisrequest.FieldPodID:
		m.ClearPodID()
		return nil
	case analysisrequest.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	case analysisrequest.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisRequestMutation) ResetField(name string) error {
	switch name {
	case analysisrequest.FieldDrugName:
		m.ResetDrugName()
		return nil
	case analysisrequest.FieldDeliveryMethod:
		m.ResetDeliveryMethod()
		return nil
	case analysisrequest.FieldPriority:
		m.ResetPriority()
		return nil
	case analysisrequest.FieldCallbackURL:
		m.ResetCallbackURL()
		return nil
	case analysisrequest.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case analysisrequest.FieldDrugCount:
		m.ResetDrugCount()
		return nil
	case analysisrequest.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case analysisrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysisrequest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case analysisrequest.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case analysisrequest.FieldPodID:
		m.ResetPodID()
		return nil
	case analysisrequest.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case analysisrequest.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.tracking != nil {
		edges = append(edges, analysisrequest.EdgeTracking)
	}
	if m.category_results != nil {
		edges = append(edges, analysisrequest.EdgeCategoryResults)
	}
	if m.parameter_results != nil {
		edges = append(edges, analysisrequest.EdgeParameterResults)
	}
	if m.stage_events != nil {
		edges = append(edges, analysisrequest.EdgeStageEvents)
	}
	if m.final_output != nil {
		edges = append(edges, analysisrequest.EdgeFinalOutput)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysisrequest.EdgeTracking:
		if id := m.tracking; id != nil {
			return []ent.Value{*id}
		}
	case analysisrequest.EdgeCategoryResults:
		ids := make([]ent.Value, 0, len(m.category_results))
		for id := range m.category_results {
			ids = append(ids, id)
		}
		return ids
	case analysisrequest.EdgeParameterResults:
		ids := make([]ent.Value, 0, len(m.parameter_results))
		for id := range m.parameter_results {
			ids = append(ids, id)
		}
		return ids
	case analysisrequest.EdgeStageEvents:
		ids := make([]ent.Value, 0, len(m.stage_events))
		for id := range m.stage_events {
			ids = append(ids, id)
		}
		return ids
	case analysisrequest.EdgeFinalOutput:
		if id := m.final_output; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedcategory_results != nil {
		edges = append(edges, analysisrequest.EdgeCategoryResults)
	}
	if m.removedparameter_results != nil {
		edges = append(edges, analysisrequest.EdgeParameterResults)
	}
	if m.removedstage_events != nil {
		edges = append(edges, analysisrequest.EdgeStageEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisRequestMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case analysisrequest.EdgeCategoryResults:
		ids := make([]ent.Value, 0, len(m.removedcategory_results))
		for id := range m.removedcategory_results {
			ids = append(ids, id)
		}
		return ids
	case analysisrequest.EdgeParameterResults:
		ids := make([]ent.Value, 0, len(m.removedparameter_results))
		for id := range m.removedparameter_results {
			ids = append(ids, id)
		}
		return ids
	case analysisrequest.EdgeStageEvents:
		ids := make([]ent.Value, 0, len(m.removedstage_events))
		for id := range m.removedstage_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedtracking {
		edges = append(edges, analysisrequest.EdgeTracking)
	}
	if m.clearedcategory_results {
		edges = append(edges, analysisrequest.EdgeCategoryResults)
	}
	if m.clearedparameter_results {
		edges = append(edges, analysisrequest.EdgeParameterResults)
	}
	if m.clearedstage_events {
		edges = append(edges, analysisrequest.EdgeStageEvents)
	}
	if m.clearedfinal_output {
		edges = append(edges, analysisrequest.EdgeFinalOutput)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case analysisrequest.EdgeTracking:
		return m.clearedtracking
	case analysisrequest.EdgeCategoryResults:
		return m.clearedcategory_results
	case analysisrequest.EdgeParameterResults:
		return m.clearedparameter_results
	case analysisrequest.EdgeStageEvents:
		return m.clearedstage_events
	case analysisrequest.EdgeFinalOutput:
		return m.clearedfinal_output
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisRequestMutation) ClearEdge(name string) error {
	switch name {
	case analysisrequest.EdgeTracking:
		m.ClearTracking()
		return nil
	case analysisrequest.EdgeFinalOutput:
		m.ClearFinalOutput()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisRequestMutation) ResetEdge(name string) error {
	switch name {
	case analysisrequest.EdgeTracking:
		m.ResetTracking()
		return nil
	case analysisrequest.EdgeCategoryResults:
		m.ResetCategoryResults()
		return nil
	case analysisrequest.EdgeParameterResults:
		m.ResetParameterResults()
		return nil
	case analysisrequest.EdgeStageEvents:
		m.ResetStageEvents()
		return nil
	case analysisrequest.EdgeFinalOutput:
		m.ResetFinalOutput()
		return nil
	}
	return fmt.Errorf("unknown AnalysisRequest edge %s", name)
}

// AuditEventMutation represents an operation that mutates the AuditEvent nodes in the graph.
type AuditEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	event_type     *auditevent.EventType
	entity_type    *string
	entity_id      *string
	request_id     *string
	old_values     *map[string]interface{}
	new_values     *map[string]interface{}
	actor          *string
	correlation_id *string
	timestamp      *time.Time
	ip_address     *string
	user_agent     *string
	deleted_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditEvent, error)
	predicates     []predicate.AuditEvent
}

var _ ent.Mutation = (*AuditEventMutation)(nil)

// auditeventOption allows management of the mutation configuration using functional options.
type auditeventOption func(*AuditEventMutation)

// newAuditEventMutation creates new mutation for the AuditEvent entity.
func newAuditEventMutation(c config, op Op, opts ...auditeventOption) *AuditEventMutation {
	m := &AuditEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEventID sets the ID field of the mutation.
func withAuditEventID(id string) auditeventOption {
	return func(m *AuditEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEvent
		)
		m.oldValue = func(ctx context.Context) (*AuditEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEvent sets the old AuditEvent of the mutation.
func withAuditEvent(node *AuditEvent) auditeventOption {
	return func(m *AuditEventMutation) {
		m.oldValue = func(context.Context) (*AuditEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEvent entities.
func (m *AuditEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventType sets the "event_type" field.
func (m *AuditEventMutation) SetEventType(at auditevent.EventType) {
	m.event_type = &at
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AuditEventMutation) EventType() (r auditevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldEventType(ctx context.Context) (v auditevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AuditEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEntityType sets the "entity_type" field.
func (m *AuditEventMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AuditEventMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AuditEventMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditEventMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditEventMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditEventMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetRequestID sets the "request_id" field.
func (m *AuditEventMutation) SetRequestID(s string) {
	m.request_id = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *AuditEventMutation) RequestID() (r string, exists bool) {
	v := m.request_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ClearRequestID clears the value of the "request_id" field.
func (m *AuditEventMutation) ClearRequestID() {
	m.request_id = nil
	m.clearedFields[auditevent.FieldRequestID] = struct{}{}
}

// RequestIDCleared returns if the "request_id" field was cleared in this mutation.
func (m *AuditEventMutation) RequestIDCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldRequestID]
	return ok
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *AuditEventMutation) ResetRequestID() {
	m.request_id = nil
	delete(m.clearedFields, auditevent.FieldRequestID)
}

// SetOldValues sets the "old_values" field.
func (m *AuditEventMutation) SetOldValues(value map[string]interface{}) {
	m.old_values = &value
}

// OldValues returns the value of the "old_values" field in the mutation.
func (m *AuditEventMutation) OldValues() (r map[string]interface{}, exists bool) {
	v := m.old_values
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValues returns the old "old_values" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldOldValues(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValues: %w", err)
	}
	return oldValue.OldValues, nil
}

// ClearOldValues clears the value of the "old_values" field.
func (m *AuditEventMutation) ClearOldValues() {
	m.old_values = nil
	m.clearedFields[auditevent.FieldOldValues] = struct{}{}
}

// OldValuesCleared returns if the "old_values" field was cleared in this mutation.
func (m *AuditEventMutation) OldValuesCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldOldValues]
	return ok
}

// ResetOldValues resets all changes to the "old_values" field.
func (m *AuditEventMutation) ResetOldValues() {
	m.old_values = nil
	delete(m.clearedFields, auditevent.FieldOldValues)
}

// SetNewValues sets the "new_values" field.
func (m *AuditEventMutation) SetNewValues(value map[string]interface{}) {
	m.new_values = &value
}

// NewValues returns the value of the "new_values" field in the mutation.
func (m *AuditEventMutation) NewValues() (r map[string]interface{}, exists bool) {
	v := m.new_values
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValues returns the old "new_values" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldNewValues(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValues: %w", err)
	}
	return oldValue.NewValues, nil
}

// ClearNewValues clears the value of the "new_values" field.
func (m *AuditEventMutation) ClearNewValues() {
	m.new_values = nil
	m.clearedFields[auditevent.FieldNewValues] = struct{}{}
}

// NewValuesCleared returns if the "new_values" field was cleared in this mutation.
func (m *AuditEventMutation) NewValuesCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldNewValues]
	return ok
}

// ResetNewValues resets all changes to the "new_values" field.
func (m *AuditEventMutation) ResetNewValues() {
	m.new_values = nil
	delete(m.clearedFields, auditevent.FieldNewValues)
}

// SetActor sets the "actor" field.
func (m *AuditEventMutation) SetActor(s string) {
	m.actor = &s
}

// Actor returns the value of the "actor" field in the mutation.
func (m *AuditEventMutation) Actor() (r string, exists bool) {
	v := m.actor
	if v == nil {
		return
	}
	return *v, true
}

// OldActor returns the old "actor" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldActor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActor: %w", err)
	}
	return oldValue.Actor, nil
}

// ResetActor resets all changes to the "actor" field.
func (m *AuditEventMutation) ResetActor() {
	m.actor = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *AuditEventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *AuditEventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *AuditEventMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[auditevent.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *AuditEventMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *AuditEventMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, auditevent.FieldCorrelationID)
}

// SetTimestamp sets the "timestamp" field.
func (m *AuditEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AuditEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AuditEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetIPAddress sets the "ip_address" field.
func (m *AuditEventMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *AuditEventMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldIPAddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *AuditEventMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[auditevent.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *AuditEventMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *AuditEventMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, auditevent.FieldIPAddress)
}

// SetUserAgent sets the "user_agent" field.
func (m *AuditEventMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *AuditEventMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldUserAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *AuditEventMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[auditevent.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *AuditEventMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *AuditEventMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, auditevent.FieldUserAgent)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AuditEventMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AuditEventMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AuditEventMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[auditevent.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AuditEventMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[auditevent.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AuditEventMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, auditevent.FieldDeletedAt)
}

// Where appends a list predicates to the AuditEventMutation builder.
func (m *AuditEventMutation) Where(ps ...predicate.AuditEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEvent).
func (m *AuditEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.event_type != nil {
		fields = append(fields, auditevent.FieldEventType)
	}
	if m.entity_type != nil {
		fields = append(fields, auditevent.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, auditevent.FieldEntityID)
	}
	if m.request_id != nil {
		fields = append(fields, auditevent.FieldRequestID)
	}
	if m.old_values != nil {
		fields = append(fields, auditevent.FieldOldValues)
	}
	if m.new_values != nil {
		fields = append(fields, auditevent.FieldNewValues)
	}
	if m.actor != nil {
		fields = append(fields, auditevent.FieldActor)
	}
	if m.correlation_id != nil {
		fields = append(fields, auditevent.FieldCorrelationID)
	}
	if m.timestamp != nil {
		fields = append(fields, auditevent.FieldTimestamp)
	}
	if m.ip_address != nil {
		fields = append(fields, auditevent.FieldIPAddress)
	}
	if m.user_agent != nil {
		fields = append(fields, auditevent.FieldUserAgent)
	}
	if m.deleted_at != nil {
		fields = append(fields, auditevent.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditevent.FieldEventType:
		return m.EventType()
	case auditevent.FieldEntityType:
		return m.EntityType()
	case auditevent.FieldEntityID:
		return m.EntityID()
	case auditevent.FieldRequestID:
		return m.RequestID()
	case auditevent.FieldOldValues:
		return m.OldValues()
	case auditevent.FieldNewValues:
		return m.NewValues()
	case auditevent.FieldActor:
		return m.Actor()
	case auditevent.FieldCorrelationID:
		return m.CorrelationID()
	case auditevent.FieldTimestamp:
		return m.Timestamp()
	case auditevent.FieldIPAddress:
		return m.IPAddress()
	case auditevent.FieldUserAgent:
		return m.UserAgent()
	case auditevent.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditevent.FieldEventType:
		return m.OldEventType(ctx)
	case auditevent.FieldEntityType:
		return m.OldEntityType(ctx)
	case auditevent.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditevent.FieldRequestID:
		return m.OldRequestID(ctx)
	case auditevent.FieldOldValues:
		return m.OldOldValues(ctx)
	case auditevent.FieldNewValues:
		return m.OldNewValues(ctx)
	case auditevent.FieldActor:
		return m.OldActor(ctx)
	case auditevent.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case auditevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case auditevent.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case auditevent.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case auditevent.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditevent.FieldEventType:
		v, ok := value.(auditevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case auditevent.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case auditevent.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditevent.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case auditevent.FieldOldValues:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValues(v)
		return nil
	case auditevent.FieldNewValues:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValues(v)
		return nil
	case auditevent.FieldActor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActor(v)
		return nil
	case auditevent.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case auditevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case auditevent.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case auditevent.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case auditevent.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditevent.FieldRequestID) {
		fields = append(fields, auditevent.FieldRequestID)
	}
	if m.FieldCleared(auditevent.FieldOldValues) {
		fields = append(fields, auditevent.FieldOldValues)
	}
	if m.FieldCleared(auditevent.FieldNewValues) {
		fields = append(fields, auditevent.FieldNewValues)
	}
	if m.FieldCleared(auditevent.FieldCorrelationID) {
		fields = append(fields, auditevent.FieldCorrelationID)
	}
	if m.FieldCleared(auditevent.FieldIPAddress) {
		fields = append(fields, auditevent.FieldIPAddress)
	}
	if m.FieldCleared(auditevent.FieldUserAgent) {
		fields = append(fields, auditevent.FieldUserAgent)
	}
	if m.FieldCleared(auditevent.FieldDeletedAt) {
		fields = append(fields, auditevent.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEventMutation) ClearField(name string) error {
	switch name {
	case auditevent.FieldRequestID:
		m.ClearRequestID()
		return nil
	case auditevent.FieldOldValues:
		m.ClearOldValues()
		return nil
	case auditevent.FieldNewValues:
		m.ClearNewValues()
		return nil
	case auditevent.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	case auditevent.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case auditevent.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case auditevent.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEventMutation) ResetField(name string) error {
	switch name {
	case auditevent.FieldEventType:
		m.ResetEventType()
		return nil
	case auditevent.FieldEntityType:
		m.ResetEntityType()
		return nil
	case auditevent.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditevent.FieldRequestID:
		m.ResetRequestID()
		return nil
	case auditevent.FieldOldValues:
		m.ResetOldValues()
		return nil
	case auditevent.FieldNewValues:
		m.ResetNewValues()
		return nil
	case auditevent.FieldActor:
		m.ResetActor()
		return nil
	case auditevent.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case auditevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case auditevent.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case auditevent.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case auditevent.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEvent edge %s", name)
}

// CategoryDependencyMutation represents an operation that mutates the CategoryDependency nodes in the graph.
type CategoryDependencyMutation struct {
	config
	op               Op
	typ              string
	id               *string
	clearedFields    map[string]struct{}
	dependent        *string
	cleareddependent bool
	required         *string
	clearedrequired  bool
	done             bool
	oldValue         func(context.Context) (*CategoryDependency, error)
	predicates       []predicate.CategoryDependency
}

var _ ent.Mutation = (*CategoryDependencyMutation)(nil)

// categorydependencyOption allows management of the mutation configuration using functional options.
type categorydependencyOption func(*CategoryDependencyMutation)

// newCategoryDependencyMutation creates new mutation for the CategoryDependency entity.
func newCategoryDependencyMutation(c config, op Op, opts ...categorydependencyOption) *CategoryDependencyMutation {
	m := &CategoryDependencyMutation{
		config:        c,
		op:            op,
		typ:           TypeCategoryDependency,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryDependencyID sets the ID field of the mutation.
func withCategoryDependencyID(id string) categorydependencyOption {
	return func(m *CategoryDependencyMutation) {
		var (
			err   error
			once  sync.Once
			value *CategoryDependency
		)
		m.oldValue = func(ctx context.Context) (*CategoryDependency, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CategoryDependency.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategoryDependency sets the old CategoryDependency of the mutation.
func withCategoryDependency(node *CategoryDependency) categorydependencyOption {
	return func(m *CategoryDependencyMutation) {
		m.oldValue = func(context.Context) (*CategoryDependency, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryDependencyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryDependencyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CategoryDependency entities.
func (m *CategoryDependencyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryDependencyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryDependencyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CategoryDependency.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDependentID sets the "dependent_id" field.
func (m *CategoryDependencyMutation) SetDependentID(s string) {
	m.dependent = &s
}

// DependentID returns the value of the "dependent_id" field in the mutation.
func (m *CategoryDependencyMutation) DependentID() (r string, exists bool) {
	v := m.dependent
	if v == nil {
		return
	}
	return *v, true
}

// OldDependentID returns the old "dependent_id" field's value of the CategoryDependency entity.
// If the CategoryDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDependencyMutation) OldDependentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependentID: %w", err)
	}
	return oldValue.DependentID, nil
}

// ResetDependentID resets all changes to the "dependent_id" field.
func (m *CategoryDependencyMutation) ResetDependentID() {
	m.dependent = nil
}

// SetRequiredID sets the "required_id" field.
func (m *CategoryDependencyMutation) SetRequiredID(s string) {
	m.required = &s
}

// RequiredID returns the value of the "required_id" field in the mutation.
func (m *CategoryDependencyMutation) RequiredID() (r string, exists bool) {
	v := m.required
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiredID returns the old "required_id" field's value of the CategoryDependency entity.
// If the CategoryDependency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDependencyMutation) OldRequiredID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiredID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiredID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiredID: %w", err)
	}
	return oldValue.RequiredID, nil
}

// ResetRequiredID resets all changes to the "required_id" field.
func (m *CategoryDependencyMutation) ResetRequiredID() {
	m.required = nil
}

// ClearDependent clears the "dependent" edge to the PharmaCategory entity.
func (m *CategoryDependencyMutation) ClearDependent() {
	m.cleareddependent = true
	m.clearedFields[categorydependency.FieldDependentID] = struct{}{}
}

// DependentCleared reports if the "dependent" edge to the PharmaCategory entity was cleared.
func (m *CategoryDependencyMutation) DependentCleared() bool {
	return m.cleareddependent
}

// DependentIDs returns the "dependent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DependentID instead. It exists only for internal usage by the builders.
func (m *CategoryDependencyMutation) DependentIDs() (ids []string) {
	if id := m.dependent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDependent resets all changes to the "dependent" edge.
func (m *CategoryDependencyMutation) ResetDependent() {
	m.dependent = nil
	m.cleareddependent = false
}

// ClearRequired clears the "required" edge to the PharmaCategory entity.
func (m *CategoryDependencyMutation) ClearRequired() {
	m.clearedrequired = true
	m.clearedFields[categorydependency.FieldRequiredID] = struct{}{}
}

// RequiredCleared reports if the "required" edge to the PharmaCategory entity was cleared.
func (m *CategoryDependencyMutation) RequiredCleared() bool {
	return m.clearedrequired
}

// RequiredIDs returns the "required" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequiredID instead. It exists only for internal usage by the builders.
func (m *CategoryDependencyMutation) RequiredIDs() (ids []string) {
	if id := m.required; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequired resets all changes to the "required" edge.
func (m *CategoryDependencyMutation) ResetRequired() {
	m.required = nil
	m.clearedrequired = false
}

// Where appends a list predicates to the CategoryDependencyMutation builder.
func (m *CategoryDependencyMutation) Where(ps ...predicate.CategoryDependency) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryDependencyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryDependencyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CategoryDependency, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryDependencyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryDependencyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CategoryDependency).
func (m *CategoryDependencyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryDependencyMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.dependent != nil {
		fields = append(fields, categorydependency.FieldDependentID)
	}
	if m.required != nil {
		fields = append(fields, categorydependency.FieldRequiredID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryDependencyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case categorydependency.FieldDependentID:
		return m.DependentID()
	case categorydependency.FieldRequiredID:
		return m.RequiredID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryDependencyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case categorydependency.FieldDependentID:
		return m.OldDependentID(ctx)
	case categorydependency.FieldRequiredID:
		return m.OldRequiredID(ctx)
	}
	return nil, fmt.Errorf("unknown CategoryDependency field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryDependencyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case categorydependency.FieldDependentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependentID(v)
		return nil
	case categorydependency.FieldRequiredID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiredID(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryDependency field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryDependencyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryDependencyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryDependencyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CategoryDependency numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryDependencyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryDependencyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryDependencyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CategoryDependency nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryDependencyMutation) ResetField(name string) error {
	switch name {
	case categorydependency.FieldDependentID:
		m.ResetDependentID()
		return nil
	case categorydependency.FieldRequiredID:
		m.ResetRequiredID()
		return nil
	}
	return fmt.Errorf("unknown CategoryDependency field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryDependencyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.dependent != nil {
		edges = append(edges, categorydependency.EdgeDependent)
	}
	if m.required != nil {
		edges = append(edges, categorydependency.EdgeRequired)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryDependencyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case categorydependency.EdgeDependent:
		if id := m.dependent; id != nil {
			return []ent.Value{*id}
		}
	case categorydependency.EdgeRequired:
		if id := m.required; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryDependencyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryDependencyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryDependencyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddependent {
		edges = append(edges, categorydependency.EdgeDependent)
	}
	if m.clearedrequired {
		edges = append(edges, categorydependency.EdgeRequired)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryDependencyMutation) EdgeCleared(name string) bool {
	switch name {
	case categorydependency.EdgeDependent:
		return m.cleareddependent
	case categorydependency.EdgeRequired:
		return m.clearedrequired
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryDependencyMutation) ClearEdge(name string) error {
	switch name {
	case categorydependency.EdgeDependent:
		m.ClearDependent()
		return nil
	case categorydependency.EdgeRequired:
		m.ClearRequired()
		return nil
	}
	return fmt.Errorf("unknown CategoryDependency unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryDependencyMutation) ResetEdge(name string) error {
	switch name {
	case categorydependency.EdgeDependent:
		m.ResetDependent()
		return nil
	case categorydependency.EdgeRequired:
		m.ResetRequired()
		return nil
	}
	return fmt.Errorf("unknown CategoryDependency edge %s", name)
}

// CategoryResultMutation represents an operation that mutates the CategoryResult nodes in the graph.
type CategoryResultMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	category_id               *string
	category_name             *string
	summary                   *string
	confidence_score          *float64
	addconfidence_score       *float64
	data_quality_score        *float64
	adddata_quality_score     *float64
	status                    *categoryresult.Status
	skip_reason               *string
	processing_time_ms        *int
	addprocessing_time_ms     *int
	retry_count               *int
	addretry_count            *int
	error_message             *string
	started_at                *time.Time
	completed_at              *time.Time
	api_calls_made            *int
	addapi_calls_made         *int
	token_count               *int
	addtoken_count            *int
	cost_estimate             *float64
	addcost_estimate          *float64
	deleted_at                *time.Time
	clearedFields             map[string]struct{}
	request                   *string
	clearedrequest            bool
	provider_responses        map[string]struct{}
	removedprovider_responses map[string]struct{}
	clearedprovider_responses bool
	merged_data               *string
	clearedmerged_data        bool
	conflicts                 map[string]struct{}
	removedconflicts          map[string]struct{}
	clearedconflicts          bool
	done                      bool
	oldValue                  func(context.Context) (*CategoryResult, error)
	predicates                []predicate.CategoryResult
}

var _ ent.Mutation = (*CategoryResultMutation)(nil)

// categoryresultOption allows management of the mutation configuration using functional options.
type categoryresultOption func(*CategoryResultMutation)

// newCategoryResultMutation creates new mutation for the CategoryResult entity.
func newCategoryResultMutation(c config, op Op, opts ...categoryresultOption) *CategoryResultMutation {
	m := &CategoryResultMutation{
		config:        c,
		op:            op,
		typ:           TypeCategoryResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryResultID sets the ID field of the mutation.
func withCategoryResultID(id string) categoryresultOption {
	return func(m *CategoryResultMutation) {
		var (
			err   error
			once  sync.Once
			value *CategoryResult
		)
		m.oldValue = func(ctx context.Context) (*CategoryResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CategoryResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategoryResult sets the old CategoryResult of the mutation.
func withCategoryResult(node *CategoryResult) categoryresultOption {
	return func(m *CategoryResultMutation) {
		m.oldValue = func(context.Context) (*CategoryResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CategoryResult entities.
func (m *CategoryResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CategoryResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *CategoryResultMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *CategoryResultMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *CategoryResultMutation) ResetRequestID() {
	m.request = nil
}

// SetCategoryID sets the "category_id" field.
func (m *CategoryResultMutation) SetCategoryID(s string) {
	m.category_id = &s
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *CategoryResultMutation) CategoryID() (r string, exists bool) {
	v := m.category_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldCategoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *CategoryResultMutation) ResetCategoryID() {
	m.category_id = nil
}

// SetCategoryName sets the "category_name" field.
func (m *CategoryResultMutation) SetCategoryName(s string) {
	m.category_name = &s
}

// CategoryName returns the value of the "category_name" field in the mutation.
func (m *CategoryResultMutation) CategoryName() (r string, exists bool) {
	v := m.category_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryName returns the old "category_name" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldCategoryName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryName: %w", err)
	}
	return oldValue.CategoryName, nil
}

// ResetCategoryName resets all changes to the "category_name" field.
func (m *CategoryResultMutation) ResetCategoryName() {
	m.category_name = nil
}

// SetSummary sets the "summary" field.
func (m *CategoryResultMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *CategoryResultMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *CategoryResultMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[categoryresult.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *CategoryResultMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[categoryresult.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *CategoryResultMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, categoryresult.FieldSummary)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *CategoryResultMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *CategoryResultMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *CategoryResultMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *CategoryResultMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *CategoryResultMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetDataQualityScore sets the "data_quality_score" field.
func (m *CategoryResultMutation) SetDataQualityScore(f float64) {
	m.data_quality_score = &f
	m.adddata_quality_score = nil
}

// DataQualityScore returns the value of the "data_quality_score" field in the mutation.
func (m *CategoryResultMutation) DataQualityScore() (r float64, exists bool) {
	v := m.data_quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDataQualityScore returns the old "data_quality_score" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldDataQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataQualityScore: %w", err)
	}
	return oldValue.DataQualityScore, nil
}

// AddDataQualityScore adds f to the "data_quality_score" field.
func (m *CategoryResultMutation) AddDataQualityScore(f float64) {
	if m.adddata_quality_score != nil {
		*m.adddata_quality_score += f
	} else {
		m.adddata_quality_score = &f
	}
}

// AddedDataQualityScore returns the value that was added to the "data_quality_score" field in this mutation.
func (m *CategoryResultMutation) AddedDataQualityScore() (r float64, exists bool) {
	v := m.adddata_quality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetDataQualityScore resets all changes to the "data_quality_score" field.
func (m *CategoryResultMutation) ResetDataQualityScore() {
	m.data_quality_score = nil
	m.adddata_quality_score = nil
}

// SetStatus sets the "status" field.
func (m *CategoryResultMutation) SetStatus(c categoryresult.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CategoryResultMutation) Status() (r categoryresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldStatus(ctx context.Context) (v categoryresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CategoryResultMutation) ResetStatus() {
	m.status = nil
}

// SetSkipReason sets the "skip_reason" field.
func (m *CategoryResultMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *CategoryResultMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldSkipReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *CategoryResultMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[categoryresult.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *CategoryResultMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[categoryresult.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *CategoryResultMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, categoryresult.FieldSkipReason)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *CategoryResultMutation) SetProcessingTimeMs(i int) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *CategoryResultMutation) ProcessingTimeMs() (r int, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldProcessingTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *CategoryResultMutation) AddProcessingTimeMs(i int) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *CategoryResultMutation) AddedProcessingTimeMs() (r int, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (m *CategoryResultMutation) ClearProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	m.clearedFields[categoryresult.FieldProcessingTimeMs] = struct{}{}
}

// ProcessingTimeMsCleared returns if the "processing_time_ms" field was cleared in this mutation.
func (m *CategoryResultMutation) ProcessingTimeMsCleared() bool {
	_, ok := m.clearedFields[categoryresult.FieldProcessingTimeMs]
	return ok
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *CategoryResultMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	delete(m.clearedFields, categoryresult.FieldProcessingTimeMs)
}

// SetRetryCount sets the "retry_count" field.
func (m *CategoryResultMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *CategoryResultMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *CategoryResultMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *CategoryResultMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *CategoryResultMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *CategoryResultMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CategoryResultMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CategoryResultMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[categoryresult.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CategoryResultMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[categoryresult.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CategoryResultMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, categoryresult.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *CategoryResultMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *CategoryResultMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *CategoryResultMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[categoryresult.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *CategoryResultMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[categoryresult.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *CategoryResultMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, categoryresult.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *CategoryResultMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CategoryResultMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CategoryResultMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[categoryresult.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CategoryResultMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[categoryresult.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CategoryResultMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, categoryresult.FieldCompletedAt)
}

// SetAPICallsMade sets the "api_calls_made" field.
func (m *CategoryResultMutation) SetAPICallsMade(i int) {
	m.api_calls_made = &i
	m.addapi_calls_made = nil
}

// APICallsMade returns the value of the "api_calls_made" field in the mutation.
func (m *CategoryResultMutation) APICallsMade() (r int, exists bool) {
	v := m.api_calls_made
	if v == nil {
		return
	}
	return *v, true
}

// OldAPICallsMade returns the old "api_calls_made" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldAPICallsMade(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPICallsMade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPICallsMade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPICallsMade: %w", err)
	}
	return oldValue.APICallsMade, nil
}

// AddAPICallsMade adds i to the "api_calls_made" field.
func (m *CategoryResultMutation) AddAPICallsMade(i int) {
	if m.addapi_calls_made != nil {
		*m.addapi_calls_made += i
	} else {
		m.addapi_calls_made = &i
	}
}

// AddedAPICallsMade returns the value that was added to the "api_calls_made" field in this mutation.
func (m *CategoryResultMutation) AddedAPICallsMade() (r int, exists bool) {
	v := m.addapi_calls_made
	if v == nil {
		return
	}
	return *v, true
}

// ResetAPICallsMade resets all changes to the "api_calls_made" field.
func (m *CategoryResultMutation) ResetAPICallsMade() {
	m.api_calls_made = nil
	m.addapi_calls_made = nil
}

// SetTokenCount sets the "token_count" field.
func (m *CategoryResultMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *CategoryResultMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *CategoryResultMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *CategoryResultMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *CategoryResultMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *CategoryResultMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *CategoryResultMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *CategoryResultMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *CategoryResultMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *CategoryResultMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *CategoryResultMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *CategoryResultMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the CategoryResult entity.
// If the CategoryResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryResultMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *CategoryResultMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[categoryresult.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *CategoryResultMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[categoryresult.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *CategoryResultMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, categoryresult.FieldDeletedAt)
}

// ClearRequest clears the "request" edge to the AnalysisRequest entity.
func (m *CategoryResultMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[categoryresult.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the AnalysisRequest entity was cleared.
func (m *CategoryResultMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *CategoryResultMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *CategoryResultMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// AddProviderResponseIDs adds the "provider_responses" edge to the ProviderResponse entity by ids.
func (m *CategoryResultMutation) AddProviderResponseIDs(ids ...string) {
	if m.provider_responses == nil {
		m.provider_responses = make(map[string]struct{})
	}
	for i := range ids {
		m.provider_responses[ids[i]] = struct{}{}
	}
}

// ClearProviderResponses clears the "provider_responses" edge to the ProviderResponse entity.
func (m *CategoryResultMutation) ClearProviderResponses() {
	m.clearedprovider_responses = true
}

// ProviderResponsesCleared reports if the "provider_responses" edge to the ProviderResponse entity was cleared.
func (m *CategoryResultMutation) ProviderResponsesCleared() bool {
	return m.clearedprovider_responses
}

// RemoveProviderResponseIDs removes the "provider_responses" edge to the ProviderResponse entity by IDs.
func (m *CategoryResultMutation) RemoveProviderResponseIDs(ids ...string) {
	if m.removedprovider_responses == nil {
		m.removedprovider_responses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.provider_responses, ids[i])
		m.removedprovider_responses[ids[i]] = struct{}{}
	}
}

// RemovedProviderResponses returns the removed IDs of the "provider_responses" edge to the ProviderResponse entity.
func (m *CategoryResultMutation) RemovedProviderResponsesIDs() (ids []string) {
	for id := range m.removedprovider_responses {
		ids = append(ids, id)
	}
	return
}

// ProviderResponsesIDs returns the "provider_responses" edge IDs in the mutation.
func (m *CategoryResultMutation) ProviderResponsesIDs() (ids []string) {
	for id := range m.provider_responses {
		ids = append(ids, id)
	}
	return
}

// ResetProviderResponses resets all changes to the "provider_responses" edge.
func (m *CategoryResultMutation) ResetProviderResponses() {
	m.provider_responses = nil
	m.clearedprovider_responses = false
	m.removedprovider_responses = nil
}

// SetMergedDataID sets the "merged_data" edge to the MergedData entity by id.
func (m *CategoryResultMutation) SetMergedDataID(id string) {
	m.merged_data = &id
}

// ClearMergedData clears the "merged_data" edge to the MergedData entity.
func (m *CategoryResultMutation) ClearMergedData() {
	m.clearedmerged_data = true
}

// MergedDataCleared reports if the "merged_data" edge to the MergedData entity was cleared.
func (m *CategoryResultMutation) MergedDataCleared() bool {
	return m.clearedmerged_data
}

// MergedDataID returns the "merged_data" edge ID in the mutation.
func (m *CategoryResultMutation) MergedDataID() (id string, exists bool) {
	if m.merged_data != nil {
		return *m.merged_data, true
	}
	return
}

// MergedDataIDs returns the "merged_data" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MergedDataID instead. It exists only for internal usage by the builders.
func (m *CategoryResultMutation) MergedDataIDs() (ids []string) {
	if id := m.merged_data; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMergedData resets all changes to the "merged_data" edge.
func (m *CategoryResultMutation) ResetMergedData() {
	m.merged_data = nil
	m.clearedmerged_data = false
}

// AddConflictIDs adds the "conflicts" edge to the SourceConflict entity by ids.
func (m *CategoryResultMutation) AddConflictIDs(ids ...string) {
	if m.conflicts == nil {
		m.conflicts = make(map[string]struct{})
	}
	for i := range ids {
		m.conflicts[ids[i]] = struct{}{}
	}
}

// ClearConflicts clears the "conflicts" edge to the SourceConflict entity.
func (m *CategoryResultMutation) ClearConflicts() {
	m.clearedconflicts = true
}

// ConflictsCleared reports if the "conflicts" edge to the SourceConflict entity was cleared.
func (m *CategoryResultMutation) ConflictsCleared() bool {
	return m.clearedconflicts
}

// RemoveConflictIDs removes the "conflicts" edge to the SourceConflict entity by IDs.
func (m *CategoryResultMutation) RemoveConflictIDs(ids ...string) {
	if m.removedconflicts == nil {
		m.removedconflicts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conflicts, ids[i])
		m.removedconflicts[ids[i]] = struct{}{}
	}
}

// RemovedConflicts returns the removed IDs of the "conflicts" edge to the SourceConflict entity.
func (m *CategoryResultMutation) RemovedConflictsIDs() (ids []string) {
	for id := range m.removedconflicts {
		ids = append(ids, id)
	}
	return
}

// ConflictsIDs returns the "conflicts" edge IDs in the mutation.
func (m *CategoryResultMutation) ConflictsIDs() (ids []string) {
	for id := range m.conflicts {
		ids = append(ids, id)
	}
	return
}

// ResetConflicts resets all changes to the "conflicts" edge.
func (m *CategoryResultMutation) ResetConflicts() {
	m.conflicts = nil
	m.clearedconflicts = false
	m.removedconflicts = nil
}

// Where appends a list predicates to the CategoryResultMutation builder.
func (m *CategoryResultMutation) Where(ps ...predicate.CategoryResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CategoryResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CategoryResult).
func (m *CategoryResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryResultMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.request != nil {
		fields = append(fields, categoryresult.FieldRequestID)
	}
	if m.category_id != nil {
		fields = append(fields, categoryresult.FieldCategoryID)
	}
	if m.category_name != nil {
		fields = append(fields, categoryresult.FieldCategoryName)
	}
	if m.summary != nil {
		fields = append(fields, categoryresult.FieldSummary)
	}
	if m.confidence_score != nil {
		fields = append(fields, categoryresult.FieldConfidenceScore)
	}
	if m.data_quality_score != nil {
		fields = append(fields, categoryresult.FieldDataQualityScore)
	}
	if m.status != nil {
		fields = append(fields, categoryresult.FieldStatus)
	}
	if m.skip_reason != nil {
		fields = append(fields, categoryresult.FieldSkipReason)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, categoryresult.FieldProcessingTimeMs)
	}
	if m.retry_count != nil {
		fields = append(fields, categoryresult.FieldRetryCount)
	}
	if m.error_message != nil {
		fields = append(fields, categoryresult.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, categoryresult.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, categoryresult.FieldCompletedAt)
	}
	if m.api_calls_made != nil {
		fields = append(fields, categoryresult.FieldAPICallsMade)
	}
	if m.token_count != nil {
		fields = append(fields, categoryresult.FieldTokenCount)
	}
	if m.cost_estimate != nil {
		fields = append(fields, categoryresult.FieldCostEstimate)
	}
	if m.deleted_at != nil {
		fields = append(fields, categoryresult.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case categoryresult.FieldRequestID:
		return m.RequestID()
	case categoryresult.FieldCategoryID:
		return m.CategoryID()
	case categoryresult.FieldCategoryName:
		return m.CategoryName()
	case categoryresult.FieldSummary:
		return m.Summary()
	case categoryresult.FieldConfidenceScore:
		return m.ConfidenceScore()
	case categoryresult.FieldDataQualityScore:
		return m.DataQualityScore()
	case categoryresult.FieldStatus:
		return m.Status()
	case categoryresult.FieldSkipReason:
		return m.SkipReason()
	case categoryresult.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case categoryresult.FieldRetryCount:
		return m.RetryCount()
	case categoryresult.FieldErrorMessage:
		return m.ErrorMessage()
	case categoryresult.FieldStartedAt:
		return m.StartedAt()
	case categoryresult.FieldCompletedAt:
		return m.CompletedAt()
	case categoryresult.FieldAPICallsMade:
		return m.APICallsMade()
	case categoryresult.FieldTokenCount:
		return m.TokenCount()
	case categoryresult.FieldCostEstimate:
		return m.CostEstimate()
	case categoryresult.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case categoryresult.FieldRequestID:
		return m.OldRequestID(ctx)
	case categoryresult.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case categoryresult.FieldCategoryName:
		return m.OldCategoryName(ctx)
	case categoryresult.FieldSummary:
		return m.OldSummary(ctx)
	case categoryresult.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case categoryresult.FieldDataQualityScore:
		return m.OldDataQualityScore(ctx)
	case categoryresult.FieldStatus:
		return m.OldStatus(ctx)
	case categoryresult.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case categoryresult.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case categoryresult.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case categoryresult.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case categoryresult.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case categoryresult.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case categoryresult.FieldAPICallsMade:
		return m.OldAPICallsMade(ctx)
	case categoryresult.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case categoryresult.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case categoryresult.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CategoryResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case categoryresult.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case categoryresult.FieldCategoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case categoryresult.FieldCategoryName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryName(v)
		return nil
	case categoryresult.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case categoryresult.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case categoryresult.FieldDataQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataQualityScore(v)
		return nil
	case categoryresult.FieldStatus:
		v, ok := value.(categoryresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case categoryresult.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case categoryresult.FieldProcessingTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case categoryresult.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case categoryresult.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case categoryresult.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case categoryresult.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case categoryresult.FieldAPICallsMade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPICallsMade(v)
		return nil
	case categoryresult.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case categoryresult.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case categoryresult.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryResultMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, categoryresult.FieldConfidenceScore)
	}
	if m.adddata_quality_score != nil {
		fields = append(fields, categoryresult.FieldDataQualityScore)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, categoryresult.FieldProcessingTimeMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, categoryresult.FieldRetryCount)
	}
	if m.addapi_calls_made != nil {
		fields = append(fields, categoryresult.FieldAPICallsMade)
	}
	if m.addtoken_count != nil {
		fields = append(fields, categoryresult.FieldTokenCount)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, categoryresult.FieldCostEstimate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case categoryresult.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	case categoryresult.FieldDataQualityScore:
		return m.AddedDataQualityScore()
	case categoryresult.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	case categoryresult.FieldRetryCount:
		return m.AddedRetryCount()
	case categoryresult.FieldAPICallsMade:
		return m.AddedAPICallsMade()
	case categoryresult.FieldTokenCount:
		return m.AddedTokenCount()
	case categoryresult.FieldCostEstimate:
		return m.AddedCostEstimate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case categoryresult.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	case categoryresult.FieldDataQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDataQualityScore(v)
		return nil
	case categoryresult.FieldProcessingTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	case categoryresult.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case categoryresult.FieldAPICallsMade:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAPICallsMade(v)
		return nil
	case categoryresult.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	case categoryresult.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(categoryresult.FieldSummary) {
		fields = append(fields, categoryresult.FieldSummary)
	}
	if m.FieldCleared(categoryresult.FieldSkipReason) {
		fields = append(fields, categoryresult.FieldSkipReason)
	}
	if m.FieldCleared(categoryresult.FieldProcessingTimeMs) {
		fields = append(fields, categoryresult.FieldProcessingTimeMs)
	}
	if m.FieldCleared(categoryresult.FieldErrorMessage) {
		fields = append(fields, categoryresult.FieldErrorMessage)
	}
	if m.FieldCleared(categoryresult.FieldStartedAt) {
		fields = append(fields, categoryresult.FieldStartedAt)
	}
	if m.FieldCleared(categoryresult.FieldCompletedAt) {
		fields = append(fields, categoryresult.FieldCompletedAt)
	}
	if m.FieldCleared(categoryresult.FieldDeletedAt) {
		fields = append(fields, categoryresult.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryResultMutation) ClearField(name string) error {
	switch name {
	case categoryresult.FieldSummary:
		m.ClearSummary()
		return nil
	case categoryresult.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case categoryresult.FieldProcessingTimeMs:
		m.ClearProcessingTimeMs()
		return nil
	case categoryresult.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case categoryresult.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case categoryresult.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case categoryresult.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown CategoryResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryResultMutation) ResetField(name string) error {
	switch name {
	case categoryresult.FieldRequestID:
		m.ResetRequestID()
		return nil
	case categoryresult.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case categoryresult.FieldCategoryName:
		m.ResetCategoryName()
		return nil
	case categoryresult.FieldSummary:
		m.ResetSummary()
		return nil
	case categoryresult.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case categoryresult.FieldDataQualityScore:
		m.ResetDataQualityScore()
		return nil
	case categoryresult.FieldStatus:
		m.ResetStatus()
		return nil
	case categoryresult.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case categoryresult.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case categoryresult.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case categoryresult.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case categoryresult.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case categoryresult.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case categoryresult.FieldAPICallsMade:
		m.ResetAPICallsMade()
		return nil
	case categoryresult.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case categoryresult.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case categoryresult.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown CategoryResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.request != nil {
		edges = append(edges, categoryresult.EdgeRequest)
	}
	if m.provider_responses != nil {
		edges = append(edges, categoryresult.EdgeProviderResponses)
	}
	if m.merged_data != nil {
		edges = append(edges, categoryresult.EdgeMergedData)
	}
	if m.conflicts != nil {
		edges = append(edges, categoryresult.EdgeConflicts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case categoryresult.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	case categoryresult.EdgeProviderResponses:
		ids := make([]ent.Value, 0, len(m.provider_responses))
		for id := range m.provider_responses {
			ids = append(ids, id)
		}
		return ids
	case categoryresult.EdgeMergedData:
		if id := m.merged_data; id != nil {
			return []ent.Value{*id}
		}
	case categoryresult.EdgeConflicts:
		ids := make([]ent.Value, 0, len(m.conflicts))
		for id := range m.conflicts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedprovider_responses != nil {
		edges = append(edges, categoryresult.EdgeProviderResponses)
	}
	if m.removedconflicts != nil {
		edges = append(edges, categoryresult.EdgeConflicts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryResultMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case categoryresult.EdgeProviderResponses:
		ids := make([]ent.Value, 0, len(m.removedprovider_responses))
		for id := range m.removedprovider_responses {
			ids = append(ids, id)
		}
		return ids
	case categoryresult.EdgeConflicts:
		ids := make([]ent.Value, 0, len(m.removedconflicts))
		for id := range m.removedconflicts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedrequest {
		edges = append(edges, categoryresult.EdgeRequest)
	}
	if m.clearedprovider_responses {
		edges = append(edges, categoryresult.EdgeProviderResponses)
	}
	if m.clearedmerged_data {
		edges = append(edges, categoryresult.EdgeMergedData)
	}
	if m.clearedconflicts {
		edges = append(edges, categoryresult.EdgeConflicts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryResultMutation) EdgeCleared(name string) bool {
	switch name {
	case categoryresult.EdgeRequest:
		return m.clearedrequest
	case categoryresult.EdgeProviderResponses:
		return m.clearedprovider_responses
	case categoryresult.EdgeMergedData:
		return m.clearedmerged_data
	case categoryresult.EdgeConflicts:
		return m.clearedconflicts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryResultMutation) ClearEdge(name string) error {
	switch name {
	case categoryresult.EdgeRequest:
		m.ClearRequest()
		return nil
	case categoryresult.EdgeMergedData:
		m.ClearMergedData()
		return nil
	}
	return fmt.Errorf("unknown CategoryResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryResultMutation) ResetEdge(name string) error {
	switch name {
	case categoryresult.EdgeRequest:
		m.ResetRequest()
		return nil
	case categoryresult.EdgeProviderResponses:
		m.ResetProviderResponses()
		return nil
	case categoryresult.EdgeMergedData:
		m.ResetMergedData()
		return nil
	case categoryresult.EdgeConflicts:
		m.ResetConflicts()
		return nil
	}
	return fmt.Errorf("unknown CategoryResult edge %s", name)
}

// FinalOutputMutation represents an operation that mutates the FinalOutput nodes in the graph.
type FinalOutputMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	document            *map[string]interface{}
	td_score            *float64
	addtd_score         *float64
	tm_score            *float64
	addtm_score         *float64
	td_verdict          *string
	tm_verdict          *string
	go_decision         *string
	investment_priority *string
	risk_level          *string
	version             *int
	addversion          *int
	generated_at        *time.Time
	clearedFields       map[string]struct{}
	request             *string
	clearedrequest      bool
	done                bool
	oldValue            func(context.Context) (*FinalOutput, error)
	predicates          []predicate.FinalOutput
}

var _ ent.Mutation = (*FinalOutputMutation)(nil)

// finaloutputOption allows management of the mutation configuration using functional options.
type finaloutputOption func(*FinalOutputMutation)

// newFinalOutputMutation creates new mutation for the FinalOutput entity.
func newFinalOutputMutation(c config, op Op, opts ...finaloutputOption) *FinalOutputMutation {
	m := &FinalOutputMutation{
		config:        c,
		op:            op,
		typ:           TypeFinalOutput,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFinalOutputID sets the ID field of the mutation.
func withFinalOutputID(id string) finaloutputOption {
	return func(m *FinalOutputMutation) {
		var (
			err   error
			once  sync.Once
			value *FinalOutput
		)
		m.oldValue = func(ctx context.Context) (*FinalOutput, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FinalOutput.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFinalOutput sets the old FinalOutput of the mutation.
func withFinalOutput(node *FinalOutput) finaloutputOption {
	return func(m *FinalOutputMutation) {
		m.oldValue = func(context.Context) (*FinalOutput, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FinalOutputMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FinalOutputMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FinalOutput entities.
func (m *FinalOutputMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FinalOutputMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FinalOutputMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FinalOutput.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *FinalOutputMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *FinalOutputMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *FinalOutputMutation) ResetRequestID() {
	m.request = nil
}

// SetDocument sets the "document" field.
func (m *FinalOutputMutation) SetDocument(value map[string]interface{}) {
	m.document = &value
}

// Document returns the value of the "document" field in the mutation.
func (m *FinalOutputMutation) Document() (r map[string]interface{}, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocument returns the old "document" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldDocument(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocument: %w", err)
	}
	return oldValue.Document, nil
}

// ResetDocument resets all changes to the "document" field.
func (m *FinalOutputMutation) ResetDocument() {
	m.document = nil
}

// SetTdScore sets the "td_score" field.
func (m *FinalOutputMutation) SetTdScore(f float64) {
	m.td_score = &f
	m.addtd_score = nil
}

// TdScore returns the value of the "td_score" field in the mutation.
func (m *FinalOutputMutation) TdScore() (r float64, exists bool) {
	v := m.td_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTdScore returns the old "td_score" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldTdScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTdScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTdScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTdScore: %w", err)
	}
	return oldValue.TdScore, nil
}

// AddTdScore adds f to the "td_score" field.
func (m *FinalOutputMutation) AddTdScore(f float64) {
	if m.addtd_score != nil {
		*m.addtd_score += f
	} else {
		m.addtd_score = &f
	}
}

// AddedTdScore returns the value that was added to the "td_score" field in this mutation.
func (m *FinalOutputMutation) AddedTdScore() (r float64, exists bool) {
	v := m.addtd_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTdScore resets all changes to the "td_score" field.
func (m *FinalOutputMutation) ResetTdScore() {
	m.td_score = nil
	m.addtd_score = nil
}

// SetTmScore sets the "tm_score" field.
func (m *FinalOutputMutation) SetTmScore(f float64) {
	m.tm_score = &f
	m.addtm_score = nil
}

// TmScore returns the value of the "tm_score" field in the mutation.
func (m *FinalOutputMutation) TmScore() (r float64, exists bool) {
	v := m.tm_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTmScore returns the old "tm_score" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldTmScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTmScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTmScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTmScore: %w", err)
	}
	return oldValue.TmScore, nil
}

// AddTmScore adds f to the "tm_score" field.
func (m *FinalOutputMutation) AddTmScore(f float64) {
	if m.addtm_score != nil {
		*m.addtm_score += f
	} else {
		m.addtm_score = &f
	}
}

// AddedTmScore returns the value that was added to the "tm_score" field in this mutation.
func (m *FinalOutputMutation) AddedTmScore() (r float64, exists bool) {
	v := m.addtm_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTmScore resets all changes to the "tm_score" field.
func (m *FinalOutputMutation) ResetTmScore() {
	m.tm_score = nil
	m.addtm_score = nil
}

// SetTdVerdict sets the "td_verdict" field.
func (m *FinalOutputMutation) SetTdVerdict(s string) {
	m.td_verdict = &s
}

// TdVerdict returns the value of the "td_verdict" field in the mutation.
func (m *FinalOutputMutation) TdVerdict() (r string, exists bool) {
	v := m.td_verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldTdVerdict returns the old "td_verdict" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldTdVerdict(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTdVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTdVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTdVerdict: %w", err)
	}
	return oldValue.TdVerdict, nil
}

// ResetTdVerdict resets all changes to the "td_verdict" field.
func (m *FinalOutputMutation) ResetTdVerdict() {
	m.td_verdict = nil
}

// SetTmVerdict sets the "tm_verdict" field.
func (m *FinalOutputMutation) SetTmVerdict(s string) {
	m.tm_verdict = &s
}

// TmVerdict returns the value of the "tm_verdict" field in the mutation.
func (m *FinalOutputMutation) TmVerdict() (r string, exists bool) {
	v := m.tm_verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldTmVerdict returns the old "tm_verdict" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldTmVerdict(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTmVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTmVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTmVerdict: %w", err)
	}
	return oldValue.TmVerdict, nil
}

// ResetTmVerdict resets all changes to the "tm_verdict" field.
func (m *FinalOutputMutation) ResetTmVerdict() {
	m.tm_verdict = nil
}

// SetGoDecision sets the "go_decision" field.
func (m *FinalOutputMutation) SetGoDecision(s string) {
	m.go_decision = &s
}

// GoDecision returns the value of the "go_decision" field in the mutation.
func (m *FinalOutputMutation) GoDecision() (r string, exists bool) {
	v := m.go_decision
	if v == nil {
		return
	}
	return *v, true
}

// OldGoDecision returns the old "go_decision" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldGoDecision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoDecision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoDecision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoDecision: %w", err)
	}
	return oldValue.GoDecision, nil
}

// ResetGoDecision resets all changes to the "go_decision" field.
func (m *FinalOutputMutation) ResetGoDecision() {
	m.go_decision = nil
}

// SetInvestmentPriority sets the "investment_priority" field.
func (m *FinalOutputMutation) SetInvestmentPriority(s string) {
	m.investment_priority = &s
}

// InvestmentPriority returns the value of the "investment_priority" field in the mutation.
func (m *FinalOutputMutation) InvestmentPriority() (r string, exists bool) {
	v := m.investment_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestmentPriority returns the old "investment_priority" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldInvestmentPriority(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestmentPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestmentPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestmentPriority: %w", err)
	}
	return oldValue.InvestmentPriority, nil
}

// ResetInvestmentPriority resets all changes to the "investment_priority" field.
func (m *FinalOutputMutation) ResetInvestmentPriority() {
	m.investment_priority = nil
}

// SetRiskLevel sets the "risk_level" field.
func (m *FinalOutputMutation) SetRiskLevel(s string) {
	m.risk_level = &s
}

// RiskLevel returns the value of the "risk_level" field in the mutation.
func (m *FinalOutputMutation) RiskLevel() (r string, exists bool) {
	v := m.risk_level
	if v == nil {
		return
	}
	return *v, true
}

// OldRiskLevel returns the old "risk_level" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldRiskLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiskLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiskLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiskLevel: %w", err)
	}
	return oldValue.RiskLevel, nil
}

// ResetRiskLevel resets all changes to the "risk_level" field.
func (m *FinalOutputMutation) ResetRiskLevel() {
	m.risk_level = nil
}

// SetVersion sets the "version" field.
func (m *FinalOutputMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *FinalOutputMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *FinalOutputMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *FinalOutputMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *FinalOutputMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *FinalOutputMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *FinalOutputMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the FinalOutput entity.
// If the FinalOutput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FinalOutputMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *FinalOutputMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// ClearRequest clears the "request" edge to the AnalysisRequest entity.
func (m *FinalOutputMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[finaloutput.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the AnalysisRequest entity was cleared.
func (m *FinalOutputMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *FinalOutputMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *FinalOutputMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the FinalOutputMutation builder.
func (m *FinalOutputMutation) Where(ps ...predicate.FinalOutput) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FinalOutputMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FinalOutputMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FinalOutput, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FinalOutputMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FinalOutputMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FinalOutput).
func (m *FinalOutputMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FinalOutputMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.request != nil {
		fields = append(fields, finaloutput.FieldRequestID)
	}
	if m.document != nil {
		fields = append(fields, finaloutput.FieldDocument)
	}
	if m.td_score != nil {
		fields = append(fields, finaloutput.FieldTdScore)
	}
	if m.tm_score != nil {
		fields = append(fields, finaloutput.FieldTmScore)
	}
	if m.td_verdict != nil {
		fields = append(fields, finaloutput.FieldTdVerdict)
	}
	if m.tm_verdict != nil {
		fields = append(fields, finaloutput.FieldTmVerdict)
	}
	if m.go_decision != nil {
		fields = append(fields, finaloutput.FieldGoDecision)
	}
	if m.investment_priority != nil {
		fields = append(fields, finaloutput.FieldInvestmentPriority)
	}
	if m.risk_level != nil {
		fields = append(fields, finaloutput.FieldRiskLevel)
	}
	if m.version != nil {
		fields = append(fields, finaloutput.FieldVersion)
	}
	if m.generated_at != nil {
		fields = append(fields, finaloutput.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FinalOutputMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case finaloutput.FieldRequestID:
		return m.RequestID()
	case finaloutput.FieldDocument:
		return m.Document()
	case finaloutput.FieldTdScore:
		return m.TdScore()
	case finaloutput.FieldTmScore:
		return m.TmScore()
	case finaloutput.FieldTdVerdict:
		return m.TdVerdict()
	case finaloutput.FieldTmVerdict:
		return m.TmVerdict()
	case finaloutput.FieldGoDecision:
		return m.GoDecision()
	case finaloutput.FieldInvestmentPriority:
		return m.InvestmentPriority()
	case finaloutput.FieldRiskLevel:
		return m.RiskLevel()
	case finaloutput.FieldVersion:
		return m.Version()
	case finaloutput.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FinalOutputMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case finaloutput.FieldRequestID:
		return m.OldRequestID(ctx)
	case finaloutput.FieldDocument:
		return m.OldDocument(ctx)
	case finaloutput.FieldTdScore:
		return m.OldTdScore(ctx)
	case finaloutput.FieldTmScore:
		return m.OldTmScore(ctx)
	case finaloutput.FieldTdVerdict:
		return m.OldTdVerdict(ctx)
	case finaloutput.FieldTmVerdict:
		return m.OldTmVerdict(ctx)
	case finaloutput.FieldGoDecision:
		return m.OldGoDecision(ctx)
	case finaloutput.FieldInvestmentPriority:
		return m.OldInvestmentPriority(ctx)
	case finaloutput.FieldRiskLevel:
		return m.OldRiskLevel(ctx)
	case finaloutput.FieldVersion:
		return m.OldVersion(ctx)
	case finaloutput.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FinalOutput field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinalOutputMutation) SetField(name string, value ent.Value) error {
	switch name {
	case finaloutput.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case finaloutput.FieldDocument:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocument(v)
		return nil
	case finaloutput.FieldTdScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTdScore(v)
		return nil
	case finaloutput.FieldTmScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTmScore(v)
		return nil
	case finaloutput.FieldTdVerdict:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTdVerdict(v)
		return nil
	case finaloutput.FieldTmVerdict:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTmVerdict(v)
		return nil
	case finaloutput.FieldGoDecision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoDecision(v)
		return nil
	case finaloutput.FieldInvestmentPriority:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestmentPriority(v)
		return nil
	case finaloutput.FieldRiskLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiskLevel(v)
		return nil
	case finaloutput.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case finaloutput.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FinalOutput field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FinalOutputMutation) AddedFields() []string {
	var fields []string
	if m.addtd_score != nil {
		fields = append(fields, finaloutput.FieldTdScore)
	}
	if m.addtm_score != nil {
		fields = append(fields, finaloutput.FieldTmScore)
	}
	if m.addversion != nil {
		fields = append(fields, finaloutput.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FinalOutputMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case finaloutput.FieldTdScore:
		return m.AddedTdScore()
	case finaloutput.FieldTmScore:
		return m.AddedTmScore()
	case finaloutput.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FinalOutputMutation) AddField(name string, value ent.Value) error {
	switch name {
	case finaloutput.FieldTdScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTdScore(v)
		return nil
	case finaloutput.FieldTmScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTmScore(v)
		return nil
	case finaloutput.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown FinalOutput numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FinalOutputMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FinalOutputMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FinalOutputMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FinalOutput nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FinalOutputMutation) ResetField(name string) error {
	switch name {
	case finaloutput.FieldRequestID:
		m.ResetRequestID()
		return nil
	case finaloutput.FieldDocument:
		m.ResetDocument()
		return nil
	case finaloutput.FieldTdScore:
		m.ResetTdScore()
		return nil
	case finaloutput.FieldTmScore:
		m.ResetTmScore()
		return nil
	case finaloutput.FieldTdVerdict:
		m.ResetTdVerdict()
		return nil
	case finaloutput.FieldTmVerdict:
		m.ResetTmVerdict()
		return nil
	case finaloutput.FieldGoDecision:
		m.ResetGoDecision()
		return nil
	case finaloutput.FieldInvestmentPriority:
		m.ResetInvestmentPriority()
		return nil
	case finaloutput.FieldRiskLevel:
		m.ResetRiskLevel()
		return nil
	case finaloutput.FieldVersion:
		m.ResetVersion()
		return nil
	case finaloutput.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown FinalOutput field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FinalOutputMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, finaloutput.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FinalOutputMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case finaloutput.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FinalOutputMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FinalOutputMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FinalOutputMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, finaloutput.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FinalOutputMutation) EdgeCleared(name string) bool {
	switch name {
	case finaloutput.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FinalOutputMutation) ClearEdge(name string) error {
	switch name {
	case finaloutput.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown FinalOutput unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FinalOutputMutation) ResetEdge(name string) error {
	switch name {
	case finaloutput.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown FinalOutput edge %s", name)
}

// MergedDataMutation represents an operation that mutates the MergedData nodes in the graph.
type MergedDataMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	merged_text             *string
	structured_data         *map[string]interface{}
	confidence              *float64
	addconfidence           *float64
	source_references       *[]map[string]interface{}
	appendsource_references []map[string]interface{}
	merge_method            *mergeddata.MergeMethod
	key_findings            *[]string
	appendkey_findings      []string
	created_at              *time.Time
	clearedFields           map[string]struct{}
	category_result         *string
	clearedcategory_result  bool
	done                    bool
	oldValue                func(context.Context) (*MergedData, error)
	predicates              []predicate.MergedData
}

var _ ent.Mutation = (*MergedDataMutation)(nil)

// mergeddataOption allows management of the mutation configuration using functional options.
type mergeddataOption func(*MergedDataMutation)

// newMergedDataMutation creates new mutation for the MergedData entity.
func newMergedDataMutation(c config, op Op, opts ...mergeddataOption) *MergedDataMutation {
	m := &MergedDataMutation{
		config:        c,
		op:            op,
		typ:           TypeMergedData,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMergedDataID sets the ID field of the mutation.
func withMergedDataID(id string) mergeddataOption {
	return func(m *MergedDataMutation) {
		var (
			err   error
			once  sync.Once
			value *MergedData
		)
		m.oldValue = func(ctx context.Context) (*MergedData, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MergedData.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMergedData sets the old MergedData of the mutation.
func withMergedData(node *MergedData) mergeddataOption {
	return func(m *MergedDataMutation) {
		m.oldValue = func(context.Context) (*MergedData, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MergedDataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MergedDataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MergedData entities.
func (m *MergedDataMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MergedDataMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MergedDataMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MergedData.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategoryResultID sets the "category_result_id" field.
func (m *MergedDataMutation) SetCategoryResultID(s string) {
	m.category_result = &s
}

// CategoryResultID returns the value of the "category_result_id" field in the mutation.
func (m *MergedDataMutation) CategoryResultID() (r string, exists bool) {
	v := m.category_result
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryResultID returns the old "category_result_id" field's value of the MergedData entity.
// If the MergedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedDataMutation) OldCategoryResultID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryResultID: %w", err)
	}
	return oldValue.CategoryResultID, nil
}

// ResetCategoryResultID resets all changes to the "category_result_id" field.
func (m *MergedDataMutation) ResetCategoryResultID() {
	m.category_result = nil
}

// SetMergedText sets the "merged_text" field.
func (m *MergedDataMutation) SetMergedText(s string) {
	m.merged_text = &s
}

// MergedText returns the value of the "merged_text" field in the mutation.
func (m *MergedDataMutation) MergedText() (r string, exists bool) {
	v := m.merged_text
	if v == nil {
		return
	}
	return *v, true
}

// OldMergedText returns the old "merged_text" field's value of the MergedData entity.
// If the MergedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedDataMutation) OldMergedText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergedText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergedText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergedText: %w", err)
	}
	return oldValue.MergedText, nil
}

// ResetMergedText resets all changes to the "merged_text" field.
func (m *MergedDataMutation) ResetMergedText() {
	m.merged_text = nil
}

// SetStructuredData sets the "structured_data" field.
func (m *MergedDataMutation) SetStructuredData(value map[string]interface{}) {
	m.structured_data = &value
}

// StructuredData returns the value of the "structured_data" field in the mutation.
func (m *MergedDataMutation) StructuredData() (r map[string]interface{}, exists bool) {
	v := m.structured_data
	if v == nil {
		return
	}
	return *v, true
}

// OldStructuredData returns the old "structured_data" field's value of the MergedData entity.
// If the MergedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedDataMutation) OldStructuredData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStructuredData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStructuredData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStructuredData: %w", err)
	}
	return oldValue.StructuredData, nil
}

// ClearStructuredData clears the value of the "structured_data" field.
func (m *MergedDataMutation) ClearStructuredData() {
	m.structured_data = nil
	m.clearedFields[mergeddata.FieldStructuredData] = struct{}{}
}

// StructuredDataCleared returns if the "structured_data" field was cleared in this mutation.
func (m *MergedDataMutation) StructuredDataCleared() bool {
	_, ok := m.clearedFields[mergeddata.FieldStructuredData]
	return ok
}

// ResetStructuredData resets all changes to the "structured_data" field.
func (m *MergedDataMutation) ResetStructuredData() {
	m.structured_data = nil
	delete(m.clearedFields, mergeddata.FieldStructuredData)
}

// SetConfidence sets the "confidence" field.
func (m *MergedDataMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *MergedDataMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the MergedData entity.
// If the MergedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedDataMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *MergedDataMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *MergedDataMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *MergedDataMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSourceReferences sets the "source_references" field.
func (m *MergedDataMutation) SetSourceReferences(value []map[string]interface{}) {
	m.source_references = &value
	m.appendsource_references = nil
}

// SourceReferences returns the value of the "source_references" field in the mutation.
func (m *MergedDataMutation) SourceReferences() (r []map[string]interface{}, exists bool) {
	v := m.source_references
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceReferences returns the old "source_references" field's value of the MergedData entity.
// If the MergedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedDataMutation) OldSourceReferences(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceReferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceReferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceReferences: %w", err)
	}
	return oldValue.SourceReferences, nil
}

// AppendSourceReferences adds value to the "source_references" field.
func (m *MergedDataMutation) AppendSourceReferences(value []map[string]interface{}) {
	m.appendsource_references = append(m.appendsource_references, value...)
}

// AppendedSourceReferences returns the list of values that were appended to the "source_references" field in this mutation.
func (m *MergedDataMutation) AppendedSourceReferences() ([]map[string]interface{}, bool) {
	if len(m.appendsource_references) == 0 {
		return nil, false
	}
	return m.appendsource_references, true
}

// ClearSourceReferences clears the value of the "source_references" field.
func (m *MergedDataMutation) ClearSourceReferences() {
	m.source_references = nil
	m.appendsource_references = nil
	m.clearedFields[mergeddata.FieldSourceReferences] = struct{}{}
}

// SourceReferencesCleared returns if the "source_references" field was cleared in this mutation.
func (m *MergedDataMutation) SourceReferencesCleared() bool {
	_, ok := m.clearedFields[mergeddata.FieldSourceReferences]
	return ok
}

// ResetSourceReferences resets all changes to the "source_references" field.
func (m *MergedDataMutation) ResetSourceReferences() {
	m.source_references = nil
	m.appendsource_references = nil
	delete(m.clearedFields, mergeddata.FieldSourceReferences)
}

// SetMergeMethod sets the "merge_method" field.
func (m *MergedDataMutation) SetMergeMethod(mm mergeddata.MergeMethod) {
	m.merge_method = &mm
}

// MergeMethod returns the value of the "merge_method" field in the mutation.
func (m *MergedDataMutation) MergeMethod() (r mergeddata.MergeMethod, exists bool) {
	v := m.merge_method
	if v == nil {
		return
	}
	return *v, true
}

// OldMergeMethod returns the old "merge_method" field's value of the MergedData entity.
// If the MergedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedDataMutation) OldMergeMethod(ctx context.Context) (v mergeddata.MergeMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergeMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergeMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergeMethod: %w", err)
	}
	return oldValue.MergeMethod, nil
}

// ResetMergeMethod resets all changes to the "merge_method" field.
func (m *MergedDataMutation) ResetMergeMethod() {
	m.merge_method = nil
}

// SetKeyFindings sets the "key_findings" field.
func (m *MergedDataMutation) SetKeyFindings(s []string) {
	m.key_findings = &s
	m.appendkey_findings = nil
}

// KeyFindings returns the value of the "key_findings" field in the mutation.
func (m *MergedDataMutation) KeyFindings() (r []string, exists bool) {
	v := m.key_findings
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyFindings returns the old "key_findings" field's value of the MergedData entity.
// If the MergedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedDataMutation) OldKeyFindings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyFindings: %w", err)
	}
	return oldValue.KeyFindings, nil
}

// AppendKeyFindings adds s to the "key_findings" field.
func (m *MergedDataMutation) AppendKeyFindings(s []string) {
	m.appendkey_findings = append(m.appendkey_findings, s...)
}

// AppendedKeyFindings returns the list of values that were appended to the "key_findings" field in this mutation.
func (m *MergedDataMutation) AppendedKeyFindings() ([]string, bool) {
	if len(m.appendkey_findings) == 0 {
		return nil, false
	}
	return m.appendkey_findings, true
}

// ClearKeyFindings clears the value of the "key_findings" field.
func (m *MergedDataMutation) ClearKeyFindings() {
	m.key_findings = nil
	m.appendkey_findings = nil
	m.clearedFields[mergeddata.FieldKeyFindings] = struct{}{}
}

// KeyFindingsCleared returns if the "key_findings" field was cleared in this mutation.
func (m *MergedDataMutation) KeyFindingsCleared() bool {
	_, ok := m.clearedFields[mergeddata.FieldKeyFindings]
	return ok
}

// ResetKeyFindings resets all changes to the "key_findings" field.
func (m *MergedDataMutation) ResetKeyFindings() {
	m.key_findings = nil
	m.appendkey_findings = nil
	delete(m.clearedFields, mergeddata.FieldKeyFindings)
}

// SetCreatedAt sets the "created_at" field.
func (m *MergedDataMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MergedDataMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MergedData entity.
// If the MergedData object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MergedDataMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MergedDataMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCategoryResult clears the "category_result" edge to the CategoryResult entity.
func (m *MergedDataMutation) ClearCategoryResult() {
	m.clearedcategory_result = true
	m.clearedFields[mergeddata.FieldCategoryResultID] = struct{}{}
}

// CategoryResultCleared reports if the "category_result" edge to the CategoryResult entity was cleared.
func (m *MergedDataMutation) CategoryResultCleared() bool {
	return m.clearedcategory_result
}

// CategoryResultIDs returns the "category_result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryResultID instead. It exists only for internal usage by the builders.
func (m *MergedDataMutation) CategoryResultIDs() (ids []string) {
	if id := m.category_result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategoryResult resets all changes to the "category_result" edge.
func (m *MergedDataMutation) ResetCategoryResult() {
	m.category_result = nil
	m.clearedcategory_result = false
}

// Where appends a list predicates to the MergedDataMutation builder.
func (m *MergedDataMutation) Where(ps ...predicate.MergedData) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MergedDataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MergedDataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MergedData, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MergedDataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MergedDataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MergedData).
func (m *MergedDataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MergedDataMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.category_result != nil {
		fields = append(fields, mergeddata.FieldCategoryResultID)
	}
	if m.merged_text != nil {
		fields = append(fields, mergeddata.FieldMergedText)
	}
	if m.structured_data != nil {
		fields = append(fields, mergeddata.FieldStructuredData)
	}
	if m.confidence != nil {
		fields = append(fields, mergeddata.FieldConfidence)
	}
	if m.source_references != nil {
		fields = append(fields, mergeddata.FieldSourceReferences)
	}
	if m.merge_method != nil {
		fields = append(fields, mergeddata.FieldMergeMethod)
	}
	if m.key_findings != nil {
		fields = append(fields, mergeddata.FieldKeyFindings)
	}
	if m.created_at != nil {
		fields = append(fields, mergeddata.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MergedDataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mergeddata.FieldCategoryResultID:
		return m.CategoryResultID()
	case mergeddata.FieldMergedText:
		return m.MergedText()
	case mergeddata.FieldStructuredData:
		return m.StructuredData()
	case mergeddata.FieldConfidence:
		return m.Confidence()
	case mergeddata.FieldSourceReferences:
		return m.SourceReferences()
	case mergeddata.FieldMergeMethod:
		return m.MergeMethod()
	case mergeddata.FieldKeyFindings:
		return m.KeyFindings()
	case mergeddata.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MergedDataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mergeddata.FieldCategoryResultID:
		return m.OldCategoryResultID(ctx)
	case mergeddata.FieldMergedText:
		return m.OldMergedText(ctx)
	case mergeddata.FieldStructuredData:
		return m.OldStructuredData(ctx)
	case mergeddata.FieldConfidence:
		return m.OldConfidence(ctx)
	case mergeddata.FieldSourceReferences:
		return m.OldSourceReferences(ctx)
	case mergeddata.FieldMergeMethod:
		return m.OldMergeMethod(ctx)
	case mergeddata.FieldKeyFindings:
		return m.OldKeyFindings(ctx)
	case mergeddata.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MergedData field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergedDataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mergeddata.FieldCategoryResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryResultID(v)
		return nil
	case mergeddata.FieldMergedText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergedText(v)
		return nil
	case mergeddata.FieldStructuredData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStructuredData(v)
		return nil
	case mergeddata.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case mergeddata.FieldSourceReferences:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceReferences(v)
		return nil
	case mergeddata.FieldMergeMethod:
		v, ok := value.(mergeddata.MergeMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergeMethod(v)
		return nil
	case mergeddata.FieldKeyFindings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyFindings(v)
		return nil
	case mergeddata.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MergedData field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MergedDataMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, mergeddata.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MergedDataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mergeddata.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MergedDataMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mergeddata.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown MergedData numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MergedDataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mergeddata.FieldStructuredData) {
		fields = append(fields, mergeddata.FieldStructuredData)
	}
	if m.FieldCleared(mergeddata.FieldSourceReferences) {
		fields = append(fields, mergeddata.FieldSourceReferences)
	}
	if m.FieldCleared(mergeddata.FieldKeyFindings) {
		fields = append(fields, mergeddata.FieldKeyFindings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MergedDataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MergedDataMutation) ClearField(name string) error {
	switch name {
	case mergeddata.FieldStructuredData:
		m.ClearStructuredData()
		return nil
	case mergeddata.FieldSourceReferences:
		m.ClearSourceReferences()
		return nil
	case mergeddata.FieldKeyFindings:
		m.ClearKeyFindings()
		return nil
	}
	return fmt.Errorf("unknown MergedData nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MergedDataMutation) ResetField(name string) error {
	switch name {
	case mergeddata.FieldCategoryResultID:
		m.ResetCategoryResultID()
		return nil
	case mergeddata.FieldMergedText:
		m.ResetMergedText()
		return nil
	case mergeddata.FieldStructuredData:
		m.ResetStructuredData()
		return nil
	case mergeddata.FieldConfidence:
		m.ResetConfidence()
		return nil
	case mergeddata.FieldSourceReferences:
		m.ResetSourceReferences()
		return nil
	case mergeddata.FieldMergeMethod:
		m.ResetMergeMethod()
		return nil
	case mergeddata.FieldKeyFindings:
		m.ResetKeyFindings()
		return nil
	case mergeddata.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MergedData field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MergedDataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.category_result != nil {
		edges = append(edges, mergeddata.EdgeCategoryResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MergedDataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case mergeddata.EdgeCategoryResult:
		if id := m.category_result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MergedDataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MergedDataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MergedDataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcategory_result {
		edges = append(edges, mergeddata.EdgeCategoryResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MergedDataMutation) EdgeCleared(name string) bool {
	switch name {
	case mergeddata.EdgeCategoryResult:
		return m.clearedcategory_result
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MergedDataMutation) ClearEdge(name string) error {
	switch name {
	case mergeddata.EdgeCategoryResult:
		m.ClearCategoryResult()
		return nil
	}
	return fmt.Errorf("unknown MergedData unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MergedDataMutation) ResetEdge(name string) error {
	switch name {
	case mergeddata.EdgeCategoryResult:
		m.ResetCategoryResult()
		return nil
	}
	return fmt.Errorf("unknown MergedData edge %s", name)
}

// ParameterResultMutation represents an operation that mutates the ParameterResult nodes in the graph.
type ParameterResultMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	parameter          *parameterresult.Parameter
	delivery_method    *parameterresult.DeliveryMethod
	extracted_value    *float64
	addextracted_value *float64
	unit               *string
	score              *int
	addscore           *int
	weighted_score     *float64
	addweighted_score  *float64
	rationale          *string
	range_text         *string
	is_exclusion       *bool
	extraction_method  *parameterresult.ExtractionMethod
	created_at         *time.Time
	clearedFields      map[string]struct{}
	request            *string
	clearedrequest     bool
	done               bool
	oldValue           func(context.Context) (*ParameterResult, error)
	predicates         []predicate.ParameterResult
}

var _ ent.Mutation = (*ParameterResultMutation)(nil)

// parameterresultOption allows management of the mutation configuration using functional options.
type parameterresultOption func(*ParameterResultMutation)

// newParameterResultMutation creates new mutation for the ParameterResult entity.
func newParameterResultMutation(c config, op Op, opts ...parameterresultOption) *ParameterResultMutation {
	m := &ParameterResultMutation{
		config:        c,
		op:            op,
		typ:           TypeParameterResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParameterResultID sets the ID field of the mutation.
func withParameterResultID(id string) parameterresultOption {
	return func(m *ParameterResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ParameterResult
		)
		m.oldValue = func(ctx context.Context) (*ParameterResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParameterResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParameterResult sets the old ParameterResult of the mutation.
func withParameterResult(node *ParameterResult) parameterresultOption {
	return func(m *ParameterResultMutation) {
		m.oldValue = func(context.Context) (*ParameterResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParameterResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParameterResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParameterResult entities.
func (m *ParameterResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParameterResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParameterResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParameterResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *ParameterResultMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ParameterResultMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ParameterResultMutation) ResetRequestID() {
	m.request = nil
}

// SetParameter sets the "parameter" field.
func (m *ParameterResultMutation) SetParameter(pa parameterresult.Parameter) {
	m.parameter = &pa
}

// Parameter returns the value of the "parameter" field in the mutation.
func (m *ParameterResultMutation) Parameter() (r parameterresult.Parameter, exists bool) {
	v := m.parameter
	if v == nil {
		return
	}
	return *v, true
}

// OldParameter returns the old "parameter" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldParameter(ctx context.Context) (v parameterresult.Parameter, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameter: %w", err)
	}
	return oldValue.Parameter, nil
}

// ResetParameter resets all changes to the "parameter" field.
func (m *ParameterResultMutation) ResetParameter() {
	m.parameter = nil
}

// SetDeliveryMethod sets the "delivery_method" field.
func (m *ParameterResultMutation) SetDeliveryMethod(pm parameterresult.DeliveryMethod) {
	m.delivery_method = &pm
}

// DeliveryMethod returns the value of the "delivery_method" field in the mutation.
func (m *ParameterResultMutation) DeliveryMethod() (r parameterresult.DeliveryMethod, exists bool) {
	v := m.delivery_method
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryMethod returns the old "delivery_method" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldDeliveryMethod(ctx context.Context) (v parameterresult.DeliveryMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryMethod: %w", err)
	}
	return oldValue.DeliveryMethod, nil
}

// ResetDeliveryMethod resets all changes to the "delivery_method" field.
func (m *ParameterResultMutation) ResetDeliveryMethod() {
	m.delivery_method = nil
}

// SetExtractedValue sets the "extracted_value" field.
func (m *ParameterResultMutation) SetExtractedValue(f float64) {
	m.extracted_value = &f
	m.addextracted_value = nil
}

// ExtractedValue returns the value of the "extracted_value" field in the mutation.
func (m *ParameterResultMutation) ExtractedValue() (r float64, exists bool) {
	v := m.extracted_value
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedValue returns the old "extracted_value" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldExtractedValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedValue: %w", err)
	}
	return oldValue.ExtractedValue, nil
}

// AddExtractedValue adds f to the "extracted_value" field.
func (m *ParameterResultMutation) AddExtractedValue(f float64) {
	if m.addextracted_value != nil {
		*m.addextracted_value += f
	} else {
		m.addextracted_value = &f
	}
}

// AddedExtractedValue returns the value that was added to the "extracted_value" field in this mutation.
func (m *ParameterResultMutation) AddedExtractedValue() (r float64, exists bool) {
	v := m.addextracted_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractedValue clears the value of the "extracted_value" field.
func (m *ParameterResultMutation) ClearExtractedValue() {
	m.extracted_value = nil
	m.addextracted_value = nil
	m.clearedFields[parameterresult.FieldExtractedValue] = struct{}{}
}

// ExtractedValueCleared returns if the "extracted_value" field was cleared in this mutation.
func (m *ParameterResultMutation) ExtractedValueCleared() bool {
	_, ok := m.clearedFields[parameterresult.FieldExtractedValue]
	return ok
}

// ResetExtractedValue resets all changes to the "extracted_value" field.
func (m *ParameterResultMutation) ResetExtractedValue() {
	m.extracted_value = nil
	m.addextracted_value = nil
	delete(m.clearedFields, parameterresult.FieldExtractedValue)
}

// SetUnit sets the "unit" field.
func (m *ParameterResultMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *ParameterResultMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *ParameterResultMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[parameterresult.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *ParameterResultMutation) UnitCleared() bool {
	_, ok := m.clearedFields[parameterresult.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *ParameterResultMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, parameterresult.FieldUnit)
}

// SetScore sets the "score" field.
func (m *ParameterResultMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ParameterResultMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ParameterResultMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ParameterResultMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *ParameterResultMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[parameterresult.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *ParameterResultMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[parameterresult.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *ParameterResultMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, parameterresult.FieldScore)
}

// SetWeightedScore sets the "weighted_score" field.
func (m *ParameterResultMutation) SetWeightedScore(f float64) {
	m.weighted_score = &f
	m.addweighted_score = nil
}

// WeightedScore returns the value of the "weighted_score" field in the mutation.
func (m *ParameterResultMutation) WeightedScore() (r float64, exists bool) {
	v := m.weighted_score
	if v == nil {
		return
	}
	return *v, true
}

// OldWeightedScore returns the old "weighted_score" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldWeightedScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeightedScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeightedScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeightedScore: %w", err)
	}
	return oldValue.WeightedScore, nil
}

// AddWeightedScore adds f to the "weighted_score" field.
func (m *ParameterResultMutation) AddWeightedScore(f float64) {
	if m.addweighted_score != nil {
		*m.addweighted_score += f
	} else {
		m.addweighted_score = &f
	}
}

// AddedWeightedScore returns the value that was added to the "weighted_score" field in this mutation.
func (m *ParameterResultMutation) AddedWeightedScore() (r float64, exists bool) {
	v := m.addweighted_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeightedScore resets all changes to the "weighted_score" field.
func (m *ParameterResultMutation) ResetWeightedScore() {
	m.weighted_score = nil
	m.addweighted_score = nil
}

// SetRationale sets the "rationale" field.
func (m *ParameterResultMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *ParameterResultMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *ParameterResultMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[parameterresult.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *ParameterResultMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[parameterresult.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *ParameterResultMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, parameterresult.FieldRationale)
}

// SetRangeText sets the "range_text" field.
func (m *ParameterResultMutation) SetRangeText(s string) {
	m.range_text = &s
}

// RangeText returns the value of the "range_text" field in the mutation.
func (m *ParameterResultMutation) RangeText() (r string, exists bool) {
	v := m.range_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRangeText returns the old "range_text" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldRangeText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRangeText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRangeText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRangeText: %w", err)
	}
	return oldValue.RangeText, nil
}

// ClearRangeText clears the value of the "range_text" field.
func (m *ParameterResultMutation) ClearRangeText() {
	m.range_text = nil
	m.clearedFields[parameterresult.FieldRangeText] = struct{}{}
}

// RangeTextCleared returns if the "range_text" field was cleared in this mutation.
func (m *ParameterResultMutation) RangeTextCleared() bool {
	_, ok := m.clearedFields[parameterresult.FieldRangeText]
	return ok
}

// ResetRangeText resets all changes to the "range_text" field.
func (m *ParameterResultMutation) ResetRangeText() {
	m.range_text = nil
	delete(m.clearedFields, parameterresult.FieldRangeText)
}

// SetIsExclusion sets the "is_exclusion" field.
func (m *ParameterResultMutation) SetIsExclusion(b bool) {
	m.is_exclusion = &b
}

// IsExclusion returns the value of the "is_exclusion" field in the mutation.
func (m *ParameterResultMutation) IsExclusion() (r bool, exists bool) {
	v := m.is_exclusion
	if v == nil {
		return
	}
	return *v, true
}

// OldIsExclusion returns the old "is_exclusion" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldIsExclusion(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsExclusion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsExclusion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsExclusion: %w", err)
	}
	return oldValue.IsExclusion, nil
}

// ResetIsExclusion resets all changes to the "is_exclusion" field.
func (m *ParameterResultMutation) ResetIsExclusion() {
	m.is_exclusion = nil
}

// SetExtractionMethod sets the "extraction_method" field.
func (m *ParameterResultMutation) SetExtractionMethod(pm parameterresult.ExtractionMethod) {
	m.extraction_method = &pm
}

// ExtractionMethod returns the value of the "extraction_method" field in the mutation.
func (m *ParameterResultMutation) ExtractionMethod() (r parameterresult.ExtractionMethod, exists bool) {
	v := m.extraction_method
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionMethod returns the old "extraction_method" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldExtractionMethod(ctx context.Context) (v parameterresult.ExtractionMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionMethod: %w", err)
	}
	return oldValue.ExtractionMethod, nil
}

// ResetExtractionMethod resets all changes to the "extraction_method" field.
func (m *ParameterResultMutation) ResetExtractionMethod() {
	m.extraction_method = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ParameterResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParameterResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ParameterResult entity.
// If the ParameterResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParameterResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParameterResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the AnalysisRequest entity.
func (m *ParameterResultMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[parameterresult.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the AnalysisRequest entity was cleared.
func (m *ParameterResultMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *ParameterResultMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *ParameterResultMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the ParameterResultMutation builder.
func (m *ParameterResultMutation) Where(ps ...predicate.ParameterResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParameterResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParameterResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParameterResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParameterResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParameterResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParameterResult).
func (m *ParameterResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParameterResultMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.request != nil {
		fields = append(fields, parameterresult.FieldRequestID)
	}
	if m.parameter != nil {
		fields = append(fields, parameterresult.FieldParameter)
	}
	if m.delivery_method != nil {
		fields = append(fields, parameterresult.FieldDeliveryMethod)
	}
	if m.extracted_value != nil {
		fields = append(fields, parameterresult.FieldExtractedValue)
	}
	if m.unit != nil {
		fields = append(fields, parameterresult.FieldUnit)
	}
	if m.score != nil {
		fields = append(fields, parameterresult.FieldScore)
	}
	if m.weighted_score != nil {
		fields = append(fields, parameterresult.FieldWeightedScore)
	}
	if m.rationale != nil {
		fields = append(fields, parameterresult.FieldRationale)
	}
	if m.range_text != nil {
		fields = append(fields, parameterresult.FieldRangeText)
	}
	if m.is_exclusion != nil {
		fields = append(fields, parameterresult.FieldIsExclusion)
	}
	if m.extraction_method != nil {
		fields = append(fields, parameterresult.FieldExtractionMethod)
	}
	if m.created_at != nil {
		fields = append(fields, parameterresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParameterResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parameterresult.FieldRequestID:
		return m.RequestID()
	case parameterresult.FieldParameter:
		return m.Parameter()
	case parameterresult.FieldDeliveryMethod:
		return m.DeliveryMethod()
	case parameterresult.FieldExtractedValue:
		return m.ExtractedValue()
	case parameterresult.FieldUnit:
		return m.Unit()
	case parameterresult.FieldScore:
		return m.Score()
	case parameterresult.FieldWeightedScore:
		return m.WeightedScore()
	case parameterresult.FieldRationale:
		return m.Rationale()
	case parameterresult.FieldRangeText:
		return m.RangeText()
	case parameterresult.FieldIsExclusion:
		return m.IsExclusion()
	case parameterresult.FieldExtractionMethod:
		return m.ExtractionMethod()
	case parameterresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParameterResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parameterresult.FieldRequestID:
		return m.OldRequestID(ctx)
	case parameterresult.FieldParameter:
		return m.OldParameter(ctx)
	case parameterresult.FieldDeliveryMethod:
		return m.OldDeliveryMethod(ctx)
	case parameterresult.FieldExtractedValue:
		return m.OldExtractedValue(ctx)
	case parameterresult.FieldUnit:
		return m.OldUnit(ctx)
	case parameterresult.FieldScore:
		return m.OldScore(ctx)
	case parameterresult.FieldWeightedScore:
		return m.OldWeightedScore(ctx)
	case parameterresult.FieldRationale:
		return m.OldRationale(ctx)
	case parameterresult.FieldRangeText:
		return m.OldRangeText(ctx)
	case parameterresult.FieldIsExclusion:
		return m.OldIsExclusion(ctx)
	case parameterresult.FieldExtractionMethod:
		return m.OldExtractionMethod(ctx)
	case parameterresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ParameterResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParameterResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parameterresult.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case parameterresult.FieldParameter:
		v, ok := value.(parameterresult.Parameter)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameter(v)
		return nil
	case parameterresult.FieldDeliveryMethod:
		v, ok := value.(parameterresult.DeliveryMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryMethod(v)
		return nil
	case parameterresult.FieldExtractedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedValue(v)
		return nil
	case parameterresult.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case parameterresult.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case parameterresult.FieldWeightedScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeightedScore(v)
		return nil
	case parameterresult.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case parameterresult.FieldRangeText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRangeText(v)
		return nil
	case parameterresult.FieldIsExclusion:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsExclusion(v)
		return nil
	case parameterresult.FieldExtractionMethod:
		v, ok := value.(parameterresult.ExtractionMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionMethod(v)
		return nil
	case parameterresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ParameterResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParameterResultMutation) AddedFields() []string {
	var fields []string
	if m.addextracted_value != nil {
		fields = append(fields, parameterresult.FieldExtractedValue)
	}
	if m.addscore != nil {
		fields = append(fields, parameterresult.FieldScore)
	}
	if m.addweighted_score != nil {
		fields = append(fields, parameterresult.FieldWeightedScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParameterResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case parameterresult.FieldExtractedValue:
		return m.AddedExtractedValue()
	case parameterresult.FieldScore:
		return m.AddedScore()
	case parameterresult.FieldWeightedScore:
		return m.AddedWeightedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParameterResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case parameterresult.FieldExtractedValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractedValue(v)
		return nil
	case parameterresult.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case parameterresult.FieldWeightedScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeightedScore(v)
		return nil
	}
	return fmt.Errorf("unknown ParameterResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParameterResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parameterresult.FieldExtractedValue) {
		fields = append(fields, parameterresult.FieldExtractedValue)
	}
	if m.FieldCleared(parameterresult.FieldUnit) {
		fields = append(fields, parameterresult.FieldUnit)
	}
	if m.FieldCleared(parameterresult.FieldScore) {
		fields = append(fields, parameterresult.FieldScore)
	}
	if m.FieldCleared(parameterresult.FieldRationale) {
		fields = append(fields, parameterresult.FieldRationale)
	}
	if m.FieldCleared(parameterresult.FieldRangeText) {
		fields = append(fields, parameterresult.FieldRangeText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParameterResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParameterResultMutation) ClearField(name string) error {
	switch name {
	case parameterresult.FieldExtractedValue:
		m.ClearExtractedValue()
		return nil
	case parameterresult.FieldUnit:
		m.ClearUnit()
		return nil
	case parameterresult.FieldScore:
		m.ClearScore()
		return nil
	case parameterresult.FieldRationale:
		m.ClearRationale()
		return nil
	case parameterresult.FieldRangeText:
		m.ClearRangeText()
		return nil
	}
	return fmt.Errorf("unknown ParameterResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParameterResultMutation) ResetField(name string) error {
	switch name {
	case parameterresult.FieldRequestID:
		m.ResetRequestID()
		return nil
	case parameterresult.FieldParameter:
		m.ResetParameter()
		return nil
	case parameterresult.FieldDeliveryMethod:
		m.ResetDeliveryMethod()
		return nil
	case parameterresult.FieldExtractedValue:
		m.ResetExtractedValue()
		return nil
	case parameterresult.FieldUnit:
		m.ResetUnit()
		return nil
	case parameterresult.FieldScore:
		m.ResetScore()
		return nil
	case parameterresult.FieldWeightedScore:
		m.ResetWeightedScore()
		return nil
	case parameterresult.FieldRationale:
		m.ResetRationale()
		return nil
	case parameterresult.FieldRangeText:
		m.ResetRangeText()
		return nil
	case parameterresult.FieldIsExclusion:
		m.ResetIsExclusion()
		return nil
	case parameterresult.FieldExtractionMethod:
		m.ResetExtractionMethod()
		return nil
	case parameterresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ParameterResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParameterResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, parameterresult.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParameterResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parameterresult.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParameterResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParameterResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParameterResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, parameterresult.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParameterResultMutation) EdgeCleared(name string) bool {
	switch name {
	case parameterresult.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParameterResultMutation) ClearEdge(name string) error {
	switch name {
	case parameterresult.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown ParameterResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParameterResultMutation) ResetEdge(name string) error {
	switch name {
	case parameterresult.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown ParameterResult edge %s", name)
}

// PharmaCategoryMutation represents an operation that mutates the PharmaCategory nodes in the graph.
type PharmaCategoryMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	name                         *string
	key                          *string
	phase                        *int
	addphase                     *int
	display_order                *int
	adddisplay_order             *int
	is_active                    *bool
	prompt_template              *string
	verification_criteria        *map[string]interface{}
	processing_rules             *map[string]interface{}
	conflict_resolution_strategy *string
	clearedFields                map[string]struct{}
	dependents                   map[string]struct{}
	removeddependents            map[string]struct{}
	cleareddependents            bool
	requirements                 map[string]struct{}
	removedrequirements          map[string]struct{}
	clearedrequirements          bool
	done                         bool
	oldValue                     func(context.Context) (*PharmaCategory, error)
	predicates                   []predicate.PharmaCategory
}

var _ ent.Mutation = (*PharmaCategoryMutation)(nil)

// pharmacategoryOption allows management of the mutation configuration using functional options.
type pharmacategoryOption func(*PharmaCategoryMutation)

// newPharmaCategoryMutation creates new mutation for the PharmaCategory entity.
func newPharmaCategoryMutation(c config, op Op, opts ...pharmacategoryOption) *PharmaCategoryMutation {
	m := &PharmaCategoryMutation{
		config:        c,
		op:            op,
		typ:           TypePharmaCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPharmaCategoryID sets the ID field of the mutation.
func withPharmaCategoryID(id string) pharmacategoryOption {
	return func(m *PharmaCategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *PharmaCategory
		)
		m.oldValue = func(ctx context.Context) (*PharmaCategory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PharmaCategory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPharmaCategory sets the old PharmaCategory of the mutation.
func withPharmaCategory(node *PharmaCategory) pharmacategoryOption {
	return func(m *PharmaCategoryMutation) {
		m.oldValue = func(context.Context) (*PharmaCategory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PharmaCategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PharmaCategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PharmaCategory entities.
func (m *PharmaCategoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PharmaCategoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PharmaCategoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PharmaCategory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PharmaCategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PharmaCategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PharmaCategory entity.
// If the PharmaCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmaCategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PharmaCategoryMutation) ResetName() {
	m.name = nil
}

// SetKey sets the "key" field.
func (m *PharmaCategoryMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *PharmaCategoryMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the PharmaCategory entity.
// If the PharmaCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmaCategoryMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *PharmaCategoryMutation) ResetKey() {
	m.key = nil
}

// SetPhase sets the "phase" field.
func (m *PharmaCategoryMutation) SetPhase(i int) {
	m.phase = &i
	m.addphase = nil
}

// Phase returns the value of the "phase" field in the mutation.
func (m *PharmaCategoryMutation) Phase() (r int, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the PharmaCategory entity.
// If the PharmaCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmaCategoryMutation) OldPhase(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// AddPhase adds i to the "phase" field.
func (m *PharmaCategoryMutation) AddPhase(i int) {
	if m.addphase != nil {
		*m.addphase += i
	} else {
		m.addphase = &i
	}
}

// AddedPhase returns the value that was added to the "phase" field in this mutation.
func (m *PharmaCategoryMutation) AddedPhase() (r int, exists bool) {
	v := m.addphase
	if v == nil {
		return
	}
	return *v, true
}

// ResetPhase resets all changes to the "phase" field.
func (m *PharmaCategoryMutation) ResetPhase() {
	m.phase = nil
	m.addphase = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *PharmaCategoryMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *PharmaCategoryMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the PharmaCategory entity.
// If the PharmaCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmaCategoryMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *PharmaCategoryMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *PharmaCategoryMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *PharmaCategoryMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetIsActive sets the "is_active" field.
func (m *PharmaCategoryMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PharmaCategoryMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the PharmaCategory entity.
// If the PharmaCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmaCategoryMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PharmaCategoryMutation) ResetIsActive() {
	m.is_active = nil
}

// SetPromptTemplate sets the "prompt_template" field.
func (m *PharmaCategoryMutation) SetPromptTemplate(s string) {
	m.prompt_template = &s
}

// PromptTemplate returns the value of the "prompt_template" field in the mutation.
func (m *PharmaCategoryMutation) PromptTemplate() (r string, exists bool) {
	v := m.prompt_template
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTemplate returns the old "prompt_template" field's value of the PharmaCategory entity.
// If the PharmaCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmaCategoryMutation) OldPromptTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTemplate: %w", err)
	}
	return oldValue.PromptTemplate, nil
}

// ResetPromptTemplate resets all changes to the "prompt_template" field.
func (m *PharmaCategoryMutation) ResetPromptTemplate() {
	m.prompt_template = nil
}

// SetVerificationCriteria sets the "verification_criteria" field.
func (m *PharmaCategoryMutation) SetVerificationCriteria(value map[string]interface{}) {
	m.verification_criteria = &value
}

// VerificationCriteria returns the value of the "verification_criteria" field in the mutation.
func (m *PharmaCategoryMutation) VerificationCriteria() (r map[string]interface{}, exists bool) {
	v := m.verification_criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldVerificationCriteria returns the old "verification_criteria" field's value of the PharmaCategory entity.
// If the PharmaCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmaCategoryMutation) OldVerificationCriteria(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerificationCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerificationCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerificationCriteria: %w", err)
	}
	return oldValue.VerificationCriteria, nil
}

// ClearVerificationCriteria clears the value of the "verification_criteria" field.
func (m *PharmaCategoryMutation) ClearVerificationCriteria() {
	m.verification_criteria = nil
	m.clearedFields[pharmacategory.FieldVerificationCriteria] = struct{}{}
}

// VerificationCriteriaCleared returns if the "verification_criteria" field was cleared in this mutation.
func (m *PharmaCategoryMutation) VerificationCriteriaCleared() bool {
	_, ok := m.clearedFields[pharmacategory.FieldVerificationCriteria]
	return ok
}

// ResetVerificationCriteria resets all changes to the "verification_criteria" field.
func (m *PharmaCategoryMutation) ResetVerificationCriteria() {
	m.verification_criteria = nil
	delete(m.clearedFields, pharmacategory.FieldVerificationCriteria)
}

// SetProcessingRules sets the "processing_rules" field.
func (m *PharmaCategoryMutation) SetProcessingRules(value map[string]interface{}) {
	m.processing_rules = &value
}

// ProcessingRules returns the value of the "processing_rules" field in the mutation.
func (m *PharmaCategoryMutation) ProcessingRules() (r map[string]interface{}, exists bool) {
	v := m.processing_rules
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingRules returns the old "processing_rules" field's value of the PharmaCategory entity.
// If the PharmaCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmaCategoryMutation) OldProcessingRules(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingRules is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingRules requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingRules: %w", err)
	}
	return oldValue.ProcessingRules, nil
}

// ClearProcessingRules clears the value of the "processing_rules" field.
func (m *PharmaCategoryMutation) ClearProcessingRules() {
	m.processing_rules = nil
	m.clearedFields[pharmacategory.FieldProcessingRules] = struct{}{}
}

// ProcessingRulesCleared returns if the "processing_rules" field was cleared in this mutation.
func (m *PharmaCategoryMutation) ProcessingRulesCleared() bool {
	_, ok := m.clearedFields[pharmacategory.FieldProcessingRules]
	return ok
}

// ResetProcessingRules resets all changes to the "processing_rules" field.
func (m *PharmaCategoryMutation) ResetProcessingRules() {
	m.processing_rules = nil
	delete(m.clearedFields, pharmacategory.FieldProcessingRules)
}

// SetConflictResolutionStrategy sets the "conflict_resolution_strategy" field.
func (m *PharmaCategoryMutation) SetConflictResolutionStrategy(s string) {
	m.conflict_resolution_strategy = &s
}

// ConflictResolutionStrategy returns the value of the "conflict_resolution_strategy" field in the mutation.
func (m *PharmaCategoryMutation) ConflictResolutionStrategy() (r string, exists bool) {
	v := m.conflict_resolution_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictResolutionStrategy returns the old "conflict_resolution_strategy" field's value of the PharmaCategory entity.
// If the PharmaCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PharmaCategoryMutation) OldConflictResolutionStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictResolutionStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictResolutionStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictResolutionStrategy: %w", err)
	}
	return oldValue.ConflictResolutionStrategy, nil
}

// ResetConflictResolutionStrategy resets all changes to the "conflict_resolution_strategy" field.
func (m *PharmaCategoryMutation) ResetConflictResolutionStrategy() {
	m.conflict_resolution_strategy = nil
}

// AddDependentIDs adds the "dependents" edge to the CategoryDependency entity by ids.
func (m *PharmaCategoryMutation) AddDependentIDs(ids ...string) {
	if m.dependents == nil {
		m.dependents = make(map[string]struct{})
	}
	for i := range ids {
		m.dependents[ids[i]] = struct{}{}
	}
}

// ClearDependents clears the "dependents" edge to the CategoryDependency entity.
func (m *PharmaCategoryMutation) ClearDependents() {
	m.cleareddependents = true
}

// DependentsCleared reports if the "dependents" edge to the CategoryDependency entity was cleared.
func (m *PharmaCategoryMutation) DependentsCleared() bool {
	return m.cleareddependents
}

// RemoveDependentIDs removes the "dependents" edge to the CategoryDependency entity by IDs.
func (m *PharmaCategoryMutation) RemoveDependentIDs(ids ...string) {
	if m.removeddependents == nil {
		m.removeddependents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dependents, ids[i])
		m.removeddependents[ids[i]] = struct{}{}
	}
}

// RemovedDependents returns the removed IDs of the "dependents" edge to the CategoryDependency entity.
func (m *PharmaCategoryMutation) RemovedDependentsIDs() (ids []string) {
	for id := range m.removeddependents {
		ids = append(ids, id)
	}
	return
}

// DependentsIDs returns the "dependents" edge IDs in the mutation.
func (m *PharmaCategoryMutation) DependentsIDs() (ids []string) {
	for id := range m.dependents {
		ids = append(ids, id)
	}
	return
}

// ResetDependents resets all changes to the "dependents" edge.
func (m *PharmaCategoryMutation) ResetDependents() {
	m.dependents = nil
	m.cleareddependents = false
	m.removeddependents = nil
}

// AddRequirementIDs adds the "requirements" edge to the CategoryDependency entity by ids.
func (m *PharmaCategoryMutation) AddRequirementIDs(ids ...string) {
	if m.requirements == nil {
		m.requirements = make(map[string]struct{})
	}
	for i := range ids {
		m.requirements[ids[i]] = struct{}{}
	}
}

// ClearRequirements clears the "requirements" edge to the CategoryDependency entity.
func (m *PharmaCategoryMutation) ClearRequirements() {
	m.clearedrequirements = true
}

// RequirementsCleared reports if the "requirements" edge to the CategoryDependency entity was cleared.
func (m *PharmaCategoryMutation) RequirementsCleared() bool {
	return m.clearedrequirements
}

// RemoveRequirementIDs removes the "requirements" edge to the CategoryDependency entity by IDs.
func (m *PharmaCategoryMutation) RemoveRequirementIDs(ids ...string) {
	if m.removedrequirements == nil {
		m.removedrequirements = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.requirements, ids[i])
		m.removedrequirements[ids[i]] = struct{}{}
	}
}

// RemovedRequirements returns the removed IDs of the "requirements" edge to the CategoryDependency entity.
func (m *PharmaCategoryMutation) RemovedRequirementsIDs() (ids []string) {
	for id := range m.removedrequirements {
		ids = append(ids, id)
	}
	return
}

// RequirementsIDs returns the "requirements" edge IDs in the mutation.
func (m *PharmaCategoryMutation) RequirementsIDs() (ids []string) {
	for id := range m.requirements {
		ids = append(ids, id)
	}
	return
}

// ResetRequirements resets all changes to the "requirements" edge.
func (m *PharmaCategoryMutation) ResetRequirements() {
	m.requirements = nil
	m.clearedrequirements = false
	m.removedrequirements = nil
}

// Where appends a list predicates to the PharmaCategoryMutation builder.
func (m *PharmaCategoryMutation) Where(ps ...predicate.PharmaCategory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PharmaCategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PharmaCategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PharmaCategory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PharmaCategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PharmaCategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PharmaCategory).
func (m *PharmaCategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PharmaCategoryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, pharmacategory.FieldName)
	}
	if m.key != nil {
		fields = append(fields, pharmacategory.FieldKey)
	}
	if m.phase != nil {
		fields = append(fields, pharmacategory.FieldPhase)
	}
	if m.display_order != nil {
		fields = append(fields, pharmacategory.FieldDisplayOrder)
	}
	if m.is_active != nil {
		fields = append(fields, pharmacategory.FieldIsActive)
	}
	if m.prompt_template != nil {
		fields = append(fields, pharmacategory.FieldPromptTemplate)
	}
	if m.verification_criteria != nil {
		fields = append(fields, pharmacategory.FieldVerificationCriteria)
	}
	if m.processing_rules != nil {
		fields = append(fields, pharmacategory.FieldProcessingRules)
	}
	if m.conflict_resolution_strategy != nil {
		fields = append(fields, pharmacategory.FieldConflictResolutionStrategy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PharmaCategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pharmacategory.FieldName:
		return m.Name()
	case pharmacategory.FieldKey:
		return m.Key()
	case pharmacategory.FieldPhase:
		return m.Phase()
	case pharmacategory.FieldDisplayOrder:
		return m.DisplayOrder()
	case pharmacategory.FieldIsActive:
		return m.IsActive()
	case pharmacategory.FieldPromptTemplate:
		return m.PromptTemplate()
	case pharmacategory.FieldVerificationCriteria:
		return m.VerificationCriteria()
	case pharmacategory.FieldProcessingRules:
		return m.ProcessingRules()
	case pharmacategory.FieldConflictResolutionStrategy:
		return m.ConflictResolutionStrategy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PharmaCategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pharmacategory.FieldName:
		return m.OldName(ctx)
	case pharmacategory.FieldKey:
		return m.OldKey(ctx)
	case pharmacategory.FieldPhase:
		return m.OldPhase(ctx)
	case pharmacategory.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case pharmacategory.FieldIsActive:
		return m.OldIsActive(ctx)
	case pharmacategory.FieldPromptTemplate:
		return m.OldPromptTemplate(ctx)
	case pharmacategory.FieldVerificationCriteria:
		return m.OldVerificationCriteria(ctx)
	case pharmacategory.FieldProcessingRules:
		return m.OldProcessingRules(ctx)
	case pharmacategory.FieldConflictResolutionStrategy:
		return m.OldConflictResolutionStrategy(ctx)
	}
	return nil, fmt.Errorf("unknown PharmaCategory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PharmaCategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pharmacategory.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pharmacategory.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case pharmacategory.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case pharmacategory.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case pharmacategory.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case pharmacategory.FieldPromptTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTemplate(v)
		return nil
	case pharmacategory.FieldVerificationCriteria:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerificationCriteria(v)
		return nil
	case pharmacategory.FieldProcessingRules:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingRules(v)
		return nil
	case pharmacategory.FieldConflictResolutionStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictResolutionStrategy(v)
		return nil
	}
	return fmt.Errorf("unknown PharmaCategory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PharmaCategoryMutation) AddedFields() []string {
	var fields []string
	if m.addphase != nil {
		fields = append(fields, pharmacategory.FieldPhase)
	}
	if m.adddisplay_order != nil {
		fields = append(fields, pharmacategory.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PharmaCategoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pharmacategory.FieldPhase:
		return m.AddedPhase()
	case pharmacategory.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PharmaCategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pharmacategory.FieldPhase:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPhase(v)
		return nil
	case pharmacategory.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown PharmaCategory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PharmaCategoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pharmacategory.FieldVerificationCriteria) {
		fields = append(fields, pharmacategory.FieldVerificationCriteria)
	}
	if m.FieldCleared(pharmacategory.FieldProcessingRules) {
		fields = append(fields, pharmacategory.FieldProcessingRules)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PharmaCategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PharmaCategoryMutation) ClearField(name string) error {
	switch name {
	case pharmacategory.FieldVerificationCriteria:
		m.ClearVerificationCriteria()
		return nil
	case pharmacategory.FieldProcessingRules:
		m.ClearProcessingRules()
		return nil
	}
	return fmt.Errorf("unknown PharmaCategory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PharmaCategoryMutation) ResetField(name string) error {
	switch name {
	case pharmacategory.FieldName:
		m.ResetName()
		return nil
	case pharmacategory.FieldKey:
		m.ResetKey()
		return nil
	case pharmacategory.FieldPhase:
		m.ResetPhase()
		return nil
	case pharmacategory.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case pharmacategory.FieldIsActive:
		m.ResetIsActive()
		return nil
	case pharmacategory.FieldPromptTemplate:
		m.ResetPromptTemplate()
		return nil
	case pharmacategory.FieldVerificationCriteria:
		m.ResetVerificationCriteria()
		return nil
	case pharmacategory.FieldProcessingRules:
		m.ResetProcessingRules()
		return nil
	case pharmacategory.FieldConflictResolutionStrategy:
		m.ResetConflictResolutionStrategy()
		return nil
	}
	return fmt.Errorf("unknown PharmaCategory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PharmaCategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.dependents != nil {
		edges = append(edges, pharmacategory.EdgeDependents)
	}
	if m.requirements != nil {
		edges = append(edges, pharmacategory.EdgeRequirements)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PharmaCategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pharmacategory.EdgeDependents:
		ids := make([]ent.Value, 0, len(m.dependents))
		for id := range m.dependents {
			ids = append(ids, id)
		}
		return ids
	case pharmacategory.EdgeRequirements:
		ids := make([]ent.Value, 0, len(m.requirements))
		for id := range m.requirements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PharmaCategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeddependents != nil {
		edges = append(edges, pharmacategory.EdgeDependents)
	}
	if m.removedrequirements != nil {
		edges = append(edges, pharmacategory.EdgeRequirements)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PharmaCategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pharmacategory.EdgeDependents:
		ids := make([]ent.Value, 0, len(m.removeddependents))
		for id := range m.removeddependents {
			ids = append(ids, id)
		}
		return ids
	case pharmacategory.EdgeRequirements:
		ids := make([]ent.Value, 0, len(m.removedrequirements))
		for id := range m.removedrequirements {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PharmaCategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddependents {
		edges = append(edges, pharmacategory.EdgeDependents)
	}
	if m.clearedrequirements {
		edges = append(edges, pharmacategory.EdgeRequirements)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PharmaCategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case pharmacategory.EdgeDependents:
		return m.cleareddependents
	case pharmacategory.EdgeRequirements:
		return m.clearedrequirements
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PharmaCategoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PharmaCategory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PharmaCategoryMutation) ResetEdge(name string) error {
	switch name {
	case pharmacategory.EdgeDependents:
		m.ResetDependents()
		return nil
	case pharmacategory.EdgeRequirements:
		m.ResetRequirements()
		return nil
	}
	return fmt.Errorf("unknown PharmaCategory edge %s", name)
}

// PipelineStageMutation represents an operation that mutates the PipelineStage nodes in the graph.
type PipelineStageMutation struct {
	config
	op             Op
	typ            string
	id             *string
	name           *pipelinestage.Name
	stage_order    *int
	addstage_order *int
	enabled        *bool
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*PipelineStage, error)
	predicates     []predicate.PipelineStage
}

var _ ent.Mutation = (*PipelineStageMutation)(nil)

// pipelinestageOption allows management of the mutation configuration using functional options.
type pipelinestageOption func(*PipelineStageMutation)

// newPipelineStageMutation creates new mutation for the PipelineStage entity.
func newPipelineStageMutation(c config, op Op, opts ...pipelinestageOption) *PipelineStageMutation {
	m := &PipelineStageMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineStage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineStageID sets the ID field of the mutation.
func withPipelineStageID(id string) pipelinestageOption {
	return func(m *PipelineStageMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineStage
		)
		m.oldValue = func(ctx context.Context) (*PipelineStage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineStage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineStage sets the old PipelineStage of the mutation.
func withPipelineStage(node *PipelineStage) pipelinestageOption {
	return func(m *PipelineStageMutation) {
		m.oldValue = func(context.Context) (*PipelineStage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineStageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineStageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineStage entities.
func (m *PipelineStageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineStageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineStageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineStage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PipelineStageMutation) SetName(pi pipelinestage.Name) {
	m.name = &pi
}

// Name returns the value of the "name" field in the mutation.
func (m *PipelineStageMutation) Name() (r pipelinestage.Name, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PipelineStage entity.
// If the PipelineStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStageMutation) OldName(ctx context.Context) (v pipelinestage.Name, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PipelineStageMutation) ResetName() {
	m.name = nil
}

// SetStageOrder sets the "stage_order" field.
func (m *PipelineStageMutation) SetStageOrder(i int) {
	m.stage_order = &i
	m.addstage_order = nil
}

// StageOrder returns the value of the "stage_order" field in the mutation.
func (m *PipelineStageMutation) StageOrder() (r int, exists bool) {
	v := m.stage_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStageOrder returns the old "stage_order" field's value of the PipelineStage entity.
// If the PipelineStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStageMutation) OldStageOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageOrder: %w", err)
	}
	return oldValue.StageOrder, nil
}

// AddStageOrder adds i to the "stage_order" field.
func (m *PipelineStageMutation) AddStageOrder(i int) {
	if m.addstage_order != nil {
		*m.addstage_order += i
	} else {
		m.addstage_order = &i
	}
}

// AddedStageOrder returns the value that was added to the "stage_order" field in this mutation.
func (m *PipelineStageMutation) AddedStageOrder() (r int, exists bool) {
	v := m.addstage_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageOrder resets all changes to the "stage_order" field.
func (m *PipelineStageMutation) ResetStageOrder() {
	m.stage_order = nil
	m.addstage_order = nil
}

// SetEnabled sets the "enabled" field.
func (m *PipelineStageMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *PipelineStageMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the PipelineStage entity.
// If the PipelineStage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineStageMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *PipelineStageMutation) ResetEnabled() {
	m.enabled = nil
}

// Where appends a list predicates to the PipelineStageMutation builder.
func (m *PipelineStageMutation) Where(ps ...predicate.PipelineStage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineStageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineStageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineStage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineStageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineStageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineStage).
func (m *PipelineStageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineStageMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, pipelinestage.FieldName)
	}
	if m.stage_order != nil {
		fields = append(fields, pipelinestage.FieldStageOrder)
	}
	if m.enabled != nil {
		fields = append(fields, pipelinestage.FieldEnabled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineStageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinestage.FieldName:
		return m.Name()
	case pipelinestage.FieldStageOrder:
		return m.StageOrder()
	case pipelinestage.FieldEnabled:
		return m.Enabled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineStageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinestage.FieldName:
		return m.OldName(ctx)
	case pipelinestage.FieldStageOrder:
		return m.OldStageOrder(ctx)
	case pipelinestage.FieldEnabled:
		return m.OldEnabled(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineStage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinestage.FieldName:
		v, ok := value.(pipelinestage.Name)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case pipelinestage.FieldStageOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageOrder(v)
		return nil
	case pipelinestage.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineStageMutation) AddedFields() []string {
	var fields []string
	if m.addstage_order != nil {
		fields = append(fields, pipelinestage.FieldStageOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineStageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinestage.FieldStageOrder:
		return m.AddedStageOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineStageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinestage.FieldStageOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageOrder(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineStage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineStageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineStageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineStageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PipelineStage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineStageMutation) ResetField(name string) error {
	switch name {
	case pipelinestage.FieldName:
		m.ResetName()
		return nil
	case pipelinestage.FieldStageOrder:
		m.ResetStageOrder()
		return nil
	case pipelinestage.FieldEnabled:
		m.ResetEnabled()
		return nil
	}
	return fmt.Errorf("unknown PipelineStage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineStageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineStageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineStageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineStageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineStageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineStageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineStageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineStage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineStageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineStage edge %s", name)
}

// ProcessTrackingMutation represents an operation that mutates the ProcessTracking nodes in the graph.
type ProcessTrackingMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	status                   *processtracking.Status
	progress_percent         *int
	addprogress_percent      *int
	categories_total         *int
	addcategories_total      *int
	categories_completed     *int
	addcategories_completed  *int
	estimated_completion_at  *time.Time
	collecting_started_at    *time.Time
	collecting_completed_at  *time.Time
	verifying_started_at     *time.Time
	verifying_completed_at   *time.Time
	merging_started_at       *time.Time
	merging_completed_at     *time.Time
	summarizing_started_at   *time.Time
	summarizing_completed_at *time.Time
	error_details            *string
	deleted_at               *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	request                  *string
	clearedrequest           bool
	done                     bool
	oldValue                 func(context.Context) (*ProcessTracking, error)
	predicates               []predicate.ProcessTracking
}

var _ ent.Mutation = (*ProcessTrackingMutation)(nil)

// processtrackingOption allows management of the mutation configuration using functional options.
type processtrackingOption func(*ProcessTrackingMutation)

// newProcessTrackingMutation creates new mutation for the ProcessTracking entity.
func newProcessTrackingMutation(c config, op Op, opts ...processtrackingOption) *ProcessTrackingMutation {
	m := &ProcessTrackingMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessTracking,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessTrackingID sets the ID field of the mutation.
func withProcessTrackingID(id string) processtrackingOption {
	return func(m *ProcessTrackingMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessTracking
		)
		m.oldValue = func(ctx context.Context) (*ProcessTracking, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessTracking.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessTracking sets the old ProcessTracking of the mutation.
func withProcessTracking(node *ProcessTracking) processtrackingOption {
	return func(m *ProcessTrackingMutation) {
		m.oldValue = func(context.Context) (*ProcessTracking, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessTrackingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessTrackingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessTracking entities.
func (m *ProcessTrackingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessTrackingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessTrackingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessTracking.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *ProcessTrackingMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *ProcessTrackingMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *ProcessTrackingMutation) ResetRequestID() {
	m.request = nil
}

// SetStatus sets the "status" field.
func (m *ProcessTrackingMutation) SetStatus(pr processtracking.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessTrackingMutation) Status() (r processtracking.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldStatus(ctx context.Context) (v processtracking.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessTrackingMutation) ResetStatus() {
	m.status = nil
}

// SetProgressPercent sets the "progress_percent" field.
func (m *ProcessTrackingMutation) SetProgressPercent(i int) {
	m.progress_percent = &i
	m.addprogress_percent = nil
}

// ProgressPercent returns the value of the "progress_percent" field in the mutation.
func (m *ProcessTrackingMutation) ProgressPercent() (r int, exists bool) {
	v := m.progress_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercent returns the old "progress_percent" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldProgressPercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercent: %w", err)
	}
	return oldValue.ProgressPercent, nil
}

// AddProgressPercent adds i to the "progress_percent" field.
func (m *ProcessTrackingMutation) AddProgressPercent(i int) {
	if m.addprogress_percent != nil {
		*m.addprogress_percent += i
	} else {
		m.addprogress_percent = &i
	}
}

// AddedProgressPercent returns the value that was added to the "progress_percent" field in this mutation.
func (m *ProcessTrackingMutation) AddedProgressPercent() (r int, exists bool) {
	v := m.addprogress_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercent resets all changes to the "progress_percent" field.
func (m *ProcessTrackingMutation) ResetProgressPercent() {
	m.progress_percent = nil
	m.addprogress_percent = nil
}

// SetCategoriesTotal sets the "categories_total" field.
func (m *ProcessTrackingMutation) SetCategoriesTotal(i int) {
	m.categories_total = &i
	m.addcategories_total = nil
}

// CategoriesTotal returns the value of the "categories_total" field in the mutation.
func (m *ProcessTrackingMutation) CategoriesTotal() (r int, exists bool) {
	v := m.categories_total
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoriesTotal returns the old "categories_total" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldCategoriesTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoriesTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoriesTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoriesTotal: %w", err)
	}
	return oldValue.CategoriesTotal, nil
}

// AddCategoriesTotal adds i to the "categories_total" field.
func (m *ProcessTrackingMutation) AddCategoriesTotal(i int) {
	if m.addcategories_total != nil {
		*m.addcategories_total += i
	} else {
		m.addcategories_total = &i
	}
}

// AddedCategoriesTotal returns the value that was added to the "categories_total" field in this mutation.
func (m *ProcessTrackingMutation) AddedCategoriesTotal() (r int, exists bool) {
	v := m.addcategories_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetCategoriesTotal resets all changes to the "categories_total" field.
func (m *ProcessTrackingMutation) ResetCategoriesTotal() {
	m.categories_total = nil
	m.addcategories_total = nil
}

// SetCategoriesCompleted sets the "categories_completed" field.
func (m *ProcessTrackingMutation) SetCategoriesCompleted(i int) {
	m.categories_completed = &i
	m.addcategories_completed = nil
}

// CategoriesCompleted returns the value of the "categories_completed" field in the mutation.
func (m *ProcessTrackingMutation) CategoriesCompleted() (r int, exists bool) {
	v := m.categories_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoriesCompleted returns the old "categories_completed" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldCategoriesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoriesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoriesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoriesCompleted: %w", err)
	}
	return oldValue.CategoriesCompleted, nil
}

// AddCategoriesCompleted adds i to the "categories_completed" field.
func (m *ProcessTrackingMutation) AddCategoriesCompleted(i int) {
	if m.addcategories_completed != nil {
		*m.addcategories_completed += i
	} else {
		m.addcategories_completed = &i
	}
}

// AddedCategoriesCompleted returns the value that was added to the "categories_completed" field in this mutation.
func (m *ProcessTrackingMutation) AddedCategoriesCompleted() (r int, exists bool) {
	v := m.addcategories_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetCategoriesCompleted resets all changes to the "categories_completed" field.
func (m *ProcessTrackingMutation) ResetCategoriesCompleted() {
	m.categories_completed = nil
	m.addcategories_completed = nil
}

// SetEstimatedCompletionAt sets the "estimated_completion_at" field.
func (m *ProcessTrackingMutation) SetEstimatedCompletionAt(t time.Time) {
	m.estimated_completion_at = &t
}

// EstimatedCompletionAt returns the value of the "estimated_completion_at" field in the mutation.
func (m *ProcessTrackingMutation) EstimatedCompletionAt() (r time.Time, exists bool) {
	v := m.estimated_completion_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCompletionAt returns the old "estimated_completion_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldEstimatedCompletionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCompletionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCompletionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCompletionAt: %w", err)
	}
	return oldValue.EstimatedCompletionAt, nil
}

// ClearEstimatedCompletionAt clears the value of the "estimated_completion_at" field.
func (m *ProcessTrackingMutation) ClearEstimatedCompletionAt() {
	m.estimated_completion_at = nil
	m.clearedFields[processtracking.FieldEstimatedCompletionAt] = struct{}{}
}

// EstimatedCompletionAtCleared returns if the "estimated_completion_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) EstimatedCompletionAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldEstimatedCompletionAt]
	return ok
}

// ResetEstimatedCompletionAt resets all changes to the "estimated_completion_at" field.
func (m *ProcessTrackingMutation) ResetEstimatedCompletionAt() {
	m.estimated_completion_at = nil
	delete(m.clearedFields, processtracking.FieldEstimatedCompletionAt)
}

// SetCollectingStartedAt sets the "collecting_started_at" field.
func (m *ProcessTrackingMutation) SetCollectingStartedAt(t time.Time) {
	m.collecting_started_at = &t
}

// CollectingStartedAt returns the value of the "collecting_started_at" field in the mutation.
func (m *ProcessTrackingMutation) CollectingStartedAt() (r time.Time, exists bool) {
	v := m.collecting_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectingStartedAt returns the old "collecting_started_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldCollectingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectingStartedAt: %w", err)
	}
	return oldValue.CollectingStartedAt, nil
}

// ClearCollectingStartedAt clears the value of the "collecting_started_at" field.
func (m *ProcessTrackingMutation) ClearCollectingStartedAt() {
	m.collecting_started_at = nil
	m.clearedFields[processtracking.FieldCollectingStartedAt] = struct{}{}
}

// CollectingStartedAtCleared returns if the "collecting_started_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) CollectingStartedAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldCollectingStartedAt]
	return ok
}

// ResetCollectingStartedAt resets all changes to the "collecting_started_at" field.
func (m *ProcessTrackingMutation) ResetCollectingStartedAt() {
	m.collecting_started_at = nil
	delete(m.clearedFields, processtracking.FieldCollectingStartedAt)
}

// SetCollectingCompletedAt sets the "collecting_completed_at" field.
func (m *ProcessTrackingMutation) SetCollectingCompletedAt(t time.Time) {
	m.collecting_completed_at = &t
}

// CollectingCompletedAt returns the value of the "collecting_completed_at" field in the mutation.
func (m *ProcessTrackingMutation) CollectingCompletedAt() (r time.Time, exists bool) {
	v := m.collecting_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCollectingCompletedAt returns the old "collecting_completed_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldCollectingCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCollectingCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCollectingCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCollectingCompletedAt: %w", err)
	}
	return oldValue.CollectingCompletedAt, nil
}

// ClearCollectingCompletedAt clears the value of the "collecting_completed_at" field.
func (m *ProcessTrackingMutation) ClearCollectingCompletedAt() {
	m.collecting_completed_at = nil
	m.clearedFields[processtracking.FieldCollectingCompletedAt] = struct{}{}
}

// CollectingCompletedAtCleared returns if the "collecting_completed_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) CollectingCompletedAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldCollectingCompletedAt]
	return ok
}

// ResetCollectingCompletedAt resets all changes to the "collecting_completed_at" field.
func (m *ProcessTrackingMutation) ResetCollectingCompletedAt() {
	m.collecting_completed_at = nil
	delete(m.clearedFields, processtracking.FieldCollectingCompletedAt)
}

// SetVerifyingStartedAt sets the "verifying_started_at" field.
func (m *ProcessTrackingMutation) SetVerifyingStartedAt(t time.Time) {
	m.verifying_started_at = &t
}

// VerifyingStartedAt returns the value of the "verifying_started_at" field in the mutation.
func (m *ProcessTrackingMutation) VerifyingStartedAt() (r time.Time, exists bool) {
	v := m.verifying_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifyingStartedAt returns the old "verifying_started_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldVerifyingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifyingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifyingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifyingStartedAt: %w", err)
	}
	return oldValue.VerifyingStartedAt, nil
}

// ClearVerifyingStartedAt clears the value of the "verifying_started_at" field.
func (m *ProcessTrackingMutation) ClearVerifyingStartedAt() {
	m.verifying_started_at = nil
	m.clearedFields[processtracking.FieldVerifyingStartedAt] = struct{}{}
}

// VerifyingStartedAtCleared returns if the "verifying_started_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) VerifyingStartedAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldVerifyingStartedAt]
	return ok
}

// ResetVerifyingStartedAt resets all changes to the "verifying_started_at" field.
func (m *ProcessTrackingMutation) ResetVerifyingStartedAt() {
	m.verifying_started_at = nil
	delete(m.clearedFields, processtracking.FieldVerifyingStartedAt)
}

// SetVerifyingCompletedAt sets the "verifying_completed_at" field.
func (m *ProcessTrackingMutation) SetVerifyingCompletedAt(t time.Time) {
	m.verifying_completed_at = &t
}

// VerifyingCompletedAt returns the value of the "verifying_completed_at" field in the mutation.
func (m *ProcessTrackingMutation) VerifyingCompletedAt() (r time.Time, exists bool) {
	v := m.verifying_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVerifyingCompletedAt returns the old "verifying_completed_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldVerifyingCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerifyingCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerifyingCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerifyingCompletedAt: %w", err)
	}
	return oldValue.VerifyingCompletedAt, nil
}

// ClearVerifyingCompletedAt clears the value of the "verifying_completed_at" field.
func (m *ProcessTrackingMutation) ClearVerifyingCompletedAt() {
	m.verifying_completed_at = nil
	m.clearedFields[processtracking.FieldVerifyingCompletedAt] = struct{}{}
}

// VerifyingCompletedAtCleared returns if the "verifying_completed_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) VerifyingCompletedAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldVerifyingCompletedAt]
	return ok
}

// ResetVerifyingCompletedAt resets all changes to the "verifying_completed_at" field.
func (m *ProcessTrackingMutation) ResetVerifyingCompletedAt() {
	m.verifying_completed_at = nil
	delete(m.clearedFields, processtracking.FieldVerifyingCompletedAt)
}

// SetMergingStartedAt sets the "merging_started_at" field.
func (m *ProcessTrackingMutation) SetMergingStartedAt(t time.Time) {
	m.merging_started_at = &t
}

// MergingStartedAt returns the value of the "merging_started_at" field in the mutation.
func (m *ProcessTrackingMutation) MergingStartedAt() (r time.Time, exists bool) {
	v := m.merging_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMergingStartedAt returns the old "merging_started_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldMergingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergingStartedAt: %w", err)
	}
	return oldValue.MergingStartedAt, nil
}

// ClearMergingStartedAt clears the value of the "merging_started_at" field.
func (m *ProcessTrackingMutation) ClearMergingStartedAt() {
	m.merging_started_at = nil
	m.clearedFields[processtracking.FieldMergingStartedAt] = struct{}{}
}

// MergingStartedAtCleared returns if the "merging_started_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) MergingStartedAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldMergingStartedAt]
	return ok
}

// ResetMergingStartedAt resets all changes to the "merging_started_at" field.
func (m *ProcessTrackingMutation) ResetMergingStartedAt() {
	m.merging_started_at = nil
	delete(m.clearedFields, processtracking.FieldMergingStartedAt)
}

// SetMergingCompletedAt sets the "merging_completed_at" field.
func (m *ProcessTrackingMutation) SetMergingCompletedAt(t time.Time) {
	m.merging_completed_at = &t
}

// MergingCompletedAt returns the value of the "merging_completed_at" field in the mutation.
func (m *ProcessTrackingMutation) MergingCompletedAt() (r time.Time, exists bool) {
	v := m.merging_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMergingCompletedAt returns the old "merging_completed_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldMergingCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergingCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergingCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergingCompletedAt: %w", err)
	}
	return oldValue.MergingCompletedAt, nil
}

// ClearMergingCompletedAt clears the value of the "merging_completed_at" field.
func (m *ProcessTrackingMutation) ClearMergingCompletedAt() {
	m.merging_completed_at = nil
	m.clearedFields[processtracking.FieldMergingCompletedAt] = struct{}{}
}

// MergingCompletedAtCleared returns if the "merging_completed_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) MergingCompletedAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldMergingCompletedAt]
	return ok
}

// ResetMergingCompletedAt resets all changes to the "merging_completed_at" field.
func (m *ProcessTrackingMutation) ResetMergingCompletedAt() {
	m.merging_completed_at = nil
	delete(m.clearedFields, processtracking.FieldMergingCompletedAt)
}

// SetSummarizingStartedAt sets the "summarizing_started_at" field.
func (m *ProcessTrackingMutation) SetSummarizingStartedAt(t time.Time) {
	m.summarizing_started_at = &t
}

// SummarizingStartedAt returns the value of the "summarizing_started_at" field in the mutation.
func (m *ProcessTrackingMutation) SummarizingStartedAt() (r time.Time, exists bool) {
	v := m.summarizing_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSummarizingStartedAt returns the old "summarizing_started_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldSummarizingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummarizingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummarizingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummarizingStartedAt: %w", err)
	}
	return oldValue.SummarizingStartedAt, nil
}

// ClearSummarizingStartedAt clears the value of the "summarizing_started_at" field.
func (m *ProcessTrackingMutation) ClearSummarizingStartedAt() {
	m.summarizing_started_at = nil
	m.clearedFields[processtracking.FieldSummarizingStartedAt] = struct{}{}
}

// SummarizingStartedAtCleared returns if the "summarizing_started_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) SummarizingStartedAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldSummarizingStartedAt]
	return ok
}

// ResetSummarizingStartedAt resets all changes to the "summarizing_started_at" field.
func (m *ProcessTrackingMutation) ResetSummarizingStartedAt() {
	m.summarizing_started_at = nil
	delete(m.clearedFields, processtracking.FieldSummarizingStartedAt)
}

// SetSummarizingCompletedAt sets the "summarizing_completed_at" field.
func (m *ProcessTrackingMutation) SetSummarizingCompletedAt(t time.Time) {
	m.summarizing_completed_at = &t
}

// SummarizingCompletedAt returns the value of the "summarizing_completed_at" field in the mutation.
func (m *ProcessTrackingMutation) SummarizingCompletedAt() (r time.Time, exists bool) {
	v := m.summarizing_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSummarizingCompletedAt returns the old "summarizing_completed_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldSummarizingCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummarizingCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummarizingCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummarizingCompletedAt: %w", err)
	}
	return oldValue.SummarizingCompletedAt, nil
}

// ClearSummarizingCompletedAt clears the value of the "summarizing_completed_at" field.
func (m *ProcessTrackingMutation) ClearSummarizingCompletedAt() {
	m.summarizing_completed_at = nil
	m.clearedFields[processtracking.FieldSummarizingCompletedAt] = struct{}{}
}

// SummarizingCompletedAtCleared returns if the "summarizing_completed_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) SummarizingCompletedAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldSummarizingCompletedAt]
	return ok
}

// ResetSummarizingCompletedAt resets all changes to the "summarizing_completed_at" field.
func (m *ProcessTrackingMutation) ResetSummarizingCompletedAt() {
	m.summarizing_completed_at = nil
	delete(m.clearedFields, processtracking.FieldSummarizingCompletedAt)
}

// SetErrorDetails sets the "error_details" field.
func (m *ProcessTrackingMutation) SetErrorDetails(s string) {
	m.error_details = &s
}

// ErrorDetails returns the value of the "error_details" field in the mutation.
func (m *ProcessTrackingMutation) ErrorDetails() (r string, exists bool) {
	v := m.error_details
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetails returns the old "error_details" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldErrorDetails(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetails: %w", err)
	}
	return oldValue.ErrorDetails, nil
}

// ClearErrorDetails clears the value of the "error_details" field.
func (m *ProcessTrackingMutation) ClearErrorDetails() {
	m.error_details = nil
	m.clearedFields[processtracking.FieldErrorDetails] = struct{}{}
}

// ErrorDetailsCleared returns if the "error_details" field was cleared in this mutation.
func (m *ProcessTrackingMutation) ErrorDetailsCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldErrorDetails]
	return ok
}

// ResetErrorDetails resets all changes to the "error_details" field.
func (m *ProcessTrackingMutation) ResetErrorDetails() {
	m.error_details = nil
	delete(m.clearedFields, processtracking.FieldErrorDetails)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ProcessTrackingMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ProcessTrackingMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ProcessTrackingMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[processtracking.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ProcessTrackingMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[processtracking.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ProcessTrackingMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, processtracking.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessTrackingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessTrackingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessTrackingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProcessTrackingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProcessTrackingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProcessTracking entity.
// If the ProcessTracking object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessTrackingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProcessTrackingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRequest clears the "request" edge to the AnalysisRequest entity.
func (m *ProcessTrackingMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[processtracking.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the AnalysisRequest entity was cleared.
func (m *ProcessTrackingMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *ProcessTrackingMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *ProcessTrackingMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the ProcessTrackingMutation builder.
func (m *ProcessTrackingMutation) Where(ps ...predicate.ProcessTracking) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessTrackingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessTrackingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessTracking, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessTrackingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessTrackingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessTracking).
func (m *ProcessTrackingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessTrackingMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.request != nil {
		fields = append(fields, processtracking.FieldRequestID)
	}
	if m.status != nil {
		fields = append(fields, processtracking.FieldStatus)
	}
	if m.progress_percent != nil {
		fields = append(fields, processtracking.FieldProgressPercent)
	}
	if m.categories_total != nil {
		fields = append(fields, processtracking.FieldCategoriesTotal)
	}
	if m.categories_completed != nil {
		fields = append(fields, processtracking.FieldCategoriesCompleted)
	}
	if m.estimated_completion_at != nil {
		fields = append(fields, processtracking.FieldEstimatedCompletionAt)
	}
	if m.collecting_started_at != nil {
		fields = append(fields, processtracking.FieldCollectingStartedAt)
	}
	if m.collecting_completed_at != nil {
		fields = append(fields, processtracking.FieldCollectingCompletedAt)
	}
	if m.verifying_started_at != nil {
		fields = append(fields, processtracking.FieldVerifyingStartedAt)
	}
	if m.verifying_completed_at != nil {
		fields = append(fields, processtracking.FieldVerifyingCompletedAt)
	}
	if m.merging_started_at != nil {
		fields = append(fields, processtracking.FieldMergingStartedAt)
	}
	if m.merging_completed_at != nil {
		fields = append(fields, processtracking.FieldMergingCompletedAt)
	}
	if m.summarizing_started_at != nil {
		fields = append(fields, processtracking.FieldSummarizingStartedAt)
	}
	if m.summarizing_completed_at != nil {
		fields = append(fields, processtracking.FieldSummarizingCompletedAt)
	}
	if m.error_details != nil {
		fields = append(fields, processtracking.FieldErrorDetails)
	}
	if m.deleted_at != nil {
		fields = append(fields, processtracking.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, processtracking.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, processtracking.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessTrackingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processtracking.FieldRequestID:
		return m.RequestID()
	case processtracking.FieldStatus:
		return m.Status()
	case processtracking.FieldProgressPercent:
		return m.ProgressPercent()
	case processtracking.FieldCategoriesTotal:
		return m.CategoriesTotal()
	case processtracking.FieldCategoriesCompleted:
		return m.CategoriesCompleted()
	case processtracking.FieldEstimatedCompletionAt:
		return m.EstimatedCompletionAt()
	case processtracking.FieldCollectingStartedAt:
		return m.CollectingStartedAt()
	case processtracking.FieldCollectingCompletedAt:
		return m.CollectingCompletedAt()
	case processtracking.FieldVerifyingStartedAt:
		return m.VerifyingStartedAt()
	case processtracking.FieldVerifyingCompletedAt:
		return m.VerifyingCompletedAt()
	case processtracking.FieldMergingStartedAt:
		return m.MergingStartedAt()
	case processtracking.FieldMergingCompletedAt:
		return m.MergingCompletedAt()
	case processtracking.FieldSummarizingStartedAt:
		return m.SummarizingStartedAt()
	case processtracking.FieldSummarizingCompletedAt:
		return m.SummarizingCompletedAt()
	case processtracking.FieldErrorDetails:
		return m.ErrorDetails()
	case processtracking.FieldDeletedAt:
		return m.DeletedAt()
	case processtracking.FieldCreatedAt:
		return m.CreatedAt()
	case processtracking.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessTrackingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processtracking.FieldRequestID:
		return m.OldRequestID(ctx)
	case processtracking.FieldStatus:
		return m.OldStatus(ctx)
	case processtracking.FieldProgressPercent:
		return m.OldProgressPercent(ctx)
	case processtracking.FieldCategoriesTotal:
		return m.OldCategoriesTotal(ctx)
	case processtracking.FieldCategoriesCompleted:
		return m.OldCategoriesCompleted(ctx)
	case processtracking.FieldEstimatedCompletionAt:
		return m.OldEstimatedCompletionAt(ctx)
	case processtracking.FieldCollectingStartedAt:
		return m.OldCollectingStartedAt(ctx)
	case processtracking.FieldCollectingCompletedAt:
		return m.OldCollectingCompletedAt(ctx)
	case processtracking.FieldVerifyingStartedAt:
		return m.OldVerifyingStartedAt(ctx)
	case processtracking.FieldVerifyingCompletedAt:
		return m.OldVerifyingCompletedAt(ctx)
	case processtracking.FieldMergingStartedAt:
		return m.OldMergingStartedAt(ctx)
	case processtracking.FieldMergingCompletedAt:
		return m.OldMergingCompletedAt(ctx)
	case processtracking.FieldSummarizingStartedAt:
		return m.OldSummarizingStartedAt(ctx)
	case processtracking.FieldSummarizingCompletedAt:
		return m.OldSummarizingCompletedAt(ctx)
	case processtracking.FieldErrorDetails:
		return m.OldErrorDetails(ctx)
	case processtracking.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case processtracking.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processtracking.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessTracking field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessTrackingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processtracking.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case processtracking.FieldStatus:
		v, ok := value.(processtracking.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processtracking.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercent(v)
		return nil
	case processtracking.FieldCategoriesTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoriesTotal(v)
		return nil
	case processtracking.FieldCategoriesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoriesCompleted(v)
		return nil
	case processtracking.FieldEstimatedCompletionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCompletionAt(v)
		return nil
	case processtracking.FieldCollectingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectingStartedAt(v)
		return nil
	case processtracking.FieldCollectingCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCollectingCompletedAt(v)
		return nil
	case processtracking.FieldVerifyingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifyingStartedAt(v)
		return nil
	case processtracking.FieldVerifyingCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerifyingCompletedAt(v)
		return nil
	case processtracking.FieldMergingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergingStartedAt(v)
		return nil
	case processtracking.FieldMergingCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergingCompletedAt(v)
		return nil
	case processtracking.FieldSummarizingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummarizingStartedAt(v)
		return nil
	case processtracking.FieldSummarizingCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummarizingCompletedAt(v)
		return nil
	case processtracking.FieldErrorDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetails(v)
		return nil
	case processtracking.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case processtracking.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processtracking.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessTracking field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessTrackingMutation) AddedFields() []string {
	var fields []string
	if m.addprogress_percent != nil {
		fields = append(fields, processtracking.FieldProgressPercent)
	}
	if m.addcategories_total != nil {
		fields = append(fields, processtracking.FieldCategoriesTotal)
	}
	if m.addcategories_completed != nil {
		fields = append(fields, processtracking.FieldCategoriesCompleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessTrackingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processtracking.FieldProgressPercent:
		return m.AddedProgressPercent()
	case processtracking.FieldCategoriesTotal:
		return m.AddedCategoriesTotal()
	case processtracking.FieldCategoriesCompleted:
		return m.AddedCategoriesCompleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessTrackingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processtracking.FieldProgressPercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercent(v)
		return nil
	case processtracking.FieldCategoriesTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCategoriesTotal(v)
		return nil
	case processtracking.FieldCategoriesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCategoriesCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessTracking numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessTrackingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processtracking.FieldEstimatedCompletionAt) {
		fields = append(fields, processtracking.FieldEstimatedCompletionAt)
	}
	if m.FieldCleared(processtracking.FieldCollectingStartedAt) {
		fields = append(fields, processtracking.FieldCollectingStartedAt)
	}
	if m.FieldCleared(processtracking.FieldCollectingCompletedAt) {
		fields = append(fields, processtracking.FieldCollectingCompletedAt)
	}
	if m.FieldCleared(processtracking.FieldVerifyingStartedAt) {
		fields = append(fields, processtracking.FieldVerifyingStartedAt)
	}
	if m.FieldCleared(processtracking.FieldVerifyingCompletedAt) {
		fields = append(fields, processtracking.FieldVerifyingCompletedAt)
	}
	if m.FieldCleared(processtracking.FieldMergingStartedAt) {
		fields = append(fields, processtracking.FieldMergingStartedAt)
	}
	if m.FieldCleared(processtracking.FieldMergingCompletedAt) {
		fields = append(fields, processtracking.FieldMergingCompletedAt)
	}
	if m.FieldCleared(processtracking.FieldSummarizingStartedAt) {
		fields = append(fields, processtracking.FieldSummarizingStartedAt)
	}
	if m.FieldCleared(processtracking.FieldSummarizingCompletedAt) {
		fields = append(fields, processtracking.FieldSummarizingCompletedAt)
	}
	if m.FieldCleared(processtracking.FieldErrorDetails) {
		fields = append(fields, processtracking.FieldErrorDetails)
	}
	if m.FieldCleared(processtracking.FieldDeletedAt) {
		fields = append(fields, processtracking.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessTrackingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessTrackingMutation) ClearField(name string) error {
	switch name {
	case processtracking.FieldEstimatedCompletionAt:
		m.ClearEstimatedCompletionAt()
		return nil
	case processtracking.FieldCollectingStartedAt:
		m.ClearCollectingStartedAt()
		return nil
	case processtracking.FieldCollectingCompletedAt:
		m.ClearCollectingCompletedAt()
		return nil
	case processtracking.FieldVerifyingStartedAt:
		m.ClearVerifyingStartedAt()
		return nil
	case processtracking.FieldVerifyingCompletedAt:
		m.ClearVerifyingCompletedAt()
		return nil
	case processtracking.FieldMergingStartedAt:
		m.ClearMergingStartedAt()
		return nil
	case processtracking.FieldMergingCompletedAt:
		m.ClearMergingCompletedAt()
		return nil
	case processtracking.FieldSummarizingStartedAt:
		m.ClearSummarizingStartedAt()
		return nil
	case processtracking.FieldSummarizingCompletedAt:
		m.ClearSummarizingCompletedAt()
		return nil
	case processtracking.FieldErrorDetails:
		m.ClearErrorDetails()
		return nil
	case processtracking.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessTracking nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessTrackingMutation) ResetField(name string) error {
	switch name {
	case processtracking.FieldRequestID:
		m.ResetRequestID()
		return nil
	case processtracking.FieldStatus:
		m.ResetStatus()
		return nil
	case processtracking.FieldProgressPercent:
		m.ResetProgressPercent()
		return nil
	case processtracking.FieldCategoriesTotal:
		m.ResetCategoriesTotal()
		return nil
	case processtracking.FieldCategoriesCompleted:
		m.ResetCategoriesCompleted()
		return nil
	case processtracking.FieldEstimatedCompletionAt:
		m.ResetEstimatedCompletionAt()
		return nil
	case processtracking.FieldCollectingStartedAt:
		m.ResetCollectingStartedAt()
		return nil
	case processtracking.FieldCollectingCompletedAt:
		m.ResetCollectingCompletedAt()
		return nil
	case processtracking.FieldVerifyingStartedAt:
		m.ResetVerifyingStartedAt()
		return nil
	case processtracking.FieldVerifyingCompletedAt:
		m.ResetVerifyingCompletedAt()
		return nil
	case processtracking.FieldMergingStartedAt:
		m.ResetMergingStartedAt()
		return nil
	case processtracking.FieldMergingCompletedAt:
		m.ResetMergingCompletedAt()
		return nil
	case processtracking.FieldSummarizingStartedAt:
		m.ResetSummarizingStartedAt()
		return nil
	case processtracking.FieldSummarizingCompletedAt:
		m.ResetSummarizingCompletedAt()
		return nil
	case processtracking.FieldErrorDetails:
		m.ResetErrorDetails()
		return nil
	case processtracking.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case processtracking.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processtracking.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessTracking field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessTrackingMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, processtracking.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessTrackingMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processtracking.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessTrackingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessTrackingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessTrackingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, processtracking.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessTrackingMutation) EdgeCleared(name string) bool {
	switch name {
	case processtracking.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessTrackingMutation) ClearEdge(name string) error {
	switch name {
	case processtracking.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown ProcessTracking unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessTrackingMutation) ResetEdge(name string) error {
	switch name {
	case processtracking.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown ProcessTracking edge %s", name)
}

// ProviderResponseMutation represents an operation that mutates the ProviderResponse nodes in the graph.
type ProviderResponseMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	provider               *string
	model                  *string
	temperature            *float64
	addtemperature         *float64
	query_parameters       *map[string]interface{}
	raw_text               *string
	cited_urls             *[]string
	appendcited_urls       []string
	latency_ms             *int
	addlatency_ms          *int
	token_count            *int
	addtoken_count         *int
	cost                   *float64
	addcost                *float64
	checksum               *string
	created_at             *time.Time
	retention_expires_at   *time.Time
	clearedFields          map[string]struct{}
	category_result        *string
	clearedcategory_result bool
	done                   bool
	oldValue               func(context.Context) (*ProviderResponse, error)
	predicates             []predicate.ProviderResponse
}

var _ ent.Mutation = (*ProviderResponseMutation)(nil)

// providerresponseOption allows management of the mutation configuration using functional options.
type providerresponseOption func(*ProviderResponseMutation)

// newProviderResponseMutation creates new mutation for the ProviderResponse entity.
func newProviderResponseMutation(c config, op Op, opts ...providerresponseOption) *ProviderResponseMutation {
	m := &ProviderResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeProviderResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProviderResponseID sets the ID field of the mutation.
func withProviderResponseID(id string) providerresponseOption {
	return func(m *ProviderResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *ProviderResponse
		)
		m.oldValue = func(ctx context.Context) (*ProviderResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProviderResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProviderResponse sets the old ProviderResponse of the mutation.
func withProviderResponse(node *ProviderResponse) providerresponseOption {
	return func(m *ProviderResponseMutation) {
		m.oldValue = func(context.Context) (*ProviderResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProviderResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProviderResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProviderResponse entities.
func (m *ProviderResponseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProviderResponseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProviderResponseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProviderResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategoryResultID sets the "category_result_id" field.
func (m *ProviderResponseMutation) SetCategoryResultID(s string) {
	m.category_result = &s
}

// CategoryResultID returns the value of the "category_result_id" field in the mutation.
func (m *ProviderResponseMutation) CategoryResultID() (r string, exists bool) {
	v := m.category_result
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryResultID returns the old "category_result_id" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldCategoryResultID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryResultID: %w", err)
	}
	return oldValue.CategoryResultID, nil
}

// ResetCategoryResultID resets all changes to the "category_result_id" field.
func (m *ProviderResponseMutation) ResetCategoryResultID() {
	m.category_result = nil
}

// SetProvider sets the "provider" field.
func (m *ProviderResponseMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *ProviderResponseMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *ProviderResponseMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *ProviderResponseMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ProviderResponseMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ProviderResponseMutation) ResetModel() {
	m.model = nil
}

// SetTemperature sets the "temperature" field.
func (m *ProviderResponseMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *ProviderResponseMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *ProviderResponseMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *ProviderResponseMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *ProviderResponseMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[providerresponse.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *ProviderResponseMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *ProviderResponseMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, providerresponse.FieldTemperature)
}

// SetQueryParameters sets the "query_parameters" field.
func (m *ProviderResponseMutation) SetQueryParameters(value map[string]interface{}) {
	m.query_parameters = &value
}

// QueryParameters returns the value of the "query_parameters" field in the mutation.
func (m *ProviderResponseMutation) QueryParameters() (r map[string]interface{}, exists bool) {
	v := m.query_parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryParameters returns the old "query_parameters" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldQueryParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryParameters: %w", err)
	}
	return oldValue.QueryParameters, nil
}

// ClearQueryParameters clears the value of the "query_parameters" field.
func (m *ProviderResponseMutation) ClearQueryParameters() {
	m.query_parameters = nil
	m.clearedFields[providerresponse.FieldQueryParameters] = struct{}{}
}

// QueryParametersCleared returns if the "query_parameters" field was cleared in this mutation.
func (m *ProviderResponseMutation) QueryParametersCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldQueryParameters]
	return ok
}

// ResetQueryParameters resets all changes to the "query_parameters" field.
func (m *ProviderResponseMutation) ResetQueryParameters() {
	m.query_parameters = nil
	delete(m.clearedFields, providerresponse.FieldQueryParameters)
}

// SetRawText sets the "raw_text" field.
func (m *ProviderResponseMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ProviderResponseMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ProviderResponseMutation) ResetRawText() {
	m.raw_text = nil
}

// SetCitedUrls sets the "cited_urls" field.
func (m *ProviderResponseMutation) SetCitedUrls(s []string) {
	m.cited_urls = &s
	m.appendcited_urls = nil
}

// CitedUrls returns the value of the "cited_urls" field in the mutation.
func (m *ProviderResponseMutation) CitedUrls() (r []string, exists bool) {
	v := m.cited_urls
	if v == nil {
		return
	}
	return *v, true
}

// OldCitedUrls returns the old "cited_urls" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldCitedUrls(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitedUrls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitedUrls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitedUrls: %w", err)
	}
	return oldValue.CitedUrls, nil
}

// AppendCitedUrls adds s to the "cited_urls" field.
func (m *ProviderResponseMutation) AppendCitedUrls(s []string) {
	m.appendcited_urls = append(m.appendcited_urls, s...)
}

// AppendedCitedUrls returns the list of values that were appended to the "cited_urls" field in this mutation.
func (m *ProviderResponseMutation) AppendedCitedUrls() ([]string, bool) {
	if len(m.appendcited_urls) == 0 {
		return nil, false
	}
	return m.appendcited_urls, true
}

// ClearCitedUrls clears the value of the "cited_urls" field.
func (m *ProviderResponseMutation) ClearCitedUrls() {
	m.cited_urls = nil
	m.appendcited_urls = nil
	m.clearedFields[providerresponse.FieldCitedUrls] = struct{}{}
}

// CitedUrlsCleared returns if the "cited_urls" field was cleared in this mutation.
func (m *ProviderResponseMutation) CitedUrlsCleared() bool {
	_, ok := m.clearedFields[providerresponse.FieldCitedUrls]
	return ok
}

// ResetCitedUrls resets all changes to the "cited_urls" field.
func (m *ProviderResponseMutation) ResetCitedUrls() {
	m.cited_urls = nil
	m.appendcited_urls = nil
	delete(m.clearedFields, providerresponse.FieldCitedUrls)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *ProviderResponseMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *ProviderResponseMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *ProviderResponseMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *ProviderResponseMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *ProviderResponseMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetTokenCount sets the "token_count" field.
func (m *ProviderResponseMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *ProviderResponseMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *ProviderResponseMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *ProviderResponseMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *ProviderResponseMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetCost sets the "cost" field.
func (m *ProviderResponseMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *ProviderResponseMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *ProviderResponseMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *ProviderResponseMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ResetCost resets all changes to the "cost" field.
func (m *ProviderResponseMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
}

// SetChecksum sets the "checksum" field.
func (m *ProviderResponseMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *ProviderResponseMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *ProviderResponseMutation) ResetChecksum() {
	m.checksum = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProviderResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProviderResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProviderResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRetentionExpiresAt sets the "retention_expires_at" field.
func (m *ProviderResponseMutation) SetRetentionExpiresAt(t time.Time) {
	m.retention_expires_at = &t
}

// RetentionExpiresAt returns the value of the "retention_expires_at" field in the mutation.
func (m *ProviderResponseMutation) RetentionExpiresAt() (r time.Time, exists bool) {
	v := m.retention_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRetentionExpiresAt returns the old "retention_expires_at" field's value of the ProviderResponse entity.
// If the ProviderResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProviderResponseMutation) OldRetentionExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetentionExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetentionExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetentionExpiresAt: %w", err)
	}
	return oldValue.RetentionExpiresAt, nil
}

// ResetRetentionExpiresAt resets all changes to the "retention_expires_at" field.
func (m *ProviderResponseMutation) ResetRetentionExpiresAt() {
	m.retention_expires_at = nil
}

// ClearCategoryResult clears the "category_result" edge to the CategoryResult entity.
func (m *ProviderResponseMutation) ClearCategoryResult() {
	m.clearedcategory_result = true
	m.clearedFields[providerresponse.FieldCategoryResultID] = struct{}{}
}

// CategoryResultCleared reports if the "category_result" edge to the CategoryResult entity was cleared.
func (m *ProviderResponseMutation) CategoryResultCleared() bool {
	return m.clearedcategory_result
}

// CategoryResultIDs returns the "category_result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryResultID instead. It exists only for internal usage by the builders.
func (m *ProviderResponseMutation) CategoryResultIDs() (ids []string) {
	if id := m.category_result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategoryResult resets all changes to the "category_result" edge.
func (m *ProviderResponseMutation) ResetCategoryResult() {
	m.category_result = nil
	m.clearedcategory_result = false
}

// Where appends a list predicates to the ProviderResponseMutation builder.
func (m *ProviderResponseMutation) Where(ps ...predicate.ProviderResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProviderResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProviderResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProviderResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProviderResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProviderResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProviderResponse).
func (m *ProviderResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProviderResponseMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.category_result != nil {
		fields = append(fields, providerresponse.FieldCategoryResultID)
	}
	if m.provider != nil {
		fields = append(fields, providerresponse.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, providerresponse.FieldModel)
	}
	if m.temperature != nil {
		fields = append(fields, providerresponse.FieldTemperature)
	}
	if m.query_parameters != nil {
		fields = append(fields, providerresponse.FieldQueryParameters)
	}
	if m.raw_text != nil {
		fields = append(fields, providerresponse.FieldRawText)
	}
	if m.cited_urls != nil {
		fields = append(fields, providerresponse.FieldCitedUrls)
	}
	if m.latency_ms != nil {
		fields = append(fields, providerresponse.FieldLatencyMs)
	}
	if m.token_count != nil {
		fields = append(fields, providerresponse.FieldTokenCount)
	}
	if m.cost != nil {
		fields = append(fields, providerresponse.FieldCost)
	}
	if m.checksum != nil {
		fields = append(fields, providerresponse.FieldChecksum)
	}
	if m.created_at != nil {
		fields = append(fields, providerresponse.FieldCreatedAt)
	}
	if m.retention_expires_at != nil {
		fields = append(fields, providerresponse.FieldRetentionExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProviderResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case providerresponse.FieldCategoryResultID:
		return m.CategoryResultID()
	case providerresponse.FieldProvider:
		return m.Provider()
	case providerresponse.FieldModel:
		return m.Model()
	case providerresponse.FieldTemperature:
		return m.Temperature()
	case providerresponse.FieldQueryParameters:
		return m.QueryParameters()
	case providerresponse.FieldRawText:
		return m.RawText()
	case providerresponse.FieldCitedUrls:
		return m.CitedUrls()
	case providerresponse.FieldLatencyMs:
		return m.LatencyMs()
	case providerresponse.FieldTokenCount:
		return m.TokenCount()
	case providerresponse.FieldCost:
		return m.Cost()
	case providerresponse.FieldChecksum:
		return m.Checksum()
	case providerresponse.FieldCreatedAt:
		return m.CreatedAt()
	case providerresponse.FieldRetentionExpiresAt:
		return m.RetentionExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProviderResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case providerresponse.FieldCategoryResultID:
		return m.OldCategoryResultID(ctx)
	case providerresponse.FieldProvider:
		return m.OldProvider(ctx)
	case providerresponse.FieldModel:
		return m.OldModel(ctx)
	case providerresponse.FieldTemperature:
		return m.OldTemperature(ctx)
	case providerresponse.FieldQueryParameters:
		return m.OldQueryParameters(ctx)
	case providerresponse.FieldRawText:
		return m.OldRawText(ctx)
	case providerresponse.FieldCitedUrls:
		return m.OldCitedUrls(ctx)
	case providerresponse.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case providerresponse.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case providerresponse.FieldCost:
		return m.OldCost(ctx)
	case providerresponse.FieldChecksum:
		return m.OldChecksum(ctx)
	case providerresponse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case providerresponse.FieldRetentionExpiresAt:
		return m.OldRetentionExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProviderResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case providerresponse.FieldCategoryResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryResultID(v)
		return nil
	case providerresponse.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case providerresponse.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case providerresponse.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case providerresponse.FieldQueryParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryParameters(v)
		return nil
	case providerresponse.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case providerresponse.FieldCitedUrls:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitedUrls(v)
		return nil
	case providerresponse.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case providerresponse.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case providerresponse.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case providerresponse.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case providerresponse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case providerresponse.FieldRetentionExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetentionExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProviderResponseMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, providerresponse.FieldTemperature)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, providerresponse.FieldLatencyMs)
	}
	if m.addtoken_count != nil {
		fields = append(fields, providerresponse.FieldTokenCount)
	}
	if m.addcost != nil {
		fields = append(fields, providerresponse.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProviderResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case providerresponse.FieldTemperature:
		return m.AddedTemperature()
	case providerresponse.FieldLatencyMs:
		return m.AddedLatencyMs()
	case providerresponse.FieldTokenCount:
		return m.AddedTokenCount()
	case providerresponse.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProviderResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case providerresponse.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case providerresponse.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case providerresponse.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	case providerresponse.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProviderResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(providerresponse.FieldTemperature) {
		fields = append(fields, providerresponse.FieldTemperature)
	}
	if m.FieldCleared(providerresponse.FieldQueryParameters) {
		fields = append(fields, providerresponse.FieldQueryParameters)
	}
	if m.FieldCleared(providerresponse.FieldCitedUrls) {
		fields = append(fields, providerresponse.FieldCitedUrls)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProviderResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProviderResponseMutation) ClearField(name string) error {
	switch name {
	case providerresponse.FieldTemperature:
		m.ClearTemperature()
		return nil
	case providerresponse.FieldQueryParameters:
		m.ClearQueryParameters()
		return nil
	case providerresponse.FieldCitedUrls:
		m.ClearCitedUrls()
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProviderResponseMutation) ResetField(name string) error {
	switch name {
	case providerresponse.FieldCategoryResultID:
		m.ResetCategoryResultID()
		return nil
	case providerresponse.FieldProvider:
		m.ResetProvider()
		return nil
	case providerresponse.FieldModel:
		m.ResetModel()
		return nil
	case providerresponse.FieldTemperature:
		m.ResetTemperature()
		return nil
	case providerresponse.FieldQueryParameters:
		m.ResetQueryParameters()
		return nil
	case providerresponse.FieldRawText:
		m.ResetRawText()
		return nil
	case providerresponse.FieldCitedUrls:
		m.ResetCitedUrls()
		return nil
	case providerresponse.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case providerresponse.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case providerresponse.FieldCost:
		m.ResetCost()
		return nil
	case providerresponse.FieldChecksum:
		m.ResetChecksum()
		return nil
	case providerresponse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case providerresponse.FieldRetentionExpiresAt:
		m.ResetRetentionExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProviderResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.category_result != nil {
		edges = append(edges, providerresponse.EdgeCategoryResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProviderResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case providerresponse.EdgeCategoryResult:
		if id := m.category_result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProviderResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProviderResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProviderResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcategory_result {
		edges = append(edges, providerresponse.EdgeCategoryResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProviderResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case providerresponse.EdgeCategoryResult:
		return m.clearedcategory_result
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProviderResponseMutation) ClearEdge(name string) error {
	switch name {
	case providerresponse.EdgeCategoryResult:
		m.ClearCategoryResult()
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProviderResponseMutation) ResetEdge(name string) error {
	switch name {
	case providerresponse.EdgeCategoryResult:
		m.ResetCategoryResult()
		return nil
	}
	return fmt.Errorf("unknown ProviderResponse edge %s", name)
}

// RateBucketMutation represents an operation that mutates the RateBucket nodes in the graph.
type RateBucketMutation struct {
	config
	op            Op
	typ           string
	id            *string
	key           *string
	window_start  *time.Time
	count         *int
	addcount      *int
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RateBucket, error)
	predicates    []predicate.RateBucket
}

var _ ent.Mutation = (*RateBucketMutation)(nil)

// ratebucketOption allows management of the mutation configuration using functional options.
type ratebucketOption func(*RateBucketMutation)

// newRateBucketMutation creates new mutation for the RateBucket entity.
func newRateBucketMutation(c config, op Op, opts ...ratebucketOption) *RateBucketMutation {
	m := &RateBucketMutation{
		config:        c,
		op:            op,
		typ:           TypeRateBucket,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRateBucketID sets the ID field of the mutation.
func withRateBucketID(id string) ratebucketOption {
	return func(m *RateBucketMutation) {
		var (
			err   error
			once  sync.Once
			value *RateBucket
		)
		m.oldValue = func(ctx context.Context) (*RateBucket, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RateBucket.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRateBucket sets the old RateBucket of the mutation.
func withRateBucket(node *RateBucket) ratebucketOption {
	return func(m *RateBucketMutation) {
		m.oldValue = func(context.Context) (*RateBucket, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RateBucketMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RateBucketMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RateBucket entities.
func (m *RateBucketMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RateBucketMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RateBucketMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RateBucket.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *RateBucketMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *RateBucketMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the RateBucket entity.
// If the RateBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateBucketMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *RateBucketMutation) ResetKey() {
	m.key = nil
}

// SetWindowStart sets the "window_start" field.
func (m *RateBucketMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *RateBucketMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the RateBucket entity.
// If the RateBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateBucketMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *RateBucketMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetCount sets the "count" field.
func (m *RateBucketMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *RateBucketMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the RateBucket entity.
// If the RateBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateBucketMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *RateBucketMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *RateBucketMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *RateBucketMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RateBucketMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RateBucketMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RateBucket entity.
// If the RateBucket object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateBucketMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RateBucketMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RateBucketMutation builder.
func (m *RateBucketMutation) Where(ps ...predicate.RateBucket) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RateBucketMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RateBucketMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RateBucket, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RateBucketMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RateBucketMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RateBucket).
func (m *RateBucketMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RateBucketMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.key != nil {
		fields = append(fields, ratebucket.FieldKey)
	}
	if m.window_start != nil {
		fields = append(fields, ratebucket.FieldWindowStart)
	}
	if m.count != nil {
		fields = append(fields, ratebucket.FieldCount)
	}
	if m.updated_at != nil {
		fields = append(fields, ratebucket.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RateBucketMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ratebucket.FieldKey:
		return m.Key()
	case ratebucket.FieldWindowStart:
		return m.WindowStart()
	case ratebucket.FieldCount:
		return m.Count()
	case ratebucket.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RateBucketMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ratebucket.FieldKey:
		return m.OldKey(ctx)
	case ratebucket.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case ratebucket.FieldCount:
		return m.OldCount(ctx)
	case ratebucket.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RateBucket field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateBucketMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ratebucket.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case ratebucket.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case ratebucket.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case ratebucket.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RateBucket field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RateBucketMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, ratebucket.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RateBucketMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ratebucket.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateBucketMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ratebucket.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown RateBucket numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RateBucketMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RateBucketMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RateBucketMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RateBucket nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RateBucketMutation) ResetField(name string) error {
	switch name {
	case ratebucket.FieldKey:
		m.ResetKey()
		return nil
	case ratebucket.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case ratebucket.FieldCount:
		m.ResetCount()
		return nil
	case ratebucket.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown RateBucket field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RateBucketMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RateBucketMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RateBucketMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RateBucketMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RateBucketMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RateBucketMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RateBucketMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RateBucket unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RateBucketMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RateBucket edge %s", name)
}

// ScoringParameterMutation represents an operation that mutates the ScoringParameter nodes in the graph.
type ScoringParameterMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	name                   *scoringparameter.Name
	weight                 *float64
	addweight              *float64
	unit                   *string
	display_order          *int
	adddisplay_order       *int
	extraction_instruction *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ScoringParameter, error)
	predicates             []predicate.ScoringParameter
}

var _ ent.Mutation = (*ScoringParameterMutation)(nil)

// scoringparameterOption allows management of the mutation configuration using functional options.
type scoringparameterOption func(*ScoringParameterMutation)

// newScoringParameterMutation creates new mutation for the ScoringParameter entity.
func newScoringParameterMutation(c config, op Op, opts ...scoringparameterOption) *ScoringParameterMutation {
	m := &ScoringParameterMutation{
		config:        c,
		op:            op,
		typ:           TypeScoringParameter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoringParameterID sets the ID field of the mutation.
func withScoringParameterID(id string) scoringparameterOption {
	return func(m *ScoringParameterMutation) {
		var (
			err   error
			once  sync.Once
			value *ScoringParameter
		)
		m.oldValue = func(ctx context.Context) (*ScoringParameter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScoringParameter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScoringParameter sets the old ScoringParameter of the mutation.
func withScoringParameter(node *ScoringParameter) scoringparameterOption {
	return func(m *ScoringParameterMutation) {
		m.oldValue = func(context.Context) (*ScoringParameter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoringParameterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoringParameterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScoringParameter entities.
func (m *ScoringParameterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoringParameterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoringParameterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScoringParameter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ScoringParameterMutation) SetName(s scoringparameter.Name) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ScoringParameterMutation) Name() (r scoringparameter.Name, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ScoringParameter entity.
// If the ScoringParameter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringParameterMutation) OldName(ctx context.Context) (v scoringparameter.Name, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ScoringParameterMutation) ResetName() {
	m.name = nil
}

// SetWeight sets the "weight" field.
func (m *ScoringParameterMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *ScoringParameterMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the ScoringParameter entity.
// If the ScoringParameter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringParameterMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *ScoringParameterMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *ScoringParameterMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *ScoringParameterMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetUnit sets the "unit" field.
func (m *ScoringParameterMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *ScoringParameterMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the ScoringParameter entity.
// If the ScoringParameter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringParameterMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *ScoringParameterMutation) ResetUnit() {
	m.unit = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *ScoringParameterMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *ScoringParameterMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the ScoringParameter entity.
// If the ScoringParameter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringParameterMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *ScoringParameterMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *ScoringParameterMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *ScoringParameterMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetExtractionInstruction sets the "extraction_instruction" field.
func (m *ScoringParameterMutation) SetExtractionInstruction(s string) {
	m.extraction_instruction = &s
}

// ExtractionInstruction returns the value of the "extraction_instruction" field in the mutation.
func (m *ScoringParameterMutation) ExtractionInstruction() (r string, exists bool) {
	v := m.extraction_instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionInstruction returns the old "extraction_instruction" field's value of the ScoringParameter entity.
// If the ScoringParameter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringParameterMutation) OldExtractionInstruction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionInstruction: %w", err)
	}
	return oldValue.ExtractionInstruction, nil
}

// ClearExtractionInstruction clears the value of the "extraction_instruction" field.
func (m *ScoringParameterMutation) ClearExtractionInstruction() {
	m.extraction_instruction = nil
	m.clearedFields[scoringparameter.FieldExtractionInstruction] = struct{}{}
}

// ExtractionInstructionCleared returns if the "extraction_instruction" field was cleared in this mutation.
func (m *ScoringParameterMutation) ExtractionInstructionCleared() bool {
	_, ok := m.clearedFields[scoringparameter.FieldExtractionInstruction]
	return ok
}

// ResetExtractionInstruction resets all changes to the "extraction_instruction" field.
func (m *ScoringParameterMutation) ResetExtractionInstruction() {
	m.extraction_instruction = nil
	delete(m.clearedFields, scoringparameter.FieldExtractionInstruction)
}

// Where appends a list predicates to the ScoringParameterMutation builder.
func (m *ScoringParameterMutation) Where(ps ...predicate.ScoringParameter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoringParameterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoringParameterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScoringParameter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoringParameterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoringParameterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScoringParameter).
func (m *ScoringParameterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoringParameterMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, scoringparameter.FieldName)
	}
	if m.weight != nil {
		fields = append(fields, scoringparameter.FieldWeight)
	}
	if m.unit != nil {
		fields = append(fields, scoringparameter.FieldUnit)
	}
	if m.display_order != nil {
		fields = append(fields, scoringparameter.FieldDisplayOrder)
	}
	if m.extraction_instruction != nil {
		fields = append(fields, scoringparameter.FieldExtractionInstruction)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoringParameterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scoringparameter.FieldName:
		return m.Name()
	case scoringparameter.FieldWeight:
		return m.Weight()
	case scoringparameter.FieldUnit:
		return m.Unit()
	case scoringparameter.FieldDisplayOrder:
		return m.DisplayOrder()
	case scoringparameter.FieldExtractionInstruction:
		return m.ExtractionInstruction()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoringParameterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scoringparameter.FieldName:
		return m.OldName(ctx)
	case scoringparameter.FieldWeight:
		return m.OldWeight(ctx)
	case scoringparameter.FieldUnit:
		return m.OldUnit(ctx)
	case scoringparameter.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case scoringparameter.FieldExtractionInstruction:
		return m.OldExtractionInstruction(ctx)
	}
	return nil, fmt.Errorf("unknown ScoringParameter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoringParameterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scoringparameter.FieldName:
		v, ok := value.(scoringparameter.Name)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case scoringparameter.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case scoringparameter.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case scoringparameter.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case scoringparameter.FieldExtractionInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionInstruction(v)
		return nil
	}
	return fmt.Errorf("unknown ScoringParameter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoringParameterMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, scoringparameter.FieldWeight)
	}
	if m.adddisplay_order != nil {
		fields = append(fields, scoringparameter.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoringParameterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scoringparameter.FieldWeight:
		return m.AddedWeight()
	case scoringparameter.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoringParameterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scoringparameter.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case scoringparameter.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown ScoringParameter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoringParameterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scoringparameter.FieldExtractionInstruction) {
		fields = append(fields, scoringparameter.FieldExtractionInstruction)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoringParameterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoringParameterMutation) ClearField(name string) error {
	switch name {
	case scoringparameter.FieldExtractionInstruction:
		m.ClearExtractionInstruction()
		return nil
	}
	return fmt.Errorf("unknown ScoringParameter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoringParameterMutation) ResetField(name string) error {
	switch name {
	case scoringparameter.FieldName:
		m.ResetName()
		return nil
	case scoringparameter.FieldWeight:
		m.ResetWeight()
		return nil
	case scoringparameter.FieldUnit:
		m.ResetUnit()
		return nil
	case scoringparameter.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case scoringparameter.FieldExtractionInstruction:
		m.ResetExtractionInstruction()
		return nil
	}
	return fmt.Errorf("unknown ScoringParameter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoringParameterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoringParameterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoringParameterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoringParameterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoringParameterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoringParameterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoringParameterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScoringParameter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoringParameterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScoringParameter edge %s", name)
}

// ScoringRangeMutation represents an operation that mutates the ScoringRange nodes in the graph.
type ScoringRangeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	parameter       *scoringrange.Parameter
	delivery_method *scoringrange.DeliveryMethod
	min_value       *float64
	addmin_value    *float64
	max_value       *float64
	addmax_value    *float64
	score           *int
	addscore        *int
	is_exclusion    *bool
	range_text      *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ScoringRange, error)
	predicates      []predicate.ScoringRange
}

var _ ent.Mutation = (*ScoringRangeMutation)(nil)

// scoringrangeOption allows management of the mutation configuration using functional options.
type scoringrangeOption func(*ScoringRangeMutation)

// newScoringRangeMutation creates new mutation for the ScoringRange entity.
func newScoringRangeMutation(c config, op Op, opts ...scoringrangeOption) *ScoringRangeMutation {
	m := &ScoringRangeMutation{
		config:        c,
		op:            op,
		typ:           TypeScoringRange,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoringRangeID sets the ID field of the mutation.
func withScoringRangeID(id string) scoringrangeOption {
	return func(m *ScoringRangeMutation) {
		var (
			err   error
			once  sync.Once
			value *ScoringRange
		)
		m.oldValue = func(ctx context.Context) (*ScoringRange, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScoringRange.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScoringRange sets the old ScoringRange of the mutation.
func withScoringRange(node *ScoringRange) scoringrangeOption {
	return func(m *ScoringRangeMutation) {
		m.oldValue = func(context.Context) (*ScoringRange, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoringRangeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoringRangeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScoringRange entities.
func (m *ScoringRangeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoringRangeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoringRangeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScoringRange.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParameter sets the "parameter" field.
func (m *ScoringRangeMutation) SetParameter(s scoringrange.Parameter) {
	m.parameter = &s
}

// Parameter returns the value of the "parameter" field in the mutation.
func (m *ScoringRangeMutation) Parameter() (r scoringrange.Parameter, exists bool) {
	v := m.parameter
	if v == nil {
		return
	}
	return *v, true
}

// OldParameter returns the old "parameter" field's value of the ScoringRange entity.
// If the ScoringRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringRangeMutation) OldParameter(ctx context.Context) (v scoringrange.Parameter, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameter: %w", err)
	}
	return oldValue.Parameter, nil
}

// ResetParameter resets all changes to the "parameter" field.
func (m *ScoringRangeMutation) ResetParameter() {
	m.parameter = nil
}

// SetDeliveryMethod sets the "delivery_method" field.
func (m *ScoringRangeMutation) SetDeliveryMethod(sm scoringrange.DeliveryMethod) {
	m.delivery_method = &sm
}

// DeliveryMethod returns the value of the "delivery_method" field in the mutation.
func (m *ScoringRangeMutation) DeliveryMethod() (r scoringrange.DeliveryMethod, exists bool) {
	v := m.delivery_method
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryMethod returns the old "delivery_method" field's value of the ScoringRange entity.
// If the ScoringRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringRangeMutation) OldDeliveryMethod(ctx context.Context) (v scoringrange.DeliveryMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryMethod: %w", err)
	}
	return oldValue.DeliveryMethod, nil
}

// ResetDeliveryMethod resets all changes to the "delivery_method" field.
func (m *ScoringRangeMutation) ResetDeliveryMethod() {
	m.delivery_method = nil
}

// SetMinValue sets the "min_value" field.
func (m *ScoringRangeMutation) SetMinValue(f float64) {
	m.min_value = &f
	m.addmin_value = nil
}

// MinValue returns the value of the "min_value" field in the mutation.
func (m *ScoringRangeMutation) MinValue() (r float64, exists bool) {
	v := m.min_value
	if v == nil {
		return
	}
	return *v, true
}

// OldMinValue returns the old "min_value" field's value of the ScoringRange entity.
// If the ScoringRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringRangeMutation) OldMinValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinValue: %w", err)
	}
	return oldValue.MinValue, nil
}

// AddMinValue adds f to the "min_value" field.
func (m *ScoringRangeMutation) AddMinValue(f float64) {
	if m.addmin_value != nil {
		*m.addmin_value += f
	} else {
		m.addmin_value = &f
	}
}

// AddedMinValue returns the value that was added to the "min_value" field in this mutation.
func (m *ScoringRangeMutation) AddedMinValue() (r float64, exists bool) {
	v := m.addmin_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearMinValue clears the value of the "min_value" field.
func (m *ScoringRangeMutation) ClearMinValue() {
	m.min_value = nil
	m.addmin_value = nil
	m.clearedFields[scoringrange.FieldMinValue] = struct{}{}
}

// MinValueCleared returns if the "min_value" field was cleared in this mutation.
func (m *ScoringRangeMutation) MinValueCleared() bool {
	_, ok := m.clearedFields[scoringrange.FieldMinValue]
	return ok
}

// ResetMinValue resets all changes to the "min_value" field.
func (m *ScoringRangeMutation) ResetMinValue() {
	m.min_value = nil
	m.addmin_value = nil
	delete(m.clearedFields, scoringrange.FieldMinValue)
}

// SetMaxValue sets the "max_value" field.
func (m *ScoringRangeMutation) SetMaxValue(f float64) {
	m.max_value = &f
	m.addmax_value = nil
}

// MaxValue returns the value of the "max_value" field in the mutation.
func (m *ScoringRangeMutation) MaxValue() (r float64, exists bool) {
	v := m.max_value
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxValue returns the old "max_value" field's value of the ScoringRange entity.
// If the ScoringRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringRangeMutation) OldMaxValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxValue: %w", err)
	}
	return oldValue.MaxValue, nil
}

// AddMaxValue adds f to the "max_value" field.
func (m *ScoringRangeMutation) AddMaxValue(f float64) {
	if m.addmax_value != nil {
		*m.addmax_value += f
	} else {
		m.addmax_value = &f
	}
}

// AddedMaxValue returns the value that was added to the "max_value" field in this mutation.
func (m *ScoringRangeMutation) AddedMaxValue() (r float64, exists bool) {
	v := m.addmax_value
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxValue clears the value of the "max_value" field.
func (m *ScoringRangeMutation) ClearMaxValue() {
	m.max_value = nil
	m.addmax_value = nil
	m.clearedFields[scoringrange.FieldMaxValue] = struct{}{}
}

// MaxValueCleared returns if the "max_value" field was cleared in this mutation.
func (m *ScoringRangeMutation) MaxValueCleared() bool {
	_, ok := m.clearedFields[scoringrange.FieldMaxValue]
	return ok
}

// ResetMaxValue resets all changes to the "max_value" field.
func (m *ScoringRangeMutation) ResetMaxValue() {
	m.max_value = nil
	m.addmax_value = nil
	delete(m.clearedFields, scoringrange.FieldMaxValue)
}

// SetScore sets the "score" field.
func (m *ScoringRangeMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ScoringRangeMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ScoringRange entity.
// If the ScoringRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringRangeMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *ScoringRangeMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ScoringRangeMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *ScoringRangeMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetIsExclusion sets the "is_exclusion" field.
func (m *ScoringRangeMutation) SetIsExclusion(b bool) {
	m.is_exclusion = &b
}

// IsExclusion returns the value of the "is_exclusion" field in the mutation.
func (m *ScoringRangeMutation) IsExclusion() (r bool, exists bool) {
	v := m.is_exclusion
	if v == nil {
		return
	}
	return *v, true
}

// OldIsExclusion returns the old "is_exclusion" field's value of the ScoringRange entity.
// If the ScoringRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringRangeMutation) OldIsExclusion(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsExclusion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsExclusion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsExclusion: %w", err)
	}
	return oldValue.IsExclusion, nil
}

// ResetIsExclusion resets all changes to the "is_exclusion" field.
func (m *ScoringRangeMutation) ResetIsExclusion() {
	m.is_exclusion = nil
}

// SetRangeText sets the "range_text" field.
func (m *ScoringRangeMutation) SetRangeText(s string) {
	m.range_text = &s
}

// RangeText returns the value of the "range_text" field in the mutation.
func (m *ScoringRangeMutation) RangeText() (r string, exists bool) {
	v := m.range_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRangeText returns the old "range_text" field's value of the ScoringRange entity.
// If the ScoringRange object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoringRangeMutation) OldRangeText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRangeText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRangeText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRangeText: %w", err)
	}
	return oldValue.RangeText, nil
}

// ResetRangeText resets all changes to the "range_text" field.
func (m *ScoringRangeMutation) ResetRangeText() {
	m.range_text = nil
}

// Where appends a list predicates to the ScoringRangeMutation builder.
func (m *ScoringRangeMutation) Where(ps ...predicate.ScoringRange) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoringRangeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoringRangeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScoringRange, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoringRangeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoringRangeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScoringRange).
func (m *ScoringRangeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoringRangeMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.parameter != nil {
		fields = append(fields, scoringrange.FieldParameter)
	}
	if m.delivery_method != nil {
		fields = append(fields, scoringrange.FieldDeliveryMethod)
	}
	if m.min_value != nil {
		fields = append(fields, scoringrange.FieldMinValue)
	}
	if m.max_value != nil {
		fields = append(fields, scoringrange.FieldMaxValue)
	}
	if m.score != nil {
		fields = append(fields, scoringrange.FieldScore)
	}
	if m.is_exclusion != nil {
		fields = append(fields, scoringrange.FieldIsExclusion)
	}
	if m.range_text != nil {
		fields = append(fields, scoringrange.FieldRangeText)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoringRangeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scoringrange.FieldParameter:
		return m.Parameter()
	case scoringrange.FieldDeliveryMethod:
		return m.DeliveryMethod()
	case scoringrange.FieldMinValue:
		return m.MinValue()
	case scoringrange.FieldMaxValue:
		return m.MaxValue()
	case scoringrange.FieldScore:
		return m.Score()
	case scoringrange.FieldIsExclusion:
		return m.IsExclusion()
	case scoringrange.FieldRangeText:
		return m.RangeText()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoringRangeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scoringrange.FieldParameter:
		return m.OldParameter(ctx)
	case scoringrange.FieldDeliveryMethod:
		return m.OldDeliveryMethod(ctx)
	case scoringrange.FieldMinValue:
		return m.OldMinValue(ctx)
	case scoringrange.FieldMaxValue:
		return m.OldMaxValue(ctx)
	case scoringrange.FieldScore:
		return m.OldScore(ctx)
	case scoringrange.FieldIsExclusion:
		return m.OldIsExclusion(ctx)
	case scoringrange.FieldRangeText:
		return m.OldRangeText(ctx)
	}
	return nil, fmt.Errorf("unknown ScoringRange field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoringRangeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scoringrange.FieldParameter:
		v, ok := value.(scoringrange.Parameter)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameter(v)
		return nil
	case scoringrange.FieldDeliveryMethod:
		v, ok := value.(scoringrange.DeliveryMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryMethod(v)
		return nil
	case scoringrange.FieldMinValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinValue(v)
		return nil
	case scoringrange.FieldMaxValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxValue(v)
		return nil
	case scoringrange.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case scoringrange.FieldIsExclusion:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsExclusion(v)
		return nil
	case scoringrange.FieldRangeText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRangeText(v)
		return nil
	}
	return fmt.Errorf("unknown ScoringRange field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoringRangeMutation) AddedFields() []string {
	var fields []string
	if m.addmin_value != nil {
		fields = append(fields, scoringrange.FieldMinValue)
	}
	if m.addmax_value != nil {
		fields = append(fields, scoringrange.FieldMaxValue)
	}
	if m.addscore != nil {
		fields = append(fields, scoringrange.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoringRangeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scoringrange.FieldMinValue:
		return m.AddedMinValue()
	case scoringrange.FieldMaxValue:
		return m.AddedMaxValue()
	case scoringrange.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoringRangeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scoringrange.FieldMinValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinValue(v)
		return nil
	case scoringrange.FieldMaxValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxValue(v)
		return nil
	case scoringrange.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown ScoringRange numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoringRangeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scoringrange.FieldMinValue) {
		fields = append(fields, scoringrange.FieldMinValue)
	}
	if m.FieldCleared(scoringrange.FieldMaxValue) {
		fields = append(fields, scoringrange.FieldMaxValue)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoringRangeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoringRangeMutation) ClearField(name string) error {
	switch name {
	case scoringrange.FieldMinValue:
		m.ClearMinValue()
		return nil
	case scoringrange.FieldMaxValue:
		m.ClearMaxValue()
		return nil
	}
	return fmt.Errorf("unknown ScoringRange nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoringRangeMutation) ResetField(name string) error {
	switch name {
	case scoringrange.FieldParameter:
		m.ResetParameter()
		return nil
	case scoringrange.FieldDeliveryMethod:
		m.ResetDeliveryMethod()
		return nil
	case scoringrange.FieldMinValue:
		m.ResetMinValue()
		return nil
	case scoringrange.FieldMaxValue:
		m.ResetMaxValue()
		return nil
	case scoringrange.FieldScore:
		m.ResetScore()
		return nil
	case scoringrange.FieldIsExclusion:
		m.ResetIsExclusion()
		return nil
	case scoringrange.FieldRangeText:
		m.ResetRangeText()
		return nil
	}
	return fmt.Errorf("unknown ScoringRange field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoringRangeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoringRangeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoringRangeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoringRangeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoringRangeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoringRangeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoringRangeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScoringRange unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoringRangeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScoringRange edge %s", name)
}

// SourceConflictMutation represents an operation that mutates the SourceConflict nodes in the graph.
type SourceConflictMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	conflict_type                *string
	description                  *string
	conflicting_source_ids       *[]string
	appendconflicting_source_ids []string
	resolution_strategy          *string
	resolved_at                  *time.Time
	confidence_impact            *float64
	addconfidence_impact         *float64
	is_critical                  *bool
	deleted_at                   *time.Time
	clearedFields                map[string]struct{}
	category_result              *string
	clearedcategory_result       bool
	done                         bool
	oldValue                     func(context.Context) (*SourceConflict, error)
	predicates                   []predicate.SourceConflict
}

var _ ent.Mutation = (*SourceConflictMutation)(nil)

// sourceconflictOption allows management of the mutation configuration using functional options.
type sourceconflictOption func(*SourceConflictMutation)

// newSourceConflictMutation creates new mutation for the SourceConflict entity.
func newSourceConflictMutation(c config, op Op, opts ...sourceconflictOption) *SourceConflictMutation {
	m := &SourceConflictMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceConflict,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceConflictID sets the ID field of the mutation.
func withSourceConflictID(id string) sourceconflictOption {
	return func(m *SourceConflictMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceConflict
		)
		m.oldValue = func(ctx context.Context) (*SourceConflict, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceConflict.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceConflict sets the old SourceConflict of the mutation.
func withSourceConflict(node *SourceConflict) sourceconflictOption {
	return func(m *SourceConflictMutation) {
		m.oldValue = func(context.Context) (*SourceConflict, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceConflictMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceConflictMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceConflict entities.
func (m *SourceConflictMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceConflictMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceConflictMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceConflict.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategoryResultID sets the "category_result_id" field.
func (m *SourceConflictMutation) SetCategoryResultID(s string) {
	m.category_result = &s
}

// CategoryResultID returns the value of the "category_result_id" field in the mutation.
func (m *SourceConflictMutation) CategoryResultID() (r string, exists bool) {
	v := m.category_result
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryResultID returns the old "category_result_id" field's value of the SourceConflict entity.
// If the SourceConflict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceConflictMutation) OldCategoryResultID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryResultID: %w", err)
	}
	return oldValue.CategoryResultID, nil
}

// ResetCategoryResultID resets all changes to the "category_result_id" field.
func (m *SourceConflictMutation) ResetCategoryResultID() {
	m.category_result = nil
}

// SetConflictType sets the "conflict_type" field.
func (m *SourceConflictMutation) SetConflictType(s string) {
	m.conflict_type = &s
}

// ConflictType returns the value of the "conflict_type" field in the mutation.
func (m *SourceConflictMutation) ConflictType() (r string, exists bool) {
	v := m.conflict_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictType returns the old "conflict_type" field's value of the SourceConflict entity.
// If the SourceConflict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceConflictMutation) OldConflictType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictType: %w", err)
	}
	return oldValue.ConflictType, nil
}

// ResetConflictType resets all changes to the "conflict_type" field.
func (m *SourceConflictMutation) ResetConflictType() {
	m.conflict_type = nil
}

// SetDescription sets the "description" field.
func (m *SourceConflictMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *SourceConflictMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the SourceConflict entity.
// If the SourceConflict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceConflictMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *SourceConflictMutation) ResetDescription() {
	m.description = nil
}

// SetConflictingSourceIds sets the "conflicting_source_ids" field.
func (m *SourceConflictMutation) SetConflictingSourceIds(s []string) {
	m.conflicting_source_ids = &s
	m.appendconflicting_source_ids = nil
}

// ConflictingSourceIds returns the value of the "conflicting_source_ids" field in the mutation.
func (m *SourceConflictMutation) ConflictingSourceIds() (r []string, exists bool) {
	v := m.conflicting_source_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictingSourceIds returns the old "conflicting_source_ids" field's value of the SourceConflict entity.
// If the SourceConflict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceConflictMutation) OldConflictingSourceIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictingSourceIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictingSourceIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictingSourceIds: %w", err)
	}
	return oldValue.ConflictingSourceIds, nil
}

// AppendConflictingSourceIds adds s to the "conflicting_source_ids" field.
func (m *SourceConflictMutation) AppendConflictingSourceIds(s []string) {
	m.appendconflicting_source_ids = append(m.appendconflicting_source_ids, s...)
}

// AppendedConflictingSourceIds returns the list of values that were appended to the "conflicting_source_ids" field in this mutation.
func (m *SourceConflictMutation) AppendedConflictingSourceIds() ([]string, bool) {
	if len(m.appendconflicting_source_ids) == 0 {
		return nil, false
	}
	return m.appendconflicting_source_ids, true
}

// ClearConflictingSourceIds clears the value of the "conflicting_source_ids" field.
func (m *SourceConflictMutation) ClearConflictingSourceIds() {
	m.conflicting_source_ids = nil
	m.appendconflicting_source_ids = nil
	m.clearedFields[sourceconflict.FieldConflictingSourceIds] = struct{}{}
}

// ConflictingSourceIdsCleared returns if the "conflicting_source_ids" field was cleared in this mutation.
func (m *SourceConflictMutation) ConflictingSourceIdsCleared() bool {
	_, ok := m.clearedFields[sourceconflict.FieldConflictingSourceIds]
	return ok
}

// ResetConflictingSourceIds resets all changes to the "conflicting_source_ids" field.
func (m *SourceConflictMutation) ResetConflictingSourceIds() {
	m.conflicting_source_ids = nil
	m.appendconflicting_source_ids = nil
	delete(m.clearedFields, sourceconflict.FieldConflictingSourceIds)
}

// SetResolutionStrategy sets the "resolution_strategy" field.
func (m *SourceConflictMutation) SetResolutionStrategy(s string) {
	m.resolution_strategy = &s
}

// ResolutionStrategy returns the value of the "resolution_strategy" field in the mutation.
func (m *SourceConflictMutation) ResolutionStrategy() (r string, exists bool) {
	v := m.resolution_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldResolutionStrategy returns the old "resolution_strategy" field's value of the SourceConflict entity.
// If the SourceConflict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceConflictMutation) OldResolutionStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolutionStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolutionStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolutionStrategy: %w", err)
	}
	return oldValue.ResolutionStrategy, nil
}

// ResetResolutionStrategy resets all changes to the "resolution_strategy" field.
func (m *SourceConflictMutation) ResetResolutionStrategy() {
	m.resolution_strategy = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *SourceConflictMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *SourceConflictMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the SourceConflict entity.
// If the SourceConflict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceConflictMutation) OldResolvedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *SourceConflictMutation) ResetResolvedAt() {
	m.resolved_at = nil
}

// SetConfidenceImpact sets the "confidence_impact" field.
func (m *SourceConflictMutation) SetConfidenceImpact(f float64) {
	m.confidence_impact = &f
	m.addconfidence_impact = nil
}

// ConfidenceImpact returns the value of the "confidence_impact" field in the mutation.
func (m *SourceConflictMutation) ConfidenceImpact() (r float64, exists bool) {
	v := m.confidence_impact
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceImpact returns the old "confidence_impact" field's value of the SourceConflict entity.
// If the SourceConflict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceConflictMutation) OldConfidenceImpact(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceImpact: %w", err)
	}
	return oldValue.ConfidenceImpact, nil
}

// AddConfidenceImpact adds f to the "confidence_impact" field.
func (m *SourceConflictMutation) AddConfidenceImpact(f float64) {
	if m.addconfidence_impact != nil {
		*m.addconfidence_impact += f
	} else {
		m.addconfidence_impact = &f
	}
}

// AddedConfidenceImpact returns the value that was added to the "confidence_impact" field in this mutation.
func (m *SourceConflictMutation) AddedConfidenceImpact() (r float64, exists bool) {
	v := m.addconfidence_impact
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceImpact resets all changes to the "confidence_impact" field.
func (m *SourceConflictMutation) ResetConfidenceImpact() {
	m.confidence_impact = nil
	m.addconfidence_impact = nil
}

// SetIsCritical sets the "is_critical" field.
func (m *SourceConflictMutation) SetIsCritical(b bool) {
	m.is_critical = &b
}

// IsCritical returns the value of the "is_critical" field in the mutation.
func (m *SourceConflictMutation) IsCritical() (r bool, exists bool) {
	v := m.is_critical
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCritical returns the old "is_critical" field's value of the SourceConflict entity.
// If the SourceConflict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceConflictMutation) OldIsCritical(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCritical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCritical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCritical: %w", err)
	}
	return oldValue.IsCritical, nil
}

// ResetIsCritical resets all changes to the "is_critical" field.
func (m *SourceConflictMutation) ResetIsCritical() {
	m.is_critical = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *SourceConflictMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *SourceConflictMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the SourceConflict entity.
// If the SourceConflict object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceConflictMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *SourceConflictMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[sourceconflict.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *SourceConflictMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[sourceconflict.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *SourceConflictMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, sourceconflict.FieldDeletedAt)
}

// ClearCategoryResult clears the "category_result" edge to the CategoryResult entity.
func (m *SourceConflictMutation) ClearCategoryResult() {
	m.clearedcategory_result = true
	m.clearedFields[sourceconflict.FieldCategoryResultID] = struct{}{}
}

// CategoryResultCleared reports if the "category_result" edge to the CategoryResult entity was cleared.
func (m *SourceConflictMutation) CategoryResultCleared() bool {
	return m.clearedcategory_result
}

// CategoryResultIDs returns the "category_result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryResultID instead. It exists only for internal usage by the builders.
func (m *SourceConflictMutation) CategoryResultIDs() (ids []string) {
	if id := m.category_result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategoryResult resets all changes to the "category_result" edge.
func (m *SourceConflictMutation) ResetCategoryResult() {
	m.category_result = nil
	m.clearedcategory_result = false
}

// Where appends a list predicates to the SourceConflictMutation builder.
func (m *SourceConflictMutation) Where(ps ...predicate.SourceConflict) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceConflictMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceConflictMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceConflict, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceConflictMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceConflictMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceConflict).
func (m *SourceConflictMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceConflictMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.category_result != nil {
		fields = append(fields, sourceconflict.FieldCategoryResultID)
	}
	if m.conflict_type != nil {
		fields = append(fields, sourceconflict.FieldConflictType)
	}
	if m.description != nil {
		fields = append(fields, sourceconflict.FieldDescription)
	}
	if m.conflicting_source_ids != nil {
		fields = append(fields, sourceconflict.FieldConflictingSourceIds)
	}
	if m.resolution_strategy != nil {
		fields = append(fields, sourceconflict.FieldResolutionStrategy)
	}
	if m.resolved_at != nil {
		fields = append(fields, sourceconflict.FieldResolvedAt)
	}
	if m.confidence_impact != nil {
		fields = append(fields, sourceconflict.FieldConfidenceImpact)
	}
	if m.is_critical != nil {
		fields = append(fields, sourceconflict.FieldIsCritical)
	}
	if m.deleted_at != nil {
		fields = append(fields, sourceconflict.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceConflictMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourceconflict.FieldCategoryResultID:
		return m.CategoryResultID()
	case sourceconflict.FieldConflictType:
		return m.ConflictType()
	case sourceconflict.FieldDescription:
		return m.Description()
	case sourceconflict.FieldConflictingSourceIds:
		return m.ConflictingSourceIds()
	case sourceconflict.FieldResolutionStrategy:
		return m.ResolutionStrategy()
	case sourceconflict.FieldResolvedAt:
		return m.ResolvedAt()
	case sourceconflict.FieldConfidenceImpact:
		return m.ConfidenceImpact()
	case sourceconflict.FieldIsCritical:
		return m.IsCritical()
	case sourceconflict.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceConflictMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourceconflict.FieldCategoryResultID:
		return m.OldCategoryResultID(ctx)
	case sourceconflict.FieldConflictType:
		return m.OldConflictType(ctx)
	case sourceconflict.FieldDescription:
		return m.OldDescription(ctx)
	case sourceconflict.FieldConflictingSourceIds:
		return m.OldConflictingSourceIds(ctx)
	case sourceconflict.FieldResolutionStrategy:
		return m.OldResolutionStrategy(ctx)
	case sourceconflict.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	case sourceconflict.FieldConfidenceImpact:
		return m.OldConfidenceImpact(ctx)
	case sourceconflict.FieldIsCritical:
		return m.OldIsCritical(ctx)
	case sourceconflict.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceConflict field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceConflictMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourceconflict.FieldCategoryResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryResultID(v)
		return nil
	case sourceconflict.FieldConflictType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictType(v)
		return nil
	case sourceconflict.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case sourceconflict.FieldConflictingSourceIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictingSourceIds(v)
		return nil
	case sourceconflict.FieldResolutionStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolutionStrategy(v)
		return nil
	case sourceconflict.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	case sourceconflict.FieldConfidenceImpact:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceImpact(v)
		return nil
	case sourceconflict.FieldIsCritical:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCritical(v)
		return nil
	case sourceconflict.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceConflict field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceConflictMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_impact != nil {
		fields = append(fields, sourceconflict.FieldConfidenceImpact)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceConflictMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourceconflict.FieldConfidenceImpact:
		return m.AddedConfidenceImpact()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceConflictMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourceconflict.FieldConfidenceImpact:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceImpact(v)
		return nil
	}
	return fmt.Errorf("unknown SourceConflict numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceConflictMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sourceconflict.FieldConflictingSourceIds) {
		fields = append(fields, sourceconflict.FieldConflictingSourceIds)
	}
	if m.FieldCleared(sourceconflict.FieldDeletedAt) {
		fields = append(fields, sourceconflict.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceConflictMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceConflictMutation) ClearField(name string) error {
	switch name {
	case sourceconflict.FieldConflictingSourceIds:
		m.ClearConflictingSourceIds()
		return nil
	case sourceconflict.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceConflict nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceConflictMutation) ResetField(name string) error {
	switch name {
	case sourceconflict.FieldCategoryResultID:
		m.ResetCategoryResultID()
		return nil
	case sourceconflict.FieldConflictType:
		m.ResetConflictType()
		return nil
	case sourceconflict.FieldDescription:
		m.ResetDescription()
		return nil
	case sourceconflict.FieldConflictingSourceIds:
		m.ResetConflictingSourceIds()
		return nil
	case sourceconflict.FieldResolutionStrategy:
		m.ResetResolutionStrategy()
		return nil
	case sourceconflict.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	case sourceconflict.FieldConfidenceImpact:
		m.ResetConfidenceImpact()
		return nil
	case sourceconflict.FieldIsCritical:
		m.ResetIsCritical()
		return nil
	case sourceconflict.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceConflict field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceConflictMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.category_result != nil {
		edges = append(edges, sourceconflict.EdgeCategoryResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceConflictMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourceconflict.EdgeCategoryResult:
		if id := m.category_result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceConflictMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceConflictMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceConflictMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcategory_result {
		edges = append(edges, sourceconflict.EdgeCategoryResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceConflictMutation) EdgeCleared(name string) bool {
	switch name {
	case sourceconflict.EdgeCategoryResult:
		return m.clearedcategory_result
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceConflictMutation) ClearEdge(name string) error {
	switch name {
	case sourceconflict.EdgeCategoryResult:
		m.ClearCategoryResult()
		return nil
	}
	return fmt.Errorf("unknown SourceConflict unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceConflictMutation) ResetEdge(name string) error {
	switch name {
	case sourceconflict.EdgeCategoryResult:
		m.ResetCategoryResult()
		return nil
	}
	return fmt.Errorf("unknown SourceConflict edge %s", name)
}

// StageEventMutation represents an operation that mutates the StageEvent nodes in the graph.
type StageEventMutation struct {
	config
	op             Op
	typ            string
	id             *string
	category_id    *string
	stage_name     *stageevent.StageName
	stage_order    *int
	addstage_order *int
	executed       *bool
	skipped        *bool
	input_digest   *string
	output_digest  *string
	duration_ms    *int
	addduration_ms *int
	created_at     *time.Time
	clearedFields  map[string]struct{}
	request        *string
	clearedrequest bool
	done           bool
	oldValue       func(context.Context) (*StageEvent, error)
	predicates     []predicate.StageEvent
}

var _ ent.Mutation = (*StageEventMutation)(nil)

// stageeventOption allows management of the mutation configuration using functional options.
type stageeventOption func(*StageEventMutation)

// newStageEventMutation creates new mutation for the StageEvent entity.
func newStageEventMutation(c config, op Op, opts ...stageeventOption) *StageEventMutation {
	m := &StageEventMutation{
		config:        c,
		op:            op,
		typ:           TypeStageEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStageEventID sets the ID field of the mutation.
func withStageEventID(id string) stageeventOption {
	return func(m *StageEventMutation) {
		var (
			err   error
			once  sync.Once
			value *StageEvent
		)
		m.oldValue = func(ctx context.Context) (*StageEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StageEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStageEvent sets the old StageEvent of the mutation.
func withStageEvent(node *StageEvent) stageeventOption {
	return func(m *StageEventMutation) {
		m.oldValue = func(context.Context) (*StageEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StageEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StageEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StageEvent entities.
func (m *StageEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StageEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StageEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StageEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRequestID sets the "request_id" field.
func (m *StageEventMutation) SetRequestID(s string) {
	m.request = &s
}

// RequestID returns the value of the "request_id" field in the mutation.
func (m *StageEventMutation) RequestID() (r string, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestID returns the old "request_id" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldRequestID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestID: %w", err)
	}
	return oldValue.RequestID, nil
}

// ResetRequestID resets all changes to the "request_id" field.
func (m *StageEventMutation) ResetRequestID() {
	m.request = nil
}

// SetCategoryID sets the "category_id" field.
func (m *StageEventMutation) SetCategoryID(s string) {
	m.category_id = &s
}

// CategoryID returns the value of the "category_id" field in the mutation.
func (m *StageEventMutation) CategoryID() (r string, exists bool) {
	v := m.category_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryID returns the old "category_id" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldCategoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryID: %w", err)
	}
	return oldValue.CategoryID, nil
}

// ResetCategoryID resets all changes to the "category_id" field.
func (m *StageEventMutation) ResetCategoryID() {
	m.category_id = nil
}

// SetStageName sets the "stage_name" field.
func (m *StageEventMutation) SetStageName(sn stageevent.StageName) {
	m.stage_name = &sn
}

// StageName returns the value of the "stage_name" field in the mutation.
func (m *StageEventMutation) StageName() (r stageevent.StageName, exists bool) {
	v := m.stage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStageName returns the old "stage_name" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldStageName(ctx context.Context) (v stageevent.StageName, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageName: %w", err)
	}
	return oldValue.StageName, nil
}

// ResetStageName resets all changes to the "stage_name" field.
func (m *StageEventMutation) ResetStageName() {
	m.stage_name = nil
}

// SetStageOrder sets the "stage_order" field.
func (m *StageEventMutation) SetStageOrder(i int) {
	m.stage_order = &i
	m.addstage_order = nil
}

// StageOrder returns the value of the "stage_order" field in the mutation.
func (m *StageEventMutation) StageOrder() (r int, exists bool) {
	v := m.stage_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStageOrder returns the old "stage_order" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldStageOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStageOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStageOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStageOrder: %w", err)
	}
	return oldValue.StageOrder, nil
}

// AddStageOrder adds i to the "stage_order" field.
func (m *StageEventMutation) AddStageOrder(i int) {
	if m.addstage_order != nil {
		*m.addstage_order += i
	} else {
		m.addstage_order = &i
	}
}

// AddedStageOrder returns the value that was added to the "stage_order" field in this mutation.
func (m *StageEventMutation) AddedStageOrder() (r int, exists bool) {
	v := m.addstage_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStageOrder resets all changes to the "stage_order" field.
func (m *StageEventMutation) ResetStageOrder() {
	m.stage_order = nil
	m.addstage_order = nil
}

// SetExecuted sets the "executed" field.
func (m *StageEventMutation) SetExecuted(b bool) {
	m.executed = &b
}

// Executed returns the value of the "executed" field in the mutation.
func (m *StageEventMutation) Executed() (r bool, exists bool) {
	v := m.executed
	if v == nil {
		return
	}
	return *v, true
}

// OldExecuted returns the old "executed" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldExecuted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecuted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecuted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecuted: %w", err)
	}
	return oldValue.Executed, nil
}

// ResetExecuted resets all changes to the "executed" field.
func (m *StageEventMutation) ResetExecuted() {
	m.executed = nil
}

// SetSkipped sets the "skipped" field.
func (m *StageEventMutation) SetSkipped(b bool) {
	m.skipped = &b
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *StageEventMutation) Skipped() (r bool, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldSkipped(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *StageEventMutation) ResetSkipped() {
	m.skipped = nil
}

// SetInputDigest sets the "input_digest" field.
func (m *StageEventMutation) SetInputDigest(s string) {
	m.input_digest = &s
}

// InputDigest returns the value of the "input_digest" field in the mutation.
func (m *StageEventMutation) InputDigest() (r string, exists bool) {
	v := m.input_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldInputDigest returns the old "input_digest" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldInputDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputDigest: %w", err)
	}
	return oldValue.InputDigest, nil
}

// ClearInputDigest clears the value of the "input_digest" field.
func (m *StageEventMutation) ClearInputDigest() {
	m.input_digest = nil
	m.clearedFields[stageevent.FieldInputDigest] = struct{}{}
}

// InputDigestCleared returns if the "input_digest" field was cleared in this mutation.
func (m *StageEventMutation) InputDigestCleared() bool {
	_, ok := m.clearedFields[stageevent.FieldInputDigest]
	return ok
}

// ResetInputDigest resets all changes to the "input_digest" field.
func (m *StageEventMutation) ResetInputDigest() {
	m.input_digest = nil
	delete(m.clearedFields, stageevent.FieldInputDigest)
}

// SetOutputDigest sets the "output_digest" field.
func (m *StageEventMutation) SetOutputDigest(s string) {
	m.output_digest = &s
}

// OutputDigest returns the value of the "output_digest" field in the mutation.
func (m *StageEventMutation) OutputDigest() (r string, exists bool) {
	v := m.output_digest
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputDigest returns the old "output_digest" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldOutputDigest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputDigest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputDigest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputDigest: %w", err)
	}
	return oldValue.OutputDigest, nil
}

// ClearOutputDigest clears the value of the "output_digest" field.
func (m *StageEventMutation) ClearOutputDigest() {
	m.output_digest = nil
	m.clearedFields[stageevent.FieldOutputDigest] = struct{}{}
}

// OutputDigestCleared returns if the "output_digest" field was cleared in this mutation.
func (m *StageEventMutation) OutputDigestCleared() bool {
	_, ok := m.clearedFields[stageevent.FieldOutputDigest]
	return ok
}

// ResetOutputDigest resets all changes to the "output_digest" field.
func (m *StageEventMutation) ResetOutputDigest() {
	m.output_digest = nil
	delete(m.clearedFields, stageevent.FieldOutputDigest)
}

// SetDurationMs sets the "duration_ms" field.
func (m *StageEventMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *StageEventMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldDurationMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *StageEventMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *StageEventMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *StageEventMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StageEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StageEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StageEvent entity.
// If the StageEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StageEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StageEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearRequest clears the "request" edge to the AnalysisRequest entity.
func (m *StageEventMutation) ClearRequest() {
	m.clearedrequest = true
	m.clearedFields[stageevent.FieldRequestID] = struct{}{}
}

// RequestCleared reports if the "request" edge to the AnalysisRequest entity was cleared.
func (m *StageEventMutation) RequestCleared() bool {
	return m.clearedrequest
}

// RequestIDs returns the "request" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RequestID instead. It exists only for internal usage by the builders.
func (m *StageEventMutation) RequestIDs() (ids []string) {
	if id := m.request; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRequest resets all changes to the "request" edge.
func (m *StageEventMutation) ResetRequest() {
	m.request = nil
	m.clearedrequest = false
}

// Where appends a list predicates to the StageEventMutation builder.
func (m *StageEventMutation) Where(ps ...predicate.StageEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StageEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StageEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StageEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StageEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StageEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StageEvent).
func (m *StageEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StageEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.request != nil {
		fields = append(fields, stageevent.FieldRequestID)
	}
	if m.category_id != nil {
		fields = append(fields, stageevent.FieldCategoryID)
	}
	if m.stage_name != nil {
		fields = append(fields, stageevent.FieldStageName)
	}
	if m.stage_order != nil {
		fields = append(fields, stageevent.FieldStageOrder)
	}
	if m.executed != nil {
		fields = append(fields, stageevent.FieldExecuted)
	}
	if m.skipped != nil {
		fields = append(fields, stageevent.FieldSkipped)
	}
	if m.input_digest != nil {
		fields = append(fields, stageevent.FieldInputDigest)
	}
	if m.output_digest != nil {
		fields = append(fields, stageevent.FieldOutputDigest)
	}
	if m.duration_ms != nil {
		fields = append(fields, stageevent.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, stageevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StageEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case stageevent.FieldRequestID:
		return m.RequestID()
	case stageevent.FieldCategoryID:
		return m.CategoryID()
	case stageevent.FieldStageName:
		return m.StageName()
	case stageevent.FieldStageOrder:
		return m.StageOrder()
	case stageevent.FieldExecuted:
		return m.Executed()
	case stageevent.FieldSkipped:
		return m.Skipped()
	case stageevent.FieldInputDigest:
		return m.InputDigest()
	case stageevent.FieldOutputDigest:
		return m.OutputDigest()
	case stageevent.FieldDurationMs:
		return m.DurationMs()
	case stageevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StageEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case stageevent.FieldRequestID:
		return m.OldRequestID(ctx)
	case stageevent.FieldCategoryID:
		return m.OldCategoryID(ctx)
	case stageevent.FieldStageName:
		return m.OldStageName(ctx)
	case stageevent.FieldStageOrder:
		return m.OldStageOrder(ctx)
	case stageevent.FieldExecuted:
		return m.OldExecuted(ctx)
	case stageevent.FieldSkipped:
		return m.OldSkipped(ctx)
	case stageevent.FieldInputDigest:
		return m.OldInputDigest(ctx)
	case stageevent.FieldOutputDigest:
		return m.OldOutputDigest(ctx)
	case stageevent.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case stageevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StageEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case stageevent.FieldRequestID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestID(v)
		return nil
	case stageevent.FieldCategoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryID(v)
		return nil
	case stageevent.FieldStageName:
		v, ok := value.(stageevent.StageName)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageName(v)
		return nil
	case stageevent.FieldStageOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStageOrder(v)
		return nil
	case stageevent.FieldExecuted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecuted(v)
		return nil
	case stageevent.FieldSkipped:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case stageevent.FieldInputDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputDigest(v)
		return nil
	case stageevent.FieldOutputDigest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputDigest(v)
		return nil
	case stageevent.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case stageevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StageEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StageEventMutation) AddedFields() []string {
	var fields []string
	if m.addstage_order != nil {
		fields = append(fields, stageevent.FieldStageOrder)
	}
	if m.addduration_ms != nil {
		fields = append(fields, stageevent.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StageEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case stageevent.FieldStageOrder:
		return m.AddedStageOrder()
	case stageevent.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StageEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case stageevent.FieldStageOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStageOrder(v)
		return nil
	case stageevent.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown StageEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StageEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(stageevent.FieldInputDigest) {
		fields = append(fields, stageevent.FieldInputDigest)
	}
	if m.FieldCleared(stageevent.FieldOutputDigest) {
		fields = append(fields, stageevent.FieldOutputDigest)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StageEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StageEventMutation) ClearField(name string) error {
	switch name {
	case stageevent.FieldInputDigest:
		m.ClearInputDigest()
		return nil
	case stageevent.FieldOutputDigest:
		m.ClearOutputDigest()
		return nil
	}
	return fmt.Errorf("unknown StageEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StageEventMutation) ResetField(name string) error {
	switch name {
	case stageevent.FieldRequestID:
		m.ResetRequestID()
		return nil
	case stageevent.FieldCategoryID:
		m.ResetCategoryID()
		return nil
	case stageevent.FieldStageName:
		m.ResetStageName()
		return nil
	case stageevent.FieldStageOrder:
		m.ResetStageOrder()
		return nil
	case stageevent.FieldExecuted:
		m.ResetExecuted()
		return nil
	case stageevent.FieldSkipped:
		m.ResetSkipped()
		return nil
	case stageevent.FieldInputDigest:
		m.ResetInputDigest()
		return nil
	case stageevent.FieldOutputDigest:
		m.ResetOutputDigest()
		return nil
	case stageevent.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case stageevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StageEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StageEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.request != nil {
		edges = append(edges, stageevent.EdgeRequest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StageEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case stageevent.EdgeRequest:
		if id := m.request; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StageEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StageEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StageEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrequest {
		edges = append(edges, stageevent.EdgeRequest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StageEventMutation) EdgeCleared(name string) bool {
	switch name {
	case stageevent.EdgeRequest:
		return m.clearedrequest
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StageEventMutation) ClearEdge(name string) error {
	switch name {
	case stageevent.EdgeRequest:
		m.ClearRequest()
		return nil
	}
	return fmt.Errorf("unknown StageEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StageEventMutation) ResetEdge(name string) error {
	switch name {
	case stageevent.EdgeRequest:
		m.ResetRequest()
		return nil
	}
	return fmt.Errorf("unknown StageEvent edge %s", name)
}

// SummaryHistoryMutation represents an operation that mutates the SummaryHistory nodes in the graph.
type SummaryHistoryMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	category_result_id    *string
	style_name            *string
	provider              *string
	model                 *string
	generated_summary     *string
	error_message         *string
	generation_time_ms    *int
	addgeneration_time_ms *int
	tokens_used           *int
	addtokens_used        *int
	cost_estimate         *float64
	addcost_estimate      *float64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*SummaryHistory, error)
	predicates            []predicate.SummaryHistory
}

var _ ent.Mutation = (*SummaryHistoryMutation)(nil)

// summaryhistoryOption allows management of the mutation configuration using functional options.
type summaryhistoryOption func(*SummaryHistoryMutation)

// newSummaryHistoryMutation creates new mutation for the SummaryHistory entity.
func newSummaryHistoryMutation(c config, op Op, opts ...summaryhistoryOption) *SummaryHistoryMutation {
	m := &SummaryHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSummaryHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryHistoryID sets the ID field of the mutation.
func withSummaryHistoryID(id string) summaryhistoryOption {
	return func(m *SummaryHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SummaryHistory
		)
		m.oldValue = func(ctx context.Context) (*SummaryHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SummaryHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummaryHistory sets the old SummaryHistory of the mutation.
func withSummaryHistory(node *SummaryHistory) summaryhistoryOption {
	return func(m *SummaryHistoryMutation) {
		m.oldValue = func(context.Context) (*SummaryHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SummaryHistory entities.
func (m *SummaryHistoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryHistoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryHistoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SummaryHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCategoryResultID sets the "category_result_id" field.
func (m *SummaryHistoryMutation) SetCategoryResultID(s string) {
	m.category_result_id = &s
}

// CategoryResultID returns the value of the "category_result_id" field in the mutation.
func (m *SummaryHistoryMutation) CategoryResultID() (r string, exists bool) {
	v := m.category_result_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryResultID returns the old "category_result_id" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldCategoryResultID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryResultID: %w", err)
	}
	return oldValue.CategoryResultID, nil
}

// ResetCategoryResultID resets all changes to the "category_result_id" field.
func (m *SummaryHistoryMutation) ResetCategoryResultID() {
	m.category_result_id = nil
}

// SetStyleName sets the "style_name" field.
func (m *SummaryHistoryMutation) SetStyleName(s string) {
	m.style_name = &s
}

// StyleName returns the value of the "style_name" field in the mutation.
func (m *SummaryHistoryMutation) StyleName() (r string, exists bool) {
	v := m.style_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStyleName returns the old "style_name" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldStyleName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyleName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyleName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyleName: %w", err)
	}
	return oldValue.StyleName, nil
}

// ResetStyleName resets all changes to the "style_name" field.
func (m *SummaryHistoryMutation) ResetStyleName() {
	m.style_name = nil
}

// SetProvider sets the "provider" field.
func (m *SummaryHistoryMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *SummaryHistoryMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *SummaryHistoryMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[summaryhistory.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *SummaryHistoryMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[summaryhistory.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *SummaryHistoryMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, summaryhistory.FieldProvider)
}

// SetModel sets the "model" field.
func (m *SummaryHistoryMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *SummaryHistoryMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *SummaryHistoryMutation) ClearModel() {
	m.model = nil
	m.clearedFields[summaryhistory.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *SummaryHistoryMutation) ModelCleared() bool {
	_, ok := m.clearedFields[summaryhistory.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *SummaryHistoryMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, summaryhistory.FieldModel)
}

// SetGeneratedSummary sets the "generated_summary" field.
func (m *SummaryHistoryMutation) SetGeneratedSummary(s string) {
	m.generated_summary = &s
}

// GeneratedSummary returns the value of the "generated_summary" field in the mutation.
func (m *SummaryHistoryMutation) GeneratedSummary() (r string, exists bool) {
	v := m.generated_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedSummary returns the old "generated_summary" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldGeneratedSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedSummary: %w", err)
	}
	return oldValue.GeneratedSummary, nil
}

// ClearGeneratedSummary clears the value of the "generated_summary" field.
func (m *SummaryHistoryMutation) ClearGeneratedSummary() {
	m.generated_summary = nil
	m.clearedFields[summaryhistory.FieldGeneratedSummary] = struct{}{}
}

// GeneratedSummaryCleared returns if the "generated_summary" field was cleared in this mutation.
func (m *SummaryHistoryMutation) GeneratedSummaryCleared() bool {
	_, ok := m.clearedFields[summaryhistory.FieldGeneratedSummary]
	return ok
}

// ResetGeneratedSummary resets all changes to the "generated_summary" field.
func (m *SummaryHistoryMutation) ResetGeneratedSummary() {
	m.generated_summary = nil
	delete(m.clearedFields, summaryhistory.FieldGeneratedSummary)
}

// SetErrorMessage sets the "error_message" field.
func (m *SummaryHistoryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SummaryHistoryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SummaryHistoryMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[summaryhistory.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SummaryHistoryMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[summaryhistory.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SummaryHistoryMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, summaryhistory.FieldErrorMessage)
}

// SetGenerationTimeMs sets the "generation_time_ms" field.
func (m *SummaryHistoryMutation) SetGenerationTimeMs(i int) {
	m.generation_time_ms = &i
	m.addgeneration_time_ms = nil
}

// GenerationTimeMs returns the value of the "generation_time_ms" field in the mutation.
func (m *SummaryHistoryMutation) GenerationTimeMs() (r int, exists bool) {
	v := m.generation_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldGenerationTimeMs returns the old "generation_time_ms" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldGenerationTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenerationTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenerationTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenerationTimeMs: %w", err)
	}
	return oldValue.GenerationTimeMs, nil
}

// AddGenerationTimeMs adds i to the "generation_time_ms" field.
func (m *SummaryHistoryMutation) AddGenerationTimeMs(i int) {
	if m.addgeneration_time_ms != nil {
		*m.addgeneration_time_ms += i
	} else {
		m.addgeneration_time_ms = &i
	}
}

// AddedGenerationTimeMs returns the value that was added to the "generation_time_ms" field in this mutation.
func (m *SummaryHistoryMutation) AddedGenerationTimeMs() (r int, exists bool) {
	v := m.addgeneration_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetGenerationTimeMs resets all changes to the "generation_time_ms" field.
func (m *SummaryHistoryMutation) ResetGenerationTimeMs() {
	m.generation_time_ms = nil
	m.addgeneration_time_ms = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *SummaryHistoryMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *SummaryHistoryMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *SummaryHistoryMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *SummaryHistoryMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *SummaryHistoryMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *SummaryHistoryMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *SummaryHistoryMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *SummaryHistoryMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *SummaryHistoryMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *SummaryHistoryMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SummaryHistoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SummaryHistoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SummaryHistory entity.
// If the SummaryHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryHistoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SummaryHistoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SummaryHistoryMutation builder.
func (m *SummaryHistoryMutation) Where(ps ...predicate.SummaryHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SummaryHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SummaryHistory).
func (m *SummaryHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryHistoryMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.category_result_id != nil {
		fields = append(fields, summaryhistory.FieldCategoryResultID)
	}
	if m.style_name != nil {
		fields = append(fields, summaryhistory.FieldStyleName)
	}
	if m.provider != nil {
		fields = append(fields, summaryhistory.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, summaryhistory.FieldModel)
	}
	if m.generated_summary != nil {
		fields = append(fields, summaryhistory.FieldGeneratedSummary)
	}
	if m.error_message != nil {
		fields = append(fields, summaryhistory.FieldErrorMessage)
	}
	if m.generation_time_ms != nil {
		fields = append(fields, summaryhistory.FieldGenerationTimeMs)
	}
	if m.tokens_used != nil {
		fields = append(fields, summaryhistory.FieldTokensUsed)
	}
	if m.cost_estimate != nil {
		fields = append(fields, summaryhistory.FieldCostEstimate)
	}
	if m.created_at != nil {
		fields = append(fields, summaryhistory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summaryhistory.FieldCategoryResultID:
		return m.CategoryResultID()
	case summaryhistory.FieldStyleName:
		return m.StyleName()
	case summaryhistory.FieldProvider:
		return m.Provider()
	case summaryhistory.FieldModel:
		return m.Model()
	case summaryhistory.FieldGeneratedSummary:
		return m.GeneratedSummary()
	case summaryhistory.FieldErrorMessage:
		return m.ErrorMessage()
	case summaryhistory.FieldGenerationTimeMs:
		return m.GenerationTimeMs()
	case summaryhistory.FieldTokensUsed:
		return m.TokensUsed()
	case summaryhistory.FieldCostEstimate:
		return m.CostEstimate()
	case summaryhistory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summaryhistory.FieldCategoryResultID:
		return m.OldCategoryResultID(ctx)
	case summaryhistory.FieldStyleName:
		return m.OldStyleName(ctx)
	case summaryhistory.FieldProvider:
		return m.OldProvider(ctx)
	case summaryhistory.FieldModel:
		return m.OldModel(ctx)
	case summaryhistory.FieldGeneratedSummary:
		return m.OldGeneratedSummary(ctx)
	case summaryhistory.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case summaryhistory.FieldGenerationTimeMs:
		return m.OldGenerationTimeMs(ctx)
	case summaryhistory.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case summaryhistory.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case summaryhistory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SummaryHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summaryhistory.FieldCategoryResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryResultID(v)
		return nil
	case summaryhistory.FieldStyleName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyleName(v)
		return nil
	case summaryhistory.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case summaryhistory.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case summaryhistory.FieldGeneratedSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedSummary(v)
		return nil
	case summaryhistory.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case summaryhistory.FieldGenerationTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenerationTimeMs(v)
		return nil
	case summaryhistory.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case summaryhistory.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case summaryhistory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryHistoryMutation) AddedFields() []string {
	var fields []string
	if m.addgeneration_time_ms != nil {
		fields = append(fields, summaryhistory.FieldGenerationTimeMs)
	}
	if m.addtokens_used != nil {
		fields = append(fields, summaryhistory.FieldTokensUsed)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, summaryhistory.FieldCostEstimate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryHistoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case summaryhistory.FieldGenerationTimeMs:
		return m.AddedGenerationTimeMs()
	case summaryhistory.FieldTokensUsed:
		return m.AddedTokensUsed()
	case summaryhistory.FieldCostEstimate:
		return m.AddedCostEstimate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case summaryhistory.FieldGenerationTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGenerationTimeMs(v)
		return nil
	case summaryhistory.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case summaryhistory.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryHistoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(summaryhistory.FieldProvider) {
		fields = append(fields, summaryhistory.FieldProvider)
	}
	if m.FieldCleared(summaryhistory.FieldModel) {
		fields = append(fields, summaryhistory.FieldModel)
	}
	if m.FieldCleared(summaryhistory.FieldGeneratedSummary) {
		fields = append(fields, summaryhistory.FieldGeneratedSummary)
	}
	if m.FieldCleared(summaryhistory.FieldErrorMessage) {
		fields = append(fields, summaryhistory.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryHistoryMutation) ClearField(name string) error {
	switch name {
	case summaryhistory.FieldProvider:
		m.ClearProvider()
		return nil
	case summaryhistory.FieldModel:
		m.ClearModel()
		return nil
	case summaryhistory.FieldGeneratedSummary:
		m.ClearGeneratedSummary()
		return nil
	case summaryhistory.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown SummaryHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryHistoryMutation) ResetField(name string) error {
	switch name {
	case summaryhistory.FieldCategoryResultID:
		m.ResetCategoryResultID()
		return nil
	case summaryhistory.FieldStyleName:
		m.ResetStyleName()
		return nil
	case summaryhistory.FieldProvider:
		m.ResetProvider()
		return nil
	case summaryhistory.FieldModel:
		m.ResetModel()
		return nil
	case summaryhistory.FieldGeneratedSummary:
		m.ResetGeneratedSummary()
		return nil
	case summaryhistory.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case summaryhistory.FieldGenerationTimeMs:
		m.ResetGenerationTimeMs()
		return nil
	case summaryhistory.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case summaryhistory.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case summaryhistory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SummaryHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryHistoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryHistoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryHistoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SummaryHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryHistoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SummaryHistory edge %s", name)
}

// SummaryStyleMutation represents an operation that mutates the SummaryStyle nodes in the graph.
type SummaryStyleMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	system_prompt        *string
	user_template        *string
	length_type          *summarystyle.LengthType
	target_word_count    *int
	addtarget_word_count *int
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SummaryStyle, error)
	predicates           []predicate.SummaryStyle
}

var _ ent.Mutation = (*SummaryStyleMutation)(nil)

// summarystyleOption allows management of the mutation configuration using functional options.
type summarystyleOption func(*SummaryStyleMutation)

// newSummaryStyleMutation creates new mutation for the SummaryStyle entity.
func newSummaryStyleMutation(c config, op Op, opts ...summarystyleOption) *SummaryStyleMutation {
	m := &SummaryStyleMutation{
		config:        c,
		op:            op,
		typ:           TypeSummaryStyle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryStyleID sets the ID field of the mutation.
func withSummaryStyleID(id string) summarystyleOption {
	return func(m *SummaryStyleMutation) {
		var (
			err   error
			once  sync.Once
			value *SummaryStyle
		)
		m.oldValue = func(ctx context.Context) (*SummaryStyle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SummaryStyle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummaryStyle sets the old SummaryStyle of the mutation.
func withSummaryStyle(node *SummaryStyle) summarystyleOption {
	return func(m *SummaryStyleMutation) {
		m.oldValue = func(context.Context) (*SummaryStyle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryStyleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryStyleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SummaryStyle entities.
func (m *SummaryStyleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryStyleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryStyleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SummaryStyle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SummaryStyleMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SummaryStyleMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SummaryStyle entity.
// If the SummaryStyle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryStyleMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SummaryStyleMutation) ResetName() {
	m.name = nil
}

// SetSystemPrompt sets the "system_prompt" field.
func (m *SummaryStyleMutation) SetSystemPrompt(s string) {
	m.system_prompt = &s
}

// SystemPrompt returns the value of the "system_prompt" field in the mutation.
func (m *SummaryStyleMutation) SystemPrompt() (r string, exists bool) {
	v := m.system_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemPrompt returns the old "system_prompt" field's value of the SummaryStyle entity.
// If the SummaryStyle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryStyleMutation) OldSystemPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemPrompt: %w", err)
	}
	return oldValue.SystemPrompt, nil
}

// ResetSystemPrompt resets all changes to the "system_prompt" field.
func (m *SummaryStyleMutation) ResetSystemPrompt() {
	m.system_prompt = nil
}

// SetUserTemplate sets the "user_template" field.
func (m *SummaryStyleMutation) SetUserTemplate(s string) {
	m.user_template = &s
}

// UserTemplate returns the value of the "user_template" field in the mutation.
func (m *SummaryStyleMutation) UserTemplate() (r string, exists bool) {
	v := m.user_template
	if v == nil {
		return
	}
	return *v, true
}

// OldUserTemplate returns the old "user_template" field's value of the SummaryStyle entity.
// If the SummaryStyle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryStyleMutation) OldUserTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserTemplate: %w", err)
	}
	return oldValue.UserTemplate, nil
}

// ResetUserTemplate resets all changes to the "user_template" field.
func (m *SummaryStyleMutation) ResetUserTemplate() {
	m.user_template = nil
}

// SetLengthType sets the "length_type" field.
func (m *SummaryStyleMutation) SetLengthType(st summarystyle.LengthType) {
	m.length_type = &st
}

// LengthType returns the value of the "length_type" field in the mutation.
func (m *SummaryStyleMutation) LengthType() (r summarystyle.LengthType, exists bool) {
	v := m.length_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLengthType returns the old "length_type" field's value of the SummaryStyle entity.
// If the SummaryStyle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryStyleMutation) OldLengthType(ctx context.Context) (v summarystyle.LengthType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLengthType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLengthType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLengthType: %w", err)
	}
	return oldValue.LengthType, nil
}

// ResetLengthType resets all changes to the "length_type" field.
func (m *SummaryStyleMutation) ResetLengthType() {
	m.length_type = nil
}

// SetTargetWordCount sets the "target_word_count" field.
func (m *SummaryStyleMutation) SetTargetWordCount(i int) {
	m.target_word_count = &i
	m.addtarget_word_count = nil
}

// TargetWordCount returns the value of the "target_word_count" field in the mutation.
func (m *SummaryStyleMutation) TargetWordCount() (r int, exists bool) {
	v := m.target_word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetWordCount returns the old "target_word_count" field's value of the SummaryStyle entity.
// If the SummaryStyle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryStyleMutation) OldTargetWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetWordCount: %w", err)
	}
	return oldValue.TargetWordCount, nil
}

// AddTargetWordCount adds i to the "target_word_count" field.
func (m *SummaryStyleMutation) AddTargetWordCount(i int) {
	if m.addtarget_word_count != nil {
		*m.addtarget_word_count += i
	} else {
		m.addtarget_word_count = &i
	}
}

// AddedTargetWordCount returns the value that was added to the "target_word_count" field in this mutation.
func (m *SummaryStyleMutation) AddedTargetWordCount() (r int, exists bool) {
	v := m.addtarget_word_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetWordCount resets all changes to the "target_word_count" field.
func (m *SummaryStyleMutation) ResetTargetWordCount() {
	m.target_word_count = nil
	m.addtarget_word_count = nil
}

// Where appends a list predicates to the SummaryStyleMutation builder.
func (m *SummaryStyleMutation) Where(ps ...predicate.SummaryStyle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryStyleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryStyleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SummaryStyle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryStyleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryStyleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SummaryStyle).
func (m *SummaryStyleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryStyleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, summarystyle.FieldName)
	}
	if m.system_prompt != nil {
		fields = append(fields, summarystyle.FieldSystemPrompt)
	}
	if m.user_template != nil {
		fields = append(fields, summarystyle.FieldUserTemplate)
	}
	if m.length_type != nil {
		fields = append(fields, summarystyle.FieldLengthType)
	}
	if m.target_word_count != nil {
		fields = append(fields, summarystyle.FieldTargetWordCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryStyleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summarystyle.FieldName:
		return m.Name()
	case summarystyle.FieldSystemPrompt:
		return m.SystemPrompt()
	case summarystyle.FieldUserTemplate:
		return m.UserTemplate()
	case summarystyle.FieldLengthType:
		return m.LengthType()
	case summarystyle.FieldTargetWordCount:
		return m.TargetWordCount()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryStyleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summarystyle.FieldName:
		return m.OldName(ctx)
	case summarystyle.FieldSystemPrompt:
		return m.OldSystemPrompt(ctx)
	case summarystyle.FieldUserTemplate:
		return m.OldUserTemplate(ctx)
	case summarystyle.FieldLengthType:
		return m.OldLengthType(ctx)
	case summarystyle.FieldTargetWordCount:
		return m.OldTargetWordCount(ctx)
	}
	return nil, fmt.Errorf("unknown SummaryStyle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryStyleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summarystyle.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case summarystyle.FieldSystemPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemPrompt(v)
		return nil
	case summarystyle.FieldUserTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserTemplate(v)
		return nil
	case summarystyle.FieldLengthType:
		v, ok := value.(summarystyle.LengthType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLengthType(v)
		return nil
	case summarystyle.FieldTargetWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetWordCount(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryStyle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryStyleMutation) AddedFields() []string {
	var fields []string
	if m.addtarget_word_count != nil {
		fields = append(fields, summarystyle.FieldTargetWordCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryStyleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case summarystyle.FieldTargetWordCount:
		return m.AddedTargetWordCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryStyleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case summarystyle.FieldTargetWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetWordCount(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryStyle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryStyleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryStyleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryStyleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SummaryStyle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryStyleMutation) ResetField(name string) error {
	switch name {
	case summarystyle.FieldName:
		m.ResetName()
		return nil
	case summarystyle.FieldSystemPrompt:
		m.ResetSystemPrompt()
		return nil
	case summarystyle.FieldUserTemplate:
		m.ResetUserTemplate()
		return nil
	case summarystyle.FieldLengthType:
		m.ResetLengthType()
		return nil
	case summarystyle.FieldTargetWordCount:
		m.ResetTargetWordCount()
		return nil
	}
	return fmt.Errorf("unknown SummaryStyle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryStyleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryStyleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryStyleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryStyleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryStyleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryStyleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryStyleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SummaryStyle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryStyleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SummaryStyle edge %s", name)
}
