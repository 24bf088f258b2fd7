// Package models contains value types shared between services, the pipeline,
// and the API layer.
package models

import (
	"time"

	"github.com/owais-symtera/cognito-sub001/ent"
)

// SubmitRequest contains fields for submitting a drug analysis request.
// Multiple drug names produce one AnalysisRequest per drug, all sharing the
// same correlation ID.
type SubmitRequest struct {
	DrugNames      []string       `json:"drug_names"`
	DeliveryMethod string         `json:"delivery_method,omitempty"`
	Categories     []string       `json:"categories,omitempty"`
	Priority       string         `json:"priority,omitempty"`
	CorrelationID  string         `json:"correlation_id,omitempty"`
	CallbackURL    string         `json:"callback_url,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
}

// SubmitAck acknowledges an accepted submission.
type SubmitAck struct {
	RequestID             string    `json:"request_id"`
	RequestIDs            []string  `json:"request_ids,omitempty"`
	CorrelationID         string    `json:"correlation_id"`
	Status                string    `json:"status"`
	Message               string    `json:"message"`
	DrugCount             int       `json:"drug_count"`
	CategoryCount         int       `json:"category_count"`
	EstimatedCompletionMS int64     `json:"estimated_completion_time_ms"`
	EstimatedCompletion   time.Time `json:"estimated_completion"`
	ResultsURL            string    `json:"results_url"`
}

// RequestFilters contains filtering options for listing analysis requests
type RequestFilters struct {
	Status         string     `json:"status,omitempty"`
	DrugName       string     `json:"drug_name,omitempty"`
	DeliveryMethod string     `json:"delivery_method,omitempty"`
	Priority       string     `json:"priority,omitempty"`
	CorrelationID  string     `json:"correlation_id,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// RequestListResponse contains a paginated request list
type RequestListResponse struct {
	Requests   []*ent.AnalysisRequest `json:"requests"`
	TotalCount int                    `json:"total_count"`
	Limit      int                    `json:"limit"`
	Offset     int                    `json:"offset"`
}
