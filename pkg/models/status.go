package models

import "time"

// StatusView is the external projection of a request's process tracking row.
type StatusView struct {
	RequestID           string         `json:"request_id"`
	DrugName            string         `json:"drug_name"`
	Status              string         `json:"status"`
	ProgressPercent     int            `json:"progress_percent"`
	CategoriesTotal     int            `json:"categories_total"`
	CategoriesCompleted int            `json:"categories_completed"`
	EstimatedCompletion *time.Time     `json:"estimated_completion,omitempty"`
	ErrorDetails        string         `json:"error_details,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	CompletedAt         *time.Time     `json:"completed_at,omitempty"`
	History             []StatusChange `json:"history,omitempty"`
}

// StatusChange is one entry in a request's status history, projected from the
// per-stage timestamp columns.
type StatusChange struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// BulkStatusResponse maps request IDs to their status views. Unknown IDs are
// listed separately rather than failing the whole call.
type BulkStatusResponse struct {
	Found    int                    `json:"found"`
	NotFound int                    `json:"not_found"`
	Statuses map[string]*StatusView `json:"statuses"`
	Missing  []string               `json:"missing,omitempty"`
}
