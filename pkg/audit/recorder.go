// Package audit maintains the append-only compliance event log. Every
// mutation of a request, category result, or tracking row is recorded with
// old/new values; audit rows are never updated or deleted, only archived.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/auditevent"
)

// Event types recorded in the audit log.
const (
	EventCreate             = auditevent.EventTypeCreate
	EventUpdate             = auditevent.EventTypeUpdate
	EventDelete             = auditevent.EventTypeDelete
	EventProcessStart       = auditevent.EventTypeProcessStart
	EventProcessComplete    = auditevent.EventTypeProcessComplete
	EventProcessError       = auditevent.EventTypeProcessError
	EventSourceVerification = auditevent.EventTypeSourceVerification
	EventConflictResolution = auditevent.EventTypeConflictResolution
	EventDataExport         = auditevent.EventTypeDataExport
	EventUserAccess         = auditevent.EventTypeUserAccess
)

// Entry is one audit record before persistence.
type Entry struct {
	EventType     auditevent.EventType
	EntityType    string
	EntityID      string
	RequestID     string
	OldValues     map[string]any
	NewValues     map[string]any
	Actor         string
	CorrelationID string
	IPAddress     string
	UserAgent     string
}

// Recorder writes audit events. Mutations must audit inside the same
// transaction as the write; a failed audit write fails the mutation.
type Recorder struct {
	client *ent.Client
	logger *slog.Logger
}

// NewRecorder creates an audit recorder.
func NewRecorder(client *ent.Client) *Recorder {
	return &Recorder{
		client: client,
		logger: slog.With("component", "audit"),
	}
}

// Record appends one audit event using the recorder's own client. Use
// RecordTx for writes that must be atomic with a mutation.
func (r *Recorder) Record(ctx context.Context, e Entry) error {
	return r.record(ctx, r.client, e)
}

// RecordTx appends one audit event inside an open transaction.
func (r *Recorder) RecordTx(ctx context.Context, tx *ent.Tx, e Entry) error {
	return r.record(ctx, tx.Client(), e)
}

func (r *Recorder) record(ctx context.Context, client *ent.Client, e Entry) error {
	if e.Actor == "" {
		e.Actor = "system"
	}
	create := client.AuditEvent.Create().
		SetID(uuid.NewString()).
		SetEventType(e.EventType).
		SetEntityType(e.EntityType).
		SetEntityID(e.EntityID).
		SetActor(e.Actor).
		SetTimestamp(time.Now().UTC())

	if e.RequestID != "" {
		create.SetRequestID(e.RequestID)
	}
	if e.CorrelationID != "" {
		create.SetCorrelationID(e.CorrelationID)
	}
	if e.IPAddress != "" {
		create.SetIPAddress(e.IPAddress)
	}
	if e.UserAgent != "" {
		create.SetUserAgent(e.UserAgent)
	}
	if len(e.OldValues) > 0 {
		create.SetOldValues(Sanitize(e.OldValues))
	}
	if len(e.NewValues) > 0 {
		create.SetNewValues(Sanitize(e.NewValues))
	}

	if _, err := create.Save(ctx); err != nil {
		r.logger.Error("Audit write failed",
			"event_type", e.EventType,
			"entity_type", e.EntityType,
			"entity_id", e.EntityID,
			"error", err)
		return fmt.Errorf("audit write failed: %w", err)
	}
	return nil
}

// Sanitize makes a value map JSON-safe. Values that fail to marshal are
// replaced by their string rendering so one odd field cannot lose the event.
func Sanitize(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		if _, err := json.Marshal(v); err != nil {
			out[k] = fmt.Sprintf("%v", v)
			continue
		}
		out[k] = v
	}
	return out
}
