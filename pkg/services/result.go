package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
)

// ResultService serves composed final outputs and their building blocks.
type ResultService struct {
	client   *ent.Client
	recorder *audit.Recorder
	logger   *slog.Logger
}

// NewResultService creates a result service.
func NewResultService(client *ent.Client, recorder *audit.Recorder) *ResultService {
	return &ResultService{
		client:   client,
		recorder: recorder,
		logger:   slog.With("component", "result_service"),
	}
}

// Get returns the final output for a completed request. Non-terminal
// requests report ErrProcessing; failed or cancelled ones without a composed
// document report ErrRequestFailed. Access is audited.
func (s *ResultService) Get(ctx context.Context, requestID string) (*ent.FinalOutput, error) {
	req, err := s.client.AnalysisRequest.Get(ctx, requestID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}

	out, err := s.client.FinalOutput.Query().
		Where(finaloutput.RequestID(requestID)).
		Only(ctx)
	if err == nil {
		if aErr := s.recorder.Record(ctx, audit.Entry{
			EventType:     audit.EventUserAccess,
			EntityType:    "final_output",
			EntityID:      out.ID,
			RequestID:     requestID,
			CorrelationID: req.CorrelationID,
		}); aErr != nil {
			s.logger.Warn("Failed to audit result access", "request_id", requestID, "error", aErr)
		}
		return out, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load final output: %w", err)
	}

	tr, err := s.client.ProcessTracking.Query().
		Where(processtracking.RequestID(requestID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load tracking for %s: %w", requestID, err)
	}
	switch tr.Status {
	case processtracking.StatusFailed, processtracking.StatusCancelled:
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, tr.Status)
	}
	return nil, ErrProcessing
}

// CategoryResults returns the per-category rows for one request, in creation
// order.
func (s *ResultService) CategoryResults(ctx context.Context, requestID string) ([]*ent.CategoryResult, error) {
	rows, err := s.client.CategoryResult.Query().
		Where(categoryresult.RequestID(requestID)).
		Order(ent.Asc(categoryresult.FieldCategoryID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load category results: %w", err)
	}
	return rows, nil
}

// ParameterResults returns the scored parameters for one request, ordered by
// route then parameter.
func (s *ResultService) ParameterResults(ctx context.Context, requestID string) ([]*ent.ParameterResult, error) {
	rows, err := s.client.ParameterResult.Query().
		Where(parameterresult.RequestID(requestID)).
		Order(
			ent.Asc(parameterresult.FieldDeliveryMethod),
			ent.Asc(parameterresult.FieldParameter),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load parameter results: %w", err)
	}
	return rows, nil
}
