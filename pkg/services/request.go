package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/metrics"
	"github.com/owais-symtera/cognito-sub001/pkg/models"
	"github.com/owais-symtera/cognito-sub001/pkg/tracking"
)

// maxDrugsPerSubmission bounds one submission.
const maxDrugsPerSubmission = 10

// maxBulkStatusIDs bounds one bulk status lookup.
const maxBulkStatusIDs = 100

// RequestService implements submission, status, and cancellation.
type RequestService struct {
	client   *ent.Client
	cfg      *config.Config
	tracker  *tracking.Tracker
	recorder *audit.Recorder
	logger   *slog.Logger
}

// NewRequestService creates a request service.
func NewRequestService(client *ent.Client, cfg *config.Config, tracker *tracking.Tracker, recorder *audit.Recorder) *RequestService {
	return &RequestService{
		client:   client,
		cfg:      cfg,
		tracker:  tracker,
		recorder: recorder,
		logger:   slog.With("component", "request_service"),
	}
}

// Submit validates a submission and creates one AnalysisRequest per drug,
// all sharing a correlation ID, each with its tracking row, atomically.
func (s *RequestService) Submit(ctx context.Context, in *models.SubmitRequest) (*models.SubmitAck, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	correlationID := in.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	delivery := in.DeliveryMethod
	if delivery == "" {
		delivery = s.cfg.Defaults.DeliveryMethod
	}
	priority := in.Priority
	if priority == "" {
		priority = s.cfg.Defaults.Priority
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin submission transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids := make([]string, 0, len(in.DrugNames))
	for _, drug := range in.DrugNames {
		id := uuid.NewString()
		create := tx.AnalysisRequest.Create().
			SetID(id).
			SetDrugName(drug).
			SetDeliveryMethod(analysisrequest.DeliveryMethod(delivery)).
			SetPriority(analysisrequest.Priority(priority)).
			SetCorrelationID(correlationID).
			SetDrugCount(len(in.DrugNames))
		if in.CallbackURL != "" {
			create.SetCallbackURL(in.CallbackURL)
		}
		req, err := create.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create request for %s: %w", drug, err)
		}

		if _, err := tx.ProcessTracking.Create().
			SetID(uuid.NewString()).
			SetRequestID(req.ID).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create tracking for %s: %w", drug, err)
		}

		if err := s.recorder.RecordTx(ctx, tx, audit.Entry{
			EventType:     audit.EventCreate,
			EntityType:    "analysis_request",
			EntityID:      req.ID,
			RequestID:     req.ID,
			CorrelationID: correlationID,
			NewValues: map[string]any{
				"drug_name":       drug,
				"delivery_method": delivery,
				"priority":        priority,
				"categories":      in.Categories,
			},
		}); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit submission: %w", err)
	}

	metrics.RequestsSubmitted.Add(float64(len(ids)))
	s.logger.Info("Submission accepted",
		"correlation_id", correlationID, "drugs", len(ids), "priority", priority)

	eta := s.tracker.EstimateCompletion(processtracking.StatusSubmitted, len(ids))
	categoryCount := len(s.cfg.CategoryRegistry.Phase(1)) + len(s.cfg.CategoryRegistry.Phase(2))
	return &models.SubmitAck{
		RequestID:             ids[0],
		RequestIDs:            ids,
		CorrelationID:         correlationID,
		Status:                string(processtracking.StatusSubmitted),
		Message:               fmt.Sprintf("%d analysis request(s) accepted", len(ids)),
		DrugCount:             len(ids),
		CategoryCount:         categoryCount,
		EstimatedCompletionMS: time.Until(eta).Milliseconds(),
		EstimatedCompletion:   eta,
		ResultsURL:            "/api/v1/requests/" + ids[0] + "/results",
	}, nil
}

func (s *RequestService) validate(in *models.SubmitRequest) error {
	if len(in.DrugNames) == 0 {
		return invalidf("drug_names", "at least one drug name is required")
	}
	if len(in.DrugNames) > maxDrugsPerSubmission {
		return invalidf("drug_names", "at most %d drugs per submission", maxDrugsPerSubmission)
	}
	for _, d := range in.DrugNames {
		if strings.TrimSpace(d) == "" {
			return invalidf("drug_names", "drug names must be non-empty")
		}
	}
	switch in.DeliveryMethod {
	case "", string(config.DeliveryTransdermal), string(config.DeliveryTransmucosal):
	default:
		return invalidf("delivery_method", "must be transdermal or transmucosal")
	}
	switch in.Priority {
	case "", "low", "normal", "high", "urgent":
	default:
		return invalidf("priority", "must be one of low, normal, high, urgent")
	}
	if in.CallbackURL != "" {
		u, err := url.Parse(in.CallbackURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return invalidf("callback_url", "must be an absolute http(s) URL")
		}
	}
	for _, key := range in.Categories {
		if !s.cfg.CategoryRegistry.Has(key) {
			return invalidf("categories", "unknown category %s", key)
		}
	}
	return nil
}

// Get loads a request by ID. Archived requests read as not found.
func (s *RequestService) Get(ctx context.Context, requestID string) (*ent.AnalysisRequest, error) {
	req, err := s.client.AnalysisRequest.Query().
		Where(
			analysisrequest.ID(requestID),
			analysisrequest.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	return req, nil
}

// GetStatus projects the tracking row of one request.
func (s *RequestService) GetStatus(ctx context.Context, requestID string) (*models.StatusView, error) {
	req, err := s.Get(ctx, requestID)
	if err != nil {
		return nil, err
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
	return s.statusView(req, tr), nil
}

// GetHistory returns the chronological stage-entry projection.
func (s *RequestService) GetHistory(ctx context.Context, requestID string) ([]tracking.HistoryEntry, error) {
	if _, err := s.Get(ctx, requestID); err != nil {
		return nil, err
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
	return tracking.ProjectHistory(tr), nil
}

// BulkStatus resolves up to 100 request IDs at once. Unknown IDs are listed,
// not failed.
func (s *RequestService) BulkStatus(ctx context.Context, ids []string) (*models.BulkStatusResponse, error) {
	if len(ids) == 0 {
		return nil, invalidf("request_ids", "at least one id is required")
	}
	if len(ids) > maxBulkStatusIDs {
		return nil, invalidf("request_ids", "at most %d ids per call", maxBulkStatusIDs)
	}

	reqs, err := s.client.AnalysisRequest.Query().
		Where(
			analysisrequest.IDIn(ids...),
			analysisrequest.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load requests: %w", err)
	}
	byID := make(map[string]*ent.AnalysisRequest, len(reqs))
	reqIDs := make([]string, 0, len(reqs))
	for _, r := range reqs {
		byID[r.ID] = r
		reqIDs = append(reqIDs, r.ID)
	}

	trs, err := s.client.ProcessTracking.Query().
		Where(processtracking.RequestIDIn(reqIDs...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracking rows: %w", err)
	}
	trByReq := make(map[string]*ent.ProcessTracking, len(trs))
	for _, tr := range trs {
		trByReq[tr.RequestID] = tr
	}

	out := &models.BulkStatusResponse{Statuses: make(map[string]*models.StatusView)}
	for _, id := range ids {
		req, ok := byID[id]
		tr := trByReq[id]
		if !ok || tr == nil {
			out.Missing = append(out.Missing, id)
			continue
		}
		out.Statuses[id] = s.statusView(req, tr)
	}
	out.Found = len(out.Statuses)
	out.NotFound = len(out.Missing)
	return out, nil
}

// Cancel flips a non-terminal request to cancelled. Terminal requests report
// ErrAlreadyTerminal.
func (s *RequestService) Cancel(ctx context.Context, requestID string) error {
	if _, err := s.Get(ctx, requestID); err != nil {
		return err
	}
	err := s.tracker.Transition(ctx, requestID, processtracking.StatusCancelled, "")
	if errors.Is(err, tracking.ErrInvalidTransition) {
		return ErrAlreadyTerminal
	}
	return err
}

// List returns a filtered, paginated request list.
func (s *RequestService) List(ctx context.Context, f *models.RequestFilters) (*models.RequestListResponse, error) {
	query := s.client.AnalysisRequest.Query()
	if !f.IncludeDeleted {
		query.Where(analysisrequest.DeletedAtIsNil())
	}
	if f.DrugName != "" {
		query.Where(analysisrequest.DrugNameContainsFold(f.DrugName))
	}
	if f.DeliveryMethod != "" {
		query.Where(analysisrequest.DeliveryMethodEQ(analysisrequest.DeliveryMethod(f.DeliveryMethod)))
	}
	if f.Priority != "" {
		query.Where(analysisrequest.PriorityEQ(analysisrequest.Priority(f.Priority)))
	}
	if f.CorrelationID != "" {
		query.Where(analysisrequest.CorrelationID(f.CorrelationID))
	}
	if f.Status != "" {
		query.Where(analysisrequest.HasTrackingWith(
			processtracking.StatusEQ(processtracking.Status(f.Status)),
		))
	}
	if f.CreatedAfter != nil {
		query.Where(analysisrequest.CreatedAtGTE(*f.CreatedAfter))
	}
	if f.CreatedBefore != nil {
		query.Where(analysisrequest.CreatedAtLT(*f.CreatedBefore))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count requests: %w", err)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := query.
		Order(ent.Desc(analysisrequest.FieldCreatedAt)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return &models.RequestListResponse{
		Requests:   rows,
		TotalCount: total,
		Limit:      limit,
		Offset:     f.Offset,
	}, nil
}

func (s *RequestService) statusView(req *ent.AnalysisRequest, tr *ent.ProcessTracking) *models.StatusView {
	view := &models.StatusView{
		RequestID:           req.ID,
		DrugName:            req.DrugName,
		Status:              string(tr.Status),
		ProgressPercent:     tr.ProgressPercent,
		CategoriesTotal:     tr.CategoriesTotal,
		CategoriesCompleted: tr.CategoriesCompleted,
		CreatedAt:           tr.CreatedAt,
		UpdatedAt:           tr.UpdatedAt,
		CompletedAt:         req.CompletedAt,
	}
	if tr.ErrorDetails != nil {
		view.ErrorDetails = *tr.ErrorDetails
	}
	if !tracking.IsTerminal(tr.Status) {
		eta := s.tracker.EstimateCompletion(tr.Status, req.DrugCount)
		view.EstimatedCompletion = &eta
	}
	return view
}
