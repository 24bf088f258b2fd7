package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/owais-symtera/cognito-sub001/ent"
	"github.com/owais-symtera/cognito-sub001/ent/categorydependency"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
	"github.com/owais-symtera/cognito-sub001/ent/pipelinestage"
	"github.com/owais-symtera/cognito-sub001/ent/scoringparameter"
	"github.com/owais-symtera/cognito-sub001/ent/scoringrange"
	"github.com/owais-symtera/cognito-sub001/ent/summarystyle"
	"github.com/owais-symtera/cognito-sub001/pkg/audit"
	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// RefDataService mirrors the loaded configuration into the reference tables
// so the rubric, categories, and styles that produced a result can be
// inspected and audited later.
type RefDataService struct {
	client   *ent.Client
	cfg      *config.Config
	recorder *audit.Recorder
	logger   *slog.Logger
}

// NewRefDataService creates a reference-data seeder.
func NewRefDataService(client *ent.Client, cfg *config.Config, recorder *audit.Recorder) *RefDataService {
	return &RefDataService{
		client:   client,
		cfg:      cfg,
		recorder: recorder,
		logger:   slog.With("component", "refdata"),
	}
}

// Seed upserts categories, dependencies, styles, stages, and scoring
// configuration. Safe to run on every startup.
func (s *RefDataService) Seed(ctx context.Context) error {
	catIDs, err := s.seedCategories(ctx)
	if err != nil {
		return err
	}
	if err := s.seedDependencies(ctx, catIDs); err != nil {
		return err
	}
	if err := s.seedStyles(ctx); err != nil {
		return err
	}
	if err := s.seedStages(ctx); err != nil {
		return err
	}
	if err := s.seedScoring(ctx); err != nil {
		return err
	}

	if err := s.recorder.Record(ctx, audit.Entry{
		EventType:  audit.EventUpdate,
		EntityType: "reference_data",
		EntityID:   "seed",
		NewValues: map[string]any{
			"categories": s.cfg.CategoryRegistry.Len(),
			"styles":     s.cfg.StyleRegistry.Len(),
			"rubric":     len(s.cfg.Scoring.Ranges),
		},
	}); err != nil {
		return err
	}
	s.logger.Info("Reference data seeded",
		"categories", s.cfg.CategoryRegistry.Len(),
		"styles", s.cfg.StyleRegistry.Len())
	return nil
}

func (s *RefDataService) seedCategories(ctx context.Context) (map[string]string, error) {
	ids := make(map[string]string)
	for _, cat := range s.cfg.CategoryRegistry.All() {
		rules := make(map[string]any, len(cat.ProcessingRules)+2)
		for k, v := range cat.ProcessingRules {
			rules[k] = v
		}
		rules["summary_style"] = cat.SummaryStyle
		rules["extraction_keys"] = cat.ExtractionKeys

		vc := map[string]any{
			"min_sections":       cat.Verification.MinSections,
			"min_length":         cat.Verification.MinLength,
			"require_numeric":    cat.Verification.RequireNumeric,
			"require_table":      cat.Verification.RequireTable,
			"required_terms":     cat.Verification.RequiredTerms,
			"confidence_penalty": cat.Verification.ConfidencePenalty,
		}

		existing, err := s.client.PharmaCategory.Query().
			Where(pharmacategory.Key(cat.Key)).
			Only(ctx)
		switch {
		case err == nil:
			if _, err := existing.Update().
				SetName(cat.Name).
				SetPhase(cat.Phase).
				SetDisplayOrder(cat.DisplayOrder).
				SetIsActive(cat.IsActive()).
				SetPromptTemplate(cat.PromptTemplate).
				SetVerificationCriteria(vc).
				SetProcessingRules(rules).
				SetConflictResolutionStrategy(strategyOrDefault(cat.ConflictResolutionStrategy)).
				Save(ctx); err != nil {
				return nil, fmt.Errorf("failed to update category %s: %w", cat.Key, err)
			}
			ids[cat.Key] = existing.ID
		case ent.IsNotFound(err):
			id := uuid.NewString()
			if _, err := s.client.PharmaCategory.Create().
				SetID(id).
				SetName(cat.Name).
				SetKey(cat.Key).
				SetPhase(cat.Phase).
				SetDisplayOrder(cat.DisplayOrder).
				SetIsActive(cat.IsActive()).
				SetPromptTemplate(cat.PromptTemplate).
				SetVerificationCriteria(vc).
				SetProcessingRules(rules).
				SetConflictResolutionStrategy(strategyOrDefault(cat.ConflictResolutionStrategy)).
				Save(ctx); err != nil {
				return nil, fmt.Errorf("failed to create category %s: %w", cat.Key, err)
			}
			ids[cat.Key] = id
		default:
			return nil, fmt.Errorf("failed to query category %s: %w", cat.Key, err)
		}
	}
	return ids, nil
}

func (s *RefDataService) seedDependencies(ctx context.Context, catIDs map[string]string) error {
	for _, cat := range s.cfg.CategoryRegistry.All() {
		dependentID := catIDs[cat.Key]
		for _, dep := range cat.DependsOn {
			requiredID, ok := catIDs[dep]
			if !ok {
				continue
			}
			exists, err := s.client.CategoryDependency.Query().
				Where(
					categorydependency.DependentID(dependentID),
					categorydependency.RequiredID(requiredID),
				).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("failed to query dependency %s -> %s: %w", cat.Key, dep, err)
			}
			if exists {
				continue
			}
			if _, err := s.client.CategoryDependency.Create().
				SetID(uuid.NewString()).
				SetDependentID(dependentID).
				SetRequiredID(requiredID).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to create dependency %s -> %s: %w", cat.Key, dep, err)
			}
		}
	}
	return nil
}

func (s *RefDataService) seedStyles(ctx context.Context) error {
	for _, name := range s.cfg.StyleRegistry.Names() {
		style, err := s.cfg.StyleRegistry.Get(name)
		if err != nil {
			return err
		}
		existing, err := s.client.SummaryStyle.Query().
			Where(summarystyle.Name(style.Name)).
			Only(ctx)
		switch {
		case err == nil:
			if _, err := existing.Update().
				SetSystemPrompt(style.SystemPrompt).
				SetUserTemplate(style.UserTemplate).
				SetLengthType(summarystyle.LengthType(style.LengthType)).
				SetTargetWordCount(style.TargetWordCount).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to update style %s: %w", style.Name, err)
			}
		case ent.IsNotFound(err):
			if _, err := s.client.SummaryStyle.Create().
				SetID(uuid.NewString()).
				SetName(style.Name).
				SetSystemPrompt(style.SystemPrompt).
				SetUserTemplate(style.UserTemplate).
				SetLengthType(summarystyle.LengthType(style.LengthType)).
				SetTargetWordCount(style.TargetWordCount).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to create style %s: %w", style.Name, err)
			}
		default:
			return fmt.Errorf("failed to query style %s: %w", style.Name, err)
		}
	}
	return nil
}

func (s *RefDataService) seedStages(ctx context.Context) error {
	for i, stage := range config.StageOrder {
		existing, err := s.client.PipelineStage.Query().
			Where(pipelinestage.NameEQ(pipelinestage.Name(stage))).
			Only(ctx)
		switch {
		case err == nil:
			if _, err := existing.Update().
				SetStageOrder(i + 1).
				SetEnabled(s.cfg.Stages.IsEnabled(stage)).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to update stage %s: %w", stage, err)
			}
		case ent.IsNotFound(err):
			if _, err := s.client.PipelineStage.Create().
				SetID(uuid.NewString()).
				SetName(pipelinestage.Name(stage)).
				SetStageOrder(i + 1).
				SetEnabled(s.cfg.Stages.IsEnabled(stage)).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to create stage %s: %w", stage, err)
			}
		default:
			return fmt.Errorf("failed to query stage %s: %w", stage, err)
		}
	}
	return nil
}

// seedScoring upserts the parameter weights and seeds rubric rows once. The
// rubric has no natural key, so a populated table is left untouched.
func (s *RefDataService) seedScoring(ctx context.Context) error {
	for _, p := range s.cfg.Scoring.Parameters {
		existing, err := s.client.ScoringParameter.Query().
			Where(scoringparameter.NameEQ(scoringparameter.Name(p.Name))).
			Only(ctx)
		switch {
		case err == nil:
			if _, err := existing.Update().
				SetWeight(p.Weight).
				SetUnit(p.Unit).
				SetDisplayOrder(p.DisplayOrder).
				SetExtractionInstruction(p.ExtractionInstruction).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to update scoring parameter %s: %w", p.Name, err)
			}
		case ent.IsNotFound(err):
			if _, err := s.client.ScoringParameter.Create().
				SetID(uuid.NewString()).
				SetName(scoringparameter.Name(p.Name)).
				SetWeight(p.Weight).
				SetUnit(p.Unit).
				SetDisplayOrder(p.DisplayOrder).
				SetExtractionInstruction(p.ExtractionInstruction).
				Save(ctx); err != nil {
				return fmt.Errorf("failed to create scoring parameter %s: %w", p.Name, err)
			}
		default:
			return fmt.Errorf("failed to query scoring parameter %s: %w", p.Name, err)
		}
	}

	count, err := s.client.ScoringRange.Query().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count rubric ranges: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, r := range s.cfg.Scoring.Ranges {
		create := s.client.ScoringRange.Create().
			SetID(uuid.NewString()).
			SetParameter(scoringrange.Parameter(r.Parameter)).
			SetDeliveryMethod(scoringrange.DeliveryMethod(r.DeliveryMethod)).
			SetScore(r.Score).
			SetIsExclusion(r.IsExclusion).
			SetRangeText(r.RangeText)
		if r.Min != nil {
			create.SetMinValue(*r.Min)
		}
		if r.Max != nil {
			create.SetMaxValue(*r.Max)
		}
		if _, err := create.Save(ctx); err != nil {
			return fmt.Errorf("failed to create rubric range: %w", err)
		}
	}
	return nil
}

func strategyOrDefault(s string) string {
	if s == "" {
		return "authority_weighted"
	}
	return s
}
