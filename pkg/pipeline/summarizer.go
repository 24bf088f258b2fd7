package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
)

// SummaryResult is the summarize-stage output plus generation metadata. A
// summary_history row is appended regardless of success; failures carry Err
// and an empty Summary.
type SummaryResult struct {
	Summary          string
	StyleName        string
	Provider         string
	Model            string
	GenerationTimeMS int64
	TokensUsed       int
	CostEstimate     float64
	Err              error
}

// Summarizer turns a merged narrative into the final per-category prose
// summary using the category's configured style.
type Summarizer struct {
	llm         Completer
	providerCfg *config.ProviderConfig
	styles      *config.StyleRegistry
	logger      *slog.Logger
}

// NewSummarizer creates a summary generator. providerCfg identifies the LLM
// used for metadata and cost estimation.
func NewSummarizer(llm Completer, providerCfg *config.ProviderConfig, styles *config.StyleRegistry) *Summarizer {
	return &Summarizer{
		llm:         llm,
		providerCfg: providerCfg,
		styles:      styles,
		logger:      slog.With("component", "summarizer"),
	}
}

// styleParams feeds the style's user template.
type styleParams struct {
	DrugName    string
	MergedText  string
	TargetWords int
}

// Generate produces the category summary in the configured style.
func (s *Summarizer) Generate(ctx context.Context, drugName, mergedText string, cat *config.CategoryConfig) *SummaryResult {
	result := &SummaryResult{
		Provider: s.providerCfg.Name,
		Model:    s.providerCfg.Model,
	}

	style, err := s.styles.Get(cat.SummaryStyle)
	if err != nil {
		result.Err = fmt.Errorf("summary style for category %s: %w", cat.Key, err)
		return result
	}
	result.StyleName = style.Name

	user, err := renderStyleTemplate(style.UserTemplate, styleParams{
		DrugName:    drugName,
		MergedText:  mergedText,
		TargetWords: style.TargetWordCount,
	})
	if err != nil {
		result.Err = fmt.Errorf("render style template %s: %w", style.Name, err)
		return result
	}

	start := time.Now()
	text, usage, err := s.llm.Complete(ctx, style.SystemPrompt, user, 0.4)
	result.GenerationTimeMS = time.Since(start).Milliseconds()
	if err != nil {
		result.Err = fmt.Errorf("summary generation for category %s: %w", cat.Key, err)
		return result
	}

	result.Summary = text
	result.TokensUsed = usage.TotalTokens
	result.CostEstimate = float64(usage.PromptTokens)/1000*s.providerCfg.InputCostPer1K +
		float64(usage.CompletionTokens)/1000*s.providerCfg.OutputCostPer1K
	return result
}

func renderStyleTemplate(tmpl string, params styleParams) (string, error) {
	t, err := template.New("style").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}
