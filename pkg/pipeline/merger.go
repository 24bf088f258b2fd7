package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/provider"
)

// Merge methods, persisted on MergedData.
const (
	MergeMethodLLMAssisted       = "llm_assisted"
	MergeMethodFallbackWeighted  = "fallback_weighted"
	MergeMethodSummaryExtraction = "summary_extraction"
	MergeMethodNone              = "none"
)

// Completer runs one internal LLM call. Satisfied by provider.ChatClient.
type Completer interface {
	Complete(ctx context.Context, system, user string, temperature float64) (string, provider.Usage, error)
}

// WeightedResponse pairs a raw provider response with its source weight and
// per-source validation pass rate.
type WeightedResponse struct {
	Response *provider.Response
	Weight   provider.SourceWeight
	PassRate float64
}

// Conflict is one reconciled disagreement between sources.
type Conflict struct {
	Field       string   `json:"field"`
	Description string   `json:"description"`
	Sources     []string `json:"sources"`
	Chosen      string   `json:"chosen"`
	Reason      string   `json:"reason"`
	IsCritical  bool     `json:"is_critical"`
}

// MergeResult is the canonical merged artifact for one category.
type MergeResult struct {
	MergedText     string
	StructuredData map[string]any
	Confidence     float64
	DataQuality    float64
	Conflicts      []Conflict
	KeyFindings    []string
	Method         string
}

// Merger reconciles N weighted provider responses into one merged artifact.
type Merger struct {
	llm    Completer
	topK   int
	logger *slog.Logger
}

// NewMerger creates a merger. topK bounds how many sources the weighted
// fallback concatenates.
func NewMerger(llm Completer, topK int) *Merger {
	if topK <= 0 {
		topK = 3
	}
	return &Merger{
		llm:    llm,
		topK:   topK,
		logger: slog.With("component", "merger"),
	}
}

// mergeEnvelope is the machine-parseable JSON the merge prompt demands.
type mergeEnvelope struct {
	MergedText     string         `json:"merged_text"`
	StructuredData map[string]any `json:"structured_data"`
	Conflicts      []Conflict     `json:"conflicts"`
	KeyFindings    []string       `json:"key_findings"`
}

// Merge produces the merged narrative, typed structured payload, and resolved
// conflict list for one category. Falls back to weighted concatenation when
// the LLM call or envelope parse fails.
func (m *Merger) Merge(ctx context.Context, drugName string, cat *config.CategoryConfig, responses []WeightedResponse) *MergeResult {
	if len(responses) == 0 {
		return &MergeResult{
			StructuredData: map[string]any{},
			Method:         MergeMethodNone,
		}
	}

	sortResponses(responses)
	confidence := weightedConfidence(responses)
	quality := weightedPassRate(responses)

	result := m.llmMerge(ctx, drugName, cat, responses)
	if result == nil {
		result = m.fallbackMerge(responses)
	}
	result.Confidence = confidence
	result.DataQuality = quality

	if len(cat.ExtractionKeys) > 0 && missingKeys(result.StructuredData, cat.ExtractionKeys) {
		if m.extractStructured(ctx, drugName, cat, result) && result.Method == MergeMethodFallbackWeighted {
			result.Method = MergeMethodSummaryExtraction
		}
	}
	return result
}

// sortResponses orders sources by the documented tie-break: higher authority
// first, then longer content, then alphabetically by provider id.
func sortResponses(responses []WeightedResponse) {
	sort.SliceStable(responses, func(i, j int) bool {
		if responses[i].Weight.Weight != responses[j].Weight.Weight {
			return responses[i].Weight.Weight > responses[j].Weight.Weight
		}
		li, lj := len(responses[i].Response.Text), len(responses[j].Response.Text)
		if li != lj {
			return li > lj
		}
		return responses[i].Weight.Provider < responses[j].Weight.Provider
	})
}

// weightedConfidence is sum(w_i * cred_i) / sum(w_i).
func weightedConfidence(responses []WeightedResponse) float64 {
	var num, den float64
	for _, r := range responses {
		num += float64(r.Weight.Weight) * r.Weight.Credibility
		den += float64(r.Weight.Weight)
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// weightedPassRate is the authority-weighted mean validation pass rate.
func weightedPassRate(responses []WeightedResponse) float64 {
	var num, den float64
	for _, r := range responses {
		num += float64(r.Weight.Weight) * r.PassRate
		den += float64(r.Weight.Weight)
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func (m *Merger) llmMerge(ctx context.Context, drugName string, cat *config.CategoryConfig, responses []WeightedResponse) *MergeResult {
	if m.llm == nil {
		return nil
	}

	text, _, err := m.llm.Complete(ctx, mergeSystemPrompt, m.mergeUserPrompt(drugName, cat, responses), 0.2)
	if err != nil {
		m.logger.Warn("LLM merge call failed, using weighted fallback",
			"category", cat.Key, "error", err)
		return nil
	}

	var env mergeEnvelope
	if err := json.Unmarshal([]byte(provider.StripFences(text)), &env); err != nil {
		m.logger.Warn("LLM merge output unparseable, using weighted fallback",
			"category", cat.Key, "error", err)
		return nil
	}
	if strings.TrimSpace(env.MergedText) == "" {
		return nil
	}
	if env.StructuredData == nil {
		env.StructuredData = map[string]any{}
	}
	return &MergeResult{
		MergedText:     env.MergedText,
		StructuredData: env.StructuredData,
		Conflicts:      env.Conflicts,
		KeyFindings:    env.KeyFindings,
		Method:         MergeMethodLLMAssisted,
	}
}

const mergeSystemPrompt = `You are a pharmaceutical data analyst merging research from multiple sources of varying authority. Prefer higher-authority sources when they disagree; within the same authority class prefer the longer, more detailed source. Enumerate every disagreement you resolved. Respond with a single JSON object: {"merged_text": "<markdown narrative>", "structured_data": {<typed fields>}, "conflicts": [{"field", "description", "sources", "chosen", "reason", "is_critical"}], "key_findings": ["<short finding>"]}. No prose outside the JSON.`

func (m *Merger) mergeUserPrompt(drugName string, cat *config.CategoryConfig, responses []WeightedResponse) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Drug: %s\nCategory: %s\n", drugName, cat.Name)
	if len(cat.ExtractionKeys) > 0 {
		fmt.Fprintf(&sb, "Structured data keys to populate: %s\n", strings.Join(cat.ExtractionKeys, ", "))
	}
	sb.WriteString("\n")
	for i, r := range responses {
		fmt.Fprintf(&sb, "SOURCE %d (provider=%s, authority=%s, weight=%d, credibility=%.2f, validation_pass_rate=%.2f):\n%s\n\n",
			i+1, r.Weight.Provider, r.Weight.Authority, r.Weight.Weight, r.Weight.Credibility, r.PassRate, r.Response.Text)
	}
	return sb.String()
}

// fallbackMerge concatenates the top-K sources by weight into a sectioned
// document with empty structured data.
func (m *Merger) fallbackMerge(responses []WeightedResponse) *MergeResult {
	var sb strings.Builder
	for i, r := range responses {
		if i >= m.topK {
			break
		}
		fmt.Fprintf(&sb, "## Source: %s (%s)\n\n%s\n\n", r.Weight.Provider, r.Weight.Authority, r.Response.Text)
	}
	return &MergeResult{
		MergedText:     strings.TrimSpace(sb.String()),
		StructuredData: map[string]any{},
		Method:         MergeMethodFallbackWeighted,
	}
}

// extractStructured runs the secondary extraction call to populate structured
// keys the merge did not. Returns true when at least one key was filled.
func (m *Merger) extractStructured(ctx context.Context, drugName string, cat *config.CategoryConfig, result *MergeResult) bool {
	if m.llm == nil || strings.TrimSpace(result.MergedText) == "" {
		return false
	}

	system := fmt.Sprintf(
		"Extract the following fields about %s from the text as a single JSON object with exactly these keys: %s. Use null for fields the text does not support. No prose outside the JSON.",
		drugName, strings.Join(cat.ExtractionKeys, ", "))

	text, _, err := m.llm.Complete(ctx, system, result.MergedText, 0.0)
	if err != nil {
		m.logger.Warn("Structured extraction call failed", "category", cat.Key, "error", err)
		return false
	}

	var extracted map[string]any
	if err := json.Unmarshal([]byte(provider.StripFences(text)), &extracted); err != nil {
		m.logger.Warn("Structured extraction output unparseable", "category", cat.Key, "error", err)
		return false
	}

	filled := false
	for _, key := range cat.ExtractionKeys {
		if _, ok := result.StructuredData[key]; ok {
			continue
		}
		if v, ok := extracted[key]; ok && v != nil {
			result.StructuredData[key] = v
			filled = true
		}
	}
	return filled
}

// missingKeys reports whether any extraction key is absent from the map.
func missingKeys(data map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := data[k]; !ok {
			return true
		}
	}
	return false
}
