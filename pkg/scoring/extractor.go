package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/provider"
)

// Extraction methods, recorded per parameter.
const (
	MethodPhase1Summary = "phase1_summary"
	MethodDedicatedLLM  = "dedicated_llm"
	MethodLiveSearch    = "live_search"
	MethodNone          = "none"
)

// Completer runs one internal LLM call. Satisfied by provider.ChatClient.
type Completer interface {
	Complete(ctx context.Context, system, user string, temperature float64) (string, provider.Usage, error)
}

// Extraction is one parameter's extracted value and the method that found it.
type Extraction struct {
	Parameter config.Parameter
	Value     *float64
	Unit      string
	Method    string
}

// Extractor resolves parameter values through the extraction waterfall:
// phase1_summary, then dedicated_llm per missing parameter, then live_search,
// then none.
type Extractor struct {
	llm     Completer
	search  provider.Provider
	scoring *config.ScoringConfig
	logger  *slog.Logger
}

// NewExtractor creates a parameter extractor. search may be nil; the
// live_search step is then skipped.
func NewExtractor(llm Completer, search provider.Provider, scoring *config.ScoringConfig) *Extractor {
	return &Extractor{
		llm:     llm,
		search:  search,
		scoring: scoring,
		logger:  slog.With("component", "param_extractor"),
	}
}

// ExtractAll runs the waterfall for all four parameters.
func (e *Extractor) ExtractAll(ctx context.Context, drugName, phase1Text string) map[config.Parameter]Extraction {
	out := make(map[config.Parameter]Extraction, len(config.Parameters))
	for _, p := range config.Parameters {
		out[p] = Extraction{Parameter: p, Method: MethodNone, Unit: e.unit(p)}
	}

	if e.llm != nil && strings.TrimSpace(phase1Text) != "" {
		for p, v := range e.fromPhase1(ctx, drugName, phase1Text) {
			entry := out[p]
			entry.Value = v
			entry.Method = MethodPhase1Summary
			out[p] = entry
		}
	}

	for _, p := range config.Parameters {
		if out[p].Value != nil {
			continue
		}
		if v := e.fromDedicatedLLM(ctx, drugName, p); v != nil {
			entry := out[p]
			entry.Value = v
			entry.Method = MethodDedicatedLLM
			out[p] = entry
			continue
		}
		if v := e.fromLiveSearch(ctx, drugName, p); v != nil {
			entry := out[p]
			entry.Value = v
			entry.Method = MethodLiveSearch
			out[p] = entry
		}
	}
	return out
}

// fromPhase1 asks for all four fields in one deterministic call over the
// concatenated Phase-1 narratives.
func (e *Extractor) fromPhase1(ctx context.Context, drugName, phase1Text string) map[config.Parameter]*float64 {
	system := fmt.Sprintf(
		`Extract the physicochemical parameters of %s from the text. Respond with a single JSON object with exactly these keys: "dose", "molecular_weight", "melting_point", "log_p". Each value must be a plain number or null. Report the maximum of any dose range. Do not convert units. No prose outside the JSON.`,
		drugName)

	text, _, err := e.llm.Complete(ctx, system, phase1Text, 0.0)
	if err != nil {
		e.logger.Warn("Phase-1 parameter extraction failed", "drug", drugName, "error", err)
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(provider.StripFences(text)), &raw); err != nil {
		e.logger.Warn("Phase-1 parameter extraction unparseable", "drug", drugName, "error", err)
		return nil
	}

	out := make(map[config.Parameter]*float64)
	for _, p := range config.Parameters {
		if v, ok := raw[string(p)]; ok {
			if f := parseNumeric(v); f != nil {
				out[p] = f
			}
		}
	}
	return out
}

// fromDedicatedLLM runs a single-field query with the parameter-specific
// instruction from the scoring configuration.
func (e *Extractor) fromDedicatedLLM(ctx context.Context, drugName string, p config.Parameter) *float64 {
	if e.llm == nil {
		return nil
	}
	spec, err := e.scoring.Spec(p)
	if err != nil {
		return nil
	}

	system := fmt.Sprintf(
		"Report the %s of %s as a single plain number in %s. %s Respond with the number only, or the word null if unknown.",
		strings.ReplaceAll(string(p), "_", " "), drugName, spec.Unit, spec.ExtractionInstruction)

	text, _, err := e.llm.Complete(ctx, system, drugName, 0.0)
	if err != nil {
		e.logger.Warn("Dedicated parameter extraction failed", "drug", drugName, "parameter", p, "error", err)
		return nil
	}
	return firstFloat(provider.StripFences(text))
}

// fromLiveSearch searches the web for the parameter and extracts the value
// from the result text with an extraction-only LLM prompt.
func (e *Extractor) fromLiveSearch(ctx context.Context, drugName string, p config.Parameter) *float64 {
	if e.search == nil || e.llm == nil {
		return nil
	}
	spec, err := e.scoring.Spec(p)
	if err != nil {
		return nil
	}

	query := fmt.Sprintf("%s %s %s", drugName, strings.ReplaceAll(string(p), "_", " "), spec.Unit)
	resp, err := e.search.Fetch(ctx, provider.Query{DrugName: drugName, Prompt: query})
	if err != nil {
		e.logger.Warn("Live search failed", "drug", drugName, "parameter", p, "error", err)
		return nil
	}

	system := fmt.Sprintf(
		"From the search results, extract the %s of %s in %s. %s Respond with the number only, or null.",
		strings.ReplaceAll(string(p), "_", " "), drugName, spec.Unit, spec.ExtractionInstruction)
	text, _, err := e.llm.Complete(ctx, system, resp.Text, 0.0)
	if err != nil {
		return nil
	}
	return firstFloat(provider.StripFences(text))
}

func (e *Extractor) unit(p config.Parameter) string {
	if spec, err := e.scoring.Spec(p); err == nil {
		return spec.Unit
	}
	return ""
}

// parseNumeric accepts a JSON number, a numeric string, or null.
func parseNumeric(raw json.RawMessage) *float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return firstFloat(s)
	}
	return nil
}

var floatRe = regexp.MustCompile(`-?\d+(\.\d+)?`)

// firstFloat pulls the first numeric token out of free text. Returns nil for
// text with no number (including the literal "null").
func firstFloat(s string) *float64 {
	m := floatRe.FindString(s)
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &f
}
