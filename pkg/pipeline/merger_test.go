package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCompleter returns canned replies per call, in order.
type stubCompleter struct {
	replies []string
	errs    []error
	calls   int
	prompts []string
}

func (s *stubCompleter) Complete(_ context.Context, _, user string, _ float64) (string, provider.Usage, error) {
	i := s.calls
	s.calls++
	s.prompts = append(s.prompts, user)
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	reply := ""
	if i < len(s.replies) {
		reply = s.replies[i]
	}
	return reply, provider.Usage{}, err
}

func weightedResponse(providerName string, weight int, cred float64, text string) WeightedResponse {
	return WeightedResponse{
		Response: &provider.Response{Provider: providerName, Text: text},
		Weight: provider.SourceWeight{
			Provider:    providerName,
			Weight:      weight,
			Credibility: cred,
		},
		PassRate: 1,
	}
}

func testCategory() *config.CategoryConfig {
	return &config.CategoryConfig{
		Name: "Market Overview",
		Key:  "market_overview",
	}
}

func TestMerge_EmptyInput(t *testing.T) {
	m := NewMerger(nil, 3)
	r := m.Merge(context.Background(), "Apixaban", testCategory(), nil)

	assert.Equal(t, MergeMethodNone, r.Method)
	assert.Equal(t, 0.0, r.Confidence)
	assert.Empty(t, r.MergedText)
	assert.NotNil(t, r.StructuredData)
}

func TestMerge_LLMAssisted(t *testing.T) {
	llm := &stubCompleter{replies: []string{
		"```json\n{\"merged_text\": \"Merged narrative.\", \"structured_data\": {\"market_size\": \"$4.2B\"}, \"conflicts\": [{\"field\": \"market_size\", \"sources\": [\"a\", \"b\"], \"chosen\": \"$4.2B\", \"reason\": \"higher authority\"}], \"key_findings\": [\"growing market\"]}\n```",
	}}
	m := NewMerger(llm, 3)

	responses := []WeightedResponse{
		weightedResponse("openai", 10, 0.9, "Source A text"),
		weightedResponse("perplexity", 6, 0.5, "Source B text"),
	}
	r := m.Merge(context.Background(), "Apixaban", testCategory(), responses)

	assert.Equal(t, MergeMethodLLMAssisted, r.Method)
	assert.Equal(t, "Merged narrative.", r.MergedText)
	assert.Equal(t, "$4.2B", r.StructuredData["market_size"])
	require.Len(t, r.Conflicts, 1)
	assert.Equal(t, "market_size", r.Conflicts[0].Field)
	assert.Equal(t, []string{"growing market"}, r.KeyFindings)

	// confidence = (10*0.9 + 6*0.5) / 16 = 0.75
	assert.InDelta(t, 0.75, r.Confidence, 1e-9)
}

func TestMerge_FallbackOnUnparseableOutput(t *testing.T) {
	llm := &stubCompleter{replies: []string{"not json at all"}}
	m := NewMerger(llm, 2)

	responses := []WeightedResponse{
		weightedResponse("low", 1, 1.0, "low authority text"),
		weightedResponse("high", 10, 1.0, "high authority text"),
		weightedResponse("mid", 6, 1.0, "mid authority text"),
	}
	r := m.Merge(context.Background(), "Apixaban", testCategory(), responses)

	assert.Equal(t, MergeMethodFallbackWeighted, r.Method)
	assert.Empty(t, r.StructuredData)

	// top-2 by weight, in order
	highIdx := strings.Index(r.MergedText, "high authority text")
	midIdx := strings.Index(r.MergedText, "mid authority text")
	require.NotEqual(t, -1, highIdx)
	require.NotEqual(t, -1, midIdx)
	assert.Less(t, highIdx, midIdx)
	assert.NotContains(t, r.MergedText, "low authority text")
}

func TestMerge_FallbackOnLLMError(t *testing.T) {
	llm := &stubCompleter{errs: []error{errors.New("provider down")}}
	m := NewMerger(llm, 3)

	r := m.Merge(context.Background(), "Apixaban", testCategory(),
		[]WeightedResponse{weightedResponse("a", 10, 0.8, "only source")})

	assert.Equal(t, MergeMethodFallbackWeighted, r.Method)
	assert.Contains(t, r.MergedText, "only source")
	assert.InDelta(t, 0.8, r.Confidence, 1e-9)
}

func TestMerge_SecondaryExtractionFillsKeys(t *testing.T) {
	llm := &stubCompleter{replies: []string{
		"garbage",                   // primary merge call fails to parse
		`{"market_size": "$4.2B"}`,  // extraction call
	}}
	cat := testCategory()
	cat.ExtractionKeys = []string{"market_size"}

	m := NewMerger(llm, 3)
	r := m.Merge(context.Background(), "Apixaban", cat,
		[]WeightedResponse{weightedResponse("a", 10, 1.0, "text")})

	assert.Equal(t, MergeMethodSummaryExtraction, r.Method,
		"fallback plus successful extraction records summary_extraction")
	assert.Equal(t, "$4.2B", r.StructuredData["market_size"])
}

func TestMerge_ExtractionNullDoesNotFill(t *testing.T) {
	llm := &stubCompleter{replies: []string{
		"garbage",
		`{"market_size": null}`,
	}}
	cat := testCategory()
	cat.ExtractionKeys = []string{"market_size"}

	m := NewMerger(llm, 3)
	r := m.Merge(context.Background(), "Apixaban", cat,
		[]WeightedResponse{weightedResponse("a", 10, 1.0, "text")})

	assert.Equal(t, MergeMethodFallbackWeighted, r.Method)
	assert.NotContains(t, r.StructuredData, "market_size")
}

func TestSortResponses_TieBreaking(t *testing.T) {
	responses := []WeightedResponse{
		weightedResponse("zeta", 6, 1, "same"),
		weightedResponse("alpha", 6, 1, "same"),
		weightedResponse("beta", 6, 1, "longer text here"),
		weightedResponse("low", 1, 1, "x"),
		weightedResponse("top", 10, 1, "y"),
	}
	sortResponses(responses)

	order := make([]string, len(responses))
	for i, r := range responses {
		order[i] = r.Weight.Provider
	}
	// weight desc, then length desc, then provider asc
	assert.Equal(t, []string{"top", "beta", "alpha", "zeta", "low"}, order)
}

func TestWeightedConfidence_ZeroWeights(t *testing.T) {
	assert.Equal(t, 0.0, weightedConfidence([]WeightedResponse{
		weightedResponse("unknown", 0, 1.0, "text"),
	}))
}
