package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/owais-symtera/cognito-sub001/pkg/config"
	"github.com/owais-symtera/cognito-sub001/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedLLM returns replies keyed by call index.
type scriptedLLM struct {
	replies []string
	errs    []error
	calls   int
}

func (s *scriptedLLM) Complete(context.Context, string, string, float64) (string, provider.Usage, error) {
	i := s.calls
	s.calls++
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

type stubSearch struct {
	text string
	err  error
}

func (s *stubSearch) Name() string                   { return "stubsearch" }
func (s *stubSearch) Kind() config.ProviderKind      { return config.ProviderKindWebSearch }
func (s *stubSearch) Fetch(context.Context, provider.Query) (*provider.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &provider.Response{Provider: "stubsearch", Text: s.text}, nil
}

func fullRubric() *config.ScoringConfig {
	s := testRubric()
	// cover the remaining (parameter, route) pairs with single wide rows
	for _, p := range config.Parameters {
		for _, m := range config.DeliveryMethods {
			if len(s.RangesFor(p, m)) == 0 {
				s.Ranges = append(s.Ranges, config.RubricRange{
					Parameter: p, DeliveryMethod: m, Score: 5, RangeText: "any",
				})
			}
		}
	}
	return s
}

func TestExtractAll_Phase1Success(t *testing.T) {
	llm := &scriptedLLM{replies: []string{
		`{"dose": 10, "molecular_weight": 459.5, "melting_point": "172", "log_p": null}`,
		"3.1", // dedicated call for the missing log_p
	}}
	e := NewExtractor(llm, nil, fullRubric())

	out := e.ExtractAll(context.Background(), "Apixaban", "phase 1 narratives")

	require.NotNil(t, out[config.ParameterDose].Value)
	assert.Equal(t, 10.0, *out[config.ParameterDose].Value)
	assert.Equal(t, MethodPhase1Summary, out[config.ParameterDose].Method)

	// numeric string is accepted
	require.NotNil(t, out[config.ParameterMeltingPoint].Value)
	assert.Equal(t, 172.0, *out[config.ParameterMeltingPoint].Value)

	// null falls through to dedicated_llm
	require.NotNil(t, out[config.ParameterLogP].Value)
	assert.Equal(t, 3.1, *out[config.ParameterLogP].Value)
	assert.Equal(t, MethodDedicatedLLM, out[config.ParameterLogP].Method)
}

func TestExtractAll_WaterfallToLiveSearch(t *testing.T) {
	llm := &scriptedLLM{
		replies: []string{
			`{"dose": 5, "molecular_weight": null, "melting_point": null, "log_p": null}`,
			"null", // dedicated molecular_weight fails
			"460",  // extraction from search results succeeds
			"null", // dedicated melting_point
			"null", // search extraction melting_point
			"null", // dedicated log_p
			"null", // search extraction log_p
		},
	}
	e := NewExtractor(llm, &stubSearch{text: "MW is 459.5 g/mol"}, fullRubric())

	out := e.ExtractAll(context.Background(), "Apixaban", "text")

	assert.Equal(t, MethodPhase1Summary, out[config.ParameterDose].Method)
	require.NotNil(t, out[config.ParameterMolecularWeight].Value)
	assert.Equal(t, MethodLiveSearch, out[config.ParameterMolecularWeight].Method)
	assert.Equal(t, MethodNone, out[config.ParameterMeltingPoint].Method)
	assert.Nil(t, out[config.ParameterMeltingPoint].Value)
}

func TestExtractAll_AllCallsFail(t *testing.T) {
	llm := &scriptedLLM{errs: []error{
		errors.New("down"), errors.New("down"), errors.New("down"),
		errors.New("down"), errors.New("down"),
	}}
	e := NewExtractor(llm, &stubSearch{err: errors.New("down")}, fullRubric())

	out := e.ExtractAll(context.Background(), "Apixaban", "text")
	for _, p := range config.Parameters {
		assert.Nil(t, out[p].Value, "parameter %s", p)
		assert.Equal(t, MethodNone, out[p].Method)
	}
}

func TestScoreRoute_WeightedTotalAndVerdicts(t *testing.T) {
	s := NewScorer(NewExtractor(nil, nil, fullRubric()), nil, fullRubric())

	extractions := map[config.Parameter]Extraction{
		config.ParameterDose:            {Parameter: config.ParameterDose, Value: f(5), Method: MethodPhase1Summary},
		config.ParameterMolecularWeight: {Parameter: config.ParameterMolecularWeight, Value: f(459.5), Method: MethodPhase1Summary},
		config.ParameterMeltingPoint:    {Parameter: config.ParameterMeltingPoint, Value: f(172), Method: MethodDedicatedLLM},
		config.ParameterLogP:            {Parameter: config.ParameterLogP, Value: f(3.1), Method: MethodLiveSearch},
	}

	route := s.ScoreRoute(context.Background(), "Apixaban", config.DeliveryTransdermal, extractions)

	// dose 5 → score 9 (0-10 mg); others → score 5 wide rows
	// total = 9*0.40 + 5*0.30 + 5*0.20 + 5*0.10 = 6.6
	assert.InDelta(t, 6.6, route.Total, 1e-9)
	assert.Equal(t, "Conditional-Go", route.Verdict)
	assert.Equal(t, "Suitable", route.DecisionCategory)
	assert.Equal(t, "Medium", route.Priority)
	assert.Equal(t, "Medium", route.RiskLevel)
	assert.Equal(t, "Medium-High", route.SuccessProbability)

	require.Len(t, route.Parameters, 4)
	assert.InDelta(t, 3.6, route.Parameters[0].WeightedScore, 1e-9)
}

func TestScoreRoute_MissingValuesContributeZero(t *testing.T) {
	s := NewScorer(NewExtractor(nil, nil, fullRubric()), nil, fullRubric())

	extractions := map[config.Parameter]Extraction{
		config.ParameterDose:            {Parameter: config.ParameterDose, Value: f(5), Method: MethodPhase1Summary},
		config.ParameterMolecularWeight: {Parameter: config.ParameterMolecularWeight, Method: MethodNone},
		config.ParameterMeltingPoint:    {Parameter: config.ParameterMeltingPoint, Method: MethodNone},
		config.ParameterLogP:            {Parameter: config.ParameterLogP, Method: MethodNone},
	}

	route := s.ScoreRoute(context.Background(), "Apixaban", config.DeliveryTransdermal, extractions)
	assert.InDelta(t, 3.6, route.Total, 1e-9)
	assert.Equal(t, "No-Go", route.Verdict)
	assert.Nil(t, route.Parameters[1].Score)
	assert.Equal(t, 0.0, route.Parameters[1].WeightedScore)
}

func TestScoreRoute_Deterministic(t *testing.T) {
	s := NewScorer(NewExtractor(nil, nil, fullRubric()), nil, fullRubric())
	extractions := map[config.Parameter]Extraction{
		config.ParameterDose:            {Parameter: config.ParameterDose, Value: f(12), Method: MethodPhase1Summary},
		config.ParameterMolecularWeight: {Parameter: config.ParameterMolecularWeight, Value: f(300), Method: MethodPhase1Summary},
		config.ParameterMeltingPoint:    {Parameter: config.ParameterMeltingPoint, Value: f(150), Method: MethodPhase1Summary},
		config.ParameterLogP:            {Parameter: config.ParameterLogP, Value: f(2), Method: MethodPhase1Summary},
	}

	a := s.ScoreRoute(context.Background(), "Apixaban", config.DeliveryTransmucosal, extractions)
	b := s.ScoreRoute(context.Background(), "Apixaban", config.DeliveryTransmucosal, extractions)
	assert.Equal(t, a, b)
}

func TestRationale_FallbackSentence(t *testing.T) {
	s := NewScorer(NewExtractor(nil, nil, fullRubric()), &scriptedLLM{errs: []error{errors.New("down")}}, fullRubric())
	score := 6
	ps := ParameterScore{
		Parameter: config.ParameterDose,
		Value:     f(12),
		Score:     &score,
		RangeText: "10-25 mg",
	}
	got := s.rationale(context.Background(), "Apixaban", ps)
	assert.Equal(t, "Score 6 assigned based on dose value of 12 in range 10-25 mg", got)
}

func TestFirstFloat(t *testing.T) {
	require.NotNil(t, firstFloat("3.14"))
	assert.Equal(t, 3.14, *firstFloat("3.14"))
	assert.Equal(t, -2.5, *firstFloat("approximately -2.5 units"))
	assert.Nil(t, firstFloat("null"))
	assert.Nil(t, firstFloat(""))
}
