package config

import "time"

// Defaults groups system-wide default values applied when a submission or a
// config file omits them.
type Defaults struct {
	// DeliveryMethod is the default route for submissions that omit it.
	DeliveryMethod string `yaml:"delivery_method"`

	// Priority is the default submission priority.
	Priority string `yaml:"priority"`

	// Actor is recorded on audit events for engine-initiated mutations.
	Actor string `yaml:"actor"`

	// ProviderResponseRetentionYears sets retention_expires_at on raw
	// provider responses.
	ProviderResponseRetentionYears int `yaml:"provider_response_retention_years"`

	// WebhookMaxRetries bounds callback delivery attempts after the first.
	WebhookMaxRetries int `yaml:"webhook_max_retries"`

	// MergeTopK bounds how many responses the weighted fallback concatenates.
	MergeTopK int `yaml:"merge_top_k"`
}

// DefaultDefaults returns the built-in system defaults.
func DefaultDefaults() *Defaults {
	return &Defaults{
		DeliveryMethod:                 "transdermal",
		Priority:                       "normal",
		Actor:                          "system",
		ProviderResponseRetentionYears: 7,
		WebhookMaxRetries:              3,
		MergeTopK:                      3,
	}
}

func boolPtr(b bool) *bool       { return &b }
func f64Ptr(v float64) *float64  { return &v }

// builtinCategories returns the built-in analysis categories. User YAML may
// add categories or override fields of these by key.
func builtinCategories() map[string]*CategoryConfig {
	return map[string]*CategoryConfig{
		"market_overview": {
			Name:         "Market Overview",
			Key:          "market_overview",
			Phase:        1,
			DisplayOrder: 10,
			PromptTemplate: "Provide a comprehensive market overview for the drug {{.DrugName}}: " +
				"global and regional market size with numeric estimates, growth projections, " +
				"major markets, pricing, and patent/exclusivity status. Use markdown sections.",
			SummaryStyle: "standard_narrative",
			Verification: VerificationCriteria{
				MinSections:       3,
				MinLength:         400,
				RequireNumeric:    true,
				ConfidencePenalty: 0.1,
			},
			ExtractionKeys: []string{
				"market_size_usd", "cagr_percent", "patent_expiry", "key_markets",
			},
			ConflictResolutionStrategy: "authority_weighted",
		},
		"clinical_trials_safety": {
			Name:         "Clinical Trials & Safety",
			Key:          "clinical_trials_safety",
			Phase:        1,
			DisplayOrder: 20,
			PromptTemplate: "Summarize the clinical trial history and safety profile of {{.DrugName}}: " +
				"pivotal trials, endpoints, adverse events, black-box warnings, contraindications, " +
				"and post-marketing surveillance findings. Use markdown sections.",
			SummaryStyle: "deep_dive",
			Verification: VerificationCriteria{
				MinSections:       3,
				MinLength:         500,
				RequiredTerms:     []string{"trial"},
				ConfidencePenalty: 0.1,
			},
			ExtractionKeys: []string{
				"pivotal_trials", "common_adverse_events", "black_box_warning", "contraindications",
			},
			ConflictResolutionStrategy: "authority_weighted",
		},
		"pharmacokinetics": {
			Name:         "Pharmacokinetics",
			Key:          "pharmacokinetics",
			Phase:        1,
			DisplayOrder: 30,
			PromptTemplate: "Describe the pharmacokinetics of {{.DrugName}}: absorption, " +
				"bioavailability by route, typical daily dose in mg, half-life, metabolism, " +
				"protein binding, and elimination. Report numeric values with units.",
			SummaryStyle: "deep_dive",
			Verification: VerificationCriteria{
				MinSections:       2,
				MinLength:         300,
				RequireNumeric:    true,
				ConfidencePenalty: 0.15,
			},
			ExtractionKeys: []string{
				"daily_dose_mg", "half_life_hours", "bioavailability_percent", "protein_binding_percent",
			},
			ConflictResolutionStrategy: "authority_weighted",
		},
		"physicochemical_properties": {
			Name:         "Physicochemical Properties",
			Key:          "physicochemical_properties",
			Phase:        1,
			DisplayOrder: 40,
			PromptTemplate: "List the physicochemical properties of {{.DrugName}}: molecular weight " +
				"in daltons, melting point in Celsius, log P, aqueous solubility, pKa, and " +
				"polymorphic forms. Report the maximum of any range. Do not convert units.",
			SummaryStyle: "compact_brief",
			Verification: VerificationCriteria{
				MinSections:       1,
				MinLength:         200,
				RequireNumeric:    true,
				ConfidencePenalty: 0.2,
			},
			ExtractionKeys: []string{
				"molecular_weight", "melting_point_c", "log_p", "solubility_mg_ml",
			},
			ConflictResolutionStrategy: "authority_weighted",
		},
		"regulatory_status": {
			Name:         "Regulatory Status",
			Key:          "regulatory_status",
			Phase:        1,
			DisplayOrder: 50,
			PromptTemplate: "Describe the regulatory status of {{.DrugName}} across FDA, EMA, and " +
				"other major agencies as a markdown table: agency, approval status, approval date, " +
				"approved indications, and any pending applications.",
			SummaryStyle: "standard_narrative",
			Verification: VerificationCriteria{
				MinSections:       1,
				MinLength:         200,
				RequireTable:      true,
				ConfidencePenalty: 0.15,
			},
			ExtractionKeys: []string{
				"fda_status", "ema_status", "approved_indications", "first_approval_year",
			},
			ConflictResolutionStrategy: "authority_weighted",
		},
		"competitive_landscape": {
			Name:         "Competitive Landscape",
			Key:          "competitive_landscape",
			Phase:        1,
			DisplayOrder: 60,
			PromptTemplate: "Map the competitive landscape for {{.DrugName}}: same-class " +
				"competitors, alternative delivery forms on the market or in development, " +
				"generic entrants, and differentiation opportunities. Use markdown sections.",
			SummaryStyle: "standard_narrative",
			Verification: VerificationCriteria{
				MinSections:       2,
				MinLength:         300,
				ConfidencePenalty: 0.1,
			},
			ExtractionKeys: []string{
				"direct_competitors", "alternative_formulations", "generic_available",
			},
			ConflictResolutionStrategy: "authority_weighted",
		},

		// Phase 2: decision intelligence. DisplayOrder defines the strict
		// sequential execution order; suitability_scoring runs first.
		"suitability_scoring": {
			Name:         "Suitability Scoring",
			Key:          "suitability_scoring",
			Phase:        2,
			DisplayOrder: 10,
			DependsOn:    []string{"pharmacokinetics", "physicochemical_properties"},
		},
		"risk_assessment": {
			Name:         "Risk Assessment",
			Key:          "risk_assessment",
			Phase:        2,
			DisplayOrder: 20,
			PromptTemplate: "Assess the development and commercial risks of pursuing an alternative " +
				"delivery route for {{.DrugName}}, grounded strictly in the analysis below.",
			SummaryStyle: "standard_narrative",
			DependsOn:    []string{"clinical_trials_safety", "suitability_scoring"},
		},
		"market_strategy": {
			Name:         "Market Strategy",
			Key:          "market_strategy",
			Phase:        2,
			DisplayOrder: 30,
			PromptTemplate: "Outline a go-to-market strategy for a reformulated {{.DrugName}}, " +
				"grounded strictly in the analysis below.",
			SummaryStyle: "standard_narrative",
			DependsOn:    []string{"market_overview", "competitive_landscape"},
		},
		"investment_analysis": {
			Name:         "Investment Analysis",
			Key:          "investment_analysis",
			Phase:        2,
			DisplayOrder: 40,
			PromptTemplate: "Evaluate the investment case for reformulating {{.DrugName}}: " +
				"development cost drivers, time to market, and expected return, grounded " +
				"strictly in the analysis below.",
			SummaryStyle: "standard_narrative",
			DependsOn:    []string{"market_overview", "suitability_scoring"},
		},
		"recommendations": {
			Name:         "Recommendations",
			Key:          "recommendations",
			Phase:        2,
			DisplayOrder: 50,
			PromptTemplate: "Produce a numbered list of concrete next-step recommendations for " +
				"{{.DrugName}}, grounded strictly in the analysis below.",
			SummaryStyle: "compact_brief",
			DependsOn:    []string{"suitability_scoring"},
		},
		"executive_summary": {
			Name:         "Executive Summary",
			Key:          "executive_summary",
			Phase:        2,
			DisplayOrder: 60,
			PromptTemplate: "Write an executive summary of the full analysis of {{.DrugName}} " +
				"for an investment committee: decision, rationale, and key numbers.",
			SummaryStyle: "executive",
			DependsOn:    []string{"suitability_scoring"},
		},
	}
}

// builtinProviders returns the built-in provider entries. API keys come from
// the environment; providers with empty keys fail auth at call time and are
// surfaced as provider errors, not config errors.
func builtinProviders() map[string]*ProviderConfig {
	return map[string]*ProviderConfig{
		"openai": {
			Name:                "openai",
			Kind:                ProviderKindChat,
			BaseURL:             "https://api.openai.com/v1",
			Model:               "gpt-4o",
			APIKeyEnv:           "OPENAI_API_KEY",
			TemperatureDefault:  0.2,
			TemperatureMin:      0,
			TemperatureMax:      2,
			SupportsTemperature: true,
			MaxTokens:           4096,
			InputCostPer1K:      0.0025,
			OutputCostPer1K:     0.01,
			Timeout:             120 * time.Second,
			MaxRetries:          3,
			Authority:           AuthorityLicensedAI,
		},
		"moonshot": {
			Name:                "moonshot",
			Kind:                ProviderKindChat,
			BaseURL:             "https://api.moonshot.ai/v1",
			Model:               "kimi-k2",
			APIKeyEnv:           "MOONSHOT_API_KEY",
			TemperatureDefault:  0.3,
			TemperatureMin:      0,
			TemperatureMax:      1,
			SupportsTemperature: true,
			MaxTokens:           4096,
			InputCostPer1K:      0.0006,
			OutputCostPer1K:     0.0025,
			Timeout:             120 * time.Second,
			MaxRetries:          3,
			Authority:           AuthorityLicensedAI,
		},
		"perplexity": {
			Name:                "perplexity",
			Kind:                ProviderKindCitation,
			BaseURL:             "https://api.perplexity.ai",
			Model:               "sonar-pro",
			APIKeyEnv:           "PERPLEXITY_API_KEY",
			TemperatureDefault:  0.2,
			TemperatureMin:      0,
			TemperatureMax:      2,
			SupportsTemperature: true,
			MaxTokens:           4096,
			InputCostPer1K:      0.003,
			OutputCostPer1K:     0.015,
			Timeout:             120 * time.Second,
			MaxRetries:          3,
			Authority:           AuthorityLicensedAI,
		},
		"bocha": {
			Name:       "bocha",
			Kind:       ProviderKindWebSearch,
			BaseURL:    "https://api.bochaai.com/v1/web-search",
			APIKeyEnv:  "BOCHA_API_KEY",
			MaxResults: 5,
			Timeout:    30 * time.Second,
			MaxRetries: 3,
			Authority:  AuthorityUnknown,
		},
	}
}

// builtinStyles returns the built-in summary styles.
func builtinStyles() map[string]*SummaryStyleConfig {
	return map[string]*SummaryStyleConfig{
		"compact_brief": {
			Name: "compact_brief",
			SystemPrompt: "You are a pharmaceutical analyst. Write tight, factual prose. " +
				"No speculation beyond the provided material.",
			UserTemplate: "Summarize the following analysis of {{.DrugName}} in at most " +
				"{{.TargetWords}} words. Keep every numeric value.\n\n{{.MergedText}}",
			LengthType:      "compact",
			TargetWordCount: 150,
		},
		"standard_narrative": {
			Name: "standard_narrative",
			SystemPrompt: "You are a pharmaceutical analyst. Write clear narrative prose for " +
				"a business audience, preserving all quantitative findings.",
			UserTemplate: "Write a {{.TargetWords}}-word summary of the following analysis of " +
				"{{.DrugName}}.\n\n{{.MergedText}}",
			LengthType:      "standard",
			TargetWordCount: 300,
		},
		"deep_dive": {
			Name: "deep_dive",
			SystemPrompt: "You are a pharmaceutical analyst. Write a thorough technical summary " +
				"for a scientific audience. Preserve units, ranges, and caveats.",
			UserTemplate: "Write a detailed summary (about {{.TargetWords}} words) of the " +
				"following analysis of {{.DrugName}}.\n\n{{.MergedText}}",
			LengthType:      "deep",
			TargetWordCount: 600,
		},
		"executive": {
			Name: "executive",
			SystemPrompt: "You write one-page executive summaries for investment committees. " +
				"Lead with the decision, then the three numbers that justify it.",
			UserTemplate: "Write an executive summary (at most {{.TargetWords}} words) of the " +
				"following analysis of {{.DrugName}}.\n\n{{.MergedText}}",
			LengthType:      "compact",
			TargetWordCount: 200,
		},
	}
}

// builtinScoring returns the parameter weights and the rubric. Ranges share
// boundaries deliberately; boundary ties resolve non-exclusion → higher
// score → narrower range.
func builtinScoring() *ScoringConfig {
	return &ScoringConfig{
		Parameters: []ParameterSpec{
			{
				Name: ParameterDose, Weight: 0.40, Unit: "mg/day", DisplayOrder: 1,
				ExtractionInstruction: "Report the maximum daily dose in mg of any cited range. Do not convert units.",
			},
			{
				Name: ParameterMolecularWeight, Weight: 0.30, Unit: "Da", DisplayOrder: 2,
				ExtractionInstruction: "Report the molecular weight of the free base in daltons.",
			},
			{
				Name: ParameterMeltingPoint, Weight: 0.20, Unit: "°C", DisplayOrder: 3,
				ExtractionInstruction: "Report the melting point in degrees Celsius. Report the maximum of any range. Do not convert units.",
			},
			{
				Name: ParameterLogP, Weight: 0.10, Unit: "", DisplayOrder: 4,
				ExtractionInstruction: "Report the experimental log P (octanol/water partition coefficient) if available, otherwise the computed value.",
			},
		},
		Ranges: append(
			rubricForRoute(DeliveryTransdermal,
				// dose mg/day
				[]rubricRow{
					{nil, f64Ptr(5), 9, false, "≤5 mg/day"},
					{f64Ptr(5), f64Ptr(10), 7, false, "5–10 mg/day"},
					{f64Ptr(10), f64Ptr(20), 5, false, "10–20 mg/day"},
					{f64Ptr(20), f64Ptr(40), 3, false, "20–40 mg/day"},
					{f64Ptr(40), f64Ptr(100), 1, false, "40–100 mg/day"},
					{f64Ptr(100), nil, 0, true, ">100 mg/day"},
				},
				// molecular weight Da
				[]rubricRow{
					{nil, f64Ptr(350), 9, false, "≤350 Da"},
					{f64Ptr(350), f64Ptr(500), 7, false, "350–500 Da"},
					{f64Ptr(500), f64Ptr(650), 4, false, "500–650 Da"},
					{f64Ptr(650), f64Ptr(800), 2, false, "650–800 Da"},
					{f64Ptr(800), nil, 0, true, ">800 Da"},
				},
				// melting point °C
				[]rubricRow{
					{nil, f64Ptr(100), 9, false, "≤100 °C"},
					{f64Ptr(100), f64Ptr(150), 7, false, "100–150 °C"},
					{f64Ptr(150), f64Ptr(200), 5, false, "150–200 °C"},
					{f64Ptr(200), f64Ptr(250), 2, false, "200–250 °C"},
					{f64Ptr(250), nil, 1, false, ">250 °C"},
				},
				// log P
				[]rubricRow{
					{f64Ptr(1), f64Ptr(3), 9, false, "1–3"},
					{f64Ptr(0), f64Ptr(1), 6, false, "0–1"},
					{f64Ptr(3), f64Ptr(4), 6, false, "3–4"},
					{f64Ptr(-1), f64Ptr(0), 3, false, "-1–0"},
					{f64Ptr(4), f64Ptr(5), 3, false, "4–5"},
					{nil, f64Ptr(-1), 1, false, "<-1"},
					{f64Ptr(5), nil, 0, true, ">5"},
				},
			),
			rubricForRoute(DeliveryTransmucosal,
				[]rubricRow{
					{nil, f64Ptr(10), 9, false, "≤10 mg/day"},
					{f64Ptr(10), f64Ptr(25), 7, false, "10–25 mg/day"},
					{f64Ptr(25), f64Ptr(50), 5, false, "25–50 mg/day"},
					{f64Ptr(50), f64Ptr(100), 3, false, "50–100 mg/day"},
					{f64Ptr(100), f64Ptr(200), 1, false, "100–200 mg/day"},
					{f64Ptr(200), nil, 0, true, ">200 mg/day"},
				},
				[]rubricRow{
					{nil, f64Ptr(400), 9, false, "≤400 Da"},
					{f64Ptr(400), f64Ptr(600), 7, false, "400–600 Da"},
					{f64Ptr(600), f64Ptr(800), 4, false, "600–800 Da"},
					{f64Ptr(800), f64Ptr(1000), 2, false, "800–1000 Da"},
					{f64Ptr(1000), nil, 0, true, ">1000 Da"},
				},
				[]rubricRow{
					{nil, f64Ptr(120), 9, false, "≤120 °C"},
					{f64Ptr(120), f64Ptr(180), 7, false, "120–180 °C"},
					{f64Ptr(180), f64Ptr(240), 4, false, "180–240 °C"},
					{f64Ptr(240), nil, 2, false, ">240 °C"},
				},
				[]rubricRow{
					{f64Ptr(0), f64Ptr(2), 9, false, "0–2"},
					{f64Ptr(2), f64Ptr(4), 6, false, "2–4"},
					{f64Ptr(-2), f64Ptr(0), 4, false, "-2–0"},
					{f64Ptr(4), f64Ptr(6), 2, false, "4–6"},
					{nil, f64Ptr(-2), 1, false, "<-2"},
					{f64Ptr(6), nil, 0, true, ">6"},
				},
			)...,
		),
	}
}

type rubricRow struct {
	min, max    *float64
	score       int
	isExclusion bool
	text        string
}

func rubricForRoute(m DeliveryMethod, dose, mw, mp, logp []rubricRow) []RubricRange {
	var out []RubricRange
	add := func(p Parameter, rows []rubricRow) {
		for _, r := range rows {
			out = append(out, RubricRange{
				Parameter:      p,
				DeliveryMethod: m,
				Min:            r.min,
				Max:            r.max,
				Score:          r.score,
				IsExclusion:    r.isExclusion,
				RangeText:      r.text,
			})
		}
	}
	add(ParameterDose, dose)
	add(ParameterMolecularWeight, mw)
	add(ParameterMeltingPoint, mp)
	add(ParameterLogP, logp)
	return out
}
