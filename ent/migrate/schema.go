// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisRequestsColumns holds the columns for the "analysis_requests" table.
	AnalysisRequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "drug_name", Type: field.TypeString, Size: 255},
		{Name: "delivery_method", Type: field.TypeEnum, Enums: []string{"transdermal", "transmucosal"}, Default: "transdermal"},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "normal", "high", "urgent"}, Default: "normal"},
		{Name: "callback_url", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "drug_count", Type: field.TypeInt, Default: 1},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// AnalysisRequestsTable holds the schema information for the "analysis_requests" table.
	AnalysisRequestsTable = &schema.Table{
		Name:       "analysis_requests",
		Columns:    AnalysisRequestsColumns,
		PrimaryKey: []*schema.Column{AnalysisRequestsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisrequest_drug_name",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRequestsColumns[1]},
			},
			{
				Name:    "analysisrequest_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRequestsColumns[5]},
			},
			{
				Name:    "analysisrequest_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRequestsColumns[8]},
			},
			{
				Name:    "analysisrequest_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisRequestsColumns[13]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// AuditEventsColumns holds the columns for the "audit_events" table.
	AuditEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeEnum, Enums: []string{"create", "update", "delete", "process_start", "process_complete", "process_error", "source_verification", "conflict_resolution", "data_export", "user_access"}},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "request_id", Type: field.TypeString, Nullable: true},
		{Name: "old_values", Type: field.TypeJSON, Nullable: true},
		{Name: "new_values", Type: field.TypeJSON, Nullable: true},
		{Name: "actor", Type: field.TypeString, Default: "system"},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "ip_address", Type: field.TypeString, Nullable: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// AuditEventsTable holds the schema information for the "audit_events" table.
	AuditEventsTable = &schema.Table{
		Name:       "audit_events",
		Columns:    AuditEventsColumns,
		PrimaryKey: []*schema.Column{AuditEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditevent_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[2], AuditEventsColumns[3]},
			},
			{
				Name:    "auditevent_request_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[4]},
			},
			{
				Name:    "auditevent_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[8]},
			},
			{
				Name:    "auditevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[9]},
			},
		},
	}
	// CategoryDependenciesColumns holds the columns for the "category_dependencies" table.
	CategoryDependenciesColumns = []*schema.Column{
		{Name: "dependency_id", Type: field.TypeString, Unique: true},
		{Name: "dependent_id", Type: field.TypeString},
		{Name: "required_id", Type: field.TypeString},
	}
	// CategoryDependenciesTable holds the schema information for the "category_dependencies" table.
	CategoryDependenciesTable = &schema.Table{
		Name:       "category_dependencies",
		Columns:    CategoryDependenciesColumns,
		PrimaryKey: []*schema.Column{CategoryDependenciesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "category_dependencies_pharma_categories_dependents",
				Columns:    []*schema.Column{CategoryDependenciesColumns[1]},
				RefColumns: []*schema.Column{PharmaCategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "category_dependencies_pharma_categories_requirements",
				Columns:    []*schema.Column{CategoryDependenciesColumns[2]},
				RefColumns: []*schema.Column{PharmaCategoriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "categorydependency_dependent_id_required_id",
				Unique:  true,
				Columns: []*schema.Column{CategoryDependenciesColumns[1], CategoryDependenciesColumns[2]},
			},
		},
	}
	// CategoryResultsColumns holds the columns for the "category_results" table.
	CategoryResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "category_id", Type: field.TypeString},
		{Name: "category_name", Type: field.TypeString},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "data_quality_score", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed", "skipped"}, Default: "pending"},
		{Name: "skip_reason", Type: field.TypeString, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "api_calls_made", Type: field.TypeInt, Default: 0},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "request_id", Type: field.TypeString},
	}
	// CategoryResultsTable holds the schema information for the "category_results" table.
	CategoryResultsTable = &schema.Table{
		Name:       "category_results",
		Columns:    CategoryResultsColumns,
		PrimaryKey: []*schema.Column{CategoryResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "category_results_analysis_requests_category_results",
				Columns:    []*schema.Column{CategoryResultsColumns[17]},
				RefColumns: []*schema.Column{AnalysisRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "categoryresult_request_id_category_id",
				Unique:  true,
				Columns: []*schema.Column{CategoryResultsColumns[17], CategoryResultsColumns[1]},
			},
			{
				Name:    "categoryresult_status",
				Unique:  false,
				Columns: []*schema.Column{CategoryResultsColumns[6]},
			},
		},
	}
	// FinalOutputsColumns holds the columns for the "final_outputs" table.
	FinalOutputsColumns = []*schema.Column{
		{Name: "output_id", Type: field.TypeString, Unique: true},
		{Name: "document", Type: field.TypeJSON},
		{Name: "td_score", Type: field.TypeFloat64, Default: 0},
		{Name: "tm_score", Type: field.TypeFloat64, Default: 0},
		{Name: "td_verdict", Type: field.TypeString},
		{Name: "tm_verdict", Type: field.TypeString},
		{Name: "go_decision", Type: field.TypeString},
		{Name: "investment_priority", Type: field.TypeString},
		{Name: "risk_level", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt, Default: 1},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString, Unique: true},
	}
	// FinalOutputsTable holds the schema information for the "final_outputs" table.
	FinalOutputsTable = &schema.Table{
		Name:       "final_outputs",
		Columns:    FinalOutputsColumns,
		PrimaryKey: []*schema.Column{FinalOutputsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "final_outputs_analysis_requests_final_output",
				Columns:    []*schema.Column{FinalOutputsColumns[11]},
				RefColumns: []*schema.Column{AnalysisRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// MergedDataColumns holds the columns for the "merged_data" table.
	MergedDataColumns = []*schema.Column{
		{Name: "merged_id", Type: field.TypeString, Unique: true},
		{Name: "merged_text", Type: field.TypeString, Size: 2147483647},
		{Name: "structured_data", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "source_references", Type: field.TypeJSON, Nullable: true},
		{Name: "merge_method", Type: field.TypeEnum, Enums: []string{"llm_assisted", "fallback_weighted", "summary_extraction", "none"}},
		{Name: "key_findings", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "category_result_id", Type: field.TypeString, Unique: true},
	}
	// MergedDataTable holds the schema information for the "merged_data" table.
	MergedDataTable = &schema.Table{
		Name:       "merged_data",
		Columns:    MergedDataColumns,
		PrimaryKey: []*schema.Column{MergedDataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "merged_data_category_results_merged_data",
				Columns:    []*schema.Column{MergedDataColumns[8]},
				RefColumns: []*schema.Column{CategoryResultsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ParameterResultsColumns holds the columns for the "parameter_results" table.
	ParameterResultsColumns = []*schema.Column{
		{Name: "parameter_result_id", Type: field.TypeString, Unique: true},
		{Name: "parameter", Type: field.TypeEnum, Enums: []string{"dose", "molecular_weight", "melting_point", "log_p"}},
		{Name: "delivery_method", Type: field.TypeEnum, Enums: []string{"transdermal", "transmucosal"}},
		{Name: "extracted_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "weighted_score", Type: field.TypeFloat64, Default: 0},
		{Name: "rationale", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "range_text", Type: field.TypeString, Nullable: true},
		{Name: "is_exclusion", Type: field.TypeBool, Default: false},
		{Name: "extraction_method", Type: field.TypeEnum, Enums: []string{"phase1_summary", "dedicated_llm", "live_search", "none"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// ParameterResultsTable holds the schema information for the "parameter_results" table.
	ParameterResultsTable = &schema.Table{
		Name:       "parameter_results",
		Columns:    ParameterResultsColumns,
		PrimaryKey: []*schema.Column{ParameterResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parameter_results_analysis_requests_parameter_results",
				Columns:    []*schema.Column{ParameterResultsColumns[12]},
				RefColumns: []*schema.Column{AnalysisRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parameterresult_request_id_parameter_delivery_method",
				Unique:  true,
				Columns: []*schema.Column{ParameterResultsColumns[12], ParameterResultsColumns[1], ParameterResultsColumns[2]},
			},
		},
	}
	// PharmaCategoriesColumns holds the columns for the "pharma_categories" table.
	PharmaCategoriesColumns = []*schema.Column{
		{Name: "category_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "phase", Type: field.TypeInt},
		{Name: "display_order", Type: field.TypeInt},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "prompt_template", Type: field.TypeString, Size: 2147483647},
		{Name: "verification_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "processing_rules", Type: field.TypeJSON, Nullable: true},
		{Name: "conflict_resolution_strategy", Type: field.TypeString, Default: "authority_weighted"},
	}
	// PharmaCategoriesTable holds the schema information for the "pharma_categories" table.
	PharmaCategoriesTable = &schema.Table{
		Name:       "pharma_categories",
		Columns:    PharmaCategoriesColumns,
		PrimaryKey: []*schema.Column{PharmaCategoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pharmacategory_phase_display_order",
				Unique:  false,
				Columns: []*schema.Column{PharmaCategoriesColumns[3], PharmaCategoriesColumns[4]},
			},
		},
	}
	// PipelineStagesColumns holds the columns for the "pipeline_stages" table.
	PipelineStagesColumns = []*schema.Column{
		{Name: "stage_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeEnum, Enums: []string{"collect", "verify", "merge", "summarize"}},
		{Name: "stage_order", Type: field.TypeInt, Unique: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
	}
	// PipelineStagesTable holds the schema information for the "pipeline_stages" table.
	PipelineStagesTable = &schema.Table{
		Name:       "pipeline_stages",
		Columns:    PipelineStagesColumns,
		PrimaryKey: []*schema.Column{PipelineStagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinestage_name",
				Unique:  true,
				Columns: []*schema.Column{PipelineStagesColumns[1]},
			},
		},
	}
	// ProcessTrackingsColumns holds the columns for the "process_trackings" table.
	ProcessTrackingsColumns = []*schema.Column{
		{Name: "tracking_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"submitted", "collecting", "verifying", "merging", "summarizing", "completed", "failed", "cancelled"}, Default: "submitted"},
		{Name: "progress_percent", Type: field.TypeInt, Default: 0},
		{Name: "categories_total", Type: field.TypeInt, Default: 0},
		{Name: "categories_completed", Type: field.TypeInt, Default: 0},
		{Name: "estimated_completion_at", Type: field.TypeTime, Nullable: true},
		{Name: "collecting_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "collecting_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "verifying_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "verifying_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "merging_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "merging_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "summarizing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "summarizing_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_details", Type: field.TypeString, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString, Unique: true},
	}
	// ProcessTrackingsTable holds the schema information for the "process_trackings" table.
	ProcessTrackingsTable = &schema.Table{
		Name:       "process_trackings",
		Columns:    ProcessTrackingsColumns,
		PrimaryKey: []*schema.Column{ProcessTrackingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "process_trackings_analysis_requests_tracking",
				Columns:    []*schema.Column{ProcessTrackingsColumns[18]},
				RefColumns: []*schema.Column{AnalysisRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processtracking_status",
				Unique:  false,
				Columns: []*schema.Column{ProcessTrackingsColumns[1]},
			},
			{
				Name:    "processtracking_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessTrackingsColumns[1], ProcessTrackingsColumns[16]},
			},
			{
				Name:    "processtracking_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessTrackingsColumns[1], ProcessTrackingsColumns[17]},
			},
		},
	}
	// ProviderResponsesColumns holds the columns for the "provider_responses" table.
	ProviderResponsesColumns = []*schema.Column{
		{Name: "response_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "query_parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "cited_urls", Type: field.TypeJSON, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "checksum", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "retention_expires_at", Type: field.TypeTime},
		{Name: "category_result_id", Type: field.TypeString},
	}
	// ProviderResponsesTable holds the schema information for the "provider_responses" table.
	ProviderResponsesTable = &schema.Table{
		Name:       "provider_responses",
		Columns:    ProviderResponsesColumns,
		PrimaryKey: []*schema.Column{ProviderResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "provider_responses_category_results_provider_responses",
				Columns:    []*schema.Column{ProviderResponsesColumns[13]},
				RefColumns: []*schema.Column{CategoryResultsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "providerresponse_category_result_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProviderResponsesColumns[13], ProviderResponsesColumns[11]},
			},
			{
				Name:    "providerresponse_retention_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ProviderResponsesColumns[12]},
			},
		},
	}
	// RateBucketsColumns holds the columns for the "rate_buckets" table.
	RateBucketsColumns = []*schema.Column{
		{Name: "bucket_id", Type: field.TypeString, Unique: true},
		{Name: "key", Type: field.TypeString},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RateBucketsTable holds the schema information for the "rate_buckets" table.
	RateBucketsTable = &schema.Table{
		Name:       "rate_buckets",
		Columns:    RateBucketsColumns,
		PrimaryKey: []*schema.Column{RateBucketsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ratebucket_key_window_start",
				Unique:  true,
				Columns: []*schema.Column{RateBucketsColumns[1], RateBucketsColumns[2]},
			},
			{
				Name:    "ratebucket_window_start",
				Unique:  false,
				Columns: []*schema.Column{RateBucketsColumns[2]},
			},
		},
	}
	// ScoringParametersColumns holds the columns for the "scoring_parameters" table.
	ScoringParametersColumns = []*schema.Column{
		{Name: "parameter_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeEnum, Enums: []string{"dose", "molecular_weight", "melting_point", "log_p"}},
		{Name: "weight", Type: field.TypeFloat64},
		{Name: "unit", Type: field.TypeString},
		{Name: "display_order", Type: field.TypeInt},
		{Name: "extraction_instruction", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ScoringParametersTable holds the schema information for the "scoring_parameters" table.
	ScoringParametersTable = &schema.Table{
		Name:       "scoring_parameters",
		Columns:    ScoringParametersColumns,
		PrimaryKey: []*schema.Column{ScoringParametersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scoringparameter_name",
				Unique:  true,
				Columns: []*schema.Column{ScoringParametersColumns[1]},
			},
		},
	}
	// ScoringRangesColumns holds the columns for the "scoring_ranges" table.
	ScoringRangesColumns = []*schema.Column{
		{Name: "range_id", Type: field.TypeString, Unique: true},
		{Name: "parameter", Type: field.TypeEnum, Enums: []string{"dose", "molecular_weight", "melting_point", "log_p"}},
		{Name: "delivery_method", Type: field.TypeEnum, Enums: []string{"transdermal", "transmucosal"}},
		{Name: "min_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "max_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "score", Type: field.TypeInt},
		{Name: "is_exclusion", Type: field.TypeBool, Default: false},
		{Name: "range_text", Type: field.TypeString},
	}
	// ScoringRangesTable holds the schema information for the "scoring_ranges" table.
	ScoringRangesTable = &schema.Table{
		Name:       "scoring_ranges",
		Columns:    ScoringRangesColumns,
		PrimaryKey: []*schema.Column{ScoringRangesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scoringrange_parameter_delivery_method",
				Unique:  false,
				Columns: []*schema.Column{ScoringRangesColumns[1], ScoringRangesColumns[2]},
			},
		},
	}
	// SourceConflictsColumns holds the columns for the "source_conflicts" table.
	SourceConflictsColumns = []*schema.Column{
		{Name: "conflict_id", Type: field.TypeString, Unique: true},
		{Name: "conflict_type", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "conflicting_source_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "resolution_strategy", Type: field.TypeString},
		{Name: "resolved_at", Type: field.TypeTime},
		{Name: "confidence_impact", Type: field.TypeFloat64, Default: 0},
		{Name: "is_critical", Type: field.TypeBool, Default: false},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "category_result_id", Type: field.TypeString},
	}
	// SourceConflictsTable holds the schema information for the "source_conflicts" table.
	SourceConflictsTable = &schema.Table{
		Name:       "source_conflicts",
		Columns:    SourceConflictsColumns,
		PrimaryKey: []*schema.Column{SourceConflictsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "source_conflicts_category_results_conflicts",
				Columns:    []*schema.Column{SourceConflictsColumns[9]},
				RefColumns: []*schema.Column{CategoryResultsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sourceconflict_category_result_id",
				Unique:  false,
				Columns: []*schema.Column{SourceConflictsColumns[9]},
			},
		},
	}
	// StageEventsColumns holds the columns for the "stage_events" table.
	StageEventsColumns = []*schema.Column{
		{Name: "stage_event_id", Type: field.TypeString, Unique: true},
		{Name: "category_id", Type: field.TypeString},
		{Name: "stage_name", Type: field.TypeEnum, Enums: []string{"collect", "verify", "merge", "summarize"}},
		{Name: "stage_order", Type: field.TypeInt},
		{Name: "executed", Type: field.TypeBool, Default: false},
		{Name: "skipped", Type: field.TypeBool, Default: false},
		{Name: "input_digest", Type: field.TypeString, Nullable: true},
		{Name: "output_digest", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "request_id", Type: field.TypeString},
	}
	// StageEventsTable holds the schema information for the "stage_events" table.
	StageEventsTable = &schema.Table{
		Name:       "stage_events",
		Columns:    StageEventsColumns,
		PrimaryKey: []*schema.Column{StageEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "stage_events_analysis_requests_stage_events",
				Columns:    []*schema.Column{StageEventsColumns[10]},
				RefColumns: []*schema.Column{AnalysisRequestsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "stageevent_request_id_category_id_stage_name",
				Unique:  true,
				Columns: []*schema.Column{StageEventsColumns[10], StageEventsColumns[1], StageEventsColumns[2]},
			},
			{
				Name:    "stageevent_request_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[10], StageEventsColumns[9]},
			},
		},
	}
	// SummaryHistoriesColumns holds the columns for the "summary_histories" table.
	SummaryHistoriesColumns = []*schema.Column{
		{Name: "history_id", Type: field.TypeString, Unique: true},
		{Name: "category_result_id", Type: field.TypeString},
		{Name: "style_name", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "generated_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "generation_time_ms", Type: field.TypeInt, Default: 0},
		{Name: "tokens_used", Type: field.TypeInt, Default: 0},
		{Name: "cost_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SummaryHistoriesTable holds the schema information for the "summary_histories" table.
	SummaryHistoriesTable = &schema.Table{
		Name:       "summary_histories",
		Columns:    SummaryHistoriesColumns,
		PrimaryKey: []*schema.Column{SummaryHistoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "summaryhistory_category_result_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SummaryHistoriesColumns[1], SummaryHistoriesColumns[10]},
			},
		},
	}
	// SummaryStylesColumns holds the columns for the "summary_styles" table.
	SummaryStylesColumns = []*schema.Column{
		{Name: "style_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "user_template", Type: field.TypeString, Size: 2147483647},
		{Name: "length_type", Type: field.TypeEnum, Enums: []string{"compact", "standard", "deep"}, Default: "standard"},
		{Name: "target_word_count", Type: field.TypeInt, Default: 300},
	}
	// SummaryStylesTable holds the schema information for the "summary_styles" table.
	SummaryStylesTable = &schema.Table{
		Name:       "summary_styles",
		Columns:    SummaryStylesColumns,
		PrimaryKey: []*schema.Column{SummaryStylesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisRequestsTable,
		AuditEventsTable,
		CategoryDependenciesTable,
		CategoryResultsTable,
		FinalOutputsTable,
		MergedDataTable,
		ParameterResultsTable,
		PharmaCategoriesTable,
		PipelineStagesTable,
		ProcessTrackingsTable,
		ProviderResponsesTable,
		RateBucketsTable,
		ScoringParametersTable,
		ScoringRangesTable,
		SourceConflictsTable,
		StageEventsTable,
		SummaryHistoriesTable,
		SummaryStylesTable,
	}
)

func init() {
	CategoryDependenciesTable.ForeignKeys[0].RefTable = PharmaCategoriesTable
	CategoryDependenciesTable.ForeignKeys[1].RefTable = PharmaCategoriesTable
	CategoryResultsTable.ForeignKeys[0].RefTable = AnalysisRequestsTable
	FinalOutputsTable.ForeignKeys[0].RefTable = AnalysisRequestsTable
	MergedDataTable.ForeignKeys[0].RefTable = CategoryResultsTable
	ParameterResultsTable.ForeignKeys[0].RefTable = AnalysisRequestsTable
	ProcessTrackingsTable.ForeignKeys[0].RefTable = AnalysisRequestsTable
	ProviderResponsesTable.ForeignKeys[0].RefTable = CategoryResultsTable
	SourceConflictsTable.ForeignKeys[0].RefTable = CategoryResultsTable
	StageEventsTable.ForeignKeys[0].RefTable = AnalysisRequestsTable
}
