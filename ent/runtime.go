// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/owais-symtera/cognito-sub001/ent/analysisrequest"
	"github.com/owais-symtera/cognito-sub001/ent/auditevent"
	"github.com/owais-symtera/cognito-sub001/ent/categoryresult"
	"github.com/owais-symtera/cognito-sub001/ent/finaloutput"
	"github.com/owais-symtera/cognito-sub001/ent/mergeddata"
	"github.com/owais-symtera/cognito-sub001/ent/parameterresult"
	"github.com/owais-symtera/cognito-sub001/ent/pharmacategory"
	"github.com/owais-symtera/cognito-sub001/ent/pipelinestage"
	"github.com/owais-symtera/cognito-sub001/ent/processtracking"
	"github.com/owais-symtera/cognito-sub001/ent/providerresponse"
	"github.com/owais-symtera/cognito-sub001/ent/ratebucket"
	"github.com/owais-symtera/cognito-sub001/ent/schema"
	"github.com/owais-symtera/cognito-sub001/ent/scoringparameter"
	"github.com/owais-symtera/cognito-sub001/ent/scoringrange"
	"github.com/owais-symtera/cognito-sub001/ent/sourceconflict"
	"github.com/owais-symtera/cognito-sub001/ent/stageevent"
	"github.com/owais-symtera/cognito-sub001/ent/summaryhistory"
	"github.com/owais-symtera/cognito-sub001/ent/summarystyle"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisrequestFields := schema.AnalysisRequest{}.Fields()
	_ = analysisrequestFields
	// analysisrequestDescDrugName is the schema descriptor for drug_name field.
	analysisrequestDescDrugName := analysisrequestFields[1].Descriptor()
	// analysisrequest.DrugNameValidator is a validator for the "drug_name" field. It is called by the builders before save.
	analysisrequest.DrugNameValidator = func() func(string) error {
		validators := analysisrequestDescDrugName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(drug_name string) error {
			for _, fn := range fns {
				if err := fn(drug_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// analysisrequestDescDrugCount is the schema descriptor for drug_count field.
	analysisrequestDescDrugCount := analysisrequestFields[6].Descriptor()
	// analysisrequest.DefaultDrugCount holds the default value on creation for the drug_count field.
	analysisrequest.DefaultDrugCount = analysisrequestDescDrugCount.Default.(int)
	// analysisrequestDescRetryCount is the schema descriptor for retry_count field.
	analysisrequestDescRetryCount := analysisrequestFields[7].Descriptor()
	// analysisrequest.DefaultRetryCount holds the default value on creation for the retry_count field.
	analysisrequest.DefaultRetryCount = analysisrequestDescRetryCount.Default.(int)
	// analysisrequestDescCreatedAt is the schema descriptor for created_at field.
	analysisrequestDescCreatedAt := analysisrequestFields[8].Descriptor()
	// analysisrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisrequest.DefaultCreatedAt = analysisrequestDescCreatedAt.Default.(func() time.Time)
	// analysisrequestDescUpdatedAt is the schema descriptor for updated_at field.
	analysisrequestDescUpdatedAt := analysisrequestFields[9].Descriptor()
	// analysisrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	analysisrequest.DefaultUpdatedAt = analysisrequestDescUpdatedAt.Default.(func() time.Time)
	// analysisrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	analysisrequest.UpdateDefaultUpdatedAt = analysisrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	auditeventFields := schema.AuditEvent{}.Fields()
	_ = auditeventFields
	// auditeventDescActor is the schema descriptor for actor field.
	auditeventDescActor := auditeventFields[7].Descriptor()
	// auditevent.DefaultActor holds the default value on creation for the actor field.
	auditevent.DefaultActor = auditeventDescActor.Default.(string)
	// auditeventDescTimestamp is the schema descriptor for timestamp field.
	auditeventDescTimestamp := auditeventFields[9].Descriptor()
	// auditevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditevent.DefaultTimestamp = auditeventDescTimestamp.Default.(func() time.Time)
	categoryresultFields := schema.CategoryResult{}.Fields()
	_ = categoryresultFields
	// categoryresultDescConfidenceScore is the schema descriptor for confidence_score field.
	categoryresultDescConfidenceScore := categoryresultFields[5].Descriptor()
	// categoryresult.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	categoryresult.DefaultConfidenceScore = categoryresultDescConfidenceScore.Default.(float64)
	// categoryresult.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	categoryresult.ConfidenceScoreValidator = func() func(float64) error {
		validators := categoryresultDescConfidenceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence_score float64) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryresultDescDataQualityScore is the schema descriptor for data_quality_score field.
	categoryresultDescDataQualityScore := categoryresultFields[6].Descriptor()
	// categoryresult.DefaultDataQualityScore holds the default value on creation for the data_quality_score field.
	categoryresult.DefaultDataQualityScore = categoryresultDescDataQualityScore.Default.(float64)
	// categoryresult.DataQualityScoreValidator is a validator for the "data_quality_score" field. It is called by the builders before save.
	categoryresult.DataQualityScoreValidator = func() func(float64) error {
		validators := categoryresultDescDataQualityScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(data_quality_score float64) error {
			for _, fn := range fns {
				if err := fn(data_quality_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// categoryresultDescRetryCount is the schema descriptor for retry_count field.
	categoryresultDescRetryCount := categoryresultFields[10].Descriptor()
	// categoryresult.DefaultRetryCount holds the default value on creation for the retry_count field.
	categoryresult.DefaultRetryCount = categoryresultDescRetryCount.Default.(int)
	// categoryresultDescAPICallsMade is the schema descriptor for api_calls_made field.
	categoryresultDescAPICallsMade := categoryresultFields[14].Descriptor()
	// categoryresult.DefaultAPICallsMade holds the default value on creation for the api_calls_made field.
	categoryresult.DefaultAPICallsMade = categoryresultDescAPICallsMade.Default.(int)
	// categoryresultDescTokenCount is the schema descriptor for token_count field.
	categoryresultDescTokenCount := categoryresultFields[15].Descriptor()
	// categoryresult.DefaultTokenCount holds the default value on creation for the token_count field.
	categoryresult.DefaultTokenCount = categoryresultDescTokenCount.Default.(int)
	// categoryresultDescCostEstimate is the schema descriptor for cost_estimate field.
	categoryresultDescCostEstimate := categoryresultFields[16].Descriptor()
	// categoryresult.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	categoryresult.DefaultCostEstimate = categoryresultDescCostEstimate.Default.(float64)
	finaloutputFields := schema.FinalOutput{}.Fields()
	_ = finaloutputFields
	// finaloutputDescTdScore is the schema descriptor for td_score field.
	finaloutputDescTdScore := finaloutputFields[3].Descriptor()
	// finaloutput.DefaultTdScore holds the default value on creation for the td_score field.
	finaloutput.DefaultTdScore = finaloutputDescTdScore.Default.(float64)
	// finaloutputDescTmScore is the schema descriptor for tm_score field.
	finaloutputDescTmScore := finaloutputFields[4].Descriptor()
	// finaloutput.DefaultTmScore holds the default value on creation for the tm_score field.
	finaloutput.DefaultTmScore = finaloutputDescTmScore.Default.(float64)
	// finaloutputDescVersion is the schema descriptor for version field.
	finaloutputDescVersion := finaloutputFields[10].Descriptor()
	// finaloutput.DefaultVersion holds the default value on creation for the version field.
	finaloutput.DefaultVersion = finaloutputDescVersion.Default.(int)
	// finaloutputDescGeneratedAt is the schema descriptor for generated_at field.
	finaloutputDescGeneratedAt := finaloutputFields[11].Descriptor()
	// finaloutput.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	finaloutput.DefaultGeneratedAt = finaloutputDescGeneratedAt.Default.(func() time.Time)
	mergeddataFields := schema.MergedData{}.Fields()
	_ = mergeddataFields
	// mergeddataDescConfidence is the schema descriptor for confidence field.
	mergeddataDescConfidence := mergeddataFields[4].Descriptor()
	// mergeddata.DefaultConfidence holds the default value on creation for the confidence field.
	mergeddata.DefaultConfidence = mergeddataDescConfidence.Default.(float64)
	// mergeddata.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	mergeddata.ConfidenceValidator = func() func(float64) error {
		validators := mergeddataDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mergeddataDescCreatedAt is the schema descriptor for created_at field.
	mergeddataDescCreatedAt := mergeddataFields[8].Descriptor()
	// mergeddata.DefaultCreatedAt holds the default value on creation for the created_at field.
	mergeddata.DefaultCreatedAt = mergeddataDescCreatedAt.Default.(func() time.Time)
	parameterresultFields := schema.ParameterResult{}.Fields()
	_ = parameterresultFields
	// parameterresultDescScore is the schema descriptor for score field.
	parameterresultDescScore := parameterresultFields[6].Descriptor()
	// parameterresult.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	parameterresult.ScoreValidator = func() func(int) error {
		validators := parameterresultDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// parameterresultDescWeightedScore is the schema descriptor for weighted_score field.
	parameterresultDescWeightedScore := parameterresultFields[7].Descriptor()
	// parameterresult.DefaultWeightedScore holds the default value on creation for the weighted_score field.
	parameterresult.DefaultWeightedScore = parameterresultDescWeightedScore.Default.(float64)
	// parameterresultDescIsExclusion is the schema descriptor for is_exclusion field.
	parameterresultDescIsExclusion := parameterresultFields[10].Descriptor()
	// parameterresult.DefaultIsExclusion holds the default value on creation for the is_exclusion field.
	parameterresult.DefaultIsExclusion = parameterresultDescIsExclusion.Default.(bool)
	// parameterresultDescCreatedAt is the schema descriptor for created_at field.
	parameterresultDescCreatedAt := parameterresultFields[12].Descriptor()
	// parameterresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	parameterresult.DefaultCreatedAt = parameterresultDescCreatedAt.Default.(func() time.Time)
	pharmacategoryFields := schema.PharmaCategory{}.Fields()
	_ = pharmacategoryFields
	// pharmacategoryDescName is the schema descriptor for name field.
	pharmacategoryDescName := pharmacategoryFields[1].Descriptor()
	// pharmacategory.NameValidator is a validator for the "name" field. It is called by the builders before save.
	pharmacategory.NameValidator = pharmacategoryDescName.Validators[0].(func(string) error)
	// pharmacategoryDescKey is the schema descriptor for key field.
	pharmacategoryDescKey := pharmacategoryFields[2].Descriptor()
	// pharmacategory.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	pharmacategory.KeyValidator = pharmacategoryDescKey.Validators[0].(func(string) error)
	// pharmacategoryDescPhase is the schema descriptor for phase field.
	pharmacategoryDescPhase := pharmacategoryFields[3].Descriptor()
	// pharmacategory.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	pharmacategory.PhaseValidator = func() func(int) error {
		validators := pharmacategoryDescPhase.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(phase int) error {
			for _, fn := range fns {
				if err := fn(phase); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pharmacategoryDescIsActive is the schema descriptor for is_active field.
	pharmacategoryDescIsActive := pharmacategoryFields[5].Descriptor()
	// pharmacategory.DefaultIsActive holds the default value on creation for the is_active field.
	pharmacategory.DefaultIsActive = pharmacategoryDescIsActive.Default.(bool)
	// pharmacategoryDescConflictResolutionStrategy is the schema descriptor for conflict_resolution_strategy field.
	pharmacategoryDescConflictResolutionStrategy := pharmacategoryFields[9].Descriptor()
	// pharmacategory.DefaultConflictResolutionStrategy holds the default value on creation for the conflict_resolution_strategy field.
	pharmacategory.DefaultConflictResolutionStrategy = pharmacategoryDescConflictResolutionStrategy.Default.(string)
	pipelinestageFields := schema.PipelineStage{}.Fields()
	_ = pipelinestageFields
	// pipelinestageDescEnabled is the schema descriptor for enabled field.
	pipelinestageDescEnabled := pipelinestageFields[3].Descriptor()
	// pipelinestage.DefaultEnabled holds the default value on creation for the enabled field.
	pipelinestage.DefaultEnabled = pipelinestageDescEnabled.Default.(bool)
	processtrackingFields := schema.ProcessTracking{}.Fields()
	_ = processtrackingFields
	// processtrackingDescProgressPercent is the schema descriptor for progress_percent field.
	processtrackingDescProgressPercent := processtrackingFields[3].Descriptor()
	// processtracking.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	processtracking.DefaultProgressPercent = processtrackingDescProgressPercent.Default.(int)
	// processtracking.ProgressPercentValidator is a validator for the "progress_percent" field. It is called by the builders before save.
	processtracking.ProgressPercentValidator = func() func(int) error {
		validators := processtrackingDescProgressPercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress_percent int) error {
			for _, fn := range fns {
				if err := fn(progress_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processtrackingDescCategoriesTotal is the schema descriptor for categories_total field.
	processtrackingDescCategoriesTotal := processtrackingFields[4].Descriptor()
	// processtracking.DefaultCategoriesTotal holds the default value on creation for the categories_total field.
	processtracking.DefaultCategoriesTotal = processtrackingDescCategoriesTotal.Default.(int)
	// processtrackingDescCategoriesCompleted is the schema descriptor for categories_completed field.
	processtrackingDescCategoriesCompleted := processtrackingFields[5].Descriptor()
	// processtracking.DefaultCategoriesCompleted holds the default value on creation for the categories_completed field.
	processtracking.DefaultCategoriesCompleted = processtrackingDescCategoriesCompleted.Default.(int)
	// processtrackingDescCreatedAt is the schema descriptor for created_at field.
	processtrackingDescCreatedAt := processtrackingFields[17].Descriptor()
	// processtracking.DefaultCreatedAt holds the default value on creation for the created_at field.
	processtracking.DefaultCreatedAt = processtrackingDescCreatedAt.Default.(func() time.Time)
	// processtrackingDescUpdatedAt is the schema descriptor for updated_at field.
	processtrackingDescUpdatedAt := processtrackingFields[18].Descriptor()
	// processtracking.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	processtracking.DefaultUpdatedAt = processtrackingDescUpdatedAt.Default.(func() time.Time)
	// processtracking.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	processtracking.UpdateDefaultUpdatedAt = processtrackingDescUpdatedAt.UpdateDefault.(func() time.Time)
	providerresponseFields := schema.ProviderResponse{}.Fields()
	_ = providerresponseFields
	// providerresponseDescLatencyMs is the schema descriptor for latency_ms field.
	providerresponseDescLatencyMs := providerresponseFields[8].Descriptor()
	// providerresponse.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	providerresponse.DefaultLatencyMs = providerresponseDescLatencyMs.Default.(int)
	// providerresponseDescTokenCount is the schema descriptor for token_count field.
	providerresponseDescTokenCount := providerresponseFields[9].Descriptor()
	// providerresponse.DefaultTokenCount holds the default value on creation for the token_count field.
	providerresponse.DefaultTokenCount = providerresponseDescTokenCount.Default.(int)
	// providerresponseDescCost is the schema descriptor for cost field.
	providerresponseDescCost := providerresponseFields[10].Descriptor()
	// providerresponse.DefaultCost holds the default value on creation for the cost field.
	providerresponse.DefaultCost = providerresponseDescCost.Default.(float64)
	// providerresponseDescCreatedAt is the schema descriptor for created_at field.
	providerresponseDescCreatedAt := providerresponseFields[12].Descriptor()
	// providerresponse.DefaultCreatedAt holds the default value on creation for the created_at field.
	providerresponse.DefaultCreatedAt = providerresponseDescCreatedAt.Default.(func() time.Time)
	ratebucketFields := schema.RateBucket{}.Fields()
	_ = ratebucketFields
	// ratebucketDescCount is the schema descriptor for count field.
	ratebucketDescCount := ratebucketFields[3].Descriptor()
	// ratebucket.DefaultCount holds the default value on creation for the count field.
	ratebucket.DefaultCount = ratebucketDescCount.Default.(int)
	// ratebucketDescUpdatedAt is the schema descriptor for updated_at field.
	ratebucketDescUpdatedAt := ratebucketFields[4].Descriptor()
	// ratebucket.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ratebucket.DefaultUpdatedAt = ratebucketDescUpdatedAt.Default.(func() time.Time)
	// ratebucket.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ratebucket.UpdateDefaultUpdatedAt = ratebucketDescUpdatedAt.UpdateDefault.(func() time.Time)
	scoringparameterFields := schema.ScoringParameter{}.Fields()
	_ = scoringparameterFields
	// scoringparameterDescWeight is the schema descriptor for weight field.
	scoringparameterDescWeight := scoringparameterFields[2].Descriptor()
	// scoringparameter.WeightValidator is a validator for the "weight" field. It is called by the builders before save.
	scoringparameter.WeightValidator = func() func(float64) error {
		validators := scoringparameterDescWeight.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(weight float64) error {
			for _, fn := range fns {
				if err := fn(weight); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	scoringrangeFields := schema.ScoringRange{}.Fields()
	_ = scoringrangeFields
	// scoringrangeDescScore is the schema descriptor for score field.
	scoringrangeDescScore := scoringrangeFields[5].Descriptor()
	// scoringrange.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	scoringrange.ScoreValidator = func() func(int) error {
		validators := scoringrangeDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scoringrangeDescIsExclusion is the schema descriptor for is_exclusion field.
	scoringrangeDescIsExclusion := scoringrangeFields[6].Descriptor()
	// scoringrange.DefaultIsExclusion holds the default value on creation for the is_exclusion field.
	scoringrange.DefaultIsExclusion = scoringrangeDescIsExclusion.Default.(bool)
	sourceconflictFields := schema.SourceConflict{}.Fields()
	_ = sourceconflictFields
	// sourceconflictDescResolvedAt is the schema descriptor for resolved_at field.
	sourceconflictDescResolvedAt := sourceconflictFields[6].Descriptor()
	// sourceconflict.DefaultResolvedAt holds the default value on creation for the resolved_at field.
	sourceconflict.DefaultResolvedAt = sourceconflictDescResolvedAt.Default.(func() time.Time)
	// sourceconflictDescConfidenceImpact is the schema descriptor for confidence_impact field.
	sourceconflictDescConfidenceImpact := sourceconflictFields[7].Descriptor()
	// sourceconflict.DefaultConfidenceImpact holds the default value on creation for the confidence_impact field.
	sourceconflict.DefaultConfidenceImpact = sourceconflictDescConfidenceImpact.Default.(float64)
	// sourceconflictDescIsCritical is the schema descriptor for is_critical field.
	sourceconflictDescIsCritical := sourceconflictFields[8].Descriptor()
	// sourceconflict.DefaultIsCritical holds the default value on creation for the is_critical field.
	sourceconflict.DefaultIsCritical = sourceconflictDescIsCritical.Default.(bool)
	stageeventFields := schema.StageEvent{}.Fields()
	_ = stageeventFields
	// stageeventDescExecuted is the schema descriptor for executed field.
	stageeventDescExecuted := stageeventFields[5].Descriptor()
	// stageevent.DefaultExecuted holds the default value on creation for the executed field.
	stageevent.DefaultExecuted = stageeventDescExecuted.Default.(bool)
	// stageeventDescSkipped is the schema descriptor for skipped field.
	stageeventDescSkipped := stageeventFields[6].Descriptor()
	// stageevent.DefaultSkipped holds the default value on creation for the skipped field.
	stageevent.DefaultSkipped = stageeventDescSkipped.Default.(bool)
	// stageeventDescDurationMs is the schema descriptor for duration_ms field.
	stageeventDescDurationMs := stageeventFields[9].Descriptor()
	// stageevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	stageevent.DefaultDurationMs = stageeventDescDurationMs.Default.(int)
	// stageeventDescCreatedAt is the schema descriptor for created_at field.
	stageeventDescCreatedAt := stageeventFields[10].Descriptor()
	// stageevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	stageevent.DefaultCreatedAt = stageeventDescCreatedAt.Default.(func() time.Time)
	summaryhistoryFields := schema.SummaryHistory{}.Fields()
	_ = summaryhistoryFields
	// summaryhistoryDescGenerationTimeMs is the schema descriptor for generation_time_ms field.
	summaryhistoryDescGenerationTimeMs := summaryhistoryFields[7].Descriptor()
	// summaryhistory.DefaultGenerationTimeMs holds the default value on creation for the generation_time_ms field.
	summaryhistory.DefaultGenerationTimeMs = summaryhistoryDescGenerationTimeMs.Default.(int)
	// summaryhistoryDescTokensUsed is the schema descriptor for tokens_used field.
	summaryhistoryDescTokensUsed := summaryhistoryFields[8].Descriptor()
	// summaryhistory.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	summaryhistory.DefaultTokensUsed = summaryhistoryDescTokensUsed.Default.(int)
	// summaryhistoryDescCostEstimate is the schema descriptor for cost_estimate field.
	summaryhistoryDescCostEstimate := summaryhistoryFields[9].Descriptor()
	// summaryhistory.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	summaryhistory.DefaultCostEstimate = summaryhistoryDescCostEstimate.Default.(float64)
	// summaryhistoryDescCreatedAt is the schema descriptor for created_at field.
	summaryhistoryDescCreatedAt := summaryhistoryFields[10].Descriptor()
	// summaryhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	summaryhistory.DefaultCreatedAt = summaryhistoryDescCreatedAt.Default.(func() time.Time)
	summarystyleFields := schema.SummaryStyle{}.Fields()
	_ = summarystyleFields
	// summarystyleDescName is the schema descriptor for name field.
	summarystyleDescName := summarystyleFields[1].Descriptor()
	// summarystyle.NameValidator is a validator for the "name" field. It is called by the builders before save.
	summarystyle.NameValidator = summarystyleDescName.Validators[0].(func(string) error)
	// summarystyleDescTargetWordCount is the schema descriptor for target_word_count field.
	summarystyleDescTargetWordCount := summarystyleFields[5].Descriptor()
	// summarystyle.DefaultTargetWordCount holds the default value on creation for the target_word_count field.
	summarystyle.DefaultTargetWordCount = summarystyleDescTargetWordCount.Default.(int)
}
