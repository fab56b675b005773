// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/autoanalyst/analyst/ent/agenttemplate"
	"github.com/autoanalyst/analyst/ent/chat"
	"github.com/autoanalyst/analyst/ent/codeexecution"
	"github.com/autoanalyst/analyst/ent/deepanalysisreport"
	"github.com/autoanalyst/analyst/ent/event"
	"github.com/autoanalyst/analyst/ent/message"
	"github.com/autoanalyst/analyst/ent/messagefeedback"
	"github.com/autoanalyst/analyst/ent/modelusage"
	"github.com/autoanalyst/analyst/ent/schema"
	"github.com/autoanalyst/analyst/ent/user"
	"github.com/autoanalyst/analyst/ent/usertemplatepreference"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agenttemplateFields := schema.AgentTemplate{}.Fields()
	_ = agenttemplateFields
	// agenttemplateDescIsPremiumOnly is the schema descriptor for is_premium_only field.
	agenttemplateDescIsPremiumOnly := agenttemplateFields[6].Descriptor()
	// agenttemplate.DefaultIsPremiumOnly holds the default value on creation for the is_premium_only field.
	agenttemplate.DefaultIsPremiumOnly = agenttemplateDescIsPremiumOnly.Default.(bool)
	// agenttemplateDescIsActive is the schema descriptor for is_active field.
	agenttemplateDescIsActive := agenttemplateFields[9].Descriptor()
	// agenttemplate.DefaultIsActive holds the default value on creation for the is_active field.
	agenttemplate.DefaultIsActive = agenttemplateDescIsActive.Default.(bool)
	// agenttemplateDescCreatedAt is the schema descriptor for created_at field.
	agenttemplateDescCreatedAt := agenttemplateFields[10].Descriptor()
	// agenttemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	agenttemplate.DefaultCreatedAt = agenttemplateDescCreatedAt.Default.(func() time.Time)
	// agenttemplateDescUpdatedAt is the schema descriptor for updated_at field.
	agenttemplateDescUpdatedAt := agenttemplateFields[11].Descriptor()
	// agenttemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agenttemplate.DefaultUpdatedAt = agenttemplateDescUpdatedAt.Default.(func() time.Time)
	// agenttemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agenttemplate.UpdateDefaultUpdatedAt = agenttemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatFields := schema.Chat{}.Fields()
	_ = chatFields
	// chatDescTitle is the schema descriptor for title field.
	chatDescTitle := chatFields[0].Descriptor()
	// chat.DefaultTitle holds the default value on creation for the title field.
	chat.DefaultTitle = chatDescTitle.Default.(string)
	// chatDescCreatedAt is the schema descriptor for created_at field.
	chatDescCreatedAt := chatFields[2].Descriptor()
	// chat.DefaultCreatedAt holds the default value on creation for the created_at field.
	chat.DefaultCreatedAt = chatDescCreatedAt.Default.(func() time.Time)
	codeexecutionFields := schema.CodeExecution{}.Fields()
	_ = codeexecutionFields
	// codeexecutionDescCreatedAt is the schema descriptor for created_at field.
	codeexecutionDescCreatedAt := codeexecutionFields[8].Descriptor()
	// codeexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	codeexecution.DefaultCreatedAt = codeexecutionDescCreatedAt.Default.(func() time.Time)
	// codeexecutionDescUpdatedAt is the schema descriptor for updated_at field.
	codeexecutionDescUpdatedAt := codeexecutionFields[9].Descriptor()
	// codeexecution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	codeexecution.DefaultUpdatedAt = codeexecutionDescUpdatedAt.Default.(func() time.Time)
	// codeexecution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	codeexecution.UpdateDefaultUpdatedAt = codeexecutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	deepanalysisreportFields := schema.DeepAnalysisReport{}.Fields()
	_ = deepanalysisreportFields
	// deepanalysisreportDescStartTime is the schema descriptor for start_time field.
	deepanalysisreportDescStartTime := deepanalysisreportFields[4].Descriptor()
	// deepanalysisreport.DefaultStartTime holds the default value on creation for the start_time field.
	deepanalysisreport.DefaultStartTime = deepanalysisreportDescStartTime.Default.(func() time.Time)
	// deepanalysisreportDescProgressPercentage is the schema descriptor for progress_percentage field.
	deepanalysisreportDescProgressPercentage := deepanalysisreportFields[16].Descriptor()
	// deepanalysisreport.DefaultProgressPercentage holds the default value on creation for the progress_percentage field.
	deepanalysisreport.DefaultProgressPercentage = deepanalysisreportDescProgressPercentage.Default.(int)
	// deepanalysisreport.ProgressPercentageValidator is a validator for the "progress_percentage" field. It is called by the builders before save.
	deepanalysisreport.ProgressPercentageValidator = func() func(int) error {
		validators := deepanalysisreportDescProgressPercentage.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress_percentage int) error {
			for _, fn := range fns {
				if err := fn(progress_percentage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// deepanalysisreportDescTotalTokensUsed is the schema descriptor for total_tokens_used field.
	deepanalysisreportDescTotalTokensUsed := deepanalysisreportFields[21].Descriptor()
	// deepanalysisreport.DefaultTotalTokensUsed holds the default value on creation for the total_tokens_used field.
	deepanalysisreport.DefaultTotalTokensUsed = deepanalysisreportDescTotalTokensUsed.Default.(int)
	// deepanalysisreportDescEstimatedCost is the schema descriptor for estimated_cost field.
	deepanalysisreportDescEstimatedCost := deepanalysisreportFields[22].Descriptor()
	// deepanalysisreport.DefaultEstimatedCost holds the default value on creation for the estimated_cost field.
	deepanalysisreport.DefaultEstimatedCost = deepanalysisreportDescEstimatedCost.Default.(float64)
	// deepanalysisreportDescCreditsConsumed is the schema descriptor for credits_consumed field.
	deepanalysisreportDescCreditsConsumed := deepanalysisreportFields[23].Descriptor()
	// deepanalysisreport.DefaultCreditsConsumed holds the default value on creation for the credits_consumed field.
	deepanalysisreport.DefaultCreditsConsumed = deepanalysisreportDescCreditsConsumed.Default.(int)
	// deepanalysisreportDescCreatedAt is the schema descriptor for created_at field.
	deepanalysisreportDescCreatedAt := deepanalysisreportFields[24].Descriptor()
	// deepanalysisreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	deepanalysisreport.DefaultCreatedAt = deepanalysisreportDescCreatedAt.Default.(func() time.Time)
	// deepanalysisreportDescUpdatedAt is the schema descriptor for updated_at field.
	deepanalysisreportDescUpdatedAt := deepanalysisreportFields[25].Descriptor()
	// deepanalysisreport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deepanalysisreport.DefaultUpdatedAt = deepanalysisreportDescUpdatedAt.Default.(func() time.Time)
	// deepanalysisreport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deepanalysisreport.UpdateDefaultUpdatedAt = deepanalysisreportDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescTimestamp is the schema descriptor for timestamp field.
	messageDescTimestamp := messageFields[3].Descriptor()
	// message.DefaultTimestamp holds the default value on creation for the timestamp field.
	message.DefaultTimestamp = messageDescTimestamp.Default.(func() time.Time)
	messagefeedbackFields := schema.MessageFeedback{}.Fields()
	_ = messagefeedbackFields
	// messagefeedbackDescRating is the schema descriptor for rating field.
	messagefeedbackDescRating := messagefeedbackFields[1].Descriptor()
	// messagefeedback.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	messagefeedback.RatingValidator = func() func(int) error {
		validators := messagefeedbackDescRating.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(rating int) error {
			for _, fn := range fns {
				if err := fn(rating); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// messagefeedbackDescCreatedAt is the schema descriptor for created_at field.
	messagefeedbackDescCreatedAt := messagefeedbackFields[6].Descriptor()
	// messagefeedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	messagefeedback.DefaultCreatedAt = messagefeedbackDescCreatedAt.Default.(func() time.Time)
	// messagefeedbackDescUpdatedAt is the schema descriptor for updated_at field.
	messagefeedbackDescUpdatedAt := messagefeedbackFields[7].Descriptor()
	// messagefeedback.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	messagefeedback.DefaultUpdatedAt = messagefeedbackDescUpdatedAt.Default.(func() time.Time)
	// messagefeedback.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	messagefeedback.UpdateDefaultUpdatedAt = messagefeedbackDescUpdatedAt.UpdateDefault.(func() time.Time)
	modelusageFields := schema.ModelUsage{}.Fields()
	_ = modelusageFields
	// modelusageDescPromptTokens is the schema descriptor for prompt_tokens field.
	modelusageDescPromptTokens := modelusageFields[4].Descriptor()
	// modelusage.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	modelusage.DefaultPromptTokens = modelusageDescPromptTokens.Default.(int)
	// modelusageDescCompletionTokens is the schema descriptor for completion_tokens field.
	modelusageDescCompletionTokens := modelusageFields[5].Descriptor()
	// modelusage.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	modelusage.DefaultCompletionTokens = modelusageDescCompletionTokens.Default.(int)
	// modelusageDescTotalTokens is the schema descriptor for total_tokens field.
	modelusageDescTotalTokens := modelusageFields[6].Descriptor()
	// modelusage.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	modelusage.DefaultTotalTokens = modelusageDescTotalTokens.Default.(int)
	// modelusageDescQuerySize is the schema descriptor for query_size field.
	modelusageDescQuerySize := modelusageFields[7].Descriptor()
	// modelusage.DefaultQuerySize holds the default value on creation for the query_size field.
	modelusage.DefaultQuerySize = modelusageDescQuerySize.Default.(int)
	// modelusageDescResponseSize is the schema descriptor for response_size field.
	modelusageDescResponseSize := modelusageFields[8].Descriptor()
	// modelusage.DefaultResponseSize holds the default value on creation for the response_size field.
	modelusage.DefaultResponseSize = modelusageDescResponseSize.Default.(int)
	// modelusageDescCost is the schema descriptor for cost field.
	modelusageDescCost := modelusageFields[9].Descriptor()
	// modelusage.DefaultCost holds the default value on creation for the cost field.
	modelusage.DefaultCost = modelusageDescCost.Default.(float64)
	// modelusageDescTimestamp is the schema descriptor for timestamp field.
	modelusageDescTimestamp := modelusageFields[10].Descriptor()
	// modelusage.DefaultTimestamp holds the default value on creation for the timestamp field.
	modelusage.DefaultTimestamp = modelusageDescTimestamp.Default.(func() time.Time)
	// modelusageDescIsStreaming is the schema descriptor for is_streaming field.
	modelusageDescIsStreaming := modelusageFields[11].Descriptor()
	// modelusage.DefaultIsStreaming holds the default value on creation for the is_streaming field.
	modelusage.DefaultIsStreaming = modelusageDescIsStreaming.Default.(bool)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[2].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	usertemplatepreferenceFields := schema.UserTemplatePreference{}.Fields()
	_ = usertemplatepreferenceFields
	// usertemplatepreferenceDescIsEnabled is the schema descriptor for is_enabled field.
	usertemplatepreferenceDescIsEnabled := usertemplatepreferenceFields[2].Descriptor()
	// usertemplatepreference.DefaultIsEnabled holds the default value on creation for the is_enabled field.
	usertemplatepreference.DefaultIsEnabled = usertemplatepreferenceDescIsEnabled.Default.(bool)
	// usertemplatepreferenceDescUsageCount is the schema descriptor for usage_count field.
	usertemplatepreferenceDescUsageCount := usertemplatepreferenceFields[3].Descriptor()
	// usertemplatepreference.DefaultUsageCount holds the default value on creation for the usage_count field.
	usertemplatepreference.DefaultUsageCount = usertemplatepreferenceDescUsageCount.Default.(int)
	// usertemplatepreferenceDescCreatedAt is the schema descriptor for created_at field.
	usertemplatepreferenceDescCreatedAt := usertemplatepreferenceFields[5].Descriptor()
	// usertemplatepreference.DefaultCreatedAt holds the default value on creation for the created_at field.
	usertemplatepreference.DefaultCreatedAt = usertemplatepreferenceDescCreatedAt.Default.(func() time.Time)
	// usertemplatepreferenceDescUpdatedAt is the schema descriptor for updated_at field.
	usertemplatepreferenceDescUpdatedAt := usertemplatepreferenceFields[6].Descriptor()
	// usertemplatepreference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usertemplatepreference.DefaultUpdatedAt = usertemplatepreferenceDescUpdatedAt.Default.(func() time.Time)
	// usertemplatepreference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usertemplatepreference.UpdateDefaultUpdatedAt = usertemplatepreferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
}
