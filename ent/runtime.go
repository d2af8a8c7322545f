// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/cognitrain/ent/assessmentevent"
	"github.com/abhisek/cognitrain/ent/gameevent"
	"github.com/abhisek/cognitrain/ent/llmrequestevent"
	"github.com/abhisek/cognitrain/ent/schema"
	"github.com/abhisek/cognitrain/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[0].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescMemoryNumbers is the schema descriptor for memory_numbers field.
	assessmenteventDescMemoryNumbers := assessmenteventFields[1].Descriptor()
	// assessmentevent.DefaultMemoryNumbers holds the default value on creation for the memory_numbers field.
	assessmentevent.DefaultMemoryNumbers = assessmenteventDescMemoryNumbers.Default.(float64)
	// assessmenteventDescMemoryWords is the schema descriptor for memory_words field.
	assessmenteventDescMemoryWords := assessmenteventFields[2].Descriptor()
	// assessmentevent.DefaultMemoryWords holds the default value on creation for the memory_words field.
	assessmentevent.DefaultMemoryWords = assessmenteventDescMemoryWords.Default.(float64)
	// assessmenteventDescSpeed is the schema descriptor for speed field.
	assessmenteventDescSpeed := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultSpeed holds the default value on creation for the speed field.
	assessmentevent.DefaultSpeed = assessmenteventDescSpeed.Default.(float64)
	// assessmenteventDescLogic is the schema descriptor for logic field.
	assessmenteventDescLogic := assessmenteventFields[4].Descriptor()
	// assessmentevent.DefaultLogic holds the default value on creation for the logic field.
	assessmentevent.DefaultLogic = assessmenteventDescLogic.Default.(float64)
	// assessmenteventDescWorkingMemory is the schema descriptor for working_memory field.
	assessmenteventDescWorkingMemory := assessmenteventFields[5].Descriptor()
	// assessmentevent.DefaultWorkingMemory holds the default value on creation for the working_memory field.
	assessmentevent.DefaultWorkingMemory = assessmenteventDescWorkingMemory.Default.(float64)
	gameeventMixin := schema.GameEvent{}.Mixin()
	gameeventMixinFields0 := gameeventMixin[0].Fields()
	_ = gameeventMixinFields0
	gameeventFields := schema.GameEvent{}.Fields()
	_ = gameeventFields
	// gameeventDescTimestamp is the schema descriptor for timestamp field.
	gameeventDescTimestamp := gameeventMixinFields0[1].Descriptor()
	// gameevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gameevent.DefaultTimestamp = gameeventDescTimestamp.Default.(func() time.Time)
	// gameeventDescSessionID is the schema descriptor for session_id field.
	gameeventDescSessionID := gameeventFields[0].Descriptor()
	// gameevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	gameevent.SessionIDValidator = gameeventDescSessionID.Validators[0].(func(string) error)
	// gameeventDescGameType is the schema descriptor for game_type field.
	gameeventDescGameType := gameeventFields[1].Descriptor()
	// gameevent.GameTypeValidator is a validator for the "game_type" field. It is called by the builders before save.
	gameevent.GameTypeValidator = gameeventDescGameType.Validators[0].(func(string) error)
	// gameeventDescAccuracy is the schema descriptor for accuracy field.
	gameeventDescAccuracy := gameeventFields[3].Descriptor()
	// gameevent.DefaultAccuracy holds the default value on creation for the accuracy field.
	gameevent.DefaultAccuracy = gameeventDescAccuracy.Default.(float64)
	// gameeventDescDurationSecs is the schema descriptor for duration_secs field.
	gameeventDescDurationSecs := gameeventFields[4].Descriptor()
	// gameevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	gameevent.DefaultDurationSecs = gameeventDescDurationSecs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
