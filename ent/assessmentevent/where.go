// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cognitrain/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSessionID, v))
}

// MemoryNumbers applies equality check predicate on the "memory_numbers" field. It's identical to MemoryNumbersEQ.
func MemoryNumbers(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldMemoryNumbers, v))
}

// MemoryWords applies equality check predicate on the "memory_words" field. It's identical to MemoryWordsEQ.
func MemoryWords(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldMemoryWords, v))
}

// Speed applies equality check predicate on the "speed" field. It's identical to SpeedEQ.
func Speed(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSpeed, v))
}

// Logic applies equality check predicate on the "logic" field. It's identical to LogicEQ.
func Logic(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldLogic, v))
}

// WorkingMemory applies equality check predicate on the "working_memory" field. It's identical to WorkingMemoryEQ.
func WorkingMemory(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldWorkingMemory, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// MemoryNumbersEQ applies the EQ predicate on the "memory_numbers" field.
func MemoryNumbersEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldMemoryNumbers, v))
}

// MemoryNumbersNEQ applies the NEQ predicate on the "memory_numbers" field.
func MemoryNumbersNEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldMemoryNumbers, v))
}

// MemoryNumbersIn applies the In predicate on the "memory_numbers" field.
func MemoryNumbersIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldMemoryNumbers, vs...))
}

// MemoryNumbersNotIn applies the NotIn predicate on the "memory_numbers" field.
func MemoryNumbersNotIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldMemoryNumbers, vs...))
}

// MemoryNumbersGT applies the GT predicate on the "memory_numbers" field.
func MemoryNumbersGT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldMemoryNumbers, v))
}

// MemoryNumbersGTE applies the GTE predicate on the "memory_numbers" field.
func MemoryNumbersGTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldMemoryNumbers, v))
}

// MemoryNumbersLT applies the LT predicate on the "memory_numbers" field.
func MemoryNumbersLT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldMemoryNumbers, v))
}

// MemoryNumbersLTE applies the LTE predicate on the "memory_numbers" field.
func MemoryNumbersLTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldMemoryNumbers, v))
}

// MemoryWordsEQ applies the EQ predicate on the "memory_words" field.
func MemoryWordsEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldMemoryWords, v))
}

// MemoryWordsNEQ applies the NEQ predicate on the "memory_words" field.
func MemoryWordsNEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldMemoryWords, v))
}

// MemoryWordsIn applies the In predicate on the "memory_words" field.
func MemoryWordsIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldMemoryWords, vs...))
}

// MemoryWordsNotIn applies the NotIn predicate on the "memory_words" field.
func MemoryWordsNotIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldMemoryWords, vs...))
}

// MemoryWordsGT applies the GT predicate on the "memory_words" field.
func MemoryWordsGT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldMemoryWords, v))
}

// MemoryWordsGTE applies the GTE predicate on the "memory_words" field.
func MemoryWordsGTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldMemoryWords, v))
}

// MemoryWordsLT applies the LT predicate on the "memory_words" field.
func MemoryWordsLT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldMemoryWords, v))
}

// MemoryWordsLTE applies the LTE predicate on the "memory_words" field.
func MemoryWordsLTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldMemoryWords, v))
}

// SpeedEQ applies the EQ predicate on the "speed" field.
func SpeedEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldSpeed, v))
}

// SpeedNEQ applies the NEQ predicate on the "speed" field.
func SpeedNEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldSpeed, v))
}

// SpeedIn applies the In predicate on the "speed" field.
func SpeedIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldSpeed, vs...))
}

// SpeedNotIn applies the NotIn predicate on the "speed" field.
func SpeedNotIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldSpeed, vs...))
}

// SpeedGT applies the GT predicate on the "speed" field.
func SpeedGT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldSpeed, v))
}

// SpeedGTE applies the GTE predicate on the "speed" field.
func SpeedGTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldSpeed, v))
}

// SpeedLT applies the LT predicate on the "speed" field.
func SpeedLT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldSpeed, v))
}

// SpeedLTE applies the LTE predicate on the "speed" field.
func SpeedLTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldSpeed, v))
}

// LogicEQ applies the EQ predicate on the "logic" field.
func LogicEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldLogic, v))
}

// LogicNEQ applies the NEQ predicate on the "logic" field.
func LogicNEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldLogic, v))
}

// LogicIn applies the In predicate on the "logic" field.
func LogicIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldLogic, vs...))
}

// LogicNotIn applies the NotIn predicate on the "logic" field.
func LogicNotIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldLogic, vs...))
}

// LogicGT applies the GT predicate on the "logic" field.
func LogicGT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldLogic, v))
}

// LogicGTE applies the GTE predicate on the "logic" field.
func LogicGTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldLogic, v))
}

// LogicLT applies the LT predicate on the "logic" field.
func LogicLT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldLogic, v))
}

// LogicLTE applies the LTE predicate on the "logic" field.
func LogicLTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldLogic, v))
}

// WorkingMemoryEQ applies the EQ predicate on the "working_memory" field.
func WorkingMemoryEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldEQ(FieldWorkingMemory, v))
}

// WorkingMemoryNEQ applies the NEQ predicate on the "working_memory" field.
func WorkingMemoryNEQ(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNEQ(FieldWorkingMemory, v))
}

// WorkingMemoryIn applies the In predicate on the "working_memory" field.
func WorkingMemoryIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldIn(FieldWorkingMemory, vs...))
}

// WorkingMemoryNotIn applies the NotIn predicate on the "working_memory" field.
func WorkingMemoryNotIn(vs ...float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldNotIn(FieldWorkingMemory, vs...))
}

// WorkingMemoryGT applies the GT predicate on the "working_memory" field.
func WorkingMemoryGT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGT(FieldWorkingMemory, v))
}

// WorkingMemoryGTE applies the GTE predicate on the "working_memory" field.
func WorkingMemoryGTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldGTE(FieldWorkingMemory, v))
}

// WorkingMemoryLT applies the LT predicate on the "working_memory" field.
func WorkingMemoryLT(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLT(FieldWorkingMemory, v))
}

// WorkingMemoryLTE applies the LTE predicate on the "working_memory" field.
func WorkingMemoryLTE(v float64) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.FieldLTE(FieldWorkingMemory, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssessmentEvent) predicate.AssessmentEvent {
	return predicate.AssessmentEvent(sql.NotPredicates(p))
}
