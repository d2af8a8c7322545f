// Code generated by ent, DO NOT EDIT.

package gameevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/cognitrain/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSessionID, v))
}

// GameType applies equality check predicate on the "game_type" field. It's identical to GameTypeEQ.
func GameType(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldGameType, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldScore, v))
}

// Accuracy applies equality check predicate on the "accuracy" field. It's identical to AccuracyEQ.
func Accuracy(v float64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldAccuracy, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// GameTypeEQ applies the EQ predicate on the "game_type" field.
func GameTypeEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldGameType, v))
}

// GameTypeNEQ applies the NEQ predicate on the "game_type" field.
func GameTypeNEQ(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldGameType, v))
}

// GameTypeIn applies the In predicate on the "game_type" field.
func GameTypeIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldGameType, vs...))
}

// GameTypeNotIn applies the NotIn predicate on the "game_type" field.
func GameTypeNotIn(vs ...string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldGameType, vs...))
}

// GameTypeGT applies the GT predicate on the "game_type" field.
func GameTypeGT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldGameType, v))
}

// GameTypeGTE applies the GTE predicate on the "game_type" field.
func GameTypeGTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldGameType, v))
}

// GameTypeLT applies the LT predicate on the "game_type" field.
func GameTypeLT(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldGameType, v))
}

// GameTypeLTE applies the LTE predicate on the "game_type" field.
func GameTypeLTE(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldGameType, v))
}

// GameTypeContains applies the Contains predicate on the "game_type" field.
func GameTypeContains(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContains(FieldGameType, v))
}

// GameTypeHasPrefix applies the HasPrefix predicate on the "game_type" field.
func GameTypeHasPrefix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasPrefix(FieldGameType, v))
}

// GameTypeHasSuffix applies the HasSuffix predicate on the "game_type" field.
func GameTypeHasSuffix(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldHasSuffix(FieldGameType, v))
}

// GameTypeEqualFold applies the EqualFold predicate on the "game_type" field.
func GameTypeEqualFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEqualFold(FieldGameType, v))
}

// GameTypeContainsFold applies the ContainsFold predicate on the "game_type" field.
func GameTypeContainsFold(v string) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldContainsFold(FieldGameType, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldScore, v))
}

// AccuracyEQ applies the EQ predicate on the "accuracy" field.
func AccuracyEQ(v float64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldAccuracy, v))
}

// AccuracyNEQ applies the NEQ predicate on the "accuracy" field.
func AccuracyNEQ(v float64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldAccuracy, v))
}

// AccuracyIn applies the In predicate on the "accuracy" field.
func AccuracyIn(vs ...float64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldAccuracy, vs...))
}

// AccuracyNotIn applies the NotIn predicate on the "accuracy" field.
func AccuracyNotIn(vs ...float64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldAccuracy, vs...))
}

// AccuracyGT applies the GT predicate on the "accuracy" field.
func AccuracyGT(v float64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldAccuracy, v))
}

// AccuracyGTE applies the GTE predicate on the "accuracy" field.
func AccuracyGTE(v float64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldAccuracy, v))
}

// AccuracyLT applies the LT predicate on the "accuracy" field.
func AccuracyLT(v float64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldAccuracy, v))
}

// AccuracyLTE applies the LTE predicate on the "accuracy" field.
func AccuracyLTE(v float64) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldAccuracy, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.GameEvent {
	return predicate.GameEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameEvent) predicate.GameEvent {
	return predicate.GameEvent(sql.NotPredicates(p))
}
