// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldMemoryNumbers holds the string denoting the memory_numbers field in the database.
	FieldMemoryNumbers = "memory_numbers"
	// FieldMemoryWords holds the string denoting the memory_words field in the database.
	FieldMemoryWords = "memory_words"
	// FieldSpeed holds the string denoting the speed field in the database.
	FieldSpeed = "speed"
	// FieldLogic holds the string denoting the logic field in the database.
	FieldLogic = "logic"
	// FieldWorkingMemory holds the string denoting the working_memory field in the database.
	FieldWorkingMemory = "working_memory"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldMemoryNumbers,
	FieldMemoryWords,
	FieldSpeed,
	FieldLogic,
	FieldWorkingMemory,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultMemoryNumbers holds the default value on creation for the "memory_numbers" field.
	DefaultMemoryNumbers float64
	// DefaultMemoryWords holds the default value on creation for the "memory_words" field.
	DefaultMemoryWords float64
	// DefaultSpeed holds the default value on creation for the "speed" field.
	DefaultSpeed float64
	// DefaultLogic holds the default value on creation for the "logic" field.
	DefaultLogic float64
	// DefaultWorkingMemory holds the default value on creation for the "working_memory" field.
	DefaultWorkingMemory float64
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByMemoryNumbers orders the results by the memory_numbers field.
func ByMemoryNumbers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryNumbers, opts...).ToFunc()
}

// ByMemoryWords orders the results by the memory_words field.
func ByMemoryWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryWords, opts...).ToFunc()
}

// BySpeed orders the results by the speed field.
func BySpeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeed, opts...).ToFunc()
}

// ByLogic orders the results by the logic field.
func ByLogic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLogic, opts...).ToFunc()
}

// ByWorkingMemory orders the results by the working_memory field.
func ByWorkingMemory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkingMemory, opts...).ToFunc()
}
