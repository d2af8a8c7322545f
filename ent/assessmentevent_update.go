// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cognitrain/ent/assessmentevent"
	"github.com/abhisek/cognitrain/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMemoryNumbers sets the "memory_numbers" field.
func (_u *AssessmentEventUpdate) SetMemoryNumbers(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetMemoryNumbers()
	_u.mutation.SetMemoryNumbers(v)
	return _u
}

// SetNillableMemoryNumbers sets the "memory_numbers" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableMemoryNumbers(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetMemoryNumbers(*v)
	}
	return _u
}

// AddMemoryNumbers adds value to the "memory_numbers" field.
func (_u *AssessmentEventUpdate) AddMemoryNumbers(v float64) *AssessmentEventUpdate {
	_u.mutation.AddMemoryNumbers(v)
	return _u
}

// SetMemoryWords sets the "memory_words" field.
func (_u *AssessmentEventUpdate) SetMemoryWords(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetMemoryWords()
	_u.mutation.SetMemoryWords(v)
	return _u
}

// SetNillableMemoryWords sets the "memory_words" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableMemoryWords(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetMemoryWords(*v)
	}
	return _u
}

// AddMemoryWords adds value to the "memory_words" field.
func (_u *AssessmentEventUpdate) AddMemoryWords(v float64) *AssessmentEventUpdate {
	_u.mutation.AddMemoryWords(v)
	return _u
}

// SetSpeed sets the "speed" field.
func (_u *AssessmentEventUpdate) SetSpeed(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetSpeed()
	_u.mutation.SetSpeed(v)
	return _u
}

// SetNillableSpeed sets the "speed" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSpeed(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSpeed(*v)
	}
	return _u
}

// AddSpeed adds value to the "speed" field.
func (_u *AssessmentEventUpdate) AddSpeed(v float64) *AssessmentEventUpdate {
	_u.mutation.AddSpeed(v)
	return _u
}

// SetLogic sets the "logic" field.
func (_u *AssessmentEventUpdate) SetLogic(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetLogic()
	_u.mutation.SetLogic(v)
	return _u
}

// SetNillableLogic sets the "logic" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableLogic(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetLogic(*v)
	}
	return _u
}

// AddLogic adds value to the "logic" field.
func (_u *AssessmentEventUpdate) AddLogic(v float64) *AssessmentEventUpdate {
	_u.mutation.AddLogic(v)
	return _u
}

// SetWorkingMemory sets the "working_memory" field.
func (_u *AssessmentEventUpdate) SetWorkingMemory(v float64) *AssessmentEventUpdate {
	_u.mutation.ResetWorkingMemory()
	_u.mutation.SetWorkingMemory(v)
	return _u
}

// SetNillableWorkingMemory sets the "working_memory" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableWorkingMemory(v *float64) *AssessmentEventUpdate {
	if v != nil {
		_u.SetWorkingMemory(*v)
	}
	return _u
}

// AddWorkingMemory adds value to the "working_memory" field.
func (_u *AssessmentEventUpdate) AddWorkingMemory(v float64) *AssessmentEventUpdate {
	_u.mutation.AddWorkingMemory(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemoryNumbers(); ok {
		_spec.SetField(assessmentevent.FieldMemoryNumbers, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemoryNumbers(); ok {
		_spec.AddField(assessmentevent.FieldMemoryNumbers, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryWords(); ok {
		_spec.SetField(assessmentevent.FieldMemoryWords, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemoryWords(); ok {
		_spec.AddField(assessmentevent.FieldMemoryWords, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Speed(); ok {
		_spec.SetField(assessmentevent.FieldSpeed, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpeed(); ok {
		_spec.AddField(assessmentevent.FieldSpeed, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Logic(); ok {
		_spec.SetField(assessmentevent.FieldLogic, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogic(); ok {
		_spec.AddField(assessmentevent.FieldLogic, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorkingMemory(); ok {
		_spec.SetField(assessmentevent.FieldWorkingMemory, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWorkingMemory(); ok {
		_spec.AddField(assessmentevent.FieldWorkingMemory, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetMemoryNumbers sets the "memory_numbers" field.
func (_u *AssessmentEventUpdateOne) SetMemoryNumbers(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetMemoryNumbers()
	_u.mutation.SetMemoryNumbers(v)
	return _u
}

// SetNillableMemoryNumbers sets the "memory_numbers" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableMemoryNumbers(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetMemoryNumbers(*v)
	}
	return _u
}

// AddMemoryNumbers adds value to the "memory_numbers" field.
func (_u *AssessmentEventUpdateOne) AddMemoryNumbers(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddMemoryNumbers(v)
	return _u
}

// SetMemoryWords sets the "memory_words" field.
func (_u *AssessmentEventUpdateOne) SetMemoryWords(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetMemoryWords()
	_u.mutation.SetMemoryWords(v)
	return _u
}

// SetNillableMemoryWords sets the "memory_words" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableMemoryWords(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetMemoryWords(*v)
	}
	return _u
}

// AddMemoryWords adds value to the "memory_words" field.
func (_u *AssessmentEventUpdateOne) AddMemoryWords(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddMemoryWords(v)
	return _u
}

// SetSpeed sets the "speed" field.
func (_u *AssessmentEventUpdateOne) SetSpeed(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetSpeed()
	_u.mutation.SetSpeed(v)
	return _u
}

// SetNillableSpeed sets the "speed" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSpeed(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSpeed(*v)
	}
	return _u
}

// AddSpeed adds value to the "speed" field.
func (_u *AssessmentEventUpdateOne) AddSpeed(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddSpeed(v)
	return _u
}

// SetLogic sets the "logic" field.
func (_u *AssessmentEventUpdateOne) SetLogic(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetLogic()
	_u.mutation.SetLogic(v)
	return _u
}

// SetNillableLogic sets the "logic" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableLogic(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetLogic(*v)
	}
	return _u
}

// AddLogic adds value to the "logic" field.
func (_u *AssessmentEventUpdateOne) AddLogic(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddLogic(v)
	return _u
}

// SetWorkingMemory sets the "working_memory" field.
func (_u *AssessmentEventUpdateOne) SetWorkingMemory(v float64) *AssessmentEventUpdateOne {
	_u.mutation.ResetWorkingMemory()
	_u.mutation.SetWorkingMemory(v)
	return _u
}

// SetNillableWorkingMemory sets the "working_memory" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableWorkingMemory(v *float64) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetWorkingMemory(*v)
	}
	return _u
}

// AddWorkingMemory adds value to the "working_memory" field.
func (_u *AssessmentEventUpdateOne) AddWorkingMemory(v float64) *AssessmentEventUpdateOne {
	_u.mutation.AddWorkingMemory(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemoryNumbers(); ok {
		_spec.SetField(assessmentevent.FieldMemoryNumbers, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemoryNumbers(); ok {
		_spec.AddField(assessmentevent.FieldMemoryNumbers, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MemoryWords(); ok {
		_spec.SetField(assessmentevent.FieldMemoryWords, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMemoryWords(); ok {
		_spec.AddField(assessmentevent.FieldMemoryWords, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Speed(); ok {
		_spec.SetField(assessmentevent.FieldSpeed, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpeed(); ok {
		_spec.AddField(assessmentevent.FieldSpeed, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Logic(); ok {
		_spec.SetField(assessmentevent.FieldLogic, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLogic(); ok {
		_spec.AddField(assessmentevent.FieldLogic, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WorkingMemory(); ok {
		_spec.SetField(assessmentevent.FieldWorkingMemory, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWorkingMemory(); ok {
		_spec.AddField(assessmentevent.FieldWorkingMemory, field.TypeFloat64, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
