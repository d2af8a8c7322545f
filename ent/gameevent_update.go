// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cognitrain/ent/gameevent"
	"github.com/abhisek/cognitrain/ent/predicate"
)

// GameEventUpdate is the builder for updating GameEvent entities.
type GameEventUpdate struct {
	config
	hooks    []Hook
	mutation *GameEventMutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdate) Where(ps ...predicate.GameEvent) *GameEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *GameEventUpdate) SetSessionID(v string) *GameEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableSessionID(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetGameType sets the "game_type" field.
func (_u *GameEventUpdate) SetGameType(v string) *GameEventUpdate {
	_u.mutation.SetGameType(v)
	return _u
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableGameType(v *string) *GameEventUpdate {
	if v != nil {
		_u.SetGameType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GameEventUpdate) SetScore(v int) *GameEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableScore(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GameEventUpdate) AddScore(v int) *GameEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *GameEventUpdate) SetAccuracy(v float64) *GameEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableAccuracy(v *float64) *GameEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *GameEventUpdate) AddAccuracy(v float64) *GameEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *GameEventUpdate) SetDurationSecs(v int) *GameEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *GameEventUpdate) SetNillableDurationSecs(v *int) *GameEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *GameEventUpdate) AddDurationSecs(v int) *GameEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdate) Mutation() *GameEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gameevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameType(); ok {
		if err := gameevent.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "GameEvent.game_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(gameevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameType(); ok {
		_spec.SetField(gameevent.FieldGameType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gameevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gameevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(gameevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(gameevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(gameevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(gameevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameEventUpdateOne is the builder for updating a single GameEvent entity.
type GameEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *GameEventUpdateOne) SetSessionID(v string) *GameEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableSessionID(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetGameType sets the "game_type" field.
func (_u *GameEventUpdateOne) SetGameType(v string) *GameEventUpdateOne {
	_u.mutation.SetGameType(v)
	return _u
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableGameType(v *string) *GameEventUpdateOne {
	if v != nil {
		_u.SetGameType(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GameEventUpdateOne) SetScore(v int) *GameEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableScore(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GameEventUpdateOne) AddScore(v int) *GameEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *GameEventUpdateOne) SetAccuracy(v float64) *GameEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableAccuracy(v *float64) *GameEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *GameEventUpdateOne) AddAccuracy(v float64) *GameEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *GameEventUpdateOne) SetDurationSecs(v int) *GameEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *GameEventUpdateOne) SetNillableDurationSecs(v *int) *GameEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *GameEventUpdateOne) AddDurationSecs(v int) *GameEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the GameEventMutation object of the builder.
func (_u *GameEventUpdateOne) Mutation() *GameEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameEventUpdate builder.
func (_u *GameEventUpdateOne) Where(ps ...predicate.GameEvent) *GameEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameEventUpdateOne) Select(field string, fields ...string) *GameEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameEvent entity.
func (_u *GameEventUpdateOne) Save(ctx context.Context) (*GameEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameEventUpdateOne) SaveX(ctx context.Context) *GameEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := gameevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameType(); ok {
		if err := gameevent.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "GameEvent.game_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GameEventUpdateOne) sqlSave(ctx context.Context) (_node *GameEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameevent.Table, gameevent.Columns, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gameevent.FieldID)
		for _, f := range fields {
			if !gameevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gameevent.FieldID {
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
		_spec.SetField(gameevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameType(); ok {
		_spec.SetField(gameevent.FieldGameType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gameevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gameevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(gameevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(gameevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(gameevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(gameevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &GameEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
