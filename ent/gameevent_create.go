// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/cognitrain/ent/gameevent"
)

// GameEventCreate is the builder for creating a GameEvent entity.
type GameEventCreate struct {
	config
	mutation *GameEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GameEventCreate) SetSequence(v int64) *GameEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GameEventCreate) SetTimestamp(v time.Time) *GameEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableTimestamp(v *time.Time) *GameEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *GameEventCreate) SetSessionID(v string) *GameEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetGameType sets the "game_type" field.
func (_c *GameEventCreate) SetGameType(v string) *GameEventCreate {
	_c.mutation.SetGameType(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GameEventCreate) SetScore(v int) *GameEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *GameEventCreate) SetAccuracy(v float64) *GameEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableAccuracy(v *float64) *GameEventCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *GameEventCreate) SetDurationSecs(v int) *GameEventCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_c *GameEventCreate) SetNillableDurationSecs(v *int) *GameEventCreate {
	if v != nil {
		_c.SetDurationSecs(*v)
	}
	return _c
}

// Mutation returns the GameEventMutation object of the builder.
func (_c *GameEventCreate) Mutation() *GameEventMutation {
	return _c.mutation
}

// Save creates the GameEvent in the database.
func (_c *GameEventCreate) Save(ctx context.Context) (*GameEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameEventCreate) SaveX(ctx context.Context) *GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gameevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := gameevent.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		v := gameevent.DefaultDurationSecs
		_c.mutation.SetDurationSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GameEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GameEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GameEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := gameevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GameEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GameType(); !ok {
		return &ValidationError{Name: "game_type", err: errors.New(`ent: missing required field "GameEvent.game_type"`)}
	}
	if v, ok := _c.mutation.GameType(); ok {
		if err := gameevent.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "GameEvent.game_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GameEvent.score"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "GameEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "GameEvent.duration_secs"`)}
	}
	return nil
}

func (_c *GameEventCreate) sqlSave(ctx context.Context) (*GameEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameEventCreate) createSpec() (*GameEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GameEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gameevent.Table, sqlgraph.NewFieldSpec(gameevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gameevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gameevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(gameevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.GameType(); ok {
		_spec.SetField(gameevent.FieldGameType, field.TypeString, value)
		_node.GameType = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gameevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(gameevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(gameevent.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	return _node, _spec
}

// GameEventCreateBulk is the builder for creating many GameEvent entities in bulk.
type GameEventCreateBulk struct {
	config
	err      error
	builders []*GameEventCreate
}

// Save creates the GameEvent entities in the database.
func (_c *GameEventCreateBulk) Save(ctx context.Context) ([]*GameEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GameEventCreateBulk) SaveX(ctx context.Context) []*GameEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
