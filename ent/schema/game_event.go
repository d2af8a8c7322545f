package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameEvent records one completed mini-game playthrough.
// Game results are append-only; per-type history queries drive the
// game-selection screen and the stats command.
type GameEvent struct {
	ent.Schema
}

func (GameEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GameEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID for this playthrough"),
		field.String("game_type").
			NotEmpty().
			Comment("memory_match or quick_math"),
		field.Int("score").
			Comment("Raw game score; may be negative for penalty games"),
		field.Float("accuracy").
			Default(0).
			Comment("0-100 completion accuracy, when applicable"),
		field.Int("duration_secs").
			Default(0).
			Comment("Elapsed play time in seconds"),
	}
}

func (GameEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("game_type"),
		index.Fields("session_id"),
	}
}
