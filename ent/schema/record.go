package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Record is a single durable key-value entry. All engine state
// (user progress aggregates, learning paths, LLM call records)
// serializes to JSON and lives here under a prefixed key.
type Record struct {
	ent.Schema
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Comment("Prefixed lookup key, e.g. user_progress_<userId>"),
		field.Bytes("value").
			Comment("JSON-encoded payload"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (Record) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
