package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Citation holds the schema definition for a manual or regulation reference
// attached to a flag. Citations are fully rewritten on flag upsert.
type Citation struct {
	ent.Schema
}

// Fields of the Citation.
func (Citation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("flag_id").
			Immutable(),
		field.Enum("citation_type").
			Values("manual", "regulation"),
		field.String("reference").
			NotEmpty(),
	}
}

// Edges of the Citation.
func (Citation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("flag", Flag.Type).
			Ref("citations").
			Field("flag_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Citation.
func (Citation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("flag_id"),
		index.Fields("citation_type", "reference"),
	}
}
