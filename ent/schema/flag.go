package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Flag holds the schema definition for the compliance outcome of one
// (audit, chunk) pair.
type Flag struct {
	ent.Schema
}

// Fields of the Flag.
func (Flag) Fields() []ent.Field {
	return []ent.Field{
		field.Int("audit_id").
			Immutable(),
		field.String("chunk_id").
			Immutable().
			Comment("External chunk id"),
		field.Enum("flag_type").
			Values("RED", "YELLOW", "GREEN"),
		field.Int("severity_score").
			Comment("0-100, clamped non-negative"),
		field.Text("findings").
			NotEmpty(),
		field.JSON("gaps", []string{}).
			Optional(),
		field.JSON("recommendations", []string{}).
			Optional(),
		field.JSON("analysis_metadata", map[string]interface{}{}).
			Optional().
			Comment("Captures needs_additional_context, refined, refinement_attempts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Flag.
func (Flag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("flags").
			Field("audit_id").
			Unique().
			Required().
			Immutable(),
		edge.To("citations", Citation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Flag.
func (Flag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "chunk_id").
			Unique(),
		index.Fields("flag_type"),
	}
}
