package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditorQuestion holds the schema definition for a prioritized reviewer
// question generated for a cited regulation reference.
type AuditorQuestion struct {
	ent.Schema
}

// Fields of the AuditorQuestion.
func (AuditorQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("audit_id").
			Immutable(),
		field.String("regulation_reference").
			NotEmpty(),
		field.Text("question").
			NotEmpty(),
		field.Int("priority").
			Min(1).
			Max(10).
			Comment("1 highest ... 10 lowest"),
		field.Text("rationale").
			Optional(),
		field.JSON("related_flag_ids", []int{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditorQuestion.
func (AuditorQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("questions").
			Field("audit_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditorQuestion.
func (AuditorQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "regulation_reference"),
	}
}
