package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ComplianceScore holds the schema definition for the score snapshot of one
// audit. Upserted, one row per audit.
type ComplianceScore struct {
	ent.Schema
}

// Fields of the ComplianceScore.
func (ComplianceScore) Fields() []ent.Field {
	return []ent.Field{
		field.Int("audit_id").
			Unique().
			Immutable(),
		field.Float("overall_score").
			Comment("0-100"),
		field.Int("red_count").
			Default(0),
		field.Int("yellow_count").
			Default(0),
		field.Int("green_count").
			Default(0),
		field.Int("total_flags").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ComplianceScore.
func (ComplianceScore) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("scores").
			Field("audit_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ComplianceScore.
func (ComplianceScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
