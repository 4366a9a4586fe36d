package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Audit holds the schema definition for one execution of the compliance
// pipeline against a document.
type Audit struct {
	ent.Schema
}

// Fields of the Audit.
func (Audit) Fields() []ent.Field {
	return []ent.Field{
		field.String("external_id").
			Unique().
			Immutable(),
		field.Int("document_id").
			Immutable(),
		field.Enum("status").
			Values("queued", "running", "completed", "failed").
			Default("queued"),
		field.Bool("is_draft").
			Default(false).
			Comment("Draft audits process at most 5 chunks with reduced context"),
		field.Int("chunk_total").
			Default(0),
		field.Int("chunk_completed").
			Default(0),
		field.String("last_chunk_id").
			Optional().
			Nillable().
			Comment("External chunk id of the most recently committed chunk"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("failed_at").
			Optional().
			Nillable(),
		field.String("failure_reason").
			Optional().
			Nillable().
			MaxLen(500),
	}
}

// Edges of the Audit.
func (Audit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("audits").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
		edge.To("chunk_results", AuditChunkResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("flags", Flag.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("questions", AuditorQuestion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("scores", ComplianceScore.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Audit.
func (Audit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("document_id"),
		index.Fields("status", "created_at"),
	}
}
