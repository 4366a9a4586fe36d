package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditChunkResult holds the schema definition for the committed analysis of
// one (audit, chunk) pair. Its presence is what marks a chunk as processed;
// the runner selects pending chunks by the absence of a matching row.
type AuditChunkResult struct {
	ent.Schema
}

// Fields of the AuditChunkResult.
func (AuditChunkResult) Fields() []ent.Field {
	return []ent.Field{
		field.Int("audit_id").
			Immutable(),
		field.String("chunk_id").
			Immutable().
			Comment("External chunk id"),
		field.Enum("status").
			Values("completed", "failed").
			Default("completed"),
		field.JSON("analysis", map[string]interface{}{}).
			Comment("Normalized analysis JSON"),
		field.JSON("context_summary", map[string]interface{}{}).
			Optional().
			Comment("Snapshot of slices actually used: token totals, per-bucket counts, content previews"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AuditChunkResult.
func (AuditChunkResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("audit", Audit.Type).
			Ref("chunk_results").
			Field("audit_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditChunkResult.
func (AuditChunkResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("audit_id", "chunk_id").
			Unique(),
	}
}
