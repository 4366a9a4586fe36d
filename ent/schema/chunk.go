package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chunk holds the schema definition for one unit of analysis derived from a
// document section. Chunks are immutable once created except for
// embedding_status, which the embedding job advances.
type Chunk struct {
	ent.Schema
}

// Fields of the Chunk.
func (Chunk) Fields() []ent.Field {
	return []ent.Field{
		field.String("chunk_id").
			Unique().
			Immutable().
			Comment("Stable id '{doc_id}_{section_index}_{chunk_in_section}', unique across the corpus"),
		field.Int("document_id").
			Immutable(),
		field.Int("chunk_index").
			Immutable().
			Comment("Dense 0..N-1 sequence within the document"),
		field.JSON("section_path", []string{}).
			Optional().
			Comment("Ordered heading ancestry, rendered as 'a > b > c'"),
		field.String("parent_heading").
			Immutable(),
		field.Text("content").
			Immutable(),
		field.Int("token_count").
			Immutable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Carries prev_chunk_id, next_chunk_id, section_index, chunking_mode plus source section metadata"),
		field.Enum("embedding_status").
			Values("pending", "in_progress", "completed", "failed").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Chunk.
func (Chunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("chunks").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Chunk.
func (Chunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "chunk_index").
			Unique(),
		index.Fields("embedding_status"),
	}
}
