package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for an uploaded corpus artifact
// (procedural manual, regulation, AMC, GM, or evidence material).
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("external_id").
			Unique().
			Immutable().
			Comment("Opaque stable identifier exposed over the API"),
		field.String("filename").
			Comment("Original upload filename"),
		field.String("stored_path").
			Comment("Path under DATA_ROOT/uploads"),
		field.Int64("size_bytes"),
		field.String("content_hash").
			Comment("SHA256 hex of the uploaded bytes"),
		field.Enum("source_type").
			Values("manual", "regulation", "amc", "gm", "evidence"),
		field.String("organization").
			Optional().
			Comment("Owning organization identifier"),
		field.Enum("status").
			Values("uploaded", "processing", "processed", "failed").
			Default("uploaded"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chunks", Chunk.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("audits", Audit.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_type"),
		index.Fields("organization"),
		index.Fields("content_hash"),
	}
}
