// Code generated by ent, DO NOT EDIT.

package chunk

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldID, id))
}

// ChunkID applies equality check predicate on the "chunk_id" field. It's identical to ChunkIDEQ.
func ChunkID(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDocumentID, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkIndex, v))
}

// ParentHeading applies equality check predicate on the "parent_heading" field. It's identical to ParentHeadingEQ.
func ParentHeading(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldParentHeading, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldContent, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldTokenCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldCreatedAt, v))
}

// ChunkIDEQ applies the EQ predicate on the "chunk_id" field.
func ChunkIDEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkID, v))
}

// ChunkIDNEQ applies the NEQ predicate on the "chunk_id" field.
func ChunkIDNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldChunkID, v))
}

// ChunkIDIn applies the In predicate on the "chunk_id" field.
func ChunkIDIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldChunkID, vs...))
}

// ChunkIDNotIn applies the NotIn predicate on the "chunk_id" field.
func ChunkIDNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldChunkID, vs...))
}

// ChunkIDGT applies the GT predicate on the "chunk_id" field.
func ChunkIDGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldChunkID, v))
}

// ChunkIDGTE applies the GTE predicate on the "chunk_id" field.
func ChunkIDGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldChunkID, v))
}

// ChunkIDLT applies the LT predicate on the "chunk_id" field.
func ChunkIDLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldChunkID, v))
}

// ChunkIDLTE applies the LTE predicate on the "chunk_id" field.
func ChunkIDLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldChunkID, v))
}

// ChunkIDContains applies the Contains predicate on the "chunk_id" field.
func ChunkIDContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldChunkID, v))
}

// ChunkIDHasPrefix applies the HasPrefix predicate on the "chunk_id" field.
func ChunkIDHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldChunkID, v))
}

// ChunkIDHasSuffix applies the HasSuffix predicate on the "chunk_id" field.
func ChunkIDHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldChunkID, v))
}

// ChunkIDEqualFold applies the EqualFold predicate on the "chunk_id" field.
func ChunkIDEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldChunkID, v))
}

// ChunkIDContainsFold applies the ContainsFold predicate on the "chunk_id" field.
func ChunkIDContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldChunkID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldDocumentID, vs...))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldChunkIndex, v))
}

// SectionPathIsNil applies the IsNil predicate on the "section_path" field.
func SectionPathIsNil() predicate.Chunk {
	return predicate.Chunk(sql.FieldIsNull(FieldSectionPath))
}

// SectionPathNotNil applies the NotNil predicate on the "section_path" field.
func SectionPathNotNil() predicate.Chunk {
	return predicate.Chunk(sql.FieldNotNull(FieldSectionPath))
}

// ParentHeadingEQ applies the EQ predicate on the "parent_heading" field.
func ParentHeadingEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldParentHeading, v))
}

// ParentHeadingNEQ applies the NEQ predicate on the "parent_heading" field.
func ParentHeadingNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldParentHeading, v))
}

// ParentHeadingIn applies the In predicate on the "parent_heading" field.
func ParentHeadingIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldParentHeading, vs...))
}

// ParentHeadingNotIn applies the NotIn predicate on the "parent_heading" field.
func ParentHeadingNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldParentHeading, vs...))
}

// ParentHeadingGT applies the GT predicate on the "parent_heading" field.
func ParentHeadingGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldParentHeading, v))
}

// ParentHeadingGTE applies the GTE predicate on the "parent_heading" field.
func ParentHeadingGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldParentHeading, v))
}

// ParentHeadingLT applies the LT predicate on the "parent_heading" field.
func ParentHeadingLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldParentHeading, v))
}

// ParentHeadingLTE applies the LTE predicate on the "parent_heading" field.
func ParentHeadingLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldParentHeading, v))
}

// ParentHeadingContains applies the Contains predicate on the "parent_heading" field.
func ParentHeadingContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldParentHeading, v))
}

// ParentHeadingHasPrefix applies the HasPrefix predicate on the "parent_heading" field.
func ParentHeadingHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldParentHeading, v))
}

// ParentHeadingHasSuffix applies the HasSuffix predicate on the "parent_heading" field.
func ParentHeadingHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldParentHeading, v))
}

// ParentHeadingEqualFold applies the EqualFold predicate on the "parent_heading" field.
func ParentHeadingEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldParentHeading, v))
}

// ParentHeadingContainsFold applies the ContainsFold predicate on the "parent_heading" field.
func ParentHeadingContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldParentHeading, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Chunk {
	return predicate.Chunk(sql.FieldContainsFold(FieldContent, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldTokenCount, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Chunk {
	return predicate.Chunk(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Chunk {
	return predicate.Chunk(sql.FieldNotNull(FieldMetadata))
}

// EmbeddingStatusEQ applies the EQ predicate on the "embedding_status" field.
func EmbeddingStatusEQ(v EmbeddingStatus) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldEmbeddingStatus, v))
}

// EmbeddingStatusNEQ applies the NEQ predicate on the "embedding_status" field.
func EmbeddingStatusNEQ(v EmbeddingStatus) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldEmbeddingStatus, v))
}

// EmbeddingStatusIn applies the In predicate on the "embedding_status" field.
func EmbeddingStatusIn(vs ...EmbeddingStatus) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldEmbeddingStatus, vs...))
}

// EmbeddingStatusNotIn applies the NotIn predicate on the "embedding_status" field.
func EmbeddingStatusNotIn(vs ...EmbeddingStatus) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldEmbeddingStatus, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Chunk {
	return predicate.Chunk(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Chunk {
	return predicate.Chunk(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Chunk {
	return predicate.Chunk(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Chunk {
	return predicate.Chunk(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Chunk {
	return predicate.Chunk(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Chunk {
	return predicate.Chunk(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Chunk {
	return predicate.Chunk(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Chunk {
	return predicate.Chunk(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Chunk {
	return predicate.Chunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Chunk {
	return predicate.Chunk(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Chunk) predicate.Chunk {
	return predicate.Chunk(sql.NotPredicates(p))
}
