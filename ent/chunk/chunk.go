// Code generated by ent, DO NOT EDIT.

package chunk

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chunk type in the database.
	Label = "chunk"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldChunkID holds the string denoting the chunk_id field in the database.
	FieldChunkID = "chunk_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldChunkIndex holds the string denoting the chunk_index field in the database.
	FieldChunkIndex = "chunk_index"
	// FieldSectionPath holds the string denoting the section_path field in the database.
	FieldSectionPath = "section_path"
	// FieldParentHeading holds the string denoting the parent_heading field in the database.
	FieldParentHeading = "parent_heading"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldEmbeddingStatus holds the string denoting the embedding_status field in the database.
	FieldEmbeddingStatus = "embedding_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the chunk in the database.
	Table = "chunks"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "chunks"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for chunk fields.
var Columns = []string{
	FieldID,
	FieldChunkID,
	FieldDocumentID,
	FieldChunkIndex,
	FieldSectionPath,
	FieldParentHeading,
	FieldContent,
	FieldTokenCount,
	FieldMetadata,
	FieldEmbeddingStatus,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// EmbeddingStatus defines the type for the "embedding_status" enum field.
type EmbeddingStatus string

// EmbeddingStatusPending is the default value of the EmbeddingStatus enum.
const DefaultEmbeddingStatus = EmbeddingStatusPending

// EmbeddingStatus values.
const (
	EmbeddingStatusPending    EmbeddingStatus = "pending"
	EmbeddingStatusInProgress EmbeddingStatus = "in_progress"
	EmbeddingStatusCompleted  EmbeddingStatus = "completed"
	EmbeddingStatusFailed     EmbeddingStatus = "failed"
)

func (es EmbeddingStatus) String() string {
	return string(es)
}

// EmbeddingStatusValidator is a validator for the "embedding_status" field enum values. It is called by the builders before save.
func EmbeddingStatusValidator(es EmbeddingStatus) error {
	switch es {
	case EmbeddingStatusPending, EmbeddingStatusInProgress, EmbeddingStatusCompleted, EmbeddingStatusFailed:
		return nil
	default:
		return fmt.Errorf("chunk: invalid enum value for embedding_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the Chunk queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChunkID orders the results by the chunk_id field.
func ByChunkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByChunkIndex orders the results by the chunk_index field.
func ByChunkIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkIndex, opts...).ToFunc()
}

// ByParentHeading orders the results by the parent_heading field.
func ByParentHeading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentHeading, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByEmbeddingStatus orders the results by the embedding_status field.
func ByEmbeddingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbeddingStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
