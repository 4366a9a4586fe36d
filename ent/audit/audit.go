// Code generated by ent, DO NOT EDIT.

package audit

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the audit type in the database.
	Label = "audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIsDraft holds the string denoting the is_draft field in the database.
	FieldIsDraft = "is_draft"
	// FieldChunkTotal holds the string denoting the chunk_total field in the database.
	FieldChunkTotal = "chunk_total"
	// FieldChunkCompleted holds the string denoting the chunk_completed field in the database.
	FieldChunkCompleted = "chunk_completed"
	// FieldLastChunkID holds the string denoting the last_chunk_id field in the database.
	FieldLastChunkID = "last_chunk_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldFailedAt holds the string denoting the failed_at field in the database.
	FieldFailedAt = "failed_at"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// EdgeChunkResults holds the string denoting the chunk_results edge name in mutations.
	EdgeChunkResults = "chunk_results"
	// EdgeFlags holds the string denoting the flags edge name in mutations.
	EdgeFlags = "flags"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// EdgeScores holds the string denoting the scores edge name in mutations.
	EdgeScores = "scores"
	// Table holds the table name of the audit in the database.
	Table = "audits"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "audits"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
	// ChunkResultsTable is the table that holds the chunk_results relation/edge.
	ChunkResultsTable = "audit_chunk_results"
	// ChunkResultsInverseTable is the table name for the AuditChunkResult entity.
	// It exists in this package in order to avoid circular dependency with the "auditchunkresult" package.
	ChunkResultsInverseTable = "audit_chunk_results"
	// ChunkResultsColumn is the table column denoting the chunk_results relation/edge.
	ChunkResultsColumn = "audit_id"
	// FlagsTable is the table that holds the flags relation/edge.
	FlagsTable = "flags"
	// FlagsInverseTable is the table name for the Flag entity.
	// It exists in this package in order to avoid circular dependency with the "flag" package.
	FlagsInverseTable = "flags"
	// FlagsColumn is the table column denoting the flags relation/edge.
	FlagsColumn = "audit_id"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "auditor_questions"
	// QuestionsInverseTable is the table name for the AuditorQuestion entity.
	// It exists in this package in order to avoid circular dependency with the "auditorquestion" package.
	QuestionsInverseTable = "auditor_questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "audit_id"
	// ScoresTable is the table that holds the scores relation/edge.
	ScoresTable = "compliance_scores"
	// ScoresInverseTable is the table name for the ComplianceScore entity.
	// It exists in this package in order to avoid circular dependency with the "compliancescore" package.
	ScoresInverseTable = "compliance_scores"
	// ScoresColumn is the table column denoting the scores relation/edge.
	ScoresColumn = "audit_id"
)

// Columns holds all SQL columns for audit fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldDocumentID,
	FieldStatus,
	FieldIsDraft,
	FieldChunkTotal,
	FieldChunkCompleted,
	FieldLastChunkID,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldFailedAt,
	FieldFailureReason,
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
	// DefaultIsDraft holds the default value on creation for the "is_draft" field.
	DefaultIsDraft bool
	// DefaultChunkTotal holds the default value on creation for the "chunk_total" field.
	DefaultChunkTotal int
	// DefaultChunkCompleted holds the default value on creation for the "chunk_completed" field.
	DefaultChunkCompleted int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// FailureReasonValidator is a validator for the "failure_reason" field. It is called by the builders before save.
	FailureReasonValidator func(string) error
)

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("audit: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Audit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIsDraft orders the results by the is_draft field.
func ByIsDraft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDraft, opts...).ToFunc()
}

// ByChunkTotal orders the results by the chunk_total field.
func ByChunkTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkTotal, opts...).ToFunc()
}

// ByChunkCompleted orders the results by the chunk_completed field.
func ByChunkCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkCompleted, opts...).ToFunc()
}

// ByLastChunkID orders the results by the last_chunk_id field.
func ByLastChunkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastChunkID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByFailedAt orders the results by the failed_at field.
func ByFailedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedAt, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChunkResultsCount orders the results by chunk_results count.
func ByChunkResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChunkResultsStep(), opts...)
	}
}

// ByChunkResults orders the results by chunk_results terms.
func ByChunkResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChunkResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFlagsCount orders the results by flags count.
func ByFlagsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFlagsStep(), opts...)
	}
}

// ByFlags orders the results by flags terms.
func ByFlags(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlagsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScoresCount orders the results by scores count.
func ByScoresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScoresStep(), opts...)
	}
}

// ByScores orders the results by scores terms.
func ByScores(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScoresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
func newChunkResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChunkResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChunkResultsTable, ChunkResultsColumn),
	)
}
func newFlagsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlagsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FlagsTable, FlagsColumn),
	)
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
func newScoresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScoresInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScoresTable, ScoresColumn),
	)
}
