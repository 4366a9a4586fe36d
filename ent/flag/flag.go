// Code generated by ent, DO NOT EDIT.

package flag

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the flag type in the database.
	Label = "flag"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldChunkID holds the string denoting the chunk_id field in the database.
	FieldChunkID = "chunk_id"
	// FieldFlagType holds the string denoting the flag_type field in the database.
	FieldFlagType = "flag_type"
	// FieldSeverityScore holds the string denoting the severity_score field in the database.
	FieldSeverityScore = "severity_score"
	// FieldFindings holds the string denoting the findings field in the database.
	FieldFindings = "findings"
	// FieldGaps holds the string denoting the gaps field in the database.
	FieldGaps = "gaps"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldAnalysisMetadata holds the string denoting the analysis_metadata field in the database.
	FieldAnalysisMetadata = "analysis_metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// EdgeCitations holds the string denoting the citations edge name in mutations.
	EdgeCitations = "citations"
	// Table holds the table name of the flag in the database.
	Table = "flags"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "flags"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
	// CitationsTable is the table that holds the citations relation/edge.
	CitationsTable = "citations"
	// CitationsInverseTable is the table name for the Citation entity.
	// It exists in this package in order to avoid circular dependency with the "citation" package.
	CitationsInverseTable = "citations"
	// CitationsColumn is the table column denoting the citations relation/edge.
	CitationsColumn = "flag_id"
)

// Columns holds all SQL columns for flag fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldChunkID,
	FieldFlagType,
	FieldSeverityScore,
	FieldFindings,
	FieldGaps,
	FieldRecommendations,
	FieldAnalysisMetadata,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// FindingsValidator is a validator for the "findings" field. It is called by the builders before save.
	FindingsValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// FlagType defines the type for the "flag_type" enum field.
type FlagType string

// FlagType values.
const (
	FlagTypeRED    FlagType = "RED"
	FlagTypeYELLOW FlagType = "YELLOW"
	FlagTypeGREEN  FlagType = "GREEN"
)

func (ft FlagType) String() string {
	return string(ft)
}

// FlagTypeValidator is a validator for the "flag_type" field enum values. It is called by the builders before save.
func FlagTypeValidator(ft FlagType) error {
	switch ft {
	case FlagTypeRED, FlagTypeYELLOW, FlagTypeGREEN:
		return nil
	default:
		return fmt.Errorf("flag: invalid enum value for flag_type field: %q", ft)
	}
}

// OrderOption defines the ordering options for the Flag queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByChunkID orders the results by the chunk_id field.
func ByChunkID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChunkID, opts...).ToFunc()
}

// ByFlagType orders the results by the flag_type field.
func ByFlagType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlagType, opts...).ToFunc()
}

// BySeverityScore orders the results by the severity_score field.
func BySeverityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverityScore, opts...).ToFunc()
}

// ByFindings orders the results by the findings field.
func ByFindings(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFindings, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByAuditField orders the results by audit field.
func ByAuditField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAuditStep(), sql.OrderByField(field, opts...))
	}
}

// ByCitationsCount orders the results by citations count.
func ByCitationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCitationsStep(), opts...)
	}
}

// ByCitations orders the results by citations terms.
func ByCitations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCitationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAuditStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
	)
}
func newCitationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CitationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CitationsTable, CitationsColumn),
	)
}
