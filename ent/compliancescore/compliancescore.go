// Code generated by ent, DO NOT EDIT.

package compliancescore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the compliancescore type in the database.
	Label = "compliance_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAuditID holds the string denoting the audit_id field in the database.
	FieldAuditID = "audit_id"
	// FieldOverallScore holds the string denoting the overall_score field in the database.
	FieldOverallScore = "overall_score"
	// FieldRedCount holds the string denoting the red_count field in the database.
	FieldRedCount = "red_count"
	// FieldYellowCount holds the string denoting the yellow_count field in the database.
	FieldYellowCount = "yellow_count"
	// FieldGreenCount holds the string denoting the green_count field in the database.
	FieldGreenCount = "green_count"
	// FieldTotalFlags holds the string denoting the total_flags field in the database.
	FieldTotalFlags = "total_flags"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeAudit holds the string denoting the audit edge name in mutations.
	EdgeAudit = "audit"
	// Table holds the table name of the compliancescore in the database.
	Table = "compliance_scores"
	// AuditTable is the table that holds the audit relation/edge.
	AuditTable = "compliance_scores"
	// AuditInverseTable is the table name for the Audit entity.
	// It exists in this package in order to avoid circular dependency with the "audit" package.
	AuditInverseTable = "audits"
	// AuditColumn is the table column denoting the audit relation/edge.
	AuditColumn = "audit_id"
)

// Columns holds all SQL columns for compliancescore fields.
var Columns = []string{
	FieldID,
	FieldAuditID,
	FieldOverallScore,
	FieldRedCount,
	FieldYellowCount,
	FieldGreenCount,
	FieldTotalFlags,
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
	// DefaultRedCount holds the default value on creation for the "red_count" field.
	DefaultRedCount int
	// DefaultYellowCount holds the default value on creation for the "yellow_count" field.
	DefaultYellowCount int
	// DefaultGreenCount holds the default value on creation for the "green_count" field.
	DefaultGreenCount int
	// DefaultTotalFlags holds the default value on creation for the "total_flags" field.
	DefaultTotalFlags int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ComplianceScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAuditID orders the results by the audit_id field.
func ByAuditID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditID, opts...).ToFunc()
}

// ByOverallScore orders the results by the overall_score field.
func ByOverallScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallScore, opts...).ToFunc()
}

// ByRedCount orders the results by the red_count field.
func ByRedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRedCount, opts...).ToFunc()
}

// ByYellowCount orders the results by the yellow_count field.
func ByYellowCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYellowCount, opts...).ToFunc()
}

// ByGreenCount orders the results by the green_count field.
func ByGreenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGreenCount, opts...).ToFunc()
}

// ByTotalFlags orders the results by the total_flags field.
func ByTotalFlags(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFlags, opts...).ToFunc()
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
func newAuditStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AuditInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
	)
}
