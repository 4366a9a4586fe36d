// Code generated by ent, DO NOT EDIT.

package citation

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the citation type in the database.
	Label = "citation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFlagID holds the string denoting the flag_id field in the database.
	FieldFlagID = "flag_id"
	// FieldCitationType holds the string denoting the citation_type field in the database.
	FieldCitationType = "citation_type"
	// FieldReference holds the string denoting the reference field in the database.
	FieldReference = "reference"
	// EdgeFlag holds the string denoting the flag edge name in mutations.
	EdgeFlag = "flag"
	// Table holds the table name of the citation in the database.
	Table = "citations"
	// FlagTable is the table that holds the flag relation/edge.
	FlagTable = "citations"
	// FlagInverseTable is the table name for the Flag entity.
	// It exists in this package in order to avoid circular dependency with the "flag" package.
	FlagInverseTable = "flags"
	// FlagColumn is the table column denoting the flag relation/edge.
	FlagColumn = "flag_id"
)

// Columns holds all SQL columns for citation fields.
var Columns = []string{
	FieldID,
	FieldFlagID,
	FieldCitationType,
	FieldReference,
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
	// ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	ReferenceValidator func(string) error
)

// CitationType defines the type for the "citation_type" enum field.
type CitationType string

// CitationType values.
const (
	CitationTypeManual     CitationType = "manual"
	CitationTypeRegulation CitationType = "regulation"
)

func (ct CitationType) String() string {
	return string(ct)
}

// CitationTypeValidator is a validator for the "citation_type" field enum values. It is called by the builders before save.
func CitationTypeValidator(ct CitationType) error {
	switch ct {
	case CitationTypeManual, CitationTypeRegulation:
		return nil
	default:
		return fmt.Errorf("citation: invalid enum value for citation_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the Citation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFlagID orders the results by the flag_id field.
func ByFlagID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlagID, opts...).ToFunc()
}

// ByCitationType orders the results by the citation_type field.
func ByCitationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCitationType, opts...).ToFunc()
}

// ByReference orders the results by the reference field.
func ByReference(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReference, opts...).ToFunc()
}

// ByFlagField orders the results by flag field.
func ByFlagField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFlagStep(), sql.OrderByField(field, opts...))
	}
}
func newFlagStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FlagInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FlagTable, FlagColumn),
	)
}
