// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/regsentry/regsentry/ent/citation"
	"github.com/regsentry/regsentry/ent/flag"
)

// Citation is the model entity for the Citation schema.
type Citation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// FlagID holds the value of the "flag_id" field.
	FlagID int `json:"flag_id,omitempty"`
	// CitationType holds the value of the "citation_type" field.
	CitationType citation.CitationType `json:"citation_type,omitempty"`
	// Reference holds the value of the "reference" field.
	Reference string `json:"reference,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CitationQuery when eager-loading is set.
	Edges        CitationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CitationEdges holds the relations/edges for other nodes in the graph.
type CitationEdges struct {
	// Flag holds the value of the flag edge.
	Flag *Flag `json:"flag,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FlagOrErr returns the Flag value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CitationEdges) FlagOrErr() (*Flag, error) {
	if e.Flag != nil {
		return e.Flag, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: flag.Label}
	}
	return nil, &NotLoadedError{edge: "flag"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Citation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case citation.FieldID, citation.FieldFlagID:
			values[i] = new(sql.NullInt64)
		case citation.FieldCitationType, citation.FieldReference:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Citation fields.
func (_m *Citation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case citation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case citation.FieldFlagID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flag_id", values[i])
			} else if value.Valid {
				_m.FlagID = int(value.Int64)
			}
		case citation.FieldCitationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field citation_type", values[i])
			} else if value.Valid {
				_m.CitationType = citation.CitationType(value.String)
			}
		case citation.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Citation.
// This includes values selected through modifiers, order, etc.
func (_m *Citation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFlag queries the "flag" edge of the Citation entity.
func (_m *Citation) QueryFlag() *FlagQuery {
	return NewCitationClient(_m.config).QueryFlag(_m)
}

// Update returns a builder for updating this Citation.
// Note that you need to call Citation.Unwrap() before calling this method if this Citation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Citation) Update() *CitationUpdateOne {
	return NewCitationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Citation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Citation) Unwrap() *Citation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Citation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Citation) String() string {
	var builder strings.Builder
	builder.WriteString("Citation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("flag_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlagID))
	builder.WriteString(", ")
	builder.WriteString("citation_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CitationType))
	builder.WriteString(", ")
	builder.WriteString("reference=")
	builder.WriteString(_m.Reference)
	builder.WriteByte(')')
	return builder.String()
}

// Citations is a parsable slice of Citation.
type Citations []*Citation
