// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/flag"
)

// Flag is the model entity for the Flag schema.
type Flag struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID int `json:"audit_id,omitempty"`
	// External chunk id
	ChunkID string `json:"chunk_id,omitempty"`
	// FlagType holds the value of the "flag_type" field.
	FlagType flag.FlagType `json:"flag_type,omitempty"`
	// 0-100, clamped non-negative
	SeverityScore int `json:"severity_score,omitempty"`
	// Findings holds the value of the "findings" field.
	Findings string `json:"findings,omitempty"`
	// Gaps holds the value of the "gaps" field.
	Gaps []string `json:"gaps,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// Captures needs_additional_context, refined, refinement_attempts
	AnalysisMetadata map[string]interface{} `json:"analysis_metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FlagQuery when eager-loading is set.
	Edges        FlagEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FlagEdges holds the relations/edges for other nodes in the graph.
type FlagEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// Citations holds the value of the citations edge.
	Citations []*Citation `json:"citations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FlagEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// CitationsOrErr returns the Citations value or an error if the edge
// was not loaded in eager-loading.
func (e FlagEdges) CitationsOrErr() ([]*Citation, error) {
	if e.loadedTypes[1] {
		return e.Citations, nil
	}
	return nil, &NotLoadedError{edge: "citations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Flag) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case flag.FieldGaps, flag.FieldRecommendations, flag.FieldAnalysisMetadata:
			values[i] = new([]byte)
		case flag.FieldID, flag.FieldAuditID, flag.FieldSeverityScore:
			values[i] = new(sql.NullInt64)
		case flag.FieldChunkID, flag.FieldFlagType, flag.FieldFindings:
			values[i] = new(sql.NullString)
		case flag.FieldCreatedAt, flag.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Flag fields.
func (_m *Flag) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case flag.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case flag.FieldAuditID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = int(value.Int64)
			}
		case flag.FieldChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_id", values[i])
			} else if value.Valid {
				_m.ChunkID = value.String
			}
		case flag.FieldFlagType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field flag_type", values[i])
			} else if value.Valid {
				_m.FlagType = flag.FlagType(value.String)
			}
		case flag.FieldSeverityScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field severity_score", values[i])
			} else if value.Valid {
				_m.SeverityScore = int(value.Int64)
			}
		case flag.FieldFindings:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field findings", values[i])
			} else if value.Valid {
				_m.Findings = value.String
			}
		case flag.FieldGaps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field gaps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Gaps); err != nil {
					return fmt.Errorf("unmarshal field gaps: %w", err)
				}
			}
		case flag.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case flag.FieldAnalysisMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AnalysisMetadata); err != nil {
					return fmt.Errorf("unmarshal field analysis_metadata: %w", err)
				}
			}
		case flag.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case flag.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Flag.
// This includes values selected through modifiers, order, etc.
func (_m *Flag) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the Flag entity.
func (_m *Flag) QueryAudit() *AuditQuery {
	return NewFlagClient(_m.config).QueryAudit(_m)
}

// QueryCitations queries the "citations" edge of the Flag entity.
func (_m *Flag) QueryCitations() *CitationQuery {
	return NewFlagClient(_m.config).QueryCitations(_m)
}

// Update returns a builder for updating this Flag.
// Note that you need to call Flag.Unwrap() before calling this method if this Flag
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Flag) Update() *FlagUpdateOne {
	return NewFlagClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Flag entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Flag) Unwrap() *Flag {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Flag is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Flag) String() string {
	var builder strings.Builder
	builder.WriteString("Flag(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuditID))
	builder.WriteString(", ")
	builder.WriteString("chunk_id=")
	builder.WriteString(_m.ChunkID)
	builder.WriteString(", ")
	builder.WriteString("flag_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlagType))
	builder.WriteString(", ")
	builder.WriteString("severity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeverityScore))
	builder.WriteString(", ")
	builder.WriteString("findings=")
	builder.WriteString(_m.Findings)
	builder.WriteString(", ")
	builder.WriteString("gaps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Gaps))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("analysis_metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.AnalysisMetadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Flags is a parsable slice of Flag.
type Flags []*Flag
