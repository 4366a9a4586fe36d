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
	"github.com/regsentry/regsentry/ent/auditchunkresult"
)

// AuditChunkResult is the model entity for the AuditChunkResult schema.
type AuditChunkResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID int `json:"audit_id,omitempty"`
	// External chunk id
	ChunkID string `json:"chunk_id,omitempty"`
	// Status holds the value of the "status" field.
	Status auditchunkresult.Status `json:"status,omitempty"`
	// Normalized analysis JSON
	Analysis map[string]interface{} `json:"analysis,omitempty"`
	// Snapshot of slices actually used: token totals, per-bucket counts, content previews
	ContextSummary map[string]interface{} `json:"context_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditChunkResultQuery when eager-loading is set.
	Edges        AuditChunkResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditChunkResultEdges holds the relations/edges for other nodes in the graph.
type AuditChunkResultEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditChunkResultEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditChunkResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditchunkresult.FieldAnalysis, auditchunkresult.FieldContextSummary:
			values[i] = new([]byte)
		case auditchunkresult.FieldID, auditchunkresult.FieldAuditID:
			values[i] = new(sql.NullInt64)
		case auditchunkresult.FieldChunkID, auditchunkresult.FieldStatus:
			values[i] = new(sql.NullString)
		case auditchunkresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditChunkResult fields.
func (_m *AuditChunkResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditchunkresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case auditchunkresult.FieldAuditID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = int(value.Int64)
			}
		case auditchunkresult.FieldChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_id", values[i])
			} else if value.Valid {
				_m.ChunkID = value.String
			}
		case auditchunkresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = auditchunkresult.Status(value.String)
			}
		case auditchunkresult.FieldAnalysis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field analysis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Analysis); err != nil {
					return fmt.Errorf("unmarshal field analysis: %w", err)
				}
			}
		case auditchunkresult.FieldContextSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContextSummary); err != nil {
					return fmt.Errorf("unmarshal field context_summary: %w", err)
				}
			}
		case auditchunkresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AuditChunkResult.
// This includes values selected through modifiers, order, etc.
func (_m *AuditChunkResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the AuditChunkResult entity.
func (_m *AuditChunkResult) QueryAudit() *AuditQuery {
	return NewAuditChunkResultClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this AuditChunkResult.
// Note that you need to call AuditChunkResult.Unwrap() before calling this method if this AuditChunkResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditChunkResult) Update() *AuditChunkResultUpdateOne {
	return NewAuditChunkResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditChunkResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditChunkResult) Unwrap() *AuditChunkResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditChunkResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditChunkResult) String() string {
	var builder strings.Builder
	builder.WriteString("AuditChunkResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuditID))
	builder.WriteString(", ")
	builder.WriteString("chunk_id=")
	builder.WriteString(_m.ChunkID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("analysis=")
	builder.WriteString(fmt.Sprintf("%v", _m.Analysis))
	builder.WriteString(", ")
	builder.WriteString("context_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextSummary))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuditChunkResults is a parsable slice of AuditChunkResult.
type AuditChunkResults []*AuditChunkResult
