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
	"github.com/regsentry/regsentry/ent/auditorquestion"
)

// AuditorQuestion is the model entity for the AuditorQuestion schema.
type AuditorQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID int `json:"audit_id,omitempty"`
	// RegulationReference holds the value of the "regulation_reference" field.
	RegulationReference string `json:"regulation_reference,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// 1 highest ... 10 lowest
	Priority int `json:"priority,omitempty"`
	// Rationale holds the value of the "rationale" field.
	Rationale string `json:"rationale,omitempty"`
	// RelatedFlagIds holds the value of the "related_flag_ids" field.
	RelatedFlagIds []int `json:"related_flag_ids,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditorQuestionQuery when eager-loading is set.
	Edges        AuditorQuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditorQuestionEdges holds the relations/edges for other nodes in the graph.
type AuditorQuestionEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditorQuestionEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AuditorQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case auditorquestion.FieldRelatedFlagIds:
			values[i] = new([]byte)
		case auditorquestion.FieldID, auditorquestion.FieldAuditID, auditorquestion.FieldPriority:
			values[i] = new(sql.NullInt64)
		case auditorquestion.FieldRegulationReference, auditorquestion.FieldQuestion, auditorquestion.FieldRationale:
			values[i] = new(sql.NullString)
		case auditorquestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AuditorQuestion fields.
func (_m *AuditorQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case auditorquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case auditorquestion.FieldAuditID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = int(value.Int64)
			}
		case auditorquestion.FieldRegulationReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field regulation_reference", values[i])
			} else if value.Valid {
				_m.RegulationReference = value.String
			}
		case auditorquestion.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case auditorquestion.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case auditorquestion.FieldRationale:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rationale", values[i])
			} else if value.Valid {
				_m.Rationale = value.String
			}
		case auditorquestion.FieldRelatedFlagIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_flag_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedFlagIds); err != nil {
					return fmt.Errorf("unmarshal field related_flag_ids: %w", err)
				}
			}
		case auditorquestion.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AuditorQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *AuditorQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the AuditorQuestion entity.
func (_m *AuditorQuestion) QueryAudit() *AuditQuery {
	return NewAuditorQuestionClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this AuditorQuestion.
// Note that you need to call AuditorQuestion.Unwrap() before calling this method if this AuditorQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AuditorQuestion) Update() *AuditorQuestionUpdateOne {
	return NewAuditorQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AuditorQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AuditorQuestion) Unwrap() *AuditorQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AuditorQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AuditorQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("AuditorQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuditID))
	builder.WriteString(", ")
	builder.WriteString("regulation_reference=")
	builder.WriteString(_m.RegulationReference)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("rationale=")
	builder.WriteString(_m.Rationale)
	builder.WriteString(", ")
	builder.WriteString("related_flag_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedFlagIds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AuditorQuestions is a parsable slice of AuditorQuestion.
type AuditorQuestions []*AuditorQuestion
