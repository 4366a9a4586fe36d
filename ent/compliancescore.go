// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/compliancescore"
)

// ComplianceScore is the model entity for the ComplianceScore schema.
type ComplianceScore struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AuditID holds the value of the "audit_id" field.
	AuditID int `json:"audit_id,omitempty"`
	// 0-100
	OverallScore float64 `json:"overall_score,omitempty"`
	// RedCount holds the value of the "red_count" field.
	RedCount int `json:"red_count,omitempty"`
	// YellowCount holds the value of the "yellow_count" field.
	YellowCount int `json:"yellow_count,omitempty"`
	// GreenCount holds the value of the "green_count" field.
	GreenCount int `json:"green_count,omitempty"`
	// TotalFlags holds the value of the "total_flags" field.
	TotalFlags int `json:"total_flags,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ComplianceScoreQuery when eager-loading is set.
	Edges        ComplianceScoreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ComplianceScoreEdges holds the relations/edges for other nodes in the graph.
type ComplianceScoreEdges struct {
	// Audit holds the value of the audit edge.
	Audit *Audit `json:"audit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AuditOrErr returns the Audit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ComplianceScoreEdges) AuditOrErr() (*Audit, error) {
	if e.Audit != nil {
		return e.Audit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: audit.Label}
	}
	return nil, &NotLoadedError{edge: "audit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ComplianceScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case compliancescore.FieldOverallScore:
			values[i] = new(sql.NullFloat64)
		case compliancescore.FieldID, compliancescore.FieldAuditID, compliancescore.FieldRedCount, compliancescore.FieldYellowCount, compliancescore.FieldGreenCount, compliancescore.FieldTotalFlags:
			values[i] = new(sql.NullInt64)
		case compliancescore.FieldCreatedAt, compliancescore.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ComplianceScore fields.
func (_m *ComplianceScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case compliancescore.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case compliancescore.FieldAuditID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field audit_id", values[i])
			} else if value.Valid {
				_m.AuditID = int(value.Int64)
			}
		case compliancescore.FieldOverallScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_score", values[i])
			} else if value.Valid {
				_m.OverallScore = value.Float64
			}
		case compliancescore.FieldRedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field red_count", values[i])
			} else if value.Valid {
				_m.RedCount = int(value.Int64)
			}
		case compliancescore.FieldYellowCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field yellow_count", values[i])
			} else if value.Valid {
				_m.YellowCount = int(value.Int64)
			}
		case compliancescore.FieldGreenCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field green_count", values[i])
			} else if value.Valid {
				_m.GreenCount = int(value.Int64)
			}
		case compliancescore.FieldTotalFlags:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_flags", values[i])
			} else if value.Valid {
				_m.TotalFlags = int(value.Int64)
			}
		case compliancescore.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case compliancescore.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ComplianceScore.
// This includes values selected through modifiers, order, etc.
func (_m *ComplianceScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAudit queries the "audit" edge of the ComplianceScore entity.
func (_m *ComplianceScore) QueryAudit() *AuditQuery {
	return NewComplianceScoreClient(_m.config).QueryAudit(_m)
}

// Update returns a builder for updating this ComplianceScore.
// Note that you need to call ComplianceScore.Unwrap() before calling this method if this ComplianceScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ComplianceScore) Update() *ComplianceScoreUpdateOne {
	return NewComplianceScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ComplianceScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ComplianceScore) Unwrap() *ComplianceScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ComplianceScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ComplianceScore) String() string {
	var builder strings.Builder
	builder.WriteString("ComplianceScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("audit_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuditID))
	builder.WriteString(", ")
	builder.WriteString("overall_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallScore))
	builder.WriteString(", ")
	builder.WriteString("red_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RedCount))
	builder.WriteString(", ")
	builder.WriteString("yellow_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.YellowCount))
	builder.WriteString(", ")
	builder.WriteString("green_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.GreenCount))
	builder.WriteString(", ")
	builder.WriteString("total_flags=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFlags))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ComplianceScores is a parsable slice of ComplianceScore.
type ComplianceScores []*ComplianceScore
