// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/document"
)

// Audit is the model entity for the Audit schema.
type Audit struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ExternalID holds the value of the "external_id" field.
	ExternalID string `json:"external_id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID int `json:"document_id,omitempty"`
	// Status holds the value of the "status" field.
	Status audit.Status `json:"status,omitempty"`
	// Draft audits process at most 5 chunks with reduced context
	IsDraft bool `json:"is_draft,omitempty"`
	// ChunkTotal holds the value of the "chunk_total" field.
	ChunkTotal int `json:"chunk_total,omitempty"`
	// ChunkCompleted holds the value of the "chunk_completed" field.
	ChunkCompleted int `json:"chunk_completed,omitempty"`
	// External chunk id of the most recently committed chunk
	LastChunkID *string `json:"last_chunk_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// FailedAt holds the value of the "failed_at" field.
	FailedAt *time.Time `json:"failed_at,omitempty"`
	// FailureReason holds the value of the "failure_reason" field.
	FailureReason *string `json:"failure_reason,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AuditQuery when eager-loading is set.
	Edges        AuditEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AuditEdges holds the relations/edges for other nodes in the graph.
type AuditEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// ChunkResults holds the value of the chunk_results edge.
	ChunkResults []*AuditChunkResult `json:"chunk_results,omitempty"`
	// Flags holds the value of the flags edge.
	Flags []*Flag `json:"flags,omitempty"`
	// Questions holds the value of the questions edge.
	Questions []*AuditorQuestion `json:"questions,omitempty"`
	// Scores holds the value of the scores edge.
	Scores []*ComplianceScore `json:"scores,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AuditEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// ChunkResultsOrErr returns the ChunkResults value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) ChunkResultsOrErr() ([]*AuditChunkResult, error) {
	if e.loadedTypes[1] {
		return e.ChunkResults, nil
	}
	return nil, &NotLoadedError{edge: "chunk_results"}
}

// FlagsOrErr returns the Flags value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) FlagsOrErr() ([]*Flag, error) {
	if e.loadedTypes[2] {
		return e.Flags, nil
	}
	return nil, &NotLoadedError{edge: "flags"}
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) QuestionsOrErr() ([]*AuditorQuestion, error) {
	if e.loadedTypes[3] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// ScoresOrErr returns the Scores value or an error if the edge
// was not loaded in eager-loading.
func (e AuditEdges) ScoresOrErr() ([]*ComplianceScore, error) {
	if e.loadedTypes[4] {
		return e.Scores, nil
	}
	return nil, &NotLoadedError{edge: "scores"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Audit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case audit.FieldIsDraft:
			values[i] = new(sql.NullBool)
		case audit.FieldID, audit.FieldDocumentID, audit.FieldChunkTotal, audit.FieldChunkCompleted:
			values[i] = new(sql.NullInt64)
		case audit.FieldExternalID, audit.FieldStatus, audit.FieldLastChunkID, audit.FieldFailureReason:
			values[i] = new(sql.NullString)
		case audit.FieldCreatedAt, audit.FieldStartedAt, audit.FieldCompletedAt, audit.FieldFailedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Audit fields.
func (_m *Audit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case audit.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case audit.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case audit.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = int(value.Int64)
			}
		case audit.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = audit.Status(value.String)
			}
		case audit.FieldIsDraft:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_draft", values[i])
			} else if value.Valid {
				_m.IsDraft = value.Bool
			}
		case audit.FieldChunkTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_total", values[i])
			} else if value.Valid {
				_m.ChunkTotal = int(value.Int64)
			}
		case audit.FieldChunkCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_completed", values[i])
			} else if value.Valid {
				_m.ChunkCompleted = int(value.Int64)
			}
		case audit.FieldLastChunkID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_chunk_id", values[i])
			} else if value.Valid {
				_m.LastChunkID = new(string)
				*_m.LastChunkID = value.String
			}
		case audit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case audit.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case audit.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case audit.FieldFailedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field failed_at", values[i])
			} else if value.Valid {
				_m.FailedAt = new(time.Time)
				*_m.FailedAt = value.Time
			}
		case audit.FieldFailureReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failure_reason", values[i])
			} else if value.Valid {
				_m.FailureReason = new(string)
				*_m.FailureReason = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Audit.
// This includes values selected through modifiers, order, etc.
func (_m *Audit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the Audit entity.
func (_m *Audit) QueryDocument() *DocumentQuery {
	return NewAuditClient(_m.config).QueryDocument(_m)
}

// QueryChunkResults queries the "chunk_results" edge of the Audit entity.
func (_m *Audit) QueryChunkResults() *AuditChunkResultQuery {
	return NewAuditClient(_m.config).QueryChunkResults(_m)
}

// QueryFlags queries the "flags" edge of the Audit entity.
func (_m *Audit) QueryFlags() *FlagQuery {
	return NewAuditClient(_m.config).QueryFlags(_m)
}

// QueryQuestions queries the "questions" edge of the Audit entity.
func (_m *Audit) QueryQuestions() *AuditorQuestionQuery {
	return NewAuditClient(_m.config).QueryQuestions(_m)
}

// QueryScores queries the "scores" edge of the Audit entity.
func (_m *Audit) QueryScores() *ComplianceScoreQuery {
	return NewAuditClient(_m.config).QueryScores(_m)
}

// Update returns a builder for updating this Audit.
// Note that you need to call Audit.Unwrap() before calling this method if this Audit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Audit) Update() *AuditUpdateOne {
	return NewAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Audit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Audit) Unwrap() *Audit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Audit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Audit) String() string {
	var builder strings.Builder
	builder.WriteString("Audit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("is_draft=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDraft))
	builder.WriteString(", ")
	builder.WriteString("chunk_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkTotal))
	builder.WriteString(", ")
	builder.WriteString("chunk_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkCompleted))
	builder.WriteString(", ")
	if v := _m.LastChunkID; v != nil {
		builder.WriteString("last_chunk_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FailedAt; v != nil {
		builder.WriteString("failed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.FailureReason; v != nil {
		builder.WriteString("failure_reason=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Audits is a parsable slice of Audit.
type Audits []*Audit
