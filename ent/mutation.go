// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/auditchunkresult"
	"github.com/regsentry/regsentry/ent/auditorquestion"
	"github.com/regsentry/regsentry/ent/chunk"
	"github.com/regsentry/regsentry/ent/citation"
	"github.com/regsentry/regsentry/ent/compliancescore"
	"github.com/regsentry/regsentry/ent/document"
	"github.com/regsentry/regsentry/ent/flag"
	"github.com/regsentry/regsentry/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAudit            = "Audit"
	TypeAuditChunkResult = "AuditChunkResult"
	TypeAuditorQuestion  = "AuditorQuestion"
	TypeChunk            = "Chunk"
	TypeCitation         = "Citation"
	TypeComplianceScore  = "ComplianceScore"
	TypeDocument         = "Document"
	TypeFlag             = "Flag"
)

// AuditMutation represents an operation that mutates the Audit nodes in the graph.
type AuditMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	external_id          *string
	status               *audit.Status
	is_draft             *bool
	chunk_total          *int
	addchunk_total       *int
	chunk_completed      *int
	addchunk_completed   *int
	last_chunk_id        *string
	created_at           *time.Time
	started_at           *time.Time
	completed_at         *time.Time
	failed_at            *time.Time
	failure_reason       *string
	clearedFields        map[string]struct{}
	document             *int
	cleareddocument      bool
	chunk_results        map[int]struct{}
	removedchunk_results map[int]struct{}
	clearedchunk_results bool
	flags                map[int]struct{}
	removedflags         map[int]struct{}
	clearedflags         bool
	questions            map[int]struct{}
	removedquestions     map[int]struct{}
	clearedquestions     bool
	scores               map[int]struct{}
	removedscores        map[int]struct{}
	clearedscores        bool
	done                 bool
	oldValue             func(context.Context) (*Audit, error)
	predicates           []predicate.Audit
}

var _ ent.Mutation = (*AuditMutation)(nil)

// auditOption allows management of the mutation configuration using functional options.
type auditOption func(*AuditMutation)

// newAuditMutation creates new mutation for the Audit entity.
func newAuditMutation(c config, op Op, opts ...auditOption) *AuditMutation {
	m := &AuditMutation{
		config:        c,
		op:            op,
		typ:           TypeAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditID sets the ID field of the mutation.
func withAuditID(id int) auditOption {
	return func(m *AuditMutation) {
		var (
			err   error
			once  sync.Once
			value *Audit
		)
		m.oldValue = func(ctx context.Context) (*Audit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Audit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAudit sets the old Audit of the mutation.
func withAudit(node *Audit) auditOption {
	return func(m *AuditMutation) {
		m.oldValue = func(context.Context) (*Audit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Audit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *AuditMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *AuditMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *AuditMutation) ResetExternalID() {
	m.external_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *AuditMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *AuditMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *AuditMutation) ResetDocumentID() {
	m.document = nil
}

// SetStatus sets the "status" field.
func (m *AuditMutation) SetStatus(a audit.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditMutation) Status() (r audit.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldStatus(ctx context.Context) (v audit.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditMutation) ResetStatus() {
	m.status = nil
}

// SetIsDraft sets the "is_draft" field.
func (m *AuditMutation) SetIsDraft(b bool) {
	m.is_draft = &b
}

// IsDraft returns the value of the "is_draft" field in the mutation.
func (m *AuditMutation) IsDraft() (r bool, exists bool) {
	v := m.is_draft
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDraft returns the old "is_draft" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldIsDraft(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDraft: %w", err)
	}
	return oldValue.IsDraft, nil
}

// ResetIsDraft resets all changes to the "is_draft" field.
func (m *AuditMutation) ResetIsDraft() {
	m.is_draft = nil
}

// SetChunkTotal sets the "chunk_total" field.
func (m *AuditMutation) SetChunkTotal(i int) {
	m.chunk_total = &i
	m.addchunk_total = nil
}

// ChunkTotal returns the value of the "chunk_total" field in the mutation.
func (m *AuditMutation) ChunkTotal() (r int, exists bool) {
	v := m.chunk_total
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkTotal returns the old "chunk_total" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldChunkTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkTotal: %w", err)
	}
	return oldValue.ChunkTotal, nil
}

// AddChunkTotal adds i to the "chunk_total" field.
func (m *AuditMutation) AddChunkTotal(i int) {
	if m.addchunk_total != nil {
		*m.addchunk_total += i
	} else {
		m.addchunk_total = &i
	}
}

// AddedChunkTotal returns the value that was added to the "chunk_total" field in this mutation.
func (m *AuditMutation) AddedChunkTotal() (r int, exists bool) {
	v := m.addchunk_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkTotal resets all changes to the "chunk_total" field.
func (m *AuditMutation) ResetChunkTotal() {
	m.chunk_total = nil
	m.addchunk_total = nil
}

// SetChunkCompleted sets the "chunk_completed" field.
func (m *AuditMutation) SetChunkCompleted(i int) {
	m.chunk_completed = &i
	m.addchunk_completed = nil
}

// ChunkCompleted returns the value of the "chunk_completed" field in the mutation.
func (m *AuditMutation) ChunkCompleted() (r int, exists bool) {
	v := m.chunk_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkCompleted returns the old "chunk_completed" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldChunkCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkCompleted: %w", err)
	}
	return oldValue.ChunkCompleted, nil
}

// AddChunkCompleted adds i to the "chunk_completed" field.
func (m *AuditMutation) AddChunkCompleted(i int) {
	if m.addchunk_completed != nil {
		*m.addchunk_completed += i
	} else {
		m.addchunk_completed = &i
	}
}

// AddedChunkCompleted returns the value that was added to the "chunk_completed" field in this mutation.
func (m *AuditMutation) AddedChunkCompleted() (r int, exists bool) {
	v := m.addchunk_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkCompleted resets all changes to the "chunk_completed" field.
func (m *AuditMutation) ResetChunkCompleted() {
	m.chunk_completed = nil
	m.addchunk_completed = nil
}

// SetLastChunkID sets the "last_chunk_id" field.
func (m *AuditMutation) SetLastChunkID(s string) {
	m.last_chunk_id = &s
}

// LastChunkID returns the value of the "last_chunk_id" field in the mutation.
func (m *AuditMutation) LastChunkID() (r string, exists bool) {
	v := m.last_chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastChunkID returns the old "last_chunk_id" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldLastChunkID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastChunkID: %w", err)
	}
	return oldValue.LastChunkID, nil
}

// ClearLastChunkID clears the value of the "last_chunk_id" field.
func (m *AuditMutation) ClearLastChunkID() {
	m.last_chunk_id = nil
	m.clearedFields[audit.FieldLastChunkID] = struct{}{}
}

// LastChunkIDCleared returns if the "last_chunk_id" field was cleared in this mutation.
func (m *AuditMutation) LastChunkIDCleared() bool {
	_, ok := m.clearedFields[audit.FieldLastChunkID]
	return ok
}

// ResetLastChunkID resets all changes to the "last_chunk_id" field.
func (m *AuditMutation) ResetLastChunkID() {
	m.last_chunk_id = nil
	delete(m.clearedFields, audit.FieldLastChunkID)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AuditMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AuditMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AuditMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[audit.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AuditMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AuditMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, audit.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AuditMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AuditMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AuditMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[audit.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AuditMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AuditMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, audit.FieldCompletedAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *AuditMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *AuditMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *AuditMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[audit.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *AuditMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *AuditMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, audit.FieldFailedAt)
}

// SetFailureReason sets the "failure_reason" field.
func (m *AuditMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *AuditMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *AuditMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[audit.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *AuditMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[audit.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *AuditMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, audit.FieldFailureReason)
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *AuditMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[audit.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *AuditMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *AuditMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *AuditMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// AddChunkResultIDs adds the "chunk_results" edge to the AuditChunkResult entity by ids.
func (m *AuditMutation) AddChunkResultIDs(ids ...int) {
	if m.chunk_results == nil {
		m.chunk_results = make(map[int]struct{})
	}
	for i := range ids {
		m.chunk_results[ids[i]] = struct{}{}
	}
}

// ClearChunkResults clears the "chunk_results" edge to the AuditChunkResult entity.
func (m *AuditMutation) ClearChunkResults() {
	m.clearedchunk_results = true
}

// ChunkResultsCleared reports if the "chunk_results" edge to the AuditChunkResult entity was cleared.
func (m *AuditMutation) ChunkResultsCleared() bool {
	return m.clearedchunk_results
}

// RemoveChunkResultIDs removes the "chunk_results" edge to the AuditChunkResult entity by IDs.
func (m *AuditMutation) RemoveChunkResultIDs(ids ...int) {
	if m.removedchunk_results == nil {
		m.removedchunk_results = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chunk_results, ids[i])
		m.removedchunk_results[ids[i]] = struct{}{}
	}
}

// RemovedChunkResults returns the removed IDs of the "chunk_results" edge to the AuditChunkResult entity.
func (m *AuditMutation) RemovedChunkResultsIDs() (ids []int) {
	for id := range m.removedchunk_results {
		ids = append(ids, id)
	}
	return
}

// ChunkResultsIDs returns the "chunk_results" edge IDs in the mutation.
func (m *AuditMutation) ChunkResultsIDs() (ids []int) {
	for id := range m.chunk_results {
		ids = append(ids, id)
	}
	return
}

// ResetChunkResults resets all changes to the "chunk_results" edge.
func (m *AuditMutation) ResetChunkResults() {
	m.chunk_results = nil
	m.clearedchunk_results = false
	m.removedchunk_results = nil
}

// AddFlagIDs adds the "flags" edge to the Flag entity by ids.
func (m *AuditMutation) AddFlagIDs(ids ...int) {
	if m.flags == nil {
		m.flags = make(map[int]struct{})
	}
	for i := range ids {
		m.flags[ids[i]] = struct{}{}
	}
}

// ClearFlags clears the "flags" edge to the Flag entity.
func (m *AuditMutation) ClearFlags() {
	m.clearedflags = true
}

// FlagsCleared reports if the "flags" edge to the Flag entity was cleared.
func (m *AuditMutation) FlagsCleared() bool {
	return m.clearedflags
}

// RemoveFlagIDs removes the "flags" edge to the Flag entity by IDs.
func (m *AuditMutation) RemoveFlagIDs(ids ...int) {
	if m.removedflags == nil {
		m.removedflags = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.flags, ids[i])
		m.removedflags[ids[i]] = struct{}{}
	}
}

// RemovedFlags returns the removed IDs of the "flags" edge to the Flag entity.
func (m *AuditMutation) RemovedFlagsIDs() (ids []int) {
	for id := range m.removedflags {
		ids = append(ids, id)
	}
	return
}

// FlagsIDs returns the "flags" edge IDs in the mutation.
func (m *AuditMutation) FlagsIDs() (ids []int) {
	for id := range m.flags {
		ids = append(ids, id)
	}
	return
}

// ResetFlags resets all changes to the "flags" edge.
func (m *AuditMutation) ResetFlags() {
	m.flags = nil
	m.clearedflags = false
	m.removedflags = nil
}

// AddQuestionIDs adds the "questions" edge to the AuditorQuestion entity by ids.
func (m *AuditMutation) AddQuestionIDs(ids ...int) {
	if m.questions == nil {
		m.questions = make(map[int]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the AuditorQuestion entity.
func (m *AuditMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the AuditorQuestion entity was cleared.
func (m *AuditMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the AuditorQuestion entity by IDs.
func (m *AuditMutation) RemoveQuestionIDs(ids ...int) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the AuditorQuestion entity.
func (m *AuditMutation) RemovedQuestionsIDs() (ids []int) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *AuditMutation) QuestionsIDs() (ids []int) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *AuditMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddScoreIDs adds the "scores" edge to the ComplianceScore entity by ids.
func (m *AuditMutation) AddScoreIDs(ids ...int) {
	if m.scores == nil {
		m.scores = make(map[int]struct{})
	}
	for i := range ids {
		m.scores[ids[i]] = struct{}{}
	}
}

// ClearScores clears the "scores" edge to the ComplianceScore entity.
func (m *AuditMutation) ClearScores() {
	m.clearedscores = true
}

// ScoresCleared reports if the "scores" edge to the ComplianceScore entity was cleared.
func (m *AuditMutation) ScoresCleared() bool {
	return m.clearedscores
}

// RemoveScoreIDs removes the "scores" edge to the ComplianceScore entity by IDs.
func (m *AuditMutation) RemoveScoreIDs(ids ...int) {
	if m.removedscores == nil {
		m.removedscores = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.scores, ids[i])
		m.removedscores[ids[i]] = struct{}{}
	}
}

// RemovedScores returns the removed IDs of the "scores" edge to the ComplianceScore entity.
func (m *AuditMutation) RemovedScoresIDs() (ids []int) {
	for id := range m.removedscores {
		ids = append(ids, id)
	}
	return
}

// ScoresIDs returns the "scores" edge IDs in the mutation.
func (m *AuditMutation) ScoresIDs() (ids []int) {
	for id := range m.scores {
		ids = append(ids, id)
	}
	return
}

// ResetScores resets all changes to the "scores" edge.
func (m *AuditMutation) ResetScores() {
	m.scores = nil
	m.clearedscores = false
	m.removedscores = nil
}

// Where appends a list predicates to the AuditMutation builder.
func (m *AuditMutation) Where(ps ...predicate.Audit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Audit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Audit).
func (m *AuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.external_id != nil {
		fields = append(fields, audit.FieldExternalID)
	}
	if m.document != nil {
		fields = append(fields, audit.FieldDocumentID)
	}
	if m.status != nil {
		fields = append(fields, audit.FieldStatus)
	}
	if m.is_draft != nil {
		fields = append(fields, audit.FieldIsDraft)
	}
	if m.chunk_total != nil {
		fields = append(fields, audit.FieldChunkTotal)
	}
	if m.chunk_completed != nil {
		fields = append(fields, audit.FieldChunkCompleted)
	}
	if m.last_chunk_id != nil {
		fields = append(fields, audit.FieldLastChunkID)
	}
	if m.created_at != nil {
		fields = append(fields, audit.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, audit.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, audit.FieldCompletedAt)
	}
	if m.failed_at != nil {
		fields = append(fields, audit.FieldFailedAt)
	}
	if m.failure_reason != nil {
		fields = append(fields, audit.FieldFailureReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audit.FieldExternalID:
		return m.ExternalID()
	case audit.FieldDocumentID:
		return m.DocumentID()
	case audit.FieldStatus:
		return m.Status()
	case audit.FieldIsDraft:
		return m.IsDraft()
	case audit.FieldChunkTotal:
		return m.ChunkTotal()
	case audit.FieldChunkCompleted:
		return m.ChunkCompleted()
	case audit.FieldLastChunkID:
		return m.LastChunkID()
	case audit.FieldCreatedAt:
		return m.CreatedAt()
	case audit.FieldStartedAt:
		return m.StartedAt()
	case audit.FieldCompletedAt:
		return m.CompletedAt()
	case audit.FieldFailedAt:
		return m.FailedAt()
	case audit.FieldFailureReason:
		return m.FailureReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audit.FieldExternalID:
		return m.OldExternalID(ctx)
	case audit.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case audit.FieldStatus:
		return m.OldStatus(ctx)
	case audit.FieldIsDraft:
		return m.OldIsDraft(ctx)
	case audit.FieldChunkTotal:
		return m.OldChunkTotal(ctx)
	case audit.FieldChunkCompleted:
		return m.OldChunkCompleted(ctx)
	case audit.FieldLastChunkID:
		return m.OldLastChunkID(ctx)
	case audit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case audit.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case audit.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case audit.FieldFailedAt:
		return m.OldFailedAt(ctx)
	case audit.FieldFailureReason:
		return m.OldFailureReason(ctx)
	}
	return nil, fmt.Errorf("unknown Audit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audit.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case audit.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case audit.FieldStatus:
		v, ok := value.(audit.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case audit.FieldIsDraft:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDraft(v)
		return nil
	case audit.FieldChunkTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkTotal(v)
		return nil
	case audit.FieldChunkCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkCompleted(v)
		return nil
	case audit.FieldLastChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastChunkID(v)
		return nil
	case audit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case audit.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case audit.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case audit.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	case audit.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_total != nil {
		fields = append(fields, audit.FieldChunkTotal)
	}
	if m.addchunk_completed != nil {
		fields = append(fields, audit.FieldChunkCompleted)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case audit.FieldChunkTotal:
		return m.AddedChunkTotal()
	case audit.FieldChunkCompleted:
		return m.AddedChunkCompleted()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	case audit.FieldChunkTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkTotal(v)
		return nil
	case audit.FieldChunkCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown Audit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(audit.FieldLastChunkID) {
		fields = append(fields, audit.FieldLastChunkID)
	}
	if m.FieldCleared(audit.FieldStartedAt) {
		fields = append(fields, audit.FieldStartedAt)
	}
	if m.FieldCleared(audit.FieldCompletedAt) {
		fields = append(fields, audit.FieldCompletedAt)
	}
	if m.FieldCleared(audit.FieldFailedAt) {
		fields = append(fields, audit.FieldFailedAt)
	}
	if m.FieldCleared(audit.FieldFailureReason) {
		fields = append(fields, audit.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditMutation) ClearField(name string) error {
	switch name {
	case audit.FieldLastChunkID:
		m.ClearLastChunkID()
		return nil
	case audit.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case audit.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case audit.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	case audit.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Audit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditMutation) ResetField(name string) error {
	switch name {
	case audit.FieldExternalID:
		m.ResetExternalID()
		return nil
	case audit.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case audit.FieldStatus:
		m.ResetStatus()
		return nil
	case audit.FieldIsDraft:
		m.ResetIsDraft()
		return nil
	case audit.FieldChunkTotal:
		m.ResetChunkTotal()
		return nil
	case audit.FieldChunkCompleted:
		m.ResetChunkCompleted()
		return nil
	case audit.FieldLastChunkID:
		m.ResetLastChunkID()
		return nil
	case audit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case audit.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case audit.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case audit.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	case audit.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.document != nil {
		edges = append(edges, audit.EdgeDocument)
	}
	if m.chunk_results != nil {
		edges = append(edges, audit.EdgeChunkResults)
	}
	if m.flags != nil {
		edges = append(edges, audit.EdgeFlags)
	}
	if m.questions != nil {
		edges = append(edges, audit.EdgeQuestions)
	}
	if m.scores != nil {
		edges = append(edges, audit.EdgeScores)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case audit.EdgeChunkResults:
		ids := make([]ent.Value, 0, len(m.chunk_results))
		for id := range m.chunk_results {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeFlags:
		ids := make([]ent.Value, 0, len(m.flags))
		for id := range m.flags {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeScores:
		ids := make([]ent.Value, 0, len(m.scores))
		for id := range m.scores {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedchunk_results != nil {
		edges = append(edges, audit.EdgeChunkResults)
	}
	if m.removedflags != nil {
		edges = append(edges, audit.EdgeFlags)
	}
	if m.removedquestions != nil {
		edges = append(edges, audit.EdgeQuestions)
	}
	if m.removedscores != nil {
		edges = append(edges, audit.EdgeScores)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeChunkResults:
		ids := make([]ent.Value, 0, len(m.removedchunk_results))
		for id := range m.removedchunk_results {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeFlags:
		ids := make([]ent.Value, 0, len(m.removedflags))
		for id := range m.removedflags {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeScores:
		ids := make([]ent.Value, 0, len(m.removedscores))
		for id := range m.removedscores {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.cleareddocument {
		edges = append(edges, audit.EdgeDocument)
	}
	if m.clearedchunk_results {
		edges = append(edges, audit.EdgeChunkResults)
	}
	if m.clearedflags {
		edges = append(edges, audit.EdgeFlags)
	}
	if m.clearedquestions {
		edges = append(edges, audit.EdgeQuestions)
	}
	if m.clearedscores {
		edges = append(edges, audit.EdgeScores)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditMutation) EdgeCleared(name string) bool {
	switch name {
	case audit.EdgeDocument:
		return m.cleareddocument
	case audit.EdgeChunkResults:
		return m.clearedchunk_results
	case audit.EdgeFlags:
		return m.clearedflags
	case audit.EdgeQuestions:
		return m.clearedquestions
	case audit.EdgeScores:
		return m.clearedscores
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditMutation) ClearEdge(name string) error {
	switch name {
	case audit.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Audit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditMutation) ResetEdge(name string) error {
	switch name {
	case audit.EdgeDocument:
		m.ResetDocument()
		return nil
	case audit.EdgeChunkResults:
		m.ResetChunkResults()
		return nil
	case audit.EdgeFlags:
		m.ResetFlags()
		return nil
	case audit.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case audit.EdgeScores:
		m.ResetScores()
		return nil
	}
	return fmt.Errorf("unknown Audit edge %s", name)
}

// AuditChunkResultMutation represents an operation that mutates the AuditChunkResult nodes in the graph.
type AuditChunkResultMutation struct {
	config
	op              Op
	typ             string
	id              *int
	chunk_id        *string
	status          *auditchunkresult.Status
	analysis        *map[string]interface{}
	context_summary *map[string]interface{}
	created_at      *time.Time
	clearedFields   map[string]struct{}
	audit           *int
	clearedaudit    bool
	done            bool
	oldValue        func(context.Context) (*AuditChunkResult, error)
	predicates      []predicate.AuditChunkResult
}

var _ ent.Mutation = (*AuditChunkResultMutation)(nil)

// auditchunkresultOption allows management of the mutation configuration using functional options.
type auditchunkresultOption func(*AuditChunkResultMutation)

// newAuditChunkResultMutation creates new mutation for the AuditChunkResult entity.
func newAuditChunkResultMutation(c config, op Op, opts ...auditchunkresultOption) *AuditChunkResultMutation {
	m := &AuditChunkResultMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditChunkResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditChunkResultID sets the ID field of the mutation.
func withAuditChunkResultID(id int) auditchunkresultOption {
	return func(m *AuditChunkResultMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditChunkResult
		)
		m.oldValue = func(ctx context.Context) (*AuditChunkResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditChunkResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditChunkResult sets the old AuditChunkResult of the mutation.
func withAuditChunkResult(node *AuditChunkResult) auditchunkresultOption {
	return func(m *AuditChunkResultMutation) {
		m.oldValue = func(context.Context) (*AuditChunkResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditChunkResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditChunkResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditChunkResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditChunkResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditChunkResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditChunkResultMutation) SetAuditID(i int) {
	m.audit = &i
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditChunkResultMutation) AuditID() (r int, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditChunkResult entity.
// If the AuditChunkResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditChunkResultMutation) OldAuditID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditChunkResultMutation) ResetAuditID() {
	m.audit = nil
}

// SetChunkID sets the "chunk_id" field.
func (m *AuditChunkResultMutation) SetChunkID(s string) {
	m.chunk_id = &s
}

// ChunkID returns the value of the "chunk_id" field in the mutation.
func (m *AuditChunkResultMutation) ChunkID() (r string, exists bool) {
	v := m.chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkID returns the old "chunk_id" field's value of the AuditChunkResult entity.
// If the AuditChunkResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditChunkResultMutation) OldChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkID: %w", err)
	}
	return oldValue.ChunkID, nil
}

// ResetChunkID resets all changes to the "chunk_id" field.
func (m *AuditChunkResultMutation) ResetChunkID() {
	m.chunk_id = nil
}

// SetStatus sets the "status" field.
func (m *AuditChunkResultMutation) SetStatus(a auditchunkresult.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditChunkResultMutation) Status() (r auditchunkresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditChunkResult entity.
// If the AuditChunkResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditChunkResultMutation) OldStatus(ctx context.Context) (v auditchunkresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditChunkResultMutation) ResetStatus() {
	m.status = nil
}

// SetAnalysis sets the "analysis" field.
func (m *AuditChunkResultMutation) SetAnalysis(value map[string]interface{}) {
	m.analysis = &value
}

// Analysis returns the value of the "analysis" field in the mutation.
func (m *AuditChunkResultMutation) Analysis() (r map[string]interface{}, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysis returns the old "analysis" field's value of the AuditChunkResult entity.
// If the AuditChunkResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditChunkResultMutation) OldAnalysis(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysis: %w", err)
	}
	return oldValue.Analysis, nil
}

// ResetAnalysis resets all changes to the "analysis" field.
func (m *AuditChunkResultMutation) ResetAnalysis() {
	m.analysis = nil
}

// SetContextSummary sets the "context_summary" field.
func (m *AuditChunkResultMutation) SetContextSummary(value map[string]interface{}) {
	m.context_summary = &value
}

// ContextSummary returns the value of the "context_summary" field in the mutation.
func (m *AuditChunkResultMutation) ContextSummary() (r map[string]interface{}, exists bool) {
	v := m.context_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldContextSummary returns the old "context_summary" field's value of the AuditChunkResult entity.
// If the AuditChunkResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditChunkResultMutation) OldContextSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextSummary: %w", err)
	}
	return oldValue.ContextSummary, nil
}

// ClearContextSummary clears the value of the "context_summary" field.
func (m *AuditChunkResultMutation) ClearContextSummary() {
	m.context_summary = nil
	m.clearedFields[auditchunkresult.FieldContextSummary] = struct{}{}
}

// ContextSummaryCleared returns if the "context_summary" field was cleared in this mutation.
func (m *AuditChunkResultMutation) ContextSummaryCleared() bool {
	_, ok := m.clearedFields[auditchunkresult.FieldContextSummary]
	return ok
}

// ResetContextSummary resets all changes to the "context_summary" field.
func (m *AuditChunkResultMutation) ResetContextSummary() {
	m.context_summary = nil
	delete(m.clearedFields, auditchunkresult.FieldContextSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditChunkResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditChunkResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditChunkResult entity.
// If the AuditChunkResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditChunkResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditChunkResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditChunkResultMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[auditchunkresult.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditChunkResultMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditChunkResultMutation) AuditIDs() (ids []int) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditChunkResultMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the AuditChunkResultMutation builder.
func (m *AuditChunkResultMutation) Where(ps ...predicate.AuditChunkResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditChunkResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditChunkResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditChunkResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditChunkResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditChunkResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditChunkResult).
func (m *AuditChunkResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditChunkResultMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.audit != nil {
		fields = append(fields, auditchunkresult.FieldAuditID)
	}
	if m.chunk_id != nil {
		fields = append(fields, auditchunkresult.FieldChunkID)
	}
	if m.status != nil {
		fields = append(fields, auditchunkresult.FieldStatus)
	}
	if m.analysis != nil {
		fields = append(fields, auditchunkresult.FieldAnalysis)
	}
	if m.context_summary != nil {
		fields = append(fields, auditchunkresult.FieldContextSummary)
	}
	if m.created_at != nil {
		fields = append(fields, auditchunkresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditChunkResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditchunkresult.FieldAuditID:
		return m.AuditID()
	case auditchunkresult.FieldChunkID:
		return m.ChunkID()
	case auditchunkresult.FieldStatus:
		return m.Status()
	case auditchunkresult.FieldAnalysis:
		return m.Analysis()
	case auditchunkresult.FieldContextSummary:
		return m.ContextSummary()
	case auditchunkresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditChunkResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditchunkresult.FieldAuditID:
		return m.OldAuditID(ctx)
	case auditchunkresult.FieldChunkID:
		return m.OldChunkID(ctx)
	case auditchunkresult.FieldStatus:
		return m.OldStatus(ctx)
	case auditchunkresult.FieldAnalysis:
		return m.OldAnalysis(ctx)
	case auditchunkresult.FieldContextSummary:
		return m.OldContextSummary(ctx)
	case auditchunkresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditChunkResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditChunkResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditchunkresult.FieldAuditID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case auditchunkresult.FieldChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkID(v)
		return nil
	case auditchunkresult.FieldStatus:
		v, ok := value.(auditchunkresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case auditchunkresult.FieldAnalysis:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysis(v)
		return nil
	case auditchunkresult.FieldContextSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextSummary(v)
		return nil
	case auditchunkresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditChunkResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditChunkResultMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditChunkResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditChunkResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditChunkResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditChunkResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditchunkresult.FieldContextSummary) {
		fields = append(fields, auditchunkresult.FieldContextSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditChunkResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditChunkResultMutation) ClearField(name string) error {
	switch name {
	case auditchunkresult.FieldContextSummary:
		m.ClearContextSummary()
		return nil
	}
	return fmt.Errorf("unknown AuditChunkResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditChunkResultMutation) ResetField(name string) error {
	switch name {
	case auditchunkresult.FieldAuditID:
		m.ResetAuditID()
		return nil
	case auditchunkresult.FieldChunkID:
		m.ResetChunkID()
		return nil
	case auditchunkresult.FieldStatus:
		m.ResetStatus()
		return nil
	case auditchunkresult.FieldAnalysis:
		m.ResetAnalysis()
		return nil
	case auditchunkresult.FieldContextSummary:
		m.ResetContextSummary()
		return nil
	case auditchunkresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditChunkResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditChunkResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, auditchunkresult.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditChunkResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditchunkresult.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditChunkResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditChunkResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditChunkResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, auditchunkresult.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditChunkResultMutation) EdgeCleared(name string) bool {
	switch name {
	case auditchunkresult.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditChunkResultMutation) ClearEdge(name string) error {
	switch name {
	case auditchunkresult.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditChunkResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditChunkResultMutation) ResetEdge(name string) error {
	switch name {
	case auditchunkresult.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditChunkResult edge %s", name)
}

// AuditorQuestionMutation represents an operation that mutates the AuditorQuestion nodes in the graph.
type AuditorQuestionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	regulation_reference   *string
	question               *string
	priority               *int
	addpriority            *int
	rationale              *string
	related_flag_ids       *[]int
	appendrelated_flag_ids []int
	created_at             *time.Time
	clearedFields          map[string]struct{}
	audit                  *int
	clearedaudit           bool
	done                   bool
	oldValue               func(context.Context) (*AuditorQuestion, error)
	predicates             []predicate.AuditorQuestion
}

var _ ent.Mutation = (*AuditorQuestionMutation)(nil)

// auditorquestionOption allows management of the mutation configuration using functional options.
type auditorquestionOption func(*AuditorQuestionMutation)

// newAuditorQuestionMutation creates new mutation for the AuditorQuestion entity.
func newAuditorQuestionMutation(c config, op Op, opts ...auditorquestionOption) *AuditorQuestionMutation {
	m := &AuditorQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditorQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditorQuestionID sets the ID field of the mutation.
func withAuditorQuestionID(id int) auditorquestionOption {
	return func(m *AuditorQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditorQuestion
		)
		m.oldValue = func(ctx context.Context) (*AuditorQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditorQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditorQuestion sets the old AuditorQuestion of the mutation.
func withAuditorQuestion(node *AuditorQuestion) auditorquestionOption {
	return func(m *AuditorQuestionMutation) {
		m.oldValue = func(context.Context) (*AuditorQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditorQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditorQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditorQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditorQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditorQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditorQuestionMutation) SetAuditID(i int) {
	m.audit = &i
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditorQuestionMutation) AuditID() (r int, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditorQuestion entity.
// If the AuditorQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditorQuestionMutation) OldAuditID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditorQuestionMutation) ResetAuditID() {
	m.audit = nil
}

// SetRegulationReference sets the "regulation_reference" field.
func (m *AuditorQuestionMutation) SetRegulationReference(s string) {
	m.regulation_reference = &s
}

// RegulationReference returns the value of the "regulation_reference" field in the mutation.
func (m *AuditorQuestionMutation) RegulationReference() (r string, exists bool) {
	v := m.regulation_reference
	if v == nil {
		return
	}
	return *v, true
}

// OldRegulationReference returns the old "regulation_reference" field's value of the AuditorQuestion entity.
// If the AuditorQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditorQuestionMutation) OldRegulationReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegulationReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegulationReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegulationReference: %w", err)
	}
	return oldValue.RegulationReference, nil
}

// ResetRegulationReference resets all changes to the "regulation_reference" field.
func (m *AuditorQuestionMutation) ResetRegulationReference() {
	m.regulation_reference = nil
}

// SetQuestion sets the "question" field.
func (m *AuditorQuestionMutation) SetQuestion(s string) {
	m.question = &s
}

// Question returns the value of the "question" field in the mutation.
func (m *AuditorQuestionMutation) Question() (r string, exists bool) {
	v := m.question
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestion returns the old "question" field's value of the AuditorQuestion entity.
// If the AuditorQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditorQuestionMutation) OldQuestion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestion: %w", err)
	}
	return oldValue.Question, nil
}

// ResetQuestion resets all changes to the "question" field.
func (m *AuditorQuestionMutation) ResetQuestion() {
	m.question = nil
}

// SetPriority sets the "priority" field.
func (m *AuditorQuestionMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AuditorQuestionMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the AuditorQuestion entity.
// If the AuditorQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditorQuestionMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *AuditorQuestionMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *AuditorQuestionMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *AuditorQuestionMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetRationale sets the "rationale" field.
func (m *AuditorQuestionMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *AuditorQuestionMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the AuditorQuestion entity.
// If the AuditorQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditorQuestionMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *AuditorQuestionMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[auditorquestion.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *AuditorQuestionMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[auditorquestion.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *AuditorQuestionMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, auditorquestion.FieldRationale)
}

// SetRelatedFlagIds sets the "related_flag_ids" field.
func (m *AuditorQuestionMutation) SetRelatedFlagIds(i []int) {
	m.related_flag_ids = &i
	m.appendrelated_flag_ids = nil
}

// RelatedFlagIds returns the value of the "related_flag_ids" field in the mutation.
func (m *AuditorQuestionMutation) RelatedFlagIds() (r []int, exists bool) {
	v := m.related_flag_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedFlagIds returns the old "related_flag_ids" field's value of the AuditorQuestion entity.
// If the AuditorQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditorQuestionMutation) OldRelatedFlagIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedFlagIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedFlagIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedFlagIds: %w", err)
	}
	return oldValue.RelatedFlagIds, nil
}

// AppendRelatedFlagIds adds i to the "related_flag_ids" field.
func (m *AuditorQuestionMutation) AppendRelatedFlagIds(i []int) {
	m.appendrelated_flag_ids = append(m.appendrelated_flag_ids, i...)
}

// AppendedRelatedFlagIds returns the list of values that were appended to the "related_flag_ids" field in this mutation.
func (m *AuditorQuestionMutation) AppendedRelatedFlagIds() ([]int, bool) {
	if len(m.appendrelated_flag_ids) == 0 {
		return nil, false
	}
	return m.appendrelated_flag_ids, true
}

// ClearRelatedFlagIds clears the value of the "related_flag_ids" field.
func (m *AuditorQuestionMutation) ClearRelatedFlagIds() {
	m.related_flag_ids = nil
	m.appendrelated_flag_ids = nil
	m.clearedFields[auditorquestion.FieldRelatedFlagIds] = struct{}{}
}

// RelatedFlagIdsCleared returns if the "related_flag_ids" field was cleared in this mutation.
func (m *AuditorQuestionMutation) RelatedFlagIdsCleared() bool {
	_, ok := m.clearedFields[auditorquestion.FieldRelatedFlagIds]
	return ok
}

// ResetRelatedFlagIds resets all changes to the "related_flag_ids" field.
func (m *AuditorQuestionMutation) ResetRelatedFlagIds() {
	m.related_flag_ids = nil
	m.appendrelated_flag_ids = nil
	delete(m.clearedFields, auditorquestion.FieldRelatedFlagIds)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditorQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditorQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditorQuestion entity.
// If the AuditorQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditorQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditorQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditorQuestionMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[auditorquestion.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditorQuestionMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditorQuestionMutation) AuditIDs() (ids []int) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditorQuestionMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the AuditorQuestionMutation builder.
func (m *AuditorQuestionMutation) Where(ps ...predicate.AuditorQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditorQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditorQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditorQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditorQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditorQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditorQuestion).
func (m *AuditorQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditorQuestionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.audit != nil {
		fields = append(fields, auditorquestion.FieldAuditID)
	}
	if m.regulation_reference != nil {
		fields = append(fields, auditorquestion.FieldRegulationReference)
	}
	if m.question != nil {
		fields = append(fields, auditorquestion.FieldQuestion)
	}
	if m.priority != nil {
		fields = append(fields, auditorquestion.FieldPriority)
	}
	if m.rationale != nil {
		fields = append(fields, auditorquestion.FieldRationale)
	}
	if m.related_flag_ids != nil {
		fields = append(fields, auditorquestion.FieldRelatedFlagIds)
	}
	if m.created_at != nil {
		fields = append(fields, auditorquestion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditorQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditorquestion.FieldAuditID:
		return m.AuditID()
	case auditorquestion.FieldRegulationReference:
		return m.RegulationReference()
	case auditorquestion.FieldQuestion:
		return m.Question()
	case auditorquestion.FieldPriority:
		return m.Priority()
	case auditorquestion.FieldRationale:
		return m.Rationale()
	case auditorquestion.FieldRelatedFlagIds:
		return m.RelatedFlagIds()
	case auditorquestion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditorQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditorquestion.FieldAuditID:
		return m.OldAuditID(ctx)
	case auditorquestion.FieldRegulationReference:
		return m.OldRegulationReference(ctx)
	case auditorquestion.FieldQuestion:
		return m.OldQuestion(ctx)
	case auditorquestion.FieldPriority:
		return m.OldPriority(ctx)
	case auditorquestion.FieldRationale:
		return m.OldRationale(ctx)
	case auditorquestion.FieldRelatedFlagIds:
		return m.OldRelatedFlagIds(ctx)
	case auditorquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditorQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditorQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditorquestion.FieldAuditID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case auditorquestion.FieldRegulationReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegulationReference(v)
		return nil
	case auditorquestion.FieldQuestion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestion(v)
		return nil
	case auditorquestion.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case auditorquestion.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case auditorquestion.FieldRelatedFlagIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedFlagIds(v)
		return nil
	case auditorquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditorQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditorQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, auditorquestion.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditorQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditorquestion.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditorQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditorquestion.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown AuditorQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditorQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditorquestion.FieldRationale) {
		fields = append(fields, auditorquestion.FieldRationale)
	}
	if m.FieldCleared(auditorquestion.FieldRelatedFlagIds) {
		fields = append(fields, auditorquestion.FieldRelatedFlagIds)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditorQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditorQuestionMutation) ClearField(name string) error {
	switch name {
	case auditorquestion.FieldRationale:
		m.ClearRationale()
		return nil
	case auditorquestion.FieldRelatedFlagIds:
		m.ClearRelatedFlagIds()
		return nil
	}
	return fmt.Errorf("unknown AuditorQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditorQuestionMutation) ResetField(name string) error {
	switch name {
	case auditorquestion.FieldAuditID:
		m.ResetAuditID()
		return nil
	case auditorquestion.FieldRegulationReference:
		m.ResetRegulationReference()
		return nil
	case auditorquestion.FieldQuestion:
		m.ResetQuestion()
		return nil
	case auditorquestion.FieldPriority:
		m.ResetPriority()
		return nil
	case auditorquestion.FieldRationale:
		m.ResetRationale()
		return nil
	case auditorquestion.FieldRelatedFlagIds:
		m.ResetRelatedFlagIds()
		return nil
	case auditorquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditorQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditorQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, auditorquestion.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditorQuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditorquestion.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditorQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditorQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditorQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, auditorquestion.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditorQuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case auditorquestion.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditorQuestionMutation) ClearEdge(name string) error {
	switch name {
	case auditorquestion.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditorQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditorQuestionMutation) ResetEdge(name string) error {
	switch name {
	case auditorquestion.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditorQuestion edge %s", name)
}

// ChunkMutation represents an operation that mutates the Chunk nodes in the graph.
type ChunkMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	chunk_id           *string
	chunk_index        *int
	addchunk_index     *int
	section_path       *[]string
	appendsection_path []string
	parent_heading     *string
	content            *string
	token_count        *int
	addtoken_count     *int
	metadata           *map[string]interface{}
	embedding_status   *chunk.EmbeddingStatus
	created_at         *time.Time
	clearedFields      map[string]struct{}
	document           *int
	cleareddocument    bool
	done               bool
	oldValue           func(context.Context) (*Chunk, error)
	predicates         []predicate.Chunk
}

var _ ent.Mutation = (*ChunkMutation)(nil)

// chunkOption allows management of the mutation configuration using functional options.
type chunkOption func(*ChunkMutation)

// newChunkMutation creates new mutation for the Chunk entity.
func newChunkMutation(c config, op Op, opts ...chunkOption) *ChunkMutation {
	m := &ChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChunkID sets the ID field of the mutation.
func withChunkID(id int) chunkOption {
	return func(m *ChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *Chunk
		)
		m.oldValue = func(ctx context.Context) (*Chunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChunk sets the old Chunk of the mutation.
func withChunk(node *Chunk) chunkOption {
	return func(m *ChunkMutation) {
		m.oldValue = func(context.Context) (*Chunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChunkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChunkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChunkID sets the "chunk_id" field.
func (m *ChunkMutation) SetChunkID(s string) {
	m.chunk_id = &s
}

// ChunkID returns the value of the "chunk_id" field in the mutation.
func (m *ChunkMutation) ChunkID() (r string, exists bool) {
	v := m.chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkID returns the old "chunk_id" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkID: %w", err)
	}
	return oldValue.ChunkID, nil
}

// ResetChunkID resets all changes to the "chunk_id" field.
func (m *ChunkMutation) ResetChunkID() {
	m.chunk_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ChunkMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ChunkMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ChunkMutation) ResetDocumentID() {
	m.document = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *ChunkMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *ChunkMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *ChunkMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *ChunkMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *ChunkMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetSectionPath sets the "section_path" field.
func (m *ChunkMutation) SetSectionPath(s []string) {
	m.section_path = &s
	m.appendsection_path = nil
}

// SectionPath returns the value of the "section_path" field in the mutation.
func (m *ChunkMutation) SectionPath() (r []string, exists bool) {
	v := m.section_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSectionPath returns the old "section_path" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldSectionPath(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSectionPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSectionPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSectionPath: %w", err)
	}
	return oldValue.SectionPath, nil
}

// AppendSectionPath adds s to the "section_path" field.
func (m *ChunkMutation) AppendSectionPath(s []string) {
	m.appendsection_path = append(m.appendsection_path, s...)
}

// AppendedSectionPath returns the list of values that were appended to the "section_path" field in this mutation.
func (m *ChunkMutation) AppendedSectionPath() ([]string, bool) {
	if len(m.appendsection_path) == 0 {
		return nil, false
	}
	return m.appendsection_path, true
}

// ClearSectionPath clears the value of the "section_path" field.
func (m *ChunkMutation) ClearSectionPath() {
	m.section_path = nil
	m.appendsection_path = nil
	m.clearedFields[chunk.FieldSectionPath] = struct{}{}
}

// SectionPathCleared returns if the "section_path" field was cleared in this mutation.
func (m *ChunkMutation) SectionPathCleared() bool {
	_, ok := m.clearedFields[chunk.FieldSectionPath]
	return ok
}

// ResetSectionPath resets all changes to the "section_path" field.
func (m *ChunkMutation) ResetSectionPath() {
	m.section_path = nil
	m.appendsection_path = nil
	delete(m.clearedFields, chunk.FieldSectionPath)
}

// SetParentHeading sets the "parent_heading" field.
func (m *ChunkMutation) SetParentHeading(s string) {
	m.parent_heading = &s
}

// ParentHeading returns the value of the "parent_heading" field in the mutation.
func (m *ChunkMutation) ParentHeading() (r string, exists bool) {
	v := m.parent_heading
	if v == nil {
		return
	}
	return *v, true
}

// OldParentHeading returns the old "parent_heading" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldParentHeading(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentHeading is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentHeading requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentHeading: %w", err)
	}
	return oldValue.ParentHeading, nil
}

// ResetParentHeading resets all changes to the "parent_heading" field.
func (m *ChunkMutation) ResetParentHeading() {
	m.parent_heading = nil
}

// SetContent sets the "content" field.
func (m *ChunkMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChunkMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChunkMutation) ResetContent() {
	m.content = nil
}

// SetTokenCount sets the "token_count" field.
func (m *ChunkMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *ChunkMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *ChunkMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *ChunkMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *ChunkMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetMetadata sets the "metadata" field.
func (m *ChunkMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ChunkMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ChunkMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[chunk.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ChunkMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[chunk.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ChunkMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, chunk.FieldMetadata)
}

// SetEmbeddingStatus sets the "embedding_status" field.
func (m *ChunkMutation) SetEmbeddingStatus(cs chunk.EmbeddingStatus) {
	m.embedding_status = &cs
}

// EmbeddingStatus returns the value of the "embedding_status" field in the mutation.
func (m *ChunkMutation) EmbeddingStatus() (r chunk.EmbeddingStatus, exists bool) {
	v := m.embedding_status
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingStatus returns the old "embedding_status" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldEmbeddingStatus(ctx context.Context) (v chunk.EmbeddingStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingStatus: %w", err)
	}
	return oldValue.EmbeddingStatus, nil
}

// ResetEmbeddingStatus resets all changes to the "embedding_status" field.
func (m *ChunkMutation) ResetEmbeddingStatus() {
	m.embedding_status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChunkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChunkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chunk entity.
// If the Chunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChunkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ChunkMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[chunk.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ChunkMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ChunkMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ChunkMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ChunkMutation builder.
func (m *ChunkMutation) Where(ps ...predicate.Chunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chunk).
func (m *ChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChunkMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.chunk_id != nil {
		fields = append(fields, chunk.FieldChunkID)
	}
	if m.document != nil {
		fields = append(fields, chunk.FieldDocumentID)
	}
	if m.chunk_index != nil {
		fields = append(fields, chunk.FieldChunkIndex)
	}
	if m.section_path != nil {
		fields = append(fields, chunk.FieldSectionPath)
	}
	if m.parent_heading != nil {
		fields = append(fields, chunk.FieldParentHeading)
	}
	if m.content != nil {
		fields = append(fields, chunk.FieldContent)
	}
	if m.token_count != nil {
		fields = append(fields, chunk.FieldTokenCount)
	}
	if m.metadata != nil {
		fields = append(fields, chunk.FieldMetadata)
	}
	if m.embedding_status != nil {
		fields = append(fields, chunk.FieldEmbeddingStatus)
	}
	if m.created_at != nil {
		fields = append(fields, chunk.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chunk.FieldChunkID:
		return m.ChunkID()
	case chunk.FieldDocumentID:
		return m.DocumentID()
	case chunk.FieldChunkIndex:
		return m.ChunkIndex()
	case chunk.FieldSectionPath:
		return m.SectionPath()
	case chunk.FieldParentHeading:
		return m.ParentHeading()
	case chunk.FieldContent:
		return m.Content()
	case chunk.FieldTokenCount:
		return m.TokenCount()
	case chunk.FieldMetadata:
		return m.Metadata()
	case chunk.FieldEmbeddingStatus:
		return m.EmbeddingStatus()
	case chunk.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chunk.FieldChunkID:
		return m.OldChunkID(ctx)
	case chunk.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case chunk.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case chunk.FieldSectionPath:
		return m.OldSectionPath(ctx)
	case chunk.FieldParentHeading:
		return m.OldParentHeading(ctx)
	case chunk.FieldContent:
		return m.OldContent(ctx)
	case chunk.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case chunk.FieldMetadata:
		return m.OldMetadata(ctx)
	case chunk.FieldEmbeddingStatus:
		return m.OldEmbeddingStatus(ctx)
	case chunk.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chunk.FieldChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkID(v)
		return nil
	case chunk.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case chunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case chunk.FieldSectionPath:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSectionPath(v)
		return nil
	case chunk.FieldParentHeading:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentHeading(v)
		return nil
	case chunk.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case chunk.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case chunk.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case chunk.FieldEmbeddingStatus:
		v, ok := value.(chunk.EmbeddingStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingStatus(v)
		return nil
	case chunk.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChunkMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, chunk.FieldChunkIndex)
	}
	if m.addtoken_count != nil {
		fields = append(fields, chunk.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chunk.FieldChunkIndex:
		return m.AddedChunkIndex()
	case chunk.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case chunk.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown Chunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chunk.FieldSectionPath) {
		fields = append(fields, chunk.FieldSectionPath)
	}
	if m.FieldCleared(chunk.FieldMetadata) {
		fields = append(fields, chunk.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChunkMutation) ClearField(name string) error {
	switch name {
	case chunk.FieldSectionPath:
		m.ClearSectionPath()
		return nil
	case chunk.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Chunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChunkMutation) ResetField(name string) error {
	switch name {
	case chunk.FieldChunkID:
		m.ResetChunkID()
		return nil
	case chunk.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case chunk.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case chunk.FieldSectionPath:
		m.ResetSectionPath()
		return nil
	case chunk.FieldParentHeading:
		m.ResetParentHeading()
		return nil
	case chunk.FieldContent:
		m.ResetContent()
		return nil
	case chunk.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case chunk.FieldMetadata:
		m.ResetMetadata()
		return nil
	case chunk.FieldEmbeddingStatus:
		m.ResetEmbeddingStatus()
		return nil
	case chunk.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Chunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, chunk.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChunkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chunk.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChunkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, chunk.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChunkMutation) EdgeCleared(name string) bool {
	switch name {
	case chunk.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChunkMutation) ClearEdge(name string) error {
	switch name {
	case chunk.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown Chunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChunkMutation) ResetEdge(name string) error {
	switch name {
	case chunk.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown Chunk edge %s", name)
}

// CitationMutation represents an operation that mutates the Citation nodes in the graph.
type CitationMutation struct {
	config
	op            Op
	typ           string
	id            *int
	citation_type *citation.CitationType
	reference     *string
	clearedFields map[string]struct{}
	flag          *int
	clearedflag   bool
	done          bool
	oldValue      func(context.Context) (*Citation, error)
	predicates    []predicate.Citation
}

var _ ent.Mutation = (*CitationMutation)(nil)

// citationOption allows management of the mutation configuration using functional options.
type citationOption func(*CitationMutation)

// newCitationMutation creates new mutation for the Citation entity.
func newCitationMutation(c config, op Op, opts ...citationOption) *CitationMutation {
	m := &CitationMutation{
		config:        c,
		op:            op,
		typ:           TypeCitation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCitationID sets the ID field of the mutation.
func withCitationID(id int) citationOption {
	return func(m *CitationMutation) {
		var (
			err   error
			once  sync.Once
			value *Citation
		)
		m.oldValue = func(ctx context.Context) (*Citation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Citation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCitation sets the old Citation of the mutation.
func withCitation(node *Citation) citationOption {
	return func(m *CitationMutation) {
		m.oldValue = func(context.Context) (*Citation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CitationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CitationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CitationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CitationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Citation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFlagID sets the "flag_id" field.
func (m *CitationMutation) SetFlagID(i int) {
	m.flag = &i
}

// FlagID returns the value of the "flag_id" field in the mutation.
func (m *CitationMutation) FlagID() (r int, exists bool) {
	v := m.flag
	if v == nil {
		return
	}
	return *v, true
}

// OldFlagID returns the old "flag_id" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldFlagID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlagID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlagID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlagID: %w", err)
	}
	return oldValue.FlagID, nil
}

// ResetFlagID resets all changes to the "flag_id" field.
func (m *CitationMutation) ResetFlagID() {
	m.flag = nil
}

// SetCitationType sets the "citation_type" field.
func (m *CitationMutation) SetCitationType(ct citation.CitationType) {
	m.citation_type = &ct
}

// CitationType returns the value of the "citation_type" field in the mutation.
func (m *CitationMutation) CitationType() (r citation.CitationType, exists bool) {
	v := m.citation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldCitationType returns the old "citation_type" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldCitationType(ctx context.Context) (v citation.CitationType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCitationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCitationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCitationType: %w", err)
	}
	return oldValue.CitationType, nil
}

// ResetCitationType resets all changes to the "citation_type" field.
func (m *CitationMutation) ResetCitationType() {
	m.citation_type = nil
}

// SetReference sets the "reference" field.
func (m *CitationMutation) SetReference(s string) {
	m.reference = &s
}

// Reference returns the value of the "reference" field in the mutation.
func (m *CitationMutation) Reference() (r string, exists bool) {
	v := m.reference
	if v == nil {
		return
	}
	return *v, true
}

// OldReference returns the old "reference" field's value of the Citation entity.
// If the Citation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CitationMutation) OldReference(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReference is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReference requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReference: %w", err)
	}
	return oldValue.Reference, nil
}

// ResetReference resets all changes to the "reference" field.
func (m *CitationMutation) ResetReference() {
	m.reference = nil
}

// ClearFlag clears the "flag" edge to the Flag entity.
func (m *CitationMutation) ClearFlag() {
	m.clearedflag = true
	m.clearedFields[citation.FieldFlagID] = struct{}{}
}

// FlagCleared reports if the "flag" edge to the Flag entity was cleared.
func (m *CitationMutation) FlagCleared() bool {
	return m.clearedflag
}

// FlagIDs returns the "flag" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FlagID instead. It exists only for internal usage by the builders.
func (m *CitationMutation) FlagIDs() (ids []int) {
	if id := m.flag; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFlag resets all changes to the "flag" edge.
func (m *CitationMutation) ResetFlag() {
	m.flag = nil
	m.clearedflag = false
}

// Where appends a list predicates to the CitationMutation builder.
func (m *CitationMutation) Where(ps ...predicate.Citation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CitationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CitationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Citation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CitationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CitationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Citation).
func (m *CitationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CitationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.flag != nil {
		fields = append(fields, citation.FieldFlagID)
	}
	if m.citation_type != nil {
		fields = append(fields, citation.FieldCitationType)
	}
	if m.reference != nil {
		fields = append(fields, citation.FieldReference)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CitationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case citation.FieldFlagID:
		return m.FlagID()
	case citation.FieldCitationType:
		return m.CitationType()
	case citation.FieldReference:
		return m.Reference()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CitationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case citation.FieldFlagID:
		return m.OldFlagID(ctx)
	case citation.FieldCitationType:
		return m.OldCitationType(ctx)
	case citation.FieldReference:
		return m.OldReference(ctx)
	}
	return nil, fmt.Errorf("unknown Citation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CitationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case citation.FieldFlagID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlagID(v)
		return nil
	case citation.FieldCitationType:
		v, ok := value.(citation.CitationType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCitationType(v)
		return nil
	case citation.FieldReference:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReference(v)
		return nil
	}
	return fmt.Errorf("unknown Citation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CitationMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CitationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CitationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Citation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CitationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CitationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CitationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Citation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CitationMutation) ResetField(name string) error {
	switch name {
	case citation.FieldFlagID:
		m.ResetFlagID()
		return nil
	case citation.FieldCitationType:
		m.ResetCitationType()
		return nil
	case citation.FieldReference:
		m.ResetReference()
		return nil
	}
	return fmt.Errorf("unknown Citation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CitationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.flag != nil {
		edges = append(edges, citation.EdgeFlag)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CitationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case citation.EdgeFlag:
		if id := m.flag; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CitationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CitationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CitationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedflag {
		edges = append(edges, citation.EdgeFlag)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CitationMutation) EdgeCleared(name string) bool {
	switch name {
	case citation.EdgeFlag:
		return m.clearedflag
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CitationMutation) ClearEdge(name string) error {
	switch name {
	case citation.EdgeFlag:
		m.ClearFlag()
		return nil
	}
	return fmt.Errorf("unknown Citation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CitationMutation) ResetEdge(name string) error {
	switch name {
	case citation.EdgeFlag:
		m.ResetFlag()
		return nil
	}
	return fmt.Errorf("unknown Citation edge %s", name)
}

// ComplianceScoreMutation represents an operation that mutates the ComplianceScore nodes in the graph.
type ComplianceScoreMutation struct {
	config
	op               Op
	typ              string
	id               *int
	overall_score    *float64
	addoverall_score *float64
	red_count        *int
	addred_count     *int
	yellow_count     *int
	addyellow_count  *int
	green_count      *int
	addgreen_count   *int
	total_flags      *int
	addtotal_flags   *int
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	audit            *int
	clearedaudit     bool
	done             bool
	oldValue         func(context.Context) (*ComplianceScore, error)
	predicates       []predicate.ComplianceScore
}

var _ ent.Mutation = (*ComplianceScoreMutation)(nil)

// compliancescoreOption allows management of the mutation configuration using functional options.
type compliancescoreOption func(*ComplianceScoreMutation)

// newComplianceScoreMutation creates new mutation for the ComplianceScore entity.
func newComplianceScoreMutation(c config, op Op, opts ...compliancescoreOption) *ComplianceScoreMutation {
	m := &ComplianceScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeComplianceScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComplianceScoreID sets the ID field of the mutation.
func withComplianceScoreID(id int) compliancescoreOption {
	return func(m *ComplianceScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *ComplianceScore
		)
		m.oldValue = func(ctx context.Context) (*ComplianceScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ComplianceScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComplianceScore sets the old ComplianceScore of the mutation.
func withComplianceScore(node *ComplianceScore) compliancescoreOption {
	return func(m *ComplianceScoreMutation) {
		m.oldValue = func(context.Context) (*ComplianceScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComplianceScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComplianceScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComplianceScoreMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComplianceScoreMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ComplianceScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *ComplianceScoreMutation) SetAuditID(i int) {
	m.audit = &i
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *ComplianceScoreMutation) AuditID() (r int, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the ComplianceScore entity.
// If the ComplianceScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceScoreMutation) OldAuditID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *ComplianceScoreMutation) ResetAuditID() {
	m.audit = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *ComplianceScoreMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *ComplianceScoreMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the ComplianceScore entity.
// If the ComplianceScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceScoreMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *ComplianceScoreMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *ComplianceScoreMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *ComplianceScoreMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetRedCount sets the "red_count" field.
func (m *ComplianceScoreMutation) SetRedCount(i int) {
	m.red_count = &i
	m.addred_count = nil
}

// RedCount returns the value of the "red_count" field in the mutation.
func (m *ComplianceScoreMutation) RedCount() (r int, exists bool) {
	v := m.red_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRedCount returns the old "red_count" field's value of the ComplianceScore entity.
// If the ComplianceScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceScoreMutation) OldRedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRedCount: %w", err)
	}
	return oldValue.RedCount, nil
}

// AddRedCount adds i to the "red_count" field.
func (m *ComplianceScoreMutation) AddRedCount(i int) {
	if m.addred_count != nil {
		*m.addred_count += i
	} else {
		m.addred_count = &i
	}
}

// AddedRedCount returns the value that was added to the "red_count" field in this mutation.
func (m *ComplianceScoreMutation) AddedRedCount() (r int, exists bool) {
	v := m.addred_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRedCount resets all changes to the "red_count" field.
func (m *ComplianceScoreMutation) ResetRedCount() {
	m.red_count = nil
	m.addred_count = nil
}

// SetYellowCount sets the "yellow_count" field.
func (m *ComplianceScoreMutation) SetYellowCount(i int) {
	m.yellow_count = &i
	m.addyellow_count = nil
}

// YellowCount returns the value of the "yellow_count" field in the mutation.
func (m *ComplianceScoreMutation) YellowCount() (r int, exists bool) {
	v := m.yellow_count
	if v == nil {
		return
	}
	return *v, true
}

// OldYellowCount returns the old "yellow_count" field's value of the ComplianceScore entity.
// If the ComplianceScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceScoreMutation) OldYellowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYellowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYellowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYellowCount: %w", err)
	}
	return oldValue.YellowCount, nil
}

// AddYellowCount adds i to the "yellow_count" field.
func (m *ComplianceScoreMutation) AddYellowCount(i int) {
	if m.addyellow_count != nil {
		*m.addyellow_count += i
	} else {
		m.addyellow_count = &i
	}
}

// AddedYellowCount returns the value that was added to the "yellow_count" field in this mutation.
func (m *ComplianceScoreMutation) AddedYellowCount() (r int, exists bool) {
	v := m.addyellow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetYellowCount resets all changes to the "yellow_count" field.
func (m *ComplianceScoreMutation) ResetYellowCount() {
	m.yellow_count = nil
	m.addyellow_count = nil
}

// SetGreenCount sets the "green_count" field.
func (m *ComplianceScoreMutation) SetGreenCount(i int) {
	m.green_count = &i
	m.addgreen_count = nil
}

// GreenCount returns the value of the "green_count" field in the mutation.
func (m *ComplianceScoreMutation) GreenCount() (r int, exists bool) {
	v := m.green_count
	if v == nil {
		return
	}
	return *v, true
}

// OldGreenCount returns the old "green_count" field's value of the ComplianceScore entity.
// If the ComplianceScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceScoreMutation) OldGreenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGreenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGreenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGreenCount: %w", err)
	}
	return oldValue.GreenCount, nil
}

// AddGreenCount adds i to the "green_count" field.
func (m *ComplianceScoreMutation) AddGreenCount(i int) {
	if m.addgreen_count != nil {
		*m.addgreen_count += i
	} else {
		m.addgreen_count = &i
	}
}

// AddedGreenCount returns the value that was added to the "green_count" field in this mutation.
func (m *ComplianceScoreMutation) AddedGreenCount() (r int, exists bool) {
	v := m.addgreen_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetGreenCount resets all changes to the "green_count" field.
func (m *ComplianceScoreMutation) ResetGreenCount() {
	m.green_count = nil
	m.addgreen_count = nil
}

// SetTotalFlags sets the "total_flags" field.
func (m *ComplianceScoreMutation) SetTotalFlags(i int) {
	m.total_flags = &i
	m.addtotal_flags = nil
}

// TotalFlags returns the value of the "total_flags" field in the mutation.
func (m *ComplianceScoreMutation) TotalFlags() (r int, exists bool) {
	v := m.total_flags
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFlags returns the old "total_flags" field's value of the ComplianceScore entity.
// If the ComplianceScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceScoreMutation) OldTotalFlags(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFlags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFlags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFlags: %w", err)
	}
	return oldValue.TotalFlags, nil
}

// AddTotalFlags adds i to the "total_flags" field.
func (m *ComplianceScoreMutation) AddTotalFlags(i int) {
	if m.addtotal_flags != nil {
		*m.addtotal_flags += i
	} else {
		m.addtotal_flags = &i
	}
}

// AddedTotalFlags returns the value that was added to the "total_flags" field in this mutation.
func (m *ComplianceScoreMutation) AddedTotalFlags() (r int, exists bool) {
	v := m.addtotal_flags
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFlags resets all changes to the "total_flags" field.
func (m *ComplianceScoreMutation) ResetTotalFlags() {
	m.total_flags = nil
	m.addtotal_flags = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ComplianceScoreMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ComplianceScoreMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ComplianceScore entity.
// If the ComplianceScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceScoreMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ComplianceScoreMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ComplianceScoreMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ComplianceScoreMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ComplianceScore entity.
// If the ComplianceScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComplianceScoreMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ComplianceScoreMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *ComplianceScoreMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[compliancescore.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *ComplianceScoreMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *ComplianceScoreMutation) AuditIDs() (ids []int) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *ComplianceScoreMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the ComplianceScoreMutation builder.
func (m *ComplianceScoreMutation) Where(ps ...predicate.ComplianceScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComplianceScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComplianceScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ComplianceScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComplianceScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComplianceScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ComplianceScore).
func (m *ComplianceScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComplianceScoreMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.audit != nil {
		fields = append(fields, compliancescore.FieldAuditID)
	}
	if m.overall_score != nil {
		fields = append(fields, compliancescore.FieldOverallScore)
	}
	if m.red_count != nil {
		fields = append(fields, compliancescore.FieldRedCount)
	}
	if m.yellow_count != nil {
		fields = append(fields, compliancescore.FieldYellowCount)
	}
	if m.green_count != nil {
		fields = append(fields, compliancescore.FieldGreenCount)
	}
	if m.total_flags != nil {
		fields = append(fields, compliancescore.FieldTotalFlags)
	}
	if m.created_at != nil {
		fields = append(fields, compliancescore.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, compliancescore.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComplianceScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case compliancescore.FieldAuditID:
		return m.AuditID()
	case compliancescore.FieldOverallScore:
		return m.OverallScore()
	case compliancescore.FieldRedCount:
		return m.RedCount()
	case compliancescore.FieldYellowCount:
		return m.YellowCount()
	case compliancescore.FieldGreenCount:
		return m.GreenCount()
	case compliancescore.FieldTotalFlags:
		return m.TotalFlags()
	case compliancescore.FieldCreatedAt:
		return m.CreatedAt()
	case compliancescore.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComplianceScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case compliancescore.FieldAuditID:
		return m.OldAuditID(ctx)
	case compliancescore.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case compliancescore.FieldRedCount:
		return m.OldRedCount(ctx)
	case compliancescore.FieldYellowCount:
		return m.OldYellowCount(ctx)
	case compliancescore.FieldGreenCount:
		return m.OldGreenCount(ctx)
	case compliancescore.FieldTotalFlags:
		return m.OldTotalFlags(ctx)
	case compliancescore.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case compliancescore.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ComplianceScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComplianceScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case compliancescore.FieldAuditID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case compliancescore.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case compliancescore.FieldRedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRedCount(v)
		return nil
	case compliancescore.FieldYellowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYellowCount(v)
		return nil
	case compliancescore.FieldGreenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGreenCount(v)
		return nil
	case compliancescore.FieldTotalFlags:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFlags(v)
		return nil
	case compliancescore.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case compliancescore.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ComplianceScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComplianceScoreMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, compliancescore.FieldOverallScore)
	}
	if m.addred_count != nil {
		fields = append(fields, compliancescore.FieldRedCount)
	}
	if m.addyellow_count != nil {
		fields = append(fields, compliancescore.FieldYellowCount)
	}
	if m.addgreen_count != nil {
		fields = append(fields, compliancescore.FieldGreenCount)
	}
	if m.addtotal_flags != nil {
		fields = append(fields, compliancescore.FieldTotalFlags)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComplianceScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case compliancescore.FieldOverallScore:
		return m.AddedOverallScore()
	case compliancescore.FieldRedCount:
		return m.AddedRedCount()
	case compliancescore.FieldYellowCount:
		return m.AddedYellowCount()
	case compliancescore.FieldGreenCount:
		return m.AddedGreenCount()
	case compliancescore.FieldTotalFlags:
		return m.AddedTotalFlags()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComplianceScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case compliancescore.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case compliancescore.FieldRedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRedCount(v)
		return nil
	case compliancescore.FieldYellowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYellowCount(v)
		return nil
	case compliancescore.FieldGreenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGreenCount(v)
		return nil
	case compliancescore.FieldTotalFlags:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFlags(v)
		return nil
	}
	return fmt.Errorf("unknown ComplianceScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComplianceScoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComplianceScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComplianceScoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ComplianceScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComplianceScoreMutation) ResetField(name string) error {
	switch name {
	case compliancescore.FieldAuditID:
		m.ResetAuditID()
		return nil
	case compliancescore.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case compliancescore.FieldRedCount:
		m.ResetRedCount()
		return nil
	case compliancescore.FieldYellowCount:
		m.ResetYellowCount()
		return nil
	case compliancescore.FieldGreenCount:
		m.ResetGreenCount()
		return nil
	case compliancescore.FieldTotalFlags:
		m.ResetTotalFlags()
		return nil
	case compliancescore.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case compliancescore.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ComplianceScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComplianceScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, compliancescore.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComplianceScoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case compliancescore.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComplianceScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComplianceScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComplianceScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, compliancescore.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComplianceScoreMutation) EdgeCleared(name string) bool {
	switch name {
	case compliancescore.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComplianceScoreMutation) ClearEdge(name string) error {
	switch name {
	case compliancescore.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown ComplianceScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComplianceScoreMutation) ResetEdge(name string) error {
	switch name {
	case compliancescore.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown ComplianceScore edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op            Op
	typ           string
	id            *int
	external_id   *string
	filename      *string
	stored_path   *string
	size_bytes    *int64
	addsize_bytes *int64
	content_hash  *string
	source_type   *document.SourceType
	organization  *string
	status        *document.Status
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	chunks        map[int]struct{}
	removedchunks map[int]struct{}
	clearedchunks bool
	audits        map[int]struct{}
	removedaudits map[int]struct{}
	clearedaudits bool
	done          bool
	oldValue      func(context.Context) (*Document, error)
	predicates    []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id int) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *DocumentMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *DocumentMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *DocumentMutation) ResetExternalID() {
	m.external_id = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetStoredPath sets the "stored_path" field.
func (m *DocumentMutation) SetStoredPath(s string) {
	m.stored_path = &s
}

// StoredPath returns the value of the "stored_path" field in the mutation.
func (m *DocumentMutation) StoredPath() (r string, exists bool) {
	v := m.stored_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredPath returns the old "stored_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoredPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredPath: %w", err)
	}
	return oldValue.StoredPath, nil
}

// ResetStoredPath resets all changes to the "stored_path" field.
func (m *DocumentMutation) ResetStoredPath() {
	m.stored_path = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *DocumentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *DocumentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *DocumentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *DocumentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *DocumentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetSourceType sets the "source_type" field.
func (m *DocumentMutation) SetSourceType(dt document.SourceType) {
	m.source_type = &dt
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *DocumentMutation) SourceType() (r document.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceType(ctx context.Context) (v document.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *DocumentMutation) ResetSourceType() {
	m.source_type = nil
}

// SetOrganization sets the "organization" field.
func (m *DocumentMutation) SetOrganization(s string) {
	m.organization = &s
}

// Organization returns the value of the "organization" field in the mutation.
func (m *DocumentMutation) Organization() (r string, exists bool) {
	v := m.organization
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganization returns the old "organization" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldOrganization(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganization is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganization requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganization: %w", err)
	}
	return oldValue.Organization, nil
}

// ClearOrganization clears the value of the "organization" field.
func (m *DocumentMutation) ClearOrganization() {
	m.organization = nil
	m.clearedFields[document.FieldOrganization] = struct{}{}
}

// OrganizationCleared returns if the "organization" field was cleared in this mutation.
func (m *DocumentMutation) OrganizationCleared() bool {
	_, ok := m.clearedFields[document.FieldOrganization]
	return ok
}

// ResetOrganization resets all changes to the "organization" field.
func (m *DocumentMutation) ResetOrganization() {
	m.organization = nil
	delete(m.clearedFields, document.FieldOrganization)
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(d document.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r document.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v document.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddChunkIDs adds the "chunks" edge to the Chunk entity by ids.
func (m *DocumentMutation) AddChunkIDs(ids ...int) {
	if m.chunks == nil {
		m.chunks = make(map[int]struct{})
	}
	for i := range ids {
		m.chunks[ids[i]] = struct{}{}
	}
}

// ClearChunks clears the "chunks" edge to the Chunk entity.
func (m *DocumentMutation) ClearChunks() {
	m.clearedchunks = true
}

// ChunksCleared reports if the "chunks" edge to the Chunk entity was cleared.
func (m *DocumentMutation) ChunksCleared() bool {
	return m.clearedchunks
}

// RemoveChunkIDs removes the "chunks" edge to the Chunk entity by IDs.
func (m *DocumentMutation) RemoveChunkIDs(ids ...int) {
	if m.removedchunks == nil {
		m.removedchunks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.chunks, ids[i])
		m.removedchunks[ids[i]] = struct{}{}
	}
}

// RemovedChunks returns the removed IDs of the "chunks" edge to the Chunk entity.
func (m *DocumentMutation) RemovedChunksIDs() (ids []int) {
	for id := range m.removedchunks {
		ids = append(ids, id)
	}
	return
}

// ChunksIDs returns the "chunks" edge IDs in the mutation.
func (m *DocumentMutation) ChunksIDs() (ids []int) {
	for id := range m.chunks {
		ids = append(ids, id)
	}
	return
}

// ResetChunks resets all changes to the "chunks" edge.
func (m *DocumentMutation) ResetChunks() {
	m.chunks = nil
	m.clearedchunks = false
	m.removedchunks = nil
}

// AddAuditIDs adds the "audits" edge to the Audit entity by ids.
func (m *DocumentMutation) AddAuditIDs(ids ...int) {
	if m.audits == nil {
		m.audits = make(map[int]struct{})
	}
	for i := range ids {
		m.audits[ids[i]] = struct{}{}
	}
}

// ClearAudits clears the "audits" edge to the Audit entity.
func (m *DocumentMutation) ClearAudits() {
	m.clearedaudits = true
}

// AuditsCleared reports if the "audits" edge to the Audit entity was cleared.
func (m *DocumentMutation) AuditsCleared() bool {
	return m.clearedaudits
}

// RemoveAuditIDs removes the "audits" edge to the Audit entity by IDs.
func (m *DocumentMutation) RemoveAuditIDs(ids ...int) {
	if m.removedaudits == nil {
		m.removedaudits = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.audits, ids[i])
		m.removedaudits[ids[i]] = struct{}{}
	}
}

// RemovedAudits returns the removed IDs of the "audits" edge to the Audit entity.
func (m *DocumentMutation) RemovedAuditsIDs() (ids []int) {
	for id := range m.removedaudits {
		ids = append(ids, id)
	}
	return
}

// AuditsIDs returns the "audits" edge IDs in the mutation.
func (m *DocumentMutation) AuditsIDs() (ids []int) {
	for id := range m.audits {
		ids = append(ids, id)
	}
	return
}

// ResetAudits resets all changes to the "audits" edge.
func (m *DocumentMutation) ResetAudits() {
	m.audits = nil
	m.clearedaudits = false
	m.removedaudits = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.external_id != nil {
		fields = append(fields, document.FieldExternalID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.stored_path != nil {
		fields = append(fields, document.FieldStoredPath)
	}
	if m.size_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.source_type != nil {
		fields = append(fields, document.FieldSourceType)
	}
	if m.organization != nil {
		fields = append(fields, document.FieldOrganization)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldExternalID:
		return m.ExternalID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldStoredPath:
		return m.StoredPath()
	case document.FieldSizeBytes:
		return m.SizeBytes()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldSourceType:
		return m.SourceType()
	case document.FieldOrganization:
		return m.Organization()
	case document.FieldStatus:
		return m.Status()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldExternalID:
		return m.OldExternalID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldStoredPath:
		return m.OldStoredPath(ctx)
	case document.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldSourceType:
		return m.OldSourceType(ctx)
	case document.FieldOrganization:
		return m.OldOrganization(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldStoredPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredPath(v)
		return nil
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldSourceType:
		v, ok := value.(document.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case document.FieldOrganization:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganization(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(document.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSizeBytes:
		return m.AddedSizeBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldOrganization) {
		fields = append(fields, document.FieldOrganization)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldOrganization:
		m.ClearOrganization()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldExternalID:
		m.ResetExternalID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldStoredPath:
		m.ResetStoredPath()
		return nil
	case document.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldSourceType:
		m.ResetSourceType()
		return nil
	case document.FieldOrganization:
		m.ResetOrganization()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.chunks != nil {
		edges = append(edges, document.EdgeChunks)
	}
	if m.audits != nil {
		edges = append(edges, document.EdgeAudits)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.chunks))
		for id := range m.chunks {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.audits))
		for id := range m.audits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchunks != nil {
		edges = append(edges, document.EdgeChunks)
	}
	if m.removedaudits != nil {
		edges = append(edges, document.EdgeAudits)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.removedchunks))
		for id := range m.removedchunks {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.removedaudits))
		for id := range m.removedaudits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchunks {
		edges = append(edges, document.EdgeChunks)
	}
	if m.clearedaudits {
		edges = append(edges, document.EdgeAudits)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeChunks:
		return m.clearedchunks
	case document.EdgeAudits:
		return m.clearedaudits
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeChunks:
		m.ResetChunks()
		return nil
	case document.EdgeAudits:
		m.ResetAudits()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// FlagMutation represents an operation that mutates the Flag nodes in the graph.
type FlagMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	chunk_id              *string
	flag_type             *flag.FlagType
	severity_score        *int
	addseverity_score     *int
	findings              *string
	gaps                  *[]string
	appendgaps            []string
	recommendations       *[]string
	appendrecommendations []string
	analysis_metadata     *map[string]interface{}
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	audit                 *int
	clearedaudit          bool
	citations             map[int]struct{}
	removedcitations      map[int]struct{}
	clearedcitations      bool
	done                  bool
	oldValue              func(context.Context) (*Flag, error)
	predicates            []predicate.Flag
}

var _ ent.Mutation = (*FlagMutation)(nil)

// flagOption allows management of the mutation configuration using functional options.
type flagOption func(*FlagMutation)

// newFlagMutation creates new mutation for the Flag entity.
func newFlagMutation(c config, op Op, opts ...flagOption) *FlagMutation {
	m := &FlagMutation{
		config:        c,
		op:            op,
		typ:           TypeFlag,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFlagID sets the ID field of the mutation.
func withFlagID(id int) flagOption {
	return func(m *FlagMutation) {
		var (
			err   error
			once  sync.Once
			value *Flag
		)
		m.oldValue = func(ctx context.Context) (*Flag, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Flag.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFlag sets the old Flag of the mutation.
func withFlag(node *Flag) flagOption {
	return func(m *FlagMutation) {
		m.oldValue = func(context.Context) (*Flag, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FlagMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FlagMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FlagMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FlagMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Flag.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *FlagMutation) SetAuditID(i int) {
	m.audit = &i
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *FlagMutation) AuditID() (r int, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldAuditID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *FlagMutation) ResetAuditID() {
	m.audit = nil
}

// SetChunkID sets the "chunk_id" field.
func (m *FlagMutation) SetChunkID(s string) {
	m.chunk_id = &s
}

// ChunkID returns the value of the "chunk_id" field in the mutation.
func (m *FlagMutation) ChunkID() (r string, exists bool) {
	v := m.chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkID returns the old "chunk_id" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkID: %w", err)
	}
	return oldValue.ChunkID, nil
}

// ResetChunkID resets all changes to the "chunk_id" field.
func (m *FlagMutation) ResetChunkID() {
	m.chunk_id = nil
}

// SetFlagType sets the "flag_type" field.
func (m *FlagMutation) SetFlagType(ft flag.FlagType) {
	m.flag_type = &ft
}

// FlagType returns the value of the "flag_type" field in the mutation.
func (m *FlagMutation) FlagType() (r flag.FlagType, exists bool) {
	v := m.flag_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFlagType returns the old "flag_type" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldFlagType(ctx context.Context) (v flag.FlagType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlagType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlagType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlagType: %w", err)
	}
	return oldValue.FlagType, nil
}

// ResetFlagType resets all changes to the "flag_type" field.
func (m *FlagMutation) ResetFlagType() {
	m.flag_type = nil
}

// SetSeverityScore sets the "severity_score" field.
func (m *FlagMutation) SetSeverityScore(i int) {
	m.severity_score = &i
	m.addseverity_score = nil
}

// SeverityScore returns the value of the "severity_score" field in the mutation.
func (m *FlagMutation) SeverityScore() (r int, exists bool) {
	v := m.severity_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityScore returns the old "severity_score" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldSeverityScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityScore: %w", err)
	}
	return oldValue.SeverityScore, nil
}

// AddSeverityScore adds i to the "severity_score" field.
func (m *FlagMutation) AddSeverityScore(i int) {
	if m.addseverity_score != nil {
		*m.addseverity_score += i
	} else {
		m.addseverity_score = &i
	}
}

// AddedSeverityScore returns the value that was added to the "severity_score" field in this mutation.
func (m *FlagMutation) AddedSeverityScore() (r int, exists bool) {
	v := m.addseverity_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeverityScore resets all changes to the "severity_score" field.
func (m *FlagMutation) ResetSeverityScore() {
	m.severity_score = nil
	m.addseverity_score = nil
}

// SetFindings sets the "findings" field.
func (m *FlagMutation) SetFindings(s string) {
	m.findings = &s
}

// Findings returns the value of the "findings" field in the mutation.
func (m *FlagMutation) Findings() (r string, exists bool) {
	v := m.findings
	if v == nil {
		return
	}
	return *v, true
}

// OldFindings returns the old "findings" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldFindings(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFindings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFindings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFindings: %w", err)
	}
	return oldValue.Findings, nil
}

// ResetFindings resets all changes to the "findings" field.
func (m *FlagMutation) ResetFindings() {
	m.findings = nil
}

// SetGaps sets the "gaps" field.
func (m *FlagMutation) SetGaps(s []string) {
	m.gaps = &s
	m.appendgaps = nil
}

// Gaps returns the value of the "gaps" field in the mutation.
func (m *FlagMutation) Gaps() (r []string, exists bool) {
	v := m.gaps
	if v == nil {
		return
	}
	return *v, true
}

// OldGaps returns the old "gaps" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldGaps(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGaps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGaps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGaps: %w", err)
	}
	return oldValue.Gaps, nil
}

// AppendGaps adds s to the "gaps" field.
func (m *FlagMutation) AppendGaps(s []string) {
	m.appendgaps = append(m.appendgaps, s...)
}

// AppendedGaps returns the list of values that were appended to the "gaps" field in this mutation.
func (m *FlagMutation) AppendedGaps() ([]string, bool) {
	if len(m.appendgaps) == 0 {
		return nil, false
	}
	return m.appendgaps, true
}

// ClearGaps clears the value of the "gaps" field.
func (m *FlagMutation) ClearGaps() {
	m.gaps = nil
	m.appendgaps = nil
	m.clearedFields[flag.FieldGaps] = struct{}{}
}

// GapsCleared returns if the "gaps" field was cleared in this mutation.
func (m *FlagMutation) GapsCleared() bool {
	_, ok := m.clearedFields[flag.FieldGaps]
	return ok
}

// ResetGaps resets all changes to the "gaps" field.
func (m *FlagMutation) ResetGaps() {
	m.gaps = nil
	m.appendgaps = nil
	delete(m.clearedFields, flag.FieldGaps)
}

// SetRecommendations sets the "recommendations" field.
func (m *FlagMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *FlagMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *FlagMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *FlagMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *FlagMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[flag.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *FlagMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[flag.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *FlagMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, flag.FieldRecommendations)
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (m *FlagMutation) SetAnalysisMetadata(value map[string]interface{}) {
	m.analysis_metadata = &value
}

// AnalysisMetadata returns the value of the "analysis_metadata" field in the mutation.
func (m *FlagMutation) AnalysisMetadata() (r map[string]interface{}, exists bool) {
	v := m.analysis_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisMetadata returns the old "analysis_metadata" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldAnalysisMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisMetadata: %w", err)
	}
	return oldValue.AnalysisMetadata, nil
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (m *FlagMutation) ClearAnalysisMetadata() {
	m.analysis_metadata = nil
	m.clearedFields[flag.FieldAnalysisMetadata] = struct{}{}
}

// AnalysisMetadataCleared returns if the "analysis_metadata" field was cleared in this mutation.
func (m *FlagMutation) AnalysisMetadataCleared() bool {
	_, ok := m.clearedFields[flag.FieldAnalysisMetadata]
	return ok
}

// ResetAnalysisMetadata resets all changes to the "analysis_metadata" field.
func (m *FlagMutation) ResetAnalysisMetadata() {
	m.analysis_metadata = nil
	delete(m.clearedFields, flag.FieldAnalysisMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *FlagMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FlagMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FlagMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FlagMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FlagMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Flag entity.
// If the Flag object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FlagMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FlagMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *FlagMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[flag.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *FlagMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *FlagMutation) AuditIDs() (ids []int) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *FlagMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// AddCitationIDs adds the "citations" edge to the Citation entity by ids.
func (m *FlagMutation) AddCitationIDs(ids ...int) {
	if m.citations == nil {
		m.citations = make(map[int]struct{})
	}
	for i := range ids {
		m.citations[ids[i]] = struct{}{}
	}
}

// ClearCitations clears the "citations" edge to the Citation entity.
func (m *FlagMutation) ClearCitations() {
	m.clearedcitations = true
}

// CitationsCleared reports if the "citations" edge to the Citation entity was cleared.
func (m *FlagMutation) CitationsCleared() bool {
	return m.clearedcitations
}

// RemoveCitationIDs removes the "citations" edge to the Citation entity by IDs.
func (m *FlagMutation) RemoveCitationIDs(ids ...int) {
	if m.removedcitations == nil {
		m.removedcitations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.citations, ids[i])
		m.removedcitations[ids[i]] = struct{}{}
	}
}

// RemovedCitations returns the removed IDs of the "citations" edge to the Citation entity.
func (m *FlagMutation) RemovedCitationsIDs() (ids []int) {
	for id := range m.removedcitations {
		ids = append(ids, id)
	}
	return
}

// CitationsIDs returns the "citations" edge IDs in the mutation.
func (m *FlagMutation) CitationsIDs() (ids []int) {
	for id := range m.citations {
		ids = append(ids, id)
	}
	return
}

// ResetCitations resets all changes to the "citations" edge.
func (m *FlagMutation) ResetCitations() {
	m.citations = nil
	m.clearedcitations = false
	m.removedcitations = nil
}

// Where appends a list predicates to the FlagMutation builder.
func (m *FlagMutation) Where(ps ...predicate.Flag) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FlagMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FlagMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Flag, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FlagMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FlagMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Flag).
func (m *FlagMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FlagMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.audit != nil {
		fields = append(fields, flag.FieldAuditID)
	}
	if m.chunk_id != nil {
		fields = append(fields, flag.FieldChunkID)
	}
	if m.flag_type != nil {
		fields = append(fields, flag.FieldFlagType)
	}
	if m.severity_score != nil {
		fields = append(fields, flag.FieldSeverityScore)
	}
	if m.findings != nil {
		fields = append(fields, flag.FieldFindings)
	}
	if m.gaps != nil {
		fields = append(fields, flag.FieldGaps)
	}
	if m.recommendations != nil {
		fields = append(fields, flag.FieldRecommendations)
	}
	if m.analysis_metadata != nil {
		fields = append(fields, flag.FieldAnalysisMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, flag.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, flag.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FlagMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case flag.FieldAuditID:
		return m.AuditID()
	case flag.FieldChunkID:
		return m.ChunkID()
	case flag.FieldFlagType:
		return m.FlagType()
	case flag.FieldSeverityScore:
		return m.SeverityScore()
	case flag.FieldFindings:
		return m.Findings()
	case flag.FieldGaps:
		return m.Gaps()
	case flag.FieldRecommendations:
		return m.Recommendations()
	case flag.FieldAnalysisMetadata:
		return m.AnalysisMetadata()
	case flag.FieldCreatedAt:
		return m.CreatedAt()
	case flag.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FlagMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case flag.FieldAuditID:
		return m.OldAuditID(ctx)
	case flag.FieldChunkID:
		return m.OldChunkID(ctx)
	case flag.FieldFlagType:
		return m.OldFlagType(ctx)
	case flag.FieldSeverityScore:
		return m.OldSeverityScore(ctx)
	case flag.FieldFindings:
		return m.OldFindings(ctx)
	case flag.FieldGaps:
		return m.OldGaps(ctx)
	case flag.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case flag.FieldAnalysisMetadata:
		return m.OldAnalysisMetadata(ctx)
	case flag.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case flag.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Flag field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlagMutation) SetField(name string, value ent.Value) error {
	switch name {
	case flag.FieldAuditID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case flag.FieldChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkID(v)
		return nil
	case flag.FieldFlagType:
		v, ok := value.(flag.FlagType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlagType(v)
		return nil
	case flag.FieldSeverityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityScore(v)
		return nil
	case flag.FieldFindings:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFindings(v)
		return nil
	case flag.FieldGaps:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGaps(v)
		return nil
	case flag.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case flag.FieldAnalysisMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisMetadata(v)
		return nil
	case flag.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case flag.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Flag field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FlagMutation) AddedFields() []string {
	var fields []string
	if m.addseverity_score != nil {
		fields = append(fields, flag.FieldSeverityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FlagMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case flag.FieldSeverityScore:
		return m.AddedSeverityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FlagMutation) AddField(name string, value ent.Value) error {
	switch name {
	case flag.FieldSeverityScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeverityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Flag numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FlagMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(flag.FieldGaps) {
		fields = append(fields, flag.FieldGaps)
	}
	if m.FieldCleared(flag.FieldRecommendations) {
		fields = append(fields, flag.FieldRecommendations)
	}
	if m.FieldCleared(flag.FieldAnalysisMetadata) {
		fields = append(fields, flag.FieldAnalysisMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FlagMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FlagMutation) ClearField(name string) error {
	switch name {
	case flag.FieldGaps:
		m.ClearGaps()
		return nil
	case flag.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case flag.FieldAnalysisMetadata:
		m.ClearAnalysisMetadata()
		return nil
	}
	return fmt.Errorf("unknown Flag nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FlagMutation) ResetField(name string) error {
	switch name {
	case flag.FieldAuditID:
		m.ResetAuditID()
		return nil
	case flag.FieldChunkID:
		m.ResetChunkID()
		return nil
	case flag.FieldFlagType:
		m.ResetFlagType()
		return nil
	case flag.FieldSeverityScore:
		m.ResetSeverityScore()
		return nil
	case flag.FieldFindings:
		m.ResetFindings()
		return nil
	case flag.FieldGaps:
		m.ResetGaps()
		return nil
	case flag.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case flag.FieldAnalysisMetadata:
		m.ResetAnalysisMetadata()
		return nil
	case flag.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case flag.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Flag field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FlagMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.audit != nil {
		edges = append(edges, flag.EdgeAudit)
	}
	if m.citations != nil {
		edges = append(edges, flag.EdgeCitations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FlagMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case flag.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	case flag.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.citations))
		for id := range m.citations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FlagMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedcitations != nil {
		edges = append(edges, flag.EdgeCitations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FlagMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case flag.EdgeCitations:
		ids := make([]ent.Value, 0, len(m.removedcitations))
		for id := range m.removedcitations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FlagMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaudit {
		edges = append(edges, flag.EdgeAudit)
	}
	if m.clearedcitations {
		edges = append(edges, flag.EdgeCitations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FlagMutation) EdgeCleared(name string) bool {
	switch name {
	case flag.EdgeAudit:
		return m.clearedaudit
	case flag.EdgeCitations:
		return m.clearedcitations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FlagMutation) ClearEdge(name string) error {
	switch name {
	case flag.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown Flag unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FlagMutation) ResetEdge(name string) error {
	switch name {
	case flag.EdgeAudit:
		m.ResetAudit()
		return nil
	case flag.EdgeCitations:
		m.ResetCitations()
		return nil
	}
	return fmt.Errorf("unknown Flag edge %s", name)
}
