// Code generated by ent, DO NOT EDIT.

package audit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldID, id))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldExternalID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldDocumentID, v))
}

// IsDraft applies equality check predicate on the "is_draft" field. It's identical to IsDraftEQ.
func IsDraft(v bool) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldIsDraft, v))
}

// ChunkTotal applies equality check predicate on the "chunk_total" field. It's identical to ChunkTotalEQ.
func ChunkTotal(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldChunkTotal, v))
}

// ChunkCompleted applies equality check predicate on the "chunk_completed" field. It's identical to ChunkCompletedEQ.
func ChunkCompleted(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldChunkCompleted, v))
}

// LastChunkID applies equality check predicate on the "last_chunk_id" field. It's identical to LastChunkIDEQ.
func LastChunkID(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldLastChunkID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompletedAt, v))
}

// FailedAt applies equality check predicate on the "failed_at" field. It's identical to FailedAtEQ.
func FailedAt(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldFailedAt, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldFailureReason, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldExternalID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldDocumentID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldStatus, vs...))
}

// IsDraftEQ applies the EQ predicate on the "is_draft" field.
func IsDraftEQ(v bool) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldIsDraft, v))
}

// IsDraftNEQ applies the NEQ predicate on the "is_draft" field.
func IsDraftNEQ(v bool) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldIsDraft, v))
}

// ChunkTotalEQ applies the EQ predicate on the "chunk_total" field.
func ChunkTotalEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldChunkTotal, v))
}

// ChunkTotalNEQ applies the NEQ predicate on the "chunk_total" field.
func ChunkTotalNEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldChunkTotal, v))
}

// ChunkTotalIn applies the In predicate on the "chunk_total" field.
func ChunkTotalIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldChunkTotal, vs...))
}

// ChunkTotalNotIn applies the NotIn predicate on the "chunk_total" field.
func ChunkTotalNotIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldChunkTotal, vs...))
}

// ChunkTotalGT applies the GT predicate on the "chunk_total" field.
func ChunkTotalGT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldChunkTotal, v))
}

// ChunkTotalGTE applies the GTE predicate on the "chunk_total" field.
func ChunkTotalGTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldChunkTotal, v))
}

// ChunkTotalLT applies the LT predicate on the "chunk_total" field.
func ChunkTotalLT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldChunkTotal, v))
}

// ChunkTotalLTE applies the LTE predicate on the "chunk_total" field.
func ChunkTotalLTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldChunkTotal, v))
}

// ChunkCompletedEQ applies the EQ predicate on the "chunk_completed" field.
func ChunkCompletedEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldChunkCompleted, v))
}

// ChunkCompletedNEQ applies the NEQ predicate on the "chunk_completed" field.
func ChunkCompletedNEQ(v int) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldChunkCompleted, v))
}

// ChunkCompletedIn applies the In predicate on the "chunk_completed" field.
func ChunkCompletedIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldChunkCompleted, vs...))
}

// ChunkCompletedNotIn applies the NotIn predicate on the "chunk_completed" field.
func ChunkCompletedNotIn(vs ...int) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldChunkCompleted, vs...))
}

// ChunkCompletedGT applies the GT predicate on the "chunk_completed" field.
func ChunkCompletedGT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldChunkCompleted, v))
}

// ChunkCompletedGTE applies the GTE predicate on the "chunk_completed" field.
func ChunkCompletedGTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldChunkCompleted, v))
}

// ChunkCompletedLT applies the LT predicate on the "chunk_completed" field.
func ChunkCompletedLT(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldChunkCompleted, v))
}

// ChunkCompletedLTE applies the LTE predicate on the "chunk_completed" field.
func ChunkCompletedLTE(v int) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldChunkCompleted, v))
}

// LastChunkIDEQ applies the EQ predicate on the "last_chunk_id" field.
func LastChunkIDEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldLastChunkID, v))
}

// LastChunkIDNEQ applies the NEQ predicate on the "last_chunk_id" field.
func LastChunkIDNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldLastChunkID, v))
}

// LastChunkIDIn applies the In predicate on the "last_chunk_id" field.
func LastChunkIDIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldLastChunkID, vs...))
}

// LastChunkIDNotIn applies the NotIn predicate on the "last_chunk_id" field.
func LastChunkIDNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldLastChunkID, vs...))
}

// LastChunkIDGT applies the GT predicate on the "last_chunk_id" field.
func LastChunkIDGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldLastChunkID, v))
}

// LastChunkIDGTE applies the GTE predicate on the "last_chunk_id" field.
func LastChunkIDGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldLastChunkID, v))
}

// LastChunkIDLT applies the LT predicate on the "last_chunk_id" field.
func LastChunkIDLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldLastChunkID, v))
}

// LastChunkIDLTE applies the LTE predicate on the "last_chunk_id" field.
func LastChunkIDLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldLastChunkID, v))
}

// LastChunkIDContains applies the Contains predicate on the "last_chunk_id" field.
func LastChunkIDContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldLastChunkID, v))
}

// LastChunkIDHasPrefix applies the HasPrefix predicate on the "last_chunk_id" field.
func LastChunkIDHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldLastChunkID, v))
}

// LastChunkIDHasSuffix applies the HasSuffix predicate on the "last_chunk_id" field.
func LastChunkIDHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldLastChunkID, v))
}

// LastChunkIDIsNil applies the IsNil predicate on the "last_chunk_id" field.
func LastChunkIDIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldLastChunkID))
}

// LastChunkIDNotNil applies the NotNil predicate on the "last_chunk_id" field.
func LastChunkIDNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldLastChunkID))
}

// LastChunkIDEqualFold applies the EqualFold predicate on the "last_chunk_id" field.
func LastChunkIDEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldLastChunkID, v))
}

// LastChunkIDContainsFold applies the ContainsFold predicate on the "last_chunk_id" field.
func LastChunkIDContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldLastChunkID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldCompletedAt))
}

// FailedAtEQ applies the EQ predicate on the "failed_at" field.
func FailedAtEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldFailedAt, v))
}

// FailedAtNEQ applies the NEQ predicate on the "failed_at" field.
func FailedAtNEQ(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldFailedAt, v))
}

// FailedAtIn applies the In predicate on the "failed_at" field.
func FailedAtIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldFailedAt, vs...))
}

// FailedAtNotIn applies the NotIn predicate on the "failed_at" field.
func FailedAtNotIn(vs ...time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldFailedAt, vs...))
}

// FailedAtGT applies the GT predicate on the "failed_at" field.
func FailedAtGT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldFailedAt, v))
}

// FailedAtGTE applies the GTE predicate on the "failed_at" field.
func FailedAtGTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldFailedAt, v))
}

// FailedAtLT applies the LT predicate on the "failed_at" field.
func FailedAtLT(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldFailedAt, v))
}

// FailedAtLTE applies the LTE predicate on the "failed_at" field.
func FailedAtLTE(v time.Time) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldFailedAt, v))
}

// FailedAtIsNil applies the IsNil predicate on the "failed_at" field.
func FailedAtIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldFailedAt))
}

// FailedAtNotNil applies the NotNil predicate on the "failed_at" field.
func FailedAtNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldFailedAt))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Audit {
	return predicate.Audit(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Audit {
	return predicate.Audit(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Audit {
	return predicate.Audit(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Audit {
	return predicate.Audit(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Audit {
	return predicate.Audit(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Audit {
	return predicate.Audit(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Audit {
	return predicate.Audit(sql.FieldContainsFold(FieldFailureReason, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasChunkResults applies the HasEdge predicate on the "chunk_results" edge.
func HasChunkResults() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChunkResultsTable, ChunkResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunkResultsWith applies the HasEdge predicate on the "chunk_results" edge with a given conditions (other predicates).
func HasChunkResultsWith(preds ...predicate.AuditChunkResult) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newChunkResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFlags applies the HasEdge predicate on the "flags" edge.
func HasFlags() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FlagsTable, FlagsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFlagsWith applies the HasEdge predicate on the "flags" edge with a given conditions (other predicates).
func HasFlagsWith(preds ...predicate.Flag) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newFlagsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.AuditorQuestion) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScores applies the HasEdge predicate on the "scores" edge.
func HasScores() predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScoresTable, ScoresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScoresWith applies the HasEdge predicate on the "scores" edge with a given conditions (other predicates).
func HasScoresWith(preds ...predicate.ComplianceScore) predicate.Audit {
	return predicate.Audit(func(s *sql.Selector) {
		step := newScoresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Audit) predicate.Audit {
	return predicate.Audit(sql.NotPredicates(p))
}
