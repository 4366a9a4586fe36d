// Code generated by ent, DO NOT EDIT.

package auditchunkresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldLTE(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEQ(FieldAuditID, v))
}

// ChunkID applies equality check predicate on the "chunk_id" field. It's identical to ChunkIDEQ.
func ChunkID(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEQ(FieldChunkID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEQ(FieldCreatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...int) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNotIn(FieldAuditID, vs...))
}

// ChunkIDEQ applies the EQ predicate on the "chunk_id" field.
func ChunkIDEQ(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEQ(FieldChunkID, v))
}

// ChunkIDNEQ applies the NEQ predicate on the "chunk_id" field.
func ChunkIDNEQ(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNEQ(FieldChunkID, v))
}

// ChunkIDIn applies the In predicate on the "chunk_id" field.
func ChunkIDIn(vs ...string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldIn(FieldChunkID, vs...))
}

// ChunkIDNotIn applies the NotIn predicate on the "chunk_id" field.
func ChunkIDNotIn(vs ...string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNotIn(FieldChunkID, vs...))
}

// ChunkIDGT applies the GT predicate on the "chunk_id" field.
func ChunkIDGT(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldGT(FieldChunkID, v))
}

// ChunkIDGTE applies the GTE predicate on the "chunk_id" field.
func ChunkIDGTE(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldGTE(FieldChunkID, v))
}

// ChunkIDLT applies the LT predicate on the "chunk_id" field.
func ChunkIDLT(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldLT(FieldChunkID, v))
}

// ChunkIDLTE applies the LTE predicate on the "chunk_id" field.
func ChunkIDLTE(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldLTE(FieldChunkID, v))
}

// ChunkIDContains applies the Contains predicate on the "chunk_id" field.
func ChunkIDContains(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldContains(FieldChunkID, v))
}

// ChunkIDHasPrefix applies the HasPrefix predicate on the "chunk_id" field.
func ChunkIDHasPrefix(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldHasPrefix(FieldChunkID, v))
}

// ChunkIDHasSuffix applies the HasSuffix predicate on the "chunk_id" field.
func ChunkIDHasSuffix(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldHasSuffix(FieldChunkID, v))
}

// ChunkIDEqualFold applies the EqualFold predicate on the "chunk_id" field.
func ChunkIDEqualFold(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEqualFold(FieldChunkID, v))
}

// ChunkIDContainsFold applies the ContainsFold predicate on the "chunk_id" field.
func ChunkIDContainsFold(v string) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldContainsFold(FieldChunkID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNotIn(FieldStatus, vs...))
}

// ContextSummaryIsNil applies the IsNil predicate on the "context_summary" field.
func ContextSummaryIsNil() predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldIsNull(FieldContextSummary))
}

// ContextSummaryNotNil applies the NotNil predicate on the "context_summary" field.
func ContextSummaryNotNil() predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNotNull(FieldContextSummary))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.AuditChunkResult {
	return predicate.AuditChunkResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditChunkResult) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditChunkResult) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditChunkResult) predicate.AuditChunkResult {
	return predicate.AuditChunkResult(sql.NotPredicates(p))
}
