// Code generated by ent, DO NOT EDIT.

package auditorquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLTE(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldAuditID, v))
}

// RegulationReference applies equality check predicate on the "regulation_reference" field. It's identical to RegulationReferenceEQ.
func RegulationReference(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldRegulationReference, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldQuestion, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldPriority, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldRationale, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNotIn(FieldAuditID, vs...))
}

// RegulationReferenceEQ applies the EQ predicate on the "regulation_reference" field.
func RegulationReferenceEQ(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldRegulationReference, v))
}

// RegulationReferenceNEQ applies the NEQ predicate on the "regulation_reference" field.
func RegulationReferenceNEQ(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNEQ(FieldRegulationReference, v))
}

// RegulationReferenceIn applies the In predicate on the "regulation_reference" field.
func RegulationReferenceIn(vs ...string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldIn(FieldRegulationReference, vs...))
}

// RegulationReferenceNotIn applies the NotIn predicate on the "regulation_reference" field.
func RegulationReferenceNotIn(vs ...string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNotIn(FieldRegulationReference, vs...))
}

// RegulationReferenceGT applies the GT predicate on the "regulation_reference" field.
func RegulationReferenceGT(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGT(FieldRegulationReference, v))
}

// RegulationReferenceGTE applies the GTE predicate on the "regulation_reference" field.
func RegulationReferenceGTE(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGTE(FieldRegulationReference, v))
}

// RegulationReferenceLT applies the LT predicate on the "regulation_reference" field.
func RegulationReferenceLT(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLT(FieldRegulationReference, v))
}

// RegulationReferenceLTE applies the LTE predicate on the "regulation_reference" field.
func RegulationReferenceLTE(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLTE(FieldRegulationReference, v))
}

// RegulationReferenceContains applies the Contains predicate on the "regulation_reference" field.
func RegulationReferenceContains(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldContains(FieldRegulationReference, v))
}

// RegulationReferenceHasPrefix applies the HasPrefix predicate on the "regulation_reference" field.
func RegulationReferenceHasPrefix(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldHasPrefix(FieldRegulationReference, v))
}

// RegulationReferenceHasSuffix applies the HasSuffix predicate on the "regulation_reference" field.
func RegulationReferenceHasSuffix(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldHasSuffix(FieldRegulationReference, v))
}

// RegulationReferenceEqualFold applies the EqualFold predicate on the "regulation_reference" field.
func RegulationReferenceEqualFold(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEqualFold(FieldRegulationReference, v))
}

// RegulationReferenceContainsFold applies the ContainsFold predicate on the "regulation_reference" field.
func RegulationReferenceContainsFold(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldContainsFold(FieldRegulationReference, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldContainsFold(FieldQuestion, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLTE(FieldPriority, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldContainsFold(FieldRationale, v))
}

// RelatedFlagIdsIsNil applies the IsNil predicate on the "related_flag_ids" field.
func RelatedFlagIdsIsNil() predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldIsNull(FieldRelatedFlagIds))
}

// RelatedFlagIdsNotNil applies the NotNil predicate on the "related_flag_ids" field.
func RelatedFlagIdsNotNil() predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNotNull(FieldRelatedFlagIds))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.AuditorQuestion {
	return predicate.AuditorQuestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditorQuestion) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditorQuestion) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditorQuestion) predicate.AuditorQuestion {
	return predicate.AuditorQuestion(sql.NotPredicates(p))
}
