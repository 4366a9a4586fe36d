// Code generated by ent, DO NOT EDIT.

package compliancescore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLTE(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldAuditID, v))
}

// OverallScore applies equality check predicate on the "overall_score" field. It's identical to OverallScoreEQ.
func OverallScore(v float64) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldOverallScore, v))
}

// RedCount applies equality check predicate on the "red_count" field. It's identical to RedCountEQ.
func RedCount(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldRedCount, v))
}

// YellowCount applies equality check predicate on the "yellow_count" field. It's identical to YellowCountEQ.
func YellowCount(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldYellowCount, v))
}

// GreenCount applies equality check predicate on the "green_count" field. It's identical to GreenCountEQ.
func GreenCount(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldGreenCount, v))
}

// TotalFlags applies equality check predicate on the "total_flags" field. It's identical to TotalFlagsEQ.
func TotalFlags(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldTotalFlags, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNotIn(FieldAuditID, vs...))
}

// OverallScoreEQ applies the EQ predicate on the "overall_score" field.
func OverallScoreEQ(v float64) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldOverallScore, v))
}

// OverallScoreNEQ applies the NEQ predicate on the "overall_score" field.
func OverallScoreNEQ(v float64) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNEQ(FieldOverallScore, v))
}

// OverallScoreIn applies the In predicate on the "overall_score" field.
func OverallScoreIn(vs ...float64) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldIn(FieldOverallScore, vs...))
}

// OverallScoreNotIn applies the NotIn predicate on the "overall_score" field.
func OverallScoreNotIn(vs ...float64) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNotIn(FieldOverallScore, vs...))
}

// OverallScoreGT applies the GT predicate on the "overall_score" field.
func OverallScoreGT(v float64) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGT(FieldOverallScore, v))
}

// OverallScoreGTE applies the GTE predicate on the "overall_score" field.
func OverallScoreGTE(v float64) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGTE(FieldOverallScore, v))
}

// OverallScoreLT applies the LT predicate on the "overall_score" field.
func OverallScoreLT(v float64) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLT(FieldOverallScore, v))
}

// OverallScoreLTE applies the LTE predicate on the "overall_score" field.
func OverallScoreLTE(v float64) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLTE(FieldOverallScore, v))
}

// RedCountEQ applies the EQ predicate on the "red_count" field.
func RedCountEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldRedCount, v))
}

// RedCountNEQ applies the NEQ predicate on the "red_count" field.
func RedCountNEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNEQ(FieldRedCount, v))
}

// RedCountIn applies the In predicate on the "red_count" field.
func RedCountIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldIn(FieldRedCount, vs...))
}

// RedCountNotIn applies the NotIn predicate on the "red_count" field.
func RedCountNotIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNotIn(FieldRedCount, vs...))
}

// RedCountGT applies the GT predicate on the "red_count" field.
func RedCountGT(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGT(FieldRedCount, v))
}

// RedCountGTE applies the GTE predicate on the "red_count" field.
func RedCountGTE(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGTE(FieldRedCount, v))
}

// RedCountLT applies the LT predicate on the "red_count" field.
func RedCountLT(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLT(FieldRedCount, v))
}

// RedCountLTE applies the LTE predicate on the "red_count" field.
func RedCountLTE(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLTE(FieldRedCount, v))
}

// YellowCountEQ applies the EQ predicate on the "yellow_count" field.
func YellowCountEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldYellowCount, v))
}

// YellowCountNEQ applies the NEQ predicate on the "yellow_count" field.
func YellowCountNEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNEQ(FieldYellowCount, v))
}

// YellowCountIn applies the In predicate on the "yellow_count" field.
func YellowCountIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldIn(FieldYellowCount, vs...))
}

// YellowCountNotIn applies the NotIn predicate on the "yellow_count" field.
func YellowCountNotIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNotIn(FieldYellowCount, vs...))
}

// YellowCountGT applies the GT predicate on the "yellow_count" field.
func YellowCountGT(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGT(FieldYellowCount, v))
}

// YellowCountGTE applies the GTE predicate on the "yellow_count" field.
func YellowCountGTE(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGTE(FieldYellowCount, v))
}

// YellowCountLT applies the LT predicate on the "yellow_count" field.
func YellowCountLT(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLT(FieldYellowCount, v))
}

// YellowCountLTE applies the LTE predicate on the "yellow_count" field.
func YellowCountLTE(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLTE(FieldYellowCount, v))
}

// GreenCountEQ applies the EQ predicate on the "green_count" field.
func GreenCountEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldGreenCount, v))
}

// GreenCountNEQ applies the NEQ predicate on the "green_count" field.
func GreenCountNEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNEQ(FieldGreenCount, v))
}

// GreenCountIn applies the In predicate on the "green_count" field.
func GreenCountIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldIn(FieldGreenCount, vs...))
}

// GreenCountNotIn applies the NotIn predicate on the "green_count" field.
func GreenCountNotIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNotIn(FieldGreenCount, vs...))
}

// GreenCountGT applies the GT predicate on the "green_count" field.
func GreenCountGT(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGT(FieldGreenCount, v))
}

// GreenCountGTE applies the GTE predicate on the "green_count" field.
func GreenCountGTE(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGTE(FieldGreenCount, v))
}

// GreenCountLT applies the LT predicate on the "green_count" field.
func GreenCountLT(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLT(FieldGreenCount, v))
}

// GreenCountLTE applies the LTE predicate on the "green_count" field.
func GreenCountLTE(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLTE(FieldGreenCount, v))
}

// TotalFlagsEQ applies the EQ predicate on the "total_flags" field.
func TotalFlagsEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldTotalFlags, v))
}

// TotalFlagsNEQ applies the NEQ predicate on the "total_flags" field.
func TotalFlagsNEQ(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNEQ(FieldTotalFlags, v))
}

// TotalFlagsIn applies the In predicate on the "total_flags" field.
func TotalFlagsIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldIn(FieldTotalFlags, vs...))
}

// TotalFlagsNotIn applies the NotIn predicate on the "total_flags" field.
func TotalFlagsNotIn(vs ...int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNotIn(FieldTotalFlags, vs...))
}

// TotalFlagsGT applies the GT predicate on the "total_flags" field.
func TotalFlagsGT(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGT(FieldTotalFlags, v))
}

// TotalFlagsGTE applies the GTE predicate on the "total_flags" field.
func TotalFlagsGTE(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGTE(FieldTotalFlags, v))
}

// TotalFlagsLT applies the LT predicate on the "total_flags" field.
func TotalFlagsLT(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLT(FieldTotalFlags, v))
}

// TotalFlagsLTE applies the LTE predicate on the "total_flags" field.
func TotalFlagsLTE(v int) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLTE(FieldTotalFlags, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.ComplianceScore {
	return predicate.ComplianceScore(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.ComplianceScore {
	return predicate.ComplianceScore(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ComplianceScore) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ComplianceScore) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ComplianceScore) predicate.ComplianceScore {
	return predicate.ComplianceScore(sql.NotPredicates(p))
}
