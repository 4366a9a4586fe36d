// Code generated by ent, DO NOT EDIT.

package flag

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldID, id))
}

// AuditID applies equality check predicate on the "audit_id" field. It's identical to AuditIDEQ.
func AuditID(v int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldAuditID, v))
}

// ChunkID applies equality check predicate on the "chunk_id" field. It's identical to ChunkIDEQ.
func ChunkID(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldChunkID, v))
}

// SeverityScore applies equality check predicate on the "severity_score" field. It's identical to SeverityScoreEQ.
func SeverityScore(v int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldSeverityScore, v))
}

// Findings applies equality check predicate on the "findings" field. It's identical to FindingsEQ.
func Findings(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldFindings, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldUpdatedAt, v))
}

// AuditIDEQ applies the EQ predicate on the "audit_id" field.
func AuditIDEQ(v int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldAuditID, v))
}

// AuditIDNEQ applies the NEQ predicate on the "audit_id" field.
func AuditIDNEQ(v int) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldAuditID, v))
}

// AuditIDIn applies the In predicate on the "audit_id" field.
func AuditIDIn(vs ...int) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldAuditID, vs...))
}

// AuditIDNotIn applies the NotIn predicate on the "audit_id" field.
func AuditIDNotIn(vs ...int) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldAuditID, vs...))
}

// ChunkIDEQ applies the EQ predicate on the "chunk_id" field.
func ChunkIDEQ(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldChunkID, v))
}

// ChunkIDNEQ applies the NEQ predicate on the "chunk_id" field.
func ChunkIDNEQ(v string) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldChunkID, v))
}

// ChunkIDIn applies the In predicate on the "chunk_id" field.
func ChunkIDIn(vs ...string) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldChunkID, vs...))
}

// ChunkIDNotIn applies the NotIn predicate on the "chunk_id" field.
func ChunkIDNotIn(vs ...string) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldChunkID, vs...))
}

// ChunkIDGT applies the GT predicate on the "chunk_id" field.
func ChunkIDGT(v string) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldChunkID, v))
}

// ChunkIDGTE applies the GTE predicate on the "chunk_id" field.
func ChunkIDGTE(v string) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldChunkID, v))
}

// ChunkIDLT applies the LT predicate on the "chunk_id" field.
func ChunkIDLT(v string) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldChunkID, v))
}

// ChunkIDLTE applies the LTE predicate on the "chunk_id" field.
func ChunkIDLTE(v string) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldChunkID, v))
}

// ChunkIDContains applies the Contains predicate on the "chunk_id" field.
func ChunkIDContains(v string) predicate.Flag {
	return predicate.Flag(sql.FieldContains(FieldChunkID, v))
}

// ChunkIDHasPrefix applies the HasPrefix predicate on the "chunk_id" field.
func ChunkIDHasPrefix(v string) predicate.Flag {
	return predicate.Flag(sql.FieldHasPrefix(FieldChunkID, v))
}

// ChunkIDHasSuffix applies the HasSuffix predicate on the "chunk_id" field.
func ChunkIDHasSuffix(v string) predicate.Flag {
	return predicate.Flag(sql.FieldHasSuffix(FieldChunkID, v))
}

// ChunkIDEqualFold applies the EqualFold predicate on the "chunk_id" field.
func ChunkIDEqualFold(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEqualFold(FieldChunkID, v))
}

// ChunkIDContainsFold applies the ContainsFold predicate on the "chunk_id" field.
func ChunkIDContainsFold(v string) predicate.Flag {
	return predicate.Flag(sql.FieldContainsFold(FieldChunkID, v))
}

// FlagTypeEQ applies the EQ predicate on the "flag_type" field.
func FlagTypeEQ(v FlagType) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldFlagType, v))
}

// FlagTypeNEQ applies the NEQ predicate on the "flag_type" field.
func FlagTypeNEQ(v FlagType) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldFlagType, v))
}

// FlagTypeIn applies the In predicate on the "flag_type" field.
func FlagTypeIn(vs ...FlagType) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldFlagType, vs...))
}

// FlagTypeNotIn applies the NotIn predicate on the "flag_type" field.
func FlagTypeNotIn(vs ...FlagType) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldFlagType, vs...))
}

// SeverityScoreEQ applies the EQ predicate on the "severity_score" field.
func SeverityScoreEQ(v int) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldSeverityScore, v))
}

// SeverityScoreNEQ applies the NEQ predicate on the "severity_score" field.
func SeverityScoreNEQ(v int) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldSeverityScore, v))
}

// SeverityScoreIn applies the In predicate on the "severity_score" field.
func SeverityScoreIn(vs ...int) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldSeverityScore, vs...))
}

// SeverityScoreNotIn applies the NotIn predicate on the "severity_score" field.
func SeverityScoreNotIn(vs ...int) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldSeverityScore, vs...))
}

// SeverityScoreGT applies the GT predicate on the "severity_score" field.
func SeverityScoreGT(v int) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldSeverityScore, v))
}

// SeverityScoreGTE applies the GTE predicate on the "severity_score" field.
func SeverityScoreGTE(v int) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldSeverityScore, v))
}

// SeverityScoreLT applies the LT predicate on the "severity_score" field.
func SeverityScoreLT(v int) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldSeverityScore, v))
}

// SeverityScoreLTE applies the LTE predicate on the "severity_score" field.
func SeverityScoreLTE(v int) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldSeverityScore, v))
}

// FindingsEQ applies the EQ predicate on the "findings" field.
func FindingsEQ(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldFindings, v))
}

// FindingsNEQ applies the NEQ predicate on the "findings" field.
func FindingsNEQ(v string) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldFindings, v))
}

// FindingsIn applies the In predicate on the "findings" field.
func FindingsIn(vs ...string) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldFindings, vs...))
}

// FindingsNotIn applies the NotIn predicate on the "findings" field.
func FindingsNotIn(vs ...string) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldFindings, vs...))
}

// FindingsGT applies the GT predicate on the "findings" field.
func FindingsGT(v string) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldFindings, v))
}

// FindingsGTE applies the GTE predicate on the "findings" field.
func FindingsGTE(v string) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldFindings, v))
}

// FindingsLT applies the LT predicate on the "findings" field.
func FindingsLT(v string) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldFindings, v))
}

// FindingsLTE applies the LTE predicate on the "findings" field.
func FindingsLTE(v string) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldFindings, v))
}

// FindingsContains applies the Contains predicate on the "findings" field.
func FindingsContains(v string) predicate.Flag {
	return predicate.Flag(sql.FieldContains(FieldFindings, v))
}

// FindingsHasPrefix applies the HasPrefix predicate on the "findings" field.
func FindingsHasPrefix(v string) predicate.Flag {
	return predicate.Flag(sql.FieldHasPrefix(FieldFindings, v))
}

// FindingsHasSuffix applies the HasSuffix predicate on the "findings" field.
func FindingsHasSuffix(v string) predicate.Flag {
	return predicate.Flag(sql.FieldHasSuffix(FieldFindings, v))
}

// FindingsEqualFold applies the EqualFold predicate on the "findings" field.
func FindingsEqualFold(v string) predicate.Flag {
	return predicate.Flag(sql.FieldEqualFold(FieldFindings, v))
}

// FindingsContainsFold applies the ContainsFold predicate on the "findings" field.
func FindingsContainsFold(v string) predicate.Flag {
	return predicate.Flag(sql.FieldContainsFold(FieldFindings, v))
}

// GapsIsNil applies the IsNil predicate on the "gaps" field.
func GapsIsNil() predicate.Flag {
	return predicate.Flag(sql.FieldIsNull(FieldGaps))
}

// GapsNotNil applies the NotNil predicate on the "gaps" field.
func GapsNotNil() predicate.Flag {
	return predicate.Flag(sql.FieldNotNull(FieldGaps))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.Flag {
	return predicate.Flag(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.Flag {
	return predicate.Flag(sql.FieldNotNull(FieldRecommendations))
}

// AnalysisMetadataIsNil applies the IsNil predicate on the "analysis_metadata" field.
func AnalysisMetadataIsNil() predicate.Flag {
	return predicate.Flag(sql.FieldIsNull(FieldAnalysisMetadata))
}

// AnalysisMetadataNotNil applies the NotNil predicate on the "analysis_metadata" field.
func AnalysisMetadataNotNil() predicate.Flag {
	return predicate.Flag(sql.FieldNotNull(FieldAnalysisMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Flag {
	return predicate.Flag(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAudit applies the HasEdge predicate on the "audit" edge.
func HasAudit() predicate.Flag {
	return predicate.Flag(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AuditTable, AuditColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditWith applies the HasEdge predicate on the "audit" edge with a given conditions (other predicates).
func HasAuditWith(preds ...predicate.Audit) predicate.Flag {
	return predicate.Flag(func(s *sql.Selector) {
		step := newAuditStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCitations applies the HasEdge predicate on the "citations" edge.
func HasCitations() predicate.Flag {
	return predicate.Flag(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CitationsTable, CitationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCitationsWith applies the HasEdge predicate on the "citations" edge with a given conditions (other predicates).
func HasCitationsWith(preds ...predicate.Citation) predicate.Flag {
	return predicate.Flag(func(s *sql.Selector) {
		step := newCitationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Flag) predicate.Flag {
	return predicate.Flag(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Flag) predicate.Flag {
	return predicate.Flag(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Flag) predicate.Flag {
	return predicate.Flag(sql.NotPredicates(p))
}
