// Code generated by ent, DO NOT EDIT.

package citation

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldID, id))
}

// FlagID applies equality check predicate on the "flag_id" field. It's identical to FlagIDEQ.
func FlagID(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldFlagID, v))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldReference, v))
}

// FlagIDEQ applies the EQ predicate on the "flag_id" field.
func FlagIDEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldFlagID, v))
}

// FlagIDNEQ applies the NEQ predicate on the "flag_id" field.
func FlagIDNEQ(v int) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldFlagID, v))
}

// FlagIDIn applies the In predicate on the "flag_id" field.
func FlagIDIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldFlagID, vs...))
}

// FlagIDNotIn applies the NotIn predicate on the "flag_id" field.
func FlagIDNotIn(vs ...int) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldFlagID, vs...))
}

// CitationTypeEQ applies the EQ predicate on the "citation_type" field.
func CitationTypeEQ(v CitationType) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldCitationType, v))
}

// CitationTypeNEQ applies the NEQ predicate on the "citation_type" field.
func CitationTypeNEQ(v CitationType) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldCitationType, v))
}

// CitationTypeIn applies the In predicate on the "citation_type" field.
func CitationTypeIn(vs ...CitationType) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldCitationType, vs...))
}

// CitationTypeNotIn applies the NotIn predicate on the "citation_type" field.
func CitationTypeNotIn(vs ...CitationType) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldCitationType, vs...))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.Citation {
	return predicate.Citation(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.Citation {
	return predicate.Citation(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.Citation {
	return predicate.Citation(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.Citation {
	return predicate.Citation(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.Citation {
	return predicate.Citation(sql.FieldContainsFold(FieldReference, v))
}

// HasFlag applies the HasEdge predicate on the "flag" edge.
func HasFlag() predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FlagTable, FlagColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFlagWith applies the HasEdge predicate on the "flag" edge with a given conditions (other predicates).
func HasFlagWith(preds ...predicate.Flag) predicate.Citation {
	return predicate.Citation(func(s *sql.Selector) {
		step := newFlagStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Citation) predicate.Citation {
	return predicate.Citation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Citation) predicate.Citation {
	return predicate.Citation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Citation) predicate.Citation {
	return predicate.Citation(sql.NotPredicates(p))
}
