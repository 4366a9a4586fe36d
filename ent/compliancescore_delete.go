// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/compliancescore"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ComplianceScoreDelete is the builder for deleting a ComplianceScore entity.
type ComplianceScoreDelete struct {
	config
	hooks    []Hook
	mutation *ComplianceScoreMutation
}

// Where appends a list predicates to the ComplianceScoreDelete builder.
func (_d *ComplianceScoreDelete) Where(ps ...predicate.ComplianceScore) *ComplianceScoreDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ComplianceScoreDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceScoreDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ComplianceScoreDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(compliancescore.Table, sqlgraph.NewFieldSpec(compliancescore.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ComplianceScoreDeleteOne is the builder for deleting a single ComplianceScore entity.
type ComplianceScoreDeleteOne struct {
	_d *ComplianceScoreDelete
}

// Where appends a list predicates to the ComplianceScoreDelete builder.
func (_d *ComplianceScoreDeleteOne) Where(ps ...predicate.ComplianceScore) *ComplianceScoreDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ComplianceScoreDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{compliancescore.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ComplianceScoreDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
