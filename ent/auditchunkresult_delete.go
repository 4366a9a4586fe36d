// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/auditchunkresult"
	"github.com/regsentry/regsentry/ent/predicate"
)

// AuditChunkResultDelete is the builder for deleting a AuditChunkResult entity.
type AuditChunkResultDelete struct {
	config
	hooks    []Hook
	mutation *AuditChunkResultMutation
}

// Where appends a list predicates to the AuditChunkResultDelete builder.
func (_d *AuditChunkResultDelete) Where(ps ...predicate.AuditChunkResult) *AuditChunkResultDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AuditChunkResultDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AuditChunkResultDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AuditChunkResultDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(auditchunkresult.Table, sqlgraph.NewFieldSpec(auditchunkresult.FieldID, field.TypeInt))
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

// AuditChunkResultDeleteOne is the builder for deleting a single AuditChunkResult entity.
type AuditChunkResultDeleteOne struct {
	_d *AuditChunkResultDelete
}

// Where appends a list predicates to the AuditChunkResultDelete builder.
func (_d *AuditChunkResultDeleteOne) Where(ps ...predicate.AuditChunkResult) *AuditChunkResultDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AuditChunkResultDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{auditchunkresult.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AuditChunkResultDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
