// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/auditchunkresult"
	"github.com/regsentry/regsentry/ent/predicate"
)

// AuditChunkResultUpdate is the builder for updating AuditChunkResult entities.
type AuditChunkResultUpdate struct {
	config
	hooks    []Hook
	mutation *AuditChunkResultMutation
}

// Where appends a list predicates to the AuditChunkResultUpdate builder.
func (_u *AuditChunkResultUpdate) Where(ps ...predicate.AuditChunkResult) *AuditChunkResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditChunkResultUpdate) SetStatus(v auditchunkresult.Status) *AuditChunkResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditChunkResultUpdate) SetNillableStatus(v *auditchunkresult.Status) *AuditChunkResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *AuditChunkResultUpdate) SetAnalysis(v map[string]interface{}) *AuditChunkResultUpdate {
	_u.mutation.SetAnalysis(v)
	return _u
}

// SetContextSummary sets the "context_summary" field.
func (_u *AuditChunkResultUpdate) SetContextSummary(v map[string]interface{}) *AuditChunkResultUpdate {
	_u.mutation.SetContextSummary(v)
	return _u
}

// ClearContextSummary clears the value of the "context_summary" field.
func (_u *AuditChunkResultUpdate) ClearContextSummary() *AuditChunkResultUpdate {
	_u.mutation.ClearContextSummary()
	return _u
}

// Mutation returns the AuditChunkResultMutation object of the builder.
func (_u *AuditChunkResultUpdate) Mutation() *AuditChunkResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditChunkResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditChunkResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditChunkResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditChunkResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditChunkResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditchunkresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditChunkResult.status": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditChunkResult.audit"`)
	}
	return nil
}

func (_u *AuditChunkResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditchunkresult.Table, auditchunkresult.Columns, sqlgraph.NewFieldSpec(auditchunkresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditchunkresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(auditchunkresult.FieldAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ContextSummary(); ok {
		_spec.SetField(auditchunkresult.FieldContextSummary, field.TypeJSON, value)
	}
	if _u.mutation.ContextSummaryCleared() {
		_spec.ClearField(auditchunkresult.FieldContextSummary, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditchunkresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditChunkResultUpdateOne is the builder for updating a single AuditChunkResult entity.
type AuditChunkResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditChunkResultMutation
}

// SetStatus sets the "status" field.
func (_u *AuditChunkResultUpdateOne) SetStatus(v auditchunkresult.Status) *AuditChunkResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditChunkResultUpdateOne) SetNillableStatus(v *auditchunkresult.Status) *AuditChunkResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAnalysis sets the "analysis" field.
func (_u *AuditChunkResultUpdateOne) SetAnalysis(v map[string]interface{}) *AuditChunkResultUpdateOne {
	_u.mutation.SetAnalysis(v)
	return _u
}

// SetContextSummary sets the "context_summary" field.
func (_u *AuditChunkResultUpdateOne) SetContextSummary(v map[string]interface{}) *AuditChunkResultUpdateOne {
	_u.mutation.SetContextSummary(v)
	return _u
}

// ClearContextSummary clears the value of the "context_summary" field.
func (_u *AuditChunkResultUpdateOne) ClearContextSummary() *AuditChunkResultUpdateOne {
	_u.mutation.ClearContextSummary()
	return _u
}

// Mutation returns the AuditChunkResultMutation object of the builder.
func (_u *AuditChunkResultUpdateOne) Mutation() *AuditChunkResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditChunkResultUpdate builder.
func (_u *AuditChunkResultUpdateOne) Where(ps ...predicate.AuditChunkResult) *AuditChunkResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditChunkResultUpdateOne) Select(field string, fields ...string) *AuditChunkResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditChunkResult entity.
func (_u *AuditChunkResultUpdateOne) Save(ctx context.Context) (*AuditChunkResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditChunkResultUpdateOne) SaveX(ctx context.Context) *AuditChunkResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditChunkResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditChunkResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditChunkResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := auditchunkresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditChunkResult.status": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditChunkResult.audit"`)
	}
	return nil
}

func (_u *AuditChunkResultUpdateOne) sqlSave(ctx context.Context) (_node *AuditChunkResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditchunkresult.Table, auditchunkresult.Columns, sqlgraph.NewFieldSpec(auditchunkresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditChunkResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditchunkresult.FieldID)
		for _, f := range fields {
			if !auditchunkresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditchunkresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(auditchunkresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Analysis(); ok {
		_spec.SetField(auditchunkresult.FieldAnalysis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ContextSummary(); ok {
		_spec.SetField(auditchunkresult.FieldContextSummary, field.TypeJSON, value)
	}
	if _u.mutation.ContextSummaryCleared() {
		_spec.ClearField(auditchunkresult.FieldContextSummary, field.TypeJSON)
	}
	_node = &AuditChunkResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditchunkresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
