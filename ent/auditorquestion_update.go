// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/auditorquestion"
	"github.com/regsentry/regsentry/ent/predicate"
)

// AuditorQuestionUpdate is the builder for updating AuditorQuestion entities.
type AuditorQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *AuditorQuestionMutation
}

// Where appends a list predicates to the AuditorQuestionUpdate builder.
func (_u *AuditorQuestionUpdate) Where(ps ...predicate.AuditorQuestion) *AuditorQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRegulationReference sets the "regulation_reference" field.
func (_u *AuditorQuestionUpdate) SetRegulationReference(v string) *AuditorQuestionUpdate {
	_u.mutation.SetRegulationReference(v)
	return _u
}

// SetNillableRegulationReference sets the "regulation_reference" field if the given value is not nil.
func (_u *AuditorQuestionUpdate) SetNillableRegulationReference(v *string) *AuditorQuestionUpdate {
	if v != nil {
		_u.SetRegulationReference(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AuditorQuestionUpdate) SetQuestion(v string) *AuditorQuestionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AuditorQuestionUpdate) SetNillableQuestion(v *string) *AuditorQuestionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AuditorQuestionUpdate) SetPriority(v int) *AuditorQuestionUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AuditorQuestionUpdate) SetNillablePriority(v *int) *AuditorQuestionUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AuditorQuestionUpdate) AddPriority(v int) *AuditorQuestionUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AuditorQuestionUpdate) SetRationale(v string) *AuditorQuestionUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AuditorQuestionUpdate) SetNillableRationale(v *string) *AuditorQuestionUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *AuditorQuestionUpdate) ClearRationale() *AuditorQuestionUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// SetRelatedFlagIds sets the "related_flag_ids" field.
func (_u *AuditorQuestionUpdate) SetRelatedFlagIds(v []int) *AuditorQuestionUpdate {
	_u.mutation.SetRelatedFlagIds(v)
	return _u
}

// AppendRelatedFlagIds appends value to the "related_flag_ids" field.
func (_u *AuditorQuestionUpdate) AppendRelatedFlagIds(v []int) *AuditorQuestionUpdate {
	_u.mutation.AppendRelatedFlagIds(v)
	return _u
}

// ClearRelatedFlagIds clears the value of the "related_flag_ids" field.
func (_u *AuditorQuestionUpdate) ClearRelatedFlagIds() *AuditorQuestionUpdate {
	_u.mutation.ClearRelatedFlagIds()
	return _u
}

// Mutation returns the AuditorQuestionMutation object of the builder.
func (_u *AuditorQuestionUpdate) Mutation() *AuditorQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditorQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditorQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditorQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditorQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditorQuestionUpdate) check() error {
	if v, ok := _u.mutation.RegulationReference(); ok {
		if err := auditorquestion.RegulationReferenceValidator(v); err != nil {
			return &ValidationError{Name: "regulation_reference", err: fmt.Errorf(`ent: validator failed for field "AuditorQuestion.regulation_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := auditorquestion.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AuditorQuestion.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := auditorquestion.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AuditorQuestion.priority": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditorQuestion.audit"`)
	}
	return nil
}

func (_u *AuditorQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditorquestion.Table, auditorquestion.Columns, sqlgraph.NewFieldSpec(auditorquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RegulationReference(); ok {
		_spec.SetField(auditorquestion.FieldRegulationReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(auditorquestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(auditorquestion.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(auditorquestion.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(auditorquestion.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(auditorquestion.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedFlagIds(); ok {
		_spec.SetField(auditorquestion.FieldRelatedFlagIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedFlagIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditorquestion.FieldRelatedFlagIds, value)
		})
	}
	if _u.mutation.RelatedFlagIdsCleared() {
		_spec.ClearField(auditorquestion.FieldRelatedFlagIds, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditorquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditorQuestionUpdateOne is the builder for updating a single AuditorQuestion entity.
type AuditorQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditorQuestionMutation
}

// SetRegulationReference sets the "regulation_reference" field.
func (_u *AuditorQuestionUpdateOne) SetRegulationReference(v string) *AuditorQuestionUpdateOne {
	_u.mutation.SetRegulationReference(v)
	return _u
}

// SetNillableRegulationReference sets the "regulation_reference" field if the given value is not nil.
func (_u *AuditorQuestionUpdateOne) SetNillableRegulationReference(v *string) *AuditorQuestionUpdateOne {
	if v != nil {
		_u.SetRegulationReference(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *AuditorQuestionUpdateOne) SetQuestion(v string) *AuditorQuestionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *AuditorQuestionUpdateOne) SetNillableQuestion(v *string) *AuditorQuestionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AuditorQuestionUpdateOne) SetPriority(v int) *AuditorQuestionUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AuditorQuestionUpdateOne) SetNillablePriority(v *int) *AuditorQuestionUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *AuditorQuestionUpdateOne) AddPriority(v int) *AuditorQuestionUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *AuditorQuestionUpdateOne) SetRationale(v string) *AuditorQuestionUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *AuditorQuestionUpdateOne) SetNillableRationale(v *string) *AuditorQuestionUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *AuditorQuestionUpdateOne) ClearRationale() *AuditorQuestionUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// SetRelatedFlagIds sets the "related_flag_ids" field.
func (_u *AuditorQuestionUpdateOne) SetRelatedFlagIds(v []int) *AuditorQuestionUpdateOne {
	_u.mutation.SetRelatedFlagIds(v)
	return _u
}

// AppendRelatedFlagIds appends value to the "related_flag_ids" field.
func (_u *AuditorQuestionUpdateOne) AppendRelatedFlagIds(v []int) *AuditorQuestionUpdateOne {
	_u.mutation.AppendRelatedFlagIds(v)
	return _u
}

// ClearRelatedFlagIds clears the value of the "related_flag_ids" field.
func (_u *AuditorQuestionUpdateOne) ClearRelatedFlagIds() *AuditorQuestionUpdateOne {
	_u.mutation.ClearRelatedFlagIds()
	return _u
}

// Mutation returns the AuditorQuestionMutation object of the builder.
func (_u *AuditorQuestionUpdateOne) Mutation() *AuditorQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditorQuestionUpdate builder.
func (_u *AuditorQuestionUpdateOne) Where(ps ...predicate.AuditorQuestion) *AuditorQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditorQuestionUpdateOne) Select(field string, fields ...string) *AuditorQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditorQuestion entity.
func (_u *AuditorQuestionUpdateOne) Save(ctx context.Context) (*AuditorQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditorQuestionUpdateOne) SaveX(ctx context.Context) *AuditorQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditorQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditorQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditorQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.RegulationReference(); ok {
		if err := auditorquestion.RegulationReferenceValidator(v); err != nil {
			return &ValidationError{Name: "regulation_reference", err: fmt.Errorf(`ent: validator failed for field "AuditorQuestion.regulation_reference": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := auditorquestion.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AuditorQuestion.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := auditorquestion.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AuditorQuestion.priority": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditorQuestion.audit"`)
	}
	return nil
}

func (_u *AuditorQuestionUpdateOne) sqlSave(ctx context.Context) (_node *AuditorQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditorquestion.Table, auditorquestion.Columns, sqlgraph.NewFieldSpec(auditorquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditorQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditorquestion.FieldID)
		for _, f := range fields {
			if !auditorquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditorquestion.FieldID {
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
	if value, ok := _u.mutation.RegulationReference(); ok {
		_spec.SetField(auditorquestion.FieldRegulationReference, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(auditorquestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(auditorquestion.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(auditorquestion.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(auditorquestion.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(auditorquestion.FieldRationale, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedFlagIds(); ok {
		_spec.SetField(auditorquestion.FieldRelatedFlagIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedFlagIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditorquestion.FieldRelatedFlagIds, value)
		})
	}
	if _u.mutation.RelatedFlagIdsCleared() {
		_spec.ClearField(auditorquestion.FieldRelatedFlagIds, field.TypeJSON)
	}
	_node = &AuditorQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditorquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
