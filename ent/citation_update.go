// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/citation"
	"github.com/regsentry/regsentry/ent/predicate"
)

// CitationUpdate is the builder for updating Citation entities.
type CitationUpdate struct {
	config
	hooks    []Hook
	mutation *CitationMutation
}

// Where appends a list predicates to the CitationUpdate builder.
func (_u *CitationUpdate) Where(ps ...predicate.Citation) *CitationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCitationType sets the "citation_type" field.
func (_u *CitationUpdate) SetCitationType(v citation.CitationType) *CitationUpdate {
	_u.mutation.SetCitationType(v)
	return _u
}

// SetNillableCitationType sets the "citation_type" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableCitationType(v *citation.CitationType) *CitationUpdate {
	if v != nil {
		_u.SetCitationType(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *CitationUpdate) SetReference(v string) *CitationUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *CitationUpdate) SetNillableReference(v *string) *CitationUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// Mutation returns the CitationMutation object of the builder.
func (_u *CitationUpdate) Mutation() *CitationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CitationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CitationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CitationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CitationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CitationUpdate) check() error {
	if v, ok := _u.mutation.CitationType(); ok {
		if err := citation.CitationTypeValidator(v); err != nil {
			return &ValidationError{Name: "citation_type", err: fmt.Errorf(`ent: validator failed for field "Citation.citation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reference(); ok {
		if err := citation.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "Citation.reference": %w`, err)}
		}
	}
	if _u.mutation.FlagCleared() && len(_u.mutation.FlagIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.flag"`)
	}
	return nil
}

func (_u *CitationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(citation.Table, citation.Columns, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CitationType(); ok {
		_spec.SetField(citation.FieldCitationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(citation.FieldReference, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{citation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CitationUpdateOne is the builder for updating a single Citation entity.
type CitationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CitationMutation
}

// SetCitationType sets the "citation_type" field.
func (_u *CitationUpdateOne) SetCitationType(v citation.CitationType) *CitationUpdateOne {
	_u.mutation.SetCitationType(v)
	return _u
}

// SetNillableCitationType sets the "citation_type" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableCitationType(v *citation.CitationType) *CitationUpdateOne {
	if v != nil {
		_u.SetCitationType(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *CitationUpdateOne) SetReference(v string) *CitationUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *CitationUpdateOne) SetNillableReference(v *string) *CitationUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// Mutation returns the CitationMutation object of the builder.
func (_u *CitationUpdateOne) Mutation() *CitationMutation {
	return _u.mutation
}

// Where appends a list predicates to the CitationUpdate builder.
func (_u *CitationUpdateOne) Where(ps ...predicate.Citation) *CitationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CitationUpdateOne) Select(field string, fields ...string) *CitationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Citation entity.
func (_u *CitationUpdateOne) Save(ctx context.Context) (*Citation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CitationUpdateOne) SaveX(ctx context.Context) *Citation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CitationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CitationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CitationUpdateOne) check() error {
	if v, ok := _u.mutation.CitationType(); ok {
		if err := citation.CitationTypeValidator(v); err != nil {
			return &ValidationError{Name: "citation_type", err: fmt.Errorf(`ent: validator failed for field "Citation.citation_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reference(); ok {
		if err := citation.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "Citation.reference": %w`, err)}
		}
	}
	if _u.mutation.FlagCleared() && len(_u.mutation.FlagIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Citation.flag"`)
	}
	return nil
}

func (_u *CitationUpdateOne) sqlSave(ctx context.Context) (_node *Citation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(citation.Table, citation.Columns, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Citation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, citation.FieldID)
		for _, f := range fields {
			if !citation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != citation.FieldID {
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
	if value, ok := _u.mutation.CitationType(); ok {
		_spec.SetField(citation.FieldCitationType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(citation.FieldReference, field.TypeString, value)
	}
	_node = &Citation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{citation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
