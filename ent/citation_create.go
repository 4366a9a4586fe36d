// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/citation"
	"github.com/regsentry/regsentry/ent/flag"
)

// CitationCreate is the builder for creating a Citation entity.
type CitationCreate struct {
	config
	mutation *CitationMutation
	hooks    []Hook
}

// SetFlagID sets the "flag_id" field.
func (_c *CitationCreate) SetFlagID(v int) *CitationCreate {
	_c.mutation.SetFlagID(v)
	return _c
}

// SetCitationType sets the "citation_type" field.
func (_c *CitationCreate) SetCitationType(v citation.CitationType) *CitationCreate {
	_c.mutation.SetCitationType(v)
	return _c
}

// SetReference sets the "reference" field.
func (_c *CitationCreate) SetReference(v string) *CitationCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetFlag sets the "flag" edge to the Flag entity.
func (_c *CitationCreate) SetFlag(v *Flag) *CitationCreate {
	return _c.SetFlagID(v.ID)
}

// Mutation returns the CitationMutation object of the builder.
func (_c *CitationCreate) Mutation() *CitationMutation {
	return _c.mutation
}

// Save creates the Citation in the database.
func (_c *CitationCreate) Save(ctx context.Context) (*Citation, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CitationCreate) SaveX(ctx context.Context) *Citation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CitationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CitationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CitationCreate) check() error {
	if _, ok := _c.mutation.FlagID(); !ok {
		return &ValidationError{Name: "flag_id", err: errors.New(`ent: missing required field "Citation.flag_id"`)}
	}
	if _, ok := _c.mutation.CitationType(); !ok {
		return &ValidationError{Name: "citation_type", err: errors.New(`ent: missing required field "Citation.citation_type"`)}
	}
	if v, ok := _c.mutation.CitationType(); ok {
		if err := citation.CitationTypeValidator(v); err != nil {
			return &ValidationError{Name: "citation_type", err: fmt.Errorf(`ent: validator failed for field "Citation.citation_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reference(); !ok {
		return &ValidationError{Name: "reference", err: errors.New(`ent: missing required field "Citation.reference"`)}
	}
	if v, ok := _c.mutation.Reference(); ok {
		if err := citation.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`ent: validator failed for field "Citation.reference": %w`, err)}
		}
	}
	if len(_c.mutation.FlagIDs()) == 0 {
		return &ValidationError{Name: "flag", err: errors.New(`ent: missing required edge "Citation.flag"`)}
	}
	return nil
}

func (_c *CitationCreate) sqlSave(ctx context.Context) (*Citation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CitationCreate) createSpec() (*Citation, *sqlgraph.CreateSpec) {
	var (
		_node = &Citation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(citation.Table, sqlgraph.NewFieldSpec(citation.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CitationType(); ok {
		_spec.SetField(citation.FieldCitationType, field.TypeEnum, value)
		_node.CitationType = value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(citation.FieldReference, field.TypeString, value)
		_node.Reference = value
	}
	if nodes := _c.mutation.FlagIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   citation.FlagTable,
			Columns: []string{citation.FlagColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FlagID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CitationCreateBulk is the builder for creating many Citation entities in bulk.
type CitationCreateBulk struct {
	config
	err      error
	builders []*CitationCreate
}

// Save creates the Citation entities in the database.
func (_c *CitationCreateBulk) Save(ctx context.Context) ([]*Citation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Citation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CitationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CitationCreateBulk) SaveX(ctx context.Context) []*Citation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CitationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CitationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
