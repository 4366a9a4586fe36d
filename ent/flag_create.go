// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/citation"
	"github.com/regsentry/regsentry/ent/flag"
)

// FlagCreate is the builder for creating a Flag entity.
type FlagCreate struct {
	config
	mutation *FlagMutation
	hooks    []Hook
}

// SetAuditID sets the "audit_id" field.
func (_c *FlagCreate) SetAuditID(v int) *FlagCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetChunkID sets the "chunk_id" field.
func (_c *FlagCreate) SetChunkID(v string) *FlagCreate {
	_c.mutation.SetChunkID(v)
	return _c
}

// SetFlagType sets the "flag_type" field.
func (_c *FlagCreate) SetFlagType(v flag.FlagType) *FlagCreate {
	_c.mutation.SetFlagType(v)
	return _c
}

// SetSeverityScore sets the "severity_score" field.
func (_c *FlagCreate) SetSeverityScore(v int) *FlagCreate {
	_c.mutation.SetSeverityScore(v)
	return _c
}

// SetFindings sets the "findings" field.
func (_c *FlagCreate) SetFindings(v string) *FlagCreate {
	_c.mutation.SetFindings(v)
	return _c
}

// SetGaps sets the "gaps" field.
func (_c *FlagCreate) SetGaps(v []string) *FlagCreate {
	_c.mutation.SetGaps(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *FlagCreate) SetRecommendations(v []string) *FlagCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (_c *FlagCreate) SetAnalysisMetadata(v map[string]interface{}) *FlagCreate {
	_c.mutation.SetAnalysisMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FlagCreate) SetCreatedAt(v time.Time) *FlagCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FlagCreate) SetNillableCreatedAt(v *time.Time) *FlagCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FlagCreate) SetUpdatedAt(v time.Time) *FlagCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FlagCreate) SetNillableUpdatedAt(v *time.Time) *FlagCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *FlagCreate) SetAudit(v *Audit) *FlagCreate {
	return _c.SetAuditID(v.ID)
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_c *FlagCreate) AddCitationIDs(ids ...int) *FlagCreate {
	_c.mutation.AddCitationIDs(ids...)
	return _c
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_c *FlagCreate) AddCitations(v ...*Citation) *FlagCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCitationIDs(ids...)
}

// Mutation returns the FlagMutation object of the builder.
func (_c *FlagCreate) Mutation() *FlagMutation {
	return _c.mutation
}

// Save creates the Flag in the database.
func (_c *FlagCreate) Save(ctx context.Context) (*Flag, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FlagCreate) SaveX(ctx context.Context) *Flag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlagCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlagCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FlagCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := flag.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := flag.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FlagCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "Flag.audit_id"`)}
	}
	if _, ok := _c.mutation.ChunkID(); !ok {
		return &ValidationError{Name: "chunk_id", err: errors.New(`ent: missing required field "Flag.chunk_id"`)}
	}
	if _, ok := _c.mutation.FlagType(); !ok {
		return &ValidationError{Name: "flag_type", err: errors.New(`ent: missing required field "Flag.flag_type"`)}
	}
	if v, ok := _c.mutation.FlagType(); ok {
		if err := flag.FlagTypeValidator(v); err != nil {
			return &ValidationError{Name: "flag_type", err: fmt.Errorf(`ent: validator failed for field "Flag.flag_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeverityScore(); !ok {
		return &ValidationError{Name: "severity_score", err: errors.New(`ent: missing required field "Flag.severity_score"`)}
	}
	if _, ok := _c.mutation.Findings(); !ok {
		return &ValidationError{Name: "findings", err: errors.New(`ent: missing required field "Flag.findings"`)}
	}
	if v, ok := _c.mutation.Findings(); ok {
		if err := flag.FindingsValidator(v); err != nil {
			return &ValidationError{Name: "findings", err: fmt.Errorf(`ent: validator failed for field "Flag.findings": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Flag.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Flag.updated_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "Flag.audit"`)}
	}
	return nil
}

func (_c *FlagCreate) sqlSave(ctx context.Context) (*Flag, error) {
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

func (_c *FlagCreate) createSpec() (*Flag, *sqlgraph.CreateSpec) {
	var (
		_node = &Flag{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(flag.Table, sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChunkID(); ok {
		_spec.SetField(flag.FieldChunkID, field.TypeString, value)
		_node.ChunkID = value
	}
	if value, ok := _c.mutation.FlagType(); ok {
		_spec.SetField(flag.FieldFlagType, field.TypeEnum, value)
		_node.FlagType = value
	}
	if value, ok := _c.mutation.SeverityScore(); ok {
		_spec.SetField(flag.FieldSeverityScore, field.TypeInt, value)
		_node.SeverityScore = value
	}
	if value, ok := _c.mutation.Findings(); ok {
		_spec.SetField(flag.FieldFindings, field.TypeString, value)
		_node.Findings = value
	}
	if value, ok := _c.mutation.Gaps(); ok {
		_spec.SetField(flag.FieldGaps, field.TypeJSON, value)
		_node.Gaps = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(flag.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.AnalysisMetadata(); ok {
		_spec.SetField(flag.FieldAnalysisMetadata, field.TypeJSON, value)
		_node.AnalysisMetadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(flag.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(flag.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   flag.AuditTable,
			Columns: []string{flag.AuditColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(audit.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AuditID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CitationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   flag.CitationsTable,
			Columns: []string{flag.CitationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(citation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FlagCreateBulk is the builder for creating many Flag entities in bulk.
type FlagCreateBulk struct {
	config
	err      error
	builders []*FlagCreate
}

// Save creates the Flag entities in the database.
func (_c *FlagCreateBulk) Save(ctx context.Context) ([]*Flag, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Flag, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FlagMutation)
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
func (_c *FlagCreateBulk) SaveX(ctx context.Context) []*Flag {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FlagCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FlagCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
