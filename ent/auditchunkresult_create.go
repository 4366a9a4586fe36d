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
	"github.com/regsentry/regsentry/ent/auditchunkresult"
)

// AuditChunkResultCreate is the builder for creating a AuditChunkResult entity.
type AuditChunkResultCreate struct {
	config
	mutation *AuditChunkResultMutation
	hooks    []Hook
}

// SetAuditID sets the "audit_id" field.
func (_c *AuditChunkResultCreate) SetAuditID(v int) *AuditChunkResultCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetChunkID sets the "chunk_id" field.
func (_c *AuditChunkResultCreate) SetChunkID(v string) *AuditChunkResultCreate {
	_c.mutation.SetChunkID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditChunkResultCreate) SetStatus(v auditchunkresult.Status) *AuditChunkResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AuditChunkResultCreate) SetNillableStatus(v *auditchunkresult.Status) *AuditChunkResultCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAnalysis sets the "analysis" field.
func (_c *AuditChunkResultCreate) SetAnalysis(v map[string]interface{}) *AuditChunkResultCreate {
	_c.mutation.SetAnalysis(v)
	return _c
}

// SetContextSummary sets the "context_summary" field.
func (_c *AuditChunkResultCreate) SetContextSummary(v map[string]interface{}) *AuditChunkResultCreate {
	_c.mutation.SetContextSummary(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditChunkResultCreate) SetCreatedAt(v time.Time) *AuditChunkResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditChunkResultCreate) SetNillableCreatedAt(v *time.Time) *AuditChunkResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *AuditChunkResultCreate) SetAudit(v *Audit) *AuditChunkResultCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the AuditChunkResultMutation object of the builder.
func (_c *AuditChunkResultCreate) Mutation() *AuditChunkResultMutation {
	return _c.mutation
}

// Save creates the AuditChunkResult in the database.
func (_c *AuditChunkResultCreate) Save(ctx context.Context) (*AuditChunkResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditChunkResultCreate) SaveX(ctx context.Context) *AuditChunkResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditChunkResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditChunkResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditChunkResultCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := auditchunkresult.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditchunkresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditChunkResultCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "AuditChunkResult.audit_id"`)}
	}
	if _, ok := _c.mutation.ChunkID(); !ok {
		return &ValidationError{Name: "chunk_id", err: errors.New(`ent: missing required field "AuditChunkResult.chunk_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AuditChunkResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := auditchunkresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AuditChunkResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Analysis(); !ok {
		return &ValidationError{Name: "analysis", err: errors.New(`ent: missing required field "AuditChunkResult.analysis"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditChunkResult.created_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "AuditChunkResult.audit"`)}
	}
	return nil
}

func (_c *AuditChunkResultCreate) sqlSave(ctx context.Context) (*AuditChunkResult, error) {
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

func (_c *AuditChunkResultCreate) createSpec() (*AuditChunkResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditChunkResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditchunkresult.Table, sqlgraph.NewFieldSpec(auditchunkresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChunkID(); ok {
		_spec.SetField(auditchunkresult.FieldChunkID, field.TypeString, value)
		_node.ChunkID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(auditchunkresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Analysis(); ok {
		_spec.SetField(auditchunkresult.FieldAnalysis, field.TypeJSON, value)
		_node.Analysis = value
	}
	if value, ok := _c.mutation.ContextSummary(); ok {
		_spec.SetField(auditchunkresult.FieldContextSummary, field.TypeJSON, value)
		_node.ContextSummary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditchunkresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditchunkresult.AuditTable,
			Columns: []string{auditchunkresult.AuditColumn},
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
	return _node, _spec
}

// AuditChunkResultCreateBulk is the builder for creating many AuditChunkResult entities in bulk.
type AuditChunkResultCreateBulk struct {
	config
	err      error
	builders []*AuditChunkResultCreate
}

// Save creates the AuditChunkResult entities in the database.
func (_c *AuditChunkResultCreateBulk) Save(ctx context.Context) ([]*AuditChunkResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditChunkResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditChunkResultMutation)
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
func (_c *AuditChunkResultCreateBulk) SaveX(ctx context.Context) []*AuditChunkResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditChunkResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditChunkResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
