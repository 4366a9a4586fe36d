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
	"github.com/regsentry/regsentry/ent/compliancescore"
)

// ComplianceScoreCreate is the builder for creating a ComplianceScore entity.
type ComplianceScoreCreate struct {
	config
	mutation *ComplianceScoreMutation
	hooks    []Hook
}

// SetAuditID sets the "audit_id" field.
func (_c *ComplianceScoreCreate) SetAuditID(v int) *ComplianceScoreCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *ComplianceScoreCreate) SetOverallScore(v float64) *ComplianceScoreCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetRedCount sets the "red_count" field.
func (_c *ComplianceScoreCreate) SetRedCount(v int) *ComplianceScoreCreate {
	_c.mutation.SetRedCount(v)
	return _c
}

// SetNillableRedCount sets the "red_count" field if the given value is not nil.
func (_c *ComplianceScoreCreate) SetNillableRedCount(v *int) *ComplianceScoreCreate {
	if v != nil {
		_c.SetRedCount(*v)
	}
	return _c
}

// SetYellowCount sets the "yellow_count" field.
func (_c *ComplianceScoreCreate) SetYellowCount(v int) *ComplianceScoreCreate {
	_c.mutation.SetYellowCount(v)
	return _c
}

// SetNillableYellowCount sets the "yellow_count" field if the given value is not nil.
func (_c *ComplianceScoreCreate) SetNillableYellowCount(v *int) *ComplianceScoreCreate {
	if v != nil {
		_c.SetYellowCount(*v)
	}
	return _c
}

// SetGreenCount sets the "green_count" field.
func (_c *ComplianceScoreCreate) SetGreenCount(v int) *ComplianceScoreCreate {
	_c.mutation.SetGreenCount(v)
	return _c
}

// SetNillableGreenCount sets the "green_count" field if the given value is not nil.
func (_c *ComplianceScoreCreate) SetNillableGreenCount(v *int) *ComplianceScoreCreate {
	if v != nil {
		_c.SetGreenCount(*v)
	}
	return _c
}

// SetTotalFlags sets the "total_flags" field.
func (_c *ComplianceScoreCreate) SetTotalFlags(v int) *ComplianceScoreCreate {
	_c.mutation.SetTotalFlags(v)
	return _c
}

// SetNillableTotalFlags sets the "total_flags" field if the given value is not nil.
func (_c *ComplianceScoreCreate) SetNillableTotalFlags(v *int) *ComplianceScoreCreate {
	if v != nil {
		_c.SetTotalFlags(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ComplianceScoreCreate) SetCreatedAt(v time.Time) *ComplianceScoreCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ComplianceScoreCreate) SetNillableCreatedAt(v *time.Time) *ComplianceScoreCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ComplianceScoreCreate) SetUpdatedAt(v time.Time) *ComplianceScoreCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ComplianceScoreCreate) SetNillableUpdatedAt(v *time.Time) *ComplianceScoreCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *ComplianceScoreCreate) SetAudit(v *Audit) *ComplianceScoreCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the ComplianceScoreMutation object of the builder.
func (_c *ComplianceScoreCreate) Mutation() *ComplianceScoreMutation {
	return _c.mutation
}

// Save creates the ComplianceScore in the database.
func (_c *ComplianceScoreCreate) Save(ctx context.Context) (*ComplianceScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ComplianceScoreCreate) SaveX(ctx context.Context) *ComplianceScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ComplianceScoreCreate) defaults() {
	if _, ok := _c.mutation.RedCount(); !ok {
		v := compliancescore.DefaultRedCount
		_c.mutation.SetRedCount(v)
	}
	if _, ok := _c.mutation.YellowCount(); !ok {
		v := compliancescore.DefaultYellowCount
		_c.mutation.SetYellowCount(v)
	}
	if _, ok := _c.mutation.GreenCount(); !ok {
		v := compliancescore.DefaultGreenCount
		_c.mutation.SetGreenCount(v)
	}
	if _, ok := _c.mutation.TotalFlags(); !ok {
		v := compliancescore.DefaultTotalFlags
		_c.mutation.SetTotalFlags(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := compliancescore.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := compliancescore.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ComplianceScoreCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "ComplianceScore.audit_id"`)}
	}
	if _, ok := _c.mutation.OverallScore(); !ok {
		return &ValidationError{Name: "overall_score", err: errors.New(`ent: missing required field "ComplianceScore.overall_score"`)}
	}
	if _, ok := _c.mutation.RedCount(); !ok {
		return &ValidationError{Name: "red_count", err: errors.New(`ent: missing required field "ComplianceScore.red_count"`)}
	}
	if _, ok := _c.mutation.YellowCount(); !ok {
		return &ValidationError{Name: "yellow_count", err: errors.New(`ent: missing required field "ComplianceScore.yellow_count"`)}
	}
	if _, ok := _c.mutation.GreenCount(); !ok {
		return &ValidationError{Name: "green_count", err: errors.New(`ent: missing required field "ComplianceScore.green_count"`)}
	}
	if _, ok := _c.mutation.TotalFlags(); !ok {
		return &ValidationError{Name: "total_flags", err: errors.New(`ent: missing required field "ComplianceScore.total_flags"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ComplianceScore.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ComplianceScore.updated_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "ComplianceScore.audit"`)}
	}
	return nil
}

func (_c *ComplianceScoreCreate) sqlSave(ctx context.Context) (*ComplianceScore, error) {
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

func (_c *ComplianceScoreCreate) createSpec() (*ComplianceScore, *sqlgraph.CreateSpec) {
	var (
		_node = &ComplianceScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(compliancescore.Table, sqlgraph.NewFieldSpec(compliancescore.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(compliancescore.FieldOverallScore, field.TypeFloat64, value)
		_node.OverallScore = value
	}
	if value, ok := _c.mutation.RedCount(); ok {
		_spec.SetField(compliancescore.FieldRedCount, field.TypeInt, value)
		_node.RedCount = value
	}
	if value, ok := _c.mutation.YellowCount(); ok {
		_spec.SetField(compliancescore.FieldYellowCount, field.TypeInt, value)
		_node.YellowCount = value
	}
	if value, ok := _c.mutation.GreenCount(); ok {
		_spec.SetField(compliancescore.FieldGreenCount, field.TypeInt, value)
		_node.GreenCount = value
	}
	if value, ok := _c.mutation.TotalFlags(); ok {
		_spec.SetField(compliancescore.FieldTotalFlags, field.TypeInt, value)
		_node.TotalFlags = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(compliancescore.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(compliancescore.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   compliancescore.AuditTable,
			Columns: []string{compliancescore.AuditColumn},
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

// ComplianceScoreCreateBulk is the builder for creating many ComplianceScore entities in bulk.
type ComplianceScoreCreateBulk struct {
	config
	err      error
	builders []*ComplianceScoreCreate
}

// Save creates the ComplianceScore entities in the database.
func (_c *ComplianceScoreCreateBulk) Save(ctx context.Context) ([]*ComplianceScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ComplianceScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ComplianceScoreMutation)
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
func (_c *ComplianceScoreCreateBulk) SaveX(ctx context.Context) []*ComplianceScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ComplianceScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ComplianceScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
