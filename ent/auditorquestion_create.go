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
	"github.com/regsentry/regsentry/ent/auditorquestion"
)

// AuditorQuestionCreate is the builder for creating a AuditorQuestion entity.
type AuditorQuestionCreate struct {
	config
	mutation *AuditorQuestionMutation
	hooks    []Hook
}

// SetAuditID sets the "audit_id" field.
func (_c *AuditorQuestionCreate) SetAuditID(v int) *AuditorQuestionCreate {
	_c.mutation.SetAuditID(v)
	return _c
}

// SetRegulationReference sets the "regulation_reference" field.
func (_c *AuditorQuestionCreate) SetRegulationReference(v string) *AuditorQuestionCreate {
	_c.mutation.SetRegulationReference(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *AuditorQuestionCreate) SetQuestion(v string) *AuditorQuestionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AuditorQuestionCreate) SetPriority(v int) *AuditorQuestionCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *AuditorQuestionCreate) SetRationale(v string) *AuditorQuestionCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *AuditorQuestionCreate) SetNillableRationale(v *string) *AuditorQuestionCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetRelatedFlagIds sets the "related_flag_ids" field.
func (_c *AuditorQuestionCreate) SetRelatedFlagIds(v []int) *AuditorQuestionCreate {
	_c.mutation.SetRelatedFlagIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditorQuestionCreate) SetCreatedAt(v time.Time) *AuditorQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditorQuestionCreate) SetNillableCreatedAt(v *time.Time) *AuditorQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAudit sets the "audit" edge to the Audit entity.
func (_c *AuditorQuestionCreate) SetAudit(v *Audit) *AuditorQuestionCreate {
	return _c.SetAuditID(v.ID)
}

// Mutation returns the AuditorQuestionMutation object of the builder.
func (_c *AuditorQuestionCreate) Mutation() *AuditorQuestionMutation {
	return _c.mutation
}

// Save creates the AuditorQuestion in the database.
func (_c *AuditorQuestionCreate) Save(ctx context.Context) (*AuditorQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditorQuestionCreate) SaveX(ctx context.Context) *AuditorQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditorQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditorQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditorQuestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := auditorquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditorQuestionCreate) check() error {
	if _, ok := _c.mutation.AuditID(); !ok {
		return &ValidationError{Name: "audit_id", err: errors.New(`ent: missing required field "AuditorQuestion.audit_id"`)}
	}
	if _, ok := _c.mutation.RegulationReference(); !ok {
		return &ValidationError{Name: "regulation_reference", err: errors.New(`ent: missing required field "AuditorQuestion.regulation_reference"`)}
	}
	if v, ok := _c.mutation.RegulationReference(); ok {
		if err := auditorquestion.RegulationReferenceValidator(v); err != nil {
			return &ValidationError{Name: "regulation_reference", err: fmt.Errorf(`ent: validator failed for field "AuditorQuestion.regulation_reference": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "AuditorQuestion.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := auditorquestion.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "AuditorQuestion.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "AuditorQuestion.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := auditorquestion.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AuditorQuestion.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditorQuestion.created_at"`)}
	}
	if len(_c.mutation.AuditIDs()) == 0 {
		return &ValidationError{Name: "audit", err: errors.New(`ent: missing required edge "AuditorQuestion.audit"`)}
	}
	return nil
}

func (_c *AuditorQuestionCreate) sqlSave(ctx context.Context) (*AuditorQuestion, error) {
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

func (_c *AuditorQuestionCreate) createSpec() (*AuditorQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditorQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditorquestion.Table, sqlgraph.NewFieldSpec(auditorquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RegulationReference(); ok {
		_spec.SetField(auditorquestion.FieldRegulationReference, field.TypeString, value)
		_node.RegulationReference = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(auditorquestion.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(auditorquestion.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(auditorquestion.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.RelatedFlagIds(); ok {
		_spec.SetField(auditorquestion.FieldRelatedFlagIds, field.TypeJSON, value)
		_node.RelatedFlagIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(auditorquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AuditIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditorquestion.AuditTable,
			Columns: []string{auditorquestion.AuditColumn},
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

// AuditorQuestionCreateBulk is the builder for creating many AuditorQuestion entities in bulk.
type AuditorQuestionCreateBulk struct {
	config
	err      error
	builders []*AuditorQuestionCreate
}

// Save creates the AuditorQuestion entities in the database.
func (_c *AuditorQuestionCreateBulk) Save(ctx context.Context) ([]*AuditorQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditorQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditorQuestionMutation)
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
func (_c *AuditorQuestionCreateBulk) SaveX(ctx context.Context) []*AuditorQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditorQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditorQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
