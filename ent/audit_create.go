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
	"github.com/regsentry/regsentry/ent/auditorquestion"
	"github.com/regsentry/regsentry/ent/compliancescore"
	"github.com/regsentry/regsentry/ent/document"
	"github.com/regsentry/regsentry/ent/flag"
)

// AuditCreate is the builder for creating a Audit entity.
type AuditCreate struct {
	config
	mutation *AuditMutation
	hooks    []Hook
}

// SetExternalID sets the "external_id" field.
func (_c *AuditCreate) SetExternalID(v string) *AuditCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *AuditCreate) SetDocumentID(v int) *AuditCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AuditCreate) SetStatus(v audit.Status) *AuditCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AuditCreate) SetNillableStatus(v *audit.Status) *AuditCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIsDraft sets the "is_draft" field.
func (_c *AuditCreate) SetIsDraft(v bool) *AuditCreate {
	_c.mutation.SetIsDraft(v)
	return _c
}

// SetNillableIsDraft sets the "is_draft" field if the given value is not nil.
func (_c *AuditCreate) SetNillableIsDraft(v *bool) *AuditCreate {
	if v != nil {
		_c.SetIsDraft(*v)
	}
	return _c
}

// SetChunkTotal sets the "chunk_total" field.
func (_c *AuditCreate) SetChunkTotal(v int) *AuditCreate {
	_c.mutation.SetChunkTotal(v)
	return _c
}

// SetNillableChunkTotal sets the "chunk_total" field if the given value is not nil.
func (_c *AuditCreate) SetNillableChunkTotal(v *int) *AuditCreate {
	if v != nil {
		_c.SetChunkTotal(*v)
	}
	return _c
}

// SetChunkCompleted sets the "chunk_completed" field.
func (_c *AuditCreate) SetChunkCompleted(v int) *AuditCreate {
	_c.mutation.SetChunkCompleted(v)
	return _c
}

// SetNillableChunkCompleted sets the "chunk_completed" field if the given value is not nil.
func (_c *AuditCreate) SetNillableChunkCompleted(v *int) *AuditCreate {
	if v != nil {
		_c.SetChunkCompleted(*v)
	}
	return _c
}

// SetLastChunkID sets the "last_chunk_id" field.
func (_c *AuditCreate) SetLastChunkID(v string) *AuditCreate {
	_c.mutation.SetLastChunkID(v)
	return _c
}

// SetNillableLastChunkID sets the "last_chunk_id" field if the given value is not nil.
func (_c *AuditCreate) SetNillableLastChunkID(v *string) *AuditCreate {
	if v != nil {
		_c.SetLastChunkID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AuditCreate) SetCreatedAt(v time.Time) *AuditCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCreatedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AuditCreate) SetStartedAt(v time.Time) *AuditCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableStartedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AuditCreate) SetCompletedAt(v time.Time) *AuditCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableCompletedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetFailedAt sets the "failed_at" field.
func (_c *AuditCreate) SetFailedAt(v time.Time) *AuditCreate {
	_c.mutation.SetFailedAt(v)
	return _c
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_c *AuditCreate) SetNillableFailedAt(v *time.Time) *AuditCreate {
	if v != nil {
		_c.SetFailedAt(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *AuditCreate) SetFailureReason(v string) *AuditCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *AuditCreate) SetNillableFailureReason(v *string) *AuditCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *AuditCreate) SetDocument(v *Document) *AuditCreate {
	return _c.SetDocumentID(v.ID)
}

// AddChunkResultIDs adds the "chunk_results" edge to the AuditChunkResult entity by IDs.
func (_c *AuditCreate) AddChunkResultIDs(ids ...int) *AuditCreate {
	_c.mutation.AddChunkResultIDs(ids...)
	return _c
}

// AddChunkResults adds the "chunk_results" edges to the AuditChunkResult entity.
func (_c *AuditCreate) AddChunkResults(v ...*AuditChunkResult) *AuditCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkResultIDs(ids...)
}

// AddFlagIDs adds the "flags" edge to the Flag entity by IDs.
func (_c *AuditCreate) AddFlagIDs(ids ...int) *AuditCreate {
	_c.mutation.AddFlagIDs(ids...)
	return _c
}

// AddFlags adds the "flags" edges to the Flag entity.
func (_c *AuditCreate) AddFlags(v ...*Flag) *AuditCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFlagIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the AuditorQuestion entity by IDs.
func (_c *AuditCreate) AddQuestionIDs(ids ...int) *AuditCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the AuditorQuestion entity.
func (_c *AuditCreate) AddQuestions(v ...*AuditorQuestion) *AuditCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddScoreIDs adds the "scores" edge to the ComplianceScore entity by IDs.
func (_c *AuditCreate) AddScoreIDs(ids ...int) *AuditCreate {
	_c.mutation.AddScoreIDs(ids...)
	return _c
}

// AddScores adds the "scores" edges to the ComplianceScore entity.
func (_c *AuditCreate) AddScores(v ...*ComplianceScore) *AuditCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScoreIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (_c *AuditCreate) Mutation() *AuditMutation {
	return _c.mutation
}

// Save creates the Audit in the database.
func (_c *AuditCreate) Save(ctx context.Context) (*Audit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditCreate) SaveX(ctx context.Context) *Audit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := audit.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IsDraft(); !ok {
		v := audit.DefaultIsDraft
		_c.mutation.SetIsDraft(v)
	}
	if _, ok := _c.mutation.ChunkTotal(); !ok {
		v := audit.DefaultChunkTotal
		_c.mutation.SetChunkTotal(v)
	}
	if _, ok := _c.mutation.ChunkCompleted(); !ok {
		v := audit.DefaultChunkCompleted
		_c.mutation.SetChunkCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := audit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditCreate) check() error {
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Audit.external_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Audit.document_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Audit.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDraft(); !ok {
		return &ValidationError{Name: "is_draft", err: errors.New(`ent: missing required field "Audit.is_draft"`)}
	}
	if _, ok := _c.mutation.ChunkTotal(); !ok {
		return &ValidationError{Name: "chunk_total", err: errors.New(`ent: missing required field "Audit.chunk_total"`)}
	}
	if _, ok := _c.mutation.ChunkCompleted(); !ok {
		return &ValidationError{Name: "chunk_completed", err: errors.New(`ent: missing required field "Audit.chunk_completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Audit.created_at"`)}
	}
	if v, ok := _c.mutation.FailureReason(); ok {
		if err := audit.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "Audit.failure_reason": %w`, err)}
		}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Audit.document"`)}
	}
	return nil
}

func (_c *AuditCreate) sqlSave(ctx context.Context) (*Audit, error) {
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

func (_c *AuditCreate) createSpec() (*Audit, *sqlgraph.CreateSpec) {
	var (
		_node = &Audit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(audit.Table, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(audit.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IsDraft(); ok {
		_spec.SetField(audit.FieldIsDraft, field.TypeBool, value)
		_node.IsDraft = value
	}
	if value, ok := _c.mutation.ChunkTotal(); ok {
		_spec.SetField(audit.FieldChunkTotal, field.TypeInt, value)
		_node.ChunkTotal = value
	}
	if value, ok := _c.mutation.ChunkCompleted(); ok {
		_spec.SetField(audit.FieldChunkCompleted, field.TypeInt, value)
		_node.ChunkCompleted = value
	}
	if value, ok := _c.mutation.LastChunkID(); ok {
		_spec.SetField(audit.FieldLastChunkID, field.TypeString, value)
		_node.LastChunkID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(audit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(audit.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.FailedAt(); ok {
		_spec.SetField(audit.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(audit.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   audit.DocumentTable,
			Columns: []string{audit.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChunkResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.ChunkResultsTable,
			Columns: []string{audit.ChunkResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditchunkresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FlagsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.FlagsTable,
			Columns: []string{audit.FlagsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.QuestionsTable,
			Columns: []string{audit.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditorquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   audit.ScoresTable,
			Columns: []string{audit.ScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(compliancescore.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AuditCreateBulk is the builder for creating many Audit entities in bulk.
type AuditCreateBulk struct {
	config
	err      error
	builders []*AuditCreate
}

// Save creates the Audit entities in the database.
func (_c *AuditCreateBulk) Save(ctx context.Context) ([]*Audit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Audit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditMutation)
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
func (_c *AuditCreateBulk) SaveX(ctx context.Context) []*Audit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
