// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/chunk"
	"github.com/regsentry/regsentry/ent/document"
)

// ChunkCreate is the builder for creating a Chunk entity.
type ChunkCreate struct {
	config
	mutation *ChunkMutation
	hooks    []Hook
}

// SetChunkID sets the "chunk_id" field.
func (_c *ChunkCreate) SetChunkID(v string) *ChunkCreate {
	_c.mutation.SetChunkID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ChunkCreate) SetDocumentID(v int) *ChunkCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *ChunkCreate) SetChunkIndex(v int) *ChunkCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetSectionPath sets the "section_path" field.
func (_c *ChunkCreate) SetSectionPath(v []string) *ChunkCreate {
	_c.mutation.SetSectionPath(v)
	return _c
}

// SetParentHeading sets the "parent_heading" field.
func (_c *ChunkCreate) SetParentHeading(v string) *ChunkCreate {
	_c.mutation.SetParentHeading(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ChunkCreate) SetContent(v string) *ChunkCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *ChunkCreate) SetTokenCount(v int) *ChunkCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ChunkCreate) SetMetadata(v map[string]interface{}) *ChunkCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetEmbeddingStatus sets the "embedding_status" field.
func (_c *ChunkCreate) SetEmbeddingStatus(v chunk.EmbeddingStatus) *ChunkCreate {
	_c.mutation.SetEmbeddingStatus(v)
	return _c
}

// SetNillableEmbeddingStatus sets the "embedding_status" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableEmbeddingStatus(v *chunk.EmbeddingStatus) *ChunkCreate {
	if v != nil {
		_c.SetEmbeddingStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChunkCreate) SetCreatedAt(v time.Time) *ChunkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChunkCreate) SetNillableCreatedAt(v *time.Time) *ChunkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ChunkCreate) SetDocument(v *Document) *ChunkCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ChunkMutation object of the builder.
func (_c *ChunkCreate) Mutation() *ChunkMutation {
	return _c.mutation
}

// Save creates the Chunk in the database.
func (_c *ChunkCreate) Save(ctx context.Context) (*Chunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChunkCreate) SaveX(ctx context.Context) *Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChunkCreate) defaults() {
	if _, ok := _c.mutation.EmbeddingStatus(); !ok {
		v := chunk.DefaultEmbeddingStatus
		_c.mutation.SetEmbeddingStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chunk.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChunkCreate) check() error {
	if _, ok := _c.mutation.ChunkID(); !ok {
		return &ValidationError{Name: "chunk_id", err: errors.New(`ent: missing required field "Chunk.chunk_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "Chunk.document_id"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "Chunk.chunk_index"`)}
	}
	if _, ok := _c.mutation.ParentHeading(); !ok {
		return &ValidationError{Name: "parent_heading", err: errors.New(`ent: missing required field "Chunk.parent_heading"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Chunk.content"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "Chunk.token_count"`)}
	}
	if _, ok := _c.mutation.EmbeddingStatus(); !ok {
		return &ValidationError{Name: "embedding_status", err: errors.New(`ent: missing required field "Chunk.embedding_status"`)}
	}
	if v, ok := _c.mutation.EmbeddingStatus(); ok {
		if err := chunk.EmbeddingStatusValidator(v); err != nil {
			return &ValidationError{Name: "embedding_status", err: fmt.Errorf(`ent: validator failed for field "Chunk.embedding_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Chunk.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "Chunk.document"`)}
	}
	return nil
}

func (_c *ChunkCreate) sqlSave(ctx context.Context) (*Chunk, error) {
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

func (_c *ChunkCreate) createSpec() (*Chunk, *sqlgraph.CreateSpec) {
	var (
		_node = &Chunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chunk.Table, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ChunkID(); ok {
		_spec.SetField(chunk.FieldChunkID, field.TypeString, value)
		_node.ChunkID = value
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(chunk.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.SectionPath(); ok {
		_spec.SetField(chunk.FieldSectionPath, field.TypeJSON, value)
		_node.SectionPath = value
	}
	if value, ok := _c.mutation.ParentHeading(); ok {
		_spec.SetField(chunk.FieldParentHeading, field.TypeString, value)
		_node.ParentHeading = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(chunk.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(chunk.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(chunk.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.EmbeddingStatus(); ok {
		_spec.SetField(chunk.FieldEmbeddingStatus, field.TypeEnum, value)
		_node.EmbeddingStatus = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chunk.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chunk.DocumentTable,
			Columns: []string{chunk.DocumentColumn},
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
	return _node, _spec
}

// ChunkCreateBulk is the builder for creating many Chunk entities in bulk.
type ChunkCreateBulk struct {
	config
	err      error
	builders []*ChunkCreate
}

// Save creates the Chunk entities in the database.
func (_c *ChunkCreateBulk) Save(ctx context.Context) ([]*Chunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChunkMutation)
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
func (_c *ChunkCreateBulk) SaveX(ctx context.Context) []*Chunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
