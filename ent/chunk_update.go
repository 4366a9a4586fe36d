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
	"github.com/regsentry/regsentry/ent/chunk"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ChunkUpdate is the builder for updating Chunk entities.
type ChunkUpdate struct {
	config
	hooks    []Hook
	mutation *ChunkMutation
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdate) Where(ps ...predicate.Chunk) *ChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSectionPath sets the "section_path" field.
func (_u *ChunkUpdate) SetSectionPath(v []string) *ChunkUpdate {
	_u.mutation.SetSectionPath(v)
	return _u
}

// AppendSectionPath appends value to the "section_path" field.
func (_u *ChunkUpdate) AppendSectionPath(v []string) *ChunkUpdate {
	_u.mutation.AppendSectionPath(v)
	return _u
}

// ClearSectionPath clears the value of the "section_path" field.
func (_u *ChunkUpdate) ClearSectionPath() *ChunkUpdate {
	_u.mutation.ClearSectionPath()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ChunkUpdate) SetMetadata(v map[string]interface{}) *ChunkUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ChunkUpdate) ClearMetadata() *ChunkUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbeddingStatus sets the "embedding_status" field.
func (_u *ChunkUpdate) SetEmbeddingStatus(v chunk.EmbeddingStatus) *ChunkUpdate {
	_u.mutation.SetEmbeddingStatus(v)
	return _u
}

// SetNillableEmbeddingStatus sets the "embedding_status" field if the given value is not nil.
func (_u *ChunkUpdate) SetNillableEmbeddingStatus(v *chunk.EmbeddingStatus) *ChunkUpdate {
	if v != nil {
		_u.SetEmbeddingStatus(*v)
	}
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdate) Mutation() *ChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkUpdate) check() error {
	if v, ok := _u.mutation.EmbeddingStatus(); ok {
		if err := chunk.EmbeddingStatusValidator(v); err != nil {
			return &ValidationError{Name: "embedding_status", err: fmt.Errorf(`ent: validator failed for field "Chunk.embedding_status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chunk.document"`)
	}
	return nil
}

func (_u *ChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SectionPath(); ok {
		_spec.SetField(chunk.FieldSectionPath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSectionPath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chunk.FieldSectionPath, value)
		})
	}
	if _u.mutation.SectionPathCleared() {
		_spec.ClearField(chunk.FieldSectionPath, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(chunk.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(chunk.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmbeddingStatus(); ok {
		_spec.SetField(chunk.FieldEmbeddingStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChunkUpdateOne is the builder for updating a single Chunk entity.
type ChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChunkMutation
}

// SetSectionPath sets the "section_path" field.
func (_u *ChunkUpdateOne) SetSectionPath(v []string) *ChunkUpdateOne {
	_u.mutation.SetSectionPath(v)
	return _u
}

// AppendSectionPath appends value to the "section_path" field.
func (_u *ChunkUpdateOne) AppendSectionPath(v []string) *ChunkUpdateOne {
	_u.mutation.AppendSectionPath(v)
	return _u
}

// ClearSectionPath clears the value of the "section_path" field.
func (_u *ChunkUpdateOne) ClearSectionPath() *ChunkUpdateOne {
	_u.mutation.ClearSectionPath()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ChunkUpdateOne) SetMetadata(v map[string]interface{}) *ChunkUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ChunkUpdateOne) ClearMetadata() *ChunkUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetEmbeddingStatus sets the "embedding_status" field.
func (_u *ChunkUpdateOne) SetEmbeddingStatus(v chunk.EmbeddingStatus) *ChunkUpdateOne {
	_u.mutation.SetEmbeddingStatus(v)
	return _u
}

// SetNillableEmbeddingStatus sets the "embedding_status" field if the given value is not nil.
func (_u *ChunkUpdateOne) SetNillableEmbeddingStatus(v *chunk.EmbeddingStatus) *ChunkUpdateOne {
	if v != nil {
		_u.SetEmbeddingStatus(*v)
	}
	return _u
}

// Mutation returns the ChunkMutation object of the builder.
func (_u *ChunkUpdateOne) Mutation() *ChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChunkUpdate builder.
func (_u *ChunkUpdateOne) Where(ps ...predicate.Chunk) *ChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChunkUpdateOne) Select(field string, fields ...string) *ChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chunk entity.
func (_u *ChunkUpdateOne) Save(ctx context.Context) (*Chunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkUpdateOne) SaveX(ctx context.Context) *Chunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkUpdateOne) check() error {
	if v, ok := _u.mutation.EmbeddingStatus(); ok {
		if err := chunk.EmbeddingStatusValidator(v); err != nil {
			return &ValidationError{Name: "embedding_status", err: fmt.Errorf(`ent: validator failed for field "Chunk.embedding_status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Chunk.document"`)
	}
	return nil
}

func (_u *ChunkUpdateOne) sqlSave(ctx context.Context) (_node *Chunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunk.Table, chunk.Columns, sqlgraph.NewFieldSpec(chunk.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chunk.FieldID)
		for _, f := range fields {
			if !chunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chunk.FieldID {
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
	if value, ok := _u.mutation.SectionPath(); ok {
		_spec.SetField(chunk.FieldSectionPath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSectionPath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, chunk.FieldSectionPath, value)
		})
	}
	if _u.mutation.SectionPathCleared() {
		_spec.ClearField(chunk.FieldSectionPath, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(chunk.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(chunk.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmbeddingStatus(); ok {
		_spec.SetField(chunk.FieldEmbeddingStatus, field.TypeEnum, value)
	}
	_node = &Chunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
