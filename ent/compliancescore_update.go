// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/compliancescore"
	"github.com/regsentry/regsentry/ent/predicate"
)

// ComplianceScoreUpdate is the builder for updating ComplianceScore entities.
type ComplianceScoreUpdate struct {
	config
	hooks    []Hook
	mutation *ComplianceScoreMutation
}

// Where appends a list predicates to the ComplianceScoreUpdate builder.
func (_u *ComplianceScoreUpdate) Where(ps ...predicate.ComplianceScore) *ComplianceScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *ComplianceScoreUpdate) SetOverallScore(v float64) *ComplianceScoreUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *ComplianceScoreUpdate) SetNillableOverallScore(v *float64) *ComplianceScoreUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *ComplianceScoreUpdate) AddOverallScore(v float64) *ComplianceScoreUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetRedCount sets the "red_count" field.
func (_u *ComplianceScoreUpdate) SetRedCount(v int) *ComplianceScoreUpdate {
	_u.mutation.ResetRedCount()
	_u.mutation.SetRedCount(v)
	return _u
}

// SetNillableRedCount sets the "red_count" field if the given value is not nil.
func (_u *ComplianceScoreUpdate) SetNillableRedCount(v *int) *ComplianceScoreUpdate {
	if v != nil {
		_u.SetRedCount(*v)
	}
	return _u
}

// AddRedCount adds value to the "red_count" field.
func (_u *ComplianceScoreUpdate) AddRedCount(v int) *ComplianceScoreUpdate {
	_u.mutation.AddRedCount(v)
	return _u
}

// SetYellowCount sets the "yellow_count" field.
func (_u *ComplianceScoreUpdate) SetYellowCount(v int) *ComplianceScoreUpdate {
	_u.mutation.ResetYellowCount()
	_u.mutation.SetYellowCount(v)
	return _u
}

// SetNillableYellowCount sets the "yellow_count" field if the given value is not nil.
func (_u *ComplianceScoreUpdate) SetNillableYellowCount(v *int) *ComplianceScoreUpdate {
	if v != nil {
		_u.SetYellowCount(*v)
	}
	return _u
}

// AddYellowCount adds value to the "yellow_count" field.
func (_u *ComplianceScoreUpdate) AddYellowCount(v int) *ComplianceScoreUpdate {
	_u.mutation.AddYellowCount(v)
	return _u
}

// SetGreenCount sets the "green_count" field.
func (_u *ComplianceScoreUpdate) SetGreenCount(v int) *ComplianceScoreUpdate {
	_u.mutation.ResetGreenCount()
	_u.mutation.SetGreenCount(v)
	return _u
}

// SetNillableGreenCount sets the "green_count" field if the given value is not nil.
func (_u *ComplianceScoreUpdate) SetNillableGreenCount(v *int) *ComplianceScoreUpdate {
	if v != nil {
		_u.SetGreenCount(*v)
	}
	return _u
}

// AddGreenCount adds value to the "green_count" field.
func (_u *ComplianceScoreUpdate) AddGreenCount(v int) *ComplianceScoreUpdate {
	_u.mutation.AddGreenCount(v)
	return _u
}

// SetTotalFlags sets the "total_flags" field.
func (_u *ComplianceScoreUpdate) SetTotalFlags(v int) *ComplianceScoreUpdate {
	_u.mutation.ResetTotalFlags()
	_u.mutation.SetTotalFlags(v)
	return _u
}

// SetNillableTotalFlags sets the "total_flags" field if the given value is not nil.
func (_u *ComplianceScoreUpdate) SetNillableTotalFlags(v *int) *ComplianceScoreUpdate {
	if v != nil {
		_u.SetTotalFlags(*v)
	}
	return _u
}

// AddTotalFlags adds value to the "total_flags" field.
func (_u *ComplianceScoreUpdate) AddTotalFlags(v int) *ComplianceScoreUpdate {
	_u.mutation.AddTotalFlags(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComplianceScoreUpdate) SetUpdatedAt(v time.Time) *ComplianceScoreUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ComplianceScoreMutation object of the builder.
func (_u *ComplianceScoreUpdate) Mutation() *ComplianceScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ComplianceScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ComplianceScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ComplianceScoreUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := compliancescore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceScoreUpdate) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ComplianceScore.audit"`)
	}
	return nil
}

func (_u *ComplianceScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compliancescore.Table, compliancescore.Columns, sqlgraph.NewFieldSpec(compliancescore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(compliancescore.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(compliancescore.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RedCount(); ok {
		_spec.SetField(compliancescore.FieldRedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRedCount(); ok {
		_spec.AddField(compliancescore.FieldRedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YellowCount(); ok {
		_spec.SetField(compliancescore.FieldYellowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYellowCount(); ok {
		_spec.AddField(compliancescore.FieldYellowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GreenCount(); ok {
		_spec.SetField(compliancescore.FieldGreenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGreenCount(); ok {
		_spec.AddField(compliancescore.FieldGreenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFlags(); ok {
		_spec.SetField(compliancescore.FieldTotalFlags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFlags(); ok {
		_spec.AddField(compliancescore.FieldTotalFlags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(compliancescore.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compliancescore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ComplianceScoreUpdateOne is the builder for updating a single ComplianceScore entity.
type ComplianceScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ComplianceScoreMutation
}

// SetOverallScore sets the "overall_score" field.
func (_u *ComplianceScoreUpdateOne) SetOverallScore(v float64) *ComplianceScoreUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *ComplianceScoreUpdateOne) SetNillableOverallScore(v *float64) *ComplianceScoreUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *ComplianceScoreUpdateOne) AddOverallScore(v float64) *ComplianceScoreUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// SetRedCount sets the "red_count" field.
func (_u *ComplianceScoreUpdateOne) SetRedCount(v int) *ComplianceScoreUpdateOne {
	_u.mutation.ResetRedCount()
	_u.mutation.SetRedCount(v)
	return _u
}

// SetNillableRedCount sets the "red_count" field if the given value is not nil.
func (_u *ComplianceScoreUpdateOne) SetNillableRedCount(v *int) *ComplianceScoreUpdateOne {
	if v != nil {
		_u.SetRedCount(*v)
	}
	return _u
}

// AddRedCount adds value to the "red_count" field.
func (_u *ComplianceScoreUpdateOne) AddRedCount(v int) *ComplianceScoreUpdateOne {
	_u.mutation.AddRedCount(v)
	return _u
}

// SetYellowCount sets the "yellow_count" field.
func (_u *ComplianceScoreUpdateOne) SetYellowCount(v int) *ComplianceScoreUpdateOne {
	_u.mutation.ResetYellowCount()
	_u.mutation.SetYellowCount(v)
	return _u
}

// SetNillableYellowCount sets the "yellow_count" field if the given value is not nil.
func (_u *ComplianceScoreUpdateOne) SetNillableYellowCount(v *int) *ComplianceScoreUpdateOne {
	if v != nil {
		_u.SetYellowCount(*v)
	}
	return _u
}

// AddYellowCount adds value to the "yellow_count" field.
func (_u *ComplianceScoreUpdateOne) AddYellowCount(v int) *ComplianceScoreUpdateOne {
	_u.mutation.AddYellowCount(v)
	return _u
}

// SetGreenCount sets the "green_count" field.
func (_u *ComplianceScoreUpdateOne) SetGreenCount(v int) *ComplianceScoreUpdateOne {
	_u.mutation.ResetGreenCount()
	_u.mutation.SetGreenCount(v)
	return _u
}

// SetNillableGreenCount sets the "green_count" field if the given value is not nil.
func (_u *ComplianceScoreUpdateOne) SetNillableGreenCount(v *int) *ComplianceScoreUpdateOne {
	if v != nil {
		_u.SetGreenCount(*v)
	}
	return _u
}

// AddGreenCount adds value to the "green_count" field.
func (_u *ComplianceScoreUpdateOne) AddGreenCount(v int) *ComplianceScoreUpdateOne {
	_u.mutation.AddGreenCount(v)
	return _u
}

// SetTotalFlags sets the "total_flags" field.
func (_u *ComplianceScoreUpdateOne) SetTotalFlags(v int) *ComplianceScoreUpdateOne {
	_u.mutation.ResetTotalFlags()
	_u.mutation.SetTotalFlags(v)
	return _u
}

// SetNillableTotalFlags sets the "total_flags" field if the given value is not nil.
func (_u *ComplianceScoreUpdateOne) SetNillableTotalFlags(v *int) *ComplianceScoreUpdateOne {
	if v != nil {
		_u.SetTotalFlags(*v)
	}
	return _u
}

// AddTotalFlags adds value to the "total_flags" field.
func (_u *ComplianceScoreUpdateOne) AddTotalFlags(v int) *ComplianceScoreUpdateOne {
	_u.mutation.AddTotalFlags(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ComplianceScoreUpdateOne) SetUpdatedAt(v time.Time) *ComplianceScoreUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ComplianceScoreMutation object of the builder.
func (_u *ComplianceScoreUpdateOne) Mutation() *ComplianceScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the ComplianceScoreUpdate builder.
func (_u *ComplianceScoreUpdateOne) Where(ps ...predicate.ComplianceScore) *ComplianceScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ComplianceScoreUpdateOne) Select(field string, fields ...string) *ComplianceScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ComplianceScore entity.
func (_u *ComplianceScoreUpdateOne) Save(ctx context.Context) (*ComplianceScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ComplianceScoreUpdateOne) SaveX(ctx context.Context) *ComplianceScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ComplianceScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ComplianceScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ComplianceScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := compliancescore.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ComplianceScoreUpdateOne) check() error {
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ComplianceScore.audit"`)
	}
	return nil
}

func (_u *ComplianceScoreUpdateOne) sqlSave(ctx context.Context) (_node *ComplianceScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(compliancescore.Table, compliancescore.Columns, sqlgraph.NewFieldSpec(compliancescore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ComplianceScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, compliancescore.FieldID)
		for _, f := range fields {
			if !compliancescore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != compliancescore.FieldID {
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
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(compliancescore.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(compliancescore.FieldOverallScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RedCount(); ok {
		_spec.SetField(compliancescore.FieldRedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRedCount(); ok {
		_spec.AddField(compliancescore.FieldRedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YellowCount(); ok {
		_spec.SetField(compliancescore.FieldYellowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYellowCount(); ok {
		_spec.AddField(compliancescore.FieldYellowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GreenCount(); ok {
		_spec.SetField(compliancescore.FieldGreenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGreenCount(); ok {
		_spec.AddField(compliancescore.FieldGreenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalFlags(); ok {
		_spec.SetField(compliancescore.FieldTotalFlags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFlags(); ok {
		_spec.AddField(compliancescore.FieldTotalFlags, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(compliancescore.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ComplianceScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{compliancescore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
