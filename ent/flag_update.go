// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/regsentry/regsentry/ent/citation"
	"github.com/regsentry/regsentry/ent/flag"
	"github.com/regsentry/regsentry/ent/predicate"
)

// FlagUpdate is the builder for updating Flag entities.
type FlagUpdate struct {
	config
	hooks    []Hook
	mutation *FlagMutation
}

// Where appends a list predicates to the FlagUpdate builder.
func (_u *FlagUpdate) Where(ps ...predicate.Flag) *FlagUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFlagType sets the "flag_type" field.
func (_u *FlagUpdate) SetFlagType(v flag.FlagType) *FlagUpdate {
	_u.mutation.SetFlagType(v)
	return _u
}

// SetNillableFlagType sets the "flag_type" field if the given value is not nil.
func (_u *FlagUpdate) SetNillableFlagType(v *flag.FlagType) *FlagUpdate {
	if v != nil {
		_u.SetFlagType(*v)
	}
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *FlagUpdate) SetSeverityScore(v int) *FlagUpdate {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *FlagUpdate) SetNillableSeverityScore(v *int) *FlagUpdate {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *FlagUpdate) AddSeverityScore(v int) *FlagUpdate {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// SetFindings sets the "findings" field.
func (_u *FlagUpdate) SetFindings(v string) *FlagUpdate {
	_u.mutation.SetFindings(v)
	return _u
}

// SetNillableFindings sets the "findings" field if the given value is not nil.
func (_u *FlagUpdate) SetNillableFindings(v *string) *FlagUpdate {
	if v != nil {
		_u.SetFindings(*v)
	}
	return _u
}

// SetGaps sets the "gaps" field.
func (_u *FlagUpdate) SetGaps(v []string) *FlagUpdate {
	_u.mutation.SetGaps(v)
	return _u
}

// AppendGaps appends value to the "gaps" field.
func (_u *FlagUpdate) AppendGaps(v []string) *FlagUpdate {
	_u.mutation.AppendGaps(v)
	return _u
}

// ClearGaps clears the value of the "gaps" field.
func (_u *FlagUpdate) ClearGaps() *FlagUpdate {
	_u.mutation.ClearGaps()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *FlagUpdate) SetRecommendations(v []string) *FlagUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *FlagUpdate) AppendRecommendations(v []string) *FlagUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *FlagUpdate) ClearRecommendations() *FlagUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (_u *FlagUpdate) SetAnalysisMetadata(v map[string]interface{}) *FlagUpdate {
	_u.mutation.SetAnalysisMetadata(v)
	return _u
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (_u *FlagUpdate) ClearAnalysisMetadata() *FlagUpdate {
	_u.mutation.ClearAnalysisMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlagUpdate) SetUpdatedAt(v time.Time) *FlagUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *FlagUpdate) AddCitationIDs(ids ...int) *FlagUpdate {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *FlagUpdate) AddCitations(v ...*Citation) *FlagUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the FlagMutation object of the builder.
func (_u *FlagUpdate) Mutation() *FlagMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *FlagUpdate) ClearCitations() *FlagUpdate {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *FlagUpdate) RemoveCitationIDs(ids ...int) *FlagUpdate {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *FlagUpdate) RemoveCitations(v ...*Citation) *FlagUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FlagUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlagUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FlagUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlagUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlagUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlagUpdate) check() error {
	if v, ok := _u.mutation.FlagType(); ok {
		if err := flag.FlagTypeValidator(v); err != nil {
			return &ValidationError{Name: "flag_type", err: fmt.Errorf(`ent: validator failed for field "Flag.flag_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Findings(); ok {
		if err := flag.FindingsValidator(v); err != nil {
			return &ValidationError{Name: "findings", err: fmt.Errorf(`ent: validator failed for field "Flag.findings": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flag.audit"`)
	}
	return nil
}

func (_u *FlagUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flag.Table, flag.Columns, sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FlagType(); ok {
		_spec.SetField(flag.FieldFlagType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(flag.FieldSeverityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(flag.FieldSeverityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(flag.FieldFindings, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gaps(); ok {
		_spec.SetField(flag.FieldGaps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flag.FieldGaps, value)
		})
	}
	if _u.mutation.GapsCleared() {
		_spec.ClearField(flag.FieldGaps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(flag.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flag.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(flag.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisMetadata(); ok {
		_spec.SetField(flag.FieldAnalysisMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisMetadataCleared() {
		_spec.ClearField(flag.FieldAnalysisMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flag.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FlagUpdateOne is the builder for updating a single Flag entity.
type FlagUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FlagMutation
}

// SetFlagType sets the "flag_type" field.
func (_u *FlagUpdateOne) SetFlagType(v flag.FlagType) *FlagUpdateOne {
	_u.mutation.SetFlagType(v)
	return _u
}

// SetNillableFlagType sets the "flag_type" field if the given value is not nil.
func (_u *FlagUpdateOne) SetNillableFlagType(v *flag.FlagType) *FlagUpdateOne {
	if v != nil {
		_u.SetFlagType(*v)
	}
	return _u
}

// SetSeverityScore sets the "severity_score" field.
func (_u *FlagUpdateOne) SetSeverityScore(v int) *FlagUpdateOne {
	_u.mutation.ResetSeverityScore()
	_u.mutation.SetSeverityScore(v)
	return _u
}

// SetNillableSeverityScore sets the "severity_score" field if the given value is not nil.
func (_u *FlagUpdateOne) SetNillableSeverityScore(v *int) *FlagUpdateOne {
	if v != nil {
		_u.SetSeverityScore(*v)
	}
	return _u
}

// AddSeverityScore adds value to the "severity_score" field.
func (_u *FlagUpdateOne) AddSeverityScore(v int) *FlagUpdateOne {
	_u.mutation.AddSeverityScore(v)
	return _u
}

// SetFindings sets the "findings" field.
func (_u *FlagUpdateOne) SetFindings(v string) *FlagUpdateOne {
	_u.mutation.SetFindings(v)
	return _u
}

// SetNillableFindings sets the "findings" field if the given value is not nil.
func (_u *FlagUpdateOne) SetNillableFindings(v *string) *FlagUpdateOne {
	if v != nil {
		_u.SetFindings(*v)
	}
	return _u
}

// SetGaps sets the "gaps" field.
func (_u *FlagUpdateOne) SetGaps(v []string) *FlagUpdateOne {
	_u.mutation.SetGaps(v)
	return _u
}

// AppendGaps appends value to the "gaps" field.
func (_u *FlagUpdateOne) AppendGaps(v []string) *FlagUpdateOne {
	_u.mutation.AppendGaps(v)
	return _u
}

// ClearGaps clears the value of the "gaps" field.
func (_u *FlagUpdateOne) ClearGaps() *FlagUpdateOne {
	_u.mutation.ClearGaps()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *FlagUpdateOne) SetRecommendations(v []string) *FlagUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *FlagUpdateOne) AppendRecommendations(v []string) *FlagUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *FlagUpdateOne) ClearRecommendations() *FlagUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// SetAnalysisMetadata sets the "analysis_metadata" field.
func (_u *FlagUpdateOne) SetAnalysisMetadata(v map[string]interface{}) *FlagUpdateOne {
	_u.mutation.SetAnalysisMetadata(v)
	return _u
}

// ClearAnalysisMetadata clears the value of the "analysis_metadata" field.
func (_u *FlagUpdateOne) ClearAnalysisMetadata() *FlagUpdateOne {
	_u.mutation.ClearAnalysisMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FlagUpdateOne) SetUpdatedAt(v time.Time) *FlagUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddCitationIDs adds the "citations" edge to the Citation entity by IDs.
func (_u *FlagUpdateOne) AddCitationIDs(ids ...int) *FlagUpdateOne {
	_u.mutation.AddCitationIDs(ids...)
	return _u
}

// AddCitations adds the "citations" edges to the Citation entity.
func (_u *FlagUpdateOne) AddCitations(v ...*Citation) *FlagUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCitationIDs(ids...)
}

// Mutation returns the FlagMutation object of the builder.
func (_u *FlagUpdateOne) Mutation() *FlagMutation {
	return _u.mutation
}

// ClearCitations clears all "citations" edges to the Citation entity.
func (_u *FlagUpdateOne) ClearCitations() *FlagUpdateOne {
	_u.mutation.ClearCitations()
	return _u
}

// RemoveCitationIDs removes the "citations" edge to Citation entities by IDs.
func (_u *FlagUpdateOne) RemoveCitationIDs(ids ...int) *FlagUpdateOne {
	_u.mutation.RemoveCitationIDs(ids...)
	return _u
}

// RemoveCitations removes "citations" edges to Citation entities.
func (_u *FlagUpdateOne) RemoveCitations(v ...*Citation) *FlagUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCitationIDs(ids...)
}

// Where appends a list predicates to the FlagUpdate builder.
func (_u *FlagUpdateOne) Where(ps ...predicate.Flag) *FlagUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FlagUpdateOne) Select(field string, fields ...string) *FlagUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Flag entity.
func (_u *FlagUpdateOne) Save(ctx context.Context) (*Flag, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FlagUpdateOne) SaveX(ctx context.Context) *Flag {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FlagUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FlagUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FlagUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := flag.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FlagUpdateOne) check() error {
	if v, ok := _u.mutation.FlagType(); ok {
		if err := flag.FlagTypeValidator(v); err != nil {
			return &ValidationError{Name: "flag_type", err: fmt.Errorf(`ent: validator failed for field "Flag.flag_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Findings(); ok {
		if err := flag.FindingsValidator(v); err != nil {
			return &ValidationError{Name: "findings", err: fmt.Errorf(`ent: validator failed for field "Flag.findings": %w`, err)}
		}
	}
	if _u.mutation.AuditCleared() && len(_u.mutation.AuditIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Flag.audit"`)
	}
	return nil
}

func (_u *FlagUpdateOne) sqlSave(ctx context.Context) (_node *Flag, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(flag.Table, flag.Columns, sqlgraph.NewFieldSpec(flag.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Flag.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, flag.FieldID)
		for _, f := range fields {
			if !flag.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != flag.FieldID {
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
	if value, ok := _u.mutation.FlagType(); ok {
		_spec.SetField(flag.FieldFlagType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SeverityScore(); ok {
		_spec.SetField(flag.FieldSeverityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeverityScore(); ok {
		_spec.AddField(flag.FieldSeverityScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(flag.FieldFindings, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gaps(); ok {
		_spec.SetField(flag.FieldGaps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGaps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flag.FieldGaps, value)
		})
	}
	if _u.mutation.GapsCleared() {
		_spec.ClearField(flag.FieldGaps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(flag.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, flag.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(flag.FieldRecommendations, field.TypeJSON)
	}
	if value, ok := _u.mutation.AnalysisMetadata(); ok {
		_spec.SetField(flag.FieldAnalysisMetadata, field.TypeJSON, value)
	}
	if _u.mutation.AnalysisMetadataCleared() {
		_spec.ClearField(flag.FieldAnalysisMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(flag.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCitationsIDs(); len(nodes) > 0 && !_u.mutation.CitationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CitationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Flag{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{flag.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
