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
	"github.com/regsentry/regsentry/ent/audit"
	"github.com/regsentry/regsentry/ent/auditchunkresult"
	"github.com/regsentry/regsentry/ent/auditorquestion"
	"github.com/regsentry/regsentry/ent/compliancescore"
	"github.com/regsentry/regsentry/ent/flag"
	"github.com/regsentry/regsentry/ent/predicate"
)

// AuditUpdate is the builder for updating Audit entities.
type AuditUpdate struct {
	config
	hooks    []Hook
	mutation *AuditMutation
}

// Where appends a list predicates to the AuditUpdate builder.
func (_u *AuditUpdate) Where(ps ...predicate.Audit) *AuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AuditUpdate) SetStatus(v audit.Status) *AuditUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableStatus(v *audit.Status) *AuditUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsDraft sets the "is_draft" field.
func (_u *AuditUpdate) SetIsDraft(v bool) *AuditUpdate {
	_u.mutation.SetIsDraft(v)
	return _u
}

// SetNillableIsDraft sets the "is_draft" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableIsDraft(v *bool) *AuditUpdate {
	if v != nil {
		_u.SetIsDraft(*v)
	}
	return _u
}

// SetChunkTotal sets the "chunk_total" field.
func (_u *AuditUpdate) SetChunkTotal(v int) *AuditUpdate {
	_u.mutation.ResetChunkTotal()
	_u.mutation.SetChunkTotal(v)
	return _u
}

// SetNillableChunkTotal sets the "chunk_total" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableChunkTotal(v *int) *AuditUpdate {
	if v != nil {
		_u.SetChunkTotal(*v)
	}
	return _u
}

// AddChunkTotal adds value to the "chunk_total" field.
func (_u *AuditUpdate) AddChunkTotal(v int) *AuditUpdate {
	_u.mutation.AddChunkTotal(v)
	return _u
}

// SetChunkCompleted sets the "chunk_completed" field.
func (_u *AuditUpdate) SetChunkCompleted(v int) *AuditUpdate {
	_u.mutation.ResetChunkCompleted()
	_u.mutation.SetChunkCompleted(v)
	return _u
}

// SetNillableChunkCompleted sets the "chunk_completed" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableChunkCompleted(v *int) *AuditUpdate {
	if v != nil {
		_u.SetChunkCompleted(*v)
	}
	return _u
}

// AddChunkCompleted adds value to the "chunk_completed" field.
func (_u *AuditUpdate) AddChunkCompleted(v int) *AuditUpdate {
	_u.mutation.AddChunkCompleted(v)
	return _u
}

// SetLastChunkID sets the "last_chunk_id" field.
func (_u *AuditUpdate) SetLastChunkID(v string) *AuditUpdate {
	_u.mutation.SetLastChunkID(v)
	return _u
}

// SetNillableLastChunkID sets the "last_chunk_id" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableLastChunkID(v *string) *AuditUpdate {
	if v != nil {
		_u.SetLastChunkID(*v)
	}
	return _u
}

// ClearLastChunkID clears the value of the "last_chunk_id" field.
func (_u *AuditUpdate) ClearLastChunkID() *AuditUpdate {
	_u.mutation.ClearLastChunkID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditUpdate) SetStartedAt(v time.Time) *AuditUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableStartedAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AuditUpdate) ClearStartedAt() *AuditUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditUpdate) SetCompletedAt(v time.Time) *AuditUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableCompletedAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditUpdate) ClearCompletedAt() *AuditUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *AuditUpdate) SetFailedAt(v time.Time) *AuditUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableFailedAt(v *time.Time) *AuditUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *AuditUpdate) ClearFailedAt() *AuditUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *AuditUpdate) SetFailureReason(v string) *AuditUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *AuditUpdate) SetNillableFailureReason(v *string) *AuditUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *AuditUpdate) ClearFailureReason() *AuditUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// AddChunkResultIDs adds the "chunk_results" edge to the AuditChunkResult entity by IDs.
func (_u *AuditUpdate) AddChunkResultIDs(ids ...int) *AuditUpdate {
	_u.mutation.AddChunkResultIDs(ids...)
	return _u
}

// AddChunkResults adds the "chunk_results" edges to the AuditChunkResult entity.
func (_u *AuditUpdate) AddChunkResults(v ...*AuditChunkResult) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkResultIDs(ids...)
}

// AddFlagIDs adds the "flags" edge to the Flag entity by IDs.
func (_u *AuditUpdate) AddFlagIDs(ids ...int) *AuditUpdate {
	_u.mutation.AddFlagIDs(ids...)
	return _u
}

// AddFlags adds the "flags" edges to the Flag entity.
func (_u *AuditUpdate) AddFlags(v ...*Flag) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlagIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the AuditorQuestion entity by IDs.
func (_u *AuditUpdate) AddQuestionIDs(ids ...int) *AuditUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the AuditorQuestion entity.
func (_u *AuditUpdate) AddQuestions(v ...*AuditorQuestion) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddScoreIDs adds the "scores" edge to the ComplianceScore entity by IDs.
func (_u *AuditUpdate) AddScoreIDs(ids ...int) *AuditUpdate {
	_u.mutation.AddScoreIDs(ids...)
	return _u
}

// AddScores adds the "scores" edges to the ComplianceScore entity.
func (_u *AuditUpdate) AddScores(v ...*ComplianceScore) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (_u *AuditUpdate) Mutation() *AuditMutation {
	return _u.mutation
}

// ClearChunkResults clears all "chunk_results" edges to the AuditChunkResult entity.
func (_u *AuditUpdate) ClearChunkResults() *AuditUpdate {
	_u.mutation.ClearChunkResults()
	return _u
}

// RemoveChunkResultIDs removes the "chunk_results" edge to AuditChunkResult entities by IDs.
func (_u *AuditUpdate) RemoveChunkResultIDs(ids ...int) *AuditUpdate {
	_u.mutation.RemoveChunkResultIDs(ids...)
	return _u
}

// RemoveChunkResults removes "chunk_results" edges to AuditChunkResult entities.
func (_u *AuditUpdate) RemoveChunkResults(v ...*AuditChunkResult) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkResultIDs(ids...)
}

// ClearFlags clears all "flags" edges to the Flag entity.
func (_u *AuditUpdate) ClearFlags() *AuditUpdate {
	_u.mutation.ClearFlags()
	return _u
}

// RemoveFlagIDs removes the "flags" edge to Flag entities by IDs.
func (_u *AuditUpdate) RemoveFlagIDs(ids ...int) *AuditUpdate {
	_u.mutation.RemoveFlagIDs(ids...)
	return _u
}

// RemoveFlags removes "flags" edges to Flag entities.
func (_u *AuditUpdate) RemoveFlags(v ...*Flag) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlagIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the AuditorQuestion entity.
func (_u *AuditUpdate) ClearQuestions() *AuditUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to AuditorQuestion entities by IDs.
func (_u *AuditUpdate) RemoveQuestionIDs(ids ...int) *AuditUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to AuditorQuestion entities.
func (_u *AuditUpdate) RemoveQuestions(v ...*AuditorQuestion) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearScores clears all "scores" edges to the ComplianceScore entity.
func (_u *AuditUpdate) ClearScores() *AuditUpdate {
	_u.mutation.ClearScores()
	return _u
}

// RemoveScoreIDs removes the "scores" edge to ComplianceScore entities by IDs.
func (_u *AuditUpdate) RemoveScoreIDs(ids ...int) *AuditUpdate {
	_u.mutation.RemoveScoreIDs(ids...)
	return _u
}

// RemoveScores removes "scores" edges to ComplianceScore entities.
func (_u *AuditUpdate) RemoveScores(v ...*ComplianceScore) *AuditUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureReason(); ok {
		if err := audit.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "Audit.failure_reason": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Audit.document"`)
	}
	return nil
}

func (_u *AuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsDraft(); ok {
		_spec.SetField(audit.FieldIsDraft, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChunkTotal(); ok {
		_spec.SetField(audit.FieldChunkTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkTotal(); ok {
		_spec.AddField(audit.FieldChunkTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunkCompleted(); ok {
		_spec.SetField(audit.FieldChunkCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCompleted(); ok {
		_spec.AddField(audit.FieldChunkCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastChunkID(); ok {
		_spec.SetField(audit.FieldLastChunkID, field.TypeString, value)
	}
	if _u.mutation.LastChunkIDCleared() {
		_spec.ClearField(audit.FieldLastChunkID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(audit.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(audit.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(audit.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(audit.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(audit.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(audit.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(audit.FieldFailureReason, field.TypeString)
	}
	if _u.mutation.ChunkResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunkResultsIDs(); len(nodes) > 0 && !_u.mutation.ChunkResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FlagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFlagsIDs(); len(nodes) > 0 && !_u.mutation.FlagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoresIDs(); len(nodes) > 0 && !_u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditUpdateOne is the builder for updating a single Audit entity.
type AuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditMutation
}

// SetStatus sets the "status" field.
func (_u *AuditUpdateOne) SetStatus(v audit.Status) *AuditUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableStatus(v *audit.Status) *AuditUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIsDraft sets the "is_draft" field.
func (_u *AuditUpdateOne) SetIsDraft(v bool) *AuditUpdateOne {
	_u.mutation.SetIsDraft(v)
	return _u
}

// SetNillableIsDraft sets the "is_draft" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableIsDraft(v *bool) *AuditUpdateOne {
	if v != nil {
		_u.SetIsDraft(*v)
	}
	return _u
}

// SetChunkTotal sets the "chunk_total" field.
func (_u *AuditUpdateOne) SetChunkTotal(v int) *AuditUpdateOne {
	_u.mutation.ResetChunkTotal()
	_u.mutation.SetChunkTotal(v)
	return _u
}

// SetNillableChunkTotal sets the "chunk_total" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableChunkTotal(v *int) *AuditUpdateOne {
	if v != nil {
		_u.SetChunkTotal(*v)
	}
	return _u
}

// AddChunkTotal adds value to the "chunk_total" field.
func (_u *AuditUpdateOne) AddChunkTotal(v int) *AuditUpdateOne {
	_u.mutation.AddChunkTotal(v)
	return _u
}

// SetChunkCompleted sets the "chunk_completed" field.
func (_u *AuditUpdateOne) SetChunkCompleted(v int) *AuditUpdateOne {
	_u.mutation.ResetChunkCompleted()
	_u.mutation.SetChunkCompleted(v)
	return _u
}

// SetNillableChunkCompleted sets the "chunk_completed" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableChunkCompleted(v *int) *AuditUpdateOne {
	if v != nil {
		_u.SetChunkCompleted(*v)
	}
	return _u
}

// AddChunkCompleted adds value to the "chunk_completed" field.
func (_u *AuditUpdateOne) AddChunkCompleted(v int) *AuditUpdateOne {
	_u.mutation.AddChunkCompleted(v)
	return _u
}

// SetLastChunkID sets the "last_chunk_id" field.
func (_u *AuditUpdateOne) SetLastChunkID(v string) *AuditUpdateOne {
	_u.mutation.SetLastChunkID(v)
	return _u
}

// SetNillableLastChunkID sets the "last_chunk_id" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableLastChunkID(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetLastChunkID(*v)
	}
	return _u
}

// ClearLastChunkID clears the value of the "last_chunk_id" field.
func (_u *AuditUpdateOne) ClearLastChunkID() *AuditUpdateOne {
	_u.mutation.ClearLastChunkID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AuditUpdateOne) SetStartedAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableStartedAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AuditUpdateOne) ClearStartedAt() *AuditUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AuditUpdateOne) SetCompletedAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableCompletedAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AuditUpdateOne) ClearCompletedAt() *AuditUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *AuditUpdateOne) SetFailedAt(v time.Time) *AuditUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableFailedAt(v *time.Time) *AuditUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *AuditUpdateOne) ClearFailedAt() *AuditUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *AuditUpdateOne) SetFailureReason(v string) *AuditUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *AuditUpdateOne) SetNillableFailureReason(v *string) *AuditUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *AuditUpdateOne) ClearFailureReason() *AuditUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// AddChunkResultIDs adds the "chunk_results" edge to the AuditChunkResult entity by IDs.
func (_u *AuditUpdateOne) AddChunkResultIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.AddChunkResultIDs(ids...)
	return _u
}

// AddChunkResults adds the "chunk_results" edges to the AuditChunkResult entity.
func (_u *AuditUpdateOne) AddChunkResults(v ...*AuditChunkResult) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkResultIDs(ids...)
}

// AddFlagIDs adds the "flags" edge to the Flag entity by IDs.
func (_u *AuditUpdateOne) AddFlagIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.AddFlagIDs(ids...)
	return _u
}

// AddFlags adds the "flags" edges to the Flag entity.
func (_u *AuditUpdateOne) AddFlags(v ...*Flag) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFlagIDs(ids...)
}

// AddQuestionIDs adds the "questions" edge to the AuditorQuestion entity by IDs.
func (_u *AuditUpdateOne) AddQuestionIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the AuditorQuestion entity.
func (_u *AuditUpdateOne) AddQuestions(v ...*AuditorQuestion) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// AddScoreIDs adds the "scores" edge to the ComplianceScore entity by IDs.
func (_u *AuditUpdateOne) AddScoreIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.AddScoreIDs(ids...)
	return _u
}

// AddScores adds the "scores" edges to the ComplianceScore entity.
func (_u *AuditUpdateOne) AddScores(v ...*ComplianceScore) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScoreIDs(ids...)
}

// Mutation returns the AuditMutation object of the builder.
func (_u *AuditUpdateOne) Mutation() *AuditMutation {
	return _u.mutation
}

// ClearChunkResults clears all "chunk_results" edges to the AuditChunkResult entity.
func (_u *AuditUpdateOne) ClearChunkResults() *AuditUpdateOne {
	_u.mutation.ClearChunkResults()
	return _u
}

// RemoveChunkResultIDs removes the "chunk_results" edge to AuditChunkResult entities by IDs.
func (_u *AuditUpdateOne) RemoveChunkResultIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.RemoveChunkResultIDs(ids...)
	return _u
}

// RemoveChunkResults removes "chunk_results" edges to AuditChunkResult entities.
func (_u *AuditUpdateOne) RemoveChunkResults(v ...*AuditChunkResult) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkResultIDs(ids...)
}

// ClearFlags clears all "flags" edges to the Flag entity.
func (_u *AuditUpdateOne) ClearFlags() *AuditUpdateOne {
	_u.mutation.ClearFlags()
	return _u
}

// RemoveFlagIDs removes the "flags" edge to Flag entities by IDs.
func (_u *AuditUpdateOne) RemoveFlagIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.RemoveFlagIDs(ids...)
	return _u
}

// RemoveFlags removes "flags" edges to Flag entities.
func (_u *AuditUpdateOne) RemoveFlags(v ...*Flag) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFlagIDs(ids...)
}

// ClearQuestions clears all "questions" edges to the AuditorQuestion entity.
func (_u *AuditUpdateOne) ClearQuestions() *AuditUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to AuditorQuestion entities by IDs.
func (_u *AuditUpdateOne) RemoveQuestionIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to AuditorQuestion entities.
func (_u *AuditUpdateOne) RemoveQuestions(v ...*AuditorQuestion) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// ClearScores clears all "scores" edges to the ComplianceScore entity.
func (_u *AuditUpdateOne) ClearScores() *AuditUpdateOne {
	_u.mutation.ClearScores()
	return _u
}

// RemoveScoreIDs removes the "scores" edge to ComplianceScore entities by IDs.
func (_u *AuditUpdateOne) RemoveScoreIDs(ids ...int) *AuditUpdateOne {
	_u.mutation.RemoveScoreIDs(ids...)
	return _u
}

// RemoveScores removes "scores" edges to ComplianceScore entities.
func (_u *AuditUpdateOne) RemoveScores(v ...*ComplianceScore) *AuditUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScoreIDs(ids...)
}

// Where appends a list predicates to the AuditUpdate builder.
func (_u *AuditUpdateOne) Where(ps ...predicate.Audit) *AuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditUpdateOne) Select(field string, fields ...string) *AuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Audit entity.
func (_u *AuditUpdateOne) Save(ctx context.Context) (*Audit, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditUpdateOne) SaveX(ctx context.Context) *Audit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := audit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Audit.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureReason(); ok {
		if err := audit.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "Audit.failure_reason": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Audit.document"`)
	}
	return nil
}

func (_u *AuditUpdateOne) sqlSave(ctx context.Context) (_node *Audit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(audit.Table, audit.Columns, sqlgraph.NewFieldSpec(audit.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Audit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, audit.FieldID)
		for _, f := range fields {
			if !audit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != audit.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(audit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsDraft(); ok {
		_spec.SetField(audit.FieldIsDraft, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ChunkTotal(); ok {
		_spec.SetField(audit.FieldChunkTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkTotal(); ok {
		_spec.AddField(audit.FieldChunkTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChunkCompleted(); ok {
		_spec.SetField(audit.FieldChunkCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCompleted(); ok {
		_spec.AddField(audit.FieldChunkCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastChunkID(); ok {
		_spec.SetField(audit.FieldLastChunkID, field.TypeString, value)
	}
	if _u.mutation.LastChunkIDCleared() {
		_spec.ClearField(audit.FieldLastChunkID, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(audit.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(audit.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(audit.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(audit.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(audit.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(audit.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(audit.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(audit.FieldFailureReason, field.TypeString)
	}
	if _u.mutation.ChunkResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunkResultsIDs(); len(nodes) > 0 && !_u.mutation.ChunkResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FlagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFlagsIDs(); len(nodes) > 0 && !_u.mutation.FlagsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FlagsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScoresIDs(); len(nodes) > 0 && !_u.mutation.ScoresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScoresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Audit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{audit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
