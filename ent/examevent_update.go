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
	"github.com/jlozano/riskprep/ent/examevent"
	"github.com/jlozano/riskprep/ent/predicate"
	"github.com/jlozano/riskprep/ent/schema"
)

// ExamEventUpdate is the builder for updating ExamEvent entities.
type ExamEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamEventMutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdate) Where(ps ...predicate.ExamEvent) *ExamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ExamEventUpdate) SetRunID(v string) *ExamEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableRunID(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ExamEventUpdate) SetAction(v string) *ExamEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableAction(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamEventUpdate) SetScore(v int) *ExamEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableScore(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamEventUpdate) AddScore(v int) *ExamEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ExamEventUpdate) SetTotalQuestions(v int) *ExamEventUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTotalQuestions(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ExamEventUpdate) AddTotalQuestions(v int) *ExamEventUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ExamEventUpdate) SetDurationSecs(v int) *ExamEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableDurationSecs(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ExamEventUpdate) AddDurationSecs(v int) *ExamEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *ExamEventUpdate) SetAutoSubmitted(v bool) *ExamEventUpdate {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableAutoSubmitted(v *bool) *ExamEventUpdate {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// SetByDomain sets the "by_domain" field.
func (_u *ExamEventUpdate) SetByDomain(v []schema.DomainTally) *ExamEventUpdate {
	_u.mutation.SetByDomain(v)
	return _u
}

// AppendByDomain appends value to the "by_domain" field.
func (_u *ExamEventUpdate) AppendByDomain(v []schema.DomainTally) *ExamEventUpdate {
	_u.mutation.AppendByDomain(v)
	return _u
}

// ClearByDomain clears the value of the "by_domain" field.
func (_u *ExamEventUpdate) ClearByDomain() *ExamEventUpdate {
	_u.mutation.ClearByDomain()
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdate) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := examevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := examevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(examevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(examevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(examevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(examevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(examevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(examevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(examevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ByDomain(); ok {
		_spec.SetField(examevent.FieldByDomain, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedByDomain(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examevent.FieldByDomain, value)
		})
	}
	if _u.mutation.ByDomainCleared() {
		_spec.ClearField(examevent.FieldByDomain, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamEventUpdateOne is the builder for updating a single ExamEvent entity.
type ExamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *ExamEventUpdateOne) SetRunID(v string) *ExamEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableRunID(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ExamEventUpdateOne) SetAction(v string) *ExamEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableAction(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamEventUpdateOne) SetScore(v int) *ExamEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableScore(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamEventUpdateOne) AddScore(v int) *ExamEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *ExamEventUpdateOne) SetTotalQuestions(v int) *ExamEventUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTotalQuestions(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *ExamEventUpdateOne) AddTotalQuestions(v int) *ExamEventUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *ExamEventUpdateOne) SetDurationSecs(v int) *ExamEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableDurationSecs(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *ExamEventUpdateOne) AddDurationSecs(v int) *ExamEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetAutoSubmitted sets the "auto_submitted" field.
func (_u *ExamEventUpdateOne) SetAutoSubmitted(v bool) *ExamEventUpdateOne {
	_u.mutation.SetAutoSubmitted(v)
	return _u
}

// SetNillableAutoSubmitted sets the "auto_submitted" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableAutoSubmitted(v *bool) *ExamEventUpdateOne {
	if v != nil {
		_u.SetAutoSubmitted(*v)
	}
	return _u
}

// SetByDomain sets the "by_domain" field.
func (_u *ExamEventUpdateOne) SetByDomain(v []schema.DomainTally) *ExamEventUpdateOne {
	_u.mutation.SetByDomain(v)
	return _u
}

// AppendByDomain appends value to the "by_domain" field.
func (_u *ExamEventUpdateOne) AppendByDomain(v []schema.DomainTally) *ExamEventUpdateOne {
	_u.mutation.AppendByDomain(v)
	return _u
}

// ClearByDomain clears the value of the "by_domain" field.
func (_u *ExamEventUpdateOne) ClearByDomain() *ExamEventUpdateOne {
	_u.mutation.ClearByDomain()
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdateOne) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdateOne) Where(ps ...predicate.ExamEvent) *ExamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamEventUpdateOne) Select(field string, fields ...string) *ExamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamEvent entity.
func (_u *ExamEventUpdateOne) Save(ctx context.Context) (*ExamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdateOne) SaveX(ctx context.Context) *ExamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := examevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := examevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examevent.FieldID)
		for _, f := range fields {
			if !examevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(examevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(examevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(examevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(examevent.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(examevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(examevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AutoSubmitted(); ok {
		_spec.SetField(examevent.FieldAutoSubmitted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ByDomain(); ok {
		_spec.SetField(examevent.FieldByDomain, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedByDomain(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examevent.FieldByDomain, value)
		})
	}
	if _u.mutation.ByDomainCleared() {
		_spec.ClearField(examevent.FieldByDomain, field.TypeJSON)
	}
	_node = &ExamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
