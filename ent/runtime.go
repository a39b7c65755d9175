// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/jlozano/riskprep/ent/examevent"
	"github.com/jlozano/riskprep/ent/quizanswerevent"
	"github.com/jlozano/riskprep/ent/schema"
	"github.com/jlozano/riskprep/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	exameventMixin := schema.ExamEvent{}.Mixin()
	exameventMixinFields0 := exameventMixin[0].Fields()
	_ = exameventMixinFields0
	exameventFields := schema.ExamEvent{}.Fields()
	_ = exameventFields
	// exameventDescTimestamp is the schema descriptor for timestamp field.
	exameventDescTimestamp := exameventMixinFields0[1].Descriptor()
	// examevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examevent.DefaultTimestamp = exameventDescTimestamp.Default.(func() time.Time)
	// exameventDescRunID is the schema descriptor for run_id field.
	exameventDescRunID := exameventFields[0].Descriptor()
	// examevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	examevent.RunIDValidator = exameventDescRunID.Validators[0].(func(string) error)
	// exameventDescAction is the schema descriptor for action field.
	exameventDescAction := exameventFields[1].Descriptor()
	// examevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	examevent.ActionValidator = exameventDescAction.Validators[0].(func(string) error)
	// exameventDescScore is the schema descriptor for score field.
	exameventDescScore := exameventFields[2].Descriptor()
	// examevent.DefaultScore holds the default value on creation for the score field.
	examevent.DefaultScore = exameventDescScore.Default.(int)
	// exameventDescTotalQuestions is the schema descriptor for total_questions field.
	exameventDescTotalQuestions := exameventFields[3].Descriptor()
	// examevent.DefaultTotalQuestions holds the default value on creation for the total_questions field.
	examevent.DefaultTotalQuestions = exameventDescTotalQuestions.Default.(int)
	// exameventDescDurationSecs is the schema descriptor for duration_secs field.
	exameventDescDurationSecs := exameventFields[4].Descriptor()
	// examevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	examevent.DefaultDurationSecs = exameventDescDurationSecs.Default.(int)
	// exameventDescAutoSubmitted is the schema descriptor for auto_submitted field.
	exameventDescAutoSubmitted := exameventFields[5].Descriptor()
	// examevent.DefaultAutoSubmitted holds the default value on creation for the auto_submitted field.
	examevent.DefaultAutoSubmitted = exameventDescAutoSubmitted.Default.(bool)
	quizanswereventMixin := schema.QuizAnswerEvent{}.Mixin()
	quizanswereventMixinFields0 := quizanswereventMixin[0].Fields()
	_ = quizanswereventMixinFields0
	quizanswereventFields := schema.QuizAnswerEvent{}.Fields()
	_ = quizanswereventFields
	// quizanswereventDescTimestamp is the schema descriptor for timestamp field.
	quizanswereventDescTimestamp := quizanswereventMixinFields0[1].Descriptor()
	// quizanswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizanswerevent.DefaultTimestamp = quizanswereventDescTimestamp.Default.(func() time.Time)
	// quizanswereventDescQuizID is the schema descriptor for quiz_id field.
	quizanswereventDescQuizID := quizanswereventFields[0].Descriptor()
	// quizanswerevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	quizanswerevent.QuizIDValidator = quizanswereventDescQuizID.Validators[0].(func(string) error)
	// quizanswereventDescQuestionID is the schema descriptor for question_id field.
	quizanswereventDescQuestionID := quizanswereventFields[1].Descriptor()
	// quizanswerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	quizanswerevent.QuestionIDValidator = quizanswereventDescQuestionID.Validators[0].(func(string) error)
	// quizanswereventDescDomain is the schema descriptor for domain field.
	quizanswereventDescDomain := quizanswereventFields[4].Descriptor()
	// quizanswerevent.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	quizanswerevent.DomainValidator = quizanswereventDescDomain.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
