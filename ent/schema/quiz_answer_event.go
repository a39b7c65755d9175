package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAnswerEvent records a single option pick on a module quiz.
type QuizAnswerEvent struct {
	ent.Schema
}

func (QuizAnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("quiz_id").
			NotEmpty().
			Comment("Quiz the question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Question answered"),
		field.Int("option_index").
			Comment("Option the learner picked"),
		field.Bool("correct").
			Comment("Whether the pick matched the answer key"),
		field.String("domain").
			NotEmpty().
			Comment("Exam domain of the question"),
	}
}

func (QuizAnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
