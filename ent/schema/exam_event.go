package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExamEvent records simulator run lifecycle events (start/submit).
type ExamEvent struct {
	ent.Schema
}

func (ExamEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// DomainTally is the serialized per-domain score for persistence.
type DomainTally struct {
	Domain  string `json:"domain"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

func (ExamEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID grouping events in one simulator run"),
		field.String("action").
			NotEmpty().
			Comment("start or submit"),
		field.Int("score").
			Default(0).
			Comment("Correct answers (on submit only)"),
		field.Int("total_questions").
			Default(0).
			Comment("Questions in the exam set (on submit only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Seconds elapsed on the clock (on submit only)"),
		field.Bool("auto_submitted").
			Default(false).
			Comment("True when the countdown forced the submission"),
		field.JSON("by_domain", []DomainTally{}).
			Optional().
			Comment("Per-domain breakdown (on submit only)"),
	}
}

func (ExamEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("action"),
	}
}
