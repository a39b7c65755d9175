package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/jlozano/riskprep/ent"
	"github.com/jlozano/riskprep/ent/examevent"
	entschema "github.com/jlozano/riskprep/ent/schema"
)

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Each event type lives in its own ent-managed
// table, so per-table auto-increment IDs can't establish cross-type
// ordering. This shared counter assigns a single increasing sequence to
// every event regardless of type.
//
// Uses raw SQL outside ent because ent doesn't support database-level
// atomic counters. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizAnswerEvent.Create().
		SetSequence(seqNum).
		SetQuizID(data.QuizID).
		SetQuestionID(data.QuestionID).
		SetOptionIndex(data.OptionIndex).
		SetCorrect(data.Correct).
		SetDomain(data.Domain).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendExamEvent(ctx context.Context, data ExamEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var byDomain []entschema.DomainTally
	for _, t := range data.ByDomain {
		byDomain = append(byDomain, entschema.DomainTally{
			Domain:  t.Domain,
			Correct: t.Correct,
			Total:   t.Total,
		})
	}

	builder := r.client.ExamEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetAction(data.Action).
		SetScore(data.Score).
		SetTotalQuestions(data.TotalQuestions).
		SetDurationSecs(data.DurationSecs).
		SetAutoSubmitted(data.AutoSubmitted)

	if len(byDomain) > 0 {
		builder = builder.SetByDomain(byDomain)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentExamRuns(ctx context.Context, limit int) ([]ExamRun, error) {
	q := r.client.ExamEvent.Query().
		Where(examevent.Action("submit")).
		Order(ent.Desc(examevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam runs: %w", err)
	}

	runs := make([]ExamRun, 0, len(events))
	for _, e := range events {
		runs = append(runs, ExamRun{
			RunID:         e.RunID,
			Timestamp:     e.Timestamp,
			Score:         e.Score,
			Total:         e.TotalQuestions,
			DurationSecs:  e.DurationSecs,
			AutoSubmitted: e.AutoSubmitted,
		})
	}
	return runs, nil
}
