package store

import (
	"context"
	"time"

	"github.com/jlozano/riskprep/internal/progress"
)

// Snapshot represents a point-in-time capture of the progress state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	State     progress.State
}

// SnapshotRepo manages progress state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// QuizAnswerEventData captures one option pick on a module quiz.
type QuizAnswerEventData struct {
	QuizID      string
	QuestionID  string
	OptionIndex int
	Correct     bool
	Domain      string
}

// ExamEventData captures a simulator run lifecycle event.
type ExamEventData struct {
	RunID          string
	Action         string // start or submit
	Score          int
	TotalQuestions int
	DurationSecs   int
	AutoSubmitted  bool
	ByDomain       []DomainTallyData
}

// DomainTallyData is one domain's share of a submitted run.
type DomainTallyData struct {
	Domain  string
	Correct int
	Total   int
}

// ExamRun is a submitted simulator run read back for the history view.
type ExamRun struct {
	RunID         string
	Timestamp     time.Time
	Score         int
	Total         int
	DurationSecs  int
	AutoSubmitted bool
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendQuizAnswer records an answered quiz question.
	AppendQuizAnswer(ctx context.Context, data QuizAnswerEventData) error

	// AppendExamEvent records a simulator run start or submission.
	AppendExamEvent(ctx context.Context, data ExamEventData) error

	// RecentExamRuns returns submitted runs, newest first.
	RecentExamRuns(ctx context.Context, limit int) ([]ExamRun, error)
}
