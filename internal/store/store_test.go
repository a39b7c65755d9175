package store

import (
	"context"
	"testing"
	"time"

	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatalf("latest on empty store = %+v, want nil", snap)
	}

	st := progress.NewState("m2")
	st.AnswersByQuiz["m1q1"] = scoring.AnswerMap{"a": 1}
	if err := repo.Save(ctx, &Snapshot{Sequence: 1, Timestamp: time.Now(), State: st}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("latest = nil after save")
	}
	if got.State.CurrentModuleID != "m2" {
		t.Errorf("currentModuleId = %q, want m2", got.State.CurrentModuleID)
	}
	if got.State.AnswersByQuiz["m1q1"]["a"] != 1 {
		t.Errorf("answers not round-tripped: %v", got.State.AnswersByQuiz)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		snap := &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			State:     progress.NewState("m1"),
		}
		if err := repo.Save(ctx, snap); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if got == nil || got.Sequence != 5 {
		t.Errorf("latest after prune = %+v, want sequence 5", got)
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("snapshots after prune = %d, want 2", n)
	}
}

// SQLite truncates stored times to whole seconds on read-back, so a
// retention cutoff keyed on timestamps keeps one row too many. The
// cutoff must use the sequence number instead.
func TestSnapshotPrune_SubSecondTimestamps(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().Truncate(time.Second).Add(29950 * time.Microsecond)
	for i := 0; i < 4; i++ {
		snap := &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Second),
			State:     progress.NewState("m1"),
		}
		if err := repo.Save(ctx, snap); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	remaining, err := s.Client().Snapshot.Query().All(ctx)
	if err != nil {
		t.Fatalf("query remaining: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("snapshots after prune = %d, want 2", len(remaining))
	}
	seqs := map[int64]bool{}
	for _, snap := range remaining {
		seqs[snap.Sequence] = true
	}
	if !seqs[3] || !seqs[4] {
		t.Errorf("surviving sequences = %v, want 3 and 4", seqs)
	}
}

func TestSnapshotLatest_SameSecondOrdersBySequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Two saves inside the same wall-clock second tie on the stored
	// timestamp; the higher sequence must still win.
	now := time.Now().Truncate(time.Second)
	for i, module := range []string{"m1", "m2"} {
		snap := &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: now.Add(time.Duration(i+1) * 100 * time.Millisecond),
			State:     progress.NewState(module),
		}
		if err := repo.Save(ctx, snap); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil || got.Sequence != 2 || got.State.CurrentModuleID != "m2" {
		t.Errorf("latest = %+v, want sequence 2 (m2)", got)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendQuizAnswer(ctx, QuizAnswerEventData{
		QuizID:      "m1q1",
		QuestionID:  "a",
		OptionIndex: 1,
		Correct:     true,
		Domain:      "Planificación",
	})
	if err != nil {
		t.Fatalf("append quiz answer: %v", err)
	}

	err = repo.AppendExamEvent(ctx, ExamEventData{RunID: "run-1", Action: "start"})
	if err != nil {
		t.Fatalf("append exam start: %v", err)
	}
	err = repo.AppendExamEvent(ctx, ExamEventData{
		RunID:          "run-1",
		Action:         "submit",
		Score:          18,
		TotalQuestions: 25,
		DurationSecs:   3100,
		AutoSubmitted:  true,
		ByDomain: []DomainTallyData{
			{Domain: "Planificación", Correct: 10, Total: 13},
			{Domain: "Monitoreo", Correct: 8, Total: 12},
		},
	})
	if err != nil {
		t.Fatalf("append exam submit: %v", err)
	}

	runs, err := repo.RecentExamRuns(ctx, 10)
	if err != nil {
		t.Fatalf("recent exam runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1 (start events excluded)", len(runs))
	}
	run := runs[0]
	if run.RunID != "run-1" || run.Score != 18 || run.Total != 25 || !run.AutoSubmitted {
		t.Errorf("run = %+v", run)
	}
}

func TestPersisterRoundTrip(t *testing.T) {
	s := openTestStore(t)
	p := NewPersister(s)

	st := progress.NewState("m3")
	st.Profile = progress.Profile{Name: "Ada", Email: "ada@example.com"}
	if err := p.Save(st); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Load(context.Background())
	if got == nil {
		t.Fatal("load = nil after save")
	}
	if got.CurrentModuleID != "m3" || got.Profile.Name != "Ada" {
		t.Errorf("loaded state = %+v", got)
	}
}

func TestPersisterLoad_EmptyStoreStartsFresh(t *testing.T) {
	s := openTestStore(t)
	p := NewPersister(s)

	if got := p.Load(context.Background()); got != nil {
		t.Errorf("load on empty store = %+v, want nil", got)
	}
}
