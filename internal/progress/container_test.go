package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/jlozano/riskprep/internal/content"
	"github.com/jlozano/riskprep/internal/scoring"
)

func testCatalog() *content.Catalog {
	return &content.Catalog{
		Course: content.Course{
			Title: "Curso de prueba",
			Modules: []content.Module{
				{
					ID:    "m1",
					Title: "Fundamentos",
					Quizzes: []content.QuestionSet{
						{
							ID: "m1q1",
							Questions: []content.Question{
								{ID: "a", Options: []string{"x", "y"}, AnswerIndex: 0},
								{ID: "b", Options: []string{"x", "y"}, AnswerIndex: 1},
							},
						},
					},
				},
				{
					ID:    "m2",
					Title: "Planificación",
					Quizzes: []content.QuestionSet{
						{
							ID: "m2q1",
							Questions: []content.Question{
								{ID: "c", Options: []string{"x", "y"}, AnswerIndex: 0},
								{ID: "d", Options: []string{"x", "y"}, AnswerIndex: 1},
							},
						},
					},
				},
			},
		},
	}
}

type recordingSaver struct {
	calls int
	last  State
	err   error
}

func (r *recordingSaver) Save(s State) error {
	r.calls++
	r.last = s
	return r.err
}

func TestContainer_PersistsAfterEveryMutation(t *testing.T) {
	saver := &recordingSaver{}
	c := NewContainer(NewState("m1"), saver)

	c.RecordAnswer("m1q1", "a", 1)
	c.SetActivityText("act1", "mi respuesta")
	c.SetCurrentModule("m2")
	c.SetProfile("Ada", "ada@example.com")

	if saver.calls != 4 {
		t.Fatalf("saver called %d times, want 4", saver.calls)
	}
	st := saver.last
	if st.AnswersByQuiz["m1q1"]["a"] != 1 {
		t.Errorf("answer not persisted: %v", st.AnswersByQuiz)
	}
	if st.ActivityTexts["act1"] != "mi respuesta" {
		t.Errorf("activity text not persisted: %v", st.ActivityTexts)
	}
	if st.CurrentModuleID != "m2" {
		t.Errorf("currentModuleId = %q, want m2", st.CurrentModuleID)
	}
	if st.Profile.Name != "Ada" || st.Profile.Email != "ada@example.com" {
		t.Errorf("profile = %+v", st.Profile)
	}
}

func TestContainer_SaveFailureDoesNotBlockSession(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	c := NewContainer(NewState("m1"), saver)

	c.RecordAnswer("m1q1", "a", 0)

	if got := c.State().AnswersByQuiz["m1q1"]["a"]; got != 0 {
		t.Errorf("in-memory state lost after failed save: %d", got)
	}
}

func TestRecordAnswer_OverwritesPriorSelection(t *testing.T) {
	c := NewContainer(NewState("m1"), nil)
	c.RecordAnswer("m1q1", "a", 0)
	c.RecordAnswer("m1q1", "a", 1)

	if got := c.State().AnswersByQuiz["m1q1"]["a"]; got != 1 {
		t.Errorf("answer = %d, want 1 after overwrite", got)
	}
}

func TestRecordSimulatorResult_AppendsAndClearsClock(t *testing.T) {
	c := NewContainer(NewState("m1"), nil)
	c.SaveSimulatorClock(scoring.AnswerMap{"q1": 0}, 1200)

	if tl := c.State().Simulator.TimeLeft; tl == nil || *tl != 1200 {
		t.Fatalf("timeLeft checkpoint = %v, want 1200", tl)
	}

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	res := scoring.Result{
		ByDomain: map[string]scoring.DomainStat{"X": {Correct: 18, Total: 25}},
		Score:    18,
	}
	c.RecordSimulatorResult(scoring.AnswerMap{"q1": 0}, res, now)
	c.RecordSimulatorResult(scoring.AnswerMap{"q1": 1}, scoring.Result{Score: 20}, now.Add(time.Hour))

	sim := c.State().Simulator
	if len(sim.Runs) != 2 {
		t.Fatalf("runs = %d, want 2 (append-only history)", len(sim.Runs))
	}
	if sim.Runs[0].Score != 18 || sim.Runs[1].Score != 20 {
		t.Errorf("run scores = %d, %d", sim.Runs[0].Score, sim.Runs[1].Score)
	}
	if sim.TimeLeft != nil {
		t.Errorf("timeLeft = %v, want nil after submission", sim.TimeLeft)
	}
	if sim.LastResult == nil || sim.LastResult.Score != 20 {
		t.Errorf("lastResult = %+v, want latest run", sim.LastResult)
	}
}

func TestReset_StartsOver(t *testing.T) {
	c := NewContainer(NewState("m1"), nil)
	c.RecordAnswer("m1q1", "a", 1)
	c.SetProfile("Ada", "ada@example.com")

	c.Reset("m1")

	st := c.State()
	if len(st.AnswersByQuiz) != 0 || st.Profile.Name != "" {
		t.Errorf("state not reset: %+v", st)
	}
	if st.Version != SchemaVersion {
		t.Errorf("version = %d, want %d", st.Version, SchemaVersion)
	}
}

func TestCurrentModule_FallsBackToFirst(t *testing.T) {
	cat := testCatalog()
	st := NewState("m2")

	if got := CurrentModule(cat, st); got.ID != "m2" {
		t.Errorf("CurrentModule = %q, want m2", got.ID)
	}

	st.CurrentModuleID = "deleted-module"
	if got := CurrentModule(cat, st); got.ID != "m1" {
		t.Errorf("CurrentModule = %q, want fallback m1", got.ID)
	}
}

func TestOverallAndModuleProgress(t *testing.T) {
	cat := testCatalog()
	c := NewContainer(NewState("m1"), nil)
	c.RecordAnswer("m1q1", "a", 0)
	c.RecordAnswer("m1q1", "b", 0)
	c.RecordAnswer("m2q1", "c", 1)
	c.RecordAnswer("m2q1", "stale-question", 0)

	overall := OverallProgress(cat, c.State())
	if overall.Answered != 3 || overall.Total != 4 || overall.Pct != 75 {
		t.Errorf("overall = %+v, want {3 4 75}", overall)
	}

	m1, _ := cat.Module("m1")
	if got := ModuleProgress(c.State(), m1); got != 100 {
		t.Errorf("m1 progress = %d, want 100", got)
	}
	m2, _ := cat.Module("m2")
	if got := ModuleProgress(c.State(), m2); got != 50 {
		t.Errorf("m2 progress = %d, want 50", got)
	}
}

// Percentages round to the nearest whole number, so 2 of 3 answered
// reads 67, not a floored 66.
func TestModuleProgress_RoundsToNearest(t *testing.T) {
	mod := content.Module{
		ID: "m3",
		Quizzes: []content.QuestionSet{
			{
				ID: "m3q1",
				Questions: []content.Question{
					{ID: "e", Options: []string{"x", "y"}, AnswerIndex: 0},
					{ID: "f", Options: []string{"x", "y"}, AnswerIndex: 1},
					{ID: "g", Options: []string{"x", "y"}, AnswerIndex: 0},
				},
			},
		},
	}
	cat := testCatalog()
	cat.Course.Modules = append(cat.Course.Modules, mod)

	c := NewContainer(NewState("m3"), nil)
	c.RecordAnswer("m3q1", "e", 0)
	c.RecordAnswer("m3q1", "f", 0)

	if got := ModuleProgress(c.State(), mod); got != 67 {
		t.Errorf("progress = %d, want 67", got)
	}
	overall := OverallProgress(cat, c.State())
	if overall.Answered != 2 || overall.Total != 7 || overall.Pct != 29 {
		t.Errorf("overall = %+v, want {2 7 29}", overall)
	}
}

func TestBestSimulatorScore(t *testing.T) {
	st := NewState("m1")
	if got := BestSimulatorScore(st); got != 0 {
		t.Errorf("best = %d, want 0 with no runs", got)
	}
	st.Simulator.Runs = []SimulatorRun{{Score: 12}, {Score: 21}, {Score: 17}}
	if got := BestSimulatorScore(st); got != 21 {
		t.Errorf("best = %d, want 21", got)
	}
}

func TestCertificateEligible(t *testing.T) {
	tests := []struct {
		name string
		res  *scoring.Result
		want bool
	}{
		{"no result", nil, false},
		{"exactly threshold", &scoring.Result{ByDomain: map[string]scoring.DomainStat{"A": {Correct: 7, Total: 10}}}, true},
		{"just below threshold", &scoring.Result{ByDomain: map[string]scoring.DomainStat{"A": {Correct: 6, Total: 10}}}, false},
		{"empty result", &scoring.Result{ByDomain: map[string]scoring.DomainStat{}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState("m1")
			st.Simulator.LastResult = tt.res
			if got := CertificateEligible(st); got != tt.want {
				t.Errorf("eligible = %v, want %v", got, tt.want)
			}
		})
	}
}
