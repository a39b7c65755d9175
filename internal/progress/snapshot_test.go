package progress

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jlozano/riskprep/internal/scoring"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	tl := 945
	st := NewState("m3")
	st.AnswersByQuiz["m1q1"] = scoring.AnswerMap{"a": 1, "b": 0}
	st.ActivityTexts["act1"] = "registro de riesgos"
	st.Profile = Profile{Name: "Ada", Email: "ada@example.com"}
	st.Simulator = SimulatorState{
		Answers:  scoring.AnswerMap{"simq1": 2},
		Runs:     []SimulatorRun{{Date: time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC), Score: 19}},
		TimeLeft: &tl,
		LastResult: &scoring.Result{
			ByDomain:       map[string]scoring.DomainStat{"Planificación": {Correct: 19, Total: 25}},
			Score:          19,
			Recommendation: "Refuerza el dominio \"Monitoreo\" con las lecciones y mini-exámenes de su módulo.",
		},
	}

	data, err := ExportSnapshot(st)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	got, err := ImportSnapshot(data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !reflect.DeepEqual(got, st) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, st)
	}
}

func TestImportSnapshot_RejectsMalformedFile(t *testing.T) {
	saver := &recordingSaver{}
	c := NewContainer(NewState("m1"), saver)
	c.RecordAnswer("m1q1", "a", 1)
	before := c.Snapshot()

	_, err := ImportSnapshot([]byte(`{not json`))
	if err == nil {
		t.Fatal("want an error for a malformed file")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %T, want *ParseError", err)
	}

	if !reflect.DeepEqual(c.State(), before) {
		t.Error("current state changed by a failed import")
	}
}

func TestImportSnapshot_NormalizesSparseFile(t *testing.T) {
	got, err := ImportSnapshot([]byte(`{"currentModuleId": "m2"}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if got.CurrentModuleID != "m2" {
		t.Errorf("currentModuleId = %q", got.CurrentModuleID)
	}
	if got.AnswersByQuiz == nil || got.ActivityTexts == nil || got.Simulator.Answers == nil {
		t.Error("maps not initialized on a sparse import")
	}
	if got.Version != SchemaVersion {
		t.Errorf("version = %d, want %d", got.Version, SchemaVersion)
	}
}

func TestClone_DoesNotAliasLiveMaps(t *testing.T) {
	st := NewState("m1")
	st.AnswersByQuiz["m1q1"] = scoring.AnswerMap{"a": 0}
	st.Simulator.Runs = []SimulatorRun{{Score: 10}}

	cp := st.Clone()
	cp.AnswersByQuiz["m1q1"]["a"] = 1
	cp.Simulator.Runs[0].Score = 99

	if st.AnswersByQuiz["m1q1"]["a"] != 0 {
		t.Error("clone shares the answer ledger")
	}
	if st.Simulator.Runs[0].Score != 10 {
		t.Error("clone shares the run history")
	}
}
