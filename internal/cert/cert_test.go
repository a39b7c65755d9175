package cert

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/scoring"
)

func eligibleState() progress.State {
	st := progress.NewState("m1")
	st.Profile = progress.Profile{Name: "Ada Lovelace", Email: "ada@example.com"}
	st.Simulator.LastResult = &scoring.Result{
		ByDomain: map[string]scoring.DomainStat{"Planificación": {Correct: 18, Total: 25}},
		Score:    18,
	}
	return st
}

func TestRender_EligibleState(t *testing.T) {
	html, err := Render(eligibleState(), "Gestión de Riesgos", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc := string(html)
	for _, want := range []string{
		"Ada Lovelace",
		"Gestión de Riesgos",
		"18 de 25",
		"15 de marzo de 2026",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("certificate missing %q", want)
		}
	}
}

func TestRender_NotEligible(t *testing.T) {
	st := progress.NewState("m1")
	st.Simulator.LastResult = &scoring.Result{
		ByDomain: map[string]scoring.DomainStat{"A": {Correct: 6, Total: 10}},
		Score:    6,
	}

	_, err := Render(st, "Curso", time.Now())
	if !errors.Is(err, ErrNotEligible) {
		t.Fatalf("err = %v, want ErrNotEligible", err)
	}
}

func TestRender_EscapesName(t *testing.T) {
	st := eligibleState()
	st.Profile.Name = `<script>alert("x")</script>`

	html, err := Render(st, "Curso", time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(html), "<script>alert") {
		t.Error("profile name not escaped")
	}
}

func TestRender_DefaultName(t *testing.T) {
	st := eligibleState()
	st.Profile.Name = ""

	html, err := Render(st, "Curso", time.Now())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(html), "Participante") {
		t.Error("missing fallback name")
	}
}
