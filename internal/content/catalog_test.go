package content

import "testing"

func TestLoad_EmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(c.Course.Modules) != 6 {
		t.Errorf("modules = %d, want 6", len(c.Course.Modules))
	}
	if len(c.Exam.Questions) != 25 {
		t.Errorf("exam questions = %d, want 25", len(c.Exam.Questions))
	}
	if c.Course.Simulator.DurationMinutes != 60 {
		t.Errorf("durationMinutes = %d, want 60", c.Course.Simulator.DurationMinutes)
	}
	if got := c.ExamDurationSeconds(); got != 3600 {
		t.Errorf("ExamDurationSeconds = %d, want 3600", got)
	}
}

func TestLoad_EmbeddedCatalogIsSound(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if issues := Verify(c); len(issues) != 0 {
		t.Errorf("embedded catalog has integrity issues: %v", issues)
	}
}

func TestCatalog_ModuleLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	m, ok := c.Module("m3")
	if !ok {
		t.Fatal("module m3 not found")
	}
	if m.Title == "" {
		t.Error("module m3 has empty title")
	}

	if _, ok := c.Module("nope"); ok {
		t.Error("lookup of unknown module id should fail")
	}

	if c.FirstModule().ID != "m1" {
		t.Errorf("FirstModule = %q, want m1", c.FirstModule().ID)
	}
}

func TestCatalog_QuizLookupAndCounts(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	qs, ok := c.Quiz("m1q1")
	if !ok {
		t.Fatal("quiz m1q1 not found")
	}
	if len(qs.Questions) != 6 {
		t.Errorf("m1q1 questions = %d, want 6", len(qs.Questions))
	}

	// 6+5+6+6+5+5 across the six module quizzes.
	if got := c.TotalQuizQuestions(); got != 33 {
		t.Errorf("TotalQuizQuestions = %d, want 33", got)
	}

	m, _ := c.Module("m2")
	if got := m.QuestionCount(); got != 5 {
		t.Errorf("m2 QuestionCount = %d, want 5", got)
	}
}

func TestBuild_EmptyCatalogIsFatal(t *testing.T) {
	course := []byte("title: t\nmodules: []\n")
	exam := []byte("questions: []\n")
	if _, err := build(course, exam); err == nil {
		t.Fatal("expected error for empty catalog, got nil")
	}
}

func TestQuestion_DomainOrDefault(t *testing.T) {
	if got := (Question{Domain: "Registro"}).DomainOrDefault(); got != "Registro" {
		t.Errorf("DomainOrDefault = %q, want Registro", got)
	}
	if got := (Question{}).DomainOrDefault(); got != DefaultDomain {
		t.Errorf("DomainOrDefault = %q, want %q", got, DefaultDomain)
	}
}
