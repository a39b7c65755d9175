package content

import (
	"strings"
	"testing"
)

func soundCatalog() *Catalog {
	return &Catalog{
		Course: Course{
			Title: "t",
			Modules: []Module{
				{
					ID:    "m1",
					Title: "Módulo 1",
					Quizzes: []QuestionSet{
						{
							ID:    "m1q1",
							Title: "quiz",
							Questions: []Question{
								{ID: "q1", Prompt: "p", Options: []string{"a", "b"}, AnswerIndex: 0},
							},
						},
					},
				},
			},
		},
		Exam: QuestionSet{
			ID: "final-exam",
			Questions: []Question{
				{ID: "s1", Prompt: "p", Options: []string{"a", "b", "c"}, AnswerIndex: 2},
			},
		},
	}
}

func TestVerify_SoundCatalog(t *testing.T) {
	if issues := Verify(soundCatalog()); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestVerify_DetectsDefects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Catalog)
		want   string
	}{
		{
			name: "too few options",
			mutate: func(c *Catalog) {
				c.Course.Modules[0].Quizzes[0].Questions[0].Options = []string{"solo una"}
			},
			want: "fewer than 2 options",
		},
		{
			name: "answer index out of range",
			mutate: func(c *Catalog) {
				c.Exam.Questions[0].AnswerIndex = 7
			},
			want: "answerIndex 7 out of range",
		},
		{
			name: "negative answer index",
			mutate: func(c *Catalog) {
				c.Exam.Questions[0].AnswerIndex = -1
			},
			want: "out of range",
		},
		{
			name: "missing module identity",
			mutate: func(c *Catalog) {
				c.Course.Modules[0].Title = ""
			},
			want: "missing id or title",
		},
		{
			name: "duplicate question ids",
			mutate: func(c *Catalog) {
				qs := &c.Course.Modules[0].Quizzes[0]
				qs.Questions = append(qs.Questions, qs.Questions[0])
			},
			want: "duplicate question id",
		},
		{
			name: "empty quiz",
			mutate: func(c *Catalog) {
				c.Course.Modules[0].Quizzes[0].Questions = nil
			},
			want: "no questions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := soundCatalog()
			tt.mutate(c)
			issues := Verify(c)
			if len(issues) == 0 {
				t.Fatal("expected issues, got none")
			}
			found := false
			for _, issue := range issues {
				if strings.Contains(issue, tt.want) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("issues %v should mention %q", issues, tt.want)
			}
		})
	}
}

func TestCheckShape_RejectsMalformedDocument(t *testing.T) {
	doc := []byte("modules:\n  - quizzes: []\n")
	if err := checkShape(courseSchemaName, doc); err == nil {
		t.Fatal("expected schema error for document missing title, got nil")
	}
}

func TestCheckShape_AcceptsEmbeddedDocuments(t *testing.T) {
	for _, name := range []string{courseSchemaName, examSchemaName} {
		doc, err := dataFS.ReadFile("data/" + name + ".yaml")
		if err != nil {
			t.Fatalf("read embedded %s: %v", name, err)
		}
		if err := checkShape(name, doc); err != nil {
			t.Errorf("embedded %s fails shape check: %v", name, err)
		}
	}
}
