package content

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data/course.yaml data/final_exam.yaml
var dataFS embed.FS

const (
	courseFile = "course.yaml"
	examFile   = "final_exam.yaml"
)

// ErrEmptyCatalog indicates the catalog has no modules or no exam
// questions. This is the only fatal content condition: without it there
// is nothing to render.
var ErrEmptyCatalog = errors.New("content catalog is empty")

// examDoc is the on-disk shape of the final-exam document.
type examDoc struct {
	Title     string     `yaml:"title,omitempty"`
	Questions []Question `yaml:"questions"`
}

// Load builds the catalog from the YAML documents embedded in the binary.
// Integrity issues are logged as diagnostics; only an empty catalog fails.
func Load() (*Catalog, error) {
	course, err := dataFS.ReadFile("data/" + courseFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", courseFile, err)
	}
	exam, err := dataFS.ReadFile("data/" + examFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded %s: %w", examFile, err)
	}
	return build(course, exam)
}

// LoadDir builds the catalog from course.yaml and final_exam.yaml in the
// given directory, replacing the embedded content wholesale.
func LoadDir(dir string) (*Catalog, error) {
	course, err := os.ReadFile(filepath.Join(dir, courseFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", courseFile, err)
	}
	exam, err := os.ReadFile(filepath.Join(dir, examFile))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", examFile, err)
	}
	return build(course, exam)
}

func build(courseYAML, examYAML []byte) (*Catalog, error) {
	// Shape-check against the document schemas first. Failures are
	// developer diagnostics, not load failures.
	if err := checkShape(courseSchemaName, courseYAML); err != nil {
		slog.Warn("course document shape check failed", "error", err)
	}
	if err := checkShape(examSchemaName, examYAML); err != nil {
		slog.Warn("exam document shape check failed", "error", err)
	}

	var course Course
	if err := yaml.Unmarshal(courseYAML, &course); err != nil {
		return nil, fmt.Errorf("parse %s: %w", courseFile, err)
	}
	var exam examDoc
	if err := yaml.Unmarshal(examYAML, &exam); err != nil {
		return nil, fmt.Errorf("parse %s: %w", examFile, err)
	}

	if len(course.Modules) == 0 || len(exam.Questions) == 0 {
		return nil, ErrEmptyCatalog
	}

	title := exam.Title
	if title == "" {
		title = "Examen final simulado"
	}
	c := &Catalog{
		Course: course,
		Exam: QuestionSet{
			ID:        "final-exam",
			Title:     title,
			Questions: exam.Questions,
		},
	}

	// Non-fatal integrity pass. Defective items are still rendered; the
	// issues are surfaced to a developer-facing log.
	for _, issue := range Verify(c) {
		slog.Warn("content integrity issue", "issue", issue)
	}

	return c, nil
}
