package content

// DefaultDomain is assigned to questions that declare no domain.
const DefaultDomain = "General"

// Catalog is the immutable course catalog: the module tree plus the
// final-exam question bank. Loaded once at startup.
type Catalog struct {
	Course Course
	Exam   QuestionSet
}

// Course is the root of the module tree.
type Course struct {
	Title     string          `yaml:"title"`
	Subtitle  string          `yaml:"subtitle"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Modules   []Module        `yaml:"modules"`
}

// SimulatorConfig holds final-exam simulator settings. The question bank
// itself lives in a separate document.
type SimulatorConfig struct {
	DurationMinutes int `yaml:"durationMinutes"`
}

// Module is a thematic unit: lessons, free-text activities and quizzes.
type Module struct {
	ID         string        `yaml:"id"`
	Title      string        `yaml:"title"`
	Lessons    []Lesson      `yaml:"lessons"`
	Activities []Activity    `yaml:"activities"`
	Quizzes    []QuestionSet `yaml:"quizzes"`
}

// Lesson is opaque display content: body text, an optional concept chart
// and an optional support-video link.
type Lesson struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Chart   *Chart `yaml:"chart,omitempty"`
	Video   string `yaml:"video,omitempty"`
}

// Chart is simple labeled bar data attached to a lesson.
type Chart struct {
	Data    []ChartBar `yaml:"data"`
	Max     int        `yaml:"max,omitempty"`
	Caption string     `yaml:"caption,omitempty"`
}

// ChartBar is a single bar in a lesson chart.
type ChartBar struct {
	Label string `yaml:"label"`
	Value int    `yaml:"value"`
}

// Activity is an open-ended exercise answered with free text.
type Activity struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Brief       string `yaml:"brief"`
	Placeholder string `yaml:"placeholder,omitempty"`
}

// QuestionSet is an ordered collection of multiple-choice questions:
// a module mini-quiz or the final exam.
type QuestionSet struct {
	ID        string     `yaml:"id"`
	Title     string     `yaml:"title"`
	Questions []Question `yaml:"questions"`
}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	ID          string   `yaml:"id"`
	Prompt      string   `yaml:"prompt"`
	Options     []string `yaml:"options"`
	AnswerIndex int      `yaml:"answerIndex"`
	Explanation string   `yaml:"explanation"`
	Domain      string   `yaml:"domain,omitempty"`
}

// DomainOrDefault returns the question's domain tag, or DefaultDomain
// when none is set.
func (q Question) DomainOrDefault() string {
	if q.Domain == "" {
		return DefaultDomain
	}
	return q.Domain
}

// Module returns the module with the given ID.
func (c *Catalog) Module(id string) (Module, bool) {
	for _, m := range c.Course.Modules {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}

// FirstModule returns the first module in catalog order. It panics if the
// catalog is empty; Load rejects empty catalogs before that can happen.
func (c *Catalog) FirstModule() Module {
	return c.Course.Modules[0]
}

// Quiz returns the question set with the given ID from any module.
func (c *Catalog) Quiz(id string) (QuestionSet, bool) {
	for _, m := range c.Course.Modules {
		for _, qs := range m.Quizzes {
			if qs.ID == id {
				return qs, true
			}
		}
	}
	return QuestionSet{}, false
}

// TotalQuizQuestions counts questions across all modules' quizzes.
// The final exam is not included.
func (c *Catalog) TotalQuizQuestions() int {
	total := 0
	for _, m := range c.Course.Modules {
		for _, qs := range m.Quizzes {
			total += len(qs.Questions)
		}
	}
	return total
}

// QuestionCount counts questions in this module's quizzes.
func (m Module) QuestionCount() int {
	total := 0
	for _, qs := range m.Quizzes {
		total += len(qs.Questions)
	}
	return total
}

// ExamDurationSeconds returns the simulator duration in seconds.
func (c *Catalog) ExamDurationSeconds() int {
	return c.Course.Simulator.DurationMinutes * 60
}
