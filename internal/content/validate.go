package content

import "fmt"

// Verify runs the structural self-check over the whole catalog and
// returns one message per problem found. An empty result means the
// content is sound. Problems never block startup: the defective item is
// still rendered, the message goes to a developer-facing log.
func Verify(c *Catalog) []string {
	var issues []string

	moduleIDs := make(map[string]bool, len(c.Course.Modules))
	for _, m := range c.Course.Modules {
		if m.ID == "" || m.Title == "" {
			issues = append(issues, fmt.Sprintf("module %q: missing id or title", m.ID))
		}
		if moduleIDs[m.ID] {
			issues = append(issues, fmt.Sprintf("duplicate module id %q", m.ID))
		}
		moduleIDs[m.ID] = true

		for _, qs := range m.Quizzes {
			if qs.ID == "" {
				issues = append(issues, fmt.Sprintf("module %q: quiz with empty id", m.ID))
			}
			issues = append(issues, verifySet(m.ID+"/"+qs.ID, qs)...)
		}
	}

	issues = append(issues, verifySet(c.Exam.ID, c.Exam)...)
	return issues
}

// verifySet checks one question set: non-empty, unique question ids,
// >=2 options per question, answerIndex in range.
func verifySet(label string, qs QuestionSet) []string {
	var issues []string
	if len(qs.Questions) == 0 {
		issues = append(issues, fmt.Sprintf("%s: no questions", label))
	}

	seen := make(map[string]bool, len(qs.Questions))
	for i, q := range qs.Questions {
		ref := fmt.Sprintf("%s/Q%d", label, i)
		if q.ID == "" {
			issues = append(issues, ref+": empty question id")
		} else if seen[q.ID] {
			issues = append(issues, fmt.Sprintf("%s: duplicate question id %q", ref, q.ID))
		}
		seen[q.ID] = true

		if len(q.Options) < 2 {
			issues = append(issues, ref+": fewer than 2 options")
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			issues = append(issues, fmt.Sprintf("%s: answerIndex %d out of range", ref, q.AnswerIndex))
		}
	}
	return issues
}
