// Package cert renders the completion certificate as a standalone
// HTML document.
package cert

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/jlozano/riskprep/internal/progress"
)

// ErrNotEligible is returned when the eligibility predicate fails.
var ErrNotEligible = errors.New("certificate threshold not met")

// Data fills the certificate template.
type Data struct {
	Name       string
	CourseName string
	Score      string
	Date       string
}

var tmpl = template.Must(template.New("cert").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Certificado — {{.Name}}</title>
<style>
  body { font-family: Georgia, serif; background: #f8fafc; color: #0f172a;
         display: flex; justify-content: center; padding: 4rem; }
  .cert { border: 6px double #6366f1; padding: 4rem 6rem; text-align: center;
          background: white; max-width: 48rem; }
  h1 { color: #6366f1; letter-spacing: 0.1em; }
  .name { font-size: 2rem; margin: 1.5rem 0; }
  .meta { color: #64748b; margin-top: 2rem; }
</style>
</head>
<body>
<div class="cert">
  <h1>Certificado de finalización</h1>
  <p>Se otorga a</p>
  <p class="name">{{.Name}}</p>
  <p>por completar satisfactoriamente el curso</p>
  <p><strong>{{.CourseName}}</strong></p>
  <p>con un resultado de {{.Score}} en el examen final simulado.</p>
  <p class="meta">{{.Date}}</p>
</div>
</body>
</html>
`))

// Render produces the certificate HTML for an eligible learner. The
// caller decides where to write it.
func Render(st progress.State, courseName string, now time.Time) ([]byte, error) {
	if !progress.CertificateEligible(st) {
		return nil, ErrNotEligible
	}

	name := st.Profile.Name
	if name == "" {
		name = "Participante"
	}

	res := st.Simulator.LastResult
	data := Data{
		Name:       name,
		CourseName: courseName,
		Score:      fmt.Sprintf("%d de %d", res.TotalCorrect(), res.TotalQuestions()),
		Date:       spanishDate(now),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}
	return buf.Bytes(), nil
}

var spanishMonths = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

func spanishDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()-1], t.Year())
}
