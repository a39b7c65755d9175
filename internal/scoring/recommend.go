package scoring

import "fmt"

// Recommend picks the domain with the lowest correct/total ratio and
// produces a fixed study suggestion naming it. Ties break
// lexicographically so the suggestion is deterministic. An empty
// byDomain yields the empty string.
func Recommend(byDomain map[string]DomainStat) string {
	worst := ""
	worstRatio := 0.0
	for _, dom := range Domains(byDomain) {
		stat := byDomain[dom]
		if stat.Total == 0 {
			continue
		}
		ratio := float64(stat.Correct) / float64(stat.Total)
		if worst == "" || ratio < worstRatio {
			worst = dom
			worstRatio = ratio
		}
	}
	if worst == "" {
		return ""
	}
	return fmt.Sprintf("Refuerza el dominio %q con las lecciones y mini-exámenes de su módulo.", worst)
}
