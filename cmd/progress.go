package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlozano/riskprep/internal/progress"
	"github.com/jlozano/riskprep/internal/scoring"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print a progress summary without launching the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load course content: %w", err)
		}
		st, container, err := openProgress(cmd, catalog)
		if err != nil {
			return err
		}
		defer st.Close()

		state := container.State()
		overall := progress.OverallProgress(catalog, state)

		fmt.Println(catalog.Course.Title)
		fmt.Printf("Progreso general: %d%% (%d de %d preguntas)\n\n", overall.Pct, overall.Answered, overall.Total)

		for _, m := range catalog.Course.Modules {
			marker := " "
			if m.ID == state.CurrentModuleID {
				marker = "▸"
			}
			fmt.Printf("%s %-40s %3d%%\n", marker, m.Title, progress.ModuleProgress(state, m))
		}

		fmt.Println()
		if best := progress.BestSimulatorScore(state); best > 0 {
			fmt.Printf("Mejor puntaje del simulador: %d/%d en %d intento(s)\n",
				best, len(catalog.Exam.Questions), len(state.Simulator.Runs))
		} else {
			fmt.Println("Aún sin intentos del examen final simulado.")
		}

		if res := state.Simulator.LastResult; res != nil {
			fmt.Println("\nÚltimo resultado por dominio:")
			for _, d := range scoring.Domains(res.ByDomain) {
				stat := res.ByDomain[d]
				fmt.Printf("  %-30s %d/%d\n", d, stat.Correct, stat.Total)
			}
			if res.Recommendation != "" {
				fmt.Println("\n" + res.Recommendation)
			}
		}

		if progress.CertificateEligible(state) {
			fmt.Println("\n✓ Certificado disponible (riskprep cert)")
		}
		return nil
	},
}
