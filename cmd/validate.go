package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlozano/riskprep/internal/content"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the course content for integrity issues",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load course content: %w", err)
		}

		issues := content.Verify(catalog)
		if len(issues) == 0 {
			fmt.Printf("OK: %d módulos, %d preguntas de quiz, %d preguntas de examen.\n",
				len(catalog.Course.Modules), catalog.TotalQuizQuestions(), len(catalog.Exam.Questions))
			return nil
		}

		for _, issue := range issues {
			fmt.Println("✗", issue)
		}
		return fmt.Errorf("%d problema(s) de integridad", len(issues))
	},
}
