package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jlozano/riskprep/internal/cert"
	"github.com/jlozano/riskprep/internal/progress"
)

var certCmd = &cobra.Command{
	Use:   "cert [file]",
	Short: "Generate the completion certificate as HTML",
	Args:  cobra.MaximumNArgs(1),
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

		html, err := cert.Render(container.State(), catalog.Course.Title, time.Now())
		if errors.Is(err, cert.ErrNotEligible) {
			return fmt.Errorf("el certificado requiere al menos %d%% en el examen final simulado",
				int(progress.CertificateThreshold*100))
		}
		if err != nil {
			return err
		}

		path := "certificado.html"
		if len(args) == 1 {
			path = args[0]
		}
		if err := os.WriteFile(path, html, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		fmt.Println("Certificado generado en", path)
		return nil
	},
}
