package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jlozano/riskprep/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export progress to a JSON file",
	Long:  "Writes the full progress state as JSON. Without an argument the file is " + progress.ExportFilename + " in the current directory.",
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

		data, err := progress.ExportSnapshot(container.Snapshot())
		if err != nil {
			return fmt.Errorf("serialize progress: %w", err)
		}

		path := progress.ExportFilename
		if len(args) == 1 {
			path = args[0]
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		fmt.Println("Progreso exportado a", path)
		return nil
	},
}
