package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jlozano/riskprep/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace progress with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		// Parse before touching anything: a bad file must leave the
		// current progress exactly as it was.
		imported, err := progress.ImportSnapshot(data)
		if err != nil {
			var perr *progress.ParseError
			if errors.As(err, &perr) {
				return fmt.Errorf("%s is not a valid progress file: %w", args[0], perr.Err)
			}
			return err
		}

		catalog, err := loadCatalog(cmd)
		if err != nil {
			return fmt.Errorf("load course content: %w", err)
		}
		st, container, err := openProgress(cmd, catalog)
		if err != nil {
			return err
		}
		defer st.Close()

		container.Replace(imported)

		fmt.Println("Progreso importado desde", args[0])
		return nil
	},
}
