package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlozano/riskprep/internal/app"
)

// runApp loads the catalog, opens the store, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return fmt.Errorf("load course content: %w", err)
	}

	st, container, err := openProgress(cmd, catalog)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(app.Options{
		Catalog:   catalog,
		Container: container,
		Events:    st.EventRepo(),
	})
}
