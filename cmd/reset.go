package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Print("Se borrará todo el progreso guardado. ¿Continuar? [y/N] ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				fmt.Println("Cancelado.")
				return nil
			}
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

		container.Reset(catalog.FirstModule().ID)

		fmt.Println("Progreso reiniciado.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
