package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/syllab/syllab-cli/pkg/config"
	"github.com/syllab/syllab-cli/pkg/models"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Long:  `Creates the .syllab folder with a default settings.yaml in the current directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(config.SyllabDir, config.SettingsFile)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			if err := config.WriteSettings(models.DefaultSettings()); err != nil {
				return fmt.Errorf("write settings: %w", err)
			}

			fmt.Printf("✓ Created %s\n", path)
			fmt.Println("Run 'syllab edit <course-key>' to start the editor.")
			return nil
		},
	}
}
