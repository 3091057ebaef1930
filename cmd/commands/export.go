package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syllab/syllab-cli/pkg/config"
	"github.com/syllab/syllab-cli/pkg/models"
	"github.com/syllab/syllab-cli/pkg/outline"
)

var exportToFile string

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <course-key>",
		Short: "Export the curriculum as Markdown to stdout or a file",
		Long: `Export a course's curriculum as a Markdown outline.

By default the outline is written to stdout. The --file flag writes it to
a file instead; passing --file with no value uses the default filename
from .syllab/settings.yaml.

Examples:
  # Export to stdout
  syllab export go-fundamentals

  # Export to a file using redirection
  syllab export go-fundamentals > outline.md

  # Export to a file using the flag
  syllab export go-fundamentals --file outline.md`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout")
	cmd.Flags().Lookup("file").NoOptDefVal = "-"

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	cur, err := fetchCurriculum(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	md := outline.RenderMarkdown(cur)

	if exportToFile == "" {
		fmt.Print(md)
		return nil
	}

	filename := exportToFile
	if filename == "-" {
		settings, err := config.ReadSettings()
		if err != nil {
			settings = models.DefaultSettings()
		}
		filename = settings.Export.DefaultFilename
	}

	if err := os.WriteFile(filename, []byte(md), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	fmt.Printf("✓ Exported curriculum to %s\n", filename)
	return nil
}
