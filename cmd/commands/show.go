package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/syllab/syllab-cli/pkg/outline"
)

var showCopy bool

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <course-key>",
		Short: "Display the curriculum outline of a course",
		Long: `Display a course's curriculum as a plain numbered outline.

Sections appear in order with their lectures nested underneath; lectures
with an attached video carry a marker.

Examples:
  # Print the outline
  syllab show go-fundamentals

  # Copy it to the clipboard as well
  syllab show go-fundamentals --copy`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().BoolVarP(&showCopy, "copy", "c", false, "Also copy the outline to the clipboard")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cur, err := fetchCurriculum(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	text := outline.Render(cur)
	fmt.Print(text)

	if showCopy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Println("\n✓ Copied to clipboard")
	}
	return nil
}
