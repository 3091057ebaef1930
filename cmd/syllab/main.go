package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/syllab/syllab-cli/cmd/commands"
	"github.com/syllab/syllab-cli/pkg/config"
	"github.com/syllab/syllab-cli/pkg/gateway"
	"github.com/syllab/syllab-cli/pkg/logging"
	"github.com/syllab/syllab-cli/pkg/store"
	"github.com/syllab/syllab-cli/pkg/syncer"
	"github.com/syllab/syllab-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "syllab",
	Short: "Terminal-based curriculum editor for course authors",
	Long: `Syllab is a terminal-based editor for course curricula. It edits the
section and lecture tree of a course hosted on a Syllab backend, applying
every change optimistically and syncing it in the background.`,
}

var editCmd = &cobra.Command{
	Use:   "edit <course-key>",
	Short: "Open the interactive curriculum editor",
	Long: `Open the interactive curriculum editor for a course.

The course key identifies the curriculum on the backend, e.g. the course
slug. The backend URL comes from the SYLLAB_API_URL environment variable
(a .env file in the working directory is honored).

Examples:
  syllab edit go-fundamentals
  SYLLAB_API_URL=https://api.example.com syllab edit go-fundamentals`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Syllab",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Syllab version %s\n", version)
	},
}

func runEdit(cmd *cobra.Command, args []string) error {
	courseKey := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogPath, cfg.Environment != "production")
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()

	settings, err := config.ReadSettings()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}

	st := store.New()
	gw := gateway.New(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	coord := syncer.New(gw, st, courseKey, syncer.Options{
		RequestTimeout: time.Duration(settings.Sync.RequestTimeoutMS) * time.Millisecond,
		DeleteDelay:    time.Duration(settings.Sync.DeleteDelayMS) * time.Millisecond,
		Logger:         logger,
	})

	app := tui.NewApp(st, coord, settings)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("start the terminal user interface: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
}

func main() {
	// A local .env is optional; the environment may already be set.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
