// Package cli implements the gridboard command-line interface.
//
// This package provides commands for creating, validating, normalizing, and
// migrating dashboard documents, plus widget maintenance, backups, and
// coordinate tooling. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - new: Create an empty or sample dashboard document
//   - validate: Run the strict validation path over a document
//   - normalize: Repair a document or fragment through the lenient path
//   - migrate: Preview and apply a grid layout change
//   - resize: Nudge one grid dimension by a single step
//   - inspect: Show a document's layout, widgets, and metadata
//   - widget: Add, remove, and list widgets
//   - backup: Create and list document backups
//   - coord: Convert between positions and spreadsheet-style coordinates
//   - config: Manage the CLI configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// lives on the CLI struct and is injected into the normalization layer so
// lenient repairs are traceable.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/board"
	"github.com/matzehuels/gridboard/pkg/buildinfo"
	gbio "github.com/matzehuels/gridboard/pkg/io"
	"github.com/matzehuels/gridboard/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "gridboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Gridboard manages dashboard grid documents",
		Long:         `Gridboard is a CLI tool for working with dashboard documents: fixed-size grids onto which rectangular widgets are placed, resized, and validated.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.newCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.normalizeCommand())
	root.AddCommand(c.migrateCommand())
	root.AddCommand(c.resizeCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.widgetCommand())
	root.AddCommand(c.backupCommand())
	root.AddCommand(c.coordCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newNormalizer creates the normalization-layer entry point for CLI use,
// with the CLI logger attached so lenient repairs trace at debug level.
func (c *CLI) newNormalizer() *gbio.Normalizer {
	return gbio.NewNormalizer(gbio.WithLogger(c.Logger))
}

// newStore creates the document store, honoring the configured backup
// directory when one is set.
func (c *CLI) newStore() (*store.FileStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Debug("config unreadable, using defaults", "err", err)
		cfg = defaultConfig()
	}
	return store.NewFileStore(cfg.BackupDir)
}

// configDir returns the config directory using XDG standard
// (~/.config/gridboard/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadDashboard reads a document file and runs it through the strict path.
func (c *CLI) loadDashboard(path string) (*board.Dashboard, error) {
	st, err := c.newStore()
	if err != nil {
		return nil, err
	}
	data, err := st.Load(path)
	if err != nil {
		return nil, err
	}
	return c.newNormalizer().Unmarshal(data)
}

// writeDashboard writes a document as pretty JSON, to stdout when path is
// "-" or empty.
func writeDashboard(d *board.Dashboard, path string) error {
	if path == "" || path == "-" {
		return gbio.Write(d, os.Stdout)
	}
	return gbio.Export(d, path)
}
