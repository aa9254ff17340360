package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/grid"
)

// Config holds the CLI defaults stored in the config file.
type Config struct {
	DefaultColumns int    `toml:"default_columns"`
	DefaultRows    int    `toml:"default_rows"`
	CellWidth      int    `toml:"cell_width"`
	CellHeight     int    `toml:"cell_height"`
	Theme          string `toml:"theme"`
	BackupDir      string `toml:"backup_dir"`
}

// defaultConfig returns the built-in defaults: the factory layout and an
// unset backup directory (the store picks its own).
func defaultConfig() Config {
	return Config{
		DefaultColumns: grid.DefaultColumns,
		DefaultRows:    grid.DefaultRows,
		CellWidth:      grid.DefaultCellWidth,
		CellHeight:     grid.DefaultCellHeight,
		Theme:          "light",
	}
}

// Layout returns the configured default layout, clamped.
func (c Config) Layout() grid.Layout {
	return grid.Layout{
		Columns: c.DefaultColumns,
		Rows:    c.DefaultRows,
		CellSize: grid.CellSize{
			Width:  c.CellWidth,
			Height: c.CellHeight,
		},
	}.Clamp()
}

// configPath returns the config file location
// ($XDG_CONFIG_HOME/gridboard/config.toml).
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist. Unknown keys are ignored.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// writeConfig writes cfg to the config file, creating the directory.
func writeConfig(cfg Config) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return path, nil
}

// configCommand creates the config command for managing the CLI config file.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the gridboard configuration file",
		Long: `Manage the gridboard configuration file.

The config file holds defaults for new dashboards (grid dimensions, cell
size, theme) and the backup directory. It lives at
$XDG_CONFIG_HOME/gridboard/config.toml (~/.config/gridboard/config.toml).`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			printKeyValue("columns", fmt.Sprintf("%d", cfg.DefaultColumns))
			printKeyValue("rows", fmt.Sprintf("%d", cfg.DefaultRows))
			printKeyValue("cell size", fmt.Sprintf("%dx%d", cfg.CellWidth, cfg.CellHeight))
			printKeyValue("theme", cfg.Theme)
			backupDir := cfg.BackupDir
			if backupDir == "" {
				backupDir = "(store default)"
			}
			printKeyValue("backup dir", backupDir)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path, err := writeConfig(cfg)
			if err != nil {
				return err
			}
			printSuccess("Config written")
			printFile(path)
			return nil
		},
	})

	return cmd
}
