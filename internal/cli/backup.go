package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// backupCommand creates the backup command group.
func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create and list document backups",
	}

	cmd.AddCommand(c.backupCreateCommand())
	cmd.AddCommand(c.backupListCommand())

	return cmd
}

func (c *CLI) backupCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <file>",
		Short: "Snapshot a dashboard into the backup directory",
		Long: `Snapshot a dashboard into the backup directory.

The document must pass the strict decode first; the snapshot is written as
pretty-printed JSON named dashboard-backup-<timestamp>.json, with the
timestamp formatted so it is safe as a filename component.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.loadDashboard(args[0])
			if err != nil {
				return err
			}

			st, err := c.newStore()
			if err != nil {
				return err
			}

			path, err := st.SaveBackup(c.newNormalizer().NewBackup(d))
			if err != nil {
				return err
			}

			printSuccess("Backup created")
			printFile(path)
			return nil
		},
	}
}

func (c *CLI) backupListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored backups, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore()
			if err != nil {
				return err
			}

			backups, err := st.ListBackups()
			if err != nil {
				return err
			}
			if len(backups) == 0 {
				printInfo("No backups in %s", st.Path())
				return nil
			}

			rows := make([][]string, len(backups))
			for i, b := range backups {
				rows[i] = []string{
					b.Filename,
					fmt.Sprintf("%d B", b.Size),
					b.ModTime.Format("2006-01-02 15:04:05"),
				}
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Backup", "Size", "Written").
				Rows(rows...)

			fmt.Println(t)
			return nil
		},
	}
}
