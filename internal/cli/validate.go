package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCommand creates the validate command for strict document checks.
func (c *CLI) validateCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a dashboard document against the strict path",
		Long: `Validate a dashboard document against the strict path.

The document is decoded with the strict shape rules (missing or wrong-typed
required fields are errors), then run through the full geometry validation:
layout ranges, widget bounds, and pairwise overlap. The exit code is 1 when
the document is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0], quiet)
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, report via exit code only")

	return cmd
}

func (c *CLI) runValidate(path string, quiet bool) error {
	st, err := c.newStore()
	if err != nil {
		return err
	}
	data, err := st.Load(path)
	if err != nil {
		return err
	}

	p := newProgress(c.Logger)
	res := c.newNormalizer().Check(data)
	p.done(fmt.Sprintf("Checked %s", path))

	if res.Valid {
		if !quiet {
			printSuccess("Document is valid")
		}
		return nil
	}

	if !quiet {
		printError("Document is invalid")
		for _, msg := range res.Errors {
			printDetail("%s", msg)
		}
	}
	return fmt.Errorf("%s: validation failed", path)
}
