package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Fragment names accepted by normalize --fragment.
const (
	fragmentLayout   = "layout"
	fragmentWidgets  = "widgets"
	fragmentMetadata = "metadata"
)

// normalizeCommand creates the normalize command for the lenient repair path.
func (c *CLI) normalizeCommand() *cobra.Command {
	var (
		output   string
		fragment string
	)

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Repair a document or fragment through the lenient path",
		Long: `Repair a document or fragment through the lenient path.

Every missing or invalid field is defaulted and every out-of-range numeric
is clamped; the input is rejected only when it is not JSON at all or its
top-level value has the wrong kind. With --fragment the input is treated as
a bare layout object, widget array, or metadata object instead of a whole
document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNormalize(args[0], output, fragment)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&fragment, "fragment", "",
		"treat input as a fragment: layout, widgets, or metadata")

	return cmd
}

func (c *CLI) runNormalize(path, output, fragment string) error {
	st, err := c.newStore()
	if err != nil {
		return err
	}
	data, err := st.Load(path)
	if err != nil {
		return err
	}
	n := c.newNormalizer()

	var result any
	switch fragment {
	case "":
		d, err := n.Normalize(data)
		if err != nil {
			return err
		}
		if err := writeDashboard(d, output); err != nil {
			return err
		}
		if output != "" && output != "-" {
			printSuccess("Document normalized")
			printFile(output)
		}
		return nil
	case fragmentLayout:
		result, err = n.NormalizeLayout(data)
	case fragmentWidgets:
		result, err = n.NormalizeWidgets(data)
	case fragmentMetadata:
		result, err = n.NormalizeMetadata(data)
	default:
		return fmt.Errorf("unknown fragment %q (valid: %s, %s, %s)",
			fragment, fragmentLayout, fragmentWidgets, fragmentMetadata)
	}
	if err != nil {
		return err
	}

	return writeJSON(result, output)
}

// writeJSON pretty-prints any value as JSON, to stdout when path is "-" or
// empty.
func writeJSON(v any, path string) error {
	w := os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
