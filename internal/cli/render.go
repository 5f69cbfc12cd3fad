package cli

import (
	"os"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

// renderOpts holds the flags for the render command.
type renderOpts struct {
	output string // image path; derived from the input when empty
	renderFlags
}

// renderCommand creates the render command, which lays out an existing .gv file.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file.gv>",
		Short: "Render a DOT file to an image with Graphviz",
		Long: `Render a DOT file to an image.

By default the engine binary (sfdp) is run with overlap removal and curved edges.
Use --in-process to render with the embedded Graphviz library instead (png, svg, jpg).`,
		Example: `  dotbuilder render out.gv
  dotbuilder render out.gv -o graph.svg --format svg --engine dot
  dotbuilder render out.gv --in-process --open`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ropts, inProcess, open, err := opts.resolve(cmd, c.Config)
			if err != nil {
				return err
			}
			input := args[0]
			if _, err := os.Stat(input); err != nil {
				return errs.Wrap(errs.ErrCodeIO, err, "read %s", input)
			}
			return c.renderFile(cmd.Context(), input, opts.output, ropts, inProcess, open, opts.noCache)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image (default: input name with the format extension)")
	opts.renderFlags.register(cmd)

	return cmd
}
