package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotbuilder/pkg/dot"
)

// checkCommand creates the check command, which parses a .gv file and prints a summary.
func (c *CLI) checkCommand() *cobra.Command {
	var labels bool

	cmd := &cobra.Command{
		Use:   "check <file.gv>",
		Short: "Verify that a DOT file parses and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := dot.VerifyFile(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("Parsed %s", args[0])

			printSuccess("%s is valid", args[0])
			printKeyValue("graph", s.Name)
			printKeyValue("directed", strconv.FormatBool(s.Directed))
			printStats(s.Nodes, s.Edges)
			if labels {
				printLabels(s.Labels)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&labels, "labels", false, "list node labels")

	return cmd
}
