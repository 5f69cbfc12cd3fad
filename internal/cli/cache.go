package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotbuilder/pkg/cache"
	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the in-process render cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached renders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return errs.Wrap(errs.ErrCodeIO, err, "get cache dir")
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return errs.Wrap(errs.ErrCodeIO, err, "open cache %s", dir)
			}
			count, err := fc.Clear()
			if err != nil {
				return errs.Wrap(errs.ErrCodeIO, err, "clear cache %s", dir)
			}

			printSuccess("Cleared %d cached renders", count)
			printKeyValue("directory", dir)
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return errs.Wrap(errs.ErrCodeIO, err, "get cache dir")
			}
			fmt.Fprintln(out, dir)
			return nil
		},
	}
}
