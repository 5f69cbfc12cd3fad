package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotbuilder/pkg/dot"
	errs "github.com/matzehuels/dotbuilder/pkg/errors"
	"github.com/matzehuels/dotbuilder/pkg/graphfile"
	"github.com/matzehuels/dotbuilder/pkg/render"
)

// buildOpts holds the flags for the build command.
type buildOpts struct {
	output string // .gv name without suffix; overrides the graph file's name
	dir    string // directory for the .gv file
	render bool   // render the result after writing it
	renderFlags
}

// buildCommand creates the build command, which turns a graph file into a .gv file.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <graph-file>",
		Short: "Build a DOT file from a TOML, YAML or JSON graph file",
		Long: `Build a DOT file from a declarative graph file.

The graph file lists nodes and edges; see the graphfile package for the format.
With --render (or --open) the written file is also rendered to an image.`,
		Example: `  dotbuilder build deps.toml
  dotbuilder build deps.yaml -o graphs/deps --render --format svg
  dotbuilder build deps.json --open --in-process`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output name without the .gv suffix (default: graph file name, or out)")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "output directory (default: output_dir from config)")
	cmd.Flags().BoolVar(&opts.render, "render", false, "render the DOT file after building it")
	opts.renderFlags.register(cmd)

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, path string, opts *buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	ropts, inProcess, open, err := opts.resolve(cmd, c.Config)
	if err != nil {
		return err
	}

	f, err := graphfile.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s: %d nodes, %d edges declared", path, len(f.Nodes), len(f.Edges))

	dir := opts.dir
	if dir == "" {
		dir = c.Config.OutputDir
	}
	builderOpts := f.Options(dir)
	if opts.output != "" {
		if err := errs.ValidateOutputName(opts.output); err != nil {
			return err
		}
		name := strings.TrimSuffix(opts.output, dot.FileSuffix)
		if dir != "" && !filepath.IsAbs(name) {
			name = filepath.Join(dir, name)
		}
		builderOpts.FileName = name
	}
	builderOpts.NonDirectional = builderOpts.NonDirectional || c.Config.NonDirectional
	builderOpts.DuplicatesEqual = builderOpts.DuplicatesEqual || c.Config.DuplicatesEqual
	builderOpts.Logger = logger

	b := dot.New(builderOpts)
	f.Apply(b)

	if err := ensureDir(b.Path()); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "create output directory for %s", b.Path())
	}
	if err := b.Finalize(); err != nil {
		return err
	}

	printSuccess("Built %s", b.Path())
	printStats(b.NodeCount(), b.EdgeCount())
	if b.EdgeCount() == 0 {
		printWarning("No edges declared; unlinked nodes get no label statement")
	}

	if !opts.render && !open {
		printNextStep("Render it", appName+" render "+b.Path())
		return nil
	}
	return c.renderFile(ctx, b.Path(), "", ropts, inProcess, open, opts.noCache)
}

// renderFile renders input to output (derived from input when empty) with a spinner.
func (c *CLI) renderFile(ctx context.Context, input, output string, opts render.Options, inProcess, open, noCache bool) error {
	logger := loggerFromContext(ctx)

	if output != "" {
		if err := ensureDir(output); err != nil {
			return errs.Wrap(errs.ErrCodeIO, err, "create output directory for %s", output)
		}
	}

	mode := "exec"
	if inProcess {
		mode = "in-process"
	}
	logger.Debug("Rendering", "input", input, "engine", opts.Engine, "format", opts.Format, "mode", mode)

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Rendering "+input)
	spinner.Start()

	path, err := render.Run(ctx, c.newRenderer(opts, inProcess, noCache), input, render.RunOptions{
		Output: output,
		Format: opts.Format,
		Open:   open,
		Logger: logger,
	})
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			printWarning("Render cancelled")
			return err
		}
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	prog.done("Rendered " + path)
	printFile(path)
	return nil
}
