package render

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

const (
	// DefaultEngine is the Graphviz layout engine used when none is set.
	DefaultEngine = "sfdp"

	// DefaultFormat is the output format used when none is set.
	DefaultFormat = "png"

	// DefaultOutput is the image written when no output name is given.
	DefaultOutput = "output.png"
)

// Renderer lays out the DOT file at input and writes the image to output.
type Renderer interface {
	Render(ctx context.Context, input, output string) error
}

// Options controls how Graphviz lays out and encodes a graph.
type Options struct {
	Engine        string // layout engine: sfdp, dot, neato, fdp, circo, twopi, osage, patchwork
	Format        string // output format: png, svg, pdf, ...
	Overlap       bool   // keep node overlaps; false asks Graphviz to remove them
	StraightEdges bool   // draw edges as straight lines; false draws splines
}

// Splines reports whether edges are drawn as curves.
func (o Options) Splines() bool { return !o.StraightEdges }

// DefaultOptions returns sfdp/png with overlap removal and curved edges.
// It equals Options{} after [Options.SetDefaults].
func DefaultOptions() Options {
	return Options{
		Engine: DefaultEngine,
		Format: DefaultFormat,
	}
}

// SetDefaults fills in an empty engine or format.
func (o *Options) SetDefaults() {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
}

// Validate checks the engine and format names.
func (o Options) Validate() error {
	if !validEngines[o.Engine] {
		return errs.New(errs.ErrCodeInvalidInput, "invalid engine: %s (must be one of %s)", o.Engine, strings.Join(engineNames, ", "))
	}
	if !validFormats[o.Format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", o.Format, strings.Join(formatNames, ", "))
	}
	return nil
}

var (
	engineNames = []string{"sfdp", "dot", "neato", "fdp", "circo", "twopi", "osage", "patchwork"}
	formatNames = []string{"png", "svg", "pdf", "jpg", "gif", "ps"}

	validEngines = toSet(engineNames)
	validFormats = toSet(formatNames)
)

func toSet(names []string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// OutputName returns base with the format as extension.
// A base that already carries a known format extension is replaced, so
// OutputName("graph.svg", "png") is "graph.png". An empty base yields
// "output.<format>".
func OutputName(base, format string) string {
	if format == "" {
		format = DefaultFormat
	}
	if base == "" {
		base = strings.TrimSuffix(DefaultOutput, filepath.Ext(DefaultOutput))
	}
	if ext := filepath.Ext(base); validFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "." + format
}

// RunOptions configures [Run].
type RunOptions struct {
	// Output is the image path. Empty derives it from the input name.
	Output string

	// Format is used to derive Output when it is empty.
	Format string

	// Open displays the image after rendering.
	Open bool

	// Opener used when Open is set. Nil uses [NewOpener].
	Opener *Opener

	// Logger receives progress and open failures. Nil discards them.
	Logger *log.Logger
}

// Run renders input with r and optionally opens the result.
// It returns the path of the rendered image. Render failures are returned;
// open failures are only logged.
func Run(ctx context.Context, r Renderer, input string, opts RunOptions) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	output := opts.Output
	if output == "" {
		output = OutputName(strings.TrimSuffix(input, filepath.Ext(input)), opts.Format)
	}

	logger.Debug("rendering", "input", input, "output", output)
	if err := r.Render(ctx, input, output); err != nil {
		return "", err
	}

	if opts.Open {
		opener := opts.Opener
		if opener == nil {
			opener = NewOpener()
		}
		if err := opener.Open(ctx, output); err != nil {
			logger.Warn("could not open rendered image", "path", output, "err", err)
		}
	}
	return output, nil
}
