package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

// ErrEngineNotFound is returned when the layout binary is not on PATH.
var ErrEngineNotFound = errors.New("graphviz engine not found")

// ExecRenderer runs a Graphviz layout binary as a subprocess.
type ExecRenderer struct {
	opts Options
}

// NewExecRenderer creates a subprocess renderer. Empty option fields take
// their defaults.
func NewExecRenderer(opts Options) *ExecRenderer {
	opts.SetDefaults()
	return &ExecRenderer{opts: opts}
}

// Options returns the effective options.
func (r *ExecRenderer) Options() Options { return r.opts }

// Args returns the command line for rendering input to output, without the
// engine name.
func (r *ExecRenderer) Args(input, output string) []string {
	return []string{
		"-T" + r.opts.Format,
		fmt.Sprintf("-Goverlap=%t", r.opts.Overlap),
		"-o", output,
		input,
		fmt.Sprintf("-Gsplines=%t", r.opts.Splines()),
	}
}

// Render runs the engine and waits for it to exit. A non-zero exit is returned
// as RENDER_FAILED with the engine's stderr attached.
func (r *ExecRenderer) Render(ctx context.Context, input, output string) error {
	path, err := exec.LookPath(r.opts.Engine)
	if err != nil {
		return errs.Wrap(errs.ErrCodeEngineNotFound, fmt.Errorf("%w: %s", ErrEngineNotFound, r.opts.Engine),
			"install Graphviz or use the in-process renderer")
	}

	cmd := exec.CommandContext(ctx, path, r.Args(input, output)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "no output"
		}
		return errs.Wrap(errs.ErrCodeRenderFailed, err, "%s: %s", r.opts.Engine, msg)
	}
	return nil
}

var _ Renderer = (*ExecRenderer)(nil)
