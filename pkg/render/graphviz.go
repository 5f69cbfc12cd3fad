package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotbuilder/pkg/cache"
	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

// inProcessFormats are the encoders available in the WebAssembly build.
var inProcessFormats = map[string]bool{"png": true, "svg": true, "jpg": true}

// GraphvizRenderer renders in-process with go-graphviz.
type GraphvizRenderer struct {
	opts   Options
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

// NewGraphvizRenderer creates an in-process renderer. Empty option fields take
// their defaults. Rendered images are not cached until [GraphvizRenderer.WithCache].
func NewGraphvizRenderer(opts Options) *GraphvizRenderer {
	opts.SetDefaults()
	return &GraphvizRenderer{
		opts:   opts,
		cache:  cache.NewNullCache(),
		logger: log.New(io.Discard),
	}
}

// WithCache reuses images for identical DOT input and options. Entries expire
// after ttl; zero keeps them until cleared. logger (nil discards) reports
// cache hits and cache write failures.
func (r *GraphvizRenderer) WithCache(c cache.Cache, ttl time.Duration, logger *log.Logger) *GraphvizRenderer {
	r.cache = c
	r.ttl = ttl
	if logger != nil {
		r.logger = logger
	}
	return r
}

// Options returns the effective options.
func (r *GraphvizRenderer) Options() Options { return r.opts }

// Render reads the DOT file at input and writes the image to output.
func (r *GraphvizRenderer) Render(ctx context.Context, input, output string) error {
	dot, err := os.ReadFile(input)
	if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "read %s", input)
	}

	key := cache.RenderKey(dot, r.opts.Engine, r.opts.Format, r.opts.Overlap, r.opts.Splines())
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Debug("render cache read failed", "err", err)
	}
	if hit {
		r.logger.Debug("render cache hit", "input", input)
	} else {
		data, err = RenderBytes(ctx, dot, r.opts)
		if err != nil {
			return err
		}
		if err := r.cache.Set(ctx, key, data, r.ttl); err != nil {
			r.logger.Warn("could not cache rendered image", "err", err)
		}
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "write %s", output)
	}
	return nil
}

// RenderBytes lays out dot with the engine in opts and returns the encoded image.
// Overlap and spline settings are applied as graph attributes, matching the
// -G flags passed by [ExecRenderer].
func RenderBytes(ctx context.Context, dot []byte, opts Options) ([]byte, error) {
	opts.SetDefaults()
	if !inProcessFormats[opts.Format] {
		return nil, errs.New(errs.ErrCodeUnsupported, "format %s is not available in-process (use png, svg or jpg)", opts.Format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(graphviz.Layout(opts.Engine))

	g, err := graphviz.ParseBytes(withGraphAttrs(dot, opts))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.Format(opts.Format), &buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeRenderFailed, err, "render %s", opts.Format)
	}
	return buf.Bytes(), nil
}

// withGraphAttrs inserts overlap and splines statements right after the opening
// brace of the graph. Input without a brace is returned unchanged and left for
// the parser to reject.
func withGraphAttrs(dot []byte, opts Options) []byte {
	i := bytes.IndexByte(dot, '{')
	if i < 0 {
		return dot
	}
	attrs := fmt.Sprintf("\noverlap=%t;\nsplines=%t;", opts.Overlap, opts.Splines())

	out := make([]byte, 0, len(dot)+len(attrs))
	out = append(out, dot[:i+1]...)
	out = append(out, attrs...)
	out = append(out, dot[i+1:]...)
	return out
}

var _ Renderer = (*GraphvizRenderer)(nil)
