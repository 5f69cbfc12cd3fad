package graphfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/dotbuilder/pkg/dot"
	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

// Format identifies a graph file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// File is a declarative graph description.
type File struct {
	Name            string     `toml:"name" yaml:"name" json:"name,omitempty"`
	NonDirectional  bool       `toml:"non_directional" yaml:"non_directional" json:"non_directional,omitempty"`
	DuplicatesEqual bool       `toml:"duplicates_equal" yaml:"duplicates_equal" json:"duplicates_equal,omitempty"`
	Nodes           []NodeDecl `toml:"nodes" yaml:"nodes" json:"nodes,omitempty"`
	Edges           []EdgeDecl `toml:"edges" yaml:"edges" json:"edges"`
}

// NodeDecl declares a node. Key is how edges refer to it; Label defaults to Key.
type NodeDecl struct {
	Key   string `toml:"key" yaml:"key" json:"key"`
	Label string `toml:"label" yaml:"label" json:"label,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the key.
func (n NodeDecl) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.Key
}

// EdgeDecl declares an edge between two node keys.
type EdgeDecl struct {
	From           string `toml:"from" yaml:"from" json:"from"`
	To             string `toml:"to" yaml:"to" json:"to"`
	Color          string `toml:"color" yaml:"color" json:"color,omitempty"`
	PenWidth       *int   `toml:"penwidth" yaml:"penwidth" json:"penwidth,omitempty"`
	NonDirectional *bool  `toml:"non_directional" yaml:"non_directional" json:"non_directional,omitempty"`
}

// options converts the declared style to builder options.
func (e EdgeDecl) options() []dot.EdgeOption {
	var opts []dot.EdgeOption
	if e.Color != "" {
		opts = append(opts, dot.WithColor(e.Color))
	}
	if e.PenWidth != nil {
		opts = append(opts, dot.WithPenWidth(*e.PenWidth))
	}
	return opts
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported graph file %s (use .toml, .yaml or .json)", filepath.Base(path))
	}
}

// Load reads and validates the graph file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeIO, err, "read %s", path)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return f, nil
}

// Parse decodes and validates data in the given format. Keys the format does
// not know are rejected in every format.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	var err error

	switch format {
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &f)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, errs.New(errs.ErrCodeInvalidFormat, "decode toml: unknown key %q", undecoded[0].String())
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&f); errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown graph file format %q", format)
	}
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "decode %s", format)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks keys, labels and edge styles. When nodes are declared, every
// edge must refer to a declared key.
func (f *File) Validate() error {
	if f.Name != "" {
		if err := errs.ValidateOutputName(f.Name); err != nil {
			return err
		}
	}

	keys := make(map[string]bool, len(f.Nodes))
	for i, n := range f.Nodes {
		if n.Key == "" {
			return errs.New(errs.ErrCodeInvalidInput, "nodes[%d]: key cannot be empty", i)
		}
		if keys[n.Key] {
			return errs.New(errs.ErrCodeInvalidInput, "nodes[%d]: duplicate key %q", i, n.Key)
		}
		keys[n.Key] = true
		if err := errs.ValidateLabel(n.DisplayLabel()); err != nil {
			return fmt.Errorf("nodes[%d]: %w", i, err)
		}
	}

	for i, e := range f.Edges {
		if e.From == "" || e.To == "" {
			return errs.New(errs.ErrCodeInvalidInput, "edges[%d]: from and to are required", i)
		}
		for _, key := range []string{e.From, e.To} {
			if err := errs.ValidateLabel(key); err != nil {
				return fmt.Errorf("edges[%d]: %w", i, err)
			}
			if len(f.Nodes) > 0 && !keys[key] {
				return errs.New(errs.ErrCodeInvalidInput, "edges[%d]: unknown node %q", i, key)
			}
		}
		if e.Color != "" {
			if err := errs.ValidateColor(e.Color); err != nil {
				return fmt.Errorf("edges[%d]: %w", i, err)
			}
		}
		if e.PenWidth != nil {
			if err := errs.ValidatePenWidth(*e.PenWidth); err != nil {
				return fmt.Errorf("edges[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// Options returns builder options for the file. dir, if set, is joined with the
// file's name to form the output name.
func (f *File) Options(dir string) dot.Options {
	name := f.Name
	if name == "" {
		name = dot.DefaultFileName
	}
	if dir != "" && !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	return dot.Options{
		FileName:        name,
		NonDirectional:  f.NonDirectional,
		DuplicatesEqual: f.DuplicatesEqual,
	}
}

// Builder returns a new builder configured from the file, logging to logger
// (nil discards).
func (f *File) Builder(dir string, logger *log.Logger) *dot.Builder {
	opts := f.Options(dir)
	opts.Logger = logger
	return dot.New(opts)
}

// Apply creates the declared nodes in order, then links the edges in order.
// A file without declared nodes creates one per edge key on first use.
// It returns the node for every key that was used.
func (f *File) Apply(b *dot.Builder) map[string]*dot.Node {
	nodes := make(map[string]*dot.Node, len(f.Nodes))
	for _, n := range f.Nodes {
		nodes[n.Key] = b.NewNode(n.DisplayLabel())
	}

	resolve := func(key string) *dot.Node {
		if n, ok := nodes[key]; ok {
			return n
		}
		n := b.NewNode(key)
		nodes[key] = n
		return n
	}

	for _, e := range f.Edges {
		from, to := resolve(e.From), resolve(e.To)
		if e.NonDirectional == nil {
			b.Link(from, to, e.options()...)
			continue
		}
		prev := b.NonDirectional()
		b.SetNonDirectional(*e.NonDirectional)
		b.Link(from, to, e.options()...)
		b.SetNonDirectional(prev)
	}
	return nodes
}
