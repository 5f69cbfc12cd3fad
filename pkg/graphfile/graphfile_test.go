package graphfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dotbuilder/pkg/dot"
	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

const tomlGraph = `
name = "deps"
duplicates_equal = true

[[nodes]]
key = "app"
label = "Application"

[[nodes]]
key = "db"

[[nodes]]
key = "cache"

[[edges]]
from = "app"
to = "db"
color = "red"
penwidth = 2

[[edges]]
from = "app"
to = "cache"
non_directional = true
`

const yamlGraph = `
name: deps
duplicates_equal: true
nodes:
  - key: app
    label: Application
  - key: db
  - key: cache
edges:
  - {from: app, to: db, color: red, penwidth: 2}
  - {from: app, to: cache, non_directional: true}
`

const jsonGraph = `{
  "name": "deps",
  "duplicates_equal": true,
  "nodes": [{"key": "app", "label": "Application"}, {"key": "db"}, {"key": "cache"}],
  "edges": [
    {"from": "app", "to": "db", "color": "red", "penwidth": 2},
    {"from": "app", "to": "cache", "non_directional": true}
  ]
}`

func TestParseFormatsAgree(t *testing.T) {
	fromTOML, err := Parse([]byte(tomlGraph), FormatTOML)
	require.NoError(t, err)
	fromYAML, err := Parse([]byte(yamlGraph), FormatYAML)
	require.NoError(t, err)
	fromJSON, err := Parse([]byte(jsonGraph), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, fromTOML, fromYAML)
	assert.Equal(t, fromTOML, fromJSON)

	assert.Equal(t, "deps", fromTOML.Name)
	assert.True(t, fromTOML.DuplicatesEqual)
	require.Len(t, fromTOML.Edges, 2)
	require.NotNil(t, fromTOML.Edges[0].PenWidth)
	assert.Equal(t, 2, *fromTOML.Edges[0].PenWidth)
	require.NotNil(t, fromTOML.Edges[1].NonDirectional)
	assert.True(t, *fromTOML.Edges[1].NonDirectional)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"g.toml", FormatTOML, false},
		{"g.yaml", FormatYAML, false},
		{"G.YML", FormatYAML, false},
		{"dir/g.json", FormatJSON, false},
		{"g.gv", "", true},
		{"g", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.True(t, errs.Is(err, errs.ErrCodeInvalidFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		code   errs.Code
	}{
		{"bad toml", "name = ", FormatTOML, errs.ErrCodeInvalidFormat},
		{"bad json", "{", FormatJSON, errs.ErrCodeInvalidFormat},
		{"unknown json field", `{"edges": [], "colour": "red"}`, FormatJSON, errs.ErrCodeInvalidFormat},
		{"unknown format", "", Format("xml"), errs.ErrCodeInvalidFormat},
		{"empty key", "nodes:\n  - label: x\n", FormatYAML, errs.ErrCodeInvalidInput},
		{"duplicate key", "nodes:\n  - key: a\n  - key: a\n", FormatYAML, errs.ErrCodeInvalidInput},
		{"missing to", "edges:\n  - from: a\n", FormatYAML, errs.ErrCodeInvalidInput},
		{"undeclared edge key", "nodes:\n  - key: a\nedges:\n  - {from: a, to: ghost}\n", FormatYAML, errs.ErrCodeInvalidInput},
		{"unknown toml field", "[[edges]]\nfrom = \"a\"\nto = \"b\"\npenwidht = 3\n", FormatTOML, errs.ErrCodeInvalidFormat},
		{"unknown yaml field", "edges:\n  - {from: a, to: b, penwidht: 3}\n", FormatYAML, errs.ErrCodeInvalidFormat},
		{"negative penwidth", "edges:\n  - {from: a, to: b, penwidth: -1}\n", FormatYAML, errs.ErrCodeInvalidInput},
		{"bad color", "edges:\n  - {from: a, to: b, color: \"red\\\" x=\\\"y\"}\n", FormatYAML, errs.ErrCodeInvalidInput},
		{"control char label", "nodes:\n  - {key: a, label: \"a\\x01\"}\n", FormatYAML, errs.ErrCodeInvalidLabel},
		{"bad name", "name: \"dir/\"\n", FormatYAML, errs.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Equal(t, tt.code, errs.GetCode(err), "err: %v", err)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		f, err := Parse(nil, format)
		require.NoError(t, err, format)
		assert.Empty(t, f.Edges, format)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlGraph), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "deps", f.Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errs.Is(err, errs.ErrCodeIO))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"edges": [{"from": "a"}]}`), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
	assert.True(t, errs.Is(err, errs.ErrCodeInvalidInput))
}

func TestOptions(t *testing.T) {
	f := &File{Name: "deps", NonDirectional: true, DuplicatesEqual: true}
	opts := f.Options("graphs")
	assert.Equal(t, filepath.Join("graphs", "deps"), opts.FileName)
	assert.True(t, opts.NonDirectional)
	assert.True(t, opts.DuplicatesEqual)

	opts = (&File{}).Options("")
	assert.Equal(t, dot.DefaultFileName, opts.FileName)

	b := f.Builder("graphs", nil)
	assert.Equal(t, filepath.Join("graphs", "deps")+dot.FileSuffix, b.Path())
	assert.True(t, b.NonDirectional())
	assert.True(t, b.DuplicatesEqual())
}

func TestApply(t *testing.T) {
	f, err := Parse([]byte(tomlGraph), FormatTOML)
	require.NoError(t, err)

	b := dot.New(f.Options(""))
	nodes := f.Apply(b)

	require.Len(t, nodes, 3)
	assert.Equal(t, 0, nodes["app"].ID())
	assert.Equal(t, "Application", nodes["app"].Label())
	assert.Equal(t, 1, nodes["db"].ID())
	assert.Equal(t, "db", nodes["db"].Label())
	assert.Equal(t, 2, nodes["cache"].ID())

	assert.True(t, b.LinkExists(nodes["app"], nodes["db"]))
	assert.False(t, b.NonDirectional(), "per-edge override must be restored")

	var buf bytes.Buffer
	_, err = b.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "digraph G {\n"+
		"0 -> 1 [color=\"red\", penwidth=2]\n"+
		"0 -> 2 [dir=none]\n"+
		"0 [label = \"Application\"]\n"+
		"1 [label = \"db\"]\n"+
		"2 [label = \"cache\"]\n"+
		"}\n", buf.String())
}

func TestApplyImplicitNodesShareKeys(t *testing.T) {
	f, err := Parse([]byte("edges:\n  - {from: a, to: b}\n  - {from: b, to: a}\n  - {from: a, to: c}\n"), FormatYAML)
	require.NoError(t, err)

	b := dot.New(f.Options(""))
	nodes := f.Apply(b)
	assert.Len(t, nodes, 3)
	assert.Equal(t, 3, b.NodeCount())
	assert.Equal(t, 3, b.EdgeCount())
	assert.True(t, b.LinkExists(nodes["b"], nodes["a"]))
}

func TestApplyDuplicateLabelsWithDedup(t *testing.T) {
	yamlData := "duplicates_equal: true\nnodes:\n  - {key: a1, label: same}\n  - {key: a2, label: same}\nedges:\n  - {from: a1, to: a2}\n"
	f, err := Parse([]byte(yamlData), FormatYAML)
	require.NoError(t, err)

	b := dot.New(f.Options(""))
	nodes := f.Apply(b)
	assert.Same(t, nodes["a1"], nodes["a2"])
	assert.Equal(t, 1, b.NodeCount())
}

func TestBundledExamples(t *testing.T) {
	fromTOML, err := Load(filepath.Join("..", "..", "examples", "services.toml"))
	require.NoError(t, err)
	fromYAML, err := Load(filepath.Join("..", "..", "examples", "services.yaml"))
	require.NoError(t, err)
	assert.Equal(t, fromTOML, fromYAML)

	b := dot.New(fromTOML.Options(""))
	nodes := fromTOML.Apply(b)
	assert.Equal(t, 5, b.NodeCount())
	assert.Equal(t, 5, b.EdgeCount())
	assert.True(t, b.LinkExists(nodes["auth"], nodes["db"]))
	assert.False(t, b.LinkExists(nodes["db"], nodes["auth"]))
}
