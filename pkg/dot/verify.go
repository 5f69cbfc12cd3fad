package dot

import (
	"os"

	"github.com/awalterschulze/gographviz"

	errs "github.com/matzehuels/dotbuilder/pkg/errors"
)

// Summary describes a parsed DOT description.
type Summary struct {
	Name     string
	Directed bool
	Nodes    int
	Edges    int
	Labels   map[string]string // node name -> unquoted label, for nodes with a label
}

// Verify parses data as DOT and summarizes it. It is used to check that
// generated files are accepted by a standard DOT parser before rendering.
func Verify(data []byte) (Summary, error) {
	g, err := gographviz.Read(data)
	if err != nil {
		return Summary{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse DOT")
	}

	s := Summary{
		Name:     g.Name,
		Directed: g.Directed,
		Nodes:    len(g.Nodes.Nodes),
		Edges:    len(g.Edges.Edges),
		Labels:   make(map[string]string),
	}
	for _, n := range g.Nodes.Nodes {
		label, ok := n.Attrs[gographviz.Label]
		if !ok {
			continue
		}
		s.Labels[n.Name] = unquote(label)
	}
	return s, nil
}

// VerifyFile reads path and calls [Verify].
func VerifyFile(path string) (Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Summary{}, errs.Wrap(errs.ErrCodeIO, err, "read %s", path)
	}
	return Verify(data)
}
