// Package pkg provides the libraries behind dotbuilder.
//
// # Overview
//
// Dotbuilder assembles Graphviz DOT descriptions in memory and hands them to a
// Graphviz layout engine. The pkg directory is organized as follows:
//
//  1. [dot] - The graph builder: nodes, edges, serialization, finalize, verify
//  2. [graphfile] - Declarative graph files (TOML, YAML, JSON) replayed onto a builder
//  3. [render] - Renderers (engine binary or embedded Graphviz) and the image opener
//  4. [cache] - Render cache for in-process rendering
//  5. [config] - Tool configuration
//  6. [errors] - Structured error codes and input validation
//
// # Data Flow
//
//	graph file / API calls
//	         ↓
//	    [dot] Builder (NewNode, Link)
//	         ↓
//	    <name>.gv (Finalize)
//	         ↓
//	    [render] Renderer (sfdp -Tpng ...)
//	         ↓
//	    output.png → Opener
//
// # Quick Start
//
//	b := dot.New(dot.Options{FileName: "deps"})
//	app := b.NewNode("app")
//	db := b.NewNode("db")
//	b.Link(app, db, dot.WithColor("red"))
//	if err := b.Finalize(); err != nil {
//	    return err
//	}
//
//	out, err := render.Run(ctx, render.NewExecRenderer(render.DefaultOptions()), b.Path(), render.RunOptions{Open: true})
//
// # Common Workflows
//
// Build from a graph file:
//
//	f, _ := graphfile.Load("deps.toml")
//	b := f.Builder("graphs", logger)
//	f.Apply(b)
//	_ = b.Finalize()
//
// Check emitted text:
//
//	summary, err := dot.VerifyFile("graphs/deps.gv")
//	fmt.Println(summary.Nodes, summary.Edges)
//
// Render in-process without a Graphviz installation:
//
//	svg, err := render.RenderBytes(ctx, data, render.Options{Engine: "dot", Format: "svg"})
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/dot/...      # Specific package
//	go test -run Example ./... # Examples only
//
// [dot]: https://pkg.go.dev/github.com/matzehuels/dotbuilder/pkg/dot
// [graphfile]: https://pkg.go.dev/github.com/matzehuels/dotbuilder/pkg/graphfile
// [render]: https://pkg.go.dev/github.com/matzehuels/dotbuilder/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/dotbuilder/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/dotbuilder/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/dotbuilder/pkg/errors
package pkg
