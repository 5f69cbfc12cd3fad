// Package render turns a written DOT file into an image.
//
// Layout is delegated entirely to Graphviz. Two [Renderer] implementations are
// provided:
//
//   - [ExecRenderer] runs a Graphviz layout binary (sfdp by default) as a
//     subprocess, equivalent to
//     sfdp -Tpng -Goverlap=false -o output.png out.gv -Gsplines=true
//   - [GraphvizRenderer] renders in-process through the WebAssembly build of
//     Graphviz in github.com/goccy/go-graphviz, so no binary needs to be installed.
//
// Both honor the same [Options]: layout engine, output format, overlap removal and
// curved edges.
//
// [Opener] asks the host to display the rendered image with its default viewer.
// It is best-effort: [Run] logs open failures instead of returning them.
package render
