// Package graphfile reads declarative graph descriptions and replays them onto
// a [dot.Builder].
//
// A graph file names the builder settings, an optional list of nodes and a list
// of edges. Edges refer to nodes by key. When nodes are declared, an edge to an
// undeclared key is rejected; a file with edges only creates one node per key,
// labeled with the key itself.
//
// # Formats
//
// The format is chosen by file extension: .toml, .yaml/.yml or .json.
//
//	name = "deps"
//	non_directional = false
//	duplicates_equal = true
//
//	[[nodes]]
//	key = "app"
//	label = "Application"
//
//	[[edges]]
//	from = "app"
//	to = "db"
//	color = "red"
//	penwidth = 2
//
// The same graph in YAML:
//
//	name: deps
//	duplicates_equal: true
//	nodes:
//	  - key: app
//	    label: Application
//	edges:
//	  - {from: app, to: db, color: red, penwidth: 2}
//
// Edges may override the graph's direction setting with non_directional; the
// override applies to that edge only.
package graphfile
