package dot

import (
	"fmt"
	"strings"
)

// Style holds the optional attributes of an edge statement.
type Style struct {
	NonDirectional bool   // rendered as dir=none
	Color          string // rendered as color="..." when non-empty
	PenWidth       int    // rendered as penwidth=N when HasPenWidth is set
	HasPenWidth    bool
}

// EdgeOption configures the style of a single [Builder.Link] call.
type EdgeOption func(*Style)

// WithColor sets the edge color. The value is written double-quoted.
func WithColor(color string) EdgeOption {
	return func(s *Style) { s.Color = color }
}

// WithPenWidth sets the edge width in points.
func WithPenWidth(width int) EdgeOption {
	return func(s *Style) {
		s.PenWidth = width
		s.HasPenWidth = true
	}
}

// Edge is one recorded Link call.
type Edge struct {
	From  *Node
	To    *Node
	Style Style
}

// attrs returns the attribute list in output order: dir, color, penwidth.
func (s Style) attrs() []string {
	var attrs []string
	if s.NonDirectional {
		attrs = append(attrs, "dir=none")
	}
	if s.Color != "" {
		attrs = append(attrs, "color="+quote(s.Color))
	}
	if s.HasPenWidth {
		attrs = append(attrs, fmt.Sprintf("penwidth=%d", s.PenWidth))
	}
	return attrs
}

// Statement returns the DOT edge statement for e, without the line terminator.
func (e Edge) Statement() string {
	stmt := fmt.Sprintf("%d -> %d", e.From.id, e.To.id)
	if attrs := e.Style.attrs(); len(attrs) > 0 {
		stmt += " [" + strings.Join(attrs, ", ") + "]"
	}
	return stmt
}

// Link records an edge from from to to and writes its statement.
//
// Both endpoints are marked linked. The edge is non-directional if the builder
// is in non-directional mode at the time of the call. Options add color and pen
// width:
//
//	b.Link(a, c)                                   // 0 -> 2
//	b.Link(a, c, dot.WithColor("red"))             // 0 -> 2 [color="red"]
//	b.Link(a, c, dot.WithPenWidth(3))              // 0 -> 2 [penwidth=3]
//	b.Link(a, c, dot.WithColor("red"), dot.WithPenWidth(3))
//
// Link is a no-op when either endpoint is nil or the builder is finalized.
func (b *Builder) Link(from, to *Node, opts ...EdgeOption) {
	if from == nil || to == nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		b.logger.Warn("link after finalize ignored", "from", from.id, "to", to.id)
		return
	}

	style := Style{NonDirectional: b.nonDirectional}
	for _, opt := range opts {
		opt(&style)
	}

	from.linked.Store(true)
	to.linked.Store(true)

	e := Edge{From: from, To: to, Style: style}
	b.buf.WriteString(e.Statement())
	b.buf.WriteString(newline)
	b.edges = append(b.edges, e)
	b.logger.Debug("edge linked", "from", from.id, "to", to.id)
}

// LinkExists reports whether a Link(a, b) call was recorded. Only the exact
// ordered pair matches, regardless of directedness. A nil endpoint yields false.
func (b *Builder) LinkExists(from, to *Node) bool {
	if from == nil || to == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range b.edges {
		if e.From.Equal(from) && e.To.Equal(to) {
			return true
		}
	}
	return false
}

// Edges returns the edge log in creation order.
func (b *Builder) Edges() []Edge {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Edge, len(b.edges))
	copy(out, b.edges)
	return out
}

// EdgeCount returns the number of recorded edges.
func (b *Builder) EdgeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.edges)
}
