// Package render writes graphs and search results as Graphviz DOT.
//
// Vertices are filled light blue; the vertices and edges of the highlighted
// path are drawn red, blocked roads dashed. With coordinates attached the
// output carries pinned positions for the neato layout engine.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/wayfarer/core"
	"github.com/katalvlaran/wayfarer/geo"
)

// Source is the graph surface DOT needs.
type Source interface {
	core.Reader
	Edges() []core.Edge
	Directed() bool
}

// Option configures DOT.
type Option func(*options)

type options struct {
	title  string
	coords geo.Coordinates
}

// WithTitle names the graph.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithCoordinates pins vertices at their (lon, lat) position.
func WithCoordinates(c geo.Coordinates) Option {
	return func(o *options) { o.coords = c }
}

// DOT writes g to w with path highlighted. A nil path highlights nothing;
// a non-empty path must be walkable in g (core.ValidatePath).
func DOT(w io.Writer, g Source, path core.Path, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if path.Found() {
		if err := core.ValidatePath(g, path); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}

	edges := g.Edges()
	digraph := g.Directed()
	for _, e := range edges {
		digraph = digraph || e.Directed
	}

	onPath := make(map[string]bool, len(path))
	steps := make(map[[2]string]bool, len(path))
	for i, v := range path {
		onPath[v] = true
		if i > 0 {
			steps[[2]string{path[i-1], v}] = true
		}
	}

	bw := bufio.NewWriter(w)
	kind, arrow := "graph", "--"
	if digraph {
		kind, arrow = "digraph", "->"
	}
	title := o.title
	if title == "" {
		title = "G"
	}
	fmt.Fprintf(bw, "%s %s {\n", kind, strconv.Quote(title))
	fmt.Fprintln(bw, "    node [style=filled, fillcolor=lightblue];")

	for _, id := range g.Vertices() {
		var attrs []string
		if onPath[id] {
			attrs = append(attrs, "fillcolor=red")
		}
		if p, ok := o.coords[id]; ok {
			attrs = append(attrs, fmt.Sprintf("pos=%q", fmt.Sprintf("%g,%g!", p.Lon(), p.Lat())))
		}
		fmt.Fprintf(bw, "    %s%s;\n", strconv.Quote(id), attrList(attrs))
	}

	for _, e := range edges {
		attrs := []string{"label=" + strconv.Quote(strconv.FormatFloat(e.Weight, 'g', -1, 64))}
		highlighted := steps[[2]string{e.From, e.To}] || (!e.Directed && steps[[2]string{e.To, e.From}])
		if highlighted {
			attrs = append(attrs, "color=red", "penwidth=2")
		}
		if e.Blocked {
			attrs = append(attrs, "style=dashed")
		}
		if digraph && !e.Directed {
			attrs = append(attrs, "dir=none")
		}
		fmt.Fprintf(bw, "    %s %s %s%s;\n", strconv.Quote(e.From), arrow, strconv.Quote(e.To), attrList(attrs))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func attrList(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	s := " ["
	for i, a := range attrs {
		if i > 0 {
			s += ", "
		}
		s += a
	}

	return s + "]"
}
