// Package rulegraph defines the Metric selector, build options, sentinel
// errors, and the directed weighted Graph produced from association rules.
package rulegraph

import (
	"errors"
	"sort"

	"github.com/katalvlaran/arules/core"
)

// ErrUnknownMetric indicates a metric outside {support, confidence, lift}.
var ErrUnknownMetric = errors.New("rulegraph: unknown edge-weight metric")

// Metric selects which rule metric becomes the edge weight.
type Metric string

const (
	// MetricSupport weighs edges by rule support.
	MetricSupport Metric = "support"

	// MetricConfidence weighs edges by rule confidence.
	MetricConfidence Metric = "confidence"

	// MetricLift weighs edges by rule lift.
	MetricLift Metric = "lift"
)

// Options configures graph construction.
//
// Fields:
//   - Metric   — the rule metric used both for the MinValue filter and as
//     the edge weight.
//   - MinValue — rules whose selected-metric value is below this are
//     dropped before any edge is added (inclusive ≥ comparison).
//
// Example:
//
//	g, err := rulegraph.Build(rs, rulegraph.Options{
//	  Metric:   rulegraph.MetricConfidence,
//	  MinValue: 0.5,
//	})
type Options struct {
	// Metric selects the edge-weight metric.
	Metric Metric

	// MinValue is the display threshold applied to the selected metric.
	MinValue float64
}

// Edge is one directed item relationship: antecedent item → consequent
// item, weighted by the selected metric, annotated with the rule's lift.
type Edge struct {
	// From is the antecedent-side item.
	From core.Item

	// To is the consequent-side item.
	To core.Item

	// Weight is the selected-metric value of the winning rule.
	Weight float64

	// Lift is the winning rule's lift, attached for display.
	Lift float64
}

// Graph is a simple directed weighted graph over Items: at most one edge
// per ordered (From, To) pair, nodes only for items touched by an edge.
//
// Edge collisions resolve to the maximum weight (maximum lift on equal
// weight), so the Graph is independent of rule iteration order.
// Graph is immutable once built; accessors iterate in sorted order.
type Graph struct {
	nodes map[core.Item]struct{}
	edges map[[2]core.Item]Edge
}

// newGraph allocates an empty Graph.
func newGraph() *Graph {
	return &Graph{
		nodes: make(map[core.Item]struct{}),
		edges: make(map[[2]core.Item]Edge),
	}
}

// NodeCount reports the number of items on at least one edge.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount reports the number of distinct ordered item pairs.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to core.Item) bool {
	_, ok := g.edges[[2]core.Item{from, to}]

	return ok
}

// Edge returns the directed edge from→to and whether it exists.
func (g *Graph) Edge(from, to core.Item) (Edge, bool) {
	e, ok := g.edges[[2]core.Item{from, to}]

	return e, ok
}

// Nodes returns all items on at least one edge, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []core.Item {
	out := make([]core.Item, 0, len(g.nodes))
	for it := range g.nodes {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns all edges sorted by (From, To), so repeated builds over
// identical rules yield byte-identical edge lists.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
