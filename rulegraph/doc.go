// Package rulegraph folds filtered association rules into a simple
// directed weighted graph of item relationships, ready for an external
// visualization layer.
//
// 🚀 What is a rule graph?
//
//	Each surviving rule contributes a directed edge from every antecedent
//	item to every consequent item (the full cross product): edge weight is
//	the caller-selected metric — support, confidence, or lift — and each
//	edge carries the rule's lift as a display annotation.
//
// ✨ Key features:
//   - stateless filter-and-fold: rebuild cheaply whenever the metric or
//     threshold changes, no stored mutable collection
//   - explicit edge-collision policy: when several rules map to one
//     ordered item pair, the max-weight edge wins (max lift breaks ties),
//     so the graph never depends on rule iteration order
//   - sorted Nodes()/Edges() accessors for byte-identical repeated output
//   - MetricBounds reports the observed metric range for threshold pickers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/arules/rulegraph"
//
//	lo, hi, _ := rulegraph.MetricBounds(rs, rulegraph.MetricConfidence)
//	g, err := rulegraph.Build(rs, rulegraph.Options{
//	  Metric:   rulegraph.MetricConfidence,
//	  MinValue: lo,
//	})
//	for _, e := range g.Edges() {
//	  fmt.Println(e.From, "→", e.To, e.Weight, e.Lift)
//	}
//
// An empty graph (no rule passed the threshold) is valid output, not an
// error; only an unknown metric fails.
//
// See examples in example_test.go.
package rulegraph
