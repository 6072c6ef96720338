package rulegraph

import (
	"github.com/katalvlaran/arules/core"
	"github.com/katalvlaran/arules/rules"
)

// Build folds filtered association rules into a simple directed weighted
// graph of item relationships.
//
// Algorithm Outline:
//  1. Drop rules whose selected-metric value is below opts.MinValue
//     (inclusive ≥ keeps border rules).
//  2. For each surviving rule, add a directed edge for every
//     (antecedent item, consequent item) pair — the full cross product,
//     since antecedents and consequents may hold multiple items — with
//     weight = the rule's selected-metric value and the rule's lift attached.
//  3. Edge collision (several rules mapping to one ordered pair): keep the
//     edge with the highest weight; on equal weight keep the highest lift.
//     The policy makes the graph independent of rule order.
//
// Nodes exist only for items on at least one surviving edge. An empty
// rule slice (or one fully filtered away) yields an empty graph, not an error.
//
// Errors:
//   - ErrUnknownMetric — opts.Metric outside {support, confidence, lift}.
//
// Complexity: O(rules · |antecedent| · |consequent|). Memory: O(V + E).
func Build(rs []rules.Rule, opts Options) (*Graph, error) {
	if err := validMetric(opts.Metric); err != nil {
		return nil, err
	}

	g := newGraph()
	for _, r := range rs {
		weight := metricValue(r, opts.Metric)
		if weight < opts.MinValue {
			continue
		}
		for _, from := range r.Antecedent {
			for _, to := range r.Consequent {
				g.addEdge(from, to, weight, r.Lift)
			}
		}
	}

	return g, nil
}

// MetricBounds reports the observed minimum and maximum of the selected
// metric across rs — the valid MinValue range for Build. An empty slice
// yields (0, 0, nil).
func MetricBounds(rs []rules.Rule, metric Metric) (min, max float64, err error) {
	if err = validMetric(metric); err != nil {
		return 0, 0, err
	}
	if len(rs) == 0 {
		return 0, 0, nil
	}
	min = metricValue(rs[0], metric)
	max = min
	for _, r := range rs[1:] {
		v := metricValue(r, metric)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max, nil
}

// validMetric rejects metrics outside the supported set.
func validMetric(m Metric) error {
	switch m {
	case MetricSupport, MetricConfidence, MetricLift:
		return nil
	default:
		return ErrUnknownMetric
	}
}

// metricValue extracts the selected metric from a rule. Callers validate
// the metric first.
func metricValue(r rules.Rule, m Metric) float64 {
	switch m {
	case MetricSupport:
		return r.Support
	case MetricConfidence:
		return r.Confidence
	default:
		return r.Lift
	}
}

// addEdge inserts or upgrades the directed edge from→to under the
// max-weight (then max-lift) collision policy.
func (g *Graph) addEdge(from, to core.Item, weight, lift float64) {
	key := [2]core.Item{from, to}
	if cur, ok := g.edges[key]; ok {
		if cur.Weight > weight || (cur.Weight == weight && cur.Lift >= lift) {
			return
		}
	}
	g.edges[key] = Edge{From: from, To: to, Weight: weight, Lift: lift}
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}
}
