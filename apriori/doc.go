// Package apriori mines frequent itemsets from an immutable transaction
// Store using the classic level-wise Apriori search.
//
// 🚀 What is Apriori?
//
//	Apriori discovers every set of items whose co-occurrence frequency
//	(support) meets a minimum threshold. It exploits antimonotonicity —
//	support never increases as an itemset grows — to prune the search:
//	once a set is infrequent, no superset of it is ever explored. It is
//	the foundation of:
//	  • Market-basket analysis & product recommendation
//	  • Association-rule generation (see package rules)
//	  • Co-occurrence graphs of related entities (see package rulegraph)
//
// ✨ Key features:
//   - level-wise join + prune candidate generation (no support is ever
//     computed for a provably infrequent itemset)
//   - inclusive ≥ threshold comparison (border itemsets are kept)
//   - optional parallel support counting via WithWorkers, with the
//     join/prune step as the per-level synchronization barrier
//   - deterministic (size, key)-ordered output, identical at any worker count
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/arules/apriori"
//
//	res, err := apriori.Mine(store, apriori.DefaultOptions(
//	  apriori.WithMinSupport(0.5),
//	  apriori.WithWorkers(4),
//	))
//
// An empty result (no itemset reaches MinSupport) is valid output, not
// an error; only a nil store or an out-of-range threshold fails.
//
// Performance:
//
//   - Time:   dominated by support counting, O(k · N/64) per candidate
//   - Memory: O(|frequent itemsets|)
//
// See examples in example_test.go.
package apriori
