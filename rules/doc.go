// Package rules expands mined frequent itemsets into statistically-scored
// antecedent→consequent association rules.
//
// 🚀 What is an association rule?
//
//	A rule {A} → {C} asserts that transactions containing the antecedent
//	set A tend to also contain the consequent set C. Each rule is scored:
//	  • support    — frequency of A ∪ C across all transactions
//	  • confidence — support(A ∪ C) / support(A), a conditional estimate
//	  • lift       — confidence / support(C); > 1 means positive association
//	  • leverage, conviction — secondary co-occurrence diagnostics
//
// ✨ Key features:
//   - every non-trivial bipartition of every frequent k-itemset is a
//     candidate (2^k − 2 per itemset); antecedent ∩ consequent = ∅ and
//     antecedent ∪ consequent = the parent itemset, always
//   - two-stage thresholding: Generate enforces only min confidence;
//     FilterByLift is the independent second filter
//   - SortByLift yields the lift-descending display order with a fully
//     deterministic tie-break
//   - WriteCSV / ReadCSV round-trip the five-column rule-table projection
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/arules/rules"
//
//	rs, err := rules.Generate(res, rules.Options{MinConfidence: 0.5})
//	rs, err = rules.FilterByLift(rs, 1.0)
//	rules.SortByLift(rs)
//
// An empty rule slice is valid output (nothing passed the thresholds);
// only invalid thresholds or an inconsistent mining index fail.
//
// See examples in example_test.go.
package rules
