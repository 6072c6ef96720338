// Package arules mines frequent itemsets from transactional data and
// derives statistically-scored association rules, exposed as a weighted
// directed graph of item relationships.
//
// 🚀 What is arules?
//
//	A deterministic, pure-Go market-basket analysis toolkit that brings together:
//		• Core primitives: one-hot transaction store with bitset support counting
//		• Mining: level-wise Apriori search with antimonotone pruning
//		• Rules: antecedent→consequent scoring (support/confidence/lift,
//		  plus leverage & conviction) with two-stage threshold filtering
//		• Graphs: fold filtered rules into a simple directed weighted graph
//		  with an explicit max-weight edge-collision policy
//
// ✨ Why choose arules?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – identical inputs and thresholds yield byte-identical
//     rule tables and edge lists, at any worker count
//   - Pure Go – no cgo, no hidden deps
//   - Composable – every stage is a pure function over the previous stage's output
//
// Under the hood, everything is organized under four subpackages:
//
//	core/      — Item, Itemset, Record and the immutable transaction Store
//	apriori/   — frequent-itemset mining under a minimum-support threshold
//	rules/     — rule generation, metric scoring, lift filtering, CSV round-trip
//	rulegraph/ — directed weighted graph construction from filtered rules
//
// Quick pipeline sketch:
//
//	    Store ──► apriori.Mine ──► rules.Generate ──► rulegraph.Build
//	  (one-hot)   (L1..Lk sets)    (scored rules)     (item graph)
//
// A small cobra CLI under cmd/arules wires the pipeline to CSV input and
// a printable rule table; the library itself performs no I/O.
//
//	go get github.com/katalvlaran/arules
package arules
