// Package core defines the fundamental Item, Itemset, Record, and Store
// types shared by every mining stage of arules.
//
// 🚀 What is core?
//
//	The leaf layer of the pipeline: an immutable, one-hot-encoded
//	transaction-by-item matrix with fast superset counting.
//
//	  • Item    — an opaque, comparable identifier (e.g. a product name);
//	    ordering is total and deterministic (lexicographic).
//	  • Itemset — a canonical, sorted, duplicate-free set of Items whose
//	    Key() is usable as a map key regardless of construction order.
//	  • Record  — a single (transaction ID, item) observation, the input
//	    boundary of the whole library.
//	  • Store   — the full transaction collection: presence bits are held
//	    as one column bitset per Item, so counting the transactions that
//	    contain an Itemset is an AND of member columns plus a popcount.
//
// ⚙️ Usage:
//
//	records := []core.Record{
//	  {TxnID: "T1", Item: "milk"}, {TxnID: "T1", Item: "bread"},
//	  {TxnID: "T2", Item: "milk"},
//	}
//	store, err := core.NewStore(records)
//	if err != nil {
//	  // handle ErrEmptyDataset or ErrMalformedRecord
//	}
//	n := store.N()                                   // 2
//	sup, _ := store.Support(core.NewItemset("milk")) // 1.0
//
// Guarantees:
//
//   - Store is immutable once built; concurrent readers need no locking.
//   - Duplicate (transaction, item) observations collapse to one presence bit.
//   - All accessors iterate in sorted order for repeatable output.
//
// See examples in example_test.go.
package core
