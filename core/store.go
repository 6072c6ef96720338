package core

import (
	"fmt"
	"math/bits"
	"sort"
)

// Store is the immutable one-hot transaction-by-item matrix.
//
// Rows are transactions (ordered by sorted transaction ID), columns are
// Items (sorted ascending). Presence is a single bit per (row, column):
// multiple occurrences of the same Item within one transaction collapse
// to one bit. Each column is stored as a []uint64 bitset over the rows,
// so counting transactions containing an Itemset is a word-wise AND of
// the member columns followed by a popcount.
//
// Store is safe for concurrent readers; it is never mutated after NewStore.
type Store struct {
	n      int // number of transactions (rows)
	words  int // bitset words per column: ceil(n/64)
	items  []Item
	txnIDs []string
	// columns[item][w] holds presence bits for rows w*64 .. w*64+63.
	columns map[Item][]uint64
}

// NewStore builds a Store from raw (transaction ID, item) observations.
//
// Steps:
//  1. Reject any record with an empty TxnID or empty Item (ErrMalformedRecord).
//  2. Group records into transactions; duplicate pairs collapse.
//  3. Reject an empty grouping (ErrEmptyDataset) — support needs N > 0.
//  4. Assign row indices by sorted transaction ID and column bitsets by
//     sorted Item, so construction is deterministic for any input order.
//
// Complexity: O(R log R) over R records. Memory: O(items · N/64).
func NewStore(records []Record) (*Store, error) {
	grouped := make(map[string]map[Item]struct{})
	for i, rec := range records {
		if rec.TxnID == "" || rec.Item == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrMalformedRecord)
		}
		txn, ok := grouped[rec.TxnID]
		if !ok {
			txn = make(map[Item]struct{})
			grouped[rec.TxnID] = txn
		}
		txn[rec.Item] = struct{}{}
	}
	if len(grouped) == 0 {
		return nil, ErrEmptyDataset
	}

	// Deterministic row order: sorted transaction IDs.
	txnIDs := make([]string, 0, len(grouped))
	for id := range grouped {
		txnIDs = append(txnIDs, id)
	}
	sort.Strings(txnIDs)

	// Deterministic column order: sorted items.
	itemSeen := make(map[Item]struct{})
	for _, txn := range grouped {
		for it := range txn {
			itemSeen[it] = struct{}{}
		}
	}
	itemList := make([]Item, 0, len(itemSeen))
	for it := range itemSeen {
		itemList = append(itemList, it)
	}
	sort.Slice(itemList, func(i, j int) bool { return itemList[i] < itemList[j] })

	s := &Store{
		n:       len(txnIDs),
		words:   (len(txnIDs) + 63) / 64,
		items:   itemList,
		txnIDs:  txnIDs,
		columns: make(map[Item][]uint64, len(itemList)),
	}
	for _, it := range itemList {
		s.columns[it] = make([]uint64, s.words)
	}
	for row, id := range txnIDs {
		for it := range grouped[id] {
			s.columns[it][row/64] |= 1 << uint(row%64)
		}
	}

	return s, nil
}

// N reports the total number of transactions. Always > 0 for a built Store.
func (s *Store) N() int { return s.n }

// Items returns the distinct observed Items in ascending order.
// The returned slice is a copy; callers may retain or modify it.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)

	return out
}

// TransactionIDs returns all transaction IDs in row order (sorted ascending).
func (s *Store) TransactionIDs() []string {
	out := make([]string, len(s.txnIDs))
	copy(out, s.txnIDs)

	return out
}

// Contains reports whether item was observed in at least one transaction.
func (s *Store) Contains(item Item) bool {
	_, ok := s.columns[item]

	return ok
}

// Count returns the number of transactions whose item set is a superset
// of set. An empty set is contained in every transaction, so Count(nil) == N.
//
// Returns ErrUnknownItem if set references an item absent from the Store:
// downstream stages only query observed items, so that is a caller defect.
//
// Complexity: O(len(set) · N/64).
func (s *Store) Count(set Itemset) (int, error) {
	if len(set) == 0 {
		return s.n, nil
	}
	acc := make([]uint64, s.words)
	col, ok := s.columns[set[0]]
	if !ok {
		return 0, fmt.Errorf("%q: %w", set[0], ErrUnknownItem)
	}
	copy(acc, col)
	for _, it := range set[1:] {
		col, ok = s.columns[it]
		if !ok {
			return 0, fmt.Errorf("%q: %w", it, ErrUnknownItem)
		}
		for w := range acc {
			acc[w] &= col[w]
		}
	}
	count := 0
	for _, word := range acc {
		count += bits.OnesCount64(word)
	}

	return count, nil
}

// Support returns Count(set) / N, the fraction of transactions containing
// set. The denominator is the same N for every query on this Store.
func (s *Store) Support(set Itemset) (float64, error) {
	count, err := s.Count(set)
	if err != nil {
		return 0, err
	}

	return float64(count) / float64(s.n), nil
}

// TransactionItems returns the Itemset of the transaction at the given
// row index (0 ≤ row < N), in canonical order.
// Complexity: O(items).
func (s *Store) TransactionItems(row int) Itemset {
	if row < 0 || row >= s.n {
		return nil
	}
	var out Itemset
	for _, it := range s.items {
		if s.columns[it][row/64]&(1<<uint(row%64)) != 0 {
			out = append(out, it)
		}
	}

	return out
}
