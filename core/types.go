// Package core defines shared types, canonical itemset representation,
// and sentinel errors for the arules library.
//
// This file declares Item, Itemset, Record, and the sentinel errors
// surfaced by Store construction and support counting.
//
// Errors:
//
//	ErrEmptyDataset    - the dataset resolved to zero transactions.
//	ErrMalformedRecord - a record is missing its transaction ID or item.
//	ErrUnknownItem     - an itemset references an item absent from every transaction.
package core

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for core dataset operations.
var (
	// ErrEmptyDataset indicates the input produced zero transactions.
	// Zero transactions is an error, not an empty result: support has no denominator.
	ErrEmptyDataset = errors.New("core: dataset has no transactions")

	// ErrMalformedRecord indicates a record with an empty transaction ID or item.
	ErrMalformedRecord = errors.New("core: record is missing a transaction ID or item")

	// ErrUnknownItem indicates a support query referenced an item that never
	// appeared in any transaction. Downstream stages only ever query observed
	// items, so hitting this signals a defect in the caller, not in the data.
	ErrUnknownItem = errors.New("core: item never observed in any transaction")
)

// keySep separates Items inside an Itemset Key. The unit separator cannot
// collide with printable item names.
const keySep = "\x1f"

// Item identifies a single product/entity within the dataset.
// Equality and ordering are the string ones: total and deterministic.
type Item string

// Record is one (transaction ID, item) observation — the input boundary
// of the library. Parsing files into Records is the caller's concern.
type Record struct {
	// TxnID identifies the transaction this observation belongs to.
	TxnID string

	// Item is the product observed in the transaction.
	Item Item
}

// Itemset is a canonical set of distinct Items: always sorted ascending,
// never containing duplicates. Two Itemsets constructed from the same
// members in any order compare equal and share the same Key.
//
// Construct via NewItemset; the methods below assume canonical form.
type Itemset []Item

// NewItemset builds a canonical Itemset from the given members:
// duplicates are dropped and the result is sorted ascending.
// Complexity: O(n log n).
func NewItemset(items ...Item) Itemset {
	if len(items) == 0 {
		return nil
	}
	set := make(Itemset, len(items))
	copy(set, items)
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	// Deduplicate in place; the slice is already sorted.
	out := set[:1]
	for _, it := range set[1:] {
		if it != out[len(out)-1] {
			out = append(out, it)
		}
	}

	return out
}

// Len reports the number of Items in the set.
func (s Itemset) Len() int { return len(s) }

// Key returns the canonical lookup key of the set: members joined by a
// non-printable separator. Safe to use as a map key; equal sets produce
// equal keys regardless of construction order.
// Complexity: O(n).
func (s Itemset) Key() string {
	parts := make([]string, len(s))
	for i, it := range s {
		parts[i] = string(it)
	}

	return strings.Join(parts, keySep)
}

// Contains reports whether item is a member of the set.
// Complexity: O(log n) via binary search over the sorted members.
func (s Itemset) Contains(item Item) bool {
	i := sort.Search(len(s), func(i int) bool { return s[i] >= item })

	return i < len(s) && s[i] == item
}

// Equal reports whether two Itemsets have identical members.
func (s Itemset) Equal(other Itemset) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Union returns a new canonical Itemset containing the members of both sets.
// Complexity: O(n+m) merge of two sorted slices.
func (s Itemset) Union(other Itemset) Itemset {
	out := make(Itemset, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			out = append(out, s[i])
			i++
		case s[i] > other[j]:
			out = append(out, other[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, other[j:]...)

	return out
}

// Without returns a new canonical Itemset with item removed.
// The receiver is not modified.
func (s Itemset) Without(item Item) Itemset {
	out := make(Itemset, 0, len(s))
	for _, it := range s {
		if it != item {
			out = append(out, it)
		}
	}

	return out
}

// String renders the set for display: members joined by ", ", matching
// the rule-table and CSV presentation format.
func (s Itemset) String() string {
	parts := make([]string, len(s))
	for i, it := range s {
		parts[i] = string(it)
	}

	return strings.Join(parts, ", ")
}
