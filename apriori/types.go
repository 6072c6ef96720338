// Package apriori defines configuration options, result types, and
// sentinel errors for frequent-itemset mining.
package apriori

import (
	"errors"
	"sort"

	"github.com/katalvlaran/arules/core"
)

// Sentinel errors for mining configuration and input.
var (
	// ErrNilStore indicates Mine was called without a transaction store.
	ErrNilStore = errors.New("apriori: nil transaction store")

	// ErrInvalidMinSupport indicates a minimum support outside (0, 1].
	ErrInvalidMinSupport = errors.New("apriori: minimum support must be in (0, 1]")
)

// DefaultMinSupport is the minimum-support threshold applied when no
// option overrides it.
const DefaultMinSupport = 0.02

// FrequentItemset pairs a canonical Itemset with its support: the
// fraction of transactions containing every member.
// Invariant: Support ≥ the MinSupport the itemset was mined under.
type FrequentItemset struct {
	// Items is the canonical member set, size ≥ 1.
	Items core.Itemset

	// Support is Count(Items) / N, in [0, 1].
	Support float64
}

// Options configures a mining run.
//
// Fields:
//   - MinSupport — frequency threshold in (0, 1]; itemsets at exactly the
//     threshold are kept (inclusive ≥ comparison).
//   - Workers    — goroutines used for support counting within a level.
//     Values ≤ 1 run sequentially. Any worker count yields identical output.
//
// Example:
//
//	res, err := apriori.Mine(store, apriori.Options{MinSupport: 0.5})
//	if err != nil {
//	  // handle ErrNilStore or ErrInvalidMinSupport
//	}
//	for _, fi := range res.Itemsets() {
//	  fmt.Println(fi.Items, fi.Support)
//	}
type Options struct {
	// MinSupport is the frequency threshold in (0, 1].
	MinSupport float64

	// Workers bounds concurrent support counting per level. ≤ 1 = sequential.
	Workers int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMinSupport returns an Option that sets the minimum-support threshold.
func WithMinSupport(min float64) Option {
	return func(opts *Options) {
		opts.MinSupport = min
	}
}

// WithWorkers returns an Option that sets the per-level support-counting
// worker count. Values ≤ 1 keep the run sequential.
func WithWorkers(n int) Option {
	return func(opts *Options) {
		opts.Workers = n
	}
}

// DefaultOptions returns Options initialized for a sequential run with
// DefaultMinSupport.
// Complexity: O(1) to construct.
func DefaultOptions(opts ...Option) Options {
	o := Options{
		MinSupport: DefaultMinSupport,
		Workers:    1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Result is the full frequent-itemset collection of one mining run.
//
// Itemsets are held in deterministic order — ascending size, then
// ascending canonical key — and indexed by key for O(1) support lookup
// during rule generation.
type Result struct {
	sets  []FrequentItemset
	index map[string]float64
}

// NewResult builds a Result from an explicit frequent-itemset collection,
// e.g. itemsets mined elsewhere or precomputed fixtures. The sets are
// re-ordered canonically (ascending size, then ascending key) and indexed
// by key; no support validation is performed.
// Complexity: O(n log n).
func NewResult(sets []FrequentItemset) Result {
	res := Result{
		sets:  make([]FrequentItemset, len(sets)),
		index: make(map[string]float64, len(sets)),
	}
	copy(res.sets, sets)
	sort.Slice(res.sets, func(i, j int) bool {
		if res.sets[i].Items.Len() != res.sets[j].Items.Len() {
			return res.sets[i].Items.Len() < res.sets[j].Items.Len()
		}

		return res.sets[i].Items.Key() < res.sets[j].Items.Key()
	})
	for _, fi := range res.sets {
		res.index[fi.Items.Key()] = fi.Support
	}

	return res
}

// Itemsets returns all frequent itemsets in deterministic order
// (ascending size, then ascending canonical key). The slice is shared;
// treat it as read-only.
func (r Result) Itemsets() []FrequentItemset { return r.sets }

// Len reports the number of frequent itemsets mined.
func (r Result) Len() int { return len(r.sets) }

// SupportOf reports the mined support of set and whether set is frequent.
func (r Result) SupportOf(set core.Itemset) (float64, bool) {
	sup, ok := r.index[set.Key()]

	return sup, ok
}

// MaxSize reports the size of the largest frequent itemset (0 when empty).
func (r Result) MaxSize() int {
	if len(r.sets) == 0 {
		return 0
	}

	return r.sets[len(r.sets)-1].Items.Len()
}
