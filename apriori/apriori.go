package apriori

import (
	"sort"
	"sync"

	"github.com/katalvlaran/arules/core"
)

// Mine — level-wise frequent-itemset search with antimonotone pruning.
//
// Description:
//
//	Apriori walks itemset sizes bottom-up: the frequent sets of size k
//	are derived exclusively from the frequent sets of size k−1, because
//	support never increases when an itemset grows (antimonotonicity).
//	Any itemset pruned as infrequent is never revisited, and no superset
//	of it is ever counted.
//
// Algorithm Outline:
//  1. L1: compute support for every distinct Item; keep those ≥ MinSupport.
//     An empty L1 terminates with an empty Result (not an error).
//  2. Level k ≥ 2: join pairs of frequent (k−1)-itemsets sharing their
//     first k−2 items (lexicographic join over canonical sorted sets),
//     then discard candidates owning any (k−1)-subset outside L(k−1).
//  3. Count support for surviving candidates against the Store —
//     fanned out across opts.Workers goroutines, each candidate
//     independent — and keep those ≥ MinSupport as L_k.
//  4. Repeat until L_k is empty or k exceeds the distinct item count;
//     return L1 ∪ ... ∪ L_k.
//
// Determinism:
//
//	Every level is sorted by canonical key before the next join, and the
//	final Result is ordered by (size, key), so output is byte-identical
//	across runs and across worker counts. The join/prune step is the
//	synchronization barrier between levels.
//
// Errors:
//   - ErrNilStore          — store is nil.
//   - ErrInvalidMinSupport — MinSupport outside (0, 1].
//   - core.ErrUnknownItem  — propagated untouched; indicates a caller defect.
//
// Complexity: O(Σ_k |C_k| · k · N/64) counting dominated; memory O(|L|).
func Mine(store *core.Store, opts Options) (Result, error) {
	if store == nil {
		return Result{}, ErrNilStore
	}
	if opts.MinSupport <= 0 || opts.MinSupport > 1 {
		return Result{}, ErrInvalidMinSupport
	}

	// 1. Level 1: every distinct item, thresholded inclusively.
	items := store.Items()
	level := make([]FrequentItemset, 0, len(items))
	for _, it := range items {
		set := core.Itemset{it}
		sup, err := store.Support(set)
		if err != nil {
			return Result{}, err
		}
		if sup >= opts.MinSupport {
			level = append(level, FrequentItemset{Items: set, Support: sup})
		}
	}

	res := Result{index: make(map[string]float64)}
	for k := 2; len(level) > 0 && k <= len(items)+1; k++ {
		// Fold the finalized level into the result before advancing.
		for _, fi := range level {
			res.sets = append(res.sets, fi)
			res.index[fi.Items.Key()] = fi.Support
		}

		// 2. Join + prune: barrier between level k−1 and level k.
		candidates := joinAndPrune(level)
		if len(candidates) == 0 {
			break
		}

		// 3. Support counting — the embarrassingly parallel map step.
		counted, err := countSupport(store, candidates, opts.Workers)
		if err != nil {
			return Result{}, err
		}
		level = level[:0]
		for _, fi := range counted {
			if fi.Support >= opts.MinSupport {
				level = append(level, fi)
			}
		}
	}

	return res, nil
}

// joinAndPrune generates size-(k+1) candidates from the frequent size-k
// level.
//
// Join: canonical itemsets are sorted ascending, and the level is sorted
// by key, so two sets sharing their first k−1 members are adjacent under
// a common prefix; their union is a valid candidate.
// Prune: a candidate survives only if all of its k-subsets are frequent —
// dropping it here avoids ever counting a provably infrequent superset.
//
// The returned slice is sorted by canonical key.
// Complexity: O(|L_k|² · k) worst case; prefix grouping keeps it far lower in practice.
func joinAndPrune(level []FrequentItemset) []core.Itemset {
	frequent := make(map[string]struct{}, len(level))
	for _, fi := range level {
		frequent[fi.Items.Key()] = struct{}{}
	}

	k := level[0].Items.Len()
	var candidates []core.Itemset
	for i := 0; i < len(level); i++ {
		a := level[i].Items
		for j := i + 1; j < len(level); j++ {
			b := level[j].Items
			if !samePrefix(a, b, k-1) {
				// The level is key-sorted, so no later j shares a's prefix.
				break
			}
			cand := a.Union(b)
			if cand.Len() != k+1 {
				continue
			}
			if hasInfrequentSubset(cand, frequent) {
				continue
			}
			candidates = append(candidates, cand)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Key() < candidates[j].Key()
	})

	return candidates
}

// samePrefix reports whether a and b agree on their first n members.
func samePrefix(a, b core.Itemset, n int) bool {
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// hasInfrequentSubset reports whether any (len−1)-subset of cand is
// missing from the frequent key set.
func hasInfrequentSubset(cand core.Itemset, frequent map[string]struct{}) bool {
	for _, it := range cand {
		if _, ok := frequent[cand.Without(it).Key()]; !ok {
			return true
		}
	}

	return false
}

// countSupport computes support for every candidate, fanning the work
// across at most workers goroutines. Each candidate writes its own result
// slot, so no mutable state is shared; the Store is read-only throughout.
func countSupport(store *core.Store, candidates []core.Itemset, workers int) ([]FrequentItemset, error) {
	out := make([]FrequentItemset, len(candidates))
	if workers <= 1 || len(candidates) == 1 {
		for i, cand := range candidates {
			sup, err := store.Support(cand)
			if err != nil {
				return nil, err
			}
			out[i] = FrequentItemset{Items: cand, Support: sup}
		}

		return out, nil
	}

	if workers > len(candidates) {
		workers = len(candidates)
	}
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			// Strided partition: worker w owns candidates w, w+workers, ...
			for i := w; i < len(candidates); i += workers {
				sup, err := store.Support(candidates[i])
				if err != nil {
					errs[w] = err
					return
				}
				out[i] = FrequentItemset{Items: candidates[i], Support: sup}
			}
		}(w)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
