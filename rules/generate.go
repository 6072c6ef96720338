package rules

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/arules/apriori"
	"github.com/katalvlaran/arules/core"
)

// Generate expands every frequent itemset of size ≥ 2 into scored
// antecedent→consequent rules.
//
// Algorithm Outline:
//  1. For each frequent k-itemset (k ≥ 2), enumerate all 2^k − 2
//     non-empty, non-trivial bipartitions via subset bitmasks: the mask
//     selects the antecedent, the remainder is the consequent.
//  2. Look up support(antecedent) and support(consequent) in the mined
//     index — both are subsets of a frequent itemset, so antimonotonicity
//     guarantees they were mined. A missing or zero entry is a
//     mining-stage defect (ErrInvariantViolation), not a data condition.
//  3. confidence = support(union) / support(antecedent); the rule is
//     emitted iff confidence ≥ opts.MinConfidence (inclusive).
//  4. Emitted rules carry lift = confidence / support(consequent), plus
//     leverage and conviction.
//
// Lift is deliberately NOT thresholded here: apply FilterByLift as the
// separate second stage.
//
// Determinism:
//
//	Itemsets are visited in the Result's (size, key) order and masks
//	ascend, so the returned slice is byte-identical across runs.
//
// Errors:
//   - ErrInvalidMinConfidence — MinConfidence outside [0, 1].
//   - ErrInvariantViolation   — inconsistent frequent-itemset index.
//
// Complexity: O(Σ_k |L_k| · 2^k). Memory: O(emitted rules).
func Generate(res apriori.Result, opts Options) ([]Rule, error) {
	if opts.MinConfidence < 0 || opts.MinConfidence > 1 {
		return nil, ErrInvalidMinConfidence
	}

	var out []Rule
	for _, fi := range res.Itemsets() {
		k := fi.Items.Len()
		if k < 2 {
			continue
		}
		for mask := 1; mask < (1<<uint(k))-1; mask++ {
			antecedent := make(core.Itemset, 0, k-1)
			consequent := make(core.Itemset, 0, k-1)
			for i, it := range fi.Items {
				if mask&(1<<uint(i)) != 0 {
					antecedent = append(antecedent, it)
				} else {
					consequent = append(consequent, it)
				}
			}

			supA, ok := res.SupportOf(antecedent)
			if !ok || supA <= 0 {
				return nil, fmt.Errorf("antecedent %v of %v: %w", antecedent, fi.Items, ErrInvariantViolation)
			}
			confidence := fi.Support / supA
			if confidence < opts.MinConfidence {
				continue
			}

			supC, ok := res.SupportOf(consequent)
			if !ok || supC <= 0 {
				return nil, fmt.Errorf("consequent %v of %v: %w", consequent, fi.Items, ErrInvariantViolation)
			}

			conviction := math.Inf(1)
			if confidence < 1 {
				conviction = (1 - supC) / (1 - confidence)
			}
			out = append(out, Rule{
				Antecedent: antecedent,
				Consequent: consequent,
				Support:    fi.Support,
				Confidence: confidence,
				Lift:       confidence / supC,
				Leverage:   fi.Support - supA*supC,
				Conviction: conviction,
			})
		}
	}

	return out, nil
}

// FilterByLift returns the rules whose lift is ≥ minLift, preserving
// order. This is the caller-side second threshold stage after Generate.
//
// Errors:
//   - ErrInvalidMinLift — minLift is negative.
func FilterByLift(rs []Rule, minLift float64) ([]Rule, error) {
	if minLift < 0 {
		return nil, ErrInvalidMinLift
	}
	out := make([]Rule, 0, len(rs))
	for _, r := range rs {
		if r.Lift >= minLift {
			out = append(out, r)
		}
	}

	return out, nil
}

// SortByLift orders rules in place by lift descending — the default
// display order of the rule table. Ties break on antecedent key, then
// consequent key, ascending, so the order is fully deterministic.
func SortByLift(rs []Rule) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Lift != rs[j].Lift {
			return rs[i].Lift > rs[j].Lift
		}
		ai, aj := rs[i].Antecedent.Key(), rs[j].Antecedent.Key()
		if ai != aj {
			return ai < aj
		}

		return rs[i].Consequent.Key() < rs[j].Consequent.Key()
	})
}
