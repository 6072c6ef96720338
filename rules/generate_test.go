package rules_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/arules/apriori"
	"github.com/katalvlaran/arules/core"
	"github.com/katalvlaran/arules/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// groceryResult mines the reference four-transaction dataset:
//
//	T1: {milk, bread}  T2: {milk, bread, eggs}  T3: {milk}  T4: {bread, eggs}
func groceryResult(t *testing.T, minSupport float64) apriori.Result {
	t.Helper()
	store, err := core.NewStore([]core.Record{
		{TxnID: "T1", Item: "milk"}, {TxnID: "T1", Item: "bread"},
		{TxnID: "T2", Item: "milk"}, {TxnID: "T2", Item: "bread"}, {TxnID: "T2", Item: "eggs"},
		{TxnID: "T3", Item: "milk"},
		{TxnID: "T4", Item: "bread"}, {TxnID: "T4", Item: "eggs"},
	})
	require.NoError(t, err)
	res, err := apriori.Mine(store, apriori.Options{MinSupport: minSupport})
	require.NoError(t, err)

	return res
}

// findRule locates the rule with the given antecedent and consequent.
func findRule(t *testing.T, rs []rules.Rule, ant, cons core.Itemset) rules.Rule {
	t.Helper()
	for _, r := range rs {
		if r.Antecedent.Equal(ant) && r.Consequent.Equal(cons) {
			return r
		}
	}
	t.Fatalf("rule %v → %v not found in %d rules", ant, cons, len(rs))

	return rules.Rule{}
}

// TestGenerate_Validation verifies confidence-threshold range checks.
func TestGenerate_Validation(t *testing.T) {
	res := groceryResult(t, 0.5)

	for _, bad := range []float64{-0.01, 1.01} {
		_, err := rules.Generate(res, rules.Options{MinConfidence: bad})
		assert.ErrorIs(t, err, rules.ErrInvalidMinConfidence, "MinConfidence=%v", bad)
	}
}

// TestGenerate_GroceryScenario checks the reference numbers: the frequent
// pairs {bread, milk} and {bread, eggs} at 0.5 yield four rules under
// min_confidence = 0.5, including milk→bread with confidence 0.5/0.75 ≈
// 0.667 and lift ≈ 0.889, and eggs→bread at confidence exactly 1.0.
func TestGenerate_GroceryScenario(t *testing.T) {
	rs, err := rules.Generate(groceryResult(t, 0.5), rules.Options{MinConfidence: 0.5})
	require.NoError(t, err)
	require.Len(t, rs, 4) // bread→eggs, eggs→bread, bread→milk, milk→bread

	mb := findRule(t, rs, core.NewItemset("milk"), core.NewItemset("bread"))
	assert.InDelta(t, 0.5, mb.Support, 1e-12)
	assert.InDelta(t, 2.0/3.0, mb.Confidence, 1e-12)
	assert.InDelta(t, 8.0/9.0, mb.Lift, 1e-12)
	assert.InDelta(t, 0.5-0.75*0.75, mb.Leverage, 1e-12)
	assert.InDelta(t, 0.25/(1.0/3.0), mb.Conviction, 1e-12)

	be := findRule(t, rs, core.NewItemset("bread"), core.NewItemset("eggs"))
	assert.InDelta(t, 0.5, be.Support, 1e-12)
	assert.InDelta(t, 2.0/3.0, be.Confidence, 1e-12)
	assert.InDelta(t, 4.0/3.0, be.Lift, 1e-12)

	eb := findRule(t, rs, core.NewItemset("eggs"), core.NewItemset("bread"))
	assert.InDelta(t, 0.5, eb.Support, 1e-12)
	assert.InDelta(t, 1.0, eb.Confidence, 1e-12)
	assert.InDelta(t, 4.0/3.0, eb.Lift, 1e-12)
	assert.True(t, math.IsInf(eb.Conviction, 1))
}

// TestGenerate_PartitionInvariant verifies that every rule is a disjoint
// bipartition whose union is a mined frequent itemset.
func TestGenerate_PartitionInvariant(t *testing.T) {
	res := groceryResult(t, 0.25)
	rs, err := rules.Generate(res, rules.Options{MinConfidence: 0})
	require.NoError(t, err)
	require.NotEmpty(t, rs)

	for _, r := range rs {
		assert.NotZero(t, r.Antecedent.Len())
		assert.NotZero(t, r.Consequent.Len())
		for _, it := range r.Antecedent {
			assert.False(t, r.Consequent.Contains(it), "%v overlaps %v", r.Antecedent, r.Consequent)
		}
		union := r.Antecedent.Union(r.Consequent)
		sup, ok := res.SupportOf(union)
		require.True(t, ok, "union %v is not a mined itemset", union)
		assert.InDelta(t, sup, r.Support, 1e-12)
	}
}

// TestGenerate_ConfidenceIdentity cross-checks confidence(rule) =
// support(union) / support(antecedent) for every emitted rule.
func TestGenerate_ConfidenceIdentity(t *testing.T) {
	res := groceryResult(t, 0.25)
	rs, err := rules.Generate(res, rules.Options{MinConfidence: 0})
	require.NoError(t, err)

	for _, r := range rs {
		supA, ok := res.SupportOf(r.Antecedent)
		require.True(t, ok)
		assert.InDelta(t, r.Support/supA, r.Confidence, 1e-12)
		assert.GreaterOrEqual(t, r.Confidence, 0.0)
		assert.LessOrEqual(t, r.Confidence, 1.0+1e-12)
	}
}

// TestGenerate_BothDirectionsIndependent verifies that A→B and B→A are
// computed independently: their confidences differ when the endpoint
// supports differ, even though lift happens to be direction-free.
func TestGenerate_BothDirectionsIndependent(t *testing.T) {
	rs, err := rules.Generate(groceryResult(t, 0.25), rules.Options{MinConfidence: 0})
	require.NoError(t, err)

	em := findRule(t, rs, core.NewItemset("eggs"), core.NewItemset("milk"))
	me := findRule(t, rs, core.NewItemset("milk"), core.NewItemset("eggs"))

	assert.InDelta(t, 0.5, em.Confidence, 1e-12)     // 0.25 / 0.50
	assert.InDelta(t, 1.0/3.0, me.Confidence, 1e-12) // 0.25 / 0.75
	assert.NotEqual(t, em.Confidence, me.Confidence)
	assert.InDelta(t, em.Lift, me.Lift, 1e-12)
}

// TestGenerate_BipartitionCount verifies 2^k − 2 candidates per k-itemset
// when no threshold filters anything.
func TestGenerate_BipartitionCount(t *testing.T) {
	rs, err := rules.Generate(groceryResult(t, 0.25), rules.Options{MinConfidence: 0})
	require.NoError(t, err)

	// Pairs: {bread,eggs}, {bread,milk}, {eggs,milk} → 2 rules each.
	// Triple {bread,eggs,milk} → 2^3 − 2 = 6 rules.
	assert.Len(t, rs, 3*2+6)
}

// TestGenerate_ConfidenceThresholdInclusive verifies the ≥ comparison at
// the border: eggs→bread has confidence exactly 1.0.
func TestGenerate_ConfidenceThresholdInclusive(t *testing.T) {
	rs, err := rules.Generate(groceryResult(t, 0.25), rules.Options{MinConfidence: 1})
	require.NoError(t, err)
	require.NotEmpty(t, rs)

	for _, r := range rs {
		assert.InDelta(t, 1.0, r.Confidence, 1e-12)
	}
	eb := findRule(t, rs, core.NewItemset("eggs"), core.NewItemset("bread"))
	assert.True(t, math.IsInf(eb.Conviction, 1), "conviction must be +Inf at confidence 1, got %v", eb.Conviction)
}

// TestGenerate_InvariantViolation verifies that an inconsistent
// frequent-itemset index (a pair without its singletons) aborts with
// ErrInvariantViolation rather than emitting wrong rules.
func TestGenerate_InvariantViolation(t *testing.T) {
	res := apriori.NewResult([]apriori.FrequentItemset{
		{Items: core.NewItemset("milk", "bread"), Support: 0.5},
		// Singletons deliberately missing.
	})
	_, err := rules.Generate(res, rules.Options{MinConfidence: 0})
	assert.ErrorIs(t, err, rules.ErrInvariantViolation)
}

// TestGenerate_SingletonsOnly verifies that 1-itemsets produce no rules.
func TestGenerate_SingletonsOnly(t *testing.T) {
	res := apriori.NewResult([]apriori.FrequentItemset{
		{Items: core.NewItemset("milk"), Support: 0.75},
		{Items: core.NewItemset("bread"), Support: 0.75},
	})
	rs, err := rules.Generate(res, rules.Options{MinConfidence: 0})
	require.NoError(t, err)
	assert.Empty(t, rs)
}

// TestFilterByLift verifies the independent second-stage lift filter.
func TestFilterByLift(t *testing.T) {
	rs, err := rules.Generate(groceryResult(t, 0.25), rules.Options{MinConfidence: 0})
	require.NoError(t, err)

	_, err = rules.FilterByLift(rs, -1)
	assert.ErrorIs(t, err, rules.ErrInvalidMinLift)

	kept, err := rules.FilterByLift(rs, 1.0)
	require.NoError(t, err)
	assert.NotEmpty(t, kept)
	assert.Less(t, len(kept), len(rs))
	for _, r := range kept {
		assert.GreaterOrEqual(t, r.Lift, 1.0)
	}

	all, err := rules.FilterByLift(rs, 0)
	require.NoError(t, err)
	assert.Equal(t, rs, all)
}

// TestSortByLift verifies lift-descending order with deterministic ties.
func TestSortByLift(t *testing.T) {
	rs, err := rules.Generate(groceryResult(t, 0.25), rules.Options{MinConfidence: 0})
	require.NoError(t, err)
	rules.SortByLift(rs)

	for i := 1; i < len(rs); i++ {
		prev, cur := rs[i-1], rs[i]
		if prev.Lift != cur.Lift {
			assert.Greater(t, prev.Lift, cur.Lift)
			continue
		}
		if prev.Antecedent.Key() != cur.Antecedent.Key() {
			assert.Less(t, prev.Antecedent.Key(), cur.Antecedent.Key())
			continue
		}
		assert.Less(t, prev.Consequent.Key(), cur.Consequent.Key())
	}
}

// TestGenerate_Idempotent verifies byte-identical rule sets across runs.
func TestGenerate_Idempotent(t *testing.T) {
	res := groceryResult(t, 0.25)
	first, err := rules.Generate(res, rules.Options{MinConfidence: 0.2})
	require.NoError(t, err)
	second, err := rules.Generate(res, rules.Options{MinConfidence: 0.2})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
