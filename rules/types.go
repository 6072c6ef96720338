// Package rules defines the AssociationRule type, configuration options,
// and sentinel errors for rule generation and filtering.
package rules

import (
	"errors"

	"github.com/katalvlaran/arules/core"
)

// Sentinel errors for rule generation and serialization.
var (
	// ErrInvalidMinConfidence indicates a minimum confidence outside [0, 1].
	ErrInvalidMinConfidence = errors.New("rules: minimum confidence must be in [0, 1]")

	// ErrInvalidMinLift indicates a negative minimum lift.
	ErrInvalidMinLift = errors.New("rules: minimum lift must be >= 0")

	// ErrInvariantViolation indicates that an antecedent or consequent of a
	// frequent itemset was not itself mined as frequent, or carried zero
	// support. Antimonotonicity guarantees this cannot happen for a correct
	// mining run, so it is a defect that aborts generation — never a
	// recoverable data condition.
	ErrInvariantViolation = errors.New("rules: frequent-itemset index is inconsistent (mining-stage defect)")

	// ErrMalformedCSV indicates a rule-table CSV with a wrong header or row shape.
	ErrMalformedCSV = errors.New("rules: malformed rule-table CSV")
)

// DefaultMinConfidence is the confidence threshold applied when no option
// overrides it.
const DefaultMinConfidence = 0.2

// Rule is a scored antecedent→consequent association drawn from one
// frequent itemset.
//
// Invariants: Antecedent and Consequent are non-empty, disjoint, and
// their union is the parent frequent itemset; Confidence ≥ the
// MinConfidence the rule was generated under.
type Rule struct {
	// Antecedent is the "if" side of the rule.
	Antecedent core.Itemset

	// Consequent is the "then" side of the rule.
	Consequent core.Itemset

	// Support is the fraction of transactions containing Antecedent ∪ Consequent.
	Support float64

	// Confidence is Support / support(Antecedent): the conditional
	// frequency of the consequent given the antecedent.
	Confidence float64

	// Lift is Confidence / support(Consequent); > 1 indicates the pair
	// co-occurs more often than independence would predict.
	Lift float64

	// Leverage is Support − support(Antecedent)·support(Consequent).
	Leverage float64

	// Conviction is (1 − support(Consequent)) / (1 − Confidence);
	// +Inf when Confidence is exactly 1.
	Conviction float64
}

// Options configures rule generation.
//
// Only the confidence threshold is enforced here: lift filtering is a
// second, independent stage applied by the caller via FilterByLift,
// mirroring the two-stage thresholding of the mining pipeline.
type Options struct {
	// MinConfidence is the emission threshold in [0, 1], compared inclusively.
	MinConfidence float64
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMinConfidence returns an Option that sets the confidence threshold.
func WithMinConfidence(min float64) Option {
	return func(opts *Options) {
		opts.MinConfidence = min
	}
}

// DefaultOptions returns Options initialized with DefaultMinConfidence.
// Complexity: O(1) to construct.
func DefaultOptions(opts ...Option) Options {
	o := Options{MinConfidence: DefaultMinConfidence}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
