package app

import (
	"github.com/spf13/cobra"
)

// RootCmd is the root command for arules
var RootCmd = &cobra.Command{
	Use:   "arules",
	Short: "Market-basket analysis: frequent itemsets, association rules, item graphs",
	Long: `arules mines frequent co-occurrence patterns from transactional CSV data,
derives support/confidence/lift-scored association rules, and folds the
filtered rules into a weighted directed graph of item relationships.

Pipeline:
  1. Ingest a CSV of (transaction, item) rows
  2. Mine frequent itemsets (Apriori, minimum support)
  3. Generate rules (minimum confidence), filter by minimum lift
  4. Print the rule table sorted by lift; optionally export CSV or graph edges

Examples:
  # Mine orders.csv with the default thresholds
  arules mine --input orders.csv

  # Tighter thresholds, graph edges weighted by lift
  arules mine --input orders.csv --min-support 0.05 --min-confidence 0.4 \
    --metric lift --edges

  # Export the rule table for a spreadsheet
  arules mine --input orders.csv --output rules.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(mineCmd)
}
