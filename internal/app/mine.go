package app

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arules/apriori"
	"github.com/katalvlaran/arules/core"
	"github.com/katalvlaran/arules/internal/ingest"
	"github.com/katalvlaran/arules/rulegraph"
	"github.com/katalvlaran/arules/rules"
)

var (
	mineInput         string
	mineTxnColumn     string
	mineItemColumn    string
	mineMinSupport    float64
	mineMinConfidence float64
	mineMinLift       float64
	mineWorkers       int
	mineMetric        string
	mineMinValue      float64
	mineOutput        string
	mineShowEdges     bool

	mineCmd = &cobra.Command{
		Use:   "mine",
		Short: "Mine association rules from a transactional CSV file",
		Long: `Mine reads a CSV of (transaction, item) rows, finds frequent itemsets
under --min-support, scores antecedent→consequent rules under
--min-confidence, filters by --min-lift, and prints the surviving rules
sorted by lift descending.

With --edges, the filtered rules are additionally folded into a directed
item graph: edges run from antecedent items to consequent items, weighted
by --metric (support, confidence, or lift), thresholded at --min-value
(default: the smallest observed value of that metric).`,
		RunE: runMine,
	}
)

func init() {
	mineCmd.Flags().StringVar(&mineInput, "input", "", "transactional CSV file (required)")
	mineCmd.Flags().StringVar(&mineTxnColumn, "txn-column", ingest.DefaultTxnColumn, "header name of the transaction ID column")
	mineCmd.Flags().StringVar(&mineItemColumn, "item-column", ingest.DefaultItemColumn, "header name of the item column")
	mineCmd.Flags().Float64Var(&mineMinSupport, "min-support", apriori.DefaultMinSupport, "minimum itemset support in (0,1]")
	mineCmd.Flags().Float64Var(&mineMinConfidence, "min-confidence", rules.DefaultMinConfidence, "minimum rule confidence in [0,1]")
	mineCmd.Flags().Float64Var(&mineMinLift, "min-lift", 1.0, "minimum rule lift (>= 0)")
	mineCmd.Flags().IntVar(&mineWorkers, "workers", 1, "support-counting goroutines per mining level")
	mineCmd.Flags().StringVar(&mineMetric, "metric", string(rulegraph.MetricConfidence), "graph edge-weight metric: support, confidence, or lift")
	mineCmd.Flags().Float64Var(&mineMinValue, "min-value", math.NaN(), "minimum metric value for graph edges (default: observed minimum)")
	mineCmd.Flags().StringVar(&mineOutput, "output", "", "write the rule table to this CSV file")
	mineCmd.Flags().BoolVar(&mineShowEdges, "edges", false, "print the item-graph edge list")
	_ = mineCmd.MarkFlagRequired("input")
}

// basketParams carries the full threshold configuration of one run.
type basketParams struct {
	minSupport    float64
	minConfidence float64
	minLift       float64
	workers       int
	metric        rulegraph.Metric
	// minValue NaN means "use the observed minimum of the metric".
	minValue float64
}

// basketAnalysis is the result of one full pipeline run.
type basketAnalysis struct {
	rules []rules.Rule // lift-descending
	graph *rulegraph.Graph
}

// runPipeline executes store→mine→generate→filter→fold over parsed records.
// Pure with respect to its inputs; all I/O stays in runMine.
func runPipeline(records []core.Record, p basketParams) (*basketAnalysis, error) {
	store, err := core.NewStore(records)
	if err != nil {
		return nil, err
	}

	res, err := apriori.Mine(store, apriori.Options{MinSupport: p.minSupport, Workers: p.workers})
	if err != nil {
		return nil, err
	}

	rs, err := rules.Generate(res, rules.Options{MinConfidence: p.minConfidence})
	if err != nil {
		return nil, err
	}
	rs, err = rules.FilterByLift(rs, p.minLift)
	if err != nil {
		return nil, err
	}
	rules.SortByLift(rs)

	minValue := p.minValue
	if math.IsNaN(minValue) {
		minValue, _, err = rulegraph.MetricBounds(rs, p.metric)
		if err != nil {
			return nil, err
		}
	}
	graph, err := rulegraph.Build(rs, rulegraph.Options{Metric: p.metric, MinValue: minValue})
	if err != nil {
		return nil, err
	}

	return &basketAnalysis{rules: rs, graph: graph}, nil
}

func runMine(cmd *cobra.Command, args []string) error {
	f, err := os.Open(mineInput)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	records, err := ingest.ReadTransactions(f, mineTxnColumn, mineItemColumn)
	if err != nil {
		return err
	}

	analysis, err := runPipeline(records, basketParams{
		minSupport:    mineMinSupport,
		minConfidence: mineMinConfidence,
		minLift:       mineMinLift,
		workers:       mineWorkers,
		metric:        rulegraph.Metric(mineMetric),
		minValue:      mineMinValue,
	})
	if err != nil {
		return err
	}

	if len(analysis.rules) == 0 {
		fmt.Println("No association rules found for the selected thresholds. Try lowering --min-support, --min-confidence, or --min-lift.")
		return nil
	}

	printRuleTable(analysis.rules)

	if mineOutput != "" {
		out, err := os.Create(mineOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer out.Close()
		if err := rules.WriteCSV(out, analysis.rules); err != nil {
			return err
		}
		fmt.Printf("\nWrote %d rules to %s\n", len(analysis.rules), mineOutput)
	}

	if mineShowEdges {
		printEdges(analysis.graph)
	}

	return nil
}

// printRuleTable renders the lift-descending rule table.
func printRuleTable(rs []rules.Rule) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ANTECEDENTS\tCONSEQUENTS\tSUPPORT\tCONFIDENCE\tLIFT")
	for _, r := range rs {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\t%.4f\n",
			r.Antecedent, r.Consequent, r.Support, r.Confidence, r.Lift)
	}
	w.Flush()
}

// printEdges renders the folded item graph as a directed edge list.
func printEdges(g *rulegraph.Graph) {
	fmt.Printf("\nGraph: %d nodes, %d edges\n", g.NodeCount(), g.EdgeCount())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FROM\tTO\tWEIGHT\tLIFT")
	for _, e := range g.Edges() {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\n", e.From, e.To, e.Weight, e.Lift)
	}
	w.Flush()
}
