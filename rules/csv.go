package rules

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/arules/core"
)

// csvHeader is the fixed five-column rule-table projection:
// item sets rendered as ", "-joined lists, metrics as shortest-exact floats.
var csvHeader = []string{"antecedents", "consequents", "support", "confidence", "lift"}

// itemSep renders and re-parses item sets inside a CSV field. Round-trips
// are lossless provided item names do not contain the separator.
const itemSep = ", "

// WriteCSV serializes rules as a five-column CSV table in slice order.
//
// Floats use strconv's shortest exact representation, so
// ReadCSV(WriteCSV(rs)) reproduces the metric values bit-for-bit.
// Complexity: O(rules).
func WriteCSV(w io.Writer, rs []Rule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("rules: write csv header: %w", err)
	}
	for _, r := range rs {
		row := []string{
			r.Antecedent.String(),
			r.Consequent.String(),
			strconv.FormatFloat(r.Support, 'g', -1, 64),
			strconv.FormatFloat(r.Confidence, 'g', -1, 64),
			strconv.FormatFloat(r.Lift, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("rules: write csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a rule table previously produced by WriteCSV.
//
// Only the five projected columns are recovered; Leverage and Conviction
// are zero on the returned rules.
//
// Errors:
//   - ErrMalformedCSV — wrong header, wrong column count, or a
//     non-numeric metric cell.
func ReadCSV(r io.Reader) ([]Rule, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("rules: read csv header: %w", ErrMalformedCSV)
	}
	if len(header) != len(csvHeader) {
		return nil, fmt.Errorf("rules: header has %d columns, want %d: %w", len(header), len(csvHeader), ErrMalformedCSV)
	}
	for i, want := range csvHeader {
		if header[i] != want {
			return nil, fmt.Errorf("rules: header column %d is %q, want %q: %w", i, header[i], want, ErrMalformedCSV)
		}
	}

	var out []Rule
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rules: read csv line %d: %w", line, ErrMalformedCSV)
		}
		sup, err1 := strconv.ParseFloat(row[2], 64)
		conf, err2 := strconv.ParseFloat(row[3], 64)
		lift, err3 := strconv.ParseFloat(row[4], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("rules: non-numeric metric on csv line %d: %w", line, ErrMalformedCSV)
		}
		out = append(out, Rule{
			Antecedent: parseItems(row[0]),
			Consequent: parseItems(row[1]),
			Support:    sup,
			Confidence: conf,
			Lift:       lift,
		})
	}

	return out, nil
}

// parseItems rebuilds a canonical Itemset from a ", "-joined CSV cell.
func parseItems(cell string) core.Itemset {
	parts := strings.Split(cell, itemSep)
	items := make([]core.Item, len(parts))
	for i, p := range parts {
		items[i] = core.Item(p)
	}

	return core.NewItemset(items...)
}
