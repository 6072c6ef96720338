// Package ingest parses transactional CSV files into core Records.
//
// The expected shape mirrors common order-export formats: a header row
// naming the columns, with one (transaction ID, item) observation per
// data row. Column names are configurable; defaults match the
// order_id/product layout of retail exports.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/arules/core"
)

// Default column names for retail order exports.
const (
	DefaultTxnColumn  = "order_id"
	DefaultItemColumn = "product"
)

// Sentinel errors for CSV ingestion.
var (
	// ErrNoHeader indicates an empty input or an unreadable header row.
	ErrNoHeader = errors.New("ingest: missing CSV header row")

	// ErrMissingColumn indicates the header lacks a required column.
	ErrMissingColumn = errors.New("ingest: required column not in CSV header")
)

// ReadTransactions parses r into Records using the named transaction and
// item columns. Extra columns are ignored; ragged rows fail. Empty cells
// pass through and are rejected later by core.NewStore as malformed.
//
// Complexity: O(rows).
func ReadTransactions(r io.Reader, txnCol, itemCol string) ([]core.Record, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoHeader, err)
	}

	txnIdx, itemIdx := -1, -1
	for i, name := range header {
		switch name {
		case txnCol:
			txnIdx = i
		case itemCol:
			itemIdx = i
		}
	}
	if txnIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, txnCol)
	}
	if itemIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, itemCol)
	}

	var records []core.Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", line, err)
		}
		records = append(records, core.Record{
			TxnID: row[txnIdx],
			Item:  core.Item(row[itemIdx]),
		})
	}

	return records, nil
}
