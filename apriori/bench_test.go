package apriori_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/arules/apriori"
	"github.com/katalvlaran/arules/core"
)

// buildBenchStore generates a 5000-transaction store over 60 items with a
// fixed seed so every benchmark run mines the same dataset.
func buildBenchStore(b *testing.B) *core.Store {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	var records []core.Record
	for i := 0; i < 5000; i++ {
		id := fmt.Sprintf("T%05d", i)
		for j := 0; j < 6; j++ {
			records = append(records, core.Record{
				TxnID: id,
				Item:  core.Item(fmt.Sprintf("item%02d", r.Intn(60))),
			})
		}
	}
	store, err := core.NewStore(records)
	if err != nil {
		b.Fatal(err)
	}

	return store
}

// BenchmarkMine_Sequential measures a full mining run with one worker.
func BenchmarkMine_Sequential(b *testing.B) {
	store := buildBenchStore(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = apriori.Mine(store, apriori.Options{MinSupport: 0.01, Workers: 1})
	}
}

// BenchmarkMine_Parallel measures the same run with four counting workers.
func BenchmarkMine_Parallel(b *testing.B) {
	store := buildBenchStore(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = apriori.Mine(store, apriori.Options{MinSupport: 0.01, Workers: 4})
	}
}
