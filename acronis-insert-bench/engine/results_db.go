package engine

import (
	"context"
	"os"

	"github.com/acronis/perfkit-insert-bench/benchmark"
	"github.com/acronis/perfkit-insert-bench/storage"
)

// resultsDBEnv is consulted when --results-db is not given
const resultsDBEnv = "ACRONIS_INSERT_BENCH_RESULTS_DB"

func resultsDBConnString(opts StorageOpts) string {
	if opts.ResultsDB != "" {
		return opts.ResultsDB
	}

	return os.Getenv(resultsDBEnv)
}

func openResultsStore(ctx context.Context, b *benchmark.Benchmark, connString string) (*storage.Store, error) {
	store, err := storage.Open(connString, b.Logger)
	if err != nil {
		return nil, err
	}

	if err = store.Init(ctx); err != nil {
		store.Close()
		return nil, err
	}

	return store, nil
}
