package graph

import "github.com/born-ml/graphgrad/internal/parallel"

// Config controls how a backward pass runs.
type Config struct {
	// Parallel controls whether nodes of one order bucket are stepped
	// concurrently. Buckets themselves always run one after the other.
	Parallel parallel.Config
}

// DefaultConfig steps every node sequentially.
func DefaultConfig() Config {
	return Config{Parallel: parallel.Sequential()}
}

// ParallelConfig steps the nodes of a bucket concurrently once the bucket
// holds at least two of them. A single step is coarse enough work to give
// every node its own chunk.
func ParallelConfig() Config {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = max(cfg.NumWorkers, 2)
	cfg.MinChunkSize = 1
	return Config{Parallel: cfg}
}
