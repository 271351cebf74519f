// Package parallel provides bounded parallel loops.
//
// The autodiff engine uses it to step the nodes of one topological-order
// bucket concurrently: nodes sharing an order have no edges between them.
package parallel

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of concurrent goroutines.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Sequential returns a Config that never spawns goroutines.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// panicError carries a value recovered from a worker goroutine.
type panicError struct {
	value any
}

func (p *panicError) Error() string {
	return fmt.Sprintf("panic in parallel worker: %v", p.value)
}

// Workers returns how many goroutines For(n, f, cfg) runs f on.
// 1 means f runs on the calling goroutine.
func Workers(n int, cfg Config) int {
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.NumWorkers <= 1 || n <= 1 {
		return 1
	}
	size := chunkSize(n, cfg)
	return (n + size - 1) / size
}

func chunkSize(n int, cfg Config) int {
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or the work
// would fit in a single chunk.
//
// A panic inside f is re-raised on the calling goroutine with the original
// value once all workers have stopped.
func For(n int, f func(i int), cfg Config) {
	if Workers(n, cfg) <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	size := chunkSize(n, cfg)

	for start := 0; start < n; start += size {
		end := min(start+size, n)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &panicError{value: r}
				}
			}()
			for i := start; i < end; i++ {
				f(i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if p, ok := err.(*panicError); ok {
			panic(p.value)
		}
		panic(err)
	}
}
