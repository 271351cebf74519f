package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 4

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_EachIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 2}

	seen := make([]int32, 37)
	For(len(seen), func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, cfg)

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times", i, c)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Sequential()

	order := make([]int, 0, 10)
	For(10, func(i int) {
		order = append(order, i)
	}, cfg)

	for i, v := range order {
		if v != i {
			t.Fatalf("sequential order broken at %d: got %d", i, v)
		}
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()
	cfg.MinChunkSize = 1000

	var counter int64
	For(10, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 10 {
		t.Errorf("Expected 10, got %d", counter)
	}
}

func TestFor_PanicPropagates(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	defer func() {
		r := recover()
		if r != "boom" {
			t.Errorf("Expected panic value %q, got %v", "boom", r)
		}
	}()

	For(16, func(i int) {
		if i == 7 {
			panic("boom")
		}
	}, cfg)
	t.Error("For should have panicked")
}

func TestWorkers(t *testing.T) {
	tests := []struct {
		name string
		n    int
		cfg  Config
		want int
	}{
		{"sequential", 100, Sequential(), 1},
		{"single item", 1, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, 1},
		{"two items, chunk of one", 2, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, 2},
		{"two items fit one chunk", 2, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2}, 1},
		{"uneven split", 10, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, 4},
		{"chunk floor", 100, Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}, 2},
		{"below min chunk", 10, Config{Enabled: true, NumWorkers: 4, MinChunkSize: 64}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Workers(tt.n, tt.cfg); got != tt.want {
				t.Errorf("Workers(%d, %+v) = %d, want %d", tt.n, tt.cfg, got, tt.want)
			}
		})
	}
}

func TestFor_TwoItemsRunConcurrently(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1}

	// Each item waits for the other; only concurrent execution lets both finish.
	var arrived sync.WaitGroup
	arrived.Add(2)
	var met atomic.Int32
	For(2, func(_ int) {
		arrived.Done()
		done := make(chan struct{})
		go func() {
			arrived.Wait()
			close(done)
		}()
		select {
		case <-done:
			met.Add(1)
		case <-time.After(5 * time.Second):
		}
	}, cfg)

	if got := met.Load(); got != 2 {
		t.Errorf("Expected both items to meet, got %d", got)
	}
}
