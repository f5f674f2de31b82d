package parallel

import (
	"image"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestBands(t *testing.T) {
	tests := []struct {
		name   string
		bounds image.Rectangle
		want   []image.Rectangle
	}{
		{"empty", image.Rectangle{}, nil},
		{"single short band", image.Rect(0, 0, 10, 5), []image.Rectangle{image.Rect(0, 0, 10, 5)}},
		{"exact", image.Rect(0, 0, 3, 128), []image.Rectangle{
			image.Rect(0, 0, 3, 64), image.Rect(0, 64, 3, 128),
		}},
		{"ragged offset", image.Rect(2, 10, 7, 150), []image.Rectangle{
			image.Rect(2, 10, 7, 74), image.Rect(2, 74, 7, 138), image.Rect(2, 138, 7, 150),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bands(tt.bounds)
			if len(got) != len(tt.want) {
				t.Fatalf("Bands(%v) = %v, want %v", tt.bounds, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestForEachVisitsEveryBandOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	bands := Bands(image.Rect(0, 0, 600, 400))
	for _, p := range []*WorkerPool{nil, pool} {
		var mu sync.Mutex
		seen := map[image.Rectangle]int{}
		ForEach(p, bands, func(b image.Rectangle) {
			mu.Lock()
			seen[b]++
			mu.Unlock()
		})
		if len(seen) != len(bands) {
			t.Errorf("pool=%v: visited %d bands, want %d", p != nil, len(seen), len(bands))
		}
		for b, n := range seen {
			if n != 1 {
				t.Errorf("pool=%v: band %v visited %d times", p != nil, b, n)
			}
		}
	}
}

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Close()

	if want := runtime.GOMAXPROCS(0); pool.Workers() != want {
		t.Errorf("Workers() = %d, want %d (GOMAXPROCS)", pool.Workers(), want)
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}
	pool.ExecuteAll(work)

	if counter.Load() != 100 {
		t.Errorf("counter = %d, want 100", counter.Load())
	}
}

func TestWorkerPool_ConcurrentBatches(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), 25)
			for i := range work {
				work[i] = func() { counter.Add(1) }
			}
			pool.ExecuteAll(work)
		}()
	}
	wg.Wait()

	if counter.Load() != 200 {
		t.Errorf("counter = %d, want 200", counter.Load())
	}
}

func TestWorkerPool_ClosedRunsInline(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("IsRunning() = true after Close")
	}
	ran := 0
	pool.ExecuteAll([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
}
