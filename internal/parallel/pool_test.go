package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestNewPoolWorkers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 4, 4},
		{"zero", 0, runtime.GOMAXPROCS(0)},
		{"negative", -5, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(tt.workers)
			defer p.Close()
			if got := p.Workers(); got != tt.want {
				t.Errorf("Workers() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPoolRun(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 8} {
		p := NewPool(workers)

		var counter atomic.Int64
		results := make([]int, 100)
		tasks := make([]func(), len(results))
		for i := range tasks {
			tasks[i] = func() {
				counter.Add(1)
				results[i] = i * i
			}
		}
		p.Run(tasks)
		p.Close()

		if got := counter.Load(); got != 100 {
			t.Errorf("workers=%d: %d tasks ran, want 100", workers, got)
		}
		for i, v := range results {
			if v != i*i {
				t.Errorf("workers=%d: results[%d] = %d", workers, i, v)
				break
			}
		}
	}
}

func TestPoolRunEmpty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	p.Run(nil)
}

func TestPoolRunAfterClose(t *testing.T) {
	p := NewPool(4)
	p.Close()
	p.Close()

	ran := 0
	p.Run([]func(){func() { ran++ }, func() { ran++ }})
	if ran != 2 {
		t.Errorf("%d tasks ran on a closed pool, want 2", ran)
	}
}
