// Package parallel runs independent render tasks on a small pool of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of workers, each with its own queue. An idle worker
// steals from the other queues before blocking on its own.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool. If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
			continue
		default:
		}

		if task := p.steal(id); task != nil {
			task()
			continue
		}
		select {
		case <-p.done:
			drain(own)
			return
		case task := <-own:
			task()
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			task()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// Run distributes tasks round-robin and waits until all of them returned.
// A closed pool runs the tasks on the calling goroutine.
func (p *Pool) Run(tasks []func()) {
	if len(tasks) == 0 {
		return
	}
	if !p.running.Load() || p.workers == 1 {
		for _, task := range tasks {
			task()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		wrapped := func() {
			defer wg.Done()
			task()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wrapped()
		}
	}
	wg.Wait()
}

// Close stops the workers after they finish queued tasks. It is safe to
// call more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}
