// Copyright 2025 The go-bitonic Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, bounded worker pool with a join
// barrier, used as the task scheduler behind the parallel bitonic sort. A
// Pool is created once per top-level operation (or reused across several)
// and hands out work to a fixed set of goroutines, so recursive fan-out
// never spawns an unbounded number of goroutines.
//
// Usage:
//
//	pool := workerpool.New(8)
//	defer pool.Close()
//
//	pool.Invoke(
//	    func() { sortLeft() },
//	    func() { sortRight() },
//	)
//	// both halves are done here; safe to merge
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation
// and reused until Close is called.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single unit of work and the barrier it reports to.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for i := 0; i < numWorkers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Invoke runs every fn and blocks until all of them have completed. All but
// the last fn are handed to pool workers; the last one runs on the calling
// goroutine. Running the tail on the caller means a worker that itself
// calls Invoke always makes progress, so nested fork/join recursion cannot
// park every worker on the barrier at once.
//
// On a closed pool the fns run sequentially on the caller.
func (p *Pool) Invoke(fns ...func()) {
	if len(fns) == 0 {
		return
	}

	if p.closed.Load() || len(fns) == 1 {
		for _, fn := range fns {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(fns) - 1)

	for _, fn := range fns[:len(fns)-1] {
		p.workC <- workItem{fn: fn, barrier: &wg}
	}

	fns[len(fns)-1]()
	wg.Wait()
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes a contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	if p.closed.Load() {
		// Fallback to sequential if pool is closed
		fn(0, n)
		return
	}

	// Don't use more workers than items
	workers := min(p.numWorkers, n)

	if workers == 1 {
		fn(0, n)
		return
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			// No work for this worker
			wg.Done()
			continue
		}

		p.workC <- workItem{
			fn: func() {
				fn(start, end)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
