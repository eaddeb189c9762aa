// Copyright 2025 go-bitonic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitonic

import (
	"golang.org/x/exp/slices"

	"github.com/laurencepettitt/go-bitonic/workerpool"
)

// Tuning constants for the parallel orchestrator.
const (
	// GranularityThreshold: segments shorter than this are sorted directly
	// with an off-the-shelf in-place sort instead of being split into
	// subtasks. Below this size, task-spawn overhead outweighs the benefit
	// of splitting.
	GranularityThreshold = 1 << 13

	// DefaultParallelism: the fan-out budget of a top-level sort, and the
	// size of the worker pool backing it.
	DefaultParallelism = 8
)

// task is one node of the fork/join tree: a contiguous window of the
// shared slice, the direction it must end up in, and the remaining fan-out
// allowance. Tasks own no element storage; sibling tasks cover disjoint
// windows, and a parent never touches its window until both children have
// joined, so the slice needs no locking.
type task[T any] struct {
	data        []T
	offset      int
	count       int
	parallelism int
	cmp         func(a, b T) int
	dir         direction
}

// run executes the task to completion: leaf fallback below the granularity
// threshold, otherwise recurse on both halves (fanning out while budget
// remains), then merge the whole window.
func (t *task[T]) run(pool *workerpool.Pool) {
	if t.count < GranularityThreshold {
		seg := t.data[t.offset : t.offset+t.count]
		if t.dir == ascending {
			slices.SortFunc(seg, t.cmp)
		} else {
			slices.SortFunc(seg, reverseCmp(t.cmp))
		}
		return
	}

	split := t.count / 2
	childParallelism := t.parallelism
	if childParallelism > 1 {
		childParallelism /= 2
	}

	first := &task[T]{
		data:        t.data,
		offset:      t.offset,
		count:       split,
		parallelism: childParallelism,
		cmp:         t.cmp,
		dir:         !t.dir,
	}
	second := &task[T]{
		data:        t.data,
		offset:      t.offset + split,
		count:       t.count - split,
		parallelism: childParallelism,
		cmp:         t.cmp,
		dir:         t.dir,
	}

	if t.parallelism <= 1 {
		// Budget exhausted: recurse synchronously, no further fan-out.
		first.run(pool)
		second.run(pool)
	} else {
		// Join barrier: the merge below is only correct once both halves
		// are in bitonic form. Invoke runs second on this goroutine and
		// first on a pool worker; with the budget halving per level, at
		// most DefaultParallelism-1 tasks are parked on workers at once,
		// so a pool of DefaultParallelism workers cannot starve.
		pool.Invoke(
			func() { first.run(pool) },
			func() { second.run(pool) },
		)
	}

	mergeRange(t.data, t.offset, t.count, t.cmp, t.dir)
}

// sortParallel sorts data ascending via the fork/join tree. The pool lives
// for exactly one top-level sort.
func sortParallel[T any](data []T, cmp func(a, b T) int) {
	if len(data) < GranularityThreshold {
		// The root task would hit the leaf fallback immediately; skip the
		// pool entirely.
		slices.SortFunc(data, cmp)
		return
	}

	pool := workerpool.New(DefaultParallelism)
	defer pool.Close()

	root := &task[T]{
		data:        data,
		offset:      0,
		count:       len(data),
		parallelism: DefaultParallelism,
		cmp:         cmp,
		dir:         ascending,
	}
	root.run(pool)
}

// reverseCmp flips a comparator's order.
func reverseCmp[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return cmp(b, a) }
}
