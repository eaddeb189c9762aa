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
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrNilComparator is returned by the comparator-taking entry points when
// the supplied comparator is nil. Validation happens once at the API
// boundary, before any work begins; the recursive core trusts it.
var ErrNilComparator = errors.New("bitonic: nil comparator")

// SortFunc sorts data in place, ascending as determined by cmp. cmp must
// return a negative number when a < b, zero when a == b, and a positive
// number when a > b, and must be consistent across the whole call.
//
// The sort is not stable. Empty and single-element slices are a no-op.
func SortFunc[T any](data []T, cmp func(a, b T) int) error {
	if cmp == nil {
		return ErrNilComparator
	}
	if len(data) <= 1 {
		return nil
	}
	sortParallel(data, cmp)
	return nil
}

// Sort sorts data in place, ascending in natural order.
func Sort[T constraints.Ordered](data []T) {
	// compareOrdered is never nil, so SortFunc cannot fail here.
	_ = SortFunc(data, compareOrdered[T])
}

// SortSequentialFunc sorts data in place using the purely recursive
// bitonic network, with no task fan-out and no worker pool. It applies
// the full O(n log^2 n) comparison network and exists mainly as a
// baseline against the parallel form.
func SortSequentialFunc[T any](data []T, cmp func(a, b T) int) error {
	if cmp == nil {
		return ErrNilComparator
	}
	sortRange(data, 0, len(data), cmp, ascending)
	return nil
}

// SortSequential is SortSequentialFunc in natural order.
func SortSequential[T constraints.Ordered](data []T) {
	_ = SortSequentialFunc(data, compareOrdered[T])
}

// Interface is a finite, 0-indexed collection whose elements can be read
// and replaced by position. It is the adapter for sorting containers that
// are not slices.
type Interface[T any] interface {
	// Len is the number of elements in the collection.
	Len() int
	// At returns the element at index i.
	At(i int) T
	// Set replaces the element at index i.
	Set(i int, v T)
}

// SortInterfaceFunc copies the collection into a scratch slice, sorts it
// with cmp, and writes the sorted elements back in position order. The
// collection's length must not change during the call.
func SortInterfaceFunc[T any](c Interface[T], cmp func(a, b T) int) error {
	if cmp == nil {
		return ErrNilComparator
	}

	buf := make([]T, c.Len())
	for i := range buf {
		buf[i] = c.At(i)
	}

	if err := SortFunc(buf, cmp); err != nil {
		return err
	}

	for i, v := range buf {
		c.Set(i, v)
	}
	return nil
}

// SortInterface is SortInterfaceFunc in natural order.
func SortInterface[T constraints.Ordered](c Interface[T]) error {
	return SortInterfaceFunc[T](c, compareOrdered[T])
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
