/*
Package binomial implements a persistent (immutable) priority queue as a binomial heap.

A binomial heap is a forest of binomial trees. A binomial tree of order k holds
exactly 2^k values and has k children, which are binomial trees of orders
k-1, k-2, …, 0. Every tree is heap-ordered, i.e. the root of a tree holds
its minimum value. A heap keeps at most one tree per order, similar to the
binary representation of the number of values it contains: slot i of the forest
is occupied if and only if bit i of the heap's size is set.

Merging two heaps therefore resembles binary addition: trees of equal order are
linked into a tree of the next higher order, which is carried over to the next
slot. Merging, inserting, finding and removing the minimum all run in O(log n).

Heaps are values. “Modifying” operations return a new heap and leave the
original unchanged; most of the structure is shared between the two:

	h := binomial.Single(5).With(3).With(8).With(1)
	h.Top()          // 1
	g := h.Drop()
	g.Top()          // 3
	h.Top()          // still 1

A good introduction to binomial heaps may be found at
https://en.wikipedia.org/wiki/Binomial_heap.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package binomial

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.binomial'.
func tracer() tracing.Trace {
	return tracing.Select("fp.binomial")
}

// ErrIncompatibleOrder flags an attempt to link binomial trees of different order.
// Heap operations never do this; encountering it signals a broken invariant.
var ErrIncompatibleOrder = errors.New("incompatible tree orders")

// ErrEmptyHeap flags an attempt to query or drop the minimum of a heap without values.
var ErrEmptyHeap = errors.New("heap contains no values")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("binomial: "+msg, msgargs...)
		panic(msg)
	}
}
