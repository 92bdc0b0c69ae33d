package binomial

import (
	"fmt"

	"github.com/npillmayer/fpq/persistent/list"
	"golang.org/x/exp/constraints"
)

// Heap is an immutable min-priority queue. Heaps are created with Single and
// grow by merging, either with other heaps or with single values:
//
//     h := binomial.Single(5).With(3)
//     h = h.Merge(binomial.Single(10).With(2))
//     h.Top()   // 2
//
// The zero value is a heap without values. It is neutral with respect to Merge,
// but calling Top or Drop on it panics.
//
type Heap[T constraints.Ordered] struct {
	// trees is the forest of binomial trees in ascending order. Position i
	// either holds a tree of order i or nil, denoting an empty slot.
	trees list.List[*tree[T]]
}

// Single creates a heap containing exactly one value.
func Single[T constraints.Ordered](value T) Heap[T] {
	return Heap[T]{trees: list.Of(single(value))}
}

// --- API -------------------------------------------------------------------

// Merge returns a new heap containing the values of both h and other. O(log n).
func (h Heap[T]) Merge(other Heap[T]) Heap[T] {
	return Heap[T]{trees: mergeForests(h.trees, other.trees)}
}

// With returns a new heap with value inserted. O(log n).
func (h Heap[T]) With(value T) Heap[T] {
	return h.Merge(Single(value))
}

// Top returns the minimum value of h. O(log n).
//
// Top panics with ErrEmptyHeap if h does not contain any values.
func (h Heap[T]) Top() T {
	return h.minimum().value
}

// Drop returns a new heap without the minimum value of h. h itself is left
// unchanged. O(log n).
//
// Drop panics with ErrEmptyHeap if h does not contain any values.
func (h Heap[T]) Drop() Heap[T] {
	minTree := h.minimum()
	tracer().Debugf("drop: removing root of %v", minTree)
	// children are in decreasing order; reversed they form a forest without gaps
	sub := positional(minTree.children.Reverse())
	rest := list.Map(h.trees, func(t *tree[T]) *tree[T] {
		if t == minTree {
			return nil
		}
		return t
	})
	return Heap[T]{trees: withoutEmptyTail(mergeForests(sub, rest))}
}

// Size returns the number of values in h.
func (h Heap[T]) Size() int {
	return list.FoldL(h.trees, 0, func(n int, t *tree[T]) int {
		if t == nil {
			return n
		}
		return n + t.size()
	})
}

func (h Heap[T]) String() string {
	return fmt.Sprintf("Heap%v", h.trees)
}

// --- Internals -------------------------------------------------------------

// minimum finds the tree holding the minimum value of the heap. Heap order
// guarantees that only roots have to be compared. On ties, the tree of lowest
// order wins.
func (h Heap[T]) minimum() *tree[T] {
	present := h.trees.Filter(func(t *tree[T]) bool {
		return t != nil
	})
	first := present.First()
	if first.IsNothing() {
		panic(fmt.Errorf("binomial: %w", ErrEmptyHeap))
	}
	minTree := list.FoldL(present.Rest(), first.WithDefault(nil), func(m, t *tree[T]) *tree[T] {
		if t.value < m.value {
			return t
		}
		return m
	})
	tracer().Debugf("minimum of %d trees is %v", present.Size(), minTree)
	return minTree
}

// mergeForests adds two forests the way binary numbers are added: walking
// both in lockstep by ascending order and linking trees of equal order into a
// carry for the next slot. The result holds at most one more slot than the
// longer of the inputs.
func mergeForests[T constraints.Ordered](f1, f2 list.List[*tree[T]]) list.List[*tree[T]] {
	var res list.List[*tree[T]] // built in reverse
	var carry, sum *tree[T]
	it1, it2 := f1.Iterator(), f2.Iterator()
	for {
		more1, more2 := it1.Next(), it2.Next()
		if !more1 && !more2 {
			break
		}
		var a, b *tree[T]
		if more1 {
			a = it1.Value()
		}
		if more2 {
			b = it2.Value()
		}
		sum, carry = addWithCarry(a, b, carry)
		res = list.Cons(sum, res)
	}
	if carry != nil {
		res = list.Cons(carry, res)
	}
	tracer().Debugf("merged forests of length %d and %d into %d slots",
		f1.Size(), f2.Size(), res.Size())
	return res.Reverse()
}

// addWithCarry is a single step of forest addition. a, b and carry are either
// nil or trees of the same order k. It returns the tree to place at slot k and
// the carry for slot k+1.
func addWithCarry[T constraints.Ordered](a, b, carry *tree[T]) (sum, next *tree[T]) {
	switch {
	case carry == nil && a != nil && b != nil:
		return nil, a.plus(b)
	case carry == nil:
		return link(a, b), nil
	case a != nil && b != nil:
		return carry, a.plus(b)
	case a == nil && b == nil:
		return carry, nil
	}
	return nil, link(a, b).plus(carry)
}

// withoutEmptyTail strips empty slots beyond the tree of highest order, keeping
// the length of a forest proportional to the log of the current heap size.
func withoutEmptyTail[T constraints.Ordered](f list.List[*tree[T]]) list.List[*tree[T]] {
	r := f.Reverse()
	for !r.IsEmpty() {
		t, rest := r.Decompose()
		if t != nil {
			break
		}
		r = rest
	}
	return r.Reverse()
}

// positional turns a list of trees in strictly ascending order into a forest,
// filling in empty slots wherever no tree supplies an order.
func positional[T constraints.Ordered](trees list.List[*tree[T]]) list.List[*tree[T]] {
	var res list.List[*tree[T]] // built in reverse
	slot := 0
	it := trees.Iterator()
	for it.Next() {
		t := it.Value()
		assertThat(t.order() >= slot, "trees not in ascending order: %d after slot %d", t.order(), slot)
		for ; slot < t.order(); slot++ {
			res = list.Cons[*tree[T]](nil, res)
		}
		res = list.Cons(t, res)
		slot++
	}
	return res.Reverse()
}
