package binomial

import (
	"fmt"

	"github.com/npillmayer/fpq/persistent/list"
	"golang.org/x/exp/constraints"
)

// tree is a binomial tree. Trees are never modified after creation.
//
// Children are ordered by decreasing order: for a tree of order k, the child at
// position i has order k-1-i.
type tree[T constraints.Ordered] struct {
	value    T
	children list.List[*tree[T]]
}

// single creates a tree of order 0.
func single[T constraints.Ordered](value T) *tree[T] {
	return &tree[T]{value: value}
}

func (t *tree[T]) order() int {
	return t.children.Size()
}

// size is the number of values held by t, i.e. 2^order.
func (t *tree[T]) size() int {
	return 1 << t.order()
}

// plus links two trees of equal order k into a new tree of order k+1.
// The tree with the smaller root becomes the new root; the other one is prepended
// to its children. If both roots are equal, other wins and t becomes its first child.
//
// Linking trees of different order panics with ErrIncompatibleOrder.
func (t *tree[T]) plus(other *tree[T]) *tree[T] {
	if t.order() != other.order() {
		panic(fmt.Errorf("binomial: %w: %d ≠ %d", ErrIncompatibleOrder, t.order(), other.order()))
	}
	if t.value < other.value {
		return &tree[T]{value: t.value, children: list.Cons(other, t.children)}
	}
	return &tree[T]{value: other.value, children: list.Cons(t, other.children)}
}

// values collects all values of t in pre-order.
func (t *tree[T]) values(acc []T) []T {
	acc = append(acc, t.value)
	it := t.children.Iterator()
	for it.Next() {
		acc = it.Value().values(acc)
	}
	return acc
}

func (t *tree[T]) String() string {
	if t == nil {
		return "_"
	}
	return fmt.Sprintf("⟨%v|%d⟩", t.value, t.order())
}

// link is tree linking lifted to absent trees: a nil tree is the neutral element.
func link[T constraints.Ordered](a, b *tree[T]) *tree[T] {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return a.plus(b)
}
