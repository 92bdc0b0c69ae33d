package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fpq/maybe"
)

// List is an immutable list of values of type T. An empty instance is usable
// as an empty list, i.e. this is legal:
//
//     l := list.Cons(42, list.List[int]{})
//
type List[T any] struct {
	head *cell[T]
}

// cell is a non-empty list. size counts this cell plus all cells of the tail.
type cell[T any] struct {
	value T
	next  *cell[T]
	size  int
}

// Nil returns the empty list.
func Nil[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with value in front of l. l remains unchanged.
func Cons[T any](value T, l List[T]) List[T] {
	return List[T]{head: &cell[T]{value: value, next: l.head, size: l.Size() + 1}}
}

// Of creates a list from a sequence of values. The first argument will be the
// head of the list.
func Of[T any](values ...T) List[T] {
	l := Nil[T]()
	for i := len(values) - 1; i >= 0; i-- {
		l = Cons(values[i], l)
	}
	return l
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Size returns the number of values in l. This is an O(1) operation.
func (l List[T]) Size() int {
	if l.head == nil {
		return 0
	}
	return l.head.size
}

// Decompose splits a list into its head value and its tail.
// Decomposing an empty list is a programming error and will panic with an
// error wrapping ErrEmptyList.
func (l List[T]) Decompose() (T, List[T]) {
	if l.head == nil {
		panic(fmt.Errorf("list: %w", ErrEmptyList))
	}
	return l.head.value, List[T]{head: l.head.next}
}

// First returns the head of l, if present.
func (l List[T]) First() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Rest returns l without its head. The rest of an empty list is an empty list.
func (l List[T]) Rest() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next}
}

// Reverse returns a new list with the values of l in reverse order.
func (l List[T]) Reverse() List[T] {
	r := Nil[T]()
	for c := l.head; c != nil; c = c.next {
		r = Cons(c.value, r)
	}
	return r
}

// Filter returns a list of all values of l for which pred is true, in their
// original order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	r := Nil[T]()
	for c := l.head; c != nil; c = c.next {
		if pred(c.value) {
			r = Cons(c.value, r)
		}
	}
	tracer().Debugf("filter retained %d of %d values", r.Size(), l.Size())
	return r.Reverse()
}

// Map returns a new list with f applied to every value of l.
func Map[T, U any](l List[T], f func(T) U) List[U] {
	r := Nil[U]()
	for c := l.head; c != nil; c = c.next {
		r = Cons(f(c.value), r)
	}
	return r.Reverse()
}

// FoldL folds the values of l from the left, starting with zero.
func FoldL[T, A any](l List[T], zero A, f func(A, T) A) A {
	acc := zero
	for c := l.head; c != nil; c = c.next {
		acc = f(acc, c.value)
	}
	return acc
}

func (l List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for c := l.head; c != nil; c = c.next {
		if c != l.head {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%v", c.value))
	}
	sb.WriteByte(']')
	return sb.String()
}

// --- Iteration -------------------------------------------------------------

// Iterator walks a list front to back. Iterators are lazy and cheap; to restart
// an iteration, request a fresh iterator from the list.
//
//     it := l.Iterator()
//     for it.Next() {
//         fmt.Println(it.Value())
//     }
//
type Iterator[T any] struct {
	next    *cell[T]
	current *cell[T]
}

// Iterator returns an iterator positioned before the first value of l.
func (l List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{next: l.head}
}

// Next advances the iterator. It returns false as soon as the list is
// exhausted, and keeps returning false thereafter.
func (it *Iterator[T]) Next() bool {
	if it.next == nil {
		it.current = nil
		return false
	}
	it.current, it.next = it.next, it.next.next
	return true
}

// Value returns the value at the current position of the iterator.
// It must not be called before Next or after Next returned false.
func (it *Iterator[T]) Value() T {
	assertThat(it.current != nil, "iterator has no current value")
	return it.current.value
}

// Rest returns the part of the list which has not been visited yet.
func (it *Iterator[T]) Rest() List[T] {
	return List[T]{head: it.next}
}
