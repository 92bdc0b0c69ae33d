package list

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmpty(t *testing.T) {
	var l List[int]
	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Size())
	assert.True(t, l.First().IsNothing())
	assert.True(t, l.Rest().IsEmpty())
	assert.Equal(t, "[]", l.String())
	assert.True(t, Nil[string]().IsEmpty())
}

func TestListConsDoesNotTouchOriginal(t *testing.T) {
	l := Of(1, 2, 3)
	m := Cons(0, l)
	assert.Equal(t, "[1 2 3]", l.String())
	assert.Equal(t, "[0 1 2 3]", m.String())
	assert.Equal(t, 3, l.Size())
	assert.Equal(t, 4, m.Size())
	// tails are shared, not copied
	assert.Same(t, l.head, m.head.next)
}

func TestListDecompose(t *testing.T) {
	head, tail := Of("a", "b").Decompose()
	assert.Equal(t, "a", head)
	assert.Equal(t, "[b]", tail.String())
	head, tail = tail.Decompose()
	assert.Equal(t, "b", head)
	assert.True(t, tail.IsEmpty())
}

func TestListDecomposeEmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected decomposition of empty list to panic")
		err, ok := r.(error)
		require.True(t, ok, "expected panic value to be an error, is %#v", r)
		assert.True(t, errors.Is(err, ErrEmptyList))
	}()
	Nil[int]().Decompose()
}

func TestListFirst(t *testing.T) {
	assert.Equal(t, 7, Of(7, 8).First().WithDefault(-1))
	assert.Equal(t, -1, Nil[int]().First().WithDefault(-1))
}

func TestListFirstMatchOnSlices(t *testing.T) {
	var v []int
	switch m := Of([]int{1, 2}).First().Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected head of non-empty list to match Just, didn't")
	}
	assert.Equal(t, []int{1, 2}, v)
	matched := false
	switch m := Nil[[]int]().First().Match(); m {
	case m.Just(&v):
		t.Errorf("expected head of empty list not to match Just, got %v", v)
	case m.Nothing():
		matched = true
	}
	assert.True(t, matched)
}

func TestListReverse(t *testing.T) {
	l := Of(1, 2, 3, 4)
	r := l.Reverse()
	assert.Equal(t, "[4 3 2 1]", r.String())
	assert.Equal(t, "[1 2 3 4]", l.String())
	assert.Equal(t, 4, r.Size())
	assert.True(t, Nil[int]().Reverse().IsEmpty())
}

func TestListFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	l := Of(1, 2, 3, 4, 5, 6)
	even := l.Filter(func(n int) bool { return n%2 == 0 })
	assert.Equal(t, "[2 4 6]", even.String())
	assert.Equal(t, 3, even.Size())
	none := l.Filter(func(n int) bool { return n > 10 })
	assert.True(t, none.IsEmpty())
}

func TestListMap(t *testing.T) {
	l := Of(1, 2, 3)
	m := Map(l, func(n int) string { return string(rune('a' + n - 1)) })
	assert.Equal(t, "[a b c]", m.String())
	assert.Equal(t, 3, m.Size())
}

func TestListFoldL(t *testing.T) {
	sum := FoldL(Of(1, 2, 3, 4), 0, func(acc, n int) int { return acc + n })
	assert.Equal(t, 10, sum)
	digits := FoldL(Of(1, 2, 3), "", func(acc string, n int) string {
		return acc + string(rune('0'+n))
	})
	assert.Equal(t, "123", digits)
}

func TestListIterator(t *testing.T) {
	l := Of(10, 20, 30)
	var seen []int
	it := l.Iterator()
	for it.Next() {
		seen = append(seen, it.Value())
	}
	assert.Equal(t, []int{10, 20, 30}, seen)
	assert.False(t, it.Next(), "exhausted iterator must stay exhausted")
	assert.True(t, it.Rest().IsEmpty())
	// restart from the original list
	it = l.Iterator()
	require.True(t, it.Next())
	assert.Equal(t, 10, it.Value())
	assert.Equal(t, "[20 30]", it.Rest().String())
}

func TestListIteratorValueWithoutNextPanics(t *testing.T) {
	assert.Panics(t, func() {
		Of(1).Iterator().Value()
	})
}
