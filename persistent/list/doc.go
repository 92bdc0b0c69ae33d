/*
Package list implements an immutable persistent singly-linked list.

A list is either empty or a cell holding a head value and a tail list. Cells are
never modified after construction; prepending to a list creates a single new cell
which shares the complete original list as its tail. Thus, an arbitrary number of
lists may share a common suffix, and handing lists between goroutines needs no
synchronization.

	l := list.Of(1, 2, 3)           // [1 2 3]
	m := list.Cons(0, l)            // [0 1 2 3], l is unchanged
	head, tail := m.Decompose()     // 0, [1 2 3]

The zero value of List is an empty list, ready to use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

// ErrEmptyList is raised (as a panic) if a client decomposes an empty list.
var ErrEmptyList = errors.New("attempt to decompose empty list")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
