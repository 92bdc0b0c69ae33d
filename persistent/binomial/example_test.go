package binomial_test

import (
	"fmt"

	"github.com/npillmayer/fpq/persistent/binomial"
)

func ExampleHeap() {
	h := binomial.Single(5).With(3).With(8).With(1)
	fmt.Println(h.Top())

	g := h.Drop()
	fmt.Println(g.Top(), h.Top()) // h is unchanged

	both := h.Merge(binomial.Single(10).Merge(binomial.Single(2)))
	fmt.Println(both.Top(), both.Size())
	// Output:
	// 1
	// 3 1
	// 1 6
}

func ExampleHeap_Drop() {
	h := binomial.Single("kiwi").With("banana").With("cherry").With("apple")
	for h.Size() > 0 {
		fmt.Print(h.Top(), " ")
		h = h.Drop()
	}
	fmt.Println()
	// Output:
	// apple banana cherry kiwi
}
