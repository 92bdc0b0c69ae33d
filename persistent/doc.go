/*
Package persistent hosts immutable persistent data structures.

Persistent data structures are never modified in place. Every “modification”
returns a new version, leaving the original unchanged and fully usable.
Functional programming languages like Lisp have long relied on them.

Immutable data structures in many cases offer benefits over mutable data structures in terms
of concurrent access and functional reasoning. *Persistent* immutable data-structures offer
structural sharing, which means that if two data structures are mostly copies of each other,
most of the memory they take up will be shared between them. This implies that making copies
of an immutable data structure is relatively cheap in terms of space- and time-complexity.

Sub-packages:

	list       singly-linked list with O(1) cons and decomposition
	binomial   priority queue (binomial heap) with O(log n) merge, insert, top and drop

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
