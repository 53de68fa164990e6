/*
Package refcount implements an explicit strong-reference count, to be embedded
into shared values which have to answer the question "am I referenced by exactly
one owner?".

Go does not expose a uniqueness query for pointers, thus owners have to announce
themselves: every new owner calls Retain, every owner going away calls Release.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package refcount

import (
	"fmt"
	"sync/atomic"
)

// Count is a reference count. The zero value counts no owners at all.
// A Count must not be copied after first use.
type Count struct {
	n atomic.Int32
}

// Retain registers an additional owner and returns the new count.
func (c *Count) Retain() int32 {
	return c.n.Add(1)
}

// Release unregisters an owner and returns the remaining count.
// Releasing a count which is already zero is a programming error and panics.
func (c *Count) Release() int32 {
	n := c.n.Add(-1)
	assertThat(n >= 0, "release of unreferenced value (count=%d)", n)
	return n
}

// Load returns the current number of owners.
func (c *Count) Load() int32 {
	return c.n.Load()
}

// Unique is true if there is exactly one owner.
func (c *Count) Unique() bool {
	return c.n.Load() == 1
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("refcount: "+msg, msgargs...)
		panic(msg)
	}
}
