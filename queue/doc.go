/*
Package queue implements a FIFO queue with copy-on-write value semantics.

A Queue is a small handle referencing a shared backing store (see package store).
Copying a queue with Copy is cheap: the copy references the same store, and the
store's reference count is incremented. Storage is duplicated lazily, at the first
mutation of a handle whose store is shared by other handles:

    a := queue.New[int]()
    a.Enqueue(1)
    b := a.Copy()      // a and b share a store
    a.Enqueue(2)       // a detaches into a private store first
    b.Count()          // still 1

Go assignment does not know about reference counts. `b := a` aliases the handle,
it does not copy the queue; always use Copy. Once one of two aliases is released,
the other one no longer sees the elements and behaves like an empty queue. Handles which are no longer needed
should be released with Release, to let the remaining sharers mutate in place.

Concurrency

By default a queue assumes that all handles sharing a store are used from a single
goroutine. Handles may be passed between goroutines, as long as each goroutine works
on its own copy and copies are created before being handed over. Option Synchronized
additionally guards each store with a lock, held across the uniqueness check, the
clone and the mutation, so that handles sharing a store may be mutated from
different goroutines. A single handle must never be used concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.queue'.
func tracer() tracing.Trace {
	return tracing.Select("cow.queue")
}
