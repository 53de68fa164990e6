/*
Package store implements the backing store of copy-on-write queues.

A Store holds the elements of a queue in FIFO order and carries a reference count
of the handles currently sharing it. A Store never decides about copy-on-write by
itself: handles (see package queue) have to check Unique before mutating, and
call Duplicate if the store is shared.

Stores optionally carry a lock (see option Synchronized). The lock is meant to be
held by a handle across the uniqueness check, a possible duplication and the
mutation, making these a single step for handles on different goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package store

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cow.store'.
func tracer() tracing.Trace {
	return tracing.Select("cow.store")
}
