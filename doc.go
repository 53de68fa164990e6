/*
Package cow is about queues with value semantics, implemented by copy-on-write.

The module is organized in three layers:

    refcount   explicit reference counts, answering "am I the only owner?"
    store      a shared FIFO backing store carrying a reference count
    queue      a copy-on-write handle over a store

This root package defines the capability all queues of the module share, FIFO,
together with a plain generic implementation without copy-on-write, a concrete
integer queue and an adapter to wrap arbitrary functions as a FIFO.
Clients operating on queues should accept a FIFO[T]:

    func fill(q cow.FIFO[int]) { cow.EnqueueAll(q, 1, 2, 3) }

    q := queue.New[int]()
    fill(&q)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cow
