package queue

import (
	"fmt"

	"github.com/npillmayer/cow/maybe"
	"github.com/npillmayer/cow/store"
)

// Queue is a FIFO queue with copy-on-write semantics. The zero value is an empty
// queue, ready to use.
type Queue[T any] struct {
	store    *store.Store[T]
	opts     []Option
	detaches int
}

// Option is a type to help initializing queues at creation time.
type Option = store.Option

// Capacity is an option to pre-allocate space for n elements in the backing store.
func Capacity(n int) Option {
	return store.Capacity(n)
}

// Synchronized is an option to guard the backing store of a queue with a lock.
// All copies of the queue (and their detached stores) inherit this policy.
//
// Use it like this:
//
//     q := queue.New[int](queue.Synchronized())
//
func Synchronized() Option {
	return store.Synchronized()
}

// New creates an empty queue with a fresh backing store.
func New[T any](opts ...Option) Queue[T] {
	return Queue[T]{
		store: store.New[T](opts...),
		opts:  opts,
	}
}

// --- Ownership -------------------------------------------------------------

// Copy returns a new handle for the queue. Until either of them is mutated, q and
// the copy share the same backing store.
func (q *Queue[T]) Copy() Queue[T] {
	s := q.backing()
	s.Lock()
	s.Retain()
	s.Unlock()
	tracer().Debugf("copied queue handle, store %p now has %d refs", s, s.Refs())
	return Queue[T]{store: s, opts: q.opts}
}

// Release drops the handle's reference to its backing store. Afterwards q is an
// empty queue, just like the zero value. Releasing an empty handle is a no-op.
func (q *Queue[T]) Release() {
	if q.store == nil {
		return
	}
	s := q.store
	q.store, q.detaches = nil, 0
	s.Lock()
	if s.Refs() > 0 { // an alias may have released s already
		s.Release()
	}
	s.Unlock()
}

// IsUniquelyOwned is true if q is the only handle referencing its backing store.
// An empty handle without a store is uniquely owned.
func (q *Queue[T]) IsUniquelyOwned() bool {
	if !q.attached() {
		return true
	}
	return q.store.Unique()
}

// Shares is true if q and other reference the same backing store.
func (q *Queue[T]) Shares(other *Queue[T]) bool {
	return q.attached() && q.store == other.store
}

// Refs returns the number of handles sharing q's backing store.
func (q *Queue[T]) Refs() int {
	if !q.attached() {
		return 1
	}
	return q.store.Refs()
}

// Detaches returns how often q had to clone its backing store.
// A new copy of a queue starts with zero detaches.
func (q *Queue[T]) Detaches() int {
	return q.detaches
}

// --- Mutation --------------------------------------------------------------

// Enqueue adds item at the tail of the queue. Other handles never observe item.
func (q *Queue[T]) Enqueue(item T) {
	s := q.ensureUnique()
	s.Append(item)
	s.Unlock()
}

// Dequeue removes and returns the head element, or Nothing if the queue is empty.
func (q *Queue[T]) Dequeue() maybe.Maybe[T] {
	s := q.ensureUnique()
	item, ok := s.PopFront()
	s.Unlock()
	return maybe.Of(item, ok)
}

// DequeueIf removes and returns the head element if it satisfies pred. Otherwise
// the queue is left untouched and Nothing is returned; in particular, q does not
// detach from a shared store.
func (q *Queue[T]) DequeueIf(pred func(T) bool) maybe.Maybe[T] {
	return maybe.AndThen(func(head T) maybe.Maybe[T] {
		if !pred(head) {
			return maybe.Nothing[T]()
		}
		return q.Dequeue()
	}, q.Peek())
}

// ensureUnique returns q's backing store, locked, after making sure that no other
// handle references it. Callers have to call Unlock on the returned store.
func (q *Queue[T]) ensureUnique() *store.Store[T] {
	s := q.backing()
	s.Lock()
	if s.Unique() {
		return s
	}
	dup := s.Duplicate()
	remaining := s.Release()
	s.Unlock()
	tracer().Debugf("detached from shared store %p (%d refs left) into store %p", s, remaining, dup)
	q.store = dup
	q.detaches++
	dup.Lock()
	return dup
}

// attached is false for the zero value and for an alias of a released handle.
func (q *Queue[T]) attached() bool {
	return q.store != nil && q.store.Refs() > 0
}

// backing returns q's store, creating one if q is not attached to a live store.
func (q *Queue[T]) backing() *store.Store[T] {
	if !q.attached() {
		q.store = store.New[T](q.opts...)
	}
	return q.store
}

// --- Inspection ------------------------------------------------------------

// Count returns the number of elements in the queue.
func (q *Queue[T]) Count() int {
	if q.store == nil {
		return 0
	}
	q.store.Lock()
	defer q.store.Unlock()
	return q.store.Count()
}

// Peek returns the head element without removing it, or Nothing if the queue is empty.
func (q *Queue[T]) Peek() maybe.Maybe[T] {
	if q.store == nil {
		return maybe.Nothing[T]()
	}
	q.store.Lock()
	item, ok := q.store.Front()
	q.store.Unlock()
	return maybe.Of(item, ok)
}

// Slice returns a copy of the queue's elements, head first.
func (q *Queue[T]) Slice() []T {
	if q.store == nil {
		return []T{}
	}
	q.store.Lock()
	defer q.store.Unlock()
	return q.store.Items()
}

func (q *Queue[T]) String() string {
	if q.store == nil {
		return "Queue[]"
	}
	q.store.Lock()
	defer q.store.Unlock()
	return fmt.Sprintf("Queue%s", q.store)
}
