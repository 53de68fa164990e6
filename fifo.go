package cow

import "github.com/npillmayer/cow/maybe"

// FIFO is the capability of a first-in first-out queue of elements of type T.
type FIFO[T any] interface {
	Enqueue(T)
	Dequeue() maybe.Maybe[T]
	Count() int
}

// EnqueueAll enqueues items in order.
func EnqueueAll[T any](q FIFO[T], items ...T) {
	for _, item := range items {
		q.Enqueue(item)
	}
}

// Drain dequeues all elements of q and returns them in FIFO order.
func Drain[T any](q FIFO[T]) []T {
	items := make([]T, 0, q.Count())
	for {
		item, ok := q.Dequeue().Get()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}

// --- Generic ---------------------------------------------------------------

// Generic is a plain slice-backed queue. It has reference semantics: struct
// copies of a Generic share (and corrupt) each other's elements. Use package
// queue for queues which are safe to copy.
type Generic[T any] struct {
	items []T
}

// Enqueue adds item at the tail.
func (g *Generic[T]) Enqueue(item T) {
	g.items = append(g.items, item)
}

// Dequeue removes the head element, if any.
func (g *Generic[T]) Dequeue() maybe.Maybe[T] {
	if len(g.items) == 0 {
		return maybe.Nothing[T]()
	}
	item := g.items[0]
	var zero T
	g.items[0] = zero
	g.items = g.items[1:]
	return maybe.Just(item)
}

// Count returns the number of elements.
func (g *Generic[T]) Count() int {
	return len(g.items)
}

// --- IntQueue --------------------------------------------------------------

// IntQueue is a queue of integers.
type IntQueue struct {
	ints []int
}

// Enqueue adds n at the tail.
func (q *IntQueue) Enqueue(n int) {
	q.ints = append(q.ints, n)
}

// Dequeue removes the head integer, if any.
func (q *IntQueue) Dequeue() maybe.Maybe[int] {
	if len(q.ints) == 0 {
		return maybe.Nothing[int]()
	}
	n := q.ints[0]
	q.ints = q.ints[1:]
	return maybe.Just(n)
}

// Count returns the number of integers.
func (q *IntQueue) Count() int {
	return len(q.ints)
}

// Sum returns the sum of all integers in the queue.
func (q *IntQueue) Sum() int {
	sum := 0
	for _, n := range q.ints {
		sum += n
	}
	return sum
}

// --- Funcs -----------------------------------------------------------------

// Funcs adapts three functions to a FIFO. It erases the type of whatever queue
// the functions operate on:
//
//     var q cow.FIFO[string] = cow.Funcs[string]{
//         EnqueueFunc: func(s string) { ch <- s },
//         …
//     }
//
// A nil function behaves like an empty queue which drops all elements.
type Funcs[T any] struct {
	EnqueueFunc func(T)
	DequeueFunc func() maybe.Maybe[T]
	CountFunc   func() int
}

// Enqueue calls EnqueueFunc.
func (f Funcs[T]) Enqueue(item T) {
	if f.EnqueueFunc != nil {
		f.EnqueueFunc(item)
	}
}

// Dequeue calls DequeueFunc, or returns Nothing if it is nil.
func (f Funcs[T]) Dequeue() maybe.Maybe[T] {
	if f.DequeueFunc == nil {
		return maybe.Nothing[T]()
	}
	return f.DequeueFunc()
}

// Count calls CountFunc, or returns 0 if it is nil.
func (f Funcs[T]) Count() int {
	if f.CountFunc == nil {
		return 0
	}
	return f.CountFunc()
}

// Erase wraps q into Funcs, hiding its concrete type.
func Erase[T any](q FIFO[T]) Funcs[T] {
	return Funcs[T]{
		EnqueueFunc: q.Enqueue,
		DequeueFunc: q.Dequeue,
		CountFunc:   q.Count,
	}
}

var _ FIFO[int] = &Generic[int]{}
var _ FIFO[int] = &IntQueue{}
var _ FIFO[int] = Funcs[int]{}
