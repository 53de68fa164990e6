package store

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/cow/refcount"
)

// compactThreshold is the minimum number of dead slots at the front of a store
// before storage gets compacted.
const compactThreshold = 16

// Store is a shared FIFO container. Create stores with New; a Store must not be
// copied.
type Store[T any] struct {
	props
	mu    sync.Mutex
	refs  refcount.Count
	items []T // items[head:] are live
	head  int
}

type props struct {
	capacity     int
	synchronized bool
}

// Option is a type to help initializing stores at creation time.
type Option func(props) props

// Capacity is an option to pre-allocate space for n elements. Values n ≤ 0 are ignored.
// Duplicates of a store inherit the capacity hint.
func Capacity(n int) Option {
	return func(p props) props {
		if n > 0 {
			p.capacity = n
		}
		return p
	}
}

// Synchronized is an option to make Lock and Unlock guard the store with a mutex.
// Without it, stores assume that handles sharing them are used from a single
// goroutine, and Lock/Unlock do nothing.
// Duplicates of a store inherit this policy.
func Synchronized() Option {
	return func(p props) props {
		p.synchronized = true
		return p
	}
}

// New creates an empty store, referenced by a single owner.
func New[T any](opts ...Option) *Store[T] {
	var p props
	for _, option := range opts {
		p = option(p)
	}
	return newStore[T](p, p.capacity)
}

func newStore[T any](p props, size int) *Store[T] {
	s := &Store[T]{props: p}
	if size > 0 {
		s.items = make([]T, 0, size)
	}
	s.refs.Retain()
	return s
}

// --- API -------------------------------------------------------------------

// Append adds item at the tail of the store.
func (s *Store[T]) Append(item T) {
	s.items = append(s.items, item)
}

// PopFront removes and returns the head element. If the store is empty, the zero
// value of T is returned together with false.
func (s *Store[T]) PopFront() (T, bool) {
	var zero T
	if s.head >= len(s.items) {
		return zero, false
	}
	item := s.items[s.head]
	s.items[s.head] = zero // do not retain popped elements
	s.head++
	switch {
	case s.head == len(s.items):
		s.items, s.head = s.items[:0], 0
	case s.head >= compactThreshold && 2*s.head >= len(s.items):
		s.compact()
	}
	return item, true
}

// Front returns the head element without removing it.
func (s *Store[T]) Front() (T, bool) {
	if s.head >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[s.head], true
}

// Count returns the number of elements currently held.
func (s *Store[T]) Count() int {
	return len(s.items) - s.head
}

// Items returns a copy of the elements in FIFO order.
func (s *Store[T]) Items() []T {
	items := make([]T, s.Count())
	copy(items, s.items[s.head:])
	return items
}

// Duplicate creates a new store holding the same elements in the same order.
// The new store shares no storage with s and is referenced by a single owner.
// It inherits the options of s.
func (s *Store[T]) Duplicate() *Store[T] {
	n := s.Count()
	dup := newStore[T](s.props, max(n, s.capacity))
	dup.items = dup.items[:n]
	copy(dup.items, s.items[s.head:])
	tracer().Debugf("duplicated store %p (%d items) into store %p", s, n, dup)
	return dup
}

// --- Ownership -------------------------------------------------------------

// Retain registers an additional owner of s and returns s.
func (s *Store[T]) Retain() *Store[T] {
	n := s.refs.Retain()
	assertThat(n > 1, "retain of reclaimed store %p", s)
	return s
}

// Release unregisters an owner of s and returns the number of remaining owners.
// When the last owner goes away, the element storage is dropped.
func (s *Store[T]) Release() int {
	n := s.refs.Release()
	if n == 0 {
		tracer().Debugf("reclaiming store %p", s)
		s.items, s.head = nil, 0
	}
	return int(n)
}

// Refs returns the number of owners currently referencing s.
func (s *Store[T]) Refs() int {
	return int(s.refs.Load())
}

// Unique is true if s is referenced by exactly one owner.
func (s *Store[T]) Unique() bool {
	return s.refs.Unique()
}

// IsSynchronized is true if s has been created with option Synchronized,
// or is a duplicate of such a store.
func (s *Store[T]) IsSynchronized() bool {
	return s.synchronized
}

// Lock locks the store if it is synchronized. Otherwise it is a no-op.
func (s *Store[T]) Lock() {
	if s.synchronized {
		s.mu.Lock()
	}
}

// Unlock unlocks the store if it is synchronized. Otherwise it is a no-op.
func (s *Store[T]) Unlock() {
	if s.synchronized {
		s.mu.Unlock()
	}
}

func (s *Store[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, item := range s.items[s.head:] {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", item))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func (s *Store[T]) compact() {
	n := copy(s.items, s.items[s.head:])
	var zero T
	for i := n; i < len(s.items); i++ {
		s.items[i] = zero
	}
	tracer().Debugf("compacted store %p, dropped %d dead slots", s, s.head)
	s.items, s.head = s.items[:n], 0
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("store: "+msg, msgargs...)
		panic(msg)
	}
}
