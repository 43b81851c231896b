// Package buffer provides a generic growable sequence container with stable
// iteration order.
//
// A Buffer is a thin, value-semantics wrapper around a slice. It exists so
// that code needing an ordered, duplicate-preserving queue (such as the
// multicast queue in package delegate) depends on a named container surface
// rather than on raw slice plumbing. The zero value is an empty buffer ready
// for use.
//
// Buffers are not safe for concurrent use.
package buffer

import "slices"

// Buffer is a growable array of T. Elements keep their insertion positions
// until explicitly moved or removed.
type Buffer[T any] struct {
	data []T
}

// New returns an empty buffer.
func New[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// WithCapacity returns an empty buffer with room for capacity elements
// before the next growth.
func WithCapacity[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		panic("buffer: negative capacity")
	}
	return &Buffer[T]{data: make([]T, 0, capacity)}
}

// Of returns a buffer holding the given items in order.
func Of[T any](items ...T) *Buffer[T] {
	b := WithCapacity[T](len(items))
	b.data = append(b.data, items...)
	return b
}

// Len returns the number of stored elements.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Cap returns the current capacity.
func (b *Buffer[T]) Cap() int { return cap(b.data) }

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool { return len(b.data) == 0 }

// At returns the element at index i. Panics if i is out of range.
func (b *Buffer[T]) At(i int) T {
	b.check(i)
	return b.data[i]
}

// Set replaces the element at index i. Panics if i is out of range.
func (b *Buffer[T]) Set(i int, v T) {
	b.check(i)
	b.data[i] = v
}

// Append adds items to the end of the buffer.
func (b *Buffer[T]) Append(items ...T) {
	b.data = append(b.data, items...)
}

// Insert places v at index i, shifting later elements right.
// i == Len() appends. Panics if i is otherwise out of range.
func (b *Buffer[T]) Insert(i int, v T) {
	if i < 0 || i > len(b.data) {
		panic("buffer: index out of range")
	}
	b.data = slices.Insert(b.data, i, v)
}

// RemoveAt removes and returns the element at index i, shifting later
// elements left. Panics if i is out of range.
func (b *Buffer[T]) RemoveAt(i int) T {
	b.check(i)
	v := b.data[i]
	b.data = slices.Delete(b.data, i, i+1)
	return v
}

// IndexFunc returns the index of the first element satisfying pred,
// or -1 if none does.
func (b *Buffer[T]) IndexFunc(pred func(T) bool) int {
	return slices.IndexFunc(b.data, pred)
}

// Reserve grows the capacity to at least n without changing the length.
func (b *Buffer[T]) Reserve(n int) {
	if n < 0 {
		panic("buffer: negative capacity")
	}
	if n <= cap(b.data) {
		return
	}
	b.data = slices.Grow(b.data, n-len(b.data))
}

// Clear removes all elements, keeping the allocated capacity.
func (b *Buffer[T]) Clear() {
	clear(b.data)
	b.data = b.data[:0]
}

// Items returns the underlying slice. The view is borrowed: it stays valid
// only until the next mutating call, and writing through it writes into the
// buffer.
func (b *Buffer[T]) Items() []T { return b.data }

// Clone returns a buffer with a copy of the elements.
func (b *Buffer[T]) Clone() *Buffer[T] {
	return &Buffer[T]{data: slices.Clone(b.data)}
}

// EqualFunc reports whether both buffers hold equal elements in the same
// order, compared with eq.
func (b *Buffer[T]) EqualFunc(o *Buffer[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(b.data, o.data, eq)
}

func (b *Buffer[T]) check(i int) {
	if i < 0 || i >= len(b.data) {
		panic("buffer: index out of range")
	}
}
