package core

import "fmt"

// List is an ordered sequence with a fixed capacity.
// Elements have no identity beyond their index. Removal shifts the tail left
// so relative order (and therefore draw order) is preserved.
type List[T any] struct {
	items   []T
	dropped int
}

// NewList creates an empty list that holds at most capacity elements.
func NewList[T any](capacity int) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{items: make([]T, 0, capacity)}
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Cap returns the maximum number of elements.
func (l *List[T]) Cap() int {
	return cap(l.items)
}

// Full reports whether another Add would be dropped.
func (l *List[T]) Full() bool {
	return len(l.items) == cap(l.items)
}

// Add appends item at the end.
// If the list is full the item is dropped, the drop counter is incremented
// and false is returned.
func (l *List[T]) Add(item T) bool {
	if l.Full() {
		l.dropped++
		return false
	}
	l.items = append(l.items, item)
	return true
}

// Remove deletes the element at index, shifting every later element down by one.
// Panics if index is out of range.
func (l *List[T]) Remove(index int) {
	if index < 0 || index >= len(l.items) {
		panic(fmt.Sprintf("core: remove index %d out of range [0,%d)", index, len(l.items)))
	}
	copy(l.items[index:], l.items[index+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
}

// At returns the element at index.
func (l *List[T]) At(index int) T {
	return l.items[index]
}

// Ref returns a pointer to the element at index for in-place updates.
// The pointer is invalidated by the next Remove.
func (l *List[T]) Ref(index int) *T {
	return &l.items[index]
}

// Dropped returns how many Add calls were rejected because the list was full.
func (l *List[T]) Dropped() int {
	return l.dropped
}

// Reset removes all elements. The drop counter is kept.
func (l *List[T]) Reset() {
	clear(l.items)
	l.items = l.items[:0]
}
