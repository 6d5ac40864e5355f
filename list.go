/*
Package forwardlist implements a generic singly linked list with a sentinel
head, forward iterators and constant-time splicing after a known position.
*/
package forwardlist

import "iter"

// node is a link cell in the chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list.
//
// The zero value is a ready to use empty list.
//
// A List must not be copied after first use: the before-begin position
// refers into the List itself.
type List[T any] struct {
	head node[T] // sentinel, its value is never observed
	len  int
}

// New creates a list holding values in the given order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	pos := l.BeforeBegin()
	for _, v := range values {
		pos = l.InsertAfter(pos, v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Begin returns an iterator to the first element.
// When the list is empty, it equals End.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l.head.next}
}

// End returns the past-the-end iterator.
// All end iterators compare equal, across lists and across mutations.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns the position in front of the first element. It must
// not be dereferenced; it exists as the anchor for inserting or erasing at
// the head through InsertAfter and EraseAfter. The position refers into the
// List itself and does not follow the contents across Swap.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{&l.head}
}

// CBegin returns a read-only iterator to the first element.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{l.head.next}
}

// CEnd returns the read-only past-the-end iterator.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// CBeforeBegin returns the read-only position in front of the first element.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{&l.head}
}

// PushFront inserts v as the new first element.
func (l *List[T]) PushFront(v T) {
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.len++
}

// PopFront removes the first element. On an empty list it is a no-op.
func (l *List[T]) PopFront() {
	if l.head.next == nil {
		return
	}
	l.head.next = l.head.next.next
	l.len--
}

// InsertAfter inserts v after pos and returns an iterator to the new
// element. pos must address an element of l or be its BeforeBegin position.
// Iterators to other elements remain valid.
func (l *List[T]) InsertAfter(pos Iterator[T], v T) Iterator[T] {
	if pos.n == nil {
		panic("forwardlist: InsertAfter on end iterator")
	}
	pos.n.next = &node[T]{value: v, next: pos.n.next}
	l.len++
	return Iterator[T]{pos.n.next}
}

// EraseAfter removes the successor of pos and returns an iterator to the
// element after the removed one, possibly End. pos must address an element
// of l or be its BeforeBegin position, and must have a successor. Only
// iterators to the removed element are invalidated.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if pos.n == nil {
		panic("forwardlist: EraseAfter on end iterator")
	}
	if pos.n.next == nil {
		panic("forwardlist: EraseAfter at the last element")
	}
	pos.n.next = pos.n.next.next
	l.len--
	return Iterator[T]{pos.n.next}
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.head.next = nil
	l.len = 0
}

// Swap exchanges the contents of l and other in constant time. Iterators
// keep addressing their nodes and therefore follow the contents into the
// other list. The BeforeBegin positions of both lists stay with their
// original List values.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.len, other.len = other.len, l.len
}

// Clone returns a deep copy of l preserving element order.
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{}
	pos := out.BeforeBegin()
	for n := l.head.next; n != nil; n = n.next {
		pos = out.InsertAfter(pos, n.value)
	}
	return out
}

// Assign replaces the contents of l with a copy of other. The copy is built
// detached and swapped in, so l keeps its old contents until the copy is
// complete. Assigning a list to itself leaves it unchanged.
func (l *List[T]) Assign(other *List[T]) {
	tmp := other.Clone()
	l.Swap(tmp)
}

// Do calls f with a pointer to each element, in forward order.
// If f returns false, Do stops the iteration.
// f may mutate the element but must not mutate l.
func (l *List[T]) Do(f func(v *T) bool) {
	for n := l.head.next; n != nil; n = n.next {
		if !f(&n.value) {
			return
		}
	}
}

// All returns an iterator over the element values in forward order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements as a slice in forward order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.len)
	for n := l.head.next; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
