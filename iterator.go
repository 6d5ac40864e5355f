package forwardlist

// Iterator is a forward iterator over a List that permits mutating the
// element it addresses.
//
// The zero Iterator is the end iterator. Iterators are small values and are
// advanced by reassignment:
//
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//
// Two Iterators of the same element type are comparable with ==; they are
// equal when they address the same node. An Iterator stays valid until the
// node it addresses is erased; mutating other parts of the list does not
// disturb it.
type Iterator[T any] struct {
	n *node[T]
}

// Const converts the iterator to a read-only iterator addressing the same
// node. There is no conversion back.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it.n}
}

// Equal reports whether it and rhs address the same node, regardless of
// iterator mutability.
func (it Iterator[T]) Equal(rhs ConstIterator[T]) bool {
	return it.n == rhs.n
}

// Next returns an iterator to the successor. Advancing from the last
// element yields the end iterator. Next panics on the end iterator.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		panic("forwardlist: Next on end iterator")
	}
	return Iterator[T]{it.n.next}
}

// Value returns the element the iterator addresses.
// It panics on the end iterator.
func (it Iterator[T]) Value() T {
	if it.n == nil {
		panic("forwardlist: Value on end iterator")
	}
	return it.n.value
}

// Ref returns a pointer to the element, valid until the node is erased.
// It panics on the end iterator.
func (it Iterator[T]) Ref() *T {
	if it.n == nil {
		panic("forwardlist: Ref on end iterator")
	}
	return &it.n.value
}

// Set replaces the element the iterator addresses.
// It panics on the end iterator.
func (it Iterator[T]) Set(v T) {
	if it.n == nil {
		panic("forwardlist: Set on end iterator")
	}
	it.n.value = v
}

// ConstIterator is a forward iterator over a List that provides read access
// to elements. It is obtained from the C-prefixed factory methods on List or
// by converting an Iterator with Const.
//
// The zero ConstIterator is the end iterator. Comparability and validity
// follow the same rules as Iterator.
type ConstIterator[T any] struct {
	n *node[T]
}

// Equal reports whether it and rhs address the same node.
func (it ConstIterator[T]) Equal(rhs ConstIterator[T]) bool {
	return it.n == rhs.n
}

// Next returns an iterator to the successor. Advancing from the last
// element yields the end iterator. Next panics on the end iterator.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	if it.n == nil {
		panic("forwardlist: Next on end iterator")
	}
	return ConstIterator[T]{it.n.next}
}

// Value returns the element the iterator addresses.
// It panics on the end iterator.
func (it ConstIterator[T]) Value() T {
	if it.n == nil {
		panic("forwardlist: Value on end iterator")
	}
	return it.n.value
}
