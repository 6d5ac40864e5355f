package forwardlist

import "cmp"

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual reports whether a and b differ in length or in any element.
func NotEqual[T comparable](a, b *List[T]) bool {
	return !Equal(a, b)
}

// EqualFunc reports whether a and b hold pairwise equal elements in the
// same order, using eq to compare elements.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.len != b.len {
		return false
	}
	bn := b.head.next
	for an := a.head.next; an != nil; an = an.next {
		if !eq(an.value, bn.value) {
			return false
		}
		bn = bn.next
	}
	return true
}

// Compare compares a and b lexicographically, element by element. The
// result is 0 when the lists are equal, -1 when a sorts before b and +1
// when a sorts after b. A proper prefix sorts before its extension; the
// empty list sorts before any non-empty list.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare using the given element comparison, which must
// return a negative number, zero or a positive number in the usual way.
func CompareFunc[T any](a, b *List[T], compare func(x, y T) int) int {
	an, bn := a.head.next, b.head.next
	for an != nil && bn != nil {
		if c := compare(an.value, bn.value); c != 0 {
			return c
		}
		an, bn = an.next, bn.next
	}
	switch {
	case an != nil:
		return 1
	case bn != nil:
		return -1
	default:
		return 0
	}
}

// Less reports whether a sorts before b in lexicographic order.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a sorts before b or equals it.
func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) <= 0
}

// Greater reports whether a sorts after b in lexicographic order.
func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) > 0
}

// GreaterOrEqual reports whether a sorts after b or equals it.
func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) >= 0
}
