// Package list implements a persistent list.
//
// This is a generic variant of the classical cons list found in Lisp and
// Clojure. Being a persistent data structure, it is immutable; prepending a
// value is an O(1) operation that shares the entire existing list as the tail
// of the new one, making it suitable for concurrent access.
package list

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yangjack1998/exercises-stdlib/pkg/errs"
)

// ErrEmptyList is returned by operations that need at least one element when
// called on the empty list.
var ErrEmptyList = errors.New("empty list")

// List is a persistent list of values of type T. A *List is never mutated
// after construction; the nil pointer is the canonical empty list. All
// methods are valid on the nil pointer.
//
// Pointer comparison with == tests identity, i.e. whether two values are the
// same underlying list. Use Equal or EqualFunc for element-wise equality.
type List[T any] struct {
	first T
	rest  *List[T]
	count int
}

// Empty returns the empty list.
func Empty[T any]() *List[T] {
	return nil
}

// New returns a list containing the given values, in order.
func New[T any](vs ...T) *List[T] {
	var l *List[T]
	for i := len(vs) - 1; i >= 0; i-- {
		l = l.Cons(vs[i])
	}
	return l
}

// Range returns the list of consecutive integers from lo to hi, inclusive. It
// returns the empty list if lo > hi.
func Range(lo, hi int) *List[int] {
	var l *List[int]
	for i := hi; i >= lo; i-- {
		l = l.Cons(i)
	}
	return l
}

// Len returns the number of values in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// IsEmpty reports whether the list is empty.
func (l *List[T]) IsEmpty() bool {
	return l == nil
}

// Cons returns a new list with an additional value in the front. The new list
// shares l as its tail; no node of l is copied.
func (l *List[T]) Cons(v T) *List[T] {
	return &List[T]{v, l, l.Len() + 1}
}

// First returns the first value in the list. It returns ErrEmptyList if the
// list is empty.
func (l *List[T]) First() (T, error) {
	if l == nil {
		var zero T
		return zero, ErrEmptyList
	}
	return l.first, nil
}

// Rest returns the list after the first value. The returned list is the same
// list that was prepended to, not a copy. It returns ErrEmptyList if the list
// is empty.
func (l *List[T]) Rest() (*List[T], error) {
	if l == nil {
		return nil, ErrEmptyList
	}
	return l.rest, nil
}

// Peek returns the first value in the list, if it exists. The second return
// value indicates whether the list is non-empty.
func (l *List[T]) Peek() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.first, true
}

// Index returns the i-th value of the list, counting from 0. It returns an
// errs.OutOfRange error if i is negative or not smaller than the length.
func (l *List[T]) Index(i int) (T, error) {
	if i < 0 || i >= l.Len() {
		var zero T
		return zero, errs.OutOfRange{
			What: "index", ValidLow: 0, ValidHigh: l.Len() - 1, Actual: i}
	}
	p := l
	for ; i > 0; i-- {
		p = p.rest
	}
	return p.first, nil
}

// Reverse returns a new list with the values in reverse order. The returned
// list shares no node with l.
func (l *List[T]) Reverse() *List[T] {
	var r *List[T]
	for p := l; p != nil; p = p.rest {
		r = r.Cons(p.first)
	}
	return r
}

// Filter returns a new list containing the values for which p returns true,
// in the original order.
func (l *List[T]) Filter(p func(T) bool) *List[T] {
	var r *List[T]
	for q := l; q != nil; q = q.rest {
		if p(q.first) {
			r = r.Cons(q.first)
		}
	}
	return r.Reverse()
}

// FilterNot returns a new list containing the values for which p returns
// false, in the original order.
func (l *List[T]) FilterNot(p func(T) bool) *List[T] {
	return l.Filter(func(v T) bool { return !p(v) })
}

// Take returns the list of the first n values. It returns l itself if n is
// not smaller than the length, and the empty list if n <= 0.
func (l *List[T]) Take(n int) *List[T] {
	if n >= l.Len() {
		return l
	}
	if n <= 0 {
		return nil
	}
	var r *List[T]
	q := l
	for i := 0; i < n; i++ {
		r = r.Cons(q.first)
		q = q.rest
	}
	return r.Reverse()
}

// Drop returns the list without the first n values. The returned list is a
// shared suffix of l, not a copy. It returns l itself if n <= 0, and the
// empty list if n is not smaller than the length.
func (l *List[T]) Drop(n int) *List[T] {
	q := l
	for i := 0; i < n && q != nil; i++ {
		q = q.rest
	}
	return q
}

// Slice returns the values of the list, in order, as a slice.
func (l *List[T]) Slice() []T {
	vs := make([]T, 0, l.Len())
	for p := l; p != nil; p = p.rest {
		vs = append(vs, p.first)
	}
	return vs
}

// String returns a representation of the list like "[1 2 3]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for p := l; p != nil; p = p.rest {
		if p != l {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, p.first)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Map returns a new list with f applied to each value, in the original order.
func Map[T, U any](l *List[T], f func(T) U) *List[U] {
	var r *List[U]
	for p := l; p != nil; p = p.rest {
		r = r.Cons(f(p.first))
	}
	return r.Reverse()
}

// Fold combines the values of the list from left to right, starting with acc:
// f(f(f(acc, x1), x2), x3) and so on. It returns acc for the empty list.
func Fold[T, A any](l *List[T], acc A, f func(A, T) A) A {
	for p := l; p != nil; p = p.rest {
		acc = f(acc, p.first)
	}
	return acc
}

// Reduce combines the values of the list from left to right, using the first
// value as the initial accumulator: f(f(x1, x2), x3) and so on. It returns
// ErrEmptyList if the list is empty.
func Reduce[T any](l *List[T], f func(T, T) T) (T, error) {
	if l == nil {
		var zero T
		return zero, ErrEmptyList
	}
	acc := l.first
	for p := l.rest; p != nil; p = p.rest {
		acc = f(acc, p.first)
	}
	return acc, nil
}

// Concat returns the list of the values of a followed by the values of b. The
// returned list shares b as its suffix; if either operand is empty, the other
// operand is returned as is.
func Concat[T any](a, b *List[T]) *List[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	r := b
	for p := a.Reverse(); p != nil; p = p.rest {
		r = r.Cons(p.first)
	}
	return r
}

// Equal reports whether a and b have the same length and equal values at
// every position.
func Equal[T comparable](a, b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for a != nil {
		if a.first != b.first {
			return false
		}
		a, b = a.rest, b.rest
	}
	return true
}

// EqualFunc is like Equal, but compares values with eq, allowing the two
// lists to have different value types.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for a != nil {
		if !eq(a.first, b.first) {
			return false
		}
		a, b = a.rest, b.rest
	}
	return true
}
