package Lists

import "slices"

// Vector is a growable array. Methods taking an index report false instead
// of panicking when it is out of range.
type Vector[T comparable] struct {
	content []T
}

// NewVector returns an empty Vector with room for hint elements before
// growing.
func NewVector[T comparable](hint uint) *Vector[T] {
	return &Vector[T]{make([]T, 0, hint)}
}

// Append v at the end.
func (u *Vector[T]) Append(v T) {
	u.content = append(u.content, v)
}

// Get the value at index i.
func (u *Vector[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(u.content) {
		return *new(T), false
	}
	return u.content[i], true
}

// Set the value at index i.
func (u *Vector[T]) Set(i int, v T) bool {
	if i < 0 || i >= len(u.content) {
		return false
	}
	u.content[i] = v
	return true
}

// InsertAt shifts everything from index i up by one and puts v there.
// i == Size appends.
// Time: O(n)
func (u *Vector[T]) InsertAt(i int, v T) bool {
	if i < 0 || i > len(u.content) {
		return false
	}
	u.content = append(u.content, *new(T))
	copy(u.content[i+1:], u.content[i:])
	u.content[i] = v
	return true
}

// RemoveAt removes and returns the value at index i, shifting the rest
// down.
// Time: O(n)
func (u *Vector[T]) RemoveAt(i int) (T, bool) {
	if i < 0 || i >= len(u.content) {
		return *new(T), false
	}
	v := u.content[i]
	last := len(u.content) - 1
	copy(u.content[i:], u.content[i+1:])
	u.content[last] = *new(T)
	u.content = u.content[:last]
	return v, true
}

// Remove the first occurrence of v. Returning false if v isn't present.
// Time: O(n)
func (u *Vector[T]) Remove(v T) bool {
	if i := u.IndexOf(v); i >= 0 {
		u.RemoveAt(i)
		return true
	}
	return false
}

// IndexOf the first occurrence of v, -1 if v isn't present.
// Time: O(n)
func (u *Vector[T]) IndexOf(v T) int {
	return slices.Index(u.content, v)
}

// Has reports whether v is in the vector.
// Time: O(n)
func (u *Vector[T]) Has(v T) bool {
	return u.IndexOf(v) >= 0
}

// Values copies the vector into a new slice.
func (u *Vector[T]) Values() []T {
	return slices.Clone(u.content)
}

// Size of the vector.
func (u *Vector[T]) Size() uint {
	return uint(len(u.content))
}
