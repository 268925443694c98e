package observable

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Container is the capability set a Collection requires from its backing
// container. C is the implementing type itself, so Clone and Equal can be
// expressed without loss of type.
//
// Containers have reference semantics: Clone is the only way to obtain an
// independent copy, and mutations through any copy of the handle are visible
// through all of them.
type Container[T any, C any] interface {
	// Insert adds value per the container's own rules and reports whether
	// membership actually changed. The returned element is the stored
	// instance.
	Insert(value T) (T, bool)

	// Remove erases one element equal to value and reports whether an
	// element was actually erased. The returned element is read from the
	// container before its storage is released.
	Remove(value T) (T, bool)

	// Contains reports membership.
	Contains(value T) bool

	// Len returns the number of stored elements.
	Len() int

	// Values returns the stored elements. Order follows the container's own
	// iteration order.
	Values() []T

	// Clone returns an independent copy.
	Clone() C

	// Equal reports whether both containers hold equal contents.
	Equal(other C) bool
}

// Set is a hash-set container: duplicate inserts are rejected. It is the
// default container for collections. Set is not safe for concurrent use.
type Set[T comparable] struct {
	items mapset.Set[T]
}

// NewSet creates a set holding items. The zero value of Set is not usable;
// always construct through NewSet.
func NewSet[T comparable](items ...T) Set[T] {
	return Set[T]{items: mapset.NewThreadUnsafeSet(items...)}
}

// Insert adds value, rejecting duplicates.
func (s Set[T]) Insert(value T) (T, bool) {
	return value, s.items.Add(value)
}

// Remove erases value if present.
func (s Set[T]) Remove(value T) (T, bool) {
	if !s.items.ContainsOne(value) {
		var zero T
		return zero, false
	}
	s.items.Remove(value)
	return value, true
}

// Contains reports membership.
func (s Set[T]) Contains(value T) bool {
	return s.items.ContainsOne(value)
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return s.items.Cardinality()
}

// Values returns the elements in unspecified order.
func (s Set[T]) Values() []T {
	return s.items.ToSlice()
}

// Clone returns an independent copy.
func (s Set[T]) Clone() Set[T] {
	return Set[T]{items: s.items.Clone()}
}

// Equal reports whether both sets hold the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	return s.items.Equal(other.items)
}

// List is a slice-backed container with list semantics: Insert always
// appends (duplicates allowed) and Remove erases the first equal element.
type List[T comparable] struct {
	items *[]T
}

// NewList creates a list holding items in order. The zero value of List is
// not usable; always construct through NewList.
func NewList[T comparable](items ...T) List[T] {
	stored := append([]T(nil), items...)
	return List[T]{items: &stored}
}

// Insert appends value. List inserts always change the container.
func (l List[T]) Insert(value T) (T, bool) {
	*l.items = append(*l.items, value)
	return value, true
}

// Remove erases the first element equal to value. The element is read out
// before the slice is shrunk.
func (l List[T]) Remove(value T) (T, bool) {
	items := *l.items
	for i, item := range items {
		if item == value {
			removed := item
			*l.items = append(items[:i], items[i+1:]...)
			return removed, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether any element equals value.
func (l List[T]) Contains(value T) bool {
	for _, item := range *l.items {
		if item == value {
			return true
		}
	}
	return false
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return len(*l.items)
}

// Values returns the elements in list order.
func (l List[T]) Values() []T {
	return append([]T(nil), *l.items...)
}

// Clone returns an independent copy.
func (l List[T]) Clone() List[T] {
	stored := append([]T(nil), *l.items...)
	return List[T]{items: &stored}
}

// Equal reports whether both lists hold equal elements in the same order.
func (l List[T]) Equal(other List[T]) bool {
	a, b := *l.items, *other.items
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
