package observable

import "github.com/pkg/errors"

// Collection is an observable container. It is a Value whose payload is a
// container of elements, extended with an element-level notification stream
// that distinguishes insertion from removal.
//
// Element-level events fire only for Insert, Emplace and Remove. Replacing
// the whole container through Set fires only the inherited whole-value
// streams.
type Collection[T any, C Container[T, C]] struct {
	Value[C]
	changes Subject[func(T, bool)]
}

// NewCollection creates a collection backed by container. Change detection
// for whole-container Set calls uses the container's Equal.
func NewCollection[T any, C Container[T, C]](container C) *Collection[T, C] {
	c := &Collection[T, C]{}
	c.value = container
	c.equal = func(a, b C) bool { return a.Equal(b) }
	return c
}

// NewReadOnlyCollection creates a collection driven by updater. Direct
// mutation through Set, Insert, Emplace or Remove fails with
// ErrReadOnlyValue; the owner refreshes the container with Refresh.
func NewReadOnlyCollection[T any, C Container[T, C]](updater func() C) *Collection[T, C] {
	c := &Collection[T, C]{}
	c.value = updater()
	c.equal = func(a, b C) bool { return a.Equal(b) }
	c.updater = updater
	return c
}

// NewSetCollection creates a collection backed by the default hash-set
// container, holding items.
func NewSetCollection[T comparable](items ...T) *Collection[T, Set[T]] {
	return NewCollection[T](NewSet(items...))
}

// NewListCollection creates a collection backed by a list container, holding
// items in order.
func NewListCollection[T comparable](items ...T) *Collection[T, List[T]] {
	return NewCollection[T](NewList(items...))
}

// SubscribeChanges registers an observer on the element-level stream. The
// callback receives the affected element and true for an insertion, false
// for a removal.
func (c *Collection[T, C]) SubscribeChanges(fn func(element T, inserted bool)) *Subscription {
	return c.changes.Subscribe(fn)
}

// Insert adds value per the container's own rules and reports whether
// membership changed. On a change the element-level stream fires first,
// then every whole-value stream; a rejected insert fires nothing.
func (c *Collection[T, C]) Insert(value T) (bool, error) {
	if c.ReadOnly() {
		return false, errors.WithMessage(ErrReadOnlyValue, "insert")
	}
	old, haveOld := c.snapshotForUpdates()
	elem, inserted := c.value.Insert(value)
	if !inserted {
		return false, nil
	}
	c.changes.Notify(func(fn func(T, bool)) { fn(elem, true) })
	c.notifyContainer(old, haveOld)
	return true, nil
}

// Emplace adds value with the same semantics and notification contract as
// Insert. It exists for API parity with insert-by-construction interfaces;
// the two operations are equivalent here.
func (c *Collection[T, C]) Emplace(value T) (bool, error) {
	if c.ReadOnly() {
		return false, errors.WithMessage(ErrReadOnlyValue, "emplace")
	}
	return c.Insert(value)
}

// Remove erases one element equal to value and reports whether an element
// was actually erased. The removed element is read from the container before
// its storage is released, so the element-level callback sees a valid value.
// A miss fires nothing.
func (c *Collection[T, C]) Remove(value T) (bool, error) {
	if c.ReadOnly() {
		return false, errors.WithMessage(ErrReadOnlyValue, "remove")
	}
	old, haveOld := c.snapshotForUpdates()
	elem, removed := c.value.Remove(value)
	if !removed {
		return false, nil
	}
	c.changes.Notify(func(fn func(T, bool)) { fn(elem, false) })
	c.notifyContainer(old, haveOld)
	return true, nil
}

// snapshotForUpdates clones the container only when the old-and-new stream
// has subscribers; mutation is in place, so the previous contents are gone
// once the container changes.
func (c *Collection[T, C]) snapshotForUpdates() (C, bool) {
	if c.updates.Len() == 0 {
		var zero C
		return zero, false
	}
	return c.value.Clone(), true
}

func (c *Collection[T, C]) notifyContainer(old C, haveOld bool) {
	c.void.Notify(func(fn func()) { fn() })
	c.values.Notify(func(fn func(C)) { fn(c.value) })
	if haveOld {
		c.updates.Notify(func(fn func(C, C)) { fn(old, c.value) })
	}
}
