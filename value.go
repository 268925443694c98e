package observable

// EqualFunc compares two values for equality.
type EqualFunc[T any] func(a, b T) bool

// EqualComparable compares comparable values with ==.
func EqualComparable[T comparable](a, b T) bool {
	return a == b
}

// Subscribable emits change notifications on its no-argument stream. Value,
// Collection and Computed all satisfy it.
type Subscribable interface {
	Subscribe(fn func()) *Subscription
}

// Value holds one piece of state and notifies subscribers when it changes.
//
// A Value carries three independent notification streams, one per observer
// shape: no-argument, new-value, and old-and-new-value. Each stream fires in
// its own subscription order; no ordering is guaranteed across streams. A
// commit that leaves the value equal to its predecessor fires nothing.
//
// Values are used through pointers and must not be copied.
type Value[T any] struct {
	value   T
	equal   EqualFunc[T]
	updater func() T

	void    Subject[func()]
	values  Subject[func(T)]
	updates Subject[func(T, T)]
}

// NewValue creates a value holding initial, with == as the change test.
func NewValue[T comparable](initial T) *Value[T] {
	return &Value[T]{value: initial, equal: EqualComparable[T]}
}

// NewValueEqual creates a value holding initial with an explicit equality
// function. A nil equal disables change suppression: every Set commits and
// notifies.
func NewValueEqual[T any](initial T, equal EqualFunc[T]) *Value[T] {
	return &Value[T]{value: initial, equal: equal}
}

// NewReadOnlyValue creates a value driven by updater. The initial value is
// obtained by calling updater once. Direct Set calls fail with
// ErrReadOnlyValue; the owner refreshes the value with Refresh.
func NewReadOnlyValue[T comparable](updater func() T) *Value[T] {
	return &Value[T]{value: updater(), equal: EqualComparable[T], updater: updater}
}

// NewReadOnlyValueEqual is NewReadOnlyValue with an explicit equality
// function.
func NewReadOnlyValueEqual[T any](updater func() T, equal EqualFunc[T]) *Value[T] {
	return &Value[T]{value: updater(), equal: equal, updater: updater}
}

// Get returns the current value. It never mutates and never notifies.
func (v *Value[T]) Get() T {
	return v.value
}

// ReadOnly reports whether the value is driven by an updater.
func (v *Value[T]) ReadOnly() bool {
	return v.updater != nil
}

// Set replaces the stored value. It reports whether the value actually
// changed: setting an equal value is a no-op that fires no observers. On a
// read-only value Set fails with ErrReadOnlyValue and the state is left
// unchanged.
func (v *Value[T]) Set(value T) (bool, error) {
	if v.updater != nil {
		return false, ErrReadOnlyValue
	}
	return v.commit(value), nil
}

// Update replaces the value with fn(current) through the same commit path
// as Set.
func (v *Value[T]) Update(fn func(T) T) (bool, error) {
	if v.updater != nil {
		return false, ErrReadOnlyValue
	}
	if fn == nil {
		return false, nil
	}
	return v.commit(fn(v.value)), nil
}

// Refresh re-invokes the updater and commits its result, notifying
// subscribers if the value changed. It fails with ErrNoUpdater on a value
// that is not updater-driven.
func (v *Value[T]) Refresh() (bool, error) {
	if v.updater == nil {
		return false, ErrNoUpdater
	}
	return v.commit(v.updater()), nil
}

// Subscribe registers an observer on the no-argument stream.
func (v *Value[T]) Subscribe(fn func()) *Subscription {
	return v.void.Subscribe(fn)
}

// SubscribeAndCall registers an observer on the no-argument stream and
// invokes it once, synchronously, before returning.
func (v *Value[T]) SubscribeAndCall(fn func()) *Subscription {
	return v.void.SubscribeAndCall(fn, func(fn func()) { fn() })
}

// SubscribeValue registers an observer on the new-value stream.
func (v *Value[T]) SubscribeValue(fn func(T)) *Subscription {
	return v.values.Subscribe(fn)
}

// SubscribeValueAndCall registers an observer on the new-value stream and
// invokes it once with the current value before returning.
func (v *Value[T]) SubscribeValueAndCall(fn func(T)) *Subscription {
	return v.values.SubscribeAndCall(fn, func(fn func(T)) { fn(v.value) })
}

// SubscribeUpdate registers an observer on the old-and-new-value stream.
func (v *Value[T]) SubscribeUpdate(fn func(old, next T)) *Subscription {
	return v.updates.Subscribe(fn)
}

// SubscribeUpdateAndCall registers an observer on the old-and-new-value
// stream and invokes it once before returning, passing the current value as
// both arguments.
func (v *Value[T]) SubscribeUpdateAndCall(fn func(old, next T)) *Subscription {
	return v.updates.SubscribeAndCall(fn, func(fn func(T, T)) { fn(v.value, v.value) })
}

// commit is the single mutation point: equality check, store, notify.
func (v *Value[T]) commit(next T) bool {
	if v.equal != nil && v.equal(v.value, next) {
		return false
	}
	old := v.value
	v.value = next
	// Observers read the stored value at invoke time so a reentrant Set is
	// visible to the observers that follow it.
	v.void.Notify(func(fn func()) { fn() })
	v.values.Notify(func(fn func(T)) { fn(v.value) })
	v.updates.Notify(func(fn func(T, T)) { fn(old, v.value) })
	return true
}
