package observable

// Computed is a read-only value derived from other observables. It
// recomputes synchronously whenever one of its dependencies notifies, and
// notifies its own subscribers when the computed result actually changes.
type Computed[T any] struct {
	value *Value[T]
	subs  Subscriptions
}

// NewComputed creates a derived value from dependencies, with == as the
// change test. compute is invoked once for the initial value and again each
// time a dependency notifies.
func NewComputed[T comparable](compute func() T, deps ...Subscribable) *Computed[T] {
	return newComputed(NewReadOnlyValue(compute), deps)
}

// NewComputedEqual is NewComputed with an explicit equality function.
func NewComputedEqual[T any](compute func() T, equal EqualFunc[T], deps ...Subscribable) *Computed[T] {
	return newComputed(NewReadOnlyValueEqual(compute, equal), deps)
}

func newComputed[T any](value *Value[T], deps []Subscribable) *Computed[T] {
	c := &Computed[T]{value: value}
	for _, dep := range deps {
		if dep == nil {
			continue
		}
		c.subs.Add(dep.Subscribe(c.recompute))
	}
	return c
}

// Get returns the current computed value.
func (c *Computed[T]) Get() T {
	return c.value.Get()
}

// Subscribe registers an observer on the no-argument stream.
func (c *Computed[T]) Subscribe(fn func()) *Subscription {
	return c.value.Subscribe(fn)
}

// SubscribeAndCall registers a no-argument observer and invokes it once
// before returning.
func (c *Computed[T]) SubscribeAndCall(fn func()) *Subscription {
	return c.value.SubscribeAndCall(fn)
}

// SubscribeValue registers an observer on the new-value stream.
func (c *Computed[T]) SubscribeValue(fn func(T)) *Subscription {
	return c.value.SubscribeValue(fn)
}

// SubscribeValueAndCall registers a new-value observer and invokes it once
// with the current value before returning.
func (c *Computed[T]) SubscribeValueAndCall(fn func(T)) *Subscription {
	return c.value.SubscribeValueAndCall(fn)
}

// SubscribeUpdate registers an observer on the old-and-new-value stream.
func (c *Computed[T]) SubscribeUpdate(fn func(old, next T)) *Subscription {
	return c.value.SubscribeUpdate(fn)
}

// Stop detaches the computed from its dependencies. The current value stays
// readable but no longer tracks dependency changes.
func (c *Computed[T]) Stop() {
	c.subs.Clear()
}

func (c *Computed[T]) recompute() {
	c.value.Refresh()
}
