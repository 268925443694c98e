package observable

// Subscription identifies one registered callback on one Subject. Handles
// are held and passed by pointer; copying a handle's pointee would create
// ambiguous ownership of the registration and is not supported.
//
// A Subscription must not outlive the Subject it came from. Using a handle
// after its subject is gone is a precondition violation, not a recoverable
// error.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the registration. It is idempotent: unsubscribing an
// already-unsubscribed or released handle is a no-op. Safe on a nil handle.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	cancel := s.cancel
	s.cancel = nil
	cancel()
}

// Release detaches the handle without unregistering the callback. The
// registration becomes permanent: it lives as long as the subject, and a
// later Unsubscribe on this handle is a no-op.
func (s *Subscription) Release() {
	if s == nil {
		return
	}
	s.cancel = nil
}

// Subscriptions tracks multiple subscription handles and cancels them
// together. It stands in for scope-based cleanup: collect handles while
// wiring observers, then defer Clear.
//
// The zero value is ready for use.
type Subscriptions struct {
	subs []*Subscription
}

// Add tracks a handle for later cleanup.
func (s *Subscriptions) Add(sub *Subscription) {
	if s == nil || sub == nil {
		return
	}
	s.subs = append(s.subs, sub)
}

// Clear unsubscribes every tracked handle and forgets them.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	subs := s.subs
	s.subs = nil
	for _, sub := range subs {
		sub.Unsubscribe()
	}
}
