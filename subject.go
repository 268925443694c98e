package observable

// Subject is a synchronous multicast dispatcher for callbacks of one
// function type F. Callbacks are invoked in subscription order.
//
// Subject is safe for reentrant use: a callback may subscribe or unsubscribe
// (itself or another callback) while a Notify is in progress. Callbacks added
// during a dispatch are not invoked in that dispatch; callbacks removed
// during a dispatch are not invoked after their removal.
//
// The zero value is an empty subject ready for use.
type Subject[F any] struct {
	entries []subjectEntry[F]
	nextID  uint64
}

type subjectEntry[F any] struct {
	id uint64
	fn F
}

// Subscribe registers fn and returns its subscription handle. The callback
// is not invoked.
func (s *Subject[F]) Subscribe(fn F) *Subscription {
	s.nextID++
	id := s.nextID
	s.entries = append(s.entries, subjectEntry[F]{id: id, fn: fn})
	return &Subscription{cancel: func() { s.remove(id) }}
}

// SubscribeAndCall registers fn, then immediately invokes it once via call.
// The owner of the subject supplies call so the fresh observer sees the
// current state; a bare subject has no state of its own to report.
func (s *Subject[F]) SubscribeAndCall(fn F, call func(F)) *Subscription {
	sub := s.Subscribe(fn)
	call(fn)
	return sub
}

// Notify invokes every callback registered when Notify began, in
// subscription order, by passing each one to call.
func (s *Subject[F]) Notify(call func(F)) {
	if len(s.entries) == 0 {
		return
	}
	// Snapshot identities, not callbacks: a callback unsubscribed by an
	// earlier observer in this dispatch must not run.
	ids := make([]uint64, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.id
	}
	for _, id := range ids {
		if fn, ok := s.lookup(id); ok {
			call(fn)
		}
	}
}

// Len returns the number of registered callbacks.
func (s *Subject[F]) Len() int {
	return len(s.entries)
}

func (s *Subject[F]) lookup(id uint64) (F, bool) {
	for _, e := range s.entries {
		if e.id == id {
			return e.fn, true
		}
	}
	var zero F
	return zero, false
}

func (s *Subject[F]) remove(id uint64) {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}
