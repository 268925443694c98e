package observable

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestValue_GetReturnsCurrent(t *testing.T) {
	v := NewValue(3)

	if got := v.Get(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestValue_SetCommitsAndReportsChange(t *testing.T) {
	v := NewValue(1)

	changed, err := v.Set(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Fatalf("expected set to report change")
	}
	if got := v.Get(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}

func TestValue_SetEqualValueIsNoOp(t *testing.T) {
	v := NewValue(1)
	calls := 0
	v.Subscribe(func() { calls++ }).Release()
	v.SubscribeValue(func(int) { calls++ }).Release()
	v.SubscribeUpdate(func(int, int) { calls++ }).Release()

	if changed, _ := v.Set(2); !changed {
		t.Fatalf("expected first set to change")
	}
	if changed, _ := v.Set(2); changed {
		t.Fatalf("expected second set of equal value to be a no-op")
	}

	if calls != 3 {
		t.Fatalf("expected exactly one cycle across all streams, got %d calls", calls)
	}
}

func TestValue_StreamPayloads(t *testing.T) {
	v := NewValue(1)
	voidCalls := 0
	gotValue := 0
	gotOld, gotNext := 0, 0

	v.Subscribe(func() { voidCalls++ }).Release()
	v.SubscribeValue(func(next int) { gotValue = next }).Release()
	v.SubscribeUpdate(func(old, next int) { gotOld, gotNext = old, next }).Release()

	v.Set(5)

	if voidCalls != 1 {
		t.Fatalf("expected 1 void call, got %d", voidCalls)
	}
	if gotValue != 5 {
		t.Fatalf("expected new-value stream to carry 5, got %d", gotValue)
	}
	if gotOld != 1 || gotNext != 5 {
		t.Fatalf("expected update stream to carry (1, 5), got (%d, %d)", gotOld, gotNext)
	}
}

func TestValue_SubscribeAndCall(t *testing.T) {
	v := NewValue(9)
	calls := 0

	sub := v.SubscribeAndCall(func() { calls++ })
	defer sub.Unsubscribe()

	if calls != 1 {
		t.Fatalf("expected immediate call, got %d", calls)
	}
}

func TestValue_SubscribeValueAndCall(t *testing.T) {
	v := NewValue(9)
	got := 0

	sub := v.SubscribeValueAndCall(func(next int) { got = next })
	defer sub.Unsubscribe()

	if got != 9 {
		t.Fatalf("expected immediate call with current value 9, got %d", got)
	}
}

func TestValue_SubscribeUpdateAndCall(t *testing.T) {
	v := NewValue(9)
	gotOld, gotNext := 0, 0

	sub := v.SubscribeUpdateAndCall(func(old, next int) { gotOld, gotNext = old, next })
	defer sub.Unsubscribe()

	if gotOld != 9 || gotNext != 9 {
		t.Fatalf("expected immediate call with (9, 9), got (%d, %d)", gotOld, gotNext)
	}
}

func TestValue_Update(t *testing.T) {
	v := NewValue(1)

	if changed, _ := v.Update(func(n int) int { return n + 1 }); !changed {
		t.Fatalf("expected update to report change")
	}
	if got := v.Get(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if changed, _ := v.Update(func(n int) int { return n }); changed {
		t.Fatalf("expected identity update to be a no-op")
	}
	if changed, _ := v.Update(nil); changed {
		t.Fatalf("expected nil update to be a no-op")
	}
}

func TestValue_UnsubscribeStopsNotifications(t *testing.T) {
	v := NewValue(1)
	calls := 0

	sub := v.Subscribe(func() { calls++ })
	v.Set(2)
	sub.Unsubscribe()
	v.Set(3)

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestValue_ReadOnlyRejectsSet(t *testing.T) {
	current := 10
	v := NewReadOnlyValue(func() int { return current })

	if !v.ReadOnly() {
		t.Fatalf("expected updater-driven value to be read-only")
	}

	changed, err := v.Set(99)
	if !errors.Is(err, ErrReadOnlyValue) {
		t.Fatalf("expected ErrReadOnlyValue, got %v", err)
	}
	if changed {
		t.Fatalf("expected rejected set to report no change")
	}
	if got := v.Get(); got != 10 {
		t.Fatalf("expected value unchanged after rejected set, got %d", got)
	}

	if _, err := v.Update(func(n int) int { return n + 1 }); !errors.Is(err, ErrReadOnlyValue) {
		t.Fatalf("expected ErrReadOnlyValue from update, got %v", err)
	}
}

func TestValue_RefreshRunsUpdaterThroughCommit(t *testing.T) {
	current := 1
	v := NewReadOnlyValue(func() int { return current })
	calls := 0
	v.Subscribe(func() { calls++ }).Release()

	if changed, err := v.Refresh(); err != nil || changed {
		t.Fatalf("expected refresh with unchanged updater output to be a no-op, got (%v, %v)", changed, err)
	}

	current = 2
	changed, err := v.Refresh()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Fatalf("expected refresh to commit new updater output")
	}
	if got := v.Get(); got != 2 {
		t.Fatalf("expected 2 after refresh, got %d", got)
	}
	if calls != 1 {
		t.Fatalf("expected 1 notification, got %d", calls)
	}
}

func TestValue_RefreshWithoutUpdater(t *testing.T) {
	v := NewValue(1)

	if _, err := v.Refresh(); !errors.Is(err, ErrNoUpdater) {
		t.Fatalf("expected ErrNoUpdater, got %v", err)
	}
}

func TestValue_CustomEquality(t *testing.T) {
	// Case-insensitive equality: sets differing only in case are no-ops.
	v := NewValueEqual("go", strings.EqualFold)
	calls := 0
	v.Subscribe(func() { calls++ }).Release()

	if changed, _ := v.Set("GO"); changed {
		t.Fatalf("expected case-only change to be suppressed")
	}
	if changed, _ := v.Set("rust"); !changed {
		t.Fatalf("expected real change to commit")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestValue_NilEqualityDisablesSuppression(t *testing.T) {
	v := NewValueEqual(1, nil)
	calls := 0
	v.Subscribe(func() { calls++ }).Release()

	v.Set(1)
	v.Set(1)

	if calls != 2 {
		t.Fatalf("expected every set to notify without an equality func, got %d", calls)
	}
}
