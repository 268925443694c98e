package observable

import "github.com/pkg/errors"

// ErrReadOnlyValue is returned when a mutation is attempted on a value that
// is driven by an updater. The attempted mutation is rejected and the stored
// value is left unchanged. Test for it with errors.Is.
var ErrReadOnlyValue = errors.New("observable: value is read-only")

// ErrNoUpdater is returned by Refresh on a value that has no updater
// configured.
var ErrNoUpdater = errors.New("observable: value has no updater")
