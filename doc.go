// Package observable provides in-process observable values: containers for a
// single piece of state that notify subscribers synchronously when the state
// changes.
//
// The package is built from three primitives. Subject is a multicast
// dispatcher for one callback signature that stays safe when callbacks
// subscribe or unsubscribe during dispatch. Value holds one piece of state
// and notifies on change, suppressing notifications for equal values.
// Collection layers an element-level insert/remove stream on top of a Value
// whose payload is a container.
//
// All dispatch is synchronous and runs in the caller's goroutine. Instances
// are not safe for concurrent use; callers that share an instance across
// goroutines must serialize access externally. Reentrant use from inside a
// notification callback is fully supported.
package observable
