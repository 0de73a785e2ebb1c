package wm

import (
	"errors"
	"fmt"
)

// ErrConnectionClosed is returned by WaitForFocusChange once the
// connection to the window system is gone and no further events can arrive.
var ErrConnectionClosed = errors.New("window system connection closed")

// Backend is the capability every window system implementation provides.
// A Backend is owned by a single goroutine and is not safe for concurrent use.
type Backend interface {
	// WaitForFocusChange blocks until the focused window changes. Unrelated
	// notifications are skipped. The only error is ErrConnectionClosed
	// (possibly wrapped).
	WaitForFocusChange() error
	// Attribute reports the requested attribute of the focused window.
	// ok is false when there is no focused window or the query failed.
	Attribute(kind AttributeKind) (value AttributeValue, ok bool)
	// Name returns the backend name for logging
	Name() string
	Close() error
}

// InitError reports a backend that could not connect or subscribe to
// focus notifications.
type InitError struct {
	Backend string
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("%s backend failed to initialize: %v", e.Backend, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
