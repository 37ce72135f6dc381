// Package errors provides structured error types for dock.
// These errors carry the operation that failed and a Kind the host uses to
// decide how to surface them.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidSpec
	KindNoSelection
	KindStaleHandle
	KindConfig
	KindSession
	KindWindow
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalidSpec:
		return "invalid width spec"
	case KindNoSelection:
		return "no selection"
	case KindStaleHandle:
		return "stale handle"
	case KindConfig:
		return "configuration error"
	case KindSession:
		return "session error"
	case KindWindow:
		return "window error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for dock.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Width errors
func InvalidSpec(value any, reason string) error {
	return E(Op("width.Parse"), KindInvalidSpec, fmt.Sprintf("invalid width %v: %s", value, reason))
}

// Provider errors
func NoSelection() error {
	return E(Op("provider.Select"), KindNoSelection, "no provider selected")
}

func ProviderNotFound(name string) error {
	return E(Op("provider.Lookup"), KindNotFound, fmt.Sprintf("provider %q not found", name))
}

// Handle errors
func StaleHandle(what, id string) error {
	return E(Op("panel.Resolve"), KindStaleHandle, fmt.Sprintf("%s %s is no longer live", what, id))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindConfig, reason)
}

// Session errors
func SessionStartFailed(project string, err error) error {
	return E(Op("session.Start"), KindSession, fmt.Sprintf("failed to start session for %s", project), err)
}

// Window errors
func WindowFailed(op string, err error) error {
	return E(Op("window."+op), KindWindow, err)
}
