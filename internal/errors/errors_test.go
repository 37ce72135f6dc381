package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalidSpec, "invalid width spec"},
		{KindNoSelection, "no selection"},
		{KindStaleHandle, "stale handle"},
		{KindConfig, "configuration error"},
		{KindSession, "session error"},
		{KindWindow, "window error"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE_ContextOnlyBecomesMessage(t *testing.T) {
	err := E(Op("width.Parse"), KindInvalidSpec, "bad value")

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Context != "" {
		t.Errorf("Context = %q, want empty", e.Context)
	}
	if e.Err.Error() != "bad value" {
		t.Errorf("Err = %q, want %q", e.Err, "bad value")
	}
	if got := err.Error(); got != "width.Parse: bad value" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("toggle: %w", NoSelection())

	if !Is(wrapped, KindNoSelection) {
		t.Error("expected wrapped error to be KindNoSelection")
	}
	if Is(wrapped, KindInvalidSpec) {
		t.Error("did not expect KindInvalidSpec")
	}
	if Is(errors.New("plain"), KindNoSelection) {
		t.Error("plain error should not match any kind")
	}
}

func TestConstructors(t *testing.T) {
	underlying := errors.New("boom")
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"invalid spec", InvalidSpec("abc", "not a number"), KindInvalidSpec},
		{"no selection", NoSelection(), KindNoSelection},
		{"provider not found", ProviderNotFound("codex"), KindNotFound},
		{"stale handle", StaleHandle("window", "w1"), KindStaleHandle},
		{"config load", ConfigLoadFailed("/x", underlying), KindConfig},
		{"config save", ConfigSaveFailed("/x", underlying), KindConfig},
		{"config invalid", ConfigInvalid("bad"), KindConfig},
		{"session start", SessionStartFailed("/p", underlying), KindSession},
		{"window", WindowFailed("Close", underlying), KindWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetKind(tt.err); got != tt.kind {
				t.Errorf("GetKind() = %v, want %v", got, tt.kind)
			}
		})
	}

	if !errors.Is(SessionStartFailed("/p", underlying), underlying) {
		t.Error("SessionStartFailed should wrap the underlying error")
	}
}

func TestGetKind_Unknown(t *testing.T) {
	if got := GetKind(errors.New("plain")); got != KindUnknown {
		t.Errorf("GetKind() = %v, want KindUnknown", got)
	}
}
