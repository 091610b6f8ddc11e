package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{"without cause", New(ErrCodeNotFound, "config missing"), "NOT_FOUND: config missing"},
		{"with cause", Wrap(ErrCodeUnavailable, "read failed", stderrors.New("EIO")), "UNAVAILABLE: read failed: EIO"},
		{"nil receiver", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	base := New(ErrCodeResourceExhausted, "buffer too large")
	wrapped := fmt.Errorf("parse: %w", base)

	if !IsCode(wrapped, ErrCodeResourceExhausted) {
		t.Error("expected wrapped error to match RESOURCE_EXHAUSTED")
	}
	if IsCode(wrapped, ErrCodeNotFound) {
		t.Error("did not expect NOT_FOUND to match")
	}
	if IsCode(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("plain errors carry no code")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("CodeOf(plain) = %q, want %q", got, ErrCodeInternal)
	}

	cause := stderrors.New("no such file")
	err := WrapWithContext(ErrCodeNotFound, "config missing", cause, map[string]any{"path": "/usbkey/config"})
	if got := CodeOf(fmt.Errorf("load: %w", err)); got != ErrCodeNotFound {
		t.Errorf("CodeOf() = %q, want %q", got, ErrCodeNotFound)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected Unwrap to expose the cause")
	}
	if err.Context["path"] != "/usbkey/config" {
		t.Errorf("unexpected context: %#v", err.Context)
	}
}
