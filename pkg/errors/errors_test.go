package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/glintfix/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "command_not_found",
			code:    errors.ErrCommandNotFound,
			message: "command echo is not registered",
			wantStr: "[COMMAND_NOT_FOUND] command echo is not registered",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "empty command name",
			wantStr: "[INVALID_INPUT] empty command name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrScratchDir, "cannot create %s with mode %o", "/tmp/x", 0755)
	if err.Message != "cannot create /tmp/x with mode 755" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
		if !stderrors.Is(err, baseErr) {
			t.Error("Wrap() should preserve wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrCommandNotFound, "not found").
		WithDetail("command", "echo")

	if err.Details["command"] != "echo" {
		t.Errorf("WithDetail() command = %v, want echo", err.Details["command"])
	}
	if got := errors.GetErrorDetails(err)["command"]; got != "echo" {
		t.Errorf("GetErrorDetails() command = %v, want echo", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrCommandNotFound, "error 1")
	err2 := errors.New(errors.ErrCommandNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !err1.Is(err2) {
		t.Error("Is() should return true for same code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should work with FixtureError")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrScratchDir, "denied"),
			code:     errors.ErrScratchDir,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrPatchState, "x")); got != errors.ErrPatchState {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrPatchState)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
	if got := errors.GetErrorCode(nil); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(nil) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	lookupErr := errors.Wrap(rootCause, errors.ErrCommandNotFound, "lookup failed")
	patchErr := errors.Wrap(lookupErr, errors.ErrPatchState, "cannot start patch")

	if !errors.IsErrorCode(patchErr, errors.ErrPatchState) {
		t.Error("Top level should have ErrPatchState code")
	}
	if !stderrors.Is(patchErr, errors.New(errors.ErrCommandNotFound, "")) {
		t.Error("Should find the middle error by code")
	}
	if !stderrors.Is(patchErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}
}
