package output

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
		wantMsg  string
	}{
		{"user error", NewUserError("templates directory not found: templates"), ExitUserError, "templates directory not found: templates"},
		{"system error", NewSystemError("writing index.html failed"), ExitSystemError, "writing index.html failed"},
		{"conflict error", NewConflictError("blog/hello.md already exists"), ExitConflict, "blog/hello.md already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestExitErrorWrapping(t *testing.T) {
	underlying := errors.New("permission denied")

	sysErr := NewSystemErrorWithCause("writing index.html", underlying)
	if !errors.Is(sysErr, underlying) {
		t.Error("errors.Is should find underlying error of system error")
	}

	userErr := NewUserErrorWithCause("parsing templates", underlying)
	if userErr.Code != ExitUserError || !errors.Is(userErr, underlying) {
		t.Errorf("user error = %+v", userErr)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"user", NewUserError("bad input"), ExitUserError},
		{"system", NewSystemError("disk full"), ExitSystemError},
		{"conflict", NewConflictError("exists"), ExitConflict},
		{"wrapped system", fmt.Errorf("build: %w", NewSystemError("disk full")), ExitSystemError},
		{"plain error defaults to user error", errors.New("some error"), ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.expected {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
