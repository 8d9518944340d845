package site

import (
	"errors"
	"fmt"
)

// ErrInvalidDate marks a present but malformed frontmatter date.
var ErrInvalidDate = errors.New("invalid date format (expected YYYY-MM-DD)")

// Level is the severity of a skipped document.
type Level int

// Skip levels.
const (
	// LevelWarning is used for incomplete metadata (missing title or date).
	LevelWarning Level = iota
	// LevelError is used for malformed data and I/O failures.
	LevelError
)

// String returns "warning" or "error".
func (l Level) String() string {
	if l == LevelWarning {
		return "warning"
	}
	return "error"
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// SkipError reports a document that produced no post. The build continues.
type SkipError struct {
	Name    string `json:"file"`
	Level   Level  `json:"level"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *SkipError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *SkipError) Unwrap() error {
	return e.Err
}

func skipWarning(name string, err error, format string, args ...any) *SkipError {
	return &SkipError{Name: name, Level: LevelWarning, Message: fmt.Sprintf(format, args...), Err: err}
}

func skipError(name string, err error, format string, args ...any) *SkipError {
	return &SkipError{Name: name, Level: LevelError, Message: fmt.Sprintf(format, args...), Err: err}
}

// AsSkipError reports whether err is a *SkipError and extracts it.
func AsSkipError(err error) (*SkipError, bool) {
	var skip *SkipError
	ok := errors.As(err, &skip)
	return skip, ok
}
