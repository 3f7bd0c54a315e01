package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors
type ErrorCode string

const (
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeAudioRead  ErrorCode = "AUDIO_READ_ERROR"
	ErrCodeIO         ErrorCode = "IO_ERROR"
	ErrCodeTime       ErrorCode = "TIME_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Sentinels matched by code through errors.Is.
var (
	ErrNotFound   = &AudioCoreError{Code: ErrCodeNotFound}
	ErrAudioRead  = &AudioCoreError{Code: ErrCodeAudioRead}
	ErrIO         = &AudioCoreError{Code: ErrCodeIO}
	ErrTime       = &AudioCoreError{Code: ErrCodeTime}
	ErrValidation = &AudioCoreError{Code: ErrCodeValidation}
)

// AudioCoreError is the base structured error
type AudioCoreError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *AudioCoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AudioCoreError) Unwrap() error {
	return e.Cause
}

// Is reports a match when target is a bare sentinel with the same code.
func (e *AudioCoreError) Is(target error) bool {
	t, ok := target.(*AudioCoreError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Cause == nil && t.Code == e.Code
}

// NotFoundError reports a missing input file or stored recording.
// Kind is one of "audio", "subtitle", "recording" or "source".
type NotFoundError struct {
	AudioCoreError
	Kind string
	Path string
}

func NewNotFoundError(kind, path string) *NotFoundError {
	return &NotFoundError{
		AudioCoreError: AudioCoreError{
			Code:    ErrCodeNotFound,
			Message: kind + " file not found",
		},
		Kind: kind,
		Path: path,
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Path)
}

// AudioReadError wraps a container parse failure
type AudioReadError struct {
	AudioCoreError
	Path string
}

func NewAudioReadError(path string, cause error) *AudioReadError {
	return &AudioReadError{
		AudioCoreError: AudioCoreError{
			Code:    ErrCodeAudioRead,
			Message: "failed to read audio file " + path,
			Cause:   cause,
		},
		Path: path,
	}
}

// IOError wraps a filesystem failure. Op names the failing step
// (mkdir, create, write, read, remove, stat, readdir, close).
type IOError struct {
	AudioCoreError
	Op   string
	Path string
}

func NewIOError(op, path string, cause error) *IOError {
	return &IOError{
		AudioCoreError: AudioCoreError{
			Code:    ErrCodeIO,
			Message: fmt.Sprintf("%s %s failed", op, path),
			Cause:   cause,
		},
		Op:   op,
		Path: path,
	}
}

// TimeError reports that a creation timestamp could not be obtained or converted
type TimeError struct {
	AudioCoreError
	Path string
}

func NewTimeError(path, message string, cause error) *TimeError {
	return &TimeError{
		AudioCoreError: AudioCoreError{
			Code:    ErrCodeTime,
			Message: message,
			Cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents input validation failure
type ValidationError struct {
	AudioCoreError
	Field string
	Value interface{}
}

func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		AudioCoreError: AudioCoreError{
			Code:    ErrCodeValidation,
			Message: message,
		},
		Field: field,
		Value: value,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] field=%s value=%v: %s", e.Code, e.Field, e.Value, e.Message)
}

// Is enables errors.Is checks
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As enables errors.As checks
func As[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}
