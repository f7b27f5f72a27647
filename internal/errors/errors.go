// Package errors provides standardized error handling for glowframe.
// It defines common error types, kinds, and helper functions for consistent
// error creation, wrapping, and handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrExhausted is the terminal signal of a non-looping playlist: the cursor
// has yielded every image once and no further images remain. It is a normal
// end-of-playback condition, not a failure.
var ErrExhausted = New("playback exhausted")

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Image error kinds
	ImageNotFound
	ImageOpenFailed
	IncompatibleImage
	PresentFailed
	// Config error kinds
	InvalidConfig
	InvalidOrder
	InvalidDirection
	InvalidFolder
	// Catalog error kinds
	InvalidPattern
	FolderUnreadable
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ImageError represents errors related to a specific image file
type ImageError struct {
	ApplicationError
	path string
}

// NewImageError creates a new image error
func NewImageError(msg string, path string, kind ErrorKind, err error) *ImageError {
	return &ImageError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the image error message
func (e *ImageError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the image path associated with the error
func (e *ImageError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// IsExhausted checks if the error signals end of a non-looping playlist
func IsExhausted(err error) bool {
	return errors.Is(err, ErrExhausted)
}

// IsIncompatibleImage checks if the error is an incompatible image error
func IsIncompatibleImage(err error) bool {
	var imgErr *ImageError
	if errors.As(err, &imgErr) {
		return imgErr.Kind() == IncompatibleImage
	}
	return false
}

// IsImageNotFound checks if the error is an image open/not-found error
func IsImageNotFound(err error) bool {
	var imgErr *ImageError
	if errors.As(err, &imgErr) {
		return imgErr.Kind() == ImageNotFound || imgErr.Kind() == ImageOpenFailed
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		switch cfgErr.Kind() {
		case InvalidConfig, InvalidOrder, InvalidDirection, InvalidFolder, InvalidPattern:
			return true
		}
	}
	return false
}

// IsInvalidOrder checks if the error is an invalid order error
func IsInvalidOrder(err error) bool {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind() == InvalidOrder
	}
	return false
}
