// errors.go: structured error handling for lrucache operations
//
// This file provides structured error types using the go-errors library,
// enabling rich error context, categorization, and standardized error codes
// for construction and persistence failures. Per-key operations (Get, Put,
// Remove, Clear, Len, Metrics) are infallible by contract and never return
// one of these.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package lrucache

import (
	goerrors "errors"

	"github.com/agilira/go-errors"
)

// Error codes for lrucache operations.
const (
	// Configuration errors
	ErrCodeInvalidCapacity errors.ErrorCode = "LRUCACHE_INVALID_CAPACITY"
	ErrCodeInvalidTTL      errors.ErrorCode = "LRUCACHE_INVALID_TTL"

	// Persistence errors
	ErrCodeIO                 errors.ErrorCode = "LRUCACHE_IO"
	ErrCodeFormat             errors.ErrorCode = "LRUCACHE_FORMAT"
	ErrCodeUnsupportedVersion errors.ErrorCode = "LRUCACHE_UNSUPPORTED_VERSION"

	// Internal errors
	ErrCodeInternal errors.ErrorCode = "LRUCACHE_INTERNAL"
)

const (
	msgInvalidCapacity      = "invalid capacity: must be >= 1"
	msgInvalidTTL           = "invalid ttl: must be >= 0"
	msgIO                   = "snapshot I/O failure"
	msgFormat               = "malformed snapshot document"
	msgUnsupportedVersion   = "unsupported snapshot schema version"
	msgInternalInconsistent = "internal invariant violation"
)

// NewErrInvalidCapacity creates an error for a non-positive capacity.
func NewErrInvalidCapacity(capacity int) error {
	return errors.NewWithContext(ErrCodeInvalidCapacity, msgInvalidCapacity, map[string]interface{}{
		"provided_capacity": capacity,
		"minimum_required":  1,
	})
}

// NewErrInvalidTTL creates an error for a negative TTL.
func NewErrInvalidTTL(ttl interface{}) error {
	return errors.NewWithContext(ErrCodeInvalidTTL, msgInvalidTTL, map[string]interface{}{
		"provided_ttl": ttl,
	})
}

// NewErrIO wraps a filesystem error encountered during Save or Load.
func NewErrIO(path string, cause error) error {
	return errors.Wrap(cause, ErrCodeIO, msgIO).
		WithContext("path", path).
		AsRetryable()
}

// NewErrFormat reports a malformed snapshot document.
func NewErrFormat(path string, details string) error {
	return errors.NewWithContext(ErrCodeFormat, msgFormat, map[string]interface{}{
		"path":    path,
		"details": details,
	})
}

// NewErrUnsupportedVersion reports a snapshot whose schema version this
// build does not understand.
func NewErrUnsupportedVersion(path string, got int, supported int) error {
	return errors.NewWithContext(ErrCodeUnsupportedVersion, msgUnsupportedVersion, map[string]interface{}{
		"path":      path,
		"version":   got,
		"supported": supported,
	})
}

// NewErrInternal wraps a detected invariant violation (bijectivity,
// capacity) for callers that choose to surface rather than abort on it.
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternal, msgInternalInconsistent).
			WithContext("operation", operation).
			WithSeverity("critical")
	}
	return errors.NewWithField(ErrCodeInternal, msgInternalInconsistent, "operation", operation).
		WithSeverity("critical")
}

// IsConfigError reports whether err originated from invalid construction
// arguments.
func IsConfigError(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidCapacity) || errors.HasCode(err, ErrCodeInvalidTTL)
}

// IsIOError reports whether err is a filesystem failure from Save/Load.
func IsIOError(err error) bool {
	return errors.HasCode(err, ErrCodeIO)
}

// IsFormatError reports whether err is a malformed or unsupported snapshot
// document.
func IsFormatError(err error) bool {
	return errors.HasCode(err, ErrCodeFormat) || errors.HasCode(err, ErrCodeUnsupportedVersion)
}

// IsRetryable reports whether the error can plausibly succeed if retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the stable error code from err, if any.
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}
