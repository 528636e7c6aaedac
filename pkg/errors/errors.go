// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeVersionMismatch indicates a recorded version differs from the required one.
	ErrCodeVersionMismatch ErrorCode = "VERSION_MISMATCH"
	// ErrCodePatternMismatch indicates a recorded version does not have the expected structure.
	ErrCodePatternMismatch ErrorCode = "PATTERN_MISMATCH"
	// ErrCodeMissingField indicates a required key is absent from a key-value document.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeMissingElement indicates a required element is absent from a markup document.
	ErrCodeMissingElement ErrorCode = "MISSING_ELEMENT"
	// ErrCodeInvalidField indicates a field is present but holds a value of the wrong type.
	ErrCodeInvalidField ErrorCode = "INVALID_FIELD"
	// ErrCodeIO indicates a document could not be opened or read.
	ErrCodeIO ErrorCode = "IO"
	// ErrCodeParse indicates a document could not be decoded.
	ErrCodeParse ErrorCode = "PARSE"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for debugging.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf returns the code of the first StructuredError in err's chain,
// or an empty code if there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsMismatch reports whether err is a version or pattern mismatch, the two
// anticipated failure outcomes of a consistency check.
func IsMismatch(err error) bool {
	switch CodeOf(err) {
	case ErrCodeVersionMismatch, ErrCodePatternMismatch:
		return true
	default:
		return false
	}
}
