// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Mismatch codes (VERSION_MISMATCH, PATTERN_MISMATCH) are anticipated check
// outcomes; every other code is a hard failure.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeIO,
//	    "failed to read manifest",
//	    cause,
//	    map[string]any{
//	        "path": path,
//	    },
//	)
package errors
