// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to filter meals by ingredient",
//	    cause,
//	    map[string]interface{}{
//	        "term": term,
//	    },
//	)
//
// Callers that only need the classification use CodeOf:
//
//	if errors.CodeOf(err) == errors.ErrCodeNotFound { ... }
package errors
