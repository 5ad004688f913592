// Package errors provides structured error handling with error codes for bookkeep.
//
// This package standardizes error handling across all services with typed error
// codes, HTTP status mapping, and error wrapping.
//
// # Basic Usage
//
//	import "github.com/bookkeephq/bookkeep/pkg/errors"
//
//	// Create an error
//	err := errors.New(errors.ErrCodeBookNotFound, "book not found")
//
//	// Wrap an underlying error
//	err = errors.Wrap(dbErr, errors.ErrCodeInternal, "query failed")
//
//	// Map to an HTTP status
//	status := errors.MapErrorCodeToHTTPStatus(errors.GetCode(err))
//
// # Validation Errors
//
// Validation failures carry the offending fields as details:
//
//	err := errors.ValidationFailed(map[string]interface{}{
//		"name": "required",
//		"pin":  "required",
//	})
package errors
