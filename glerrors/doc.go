// Package glerrors provides structured error types for the gl3w generator.
//
// These error types enable programmatic error handling via [errors.Is] and
// [errors.As], allowing callers to tell a failed download apart from an
// unreadable header or a malformed procedure name.
//
// # Error Types
//
//   - [FetchError]: Download failures (transport errors, non-2xx responses, disk writes)
//   - [ParseError]: Unreadable or unscannable header files
//   - [NameError]: Procedure names that cannot be turned into gl3w identifiers
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrFetch]: Matches any [FetchError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrName]: Matches any [NameError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrNoProcs]: Returned when a header yields no procedures at all
//
// # Usage
//
//	result, err := g.Generate(ctx)
//	if err != nil {
//	    var fetchErr *glerrors.FetchError
//	    if errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusForbidden {
//	        // registry refused the request
//	    }
//	}
package glerrors
