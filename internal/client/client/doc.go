// Package client is the HTTP transport of the client core.
//
// # Overview
//
// HTTPClient issues JSON requests against a fixed base URL with fixed
// timeouts and default headers. Every exchange, successful or not, goes
// through Classify, so a response with status >= 500 is a failure even
// though net/http reports no error for it.
//
// # Error Handling
//
// Failures are *Error values of one of nine kinds (see Kind). They are
// produced here only; repositories and controllers pass them through.
// Match with errors.Is against the sentinels (ErrNotFound, ErrTimeout, ...)
// or read the kind with KindOf.
//
// # Cancellation
//
// All calls take a context. A cancelled context resolves with KindCancelled,
// an expired deadline with KindTimeout.
//
// # Logging
//
// Outside production, request and response method, path, headers and a
// truncated body are logged at debug level. Logging never changes results.
package client
