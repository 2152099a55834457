package adapter

import "errors"

// Sentinel transport errors mapped from HTTP status codes by mapHTTPError.
// Callers match them with [errors.Is] for transport-agnostic handling.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// GraphQL-level errors returned by the GraphQL executor. These are distinct
// from transport failures: the HTTP exchange succeeded but the service
// reported a problem inside the response body.
var (
	// ErrGraphQLErrors indicates the response carried a non-empty
	// "errors" array.
	ErrGraphQLErrors = errors.New("graphql errors")

	// ErrEmptyData indicates the response carried no usable "data"
	// payload for the requested operation.
	ErrEmptyData = errors.New("empty graphql data")
)
