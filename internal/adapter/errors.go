package adapter

import "errors"

var (
	// ErrBadRequest is returned when the server rejects the request payload
	// with HTTP 400.
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized is returned when the server responds with HTTP 401,
	// meaning the session token is missing, expired or revoked.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrNotFound is returned when the requested record does not exist on the
	// server (HTTP 404).
	ErrNotFound = errors.New("record not found on server")

	// ErrConflict is returned when the server rejects a write because of a
	// concurrent modification (HTTP 409).
	ErrConflict = errors.New("server reported conflict")

	// ErrServer is returned for HTTP 5xx responses, meaning the backend is
	// reachable but failing.
	ErrServer = errors.New("server error")

	// ErrUnreachable is returned when the request never produced an HTTP
	// response (DNS failure, connection refused, timeout).
	ErrUnreachable = errors.New("server unreachable")

	// ErrDecodeResponse is returned when a 2xx response body cannot be
	// decoded into the expected shape.
	ErrDecodeResponse = errors.New("malformed server response")
)
