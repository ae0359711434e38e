package backend

import "errors"

// Sentinel errors for backend resolution.
// These enable reliable error checking with errors.Is()
var (
	// ErrDriverNotFound indicates no usable ninja-family runner was located
	ErrDriverNotFound = errors.New("cannot find either ninja or samu")

	// ErrUnsupportedBackend indicates the configured backend has no driver here
	ErrUnsupportedBackend = errors.New("backend is not supported")
)
