package server

import "errors"

var (
	// errNoHandlerProvided is returned by NewServer for a nil handler.
	errNoHandlerProvided = errors.New("no http handler provided")
	// errServerFailed wraps listener errors other than a clean shutdown.
	errServerFailed = errors.New("http server failed")
)
