package server

// Server defines the lifecycle contract for the transport server managed by
// this package.
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal is
	// received and the server has shut down, or until serving fails.
	RunServer() error

	// Shutdown gracefully stops the server, waiting for in-flight requests
	// up to the shutdown timeout.
	Shutdown() error
}
