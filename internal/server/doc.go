// Package server runs the HTTP transport of the scan records API.
//
// It owns the [http.Server] lifecycle: startup, signal handling, and
// graceful shutdown once SIGINT, SIGTERM or SIGQUIT is received.
package server
