// Package http implements the HTTP transport layer of the scan records API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, authentication, panic recovery, CORS
// and response compression are handled in this package before requests are
// delegated to the service layer. Every handler returns an error which is
// turned into a JSON response by a single terminal stage (see handleError).
package http
