// Package server holds the HTTP server configuration.
//
// The cmd package starts the Fiber application; this package only defines the
// listen address and the API key used by the auth middleware.
package server
