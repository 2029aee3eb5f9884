// Package server runs the wallet simulator's HTTP transport.
//
// It owns the http.Server lifecycle: startup, POSIX signal handling and
// graceful shutdown.
package server
