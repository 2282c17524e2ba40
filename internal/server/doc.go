// Package server wires and runs the application's transport layer.
//
// It provides orchestration for the HTTP server lifecycle together with the
// application's background workers: startup, signal handling, and graceful
// shutdown.
package server
