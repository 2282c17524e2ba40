package server

// Server is the lifecycle contract for the transport layer built by
// [NewServer].
//
// RunServer blocks until shutdown is requested; Shutdown stops serving and
// releases resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
