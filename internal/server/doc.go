// Package server runs the HTTP transport of the model viewer API.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by a fixed timeout.
package server
