// Package server runs the HTTP server of a process and shuts it down
// gracefully when the process context is cancelled.
package server
