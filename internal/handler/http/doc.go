// Package http implements the HTTP transport layer of the users, notes and
// labels processes.
//
// It exposes one router per process, the request handlers and the middleware
// shared by all of them. Request tracing, access logging, timeouts and caller
// authentication are handled here before requests are delegated to the
// service layer. Every response uses the {message, status, data} envelope.
package http
