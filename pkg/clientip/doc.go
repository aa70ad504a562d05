// Package clientip resolves the client address of an HTTP request from
// trusted proxy headers or RemoteAddr, stores it in the request context and
// exposes it to the logger through LoggerExtractor.
package clientip
