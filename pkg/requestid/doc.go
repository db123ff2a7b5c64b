// Package requestid propagates correlation ids through HTTP requests, CLI
// invocations and structured logs.
//
// Middleware accepts a client supplied X-Request-ID when it is at most 128
// characters of [a-zA-Z0-9_-]; anything else is replaced with a UUIDv4.
// LoggerExtractor feeds the id into pkg/logger so every record logged with
// the request context carries "request_id".
package requestid
