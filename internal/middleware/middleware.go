// Package middleware stores the global middleware and the error funnel.
//
// These intercept requests to handle cross-cutting concerns such as request
// ids, request logging, CORS, body limits, rate limiting, tracing and panic
// recovery.
package middleware
