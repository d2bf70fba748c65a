// Package handler is the first layer after the router.
//
// It binds and validates request payloads through the validation package,
// calls the service layer and writes the response. It is the interface
// between the HTTP request and the rendering logic.
package handler
