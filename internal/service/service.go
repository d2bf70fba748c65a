// Package service contains the business logic.
//
// It sits between the handler layer and the document renderer: it receives
// validated payloads, renders them into memory and names the download.
package service
