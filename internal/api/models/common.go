// Package models defines the request and response types of the zonejson
// REST API.
package models

// StatusResponse is a simple status acknowledgement.
type StatusResponse struct {
	Status string `json:"status"`
}

// ErrorResponse carries a human-readable error. For parse failures Line holds
// the offending zonefile line.
type ErrorResponse struct {
	Error string `json:"error"`
	Line  string `json:"line,omitempty"`
}
