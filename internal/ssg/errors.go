// Package ssg provides clients for the SSG-WSG Course Directory and Skills
// Framework APIs using certificate authentication (mutual TLS).
package ssg

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Validation errors returned before any request is issued.
var (
	// ErrKeywordTooShort is returned when a search keyword is shorter than
	// the three characters the API requires.
	ErrKeywordTooShort = errors.New("keyword must be at least 3 characters")
	// ErrConflictingFilters is returned when a directory query sets both a
	// keyword and tagging codes; the API rejects the combination.
	ErrConflictingFilters = errors.New("keyword and tagging codes cannot be used together")
	// ErrDeltaRequiresLastUpdate is returned when retrieveType=DELTA is
	// requested without a lastUpdateDate.
	ErrDeltaRequiresLastUpdate = errors.New("retrieve type DELTA requires a last update date")
	// ErrMissingReferenceNumber is returned when a course operation is
	// called without a course reference number.
	ErrMissingReferenceNumber = errors.New("course reference number is required")
	// ErrMissingSupportEndDate is returned when a tagging-code search omits
	// the course support end date.
	ErrMissingSupportEndDate = errors.New("course support end date is required")
)

// APIError represents a non-2xx response from the SSG-WSG API.
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Endpoint is the request path that produced the error.
	Endpoint string
	// Code is the error code from the response envelope, if present.
	Code string
	// Message is the error message from the response envelope, if present.
	Message string
	// Body is the raw response body.
	Body []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		if e.Code != "" {
			return fmt.Sprintf("API error (status %d) on %s: %s - %s", e.StatusCode, e.Endpoint, e.Code, e.Message)
		}
		return fmt.Sprintf("API error (status %d) on %s: %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error (status %d) on %s: %s", e.StatusCode, e.Endpoint, string(e.Body))
}

// IsNotFound reports whether the error is a 404 response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// errorEnvelope matches the error body shape the API returns alongside
// non-2xx status codes. Fields not present simply stay empty; the code
// appears as either a string or a number depending on the endpoint.
type errorEnvelope struct {
	Error   string      `json:"error"`
	Code    json.Number `json:"code"`
	Message string      `json:"message"`
}
