// Package archive persists raw API responses to the local data directory
// and, optionally, to MinIO object storage.
package archive

import "time"

// Record describes one archived API response.
type Record struct {
	// Group is the subdirectory the response is filed under
	// (e.g. "courses" or "skills_framework").
	Group string `json:"group"`
	// Name identifies the operation (e.g. "search_by_keyword").
	Name string `json:"name"`
	// Endpoint is the API path that produced the response.
	Endpoint string `json:"endpoint"`
	// StatusCode is the HTTP status code of the response.
	StatusCode int `json:"statusCode"`
	// FetchedAt is the time the response was received.
	FetchedAt time.Time `json:"fetchedAt"`
	// Path is the local file the response was written to.
	Path string `json:"path"`
	// ObjectKey is the MinIO object key, when uploaded.
	ObjectKey string `json:"objectKey,omitempty"`
	// Size is the archived payload size in bytes.
	Size int64 `json:"size"`
}
