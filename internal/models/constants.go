// Package models contains data types and constants for the Ollama HTTP API.
package models

// API paths relative to the configured base URL
const (
	PathChat    = "/api/chat"
	PathTags    = "/api/tags"
	PathPull    = "/api/pull"
	PathVersion = "/api/version"
)

// DefaultBaseURL is the address a locally installed Ollama listens on.
// It is only a documentation aid; the base URL is always resolved
// explicitly from configuration.
const DefaultBaseURL = "http://localhost:11434"

// DefaultHeaders returns the headers sent with every request.
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}
