package models

import "time"

// ChatResponse is the decoded body of a non-streaming chat call.
type ChatResponse struct {
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Message   Message   `json:"message"`
	Done      bool      `json:"done"`

	// Timing and token metadata reported by the server (nanoseconds/counts)
	TotalDuration   int64 `json:"total_duration,omitempty"`
	LoadDuration    int64 `json:"load_duration,omitempty"`
	PromptEvalCount int   `json:"prompt_eval_count,omitempty"`
	EvalCount       int   `json:"eval_count,omitempty"`
}

// Text returns the assistant's reply content.
func (r *ChatResponse) Text() string {
	return r.Message.Content
}

// ChatChunk is one newline-delimited fragment of a streaming chat response.
// The terminal chunk carries Done=true and usually an empty content.
type ChatChunk struct {
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
	Message   Message   `json:"message"`
	Done      bool      `json:"done"`
}

// ModelInfo describes one locally installed model, as listed by /api/tags.
type ModelInfo struct {
	Name       string    `json:"name"`
	Model      string    `json:"model"`
	Size       int64     `json:"size"`
	Digest     string    `json:"digest"`
	ModifiedAt time.Time `json:"modified_at"`
}

// TagsResponse is the body returned by GET /api/tags.
type TagsResponse struct {
	Models []ModelInfo `json:"models"`
}

// VersionResponse is the body returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// PullProgress is one fragment of the streaming progress reported
// while the server downloads a model.
type PullProgress struct {
	Status    string `json:"status"`
	Digest    string `json:"digest,omitempty"`
	Total     int64  `json:"total,omitempty"`
	Completed int64  `json:"completed,omitempty"`
}
