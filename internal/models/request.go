package models

// ChatRequest is the body of a POST /api/chat call.
// Messages is forwarded exactly as supplied by the caller: same entries,
// same order. The client appends to conversations, never rewrites them.
type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// PullRequest is the body of a POST /api/pull call.
type PullRequest struct {
	Name   string `json:"name"`
	Stream bool   `json:"stream"`
}
