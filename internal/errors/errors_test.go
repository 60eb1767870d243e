package errors

import (
	"errors"
	"io"
	"testing"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("conversation is empty")

	expected := "invalid input: conversation is empty"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected error to match ErrInvalidInput sentinel")
	}

	// Test Is with different type
	other := NewAPIError(400, "test", "other error")
	if err.Is(other) {
		t.Error("Expected error not to match different type")
	}
}

func TestNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("http://localhost:11434/api/chat", cause)

	expected := "connection failed at http://localhost:11434/api/chat: connection refused"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrConnectionFailed) {
		t.Error("Expected error to match ErrConnectionFailed sentinel")
	}
	if !errors.Is(err, cause) {
		t.Error("Expected error to unwrap to its cause")
	}
}

func TestTimeoutError(t *testing.T) {
	err := NewTimeoutError("http://localhost:11434/api/chat")

	expected := "request timed out: http://localhost:11434/api/chat"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	empty := NewTimeoutError("")
	if empty.Error() != "request timed out" {
		t.Errorf("Error() = %s, want bare message", empty.Error())
	}
}

func TestAPIError(t *testing.T) {
	err := NewAPIError(500, "test-endpoint", "model failed to load")

	expected := "API error [500] at test-endpoint: model failed to load"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	withBody := NewAPIErrorWithBody(404, "test-endpoint", "not found", `{"error":"not found"}`)
	if withBody.Body != `{"error":"not found"}` {
		t.Errorf("Body = %s", withBody.Body)
	}
}

func TestParseError(t *testing.T) {
	err := NewParseError("response has no message field", "message")

	expected := "parse error: response has no message field"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrInvalidResponse) {
		t.Error("Expected error to match ErrInvalidResponse sentinel")
	}
}

func TestStreamError(t *testing.T) {
	err := NewStreamError("connection closed before final chunk", io.ErrUnexpectedEOF)

	expected := "stream interrupted: connection closed before final chunk"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrStreamInterrupted) {
		t.Error("Expected error to match ErrStreamInterrupted sentinel")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("Expected error to unwrap to its cause")
	}
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"validation matches", NewValidationError("x"), IsValidationError, true},
		{"validation mismatch", NewTimeoutError("x"), IsValidationError, false},
		{"network matches", NewNetworkError("e", errors.New("x")), IsNetworkError, true},
		{"timeout matches", NewTimeoutError("x"), IsTimeoutError, true},
		{"api matches", NewAPIError(500, "e", "x"), IsAPIError, true},
		{"parse matches", NewParseError("x", ""), IsParseError, true},
		{"stream matches", NewStreamError("x", nil), IsStreamError, true},
		{"plain error matches nothing", errors.New("x"), IsAPIError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestGetHTTPStatus(t *testing.T) {
	if got := GetHTTPStatus(NewAPIError(429, "e", "x")); got != 429 {
		t.Errorf("GetHTTPStatus() = %d, want 429", got)
	}
	if got := GetHTTPStatus(errors.New("plain")); got != 0 {
		t.Errorf("GetHTTPStatus() = %d, want 0", got)
	}
}

func TestGetEndpoint(t *testing.T) {
	if got := GetEndpoint(NewAPIError(500, "http://x/api/chat", "x")); got != "http://x/api/chat" {
		t.Errorf("GetEndpoint() = %s", got)
	}
	if got := GetEndpoint(NewNetworkError("http://x/api/tags", errors.New("x"))); got != "http://x/api/tags" {
		t.Errorf("GetEndpoint() = %s", got)
	}
	if got := GetEndpoint(errors.New("plain")); got != "" {
		t.Errorf("GetEndpoint() = %s, want empty", got)
	}
}

func TestGetResponseBody(t *testing.T) {
	err := NewAPIErrorWithBody(500, "e", "x", "body detail")
	if got := GetResponseBody(err); got != "body detail" {
		t.Errorf("GetResponseBody() = %s", got)
	}
	if got := GetResponseBody(NewTimeoutError("x")); got != "" {
		t.Errorf("GetResponseBody() = %s, want empty", got)
	}
}
