package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/diogo/ollamaterm/internal/errors"
	"github.com/diogo/ollamaterm/internal/models"
)

// pullServer serves the given NDJSON lines on /api/pull.
func pullServer(t *testing.T, lines ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/pull" {
			t.Errorf("path = %s, want /api/pull", r.URL.Path)
		}
		for _, line := range lines {
			_, _ = io.WriteString(w, line+"\n")
		}
	}))
}

// TestPull tests a complete pull with progress reporting
func TestPull(t *testing.T) {
	srv := pullServer(t,
		`{"status":"pulling manifest"}`,
		`{"status":"downloading","digest":"sha256:abc","total":1000,"completed":500}`,
		`{"status":"downloading","digest":"sha256:abc","total":1000,"completed":1000}`,
		`{"status":"success"}`,
	)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")

	var seen []models.PullProgress
	err := client.Pull(context.Background(), "llama3.2", func(p models.PullProgress) error {
		seen = append(seen, p)
		return nil
	})
	if err != nil {
		t.Fatalf("Pull() unexpected error: %v", err)
	}

	if len(seen) != 4 {
		t.Fatalf("got %d progress fragments, want 4", len(seen))
	}
	if seen[1].Completed != 500 || seen[1].Total != 1000 {
		t.Errorf("fragment 1 = %+v, want completed 500 of 1000", seen[1])
	}
	if seen[3].Status != "success" {
		t.Errorf("final status = %s, want success", seen[3].Status)
	}
}

// TestPullNilCallback tests that progress reporting is optional
func TestPullNilCallback(t *testing.T) {
	srv := pullServer(t, `{"status":"success"}`)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")
	if err := client.Pull(context.Background(), "llama3.2", nil); err != nil {
		t.Fatalf("Pull() unexpected error: %v", err)
	}
}

// TestPullValidation tests the empty-name check
func TestPullValidation(t *testing.T) {
	srv := pullServer(t)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")
	err := client.Pull(context.Background(), "  ", nil)
	if !apierrors.IsValidationError(err) {
		t.Errorf("Pull() error = %T, want *ValidationError", err)
	}
}

// TestPullServerError tests an in-band error fragment
func TestPullServerError(t *testing.T) {
	srv := pullServer(t,
		`{"status":"pulling manifest"}`,
		`{"error":"pull model manifest: file does not exist"}`,
	)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")
	err := client.Pull(context.Background(), "nope", nil)
	if !apierrors.IsStreamError(err) {
		t.Errorf("Pull() error = %T, want *StreamError", err)
	}
}

// TestPullInterrupted tests a stream that ends without a success marker
func TestPullInterrupted(t *testing.T) {
	srv := pullServer(t,
		`{"status":"downloading","total":1000,"completed":10}`,
	)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")
	err := client.Pull(context.Background(), "llama3.2", nil)
	if !apierrors.IsStreamError(err) {
		t.Errorf("Pull() error = %T, want *StreamError", err)
	}
}

// TestPullCallbackAbort tests that a callback error stops the pull
func TestPullCallbackAbort(t *testing.T) {
	srv := pullServer(t,
		`{"status":"pulling manifest"}`,
		`{"status":"success"}`,
	)
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")
	abort := errors.New("user cancelled")
	err := client.Pull(context.Background(), "llama3.2", func(p models.PullProgress) error {
		return abort
	})
	if !errors.Is(err, abort) {
		t.Errorf("Pull() error = %v, want the callback's error", err)
	}
}
