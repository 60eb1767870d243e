package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "github.com/diogo/ollamaterm/internal/errors"
)

// TestListModels tests the installed-models listing
func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("path = %s, want /api/tags", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		_, _ = w.Write([]byte(`{"models":[
			{"name":"llama3.2:latest","size":2019393189,"modified_at":"2025-08-01T12:00:00Z"},
			{"name":"mistral:latest","size":4113301824,"modified_at":"2025-07-15T09:30:00Z"}
		]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")
	installed, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() unexpected error: %v", err)
	}

	if len(installed) != 2 {
		t.Fatalf("got %d models, want 2", len(installed))
	}
	if installed[0].Name != "llama3.2:latest" {
		t.Errorf("models[0].Name = %s, want llama3.2:latest", installed[0].Name)
	}
	if installed[1].Size != 4113301824 {
		t.Errorf("models[1].Size = %d, want 4113301824", installed[1].Size)
	}
}

// TestListModelsEmpty tests a server with no models
func TestListModelsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")
	installed, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels() unexpected error: %v", err)
	}
	if len(installed) != 0 {
		t.Errorf("got %d models, want 0", len(installed))
	}
}

// TestVersion tests the server version lookup
func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/version" {
			t.Errorf("path = %s, want /api/version", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"version":"0.5.7"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")
	version, err := client.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() unexpected error: %v", err)
	}
	if version != "0.5.7" {
		t.Errorf("Version() = %s, want 0.5.7", version)
	}
}

// TestVersionMalformed tests a version body without the expected field
func TestVersionMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "llama2")
	_, err := client.Version(context.Background())
	if !apierrors.IsParseError(err) {
		t.Errorf("Version() error = %T, want *ParseError", err)
	}
}
