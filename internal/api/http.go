package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/ollamaterm/internal/errors"
	"github.com/diogo/ollamaterm/internal/models"
)

// maxErrorBody caps how much of an error response is kept for diagnostics.
const maxErrorBody = 4096

// doRequest issues one HTTP request and returns the raw response.
// Transport failures are classified into timeout or network errors;
// non-2xx responses become APIErrors with the body attached.
// On success the caller owns resp.Body.
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	endpoint := c.endpoint(path)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpoint, err)
	}
	for key, value := range models.DefaultHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errorBody := readLimited(resp.Body, maxErrorBody)
		_ = resp.Body.Close()
		return nil, apierrors.NewAPIErrorWithBody(
			resp.StatusCode, endpoint, serverErrorMessage(errorBody), string(errorBody))
	}

	return resp, nil
}

// readAllAndClose drains a response body completely.
func readAllAndClose(body io.ReadCloser, endpoint string) ([]byte, error) {
	defer func() { _ = body.Close() }()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpoint, err)
	}
	return data, nil
}

// readLimited reads at most limit bytes, ignoring read errors.
func readLimited(r io.Reader, limit int64) []byte {
	data, _ := io.ReadAll(io.LimitReader(r, limit))
	return data
}

// serverErrorMessage extracts the "error" field Ollama puts in JSON error
// bodies, falling back to a generic message for opaque bodies.
func serverErrorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "error"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	return "request failed"
}

// classifyTransportError distinguishes deadline failures from plain
// connection failures.
func classifyTransportError(endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apierrors.NewTimeoutError(endpoint)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apierrors.NewTimeoutError(endpoint)
	}
	return apierrors.NewNetworkError(endpoint, err)
}
