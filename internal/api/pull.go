package api

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/ollamaterm/internal/errors"
	"github.com/diogo/ollamaterm/internal/models"
)

// PullProgressFunc receives each progress fragment while a model downloads.
// Returning an error aborts the pull.
type PullProgressFunc func(progress models.PullProgress) error

// Pull asks the server to download a model, reporting progress through fn.
// fn may be nil. The pull is bounded only by ctx: model downloads can
// take far longer than any request timeout.
func (c *Client) Pull(ctx context.Context, name string, fn PullProgressFunc) error {
	if strings.TrimSpace(name) == "" {
		return apierrors.NewValidationError("model name must not be empty")
	}

	body, err := json.Marshal(models.PullRequest{Name: name, Stream: true})
	if err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	resp, err := c.doRequest(ctx, http.MethodPost, models.PathPull, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	endpoint := c.endpoint(models.PathPull)
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxChunkSize)

	sawTerminal := false
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		if msg := gjson.GetBytes(line, "error"); msg.Exists() && msg.String() != "" {
			return apierrors.NewStreamError(msg.String(), nil)
		}

		var progress models.PullProgress
		if err := json.Unmarshal(line, &progress); err != nil {
			return apierrors.NewParseError(err.Error(), "")
		}

		if fn != nil {
			if err := fn(progress); err != nil {
				return err
			}
		}
		if progress.Status == "success" {
			sawTerminal = true
		}
	}
	if err := scanner.Err(); err != nil {
		return apierrors.NewStreamError(endpoint, err)
	}
	if !sawTerminal {
		return apierrors.NewStreamError("connection closed before pull completed", nil)
	}
	return nil
}
