package api

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/diogo/ollamaterm/internal/errors"
	"github.com/diogo/ollamaterm/internal/models"
)

// ListModels returns the models installed on the server.
func (c *Client) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.doRequest(ctx, http.MethodGet, models.PathTags, nil)
	if err != nil {
		return nil, err
	}

	data, err := readAllAndClose(resp.Body, c.endpoint(models.PathTags))
	if err != nil {
		return nil, err
	}

	var tags models.TagsResponse
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, apierrors.NewParseError(err.Error(), "models")
	}
	return tags.Models, nil
}

// Version returns the server's version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.doRequest(ctx, http.MethodGet, models.PathVersion, nil)
	if err != nil {
		return "", err
	}

	data, err := readAllAndClose(resp.Body, c.endpoint(models.PathVersion))
	if err != nil {
		return "", err
	}

	var version models.VersionResponse
	if err := json.Unmarshal(data, &version); err != nil {
		return "", apierrors.NewParseError(err.Error(), "version")
	}
	if version.Version == "" {
		return "", apierrors.NewParseError("response has no version field", "version")
	}
	return version.Version, nil
}
