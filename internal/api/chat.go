package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/ollamaterm/internal/errors"
	"github.com/diogo/ollamaterm/internal/models"
)

// Chat sends a conversation and blocks until the complete reply arrives.
// The messages slice is forwarded verbatim; input constraints are checked
// before any network call is made.
func (c *Client) Chat(ctx context.Context, messages []models.Message) (*models.ChatResponse, error) {
	body, err := c.buildChatRequest(messages, false)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.doRequest(ctx, http.MethodPost, models.PathChat, body)
	if err != nil {
		return nil, err
	}

	data, err := readAllAndClose(resp.Body, c.endpoint(models.PathChat))
	if err != nil {
		return nil, err
	}

	return parseChatResponse(data)
}

// ChatStream sends a conversation and returns a lazy iterator over the
// newline-delimited reply fragments. The stream is single-consumer and
// must be closed by the caller; cancelling ctx also releases the
// underlying connection.
func (c *Client) ChatStream(ctx context.Context, messages []models.Message) (*Stream, error) {
	body, err := c.buildChatRequest(messages, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, models.PathChat, body)
	if err != nil {
		return nil, err
	}

	return newStream(resp.Body, c.endpoint(models.PathChat)), nil
}

// buildChatRequest validates the conversation and marshals the request body.
func (c *Client) buildChatRequest(messages []models.Message, stream bool) ([]byte, error) {
	model := c.GetModel()
	if model == "" {
		return nil, apierrors.NewValidationError("model must not be empty")
	}
	if err := models.ValidateMessages(messages); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	body, err := json.Marshal(models.ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   stream,
	})
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}
	return body, nil
}

// parseChatResponse decodes a non-streaming chat body, rejecting
// payloads that are not JSON or that lack the assistant message.
func parseChatResponse(data []byte) (*models.ChatResponse, error) {
	if !gjson.ValidBytes(data) {
		return nil, apierrors.NewParseError("response is not valid JSON", "")
	}

	parsed := gjson.ParseBytes(data)
	if msg := parsed.Get("error"); msg.Exists() && msg.String() != "" {
		return nil, apierrors.NewParseError(msg.String(), "error")
	}
	if !parsed.Get("message").Exists() {
		return nil, apierrors.NewParseError("response has no message field", "message")
	}
	if !parsed.Get("message.content").Exists() {
		return nil, apierrors.NewParseError("response message has no content", "message.content")
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, apierrors.NewParseError(err.Error(), "")
	}
	return &resp, nil
}
