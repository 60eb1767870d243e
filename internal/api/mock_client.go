package api

import (
	"context"
	"io"
	"strings"

	"github.com/diogo/ollamaterm/internal/models"
)

// ClientInterface abstracts the Ollama client for consumers that want
// to substitute a mock (the command layer tests do).
type ClientInterface interface {
	Chat(ctx context.Context, messages []models.Message) (*models.ChatResponse, error)
	ChatStream(ctx context.Context, messages []models.Message) (*Stream, error)
	ListModels(ctx context.Context) ([]models.ModelInfo, error)
	Pull(ctx context.Context, name string, fn PullProgressFunc) error
	Version(ctx context.Context) (string, error)
	BaseURL() string
	GetModel() string
	SetModel(model string)
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// MockClient is a mock implementation of ClientInterface for testing
type MockClient struct {
	// Mock return values
	ChatVal       *models.ChatResponse
	ChatErr       error
	StreamBody    string // newline-delimited JSON served by ChatStream
	StreamErr     error
	ListModelsVal []models.ModelInfo
	ListModelsErr error
	PullErr       error
	VersionVal    string
	VersionErr    error
	BaseURLVal    string
	Model         string

	// Call counters/recorders
	ChatCalls    int
	StreamCalls  int
	PullCalls    int
	LastMessages []models.Message
	LastPullName string
}

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

func (m *MockClient) Chat(ctx context.Context, messages []models.Message) (*models.ChatResponse, error) {
	m.ChatCalls++
	m.LastMessages = messages
	return m.ChatVal, m.ChatErr
}

func (m *MockClient) ChatStream(ctx context.Context, messages []models.Message) (*Stream, error) {
	m.StreamCalls++
	m.LastMessages = messages
	if m.StreamErr != nil {
		return nil, m.StreamErr
	}
	return newStream(io.NopCloser(strings.NewReader(m.StreamBody)), m.BaseURLVal+models.PathChat), nil
}

func (m *MockClient) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	return m.ListModelsVal, m.ListModelsErr
}

func (m *MockClient) Pull(ctx context.Context, name string, fn PullProgressFunc) error {
	m.PullCalls++
	m.LastPullName = name
	return m.PullErr
}

func (m *MockClient) Version(ctx context.Context) (string, error) {
	return m.VersionVal, m.VersionErr
}

func (m *MockClient) BaseURL() string {
	return m.BaseURLVal
}

func (m *MockClient) GetModel() string {
	return m.Model
}

func (m *MockClient) SetModel(model string) {
	m.Model = model
}
