package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/ollamaterm/internal/errors"
	"github.com/diogo/ollamaterm/internal/models"
)

// maxChunkSize bounds one newline-delimited fragment. Fragments carry a
// few tokens each, so this is generous.
const maxChunkSize = 1 << 20

// Stream iterates over the fragments of a streaming chat response.
// It is lazy (fragments are decoded as they arrive), finite and not
// restartable. A Stream must be consumed by a single goroutine.
type Stream struct {
	body     io.ReadCloser
	scanner  *bufio.Scanner
	endpoint string
	done     bool
	closed   bool
}

// newStream wraps a response body in a fragment iterator.
func newStream(body io.ReadCloser, endpoint string) *Stream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxChunkSize)

	return &Stream{
		body:     body,
		scanner:  scanner,
		endpoint: endpoint,
	}
}

// Recv returns the next fragment. The terminal fragment carries Done=true;
// the call after it returns io.EOF. If the connection closes before a
// terminal fragment is seen, Recv returns a stream-interruption error.
func (s *Stream) Recv() (*models.ChatChunk, error) {
	if s.done {
		return nil, io.EOF
	}
	if s.closed {
		return nil, apierrors.NewStreamError("stream already closed", nil)
	}

	for {
		if !s.scanner.Scan() {
			s.done = true
			_ = s.Close()
			if err := s.scanner.Err(); err != nil {
				return nil, apierrors.NewStreamError(s.endpoint, err)
			}
			// EOF without a done marker: the server hung up mid-reply.
			return nil, apierrors.NewStreamError("connection closed before final chunk", nil)
		}

		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		if msg := gjson.GetBytes(line, "error"); msg.Exists() && msg.String() != "" {
			s.done = true
			_ = s.Close()
			return nil, apierrors.NewStreamError(msg.String(), nil)
		}

		var chunk models.ChatChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			s.done = true
			_ = s.Close()
			return nil, apierrors.NewParseError(err.Error(), "")
		}

		if chunk.Done {
			s.done = true
			_ = s.Close()
		}
		return &chunk, nil
	}
}

// Close releases the underlying connection. It is safe to call more
// than once and after the stream has ended.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.body.Close()
}

// Text drains the remaining fragments and concatenates their contents
// in arrival order.
func (s *Stream) Text() (string, error) {
	var sb strings.Builder
	for {
		chunk, err := s.Recv()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(chunk.Message.Content)
	}
}
