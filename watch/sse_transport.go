package watch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"packline/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SSETransport opens Server-Sent Events subscriptions against the assembly
// API's stream endpoint.
type SSETransport struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewSSETransport creates a transport for the API at baseURL, authenticating
// with the bearer token. A nil client falls back to http.DefaultClient; the
// caller's client must not set a timeout, since a healthy stream stays open
// indefinitely.
func NewSSETransport(baseURL, token string, client *http.Client) *SSETransport {
	if client == nil {
		client = http.DefaultClient
	}

	return &SSETransport{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

// Open subscribes to the bundle's event stream.
func (t *SSETransport) Open(ctx context.Context, bundleID uuid.UUID) (EventStream, error) {
	url := fmt.Sprintf("%s/bundles/%s/stream", t.baseURL, bundleID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Authorization", "Bearer "+t.token)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open event stream")
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()

		return nil, errors.Errorf("unexpected stream status: %d", resp.StatusCode)
	}

	return &sseStream{
		body:   resp.Body,
		reader: bufio.NewReader(resp.Body),
	}, nil
}

// sseStream decodes the SSE wire format: data lines accumulate until a blank
// line terminates the event. The event type travels inside the JSON payload,
// so "event:" lines need no separate handling.
type sseStream struct {
	body   io.ReadCloser
	reader *bufio.Reader
}

func (s *sseStream) Next() (*entity.AssemblyEvent, error) {
	var data bytes.Buffer

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, errors.WithStack(err)
		}

		line = strings.TrimRight(line, "\r\n")

		if line == "" {
			if data.Len() == 0 {
				continue
			}

			var event entity.AssemblyEvent
			if err := json.Unmarshal(data.Bytes(), &event); err != nil {
				return nil, errors.Wrap(err, "failed to decode event")
			}

			return &event, nil
		}

		if rest, ok := strings.CutPrefix(line, "data:"); ok {
			data.WriteString(strings.TrimSpace(rest))
		}
	}
}

func (s *sseStream) Close() error {
	return s.body.Close()
}
