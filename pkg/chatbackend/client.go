// Package chatbackend is the HTTP client of the remote booking assistant.
package chatbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"travel-backoffice/pkg/taskstack"
)

// ErrUnavailable wraps every transport, status and decoding failure.
var ErrUnavailable = errors.New("chat backend unavailable")

// Config configures a Client.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client calls the chat backend over JSON/HTTPS.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client. A zero timeout defaults to 30 seconds.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("chatbackend: url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Send posts a user message via POST /chat.
func (c *Client) Send(ctx context.Context, req SendRequest) (Reply, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to marshal chat request: %w", err)
	}
	return c.do(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
}

// Poll fetches stack progress via GET /chat/{id}/stack.
func (c *Client) Poll(ctx context.Context, sessionID string) (Reply, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("%s/chat/%s/stack", c.baseURL, url.PathEscape(sessionID)), nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader) (Reply, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to build chat request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Reply{}, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var reply Reply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return Reply{}, fmt.Errorf("%w: decode reply: %v", ErrUnavailable, err)
	}
	reply.Stack = cleanStack(reply.Stack)
	reply.Options = cleanOptions(reply.Options)
	return reply, nil
}

// cleanStack drops items the reconciler cannot key or classify.
func cleanStack(items []taskstack.StackItem) []taskstack.StackItem {
	out := items[:0:0]
	for _, it := range items {
		if it.ID != "" && it.Status.Valid() {
			out = append(out, it)
		}
	}
	return out
}

func cleanOptions(opts []TravelOption) []TravelOption {
	out := opts[:0:0]
	for _, o := range opts {
		if o.Valid() {
			out = append(out, o)
		}
	}
	return out
}
