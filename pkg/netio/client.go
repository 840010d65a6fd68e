package netio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnauthorized is returned when the device rejects a command with
// HTTP 401. Callers match it with errors.Is to report a credential
// problem instead of a generic transport failure.
var ErrUnauthorized = errors.New("device rejected credentials")

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one device. The zero value is not usable; Address
// and Port must be set.
type Client struct {
	Address  string
	Port     int
	Username string // basic auth, attached only when non-empty
	Password string
	Timeout  time.Duration // per-request timeout (default 10s)
	Client   HTTPClient    // injected for testing
}

// URL returns the device's JSON endpoint.
func (c *Client) URL() string {
	return fmt.Sprintf("http://%s:%d/netio.json", c.Address, c.Port)
}

func (c *Client) httpClient() HTTPClient {
	if c.Client != nil {
		return c.Client
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	if c.Username != "" {
		req.SetBasicAuth(c.Username, c.Password)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", c.URL(), err)
	}
	return resp, nil
}

// Fetch performs the status GET and returns the raw response body.
// Any non-200 response is a fatal transport error.
func (c *Client) Fetch() ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.URL(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.URL())
	}
	return io.ReadAll(resp.Body)
}

// Status fetches and decodes the device status snapshot.
func (c *Client) Status() (*Snapshot, error) {
	body, err := c.Fetch()
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(body)
}

// OutputCommand addresses one output with an action code.
type OutputCommand struct {
	ID     int `json:"ID"`
	Action int `json:"Action"`
}

// CommandRequest is the POST payload for switching outputs.
type CommandRequest struct {
	Outputs []OutputCommand `json:"Outputs"`
}

// Command POSTs a control request and decodes the device's reply,
// which carries the post-change state of the addressed outputs. A
// 401 response maps to ErrUnauthorized; any other non-200 response
// is a fatal transport error.
func (c *Client) Command(cmd CommandRequest) (*Snapshot, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encoding command: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, c.URL(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%s: %w", c.URL(), ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, c.URL())
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(body)
}

func decodeSnapshot(body []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("decoding device status: %w", err)
	}
	snap.Raw = body
	return &snap, nil
}
