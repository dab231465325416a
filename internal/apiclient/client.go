// Package apiclient reads a ROM catalog from a remote mme API so the UI can
// run without a local ROM.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/L-P/mme/internal/core"
	apperrors "github.com/L-P/mme/internal/errors"
	"github.com/L-P/mme/internal/rom"
)

const (
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4 << 10
)

var _ core.Catalog = (*Client)(nil)

// Config captures the API location and transport.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Client implements core.Catalog over the REST API.
type Client struct {
	baseURL *url.URL
	client  *http.Client
}

// errorBody is the JSON error payload written by the API.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewClient builds an API client. BaseURL must be an absolute http(s) URL.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("api base url is required")
	}

	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http or https, got %q", raw)
	}
	base.Path = strings.TrimRight(base.Path, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: base, client: hc}, nil
}

// Summary fetches GET /api/rom.
func (c *Client) Summary(ctx context.Context) (*core.ROMSummary, error) {
	var out core.ROMSummary
	if err := c.getJSON(ctx, "/api/rom", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Files fetches GET /api/files.
func (c *Client) Files(ctx context.Context) ([]rom.File, error) {
	var out []rom.File
	if err := c.getJSON(ctx, "/api/files", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FileData fetches GET /api/files/{start}.
func (c *Client) FileData(ctx context.Context, start uint32) ([]byte, error) {
	resp, err := c.get(ctx, startPath("/api/files/", start))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "read file data")
	}
	return data, nil
}

// Scenes fetches GET /api/scenes.
func (c *Client) Scenes(ctx context.Context) ([]rom.Scene, error) {
	var out []rom.Scene
	if err := c.getJSON(ctx, "/api/scenes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Scene fetches GET /api/scenes/{start}.
func (c *Client) Scene(ctx context.Context, start uint32) (*rom.Scene, error) {
	var out rom.Scene
	if err := c.getJSON(ctx, startPath("/api/scenes/", start), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Room fetches GET /api/rooms/{start}.
func (c *Client) Room(ctx context.Context, start uint32) (*rom.Room, error) {
	var out rom.Room
	if err := c.getJSON(ctx, startPath("/api/rooms/", start), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Messages fetches GET /api/messages.
func (c *Client) Messages(ctx context.Context) ([]rom.Message, error) {
	var out []rom.Message
	if err := c.getJSON(ctx, "/api/messages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ColorMap fetches GET /api/colormap.
func (c *Client) ColorMap(ctx context.Context) ([]byte, error) {
	resp, err := c.get(ctx, "/api/colormap")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnavailable, "read color map")
	}
	return png, nil
}

func startPath(prefix string, start uint32) string {
	return prefix + strconv.FormatUint(uint64(start), 10)
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	resp, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode %s", path)
	}
	return nil
}

// get issues the request and returns the response on 2xx. The caller closes
// the body.
func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	u := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, apperrors.WrapContext(ctx.Err(), apperrors.ErrCodeUnavailable, "api request "+path)
		}
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeUnavailable, "api request %s failed", path)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	return nil, responseError(resp)
}

// responseError maps an API error response to an AppError.
func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	msg := strings.TrimSpace(string(raw))
	var body errorBody
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		msg = body.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	code := apperrors.ErrCodeInternal
	switch {
	case resp.StatusCode == http.StatusNotFound:
		code = apperrors.ErrCodeNotFound
	case resp.StatusCode == http.StatusBadRequest:
		code = apperrors.ErrCodeValidation
	case resp.StatusCode == http.StatusGatewayTimeout:
		code = apperrors.ErrCodeTimeout
	case resp.StatusCode >= http.StatusInternalServerError:
		code = apperrors.ErrCodeUnavailable
	}

	return &apperrors.AppError{
		Code:    code,
		Message: fmt.Sprintf("api returned %d: %s", resp.StatusCode, msg),
	}
}
