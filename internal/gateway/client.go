// Package gateway wraps all outbound calls to the upstream work-agency API.
// Every request goes through one configured client that applies a fixed
// timeout, attaches the bearer token when one is available, and normalizes
// the upstream {success, data, message} envelope. 401 responses are mapped
// to an unauthorized error and propagated without retry; the caller decides
// whether to clear the session.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/shshafin/work-agency-client-sub003/internal/errors"
	"github.com/shshafin/work-agency-client-sub003/internal/ports"
)

const defaultTimeout = 15 * time.Second

// TokenSource yields the bearer token for the current request context.
// An empty result means the call goes out unauthenticated.
type TokenSource func(ctx context.Context) string

// Config configures the gateway client.
type Config struct {
	// BaseURL is the upstream API base, including the version prefix
	// (e.g. "http://localhost:5000/api/v1").
	BaseURL string
	// Timeout is the fixed per-request timeout. Defaults to 15s.
	Timeout time.Duration
	// Token supplies the bearer token. Optional.
	Token TokenSource
	// HTTPClient overrides the transport, primarily for tests. Optional.
	HTTPClient *http.Client
}

// Client is the single configured HTTP client for the upstream API.
type Client struct {
	base  *url.URL
	http  *http.Client
	token TokenSource
}

// New constructs a gateway client from Config.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("gateway: BaseURL is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("gateway: parse base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{base: base, http: httpClient, token: cfg.Token}, nil
}

// envelope is the upstream response shape.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Get performs a GET request and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.resolve(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.do(ctx, request{method: http.MethodGet, url: target}, out)
}

// Post performs a JSON POST request and decodes the envelope data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

// Put performs a JSON PUT request and decodes the envelope data into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, request{method: http.MethodDelete, url: c.resolve(path)}, nil)
}

// FilePart and MultipartForm are defined with the Gateway port so services
// can assemble uploads without importing this package.
type (
	FilePart      = ports.FilePart
	MultipartForm = ports.MultipartForm
)

// Upload performs a multipart POST for file-bearing endpoints and decodes the
// envelope data into out. Files are written in the order given.
func (c *Client) Upload(ctx context.Context, path string, form MultipartForm, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, value := range form.Fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("gateway: write field %q: %w", name, err)
		}
	}
	for _, f := range form.Files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return fmt.Errorf("gateway: create file part %q: %w", f.Filename, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("gateway: write file part %q: %w", f.Filename, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("gateway: close multipart writer: %w", err)
	}

	return c.do(ctx, request{
		method:      http.MethodPost,
		url:         c.resolve(path),
		body:        &buf,
		contentType: mw.FormDataContentType(),
	}, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}
	return c.do(ctx, request{
		method:      method,
		url:         c.resolve(path),
		body:        reader,
		contentType: "application/json",
	}, out)
}

type request struct {
	method      string
	url         string
	body        io.Reader
	contentType string
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, req.body)
	if err != nil {
		return fmt.Errorf("gateway: build request: %w", err)
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.token != nil {
		if tok := c.token(ctx); tok != "" {
			// One scheme everywhere: "Bearer <token>".
			httpReq.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeGateway, "upstream request failed")
	}
	defer resp.Body.Close() //nolint:errcheck // nothing actionable on close failure

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeGateway, "read upstream response")
	}

	var env envelope
	if len(raw) > 0 {
		// Tolerate non-JSON bodies on error statuses; the envelope stays zero.
		_ = json.Unmarshal(raw, &env)
	} else if resp.StatusCode < 400 {
		// Some endpoints answer success statuses with no body at all.
		env.Success = true
	}

	if err := classifyResponse(resp.StatusCode, env); err != nil {
		return err
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperrors.Wrap(err, apperrors.ErrCodeGateway, "decode upstream data")
		}
	}
	return nil
}

// classifyResponse maps status codes and envelope failures to typed errors.
// Server-provided messages are preferred; a generic message is the fallback.
func classifyResponse(status int, env envelope) error {
	message := env.Message

	switch {
	case status == http.StatusUnauthorized:
		if message == "" {
			message = "authentication required"
		}
		return apperrors.Unauthorized(message)
	case status == http.StatusForbidden:
		if message == "" {
			message = "insufficient permissions"
		}
		return apperrors.Forbidden(message)
	case status == http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return apperrors.NotFound(message)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if message == "" {
			message = "invalid request"
		}
		return apperrors.Validation(message)
	case status >= 400:
		if message == "" {
			message = fmt.Sprintf("upstream returned status %d", status)
		}
		return apperrors.Gateway(message)
	case !env.Success:
		if message == "" {
			message = "request failed"
		}
		return apperrors.Gateway(message)
	}
	return nil
}

func (c *Client) resolve(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.base.String() + path
}
