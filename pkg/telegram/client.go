package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// DefaultAPIURL is the standard Bot API endpoint prefix. A method URL is
// this prefix plus the bot token plus "/<method>".
const DefaultAPIURL = "https://api.telegram.org/bot"

// HTTPDoer is the transport the client issues requests through. *http.Client
// satisfies it; tests inject their own.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Telegram Bot API for a single bot token. It holds no
// mutable state after construction and is safe for concurrent use.
type Client struct {
	token  string
	apiURL string
	http   HTTPDoer
	log    *slog.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithAPIURL overrides the Bot API endpoint prefix, e.g. for a local
// Bot API server. The prefix is used verbatim: "<apiURL><token>/<method>".
func WithAPIURL(apiURL string) Option {
	return func(c *Client) { c.apiURL = apiURL }
}

// WithHTTPClient replaces the default transport.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.http = doer }
}

// WithLogger sets the structured logger for API call diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a Bot API client for the given token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:  token,
		apiURL: DefaultAPIURL,
		http:   &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// APIURL returns the configured Bot API endpoint prefix.
func (c *Client) APIURL() string { return c.apiURL }

// Token returns the bot token the client was built with.
func (c *Client) Token() string { return c.token }

func (c *Client) methodURL(method string) string {
	return c.apiURL + c.token + "/" + method
}

// FileURL builds the download URL for a server-side file path reported by
// getFile. The file endpoint mirrors the API endpoint: the default API URL
// maps to the default file URL, a custom "<base>/bot" prefix maps to
// "<base>/file", anything else gets "/file" appended.
func (c *Client) FileURL(filePath string) string {
	var fileBase string
	switch {
	case c.apiURL == DefaultAPIURL:
		fileBase = "https://api.telegram.org/file"
	case strings.HasSuffix(c.apiURL, "/bot"):
		fileBase = strings.TrimSuffix(c.apiURL, "/bot") + "/file"
	default:
		fileBase = c.apiURL + "/file"
	}
	return fileBase + "/bot" + c.token + "/" + filePath
}

// callJSON posts a method call with a JSON body and returns the raw result.
func (c *Client) callJSON(ctx context.Context, method string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal %s params: %w", method, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, method)
}

// callMultipart posts a method call as multipart/form-data, carrying plain
// fields plus one part per upload. Part field names are the attach names
// referenced from the payload, so colliding attach names overwrite each
// other; keeping them unique is the caller's job.
func (c *Client) callMultipart(ctx context.Context, method string, fields map[string]string, files []*MultipartFile) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write %s field %s: %w", method, name, err)
		}
	}
	for _, f := range files {
		part, err := createFilePart(w, f)
		if err != nil {
			return nil, fmt.Errorf("write %s part %s: %w", method, f.FieldName, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, fmt.Errorf("write %s part %s: %w", method, f.FieldName, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finish %s form: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.methodURL(method), &buf)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.do(req, method)
}

func createFilePart(w *multipart.Writer, f *MultipartFile) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.FieldName, f.Filename))
	if f.MIMEType != "" {
		h.Set("Content-Type", f.MIMEType)
	} else {
		h.Set("Content-Type", "application/octet-stream")
	}
	return w.CreatePart(h)
}

func (c *Client) do(req *http.Request, method string) (json.RawMessage, error) {
	c.log.Debug("bot api call", slog.String("method", method))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", method, err)
	}
	var envelope apiResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", method, err)
	}
	if !envelope.OK {
		return nil, &APIError{Code: envelope.ErrorCode, Description: envelope.Description}
	}
	return envelope.Result, nil
}

// GetFile asks the Bot API for metadata about a previously uploaded file.
// The returned FilePath feeds the download pipeline.
func (c *Client) GetFile(ctx context.Context, fileID string) (*File, error) {
	result, err := c.callJSON(ctx, "getFile", map[string]string{"file_id": fileID})
	if err != nil {
		return nil, err
	}
	var file File
	if err := json.Unmarshal(result, &file); err != nil {
		return nil, fmt.Errorf("decode getFile result: %w", err)
	}
	return &file, nil
}

// GetMe returns the bot account behind the configured token. Useful as a
// token sanity check at startup.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	result, err := c.callJSON(ctx, "getMe", nil)
	if err != nil {
		return nil, err
	}
	var user User
	if err := json.Unmarshal(result, &user); err != nil {
		return nil, fmt.Errorf("decode getMe result: %w", err)
	}
	return &user, nil
}
