package client

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

	"github.com/pkg/errors"
)

// TokenSource provides the bearer token attached to every request.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TransportError is returned for genuine transport faults: network failures
// and non-2xx statuses. When the error response body carried a decodable
// envelope it rides along, so callers can still surface backend messages.
type TransportError struct {
	Status   int // 0 when no HTTP response was received
	Envelope *Envelope
	Err      error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("transport: %v", e.Err)
	}
	return fmt.Sprintf("transport: status %d", e.Status)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client issues requests against the backend and decodes the uniform
// response envelope. It does not retry and it does not translate failures;
// that is the resource layer's job.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
}

func New(baseURL string, timeout time.Duration, tokens TokenSource) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing base URL %q", baseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("base URL %q is not absolute", baseURL)
	}
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
	}, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	rdr, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, nil, rdr, "application/json")
}

func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Envelope, error) {
	rdr, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, path, nil, rdr, "application/json")
}

func (c *Client) Delete(ctx context.Context, path string) (*Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "")
}

// Upload sends `file` as a multipart form under the "archivo" field,
// alongside any extra string fields.
func (c *Client) Upload(ctx context.Context, path, filename string, file io.Reader, fields map[string]string) (*Envelope, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("archivo", filename)
	if err != nil {
		return nil, errors.Wrap(err, "creating multipart file part")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errors.Wrap(err, "copying upload body")
	}
	for key, val := range fields {
		if err := mw.WriteField(key, val); err != nil {
			return nil, errors.Wrapf(err, "writing multipart field %q", key)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, errors.Wrap(err, "closing multipart writer")
	}
	return c.do(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType())
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*Envelope, error) {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Status: res.StatusCode, Err: errors.Wrap(err, "reading response body")}
	}

	var env Envelope
	decodeErr := json.Unmarshal(raw, &env)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		terr := &TransportError{Status: res.StatusCode, Err: errors.Errorf("unexpected status %d", res.StatusCode)}
		if decodeErr == nil {
			terr.Envelope = &env
		}
		return nil, terr
	}
	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "decoding envelope")
	}
	return &env, nil
}

func jsonBody(body interface{}) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "encoding request body")
	}
	return bytes.NewReader(data), nil
}
