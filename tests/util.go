package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/labstack/echo/v4"
)

// Backend is a fake REST API for client tests. Handlers are registered per
// route and every request is recorded so tests can assert call counts —
// e.g. that a debounced search issued exactly one request, or that a local
// validation gate issued none.
type Backend struct {
	e   *echo.Echo
	srv *httptest.Server

	mu    sync.Mutex
	calls []Call
}

// Call is one recorded request.
type Call struct {
	Method string
	Path   string
	Query  map[string]string
}

func NewBackend() *Backend {
	b := &Backend{e: echo.New()}
	b.e.HideBanner = true
	b.e.Use(b.record)
	b.srv = httptest.NewServer(b.e)
	return b
}

func (b *Backend) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := make(map[string]string)
		for key, vals := range c.QueryParams() {
			if len(vals) > 0 {
				query[key] = vals[0]
			}
		}
		b.mu.Lock()
		b.calls = append(b.calls, Call{
			Method: c.Request().Method,
			Path:   c.Request().URL.Path,
			Query:  query,
		})
		b.mu.Unlock()
		return next(c)
	}
}

// URL is the backend's base URL, to be passed to client.New.
func (b *Backend) URL() string { return b.srv.URL }

func (b *Backend) Close() { b.srv.Close() }

func (b *Backend) Handle(method, path string, h echo.HandlerFunc) {
	b.e.Add(method, path, h)
}

// Calls returns every recorded request so far.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallCount counts recorded requests for one route.
func (b *Backend) CallCount(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	var n int
	for _, call := range b.calls {
		if call.Method == method && call.Path == path {
			n++
		}
	}
	return n
}

// ResetCalls clears the request log.
func (b *Backend) ResetCalls() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
}

// envelope mirrors the backend's uniform response shape.
type envelope struct {
	Success bool                `json:"success"`
	Data    interface{}         `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// OK writes a success envelope.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

// OKMsg writes a success envelope with a message and no data.
func OKMsg(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Message: message})
}

// Paged writes a success envelope whose data is a Laravel-style page.
func Paged(c echo.Context, data interface{}, page, perPage, lastPage, total, from, to int) error {
	return c.JSON(http.StatusOK, envelope{Success: true, Data: map[string]interface{}{
		"data":         data,
		"current_page": page,
		"per_page":     perPage,
		"last_page":    lastPage,
		"total":        total,
		"from":         from,
		"to":           to,
	}})
}

// Fail writes a failure envelope with the given HTTP status.
func Fail(c echo.Context, status int, message string, fieldErrs map[string][]string) error {
	return c.JSON(status, envelope{Success: false, Message: message, Errors: fieldErrs})
}

// Token is a fixed-string client.TokenSource.
type Token string

func (t Token) Token() string { return string(t) }
