package client

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

const connectionErrMsg = "error de conexión con el servidor"

// ListParams carries the list-endpoint query state. Blank search and unset
// filters are stripped before the request goes out.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	Filters *Filters
}

func (p ListParams) values() url.Values {
	v := p.Filters.Values()
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if s := strings.TrimSpace(p.Search); s != "" {
		v.Set("search", s)
	}
	return v
}

// Resource is the single shared request/decode path behind every entity
// service: one generic envelope, one failure-normalization policy.
type Resource[T any] struct {
	c    *Client
	path string
}

func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: "/" + strings.Trim(path, "/")}
}

// Path returns the resource's base path.
func (r *Resource[T]) Path() string { return r.path }

// Client returns the underlying HTTP client, for entity-specific verbs.
func (r *Resource[T]) Client() *Client { return r.c }

func (r *Resource[T]) List(ctx context.Context, p ListParams) ListResult[T] {
	env, err := r.c.Get(ctx, r.path, p.values())
	if err != nil {
		return ListResult[T]{Message: failureMessage(err)}
	}
	if !env.Success {
		return ListResult[T]{Message: messageOr(env.Message, "no se pudo obtener la lista")}
	}
	page, err := DecodeData[Page[T]](env)
	if err != nil {
		return ListResult[T]{Message: connectionErrMsg}
	}
	return ListResult[T]{Success: true, Page: page, Message: env.Message}
}

func (r *Resource[T]) Get(ctx context.Context, id int) Result[T] {
	env, err := r.c.Get(ctx, fmt.Sprintf("%s/%d", r.path, id), nil)
	return r.toResult(env, err)
}

func (r *Resource[T]) Create(ctx context.Context, data interface{}) Result[T] {
	env, err := r.c.Post(ctx, r.path, data)
	return r.toResult(env, err)
}

func (r *Resource[T]) Update(ctx context.Context, id int, data interface{}) Result[T] {
	env, err := r.c.Put(ctx, fmt.Sprintf("%s/%d", r.path, id), data)
	return r.toResult(env, err)
}

func (r *Resource[T]) Delete(ctx context.Context, id int) Outcome {
	env, err := r.c.Delete(ctx, fmt.Sprintf("%s/%d", r.path, id))
	return toOutcome(env, err)
}

// ExportAll fetches the full unpaginated result set honoring the filters,
// for client-side CSV serialization.
func (r *Resource[T]) ExportAll(ctx context.Context, filters *Filters) Result[[]T] {
	v := filters.Values()
	v.Set("all", "true")
	env, err := r.c.Get(ctx, r.path, v)
	if err != nil {
		return Result[[]T]{Message: failureMessage(err)}
	}
	return decodeResult[[]T](env)
}

// Import uploads a spreadsheet to the resource's import endpoint and
// reports per-row results.
func (r *Resource[T]) Import(ctx context.Context, filename string, file io.Reader) Result[ImportSummary] {
	env, err := r.c.Upload(ctx, r.path+"/import", filename, file, nil)
	if err != nil {
		return Result[ImportSummary]{Message: failureMessage(err)}
	}
	return decodeResult[ImportSummary](env)
}

// Do issues a workflow verb (POST {path}/{id}/{action}) with an optional
// JSON body and normalizes the response.
func (r *Resource[T]) Do(ctx context.Context, id int, action string, body interface{}) Outcome {
	env, err := r.c.Post(ctx, fmt.Sprintf("%s/%d/%s", r.path, id, action), body)
	return toOutcome(env, err)
}

func (r *Resource[T]) toResult(env *Envelope, err error) Result[T] {
	if err != nil {
		return resultFromErr[T](err)
	}
	return decodeResult[T](env)
}

func decodeResult[T any](env *Envelope) Result[T] {
	if !env.Success {
		return Result[T]{
			Message: messageOr(env.Message, "la operación falló"),
			Errors:  env.Errors,
		}
	}
	data, err := DecodeData[T](env)
	if err != nil {
		return Result[T]{Message: connectionErrMsg}
	}
	return Result[T]{Success: true, Data: data, Message: env.Message}
}

func toOutcome(env *Envelope, err error) Outcome {
	if err != nil {
		res := resultFromErr[struct{}](err)
		return Outcome{Message: res.Message, Errors: res.Errors}
	}
	if !env.Success {
		return Outcome{Message: messageOr(env.Message, "la operación falló"), Errors: env.Errors}
	}
	return Outcome{Success: true, Message: env.Message}
}

// resultFromErr normalizes a transport fault. A fault that still carried a
// backend envelope (4xx with a JSON body) surfaces that envelope's message
// and field errors; anything else becomes a generic connection error.
func resultFromErr[T any](err error) Result[T] {
	if terr, ok := err.(*TransportError); ok && terr.Envelope != nil {
		return Result[T]{
			Message: messageOr(terr.Envelope.Message, connectionErrMsg),
			Errors:  terr.Envelope.Errors,
		}
	}
	return Result[T]{Message: connectionErrMsg}
}

func failureMessage(err error) string {
	if terr, ok := err.(*TransportError); ok && terr.Envelope != nil && terr.Envelope.Message != "" {
		return terr.Envelope.Message
	}
	return connectionErrMsg
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
