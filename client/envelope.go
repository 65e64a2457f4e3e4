package client

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"
)

// Messages holds the message(s) reported for a single field. The backend
// sends either a bare string or an array of strings; both decode here.
type Messages []string

func (m *Messages) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*m = Messages{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return errors.Wrap(err, "decoding field messages")
	}
	*m = many
	return nil
}

// FieldErrors maps a field name to its validation messages.
type FieldErrors map[string]Messages

// Flatten returns every message across all fields, in field-name order.
func (fe FieldErrors) Flatten() []string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var msgs []string
	for _, field := range fields {
		msgs = append(msgs, fe[field]...)
	}
	return msgs
}

// Envelope is the uniform wrapper every backend response follows.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  FieldErrors     `json:"errors,omitempty"`
}

// DecodeData unmarshals the envelope payload into T. Success=false
// envelopes carry no usable data and decode to the zero value.
func DecodeData[T any](env *Envelope) (T, error) {
	var out T
	if !env.Success || len(env.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, errors.Wrap(err, "decoding envelope data")
	}
	return out, nil
}

// Page is the Laravel-style pagination envelope returned by list endpoints.
type Page[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// Result is the uniform outcome of a single-record operation. Expected
// failures (validation, 404, permission denial, transport faults) land here
// with Success=false; they are never surfaced as Go errors.
type Result[T any] struct {
	Success bool
	Data    T
	Message string
	Errors  FieldErrors
}

// Outcome is a Result without a payload (deletes, workflow verbs).
type Outcome struct {
	Success bool
	Message string
	Errors  FieldErrors
}

// ListResult is the uniform outcome of a list operation.
type ListResult[T any] struct {
	Success bool
	Page    Page[T]
	Message string
}

// ImportSummary reports the outcome of a spreadsheet import.
type ImportSummary struct {
	TotalRows int           `json:"total_rows"`
	Created   int           `json:"created"`
	Updated   int           `json:"updated"`
	Failed    int           `json:"failed"`
	Errors    []ImportError `json:"errors,omitempty"`
}

// ImportError describes why a specific spreadsheet row was not imported.
type ImportError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}
