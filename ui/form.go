package ui

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
)

type FieldKind int

const (
	KindText FieldKind = iota
	KindInt
	KindBool
	KindSelect
)

// Field is one entry of a declarative form schema: wire name, presentation
// label, coercion kind and validation flags, consumed uniformly by every
// create/edit form instead of ad-hoc per-page coercion.
type Field struct {
	Name      string
	Label     string
	Kind      FieldKind
	Required  bool
	Immutable bool // natural keys: disabled in edit mode, omitted from update payloads
	Default   string
	Options   []string // for KindSelect
}

// Form holds all values as strings; Coerce applies the per-field schema at
// submit time.
type Form struct {
	fields  []Field
	values  map[string]string
	editing bool
}

func NewForm(fields ...Field) *Form {
	f := &Form{fields: fields}
	f.Reset()
	return f
}

func (f *Form) Fields() []Field { return f.fields }
func (f *Form) Editing() bool   { return f.editing }

// Reset restores every field to its default and leaves edit mode.
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.fields))
	for _, fld := range f.fields {
		f.values[fld.Name] = fld.Default
	}
	f.editing = false
}

// BeginCreate prepares a default-valued form.
func (f *Form) BeginCreate() { f.Reset() }

// BeginEdit pre-populates the form from the selected record's values and
// enters edit mode, which disables immutable fields.
func (f *Form) BeginEdit(values map[string]string) {
	f.Reset()
	for name, val := range values {
		if _, known := f.values[name]; known {
			f.values[name] = val
		}
	}
	f.editing = true
}

// Editable reports whether the field accepts input in the current mode.
func (f *Form) Editable(name string) bool {
	for _, fld := range f.fields {
		if fld.Name == name {
			return !(f.editing && fld.Immutable)
		}
	}
	return false
}

// Set stores a value; rejected for unknown or currently-disabled fields.
func (f *Form) Set(name, val string) bool {
	if !f.Editable(name) {
		return false
	}
	f.values[name] = val
	return true
}

func (f *Form) Get(name string) string { return f.values[name] }

// Values returns a copy of the current string values.
func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// Coerce validates and converts the string values into a typed payload.
// Ints are parsed, bools normalized ('true'|'1' → true), selects checked
// against their options. In edit mode immutable fields are omitted from the
// payload entirely. Failures come back as a *core.ValidationError with one
// entry per offending field.
func (f *Form) Coerce() (map[string]interface{}, error) {
	payload := make(map[string]interface{}, len(f.fields))
	var fldErrs []core.FieldError

	for _, fld := range f.fields {
		if f.editing && fld.Immutable {
			continue
		}
		raw := core.CleanString(f.values[fld.Name])

		if raw == "" {
			if fld.Required && fld.Kind != KindBool {
				fldErrs = append(fldErrs, core.FieldError{Field: fld.Name, Error: "this field is required"})
				continue
			}
			if fld.Kind == KindBool {
				payload[fld.Name] = false
				continue
			}
			continue // optional and absent: leave it out of the payload
		}

		switch fld.Kind {
		case KindInt:
			n, err := strconv.Atoi(raw)
			if err != nil {
				fldErrs = append(fldErrs, core.FieldError{Field: fld.Name, Error: "must be a whole number"})
				continue
			}
			payload[fld.Name] = n
		case KindBool:
			b, err := parseBool(raw)
			if err != nil {
				fldErrs = append(fldErrs, core.FieldError{Field: fld.Name, Error: "must be true or false"})
				continue
			}
			payload[fld.Name] = b
		case KindSelect:
			if len(fld.Options) > 0 && !contains(fld.Options, raw) {
				fldErrs = append(fldErrs, core.FieldError{Field: fld.Name, Error: "invalid option"})
				continue
			}
			payload[fld.Name] = raw
		default:
			payload[fld.Name] = raw
		}
	}

	if len(fldErrs) > 0 {
		return nil, core.NewValidationError(errors.New("validation failed"), fldErrs...)
	}
	return payload, nil
}

// parseBool accepts the loose truthy forms the backend's forms historically
// produced: 'true'|'1' and 'false'|'0'.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, errors.Errorf("invalid bool %q", s)
}

func contains(opts []string, val string) bool {
	for _, o := range opts {
		if o == val {
			return true
		}
	}
	return false
}
