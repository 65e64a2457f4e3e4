package core

// FieldError is used to indicate an error with a specific form/struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// Messages flattens every field message into a flat list, one entry per
// message, preserving field order.
func (err ValidationError) Messages() []string {
	msgs := make([]string, 0, len(err.Fields))
	for _, fld := range err.Fields {
		msgs = append(msgs, fld.Error)
	}
	if len(msgs) == 0 && err.Err != nil {
		msgs = append(msgs, err.Err.Error())
	}
	return msgs
}
