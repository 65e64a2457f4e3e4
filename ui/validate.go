package ui

import (
	"encoding/json"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// ValidateFunc checks a coerced form payload before it is submitted.
// A *core.ValidationError surfaces as one notification per field message
// and blocks the request entirely.
type ValidateFunc func(payload map[string]interface{}, editing bool) error

// Validatable is implemented by the typed create/update payload structs.
type Validatable interface {
	Validate(validate *validator.Validate, translator ut.Translator) error
}

// StructValidator builds a submit hook that decodes the coerced payload
// into the entity's create or update struct and runs its validator.
func StructValidator[C Validatable, U Validatable](validate *validator.Validate, translator ut.Translator) ValidateFunc {
	return func(payload map[string]interface{}, editing bool) error {
		if editing {
			var upd U
			if err := decodePayload(payload, &upd); err != nil {
				return err
			}
			return upd.Validate(validate, translator)
		}
		var crt C
		if err := decodePayload(payload, &crt); err != nil {
			return err
		}
		return crt.Validate(validate, translator)
	}
}

func decodePayload(payload map[string]interface{}, dst interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encoding form payload")
	}
	return errors.Wrap(json.Unmarshal(raw, dst), "decoding form payload")
}
