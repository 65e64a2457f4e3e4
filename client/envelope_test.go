package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagesUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Messages
	}{
		{name: "bare string", in: `"el código ya existe"`, want: Messages{"el código ya existe"}},
		{name: "array", in: `["muy corto","solo dígitos"]`, want: Messages{"muy corto", "solo dígitos"}},
		{name: "empty array", in: `[]`, want: Messages{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Messages
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var got Messages
	assert.Error(t, json.Unmarshal([]byte(`{"not":"messages"}`), &got))
}

func TestFieldErrorsFlatten(t *testing.T) {
	fe := FieldErrors{
		"nombre": {"el nombre es obligatorio"},
		"ci":     {"solo se permiten dígitos", "mínimo 5 caracteres"},
	}
	// field-name order, messages kept in sequence within a field
	assert.Equal(t, []string{
		"solo se permiten dígitos",
		"mínimo 5 caracteres",
		"el nombre es obligatorio",
	}, fe.Flatten())

	assert.Empty(t, FieldErrors{}.Flatten())
	assert.Empty(t, FieldErrors(nil).Flatten())
}

func TestDecodeData(t *testing.T) {
	type rec struct {
		ID     int    `json:"id"`
		Nombre string `json:"nombre"`
	}

	t.Run("success", func(t *testing.T) {
		env := &Envelope{Success: true, Data: json.RawMessage(`{"id":7,"nombre":"Aula Magna"}`)}
		got, err := DecodeData[rec](env)
		require.NoError(t, err)
		assert.Equal(t, rec{ID: 7, Nombre: "Aula Magna"}, got)
	})

	t.Run("failure envelope decodes to zero value", func(t *testing.T) {
		env := &Envelope{Success: false, Message: "no encontrado", Data: json.RawMessage(`{"id":7}`)}
		got, err := DecodeData[rec](env)
		require.NoError(t, err)
		assert.Zero(t, got)
	})

	t.Run("malformed data", func(t *testing.T) {
		env := &Envelope{Success: true, Data: json.RawMessage(`"not an object"`)}
		_, err := DecodeData[rec](env)
		assert.Error(t, err)
	})
}

func TestEnvelopeUnmarshal(t *testing.T) {
	raw := `{"success":false,"message":"datos inválidos","errors":{"email":"formato inválido","ci":["solo dígitos"]}}`
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "datos inválidos", env.Message)
	assert.Equal(t, Messages{"formato inválido"}, env.Errors["email"])
	assert.Equal(t, Messages{"solo dígitos"}, env.Errors["ci"])
}
