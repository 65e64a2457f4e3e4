package accounts

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/session"
)

// Usuario is a platform account. Passwords are generated and delivered by
// the backend; the console never sees them.
type Usuario struct {
	ID           int       `json:"id"`
	Codigo       string    `json:"codigo"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	RolID        int       `json:"rol_id"`
	Rol          string    `json:"rol,omitempty"`
	Activo       bool      `json:"activo"`
	UltimoAcceso null.Time `json:"ultimo_acceso,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUsuario: codigo is the natural key and immutable once created.
type NewUsuario struct {
	Codigo string `json:"codigo" validate:"required,notblank"`
	Nombre string `json:"nombre" validate:"required,notblank"`
	Email  string `json:"email" validate:"required,email"`
	RolID  int    `json:"rol_id" validate:"required,gt=0"`
	Activo bool   `json:"activo"`
}

func (u NewUsuario) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, u)
}

type UpdateUsuario struct {
	Nombre string `json:"nombre" validate:"required,notblank"`
	Email  string `json:"email" validate:"required,email"`
	RolID  int    `json:"rol_id" validate:"required,gt=0"`
	Activo bool   `json:"activo"`
}

func (u UpdateUsuario) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, u)
}

// Rol groups a permission set.
type Rol struct {
	ID          int                  `json:"id"`
	Nombre      string               `json:"nombre"`
	Descripcion null.String          `json:"descripcion,omitempty"`
	Permisos    []session.Permission `json:"permisos"`
}

type NewRol struct {
	Nombre      string               `json:"nombre" validate:"required,notblank"`
	Descripcion string               `json:"descripcion,omitempty"`
	Permisos    []session.Permission `json:"permisos" validate:"required,min=1,dive"`
}

func (r NewRol) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, r)
}
