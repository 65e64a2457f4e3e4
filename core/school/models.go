package school

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
)

// Aula is a physical classroom.
type Aula struct {
	ID         int    `json:"id"`
	CodigoAula string `json:"codigo_aula"`
	Nombre     string `json:"nombre"`
	Edificio   string `json:"edificio"`
	Piso       int    `json:"piso"`
	Capacidad  int    `json:"capacidad"`
	Tipo       string `json:"tipo"` // aula | laboratorio | auditorio
	Activa     bool   `json:"activa"`
}

type NewAula struct {
	CodigoAula string `json:"codigo_aula" validate:"required,notblank"`
	Nombre     string `json:"nombre" validate:"required,notblank"`
	Edificio   string `json:"edificio" validate:"required"`
	Piso       int    `json:"piso" validate:"gte=0"`
	Capacidad  int    `json:"capacidad" validate:"required,gt=0"`
	Tipo       string `json:"tipo" validate:"required,oneof=aula laboratorio auditorio"`
	Activa     bool   `json:"activa"`
}

func (a NewAula) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, a)
}

// UpdateAula omits codigo_aula: the natural key is immutable once created.
type UpdateAula struct {
	Nombre    string `json:"nombre" validate:"required,notblank"`
	Edificio  string `json:"edificio" validate:"required"`
	Piso      int    `json:"piso" validate:"gte=0"`
	Capacidad int    `json:"capacidad" validate:"required,gt=0"`
	Tipo      string `json:"tipo" validate:"required,oneof=aula laboratorio auditorio"`
	Activa    bool   `json:"activa"`
}

func (a UpdateAula) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, a)
}

// Materia is a subject in the academic catalog.
type Materia struct {
	ID             int    `json:"id"`
	Sigla          string `json:"sigla"`
	Nombre         string `json:"nombre"`
	Creditos       int    `json:"creditos"`
	HorasSemanales int    `json:"horas_semanales"`
	Activa         bool   `json:"activa"`
}

type NewMateria struct {
	Sigla          string `json:"sigla" validate:"required,notblank"`
	Nombre         string `json:"nombre" validate:"required,notblank"`
	Creditos       int    `json:"creditos" validate:"required,gt=0"`
	HorasSemanales int    `json:"horas_semanales" validate:"required,gt=0"`
	Activa         bool   `json:"activa"`
}

func (m NewMateria) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, m)
}

// UpdateMateria omits sigla: the natural key is immutable once created.
type UpdateMateria struct {
	Nombre         string `json:"nombre" validate:"required,notblank"`
	Creditos       int    `json:"creditos" validate:"required,gt=0"`
	HorasSemanales int    `json:"horas_semanales" validate:"required,gt=0"`
	Activa         bool   `json:"activa"`
}

func (m UpdateMateria) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, m)
}

// Docente is a teacher record. CI is the national ID: digits only,
// immutable once created.
type Docente struct {
	ID        int         `json:"id"`
	CI        string      `json:"ci"`
	Nombres   string      `json:"nombres"`
	Apellidos string      `json:"apellidos"`
	Email     string      `json:"email"`
	Telefono  null.String `json:"telefono,omitempty"`
	Activo    bool        `json:"activo"`
}

type NewDocente struct {
	CI        string `json:"ci" validate:"required,digitsonly"`
	Nombres   string `json:"nombres" validate:"required,notblank"`
	Apellidos string `json:"apellidos" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono,omitempty" validate:"omitempty,digitsonly"`
}

func (d NewDocente) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, d)
}

type UpdateDocente struct {
	Nombres   string `json:"nombres" validate:"required,notblank"`
	Apellidos string `json:"apellidos" validate:"required,notblank"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono,omitempty" validate:"omitempty,digitsonly"`
	Activo    bool   `json:"activo"`
}

func (d UpdateDocente) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, d)
}

// Horario is one scheduled class slot.
type Horario struct {
	ID         int    `json:"id"`
	AulaID     int    `json:"aula_id"`
	MateriaID  int    `json:"materia_id"`
	DocenteID  int    `json:"docente_id"`
	Dia        string `json:"dia"`
	HoraInicio string `json:"hora_inicio"` // HH:MM
	HoraFin    string `json:"hora_fin"`
	Periodo    string `json:"periodo"`
	// denormalized by the backend for listing
	Aula    string `json:"aula,omitempty"`
	Materia string `json:"materia,omitempty"`
	Docente string `json:"docente,omitempty"`
}

type NewHorario struct {
	AulaID     int    `json:"aula_id" validate:"required,gt=0"`
	MateriaID  int    `json:"materia_id" validate:"required,gt=0"`
	DocenteID  int    `json:"docente_id" validate:"required,gt=0"`
	Dia        string `json:"dia" validate:"required,oneof=lunes martes miercoles jueves viernes sabado"`
	HoraInicio string `json:"hora_inicio" validate:"required,datetime=15:04"`
	HoraFin    string `json:"hora_fin" validate:"required,datetime=15:04"`
	Periodo    string `json:"periodo" validate:"required,notblank"`
}

func (h NewHorario) Validate(validate *validator.Validate, translator ut.Translator) error {
	return core.ValidateStruct(validate, translator, h)
}
