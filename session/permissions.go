package session

import "strings"

// Permission actions as the backend names them.
const (
	AccionVer      = "ver"
	AccionCrear    = "crear"
	AccionEditar   = "editar"
	AccionEliminar = "eliminar"
)

// Permission is one {modulo, accion} capability pair.
type Permission struct {
	Modulo string `json:"modulo"`
	Accion string `json:"accion"`
}

// Name renders the permission as "modulo.accion".
func (p Permission) Name() string { return p.Modulo + "." + p.Accion }

// The checks below are pure rendering gates with no side effects. They do
// not short-circuit on SuperAdmin: the call site combines
// `sess.IsAdmin() || sess.CanX(...)`. The backend independently enforces
// authorization; none of this is a security boundary.

func (s *Session) IsAdmin() bool { return s.claims.SuperAdmin }

// Can checks a "modulo.accion" permission name.
func (s *Session) Can(name string) bool {
	modulo, accion, ok := strings.Cut(name, ".")
	if !ok {
		return false
	}
	return s.CanDo(modulo, accion)
}

func (s *Session) CanDo(modulo, accion string) bool {
	for _, p := range s.claims.Permisos {
		if p.Modulo == modulo && p.Accion == accion {
			return true
		}
	}
	return false
}

func (s *Session) CanView(modulo string) bool   { return s.CanDo(modulo, AccionVer) }
func (s *Session) CanCreate(modulo string) bool { return s.CanDo(modulo, AccionCrear) }
func (s *Session) CanEdit(modulo string) bool   { return s.CanDo(modulo, AccionEditar) }
func (s *Session) CanDelete(modulo string) bool { return s.CanDo(modulo, AccionEliminar) }
