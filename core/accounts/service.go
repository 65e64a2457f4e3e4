package accounts

import (
	"context"
	"io"
	"strconv"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/csvio"
)

type UsuarioService struct {
	*client.Resource[Usuario]
}

func NewUsuarioService(c *client.Client) *UsuarioService {
	return &UsuarioService{client.NewResource[Usuario](c, "/admin/usuarios")}
}

// ImportFromFile uploads a user spreadsheet, gated by the extension allowlist.
func (s *UsuarioService) ImportFromFile(ctx context.Context, filename string, file io.Reader) client.Result[client.ImportSummary] {
	if err := csvio.CheckImportFile(filename); err != nil {
		return client.Result[client.ImportSummary]{Message: err.Error()}
	}
	return s.Import(ctx, filename, file)
}

// ResetPassword asks the backend to regenerate and deliver the user's
// password. The new password never transits through the console.
func (s *UsuarioService) ResetPassword(ctx context.Context, id int) client.Outcome {
	return s.Do(ctx, id, "reset-password", nil)
}

type RolService struct {
	*client.Resource[Rol]
}

func NewRolService(c *client.Client) *RolService {
	return &RolService{client.NewResource[Rol](c, "/admin/roles")}
}

// UsuarioCSVHeaders are the import template columns.
var UsuarioCSVHeaders = []string{"codigo", "nombre", "email", "rol_id"}

// UsuarioCSVExample is the template's example row.
var UsuarioCSVExample = []string{"ADM-001", "María Flores", "maria.flores@instituto.edu.bo", "2"}

func UsuarioTemplate() string {
	return csvio.Template(UsuarioCSVHeaders, UsuarioCSVExample)
}

// UsuarioExportHeaders are the human-readable export columns.
var UsuarioExportHeaders = []string{"Código", "Nombre", "Email", "Rol", "Activo"}

func UsuarioExportRow(u Usuario) []string {
	return []string{u.Codigo, u.Nombre, u.Email, u.Rol, strconv.FormatBool(u.Activo)}
}
