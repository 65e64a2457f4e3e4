// Package audit exposes the backend's audit trail, read-only: records are
// written server-side on every mutation; the console only lists and exports.
package audit

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
)

type Auditoria struct {
	ID          int         `json:"id"`
	UsuarioID   null.Int    `json:"usuario_id,omitempty"`
	Usuario     string      `json:"usuario,omitempty"`
	Accion      string      `json:"accion"`
	Modulo      string      `json:"modulo"`
	Descripcion string      `json:"descripcion"`
	IP          string      `json:"ip"`
	UserAgent   null.String `json:"user_agent,omitempty"`
	Fecha       time.Time   `json:"fecha"`
}

// Service deliberately wraps the resource instead of embedding it, so no
// mutation method leaks into the audit viewer's surface.
type Service struct {
	res *client.Resource[Auditoria]
}

func NewService(c *client.Client) *Service {
	return &Service{res: client.NewResource[Auditoria](c, "/admin/auditoria")}
}

func (s *Service) List(ctx context.Context, p client.ListParams) client.ListResult[Auditoria] {
	return s.res.List(ctx, p)
}

func (s *Service) ExportAll(ctx context.Context, filters *client.Filters) client.Result[[]Auditoria] {
	return s.res.ExportAll(ctx, filters)
}

// ExportHeaders are the human-readable export columns.
var ExportHeaders = []string{"Fecha", "Usuario", "Módulo", "Acción", "Descripción", "IP"}

func ExportRow(a Auditoria) []string {
	return []string{
		a.Fecha.Format(time.RFC3339), a.Usuario, a.Modulo, a.Accion, a.Descripcion, a.IP,
	}
}
