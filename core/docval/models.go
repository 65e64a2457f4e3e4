package docval

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Document states as the backend encodes them.
const (
	EstadoPendiente = "0"
	EstadoAprobado  = "1"
	EstadoRechazado = "2"
)

// Documento is a student-uploaded document under admin review. It is
// created by a student upload (outside this console) and transitions
// pendiente→aprobado or pendiente→rechazado exclusively through admin
// action; both end states are terminal from this UI.
type Documento struct {
	ID              int         `json:"id"`
	EstudianteID    int         `json:"estudiante_id"`
	Estudiante      string      `json:"estudiante,omitempty"`
	NombreDocumento string      `json:"nombre_documento"`
	Path            string      `json:"path,omitempty"`
	URLDescarga     string      `json:"url_descarga,omitempty"`
	Estado          string      `json:"estado"`
	Version         int         `json:"version"`
	Observaciones   null.String `json:"observaciones,omitempty"`
	FechaSubida     time.Time   `json:"fecha_subida"`
}

func (d Documento) Pendiente() bool { return d.Estado == EstadoPendiente }
func (d Documento) Aprobado() bool  { return d.Estado == EstadoAprobado }
func (d Documento) Rechazado() bool { return d.Estado == EstadoRechazado }

// Reviewable reports whether approve/reject actions are exposed.
// Approved/rejected documents are download-only.
func (d Documento) Reviewable() bool { return d.Pendiente() }

// Location returns whichever of path/url_descarga the backend populated.
func (d Documento) Location() string {
	if d.Path != "" {
		return d.Path
	}
	return d.URLDescarga
}
