package school

import (
	"context"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/csvio"
)

type AulaService struct {
	*client.Resource[Aula]
}

func NewAulaService(c *client.Client) *AulaService {
	return &AulaService{client.NewResource[Aula](c, "/admin/aulas")}
}

type MateriaService struct {
	*client.Resource[Materia]
}

func NewMateriaService(c *client.Client) *MateriaService {
	return &MateriaService{client.NewResource[Materia](c, "/admin/materias")}
}

type DocenteService struct {
	*client.Resource[Docente]
}

func NewDocenteService(c *client.Client) *DocenteService {
	return &DocenteService{client.NewResource[Docente](c, "/admin/docentes")}
}

// ImportFromFile uploads a teacher spreadsheet. The filename must pass the
// extension allowlist before any bytes go out.
func (s *DocenteService) ImportFromFile(ctx context.Context, filename string, file io.Reader) client.Result[client.ImportSummary] {
	if err := csvio.CheckImportFile(filename); err != nil {
		return client.Result[client.ImportSummary]{Message: err.Error()}
	}
	return s.Import(ctx, filename, file)
}

type HorarioService struct {
	*client.Resource[Horario]
}

func NewHorarioService(c *client.Client) *HorarioService {
	return &HorarioService{client.NewResource[Horario](c, "/admin/horarios")}
}

// CSV interchange

// DocenteCSVHeaders are the import template columns, matching NewDocente's
// wire names.
var DocenteCSVHeaders = []string{"ci", "nombres", "apellidos", "email", "telefono"}

// DocenteCSVExample is the template's example row.
var DocenteCSVExample = []string{"12345678", "Juan", "Pérez Mamani", "juan.perez@instituto.edu.bo", "70012345"}

// DocenteTemplate renders the downloadable import template.
func DocenteTemplate() string {
	return csvio.Template(DocenteCSVHeaders, DocenteCSVExample)
}

// DocenteFromRecord maps a template-shaped CSV record back to a create
// payload. Column order follows DocenteCSVHeaders.
func DocenteFromRecord(rec []string) (NewDocente, error) {
	if len(rec) < len(DocenteCSVHeaders) {
		return NewDocente{}, errors.Errorf("expected %d columns, got %d", len(DocenteCSVHeaders), len(rec))
	}
	return NewDocente{
		CI:        rec[0],
		Nombres:   rec[1],
		Apellidos: rec[2],
		Email:     rec[3],
		Telefono:  rec[4],
	}, nil
}

// DocenteExportHeaders are the human-readable export columns.
var DocenteExportHeaders = []string{"CI", "Nombres", "Apellidos", "Email", "Teléfono", "Activo"}

func DocenteExportRow(d Docente) []string {
	return []string{d.CI, d.Nombres, d.Apellidos, d.Email, d.Telefono.String, strconv.FormatBool(d.Activo)}
}

// AulaExportHeaders are the human-readable export columns.
var AulaExportHeaders = []string{"Código", "Nombre", "Edificio", "Piso", "Capacidad", "Tipo", "Activa"}

func AulaExportRow(a Aula) []string {
	return []string{
		a.CodigoAula, a.Nombre, a.Edificio,
		strconv.Itoa(a.Piso), strconv.Itoa(a.Capacidad), a.Tipo,
		strconv.FormatBool(a.Activa),
	}
}
