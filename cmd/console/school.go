package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core/school"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/session"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/ui"
)

// aulaForm is the classroom form schema: codigo_aula is the immutable
// natural key; piso/capacidad coerce to int and activa to bool.
func aulaForm() *ui.Form {
	return ui.NewForm(
		ui.Field{Name: "codigo_aula", Label: "Código", Kind: ui.KindText, Required: true, Immutable: true},
		ui.Field{Name: "nombre", Label: "Nombre", Kind: ui.KindText, Required: true},
		ui.Field{Name: "edificio", Label: "Edificio", Kind: ui.KindText, Required: true},
		ui.Field{Name: "piso", Label: "Piso", Kind: ui.KindInt, Required: true},
		ui.Field{Name: "capacidad", Label: "Capacidad", Kind: ui.KindInt, Required: true},
		ui.Field{Name: "tipo", Label: "Tipo", Kind: ui.KindSelect, Required: true, Options: []string{"aula", "laboratorio", "auditorio"}, Default: "aula"},
		ui.Field{Name: "activa", Label: "Activa", Kind: ui.KindBool, Default: "true"},
	)
}

func aulaSeed(a school.Aula) map[string]string {
	return map[string]string{
		"codigo_aula": a.CodigoAula,
		"nombre":      a.Nombre,
		"edificio":    a.Edificio,
		"piso":        strconv.Itoa(a.Piso),
		"capacidad":   strconv.Itoa(a.Capacidad),
		"tipo":        a.Tipo,
		"activa":      strconv.FormatBool(a.Activa),
	}
}

func (cli *commandLine) aulaController(notes *ui.MemoryNotifier) *ui.ListController[school.Aula] {
	svc := school.NewAulaService(cli.api)
	return ui.NewListController[school.Aula](
		"aulas", svc, cli.sess, notes, cli.logger,
		ui.WithForm[school.Aula](aulaForm(), aulaSeed),
		ui.WithValidate[school.Aula](ui.StructValidator[school.NewAula, school.UpdateAula](appValidate, appTranslator)),
		ui.WithExport[school.Aula](svc, school.AulaExportHeaders, school.AulaExportRow),
	)
}

func (cli *commandLine) runAulas(args []string) error {
	if err := cli.requireSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	notes := ui.NewMemoryNotifier()
	c := cli.aulaController(notes)

	switch args[0] {
	case "list":
		if !cli.allowed("aulas", session.AccionVer) {
			return nil
		}
		listCmd := flag.NewFlagSet("aulas list", flag.ExitOnError)
		page := listCmd.Int("page", 1, "page number")
		search := listCmd.String("search", "", "search term")
		tipo := listCmd.String("tipo", "", "filter by type")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, *page, *search, map[string]string{"tipo": *tipo})
		return runList(cli, c, notes, func(a school.Aula) string {
			return fmt.Sprintf("%4d  %-8s  %-25s  %s piso %d  cap %d  %s", a.ID, a.CodigoAula, a.Nombre, a.Edificio, a.Piso, a.Capacidad, a.Tipo)
		})
	case "create":
		if !cli.allowed("aulas", session.AccionCrear) {
			return nil
		}
		createCmd := flag.NewFlagSet("aulas create", flag.ExitOnError)
		codigo := createCmd.String("codigo", "", "classroom code")
		nombre := createCmd.String("nombre", "", "classroom name")
		edificio := createCmd.String("edificio", "", "building")
		piso := createCmd.String("piso", "", "floor")
		capacidad := createCmd.String("capacidad", "", "capacity")
		tipo := createCmd.String("tipo", "aula", "type: aula|laboratorio|auditorio")
		activa := createCmd.String("activa", "true", "active flag")
		if err := createCmd.Parse(args[1:]); err != nil {
			return err
		}
		c.OpenCreate()
		return submitForm(cli, c, notes, map[string]string{
			"codigo_aula": *codigo, "nombre": *nombre, "edificio": *edificio,
			"piso": *piso, "capacidad": *capacidad, "tipo": *tipo, "activa": *activa,
		})
	case "delete":
		if !cli.allowed("aulas", session.AccionEliminar) {
			return nil
		}
		return cli.deleteByID(c, notes, "aulas delete", args[1:], "¿Eliminar el aula?")
	case "export":
		if !cli.allowed("aulas", session.AccionVer) {
			return nil
		}
		exportCmd := flag.NewFlagSet("aulas export", flag.ExitOnError)
		out := exportCmd.String("out", "", "output file (defaults to aulas_{date}.csv)")
		tipo := exportCmd.String("tipo", "", "filter by type")
		if err := exportCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, 1, "", map[string]string{"tipo": *tipo})
		return runExport(cli, c, notes, *out)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) runMaterias(args []string) error {
	if err := cli.requireSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	notes := ui.NewMemoryNotifier()
	svc := school.NewMateriaService(cli.api)
	form := ui.NewForm(
		ui.Field{Name: "sigla", Label: "Sigla", Kind: ui.KindText, Required: true, Immutable: true},
		ui.Field{Name: "nombre", Label: "Nombre", Kind: ui.KindText, Required: true},
		ui.Field{Name: "creditos", Label: "Créditos", Kind: ui.KindInt, Required: true},
		ui.Field{Name: "horas_semanales", Label: "Horas semanales", Kind: ui.KindInt, Required: true},
		ui.Field{Name: "activa", Label: "Activa", Kind: ui.KindBool, Default: "true"},
	)
	c := ui.NewListController[school.Materia](
		"materias", svc, cli.sess, notes, cli.logger,
		ui.WithForm[school.Materia](form, func(m school.Materia) map[string]string {
			return map[string]string{
				"sigla":           m.Sigla,
				"nombre":          m.Nombre,
				"creditos":        strconv.Itoa(m.Creditos),
				"horas_semanales": strconv.Itoa(m.HorasSemanales),
				"activa":          strconv.FormatBool(m.Activa),
			}
		}),
		ui.WithValidate[school.Materia](ui.StructValidator[school.NewMateria, school.UpdateMateria](appValidate, appTranslator)),
	)

	switch args[0] {
	case "list":
		if !cli.allowed("materias", session.AccionVer) {
			return nil
		}
		listCmd := flag.NewFlagSet("materias list", flag.ExitOnError)
		page := listCmd.Int("page", 1, "page number")
		search := listCmd.String("search", "", "search term")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, *page, *search, nil)
		return runList(cli, c, notes, func(m school.Materia) string {
			return fmt.Sprintf("%4d  %-10s  %-30s  %d créditos", m.ID, m.Sigla, m.Nombre, m.Creditos)
		})
	case "create":
		if !cli.allowed("materias", session.AccionCrear) {
			return nil
		}
		createCmd := flag.NewFlagSet("materias create", flag.ExitOnError)
		sigla := createCmd.String("sigla", "", "subject code")
		nombre := createCmd.String("nombre", "", "subject name")
		creditos := createCmd.String("creditos", "", "credits")
		horas := createCmd.String("horas", "", "weekly hours")
		if err := createCmd.Parse(args[1:]); err != nil {
			return err
		}
		c.OpenCreate()
		return submitForm(cli, c, notes, map[string]string{
			"sigla": *sigla, "nombre": *nombre, "creditos": *creditos, "horas_semanales": *horas,
		})
	case "delete":
		if !cli.allowed("materias", session.AccionEliminar) {
			return nil
		}
		return cli.deleteByID(c, notes, "materias delete", args[1:], "¿Eliminar la materia?")
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) runDocentes(args []string) error {
	if err := cli.requireSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	notes := ui.NewMemoryNotifier()
	svc := school.NewDocenteService(cli.api)
	form := ui.NewForm(
		ui.Field{Name: "ci", Label: "CI", Kind: ui.KindText, Required: true, Immutable: true},
		ui.Field{Name: "nombres", Label: "Nombres", Kind: ui.KindText, Required: true},
		ui.Field{Name: "apellidos", Label: "Apellidos", Kind: ui.KindText, Required: true},
		ui.Field{Name: "email", Label: "Email", Kind: ui.KindText, Required: true},
		ui.Field{Name: "telefono", Label: "Teléfono", Kind: ui.KindText},
		ui.Field{Name: "activo", Label: "Activo", Kind: ui.KindBool, Default: "true"},
	)
	c := ui.NewListController[school.Docente](
		"docentes", svc, cli.sess, notes, cli.logger,
		ui.WithForm[school.Docente](form, func(d school.Docente) map[string]string {
			return map[string]string{
				"ci": d.CI, "nombres": d.Nombres, "apellidos": d.Apellidos,
				"email": d.Email, "telefono": d.Telefono.String,
				"activo": strconv.FormatBool(d.Activo),
			}
		}),
		ui.WithValidate[school.Docente](ui.StructValidator[school.NewDocente, school.UpdateDocente](appValidate, appTranslator)),
		ui.WithImporter[school.Docente](svc),
		ui.WithExport[school.Docente](svc, school.DocenteExportHeaders, school.DocenteExportRow),
	)

	switch args[0] {
	case "list":
		if !cli.allowed("docentes", session.AccionVer) {
			return nil
		}
		listCmd := flag.NewFlagSet("docentes list", flag.ExitOnError)
		page := listCmd.Int("page", 1, "page number")
		search := listCmd.String("search", "", "search term")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, *page, *search, nil)
		return runList(cli, c, notes, func(d school.Docente) string {
			return fmt.Sprintf("%4d  %-10s  %s %s  %s", d.ID, d.CI, d.Nombres, d.Apellidos, d.Email)
		})
	case "create":
		if !cli.allowed("docentes", session.AccionCrear) {
			return nil
		}
		createCmd := flag.NewFlagSet("docentes create", flag.ExitOnError)
		ci := createCmd.String("ci", "", "national ID (digits only)")
		nombres := createCmd.String("nombres", "", "first names")
		apellidos := createCmd.String("apellidos", "", "last names")
		email := createCmd.String("email", "", "email")
		telefono := createCmd.String("telefono", "", "phone")
		if err := createCmd.Parse(args[1:]); err != nil {
			return err
		}
		c.OpenCreate()
		return submitForm(cli, c, notes, map[string]string{
			"ci": *ci, "nombres": *nombres, "apellidos": *apellidos,
			"email": *email, "telefono": *telefono,
		})
	case "delete":
		if !cli.allowed("docentes", session.AccionEliminar) {
			return nil
		}
		return cli.deleteByID(c, notes, "docentes delete", args[1:], "¿Eliminar el docente?")
	case "import":
		if !cli.allowed("docentes", session.AccionCrear) {
			return nil
		}
		importCmd := flag.NewFlagSet("docentes import", flag.ExitOnError)
		file := importCmd.String("file", "", "spreadsheet to import (.csv, .xlsx, .xls)")
		if err := importCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *file == "" {
			importCmd.Usage()
			return errHelp
		}
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		summary, ok := c.Import(cli.ctx(), *file, f)
		cli.flushNotes(notes)
		if ok {
			for _, rowErr := range summary.Errors {
				fmt.Fprintf(cli.out, "  fila %d: %s\n", rowErr.Row, rowErr.Error)
			}
		}
		return nil
	case "template":
		fmt.Fprint(cli.out, school.DocenteTemplate())
		return nil
	case "export":
		if !cli.allowed("docentes", session.AccionVer) {
			return nil
		}
		exportCmd := flag.NewFlagSet("docentes export", flag.ExitOnError)
		out := exportCmd.String("out", "", "output file (defaults to docentes_{date}.csv)")
		if err := exportCmd.Parse(args[1:]); err != nil {
			return err
		}
		return runExport(cli, c, notes, *out)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) runHorarios(args []string) error {
	if err := cli.requireSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	notes := ui.NewMemoryNotifier()
	svc := school.NewHorarioService(cli.api)
	form := ui.NewForm(
		ui.Field{Name: "aula_id", Label: "Aula", Kind: ui.KindInt, Required: true},
		ui.Field{Name: "materia_id", Label: "Materia", Kind: ui.KindInt, Required: true},
		ui.Field{Name: "docente_id", Label: "Docente", Kind: ui.KindInt, Required: true},
		ui.Field{Name: "dia", Label: "Día", Kind: ui.KindSelect, Required: true, Options: []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado"}},
		ui.Field{Name: "hora_inicio", Label: "Hora inicio", Kind: ui.KindText, Required: true},
		ui.Field{Name: "hora_fin", Label: "Hora fin", Kind: ui.KindText, Required: true},
		ui.Field{Name: "periodo", Label: "Periodo", Kind: ui.KindText, Required: true},
	)
	c := ui.NewListController[school.Horario](
		"horarios", svc, cli.sess, notes, cli.logger,
		ui.WithForm[school.Horario](form, func(h school.Horario) map[string]string {
			return map[string]string{
				"aula_id":     strconv.Itoa(h.AulaID),
				"materia_id":  strconv.Itoa(h.MateriaID),
				"docente_id":  strconv.Itoa(h.DocenteID),
				"dia":         h.Dia,
				"hora_inicio": h.HoraInicio,
				"hora_fin":    h.HoraFin,
				"periodo":     h.Periodo,
			}
		}),
		ui.WithValidate[school.Horario](ui.StructValidator[school.NewHorario, school.NewHorario](appValidate, appTranslator)),
	)

	switch args[0] {
	case "list":
		if !cli.allowed("horarios", session.AccionVer) {
			return nil
		}
		listCmd := flag.NewFlagSet("horarios list", flag.ExitOnError)
		page := listCmd.Int("page", 1, "page number")
		dia := listCmd.String("dia", "", "filter by day")
		periodo := listCmd.String("periodo", "", "filter by term")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, *page, "", map[string]string{"dia": *dia, "periodo": *periodo})
		return runList(cli, c, notes, func(h school.Horario) string {
			return fmt.Sprintf("%4d  %-10s %s-%s  %s / %s / %s", h.ID, h.Dia, h.HoraInicio, h.HoraFin, h.Materia, h.Docente, h.Aula)
		})
	case "create":
		if !cli.allowed("horarios", session.AccionCrear) {
			return nil
		}
		createCmd := flag.NewFlagSet("horarios create", flag.ExitOnError)
		aula := createCmd.String("aula", "", "classroom id")
		materia := createCmd.String("materia", "", "subject id")
		docente := createCmd.String("docente", "", "teacher id")
		dia := createCmd.String("dia", "", "day of week")
		inicio := createCmd.String("inicio", "", "start time HH:MM")
		fin := createCmd.String("fin", "", "end time HH:MM")
		periodo := createCmd.String("periodo", "", "academic term")
		if err := createCmd.Parse(args[1:]); err != nil {
			return err
		}
		c.OpenCreate()
		return submitForm(cli, c, notes, map[string]string{
			"aula_id": *aula, "materia_id": *materia, "docente_id": *docente,
			"dia": *dia, "hora_inicio": *inicio, "hora_fin": *fin, "periodo": *periodo,
		})
	case "delete":
		if !cli.allowed("horarios", session.AccionEliminar) {
			return nil
		}
		return cli.deleteByID(c, notes, "horarios delete", args[1:], "¿Eliminar el horario?")
	default:
		cli.printUsage()
		return errHelp
	}
}

// seedList applies the initial list flags before Start.
func (cli *commandLine) seedList(c interface {
	SetSearchImmediate(string)
	SeedPage(int)
	SeedFilter(key, val string)
}, page int, search string, filters map[string]string) {
	c.SeedPage(page)
	c.SetSearchImmediate(search)
	for key, val := range filters {
		c.SeedFilter(key, val)
	}
}

// deleteByID parses -id and runs the confirmed delete flow.
func (cli *commandLine) deleteByID(c deleter, notes *ui.MemoryNotifier, name string, args []string, prompt string) error {
	deleteCmd := flag.NewFlagSet(name, flag.ExitOnError)
	id := deleteCmd.Int("id", 0, "record id")
	yes := deleteCmd.Bool("y", false, "skip the confirmation prompt")
	if err := deleteCmd.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		deleteCmd.Usage()
		return errHelp
	}
	confirm := func() bool {
		if *yes {
			return true
		}
		return confirmFunc(cli.out, prompt)
	}
	c.Delete(cli.ctx(), *id, confirm)
	cli.flushNotes(notes)
	return nil
}
