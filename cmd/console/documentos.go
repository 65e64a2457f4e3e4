package main

import (
	"flag"
	"fmt"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core/docval"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/session"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/ui"
)

func (cli *commandLine) runDocumentos(args []string) error {
	if err := cli.requireSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	svc := docval.NewService(cli.api)

	switch args[0] {
	case "list":
		if !cli.allowed("documentos", session.AccionVer) {
			return nil
		}
		notes := ui.NewMemoryNotifier()
		c := ui.NewListController[docval.Documento]("documentos", svc, cli.sess, notes, cli.logger)
		listCmd := flag.NewFlagSet("documentos list", flag.ExitOnError)
		page := listCmd.Int("page", 1, "page number")
		search := listCmd.String("search", "", "search term")
		estado := listCmd.String("estado", "", "filter by state: 0 pendiente, 1 aprobado, 2 rechazado")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, *page, *search, map[string]string{"estado": *estado})
		return runList(cli, c, notes, func(d docval.Documento) string {
			estado := "pendiente"
			switch {
			case d.Aprobado():
				estado = "aprobado"
			case d.Rechazado():
				estado = "rechazado"
			}
			return fmt.Sprintf("%4d  %-30s  %-25s  v%d  %s  %s",
				d.ID, d.NombreDocumento, d.Estudiante, d.Version, estado, d.FechaSubida.Format("2006-01-02"))
		})
	case "preview":
		if !cli.allowed("documentos", session.AccionVer) {
			return nil
		}
		prevCmd := flag.NewFlagSet("documentos preview", flag.ExitOnError)
		id := prevCmd.Int("id", 0, "document id")
		if err := prevCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id <= 0 {
			prevCmd.Usage()
			return errHelp
		}
		res := svc.Get(cli.ctx(), *id)
		if !res.Success {
			fmt.Fprintf(cli.out, "[error] %s\n", res.Message)
			return nil
		}
		prev := docval.NewPreview(core.StorageBaseURL(), res.Data)
		var kind string
		switch prev.Kind {
		case docval.PreviewImage:
			kind = "imagen"
		case docval.PreviewPDF:
			kind = "pdf"
		default:
			kind = "descarga directa"
		}
		fmt.Fprintf(cli.out, "%s (%s)\n", prev.Doc.NombreDocumento, kind)
		fmt.Fprintln(cli.out, prev.URL)
		if prev.Doc.Observaciones.Valid {
			fmt.Fprintf(cli.out, "observaciones: %s\n", prev.Doc.Observaciones.String)
		}
		if !prev.Doc.Reviewable() {
			fmt.Fprintln(cli.out, "documento ya revisado: solo descarga")
		}
		return nil
	case "aprobar":
		if !cli.allowed("documentos", session.AccionEditar) {
			return nil
		}
		apCmd := flag.NewFlagSet("documentos aprobar", flag.ExitOnError)
		id := apCmd.Int("id", 0, "document id")
		if err := apCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id <= 0 {
			apCmd.Usage()
			return errHelp
		}
		return cli.printOutcome(svc.Approve(cli.ctx(), *id), "documento aprobado")
	case "rechazar":
		if !cli.allowed("documentos", session.AccionEditar) {
			return nil
		}
		rjCmd := flag.NewFlagSet("documentos rechazar", flag.ExitOnError)
		id := rjCmd.Int("id", 0, "document id")
		motivo := rjCmd.String("motivo", "", "rejection reason (10+ characters)")
		if err := rjCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id <= 0 {
			rjCmd.Usage()
			return errHelp
		}
		return cli.printOutcome(svc.Reject(cli.ctx(), *id, *motivo), "documento rechazado")
	default:
		cli.printUsage()
		return errHelp
	}
}
