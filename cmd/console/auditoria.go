package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core/audit"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/session"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/ui"
)

func (cli *commandLine) runAuditoria(args []string) error {
	if err := cli.requireSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	notes := ui.NewMemoryNotifier()
	svc := audit.NewService(cli.api)
	c := ui.NewListController[audit.Auditoria](
		"auditoria", svc, cli.sess, notes, cli.logger,
		ui.WithExport[audit.Auditoria](svc, audit.ExportHeaders, audit.ExportRow),
	)

	switch args[0] {
	case "list":
		if !cli.allowed("auditoria", session.AccionVer) {
			return nil
		}
		listCmd := flag.NewFlagSet("auditoria list", flag.ExitOnError)
		page := listCmd.Int("page", 1, "page number")
		search := listCmd.String("search", "", "search term")
		modulo := listCmd.String("modulo", "", "filter by module")
		accion := listCmd.String("accion", "", "filter by action")
		desde := listCmd.String("desde", "", "from date YYYY-MM-DD")
		hasta := listCmd.String("hasta", "", "to date YYYY-MM-DD")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, *page, *search, map[string]string{
			"modulo": *modulo, "accion": *accion, "fecha_desde": *desde, "fecha_hasta": *hasta,
		})
		return runList(cli, c, notes, func(a audit.Auditoria) string {
			return fmt.Sprintf("%s  %-15s  %-12s %-10s  %s [%s]",
				a.Fecha.Format(time.RFC3339), a.Usuario, a.Modulo, a.Accion, a.Descripcion, a.IP)
		})
	case "export":
		if !cli.allowed("auditoria", session.AccionVer) {
			return nil
		}
		exportCmd := flag.NewFlagSet("auditoria export", flag.ExitOnError)
		out := exportCmd.String("out", "", "output file (defaults to auditoria_{date}.csv)")
		modulo := exportCmd.String("modulo", "", "filter by module")
		if err := exportCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, 1, "", map[string]string{"modulo": *modulo})
		return runExport(cli, c, notes, *out)
	default:
		cli.printUsage()
		return errHelp
	}
}
