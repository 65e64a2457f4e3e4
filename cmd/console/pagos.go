package main

import (
	"flag"
	"fmt"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core/billing"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/session"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/ui"
)

func (cli *commandLine) runPagos(args []string) error {
	if err := cli.requireSession(); err != nil {
		return err
	}
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "planes":
		if !cli.allowed("pagos", session.AccionVer) {
			return nil
		}
		notes := ui.NewMemoryNotifier()
		svc := billing.NewPlanService(cli.api)
		c := ui.NewListController[billing.PlanPago]("planes de pago", svc, cli.sess, notes, cli.logger)
		listCmd := flag.NewFlagSet("pagos planes", flag.ExitOnError)
		page := listCmd.Int("page", 1, "page number")
		search := listCmd.String("search", "", "search term")
		gestion := listCmd.String("gestion", "", "filter by academic year")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, *page, *search, map[string]string{"gestion": *gestion})
		return runList(cli, c, notes, func(p billing.PlanPago) string {
			pagadas := 0
			for _, cu := range p.Cuotas {
				if cu.Pagada() {
					pagadas++
				}
			}
			return fmt.Sprintf("%4d  %-30s  %s  Bs %.2f  cuotas %d/%d", p.ID, p.Estudiante, p.Gestion, p.MontoTotal, pagadas, len(p.Cuotas))
		})
	case "cuotas":
		if !cli.allowed("pagos", session.AccionVer) {
			return nil
		}
		notes := ui.NewMemoryNotifier()
		svc := billing.NewCuotaService(cli.api)
		c := ui.NewListController[billing.Cuota]("cuotas", svc, cli.sess, notes, cli.logger)
		listCmd := flag.NewFlagSet("pagos cuotas", flag.ExitOnError)
		page := listCmd.Int("page", 1, "page number")
		plan := listCmd.String("plan", "", "filter by payment plan id")
		vencidas := listCmd.String("vencidas", "", "filter: true for overdue only")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, *page, "", map[string]string{"plan_pago_id": *plan, "vencidas": *vencidas})
		return runList(cli, c, notes, func(cu billing.Cuota) string {
			estado := "pendiente"
			if cu.Pagada() {
				estado = "pagada"
			} else if cu.EstaVencida {
				estado = "vencida"
			}
			return fmt.Sprintf("%4d  cuota %d  Bs %.2f  saldo %.2f  vence %s  %s",
				cu.ID, cu.Numero, cu.Monto, cu.SaldoPendiente, cu.FechaFin.Format("2006-01-02"), estado)
		})
	case "pagar":
		if !cli.allowed("pagos", session.AccionEditar) {
			return nil
		}
		payCmd := flag.NewFlagSet("pagos pagar", flag.ExitOnError)
		id := payCmd.Int("id", 0, "installment id")
		monto := payCmd.Float64("monto", 0, "amount in Bs")
		fecha := payCmd.String("fecha", "", "payment date YYYY-MM-DD")
		token := payCmd.String("token", "", "idempotency token (generated when empty)")
		if err := payCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id <= 0 {
			payCmd.Usage()
			return errHelp
		}
		res := billing.NewCuotaService(cli.api).RegisterPayment(cli.ctx(), *id, *monto, *fecha, *token)
		return cli.printOutcome(res, "pago registrado")
	case "mora":
		if !cli.allowed("pagos", session.AccionEditar) {
			return nil
		}
		moraCmd := flag.NewFlagSet("pagos mora", flag.ExitOnError)
		id := moraCmd.Int("id", 0, "installment id")
		monto := moraCmd.Float64("monto", 0, "surcharge in Bs")
		motivo := moraCmd.String("motivo", "", "reason for the surcharge")
		if err := moraCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id <= 0 {
			moraCmd.Usage()
			return errHelp
		}
		res := billing.NewCuotaService(cli.api).ApplyPenalty(cli.ctx(), *id, *monto, *motivo)
		return cli.printOutcome(res, "mora aplicada")
	case "verificaciones":
		if !cli.allowed("pagos", session.AccionVer) {
			return nil
		}
		notes := ui.NewMemoryNotifier()
		svc := billing.NewVerificacionService(cli.api)
		c := ui.NewListController[billing.VerificacionPago]("verificaciones", svc, cli.sess, notes, cli.logger)
		listCmd := flag.NewFlagSet("pagos verificaciones", flag.ExitOnError)
		page := listCmd.Int("page", 1, "page number")
		estado := listCmd.String("estado", billing.VerificacionPendiente, "filter by state")
		if err := listCmd.Parse(args[1:]); err != nil {
			return err
		}
		cli.seedList(c, *page, "", map[string]string{"estado": *estado})
		return runList(cli, c, notes, func(v billing.VerificacionPago) string {
			return fmt.Sprintf("%4d  cuota %d  %-30s  Bs %.2f  %s  %s",
				v.ID, v.CuotaID, v.Estudiante, v.Monto, v.Estado, v.FechaEnvio.Format("2006-01-02"))
		})
	case "aprobar":
		if !cli.allowed("pagos", session.AccionEditar) {
			return nil
		}
		apCmd := flag.NewFlagSet("pagos aprobar", flag.ExitOnError)
		id := apCmd.Int("id", 0, "verification id")
		if err := apCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id <= 0 {
			apCmd.Usage()
			return errHelp
		}
		res := billing.NewVerificacionService(cli.api).Approve(cli.ctx(), *id)
		return cli.printOutcome(res, "verificación aprobada")
	case "rechazar":
		if !cli.allowed("pagos", session.AccionEditar) {
			return nil
		}
		rjCmd := flag.NewFlagSet("pagos rechazar", flag.ExitOnError)
		id := rjCmd.Int("id", 0, "verification id")
		motivo := rjCmd.String("motivo", "", "rejection reason")
		if err := rjCmd.Parse(args[1:]); err != nil {
			return err
		}
		if *id <= 0 {
			rjCmd.Usage()
			return errHelp
		}
		res := billing.NewVerificacionService(cli.api).Reject(cli.ctx(), *id, *motivo)
		return cli.printOutcome(res, "verificación rechazada")
	default:
		cli.printUsage()
		return errHelp
	}
}
