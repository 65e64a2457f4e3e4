package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/core"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	confirmFunc      = askConfirm       // mockable

	errHelp    = errors.New("help provided")
	errNoLogin = errors.New("no hay sesión: ejecute `console login` y exporte SAI_TOKEN")
)

var appValidate, appTranslator = core.NewValidator()

type commandLine struct {
	out    io.Writer
	api    *client.Client
	sess   *session.Session
	logger core.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -codigo CODIGO                         - authenticate and print a session token")
	fmt.Fprintln(cli.out, "  aulas list|create|delete|export              - manage classrooms")
	fmt.Fprintln(cli.out, "  materias list|create|delete                  - manage subjects")
	fmt.Fprintln(cli.out, "  docentes list|create|delete|import|template|export - manage teachers")
	fmt.Fprintln(cli.out, "  horarios list|create|delete                  - manage schedules")
	fmt.Fprintln(cli.out, "  usuarios list|create|delete|reset-password|import|export - manage users")
	fmt.Fprintln(cli.out, "  roles list                                   - list roles and their permissions")
	fmt.Fprintln(cli.out, "  pagos planes|cuotas|pagar|mora|verificaciones|aprobar|rechazar - payment plans & verification")
	fmt.Fprintln(cli.out, "  documentos list|preview|aprobar|rechazar     - document validation")
	fmt.Fprintln(cli.out, "  auditoria list|export                        - audit log viewer")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "login":
		return cli.login(args[2:])
	case "aulas":
		return cli.runAulas(args[2:])
	case "materias":
		return cli.runMaterias(args[2:])
	case "docentes":
		return cli.runDocentes(args[2:])
	case "horarios":
		return cli.runHorarios(args[2:])
	case "usuarios":
		return cli.runUsuarios(args[2:])
	case "roles":
		return cli.runRoles(args[2:])
	case "pagos":
		return cli.runPagos(args[2:])
	case "documentos":
		return cli.runDocumentos(args[2:])
	case "auditoria":
		return cli.runAuditoria(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) login(args []string) error {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	codigo := loginCmd.String("codigo", "", "The user's login code. The password will be prompted next.")
	if err := loginCmd.Parse(args); err != nil {
		return err
	}
	if *codigo == "" {
		loginCmd.Usage()
		return errHelp
	}

	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}
	if len(pwd) == 0 {
		loginCmd.Usage()
		return errHelp
	}

	res := session.Login(cli.ctx(), cli.api, *codigo, string(pwd))
	if !res.Success {
		return errors.New(res.Message)
	}
	cli.sess = res.Session
	fmt.Fprintf(cli.out, "Bienvenido, %s\n", res.Session.Nombre())
	fmt.Fprintf(cli.out, "export SAI_TOKEN=%s\n", res.Session.Token())
	return nil
}

// requireSession gates authenticated commands.
func (cli *commandLine) requireSession() error {
	if cli.sess == nil {
		return errNoLogin
	}
	return nil
}

// allowed checks the session's capability for a module action. Denials stay
// local: a message is printed and no request goes out.
func (cli *commandLine) allowed(modulo, accion string) bool {
	if cli.sess.IsAdmin() || cli.sess.CanDo(modulo, accion) {
		return true
	}
	fmt.Fprintf(cli.out, "[error] no tiene permisos para %s.%s\n", modulo, accion)
	return false
}

func askConfirm(out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [s/N]: ", prompt)
	var answer string
	_, _ = fmt.Scanln(&answer)
	return answer == "s" || answer == "S"
}
