package main

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	logsvc "github.com/Yasir-hub1/sistema-admin-institucional-sub003/services/logger"
	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/session"
	testutil "github.com/Yasir-hub1/sistema-admin-institucional-sub003/tests"
)

func mintToken(t *testing.T, claims session.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func setup(t *testing.T, backend *testutil.Backend) (*commandLine, *bytes.Buffer) {
	t.Helper()
	api, err := client.New(backend.URL(), 5*time.Second, nil)
	require.NoError(t, err)

	sess, err := session.Parse(mintToken(t, session.Claims{UserID: 1, Codigo: "adm001", Nombre: "Admin", SuperAdmin: true}))
	require.NoError(t, err)

	var out bytes.Buffer
	return &commandLine{
		out:    &out,
		api:    api,
		sess:   sess,
		logger: logsvc.NewStdLogger(log.New(&out, "", 0)),
	}, &out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantOut    string
	extra      interface{}
}

func Test_commandLine_usage(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	cli, _ := setup(t, backend)

	tests := []cliTest{
		{name: "no command", args: []string{}, wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "aulas: no subcommand", args: []string{"aulas"}, wantErr: errHelp},
		{name: "aulas: unknown subcommand", args: []string{"aulas", "lol"}, wantErr: errHelp},
		{name: "pagos: no subcommand", args: []string{"pagos"}, wantErr: errHelp},
		{name: "documentos: unknown subcommand", args: []string{"documentos", "lol"}, wantErr: errHelp},
	}
	for _, tt := range tests {
		args := append([]string{"console"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func Test_commandLine_requiresSession(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	cli, _ := setup(t, backend)
	cli.sess = nil

	for _, cmd := range []string{"aulas", "docentes", "usuarios", "pagos", "documentos", "auditoria"} {
		t.Run(cmd, func(t *testing.T) {
			err := cli.run([]string{"console", cmd, "list"})
			assert.Equal(t, errNoLogin, err)
		})
	}
}

func Test_commandLine_login(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()

	token := mintToken(t, session.Claims{UserID: 1, Codigo: "adm001", Nombre: "María"})
	backend.Handle(http.MethodPost, "/login", func(c echo.Context) error {
		var req struct {
			Codigo   string `json:"codigo"`
			Password string `json:"password"`
		}
		if err := c.Bind(&req); err != nil {
			return err
		}
		if req.Password != "s3cret" {
			return testutil.Fail(c, http.StatusUnauthorized, "credenciales inválidas", nil)
		}
		return testutil.OK(c, map[string]string{"token": token})
	})

	cli, out := setup(t, backend)
	cli.sess = nil

	origRead := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPasswordFunc = origRead }()

	t.Run("missing codigo", func(t *testing.T) {
		err := cli.run([]string{"console", "login"})
		assert.Equal(t, errHelp, err)
	})

	t.Run("ok", func(t *testing.T) {
		err := cli.run([]string{"console", "login", "-codigo", "ADM001"})
		require.NoError(t, err)
		require.NotNil(t, cli.sess)
		assert.Equal(t, "María", cli.sess.Nombre())
		assert.Contains(t, out.String(), "Bienvenido, María")
		assert.Contains(t, out.String(), "export SAI_TOKEN="+token)
	})

	t.Run("bad credentials", func(t *testing.T) {
		readPasswordFunc = func(fd int) ([]byte, error) { return []byte("wrong"), nil }
		err := cli.run([]string{"console", "login", "-codigo", "adm001"})
		require.Error(t, err)
		assert.Equal(t, "credenciales inválidas", err.Error())
	})
}

func Test_commandLine_aulas(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()

	backend.Handle(http.MethodGet, "/admin/aulas", func(c echo.Context) error {
		return testutil.Paged(c, []map[string]interface{}{
			{"id": 1, "codigo_aula": "A-101", "nombre": "Aula Magna", "edificio": "Bloque A", "piso": 1, "capacidad": 40, "tipo": "aula", "activa": true},
		}, 1, 10, 1, 1, 1, 1)
	})
	var created map[string]interface{}
	backend.Handle(http.MethodPost, "/admin/aulas", func(c echo.Context) error {
		if err := c.Bind(&created); err != nil {
			return err
		}
		return testutil.OKMsg(c, "aula creada")
	})
	backend.Handle(http.MethodDelete, "/admin/aulas/1", func(c echo.Context) error {
		return testutil.OKMsg(c, "aula eliminada")
	})

	cli, out := setup(t, backend)

	t.Run("list", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "aulas", "list"}))
		assert.Contains(t, out.String(), "A-101")
		assert.Contains(t, out.String(), "página 1/1 (1-1 de 1)")
	})

	t.Run("list with filter", func(t *testing.T) {
		backend.ResetCalls()
		require.NoError(t, cli.run([]string{"console", "aulas", "list", "-tipo", "laboratorio"}))
		calls := backend.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "laboratorio", calls[0].Query["tipo"])
	})

	t.Run("create coerces the form values", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{
			"console", "aulas", "create",
			"-codigo", "B-202", "-nombre", "Lab Redes", "-edificio", "Bloque B",
			"-piso", "2", "-capacidad", "25", "-tipo", "laboratorio",
		}))
		assert.Contains(t, out.String(), "[ok] aula creada")
		assert.Equal(t, float64(2), created["piso"], "piso travels as a number")
		assert.Equal(t, float64(25), created["capacidad"])
		assert.Equal(t, true, created["activa"])
	})

	t.Run("create with a bad number stays local", func(t *testing.T) {
		backend.ResetCalls()
		out.Reset()
		require.NoError(t, cli.run([]string{
			"console", "aulas", "create",
			"-codigo", "C-303", "-nombre", "Aula C", "-edificio", "C",
			"-piso", "tres", "-capacidad", "30",
		}))
		assert.Contains(t, out.String(), "[error]")
		assert.Zero(t, backend.CallCount(http.MethodPost, "/admin/aulas"))
	})

	t.Run("delete declined", func(t *testing.T) {
		confirmFunc = func(out io.Writer, prompt string) bool { return false }
		defer func() { confirmFunc = askConfirm }()
		backend.ResetCalls()
		require.NoError(t, cli.run([]string{"console", "aulas", "delete", "-id", "1"}))
		assert.Zero(t, backend.CallCount(http.MethodDelete, "/admin/aulas/1"))
	})

	t.Run("delete confirmed via -y", func(t *testing.T) {
		out.Reset()
		backend.ResetCalls()
		require.NoError(t, cli.run([]string{"console", "aulas", "delete", "-id", "1", "-y"}))
		assert.Equal(t, 1, backend.CallCount(http.MethodDelete, "/admin/aulas/1"))
		assert.Contains(t, out.String(), "[ok] aula eliminada")
	})
}

func Test_commandLine_docentesCreateValidation(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()

	backend.Handle(http.MethodGet, "/admin/docentes", func(c echo.Context) error {
		return testutil.Paged(c, []map[string]interface{}{}, 1, 10, 1, 0, 0, 0)
	})
	backend.Handle(http.MethodPost, "/admin/docentes", func(c echo.Context) error {
		return testutil.OKMsg(c, "docente creado")
	})

	cli, out := setup(t, backend)

	t.Run("non-numeric ci stays local", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{
			"console", "docentes", "create",
			"-ci", "12a45", "-nombres", "Juan", "-apellidos", "Pérez",
			"-email", "juan.perez@instituto.edu.bo",
		}))
		assert.Contains(t, out.String(), "only digits are allowed")
		assert.Zero(t, backend.CallCount(http.MethodPost, "/admin/docentes"))
	})

	t.Run("bad email stays local", func(t *testing.T) {
		backend.ResetCalls()
		out.Reset()
		require.NoError(t, cli.run([]string{
			"console", "docentes", "create",
			"-ci", "12345678", "-nombres", "Juan", "-apellidos", "Pérez",
			"-email", "no-es-un-email",
		}))
		assert.Contains(t, out.String(), "[error]")
		assert.Zero(t, backend.CallCount(http.MethodPost, "/admin/docentes"))
	})

	t.Run("valid docente goes out", func(t *testing.T) {
		backend.ResetCalls()
		out.Reset()
		require.NoError(t, cli.run([]string{
			"console", "docentes", "create",
			"-ci", "12345678", "-nombres", "Juan", "-apellidos", "Pérez",
			"-email", "juan.perez@instituto.edu.bo",
		}))
		assert.Contains(t, out.String(), "[ok] docente creado")
		assert.Equal(t, 1, backend.CallCount(http.MethodPost, "/admin/docentes"))
	})
}

func Test_commandLine_permissionGate(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()

	backend.Handle(http.MethodGet, "/admin/aulas", func(c echo.Context) error {
		return testutil.Paged(c, []map[string]interface{}{}, 1, 10, 1, 0, 0, 0)
	})
	backend.Handle(http.MethodDelete, "/admin/aulas/1", func(c echo.Context) error {
		return testutil.OKMsg(c, "aula eliminada")
	})
	backend.Handle(http.MethodPost, "/admin/documentos/7/aprobar", func(c echo.Context) error {
		return testutil.OKMsg(c, "documento aprobado")
	})

	cli, out := setup(t, backend)
	sess, err := session.Parse(mintToken(t, session.Claims{
		UserID: 2, Codigo: "ver001", Nombre: "Lector",
		Permisos: []session.Permission{{Modulo: "aulas", Accion: session.AccionVer}},
	}))
	require.NoError(t, err)
	cli.sess = sess

	t.Run("granted action runs", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "aulas", "list"}))
		assert.Contains(t, out.String(), "página")
		assert.Equal(t, 1, backend.CallCount(http.MethodGet, "/admin/aulas"))
	})

	t.Run("denied delete stays local", func(t *testing.T) {
		backend.ResetCalls()
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "aulas", "delete", "-id", "1", "-y"}))
		assert.Contains(t, out.String(), "no tiene permisos para aulas.eliminar")
		assert.Zero(t, backend.CallCount(http.MethodDelete, "/admin/aulas/1"))
	})

	t.Run("denied approve stays local", func(t *testing.T) {
		backend.ResetCalls()
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "documentos", "aprobar", "-id", "7"}))
		assert.Contains(t, out.String(), "no tiene permisos para documentos.editar")
		assert.Empty(t, backend.Calls())
	})

	t.Run("superadmin bypasses the permission list", func(t *testing.T) {
		admin, err := session.Parse(mintToken(t, session.Claims{UserID: 1, Codigo: "adm001", Nombre: "Admin", SuperAdmin: true}))
		require.NoError(t, err)
		cli.sess = admin
		backend.ResetCalls()
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "aulas", "delete", "-id", "1", "-y"}))
		assert.Contains(t, out.String(), "[ok] aula eliminada")
		assert.Equal(t, 1, backend.CallCount(http.MethodDelete, "/admin/aulas/1"))
	})
}

func Test_commandLine_docentesTemplate(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	cli, out := setup(t, backend)

	require.NoError(t, cli.run([]string{"console", "docentes", "template"}))
	assert.Equal(t, "ci,nombres,apellidos,email,telefono\n12345678,Juan,Pérez Mamani,juan.perez@instituto.edu.bo,70012345\n", out.String())
}

func Test_commandLine_documentos(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()

	backend.Handle(http.MethodGet, "/admin/documentos/7", func(c echo.Context) error {
		return testutil.OK(c, map[string]interface{}{
			"id": 7, "nombre_documento": "Cédula de identidad",
			"path": "/storage/documentos/cedula.jpg", "estado": "0", "version": 1,
		})
	})
	backend.Handle(http.MethodPost, "/admin/documentos/7/rechazar", func(c echo.Context) error {
		return testutil.OKMsg(c, "documento rechazado")
	})

	cli, out := setup(t, backend)

	t.Run("preview", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "documentos", "preview", "-id", "7"}))
		assert.Contains(t, out.String(), "Cédula de identidad (imagen)")
		assert.Contains(t, out.String(), "/storage/documentos/cedula.jpg")
	})

	t.Run("short rejection reason stays local", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "documentos", "rechazar", "-id", "7", "-motivo", "borroso"}))
		assert.Contains(t, out.String(), "el motivo de rechazo debe tener al menos 10 caracteres")
		assert.Zero(t, backend.CallCount(http.MethodPost, "/admin/documentos/7/rechazar"))
	})

	t.Run("valid rejection goes out", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "documentos", "rechazar", "-id", "7", "-motivo", "imagen completamente ilegible"}))
		assert.Contains(t, out.String(), "[ok] documento rechazado")
		assert.Equal(t, 1, backend.CallCount(http.MethodPost, "/admin/documentos/7/rechazar"))
	})
}

func Test_commandLine_pagos(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()

	backend.Handle(http.MethodPost, "/admin/cuotas/4/pagos", func(c echo.Context) error {
		return testutil.OKMsg(c, "pago registrado")
	})

	cli, out := setup(t, backend)

	t.Run("pagar", func(t *testing.T) {
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "pagos", "pagar", "-id", "4", "-monto", "150.50", "-fecha", "2026-03-01"}))
		assert.Contains(t, out.String(), "[ok] pago registrado")
	})

	t.Run("pagar with zero amount stays local", func(t *testing.T) {
		backend.ResetCalls()
		out.Reset()
		require.NoError(t, cli.run([]string{"console", "pagos", "pagar", "-id", "4", "-monto", "0"}))
		assert.Contains(t, out.String(), "el monto debe ser mayor a cero")
		assert.Empty(t, backend.Calls())
	})
}

func Test_commandLine_listFailure(t *testing.T) {
	backend := testutil.NewBackend()
	cli, out := setup(t, backend)
	backend.Close() // backend gone: must degrade to a notification

	require.NoError(t, cli.run([]string{"console", "aulas", "list"}))
	assert.Contains(t, out.String(), "[error] error de conexión con el servidor")
	assert.NotContains(t, out.String(), "página", "no paging footer on a failed load")
}
