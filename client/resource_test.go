package client_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yasir-hub1/sistema-admin-institucional-sub003/client"
	testutil "github.com/Yasir-hub1/sistema-admin-institucional-sub003/tests"
)

type aula struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

func newResource(t *testing.T, backend *testutil.Backend) *client.Resource[aula] {
	t.Helper()
	c, err := client.New(backend.URL(), 5*time.Second, testutil.Token("tok"))
	require.NoError(t, err)
	return client.NewResource[aula](c, "/admin/aulas")
}

func TestResourceList(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	backend.Handle(http.MethodGet, "/admin/aulas", func(c echo.Context) error {
		return testutil.Paged(c, []aula{{ID: 1, Nombre: "Aula Magna"}, {ID: 2, Nombre: "Lab 1"}}, 2, 10, 5, 42, 11, 12)
	})
	res := newResource(t, backend)

	got := res.List(context.Background(), client.ListParams{Page: 2, PerPage: 10})
	require.True(t, got.Success)
	assert.Len(t, got.Page.Data, 2)
	assert.Equal(t, 2, got.Page.CurrentPage)
	assert.Equal(t, 5, got.Page.LastPage)
	assert.Equal(t, 42, got.Page.Total)
	assert.Equal(t, 11, got.Page.From)
	assert.Equal(t, 12, got.Page.To)
}

func TestResourceListStripsBlankParams(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	backend.Handle(http.MethodGet, "/admin/aulas", func(c echo.Context) error {
		return testutil.Paged(c, []aula{}, 1, 10, 1, 0, 0, 0)
	})
	res := newResource(t, backend)

	filters := client.NewFilters().
		Set("tipo", "laboratorio").
		Set("edificio", "   ") // blank: never sent
	res.List(context.Background(), client.ListParams{Page: 1, PerPage: 10, Search: "  ", Filters: filters})

	calls := backend.Calls()
	require.Len(t, calls, 1)
	q := calls[0].Query
	assert.Equal(t, "laboratorio", q["tipo"])
	assert.Equal(t, "1", q["page"])
	assert.Equal(t, "10", q["per_page"])
	_, hasSearch := q["search"]
	assert.False(t, hasSearch)
	_, hasEdificio := q["edificio"]
	assert.False(t, hasEdificio)
}

func TestResourceListFailure(t *testing.T) {
	t.Run("backend rejection", func(t *testing.T) {
		backend := testutil.NewBackend()
		defer backend.Close()
		backend.Handle(http.MethodGet, "/admin/aulas", func(c echo.Context) error {
			return testutil.Fail(c, http.StatusForbidden, "no tiene permisos para este módulo", nil)
		})
		res := newResource(t, backend)

		got := res.List(context.Background(), client.ListParams{})
		assert.False(t, got.Success)
		assert.Equal(t, "no tiene permisos para este módulo", got.Message)
	})

	t.Run("server unreachable", func(t *testing.T) {
		backend := testutil.NewBackend()
		res := newResource(t, backend)
		backend.Close()

		got := res.List(context.Background(), client.ListParams{})
		assert.False(t, got.Success)
		assert.Equal(t, "error de conexión con el servidor", got.Message)
	})
}

func TestResourceCreate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		backend := testutil.NewBackend()
		defer backend.Close()
		backend.Handle(http.MethodPost, "/admin/aulas", func(c echo.Context) error {
			return testutil.OK(c, aula{ID: 9, Nombre: "Auditorio"})
		})
		res := newResource(t, backend)

		got := res.Create(context.Background(), map[string]interface{}{"nombre": "Auditorio"})
		require.True(t, got.Success)
		assert.Equal(t, 9, got.Data.ID)
	})

	t.Run("validation failure surfaces field errors", func(t *testing.T) {
		backend := testutil.NewBackend()
		defer backend.Close()
		backend.Handle(http.MethodPost, "/admin/aulas", func(c echo.Context) error {
			return testutil.Fail(c, http.StatusUnprocessableEntity, "datos inválidos", map[string][]string{
				"codigo_aula": {"el código ya existe"},
				"capacidad":   {"debe ser mayor a cero"},
			})
		})
		res := newResource(t, backend)

		got := res.Create(context.Background(), map[string]interface{}{})
		assert.False(t, got.Success)
		assert.Equal(t, "datos inválidos", got.Message)
		assert.Equal(t, []string{"debe ser mayor a cero", "el código ya existe"}, got.Errors.Flatten())
	})
}

func TestResourceDelete(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	backend.Handle(http.MethodDelete, "/admin/aulas/3", func(c echo.Context) error {
		return testutil.OKMsg(c, "aula eliminada")
	})
	res := newResource(t, backend)

	got := res.Delete(context.Background(), 3)
	assert.True(t, got.Success)
	assert.Equal(t, "aula eliminada", got.Message)
}

func TestResourceExportAll(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	backend.Handle(http.MethodGet, "/admin/aulas", func(c echo.Context) error {
		return testutil.OK(c, []aula{{ID: 1}, {ID: 2}, {ID: 3}})
	})
	res := newResource(t, backend)

	got := res.ExportAll(context.Background(), client.NewFilters().Set("tipo", "aula"))
	require.True(t, got.Success)
	assert.Len(t, got.Data, 3)

	calls := backend.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "true", calls[0].Query["all"])
	assert.Equal(t, "aula", calls[0].Query["tipo"])
}

func TestResourceImport(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	backend.Handle(http.MethodPost, "/admin/aulas/import", func(c echo.Context) error {
		fh, err := c.FormFile("archivo")
		require.NoError(t, err)
		assert.Equal(t, "aulas.csv", fh.Filename)
		return testutil.OK(c, client.ImportSummary{
			TotalRows: 3, Created: 2, Updated: 0, Failed: 1,
			Errors: []client.ImportError{{Row: 3, Error: "código duplicado"}},
		})
	})
	res := newResource(t, backend)

	got := res.Import(context.Background(), "aulas.csv", strings.NewReader("codigo,nombre\nA-1,Aula 1\n"))
	require.True(t, got.Success)
	assert.Equal(t, 2, got.Data.Created)
	require.Len(t, got.Data.Errors, 1)
	assert.Equal(t, 3, got.Data.Errors[0].Row)
}

func TestResourceDo(t *testing.T) {
	backend := testutil.NewBackend()
	defer backend.Close()
	backend.Handle(http.MethodPost, "/admin/aulas/5/archivar", func(c echo.Context) error {
		return testutil.OKMsg(c, "aula archivada")
	})
	res := newResource(t, backend)

	got := res.Do(context.Background(), 5, "archivar", nil)
	assert.True(t, got.Success)
	assert.Equal(t, "aula archivada", got.Message)
}

func TestClientRejectsRelativeBaseURL(t *testing.T) {
	_, err := client.New("localhost:8000/api", time.Second, nil)
	assert.Error(t, err)
}
