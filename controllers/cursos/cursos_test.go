package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	cursoControllers "biblio/controllers/cursos"
	"biblio/logic"
	"biblio/models"
	"biblio/routers/cursoRoutes"
)

func newApp() (*fiber.App, *logic.MemCursoStore, *logic.MemUsuarioStore) {
	usuarios := logic.NewMemUsuarioStore()
	cursos := logic.NewMemCursoStore()

	app := fiber.New()
	cursoRoutes.SetupCursoRoutes(app,
		cursoControllers.NewCursoController(logic.NewCursoService(cursos, usuarios, false)))
	return app, cursos, usuarios
}

func hacer(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		datos, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(datos)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodificar(t *testing.T, resp *http.Response, destino interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(destino))
}

type respuestaCurso struct {
	Curso models.Curso `json:"curso"`
}

func TestListarCursosVacio(t *testing.T) {
	app, _, _ := newApp()
	resp := hacer(t, app, http.MethodGet, "/api/cursos", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCrearCursoHTTP(t *testing.T) {
	app, _, _ := newApp()

	resp := hacer(t, app, http.MethodPost, "/api/cursos",
		fiber.Map{"titulo": "Go desde cero", "descripcion": "Introducción", "alumnos": 12, "calificacion": 4.2})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var creado respuestaCurso
	decodificar(t, resp, &creado)
	assert.True(t, creado.Curso.Estado)
	assert.Equal(t, 12, creado.Curso.Alumnos)

	// Duplicate title
	resp = hacer(t, app, http.MethodPost, "/api/cursos", fiber.Map{"titulo": "Go desde cero"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Missing title
	resp = hacer(t, app, http.MethodPost, "/api/cursos", fiber.Map{"descripcion": "sin titulo"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Non-numeric alumnos is a body-parse failure
	resp = hacer(t, app, http.MethodPost, "/api/cursos", fiber.Map{"titulo": "Otro", "alumnos": "muchos"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestObtenerCursoHTTP(t *testing.T) {
	app, _, _ := newApp()

	resp := hacer(t, app, http.MethodPost, "/api/cursos", fiber.Map{"titulo": "Go desde cero"})
	var creado respuestaCurso
	decodificar(t, resp, &creado)

	resp = hacer(t, app, http.MethodGet, "/api/cursos/"+creado.Curso.ID.Hex(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var obtenido respuestaCurso
	decodificar(t, resp, &obtenido)
	assert.Equal(t, "Go desde cero", obtenido.Curso.Titulo)

	resp = hacer(t, app, http.MethodGet, "/api/cursos/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Malformed id cannot name any course
	resp = hacer(t, app, http.MethodGet, "/api/cursos/no-es-hex", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestActualizarCursoHTTP(t *testing.T) {
	app, _, _ := newApp()

	resp := hacer(t, app, http.MethodPost, "/api/cursos", fiber.Map{"titulo": "Go desde cero"})
	var creado respuestaCurso
	decodificar(t, resp, &creado)

	resp = hacer(t, app, http.MethodPut, "/api/cursos/"+creado.Curso.ID.Hex(),
		fiber.Map{"descripcion": "nueva"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var actualizado respuestaCurso
	decodificar(t, resp, &actualizado)
	assert.Equal(t, "nueva", actualizado.Curso.Descripcion)

	// Title is immutable
	resp = hacer(t, app, http.MethodPut, "/api/cursos/"+creado.Curso.ID.Hex(),
		fiber.Map{"titulo": "Otro"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = hacer(t, app, http.MethodPut, "/api/cursos/"+primitive.NewObjectID().Hex(),
		fiber.Map{"descripcion": "nueva"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDesactivarCursoHTTP(t *testing.T) {
	app, _, _ := newApp()

	resp := hacer(t, app, http.MethodPost, "/api/cursos", fiber.Map{"titulo": "Go desde cero"})
	var creado respuestaCurso
	decodificar(t, resp, &creado)

	resp = hacer(t, app, http.MethodDelete, "/api/cursos/"+creado.Curso.ID.Hex(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var desactivado respuestaCurso
	decodificar(t, resp, &desactivado)
	assert.False(t, desactivado.Curso.Estado)

	// Deactivating the only course leaves the active list empty.
	resp = hacer(t, app, http.MethodGet, "/api/cursos", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = hacer(t, app, http.MethodDelete, "/api/cursos/"+primitive.NewObjectID().Hex(), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListarUsuariosDeCursoHTTP(t *testing.T) {
	app, _, usuarios := newApp()
	ctx := context.Background()

	resp := hacer(t, app, http.MethodPost, "/api/cursos", fiber.Map{"titulo": "Go desde cero"})
	var creado respuestaCurso
	decodificar(t, resp, &creado)

	// An enrolled course with no students lists as an empty array, not 204.
	resp = hacer(t, app, http.MethodGet, "/api/cursos/"+creado.Curso.ID.Hex()+"/usuarios", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var vacia []models.Usuario
	decodificar(t, resp, &vacia)
	assert.Empty(t, vacia)

	inscrita := &models.Usuario{Email: "ana@uni.edu", Nombre: "Ana Gomez", Estado: true,
		Cursos: []primitive.ObjectID{creado.Curso.ID}}
	require.NoError(t, usuarios.Insert(ctx, inscrita))

	resp = hacer(t, app, http.MethodGet, "/api/cursos/"+creado.Curso.ID.Hex()+"/usuarios", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var lista []models.Usuario
	decodificar(t, resp, &lista)
	require.Len(t, lista, 1)
	assert.Equal(t, "ana@uni.edu", lista[0].Email)

	resp = hacer(t, app, http.MethodGet, "/api/cursos/"+primitive.NewObjectID().Hex()+"/usuarios", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestColeccionCursosHTTP(t *testing.T) {
	app, _, _ := newApp()

	// Invalid record aborts the batch before anything is stored.
	resp := hacer(t, app, http.MethodPost, "/api/cursos/coleccion", []fiber.Map{
		{"titulo": "Go desde cero"},
		{"descripcion": "sin titulo"},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp = hacer(t, app, http.MethodGet, "/api/cursos", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = hacer(t, app, http.MethodPost, "/api/cursos/coleccion", []fiber.Map{
		{"titulo": "Go desde cero"},
		{"titulo": "SQL práctico"},
		{"titulo": "Go desde cero"},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var guardados []models.Curso
	decodificar(t, resp, &guardados)
	assert.Len(t, guardados, 2)
}
