package logic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"biblio/models"
)

func nuevoServicioCursos(omitirExistentes bool) (*CursoService, *MemCursoStore, *MemUsuarioStore) {
	usuarios := NewMemUsuarioStore()
	cursos := NewMemCursoStore()
	return NewCursoService(cursos, usuarios, omitirExistentes), cursos, usuarios
}

func TestCrearCurso(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := nuevoServicioCursos(false)

	alumnos := 12
	calificacion := 4.2
	curso, err := svc.CrearCurso(ctx, models.NuevoCurso{
		Titulo:       "Go desde cero",
		Descripcion:  "Introducción al lenguaje",
		Alumnos:      &alumnos,
		Calificacion: &calificacion,
	})
	require.NoError(t, err)
	assert.True(t, curso.Estado)
	assert.False(t, curso.ID.IsZero())
	assert.Equal(t, 12, curso.Alumnos)
	assert.Equal(t, 4.2, curso.Calificacion)

	_, err = svc.CrearCurso(ctx, models.NuevoCurso{Titulo: "Go desde cero"})
	assert.ErrorIs(t, err, ErrDuplicado)
}

func TestObtenerCurso(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := nuevoServicioCursos(false)

	creado, err := svc.CrearCurso(ctx, models.NuevoCurso{Titulo: "Go desde cero"})
	require.NoError(t, err)

	curso, err := svc.ObtenerCurso(ctx, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go desde cero", curso.Titulo)

	_, err = svc.ObtenerCurso(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestActualizarCurso(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := nuevoServicioCursos(false)

	creado, err := svc.CrearCurso(ctx, models.NuevoCurso{Titulo: "Go desde cero", Descripcion: "vieja"})
	require.NoError(t, err)

	descripcion := "nueva descripción"
	curso, err := svc.ActualizarCurso(ctx, creado.ID, models.ActualizacionCurso{Descripcion: &descripcion})
	require.NoError(t, err)
	assert.Equal(t, "nueva descripción", curso.Descripcion)
	assert.Equal(t, "Go desde cero", curso.Titulo) // untouched

	_, err = svc.ActualizarCurso(ctx, primitive.NewObjectID(), models.ActualizacionCurso{Descripcion: &descripcion})
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestDesactivarCurso(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := nuevoServicioCursos(false)

	creado, err := svc.CrearCurso(ctx, models.NuevoCurso{Titulo: "Go desde cero"})
	require.NoError(t, err)

	curso, err := svc.DesactivarCurso(ctx, creado.ID)
	require.NoError(t, err)
	assert.False(t, curso.Estado)

	// Deactivating the only course leaves the active listing empty.
	activos, err := svc.ListarActivos(ctx)
	require.NoError(t, err)
	assert.Empty(t, activos)

	// Second deactivation still succeeds.
	curso, err = svc.DesactivarCurso(ctx, creado.ID)
	require.NoError(t, err)
	assert.False(t, curso.Estado)

	_, err = svc.DesactivarCurso(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestListarUsuariosDeCurso(t *testing.T) {
	ctx := context.Background()
	svc, _, usuarios := nuevoServicioCursos(false)

	creado, err := svc.CrearCurso(ctx, models.NuevoCurso{Titulo: "Go desde cero"})
	require.NoError(t, err)

	inscrita := &models.Usuario{Email: "ana@uni.edu", Nombre: "Ana Gomez", Estado: true,
		Cursos: []primitive.ObjectID{creado.ID}}
	require.NoError(t, usuarios.Insert(ctx, inscrita))
	inactivo := &models.Usuario{Email: "luis@uni.edu", Nombre: "Luis Rojas", Estado: false,
		Cursos: []primitive.ObjectID{creado.ID}}
	require.NoError(t, usuarios.Insert(ctx, inactivo))
	ajena := &models.Usuario{Email: "eva@uni.edu", Nombre: "Eva Soto", Estado: true}
	require.NoError(t, usuarios.Insert(ctx, ajena))

	lista, err := svc.ListarUsuariosDeCurso(ctx, creado.ID)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "ana@uni.edu", lista[0].Email)

	_, err = svc.ListarUsuariosDeCurso(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestGuardarColeccionCursos(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := nuevoServicioCursos(false)

	guardados, err := svc.GuardarColeccion(ctx, []models.NuevoCurso{
		{Titulo: "Go desde cero", Descripcion: "primera"},
		{Titulo: "SQL práctico"},
		{Titulo: "Go desde cero", Descripcion: "duplicada"},
	})
	require.NoError(t, err)
	require.Len(t, guardados, 2)
	assert.Equal(t, "primera", guardados[0].Descripcion)
	assert.Equal(t, "SQL práctico", guardados[1].Titulo)
}

func TestGuardarColeccionCursosOmitiendoExistentes(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := nuevoServicioCursos(true)

	_, err := svc.CrearCurso(ctx, models.NuevoCurso{Titulo: "Go desde cero"})
	require.NoError(t, err)

	guardados, err := svc.GuardarColeccion(ctx, []models.NuevoCurso{
		{Titulo: "Go desde cero"},
		{Titulo: "SQL práctico"},
	})
	require.NoError(t, err)
	require.Len(t, guardados, 1)
	assert.Equal(t, "SQL práctico", guardados[0].Titulo)
}
