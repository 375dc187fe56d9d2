package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblio/logic"
	"biblio/models"
)

func TestRunSiembraAmbasColecciones(t *testing.T) {
	ctx := context.Background()
	usuarios := logic.NewMemUsuarioStore()
	cursos := logic.NewMemCursoStore()

	Run(ctx, usuarios, cursos)

	sembradosU, err := usuarios.FindActivos(ctx)
	require.NoError(t, err)
	assert.Len(t, sembradosU, len(usuariosData))

	sembradosC, err := cursos.FindActivos(ctx)
	require.NoError(t, err)
	assert.Len(t, sembradosC, len(cursosData))

	existente, err := usuarios.FindByEmail(ctx, "maria.lopez@example.com")
	require.NoError(t, err)
	require.NotNil(t, existente)
	assert.True(t, existente.Estado)
}

func TestRunEsIdempotente(t *testing.T) {
	ctx := context.Background()
	usuarios := logic.NewMemUsuarioStore()
	cursos := logic.NewMemCursoStore()

	Run(ctx, usuarios, cursos)

	// A second run must not duplicate nor modify anything.
	nombre := "Otro Nombre"
	_, err := usuarios.ActualizarPorEmail(ctx, "maria.lopez@example.com",
		models.ActualizacionUsuario{Nombre: &nombre})
	require.NoError(t, err)

	Run(ctx, usuarios, cursos)

	sembradosU, err := usuarios.FindActivos(ctx)
	require.NoError(t, err)
	assert.Len(t, sembradosU, len(usuariosData))

	modificada, err := usuarios.FindByEmail(ctx, "maria.lopez@example.com")
	require.NoError(t, err)
	require.NotNil(t, modificada)
	assert.Equal(t, "Otro Nombre", modificada.Nombre) // existing records are never updated
}
