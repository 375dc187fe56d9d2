package cursoRoutes

import (
	cursoControllers "biblio/controllers/cursos"
	"biblio/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupCursoRoutes registers the /api/cursos endpoints.
func SetupCursoRoutes(app *fiber.App, ctl *cursoControllers.CursoController) {
	cursoGroup := app.Group("/api/cursos")

	cursoGroup.Get("/", ctl.ListarActivos)
	cursoGroup.Get("/:id/usuarios", ctl.ListarUsuarios)
	cursoGroup.Get("/:id", ctl.Obtener)
	cursoGroup.Post("/", validators.CrearCurso(), ctl.Crear)
	cursoGroup.Post("/coleccion", validators.ColeccionCursos(), ctl.GuardarColeccion)
	cursoGroup.Put("/:id", validators.ActualizarCurso(), ctl.Actualizar)
	cursoGroup.Delete("/:id", ctl.Desactivar)
}
