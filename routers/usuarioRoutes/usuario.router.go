package usuarioRoutes

import (
	usuarioControllers "biblio/controllers/usuarios"
	"biblio/validators"

	"github.com/gofiber/fiber/v2"
)

// SetupUsuarioRoutes registers the /api/usuarios endpoints.
func SetupUsuarioRoutes(app *fiber.App, ctl *usuarioControllers.UsuarioController) {
	usuarioGroup := app.Group("/api/usuarios")

	usuarioGroup.Get("/", ctl.ListarActivos)
	usuarioGroup.Get("/:usuarioId/cursos", ctl.ListarCursos)
	usuarioGroup.Post("/", validators.CrearUsuario(), ctl.Crear)
	usuarioGroup.Post("/coleccion", validators.ColeccionUsuarios(), ctl.GuardarColeccion)
	usuarioGroup.Post("/:email/cursos", validators.AgregarCursos(), ctl.AgregarCursos)
	usuarioGroup.Put("/:email", validators.ActualizarUsuario(), ctl.Actualizar)
	usuarioGroup.Delete("/:email", ctl.Desactivar)
}
