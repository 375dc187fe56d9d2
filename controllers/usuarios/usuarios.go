package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"biblio/logic"
	"biblio/middleware"
	"biblio/models"
)

// UsuarioController exposes the user endpoints over the user service.
type UsuarioController struct {
	servicio *logic.UsuarioService
}

func NewUsuarioController(servicio *logic.UsuarioService) *UsuarioController {
	return &UsuarioController{servicio: servicio}
}

func respuestaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, logic.ErrNoEncontrado):
		return middleware.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	case errors.Is(err, logic.ErrDuplicado):
		return middleware.JsonError(c, fiber.StatusConflict, "El correo electrónico ya está registrado")
	case errors.Is(err, logic.ErrCursoDesconocido):
		return middleware.JsonError(c, fiber.StatusBadRequest, "Curso no encontrado")
	}
	log.Printf("usuarios: %v", err)
	return middleware.JsonError(c, fiber.StatusInternalServerError, "Error interno del servidor")
}

// ListarActivos handles GET /api/usuarios
func (ctl *UsuarioController) ListarActivos(c *fiber.Ctx) error {
	usuarios, err := ctl.servicio.ListarActivos(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	if len(usuarios) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(usuarios)
}

// ListarCursos handles GET /api/usuarios/:usuarioId/cursos
func (ctl *UsuarioController) ListarCursos(c *fiber.Ctx) error {
	usuarioID, err := primitive.ObjectIDFromHex(c.Params("usuarioId"))
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	cursos, err := ctl.servicio.ListarCursosDeUsuario(c.Context(), usuarioID)
	if err != nil {
		return respuestaError(c, err)
	}
	if len(cursos) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(cursos)
}

// Crear handles POST /api/usuarios
func (ctl *UsuarioController) Crear(c *fiber.Ctx) error {
	nuevo := c.Locals("nuevoUsuario").(*models.NuevoUsuario)

	usuario, err := ctl.servicio.CrearUsuario(c.Context(), *nuevo)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"usuario": usuario})
}

// AgregarCursos handles POST /api/usuarios/:email/cursos
func (ctl *UsuarioController) AgregarCursos(c *fiber.Ctx) error {
	cursoIDs := c.Locals("cursoIDs").([]primitive.ObjectID)

	usuario, err := ctl.servicio.AgregarCursosAUsuario(c.Context(), c.Params("email"), cursoIDs)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(fiber.Map{"usuario": usuario})
}

// GuardarColeccion handles POST /api/usuarios/coleccion
func (ctl *UsuarioController) GuardarColeccion(c *fiber.Ctx) error {
	coleccion := c.Locals("coleccionUsuarios").([]models.NuevoUsuario)

	usuarios, err := ctl.servicio.GuardarColeccion(c.Context(), coleccion)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuarios)
}

// Actualizar handles PUT /api/usuarios/:email
func (ctl *UsuarioController) Actualizar(c *fiber.Ctx) error {
	cambios := c.Locals("cambiosUsuario").(*models.ActualizacionUsuario)

	usuario, err := ctl.servicio.ActualizarUsuario(c.Context(), c.Params("email"), *cambios)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(fiber.Map{"usuario": usuario})
}

// Desactivar handles DELETE /api/usuarios/:email
func (ctl *UsuarioController) Desactivar(c *fiber.Ctx) error {
	usuario, err := ctl.servicio.DesactivarUsuario(c.Context(), c.Params("email"))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(fiber.Map{"usuario": usuario})
}
