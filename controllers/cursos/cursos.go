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

// CursoController exposes the course endpoints over the course service.
type CursoController struct {
	servicio *logic.CursoService
}

func NewCursoController(servicio *logic.CursoService) *CursoController {
	return &CursoController{servicio: servicio}
}

func respuestaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, logic.ErrNoEncontrado):
		return middleware.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
	case errors.Is(err, logic.ErrDuplicado):
		return middleware.JsonError(c, fiber.StatusConflict, "El título del curso ya existe")
	}
	log.Printf("cursos: %v", err)
	return middleware.JsonError(c, fiber.StatusInternalServerError, "Error interno del servidor")
}

func cursoID(c *fiber.Ctx) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(c.Params("id"))
}

// ListarActivos handles GET /api/cursos
func (ctl *CursoController) ListarActivos(c *fiber.Ctx) error {
	cursos, err := ctl.servicio.ListarActivos(c.Context())
	if err != nil {
		return respuestaError(c, err)
	}
	if len(cursos) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(cursos)
}

// Obtener handles GET /api/cursos/:id
func (ctl *CursoController) Obtener(c *fiber.Ctx) error {
	id, err := cursoID(c)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	curso, err := ctl.servicio.ObtenerCurso(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(fiber.Map{"curso": curso})
}

// ListarUsuarios handles GET /api/cursos/:id/usuarios
func (ctl *CursoController) ListarUsuarios(c *fiber.Ctx) error {
	id, err := cursoID(c)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	usuarios, err := ctl.servicio.ListarUsuariosDeCurso(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(usuarios)
}

// Crear handles POST /api/cursos
func (ctl *CursoController) Crear(c *fiber.Ctx) error {
	nuevo := c.Locals("nuevoCurso").(*models.NuevoCurso)

	curso, err := ctl.servicio.CrearCurso(c.Context(), *nuevo)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"curso": curso})
}

// GuardarColeccion handles POST /api/cursos/coleccion
func (ctl *CursoController) GuardarColeccion(c *fiber.Ctx) error {
	coleccion := c.Locals("coleccionCursos").([]models.NuevoCurso)

	cursos, err := ctl.servicio.GuardarColeccion(c.Context(), coleccion)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cursos)
}

// Actualizar handles PUT /api/cursos/:id
func (ctl *CursoController) Actualizar(c *fiber.Ctx) error {
	id, err := cursoID(c)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
	}
	cambios := c.Locals("cambiosCurso").(*models.ActualizacionCurso)

	curso, err := ctl.servicio.ActualizarCurso(c.Context(), id, *cambios)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(fiber.Map{"curso": curso})
}

// Desactivar handles DELETE /api/cursos/:id
func (ctl *CursoController) Desactivar(c *fiber.Ctx) error {
	id, err := cursoID(c)
	if err != nil {
		return middleware.JsonError(c, fiber.StatusNotFound, "Curso no encontrado")
	}

	curso, err := ctl.servicio.DesactivarCurso(c.Context(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(fiber.Map{"curso": curso})
}
