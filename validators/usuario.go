package validators

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"biblio/middleware"
	"biblio/models"
)

// ValidarNuevoUsuario checks a creation candidate. It never touches the
// store; a nil result means the candidate is valid.
func ValidarNuevoUsuario(nuevo models.NuevoUsuario) []middleware.FieldError {
	if err := validate.Struct(nuevo); err != nil {
		return detalles(err)
	}
	return nil
}

// ValidarActualizacionUsuario checks a partial update. A present email is
// itself a violation: the key is immutable.
func ValidarActualizacionUsuario(cambios models.ActualizacionUsuario) []middleware.FieldError {
	if err := validate.Struct(cambios); err != nil {
		return detalles(err)
	}
	return nil
}

// CrearUsuario validator middleware
func CrearUsuario() fiber.Handler {
	return func(c *fiber.Ctx) error {
		nuevo := new(models.NuevoUsuario)
		if err := c.BodyParser(nuevo); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la solicitud inválido")
		}

		if errores := ValidarNuevoUsuario(*nuevo); len(errores) > 0 {
			return middleware.ValidationErrorResponse(c, "Validación fallida", errores)
		}

		c.Locals("nuevoUsuario", nuevo)
		return c.Next()
	}
}

// ActualizarUsuario validator middleware
func ActualizarUsuario() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cambios := new(models.ActualizacionUsuario)
		if err := c.BodyParser(cambios); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la solicitud inválido")
		}

		if errores := ValidarActualizacionUsuario(*cambios); len(errores) > 0 {
			return middleware.ValidationErrorResponse(c, "Validación fallida", errores)
		}

		c.Locals("cambiosUsuario", cambios)
		return c.Next()
	}
}

// AgregarCursos validator middleware: the body must be a JSON array of
// course-id hex strings.
func AgregarCursos() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var crudos []string
		if err := c.BodyParser(&crudos); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Se requiere un array de IDs de cursos como strings")
		}

		cursoIDs := make([]primitive.ObjectID, 0, len(crudos))
		for _, crudo := range crudos {
			id, err := primitive.ObjectIDFromHex(crudo)
			if err != nil {
				return middleware.JsonError(c, fiber.StatusBadRequest, fmt.Sprintf("ID de curso inválido: %q", crudo))
			}
			cursoIDs = append(cursoIDs, id)
		}

		c.Locals("cursoIDs", cursoIDs)
		return c.Next()
	}
}

// ColeccionUsuarios validator middleware: every record must be valid on its
// own; the first invalid record aborts the whole batch.
func ColeccionUsuarios() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var coleccion []models.NuevoUsuario
		if err := c.BodyParser(&coleccion); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Se requiere un array de usuarios")
		}

		for i, candidato := range coleccion {
			if errores := ValidarNuevoUsuario(candidato); len(errores) > 0 {
				return middleware.ValidationErrorResponse(c,
					fmt.Sprintf("Validación fallida en el registro %d", i), errores)
			}
		}

		c.Locals("coleccionUsuarios", coleccion)
		return c.Next()
	}
}
