package validators

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"biblio/middleware"
	"biblio/models"
)

// ValidarNuevoCurso checks a creation candidate: titulo is required,
// everything else optional.
func ValidarNuevoCurso(nuevo models.NuevoCurso) []middleware.FieldError {
	if err := validate.Struct(nuevo); err != nil {
		return detalles(err)
	}
	return nil
}

// ValidarActualizacionCurso checks a partial update. A present titulo is
// itself a violation: the key is immutable.
func ValidarActualizacionCurso(cambios models.ActualizacionCurso) []middleware.FieldError {
	if err := validate.Struct(cambios); err != nil {
		return detalles(err)
	}
	return nil
}

// CrearCurso validator middleware
func CrearCurso() fiber.Handler {
	return func(c *fiber.Ctx) error {
		nuevo := new(models.NuevoCurso)
		if err := c.BodyParser(nuevo); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la solicitud inválido")
		}

		if errores := ValidarNuevoCurso(*nuevo); len(errores) > 0 {
			return middleware.ValidationErrorResponse(c, "Validación fallida", errores)
		}

		c.Locals("nuevoCurso", nuevo)
		return c.Next()
	}
}

// ActualizarCurso validator middleware
func ActualizarCurso() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cambios := new(models.ActualizacionCurso)
		if err := c.BodyParser(cambios); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Cuerpo de la solicitud inválido")
		}

		if errores := ValidarActualizacionCurso(*cambios); len(errores) > 0 {
			return middleware.ValidationErrorResponse(c, "Validación fallida", errores)
		}

		c.Locals("cambiosCurso", cambios)
		return c.Next()
	}
}

// ColeccionCursos validator middleware: every record must be valid on its
// own; the first invalid record aborts the whole batch.
func ColeccionCursos() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var coleccion []models.NuevoCurso
		if err := c.BodyParser(&coleccion); err != nil {
			return middleware.JsonError(c, fiber.StatusBadRequest, "Se requiere un array de cursos")
		}

		for i, candidato := range coleccion {
			if errores := ValidarNuevoCurso(candidato); len(errores) > 0 {
				return middleware.ValidationErrorResponse(c,
					fmt.Sprintf("Validación fallida en el registro %d", i), errores)
			}
		}

		c.Locals("coleccionCursos", coleccion)
		return c.Next()
	}
}
