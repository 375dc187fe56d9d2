package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"biblio/middleware"
)

// Field patterns carried over from the registration rules: Spanish letters
// and spaces for names, alphanumeric passwords, and emails restricted to a
// domain with at least two segments and a whitelisted TLD.
var (
	nombreRegex = regexp.MustCompile(`^[A-Za-záéíóú ]{3,30}$`)
	claveRegex  = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
	correoRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9-]+(\.[a-zA-Z0-9-]+)*\.(com|net|edu|co)$`)
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// Report fields by their json name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("nombre", func(fl validator.FieldLevel) bool {
		return nombreRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("clave", func(fl validator.FieldLevel) bool {
		return claveRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("correo", func(fl validator.FieldLevel) bool {
		return correoRegex.MatchString(fl.Field().String())
	})

	return v
}

// detalles converts a validator error into the ordered violation list.
func detalles(err error) []middleware.FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []middleware.FieldError{{Campo: "body", Mensaje: "Cuerpo de la solicitud inválido"}}
	}
	errores := make([]middleware.FieldError, 0, len(ve))
	for _, fe := range ve {
		errores = append(errores, middleware.FieldError{Campo: fe.Field(), Mensaje: mensaje(fe)})
	}
	return errores
}

func mensaje(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es requerido", fe.Field())
	case "nombre":
		return "El nombre debe tener entre 3 y 30 letras y espacios"
	case "clave":
		return "La contraseña debe tener entre 3 y 30 caracteres alfanuméricos"
	case "correo":
		return "El correo electrónico no es válido"
	case "isdefault":
		return fmt.Sprintf("El campo %s no puede ser modificado", fe.Field())
	}
	return fmt.Sprintf("El campo %s no es válido", fe.Field())
}
