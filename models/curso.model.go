package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Curso represents a course in the cursos collection.
// Titulo is the unique key and is immutable after creation.
type Curso struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Titulo       string             `bson:"titulo" json:"titulo"`
	Descripcion  string             `bson:"descripcion,omitempty" json:"descripcion,omitempty"`
	Estado       bool               `bson:"estado" json:"estado"`
	Imagen       string             `bson:"imagen,omitempty" json:"imagen,omitempty"`
	Alumnos      int                `bson:"alumnos,omitempty" json:"alumnos,omitempty"`
	Calificacion float64            `bson:"calificacion,omitempty" json:"calificacion,omitempty"`
}

// NuevoCurso is the request body for creating a course. Alumnos and
// Calificacion are optional; non-numeric values fail at body parsing.
type NuevoCurso struct {
	Titulo       string   `json:"titulo" validate:"required"`
	Descripcion  string   `json:"descripcion"`
	Imagen       string   `json:"imagen"`
	Alumnos      *int     `json:"alumnos"`
	Calificacion *float64 `json:"calificacion"`
}

// ActualizacionCurso is the request body for a partial course update.
// Titulo is immutable, so its presence in the body is a validation failure.
type ActualizacionCurso struct {
	Titulo       *string  `json:"titulo" validate:"isdefault"`
	Descripcion  *string  `json:"descripcion"`
	Imagen       *string  `json:"imagen"`
	Alumnos      *int     `json:"alumnos"`
	Calificacion *float64 `json:"calificacion"`
}
