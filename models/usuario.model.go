package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Usuario represents a registered user in the usuarios collection.
// Email is the unique key and is immutable after creation.
type Usuario struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string               `bson:"email" json:"email"`
	Nombre   string               `bson:"nombre" json:"nombre"`
	Password string               `bson:"password" json:"-"` // Exclude password from JSON responses
	Estado   bool                 `bson:"estado" json:"estado"`
	Imagen   string               `bson:"imagen,omitempty" json:"imagen,omitempty"`
	Cursos   []primitive.ObjectID `bson:"cursos" json:"cursos"`
}

// NuevoUsuario is the request body for creating a user.
type NuevoUsuario struct {
	Email    string `json:"email" validate:"required,correo"`
	Nombre   string `json:"nombre" validate:"required,nombre"`
	Password string `json:"password" validate:"required,clave"`
	Imagen   string `json:"imagen"`
}

// ActualizacionUsuario is the request body for a partial user update.
// Pointer fields distinguish "absent" from "empty". Email is immutable,
// so its presence in the body is a validation failure.
type ActualizacionUsuario struct {
	Email    *string `json:"email" validate:"isdefault"`
	Nombre   *string `json:"nombre" validate:"omitempty,nombre"`
	Password *string `json:"password" validate:"omitempty,clave"`
	Imagen   *string `json:"imagen"`
}
