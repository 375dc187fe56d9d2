package seed

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"biblio/logic"
	"biblio/models"
)

var usuariosData = []models.Usuario{
	{
		Email:    "maria.lopez@example.com",
		Nombre:   "Maria López",
		Password: "password456",
		Estado:   true,
		Imagen:   "https://example.com/maria_lopez.jpg",
	},
	{
		Email:    "carlos.garcia@example.com",
		Nombre:   "Carlos García",
		Password: "password789",
		Estado:   true,
		Imagen:   "https://example.com/carlos_garcia.jpg",
	},
	{
		Email:    "natalia.silva@example.com",
		Nombre:   "Natalia Silva",
		Password: "password012",
		Estado:   true,
		Imagen:   "https://example.com/natalia_silva.jpg",
	},
	{
		Email:    "sergio.martinez@example.com",
		Nombre:   "Sergio Martínez",
		Password: "password123",
		Estado:   true,
		Imagen:   "https://example.com/sergio_martinez.jpg",
	},
	{
		Email:    "camila.sanchez@example.com",
		Nombre:   "Camila Sánchez",
		Password: "password456",
		Estado:   true,
		Imagen:   "https://example.com/camila_sanchez.jpg",
	},
	{
		Email:    "felipe.gutierrez@example.com",
		Nombre:   "Felipe Gutiérrez",
		Password: "password789",
		Estado:   true,
		Imagen:   "https://example.com/felipe_gutierrez.jpg",
	},
}

var cursosData = []models.Curso{
	{
		Titulo:       "Introducción a React.JS",
		Descripcion:  "Curso básico sobre React.JS",
		Estado:       true,
		Imagen:       "https://example.com/react.png",
		Alumnos:      26,
		Calificacion: 4.7,
	},
	{
		Titulo:       "Desarrollo Web con HTML y CSS",
		Descripcion:  "Curso completo sobre desarrollo web",
		Estado:       true,
		Imagen:       "https://example.com/html_css.png",
		Alumnos:      25,
		Calificacion: 4.8,
	},
	{
		Titulo:       "Introducción a Java Básico",
		Descripcion:  "Curso introductorio al lenguaje de programación Java.",
		Estado:       true,
		Imagen:       "https://example.com/java_basico.png",
		Alumnos:      32,
		Calificacion: 4.5,
	},
}

// Run populates both collections with the static seed records, inserting
// only the ones whose key is not stored yet. Failures are logged and do
// not abort startup.
func Run(ctx context.Context, usuarios logic.UsuarioStore, cursos logic.CursoStore) {
	for _, cursoData := range cursosData {
		existente, err := cursos.FindByTitulo(ctx, cursoData.Titulo)
		if err != nil {
			log.Printf("Seed: error buscando curso %q: %v", cursoData.Titulo, err)
			continue
		}
		if existente != nil {
			log.Printf("Seed: curso %q ya existe.", cursoData.Titulo)
			continue
		}
		curso := cursoData
		if err := cursos.Insert(ctx, &curso); err != nil {
			log.Printf("Seed: error creando curso %q: %v", cursoData.Titulo, err)
			continue
		}
		log.Printf("Seed: curso %q creado.", cursoData.Titulo)
	}

	for _, usuarioData := range usuariosData {
		existente, err := usuarios.FindByEmail(ctx, usuarioData.Email)
		if err != nil {
			log.Printf("Seed: error buscando usuario %q: %v", usuarioData.Email, err)
			continue
		}
		if existente != nil {
			log.Printf("Seed: usuario %q ya existe.", usuarioData.Email)
			continue
		}
		usuario := usuarioData
		usuario.Cursos = []primitive.ObjectID{}
		if err := usuarios.Insert(ctx, &usuario); err != nil {
			log.Printf("Seed: error creando usuario %q: %v", usuarioData.Email, err)
			continue
		}
		log.Printf("Seed: usuario %q creado.", usuarioData.Email)
	}
}
