package logic

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"biblio/models"
)

// CursoStore is the persistence contract for the cursos collection.
// Lookup methods return (nil, nil) when no record matches. Insert methods
// report a unique-index violation as ErrDuplicado.
type CursoStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Curso, error)
	FindByTitulo(ctx context.Context, titulo string) (*models.Curso, error)
	FindActivos(ctx context.Context) ([]models.Curso, error)
	FindPorIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Curso, error)
	Insert(ctx context.Context, curso *models.Curso) error
	InsertMany(ctx context.Context, cursos []models.Curso) ([]models.Curso, error)
	ActualizarPorID(ctx context.Context, id primitive.ObjectID, cambios models.ActualizacionCurso) (*models.Curso, error)
	Desactivar(ctx context.Context, id primitive.ObjectID) (*models.Curso, error)
}

// CursoService implements the course use cases on top of the stores.
type CursoService struct {
	cursos   CursoStore
	usuarios UsuarioStore

	omitirExistentes bool
}

// NewCursoService wires a course service to its stores.
func NewCursoService(cursos CursoStore, usuarios UsuarioStore, omitirExistentes bool) *CursoService {
	return &CursoService{cursos: cursos, usuarios: usuarios, omitirExistentes: omitirExistentes}
}

// CrearCurso inserts a validated course with estado=true. The existence
// pre-check is a fast path; the unique index on titulo is authoritative.
func (s *CursoService) CrearCurso(ctx context.Context, nuevo models.NuevoCurso) (*models.Curso, error) {
	existente, err := s.cursos.FindByTitulo(ctx, nuevo.Titulo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("titulo %q: %w", nuevo.Titulo, ErrDuplicado)
	}

	curso := &models.Curso{
		Titulo:      nuevo.Titulo,
		Descripcion: nuevo.Descripcion,
		Imagen:      nuevo.Imagen,
		Estado:      true,
	}
	if nuevo.Alumnos != nil {
		curso.Alumnos = *nuevo.Alumnos
	}
	if nuevo.Calificacion != nil {
		curso.Calificacion = *nuevo.Calificacion
	}
	if err := s.cursos.Insert(ctx, curso); err != nil {
		return nil, err
	}
	return curso, nil
}

// ObtenerCurso returns a course by id, active or not.
func (s *CursoService) ObtenerCurso(ctx context.Context, id primitive.ObjectID) (*models.Curso, error) {
	curso, err := s.cursos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if curso == nil {
		return nil, ErrNoEncontrado
	}
	return curso, nil
}

// ActualizarCurso applies a partial update to the course identified by id.
func (s *CursoService) ActualizarCurso(ctx context.Context, id primitive.ObjectID, cambios models.ActualizacionCurso) (*models.Curso, error) {
	curso, err := s.cursos.ActualizarPorID(ctx, id, cambios)
	if err != nil {
		return nil, err
	}
	if curso == nil {
		return nil, ErrNoEncontrado
	}
	return curso, nil
}

// DesactivarCurso soft-deletes a course. Users already enrolled keep the
// reference; only active listings stop showing it.
func (s *CursoService) DesactivarCurso(ctx context.Context, id primitive.ObjectID) (*models.Curso, error) {
	curso, err := s.cursos.Desactivar(ctx, id)
	if err != nil {
		return nil, err
	}
	if curso == nil {
		return nil, ErrNoEncontrado
	}
	return curso, nil
}

// ListarActivos returns every course with estado=true in insertion order.
func (s *CursoService) ListarActivos(ctx context.Context) ([]models.Curso, error) {
	return s.cursos.FindActivos(ctx)
}

// ListarUsuariosDeCurso returns the active users enrolled in the course.
func (s *CursoService) ListarUsuariosDeCurso(ctx context.Context, cursoID primitive.ObjectID) ([]models.Usuario, error) {
	curso, err := s.cursos.FindByID(ctx, cursoID)
	if err != nil {
		return nil, err
	}
	if curso == nil {
		return nil, ErrNoEncontrado
	}
	return s.usuarios.FindPorCurso(ctx, cursoID)
}

// GuardarColeccion bulk-inserts already validated courses. Batch
// duplicates by titulo are dropped keeping the first occurrence.
func (s *CursoService) GuardarColeccion(ctx context.Context, candidatos []models.NuevoCurso) ([]models.Curso, error) {
	vistos := make(map[string]bool, len(candidatos))
	cursos := make([]models.Curso, 0, len(candidatos))
	for _, candidato := range candidatos {
		if vistos[candidato.Titulo] {
			continue
		}
		vistos[candidato.Titulo] = true

		if s.omitirExistentes {
			existente, err := s.cursos.FindByTitulo(ctx, candidato.Titulo)
			if err != nil {
				return nil, err
			}
			if existente != nil {
				continue
			}
		}

		curso := models.Curso{
			Titulo:      candidato.Titulo,
			Descripcion: candidato.Descripcion,
			Imagen:      candidato.Imagen,
			Estado:      true,
		}
		if candidato.Alumnos != nil {
			curso.Alumnos = *candidato.Alumnos
		}
		if candidato.Calificacion != nil {
			curso.Calificacion = *candidato.Calificacion
		}
		cursos = append(cursos, curso)
	}
	if len(cursos) == 0 {
		return []models.Curso{}, nil
	}
	return s.cursos.InsertMany(ctx, cursos)
}
