package logic

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"biblio/models"
)

// UsuarioStore is the persistence contract for the usuarios collection.
// Lookup methods return (nil, nil) when no record matches. Insert methods
// report a unique-index violation as ErrDuplicado.
type UsuarioStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Usuario, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Usuario, error)
	FindActivos(ctx context.Context) ([]models.Usuario, error)
	FindPorCurso(ctx context.Context, cursoID primitive.ObjectID) ([]models.Usuario, error)
	Insert(ctx context.Context, usuario *models.Usuario) error
	InsertMany(ctx context.Context, usuarios []models.Usuario) ([]models.Usuario, error)
	ActualizarPorEmail(ctx context.Context, email string, cambios models.ActualizacionUsuario) (*models.Usuario, error)
	AgregarCursos(ctx context.Context, email string, cursos []primitive.ObjectID) (*models.Usuario, error)
	Desactivar(ctx context.Context, email string) (*models.Usuario, error)
}

// UsuarioService implements the user use cases on top of the stores.
type UsuarioService struct {
	usuarios UsuarioStore
	cursos   CursoStore

	// omitirExistentes controls whether bulk import silently skips records
	// whose email is already stored, instead of leaving the unique index
	// to reject them.
	omitirExistentes bool
}

// NewUsuarioService wires a user service to its stores.
func NewUsuarioService(usuarios UsuarioStore, cursos CursoStore, omitirExistentes bool) *UsuarioService {
	return &UsuarioService{usuarios: usuarios, cursos: cursos, omitirExistentes: omitirExistentes}
}

// CrearUsuario inserts a validated user with estado=true. The existence
// pre-check is a fast path; the unique index on email is authoritative.
func (s *UsuarioService) CrearUsuario(ctx context.Context, nuevo models.NuevoUsuario) (*models.Usuario, error) {
	existente, err := s.usuarios.FindByEmail(ctx, nuevo.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("email %s: %w", nuevo.Email, ErrDuplicado)
	}

	usuario := &models.Usuario{
		Email:    nuevo.Email,
		Nombre:   nuevo.Nombre,
		Password: nuevo.Password,
		Imagen:   nuevo.Imagen,
		Estado:   true,
		Cursos:   []primitive.ObjectID{},
	}
	if err := s.usuarios.Insert(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// ActualizarUsuario applies a partial update to the user identified by
// email. Only supplied fields change; Cursos is never touched here.
func (s *UsuarioService) ActualizarUsuario(ctx context.Context, email string, cambios models.ActualizacionUsuario) (*models.Usuario, error) {
	usuario, err := s.usuarios.ActualizarPorEmail(ctx, email, cambios)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrNoEncontrado
	}
	return usuario, nil
}

// DesactivarUsuario soft-deletes a user. Repeating the call keeps
// returning the record with estado=false (idempotent success).
func (s *UsuarioService) DesactivarUsuario(ctx context.Context, email string) (*models.Usuario, error) {
	usuario, err := s.usuarios.Desactivar(ctx, email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrNoEncontrado
	}
	return usuario, nil
}

// ListarActivos returns every user with estado=true in insertion order.
func (s *UsuarioService) ListarActivos(ctx context.Context) ([]models.Usuario, error) {
	return s.usuarios.FindActivos(ctx)
}

// AgregarCursosAUsuario enrolls the user in each referenced course with
// set-union semantics: re-adding an already enrolled course is a no-op.
// Every course id must resolve at enrollment time.
func (s *UsuarioService) AgregarCursosAUsuario(ctx context.Context, email string, cursoIDs []primitive.ObjectID) (*models.Usuario, error) {
	usuario, err := s.usuarios.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrNoEncontrado
	}

	for _, id := range cursoIDs {
		curso, err := s.cursos.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if curso == nil {
			return nil, fmt.Errorf("curso %s: %w", id.Hex(), ErrCursoDesconocido)
		}
	}

	actualizado, err := s.usuarios.AgregarCursos(ctx, email, cursoIDs)
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, ErrNoEncontrado
	}
	return actualizado, nil
}

// ListarCursosDeUsuario dereferences the user's enrollments. Courses that
// no longer resolve are dropped silently; deactivated courses are kept.
func (s *UsuarioService) ListarCursosDeUsuario(ctx context.Context, usuarioID primitive.ObjectID) ([]models.Curso, error) {
	usuario, err := s.usuarios.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrNoEncontrado
	}
	if len(usuario.Cursos) == 0 {
		return []models.Curso{}, nil
	}
	return s.cursos.FindPorIDs(ctx, usuario.Cursos)
}

// GuardarColeccion bulk-inserts already validated users. Batch duplicates
// by email are dropped keeping the first occurrence.
func (s *UsuarioService) GuardarColeccion(ctx context.Context, candidatos []models.NuevoUsuario) ([]models.Usuario, error) {
	vistos := make(map[string]bool, len(candidatos))
	usuarios := make([]models.Usuario, 0, len(candidatos))
	for _, candidato := range candidatos {
		if vistos[candidato.Email] {
			continue
		}
		vistos[candidato.Email] = true

		if s.omitirExistentes {
			existente, err := s.usuarios.FindByEmail(ctx, candidato.Email)
			if err != nil {
				return nil, err
			}
			if existente != nil {
				continue
			}
		}

		usuarios = append(usuarios, models.Usuario{
			Email:    candidato.Email,
			Nombre:   candidato.Nombre,
			Password: candidato.Password,
			Imagen:   candidato.Imagen,
			Estado:   true,
			Cursos:   []primitive.ObjectID{},
		})
	}
	if len(usuarios) == 0 {
		return []models.Usuario{}, nil
	}
	return s.usuarios.InsertMany(ctx, usuarios)
}
