package logic

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"biblio/models"
)

// In-memory store implementations for tests. They mirror the Mongo stores'
// contract: (nil, nil) lookups on miss, ErrDuplicado on unique-key clashes,
// insertion order preserved.

// MemUsuarioStore is an in-memory UsuarioStore.
type MemUsuarioStore struct {
	mu       sync.Mutex
	usuarios []models.Usuario
}

// NewMemUsuarioStore creates an empty in-memory user store.
func NewMemUsuarioStore() *MemUsuarioStore {
	return &MemUsuarioStore{}
}

func (m *MemUsuarioStore) FindByEmail(_ context.Context, email string) (*models.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.usuarios {
		if m.usuarios[i].Email == email {
			u := m.usuarios[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemUsuarioStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.usuarios {
		if m.usuarios[i].ID == id {
			u := m.usuarios[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemUsuarioStore) FindActivos(_ context.Context) ([]models.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	activos := []models.Usuario{}
	for _, u := range m.usuarios {
		if u.Estado {
			activos = append(activos, u)
		}
	}
	return activos, nil
}

func (m *MemUsuarioStore) FindPorCurso(_ context.Context, cursoID primitive.ObjectID) ([]models.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inscritos := []models.Usuario{}
	for _, u := range m.usuarios {
		if !u.Estado {
			continue
		}
		for _, id := range u.Cursos {
			if id == cursoID {
				inscritos = append(inscritos, u)
				break
			}
		}
	}
	return inscritos, nil
}

func (m *MemUsuarioStore) Insert(_ context.Context, usuario *models.Usuario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(usuario)
}

func (m *MemUsuarioStore) insertLocked(usuario *models.Usuario) error {
	for i := range m.usuarios {
		if m.usuarios[i].Email == usuario.Email {
			return fmt.Errorf("email %s: %w", usuario.Email, ErrDuplicado)
		}
	}
	usuario.ID = primitive.NewObjectID()
	m.usuarios = append(m.usuarios, *usuario)
	return nil
}

func (m *MemUsuarioStore) InsertMany(_ context.Context, usuarios []models.Usuario) ([]models.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	insertados := make([]models.Usuario, 0, len(usuarios))
	for i := range usuarios {
		// Bulk conflicts surface as plain store errors, as in Mongo.
		if err := m.insertLocked(&usuarios[i]); err != nil {
			return insertados, fmt.Errorf("bulk insert: %v", err)
		}
		insertados = append(insertados, usuarios[i])
	}
	return insertados, nil
}

func (m *MemUsuarioStore) ActualizarPorEmail(_ context.Context, email string, cambios models.ActualizacionUsuario) (*models.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.usuarios {
		if m.usuarios[i].Email != email {
			continue
		}
		if cambios.Nombre != nil {
			m.usuarios[i].Nombre = *cambios.Nombre
		}
		if cambios.Password != nil {
			m.usuarios[i].Password = *cambios.Password
		}
		if cambios.Imagen != nil {
			m.usuarios[i].Imagen = *cambios.Imagen
		}
		u := m.usuarios[i]
		return &u, nil
	}
	return nil, nil
}

func (m *MemUsuarioStore) AgregarCursos(_ context.Context, email string, cursos []primitive.ObjectID) (*models.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.usuarios {
		if m.usuarios[i].Email != email {
			continue
		}
		for _, nuevo := range cursos {
			presente := false
			for _, existente := range m.usuarios[i].Cursos {
				if existente == nuevo {
					presente = true
					break
				}
			}
			if !presente {
				m.usuarios[i].Cursos = append(m.usuarios[i].Cursos, nuevo)
			}
		}
		u := m.usuarios[i]
		return &u, nil
	}
	return nil, nil
}

func (m *MemUsuarioStore) Desactivar(_ context.Context, email string) (*models.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.usuarios {
		if m.usuarios[i].Email == email {
			m.usuarios[i].Estado = false
			u := m.usuarios[i]
			return &u, nil
		}
	}
	return nil, nil
}

// MemCursoStore is an in-memory CursoStore.
type MemCursoStore struct {
	mu     sync.Mutex
	cursos []models.Curso
}

// NewMemCursoStore creates an empty in-memory course store.
func NewMemCursoStore() *MemCursoStore {
	return &MemCursoStore{}
}

func (m *MemCursoStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cursos {
		if m.cursos[i].ID == id {
			c := m.cursos[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MemCursoStore) FindByTitulo(_ context.Context, titulo string) (*models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cursos {
		if m.cursos[i].Titulo == titulo {
			c := m.cursos[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MemCursoStore) FindActivos(_ context.Context) ([]models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	activos := []models.Curso{}
	for _, c := range m.cursos {
		if c.Estado {
			activos = append(activos, c)
		}
	}
	return activos, nil
}

func (m *MemCursoStore) FindPorIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	buscados := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		buscados[id] = true
	}
	encontrados := []models.Curso{}
	for _, c := range m.cursos {
		if buscados[c.ID] {
			encontrados = append(encontrados, c)
		}
	}
	return encontrados, nil
}

func (m *MemCursoStore) Insert(_ context.Context, curso *models.Curso) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(curso)
}

func (m *MemCursoStore) insertLocked(curso *models.Curso) error {
	for i := range m.cursos {
		if m.cursos[i].Titulo == curso.Titulo {
			return fmt.Errorf("titulo %q: %w", curso.Titulo, ErrDuplicado)
		}
	}
	curso.ID = primitive.NewObjectID()
	m.cursos = append(m.cursos, *curso)
	return nil
}

func (m *MemCursoStore) InsertMany(_ context.Context, cursos []models.Curso) ([]models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	insertados := make([]models.Curso, 0, len(cursos))
	for i := range cursos {
		// Bulk conflicts surface as plain store errors, as in Mongo.
		if err := m.insertLocked(&cursos[i]); err != nil {
			return insertados, fmt.Errorf("bulk insert: %v", err)
		}
		insertados = append(insertados, cursos[i])
	}
	return insertados, nil
}

func (m *MemCursoStore) ActualizarPorID(_ context.Context, id primitive.ObjectID, cambios models.ActualizacionCurso) (*models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cursos {
		if m.cursos[i].ID != id {
			continue
		}
		if cambios.Descripcion != nil {
			m.cursos[i].Descripcion = *cambios.Descripcion
		}
		if cambios.Imagen != nil {
			m.cursos[i].Imagen = *cambios.Imagen
		}
		if cambios.Alumnos != nil {
			m.cursos[i].Alumnos = *cambios.Alumnos
		}
		if cambios.Calificacion != nil {
			m.cursos[i].Calificacion = *cambios.Calificacion
		}
		c := m.cursos[i]
		return &c, nil
	}
	return nil, nil
}

func (m *MemCursoStore) Desactivar(_ context.Context, id primitive.ObjectID) (*models.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cursos {
		if m.cursos[i].ID == id {
			m.cursos[i].Estado = false
			c := m.cursos[i]
			return &c, nil
		}
	}
	return nil, nil
}
