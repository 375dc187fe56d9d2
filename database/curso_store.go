package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"biblio/logic"
	"biblio/models"
)

// CursoStore persists cursos in MongoDB. It implements logic.CursoStore.
type CursoStore struct {
	col *mongo.Collection
}

// NewCursoStore wraps the cursos collection of db.
func NewCursoStore(db *mongo.Database) *CursoStore {
	return &CursoStore{col: db.Collection("cursos")}
}

func (s *CursoStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Curso, error) {
	var curso models.Curso
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&curso)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding curso by id: %w", err)
	}
	return &curso, nil
}

func (s *CursoStore) FindByTitulo(ctx context.Context, titulo string) (*models.Curso, error) {
	var curso models.Curso
	err := s.col.FindOne(ctx, bson.M{"titulo": titulo}).Decode(&curso)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding curso by titulo: %w", err)
	}
	return &curso, nil
}

func (s *CursoStore) FindActivos(ctx context.Context) ([]models.Curso, error) {
	cursor, err := s.col.Find(ctx, bson.M{"estado": true})
	if err != nil {
		return nil, fmt.Errorf("listing active cursos: %w", err)
	}
	cursos := []models.Curso{}
	if err := cursor.All(ctx, &cursos); err != nil {
		return nil, fmt.Errorf("decoding active cursos: %w", err)
	}
	return cursos, nil
}

func (s *CursoStore) FindPorIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Curso, error) {
	if len(ids) == 0 {
		return []models.Curso{}, nil
	}
	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("listing cursos by ids: %w", err)
	}
	cursos := []models.Curso{}
	if err := cursor.All(ctx, &cursos); err != nil {
		return nil, fmt.Errorf("decoding cursos by ids: %w", err)
	}
	return cursos, nil
}

func (s *CursoStore) Insert(ctx context.Context, curso *models.Curso) error {
	res, err := s.col.InsertOne(ctx, curso)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("titulo %q: %w", curso.Titulo, logic.ErrDuplicado)
	}
	if err != nil {
		return fmt.Errorf("inserting curso: %w", err)
	}
	curso.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *CursoStore) InsertMany(ctx context.Context, cursos []models.Curso) ([]models.Curso, error) {
	docs := make([]interface{}, len(cursos))
	for i := range cursos {
		docs[i] = cursos[i]
	}
	res, err := s.col.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("inserting cursos: %w", err)
	}
	for i, id := range res.InsertedIDs {
		cursos[i].ID = id.(primitive.ObjectID)
	}
	return cursos, nil
}

func (s *CursoStore) ActualizarPorID(ctx context.Context, id primitive.ObjectID, cambios models.ActualizacionCurso) (*models.Curso, error) {
	set := bson.M{}
	if cambios.Descripcion != nil {
		set["descripcion"] = *cambios.Descripcion
	}
	if cambios.Imagen != nil {
		set["imagen"] = *cambios.Imagen
	}
	if cambios.Alumnos != nil {
		set["alumnos"] = *cambios.Alumnos
	}
	if cambios.Calificacion != nil {
		set["calificacion"] = *cambios.Calificacion
	}
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}

	var curso models.Curso
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&curso)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("updating curso: %w", err)
	}
	return &curso, nil
}

func (s *CursoStore) Desactivar(ctx context.Context, id primitive.ObjectID) (*models.Curso, error) {
	var curso models.Curso
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"estado": false}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&curso)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("deactivating curso: %w", err)
	}
	return &curso, nil
}
