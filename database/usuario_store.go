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

// UsuarioStore persists usuarios in MongoDB. It implements logic.UsuarioStore.
type UsuarioStore struct {
	col *mongo.Collection
}

// NewUsuarioStore wraps the usuarios collection of db.
func NewUsuarioStore(db *mongo.Database) *UsuarioStore {
	return &UsuarioStore{col: db.Collection("usuarios")}
}

func (s *UsuarioStore) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&usuario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding usuario by email: %w", err)
	}
	return &usuario, nil
}

func (s *UsuarioStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&usuario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding usuario by id: %w", err)
	}
	return &usuario, nil
}

func (s *UsuarioStore) FindActivos(ctx context.Context) ([]models.Usuario, error) {
	cursor, err := s.col.Find(ctx, bson.M{"estado": true})
	if err != nil {
		return nil, fmt.Errorf("listing active usuarios: %w", err)
	}
	usuarios := []models.Usuario{}
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, fmt.Errorf("decoding active usuarios: %w", err)
	}
	return usuarios, nil
}

func (s *UsuarioStore) FindPorCurso(ctx context.Context, cursoID primitive.ObjectID) ([]models.Usuario, error) {
	cursor, err := s.col.Find(ctx, bson.M{"estado": true, "cursos": cursoID})
	if err != nil {
		return nil, fmt.Errorf("listing usuarios by curso: %w", err)
	}
	usuarios := []models.Usuario{}
	if err := cursor.All(ctx, &usuarios); err != nil {
		return nil, fmt.Errorf("decoding usuarios by curso: %w", err)
	}
	return usuarios, nil
}

func (s *UsuarioStore) Insert(ctx context.Context, usuario *models.Usuario) error {
	res, err := s.col.InsertOne(ctx, usuario)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("email %s: %w", usuario.Email, logic.ErrDuplicado)
	}
	if err != nil {
		return fmt.Errorf("inserting usuario: %w", err)
	}
	usuario.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *UsuarioStore) InsertMany(ctx context.Context, usuarios []models.Usuario) ([]models.Usuario, error) {
	docs := make([]interface{}, len(usuarios))
	for i := range usuarios {
		docs[i] = usuarios[i]
	}
	res, err := s.col.InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("inserting usuarios: %w", err)
	}
	for i, id := range res.InsertedIDs {
		usuarios[i].ID = id.(primitive.ObjectID)
	}
	return usuarios, nil
}

func (s *UsuarioStore) ActualizarPorEmail(ctx context.Context, email string, cambios models.ActualizacionUsuario) (*models.Usuario, error) {
	set := bson.M{}
	if cambios.Nombre != nil {
		set["nombre"] = *cambios.Nombre
	}
	if cambios.Password != nil {
		set["password"] = *cambios.Password
	}
	if cambios.Imagen != nil {
		set["imagen"] = *cambios.Imagen
	}
	if len(set) == 0 {
		return s.FindByEmail(ctx, email)
	}

	var usuario models.Usuario
	err := s.col.FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&usuario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("updating usuario: %w", err)
	}
	return &usuario, nil
}

func (s *UsuarioStore) AgregarCursos(ctx context.Context, email string, cursos []primitive.ObjectID) (*models.Usuario, error) {
	if len(cursos) == 0 {
		return s.FindByEmail(ctx, email)
	}

	// $addToSet keeps cursos a set: re-enrolling is a no-op.
	var usuario models.Usuario
	err := s.col.FindOneAndUpdate(ctx, bson.M{"email": email},
		bson.M{"$addToSet": bson.M{"cursos": bson.M{"$each": cursos}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&usuario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("enrolling usuario: %w", err)
	}
	return &usuario, nil
}

func (s *UsuarioStore) Desactivar(ctx context.Context, email string) (*models.Usuario, error) {
	// No estado filter: deactivating twice returns the record again.
	var usuario models.Usuario
	err := s.col.FindOneAndUpdate(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"estado": false}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&usuario)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("deactivating usuario: %w", err)
	}
	return &usuario, nil
}
