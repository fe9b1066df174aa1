package repository

import (
	"context"

	"github.com/jefner876/codernet-backend-solo/internal/domain"
	"github.com/jefner876/codernet-backend-solo/internal/persistence/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepository struct {
	db *mongo.Database
}

func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	collection := r.db.Collection(db.UsersCollection)

	user.ID = primitive.NewObjectID()

	_, err := collection.InsertOne(ctx, user)
	return err
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	collection := r.db.Collection(db.UsersCollection)

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	collection := r.db.Collection(db.UsersCollection)

	count, err := collection.CountDocuments(ctx, bson.M{"_id": id},
		options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
