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

type messageRepository struct {
	db *mongo.Database
}

func NewMessageRepository(db *mongo.Database) domain.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	// The handler has already validated the user id, but this repository is
	// the source of truth so it re-checks before writing. The check and the
	// insert are not one transaction; a user deleted in between slips through.
	users := r.db.Collection(db.UsersCollection)

	count, err := users.CountDocuments(ctx, bson.M{"_id": message.UserID},
		options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrInvalidUserID
	}

	collection := r.db.Collection(db.MessagesCollection)

	message.ID = primitive.NewObjectID()

	_, err = collection.InsertOne(ctx, message)
	return err
}

func (r *messageRepository) GetAll(ctx context.Context) ([]domain.PopulatedMessage, error) {
	return r.aggregate(ctx, bson.M{})
}

func (r *messageRepository) GetByRoom(ctx context.Context, room string) ([]domain.PopulatedMessage, error) {
	return r.aggregate(ctx, bson.M{"room": room})
}

// aggregate resolves each message's user reference into the embedded user
// document. Oldest messages first; ObjectIDs break created_at ties since they
// are insertion-monotonic.
func (r *messageRepository) aggregate(ctx context.Context, match bson.M) ([]domain.PopulatedMessage, error) {
	collection := r.db.Collection(db.MessagesCollection)

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.UsersCollection},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "created_at", Value: 1},
			{Key: "_id", Value: 1},
		}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []domain.PopulatedMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// EnsureIndexes creates the indexes backing the room filter and the user
// lookup. Call once at startup.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	collection := database.Collection(db.MessagesCollection)

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "room", Value: 1},
				{Key: "created_at", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "user", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
