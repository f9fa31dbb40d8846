package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/GosriPerdomo/Back2finalPerdomo/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence collaborator for user documents. Create and
// Update receive plaintext passwords and MUST hash them before anything
// touches the collection.
type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type mongoUserStore struct {
	collection *mongo.Collection
}

// NewUserStore builds a mongo-backed UserStore and ensures the unique index
// on email, so concurrent registrations with the same address cannot both
// succeed even though the handler's pre-check is check-then-act.
func NewUserStore(db *mongo.Database) UserStore {
	collection := db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("WARNING: failed to create unique email index: %v", err)
	}

	return &mongoUserStore{collection: collection}
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

func (s *mongoUserStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	return user, err
}

func (s *mongoUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	hashed, err := HashPassword(user.Password)
	if err != nil {
		return models.User{}, err
	}
	user.Password = hashed

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err = s.collection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, ErrEmailExists
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *mongoUserStore) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.User, error) {
	if password, ok := fields["password"].(string); ok && password != "" {
		hashed, err := HashPassword(password)
		if err != nil {
			return models.User{}, err
		}
		fields["password"] = hashed
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, ErrEmailExists
	}
	return user, err
}

func (s *mongoUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
