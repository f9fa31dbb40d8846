package services

import (
	"context"

	"github.com/GosriPerdomo/Back2finalPerdomo/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CartStore is the persistence collaborator for cart documents. Only the two
// operations registration needs are exposed here.
type CartStore interface {
	Create(ctx context.Context) (models.Cart, error)
	SetOwner(ctx context.Context, cartID, ownerID primitive.ObjectID) error
}

type mongoCartStore struct {
	collection *mongo.Collection
}

func NewCartStore(db *mongo.Database) CartStore {
	return &mongoCartStore{collection: db.Collection("carts")}
}

// Create inserts an empty, ownerless cart.
func (s *mongoCartStore) Create(ctx context.Context) (models.Cart, error) {
	cart := models.Cart{
		ID:       primitive.NewObjectID(),
		Products: []models.CartItem{},
		Owner:    nil,
	}
	if _, err := s.collection.InsertOne(ctx, cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *mongoCartStore) SetOwner(ctx context.Context, cartID, ownerID primitive.ObjectID) error {
	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": cartID},
		bson.M{"$set": bson.M{"owner": ownerID}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrCartNotFound
	}
	return nil
}
