package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	convErrors "github.com/developer-sourabh28/VISA-CRM-sub000/internal/errors"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
)

const databaseName = "visacrm"

type mongoClientRepository struct {
	clients *mongo.Collection
}

func NewMongoClientRepository(client *mongo.Client) ClientRepository {
	return &mongoClientRepository{
		clients: client.Database(databaseName).Collection("clients"),
	}
}

func (r *mongoClientRepository) FindByID(ctx context.Context, id string) (*model.Client, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *mongoClientRepository) FindAll(ctx context.Context) ([]*model.Client, error) {
	cursor, err := r.clients.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	clients := make([]*model.Client, 0)
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *mongoClientRepository) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	return r.findOne(ctx, bson.M{"email": model.NormalizeEmail(email)})
}

func (r *mongoClientRepository) Create(ctx context.Context, c *model.Client) error {
	c.Email = model.NormalizeEmail(c.Email)
	if _, err := r.clients.InsertOne(ctx, c); err != nil {
		// relies on the unique index on email, see EnsureClientIndexes
		if mongo.IsDuplicateKeyError(err) {
			return &convErrors.UniqueViolationErr{Email: c.Email}
		}
		return err
	}
	return nil
}

func (r *mongoClientRepository) MergeEnquirySource(ctx context.Context, clientID string, enquiryID string, teamMemberID string) (*model.Client, error) {
	// Claim the assignment only when nobody holds it. A separate filtered
	// update keeps this first-writer-wins without read-modify-write.
	if teamMemberID != "" {
		claim := bson.M{"_id": clientID, "assignedTo": ""}
		if _, err := r.clients.UpdateOne(ctx, claim, bson.M{"$set": bson.M{"assignedTo": teamMemberID}}); err != nil {
			return nil, err
		}
	}

	update := bson.M{"$addToSet": bson.M{"sourceEnquiryIds": enquiryID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c model.Client
	if err := r.clients.FindOneAndUpdate(ctx, bson.M{"_id": clientID}, update, opts).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoClientRepository) findOne(ctx context.Context, filter bson.M) (*model.Client, error) {
	var c model.Client
	if err := r.clients.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// EnsureClientIndexes creates the unique email index the conversion engine
// relies on as its ordering authority.
func EnsureClientIndexes(ctx context.Context, client *mongo.Client) error {
	clients := client.Database(databaseName).Collection("clients")
	_, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
