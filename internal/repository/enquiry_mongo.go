package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/model"
)

type mongoEnquiryRepository struct {
	enquiries *mongo.Collection
}

func NewMongoEnquiryRepository(client *mongo.Client) EnquiryRepository {
	return &mongoEnquiryRepository{
		enquiries: client.Database(databaseName).Collection("enquiries"),
	}
}

func (r *mongoEnquiryRepository) FindByID(ctx context.Context, id string) (*model.Enquiry, error) {
	var e model.Enquiry
	if err := r.enquiries.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	e.EnquiryStatus = model.ParseEnquiryStatus(string(e.EnquiryStatus))
	return &e, nil
}

func (r *mongoEnquiryRepository) FindAll(ctx context.Context) ([]*model.Enquiry, error) {
	cursor, err := r.enquiries.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	enquiries := make([]*model.Enquiry, 0)
	if err := cursor.All(ctx, &enquiries); err != nil {
		return nil, err
	}

	for _, e := range enquiries {
		e.EnquiryStatus = model.ParseEnquiryStatus(string(e.EnquiryStatus))
	}
	return enquiries, nil
}

func (r *mongoEnquiryRepository) Create(ctx context.Context, e *model.Enquiry) error {
	if _, err := r.enquiries.InsertOne(ctx, e); err != nil {
		return err
	}
	return nil
}

func (r *mongoEnquiryRepository) MarkConverted(ctx context.Context, id string, clientID string) (bool, error) {
	filter := bson.M{"_id": id, "isClient": false}
	update := bson.M{"$set": bson.M{"isClient": true, "clientId": clientID}}

	res, err := r.enquiries.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
