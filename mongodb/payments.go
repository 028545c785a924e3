package mongodb

import (
	"context"
	"fmt"

	"powerbank-rental/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PaymentRepo struct {
	collection *mongo.Collection
}

func NewPaymentRepo(database string) *PaymentRepo {
	return &PaymentRepo{
		collection: MongoClient.Database(database).Collection(PaymentCollection),
	}
}

func (r *PaymentRepo) Insert(ctx context.Context, payment *models.Payment) error {
	_, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return fmt.Errorf("error creating payment: %v", err)
	}
	return nil
}

func (r *PaymentRepo) FindByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching payments: %v", err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	for cursor.Next(ctx) {
		var payment models.Payment
		if err := cursor.Decode(&payment); err != nil {
			return nil, fmt.Errorf("error decoding payment: %v", err)
		}
		payments = append(payments, payment)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return payments, nil
}

// MarkPaidBySession only matches a payment still in pending status, so
// webhook replays for an already reconciled session match nothing and
// return (nil, nil).
func (r *PaymentRepo) MarkPaidBySession(ctx context.Context, sessionID string) (*models.Payment, error) {
	filter := bson.M{
		"session_id": sessionID,
		"status":     models.PaymentStatusPending,
	}
	update := bson.M{"$set": bson.M{"status": models.PaymentStatusPaid}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var payment models.Payment
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error marking payment paid for session %s: %v", sessionID, err)
	}

	return &payment, nil
}
