package mongodb

import (
	"context"
	"fmt"
	"time"

	"powerbank-rental/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PowerBankRepo struct {
	collection *mongo.Collection
}

func NewPowerBankRepo(database string) *PowerBankRepo {
	return &PowerBankRepo{
		collection: MongoClient.Database(database).Collection(PowerBankCollection),
	}
}

func (r *PowerBankRepo) Insert(ctx context.Context, bank *models.PowerBank) error {
	_, err := r.collection.InsertOne(ctx, bank)
	if err != nil {
		return fmt.Errorf("error creating power bank: %v", err)
	}
	return nil
}

func (r *PowerBankRepo) CountFree(ctx context.Context, stationID int) (int64, error) {
	filter := bson.M{
		"station_id": stationID,
		"status":     models.PowerBankStatusFree,
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting free power banks at station %d: %v", stationID, err)
	}
	return count, nil
}

// Reserve is a compare-and-set: the FREE status is part of the filter, so
// two concurrent callers can never reserve the same bank.
func (r *PowerBankRepo) Reserve(ctx context.Context, stationID int, now time.Time) (*models.PowerBank, error) {
	filter := bson.M{
		"station_id": stationID,
		"status":     models.PowerBankStatusFree,
	}
	update := bson.M{
		"$set": bson.M{
			"status":      models.PowerBankStatusReserved,
			"reserved_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var bank models.PowerBank
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&bank)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error reserving power bank at station %d: %v", stationID, err)
	}

	return &bank, nil
}

func (r *PowerBankRepo) Release(ctx context.Context, bankID string) error {
	filter := bson.M{
		"_id":    bankID,
		"status": models.PowerBankStatusReserved,
	}
	update := bson.M{
		"$set":   bson.M{"status": models.PowerBankStatusFree},
		"$unset": bson.M{"reserved_at": ""},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error releasing power bank %s: %v", bankID, err)
	}
	return nil
}

func (r *PowerBankRepo) Confirm(ctx context.Context, bankID, userID string, rentedAt time.Time) error {
	filter := bson.M{"_id": bankID}
	update := bson.M{
		"$set": bson.M{
			"status":    models.PowerBankStatusInUse,
			"user_id":   userID,
			"rented_at": rentedAt,
		},
		"$unset": bson.M{"reserved_at": ""},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error confirming power bank %s: %v", bankID, err)
	}
	return nil
}

func (r *PowerBankRepo) FindInUseByUser(ctx context.Context, userID string) ([]models.PowerBank, error) {
	filter := bson.M{
		"user_id": userID,
		"status":  models.PowerBankStatusInUse,
	}
	return r.find(ctx, filter)
}

func (r *PowerBankRepo) FindOverdue(ctx context.Context, cutoff time.Time) ([]models.PowerBank, error) {
	filter := bson.M{
		"status":    models.PowerBankStatusInUse,
		"rented_at": bson.M{"$lte": cutoff},
	}
	return r.find(ctx, filter)
}

func (r *PowerBankRepo) ReleaseExpiredReservations(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"status":      models.PowerBankStatusReserved,
		"reserved_at": bson.M{"$lte": cutoff},
	}
	update := bson.M{
		"$set":   bson.M{"status": models.PowerBankStatusFree},
		"$unset": bson.M{"reserved_at": ""},
	}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error releasing expired reservations: %v", err)
	}
	return result.ModifiedCount, nil
}

func (r *PowerBankRepo) ReleaseAllForUser(ctx context.Context, userID string) (int64, error) {
	filter := bson.M{
		"user_id": userID,
		"status":  models.PowerBankStatusInUse,
	}
	update := bson.M{
		"$set":   bson.M{"status": models.PowerBankStatusFree},
		"$unset": bson.M{"user_id": "", "rented_at": ""},
	}

	result, err := r.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error returning power banks for user %s: %v", userID, err)
	}
	return result.ModifiedCount, nil
}

func (r *PowerBankRepo) find(ctx context.Context, filter bson.M) ([]models.PowerBank, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching power banks: %v", err)
	}
	defer cursor.Close(ctx)

	var banks []models.PowerBank
	for cursor.Next(ctx) {
		var bank models.PowerBank
		if err := cursor.Decode(&bank); err != nil {
			return nil, fmt.Errorf("error decoding power bank: %v", err)
		}
		banks = append(banks, bank)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return banks, nil
}
