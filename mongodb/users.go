package mongodb

import (
	"context"
	"fmt"

	"powerbank-rental/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UserRepo struct {
	collection *mongo.Collection
}

func NewUserRepo(database string) *UserRepo {
	return &UserRepo{
		collection: MongoClient.Database(database).Collection(UserCollection),
	}
}

// Insert registers the user only if the userId is not taken. $setOnInsert
// keeps repeat registrations from overwriting name or email.
func (r *UserRepo) Insert(ctx context.Context, user *models.User) (bool, error) {
	filter := bson.M{"user_id": user.UserID}
	update := bson.M{"$setOnInsert": user}
	opts := options.UpdateOne().SetUpsert(true)

	result, err := r.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return false, fmt.Errorf("error registering user %s: %v", user.UserID, err)
	}
	return result.UpsertedCount > 0, nil
}

func (r *UserRepo) FindByID(ctx context.Context, userID string) (*models.User, error) {
	filter := bson.M{"user_id": userID}

	var user models.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching user %s: %v", userID, err)
	}

	return &user, nil
}

func (r *UserRepo) FindByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	filter := bson.M{"role": role}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching users: %v", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	for cursor.Next(ctx) {
		var user models.User
		if err := cursor.Decode(&user); err != nil {
			return nil, fmt.Errorf("error decoding user: %v", err)
		}
		users = append(users, user)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return users, nil
}

func (r *UserRepo) SetBanned(ctx context.Context, userID string, banned bool) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$set": bson.M{"is_banned": banned}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating ban status for user %s: %v", userID, err)
	}
	if result.MatchedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *UserRepo) IncrementReminders(ctx context.Context, userID string) error {
	filter := bson.M{"user_id": userID}
	update := bson.M{"$inc": bson.M{"reminders_sent": 1}}

	_, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error incrementing reminders for user %s: %v", userID, err)
	}
	return nil
}
