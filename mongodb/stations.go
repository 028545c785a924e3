package mongodb

import (
	"context"
	"fmt"

	"powerbank-rental/api/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type StationRepo struct {
	collection *mongo.Collection
}

func NewStationRepo(database string) *StationRepo {
	return &StationRepo{
		collection: MongoClient.Database(database).Collection(StationCollection),
	}
}

func (r *StationRepo) Upsert(ctx context.Context, station *models.Station) error {
	filter := bson.M{"station_id": station.StationID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, station, opts)
	if err != nil {
		return fmt.Errorf("error upserting station %d: %v", station.StationID, err)
	}
	return nil
}

func (r *StationRepo) FindByID(ctx context.Context, stationID int) (*models.Station, error) {
	filter := bson.M{"station_id": stationID}

	var station models.Station
	err := r.collection.FindOne(ctx, filter).Decode(&station)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching station %d: %v", stationID, err)
	}

	return &station, nil
}

func (r *StationRepo) FindAll(ctx context.Context) ([]models.Station, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching stations: %v", err)
	}
	defer cursor.Close(ctx)

	var stations []models.Station
	for cursor.Next(ctx) {
		var station models.Station
		if err := cursor.Decode(&station); err != nil {
			return nil, fmt.Errorf("error decoding station: %v", err)
		}
		stations = append(stations, station)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return stations, nil
}
