package models

// Station is immutable reference data describing a docking location.
type Station struct {
	StationID int    `bson:"station_id" json:"stationId"`
	Location  string `bson:"location" json:"location"`
	Capacity  int    `bson:"capacity" json:"capacity"`
}
