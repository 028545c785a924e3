// Package qrcode renders the QR images mounted on physical stations. Each
// code encodes the station's identity and address as JSON; the mobile app
// scans it to know which station the user is standing at.
package qrcode

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	qr "github.com/skip2/go-qrcode"
)

const imageSize = 300

type StationData struct {
	StationID int    `json:"stationId"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Street    string `json:"street"`
}

// GenerateStationQR writes station_<id>.png into outputDir and returns the
// file path.
func GenerateStationQR(outputDir string, data StationData) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode station data: %w", err)
	}

	path := filepath.Join(outputDir, fmt.Sprintf("station_%d.png", data.StationID))
	if err := qr.WriteFile(string(payload), qr.Medium, imageSize, path); err != nil {
		return "", fmt.Errorf("failed to write QR code for station %d: %w", data.StationID, err)
	}

	return path, nil
}
