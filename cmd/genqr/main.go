// Command genqr renders the QR code images for the deployed stations.
package main

import (
	"flag"
	"log"
	"os"

	"powerbank-rental/api/qrcode"
)

var stations = []qrcode.StationData{
	{StationID: 1, Country: "Lithuania", City: "Vilnius", Street: "Saulėtekio al. 15"},
	{StationID: 2, Country: "Lithuania", City: "Vilnius", Street: "Antakalnio g. 86"},
	{StationID: 3, Country: "Lithuania", City: "Vilnius", Street: "Antakalnio g. 41"},
}

func main() {
	outputDir := flag.String("out", "qr_codes_img", "directory to write QR images into")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	for _, station := range stations {
		path, err := qrcode.GenerateStationQR(*outputDir, station)
		if err != nil {
			log.Fatalf("failed to generate QR code: %v", err)
		}
		log.Printf("QR code for station %d saved as %s", station.StationID, path)
	}
}
