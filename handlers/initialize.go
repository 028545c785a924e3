package handlers

import (
	"net/http"
	"time"

	"powerbank-rental/api/logger"
	"powerbank-rental/api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const banksPerStation = 6

// seedStations mirrors the physical deployment: three stations in Vilnius.
var seedStations = []models.Station{
	{StationID: 1, Location: "Saulėtekio al. 15, Vilnius", Capacity: banksPerStation},
	{StationID: 2, Location: "Antakalnio g. 86, Vilnius", Capacity: banksPerStation},
	{StationID: 3, Location: "Antakalnio g. 41, Vilnius", Capacity: banksPerStation},
}

func (a *API) HandleInitializeData(c *gin.Context) {
	now := time.Now()

	for _, station := range seedStations {
		if err := a.Stations.Upsert(c.Request.Context(), &station); err != nil {
			logger.Get().Error("failed to seed station",
				zap.Int("station_id", station.StationID),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize data"})
			return
		}

		for i := 0; i < banksPerStation; i++ {
			bank := &models.PowerBank{
				ID:        uuid.NewString(),
				StationID: station.StationID,
				Status:    models.PowerBankStatusFree,
				CreatedAt: now,
			}
			if err := a.PowerBanks.Insert(c.Request.Context(), bank); err != nil {
				logger.Get().Error("failed to seed power bank",
					zap.Int("station_id", station.StationID),
					zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initialize data"})
				return
			}
		}
	}

	logger.Get().Info("data initialized",
		zap.Int("stations", len(seedStations)),
		zap.Int("banks_per_station", banksPerStation))
	c.JSON(http.StatusOK, gin.H{"message": "Data initialized successfully."})
}
