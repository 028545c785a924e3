package handlers

import (
	"fmt"
	"net/http"
	"time"

	"powerbank-rental/api/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type activeRental struct {
	ID        string     `json:"id"`
	StationID int        `json:"stationId"`
	Location  string     `json:"location"`
	RentedAt  *time.Time `json:"rentedAt"`
}

// HandleMyPowerBanks lists the caller's active rentals with the owning
// station's location resolved.
func (a *API) HandleMyPowerBanks(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	ctx := c.Request.Context()

	banks, err := a.PowerBanks.FindInUseByUser(ctx, userID)
	if err != nil {
		logger.Get().Error("failed to fetch rented power banks",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching power banks"})
		return
	}

	stations, err := a.Stations.FindAll(ctx)
	if err != nil {
		logger.Get().Error("failed to fetch stations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching power banks"})
		return
	}
	locations := make(map[int]string, len(stations))
	for _, station := range stations {
		locations[station.StationID] = station.Location
	}

	rentals := make([]activeRental, 0, len(banks))
	for _, bank := range banks {
		rentals = append(rentals, activeRental{
			ID:        bank.ID,
			StationID: bank.StationID,
			Location:  locations[bank.StationID],
			RentedAt:  bank.RentedAt,
		})
	}

	c.JSON(http.StatusOK, rentals)
}

type returnRequest struct {
	UserID string `json:"userId"`
}

// HandleReturnPowerBanks bulk-frees every INUSE bank held by the user. Ban
// state and reminder counters are deliberately untouched: a banned user
// stays banned after returning.
func (a *API) HandleReturnPowerBanks(c *gin.Context) {
	var req returnRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	count, err := a.PowerBanks.ReleaseAllForUser(c.Request.Context(), req.UserID)
	if err != nil {
		logger.Get().Error("failed to return power banks",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error returning power banks"})
		return
	}

	logger.Get().Info("power banks returned",
		zap.String("user_id", req.UserID),
		zap.Int64("count", count))
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Returned %d power bank(s)", count)})
}
