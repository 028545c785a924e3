package handlers

import (
	"net/http"
	"strconv"

	"powerbank-rental/api/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) HandleCheckAvailability(c *gin.Context) {
	stationID, err := strconv.Atoi(c.Param("stationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid station id"})
		return
	}

	count, err := a.PowerBanks.CountFree(c.Request.Context(), stationID)
	if err != nil {
		logger.Get().Error("failed to count free power banks",
			zap.Int("station_id", stationID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking availability"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available":      count > 0,
		"freePowerBanks": count,
	})
}
