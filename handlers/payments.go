package handlers

import (
	"net/http"

	"powerbank-rental/api/logger"
	"powerbank-rental/api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) HandleListPayments(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	payments, err := a.Payments.FindByUser(c.Request.Context(), userID)
	if err != nil {
		logger.Get().Error("failed to fetch payments",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching payments"})
		return
	}

	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}
