package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"powerbank-rental/api/logger"
	"powerbank-rental/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

// HandleWebhook processes a signature-verified Stripe event. Once the
// verifier has accepted the payload, every outcome acknowledges with 200 so
// Stripe does not retry forever on business-logic edge cases; replays find
// no pending payment and change nothing.
func (a *API) HandleWebhook(c *gin.Context) {
	value, exists := c.Get(middleware.StripeEventKey)
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing webhook event"})
		return
	}
	event, ok := value.(stripe.Event)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook event"})
		return
	}

	if event.Type != "checkout.session.completed" {
		logger.Get().Debug("ignoring webhook event", zap.String("type", string(event.Type)))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		logger.Get().Error("failed to parse checkout session from event", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	ctx := c.Request.Context()

	payment, err := a.Payments.MarkPaidBySession(ctx, session.ID)
	if err != nil {
		logger.Get().Error("failed to mark payment paid",
			zap.String("session_id", session.ID),
			zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}
	if payment == nil {
		// Unknown session or an already reconciled replay.
		logger.Get().Info("no pending payment for session",
			zap.String("session_id", session.ID))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := a.PowerBanks.Confirm(ctx, payment.PowerBankID, payment.UserID, time.Now()); err != nil {
		logger.Get().Error("failed to hand over power bank",
			zap.String("power_bank_id", payment.PowerBankID),
			zap.String("session_id", session.ID),
			zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	logger.Get().Info("rental confirmed",
		zap.String("power_bank_id", payment.PowerBankID),
		zap.String("user_id", payment.UserID),
		zap.String("session_id", session.ID))
	c.JSON(http.StatusOK, gin.H{"received": true})
}
