package middleware

import (
	"io"
	"net/http"

	"powerbank-rental/api/logger"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

const StripeEventKey = "stripe_event"

// StripeWebhookVerifier checks the Stripe-Signature header against the raw
// request body before any business logic runs. An unverified payload is
// rejected with 400 and never reaches the handler.
func StripeWebhookVerifier(signingSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logger.Get().Error("failed to read webhook body", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		event, err := webhook.ConstructEvent(b, c.GetHeader("Stripe-Signature"), signingSecret)
		if err != nil {
			logger.Get().Error("webhook signature verification failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Set(StripeEventKey, event)
		c.Next()
	}
}
