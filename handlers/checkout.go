package handlers

import (
	"fmt"
	"net/http"
	"time"

	"powerbank-rental/api/logger"
	"powerbank-rental/api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"
)

const rentalCurrency = "usd"

type createCheckoutRequest struct {
	StationID int    `json:"stationId"`
	Amount    int64  `json:"amount"`
	UserID    string `json:"userId"`
}

// HandleCreateCheckoutSession reserves a power bank and opens a Stripe
// checkout session for it. The reservation is a FREE->RESERVED
// compare-and-set, so a concurrent caller can never be sold the same bank;
// a reservation that is never paid is reverted by the expiry sweep.
func (a *API) HandleCreateCheckoutSession(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.StationID <= 0 || req.Amount <= 0 || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stationId, amount and userId are required"})
		return
	}

	ctx := c.Request.Context()
	now := time.Now()

	bank, err := a.PowerBanks.Reserve(ctx, req.StationID, now)
	if err != nil {
		logger.Get().Error("failed to reserve power bank",
			zap.Int("station_id", req.StationID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating checkout session"})
		return
	}
	if bank == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrNoAvailability.Error()})
		return
	}

	successURL := a.Config.PublicDomain + "/success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := a.Config.PublicDomain + "/cancel"

	params := &stripe.CheckoutSessionParams{
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(rentalCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("PowerBank Rental - Station %d", req.StationID)),
					},
					UnitAmount: stripe.Int64(req.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}

	s, err := a.createCheckoutSession(params)
	if err != nil {
		logger.Get().Error("failed to create checkout session",
			zap.Int("station_id", req.StationID),
			zap.Error(err))
		a.releaseReservation(c, bank.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating checkout session"})
		return
	}

	payment := &models.Payment{
		ID:          uuid.NewString(),
		StationID:   req.StationID,
		PowerBankID: bank.ID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Currency:    rentalCurrency,
		SessionID:   s.ID,
		Status:      models.PaymentStatusPending,
		CreatedAt:   now,
	}
	if err := a.Payments.Insert(ctx, payment); err != nil {
		logger.Get().Error("failed to persist payment",
			zap.String("session_id", s.ID),
			zap.Error(err))
		a.releaseReservation(c, bank.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating checkout session"})
		return
	}

	logger.Get().Info("checkout session created",
		zap.String("session_id", s.ID),
		zap.String("power_bank_id", bank.ID),
		zap.String("user_id", req.UserID))
	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

func (a *API) releaseReservation(c *gin.Context, bankID string) {
	if err := a.PowerBanks.Release(c.Request.Context(), bankID); err != nil {
		// The expiry sweep will reclaim the bank if this fails.
		logger.Get().Error("failed to release reservation",
			zap.String("power_bank_id", bankID),
			zap.Error(err))
	}
}
