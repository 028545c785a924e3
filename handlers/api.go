package handlers

import (
	"powerbank-rental/api/config"
	"powerbank-rental/api/store"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// API bundles the repositories and external clients the HTTP handlers use.
type API struct {
	Config     *config.Config
	Stations   store.StationRepository
	PowerBanks store.PowerBankRepository
	Users      store.UserRepository
	Payments   store.PaymentRepository

	// createCheckoutSession defaults to the Stripe SDK; tests stub it.
	createCheckoutSession func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func New(cfg *config.Config, stations store.StationRepository, powerBanks store.PowerBankRepository, users store.UserRepository, payments store.PaymentRepository) *API {
	return &API{
		Config:                cfg,
		Stations:              stations,
		PowerBanks:            powerBanks,
		Users:                 users,
		Payments:              payments,
		createCheckoutSession: session.New,
	}
}
