package handlers

import (
	"powerbank-rental/api/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every route. The webhook route reads the raw body itself,
// so it sits behind the signature verifier instead of any JSON binding.
func NewRouter(api *API) *gin.Engine {
	router := gin.Default()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(middleware.CorsMiddleware)

	router.POST("/initialize-data", api.HandleInitializeData)
	router.GET("/check-availability/:stationId", api.HandleCheckAvailability)
	router.POST("/create-checkout-session", api.HandleCreateCheckoutSession)
	router.POST("/webhook", middleware.StripeWebhookVerifier(api.Config.StripeWebhookSecret), api.HandleWebhook)

	router.GET("/payments", api.HandleListPayments)
	router.GET("/my-powerbanks", api.HandleMyPowerBanks)
	router.POST("/return-powerbanks", api.HandleReturnPowerBanks)

	router.POST("/register-user", api.HandleRegisterUser)
	router.GET("/get-user", api.HandleGetUser)
	router.GET("/check-ban", api.HandleCheckBan)
	router.GET("/users", api.HandleListUsers)
	router.POST("/user-status", api.HandleUserStatus)

	router.GET("/success", api.HandleSuccessPage)
	router.GET("/cancel", api.HandleCancelPage)

	return router
}
