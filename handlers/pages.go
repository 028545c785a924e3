package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	successPage = "<h1>Payment Successful!</h1><p>Thank you for your purchase.</p>"
	cancelPage  = "<h1>Payment Canceled</h1><p>The payment was canceled.</p>"
)

func (a *API) HandleSuccessPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(successPage))
}

func (a *API) HandleCancelPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cancelPage))
}
