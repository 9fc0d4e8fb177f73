package routes

import (
	"github.com/gin-gonic/gin"
)

func paymentRoutes(r *gin.Engine, h handlers) {
	r.POST("/create-payment-intent", h.guard.RequireAuth(), h.payments.CreateIntent)
	r.POST("/payment", h.guard.RequireAuth(), h.payments.RecordPayment)
	r.GET("/payments/:email", h.guard.RequireAuth(), h.guard.RequireSelf("email"), h.payments.ListPayments)
}
