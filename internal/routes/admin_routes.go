package routes

import (
	"github.com/gin-gonic/gin"
)

func adminRoutes(r *gin.Engine, h handlers) {
	r.GET("/admin-stats", h.guard.RequireAuth(), h.guard.RequireAdmin(), h.stats.AdminStats)
	r.GET("/order-stats", h.guard.RequireAuth(), h.guard.RequireAdmin(), h.stats.OrderStats)
}
