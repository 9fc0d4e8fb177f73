package routes

import (
	"github.com/gin-gonic/gin"
)

func menuRoutes(r *gin.Engine, h handlers) {
	r.GET("/reviews", h.reviews.ListReviews)

	menu := r.Group("/menu")
	{
		menu.GET("", h.menu.ListMenu)
		menu.GET("/:id", h.menu.GetMenuItem)
	}

	admin := menu.Group("")
	admin.Use(h.guard.RequireAuth(), h.guard.RequireAdmin())
	{
		admin.POST("", h.menu.CreateMenuItem)
		admin.PATCH("/:id", h.menu.UpdateMenuItem)
		admin.DELETE("/:id", h.menu.DeleteMenuItem)
	}
}
