package routes

import (
	"github.com/gin-gonic/gin"
)

func cartRoutes(r *gin.Engine, h handlers) {
	carts := r.Group("/carts")
	{
		carts.GET("", h.carts.ListCart)
		carts.POST("", h.carts.AddToCart)
		carts.DELETE("/:id", h.carts.RemoveFromCart)
	}
}
