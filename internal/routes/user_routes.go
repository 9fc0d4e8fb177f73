package routes

import (
	"github.com/gin-gonic/gin"
)

func userRoutes(r *gin.Engine, h handlers) {
	users := r.Group("/users")
	{
		users.POST("", h.users.CreateUser)
		users.GET("/admin/:email", h.guard.RequireAuth(), h.guard.RequireSelf("email"), h.users.AdminStatus)

		users.GET("", h.guard.RequireAuth(), h.guard.RequireAdmin(), h.users.ListUsers)
		users.PATCH("/admin/:id", h.guard.RequireAuth(), h.guard.RequireAdmin(), h.users.MakeAdmin)
		users.DELETE("/:id", h.guard.RequireAuth(), h.guard.RequireAdmin(), h.users.DeleteUser)
	}
}
