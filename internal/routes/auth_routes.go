package routes

import (
	"github.com/gin-gonic/gin"
)

func authRoutes(r *gin.Engine, h handlers) {
	r.POST("/jwt", h.auth.IssueToken)
}
