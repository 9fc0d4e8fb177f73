package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bistro_boss/internal/middleware"
	"bistro_boss/internal/resp"
)

type AuthController struct {
	tokens *middleware.TokenService
}

func NewAuthController(tokens *middleware.TokenService) *AuthController {
	return &AuthController{tokens: tokens}
}

type tokenInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// IssueToken signs a session token for the posted user claims.
func (a *AuthController) IssueToken(c *gin.Context) {
	var input tokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, err := a.tokens.Issue(middleware.Claims{
		Email: strings.TrimSpace(input.Email),
		Name:  input.Name,
		Photo: input.Photo,
	})
	if err != nil {
		logrus.WithError(err).Error("IssueToken: could not sign token")
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
