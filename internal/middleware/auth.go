package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bistro_boss/internal/models"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/resp"
)

const claimsKey = "claims"

// UserFinder looks a user up by email for role checks.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authorizer builds the token and role guards for routes.
type Authorizer struct {
	tokens *TokenService
	users  UserFinder
}

func NewAuthorizer(tokens *TokenService, users UserFinder) *Authorizer {
	return &Authorizer{tokens: tokens, users: users}
}

// RequireAuth ensures a valid token is present
func (a *Authorizer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireAdmin ensures the token is valid and its owner has been promoted.
func (a *Authorizer) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			if !a.authenticate(c) {
				return
			}
			claims, _ = ClaimsFrom(c)
		}

		user, err := a.users.FindByEmail(c.Request.Context(), claims.Email)
		if errors.Is(err, repository.ErrNotFound) {
			resp.Forbidden(c, "forbidden access")
			return
		}
		if err != nil {
			resp.Error(c, err)
			return
		}
		if !user.Role.IsAdmin() {
			logrus.WithField("email", claims.Email).Warn("RequireAdmin: non-admin rejected")
			resp.Forbidden(c, "forbidden access")
			return
		}

		c.Next()
	}
}

// RequireSelf ensures the email in the named path parameter is the caller's.
func (a *Authorizer) RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			if !a.authenticate(c) {
				return
			}
			claims, _ = ClaimsFrom(c)
		}
		if c.Param(param) != claims.Email {
			resp.Forbidden(c, "forbidden access")
			return
		}
		c.Next()
	}
}

// authenticate verifies the bearer token and stores its claims.
// It writes the 401 itself and reports false on failure.
func (a *Authorizer) authenticate(c *gin.Context) bool {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		resp.Unauthorized(c, "unauthorized access")
		return false
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	claims, err := a.tokens.Verify(tokenStr)
	if err != nil {
		resp.Unauthorized(c, "unauthorized access")
		return false
	}
	c.Set(claimsKey, claims)
	return true
}

// ClaimsFrom returns the claims stored by a successful auth check.
func ClaimsFrom(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
