package resp

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bistro_boss/internal/payment"
	"bistro_boss/internal/repository"
)

// Error codes returned in the "error" field of every failure body.
const (
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeConflict     = "conflict"
	CodeNotFound     = "not_found"
	CodeValidation   = "validation_error"
	CodeGateway      = "gateway_error"
	CodeTimeout      = "timeout"
	CodeInternal     = "internal_error"
)

func body(code, msg string) gin.H {
	return gin.H{"error": code, "message": msg}
}

func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, body(CodeUnauthorized, msg))
}

func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, body(CodeForbidden, msg))
}

func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, body(CodeValidation, msg))
}

func NotFound(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusNotFound, body(CodeNotFound, msg))
}

// Error maps a repository or gateway error onto a status and writes it.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, repository.ErrConflict):
		c.AbortWithStatusJSON(http.StatusConflict, body(CodeConflict, err.Error()))
	case errors.Is(err, payment.ErrGateway):
		logrus.WithError(err).WithField("path", c.FullPath()).Error("payment gateway failure")
		c.AbortWithStatusJSON(http.StatusBadGateway, body(CodeGateway, "payment provider unavailable"))
	case errors.Is(err, context.DeadlineExceeded):
		logrus.WithError(err).WithField("path", c.FullPath()).Warn("request timed out")
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, body(CodeTimeout, "request timed out"))
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, body(CodeInternal, "internal server error"))
	}
}
