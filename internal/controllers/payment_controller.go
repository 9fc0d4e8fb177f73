package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bistro_boss/internal/middleware"
	"bistro_boss/internal/models"
	"bistro_boss/internal/payment"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/resp"
)

type PaymentController struct {
	payments *repository.PaymentRepository
	gateway  payment.Gateway
	currency string
}

func NewPaymentController(payments *repository.PaymentRepository, gateway payment.Gateway, currency string) *PaymentController {
	return &PaymentController{payments: payments, gateway: gateway, currency: currency}
}

type intentInput struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type paymentInput struct {
	Email         string    `json:"email" binding:"required,email"`
	Price         float64   `json:"price" binding:"required,gt=0"`
	TransactionID string    `json:"transactionId" binding:"required"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
	CartIDs       []string  `json:"cartIds"`
	ItemIDs       []string  `json:"itemIds"`
}

// CreateIntent asks the gateway for a client secret covering the price.
func (p *PaymentController) CreateIntent(c *gin.Context) {
	var input intentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	secret, err := p.gateway.CreateIntent(c.Request.Context(), input.Price, p.currency)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment stores a completed checkout and clears the paid cart entries.
func (p *PaymentController) RecordPayment(c *gin.Context) {
	var input paymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	claims, _ := middleware.ClaimsFrom(c)
	if claims == nil || claims.Email != input.Email {
		resp.Forbidden(c, "forbidden access")
		return
	}

	status := input.Status
	if status == "" {
		status = "pending"
	}
	record := models.Payment{
		Email:         input.Email,
		Price:         input.Price,
		TransactionID: input.TransactionID,
		Date:          input.Date,
		Status:        status,
		CartIDs:       models.IDList(input.CartIDs),
		MenuItemIDs:   input.ItemIDs,
	}

	deleted, err := p.payments.Record(c.Request.Context(), &record)
	if err != nil {
		logrus.WithError(err).
			WithField("email", input.Email).
			WithField("transaction_id", input.TransactionID).
			Error("RecordPayment: payment not stored")
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentResult": record,
		"deleteResult":  gin.H{"deletedCount": deleted},
	})
}

func (p *PaymentController) ListPayments(c *gin.Context) {
	payments, err := p.payments.ListByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
