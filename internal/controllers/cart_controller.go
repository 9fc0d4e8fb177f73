package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro_boss/internal/models"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/resp"
)

type CartController struct {
	carts *repository.CartRepository
}

func NewCartController(carts *repository.CartRepository) *CartController {
	return &CartController{carts: carts}
}

type cartInput struct {
	Email  string  `json:"email" binding:"required,email"`
	MenuID string  `json:"menuId" binding:"required"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Price  float64 `json:"price" binding:"gte=0"`
}

func (ct *CartController) ListCart(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.BadRequest(c, "email query parameter is required")
		return
	}
	entries, err := ct.carts.ListByEmail(c.Request.Context(), email)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ct *CartController) AddToCart(c *gin.Context) {
	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	entry := models.CartEntry{
		Email:  input.Email,
		MenuID: input.MenuID,
		Name:   input.Name,
		Image:  input.Image,
		Price:  input.Price,
	}
	if err := ct.carts.Create(c.Request.Context(), &entry); err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": entry.ID, "entry": entry})
}

// RemoveFromCart deletes one entry; an unknown id deletes nothing.
func (ct *CartController) RemoveFromCart(c *gin.Context) {
	n, err := ct.carts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}
