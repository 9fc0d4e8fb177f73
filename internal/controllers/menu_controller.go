package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro_boss/internal/models"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/resp"
)

type MenuController struct {
	menu *repository.Collection[models.MenuItem]
}

func NewMenuController(menu *repository.Collection[models.MenuItem]) *MenuController {
	return &MenuController{menu: menu}
}

type menuInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type menuPatch struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

// ListMenu returns the whole menu, optionally narrowed by ?category=.
func (m *MenuController) ListMenu(c *gin.Context) {
	scopes := []repository.Scope{repository.OrderBy("category, name")}
	if category := c.Query("category"); category != "" {
		scopes = append(scopes, repository.Where("category = ?", category))
	}
	items, err := m.menu.List(c.Request.Context(), scopes...)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (m *MenuController) GetMenuItem(c *gin.Context) {
	item, err := m.menu.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (m *MenuController) CreateMenuItem(c *gin.Context) {
	var input menuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item := models.MenuItem{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := m.menu.Create(c.Request.Context(), &item); err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": item.ID, "item": item})
}

func (m *MenuController) UpdateMenuItem(c *gin.Context) {
	var input menuPatch
	if err := c.ShouldBindJSON(&input); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}

	item, err := m.menu.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (m *MenuController) DeleteMenuItem(c *gin.Context) {
	n, err := m.menu.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": n})
}
