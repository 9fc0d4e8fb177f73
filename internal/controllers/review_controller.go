package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro_boss/internal/models"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/resp"
)

type ReviewController struct {
	reviews *repository.Collection[models.Review]
}

func NewReviewController(reviews *repository.Collection[models.Review]) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (r *ReviewController) ListReviews(c *gin.Context) {
	reviews, err := r.reviews.List(c.Request.Context(), repository.OrderBy("created_at desc"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
