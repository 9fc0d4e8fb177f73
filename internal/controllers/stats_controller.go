package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bistro_boss/internal/analytics"
	"bistro_boss/internal/resp"
)

type StatsController struct {
	engine *analytics.Engine
}

func NewStatsController(engine *analytics.Engine) *StatsController {
	return &StatsController{engine: engine}
}

func (s *StatsController) AdminStats(c *gin.Context) {
	summary, err := s.engine.Summary(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *StatsController) OrderStats(c *gin.Context) {
	stats, err := s.engine.OrderStats(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
